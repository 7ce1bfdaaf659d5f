// Command evals runs MCP tool selection evaluations against the
// deterministic keyword baseline.
//
// Usage:
//
//	go run ./cmd/evals -dir ./evals/testdata
//
// The baseline selector is a floor, not a target: any LLM wired to this
// server should match or beat it. To evaluate an LLM, implement
// evals.ToolSelector over your model and run the same suites.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/isaachansen/osrs-companion/evals"
)

func main() {
	dir := flag.String("dir", "./evals/testdata", "Directory containing eval suite JSON files")
	verbose := flag.Bool("verbose", false, "Show every test case, not just failures")
	flag.Parse()

	fmt.Println("OSRS Companion MCP Server - Evaluation Framework")
	fmt.Println("================================================")

	exitCode := 0
	for _, name := range []string{"tool_selection.json", "confusion_pairs.json"} {
		suite, err := evals.LoadSuite(filepath.Join(*dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", name, err)
			os.Exit(1)
		}

		metrics, results := evals.Evaluate(suite, evals.KeywordSelector{})
		fmt.Print(evals.FormatMetrics(metrics, suite.Name))

		if *verbose {
			fmt.Println("\nTest Cases:")
			for _, r := range results {
				status := "PASS"
				if !r.Passed {
					status = "FAIL"
				}
				fmt.Printf("  [%s] %s %q -> %s\n", status, r.TestID, r.Input, r.ActualTool)
			}
		}

		if metrics.FailedTests > 0 {
			exitCode = 1
		}
	}

	os.Exit(exitCode)
}
