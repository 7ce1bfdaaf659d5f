// Package evals provides an evaluation harness for MCP tool selection
// accuracy. It validates that a selector (an LLM, or the deterministic
// baseline in this package) picks the right tool and arguments for
// natural language OSRS questions.
package evals

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SelectionTest is one tool selection case: a natural language input and
// the tool it must map to.
type SelectionTest struct {
	ID           string         `json:"id"`
	Category     string         `json:"category"`
	Input        string         `json:"input"`
	ExpectedTool string         `json:"expected_tool"`
	ExpectedArgs map[string]any `json:"expected_args,omitempty"`
	NotTools     []string       `json:"not_tools,omitempty"`
}

// ConfusionPair groups tests that disambiguate two commonly confused tools
// (e.g. price vs summary, player vs get_my_stats).
type ConfusionPair struct {
	ID             string          `json:"id"`
	Tools          []string        `json:"tools"`
	Disambiguation string          `json:"disambiguation"`
	Tests          []SelectionTest `json:"tests"`
}

// Suite is a full evaluation suite loaded from JSON.
type Suite struct {
	Name        string          `json:"name"`
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Tests       []SelectionTest `json:"tests"`
	Pairs       []ConfusionPair `json:"confusion_pairs"`
}

// LoadSuite reads a suite from a JSON file.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	var suite Suite
	if err := json.Unmarshal(data, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite %s: %w", filepath.Base(path), err)
	}
	return &suite, nil
}

// ToolSelector maps a natural language input to a tool name and arguments.
// Implemented by KeywordSelector here, or by an LLM bridge externally.
type ToolSelector interface {
	SelectTool(input string) (toolName string, args map[string]any, err error)
}

// Result is the outcome of one selection test.
type Result struct {
	TestID       string
	Input        string
	ExpectedTool string
	ActualTool   string
	Passed       bool
	Errors       []string
}

// Metrics aggregates an evaluation run.
type Metrics struct {
	TotalTests    int
	PassedTests   int
	FailedTests   int
	Accuracy      float64
	ByCategory    map[string]*CategoryMetrics
	FailedDetails []string
}

// CategoryMetrics tallies results per category.
type CategoryMetrics struct {
	Total  int
	Passed int
	Failed int
}

// Evaluate runs every test in the suite, including confusion pair tests,
// against the selector.
func Evaluate(suite *Suite, selector ToolSelector) (*Metrics, []Result) {
	metrics := &Metrics{ByCategory: make(map[string]*CategoryMetrics)}
	var results []Result

	for _, test := range suite.Tests {
		results = append(results, runTest(metrics, test, selector))
	}
	for _, pair := range suite.Pairs {
		for _, test := range pair.Tests {
			if test.Category == "" {
				test.Category = pair.ID
			}
			results = append(results, runTest(metrics, test, selector))
		}
	}

	if metrics.TotalTests > 0 {
		metrics.Accuracy = float64(metrics.PassedTests) / float64(metrics.TotalTests)
	}
	return metrics, results
}

func runTest(metrics *Metrics, test SelectionTest, selector ToolSelector) Result {
	metrics.TotalTests++
	if metrics.ByCategory[test.Category] == nil {
		metrics.ByCategory[test.Category] = &CategoryMetrics{}
	}
	metrics.ByCategory[test.Category].Total++

	actualTool, actualArgs, err := selector.SelectTool(test.Input)

	result := Result{
		TestID:       test.ID,
		Input:        test.Input,
		ExpectedTool: test.ExpectedTool,
		ActualTool:   actualTool,
		Passed:       true,
	}

	if err != nil {
		result.Passed = false
		result.Errors = append(result.Errors, fmt.Sprintf("selector error: %v", err))
	}
	if actualTool != test.ExpectedTool {
		result.Passed = false
		result.Errors = append(result.Errors,
			fmt.Sprintf("wrong tool: expected %s, got %s", test.ExpectedTool, actualTool))
	}
	for _, forbidden := range test.NotTools {
		if actualTool == forbidden {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf("selected forbidden tool: %s", forbidden))
		}
	}
	for key, want := range test.ExpectedArgs {
		got, ok := actualArgs[key]
		if !ok {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf("missing arg %s (expected %v)", key, want))
			continue
		}
		if fmt.Sprintf("%v", got) != fmt.Sprintf("%v", want) {
			result.Passed = false
			result.Errors = append(result.Errors, fmt.Sprintf("wrong arg %s: expected %v, got %v", key, want, got))
		}
	}

	if result.Passed {
		metrics.PassedTests++
		metrics.ByCategory[test.Category].Passed++
	} else {
		metrics.FailedTests++
		metrics.ByCategory[test.Category].Failed++
		metrics.FailedDetails = append(metrics.FailedDetails,
			fmt.Sprintf("[%s] %s: %s", test.ID, test.Input, strings.Join(result.Errors, "; ")))
	}
	return result
}

// FormatMetrics returns a human-readable summary of an evaluation run.
func FormatMetrics(metrics *Metrics, suiteName string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("\n=== %s ===\n", suiteName))
	b.WriteString(fmt.Sprintf("Total: %d tests\n", metrics.TotalTests))
	b.WriteString(fmt.Sprintf("Passed: %d (%.1f%%)\n", metrics.PassedTests, metrics.Accuracy*100))
	b.WriteString(fmt.Sprintf("Failed: %d\n", metrics.FailedTests))

	if len(metrics.ByCategory) > 0 {
		b.WriteString("\nBy Category:\n")
		for cat, m := range metrics.ByCategory {
			if m.Total > 0 {
				acc := float64(m.Passed) / float64(m.Total) * 100
				b.WriteString(fmt.Sprintf("  %-25s: %d/%d (%.0f%%)\n", cat, m.Passed, m.Total, acc))
			}
		}
	}

	show := metrics.FailedDetails
	if len(show) > 10 {
		b.WriteString(fmt.Sprintf("\nFailed Tests (showing first 10 of %d):\n", len(show)))
		show = show[:10]
	} else if len(show) > 0 {
		b.WriteString("\nFailed Tests:\n")
	}
	for _, detail := range show {
		b.WriteString(fmt.Sprintf("  - %s\n", detail))
	}

	return b.String()
}
