package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/isaachansen/osrs-companion/internal/ge"
	"github.com/isaachansen/osrs-companion/internal/player"
	"github.com/isaachansen/osrs-companion/internal/wiki"
	"github.com/isaachansen/osrs-companion/internal/wikisync"
	"github.com/isaachansen/osrs-companion/metrics"
	"github.com/isaachansen/osrs-companion/tracing"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	wikiClient *wiki.Client
	geClient   *ge.Client
	syncClient *wikisync.Client
	store      *player.Store
	logger     *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(wikiClient *wiki.Client, geClient *ge.Client, syncClient *wikisync.Client, store *player.Store, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		wikiClient: wikiClient,
		geClient:   geClient,
		syncClient: syncClient,
		store:      store,
		logger:     logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	// Wiki tools
	case "Search":
		register(h, server, tool, spec, h.wikiClient.Search)
	case "Summary":
		register(h, server, tool, spec, h.wikiClient.Summary)

	// Price tools
	case "Price":
		register(h, server, tool, spec, h.geClient.PriceMCP)

	// Remote player tools
	case "Player":
		register(h, server, tool, spec, h.syncClient.FetchMCP)

	// Local player tools
	case "List":
		register(h, server, tool, spec, h.store.ListMCP)
	case "Profile":
		register(h, server, tool, spec, h.store.ProfileMCP)
	case "Bank":
		register(h, server, tool, spec, h.store.BankMCP)
	case "Stats":
		register(h, server, tool, spec, h.store.StatsMCP)
	case "Quests":
		register(h, server, tool, spec, h.store.QuestsMCP)
	case "Equipment":
		register(h, server, tool, spec, h.store.EquipmentMCP)
	case "Inventory":
		register(h, server, tool, spec, h.store.InventoryMCP)
	case "Diaries":
		register(h, server, tool, spec, h.store.DiariesMCP)
	case "Combat":
		register(h, server, tool, spec, h.store.CombatMCP)

	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the handler method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.String("mcp.tool.source", spec.Source),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "source", spec.Source}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case wiki.SearchArgs:
		attrs = append(attrs, "query", a.Query)
	case wiki.SummaryArgs:
		attrs = append(attrs, "title", a.Title)
	case ge.PriceArgs:
		attrs = append(attrs, "item", a.Item)
	case wikisync.PlayerArgs:
		attrs = append(attrs, "username", a.Username, "force_refresh", a.ForceRefresh)
	case player.UsernameArgs:
		attrs = append(attrs, "username", a.Username)
	case player.BankArgs:
		attrs = append(attrs, "username", a.Username, "search", a.Search)
	case player.StatsArgs:
		attrs = append(attrs, "username", a.Username, "skill", a.Skill)
	case player.QuestsArgs:
		attrs = append(attrs, "username", a.Username, "state", a.State)
	case player.DiariesArgs:
		attrs = append(attrs, "username", a.Username, "region", a.Region)
	case player.CombatArgs:
		attrs = append(attrs, "username", a.Username, "search", a.Search)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case wiki.SearchResult:
		attrs = append(attrs, "results_count", len(r.Results), "total_hits", r.TotalHits)
	case wiki.SummaryResult:
		attrs = append(attrs, "found", r.Found)
	case ge.PriceResult:
		attrs = append(attrs, "found", r.Found, "item_id", r.ItemID)
	case wikisync.PlayerDataResult:
		attrs = append(attrs, "found", r.Found, "cached", r.Cached)
	case player.ListResult:
		attrs = append(attrs, "players", r.Count)
	case player.ProfileResult:
		attrs = append(attrs, "found", r.Found)
	case player.BankResult:
		attrs = append(attrs, "found", r.Found, "matched", r.Matched)
	case player.StatsResult:
		attrs = append(attrs, "found", r.Found)
	case player.QuestsResult:
		attrs = append(attrs, "found", r.Found, "matched", r.Matched)
	case player.EquipmentResult:
		attrs = append(attrs, "found", r.Found, "equipped", len(r.Equipped))
	case player.InventoryResult:
		attrs = append(attrs, "found", r.Found, "items", len(r.Items))
	case player.DiariesResult:
		attrs = append(attrs, "found", r.Found, "regions", len(r.Diaries))
	case player.CombatResult:
		attrs = append(attrs, "found", r.Found, "matched", r.Matched)
	}

	h.logger.Info("Tool executed", attrs...)
}
