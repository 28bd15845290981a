package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stockscreen/internal/intent"
	"stockscreen/internal/model"
	"stockscreen/pkg/market"
	"stockscreen/pkg/screener"
)

type IntentResolver interface {
	Extract(ctx context.Context, query string) intent.Intent
}

type QueryStore interface {
	SaveQuery(rec *model.QueryRecord) error
	GetRecent(limit, offset int) ([]model.QueryRecord, error)
	GetTotal() (int, error)
}

type IntentCache interface {
	Get(query string) (*intent.Intent, bool)
	Set(query string, in intent.Intent)
}

type MarketData interface {
	Snapshot(symbol string) (*market.Snapshot, error)
}

type ScreenerClient interface {
	Screen(in intent.Intent) ([]screener.Stock, error)
}

// IntentHandler serves the query pipeline. Store, cache, market and
// screener are optional; a nil dependency disables its feature.
type IntentHandler struct {
	resolver IntentResolver
	store    QueryStore
	cache    IntentCache
	market   MarketData
	screener ScreenerClient
}

func NewIntentHandler(resolver IntentResolver, store QueryStore, cache IntentCache, marketData MarketData, screenerClient ScreenerClient) *IntentHandler {
	return &IntentHandler{
		resolver: resolver,
		store:    store,
		cache:    cache,
		market:   marketData,
		screener: screenerClient,
	}
}

func (h *IntentHandler) ResolveIntent(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, IntentEnvelope{
			Success:   false,
			Error:     "query is required",
			Timestamp: timestamp(),
		})
		return
	}

	resolved := h.resolve(c.Request.Context(), req.Query, string(intent.RouteIntent))

	c.JSON(http.StatusOK, IntentEnvelope{
		Success:   true,
		Data:      &resolved,
		Timestamp: timestamp(),
	})
}

func (h *IntentHandler) HandleQuery(c *gin.Context) {
	var req QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	route := intent.Classify(req.Query)

	if route == intent.RouteTicker && h.market != nil {
		symbol := intent.TickerSymbol(req.Query)

		snapshot, err := h.market.Snapshot(symbol)
		if err != nil {
			slog.Error("error fetching ticker snapshot", "symbol", symbol, "error", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Market data unavailable"})
			return
		}

		h.record(req.Query, string(route), nil, 0)

		c.JSON(http.StatusOK, QueryResponse{
			Route:     route,
			Snapshot:  snapshot,
			Timestamp: timestamp(),
		})
		return
	}

	// Ticker queries land here too when no market client is configured;
	// the response keeps the classified route either way.
	resolved := h.resolve(c.Request.Context(), req.Query, string(route))

	res := QueryResponse{
		Route:     route,
		Intent:    &resolved,
		Timestamp: timestamp(),
	}

	if h.screener != nil {
		results, err := h.screener.Screen(resolved)
		if err != nil {
			// The intent is still usable without screen results.
			slog.Error("error screening stocks", "error", err)
		} else {
			res.Results = results
			res.TotalFound = len(results)
		}
	}

	c.JSON(http.StatusOK, res)
}

// resolve runs the cache-then-model path and logs the request to the
// history store.
func (h *IntentHandler) resolve(ctx context.Context, query, route string) intent.Intent {
	start := time.Now()

	if h.cache != nil {
		if cached, ok := h.cache.Get(query); ok {
			h.record(query, route, cached, time.Since(start))
			return *cached
		}
	}

	resolved := h.resolver.Extract(ctx, query)

	if h.cache != nil && resolved.Source == intent.SourceModel {
		h.cache.Set(query, resolved)
	}

	h.record(query, route, &resolved, time.Since(start))
	return resolved
}

func (h *IntentHandler) record(query, route string, in *intent.Intent, duration time.Duration) {
	if h.store == nil {
		return
	}

	rec := model.QueryRecord{
		Query:      query,
		Route:      route,
		DurationMs: duration.Milliseconds(),
	}
	if in != nil {
		rec.Objective = string(in.Objective)
		rec.RiskTolerance = string(in.RiskTolerance)
		rec.HorizonYears = in.HorizonYears
		rec.Source = string(in.Source)
	}

	if err := h.store.SaveQuery(&rec); err != nil {
		slog.Error("error saving query record", "error", err)
	}
}

func (h *IntentHandler) GetHistory(c *gin.Context) {
	if h.store == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "History not enabled"})
		return
	}

	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	records, err := h.store.GetRecent(limit, offset)
	if err != nil {
		slog.Error("error fetching query history", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.store.GetTotal()
	if err != nil {
		slog.Error("error fetching query history total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	queries := make([]QueryRecordResponse, 0, len(records))
	for _, rec := range records {
		queries = append(queries, QueryRecordResponse{
			ID:            rec.ID,
			Query:         rec.Query,
			Route:         rec.Route,
			Objective:     rec.Objective,
			RiskTolerance: rec.RiskTolerance,
			HorizonYears:  rec.HorizonYears,
			Source:        rec.Source,
			DurationMs:    rec.DurationMs,
			CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, HistoryResponse{
		Queries: queries,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

func (h *IntentHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "intent-api",
		"timestamp": timestamp(),
	})
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsedValue, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsedValue
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}
