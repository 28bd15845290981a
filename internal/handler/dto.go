package handler

import (
	"stockscreen/internal/intent"
	"stockscreen/pkg/market"
	"stockscreen/pkg/screener"
)

type QueryRequest struct {
	Query string `json:"query"`
}

// IntentEnvelope is the response shape of POST /intent.
type IntentEnvelope struct {
	Success   bool           `json:"success"`
	Data      *intent.Intent `json:"data,omitempty"`
	Error     string         `json:"error,omitempty"`
	Timestamp string         `json:"timestamp"`
}

// QueryResponse is the routed response of POST /query: a ticker snapshot
// or a resolved intent with optional screen results.
type QueryResponse struct {
	Route      intent.Route     `json:"route"`
	Snapshot   *market.Snapshot `json:"snapshot,omitempty"`
	Intent     *intent.Intent   `json:"intent,omitempty"`
	Results    []screener.Stock `json:"results,omitempty"`
	TotalFound int              `json:"total_found"`
	Timestamp  string           `json:"timestamp"`
}

type QueryRecordResponse struct {
	ID            int64  `json:"id"`
	Query         string `json:"query"`
	Route         string `json:"route"`
	Objective     string `json:"objective"`
	RiskTolerance string `json:"risk_tolerance"`
	HorizonYears  int    `json:"horizon_years"`
	Source        string `json:"source"`
	DurationMs    int64  `json:"duration_ms"`
	CreatedAt     string `json:"created_at"`
}

type HistoryResponse struct {
	Queries []QueryRecordResponse `json:"queries"`
	Total   int                   `json:"total"`
	Limit   int                   `json:"limit"`
	Offset  int                   `json:"offset"`
}
