package model

import "time"

// QueryRecord is the per-request history row. The Intent itself stays an
// identity-free value; this records how the request was resolved.
type QueryRecord struct {
	ID            int64
	Query         string
	Route         string
	Objective     string
	RiskTolerance string
	HorizonYears  int
	Source        string
	DurationMs    int64
	CreatedAt     time.Time
}
