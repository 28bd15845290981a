package market

// Snapshot is the per-ticker view backing the single-ticker analysis
// route.
type Snapshot struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Industry      string  `json:"industry"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	PercentChange float64 `json:"percent_change"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Open          float64 `json:"open"`
	PrevClose     float64 `json:"prev_close"`
	MarketCap     float64 `json:"market_cap"`
}
