package intent

import (
	"regexp"
	"strings"
)

type Route string

const (
	RouteTicker Route = "ticker"
	RouteIntent Route = "intent"
)

var knownTickers = map[string]bool{
	"AAPL": true, "MSFT": true, "GOOGL": true, "AMZN": true, "NVDA": true,
	"META": true, "TSLA": true, "BRK": true, "JPM": true, "JNJ": true,
	"V": true, "PG": true, "XOM": true, "KO": true, "PFE": true,
	"DIS": true, "NFLX": true, "AMD": true, "INTC": true, "BA": true,
}

var intentTerms = []string{
	"undervalued", "overvalued", "dividend", "sector", "pe ratio",
	"small cap", "mid cap", "large cap", "growth", "value", "momentum",
	"stocks", "companies", "screen", "find", "cheap", "under $",
	"blue chip", "high yield", "volatile", "safe",
}

var (
	tickerPattern         = regexp.MustCompile(`^[A-Z]{1,5}$`)
	tickerAnalysisPattern = regexp.MustCompile(`^[A-Z]{1,5}\s+(ANALYSIS|ANALYZE|REPORT|CHART)$`)
)

// Classify decides whether a raw query asks for a single-ticker analysis
// or a screening intent. It is a heuristic: a misrouted query still
// produces a sensible response on the other path.
func Classify(query string) Route {
	trimmed := strings.TrimSpace(query)
	upper := strings.ToUpper(trimmed)

	if tickerAnalysisPattern.MatchString(upper) {
		return RouteTicker
	}

	if knownTickers[upper] || tickerPattern.MatchString(upper) {
		return RouteTicker
	}

	lower := strings.ToLower(trimmed)
	for _, term := range intentTerms {
		if strings.Contains(lower, term) {
			return RouteIntent
		}
	}

	if len(upper) <= 5 && isAlphabetic(upper) {
		return RouteTicker
	}

	return RouteIntent
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// TickerSymbol strips an analysis keyword from a ticker query, so both
// "AAPL" and "AAPL analysis" resolve to "AAPL".
func TickerSymbol(query string) string {
	upper := strings.ToUpper(strings.TrimSpace(query))
	fields := strings.Fields(upper)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
