package intent

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	smallCapCeiling = 2_000_000_000
	largeCapFloor   = 10_000_000_000
)

var priceMaxPattern = regexp.MustCompile(`(?i)(?:under|below|less than)\s*\$?\s*(\d+(?:\.\d+)?)`)

// Keyword table for sector detection. Sector names match what the
// screener service reports.
var sectorKeywords = []struct {
	keyword string
	sector  string
}{
	{"tech", "Technology"},
	{"software", "Technology"},
	{"semiconductor", "Technology"},
	{"ai", "Technology"},
	{"healthcare", "Healthcare"},
	{"health care", "Healthcare"},
	{"pharma", "Healthcare"},
	{"biotech", "Healthcare"},
	{"medical", "Healthcare"},
	{"finance", "Financial Services"},
	{"financial", "Financial Services"},
	{"bank", "Financial Services"},
	{"insurance", "Financial Services"},
	{"energy", "Energy"},
	{"oil", "Energy"},
	{"gas", "Energy"},
	{"consumer staples", "Consumer Defensive"},
	{"defensive", "Consumer Defensive"},
	{"retail", "Consumer Cyclical"},
	{"consumer discretionary", "Consumer Cyclical"},
	{"industrial", "Industrials"},
	{"real estate", "Real Estate"},
	{"reit", "Real Estate"},
	{"materials", "Basic Materials"},
	{"mining", "Basic Materials"},
	{"telecom", "Communication Services"},
	{"media", "Communication Services"},
}

// DeriveGates extracts hard numeric and categorical constraints from the
// raw query text. Rules are independent; any rule without a match leaves
// its gate unset.
func DeriveGates(query string) Gates {
	var gates Gates
	lower := strings.ToLower(query)

	if m := priceMaxPattern.FindStringSubmatch(query); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
			gates.PriceMax = v
		}
	}

	if strings.Contains(lower, "small cap") || strings.Contains(lower, "small-cap") {
		gates.MaxMarketCap = smallCapCeiling
	}
	if strings.Contains(lower, "large cap") || strings.Contains(lower, "large-cap") {
		gates.MinMarketCap = largeCapFloor
	}

	seen := make(map[string]bool)
	for _, entry := range sectorKeywords {
		if strings.Contains(lower, entry.keyword) && !seen[entry.sector] {
			seen[entry.sector] = true
			gates.Sectors = append(gates.Sectors, entry.sector)
		}
	}

	return gates
}
