package intent

type Objective string

const (
	ObjectiveGrowth       Objective = "growth"
	ObjectiveIncome       Objective = "income"
	ObjectiveBalanced     Objective = "balanced"
	ObjectivePreservation Objective = "preservation"
	ObjectiveSpeculation  Objective = "speculation"
)

type RiskTolerance string

const (
	RiskConservative   RiskTolerance = "conservative"
	RiskModerate       RiskTolerance = "moderate"
	RiskAggressive     RiskTolerance = "aggressive"
	RiskVeryAggressive RiskTolerance = "very_aggressive"
)

type Style string

const (
	StyleValue      Style = "value"
	StyleGrowth     Style = "growth"
	StyleMomentum   Style = "momentum"
	StyleQuality    Style = "quality"
	StyleSize       Style = "size"
	StyleVolatility Style = "volatility"
)

type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Gates are hard screening constraints pulled from the raw query.
// A zero numeric field means the constraint is absent; every present
// value is strictly positive.
type Gates struct {
	PriceMax     float64  `json:"price_max,omitempty"`
	MinMarketCap float64  `json:"min_market_cap,omitempty"`
	MaxMarketCap float64  `json:"max_market_cap,omitempty"`
	Sectors      []string `json:"sectors,omitempty"`
}

// Intent is the structured form of a screening query. It is built fresh
// per request and consumed immediately by the screener.
type Intent struct {
	Objective     Objective     `json:"objective"`
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
	HorizonYears  int           `json:"horizon_years"`
	StyleWeights  map[Style]int `json:"style_weights"`
	Gates         Gates         `json:"gates"`
	Source        Source        `json:"source"`
}

// DefaultIntent is substituted whenever the model path cannot produce a
// usable answer.
func DefaultIntent() Intent {
	return Intent{
		Objective:     ObjectiveBalanced,
		RiskTolerance: RiskModerate,
		HorizonYears:  5,
		StyleWeights: map[Style]int{
			StyleValue:      20,
			StyleGrowth:     20,
			StyleMomentum:   20,
			StyleQuality:    20,
			StyleSize:       10,
			StyleVolatility: 10,
		},
		Gates:  Gates{},
		Source: SourceFallback,
	}
}
