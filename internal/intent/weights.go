package intent

import "math"

var baseWeights = map[Style]float64{
	StyleValue:      20,
	StyleGrowth:     20,
	StyleMomentum:   20,
	StyleQuality:    20,
	StyleSize:       10,
	StyleVolatility: 10,
}

// Per-objective replacement values. A style missing from the table keeps
// its base weight; balanced has no override at all.
var objectiveOverrides = map[Objective]map[Style]float64{
	ObjectiveGrowth: {
		StyleValue:    10,
		StyleGrowth:   40,
		StyleMomentum: 25,
		StyleQuality:  15,
	},
	ObjectiveIncome: {
		StyleValue:    35,
		StyleGrowth:   10,
		StyleMomentum: 10,
		StyleQuality:  30,
		StyleSize:     5,
	},
	ObjectivePreservation: {
		StyleValue:      30,
		StyleGrowth:     5,
		StyleMomentum:   5,
		StyleQuality:    35,
		StyleSize:       5,
		StyleVolatility: 20,
	},
	ObjectiveSpeculation: {
		StyleValue:      5,
		StyleGrowth:     35,
		StyleMomentum:   35,
		StyleQuality:    5,
		StyleSize:       15,
		StyleVolatility: 5,
	},
}

// Additive adjustments applied after the objective override; moderate
// leaves the allocation untouched.
var riskDeltas = map[RiskTolerance]map[Style]float64{
	RiskConservative: {
		StyleValue:      10,
		StyleGrowth:     -10,
		StyleMomentum:   -10,
		StyleQuality:    10,
		StyleVolatility: 10,
	},
	RiskAggressive: {
		StyleValue:      -5,
		StyleGrowth:     10,
		StyleMomentum:   10,
		StyleQuality:    -5,
		StyleVolatility: -10,
	},
	RiskVeryAggressive: {
		StyleValue:      -10,
		StyleGrowth:     15,
		StyleMomentum:   15,
		StyleQuality:    -10,
		StyleSize:       5,
		StyleVolatility: -15,
	},
}

// StyleWeights derives the integer percentage allocation for an
// objective/risk pair. Normalization rounds each adjusted value against
// the adjusted sum; rounding can shift the realized total by a point or
// two away from 100 and no further correction is applied.
func StyleWeights(objective Objective, risk RiskTolerance) map[Style]int {
	adjusted := make(map[Style]float64, len(baseWeights))
	for style, w := range baseWeights {
		adjusted[style] = w
	}
	for style, w := range objectiveOverrides[objective] {
		adjusted[style] = w
	}
	for style, d := range riskDeltas[risk] {
		adjusted[style] += d
	}

	var sum float64
	for _, w := range adjusted {
		sum += w
	}

	factor := 100 / sum
	weights := make(map[Style]int, len(adjusted))
	for style, w := range adjusted {
		weights[style] = int(math.Round(w * factor))
	}
	return weights
}
