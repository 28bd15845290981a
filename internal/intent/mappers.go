package intent

import "strings"

// MapObjective maps a free-text token onto a known objective. It is
// total: anything unrecognized becomes balanced.
func MapObjective(token string) Objective {
	v := normalizeToken(token)
	switch {
	case strings.Contains(v, "growth"):
		return ObjectiveGrowth
	case strings.Contains(v, "income"), strings.Contains(v, "dividend"):
		return ObjectiveIncome
	case strings.Contains(v, "preservation"), strings.Contains(v, "conservative"):
		return ObjectivePreservation
	case strings.Contains(v, "speculation"), strings.Contains(v, "aggressive"):
		return ObjectiveSpeculation
	default:
		return ObjectiveBalanced
	}
}

// MapRiskTolerance maps a free-text token onto a risk level. The longer
// "very aggressive" pattern is checked before "aggressive", which it
// contains, so it stays reachable.
func MapRiskTolerance(token string) RiskTolerance {
	v := normalizeToken(token)
	switch {
	case strings.Contains(v, "very aggressive"):
		return RiskVeryAggressive
	case strings.Contains(v, "aggressive"):
		return RiskAggressive
	case strings.Contains(v, "conservative"):
		return RiskConservative
	default:
		return RiskModerate
	}
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
}
