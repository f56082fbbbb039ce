package assess

// HealthTrend classifies a health score into a three-level maintenance signal.
type HealthTrend string

// Supported health trends.
const (
	HealthTrendHealthy      HealthTrend = "HEALTHY"
	HealthTrendNeedsCleanup HealthTrend = "NEEDS_CLEANUP"
	HealthTrendCritical     HealthTrend = "CRITICAL"
)

const (
	healthyTrendMinimumScoreConstant = 80.0
	cleanupTrendMinimumScoreConstant = 50.0
)

// TrendForScore maps a health score onto its trend band. Band lower bounds
// are inclusive.
func TrendForScore(healthScore float64) HealthTrend {
	switch {
	case healthScore >= healthyTrendMinimumScoreConstant:
		return HealthTrendHealthy
	case healthScore >= cleanupTrendMinimumScoreConstant:
		return HealthTrendNeedsCleanup
	default:
		return HealthTrendCritical
	}
}

// DeriveTrend re-focuses the node on the trend band of its context's health
// score without recomputing the aggregate.
func DeriveTrend[FocusValue any](node ObservationNode[FocusValue]) ObservationNode[HealthTrend] {
	return Extend(node, func(observed ObservationNode[FocusValue]) HealthTrend {
		return TrendForScore(observed.Context().Git.HealthScore)
	})
}

// DeriveVelocity re-focuses the node on the total commit count across all
// observed repositories.
func DeriveVelocity[FocusValue any](node ObservationNode[FocusValue]) ObservationNode[int] {
	return Extend(node, func(observed ObservationNode[FocusValue]) int {
		return observed.Context().Git.TotalCommits
	})
}
