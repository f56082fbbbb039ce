package assess

const healthScoreScaleConstant = 100.0

// HealthAggregator reduces repository records into GitHealth and an ObservationContext.
type HealthAggregator struct {
	clock Clock
}

// NewHealthAggregator constructs an aggregator using the provided clock, defaulting to the system clock.
func NewHealthAggregator(clock Clock) *HealthAggregator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &HealthAggregator{clock: clock}
}

// Aggregate computes GitHealth from the supplied records in a single pass and
// stamps an ObservationContext for the run.
//
// The record slice is read in caller order and never reordered or
// deduplicated. An empty slice yields all-zero counts and a health score of
// zero.
func (aggregator *HealthAggregator) Aggregate(workspaceIdentifier string, repositoryRecords []RepositoryRecord, workspaceMetrics WorkspaceMetrics) (GitHealth, ObservationContext) {
	health := GitHealth{}
	for recordIndex := range repositoryRecords {
		repositoryRecord := repositoryRecords[recordIndex]
		health.TotalRepositories++
		if repositoryRecord.Clean {
			health.CleanRepositories++
		}
		if repositoryRecord.AheadCount > 0 {
			health.UnpushedRepositories++
		}
		health.TotalCommits += repositoryRecord.CommitCount
	}
	health.DirtyRepositories = health.TotalRepositories - health.CleanRepositories
	health.HealthScore = healthScoreScaleConstant * ratioOf(health.CleanRepositories, health.TotalRepositories)

	observationContext := ObservationContext{
		WorkspaceIdentifier: workspaceIdentifier,
		GeneratedAt:         aggregator.clock.Now(),
		Git:                 health,
		Metrics:             workspaceMetrics,
	}
	return health, observationContext
}

// ratioOf divides two counts, treating an empty denominator as a zero ratio.
func ratioOf(numerator int, denominator int) float64 {
	if denominator == 0 {
		return 0
	}
	return float64(numerator) / float64(denominator)
}
