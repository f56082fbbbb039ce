package assess

import "fmt"

const (
	defaultUnpushedRepositoryLimitConstant         = 5
	highUnpushedCountDescriptionTemplateConstant   = "%d repositories with unpushed commits"
	highUnpushedCountRecommendationMessageConstant = "review and push or create PRs"
)

// DetectionThresholds carries the tunable limits consulted by anomaly rules.
type DetectionThresholds struct {
	UnpushedRepositoryLimit int
}

// DefaultDetectionThresholds returns the baseline anomaly thresholds.
func DefaultDetectionThresholds() DetectionThresholds {
	return DetectionThresholds{UnpushedRepositoryLimit: defaultUnpushedRepositoryLimitConstant}
}

// AnomalyRule pairs an anomaly tag with its pure evaluation function.
//
// Rules are evaluated in definition order and each emits at most one anomaly.
type AnomalyRule struct {
	Tag      AnomalyTag
	Evaluate func(health GitHealth, repositoryRecords []RepositoryRecord, thresholds DetectionThresholds) (Anomaly, bool)
}

var anomalyRules = []AnomalyRule{
	{
		Tag:      AnomalyTagHighUnpushedCount,
		Evaluate: evaluateHighUnpushedCount,
	},
}

// DetectAnomalies evaluates every anomaly rule against the aggregate and
// returns the fired anomalies in rule-definition order.
func DetectAnomalies(health GitHealth, repositoryRecords []RepositoryRecord, thresholds DetectionThresholds) []Anomaly {
	var detectedAnomalies []Anomaly
	for ruleIndex := range anomalyRules {
		detectedAnomaly, fired := anomalyRules[ruleIndex].Evaluate(health, repositoryRecords, thresholds)
		if fired {
			detectedAnomalies = append(detectedAnomalies, detectedAnomaly)
		}
	}
	return detectedAnomalies
}

// evaluateHighUnpushedCount fires when the number of repositories ahead of
// their upstream strictly exceeds the configured limit. A count equal to the
// limit does not trigger.
func evaluateHighUnpushedCount(health GitHealth, repositoryRecords []RepositoryRecord, thresholds DetectionThresholds) (Anomaly, bool) {
	unpushedCount := 0
	for recordIndex := range repositoryRecords {
		if repositoryRecords[recordIndex].AheadCount > 0 {
			unpushedCount++
		}
	}
	if unpushedCount <= thresholds.UnpushedRepositoryLimit {
		return Anomaly{}, false
	}
	detectedAnomaly := Anomaly{
		Tag:            AnomalyTagHighUnpushedCount,
		Severity:       AnomalySeverityMedium,
		Deviation:      ratioOf(unpushedCount, health.TotalRepositories),
		Description:    fmt.Sprintf(highUnpushedCountDescriptionTemplateConstant, unpushedCount),
		Recommendation: highUnpushedCountRecommendationMessageConstant,
	}
	return detectedAnomaly, true
}
