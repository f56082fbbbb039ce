package assess

import "fmt"

const (
	highDirtyRatioTriggerConstant               = 0.5
	highDirtyRatioSignificanceConstant          = 0.8
	highDirtyRatioEvidenceTemplateConstant      = "%d of %d repositories uncommitted"
	highDirtyRatioRecommendationMessageConstant = "batch commit workflow needed"
)

// PatternRule pairs a pattern tag with its pure evaluation function.
//
// Rules are evaluated in definition order and each emits at most one pattern.
type PatternRule struct {
	Tag      PatternTag
	Evaluate func(health GitHealth, repositoryRecords []RepositoryRecord) (Pattern, bool)
}

var patternRules = []PatternRule{
	{
		Tag:      PatternTagHighDirtyRatio,
		Evaluate: evaluateHighDirtyRatio,
	},
}

// DetectPatterns evaluates every pattern rule against the aggregate and
// returns the fired patterns in rule-definition order.
func DetectPatterns(health GitHealth, repositoryRecords []RepositoryRecord) []Pattern {
	var detectedPatterns []Pattern
	for ruleIndex := range patternRules {
		detectedPattern, fired := patternRules[ruleIndex].Evaluate(health, repositoryRecords)
		if fired {
			detectedPatterns = append(detectedPatterns, detectedPattern)
		}
	}
	return detectedPatterns
}

// evaluateHighDirtyRatio fires when strictly more than half of the observed
// repositories carry uncommitted changes. An exact half does not trigger.
func evaluateHighDirtyRatio(health GitHealth, repositoryRecords []RepositoryRecord) (Pattern, bool) {
	if health.TotalRepositories == 0 {
		return Pattern{}, false
	}
	dirtyRatio := ratioOf(health.DirtyRepositories, health.TotalRepositories)
	if dirtyRatio <= highDirtyRatioTriggerConstant {
		return Pattern{}, false
	}
	detectedPattern := Pattern{
		Tag:            PatternTagHighDirtyRatio,
		Significance:   highDirtyRatioSignificanceConstant,
		Evidence:       fmt.Sprintf(highDirtyRatioEvidenceTemplateConstant, health.DirtyRepositories, health.TotalRepositories),
		Recommendation: highDirtyRatioRecommendationMessageConstant,
	}
	return detectedPattern, true
}
