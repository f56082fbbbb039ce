package assess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/vitals/internal/assess"
)

func TestDetectAnomaliesUnpushedCountBoundary(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name              string
		repositoryRecords []assess.RepositoryRecord
		thresholds        assess.DetectionThresholds
		expectedAnomalies []assess.Anomaly
	}{
		{
			name:              "at_default_limit_does_not_fire",
			repositoryRecords: buildRepositoryRecords(8, 0, 5, 1),
			thresholds:        assess.DefaultDetectionThresholds(),
			expectedAnomalies: nil,
		},
		{
			name:              "above_default_limit_fires",
			repositoryRecords: buildRepositoryRecords(10, 0, 6, 1),
			thresholds:        assess.DefaultDetectionThresholds(),
			expectedAnomalies: []assess.Anomaly{
				{
					Tag:            assess.AnomalyTagHighUnpushedCount,
					Severity:       assess.AnomalySeverityMedium,
					Deviation:      0.6,
					Description:    "6 repositories with unpushed commits",
					Recommendation: "review and push or create PRs",
				},
			},
		},
		{
			name:              "custom_limit_lowers_trigger",
			repositoryRecords: buildRepositoryRecords(4, 0, 3, 1),
			thresholds:        assess.DetectionThresholds{UnpushedRepositoryLimit: 2},
			expectedAnomalies: []assess.Anomaly{
				{
					Tag:            assess.AnomalyTagHighUnpushedCount,
					Severity:       assess.AnomalySeverityMedium,
					Deviation:      0.75,
					Description:    "3 repositories with unpushed commits",
					Recommendation: "review and push or create PRs",
				},
			},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			subTest.Parallel()

			aggregator := assess.NewHealthAggregator(frozenClock{instant: frozenInstant})
			aggregatedHealth, _ := aggregator.Aggregate(testWorkspaceIdentifierConstant, testCase.repositoryRecords, assess.WorkspaceMetrics{})

			detectedAnomalies := assess.DetectAnomalies(aggregatedHealth, testCase.repositoryRecords, testCase.thresholds)
			require.Equal(subTest, testCase.expectedAnomalies, detectedAnomalies)
		})
	}
}
