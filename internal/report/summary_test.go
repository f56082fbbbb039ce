package report_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/temirov/vitals/internal/assess"
	"github.com/temirov/vitals/internal/report"
)

func TestNewSummaryDerivesTrendAndVelocity(testInstance *testing.T) {
	observationContext := assess.ObservationContext{
		WorkspaceIdentifier: "team-platform",
		GeneratedAt:         time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC),
		Git: assess.GitHealth{
			TotalRepositories: 4,
			CleanRepositories: 4,
			TotalCommits:      31,
			HealthScore:       100,
		},
	}
	observedNode := assess.NewObservationNode(observationContext, observationContext, nil, nil)

	repositoryRecords := []assess.RepositoryRecord{{Path: "/workspace/project-01", Name: "project-01"}}
	assessmentSummary := report.NewSummary(observedNode, repositoryRecords)

	_, identifierParseError := uuid.Parse(assessmentSummary.RunIdentifier)
	require.NoError(testInstance, identifierParseError)
	require.Equal(testInstance, "vitals", assessmentSummary.ToolName)
	require.NotEmpty(testInstance, assessmentSummary.ToolVersion)
	require.Equal(testInstance, observationContext, assessmentSummary.Context)
	require.Equal(testInstance, assess.HealthTrendHealthy, assessmentSummary.Trend)
	require.Equal(testInstance, 31, assessmentSummary.TotalCommits)
	require.Equal(testInstance, repositoryRecords, assessmentSummary.Repositories)
	require.Empty(testInstance, assessmentSummary.Patterns)
	require.Empty(testInstance, assessmentSummary.Anomalies)
}

func TestNewSummaryStampsUniqueRunIdentifiers(testInstance *testing.T) {
	observationContext := assess.ObservationContext{WorkspaceIdentifier: "team-platform"}
	observedNode := assess.NewObservationNode(observationContext, observationContext, nil, nil)

	firstSummary := report.NewSummary(observedNode, nil)
	secondSummary := report.NewSummary(observedNode, nil)
	require.NotEqual(testInstance, firstSummary.RunIdentifier, secondSummary.RunIdentifier)
}
