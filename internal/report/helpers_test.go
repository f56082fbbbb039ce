package report_test

import (
	"time"

	"github.com/temirov/vitals/internal/assess"
	"github.com/temirov/vitals/internal/report"
)

const sampleRunIdentifierConstant = "run-0001"

var sampleGeneratedInstant = time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)

func sampleSummary() report.Summary {
	return report.Summary{
		RunIdentifier: sampleRunIdentifierConstant,
		ToolName:      "vitals",
		ToolVersion:   "0.1.0",
		Context: assess.ObservationContext{
			WorkspaceIdentifier: "team-platform",
			GeneratedAt:         sampleGeneratedInstant,
			Git: assess.GitHealth{
				TotalRepositories:    5,
				CleanRepositories:    2,
				DirtyRepositories:    3,
				UnpushedRepositories: 0,
				TotalCommits:         50,
				HealthScore:          40,
			},
			Metrics: assess.WorkspaceMetrics{
				FileCounts:   map[string]int{".go": 120, ".md": 8},
				ProjectCount: 5,
			},
		},
		Patterns: []assess.Pattern{
			{
				Tag:            assess.PatternTagHighDirtyRatio,
				Significance:   0.8,
				Evidence:       "3 of 5 repositories uncommitted",
				Recommendation: "batch commit workflow needed",
			},
		},
		Anomalies: []assess.Anomaly{
			{
				Tag:            assess.AnomalyTagHighUnpushedCount,
				Severity:       assess.AnomalySeverityMedium,
				Deviation:      0.6,
				Description:    "6 repositories with unpushed commits",
				Recommendation: "review and push or create PRs",
			},
		},
		Trend:        assess.HealthTrendCritical,
		TotalCommits: 50,
		Repositories: []assess.RepositoryRecord{
			{
				Path:        "/workspace/project-01",
				Name:        "project-01",
				Branch:      "main",
				Clean:       false,
				CommitCount: 10,
				LastCommit:  assess.NewCommitTimestamp(time.Date(2025, time.February, 2, 12, 0, 0, 0, time.UTC)),
				HasUpstream: true,
			},
			{
				Path:        "/workspace/project-02",
				Name:        "project-02",
				Branch:      "main",
				Clean:       true,
				CommitCount: 40,
				HasUpstream: true,
			},
		},
	}
}

func emptySummary() report.Summary {
	return report.Summary{
		RunIdentifier: sampleRunIdentifierConstant,
		ToolName:      "vitals",
		ToolVersion:   "0.1.0",
		Context: assess.ObservationContext{
			WorkspaceIdentifier: "team-platform",
			GeneratedAt:         sampleGeneratedInstant,
			Metrics:             assess.WorkspaceMetrics{FileCounts: map[string]int{}},
		},
		Trend: assess.HealthTrendCritical,
	}
}
