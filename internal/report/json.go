package report

import (
	"encoding/json"
	"time"

	"github.com/temirov/vitals/internal/assess"
)

type jsonRunSection struct {
	Identifier  string    `json:"id"`
	Tool        string    `json:"tool"`
	Version     string    `json:"version"`
	GeneratedAt time.Time `json:"generated_at"`
}

type jsonWorkspaceSection struct {
	Identifier   string         `json:"identifier"`
	ProjectCount int            `json:"project_count"`
	FileCounts   map[string]int `json:"file_counts"`
}

type jsonGitHealthSection struct {
	TotalRepositories    int     `json:"total_repositories"`
	CleanRepositories    int     `json:"clean_repositories"`
	DirtyRepositories    int     `json:"dirty_repositories"`
	UnpushedRepositories int     `json:"unpushed_repositories"`
	TotalCommits         int     `json:"total_commits"`
	HealthScore          float64 `json:"health_score"`
}

type jsonPatternSection struct {
	Tag            string  `json:"tag"`
	Significance   float64 `json:"significance"`
	Evidence       string  `json:"evidence"`
	Recommendation string  `json:"recommendation"`
}

type jsonAnomalySection struct {
	Tag            string  `json:"tag"`
	Severity       string  `json:"severity"`
	Deviation      float64 `json:"deviation"`
	Description    string  `json:"description"`
	Recommendation string  `json:"recommendation"`
}

type jsonRepositorySection struct {
	Path        string     `json:"path"`
	Name        string     `json:"name"`
	Branch      string     `json:"branch"`
	State       string     `json:"state"`
	AheadCount  int        `json:"ahead_count"`
	CommitCount int        `json:"commit_count"`
	HasUpstream bool       `json:"has_upstream"`
	LastCommit  *time.Time `json:"last_commit,omitempty"`
}

type jsonReportDocument struct {
	Run          jsonRunSection          `json:"run"`
	Workspace    jsonWorkspaceSection    `json:"workspace"`
	GitHealth    jsonGitHealthSection    `json:"git_health"`
	Trend        string                  `json:"trend"`
	Patterns     []jsonPatternSection    `json:"patterns"`
	Anomalies    []jsonAnomalySection    `json:"anomalies"`
	Repositories []jsonRepositorySection `json:"repositories"`
}

// JSONRenderer renders an assessment summary as an indented JSON document.
type JSONRenderer struct{}

// NewJSONRenderer constructs a JSON renderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the summary with stable field names. Empty pattern, anomaly,
// and repository collections render as empty arrays, never null.
func (renderer *JSONRenderer) Render(assessmentSummary Summary) ([]byte, error) {
	reportDocument := jsonReportDocument{
		Run: jsonRunSection{
			Identifier:  assessmentSummary.RunIdentifier,
			Tool:        assessmentSummary.ToolName,
			Version:     assessmentSummary.ToolVersion,
			GeneratedAt: assessmentSummary.Context.GeneratedAt,
		},
		Workspace: jsonWorkspaceSection{
			Identifier:   assessmentSummary.Context.WorkspaceIdentifier,
			ProjectCount: assessmentSummary.Context.Metrics.ProjectCount,
			FileCounts:   assessmentSummary.Context.Metrics.FileCounts,
		},
		GitHealth: jsonGitHealthSection{
			TotalRepositories:    assessmentSummary.Context.Git.TotalRepositories,
			CleanRepositories:    assessmentSummary.Context.Git.CleanRepositories,
			DirtyRepositories:    assessmentSummary.Context.Git.DirtyRepositories,
			UnpushedRepositories: assessmentSummary.Context.Git.UnpushedRepositories,
			TotalCommits:         assessmentSummary.Context.Git.TotalCommits,
			HealthScore:          assessmentSummary.Context.Git.HealthScore,
		},
		Trend:        string(assessmentSummary.Trend),
		Patterns:     buildJSONPatternSections(assessmentSummary.Patterns),
		Anomalies:    buildJSONAnomalySections(assessmentSummary.Anomalies),
		Repositories: buildJSONRepositorySections(assessmentSummary.Repositories),
	}

	encodedDocument, encodingError := json.MarshalIndent(reportDocument, "", "  ")
	if encodingError != nil {
		return nil, encodingError
	}
	return append(encodedDocument, '\n'), nil
}

func buildJSONPatternSections(patterns []assess.Pattern) []jsonPatternSection {
	patternSections := make([]jsonPatternSection, 0, len(patterns))
	for _, detectedPattern := range patterns {
		patternSections = append(patternSections, jsonPatternSection{
			Tag:            string(detectedPattern.Tag),
			Significance:   detectedPattern.Significance,
			Evidence:       detectedPattern.Evidence,
			Recommendation: detectedPattern.Recommendation,
		})
	}
	return patternSections
}

func buildJSONAnomalySections(anomalies []assess.Anomaly) []jsonAnomalySection {
	anomalySections := make([]jsonAnomalySection, 0, len(anomalies))
	for _, detectedAnomaly := range anomalies {
		anomalySections = append(anomalySections, jsonAnomalySection{
			Tag:            string(detectedAnomaly.Tag),
			Severity:       string(detectedAnomaly.Severity),
			Deviation:      detectedAnomaly.Deviation,
			Description:    detectedAnomaly.Description,
			Recommendation: detectedAnomaly.Recommendation,
		})
	}
	return anomalySections
}

func buildJSONRepositorySections(repositoryRecords []assess.RepositoryRecord) []jsonRepositorySection {
	repositorySections := make([]jsonRepositorySection, 0, len(repositoryRecords))
	for _, repositoryRecord := range repositoryRecords {
		repositorySection := jsonRepositorySection{
			Path:        repositoryRecord.Path,
			Name:        repositoryRecord.Name,
			Branch:      repositoryRecord.Branch,
			State:       string(assess.ClassifyRepository(repositoryRecord)),
			AheadCount:  repositoryRecord.AheadCount,
			CommitCount: repositoryRecord.CommitCount,
			HasUpstream: repositoryRecord.HasUpstream,
		}
		if repositoryRecord.LastCommit.Present {
			lastCommitTime := repositoryRecord.LastCommit.Time
			repositorySection.LastCommit = &lastCommitTime
		}
		repositorySections = append(repositorySections, repositorySection)
	}
	return repositorySections
}
