package report

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/temirov/vitals/internal/assess"
)

const (
	markdownTitleTemplateConstant             = "# Workspace Health: %s\n\n"
	markdownGeneratedTemplateConstant         = "Generated %s by %s %s (run %s)\n\n"
	markdownSummaryHeadingConstant            = "## Summary\n\n"
	markdownMetricTableHeaderConstant         = "| Metric | Value |\n| --- | --- |\n"
	markdownMetricRowTemplateConstant         = "| %s | %s |\n"
	markdownRepositoriesHeadingConstant       = "## Repositories\n\n"
	markdownRepositoryTableHeaderConstant     = "| Name | Branch | State | Ahead | Commits | Last commit |\n| --- | --- | --- | --- | --- | --- |\n"
	markdownRepositoryRowTemplateConstant     = "| %s | %s | %s | %d | %d | %s |\n"
	markdownPatternsHeadingConstant           = "## Patterns\n\n"
	markdownPatternRowTemplateConstant        = "- **%s** (significance %.2f): %s\n"
	markdownAnomaliesHeadingConstant          = "## Anomalies\n\n"
	markdownAnomalyRowTemplateConstant        = "- **%s** (%s, deviation %.2f): %s\n"
	markdownRecommendationsHeadingConstant    = "## Recommendations\n\n"
	markdownRecommendationRowTemplateConstant = "%d. %s\n"
	markdownEmptySectionConstant              = "None detected.\n"
	markdownNoRepositoriesConstant            = "No repositories discovered.\n"
	markdownAbsentCellConstant                = "-"
	markdownSectionSeparatorConstant          = "\n"
)

// MarkdownRenderer renders an assessment summary as a Markdown page.
type MarkdownRenderer struct{}

// NewMarkdownRenderer constructs a Markdown renderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render writes the title, summary table, repository table, pattern and
// anomaly lists, and a deduplicated recommendation list.
func (renderer *MarkdownRenderer) Render(assessmentSummary Summary) ([]byte, error) {
	var documentBuffer bytes.Buffer

	fmt.Fprintf(&documentBuffer, markdownTitleTemplateConstant, assessmentSummary.Context.WorkspaceIdentifier)
	fmt.Fprintf(
		&documentBuffer,
		markdownGeneratedTemplateConstant,
		assessmentSummary.Context.GeneratedAt.Format(time.RFC3339),
		assessmentSummary.ToolName,
		assessmentSummary.ToolVersion,
		assessmentSummary.RunIdentifier,
	)

	renderer.writeSummaryTable(&documentBuffer, assessmentSummary)
	renderer.writeRepositoryTable(&documentBuffer, assessmentSummary.Repositories)
	renderer.writePatternSection(&documentBuffer, assessmentSummary.Patterns)
	renderer.writeAnomalySection(&documentBuffer, assessmentSummary.Anomalies)
	renderer.writeRecommendationSection(&documentBuffer, assessmentSummary)

	return documentBuffer.Bytes(), nil
}

func (renderer *MarkdownRenderer) writeSummaryTable(documentBuffer *bytes.Buffer, assessmentSummary Summary) {
	documentBuffer.WriteString(markdownSummaryHeadingConstant)
	documentBuffer.WriteString(markdownMetricTableHeaderConstant)

	gitHealth := assessmentSummary.Context.Git
	summaryRows := []struct {
		metricName  string
		metricValue string
	}{
		{metricName: "Health score", metricValue: fmt.Sprintf("%.1f", gitHealth.HealthScore)},
		{metricName: "Trend", metricValue: string(assessmentSummary.Trend)},
		{metricName: "Repositories", metricValue: strconv.Itoa(gitHealth.TotalRepositories)},
		{metricName: "Clean", metricValue: strconv.Itoa(gitHealth.CleanRepositories)},
		{metricName: "Dirty", metricValue: strconv.Itoa(gitHealth.DirtyRepositories)},
		{metricName: "Unpushed", metricValue: strconv.Itoa(gitHealth.UnpushedRepositories)},
		{metricName: "Total commits", metricValue: strconv.Itoa(gitHealth.TotalCommits)},
		{metricName: "Tracked projects", metricValue: strconv.Itoa(assessmentSummary.Context.Metrics.ProjectCount)},
	}
	for _, summaryRow := range summaryRows {
		fmt.Fprintf(documentBuffer, markdownMetricRowTemplateConstant, summaryRow.metricName, summaryRow.metricValue)
	}
	documentBuffer.WriteString(markdownSectionSeparatorConstant)
}

func (renderer *MarkdownRenderer) writeRepositoryTable(documentBuffer *bytes.Buffer, repositoryRecords []assess.RepositoryRecord) {
	documentBuffer.WriteString(markdownRepositoriesHeadingConstant)
	if len(repositoryRecords) == 0 {
		documentBuffer.WriteString(markdownNoRepositoriesConstant)
		documentBuffer.WriteString(markdownSectionSeparatorConstant)
		return
	}

	documentBuffer.WriteString(markdownRepositoryTableHeaderConstant)
	for _, repositoryRecord := range repositoryRecords {
		lastCommitCell := markdownAbsentCellConstant
		if repositoryRecord.LastCommit.Present {
			lastCommitCell = repositoryRecord.LastCommit.Time.Format(time.RFC3339)
		}
		fmt.Fprintf(
			documentBuffer,
			markdownRepositoryRowTemplateConstant,
			repositoryRecord.Name,
			repositoryRecord.Branch,
			string(assess.ClassifyRepository(repositoryRecord)),
			repositoryRecord.AheadCount,
			repositoryRecord.CommitCount,
			lastCommitCell,
		)
	}
	documentBuffer.WriteString(markdownSectionSeparatorConstant)
}

func (renderer *MarkdownRenderer) writePatternSection(documentBuffer *bytes.Buffer, patterns []assess.Pattern) {
	documentBuffer.WriteString(markdownPatternsHeadingConstant)
	if len(patterns) == 0 {
		documentBuffer.WriteString(markdownEmptySectionConstant)
		documentBuffer.WriteString(markdownSectionSeparatorConstant)
		return
	}

	for _, detectedPattern := range patterns {
		fmt.Fprintf(
			documentBuffer,
			markdownPatternRowTemplateConstant,
			string(detectedPattern.Tag),
			detectedPattern.Significance,
			detectedPattern.Evidence,
		)
	}
	documentBuffer.WriteString(markdownSectionSeparatorConstant)
}

func (renderer *MarkdownRenderer) writeAnomalySection(documentBuffer *bytes.Buffer, anomalies []assess.Anomaly) {
	documentBuffer.WriteString(markdownAnomaliesHeadingConstant)
	if len(anomalies) == 0 {
		documentBuffer.WriteString(markdownEmptySectionConstant)
		documentBuffer.WriteString(markdownSectionSeparatorConstant)
		return
	}

	for _, detectedAnomaly := range anomalies {
		fmt.Fprintf(
			documentBuffer,
			markdownAnomalyRowTemplateConstant,
			string(detectedAnomaly.Tag),
			string(detectedAnomaly.Severity),
			detectedAnomaly.Deviation,
			detectedAnomaly.Description,
		)
	}
	documentBuffer.WriteString(markdownSectionSeparatorConstant)
}

func (renderer *MarkdownRenderer) writeRecommendationSection(documentBuffer *bytes.Buffer, assessmentSummary Summary) {
	recommendations := collectRecommendations(assessmentSummary)
	if len(recommendations) == 0 {
		return
	}

	documentBuffer.WriteString(markdownRecommendationsHeadingConstant)
	for recommendationIndex, recommendation := range recommendations {
		fmt.Fprintf(documentBuffer, markdownRecommendationRowTemplateConstant, recommendationIndex+1, recommendation)
	}
}

// collectRecommendations gathers pattern recommendations followed by anomaly
// recommendations, dropping duplicates while preserving order.
func collectRecommendations(assessmentSummary Summary) []string {
	seenRecommendations := make(map[string]struct{})
	var recommendations []string

	appendRecommendation := func(recommendation string) {
		if recommendation == "" {
			return
		}
		if _, alreadySeen := seenRecommendations[recommendation]; alreadySeen {
			return
		}
		seenRecommendations[recommendation] = struct{}{}
		recommendations = append(recommendations, recommendation)
	}

	for _, detectedPattern := range assessmentSummary.Patterns {
		appendRecommendation(detectedPattern.Recommendation)
	}
	for _, detectedAnomaly := range assessmentSummary.Anomalies {
		appendRecommendation(detectedAnomaly.Recommendation)
	}
	return recommendations
}
