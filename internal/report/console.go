package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/temirov/vitals/internal/assess"
)

const (
	consoleTitlePrefixConstant               = "Workspace Health: "
	consoleGeneratedTemplateConstant         = "Generated %s (run %s)\n\n"
	consoleScoreTemplateConstant             = "Score %.1f  %s\n\n"
	consoleStateRowTemplateConstant          = "  %s %-9s %d\n"
	consoleTotalsTemplateConstant            = "\nRepositories: %d   Commits: %d   Projects: %d\n"
	consolePatternsHeadingConstant           = "\nPatterns:\n"
	consolePatternRowTemplateConstant        = "  %s (%.2f): %s\n"
	consoleAnomaliesHeadingConstant          = "\nAnomalies:\n"
	consoleAnomalyRowTemplateConstant        = "  %s [%s] (%.2f): %s\n"
	consoleRecommendationsHeadingConstant    = "\nRecommendations:\n"
	consoleRecommendationRowTemplateConstant = "  %d. %s\n"
	consoleAllClearMessageConstant           = "\nNo patterns or anomalies detected.\n"
	consoleCleanGlyphConstant                = "✓"
	consoleDirtyGlyphConstant                = "✗"
	consoleUnpushedGlyphConstant             = "▲"
	consoleCleanLabelConstant                = "Clean"
	consoleDirtyLabelConstant                = "Dirty"
	consoleUnpushedLabelConstant             = "Unpushed"
)

// ConsoleRenderer renders a compact terminal summary, optionally colorized.
type ConsoleRenderer struct {
	colorized bool
}

// NewConsoleRenderer constructs a console renderer. When colorized is false
// every painter is disabled and the output carries no escape sequences.
func NewConsoleRenderer(colorized bool) *ConsoleRenderer {
	return &ConsoleRenderer{colorized: colorized}
}

// Render writes the heading, score line, state counts, totals, detections,
// and recommendations for the assessment summary.
func (renderer *ConsoleRenderer) Render(assessmentSummary Summary) ([]byte, error) {
	var outputBuffer bytes.Buffer

	headingPainter := renderer.painter(color.FgCyan, color.Bold)
	fmt.Fprintf(&outputBuffer, "%s\n", headingPainter(consoleTitlePrefixConstant+assessmentSummary.Context.WorkspaceIdentifier))
	fmt.Fprintf(
		&outputBuffer,
		consoleGeneratedTemplateConstant,
		assessmentSummary.Context.GeneratedAt.Format(time.RFC3339),
		assessmentSummary.RunIdentifier,
	)

	trendPainter := renderer.trendPainter(assessmentSummary.Trend)
	gitHealth := assessmentSummary.Context.Git
	fmt.Fprintf(&outputBuffer, consoleScoreTemplateConstant, gitHealth.HealthScore, trendPainter(string(assessmentSummary.Trend)))

	cleanPainter := renderer.painter(color.FgGreen)
	dirtyPainter := renderer.painter(color.FgRed)
	unpushedPainter := renderer.painter(color.FgYellow)
	fmt.Fprintf(&outputBuffer, consoleStateRowTemplateConstant, cleanPainter(consoleCleanGlyphConstant), consoleCleanLabelConstant, gitHealth.CleanRepositories)
	fmt.Fprintf(&outputBuffer, consoleStateRowTemplateConstant, dirtyPainter(consoleDirtyGlyphConstant), consoleDirtyLabelConstant, gitHealth.DirtyRepositories)
	fmt.Fprintf(&outputBuffer, consoleStateRowTemplateConstant, unpushedPainter(consoleUnpushedGlyphConstant), consoleUnpushedLabelConstant, gitHealth.UnpushedRepositories)

	fmt.Fprintf(
		&outputBuffer,
		consoleTotalsTemplateConstant,
		gitHealth.TotalRepositories,
		assessmentSummary.TotalCommits,
		assessmentSummary.Context.Metrics.ProjectCount,
	)

	renderer.writeDetections(&outputBuffer, assessmentSummary)
	renderer.writeRecommendations(&outputBuffer, assessmentSummary)

	return outputBuffer.Bytes(), nil
}

func (renderer *ConsoleRenderer) writeDetections(outputBuffer *bytes.Buffer, assessmentSummary Summary) {
	if len(assessmentSummary.Patterns) == 0 && len(assessmentSummary.Anomalies) == 0 {
		outputBuffer.WriteString(consoleAllClearMessageConstant)
		return
	}

	if len(assessmentSummary.Patterns) > 0 {
		outputBuffer.WriteString(consolePatternsHeadingConstant)
		patternPainter := renderer.painter(color.FgMagenta)
		for _, detectedPattern := range assessmentSummary.Patterns {
			fmt.Fprintf(
				outputBuffer,
				consolePatternRowTemplateConstant,
				patternPainter(string(detectedPattern.Tag)),
				detectedPattern.Significance,
				detectedPattern.Evidence,
			)
		}
	}

	if len(assessmentSummary.Anomalies) > 0 {
		outputBuffer.WriteString(consoleAnomaliesHeadingConstant)
		for _, detectedAnomaly := range assessmentSummary.Anomalies {
			severityPainter := renderer.severityPainter(detectedAnomaly.Severity)
			fmt.Fprintf(
				outputBuffer,
				consoleAnomalyRowTemplateConstant,
				string(detectedAnomaly.Tag),
				severityPainter(string(detectedAnomaly.Severity)),
				detectedAnomaly.Deviation,
				detectedAnomaly.Description,
			)
		}
	}
}

func (renderer *ConsoleRenderer) writeRecommendations(outputBuffer *bytes.Buffer, assessmentSummary Summary) {
	recommendations := collectRecommendations(assessmentSummary)
	if len(recommendations) == 0 {
		return
	}

	outputBuffer.WriteString(consoleRecommendationsHeadingConstant)
	for recommendationIndex, recommendation := range recommendations {
		fmt.Fprintf(outputBuffer, consoleRecommendationRowTemplateConstant, recommendationIndex+1, recommendation)
	}
}

func (renderer *ConsoleRenderer) painter(attributes ...color.Attribute) func(...interface{}) string {
	colorPainter := color.New(attributes...)
	if renderer.colorized {
		colorPainter.EnableColor()
	} else {
		colorPainter.DisableColor()
	}
	return colorPainter.SprintFunc()
}

func (renderer *ConsoleRenderer) trendPainter(healthTrend assess.HealthTrend) func(...interface{}) string {
	switch healthTrend {
	case assess.HealthTrendHealthy:
		return renderer.painter(color.FgGreen)
	case assess.HealthTrendNeedsCleanup:
		return renderer.painter(color.FgYellow)
	default:
		return renderer.painter(color.FgRed, color.Bold)
	}
}

func (renderer *ConsoleRenderer) severityPainter(anomalySeverity assess.AnomalySeverity) func(...interface{}) string {
	switch anomalySeverity {
	case assess.AnomalySeverityHigh:
		return renderer.painter(color.FgRed, color.Bold)
	case assess.AnomalySeverityMedium:
		return renderer.painter(color.FgYellow)
	default:
		return renderer.painter(color.FgGreen)
	}
}
