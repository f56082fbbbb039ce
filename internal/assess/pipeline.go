package assess

import (
	"fmt"
	"strings"
)

const (
	invalidConfigurationTemplateConstant       = "invalid configuration: %s"
	workspaceIdentifierRequiredMessageConstant = "workspace identifier must not be empty"
)

// InvalidConfigError reports a configuration rejected by pipeline validation.
type InvalidConfigError struct {
	Reason string
}

// Error describes the configuration failure.
func (configurationError InvalidConfigError) Error() string {
	return fmt.Sprintf(invalidConfigurationTemplateConstant, configurationError.Reason)
}

// AssessmentPipeline validates configuration and assembles the initial
// observation node from repository records and workspace metrics.
type AssessmentPipeline struct {
	aggregator *HealthAggregator
	thresholds DetectionThresholds
}

// NewAssessmentPipeline constructs a pipeline with the default anomaly thresholds.
func NewAssessmentPipeline(clock Clock) *AssessmentPipeline {
	return NewAssessmentPipelineWithThresholds(clock, DefaultDetectionThresholds())
}

// NewAssessmentPipelineWithThresholds constructs a pipeline using the provided anomaly thresholds.
func NewAssessmentPipelineWithThresholds(clock Clock, thresholds DetectionThresholds) *AssessmentPipeline {
	return &AssessmentPipeline{
		aggregator: NewHealthAggregator(clock),
		thresholds: thresholds,
	}
}

// Assess validates the configuration, aggregates the records, runs both
// detectors, and returns the initial node focused on its own context.
//
// Validation precedes all aggregation: a blank workspace identifier returns
// InvalidConfigError and no partial result.
func (pipeline *AssessmentPipeline) Assess(configuration Config, repositoryRecords []RepositoryRecord, workspaceMetrics WorkspaceMetrics) (ObservationNode[ObservationContext], error) {
	trimmedIdentifier := strings.TrimSpace(configuration.WorkspaceIdentifier)
	if len(trimmedIdentifier) == 0 {
		return ObservationNode[ObservationContext]{}, InvalidConfigError{Reason: workspaceIdentifierRequiredMessageConstant}
	}

	health, observationContext := pipeline.aggregator.Aggregate(trimmedIdentifier, repositoryRecords, workspaceMetrics)
	detectedPatterns := DetectPatterns(health, repositoryRecords)
	detectedAnomalies := DetectAnomalies(health, repositoryRecords, pipeline.thresholds)

	return NewObservationNode(observationContext, observationContext, detectedPatterns, detectedAnomalies), nil
}
