package scan

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/vitals/internal/assess"
	"github.com/temirov/vitals/internal/report"
)

const (
	defaultRootPathConstant            = "."
	debugDiscoveredTemplateConstant    = "Discovered %d repositories under %s\n"
	reportWrittenTemplateConstant      = "Report written to %s\n"
	assessmentCompletedMessageConstant = "workspace assessment completed"
)

const (
	logFieldWorkspaceIdentifierConstant = "workspace"
	logFieldRepositoryCountConstant     = "repository_count"
	logFieldHealthScoreConstant         = "health_score"
	logFieldTrendConstant               = "trend"
)

const (
	outputDirectoryPermissionsConstant fs.FileMode = 0o755
	outputFilePermissionsConstant      fs.FileMode = 0o644
)

// Service coordinates repository discovery, fact collection, assessment, and report rendering.
type Service struct {
	discoverer        RepositoryDiscoverer
	recordCollector   RecordCollector
	metricsCalculator MetricsCalculator
	reportRenderer    ReportRenderer
	fileSystem        FileSystem
	logger            *zap.Logger
	outputWriter      io.Writer
	errorWriter       io.Writer
	clock             assess.Clock
}

// NewService constructs a Service using the provided dependencies.
func NewService(discoverer RepositoryDiscoverer, recordCollector RecordCollector, metricsCalculator MetricsCalculator, reportRenderer ReportRenderer, fileSystem FileSystem, logger *zap.Logger, outputWriter io.Writer, errorWriter io.Writer, clock assess.Clock) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = assess.SystemClock{}
	}
	return &Service{
		discoverer:        discoverer,
		recordCollector:   recordCollector,
		metricsCalculator: metricsCalculator,
		reportRenderer:    reportRenderer,
		fileSystem:        fileSystem,
		logger:            logger,
		outputWriter:      outputWriter,
		errorWriter:       errorWriter,
		clock:             clock,
	}
}

// Run executes the scan workflow according to the provided options.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	roots := options.Roots
	if len(roots) == 0 {
		roots = []string{defaultRootPathConstant}
	}

	workspaceIdentifier := strings.TrimSpace(options.WorkspaceIdentifier)
	if len(workspaceIdentifier) == 0 {
		workspaceIdentifier = service.deriveWorkspaceIdentifier(roots[0])
	}

	repositories, discoveryError := service.discoverer.DiscoverRepositories(roots)
	if discoveryError != nil {
		return discoveryError
	}

	if options.DebugOutput {
		fmt.Fprintf(service.errorWriter, debugDiscoveredTemplateConstant, len(repositories), strings.Join(roots, " "))
	}

	repositoryRecords, collectionError := service.recordCollector.CollectRecords(executionContext, repositories)
	if collectionError != nil {
		return collectionError
	}

	workspaceMetrics, metricsError := service.metricsCalculator.CalculateMetrics(roots, repositories)
	if metricsError != nil {
		return metricsError
	}

	detectionThresholds := assess.DefaultDetectionThresholds()
	if options.UnpushedLimit > 0 {
		detectionThresholds.UnpushedRepositoryLimit = options.UnpushedLimit
	}

	assessmentPipeline := assess.NewAssessmentPipelineWithThresholds(service.clock, detectionThresholds)
	assessmentConfig := assess.Config{
		WorkspaceIdentifier: workspaceIdentifier,
		MaxScanDepth:        options.MaxDepth,
		ExcludePatterns:     options.ExcludePatterns,
	}

	observedNode, assessmentError := assessmentPipeline.Assess(assessmentConfig, repositoryRecords, workspaceMetrics)
	if assessmentError != nil {
		return assessmentError
	}

	assessmentSummary := report.NewSummary(observedNode, repositoryRecords)

	service.logger.Info(assessmentCompletedMessageConstant,
		zap.String(logFieldWorkspaceIdentifierConstant, workspaceIdentifier),
		zap.Int(logFieldRepositoryCountConstant, len(repositoryRecords)),
		zap.Float64(logFieldHealthScoreConstant, assessmentSummary.Context.Git.HealthScore),
		zap.String(logFieldTrendConstant, string(assessmentSummary.Trend)),
	)

	renderedReport, renderError := service.reportRenderer.Render(assessmentSummary)
	if renderError != nil {
		return renderError
	}

	return service.writeReport(renderedReport, options.OutputPath)
}

func (service *Service) deriveWorkspaceIdentifier(rootPath string) string {
	absolutePath, absError := service.fileSystem.Abs(rootPath)
	if absError != nil {
		absolutePath = rootPath
	}
	return filepath.Base(absolutePath)
}

func (service *Service) writeReport(renderedReport []byte, outputPath string) error {
	trimmedPath := strings.TrimSpace(outputPath)
	if len(trimmedPath) == 0 {
		_, writeError := service.outputWriter.Write(renderedReport)
		return writeError
	}

	if mkdirError := service.fileSystem.MkdirAll(filepath.Dir(trimmedPath), outputDirectoryPermissionsConstant); mkdirError != nil {
		return mkdirError
	}
	if writeError := service.fileSystem.WriteFile(trimmedPath, renderedReport, outputFilePermissionsConstant); writeError != nil {
		return writeError
	}

	fmt.Fprintf(service.outputWriter, reportWrittenTemplateConstant, trimmedPath)
	return nil
}
