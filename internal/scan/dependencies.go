package scan

import (
	"context"
	"io/fs"

	"go.uber.org/zap"

	"github.com/temirov/vitals/internal/assess"
	"github.com/temirov/vitals/internal/execshell"
	"github.com/temirov/vitals/internal/filesystem"
	"github.com/temirov/vitals/internal/gitrepo"
	"github.com/temirov/vitals/internal/report"
	"github.com/temirov/vitals/internal/workspace"
)

// RepositoryDiscoverer finds git repositories rooted under the provided paths.
type RepositoryDiscoverer interface {
	DiscoverRepositories(roots []string) ([]string, error)
}

// RecordCollector gathers one assessment record per discovered repository.
type RecordCollector interface {
	CollectRecords(executionContext context.Context, repositoryPaths []string) ([]assess.RepositoryRecord, error)
}

// MetricsCalculator computes workspace-wide file metrics.
type MetricsCalculator interface {
	CalculateMetrics(roots []string, repositories []string) (assess.WorkspaceMetrics, error)
}

// ReportRenderer renders a completed assessment summary into output bytes.
type ReportRenderer interface {
	Render(assessmentSummary report.Summary) ([]byte, error)
}

// FileSystem provides filesystem operations required by the scan workflow.
type FileSystem interface {
	Abs(path string) (string, error)
	MkdirAll(path string, permissions fs.FileMode) error
	WriteFile(path string, data []byte, permissions fs.FileMode) error
}

// GitExecutor exposes the subset of shell execution used by the scan command.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// ResolveRepositoryDiscoverer returns the provided discoverer or a filesystem-backed default.
func ResolveRepositoryDiscoverer(existing RepositoryDiscoverer, discoveryOptions workspace.DiscoveryOptions) RepositoryDiscoverer {
	if existing != nil {
		return existing
	}
	return workspace.NewFilesystemRepositoryDiscoverer(discoveryOptions)
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default.
func ResolveGitExecutor(existing GitExecutor, logger *zap.Logger, eventObserver execshell.CommandEventObserver) (GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner)
	if creationError != nil {
		return nil, creationError
	}
	shellExecutor.SetEventObserver(eventObserver)
	return shellExecutor, nil
}

// ResolveRepositoryInspector returns the provided inspector or constructs a git-backed repository manager.
func ResolveRepositoryInspector(existing workspace.RepositoryInspector, gitExecutor GitExecutor) (workspace.RepositoryInspector, error) {
	if existing != nil {
		return existing, nil
	}
	return gitrepo.NewRepositoryManager(gitExecutor)
}

// ResolveRecordCollector returns the provided collector or constructs one over the inspector.
func ResolveRecordCollector(existing RecordCollector, logger *zap.Logger, inspector workspace.RepositoryInspector, concurrency int) (RecordCollector, error) {
	if existing != nil {
		return existing, nil
	}
	return workspace.NewRecordCollector(logger, inspector, concurrency)
}

// ResolveMetricsCalculator returns the provided calculator or a walking default.
func ResolveMetricsCalculator(existing MetricsCalculator, excludePatterns []string) MetricsCalculator {
	if existing != nil {
		return existing
	}
	return workspace.NewMetricsCalculator(excludePatterns)
}

// ResolveReportRenderer returns the provided renderer or the renderer matching the format.
func ResolveReportRenderer(existing ReportRenderer, outputFormat OutputFormat, colorized bool) ReportRenderer {
	if existing != nil {
		return existing
	}

	switch outputFormat {
	case OutputFormatJSON:
		return report.NewJSONRenderer()
	case OutputFormatMarkdown:
		return report.NewMarkdownRenderer()
	default:
		return report.NewConsoleRenderer(colorized)
	}
}

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing FileSystem) FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}
