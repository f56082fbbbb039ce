package workspace

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/vitals/internal/assess"
)

const (
	defaultCollectionConcurrencyConstant        = 4
	unknownBranchPlaceholderConstant            = "UNKNOWN"
	loggerNotConfiguredMessageConstant          = "record collector requires a logger"
	inspectorNotConfiguredMessageConstant       = "record collector requires a repository inspector"
	logMessageNonGitPathSkippedConstant         = "Skipping path without git repository"
	logMessageWorktreeStatusUnavailableConstant = "Worktree status unavailable"
	logMessageBranchUnavailableConstant         = "Current branch unavailable"
	logMessageUpstreamUnavailableConstant       = "Upstream lookup failed"
	logMessageAheadCountUnavailableConstant     = "Unpushed commit count unavailable"
	logMessageCommitCountUnavailableConstant    = "Commit count unavailable"
	logMessageLastCommitUnavailableConstant     = "Last commit timestamp unavailable"
	logFieldRepositoryPathConstant              = "repository"
)

// Collector construction errors.
var (
	ErrCollectorLoggerNotConfigured     = errors.New(loggerNotConfiguredMessageConstant)
	ErrRepositoryInspectorNotConfigured = errors.New(inspectorNotConfiguredMessageConstant)
)

// RepositoryInspector exposes the git facts gathered for each repository record.
type RepositoryInspector interface {
	IsGitRepository(executionContext context.Context, repositoryPath string) bool
	CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error)
	GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	HasUpstream(executionContext context.Context, repositoryPath string) (bool, error)
	CountCommitsAhead(executionContext context.Context, repositoryPath string) (int, error)
	CountCommits(executionContext context.Context, repositoryPath string) (int, error)
	GetLastCommitTimestamp(executionContext context.Context, repositoryPath string) (time.Time, bool, error)
}

// RecordCollector turns discovered repository paths into assessment records.
//
// Fact failures degrade the affected record rather than aborting collection;
// only a path that is not a git repository drops out of the result.
type RecordCollector struct {
	logger      *zap.Logger
	inspector   RepositoryInspector
	concurrency int
}

// NewRecordCollector validates dependencies and builds a collector. A
// concurrency of zero or less falls back to the package default.
func NewRecordCollector(logger *zap.Logger, inspector RepositoryInspector, concurrency int) (*RecordCollector, error) {
	if logger == nil {
		return nil, ErrCollectorLoggerNotConfigured
	}
	if inspector == nil {
		return nil, ErrRepositoryInspectorNotConfigured
	}
	if concurrency <= 0 {
		concurrency = defaultCollectionConcurrencyConstant
	}

	return &RecordCollector{logger: logger, inspector: inspector, concurrency: concurrency}, nil
}

// CollectRecords inspects every repository concurrently and returns one record
// per git repository, preserving the order of repositoryPaths.
func (collector *RecordCollector) CollectRecords(executionContext context.Context, repositoryPaths []string) ([]assess.RepositoryRecord, error) {
	collectedRecords := make([]assess.RepositoryRecord, len(repositoryPaths))
	includeRecord := make([]bool, len(repositoryPaths))

	collectionGroup, collectionContext := errgroup.WithContext(executionContext)
	collectionGroup.SetLimit(collector.concurrency)
	for pathIndex, repositoryPath := range repositoryPaths {
		pathIndex, repositoryPath := pathIndex, repositoryPath
		collectionGroup.Go(func() error {
			repositoryRecord, isRepository := collector.collectRecord(collectionContext, repositoryPath)
			if isRepository {
				collectedRecords[pathIndex] = repositoryRecord
				includeRecord[pathIndex] = true
			}
			return nil
		})
	}
	// Workers never return errors; failures degrade the affected record.
	_ = collectionGroup.Wait()

	orderedRecords := make([]assess.RepositoryRecord, 0, len(repositoryPaths))
	for recordIndex := range collectedRecords {
		if includeRecord[recordIndex] {
			orderedRecords = append(orderedRecords, collectedRecords[recordIndex])
		}
	}
	return orderedRecords, nil
}

func (collector *RecordCollector) collectRecord(executionContext context.Context, repositoryPath string) (assess.RepositoryRecord, bool) {
	if !collector.inspector.IsGitRepository(executionContext, repositoryPath) {
		collector.logger.Debug(logMessageNonGitPathSkippedConstant, zap.String(logFieldRepositoryPathConstant, repositoryPath))
		return assess.RepositoryRecord{}, false
	}

	repositoryRecord := assess.RepositoryRecord{
		Path: repositoryPath,
		Name: filepath.Base(repositoryPath),
	}

	cleanWorktree, worktreeError := collector.inspector.CheckCleanWorktree(executionContext, repositoryPath)
	if worktreeError != nil {
		collector.logFactFailure(logMessageWorktreeStatusUnavailableConstant, repositoryPath, worktreeError)
	}
	repositoryRecord.Clean = cleanWorktree && worktreeError == nil

	currentBranch, branchError := collector.inspector.GetCurrentBranch(executionContext, repositoryPath)
	if branchError != nil {
		collector.logFactFailure(logMessageBranchUnavailableConstant, repositoryPath, branchError)
		currentBranch = unknownBranchPlaceholderConstant
	}
	repositoryRecord.Branch = currentBranch

	hasUpstream, upstreamError := collector.inspector.HasUpstream(executionContext, repositoryPath)
	if upstreamError != nil {
		collector.logFactFailure(logMessageUpstreamUnavailableConstant, repositoryPath, upstreamError)
		hasUpstream = false
	}
	repositoryRecord.HasUpstream = hasUpstream

	if hasUpstream {
		aheadCount, aheadError := collector.inspector.CountCommitsAhead(executionContext, repositoryPath)
		if aheadError != nil {
			collector.logFactFailure(logMessageAheadCountUnavailableConstant, repositoryPath, aheadError)
			aheadCount = 0
		}
		repositoryRecord.AheadCount = aheadCount
	}

	commitCount, commitCountError := collector.inspector.CountCommits(executionContext, repositoryPath)
	if commitCountError != nil {
		collector.logFactFailure(logMessageCommitCountUnavailableConstant, repositoryPath, commitCountError)
		commitCount = 0
	}
	repositoryRecord.CommitCount = commitCount

	lastCommitTime, lastCommitKnown, lastCommitError := collector.inspector.GetLastCommitTimestamp(executionContext, repositoryPath)
	if lastCommitError != nil {
		collector.logFactFailure(logMessageLastCommitUnavailableConstant, repositoryPath, lastCommitError)
	}
	if lastCommitError == nil && lastCommitKnown {
		repositoryRecord.LastCommit = assess.NewCommitTimestamp(lastCommitTime)
	}

	return repositoryRecord, true
}

func (collector *RecordCollector) logFactFailure(logMessage string, repositoryPath string, failure error) {
	collector.logger.Warn(
		logMessage,
		zap.String(logFieldRepositoryPathConstant, repositoryPath),
		zap.Error(failure),
	)
}
