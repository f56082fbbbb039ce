package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/temirov/vitals/internal/execshell"
)

const (
	statusSubcommandConstant        = "status"
	porcelainFlagConstant           = "--porcelain"
	revParseSubcommandConstant      = "rev-parse"
	revListSubcommandConstant       = "rev-list"
	logSubcommandConstant           = "log"
	isInsideWorkTreeFlagConstant    = "--is-inside-work-tree"
	abbrevRefFlagConstant           = "--abbrev-ref"
	symbolicFullNameFlagConstant    = "--symbolic-full-name"
	countFlagConstant               = "--count"
	headReferenceConstant           = "HEAD"
	upstreamReferenceConstant       = "@{u}"
	upstreamRangeConstant           = "@{u}..HEAD"
	singleCommitLimitFlagConstant   = "-1"
	lastCommitFormatFlagConstant    = "--format=%ct"
	trueLiteralConstant             = "true"
	detachedHeadPlaceholderConstant = "DETACHED"
)

const (
	executorNotConfiguredMessageConstant = "git executor not configured"
	commitCountParseTemplateConstant     = "could not parse commit count for %s: %q"
	commitTimestampParseTemplateConstant = "could not parse commit timestamp for %s: %q"
)

// ErrExecutorNotConfigured indicates the repository manager was constructed without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// CommitCountParseError reports git output that could not be parsed as a commit count.
type CommitCountParseError struct {
	RepositoryPath string
	Output         string
}

// Error describes the unparsable commit count output.
func (parseError CommitCountParseError) Error() string {
	return fmt.Sprintf(commitCountParseTemplateConstant, parseError.RepositoryPath, strings.TrimSpace(parseError.Output))
}

// CommitTimestampParseError reports git output that could not be parsed as an epoch timestamp.
type CommitTimestampParseError struct {
	RepositoryPath string
	Output         string
}

// Error describes the unparsable commit timestamp output.
func (parseError CommitTimestampParseError) Error() string {
	return fmt.Sprintf(commitTimestampParseTemplateConstant, parseError.RepositoryPath, strings.TrimSpace(parseError.Output))
}

// GitExecutor abstracts git command execution for the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager reads repository facts through a GitExecutor.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager validates the executor and assembles a repository manager.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// IsGitRepository reports whether the path hosts a git worktree.
func (manager *RepositoryManager) IsGitRepository(executionContext context.Context, repositoryPath string) bool {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{revParseSubcommandConstant, isInsideWorkTreeFlagConstant},
		WorkingDirectory: repositoryPath,
	}
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(executionResult.StandardOutput), trueLiteralConstant)
}

// CheckCleanWorktree reports whether the worktree has no uncommitted changes.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{statusSubcommandConstant, porcelainFlagConstant},
		WorkingDirectory: repositoryPath,
	}
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) == 0, nil
}

// GetCurrentBranch returns the checked-out branch name. A repository without a
// branch checked out reports the DETACHED placeholder.
func (manager *RepositoryManager) GetCurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{revParseSubcommandConstant, abbrevRefFlagConstant, headReferenceConstant},
		WorkingDirectory: repositoryPath,
	}
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return "", executionError
	}
	branchName := strings.TrimSpace(executionResult.StandardOutput)
	if len(branchName) == 0 || strings.EqualFold(branchName, headReferenceConstant) {
		return detachedHeadPlaceholderConstant, nil
	}
	return branchName, nil
}

// HasUpstream reports whether the current branch tracks an upstream branch.
// A missing upstream is an expected state, not an error.
func (manager *RepositoryManager) HasUpstream(executionContext context.Context, repositoryPath string) (bool, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{revParseSubcommandConstant, abbrevRefFlagConstant, symbolicFullNameFlagConstant, upstreamReferenceConstant},
		WorkingDirectory: repositoryPath,
	}
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		failedError := execshell.CommandFailedError{}
		if errors.As(executionError, &failedError) {
			return false, nil
		}
		return false, executionError
	}
	return len(strings.TrimSpace(executionResult.StandardOutput)) > 0, nil
}

// CountCommitsAhead counts commits on the current branch that are missing from its upstream.
func (manager *RepositoryManager) CountCommitsAhead(executionContext context.Context, repositoryPath string) (int, error) {
	return manager.countCommits(executionContext, repositoryPath, upstreamRangeConstant)
}

// CountCommits counts all commits reachable from HEAD.
func (manager *RepositoryManager) CountCommits(executionContext context.Context, repositoryPath string) (int, error) {
	return manager.countCommits(executionContext, repositoryPath, headReferenceConstant)
}

func (manager *RepositoryManager) countCommits(executionContext context.Context, repositoryPath string, revisionRange string) (int, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{revListSubcommandConstant, countFlagConstant, revisionRange},
		WorkingDirectory: repositoryPath,
	}
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return 0, executionError
	}
	commitCount, parseError := strconv.Atoi(strings.TrimSpace(executionResult.StandardOutput))
	if parseError != nil {
		return 0, CommitCountParseError{RepositoryPath: repositoryPath, Output: executionResult.StandardOutput}
	}
	return commitCount, nil
}

// GetLastCommitTimestamp reads the committer time of the most recent commit.
// Repositories without commits report an absent timestamp, not an error.
func (manager *RepositoryManager) GetLastCommitTimestamp(executionContext context.Context, repositoryPath string) (time.Time, bool, error) {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{logSubcommandConstant, singleCommitLimitFlagConstant, lastCommitFormatFlagConstant},
		WorkingDirectory: repositoryPath,
	}
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		failedError := execshell.CommandFailedError{}
		if errors.As(executionError, &failedError) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, executionError
	}
	trimmedOutput := strings.TrimSpace(executionResult.StandardOutput)
	if len(trimmedOutput) == 0 {
		return time.Time{}, false, nil
	}
	epochSeconds, parseError := strconv.ParseInt(trimmedOutput, 10, 64)
	if parseError != nil {
		return time.Time{}, false, CommitTimestampParseError{RepositoryPath: repositoryPath, Output: executionResult.StandardOutput}
	}
	return time.Unix(epochSeconds, 0).UTC(), true, nil
}
