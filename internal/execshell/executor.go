package execshell

import (
	"context"

	"go.uber.org/zap"
)

const (
	executorStartedLogMessageConstant   = "executing command"
	executorCompletedLogMessageConstant = "command completed"
	executorFailedLogMessageConstant    = "command execution failed"
	commandFieldNameConstant            = "command"
	argumentsFieldNameConstant          = "arguments"
	workingDirectoryFieldNameConstant   = "working_directory"
	exitCodeFieldNameConstant           = "exit_code"
	standardErrorFieldNameConstant      = "standard_error"
)

// ShellExecutor runs git commands through a CommandRunner with structured
// logging and lifecycle notifications for observers.
type ShellExecutor struct {
	logger        *zap.Logger
	commandRunner CommandRunner
	eventObserver CommandEventObserver
}

// NewShellExecutor validates the collaborators and assembles an executor.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	return &ShellExecutor{
		logger:        logger,
		commandRunner: commandRunner,
		eventObserver: noopCommandEventObserver{},
	}, nil
}

// SetEventObserver replaces the lifecycle observer; nil restores the no-op observer.
func (executor *ShellExecutor) SetEventObserver(observer CommandEventObserver) {
	if observer == nil {
		executor.eventObserver = noopCommandEventObserver{}
		return
	}
	executor.eventObserver = observer
}

// ExecuteGit runs the git executable with the supplied invocation details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	command := ShellCommand{Name: CommandGit, Details: details}
	return executor.execute(executionContext, command)
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logCommandStarted(command)
	executor.eventObserver.CommandStarted(command)

	executionResult, runError := executor.commandRunner.Run(executionContext, command)
	if runError != nil {
		executor.logExecutionFailure(command, runError)
		executor.eventObserver.CommandExecutionFailed(command, runError)
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	executor.logCommandCompleted(command, executionResult)
	executor.eventObserver.CommandCompleted(command, executionResult)

	if executionResult.ExitCode != 0 {
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}
	return executionResult, nil
}

func (executor *ShellExecutor) logCommandStarted(command ShellCommand) {
	executor.logger.Debug(
		executorStartedLogMessageConstant,
		zap.String(commandFieldNameConstant, string(command.Name)),
		zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
		zap.String(workingDirectoryFieldNameConstant, command.Details.WorkingDirectory),
	)
}

func (executor *ShellExecutor) logCommandCompleted(command ShellCommand, result ExecutionResult) {
	if result.ExitCode == 0 {
		executor.logger.Debug(
			executorCompletedLogMessageConstant,
			zap.String(commandFieldNameConstant, string(command.Name)),
			zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
			zap.Int(exitCodeFieldNameConstant, result.ExitCode),
		)
		return
	}
	executor.logger.Warn(
		executorCompletedLogMessageConstant,
		zap.String(commandFieldNameConstant, string(command.Name)),
		zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
		zap.Int(exitCodeFieldNameConstant, result.ExitCode),
		zap.String(standardErrorFieldNameConstant, result.StandardError),
	)
}

func (executor *ShellExecutor) logExecutionFailure(command ShellCommand, failure error) {
	executor.logger.Error(
		executorFailedLogMessageConstant,
		zap.String(commandFieldNameConstant, string(command.Name)),
		zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
		zap.Error(failure),
	)
}
