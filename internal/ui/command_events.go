package ui

import (
	"go.uber.org/zap"

	"github.com/temirov/vitals/internal/execshell"
)

// ConsoleCommandEventLogger narrates git command lifecycle events through a zap
// logger configured for human-readable output. Messages come from the
// execshell formatter so console narration matches the commands the assessment
// actually runs.
type ConsoleCommandEventLogger struct {
	logger           *zap.Logger
	messageFormatter execshell.CommandMessageFormatter
}

// NewConsoleCommandEventLogger constructs a console event logger backed by the provided zap logger.
func NewConsoleCommandEventLogger(logger *zap.Logger) *ConsoleCommandEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleCommandEventLogger{logger: logger, messageFormatter: execshell.CommandMessageFormatter{}}
}

// CommandStarted implements execshell.CommandEventObserver by narrating command start notifications.
func (eventLogger *ConsoleCommandEventLogger) CommandStarted(command execshell.ShellCommand) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Info(eventLogger.messageFormatter.BuildStartedMessage(command))
}

// CommandCompleted implements execshell.CommandEventObserver by narrating completions and non-zero exits.
func (eventLogger *ConsoleCommandEventLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if eventLogger == nil {
		return
	}
	if result.ExitCode == 0 {
		eventLogger.logger.Info(eventLogger.messageFormatter.BuildSuccessMessage(command, result))
		return
	}
	eventLogger.logger.Warn(eventLogger.messageFormatter.BuildFailureMessage(command, result))
}

// CommandExecutionFailed implements execshell.CommandEventObserver by narrating unexpected execution failures.
func (eventLogger *ConsoleCommandEventLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Error(eventLogger.messageFormatter.BuildExecutionFailureMessage(command, failure))
}
