package ui_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/vitals/internal/execshell"
	"github.com/temirov/vitals/internal/ui"
)

const (
	testWorkingDirectoryConstant           = "/workspaces/demo"
	testCurrentBranchOutputConstant        = "main\n"
	testStandardErrorMessageConstant       = "fatal: not a git repository"
	testExecutionFailureReasonConstant     = "executable file not found"
	testStatusStartedExpectationConstant   = "Reviewing working tree status in /workspaces/demo"
	testStatusSuccessExpectationConstant   = "Collected working tree status for /workspaces/demo"
	testBranchSuccessExpectationConstant   = "Current branch in /workspaces/demo is main"
	testStatusFailureExpectationConstant   = "Failed to review working tree status in /workspaces/demo (exit code 128: fatal: not a git repository)"
	testExecutionFailureExpectationMessage = "Unable to review working tree status in /workspaces/demo: executable file not found"
)

func buildStatusCommand() execshell.ShellCommand {
	return execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments:        []string{"status", "--porcelain"},
			WorkingDirectory: testWorkingDirectoryConstant,
		},
	}
}

func buildBranchCommand() execshell.ShellCommand {
	return execshell.ShellCommand{
		Name: execshell.CommandGit,
		Details: execshell.CommandDetails{
			Arguments:        []string{"rev-parse", "--abbrev-ref", "HEAD"},
			WorkingDirectory: testWorkingDirectoryConstant,
		},
	}
}

func TestConsoleCommandEventLoggerNarratesLifecycle(testInstance *testing.T) {
	testCases := []struct {
		name            string
		invoke          func(eventLogger *ui.ConsoleCommandEventLogger)
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		{
			name: "command_started",
			invoke: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandStarted(buildStatusCommand())
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: testStatusStartedExpectationConstant,
		},
		{
			name: "command_completed_success",
			invoke: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(buildStatusCommand(), execshell.ExecutionResult{ExitCode: 0})
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: testStatusSuccessExpectationConstant,
		},
		{
			name: "command_completed_echoes_branch_output",
			invoke: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(buildBranchCommand(), execshell.ExecutionResult{StandardOutput: testCurrentBranchOutputConstant, ExitCode: 0})
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: testBranchSuccessExpectationConstant,
		},
		{
			name: "command_completed_failure",
			invoke: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandCompleted(buildStatusCommand(), execshell.ExecutionResult{ExitCode: 128, StandardError: testStandardErrorMessageConstant})
			},
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: testStatusFailureExpectationConstant,
		},
		{
			name: "command_execution_failure",
			invoke: func(eventLogger *ui.ConsoleCommandEventLogger) {
				eventLogger.CommandExecutionFailed(buildStatusCommand(), errors.New(testExecutionFailureReasonConstant))
			},
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: testExecutionFailureExpectationMessage,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			observerCore, observedLogs := observer.New(zapcore.DebugLevel)
			eventLogger := ui.NewConsoleCommandEventLogger(zap.New(observerCore))

			testCase.invoke(eventLogger)

			entries := observedLogs.All()
			require.Len(subTest, entries, 1)
			require.Equal(subTest, testCase.expectedLevel, entries[0].Level)
			require.Equal(subTest, testCase.expectedMessage, entries[0].Message)
		})
	}
}

func TestNewConsoleCommandEventLoggerToleratesNilLogger(testInstance *testing.T) {
	eventLogger := ui.NewConsoleCommandEventLogger(nil)
	require.NotNil(testInstance, eventLogger)

	eventLogger.CommandStarted(buildStatusCommand())
	eventLogger.CommandCompleted(buildStatusCommand(), execshell.ExecutionResult{})
	eventLogger.CommandExecutionFailed(buildStatusCommand(), errors.New(testExecutionFailureReasonConstant))
}
