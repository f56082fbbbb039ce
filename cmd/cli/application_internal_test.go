package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	internalTestConfigurationFileNameConstant = "config.yaml"
	internalTestConfigurationContentsConstant = `common:
  log_level: warn
  log_format: structured
tools:
  scan:
    workspace: team-platform
    roots:
      - /workspaces/alpha
    format: json
    unpushed_limit: 9
    exclude:
      - node_modules
    concurrency: 4
`
)

func writeConfigurationFile(t *testing.T) string {
	t.Helper()

	configurationPath := filepath.Join(t.TempDir(), internalTestConfigurationFileNameConstant)
	require.NoError(t, os.WriteFile(configurationPath, []byte(internalTestConfigurationContentsConstant), 0o644))
	return configurationPath
}

func TestInitializeConfigurationAppliesEmbeddedDefaults(t *testing.T) {
	application := NewApplication()

	require.NoError(t, application.initializeConfiguration(application.rootCommand))

	require.Equal(t, "info", application.configuration.Common.LogLevel)
	require.Equal(t, "structured", application.configuration.Common.LogFormat)
	require.Equal(t, "console", application.configuration.Tools.Scan.Format)
	require.Equal(t, 5, application.configuration.Tools.Scan.UnpushedLimit)
	require.False(t, application.humanReadableLoggingEnabled())
}

func TestInitializeConfigurationHonorsPersistentFlagOverrides(t *testing.T) {
	application := NewApplication()
	require.NoError(t, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "debug"))
	require.NoError(t, application.rootCommand.PersistentFlags().Set(logFormatFlagNameConstant, "console"))

	require.NoError(t, application.initializeConfiguration(application.rootCommand))

	require.Equal(t, "debug", application.configuration.Common.LogLevel)
	require.Equal(t, "console", application.configuration.Common.LogFormat)
	require.True(t, application.humanReadableLoggingEnabled())
}

func TestInitializeConfigurationRejectsUnsupportedLogLevel(t *testing.T) {
	application := NewApplication()
	require.NoError(t, application.rootCommand.PersistentFlags().Set(logLevelFlagNameConstant, "verbose"))

	initializationError := application.initializeConfiguration(application.rootCommand)

	require.Error(t, initializationError)
	require.Contains(t, initializationError.Error(), "unable to create logger")
}

func TestInitializeConfigurationLoadsConfigurationFile(t *testing.T) {
	application := NewApplication()
	application.configurationFilePath = writeConfigurationFile(t)

	require.NoError(t, application.initializeConfiguration(application.rootCommand))

	require.Equal(t, "warn", application.configuration.Common.LogLevel)
	require.Equal(t, "team-platform", application.configuration.Tools.Scan.Workspace)
	require.Equal(t, []string{"/workspaces/alpha"}, application.configuration.Tools.Scan.Roots)
	require.Equal(t, "json", application.configuration.Tools.Scan.Format)
	require.Equal(t, 9, application.configuration.Tools.Scan.UnpushedLimit)
	require.Equal(t, []string{"node_modules"}, application.configuration.Tools.Scan.ExcludePatterns)
	require.Equal(t, 4, application.configuration.Tools.Scan.Concurrency)
	require.Equal(t, application.configurationFilePath, application.configurationMetadata.ConfigFileUsed)

	contextConfigurationPath, configurationPathFound := application.commandContextAccessor.ConfigurationFilePath(application.rootCommand.Context())
	require.True(t, configurationPathFound)
	require.Equal(t, application.configurationFilePath, contextConfigurationPath)
}

func TestRootCommandWithoutArgumentsPrintsHelp(t *testing.T) {
	application := NewApplication()

	var outputBuilder strings.Builder
	application.rootCommand.SetOut(&outputBuilder)
	application.rootCommand.SetErr(&outputBuilder)
	application.rootCommand.SetArgs([]string{"--log-level", "error"})

	require.NoError(t, application.rootCommand.Execute())

	helpOutput := outputBuilder.String()
	require.Contains(t, helpOutput, "Usage:")
	require.Contains(t, helpOutput, "scan")
}

func TestApplicationRunsScanOnEmptyWorkspace(t *testing.T) {
	application := NewApplication()
	workspaceRoot := t.TempDir()
	outputPath := filepath.Join(t.TempDir(), "report.json")

	var outputBuilder strings.Builder
	application.rootCommand.SetOut(&outputBuilder)
	application.rootCommand.SetErr(&outputBuilder)
	application.rootCommand.SetArgs([]string{
		"scan",
		workspaceRoot,
		"--workspace", "integration",
		"--format", "json",
		"--output", outputPath,
		"--log-level", "error",
	})

	require.NoError(t, application.rootCommand.Execute())

	reportBytes, readError := os.ReadFile(outputPath)
	require.NoError(t, readError)

	reportDocument := string(reportBytes)
	require.Contains(t, reportDocument, `"identifier": "integration"`)
	require.Contains(t, reportDocument, `"total_repositories": 0`)
	require.Contains(t, reportDocument, `"trend": "CRITICAL"`)
	require.Contains(t, outputBuilder.String(), "Report written to "+outputPath)
}
