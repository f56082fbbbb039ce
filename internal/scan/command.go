package scan

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/vitals/internal/assess"
	"github.com/temirov/vitals/internal/execshell"
	"github.com/temirov/vitals/internal/ui"
	"github.com/temirov/vitals/internal/utils"
	flagutils "github.com/temirov/vitals/internal/utils/flags"
	pathutils "github.com/temirov/vitals/internal/utils/path"
	"github.com/temirov/vitals/internal/workspace"
)

var commandRootsSanitizer = pathutils.NewRepositoryPathSanitizerWithConfiguration(nil, pathutils.RepositoryPathSanitizerConfiguration{PruneNestedPaths: true})

const (
	commandUseConstant                   = "scan [roots...]"
	commandShortDescriptionConstant      = "Assess the health of git repositories across a workspace"
	commandLongDescriptionConstant       = "scan discovers git repositories under the provided roots and assesses their collective health. Reports render as colored console output, JSON, or Markdown."
	workspaceFlagNameConstant            = "workspace"
	workspaceFlagDescriptionConstant     = "Workspace identifier stamped into the report"
	formatFlagNameConstant               = "format"
	formatFlagDescriptionConstant        = "Report output format"
	outputFlagNameConstant               = "output"
	outputFlagDescriptionConstant        = "Write the report to this file instead of standard output"
	unpushedLimitFlagNameConstant        = "unpushed-limit"
	unpushedLimitFlagDescriptionConstant = "Repositories with unpushed commits tolerated before an anomaly is flagged"
	maxDepthFlagNameConstant             = "max-depth"
	maxDepthFlagDescriptionConstant      = "Maximum directory depth searched for repositories (0 searches without limit)"
	excludeFlagNameConstant              = "exclude"
	excludeFlagDescriptionConstant       = "Directory name or path fragment excluded from scanning (repeatable)"
	profileFlagNameConstant              = "profile"
	profileFlagDescriptionConstant       = "Path to a YAML scan profile"
	noColorFlagNameConstant              = "no-color"
	noColorFlagDescriptionConstant       = "Disable colored console output"
	debugFlagNameConstant                = "debug"
	debugFlagDescriptionConstant         = "Print discovery details to standard error"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the scan command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	Discoverer                   RepositoryDiscoverer
	GitExecutor                  GitExecutor
	RepositoryInspector          workspace.RepositoryInspector
	RecordCollector              RecordCollector
	MetricsCalculator            MetricsCalculator
	ReportRenderer               ReportRenderer
	FileSystem                   FileSystem
	Clock                        assess.Clock
	CommandEventsObserver        execshell.CommandEventObserver
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
}

// Build constructs the scan cobra command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.ArbitraryArgs,
		RunE:  builder.run,
	}

	defaultConfiguration := DefaultCommandConfiguration()
	formatUsage := flagutils.FormatChoiceUsage(string(OutputFormatConsole), OutputFormatChoices(), formatFlagDescriptionConstant)

	command.Flags().String(workspaceFlagNameConstant, defaultConfiguration.Workspace, workspaceFlagDescriptionConstant)
	command.Flags().String(formatFlagNameConstant, defaultConfiguration.Format, formatUsage)
	command.Flags().String(outputFlagNameConstant, defaultConfiguration.Output, outputFlagDescriptionConstant)
	command.Flags().Int(unpushedLimitFlagNameConstant, defaultConfiguration.UnpushedLimit, unpushedLimitFlagDescriptionConstant)
	command.Flags().Int(maxDepthFlagNameConstant, defaultConfiguration.MaxDepth, maxDepthFlagDescriptionConstant)
	command.Flags().StringArray(excludeFlagNameConstant, nil, excludeFlagDescriptionConstant)
	command.Flags().String(profileFlagNameConstant, "", profileFlagDescriptionConstant)
	flagutils.AddToggleFlag(command.Flags(), nil, noColorFlagNameConstant, "", defaultConfiguration.NoColor, noColorFlagDescriptionConstant)
	flagutils.AddToggleFlag(command.Flags(), nil, debugFlagNameConstant, "", defaultConfiguration.Debug, debugFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command, arguments)
	if optionsError != nil {
		return optionsError
	}

	logger := builder.resolveLogger()
	commandEventsObserver := builder.resolveCommandEventsObserver(logger)

	gitExecutor, executorError := ResolveGitExecutor(builder.GitExecutor, logger, commandEventsObserver)
	if executorError != nil {
		return executorError
	}

	repositoryInspector, inspectorError := ResolveRepositoryInspector(builder.RepositoryInspector, gitExecutor)
	if inspectorError != nil {
		return inspectorError
	}

	recordCollector, collectorError := ResolveRecordCollector(builder.RecordCollector, logger, repositoryInspector, options.Concurrency)
	if collectorError != nil {
		return collectorError
	}

	discoveryOptions := workspace.DiscoveryOptions{MaxDepth: options.MaxDepth, ExcludePatterns: options.ExcludePatterns}
	discoverer := ResolveRepositoryDiscoverer(builder.Discoverer, discoveryOptions)
	metricsCalculator := ResolveMetricsCalculator(builder.MetricsCalculator, options.ExcludePatterns)
	reportRenderer := ResolveReportRenderer(builder.ReportRenderer, options.Format, !options.ColorDisabled)
	fileSystem := ResolveFileSystem(builder.FileSystem)

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	errorWriter := utils.NewFlushingWriter(command.ErrOrStderr())

	service := NewService(discoverer, recordCollector, metricsCalculator, reportRenderer, fileSystem, logger, outputWriter, errorWriter, builder.Clock)
	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command, arguments []string) (CommandOptions, error) {
	configuration := builder.resolveConfiguration()

	profile, profileError := builder.loadProfile(command)
	if profileError != nil {
		return CommandOptions{}, profileError
	}

	roots := configuration.Roots
	if len(profile.Roots) > 0 {
		roots = profile.Roots
	}
	if len(arguments) > 0 {
		roots = append([]string{}, arguments...)
	}
	roots = commandRootsSanitizer.Sanitize(roots)

	workspaceIdentifier := configuration.Workspace
	if len(profile.Workspace) > 0 {
		workspaceIdentifier = profile.Workspace
	}
	if command.Flags().Changed(workspaceFlagNameConstant) {
		workspaceIdentifier, _ = command.Flags().GetString(workspaceFlagNameConstant)
	}

	formatValue := configuration.Format
	if len(profile.Format) > 0 {
		formatValue = profile.Format
	}
	if command.Flags().Changed(formatFlagNameConstant) {
		formatValue, _ = command.Flags().GetString(formatFlagNameConstant)
	}
	outputFormat, formatError := ParseOutputFormat(formatValue)
	if formatError != nil {
		return CommandOptions{}, formatError
	}

	outputPath := configuration.Output
	if len(profile.Output) > 0 {
		outputPath = profile.Output
	}
	if command.Flags().Changed(outputFlagNameConstant) {
		outputPath, _ = command.Flags().GetString(outputFlagNameConstant)
	}

	unpushedLimit := configuration.UnpushedLimit
	if profile.UnpushedLimit > 0 {
		unpushedLimit = profile.UnpushedLimit
	}
	if command.Flags().Changed(unpushedLimitFlagNameConstant) {
		unpushedLimit, _ = command.Flags().GetInt(unpushedLimitFlagNameConstant)
	}

	maxDepth := configuration.MaxDepth
	if profile.MaxDepth > 0 {
		maxDepth = profile.MaxDepth
	}
	if command.Flags().Changed(maxDepthFlagNameConstant) {
		maxDepth, _ = command.Flags().GetInt(maxDepthFlagNameConstant)
	}

	excludePatterns := configuration.ExcludePatterns
	if len(profile.ExcludePatterns) > 0 {
		excludePatterns = profile.ExcludePatterns
	}
	if command.Flags().Changed(excludeFlagNameConstant) {
		excludePatterns, _ = command.Flags().GetStringArray(excludeFlagNameConstant)
	}
	excludePatterns = sanitizeListValues(excludePatterns)

	colorDisabled := configuration.NoColor
	if command.Flags().Changed(noColorFlagNameConstant) {
		colorDisabled, _ = command.Flags().GetBool(noColorFlagNameConstant)
	}

	debugOutput := configuration.Debug
	if command.Flags().Changed(debugFlagNameConstant) {
		debugOutput, _ = command.Flags().GetBool(debugFlagNameConstant)
	}

	options := CommandOptions{
		Roots:               roots,
		WorkspaceIdentifier: strings.TrimSpace(workspaceIdentifier),
		Format:              outputFormat,
		OutputPath:          strings.TrimSpace(outputPath),
		UnpushedLimit:       unpushedLimit,
		MaxDepth:            maxDepth,
		ExcludePatterns:     excludePatterns,
		Concurrency:         configuration.Concurrency,
		ColorDisabled:       colorDisabled,
		DebugOutput:         debugOutput,
	}

	return options, nil
}

func (builder *CommandBuilder) loadProfile(command *cobra.Command) (Profile, error) {
	profilePath, _ := command.Flags().GetString(profileFlagNameConstant)
	if len(strings.TrimSpace(profilePath)) == 0 {
		return Profile{}, nil
	}
	return LoadProfile(profilePath)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveCommandEventsObserver(logger *zap.Logger) execshell.CommandEventObserver {
	if builder.CommandEventsObserver != nil {
		return builder.CommandEventsObserver
	}
	if builder.HumanReadableLoggingProvider != nil && builder.HumanReadableLoggingProvider() {
		return ui.NewConsoleCommandEventLogger(logger)
	}
	return nil
}
