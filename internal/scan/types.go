package scan

import (
	"fmt"
	"strings"
)

const unsupportedFormatTemplateConstant = "unsupported report format %q"

// OutputFormat enumerates supported report formats.
type OutputFormat string

// Report formats supported by the scan command.
const (
	OutputFormatConsole  OutputFormat = "console"
	OutputFormatJSON     OutputFormat = "json"
	OutputFormatMarkdown OutputFormat = "markdown"
)

// OutputFormatChoices lists every supported format for usage strings.
func OutputFormatChoices() []string {
	return []string{
		string(OutputFormatConsole),
		string(OutputFormatJSON),
		string(OutputFormatMarkdown),
	}
}

// ParseOutputFormat normalizes and validates a format choice. A blank value
// selects the console format.
func ParseOutputFormat(rawFormat string) (OutputFormat, error) {
	normalizedFormat := strings.ToLower(strings.TrimSpace(rawFormat))
	switch OutputFormat(normalizedFormat) {
	case OutputFormatConsole, OutputFormatJSON, OutputFormatMarkdown:
		return OutputFormat(normalizedFormat), nil
	case OutputFormat(""):
		return OutputFormatConsole, nil
	default:
		return OutputFormat(""), fmt.Errorf(unsupportedFormatTemplateConstant, rawFormat)
	}
}

// CommandOptions captures the configurable parameters for the scan command.
type CommandOptions struct {
	Roots               []string
	WorkspaceIdentifier string
	Format              OutputFormat
	OutputPath          string
	UnpushedLimit       int
	MaxDepth            int
	ExcludePatterns     []string
	Concurrency         int
	ColorDisabled       bool
	DebugOutput         bool
}
