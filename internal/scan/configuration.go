package scan

import (
	"strings"

	"github.com/temirov/vitals/internal/assess"
)

const (
	configurationRootsKeyConstant         = "roots"
	configurationWorkspaceKeyConstant     = "workspace"
	configurationFormatKeyConstant        = "format"
	configurationOutputKeyConstant        = "output"
	configurationUnpushedLimitKeyConstant = "unpushed_limit"
	configurationMaxDepthKeyConstant      = "max_depth"
	configurationExcludeKeyConstant       = "exclude"
	configurationConcurrencyKeyConstant   = "concurrency"
	configurationNoColorKeyConstant       = "no_color"
	configurationDebugKeyConstant         = "debug"
	configurationKeySeparatorConstant     = "."
)

// CommandConfiguration captures persistent settings for the scan command.
type CommandConfiguration struct {
	Roots           []string `mapstructure:"roots"`
	Workspace       string   `mapstructure:"workspace"`
	Format          string   `mapstructure:"format"`
	Output          string   `mapstructure:"output"`
	UnpushedLimit   int      `mapstructure:"unpushed_limit"`
	MaxDepth        int      `mapstructure:"max_depth"`
	ExcludePatterns []string `mapstructure:"exclude"`
	Concurrency     int      `mapstructure:"concurrency"`
	NoColor         bool     `mapstructure:"no_color"`
	Debug           bool     `mapstructure:"debug"`
}

// DefaultCommandConfiguration returns baseline configuration values for the scan command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Roots:         nil,
		Format:        string(OutputFormatConsole),
		UnpushedLimit: assess.DefaultDetectionThresholds().UnpushedRepositoryLimit,
	}
}

// DefaultConfigurationValues produces Viper defaults for the scan command keyed under rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationRootsKeyConstant:         defaults.Roots,
		rootKey + configurationKeySeparatorConstant + configurationWorkspaceKeyConstant:     defaults.Workspace,
		rootKey + configurationKeySeparatorConstant + configurationFormatKeyConstant:        defaults.Format,
		rootKey + configurationKeySeparatorConstant + configurationOutputKeyConstant:        defaults.Output,
		rootKey + configurationKeySeparatorConstant + configurationUnpushedLimitKeyConstant: defaults.UnpushedLimit,
		rootKey + configurationKeySeparatorConstant + configurationMaxDepthKeyConstant:      defaults.MaxDepth,
		rootKey + configurationKeySeparatorConstant + configurationExcludeKeyConstant:       defaults.ExcludePatterns,
		rootKey + configurationKeySeparatorConstant + configurationConcurrencyKeyConstant:   defaults.Concurrency,
		rootKey + configurationKeySeparatorConstant + configurationNoColorKeyConstant:       defaults.NoColor,
		rootKey + configurationKeySeparatorConstant + configurationDebugKeyConstant:         defaults.Debug,
	}
}

// Sanitize trims whitespace, drops empty entries, and clamps negative limits.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Roots = sanitizeListValues(configuration.Roots)
	sanitized.Workspace = strings.TrimSpace(configuration.Workspace)
	sanitized.Format = strings.TrimSpace(configuration.Format)
	sanitized.Output = strings.TrimSpace(configuration.Output)
	sanitized.ExcludePatterns = sanitizeListValues(configuration.ExcludePatterns)

	if sanitized.UnpushedLimit < 0 {
		sanitized.UnpushedLimit = 0
	}
	if sanitized.MaxDepth < 0 {
		sanitized.MaxDepth = 0
	}
	if sanitized.Concurrency < 0 {
		sanitized.Concurrency = 0
	}

	return sanitized
}

func sanitizeListValues(rawValues []string) []string {
	sanitized := make([]string, 0, len(rawValues))
	for valueIndex := range rawValues {
		trimmedValue := strings.TrimSpace(rawValues[valueIndex])
		if len(trimmedValue) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmedValue)
	}
	if len(sanitized) == 0 {
		return nil
	}
	return sanitized
}
