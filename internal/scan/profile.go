package scan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	profileLoadErrorTemplateConstant            = "failed to load scan profile: %w"
	profileParseErrorTemplateConstant           = "failed to parse scan profile: %w"
	profilePathRequiredMessageConstant          = "scan profile path must be provided"
	profileMaxDepthNegativeMessageConstant      = "scan profile max_depth must not be negative"
	profileUnpushedLimitNegativeMessageConstant = "scan profile unpushed_limit must not be negative"
)

// Profile captures reusable scan settings loaded from a YAML document.
// Zero values leave the corresponding configured value in place when the
// profile is merged into command options.
type Profile struct {
	Workspace       string   `yaml:"workspace"`
	Roots           []string `yaml:"roots"`
	ExcludePatterns []string `yaml:"exclude"`
	MaxDepth        int      `yaml:"max_depth"`
	UnpushedLimit   int      `yaml:"unpushed_limit"`
	Format          string   `yaml:"format"`
	Output          string   `yaml:"output"`
}

// LoadProfile reads a scan profile from disk and performs basic validation.
// The settings may sit at the document root or nested under a scan key.
func LoadProfile(filePath string) (Profile, error) {
	trimmedPath := strings.TrimSpace(filePath)
	if len(trimmedPath) == 0 {
		return Profile{}, errors.New(profilePathRequiredMessageConstant)
	}

	contentBytes, readError := os.ReadFile(trimmedPath)
	if readError != nil {
		return Profile{}, fmt.Errorf(profileLoadErrorTemplateConstant, readError)
	}

	var profile Profile
	if unmarshalError := yaml.Unmarshal(contentBytes, &profile); unmarshalError != nil {
		return Profile{}, fmt.Errorf(profileParseErrorTemplateConstant, unmarshalError)
	}
	if profileIsEmpty(profile) {
		var wrapper struct {
			Scan Profile `yaml:"scan"`
		}
		if nestedError := yaml.Unmarshal(contentBytes, &wrapper); nestedError == nil && !profileIsEmpty(wrapper.Scan) {
			profile = wrapper.Scan
		}
	}

	profile.Workspace = strings.TrimSpace(profile.Workspace)
	profile.Format = strings.TrimSpace(profile.Format)
	profile.Output = strings.TrimSpace(profile.Output)
	profile.Roots = sanitizeListValues(profile.Roots)
	profile.ExcludePatterns = sanitizeListValues(profile.ExcludePatterns)

	if len(profile.Format) > 0 {
		if _, formatError := ParseOutputFormat(profile.Format); formatError != nil {
			return Profile{}, formatError
		}
	}
	if profile.MaxDepth < 0 {
		return Profile{}, errors.New(profileMaxDepthNegativeMessageConstant)
	}
	if profile.UnpushedLimit < 0 {
		return Profile{}, errors.New(profileUnpushedLimitNegativeMessageConstant)
	}

	return profile, nil
}

func profileIsEmpty(profile Profile) bool {
	return len(profile.Workspace) == 0 &&
		len(profile.Roots) == 0 &&
		len(profile.ExcludePatterns) == 0 &&
		profile.MaxDepth == 0 &&
		profile.UnpushedLimit == 0 &&
		len(profile.Format) == 0 &&
		len(profile.Output) == 0
}
