package config

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultLoggingLevel keeps an interactive session free of log noise.
	DefaultLoggingLevel = "warn"
	// DefaultLoggingFormat renders human-readable log lines.
	DefaultLoggingFormat = "console"
	// DefaultModelDirectory is where model files are expected.
	DefaultModelDirectory = "models"
	// DefaultModelExtension is the extension of GGUF model files.
	DefaultModelExtension = ".gguf"
	// DefaultModelGuide is the document named in setup instructions.
	DefaultModelGuide = "README.md"

	rootConfigurationEmptyContentErrorFormat = "root configuration %s is empty"
	rootConfigurationUnmarshalErrorFormat    = "unmarshal root configuration %s: %w"
	unsupportedLoggingFormatErrorFormat      = "unsupported logging format %q (expected console or json)"
)

type Root struct {
	Common Common `yaml:"common"`
	Model  Model  `yaml:"model"`
}

type Common struct {
	Logging Logging `yaml:"logging"`
}

type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Model describes where a future generation backend looks for model files.
type Model struct {
	Directory string `yaml:"directory"`
	Extension string `yaml:"extension"`
	Guide     string `yaml:"guide"`
}

// LoadRoot parses the provided configuration source, fills defaults and validates the result.
func LoadRoot(source RootConfigurationSource) (Root, error) {
	if len(source.Content) == 0 {
		return Root{}, fmt.Errorf(rootConfigurationEmptyContentErrorFormat, source.Reference)
	}

	var rootConfiguration Root
	if err := yaml.Unmarshal(source.Content, &rootConfiguration); err != nil {
		return Root{}, fmt.Errorf(rootConfigurationUnmarshalErrorFormat, source.Reference, err)
	}

	rootConfiguration = rootConfiguration.WithDefaults()
	if err := rootConfiguration.Validate(); err != nil {
		return Root{}, err
	}
	return rootConfiguration, nil
}

// WithDefaults returns a copy with empty fields replaced by their defaults.
func (root Root) WithDefaults() Root {
	root.Common.Logging.Level = defaultIfEmpty(root.Common.Logging.Level, DefaultLoggingLevel)
	root.Common.Logging.Format = defaultIfEmpty(root.Common.Logging.Format, DefaultLoggingFormat)
	root.Model.Directory = defaultIfEmpty(root.Model.Directory, DefaultModelDirectory)
	root.Model.Extension = defaultIfEmpty(root.Model.Extension, DefaultModelExtension)
	root.Model.Guide = defaultIfEmpty(root.Model.Guide, DefaultModelGuide)
	return root
}

// Validate checks values that cannot be repaired by defaults.
func (root Root) Validate() error {
	switch strings.ToLower(root.Common.Logging.Format) {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf(unsupportedLoggingFormatErrorFormat, root.Common.Logging.Format)
	}
}

func defaultIfEmpty(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
