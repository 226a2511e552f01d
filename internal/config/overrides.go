package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvironmentPrefix prefixes every environment override, e.g. IA_CODING_LOGGING_LEVEL.
	EnvironmentPrefix = "IA_CODING"

	LoggingLevelKey     = "logging.level"
	LoggingFormatKey    = "logging.format"
	ModelDirectoryKey   = "model.directory"
	bindFlagErrorFormat = "bind flag %s to %s: %w"
)

// Overrides layers command-line flags and environment variables over a loaded Root.
// A changed flag beats the environment, which beats the configuration file.
type Overrides struct {
	values *viper.Viper
}

// NewOverrides binds IA_CODING_* environment variables and the flags named in flagKeys
// (flag name to configuration key). Flags missing from the set are ignored.
func NewOverrides(flags *pflag.FlagSet, flagKeys map[string]string) (Overrides, error) {
	values := viper.New()
	values.SetEnvPrefix(EnvironmentPrefix)
	values.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	values.AutomaticEnv()

	for flagName, key := range flagKeys {
		flag := flags.Lookup(flagName)
		if flag == nil {
			continue
		}
		if err := values.BindPFlag(key, flag); err != nil {
			return Overrides{}, fmt.Errorf(bindFlagErrorFormat, flagName, key, err)
		}
	}
	return Overrides{values: values}, nil
}

// Apply returns root with every non-empty override applied, then re-validates it.
func (overrides Overrides) Apply(root Root) (Root, error) {
	if overrides.values == nil {
		return root, nil
	}
	root.Common.Logging.Level = overrides.stringOr(LoggingLevelKey, root.Common.Logging.Level)
	root.Common.Logging.Format = overrides.stringOr(LoggingFormatKey, root.Common.Logging.Format)
	root.Model.Directory = overrides.stringOr(ModelDirectoryKey, root.Model.Directory)
	if err := root.Validate(); err != nil {
		return Root{}, err
	}
	return root, nil
}

func (overrides Overrides) stringOr(key string, fallback string) string {
	value := strings.TrimSpace(overrides.values.GetString(key))
	if value == "" {
		return fallback
	}
	return value
}
