package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/temirov/ia-coding/internal/config"
)

const (
	logLevelFlagName     = "log-level"
	logFormatFlagName    = "log-format"
	logLevelEnvironment  = "IA_CODING_LOGGING_LEVEL"
	modelDirEnvironment  = "IA_CODING_MODEL_DIRECTORY"
	logFormatEnvironment = "IA_CODING_LOGGING_FORMAT"
)

func TestLoadRoot_EmbeddedDefaults(t *testing.T) {
	rootConfiguration, err := config.LoadRoot(config.EmbeddedRootConfigurationSource())
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLoggingLevel, rootConfiguration.Common.Logging.Level)
	assert.Equal(t, config.DefaultLoggingFormat, rootConfiguration.Common.Logging.Format)
	assert.Equal(t, config.DefaultModelDirectory, rootConfiguration.Model.Directory)
	assert.Equal(t, config.DefaultModelExtension, rootConfiguration.Model.Extension)
	assert.Equal(t, config.DefaultModelGuide, rootConfiguration.Model.Guide)
}

func TestLoadRoot_FillsMissingFields(t *testing.T) {
	partial := config.Root{}
	partial.Model.Directory = "/srv/models"
	content, marshalErr := yaml.Marshal(partial)
	require.NoError(t, marshalErr)

	rootConfiguration, err := config.LoadRoot(config.RootConfigurationSource{Reference: "partial", Content: content})
	require.NoError(t, err)
	assert.Equal(t, "/srv/models", rootConfiguration.Model.Directory)
	assert.Equal(t, config.DefaultLoggingLevel, rootConfiguration.Common.Logging.Level)
	assert.Equal(t, config.DefaultModelGuide, rootConfiguration.Model.Guide)
}

func TestLoadRoot_Errors(t *testing.T) {
	testCases := []struct {
		name          string
		content       string
		errorFragment string
	}{
		{name: "empty content", content: "", errorFragment: "is empty"},
		{name: "malformed yaml", content: "common: [", errorFragment: "unmarshal root configuration"},
		{name: "unknown logging format", content: "common:\n  logging:\n    format: xml\n", errorFragment: "unsupported logging format"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := config.LoadRoot(config.RootConfigurationSource{Reference: "inline", Content: []byte(testCase.content)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), testCase.errorFragment)
		})
	}
}

func newOverrideFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(logLevelFlagName, "", "")
	flags.String(logFormatFlagName, "", "")
	return flags
}

func overrideFlagKeys() map[string]string {
	return map[string]string{
		logLevelFlagName:  config.LoggingLevelKey,
		logFormatFlagName: config.LoggingFormatKey,
		"not-registered":  config.ModelDirectoryKey,
	}
}

func TestOverrides_Precedence(t *testing.T) {
	baseConfiguration, err := config.LoadRoot(config.EmbeddedRootConfigurationSource())
	require.NoError(t, err)

	t.Run("file values kept without overrides", func(t *testing.T) {
		t.Setenv(logLevelEnvironment, "")
		t.Setenv(modelDirEnvironment, "")
		t.Setenv(logFormatEnvironment, "")
		overrides, newErr := config.NewOverrides(newOverrideFlags(), overrideFlagKeys())
		require.NoError(t, newErr)

		applied, applyErr := overrides.Apply(baseConfiguration)
		require.NoError(t, applyErr)
		assert.Equal(t, baseConfiguration, applied)
	})

	t.Run("environment beats file", func(t *testing.T) {
		t.Setenv(logLevelEnvironment, "debug")
		t.Setenv(modelDirEnvironment, "/opt/models")
		t.Setenv(logFormatEnvironment, "")
		overrides, newErr := config.NewOverrides(newOverrideFlags(), overrideFlagKeys())
		require.NoError(t, newErr)

		applied, applyErr := overrides.Apply(baseConfiguration)
		require.NoError(t, applyErr)
		assert.Equal(t, "debug", applied.Common.Logging.Level)
		assert.Equal(t, "/opt/models", applied.Model.Directory)
	})

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv(logLevelEnvironment, "debug")
		t.Setenv(modelDirEnvironment, "")
		t.Setenv(logFormatEnvironment, "")
		flags := newOverrideFlags()
		require.NoError(t, flags.Set(logLevelFlagName, "error"))
		require.NoError(t, flags.Set(logFormatFlagName, "json"))
		overrides, newErr := config.NewOverrides(flags, overrideFlagKeys())
		require.NoError(t, newErr)

		applied, applyErr := overrides.Apply(baseConfiguration)
		require.NoError(t, applyErr)
		assert.Equal(t, "error", applied.Common.Logging.Level)
		assert.Equal(t, "json", applied.Common.Logging.Format)
	})

	t.Run("invalid override rejected", func(t *testing.T) {
		t.Setenv(logLevelEnvironment, "")
		t.Setenv(modelDirEnvironment, "")
		t.Setenv(logFormatEnvironment, "yaml")
		overrides, newErr := config.NewOverrides(newOverrideFlags(), overrideFlagKeys())
		require.NoError(t, newErr)

		_, applyErr := overrides.Apply(baseConfiguration)
		require.Error(t, applyErr)
	})
}
