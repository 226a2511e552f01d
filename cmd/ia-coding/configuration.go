package iacoding

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ia-coding/internal/config"
	"github.com/temirov/ia-coding/internal/logging"
)

type commandRuntime struct {
	root   config.Root
	logger *zap.Logger
}

func (runtime commandRuntime) sync() {
	_ = runtime.logger.Sync()
}

func prepareRuntime(command *cobra.Command, configurationPath string) (commandRuntime, error) {
	rootConfiguration, loadErr := loadRootConfiguration(configurationPath)
	if loadErr != nil {
		return commandRuntime{}, loadErr
	}

	overrides, overridesErr := config.NewOverrides(command.Flags(), map[string]string{
		logLevelFlagName:        config.LoggingLevelKey,
		logFormatFlagName:       config.LoggingFormatKey,
		modelsDirectoryFlagName: config.ModelDirectoryKey,
	})
	if overridesErr != nil {
		return commandRuntime{}, fmt.Errorf(configurationOverridesErrorFormat, overridesErr)
	}
	rootConfiguration, overridesErr = overrides.Apply(rootConfiguration)
	if overridesErr != nil {
		return commandRuntime{}, fmt.Errorf(configurationOverridesErrorFormat, overridesErr)
	}

	logger, loggerErr := logging.New(rootConfiguration.Common.Logging.Level, rootConfiguration.Common.Logging.Format, command.ErrOrStderr())
	if loggerErr != nil {
		return commandRuntime{}, fmt.Errorf(loggerInitializationErrorFormat, loggerErr)
	}
	logger = logger.With(zap.String("command", command.Name()))

	return commandRuntime{root: rootConfiguration, logger: logger}, nil
}

func loadRootConfiguration(configurationPath string) (config.Root, error) {
	configurationLoader, loaderErr := config.NewDefaultRootConfigurationLoader()
	if loaderErr != nil {
		return config.Root{}, fmt.Errorf(configurationLoaderInitializationErrorFormat, loaderErr)
	}
	configurationSource, sourceErr := configurationLoader.Load(configurationPath)
	if sourceErr != nil {
		return config.Root{}, fmt.Errorf(configurationSourceResolutionErrorFormat, sourceErr)
	}
	rootConfiguration, loadErr := config.LoadRoot(configurationSource)
	if loadErr != nil {
		return config.Root{}, fmt.Errorf(rootConfigurationLoadErrorFormat, configurationSource.Reference, loadErr)
	}
	return rootConfiguration, nil
}
