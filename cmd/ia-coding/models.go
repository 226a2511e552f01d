package iacoding

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ia-coding/internal/fsops"
	"github.com/temirov/ia-coding/internal/models"
)

func newModelsCommand(rootOptions *rootCommandOptions) *cobra.Command {
	var directory string

	command := &cobra.Command{
		Use:   modelsCommandUse,
		Short: modelsCommandShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelsCommand(cmd, *rootOptions, fsops.NewOS())
		},
	}

	command.Flags().StringVar(&directory, modelsDirectoryFlagName, "", modelsDirectoryFlagUsage)

	return command
}

func runModelsCommand(command *cobra.Command, options rootCommandOptions, filesystem fsops.FS) error {
	runtime, runtimeErr := prepareRuntime(command, options.configPath)
	if runtimeErr != nil {
		return runtimeErr
	}
	defer runtime.sync()

	modelsDirectory := runtime.root.Model.Directory
	outputWriter := command.OutOrStdout()
	if _, writeErr := fmt.Fprintf(outputWriter, modelsDirectoryHeaderFormat, modelsDirectory); writeErr != nil {
		return fmt.Errorf(writeModelsListingErrorFormat, writeErr)
	}

	catalog := models.NewCatalog(filesystem, runtime.root.Model.Extension)
	modelFiles, scanErr := catalog.Scan(modelsDirectory)
	switch {
	case errors.Is(scanErr, models.ErrDirectoryMissing):
		runtime.logger.Debug("models directory missing", zap.String("directory", modelsDirectory))
		if _, writeErr := fmt.Fprintf(outputWriter, missingModelsDirectoryFormat, modelsDirectory); writeErr != nil {
			return fmt.Errorf(writeModelsListingErrorFormat, writeErr)
		}
	case scanErr != nil:
		return fmt.Errorf(scanModelsErrorFormat, scanErr)
	case len(modelFiles) == 0:
		if _, writeErr := fmt.Fprintf(outputWriter, noModelFilesFormat, modelsDirectory); writeErr != nil {
			return fmt.Errorf(writeModelsListingErrorFormat, writeErr)
		}
	default:
		for _, modelFile := range modelFiles {
			headerLabel := validHeaderLabel
			if !modelFile.Valid {
				headerLabel = invalidHeaderLabel
			}
			if _, writeErr := fmt.Fprintf(outputWriter, modelFileLineFormat, modelFile.Name, modelFile.SizeBytes, headerLabel); writeErr != nil {
				return fmt.Errorf(writeModelsListingErrorFormat, writeErr)
			}
		}
		runtime.logger.Debug("model files listed", zap.Int("count", len(modelFiles)))
	}

	if _, writeErr := fmt.Fprintln(outputWriter, backendNotWiredNotice); writeErr != nil {
		return fmt.Errorf(writeModelsListingErrorFormat, writeErr)
	}
	return nil
}
