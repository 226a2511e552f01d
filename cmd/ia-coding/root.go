package iacoding

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ia-coding/internal/codegen"
	"github.com/temirov/ia-coding/internal/repl"
)

type rootCommandOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

// NewRootCommand builds the ia-coding command tree. Without a subcommand it runs the
// interactive session over the command's input and output streams.
func NewRootCommand() *cobra.Command {
	options := &rootCommandOptions{}

	command := &cobra.Command{
		Use:           rootCommandUse,
		Short:         rootCommandShort,
		Long:          rootCommandLong,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractiveCommand(cmd, *options)
		},
	}

	command.PersistentFlags().StringVar(&options.configPath, configFlagName, "", configFlagUsage)
	command.PersistentFlags().StringVar(&options.logLevel, logLevelFlagName, "", logLevelFlagUsage)
	command.PersistentFlags().StringVar(&options.logFormat, logFormatFlagName, "", logFormatFlagUsage)

	command.AddCommand(newModelsCommand(options))

	return command
}

// Execute runs the root command with the process arguments and standard streams.
func Execute() error {
	return NewRootCommand().Execute()
}

func runInteractiveCommand(command *cobra.Command, options rootCommandOptions) error {
	runtime, runtimeErr := prepareRuntime(command, options.configPath)
	if runtimeErr != nil {
		return runtimeErr
	}
	defer runtime.sync()

	generator := codegen.NewGenerator(runtime.root.Model.Directory, runtime.root.Model.Guide)
	session := repl.NewSession(command.InOrStdin(), command.OutOrStdout(), command.ErrOrStderr(), runtime.logger)
	session.Generate = generator.Generate

	runtime.logger.Debug("interactive session started", zap.String("models_directory", runtime.root.Model.Directory))
	if sessionErr := session.Run(); sessionErr != nil {
		runtime.logger.Debug("interactive session failed", zap.Error(sessionErr))
		return sessionErr
	}
	return nil
}
