package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/trr/internal/config"
)

const (
	configCommandUse              = "config"
	configCommandShortDescription = "manage trr configuration files"
	initCommandUse                = "init"
	initCommandShortDescription   = "write a default configuration file"
	initCommandLongDescription    = `init writes a default configuration to ./.trr.yaml, or to ~/.trr/config.yaml with --global.
An existing file is left untouched unless --force is given.`

	globalFlagName        = "global"
	globalFlagDescription = "write the global configuration under the home directory"
	forceFlagName         = "force"
	forceFlagDescription  = "overwrite an existing configuration file"

	workingDirectoryForInitErrorFormat = "unable to determine working directory: %w"
	configurationWrittenMessageFormat  = "configuration written to %s\n"
	configurationWrittenLogMessage     = "configuration initialized"
)

func createConfigCommand(dependencies Dependencies) *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configCommandUse,
		Short: configCommandShortDescription,
		Args:  cobra.NoArgs,
	}
	configCommand.AddCommand(createConfigInitCommand(dependencies))
	return configCommand
}

func createConfigInitCommand(dependencies Dependencies) *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initCommandUse,
		Short: initCommandShortDescription,
		Long:  initCommandLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := dependencies.WorkingDirectory()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryForInitErrorFormat, workingDirectoryError)
			}
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: workingDirectory,
				HomeDirectory:    dependencies.HomeDirectory,
			})
			if initError != nil {
				return initError
			}
			dependencies.Logger.Debug(configurationWrittenLogMessage, zap.String("path", destinationPath))
			_, printError := fmt.Fprintf(command.OutOrStdout(), configurationWrittenMessageFormat, destinationPath)
			return printError
		},
	}
	initCommand.Flags().BoolVar(&global, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}
