// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/trr/internal/commands"
	"github.com/temirov/trr/internal/config"
	"github.com/temirov/trr/internal/services/clipboard"
	"github.com/temirov/trr/internal/types"
	"github.com/temirov/trr/internal/utils"
)

const (
	sortFlagName    = "sort"
	strictFlagName  = "strict"
	copyFlagName    = "copy"
	configFlagName  = "config"
	verboseFlagName = "verbose"
	versionTemplate = "trr version: {{.Version}}\n"

	rootUse              = "trr [path]"
	rootShortDescription = "print an indented directory tree"
	rootLongDescription  = `trr prints the directory tree rooted at the given path, or at the current directory when no path is given.
Entries named node_modules, .git, .vscode and __pycache__ are listed but never descended into.
A directory that cannot be read is shown as "cannot read <name>/ (<reason>)"; use --strict to stop instead.
To render a directory literally named "config", pass it as ./config.`
	rootUsageExample = `  # Render the current directory
  trr

  # Render a project in filesystem listing order
  trr --sort none ~/src/project

  # Render and copy the result to the clipboard
  trr --copy .`

	sortFlagDescription    = "entry order: name or none (filesystem listing order)"
	strictFlagDescription  = "abort on the first directory that cannot be read"
	copyFlagDescription    = "also copy the rendered tree to the system clipboard"
	configFlagDescription  = "configuration file to use instead of ./" + utils.ConfigFileName
	verboseFlagDescription = "log traversal details to stderr"

	invalidSortMessage           = "invalid --sort value '%s': expected %s or %s"
	workingDirectoryErrorFormat  = "unable to determine working directory: %w"
	loadConfigurationErrorFormat = "loading configuration: %w"
	clipboardWarningMessage      = "unable to copy tree to clipboard"
	resolvedSettingsMessage      = "resolved tree settings"
)

// Dependencies are the collaborators of the trr commands.
type Dependencies struct {
	FileSystem       afero.Fs
	Copier           clipboard.Copier
	Logger           *zap.Logger
	SetLogLevel      func(level zapcore.Level)
	WorkingDirectory func() (string, error)
	// HomeDirectory overrides the user home directory used for the global configuration.
	HomeDirectory string
}

// DefaultDependencies wires the operating system filesystem, clipboard and working directory.
func DefaultDependencies(logger *zap.Logger, logLevel zap.AtomicLevel) Dependencies {
	return Dependencies{
		FileSystem:       afero.NewOsFs(),
		Copier:           clipboard.NewService(),
		Logger:           logger,
		SetLogLevel:      logLevel.SetLevel,
		WorkingDirectory: os.Getwd,
	}
}

func (dependencies Dependencies) withDefaults() Dependencies {
	if dependencies.FileSystem == nil {
		dependencies.FileSystem = afero.NewOsFs()
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.SetLogLevel == nil {
		dependencies.SetLogLevel = func(zapcore.Level) {}
	}
	if dependencies.WorkingDirectory == nil {
		dependencies.WorkingDirectory = os.Getwd
	}
	return dependencies
}

// Execute runs the trr application.
func Execute(logger *zap.Logger, logLevel zap.AtomicLevel) error {
	rootCommand := NewRootCommand(DefaultDependencies(logger, logLevel))
	return rootCommand.Execute()
}

// treeFlags stores the values of the tree rendering flags.
type treeFlags struct {
	sortOrder  string
	strict     bool
	copy       bool
	configPath string
	verbose    bool
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	dependencies = dependencies.withDefaults()
	var flags treeFlags

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       utils.GetApplicationVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if flags.verbose {
				dependencies.SetLogLevel(zapcore.DebugLevel)
			}
			rootArgument := utils.EmptyString
			if len(arguments) == 1 {
				rootArgument = arguments[0]
			}
			return runTree(command, dependencies, flags, rootArgument)
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)
	rootCommand.Flags().StringVar(&flags.sortOrder, sortFlagName, types.SortByName, sortFlagDescription)
	rootCommand.Flags().BoolVar(&flags.strict, strictFlagName, false, strictFlagDescription)
	rootCommand.Flags().BoolVar(&flags.copy, copyFlagName, false, copyFlagDescription)
	rootCommand.PersistentFlags().StringVar(&flags.configPath, configFlagName, utils.EmptyString, configFlagDescription)
	rootCommand.PersistentFlags().BoolVarP(&flags.verbose, verboseFlagName, "v", false, verboseFlagDescription)
	rootCommand.AddCommand(createConfigCommand(dependencies))
	rootCommand.CompletionOptions.DisableDefaultCmd = true
	return rootCommand
}

// treeSettings is the outcome of merging flags over configuration.
type treeSettings struct {
	sortOrder string
	strict    bool
	copy      bool
}

// resolveTreeSettings applies explicitly set flags over configuration values over built-in defaults.
func resolveTreeSettings(flagSet *pflag.FlagSet, flags treeFlags, configuration config.TreeConfiguration) (treeSettings, error) {
	settings := treeSettings{sortOrder: types.SortByName}
	if configuration.Sort != utils.EmptyString {
		settings.sortOrder = configuration.Sort
	}
	if configuration.Strict != nil {
		settings.strict = *configuration.Strict
	}
	if configuration.Copy != nil {
		settings.copy = *configuration.Copy
	}
	if flagSet.Changed(sortFlagName) {
		settings.sortOrder = strings.ToLower(strings.TrimSpace(flags.sortOrder))
	}
	if flagSet.Changed(strictFlagName) {
		settings.strict = flags.strict
	}
	if flagSet.Changed(copyFlagName) {
		settings.copy = flags.copy
	}
	if !types.IsSupportedSortOrder(settings.sortOrder) {
		return treeSettings{}, fmt.Errorf(invalidSortMessage, settings.sortOrder, types.SortByName, types.SortByListing)
	}
	return settings, nil
}

// runTree renders the tree for rootArgument, or for the working directory when it is empty.
func runTree(command *cobra.Command, dependencies Dependencies, flags treeFlags, rootArgument string) error {
	workingDirectory, workingDirectoryError := dependencies.WorkingDirectory()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: flags.configPath,
		HomeDirectory:    dependencies.HomeDirectory,
	})
	if configurationError != nil {
		return fmt.Errorf(loadConfigurationErrorFormat, configurationError)
	}
	settings, settingsError := resolveTreeSettings(command.Flags(), flags, applicationConfiguration.Tree)
	if settingsError != nil {
		return settingsError
	}

	rootPath := utils.ResolveRootPath(workingDirectory, rootArgument)
	dependencies.Logger.Debug(resolvedSettingsMessage,
		zap.String("root", rootPath),
		zap.String("sort", settings.sortOrder),
		zap.Bool("strict", settings.strict),
		zap.Bool("copy", settings.copy),
	)

	options := commands.DefaultTreeOptions()
	options.SortOrder = settings.sortOrder
	options.Strict = settings.strict

	var captured bytes.Buffer
	var writer io.Writer = command.OutOrStdout()
	if settings.copy {
		writer = io.MultiWriter(writer, &captured)
	}

	if renderError := commands.RenderTree(writer, dependencies.FileSystem, rootPath, options, dependencies.Logger); renderError != nil {
		return renderError
	}

	if settings.copy {
		if copyError := dependencies.Copier.Copy(captured.String()); copyError != nil {
			dependencies.Logger.Warn(clipboardWarningMessage, zap.Error(copyError))
		}
	}
	return nil
}
