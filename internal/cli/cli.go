// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tyemirov/ltree/internal/config"
	"github.com/tyemirov/ltree/internal/render"
	"github.com/tyemirov/ltree/internal/utils"
)

const (
	pathFlagName       = "path"
	rootLimitFlagName  = "root-limit"
	subLimitFlagName   = "sub-limit"
	levelsFlagName     = "levels"
	showHiddenFlagName = "show-hidden"
	colorFlagName      = "color"
	configFlagName     = "config"
	logLevelFlagName   = "log-level"
	versionFlagName    = "version"
	globalFlagName     = "global"
	forceFlagName      = "force"

	pathFlagShorthand       = "p"
	rootLimitFlagShorthand  = "r"
	subLimitFlagShorthand   = "s"
	levelsFlagShorthand     = "l"
	showHiddenFlagShorthand = "a"

	pathFlagDescription       = "path to the directory to display"
	rootLimitFlagDescription  = "maximum number of entries to show in the root directory (not applied)"
	subLimitFlagDescription   = "maximum number of entries to show in each directory"
	levelsFlagDescription     = "number of levels to show in the tree (not enforced)"
	showHiddenFlagDescription = "show hidden files (names starting with '.')"
	colorFlagDescription      = "colorize output: auto, always, never"
	configFlagDescription     = "configuration file to use instead of " + utils.LocalConfigFileName
	logLevelFlagDescription   = "diagnostic log level: debug, info, warn, error"
	versionFlagDescription    = "display application version"
	globalFlagDescription     = "write the global configuration under the home directory"
	forceFlagDescription      = "overwrite an existing configuration file"

	versionTemplate      = utils.ApplicationName + " version: %s\n"
	initCompletedFormat  = "configuration written to %s\n"
	rootUse              = utils.ApplicationName + " [path]"
	rootShortDescription = "display directories and files in a tree-like format"
	rootLongDescription  = `ltree prints a directory hierarchy as a text tree.
Entries are listed in lexical order, directories are descended depth first and every listing is capped by --sub-limit.
Settings are read from ~/.ltree/config.yaml and ./.ltree.yaml before flags are applied.`
	rootUsageExample = `  # Render the current directory
  ltree

  # Show two entries per directory including dotfiles
  ltree -s 2 -a ./src

  # Disable color when piping
  ltree --color never | less`
	initUse              = "init"
	initShortDescription = "write a default configuration file"

	errorPathConflict       = "path given both as argument and --path flag"
	errorPathMissingFormat  = "path '%s' does not exist"
	errorStatFormat         = "stat failed for '%s': %w"
	workingDirectoryFormat  = "unable to determine working directory: %w"
	errorRenderTreeFormat   = "rendering tree for %s: %w"
	levelsNotEnforcedNotice = "levels setting is not enforced; directories are descended to their full depth"
	rootLimitNotApplied     = "root limit setting is not applied; the sub limit caps every directory including the root"
)

// LoggerFactory builds the diagnostic logger for a log level name.
type LoggerFactory func(levelName string) (*zap.Logger, error)

// Execute runs the ltree application.
func Execute() error {
	rootCommand := createRootCommand(utils.NewApplicationLogger)
	return rootCommand.Execute()
}

// treeOptions stores the raw flag values of the root command.
type treeOptions struct {
	path       string
	rootLimit  int
	subLimit   int
	levels     int
	showHidden bool
	color      string
	configPath string
	logLevel   string
}

// createRootCommand builds the root Cobra command.
func createRootCommand(loggerFactory LoggerFactory) *cobra.Command {
	var options treeOptions
	var showVersion bool

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if showVersion {
				fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			return runTree(command, options, arguments, loggerFactory)
		},
	}

	flagSet := rootCommand.Flags()
	flagSet.StringVarP(&options.path, pathFlagName, pathFlagShorthand, config.DefaultPath, pathFlagDescription)
	flagSet.IntVarP(&options.rootLimit, rootLimitFlagName, rootLimitFlagShorthand, config.DefaultRootLimit, rootLimitFlagDescription)
	flagSet.IntVarP(&options.subLimit, subLimitFlagName, subLimitFlagShorthand, config.DefaultSubLimit, subLimitFlagDescription)
	flagSet.IntVarP(&options.levels, levelsFlagName, levelsFlagShorthand, config.DefaultLevels, levelsFlagDescription)
	registerBooleanFlag(flagSet, &options.showHidden, showHiddenFlagName, showHiddenFlagShorthand, config.DefaultShowHidden, showHiddenFlagDescription)
	flagSet.StringVar(&options.color, colorFlagName, config.DefaultColorMode, colorFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, "", configFlagDescription)
	flagSet.StringVar(&options.logLevel, logLevelFlagName, utils.DefaultLogLevel, logLevelFlagDescription)
	flagSet.BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand())
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var globalTarget bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initError := config.InitializeConfiguration(config.InitOptions{Target: target, Force: force})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), initCompletedFormat, writtenPath)
			return nil
		},
	}
	registerBooleanFlag(initCommand.Flags(), &globalTarget, globalFlagName, "", false, globalFlagDescription)
	registerBooleanFlag(initCommand.Flags(), &force, forceFlagName, "", false, forceFlagDescription)
	return initCommand
}

// runTree resolves settings, validates the root and renders it to the command output.
func runTree(command *cobra.Command, options treeOptions, arguments []string, loggerFactory LoggerFactory) error {
	settings, settingsError := resolveTreeSettings(command, options, arguments)
	if settingsError != nil {
		return settingsError
	}

	logger, loggerError := loggerFactory(settings.LogLevel)
	if loggerError != nil {
		return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
	}
	defer func() {
		_ = logger.Sync()
	}()
	reportUnenforcedSettings(logger, settings)

	if validationError := validateRootPath(settings.Path); validationError != nil {
		return validationError
	}

	outputWriter := command.OutOrStdout()
	colorEnabled, colorError := render.ResolveColorEnabled(settings.Color, outputWriter)
	if colorError != nil {
		return colorError
	}

	renderOptions := settings.RenderOptions()
	logger.Debug("rendering tree",
		zap.String("path", settings.Path),
		zap.Int("max_entries_per_directory", renderOptions.MaxEntriesPerDirectory),
		zap.Bool("show_hidden", renderOptions.ShowHidden),
		zap.Bool("color", colorEnabled),
	)
	renderer := render.NewRenderer(outputWriter, render.NewPalette(colorEnabled), renderOptions)
	if renderError := renderer.Tree(settings.Path); renderError != nil {
		return fmt.Errorf(errorRenderTreeFormat, settings.Path, renderError)
	}
	logger.Debug("tree rendered", zap.String("path", settings.Path))
	return nil
}

// resolveTreeSettings layers defaults, configuration files and explicitly set flags.
func resolveTreeSettings(command *cobra.Command, options treeOptions, arguments []string) (config.TreeSettings, error) {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return config.TreeSettings{}, fmt.Errorf(workingDirectoryFormat, workingDirectoryError)
	}
	loaded, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configPath,
	})
	if loadError != nil {
		return config.TreeSettings{}, loadError
	}
	settings := loaded.Tree.Apply(config.DefaultTreeSettings())

	flagSet := command.Flags()
	if flagSet.Changed(pathFlagName) {
		settings.Path = options.path
	}
	if flagSet.Changed(rootLimitFlagName) {
		settings.RootLimit = options.rootLimit
	}
	if flagSet.Changed(subLimitFlagName) {
		settings.SubLimit = options.subLimit
	}
	if flagSet.Changed(levelsFlagName) {
		settings.Levels = options.levels
	}
	if flagSet.Changed(showHiddenFlagName) {
		settings.ShowHidden = options.showHidden
	}
	if flagSet.Changed(colorFlagName) {
		settings.Color = options.color
	}
	if flagSet.Changed(logLevelFlagName) {
		settings.LogLevel = options.logLevel
	}
	if len(arguments) > 0 {
		if flagSet.Changed(pathFlagName) {
			return config.TreeSettings{}, fmt.Errorf(errorPathConflict)
		}
		settings.Path = arguments[0]
	}

	if validationError := settings.Validate(); validationError != nil {
		return config.TreeSettings{}, validationError
	}
	return settings, nil
}

// reportUnenforcedSettings warns when accepted settings that do not influence the render were changed.
func reportUnenforcedSettings(logger *zap.Logger, settings config.TreeSettings) {
	if settings.Levels != config.DefaultLevels {
		logger.Warn(levelsNotEnforcedNotice, zap.Int("levels", settings.Levels))
	}
	if settings.RootLimit != config.DefaultRootLimit {
		logger.Warn(rootLimitNotApplied, zap.Int("root_limit", settings.RootLimit), zap.Int("sub_limit", settings.SubLimit))
	}
}

// validateRootPath checks that the root exists before any line is printed.
func validateRootPath(rootPath string) error {
	if _, statError := os.Stat(rootPath); statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(errorPathMissingFormat, rootPath)
		}
		return fmt.Errorf(errorStatFormat, rootPath, statError)
	}
	return nil
}
