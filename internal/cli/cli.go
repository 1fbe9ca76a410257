// Package cli provides the command line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/tree/internal/commands"
	"github.com/temirov/tree/internal/config"
	"github.com/temirov/tree/internal/output"
	"github.com/temirov/tree/internal/services/clipboard"
	"github.com/temirov/tree/internal/types"
	"github.com/temirov/tree/internal/utils"
)

const (
	indentFlagName     = "indent"
	indentShorthand    = "i"
	depthFlagName      = "depth"
	depthShorthand     = "d"
	pruneFlagName      = "prune"
	pruneShorthand     = "p"
	extensionFlagName  = "extension"
	extensionShorthand = "e"
	outputFlagName     = "output"
	outputShorthand    = "o"
	sortFlagName       = "sort"
	copyFlagName       = "copy"
	configFlagName     = "config"
	verboseFlagName    = "verbose"
	versionFlagName    = "version"
	initConfigFlagName = "init-config"
	forceFlagName      = "force"

	defaultIndentWidth = 4
	minimumIndentWidth = 1
	minimumDepth       = 0

	rootUse              = utils.ApplicationName + " [path]"
	rootShortDescription = "print a directory tree"
	rootLongDescription  = `Print the directory tree rooted at path (default: the current directory).
Directories are listed before files, each group sorted by name. Symbolic links are never shown or followed.`
	rootUsageExample = `  # Two levels deep, two spaces per level
  tree -d 2 -i 2 ./src

  # Only Go and Markdown files, written to a file
  tree -e go -e .md -o tree.txt .`

	indentFlagDescription     = "spaces per depth level (positive integer)"
	depthFlagDescription      = "maximum depth to render (unlimited when unset); directories at the limit are always shown"
	pruneFlagDescription      = "omit directories that contain nothing to show (implied by --extension; directories at the depth limit are kept)"
	extensionFlagDescription  = "show only files with this extension (repeatable)"
	outputFlagDescription     = "write the tree to this file instead of standard output"
	sortFlagDescription       = "name ordering: bytes or natural"
	copyFlagDescription       = "also copy the rendered tree to the clipboard"
	configFlagDescription     = "configuration file to use instead of ./" + utils.ConfigFileName
	verboseFlagDescription    = "log traversal details to standard error"
	versionFlagDescription    = "display application version"
	initConfigFlagDescription = "write a default configuration file to local (./" + utils.ConfigFileName + ") or global (~/" + utils.GlobalConfigDirectoryName + "/" + utils.GlobalConfigFileName + ") and exit"
	forceFlagDescription      = "overwrite an existing configuration file with --init-config"

	versionTemplate              = utils.ApplicationName + " version: %s\n"
	configurationWrittenTemplate = "configuration written to %s\n"
	stdoutName                   = "standard output"

	usageTemplate = `usage: {{.UseLine}}

{{.Long}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
{{if .HasExample}}
Examples:
{{.Example}}
{{end}}`
	helpTemplate = `{{.UsageString}}`

	usageErrorFormat            = "usage: %s\n%s: error: %s\n"
	errorTooManyPathsFormat     = "expected at most one path, got %d"
	errorRootNotDirectoryFormat = "%s is not a directory"
	errorRootStatFormat         = "cannot access %s: %v"
	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	clipboardWarningMessage     = "failed to copy tree to clipboard"
	closeOutputErrorFormat      = "close output %s: %w"
	errorInitTargetFormat       = "unsupported --init-config target %q: use local or global"
	errorInitWithPathFormat     = "--%s does not take a path argument"
)

// UsageExitCode is the process exit code for argument and validation errors.
const UsageExitCode = 2

// UsageError reports invalid arguments or configuration detected before traversal.
type UsageError struct {
	Message string
}

func (usageError *UsageError) Error() string {
	return usageError.Message
}

func newUsageError(format string, arguments ...any) *UsageError {
	return &UsageError{Message: fmt.Sprintf(format, arguments...)}
}

// Environment carries the process collaborators used by a single invocation.
type Environment struct {
	Arguments        []string
	Stdout           io.Writer
	Stderr           io.Writer
	FileSystem       afero.Fs
	WorkingDirectory string
	HomeDirectory    string
	Copier           clipboard.Copier
	Logger           *zap.Logger
}

// Execute runs the tree application against the process environment.
func Execute(logger *zap.Logger) error {
	return Run(Environment{
		Arguments:  os.Args[1:],
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		FileSystem: afero.NewOsFs(),
		Copier:     clipboard.NewService(),
		Logger:     logger,
	})
}

// Run executes one invocation. Usage errors are reported on Stderr together
// with the usage line and returned as *UsageError.
func Run(environment Environment) error {
	environment = environment.withDefaults()
	rootCommand := createRootCommand(environment)
	rootCommand.SetArgs(environment.Arguments)
	executionError := rootCommand.Execute()
	if executionError == nil {
		return nil
	}
	var usageError *UsageError
	if errors.As(executionError, &usageError) {
		fmt.Fprintf(environment.Stderr, usageErrorFormat, rootCommand.UseLine(), utils.ApplicationName, usageError.Message)
	}
	return executionError
}

func (environment Environment) withDefaults() Environment {
	if environment.Stdout == nil {
		environment.Stdout = io.Discard
	}
	if environment.Stderr == nil {
		environment.Stderr = io.Discard
	}
	if environment.FileSystem == nil {
		environment.FileSystem = afero.NewOsFs()
	}
	if environment.Logger == nil {
		environment.Logger = zap.NewNop()
	}
	return environment
}

// treeOptions stores the values of the tree flags.
type treeOptions struct {
	indentWidth  int
	maxDepth     int
	depthSet     bool
	prune        bool
	extensions   []string
	outputPath   string
	sortOrder    string
	copyEnabled  bool
	configPath   string
	verbose      bool
	printVersion bool
	initTarget   string
	forceInit    bool
}

// createRootCommand builds the tree command.
func createRootCommand(environment Environment) *cobra.Command {
	options := treeOptions{indentWidth: defaultIndentWidth}

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(command *cobra.Command, arguments []string) error {
			if len(arguments) > 1 {
				return newUsageError(errorTooManyPathsFormat, len(arguments))
			}
			return nil
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.printVersion {
				fmt.Fprintf(environment.Stdout, versionTemplate, utils.GetApplicationVersion())
				return nil
			}
			if options.initTarget != utils.EmptyString {
				if len(arguments) > 0 {
					return newUsageError(errorInitWithPathFormat, initConfigFlagName)
				}
				return initializeConfiguration(environment, options)
			}
			rootPath := utils.EmptyString
			if len(arguments) == 1 {
				rootPath = arguments[0]
			}
			return runTree(command, environment, options, rootPath)
		},
	}
	rootCommand.SetOut(environment.Stdout)
	rootCommand.SetErr(environment.Stderr)
	rootCommand.SetUsageTemplate(usageTemplate)
	rootCommand.SetHelpTemplate(helpTemplate)
	rootCommand.SetFlagErrorFunc(func(command *cobra.Command, flagError error) error {
		return &UsageError{Message: flagError.Error()}
	})

	flagSet := rootCommand.Flags()
	flagSet.SortFlags = false
	registerBoundedIntegerFlag(flagSet, &options.indentWidth, nil, indentFlagName, indentShorthand, minimumIndentWidth, indentFlagDescription)
	registerBoundedIntegerFlag(flagSet, &options.maxDepth, &options.depthSet, depthFlagName, depthShorthand, minimumDepth, depthFlagDescription)
	flagSet.BoolVarP(&options.prune, pruneFlagName, pruneShorthand, false, pruneFlagDescription)
	flagSet.StringArrayVarP(&options.extensions, extensionFlagName, extensionShorthand, nil, extensionFlagDescription)
	flagSet.StringVarP(&options.outputPath, outputFlagName, outputShorthand, utils.EmptyString, outputFlagDescription)
	flagSet.StringVar(&options.sortOrder, sortFlagName, utils.EmptyString, sortFlagDescription)
	flagSet.BoolVar(&options.copyEnabled, copyFlagName, false, copyFlagDescription)
	flagSet.StringVar(&options.configPath, configFlagName, utils.EmptyString, configFlagDescription)
	flagSet.BoolVar(&options.verbose, verboseFlagName, false, verboseFlagDescription)
	flagSet.BoolVar(&options.printVersion, versionFlagName, false, versionFlagDescription)
	flagSet.StringVar(&options.initTarget, initConfigFlagName, utils.EmptyString, initConfigFlagDescription)
	flagSet.BoolVar(&options.forceInit, forceFlagName, false, forceFlagDescription)
	return rootCommand
}

// initializeConfiguration writes the default configuration file instead of rendering.
func initializeConfiguration(environment Environment, options treeOptions) error {
	target := config.InitTarget(options.initTarget)
	if target != config.InitTargetLocal && target != config.InitTargetGlobal {
		return newUsageError(errorInitTargetFormat, options.initTarget)
	}
	destinationPath, initError := config.InitializeConfiguration(config.InitOptions{
		Target:           target,
		Force:            options.forceInit,
		WorkingDirectory: environment.WorkingDirectory,
		HomeDirectory:    environment.HomeDirectory,
		FileSystem:       environment.FileSystem,
	})
	if initError != nil {
		return initError
	}
	fmt.Fprintf(environment.Stdout, configurationWrittenTemplate, destinationPath)
	return nil
}

// runTree validates the invocation, renders the tree and writes it once.
func runTree(command *cobra.Command, environment Environment, options treeOptions, rawRootPath string) (err error) {
	logger := environment.Logger
	if options.verbose {
		verboseLogger, loggerError := utils.NewApplicationLogger(true)
		if loggerError != nil {
			return fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerError)
		}
		defer func() { _ = verboseLogger.Sync() }()
		logger = verboseLogger
	}

	workingDirectory := environment.WorkingDirectory
	if workingDirectory == utils.EmptyString {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configPath,
		HomeDirectory:    environment.HomeDirectory,
		FileSystem:       environment.FileSystem,
	})
	if configurationError != nil {
		return &UsageError{Message: configurationError.Error()}
	}
	options = applyConfigurationDefaults(command, options, applicationConfiguration.Tree)

	settings := buildRecursionSettings(options)
	if validationError := settings.Validate(); validationError != nil {
		return &UsageError{Message: validationError.Error()}
	}

	rootPath := utils.NormalizePath(rawRootPath, workingDirectory)
	rootInfo, rootStatError := environment.FileSystem.Stat(rootPath)
	if rootStatError != nil {
		return newUsageError(errorRootStatFormat, rootPath, rootStatError)
	}
	if !rootInfo.IsDir() {
		return newUsageError(errorRootNotDirectoryFormat, rootPath)
	}

	var outputFile afero.File
	if options.outputPath != utils.EmptyString {
		outputPath := utils.NormalizePath(options.outputPath, workingDirectory)
		openedFile, openError := output.OpenOutputTarget(environment.FileSystem, outputPath)
		if openError != nil {
			if errors.Is(openError, output.ErrInvalidOutputTarget) {
				return &UsageError{Message: openError.Error()}
			}
			return openError
		}
		defer func() {
			if closeError := openedFile.Close(); closeError != nil && err == nil {
				err = fmt.Errorf(closeOutputErrorFormat, outputPath, closeError)
			}
		}()
		outputFile = openedFile
	}

	treeBuilder, builderError := commands.NewTreeBuilder(environment.FileSystem, settings, logger)
	if builderError != nil {
		return &UsageError{Message: builderError.Error()}
	}
	renderedText, renderError := treeBuilder.Render(rootPath)
	if renderError != nil {
		return renderError
	}
	if outputFile != nil {
		if writeError := output.ReplaceContents(outputFile, renderedText); writeError != nil {
			return writeError
		}
	} else if writeError := output.WriteRendered(environment.Stdout, stdoutName, renderedText); writeError != nil {
		return writeError
	}

	if options.copyEnabled && environment.Copier != nil {
		if copyError := environment.Copier.Copy(renderedText); copyError != nil {
			logger.Warn(clipboardWarningMessage, zap.Error(copyError))
		}
	}
	return nil
}

// applyConfigurationDefaults fills options from configuration for every flag
// the user did not set explicitly.
func applyConfigurationDefaults(command *cobra.Command, options treeOptions, configuration config.TreeConfiguration) treeOptions {
	flagSet := command.Flags()
	if !flagSet.Changed(indentFlagName) && configuration.Indent != nil {
		options.indentWidth = *configuration.Indent
	}
	if !flagSet.Changed(depthFlagName) && configuration.Depth != nil {
		options.maxDepth = *configuration.Depth
		options.depthSet = true
	}
	if !flagSet.Changed(pruneFlagName) && configuration.Prune != nil {
		options.prune = *configuration.Prune
	}
	if !flagSet.Changed(extensionFlagName) && len(configuration.Extensions) > 0 {
		options.extensions = append([]string{}, configuration.Extensions...)
	}
	if !flagSet.Changed(sortFlagName) && configuration.Sort != utils.EmptyString {
		options.sortOrder = configuration.Sort
	}
	if !flagSet.Changed(copyFlagName) && configuration.Copy != nil {
		options.copyEnabled = *configuration.Copy
	}
	return options
}

// buildRecursionSettings converts options into walk settings. An extension
// filter also prunes directories left without matching files.
func buildRecursionSettings(options treeOptions) commands.RecursionSettings {
	extensionSet := utils.NewExtensionSet(options.extensions)
	settings := commands.RecursionSettings{
		IndentWidth: options.indentWidth,
		Prune:       options.prune || !extensionSet.IsEmpty(),
		Extensions:  extensionSet,
		SortOrder:   options.sortOrder,
	}
	if settings.SortOrder == utils.EmptyString {
		settings.SortOrder = types.SortOrderBytes
	}
	if options.depthSet {
		maxDepth := options.maxDepth
		settings.MaxDepth = &maxDepth
	}
	return settings
}
