package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/temirov/tree/internal/utils"
)

// InitTarget names the configuration file written by --init-config.
type InitTarget string

const (
	// InitTargetLocal is ./.tree.yaml in the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal is ~/.tree/config.yaml.
	InitTargetGlobal InitTarget = "global"

	configurationDirectoryPermissions = 0o755
	configurationFilePermissions      = 0o644

	errorUnknownInitTargetFormat   = "unknown configuration target %q"
	errorWorkingDirectoryFormat    = "locate working directory for %s: %w"
	errorHomeDirectoryFormat       = "locate home directory for %s: %w"
	errorCreateDirectoryFormat     = "create %s: %w"
	errorConfigurationExistsFormat = "%s already exists; use --force to replace it"
	errorInspectFormat             = "inspect %s: %w"
	errorWriteConfigurationFormat  = "write %s: %w"

	defaultConfigurationTemplate = `tree:
  indent: 4
  prune: false
  extensions: []
  sort: bytes
  copy: false
`
)

// InitOptions selects the configuration file to write.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
	HomeDirectory    string
	// FileSystem defaults to the operating system filesystem.
	FileSystem afero.Fs
}

// InitializeConfiguration writes the default tree settings and returns the
// path written. An existing file is replaced only with Force.
func InitializeConfiguration(options InitOptions) (string, error) {
	fileSystem := options.FileSystem
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}

	configurationPath, resolveError := resolveInitPath(target, options)
	if resolveError != nil {
		return "", resolveError
	}
	if target == InitTargetGlobal {
		configurationDirectory := filepath.Dir(configurationPath)
		if mkdirError := fileSystem.MkdirAll(configurationDirectory, configurationDirectoryPermissions); mkdirError != nil {
			return "", fmt.Errorf(errorCreateDirectoryFormat, configurationDirectory, mkdirError)
		}
	}

	_, statError := fileSystem.Stat(configurationPath)
	switch {
	case statError == nil && !options.Force:
		return "", fmt.Errorf(errorConfigurationExistsFormat, configurationPath)
	case statError != nil && !errors.Is(statError, fs.ErrNotExist):
		return "", fmt.Errorf(errorInspectFormat, configurationPath, statError)
	}

	if writeError := afero.WriteFile(fileSystem, configurationPath, []byte(defaultConfigurationTemplate), configurationFilePermissions); writeError != nil {
		return "", fmt.Errorf(errorWriteConfigurationFormat, configurationPath, writeError)
	}
	return configurationPath, nil
}

func resolveInitPath(target InitTarget, options InitOptions) (string, error) {
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			currentDirectory, err := os.Getwd()
			if err != nil {
				return "", fmt.Errorf(errorWorkingDirectoryFormat, utils.ConfigFileName, err)
			}
			workingDirectory = currentDirectory
		}
		return filepath.Join(workingDirectory, utils.ConfigFileName), nil
	case InitTargetGlobal:
		homeDirectory := options.HomeDirectory
		if homeDirectory == "" {
			resolvedHome, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf(errorHomeDirectoryFormat, utils.GlobalConfigFileName, err)
			}
			homeDirectory = resolvedHome
		}
		return filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName), nil
	default:
		return "", fmt.Errorf(errorUnknownInitTargetFormat, target)
	}
}
