package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// Application-wide names shared by the CLI and configuration loader.
const (
	// ApplicationName is the executable name shown in usage and error lines.
	ApplicationName = "tree"
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".tree.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding global configuration.
	GlobalConfigDirectoryName = ".tree"
	// GlobalConfigFileName is the name of the global configuration file.
	GlobalConfigFileName = "config.yaml"
	// PathSeparator is the separator used in rendered names and root labels.
	PathSeparator = "/"
	// ExtensionSeparator starts a file extension.
	ExtensionSeparator = "."
)

const (
	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal runtime failures.
	ApplicationExecutionFailedMessage = "tree execution failed"
)
