package utils

// EmptyString represents a reusable empty string constant.
const EmptyString = ""

// Directory names excluded from traversal by default.
const (
	// NodeModulesDirectoryName is the npm dependency cache directory.
	NodeModulesDirectoryName = "node_modules"
	// GitDirectoryName is the name of the Git repository directory.
	GitDirectoryName = ".git"
	// VSCodeDirectoryName holds editor settings.
	VSCodeDirectoryName = ".vscode"
	// PythonCacheDirectoryName holds Python bytecode.
	PythonCacheDirectoryName = "__pycache__"
)

// Configuration file locations.
const (
	// ConfigFileName is the name of the local configuration file.
	ConfigFileName = ".trr.yaml"
	// GlobalConfigDirectoryName is the directory under the user home holding the global configuration.
	GlobalConfigDirectoryName = ".trr"
	// GlobalConfigFileName is the name of the global configuration file.
	GlobalConfigFileName = "config.yaml"
)

// Process-level messages.
const (
	// LoggerInitializationFailedMessageFormat is used when the logger cannot be built.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal errors returned by the CLI.
	ApplicationExecutionFailedMessage = "trr failed"
)
