package iacoding

const (
	rootCommandUse               = "ia-coding"
	rootCommandShort             = "Generate Rust code from natural language descriptions"
	rootCommandLong              = "Starts an interactive session that reads one description per line.\nType 'quit' or 'exit' to leave."
	modelsCommandUse             = "models"
	modelsCommandShort           = "List local GGUF model files in the models directory"
	configFlagName               = "config"
	configFlagUsage              = "Path to config.yaml (default: ./config.yaml, then ~/.ia-coding/config.yaml)"
	logLevelFlagName             = "log-level"
	logLevelFlagUsage            = "Logging level: debug, info, warn or error"
	logFormatFlagName            = "log-format"
	logFormatFlagUsage           = "Logging format: console or json"
	modelsDirectoryFlagName      = "directory"
	modelsDirectoryFlagUsage     = "Models directory to scan (overrides model.directory)"
	validHeaderLabel             = "valid header"
	invalidHeaderLabel           = "invalid header"
	backendNotWiredNotice        = "code generation backend is not wired; model files are listed for reference only"
	modelsDirectoryHeaderFormat  = "models directory: %s\n"
	modelFileLineFormat          = "%s\t%d bytes\t(%s)\n"
	noModelFilesFormat           = "no model files found in %s\n"
	missingModelsDirectoryFormat = "no models directory at %s\n"

	configurationLoaderInitializationErrorFormat = "initialize configuration loader: %w"
	configurationSourceResolutionErrorFormat     = "resolve configuration source: %w"
	rootConfigurationLoadErrorFormat             = "load root configuration %s: %w"
	configurationOverridesErrorFormat            = "apply configuration overrides: %w"
	loggerInitializationErrorFormat              = "initialize logger: %w"
	scanModelsErrorFormat                        = "scan models: %w"
	writeModelsListingErrorFormat                = "write models listing: %w"
)
