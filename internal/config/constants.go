package config

// Common constants
const (
	// ConfigDirName is the name of the config directory within XDG_CONFIG_HOME
	ConfigDirName = "keylab"

	// ClientConfigFilename is the base filename for the CLI config
	ClientConfigFilename = "keylabctl.yaml"

	// EnvPrefix is the prefix for environment overrides (KEYLAB_LOGGING_LEVEL, ...)
	EnvPrefix = "KEYLAB"
)

// Logging constants
const (
	// LogLevelDebug represents debug log level
	LogLevelDebug = "debug"

	// LogLevelInfo represents info log level
	LogLevelInfo = "info"

	// LogLevelWarn represents warning log level
	LogLevelWarn = "warn"

	// LogLevelError represents error log level
	LogLevelError = "error"

	// LogFormatText represents text log format
	LogFormatText = "text"

	// LogFormatJSON represents JSON log format
	LogFormatJSON = "json"
)

// DefaultBooks is the seed catalog used when the config file has none
func DefaultBooks() []any {
	return []any{
		map[string]any{"id": 1, "name": "test_name_1", "pages": 200},
		map[string]any{"id": 2, "name": "test_name_2", "pages": 400},
	}
}

// DefaultDevices is the device fixture list used when the config file has none
func DefaultDevices() []any {
	return []any{
		map[string]any{"kind": "light", "identify_number": 987, "on": false, "color": "blue"},
		map[string]any{"kind": "lamp", "identify_number": 605, "on": true, "color": "green", "color_filter": "green"},
		map[string]any{"kind": "rgb", "identify_number": 100},
	}
}
