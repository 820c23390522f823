package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Logging LoggingConfig

	// Internal viper instance
	v *viper.Viper
}

// LoggingConfig represents the logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from a file and environment variables.
// A missing file is not an error: defaults apply.
func Load(configName, configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Set default values
	v.SetDefault("logging.level", LogLevelInfo)
	v.SetDefault("logging.format", LogFormatText)
	v.SetDefault("library.books", DefaultBooks())
	v.SetDefault("devices", DefaultDevices())

	if configFile != "" {
		v.SetConfigFile(configFile)
		slog.Debug("Using config file from command line", "path", configFile)
	} else {
		v.SetConfigFile(GetConfigPath(configName))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		slog.Debug("Using config file", "path", v.ConfigFileUsed())
	}

	// Bind environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return New(v), nil
}

// New builds a Config view over an existing viper instance
func New(v *viper.Viper) *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
		},
		v: v,
	}
}

// Books returns the raw seed catalog (library.books), left undecoded so
// the catalog package can report type errors in it
func (c *Config) Books() any {
	return c.Get("library.books")
}

// Devices returns the raw device fixture list (devices)
func (c *Config) Devices() any {
	return c.Get("devices")
}

// Get retrieves a value from the configuration
func (c *Config) Get(key string) any {
	if c.v == nil {
		return nil
	}
	return c.v.Get(key)
}

// Set sets a value in the configuration
func (c *Config) Set(key string, value any) {
	if c.v == nil {
		return
	}
	c.v.Set(key, value)
}
