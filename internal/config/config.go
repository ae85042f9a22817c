// Package config loads settings from defaults, an optional config file,
// PATHFINDER_* environment variables, and bound command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/pathfinder/internal/logging"
	"github.com/abhisek/pathfinder/internal/report"
)

// EnvPrefix is the prefix for environment overrides.
const EnvPrefix = "PATHFINDER"

// ConfigName is the config file base name searched in the working and home
// directories, with a .yaml, .yml, or .json extension.
const ConfigName = ".pathfinder"

// Config represents the pathfinder configuration.
type Config struct {
	Format  string    `mapstructure:"format"`
	Output  string    `mapstructure:"output"`
	Verbose bool      `mapstructure:"verbose"`
	Width   int       `mapstructure:"width"`
	Log     LogConfig `mapstructure:"log"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", report.FormatConsole)
	v.SetDefault("output", "")
	v.SetDefault("verbose", false)
	v.SetDefault("width", report.DefaultWidth)
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", logging.FormatConsole)
}

// Load reads configuration into a Config. explicitFile, when set, must
// exist; otherwise a missing config file is not an error.
func Load(v *viper.Viper, explicitFile string) (*Config, error) {
	SetDefaults(v)

	if explicitFile != "" {
		v.SetConfigFile(explicitFile)
	} else {
		v.SetConfigName(ConfigName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicitFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(report.Formats(), c.Format) {
		errs = append(errs, fmt.Errorf("invalid format: %s. Must be one of %s", c.Format, strings.Join(report.Formats(), ", ")))
	}
	if c.Width < 0 {
		errs = append(errs, fmt.Errorf("width must not be negative"))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != logging.FormatConsole && c.Log.Format != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("invalid log format: %s. Must be 'console' or 'json'", c.Log.Format))
	}
	return errors.Join(errs...)
}
