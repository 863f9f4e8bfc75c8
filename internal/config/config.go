// Package config loads command line defaults from a gorlc config file and
// GORLC_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexiusacademia/gorlc/internal/logging"
)

// EnvPrefix is the prefix of environment overrides, e.g. GORLC_FREQUENCY.
const EnvPrefix = "GORLC"

// Config holds the operating point and data sources used when a command
// flag is not given.
type Config struct {
	Temperature    float64   `mapstructure:"temperature" json:"temperature"` // °C
	Frequency      float64   `mapstructure:"frequency" json:"frequency"`     // Hz
	SkinEffect     bool      `mapstructure:"skin_effect" json:"skin_effect"`
	MaterialsFile  string    `mapstructure:"materials_file" json:"materials_file,omitempty"`
	ConductorsFile string    `mapstructure:"conductors_file" json:"conductors_file,omitempty"`
	Log            LogConfig `mapstructure:"log" json:"log"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `mapstructure:"level" json:"level"`
	Format string `mapstructure:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Temperature: 20,
		Frequency:   60,
		SkinEffect:  false,
		Log: LogConfig{
			Level:  "warn",
			Format: string(logging.FormatText),
		},
	}
}

// Load reads configuration from path, or when path is empty from
// gorlc.{yaml,json,toml} in the working directory or ~/.config/gorlc.
// A missing searched file is not an error; a missing explicit file is.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("temperature", def.Temperature)
	v.SetDefault("frequency", def.Frequency)
	v.SetDefault("skin_effect", def.SkinEffect)
	v.SetDefault("materials_file", def.MaterialsFile)
	v.SetDefault("conductors_file", def.ConductorsFile)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("gorlc")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gorlc"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		cfg.MaterialsFile = resolve(used, cfg.MaterialsFile)
		cfg.ConductorsFile = resolve(used, cfg.ConductorsFile)
	}

	return &cfg, nil
}

// resolve makes a data file path relative to the config file that names it.
func resolve(configFile, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(filepath.Dir(configFile), path)
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if math.IsNaN(c.Temperature) || math.IsInf(c.Temperature, 0) {
		return &Error{Field: "temperature", Message: "must be a finite number"}
	}
	if math.IsNaN(c.Frequency) || math.IsInf(c.Frequency, 0) || c.Frequency < 0 {
		return &Error{Field: "frequency", Message: "must be a non-negative number"}
	}
	if !logging.ValidLevel(c.Log.Level) {
		return &Error{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	switch logging.Format(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return &Error{Field: "log.format", Message: fmt.Sprintf("unknown format %q", c.Log.Format)}
	}
	return nil
}

// Error is a configuration error for one field.
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
