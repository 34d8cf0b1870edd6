// Package config provides configuration management for flowmind using Viper.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/guncekal/text-to-processflow/internal/errors"
	"github.com/guncekal/text-to-processflow/internal/paths"
)

// AppName is the application name used for config file naming.
const AppName = paths.AppName

// EnvPrefix is prepended to environment variable overrides (FLOWMIND_OUTPUT, ...).
const EnvPrefix = "FLOWMIND"

// Default values.
const (
	DefaultVersion       = 1
	DefaultOutput        = "output.json"
	DefaultReportFormat  = "text"
	DefaultInputFormat   = "auto"
	DefaultDirection     = "TD"
	DefaultDraftName     = "FlowMind Draft"
	DefaultDraftLanguage = "en"
	DefaultPreviewLength = 200
)

// Config represents the top-level configuration structure.
type Config struct {
	Version      int          `mapstructure:"version" yaml:"version"`
	Output       string       `mapstructure:"output" yaml:"output"`
	ReportFormat string       `mapstructure:"report_format" yaml:"report_format"`
	InputFormat  string       `mapstructure:"input_format" yaml:"input_format"`
	Render       RenderConfig `mapstructure:"render" yaml:"render"`
	Draft        DraftConfig  `mapstructure:"draft" yaml:"draft"`
}

// RenderConfig holds flowchart settings.
type RenderConfig struct {
	Direction string `mapstructure:"direction" yaml:"direction"`
}

// DraftConfig holds settings for `flowmind draft`.
type DraftConfig struct {
	Name          string `mapstructure:"name" yaml:"name"`
	Language      string `mapstructure:"language" yaml:"language"`
	PreviewLength int    `mapstructure:"preview_length" yaml:"preview_length"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Any previous Viper state is discarded.
//
// A .env file in the working directory is loaded first; variables already
// set in the environment win over it.
func Init() {
	viper.Reset()

	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()
}

// SetDefaults registers every default value with Viper.
func SetDefaults() {
	viper.SetDefault("version", DefaultVersion)
	viper.SetDefault("output", DefaultOutput)
	viper.SetDefault("report_format", DefaultReportFormat)
	viper.SetDefault("input_format", DefaultInputFormat)
	viper.SetDefault("render.direction", DefaultDirection)
	viper.SetDefault("draft.name", DefaultDraftName)
	viper.SetDefault("draft.language", DefaultDraftLanguage)
	viper.SetDefault("draft.preview_length", DefaultPreviewLength)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file is found.
// The loaded configuration is validated; the first problem is returned.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// Implicit load without a file: defaults apply.
		case errors.As(err, &notFound), os.IsNotExist(err):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Version:      DefaultVersion,
		Output:       DefaultOutput,
		ReportFormat: DefaultReportFormat,
		InputFormat:  DefaultInputFormat,
		Render:       RenderConfig{Direction: DefaultDirection},
		Draft: DraftConfig{
			Name:          DefaultDraftName,
			Language:      DefaultDraftLanguage,
			PreviewLength: DefaultPreviewLength,
		},
	}
}
