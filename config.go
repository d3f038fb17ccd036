package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// settings is the single source of the tool's fixed constants: the hidden
// directory marker, the log level and the field colors. Nothing overrides
// them; there is no config file and no environment lookup.
type settings struct {
	HiddenPrefix string      `mapstructure:"hidden_prefix"`
	LogLevel     string      `mapstructure:"log_level"`
	Colors       colorConfig `mapstructure:"colors"`
}

// colorConfig holds the ANSI color for each rendered field.
type colorConfig struct {
	Path    string `mapstructure:"path"`
	Size    string `mapstructure:"size"`
	Branch  string `mapstructure:"branch"`
	Project string `mapstructure:"project"`
	Error   string `mapstructure:"error"`
}

var cfg *settings

// newSettingsViper returns a viper instance carrying every default.
func newSettingsViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("hidden_prefix", ".")
	v.SetDefault("log_level", "warn")

	// Bright ANSI colors
	v.SetDefault("colors.path", "10")
	v.SetDefault("colors.size", "14")
	v.SetDefault("colors.branch", "11")
	v.SetDefault("colors.project", "13")
	v.SetDefault("colors.error", "9")

	return v
}

// loadSettings unmarshals the defaults into a settings value.
func loadSettings() (*settings, error) {
	var s settings
	if err := newSettingsViper().Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	if s.HiddenPrefix == "" {
		return nil, fmt.Errorf("hidden_prefix must not be empty")
	}
	return &s, nil
}

// initConfig populates cfg and the package logger. Called via cobra.OnInitialize.
func initConfig() {
	s, err := loadSettings()
	cobra.CheckErr(err)
	cfg = s

	level, err := parseLevel(cfg.LogLevel)
	cobra.CheckErr(err)
	log = newLogger(os.Stderr, level)
}

// currentSettings returns cfg, loading it on first use when the command
// initializers have not run (e.g. in tests calling helpers directly).
func currentSettings() *settings {
	if cfg == nil {
		initConfig()
	}
	return cfg
}
