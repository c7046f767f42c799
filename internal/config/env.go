// Package config loads process settings from the environment and slider
// definitions from a YAML file.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every variable, e.g. RANGESLIDER_LOG_LEVEL.
const EnvPrefix = "RANGESLIDER"

// Default configuration values.
const (
	DefaultLogLevel     = "INFO"
	DefaultLogFormat    = "console"
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
	DefaultWindowTitle  = "Range Slider"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// SliderFile is the YAML file listing the sliders to show.
	// Env: SLIDER_FILE (empty: built-in demo sliders)
	SliderFile string `envconfig:"SLIDER_FILE"`

	// LogLevel is one of DEBUG, INFO, ERROR, NONE.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is console or json.
	// Env: LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// Env: WINDOW_WIDTH (default: 640)
	WindowWidth int `envconfig:"WINDOW_WIDTH" default:"640"`

	// Env: WINDOW_HEIGHT (default: 480)
	WindowHeight int `envconfig:"WINDOW_HEIGHT" default:"480"`

	// Env: WINDOW_TITLE (default: Range Slider)
	WindowTitle string `envconfig:"WINDOW_TITLE" default:"Range Slider"`

	// MetricsAddr enables the prometheus endpoint when set, e.g. ":9090".
	// Env: METRICS_ADDR
	MetricsAddr string `envconfig:"METRICS_ADDR"`
}

// LoadFromEnv loads configuration from RANGESLIDER_* environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}
