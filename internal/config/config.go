package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// AppConfig is the complete configuration of one run.
type AppConfig struct {
	Env     EnvConfig
	Sliders SliderFile
}

// Validate checks the process settings. Sliders are validated on load.
func (e EnvConfig) Validate() error {
	var errs *multierror.Error
	switch strings.ToLower(e.LogFormat) {
	case "console", "json":
	default:
		errs = multierror.Append(errs, fmt.Errorf("LOG_FORMAT: unknown format %q", e.LogFormat))
	}
	if e.WindowWidth <= 0 || e.WindowHeight <= 0 {
		errs = multierror.Append(errs, fmt.Errorf("window size %dx%d must be positive", e.WindowWidth, e.WindowHeight))
	}
	return errs.ErrorOrNil()
}

// Load reads the optional .env file, then the environment, then the slider
// file. sliderFile overrides SLIDER_FILE when non-empty; with neither set the
// built-in demo sliders are used.
func Load(envFile, sliderFile string) (AppConfig, error) {
	if err := LoadDotEnv(envFile); err != nil {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}
	env, err := LoadFromEnv()
	if err != nil {
		return AppConfig{}, fmt.Errorf("load env: %w", err)
	}
	if err := env.Validate(); err != nil {
		return AppConfig{}, err
	}
	if sliderFile == "" {
		sliderFile = env.SliderFile
	}

	cfg := AppConfig{Env: env, Sliders: DefaultSliders()}
	if sliderFile != "" {
		cfg.Sliders, err = LoadSliders(sliderFile)
		if err != nil {
			return AppConfig{}, err
		}
	}
	return cfg, nil
}
