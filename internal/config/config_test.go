package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
)

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		k, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, EnvPrefix+"_") {
			t.Setenv(k, "")
			require.NoError(t, os.Unsetenv(k))
		}
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.SliderFile)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultWindowWidth, cfg.WindowWidth)
	assert.Equal(t, DefaultWindowHeight, cfg.WindowHeight)
	assert.Equal(t, DefaultWindowTitle, cfg.WindowTitle)
	assert.Equal(t, "", cfg.MetricsAddr)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RANGESLIDER_LOG_LEVEL", "DEBUG")
	t.Setenv("RANGESLIDER_WINDOW_WIDTH", "1024")
	t.Setenv("RANGESLIDER_METRICS_ADDR", ":9090")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, 1024, cfg.WindowWidth)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoadFromEnv_BadNumber(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("RANGESLIDER_WINDOW_HEIGHT", "tall")

	_, err := LoadFromEnv()
	assert.Error(t, err)
}

func TestEnvConfigValidate(t *testing.T) {
	cfg := EnvConfig{LogFormat: "xml", WindowWidth: 0, WindowHeight: 10}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
	assert.Contains(t, err.Error(), "window size")
}

func TestParseSliders(t *testing.T) {
	doc := `
sliders:
  - name: price
    bounds: {min: 0, max: 500}
    selection: {min: 100, max: 250}
    unit: " EUR"
  - name: year
    bounds: {min: 1990, max: 2030}
    mapping: span
`
	f, err := ParseSliders(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, f.Sliders, 2)

	price, err := f.Sliders[0].RangeConfig()
	require.NoError(t, err)
	assert.Equal(t, rangesel.Bounds{Min: 0, Max: 500}, price.Bounds)
	require.NotNil(t, price.Initial)
	assert.Equal(t, rangesel.Selection{Min: 100, Max: 250}, *price.Initial)
	assert.Equal(t, rangesel.ScaleLegacy, price.Scale)
	assert.Equal(t, " EUR", f.Sliders[0].Unit)

	year, err := f.Sliders[1].RangeConfig()
	require.NoError(t, err)
	assert.Equal(t, rangesel.ScaleSpan, year.Scale)
	assert.Nil(t, year.Initial)
}

func TestParseSliders_CollectsAllErrors(t *testing.T) {
	doc := `
sliders:
  - name: a
    bounds: {min: 0, max: 0}
  - name: a
    bounds: {min: 0, max: 10}
    selection: {min: 5, max: 50}
  - name: ""
    bounds: {min: 0, max: 10}
    mapping: log
`
	_, err := ParseSliders(strings.NewReader(doc))
	require.Error(t, err)

	assert.True(t, errors.Is(err, rangesel.ErrZeroMax))
	assert.True(t, errors.Is(err, ErrDuplicateName))
	assert.True(t, errors.Is(err, rangesel.ErrSelectionOutOfBounds))
	assert.True(t, errors.Is(err, ErrEmptyName))
	assert.Contains(t, err.Error(), `unknown scale mode "log"`)
}

func TestParseSliders_RejectsUnknownKeys(t *testing.T) {
	_, err := ParseSliders(strings.NewReader("sliders:\n  - name: a\n    bounds: {min: 0, max: 1}\n    step: 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode sliders")
}

func TestParseSliders_Empty(t *testing.T) {
	_, err := ParseSliders(strings.NewReader(""))
	assert.True(t, errors.Is(err, ErrNoSliders))
}

func TestDefaultSlidersAreValid(t *testing.T) {
	assert.NoError(t, DefaultSliders().Validate())
}

func TestLoad_DotEnvAndSliderFile(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	sliders := filepath.Join(dir, "sliders.yaml")
	require.NoError(t, os.WriteFile(sliders, []byte("sliders:\n  - name: only\n    bounds: {min: 0, max: 10}\n"), 0o644))
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RANGESLIDER_SLIDER_FILE="+sliders+"\nRANGESLIDER_LOG_FORMAT=json\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("RANGESLIDER_SLIDER_FILE")
		os.Unsetenv("RANGESLIDER_LOG_FORMAT")
	})

	cfg, err := Load(envFile, "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Env.LogFormat)
	require.Len(t, cfg.Sliders.Sliders, 1)
	assert.Equal(t, "only", cfg.Sliders.Sliders[0].Name)
}

func TestLoad_DefaultsWithoutSliderFile(t *testing.T) {
	clearEnvVars(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultSliders(), cfg.Sliders)
}

func TestLoad_MissingSliderFile(t *testing.T) {
	clearEnvVars(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"), "/nonexistent/sliders.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
