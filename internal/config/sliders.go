package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
)

var (
	ErrNoSliders     = errors.New("no sliders defined")
	ErrEmptyName     = errors.New("slider name is empty")
	ErrDuplicateName = errors.New("slider name is used twice")
)

// SliderFile is the YAML document:
//
//	sliders:
//	  - name: price
//	    bounds: {min: 0, max: 500}
//	    selection: {min: 100, max: 250}
//	    mapping: legacy   # or span
//	    unit: " EUR"
type SliderFile struct {
	Sliders []SliderEntry `yaml:"sliders"`
}

type SliderEntry struct {
	Name      string              `yaml:"name"`
	Bounds    rangesel.Bounds     `yaml:"bounds"`
	Selection *rangesel.Selection `yaml:"selection,omitempty"`
	Mapping   string              `yaml:"mapping,omitempty"`
	Unit      string              `yaml:"unit,omitempty"`
}

// RangeConfig converts e into a validated rangesel.Config.
func (e SliderEntry) RangeConfig() (rangesel.Config, error) {
	mode, err := rangesel.ParseScaleMode(e.Mapping)
	if err != nil {
		return rangesel.Config{}, err
	}
	cfg := rangesel.Config{Bounds: e.Bounds, Initial: e.Selection, Scale: mode}
	if err := cfg.Validate(); err != nil {
		return rangesel.Config{}, err
	}
	return cfg, nil
}

// Validate reports every problem in f at once.
func (f SliderFile) Validate() error {
	var errs *multierror.Error
	if len(f.Sliders) == 0 {
		errs = multierror.Append(errs, ErrNoSliders)
	}
	seen := map[string]bool{}
	for i, e := range f.Sliders {
		switch {
		case e.Name == "":
			errs = multierror.Append(errs, fmt.Errorf("sliders[%d]: %w", i, ErrEmptyName))
		case seen[e.Name]:
			errs = multierror.Append(errs, fmt.Errorf("sliders[%d] %q: %w", i, e.Name, ErrDuplicateName))
		}
		seen[e.Name] = true
		if _, err := e.RangeConfig(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("sliders[%d] %q: %w", i, e.Name, err))
		}
	}
	return errs.ErrorOrNil()
}

// ParseSliders decodes and validates a slider document. Unknown keys are
// rejected.
func ParseSliders(r io.Reader) (SliderFile, error) {
	var f SliderFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return SliderFile{}, fmt.Errorf("decode sliders: %w", err)
	}
	if err := f.Validate(); err != nil {
		return SliderFile{}, err
	}
	return f, nil
}

// LoadSliders reads the slider document at path.
func LoadSliders(path string) (SliderFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return SliderFile{}, fmt.Errorf("open sliders: %w", err)
	}
	defer fh.Close()
	f, err := ParseSliders(fh)
	if err != nil {
		return SliderFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// DefaultSliders is shown when no slider file is configured.
func DefaultSliders() SliderFile {
	return SliderFile{Sliders: []SliderEntry{
		{
			Name:      "range",
			Bounds:    rangesel.Bounds{Min: 0, Max: 100},
			Selection: &rangesel.Selection{Min: 20, Max: 80},
		},
		{
			Name:      "percent",
			Bounds:    rangesel.Bounds{Min: 0, Max: 100},
			Selection: &rangesel.Selection{Min: 30, Max: 70},
			Unit:      "%",
		},
		{
			Name:    "offset",
			Bounds:  rangesel.Bounds{Min: 1000, Max: 2000},
			Mapping: "span",
		},
	}}
}
