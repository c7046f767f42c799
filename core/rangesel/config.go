package rangesel

import (
	"errors"
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNonFinite            = errors.New("value is not finite")
	ErrInvertedBounds       = errors.New("bounds min is greater than bounds max")
	ErrZeroMax              = errors.New("bounds max is zero")
	ErrZeroSpan             = errors.New("bounds span is zero")
	ErrSelectionOutOfBounds = errors.New("selection violates bounds.min <= min <= max <= bounds.max")
)

// ConfigError reports one rejected configuration field.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("rangesel: %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config is accepted at construction.
type Config struct {
	Bounds Bounds
	// Initial defaults to the full bounds when nil.
	Initial *Selection
	Scale   ScaleMode
}

// Validate returns every problem found in c, aggregated, or nil.
func (c Config) Validate() error {
	var errs *multierror.Error
	add := func(field string, err error) {
		errs = multierror.Append(errs, &ConfigError{Field: field, Err: err})
	}

	if !finite(c.Bounds.Min) {
		add("bounds.min", ErrNonFinite)
	}
	if !finite(c.Bounds.Max) {
		add("bounds.max", ErrNonFinite)
	}
	if c.Bounds.Min > c.Bounds.Max {
		add("bounds", ErrInvertedBounds)
	}
	switch c.Scale {
	case ScaleSpan:
		if c.Bounds.Min == c.Bounds.Max {
			add("bounds", ErrZeroSpan)
		}
	default:
		if c.Bounds.Max == 0 {
			add("bounds.max", ErrZeroMax)
		}
	}
	if !c.Scale.Valid() {
		add("scale", fmt.Errorf("unknown scale mode %d", int(c.Scale)))
	}

	if c.Initial != nil {
		s := *c.Initial
		switch {
		case !finite(s.Min) || !finite(s.Max):
			add("initial", ErrNonFinite)
		case s.Min < c.Bounds.Min || s.Min > s.Max || s.Max > c.Bounds.Max:
			add("initial", fmt.Errorf("%w: %s within %s", ErrSelectionOutOfBounds, s, Selection(c.Bounds)))
		}
	}
	return errs.ErrorOrNil()
}

func (c Config) initial() Selection {
	if c.Initial != nil {
		return *c.Initial
	}
	return Selection(c.Bounds)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
