package rangesel

import (
	"fmt"
	"strconv"
)

// HandleID identifies one endpoint of the selection.
type HandleID int

const (
	Min HandleID = iota
	Max
)

func (h HandleID) Valid() bool { return h == Min || h == Max }

func (h HandleID) String() string {
	switch h {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("HandleID(%d)", int(h))
	}
}

// Bounds is the fixed outer interval. Set once per configuration.
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Selection is the chosen sub-interval. Every Selection handed out by this
// package satisfies bounds.Min <= Min <= Max <= bounds.Max.
type Selection struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Get returns the endpoint for h. Unknown handles read as Min.
func (s Selection) Get(h HandleID) float64 {
	if h == Max {
		return s.Max
	}
	return s.Min
}

func (s Selection) String() string {
	return "[" + FormatValue(s.Min) + "," + FormatValue(s.Max) + "]"
}

// Partial carries the fields of a programmatic update. Nil fields are left
// untouched.
type Partial struct {
	Min *float64
	Max *float64
}

// Value is a helper for building a Partial.
func Value(v float64) *float64 { return &v }

// TrackGeometry is a layout snapshot of the track, taken at the moment of use.
type TrackGeometry struct {
	LeftEdgePixel float64
	WidthPixel    float64
}

// Formatter turns a value into label text.
type Formatter func(float64) string

// FormatValue renders v in its shortest decimal form: 20, 20.5, -3.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
