package rangesel

import (
	"fmt"
	"math"
	"strings"
)

// ScaleMode selects how values map onto the track.
type ScaleMode int

const (
	// ScaleLegacy divides by bounds.Max alone and therefore assumes
	// bounds.Min == 0. Kept as the default for behavioural compatibility.
	ScaleLegacy ScaleMode = iota
	// ScaleSpan maps bounds.Min to the left edge and bounds.Max to the right.
	ScaleSpan
)

func (m ScaleMode) Valid() bool { return m == ScaleLegacy || m == ScaleSpan }

func (m ScaleMode) String() string {
	switch m {
	case ScaleLegacy:
		return "legacy"
	case ScaleSpan:
		return "span"
	default:
		return fmt.Sprintf("ScaleMode(%d)", int(m))
	}
}

// ParseScaleMode accepts "legacy", "span" or the empty string (legacy).
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "legacy":
		return ScaleLegacy, nil
	case "span":
		return ScaleSpan, nil
	default:
		return ScaleLegacy, fmt.Errorf("unknown scale mode %q", s)
	}
}

// Scale converts between domain values and track fractions for one Bounds.
type Scale struct {
	Mode   ScaleMode
	Bounds Bounds
}

// Fraction returns where v sits along the track, 0 at the left edge and 1 at
// the right edge. Not clamped.
func (s Scale) Fraction(v float64) float64 {
	if s.Mode == ScaleSpan {
		return (v - s.Bounds.Min) / (s.Bounds.Max - s.Bounds.Min)
	}
	return v / s.Bounds.Max
}

// Value is the inverse of Fraction, floored to a whole value.
func (s Scale) Value(fraction float64) float64 {
	if s.Mode == ScaleSpan {
		return math.Floor(s.Bounds.Min + fraction*(s.Bounds.Max-s.Bounds.Min))
	}
	return math.Floor(fraction * s.Bounds.Max)
}

// PixelToValue maps a window-space X coordinate to a domain value. Results
// outside the bounds are returned as is; clamping happens in Validate. A
// zero-width track yields a non-finite result.
func (s Scale) PixelToValue(pixelX float64, track TrackGeometry) float64 {
	return s.Value((pixelX - track.LeftEdgePixel) / track.WidthPixel)
}

// PixelToValue is the legacy mapping:
// floor((pixelX - left) / width * bounds.Max).
func PixelToValue(pixelX float64, track TrackGeometry, bounds Bounds) float64 {
	return Scale{Mode: ScaleLegacy, Bounds: bounds}.PixelToValue(pixelX, track)
}
