package rangesel

import "math"

// Validate returns current with the endpoint h moved to proposed, clamped
// first against the bounds and then against the opposite endpoint. Handles
// can touch but never cross. Unknown handles and a NaN proposal leave current
// unchanged; infinities clamp like any other out-of-bounds value.
func Validate(bounds Bounds, current Selection, h HandleID, proposed float64) Selection {
	if math.IsNaN(proposed) {
		return current
	}
	switch h {
	case Min:
		if proposed < bounds.Min {
			proposed = bounds.Min
		}
		if proposed > current.Max {
			proposed = current.Max
		}
		current.Min = proposed
	case Max:
		if proposed > bounds.Max {
			proposed = bounds.Max
		}
		if proposed < current.Min {
			proposed = current.Min
		}
		current.Max = proposed
	}
	return current
}
