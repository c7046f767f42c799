package rangesel

import "github.com/ingyamilmolinar/rangeslider/internal/utils"

// ResolveTrackClick picks the handle nearer to clicked in value space. Only
// a strictly smaller distance selects Min; ties go to Max.
func ResolveTrackClick(sel Selection, clicked float64) HandleID {
	if utils.Abs(sel.Min-clicked) < utils.Abs(sel.Max-clicked) {
		return Min
	}
	return Max
}
