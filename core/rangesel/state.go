package rangesel

// State owns the bounds and the current selection. All writes go through
// Validate. It does not render; callers do that after each mutation.
type State struct {
	bounds    Bounds
	selection Selection
}

// NewState starts from the full bounds and applies initial through the
// validator, so the invariant holds even for an unchecked initial value.
func NewState(bounds Bounds, initial Selection) *State {
	s := &State{bounds: bounds, selection: Selection(bounds)}
	s.SetPartial(Partial{Min: &initial.Min, Max: &initial.Max})
	return s
}

func (s *State) Bounds() Bounds { return s.bounds }

func (s *State) Selection() Selection { return s.selection }

// SetPartial applies Min before Max when both are present.
func (s *State) SetPartial(p Partial) Selection {
	if p.Min != nil {
		s.SetDirect(Min, *p.Min)
	}
	if p.Max != nil {
		s.SetDirect(Max, *p.Max)
	}
	return s.selection
}

func (s *State) SetDirect(h HandleID, v float64) Selection {
	s.selection = Validate(s.bounds, s.selection, h, v)
	return s.selection
}
