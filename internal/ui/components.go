package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// TrackStyle defines the bar a RangeSlider's handles run along.
type TrackStyle struct {
	Base color.Color
	Fill color.Color
}

// Draw renders the full track r and the selected span fill on top of it.
func (s TrackStyle) Draw(dst *ebiten.Image, r, fill image.Rectangle) {
	drawRect(dst, r, s.Base, true)
	drawRect(dst, fill, s.Fill, true)
}

// HandleStyle describes the draggable handle visuals.
type HandleStyle struct {
	Fill   color.Color
	Active color.Color
	Border color.Color
}

// Draw renders a handle. active marks the handle currently being dragged.
func (s HandleStyle) Draw(dst *ebiten.Image, r image.Rectangle, active bool) {
	fill := s.Fill
	if active {
		fill = s.Active
	}
	drawRect(dst, r, fill, true)
	drawRect(dst, r, s.Border, false)
}

// LabelStyle colours the text drawn around a slider.
type LabelStyle struct {
	Title color.Color
	Value color.Color
	Bound color.Color
}

var (
	defaultTrackStyle  = TrackStyle{Base: colTrack, Fill: colTrackFill}
	defaultHandleStyle = HandleStyle{Fill: colHandle, Active: colHandleDrag, Border: colHandleEdge}
	defaultLabelStyle  = LabelStyle{Title: colSliderTitle, Value: colValueLabel, Bound: colBoundLabel}
)
