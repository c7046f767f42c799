package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
)

// SliderStyle sizes the parts of a RangeSlider.
type SliderStyle struct {
	HandleW     int
	HandleH     int
	TrackH      int
	LabelGap    int
	ShowBounds  bool
	ShowValues  bool
	ShowTitle   bool
	TitleIndent int
}

var DefaultSliderStyle = SliderStyle{
	HandleW:    12,
	HandleH:    20,
	TrackH:     4,
	LabelGap:   4,
	ShowBounds: true,
	ShowValues: true,
	ShowTitle:  true,
}

// RangeSlider is a horizontal two-handle slider. It is the rangesel.Host for
// its Range: it answers layout queries from its rectangle, delivers pointer
// events polled from ebiten and keeps the last rendered frame for Draw.
type RangeSlider struct {
	Name   string
	Style  SliderStyle
	Track  TrackStyle
	Handle HandleStyle
	Label  LabelStyle

	r       image.Rectangle
	pointer *Pointer
	rng     *rangesel.Range

	fill    rangesel.Fill
	handles [2]rangesel.HandlePlacement
	labels  rangesel.Labels
}

// NewRangeSlider lays the widget out in r and builds its Range from cfg.
func NewRangeSlider(name string, r image.Rectangle, cfg rangesel.Config, opts ...rangesel.Option) (*RangeSlider, error) {
	s := &RangeSlider{
		Name:   name,
		Style:  DefaultSliderStyle,
		Track:  defaultTrackStyle,
		Handle: defaultHandleStyle,
		Label:  defaultLabelStyle,
		r:      r,
	}
	s.pointer = NewPointer(s.hitTest)
	rng, err := rangesel.New(cfg, s, s, opts...)
	if err != nil {
		return nil, err
	}
	s.rng = rng
	return s, nil
}

// SetRect moves the widget and re-renders against the new layout.
func (s *RangeSlider) SetRect(r image.Rectangle) {
	s.r = r
	s.rng.Update()
}

func (s *RangeSlider) Rect() image.Rectangle { return s.r }

func (s *RangeSlider) Range() *rangesel.Range { return s.rng }

func (s *RangeSlider) Selection() rangesel.Selection { return s.rng.Selection() }

func (s *RangeSlider) SetSelection(p rangesel.Partial) rangesel.Selection {
	return s.rng.SetSelection(p)
}

// Update processes mouse interaction. It reports whether a handle is being
// dragged after this tick.
func (s *RangeSlider) Update() bool {
	s.pointer.Poll()
	_, dragging := s.rng.Dragging()
	return dragging
}

/* ───────────────────── rangesel.Host ───────────────────── */

// trackRect is the thin bar along the vertical middle of the widget, inset
// by half a handle on each side so centred handles stay inside r.
func (s *RangeSlider) trackRect() image.Rectangle {
	inset := s.Style.HandleW / 2
	return band(s.r.Min.X+inset, s.r.Max.X-inset, midY(s.r), s.Style.TrackH)
}

func (s *RangeSlider) TrackGeometry() rangesel.TrackGeometry {
	t := s.trackRect()
	return rangesel.TrackGeometry{LeftEdgePixel: float64(t.Min.X), WidthPixel: float64(t.Dx())}
}

func (s *RangeSlider) HandleWidth(rangesel.HandleID) float64 { return float64(s.Style.HandleW) }

func (s *RangeSlider) LabelWidth(text string) float64 { return measureText(text) }

func (s *RangeSlider) Subscribe(kind rangesel.EventKind, fn func(rangesel.PointerEvent)) {
	s.pointer.Subscribe(kind, fn)
}

/* ───────────────────── rangesel.Renderer ───────────────────── */

func (s *RangeSlider) RenderFill(f rangesel.Fill) { s.fill = f }

func (s *RangeSlider) RenderHandles(h [2]rangesel.HandlePlacement) { s.handles = h }

func (s *RangeSlider) RenderLabels(l rangesel.Labels) { s.labels = l }

/* ───────────────────── geometry & hit testing ───────────────────── */

func (s *RangeSlider) handleRect(h rangesel.HandleID) image.Rectangle {
	t := s.trackRect()
	x := t.Min.X + roundPx(s.handles[h].LeftPixel(float64(t.Dx())))
	return band(x, x+s.Style.HandleW, midY(t), s.Style.HandleH)
}

// trackHitRect widens the track to the handle height so it is clickable.
func (s *RangeSlider) trackHitRect() image.Rectangle {
	t := s.trackRect()
	return band(t.Min.X, t.Max.X, midY(t), s.Style.HandleH)
}

// hitTest checks Max before Min because Max is drawn on top.
func (s *RangeSlider) hitTest(x, y int) hitTarget {
	switch {
	case inside(x, y, s.handleRect(rangesel.Max)):
		return hitHandleMax
	case inside(x, y, s.handleRect(rangesel.Min)):
		return hitHandleMin
	case inside(x, y, s.trackHitRect()):
		return hitTrack
	}
	return hitNone
}

/* ───────────────────── drawing ───────────────────── */

// Draw renders track, fill, handles and labels from the last frame.
func (s *RangeSlider) Draw(dst *ebiten.Image) {
	t := s.trackRect()
	left, right := s.fill.Span(float64(t.Dx()))
	fill := image.Rect(t.Min.X+roundPx(left), t.Min.Y, t.Min.X+roundPx(right), t.Max.Y)
	s.Track.Draw(dst, t, fill)

	active, dragging := s.rng.Dragging()
	for _, h := range [...]rangesel.HandleID{rangesel.Min, rangesel.Max} {
		s.Handle.Draw(dst, s.handleRect(h), dragging && active == h)
	}

	lineH := float64(labelLineH)
	if s.Style.ShowTitle && s.Name != "" {
		drawText(dst, s.Name, float64(s.r.Min.X+s.Style.TitleIndent), float64(s.r.Min.Y), s.Label.Title)
	}
	if s.Style.ShowValues {
		y := float64(midY(t)-s.Style.HandleH/2-s.Style.LabelGap) - lineH
		for _, l := range s.labels.Values {
			drawText(dst, l.Text, float64(t.Min.X)+l.LeftPixel(float64(t.Dx())), y, s.Label.Value)
		}
	}
	if s.Style.ShowBounds {
		y := float64(midY(t)+s.Style.HandleH/2+s.Style.LabelGap)
		drawText(dst, s.labels.BoundMin, float64(t.Min.X), y, s.Label.Bound)
		w := measureText(s.labels.BoundMax)
		drawText(dst, s.labels.BoundMax, float64(t.Max.X)-w, y, s.Label.Bound)
	}
}

// labelLineH is the line height of labelFace.
const labelLineH = 13
