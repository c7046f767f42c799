package ui

import (
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
)

// newTestSlider places the track at x=[6,206), 200px wide, with its middle
// at y=40. Value v sits at x = 6 + 2v.
func newTestSlider(t *testing.T, sel rangesel.Selection, opts ...rangesel.Option) *RangeSlider {
	t.Helper()
	s, err := NewRangeSlider("test", image.Rect(0, 0, 212, 80),
		rangesel.Config{Bounds: rangesel.Bounds{Min: 0, Max: 100}, Initial: &sel}, opts...)
	require.NoError(t, err)
	return s
}

func TestRangeSliderGeometry(t *testing.T) {
	useFixedFont(t)
	s := newTestSlider(t, rangesel.Selection{Min: 20, Max: 80})

	assert.Equal(t, rangesel.TrackGeometry{LeftEdgePixel: 6, WidthPixel: 200}, s.TrackGeometry())
	assert.Equal(t, image.Rect(40, 30, 52, 50), s.handleRect(rangesel.Min))
	assert.Equal(t, image.Rect(160, 30, 172, 50), s.handleRect(rangesel.Max))

	assert.Equal(t, hitHandleMin, s.hitTest(46, 40))
	assert.Equal(t, hitHandleMax, s.hitTest(165, 35))
	assert.Equal(t, hitTrack, s.hitTest(100, 40))
	assert.Equal(t, hitNone, s.hitTest(100, 75))
}

func TestRangeSliderDragPastOtherHandle(t *testing.T) {
	useFixedFont(t)
	m := useFakeMouse(t)
	s := newTestSlider(t, rangesel.Selection{Min: 20, Max: 80})
	update := func() { s.Update() }

	m.at(46, 40, true, update)
	m.at(186, 40, true, update) // value 90
	assert.True(t, s.Update())
	m.at(186, 40, false, update)

	assert.Equal(t, rangesel.Selection{Min: 80, Max: 80}, s.Selection())
	assert.False(t, s.Update())
}

func TestRangeSliderPressWithoutMoveKeepsSelection(t *testing.T) {
	useFixedFont(t)
	m := useFakeMouse(t)
	s := newTestSlider(t, rangesel.Selection{Min: 20, Max: 80})
	update := func() { s.Update() }

	m.at(0, 0, false, update)
	m.at(51, 40, true, update) // right edge of the min handle, value 22
	assert.True(t, s.Update())
	m.at(51, 40, false, update)

	assert.Equal(t, rangesel.Selection{Min: 20, Max: 80}, s.Selection())
}

func TestRangeSliderDragOutsideWindowClampsToBounds(t *testing.T) {
	useFixedFont(t)
	m := useFakeMouse(t)
	s := newTestSlider(t, rangesel.Selection{Min: 20, Max: 80})
	update := func() { s.Update() }

	m.at(46, 40, true, update)
	m.at(-100, 300, true, update)
	assert.Equal(t, rangesel.Selection{Min: 0, Max: 80}, s.Selection())

	m.at(-100, 300, false, update)
	m.at(100, 40, false, update)
	assert.Equal(t, rangesel.Selection{Min: 0, Max: 80}, s.Selection(), "released drag stops tracking")
}

func TestRangeSliderTrackClick(t *testing.T) {
	useFixedFont(t)
	m := useFakeMouse(t)
	s := newTestSlider(t, rangesel.Selection{Min: 30, Max: 70})
	update := func() { s.Update() }

	m.at(86, 40, true, update) // value 40
	m.at(86, 40, false, update)

	assert.Equal(t, rangesel.Selection{Min: 40, Max: 70}, s.Selection())
}

func TestRangeSliderSetRectRelayouts(t *testing.T) {
	useFixedFont(t)
	s := newTestSlider(t, rangesel.Selection{Min: 50, Max: 100})

	s.SetRect(image.Rect(0, 100, 412, 180))
	assert.Equal(t, image.Rect(0, 100, 412, 180), s.Rect())
	assert.Equal(t, rangesel.TrackGeometry{LeftEdgePixel: 6, WidthPixel: 400}, s.TrackGeometry())
	// centre of the min handle is at 6 + 200
	r := s.handleRect(rangesel.Min)
	assert.Equal(t, 206, r.Min.X+r.Dx()/2)
}

func TestRangeSliderDrawUsesLatestFrame(t *testing.T) {
	drawn := useFixedFont(t)
	var rects int
	drawRect = func(_ *ebiten.Image, _ image.Rectangle, _ color.Color, _ bool) { rects++ }
	s := newTestSlider(t, rangesel.Selection{Min: 20, Max: 80})

	s.SetSelection(rangesel.Partial{Max: rangesel.Value(65)})
	s.Draw(nil)

	assert.Equal(t, []string{"test", "20", "65", "0", "100"}, *drawn)
	assert.Equal(t, 6, rects, "track, fill, two handles with borders")
}
