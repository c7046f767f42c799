package ui

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakeMouse drives the input hooks. Each step sets the cursor and button
// and then runs one Update of the widget under test.
type fakeMouse struct {
	x, y    int
	pressed bool
}

func useFakeMouse(t *testing.T) *fakeMouse {
	t.Helper()
	m := &fakeMouse{}
	restore := SetInputForTest(
		func() (int, int) { return m.x, m.y },
		func(b ebiten.MouseButton) bool { return b == ebiten.MouseButtonLeft && m.pressed },
	)
	t.Cleanup(restore)
	return m
}

func (m *fakeMouse) at(x, y int, pressed bool, update func()) {
	m.x, m.y, m.pressed = x, y, pressed
	update()
}

// useFixedFont makes every glyph 7px wide and records drawn text.
func useFixedFont(t *testing.T) *[]string {
	t.Helper()
	var drawn []string
	oldMeasure, oldDraw, oldRect := measureText, drawText, drawRect
	measureText = func(s string) float64 { return float64(len(s)) * 7 }
	drawText = func(_ *ebiten.Image, s string, _, _ float64, _ color.Color) { drawn = append(drawn, s) }
	t.Cleanup(func() { measureText, drawText, drawRect = oldMeasure, oldDraw, oldRect })
	return &drawn
}
