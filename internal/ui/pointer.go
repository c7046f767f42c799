package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/rangeslider/core/rangesel"
)

// hitTarget is what lies under the cursor inside a widget.
type hitTarget int

const (
	hitNone hitTarget = iota
	hitTrack
	hitHandleMin
	hitHandleMax
)

func (t hitTarget) handle() (rangesel.HandleID, bool) {
	switch t {
	case hitHandleMin:
		return rangesel.Min, true
	case hitHandleMax:
		return rangesel.Max, true
	}
	return rangesel.Min, false
}

// Pointer turns the polled mouse state into widget events. Moves and
// releases are reported wherever the cursor is in the window, so a drag that
// leaves the widget keeps being tracked. Handle presses and track clicks are
// resolved through hit.
type Pointer struct {
	hit  func(x, y int) hitTarget
	subs map[rangesel.EventKind][]func(rangesel.PointerEvent)

	down         bool
	pressTarget  hitTarget
	lastX, lastY int
	seen         bool
}

func NewPointer(hit func(x, y int) hitTarget) *Pointer {
	return &Pointer{hit: hit, subs: map[rangesel.EventKind][]func(rangesel.PointerEvent){}}
}

func (p *Pointer) Subscribe(kind rangesel.EventKind, fn func(rangesel.PointerEvent)) {
	p.subs[kind] = append(p.subs[kind], fn)
}

// Pressed reports whether the left button was down at the last poll.
func (p *Pointer) Pressed() bool { return p.down }

// Poll reads the cursor once per tick and fires, in order: move, handle
// press, release, track click. The move goes first so a press never drags
// the handle to the press position; only later moves do.
func (p *Pointer) Poll() {
	x, y := cursorPosition()
	pressed := isMouseButtonPressed(ebiten.MouseButtonLeft)
	ev := rangesel.PointerEvent{X: float64(x), Y: float64(y)}

	if !p.seen || x != p.lastX || y != p.lastY {
		p.fire(rangesel.DocumentPointerMove, ev)
	}
	p.lastX, p.lastY, p.seen = x, y, true

	if pressed && !p.down {
		p.down = true
		p.pressTarget = p.hit(x, y)
		if h, ok := p.pressTarget.handle(); ok {
			ev.Handle = h
			p.fire(rangesel.HandlePointerDown, ev)
			ev.Handle = rangesel.Min
		}
	}

	if !pressed && p.down {
		p.down = false
		p.fire(rangesel.DocumentPointerUp, ev)
		if p.pressTarget == hitTrack && p.hit(x, y) == hitTrack {
			p.fire(rangesel.TrackClick, ev)
		}
		p.pressTarget = hitNone
	}
}

func (p *Pointer) fire(kind rangesel.EventKind, ev rangesel.PointerEvent) {
	for _, fn := range p.subs[kind] {
		fn(ev)
	}
}
