// Package rangesel implements the interaction core of a dual-handle range
// slider: pixel/value mapping, the selection invariants, the drag state
// machine, track clicks and the fill/handle/label render pipeline.
//
// The package is independent of any window system. A Host supplies layout
// queries and pointer events, a Renderer consumes computed geometry.
package rangesel

import (
	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
)

// EventKind names the pointer events a Host delivers.
type EventKind int

const (
	// HandlePointerDown fires when a press starts on a handle.
	HandlePointerDown EventKind = iota
	// DocumentPointerMove fires for every pointer move anywhere in the
	// window, not only over the widget.
	DocumentPointerMove
	// DocumentPointerUp fires for a release anywhere in the window.
	DocumentPointerUp
	// TrackClick fires for a press and release on the track itself.
	TrackClick
)

func (k EventKind) String() string {
	switch k {
	case HandlePointerDown:
		return "handle-pointer-down"
	case DocumentPointerMove:
		return "document-pointer-move"
	case DocumentPointerUp:
		return "document-pointer-up"
	case TrackClick:
		return "track-click"
	default:
		return "unknown"
	}
}

// PointerEvent carries window-space pointer coordinates. Handle is only
// meaningful for HandlePointerDown.
type PointerEvent struct {
	X, Y   float64
	Handle HandleID
}

// Host is the environment a Range lives in.
type Host interface {
	Measurer
	Subscribe(kind EventKind, fn func(PointerEvent))
}

// Hooks observe interaction outcomes, e.g. for metrics.
type Hooks interface {
	DragStarted(h HandleID)
	DragEnded(h HandleID)
	TrackClicked(h HandleID)
	SelectionChanged(sel Selection)
}

type nopHooks struct{}

func (nopHooks) DragStarted(HandleID)       {}
func (nopHooks) DragEnded(HandleID)         {}
func (nopHooks) TrackClicked(HandleID)      {}
func (nopHooks) SelectionChanged(Selection) {}

type Option func(*Range)

func WithLogger(l *game_log.Logger) Option {
	return func(r *Range) { r.logger = l }
}

// WithObserver registers fn to be called after every mutation that moves the
// selection, before the re-render.
func WithObserver(fn func(Selection)) Option {
	return func(r *Range) { r.observer = fn }
}

func WithHooks(h Hooks) Option {
	return func(r *Range) { r.hooks = h }
}

func WithFormatter(f Formatter) Option {
	return func(r *Range) { r.pipeline.Format = f }
}

// Range wires the state, the drag controller and the render pipeline to a
// Host. All methods must be called from the host's event goroutine.
type Range struct {
	state    *State
	drag     *DragController
	pipeline Pipeline
	host     Host
	renderer Renderer
	observer func(Selection)
	hooks    Hooks
	logger   *game_log.Logger
	frame    Frame
}

// New validates cfg, subscribes to host events and renders once.
func New(cfg Config, host Host, renderer Renderer, opts ...Option) (*Range, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := &Range{
		pipeline: Pipeline{Scale: Scale{Mode: cfg.Scale, Bounds: cfg.Bounds}},
		host:     host,
		renderer: renderer,
		hooks:    nopHooks{},
	}
	for _, o := range opts {
		o(r)
	}
	if r.logger == nil {
		r.logger = game_log.Nop()
	}
	r.state = NewState(cfg.Bounds, cfg.initial())
	r.drag = NewDragController(r.logger)

	host.Subscribe(HandlePointerDown, r.onHandleDown)
	host.Subscribe(DocumentPointerMove, r.onMove)
	host.Subscribe(DocumentPointerUp, r.onUp)
	host.Subscribe(TrackClick, r.onTrackClick)

	r.logger.Debugf("[RANGE] created bounds=%s selection=%s scale=%v",
		Selection(cfg.Bounds), r.state.Selection(), cfg.Scale)
	r.Update()
	return r, nil
}

// Update re-runs the full render pipeline from the current state.
func (r *Range) Update() {
	r.frame = r.pipeline.Run(r.state.Selection(), r.host, r.renderer)
}

// SetSelection applies p through the same validator path as a drag, Min
// first, then re-renders if the selection moved.
func (r *Range) SetSelection(p Partial) Selection {
	prev := r.state.Selection()
	sel := r.state.SetPartial(p)
	r.changed(prev, sel)
	return sel
}

func (r *Range) Selection() Selection { return r.state.Selection() }

func (r *Range) Bounds() Bounds { return r.state.Bounds() }

// Dragging reports the handle currently being dragged.
func (r *Range) Dragging() (HandleID, bool) { return r.drag.Active() }

// Frame returns the geometry from the most recent render.
func (r *Range) Frame() Frame { return r.frame }

func (r *Range) onHandleDown(ev PointerEvent) {
	if !r.drag.Down(ev.Handle) {
		return
	}
	r.hooks.DragStarted(ev.Handle)
}

func (r *Range) onMove(ev PointerEvent) {
	h, ok := r.drag.Active()
	if !ok {
		return
	}
	r.commit(h, r.pipeline.Scale.PixelToValue(ev.X, r.host.TrackGeometry()))
}

func (r *Range) onUp(PointerEvent) {
	if h, ok := r.drag.Up(); ok {
		r.hooks.DragEnded(h)
	}
}

func (r *Range) onTrackClick(ev PointerEvent) {
	v := r.pipeline.Scale.PixelToValue(ev.X, r.host.TrackGeometry())
	h := ResolveTrackClick(r.state.Selection(), v)
	r.logger.Debugf("[RANGE] track click value=%s moves %v handle", FormatValue(v), h)
	r.hooks.TrackClicked(h)
	r.commit(h, v)
}

func (r *Range) commit(h HandleID, v float64) {
	prev := r.state.Selection()
	r.changed(prev, r.state.SetDirect(h, v))
}

// changed notifies and re-renders only when the clamped result differs from
// prev.
func (r *Range) changed(prev, sel Selection) {
	if sel == prev {
		return
	}
	if r.observer != nil {
		r.observer(sel)
	}
	r.hooks.SelectionChanged(sel)
	r.Update()
}
