package rangesel

import (
	"github.com/rs/xid"

	game_log "github.com/ingyamilmolinar/rangeslider/internal/log"
)

// DragState is the phase of the drag state machine.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	if s == DragDragging {
		return "dragging"
	}
	return "idle"
}

// DragSession lives from a handle's pointer-down to the next pointer-up.
type DragSession struct {
	ID     xid.ID
	Handle HandleID
}

// DragController tracks which handle, if any, is being dragged. The marker
// is per instance; whoever wires window-wide move/up listeners consults it so
// a drag keeps working after the pointer leaves the handle.
type DragController struct {
	session *DragSession
	logger  *game_log.Logger
}

func NewDragController(logger *game_log.Logger) *DragController {
	if logger == nil {
		logger = game_log.Nop()
	}
	return &DragController{logger: logger}
}

func (d *DragController) State() DragState {
	if d.session != nil {
		return DragDragging
	}
	return DragIdle
}

// Down starts a session for h. A second Down without an Up replaces the
// session. Unknown handles are ignored and report false.
func (d *DragController) Down(h HandleID) bool {
	if !h.Valid() {
		d.logger.Debugf("[DRAG] ignoring pointer-down for unknown handle %v", h)
		return false
	}
	if d.session != nil {
		d.logger.Debugf("[DRAG] session %s replaced before release", d.session.ID)
	}
	d.session = &DragSession{ID: xid.New(), Handle: h}
	d.logger.Debugf("[DRAG] session %s started on %v handle", d.session.ID, h)
	return true
}

// Active reports the handle under drag. Moves while idle should be dropped.
func (d *DragController) Active() (HandleID, bool) {
	if d.session == nil {
		return Min, false
	}
	return d.session.Handle, true
}

// Session returns a copy of the current session, if any.
func (d *DragController) Session() (DragSession, bool) {
	if d.session == nil {
		return DragSession{}, false
	}
	return *d.session, true
}

// Up ends the session. It reports the handle that was released, if any.
func (d *DragController) Up() (HandleID, bool) {
	if d.session == nil {
		return Min, false
	}
	s := d.session
	d.session = nil
	d.logger.Debugf("[DRAG] session %s ended on %v handle", s.ID, s.Handle)
	return s.Handle, true
}
