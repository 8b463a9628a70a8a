package dragorder

import (
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/dragorder/internal/tree"
)

// State is the phase of a controller's drag state machine.
type State int

const (
	Idle State = iota
	Dragging
	// Dropped, Cancelled and HandedOff are reported while the exit
	// callbacks run. The controller is Idle again once they return.
	Dropped
	Cancelled
	HandedOff
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Dropped:
		return "dropped"
	case Cancelled:
		return "cancelled"
	case HandedOff:
		return "handed-off"
	}
	return "unknown"
}

// session is the record of an in-progress drag. It moves between
// controllers on handoff; the placeholder does not, each controller builds
// its own.
type session struct {
	item   *tree.Node
	proxy  *tree.Node
	origin *tree.Node
	// offset is the item's top-left corner relative to the pointer at drag
	// start. It keeps the proxy anchored under the cursor.
	offset  cellbuf.Position
	last    cellbuf.Position
	hasLast bool

	releaseCapture func()
}

// end removes the nodes only a session needs and releases the pointer.
func (s *session) end() {
	s.proxy.Remove()
	s.origin.Remove()
	if s.releaseCapture != nil {
		s.releaseCapture()
		s.releaseCapture = nil
	}
}

// listener adapts a controller to Host.Listen without exporting the
// handlers on Controller itself.
type listener struct {
	c *Controller
}

func (l listener) PointerMove(e PointerEvent) { l.c.move(e) }
func (l listener) PointerUp(e PointerEvent)   { l.c.up(e) }
func (l listener) KeyUp(e KeyEvent)           { l.c.keyUp(e) }
