package dragorder

import "github.com/idursun/dragorder/internal/tree"

// PointerEvent is a pointer press, move or release in cell coordinates.
type PointerEvent struct {
	X, Y      int
	PointerID int
	// Target is the topmost node under the pointer when the event was
	// dispatched. It may be nil for moves and releases.
	Target *tree.Node
}

// KeyEvent is a key release. Key uses the same names as tea.KeyMsg.String,
// e.g. "esc" or "ctrl+c".
type KeyEvent struct {
	Key string
}

func (k KeyEvent) String() string {
	return k.Key
}

// Listener receives window level events while a drag is in progress.
type Listener interface {
	PointerMove(e PointerEvent)
	PointerUp(e PointerEvent)
	KeyUp(e KeyEvent)
}

// Host is the environment a Controller runs in. It owns the node tree,
// dispatches input and answers point-stack queries. Every registration
// returns a release func which the controller calls exactly once.
type Host interface {
	// NodesAt returns the nodes under (x, y), topmost first.
	NodesAt(x, y int) []*tree.Node
	// OnPointerDown delivers pointer presses whose target lies inside
	// container.
	OnPointerDown(container *tree.Node, fn func(PointerEvent)) (remove func())
	// Listen delivers every pointer move, pointer release and key release to
	// l regardless of where it happens.
	Listen(l Listener) (release func())
	// Capture routes the pointer to target until released, even if target
	// moves around in the tree.
	Capture(target *tree.Node, pointerID int) (release func())
}
