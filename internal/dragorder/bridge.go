package dragorder

import (
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/dragorder/internal/tree"
)

// foreignController returns the controller owning the foreign drop target
// around container, or nil if the drag stays here.
func (c *Controller) foreignController(container *tree.Node) *Controller {
	if c.opts.ForeignDrop == nil {
		return nil
	}
	target := container.Closest(c.opts.ForeignDrop)
	if target == nil || target == c.container {
		return nil
	}
	foreign := c.opts.Registry.Lookup(target)
	if foreign == c {
		return nil
	}
	return foreign
}

// handoff transfers the session to foreign and reports whether foreign took
// it. The local placeholder is dropped; foreign builds its own. Ownership
// changes before either side runs callbacks, so no two controllers hold the
// session at once.
func (c *Controller) handoff(foreign *Controller, e PointerEvent) bool {
	if !foreign.accepts() {
		return false
	}
	s := c.session
	c.release()
	foreign.dragEnter(s, e)

	c.state = HandedOff
	c.opts.Callbacks.DragLeave()
	c.state = Idle
	return true
}

// accepts reports whether c can take over a drag from another controller.
func (c *Controller) accepts() bool {
	return c.session == nil
}

// dragEnter makes c the owner of a session handed over by another
// controller.
func (c *Controller) dragEnter(s *session, e PointerEvent) {
	placeholder := c.opts.Placeholder(s.item)
	target := c.resolveContainer(e.X, e.Y)
	if target == nil || !c.container.Contains(target) {
		target = c.container
	}
	target.Append(placeholder)

	s.last = cellbuf.Pos(e.X, e.Y)
	s.hasLast = true
	c.begin(s, placeholder)
	c.moveProxy(e.X, e.Y)

	c.opts.Callbacks.DragEnter()
	c.opts.Callbacks.DragMove(placeholder)
}
