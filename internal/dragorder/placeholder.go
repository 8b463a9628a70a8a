package dragorder

import (
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/dragorder/internal/tree"
)

// placeNear moves the placeholder next to hovered. The side depends on the
// direction the pointer travelled since the previous event: up or left puts
// it before, anything else after.
func (c *Controller) placeNear(hovered *tree.Node, last, current cellbuf.Position) {
	ph := c.placeholder
	parent, next := c.slot(ph)
	if last.Y > current.Y || last.X > current.X {
		hovered.Before(ph)
	} else {
		hovered.After(ph)
	}
	c.relocated(parent, next)
}

// appendPlaceholder makes the placeholder the last element of container.
func (c *Controller) appendPlaceholder(container *tree.Node) {
	ph := c.placeholder
	parent, next := c.slot(ph)
	if parent == container && next == nil {
		return
	}
	container.Append(ph)
	c.relocated(parent, next)
}

// relocated fires DragMove if the placeholder left the slot described by
// parent and next.
func (c *Controller) relocated(parent, next *tree.Node) {
	p, n := c.slot(c.placeholder)
	if p == parent && n == next {
		return
	}
	c.opts.Callbacks.DragMove(c.placeholder)
}

// slot identifies where n sits by its parent and the next sibling that is
// neither a marker nor floating.
func (c *Controller) slot(n *tree.Node) (parent, next *tree.Node) {
	parent = n.Parent()
	if parent == nil {
		return nil, nil
	}
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if !s.Marker && !s.Floating {
			return parent, s
		}
	}
	return parent, nil
}
