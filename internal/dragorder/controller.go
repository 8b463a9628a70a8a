package dragorder

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/dragorder/internal/tree"
	"github.com/idursun/dragorder/internal/ui/layout"
)

// Controller lets the user reorder the items of one container by dragging
// them with the pointer. At most one drag is active per controller.
type Controller struct {
	container *tree.Node
	host      Host
	opts      Options

	removePointerDown func()
	releaseListeners  func()

	state       State
	session     *session
	placeholder *tree.Node
	moving      bool
}

// New creates a controller for container and registers it in the options'
// registry. Unless opts.Disabled is set it starts listening for presses
// right away.
func New(container *tree.Node, host Host, opts Options) (*Controller, error) {
	if container == nil {
		return nil, errNilContainer
	}
	if host == nil {
		return nil, errNilHost
	}
	c := &Controller{
		container: container,
		host:      host,
		opts:      opts.withDefaults(),
	}
	if err := c.opts.Registry.register(c); err != nil {
		return nil, err
	}
	if !c.opts.Disabled {
		c.Enable()
	}
	return c, nil
}

func (c *Controller) Container() *tree.Node {
	return c.container
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Dragging() bool {
	return c.session != nil
}

func (c *Controller) Enabled() bool {
	return c.removePointerDown != nil
}

// SelectedItem returns the item being dragged, or nil.
func (c *Controller) SelectedItem() *tree.Node {
	if c.session == nil {
		return nil
	}
	return c.session.item
}

// Proxy returns the node following the pointer, or nil.
func (c *Controller) Proxy() *tree.Node {
	if c.session == nil {
		return nil
	}
	return c.session.proxy
}

// Placeholder returns the node marking the drop slot, or nil.
func (c *Controller) Placeholder() *tree.Node {
	return c.placeholder
}

// Enable starts listening for pointer presses on the container.
func (c *Controller) Enable() {
	if c.removePointerDown != nil {
		return
	}
	c.removePointerDown = c.host.OnPointerDown(c.container, c.pointerDown)
}

// Disable stops listening for pointer presses. A drag in progress is not
// affected.
func (c *Controller) Disable() {
	if c.removePointerDown == nil {
		return
	}
	c.removePointerDown()
	c.removePointerDown = nil
}

// Remove disables the controller, cancels any drag in progress and
// unregisters the controller.
func (c *Controller) Remove() {
	c.Disable()
	c.Cancel()
	c.opts.Registry.unregister(c)
}

// Cancel aborts the drag in progress, putting the item back where it was
// when the drag started. It is a no-op without an active drag.
func (c *Controller) Cancel() {
	if c.session == nil {
		return
	}
	s := c.session
	if s.origin.Parent() != nil {
		s.origin.ReplaceWith(s.item)
	} else if c.placeholder != nil && c.placeholder.Parent() != nil {
		c.placeholder.ReplaceWith(s.item)
	}
	c.finish(Cancelled)
}

// Items returns the container's items in order, leaving out the
// controller's own placeholder and anything floating such as the proxy.
func (c *Controller) Items() []*tree.Node {
	var candidates []*tree.Node
	if c.opts.Items != nil {
		candidates = c.container.Query(c.opts.Items)
	} else {
		candidates = c.container.Elements()
	}
	items := make([]*tree.Node, 0, len(candidates))
	for _, n := range candidates {
		if !c.transient(n) {
			items = append(items, n)
		}
	}
	return items
}

func (c *Controller) transient(n *tree.Node) bool {
	if n == c.placeholder {
		return true
	}
	for p := n; p != nil && p != c.container; p = p.Parent() {
		if p.Floating {
			return true
		}
	}
	return false
}

func (c *Controller) pointerDown(e PointerEvent) {
	if c.session != nil {
		return
	}
	if c.opts.Handle != nil && (e.Target == nil || e.Target.Closest(c.opts.Handle) == nil) {
		return
	}
	c.start(e)
}

func (c *Controller) start(e PointerEvent) {
	item := c.resolveItem(e.X, e.Y)
	if item == nil || !c.container.Contains(item) {
		return
	}
	pos := cellbuf.Pos(e.X, e.Y)
	bounds := layout.Bounds(item)

	proxy := c.opts.Proxy(item)
	proxy.Floating = true
	placeholder := c.opts.Placeholder(item)
	item.ReplaceWith(placeholder)
	origin := tree.NewMarker()
	placeholder.Before(origin)

	s := &session{
		item:    item,
		proxy:   proxy,
		origin:  origin,
		offset:  bounds.Min.Sub(pos),
		last:    pos,
		hasLast: true,
	}
	s.releaseCapture = c.host.Capture(e.Target, e.PointerID)
	c.begin(s, placeholder)
	c.moveProxy(e.X, e.Y)

	c.opts.Callbacks.DragStart(c.Items(), item)
	c.opts.Callbacks.DragEnter()
}

// begin makes c the owner of s.
func (c *Controller) begin(s *session, placeholder *tree.Node) {
	c.session = s
	c.placeholder = placeholder
	c.state = Dragging
	c.container.Append(s.proxy)
	c.releaseListeners = c.host.Listen(listener{c: c})
}

func (c *Controller) moveProxy(x, y int) {
	s := c.session
	target := cellbuf.Pos(x, y).Add(s.offset)
	current := layout.Bounds(s.proxy).Min
	s.proxy.MoveBy(target.X-current.X, target.Y-current.Y)
}

func (c *Controller) move(e PointerEvent) {
	if c.moving || c.session == nil {
		return
	}
	c.moving = true
	defer func() { c.moving = false }()

	s := c.session
	c.moveProxy(e.X, e.Y)
	pos := cellbuf.Pos(e.X, e.Y)

	hovered := c.resolveItem(e.X, e.Y)
	switch {
	case hovered != nil && hovered != c.placeholder:
		if s.hasLast {
			c.placeNear(hovered, s.last, pos)
		}
	case hovered == nil:
		container := c.resolveContainer(e.X, e.Y)
		if container == nil {
			break
		}
		if foreign := c.foreignController(container); foreign != nil && c.handoff(foreign, e) {
			return
		}
		if c.container.Contains(container) {
			c.appendPlaceholder(container)
		}
	}
	s.last = pos
	s.hasLast = true
}

func (c *Controller) up(PointerEvent) {
	if c.session == nil {
		return
	}
	s := c.session
	if c.placeholder != nil && c.placeholder.Parent() != nil {
		c.placeholder.ReplaceWith(s.item)
	} else if s.origin.Parent() != nil {
		s.origin.ReplaceWith(s.item)
	}
	c.finish(Dropped)
}

func (c *Controller) keyUp(e KeyEvent) {
	if c.session != nil && key.Matches(e, c.opts.CancelKey) {
		c.Cancel()
	}
}

// finish tears the session down and reports a drop or a cancel. Handoffs
// keep the session alive and leave through handoff instead.
func (c *Controller) finish(exit State) {
	s := c.session
	item := s.item
	s.end()
	c.release()
	c.state = exit

	cb := c.opts.Callbacks
	switch exit {
	case Dropped:
		items := c.Items()
		cb.Drop(items, item)
		cb.DragEnd(items, item)
	case Cancelled:
		cb.DragEnd(c.Items(), item)
	}
	cb.DragLeave()
	c.state = Idle
}

// release drops everything the controller holds for the current session.
func (c *Controller) release() {
	if c.placeholder != nil {
		c.placeholder.Remove()
		c.placeholder = nil
	}
	if c.releaseListeners != nil {
		c.releaseListeners()
		c.releaseListeners = nil
	}
	c.session = nil
}
