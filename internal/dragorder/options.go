package dragorder

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/idursun/dragorder/internal/tree"
)

// ProxyZ is the z-index given to drag proxies built by the default factory.
const ProxyZ = 1000

// ProxyFactory builds a node standing in for item: the drag proxy that
// follows the pointer, or the placeholder marking the drop slot.
type ProxyFactory func(item *tree.Node) *tree.Node

// Callbacks are invoked synchronously as a drag progresses. items is always a
// fresh snapshot of the container's items at call time.
type Callbacks struct {
	DragStart func(items []*tree.Node, item *tree.Node)
	DragEnter func()
	DragMove  func(placeholder *tree.Node)
	Drop      func(items []*tree.Node, item *tree.Node)
	DragEnd   func(items []*tree.Node, item *tree.Node)
	DragLeave func()
}

// Options configures a Controller. The zero value is usable: every item is a
// direct child of the container, drags start anywhere on an item and
// transfers to other containers are disabled.
type Options struct {
	// Items selects reorderable items. Default: element children of the
	// container.
	Items tree.Matcher
	// Parents selects valid drop containers. Default: the container itself
	// or any node matching ForeignDrop.
	Parents tree.Matcher
	// Handle restricts drag initiation to presses inside a matching node.
	Handle tree.Matcher
	// ForeignDrop identifies containers owned by other controllers that
	// accept items from this one. Nil disables transfers.
	ForeignDrop tree.Matcher

	Proxy       ProxyFactory
	Placeholder ProxyFactory

	// Disabled starts the controller without pointer-down listening.
	Disabled bool
	// CancelKey aborts a drag. Default: esc.
	CancelKey key.Binding
	// Registry is where the controller registers itself so that other
	// controllers can hand drags over. Default: DefaultRegistry.
	Registry *Registry

	Callbacks Callbacks
}

// DefaultProxy deep clones the item, marks it floating and lifts it above
// everything else.
func DefaultProxy(item *tree.Node) *tree.Node {
	proxy := item.Clone()
	proxy.ID = item.ID + "-proxy"
	proxy.AddClass("drag-proxy")
	proxy.Floating = true
	proxy.Z = ProxyZ
	return proxy
}

// DefaultPlaceholder copies the item without its children.
func DefaultPlaceholder(item *tree.Node) *tree.Node {
	placeholder := item.CloneShallow()
	placeholder.ID = item.ID + "-placeholder"
	placeholder.AddClass("placeholder")
	return placeholder
}

var errNilContainer = errors.New("dragorder: container is nil")
var errNilHost = errors.New("dragorder: host is nil")

func (o Options) withDefaults() Options {
	if o.Proxy == nil {
		o.Proxy = DefaultProxy
	}
	if o.Placeholder == nil {
		o.Placeholder = DefaultPlaceholder
	}
	if len(o.CancelKey.Keys()) == 0 {
		o.CancelKey = key.NewBinding(key.WithKeys("esc"))
	}
	if o.Registry == nil {
		o.Registry = DefaultRegistry
	}
	cb := &o.Callbacks
	if cb.DragStart == nil {
		cb.DragStart = func([]*tree.Node, *tree.Node) {}
	}
	if cb.DragEnter == nil {
		cb.DragEnter = func() {}
	}
	if cb.DragMove == nil {
		cb.DragMove = func(*tree.Node) {}
	}
	if cb.Drop == nil {
		cb.Drop = func([]*tree.Node, *tree.Node) {}
	}
	if cb.DragEnd == nil {
		cb.DragEnd = func([]*tree.Node, *tree.Node) {}
	}
	if cb.DragLeave == nil {
		cb.DragLeave = func() {}
	}
	return o
}
