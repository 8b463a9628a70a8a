package board

import (
	"slices"

	"github.com/idursun/dragorder/internal/dragorder"
	"github.com/idursun/dragorder/internal/tree"
)

type downHandler struct {
	id        int
	container *tree.Node
	fn        func(dragorder.PointerEvent)
}

type registeredListener struct {
	id int
	l  dragorder.Listener
}

// host adapts bubbletea input to the controllers. The terminal reports mouse
// motion for the whole screen, so listeners see every event; pointer capture
// only pins the target reported with moves and releases.
type host struct {
	doc       *tree.Document
	relayout  func()
	downs     []downHandler
	listeners []registeredListener
	nextID    int
	captured  *tree.Node
	captures  int
}

var _ dragorder.Host = (*host)(nil)

func newHost(doc *tree.Document, relayout func()) *host {
	return &host{doc: doc, relayout: relayout}
}

func (h *host) NodesAt(x, y int) []*tree.Node {
	h.relayout()
	return h.doc.NodesAt(x, y)
}

func (h *host) OnPointerDown(container *tree.Node, fn func(dragorder.PointerEvent)) func() {
	h.nextID++
	id := h.nextID
	h.downs = append(h.downs, downHandler{id: id, container: container, fn: fn})
	return func() {
		h.downs = slices.DeleteFunc(h.downs, func(d downHandler) bool { return d.id == id })
	}
}

func (h *host) Listen(l dragorder.Listener) func() {
	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, registeredListener{id: id, l: l})
	return func() {
		h.listeners = slices.DeleteFunc(h.listeners, func(r registeredListener) bool { return r.id == id })
	}
}

func (h *host) Capture(target *tree.Node, _ int) func() {
	h.captured = target
	h.captures++
	return func() {
		h.captures--
		if h.captures == 0 {
			h.captured = nil
		}
	}
}

func (h *host) dragging() bool {
	return len(h.listeners) > 0
}

func (h *host) pointerDown(x, y int) {
	h.relayout()
	target := h.doc.TopAt(x, y)
	if target == nil {
		return
	}
	e := dragorder.PointerEvent{X: x, Y: y, PointerID: 1, Target: target}
	for _, d := range slices.Clone(h.downs) {
		if d.container.Contains(target) {
			d.fn(e)
		}
	}
}

func (h *host) pointerMove(x, y int) {
	e := dragorder.PointerEvent{X: x, Y: y, PointerID: 1, Target: h.captured}
	for _, r := range slices.Clone(h.listeners) {
		r.l.PointerMove(e)
	}
}

func (h *host) pointerUp(x, y int) {
	e := dragorder.PointerEvent{X: x, Y: y, PointerID: 1, Target: h.captured}
	for _, r := range slices.Clone(h.listeners) {
		r.l.PointerUp(e)
	}
}

func (h *host) keyUp(k string) {
	e := dragorder.KeyEvent{Key: k}
	for _, r := range slices.Clone(h.listeners) {
		r.l.KeyUp(e)
	}
}
