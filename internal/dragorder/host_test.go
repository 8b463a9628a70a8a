package dragorder

import (
	"slices"

	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/dragorder/internal/tree"
	"github.com/idursun/dragorder/internal/ui/layout"
)

type downHandler struct {
	id        int
	container *tree.Node
	fn        func(PointerEvent)
}

type registeredListener struct {
	id int
	l  Listener
}

// fakeHost lays lists out as fixed columns and dispatches synthetic events
// the way the board does.
type fakeHost struct {
	doc       *tree.Document
	downs     []downHandler
	listeners []registeredListener
	nextID    int
	captures  int
	releases  int
}

func newFakeHost(root *tree.Node) *fakeHost {
	return &fakeHost{doc: tree.NewDocument(root)}
}

func (h *fakeHost) layout() {
	for _, list := range h.doc.Root.Elements() {
		layout.Flow(list, layout.NewBox(list.Rect), nil)
		for _, item := range list.Elements() {
			children := item.Elements()
			if item.Floating || len(children) == 0 {
				continue
			}
			left, rest := layout.NewBox(item.Rect).CutLeft(2)
			children[0].Rect = left.R
			for _, c := range children[1:] {
				c.Rect = rest.R
			}
		}
	}
}

func (h *fakeHost) NodesAt(x, y int) []*tree.Node {
	h.layout()
	return h.doc.NodesAt(x, y)
}

func (h *fakeHost) OnPointerDown(container *tree.Node, fn func(PointerEvent)) func() {
	h.nextID++
	id := h.nextID
	h.downs = append(h.downs, downHandler{id: id, container: container, fn: fn})
	return func() {
		h.downs = slices.DeleteFunc(h.downs, func(d downHandler) bool { return d.id == id })
	}
}

func (h *fakeHost) Listen(l Listener) func() {
	h.nextID++
	id := h.nextID
	h.listeners = append(h.listeners, registeredListener{id: id, l: l})
	return func() {
		h.listeners = slices.DeleteFunc(h.listeners, func(r registeredListener) bool { return r.id == id })
	}
}

func (h *fakeHost) Capture(*tree.Node, int) func() {
	h.captures++
	return func() { h.releases++ }
}

func (h *fakeHost) press(x, y int) {
	h.layout()
	target := h.doc.TopAt(x, y)
	if target == nil {
		return
	}
	for _, d := range slices.Clone(h.downs) {
		if d.container.Contains(target) {
			d.fn(PointerEvent{X: x, Y: y, PointerID: 1, Target: target})
		}
	}
}

func (h *fakeHost) move(x, y int) {
	for _, r := range slices.Clone(h.listeners) {
		r.l.PointerMove(PointerEvent{X: x, Y: y, PointerID: 1})
	}
}

func (h *fakeHost) up(x, y int) {
	for _, r := range slices.Clone(h.listeners) {
		r.l.PointerUp(PointerEvent{X: x, Y: y, PointerID: 1})
	}
}

func (h *fakeHost) key(k string) {
	for _, r := range slices.Clone(h.listeners) {
		r.l.KeyUp(KeyEvent{Key: k})
	}
}

// newBoard builds a root with one column per list. Column i spans x in
// [20*i, 20*i+10) and rows [0, 10).
func newBoard(lists ...[]string) (*tree.Node, []*tree.Node) {
	root := tree.New("root")
	root.Rect = cellbuf.Rect(0, 0, 60, 10)
	var columns []*tree.Node
	for i, labels := range lists {
		list := tree.New("list"+string(rune('X'+i)), "list")
		list.Rect = cellbuf.Rect(20*i, 0, 10, 10)
		for _, l := range labels {
			item := tree.New(l, "item")
			item.Label = l
			list.Append(item)
		}
		root.Append(list)
		columns = append(columns, list)
	}
	return root, columns
}

// withHandles gives every item a grip child and a label child.
func withHandles(list *tree.Node) {
	for _, item := range list.Elements() {
		item.Append(tree.New(item.ID+"-grip", "handle"))
		item.Append(tree.New(item.ID+"-label", "label"))
	}
}

func labels(nodes []*tree.Node) []string {
	result := []string{}
	for _, n := range nodes {
		result = append(result, n.ID)
	}
	return result
}
