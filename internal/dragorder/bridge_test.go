package dragorder

import (
	"testing"

	"github.com/idursun/dragorder/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sharedBoard(t *testing.T, rec *recorder) (*fakeHost, []*tree.Node, *Controller, *Controller) {
	t.Helper()
	root, lists := newBoard([]string{"A", "B", "C"}, []string{"D"})
	for _, l := range lists {
		l.AddClass("shared")
	}
	host := newFakeHost(root)
	registry := NewRegistry()
	opts := Options{ForeignDrop: tree.HasClass("shared"), Registry: registry}
	x := newController(t, host, lists[0], rec, "X", opts)
	y := newController(t, host, lists[1], rec, "Y", opts)
	return host, lists, x, y
}

func TestBridge_HandoffToForeignContainer(t *testing.T) {
	rec := &recorder{}
	host, lists, x, y := sharedBoard(t, rec)

	host.press(0, 1)
	b := x.SelectedItem()
	host.move(25, 5)

	assert.Equal(t, []string{"X:start:B", "X:enter", "Y:enter", "Y:move", "X:leave"}, rec.events)
	assert.Equal(t, Idle, x.State())
	assert.False(t, x.Dragging())
	assert.Nil(t, x.Placeholder())
	assert.Equal(t, Dragging, y.State())
	assert.Same(t, b, y.SelectedItem())
	assert.Same(t, lists[1], y.Proxy().Parent())
	assert.Same(t, lists[1], y.Placeholder().Parent())
	assert.Len(t, host.listeners, 1)

	host.up(25, 5)

	assert.Equal(t, []string{"A", "C"}, labels(lists[0].Elements()))
	assert.Equal(t, []string{"D", "B"}, labels(lists[1].Elements()))
	assert.Same(t, b, lists[1].Elements()[1])
	assert.Equal(t, [][]string{{"D", "B"}}, rec.drops)
	assert.Zero(t, rec.count("X:end:B"))
	assert.Equal(t, 1, rec.count("Y:end:B"))
	assert.Equal(t, 1, host.releases)
	assertClean(t, host.doc.Root)
}

func TestBridge_HandoffThenReorderInForeignContainer(t *testing.T) {
	rec := &recorder{}
	host, lists, _, _ := sharedBoard(t, rec)

	host.press(0, 0) // A
	host.move(25, 5) // into Y below D: [D ph]
	host.move(24, 0) // up onto D: before D
	host.up(24, 0)

	assert.Equal(t, []string{"B", "C"}, labels(lists[0].Elements()))
	assert.Equal(t, []string{"A", "D"}, labels(lists[1].Elements()))
}

func TestBridge_CancelAfterHandoffRestoresSourceSlot(t *testing.T) {
	rec := &recorder{}
	host, lists, x, y := sharedBoard(t, rec)

	host.press(0, 1)
	host.move(25, 5)
	host.key("esc")

	assert.Equal(t, []string{"A", "B", "C"}, labels(lists[0].Elements()))
	assert.Equal(t, []string{"D"}, labels(lists[1].Elements()))
	assert.Equal(t, [][]string{{"D"}}, rec.ends)
	assert.Zero(t, rec.count("Y:drop:B"))
	assert.Equal(t, Idle, x.State())
	assert.Equal(t, Idle, y.State())
	assert.Empty(t, host.listeners)
	assertClean(t, host.doc.Root)
}

func TestBridge_BackAndForth(t *testing.T) {
	rec := &recorder{}
	host, lists, x, y := sharedBoard(t, rec)

	host.press(0, 2) // C
	host.move(25, 5)
	host.move(5, 6)
	host.up(5, 6)

	assert.Equal(t, 2, rec.count("X:enter"))
	assert.Equal(t, 1, rec.count("Y:enter"))
	assert.Equal(t, 1, rec.count("Y:leave"))
	assert.Equal(t, []string{"A", "B", "C"}, labels(lists[0].Elements()))
	assert.Equal(t, []string{"D"}, labels(lists[1].Elements()))
	assert.Equal(t, Idle, x.State())
	assert.Equal(t, Idle, y.State())
	assertClean(t, host.doc.Root)
}

func TestBridge_NoForeignDropKeepsDragLocal(t *testing.T) {
	root, lists := newBoard([]string{"A", "B"}, []string{"D"})
	host := newFakeHost(root)
	rec := &recorder{}
	registry := NewRegistry()
	x := newController(t, host, lists[0], rec, "X", Options{Registry: registry})
	newController(t, host, lists[1], rec, "Y", Options{Registry: registry})

	host.press(0, 0)
	host.move(25, 5)
	host.move(21, 0) // over D, which is not an item of X
	host.up(21, 0)

	assert.Zero(t, rec.count("Y:enter"))
	assert.Equal(t, []string{"B", "A"}, labels(lists[0].Elements()))
	assert.Equal(t, []string{"D"}, labels(lists[1].Elements()))
	assert.Equal(t, Idle, x.State())
}

func TestBridge_ForeignItemMatchedBySelector(t *testing.T) {
	root, lists := newBoard([]string{"A", "B"}, []string{"D"})
	lists[1].AddClass("shared")
	host := newFakeHost(root)
	rec := &recorder{}
	x := newController(t, host, lists[0], rec, "X", Options{
		Items:       tree.HasClass("item"),
		ForeignDrop: tree.HasClass("shared"),
		Registry:    NewRegistry(),
	})

	host.press(0, 0)
	host.move(21, 0) // over D, right: after D
	assert.Same(t, lists[1], x.Placeholder().Parent())
	host.up(21, 0)

	assert.Equal(t, []string{"B"}, labels(lists[0].Elements()))
	assert.Equal(t, []string{"D", "A"}, labels(lists[1].Elements()))
}

func TestBridge_ForeignAlreadyDraggingIsSkipped(t *testing.T) {
	rec := &recorder{}
	host, lists, x, y := sharedBoard(t, rec)

	host.press(20, 0) // D in Y
	require.True(t, y.Dragging())
	host.press(0, 1) // B in X
	require.True(t, x.Dragging())

	host.move(25, 7)

	assert.Equal(t, "B", x.SelectedItem().ID)
	assert.Equal(t, "D", y.SelectedItem().ID)
	assert.Zero(t, rec.count("X:leave"))
	assert.Equal(t, 1, rec.count("Y:enter"), "only Y's own drag entered Y")
	assert.Same(t, lists[0], x.Placeholder().Parent())
	assert.Len(t, host.listeners, 2)
}

func TestRegistry(t *testing.T) {
	root, lists := newBoard([]string{"A"}, []string{"B"})
	host := newFakeHost(root)
	registry := NewRegistry()

	x, err := New(lists[0], host, Options{Registry: registry})
	require.NoError(t, err)
	y, err := New(lists[1], host, Options{Registry: registry})
	require.NoError(t, err)

	assert.Same(t, x, registry.Lookup(lists[0]))
	assert.Same(t, y, registry.Lookup(lists[1]))
	assert.Nil(t, registry.Lookup(root))

	y.Remove()
	assert.Nil(t, registry.Lookup(lists[1]))
	assert.Same(t, x, registry.Lookup(lists[0]))
}

func TestBridge_HandoffResolvedThroughParents(t *testing.T) {
	root, lists := newBoard([]string{"A", "B", "C"}, []string{"D"})
	for _, l := range lists {
		l.AddClass("shared")
	}
	host := newFakeHost(root)
	rec := &recorder{}
	registry := NewRegistry()
	opts := Options{
		Parents:     tree.HasClass("shared"),
		ForeignDrop: tree.HasClass("shared"),
		Registry:    registry,
	}
	x := newController(t, host, lists[0], rec, "X", opts)
	y := newController(t, host, lists[1], rec, "Y", opts)

	host.press(0, 1)
	host.move(25, 5)

	assert.Equal(t, []string{"X:start:B", "X:enter", "Y:enter", "Y:move", "X:leave"}, rec.events)
	assert.False(t, x.Dragging())
	require.True(t, y.Dragging())
	placeholder := y.Placeholder()

	host.move(45, 5) // outside every list: nothing matches Parents
	assert.Same(t, placeholder, y.Placeholder())
	assert.Same(t, lists[1], placeholder.Parent())
	assert.Equal(t, 1, rec.count("Y:move"))

	host.up(45, 5)

	assert.Equal(t, []string{"A", "C"}, labels(lists[0].Elements()))
	assert.Equal(t, []string{"D", "B"}, labels(lists[1].Elements()))
	assertClean(t, root)
}
