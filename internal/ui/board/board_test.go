package board

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idursun/dragorder/internal/config"
	"github.com/idursun/dragorder/internal/ui/common"
	"github.com/idursun/dragorder/internal/ui/layout"
	"github.com/idursun/dragorder/internal/ui/render"
	"github.com/idursun/dragorder/test"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Columns are 18 cells wide with a gap of 2: backlog at x 0-17, doing at
// 20-37 and done at 40-59. Row 0 holds the titles, row 9 the status line.
const boardConfig = `
[ui]
column_gap = 2
show_status = true

[[lists]]
name = "backlog"
title = "Backlog"
group = "tasks"
items = ["alpha", "beta", "gamma", "delta"]

[[lists]]
name = "doing"
title = "Doing"
group = "tasks"
items = ["review"]

[[lists]]
name = "done"
title = "Done"
group = "tasks"
handle = true
items = ["ship"]
`

func newBoard(t *testing.T, data string) *Model {
	t.Helper()
	cfg, err := config.Parse([]byte(data))
	require.NoError(t, err)
	model, err := New(cfg)
	require.NoError(t, err)
	model.SetFrame(cellbuf.Rect(0, 0, 60, 10))
	test.SimulateModel(model, model.Init())
	return model
}

type observed struct {
	msgs []tea.Msg
}

func (o *observed) observe(msg tea.Msg) {
	switch msg.(type) {
	case common.ReorderedMsg, common.TransferredMsg, common.CancelledMsg, tea.QuitMsg:
		o.msgs = append(o.msgs, msg)
	}
}

func TestReorderWithinList(t *testing.T) {
	model := newBoard(t, boardConfig)
	var o observed

	test.SimulateModel(model, test.Drag([2]int{5, 1}, [2]int{5, 3}), o.observe)

	assert.Equal(t, []string{"beta", "gamma", "alpha", "delta"}, model.Order("backlog"))
	assert.False(t, model.Dragging())
	assert.Equal(t, []tea.Msg{
		common.ReorderedMsg{List: "backlog", Item: "alpha", Items: []string{"beta", "gamma", "alpha", "delta"}},
	}, o.msgs)
	assert.Equal(t, `moved "alpha" to Backlog`, model.Status())
}

func TestMoveUpPlacesBefore(t *testing.T) {
	model := newBoard(t, boardConfig)

	test.SimulateModel(model, test.Drag([2]int{5, 4}, [2]int{5, 2}))

	assert.Equal(t, []string{"alpha", "delta", "beta", "gamma"}, model.Order("backlog"))
}

func TestTransferToAnotherList(t *testing.T) {
	model := newBoard(t, boardConfig)
	var o observed

	test.SimulateModel(model, test.Drag([2]int{5, 2}, [2]int{25, 5}), o.observe)

	assert.Equal(t, []string{"alpha", "gamma", "delta"}, model.Order("backlog"))
	assert.Equal(t, []string{"review", "beta"}, model.Order("doing"))
	assert.Equal(t, []tea.Msg{
		common.TransferredMsg{From: "backlog", To: "doing", Item: "beta"},
		common.ReorderedMsg{List: "doing", Item: "beta", Items: []string{"review", "beta"}},
	}, o.msgs)
}

func TestCancelRestoresOrder(t *testing.T) {
	model := newBoard(t, boardConfig)
	var o observed

	test.SimulateModel(model, tea.Sequence(
		test.MouseDown(5, 1),
		test.MouseMove(5, 3),
		test.Press(tea.KeyEsc),
	), o.observe)

	assert.False(t, model.Dragging())
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, model.Order("backlog"))
	assert.Equal(t, []tea.Msg{common.CancelledMsg{List: "backlog", Item: "alpha"}}, o.msgs)

	// the release that follows is ignored
	test.SimulateModel(model, test.MouseUp(5, 3))
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, model.Order("backlog"))
}

func TestCancelAfterTransferRestoresSource(t *testing.T) {
	model := newBoard(t, boardConfig)

	test.SimulateModel(model, tea.Sequence(
		test.MouseDown(5, 1),
		test.MouseMove(25, 5),
		test.Press(tea.KeyEsc),
	))

	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, model.Order("backlog"))
	assert.Equal(t, []string{"review"}, model.Order("doing"))
}

func TestHandleRestrictsDragStart(t *testing.T) {
	model := newBoard(t, boardConfig)

	test.SimulateModel(model, test.MouseDown(45, 1))
	assert.False(t, model.Dragging(), "pressing the label must not start a drag")

	test.SimulateModel(model, test.MouseDown(40, 1))
	assert.True(t, model.Dragging(), "pressing the grip starts a drag")

	test.SimulateModel(model, test.MouseUp(40, 1))
	assert.False(t, model.Dragging())
	assert.Equal(t, []string{"ship"}, model.Order("done"))
}

func TestDisabledListIgnoresPresses(t *testing.T) {
	model := newBoard(t, `
[[lists]]
name = "frozen"
enabled = false
items = ["one", "two"]
`)

	test.SimulateModel(model, tea.Sequence(test.MouseDown(5, 1), test.MouseMove(5, 2)))

	assert.False(t, model.Dragging())
	assert.Equal(t, []string{"one", "two"}, model.Order("frozen"))
}

func TestQuitCancelsDrag(t *testing.T) {
	model := newBoard(t, boardConfig)
	var o observed

	test.SimulateModel(model, tea.Sequence(
		test.MouseDown(5, 1),
		test.MouseMove(5, 3),
		test.Type("q"),
	), o.observe)

	assert.False(t, model.Dragging())
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, model.Order("backlog"))
	assert.ElementsMatch(t, []tea.Msg{
		common.CancelledMsg{List: "backlog", Item: "alpha"},
		tea.QuitMsg{},
	}, o.msgs)
}

func TestView(t *testing.T) {
	model := newBoard(t, boardConfig)

	lines := strings.Split(test.Stripped(test.RenderImmediate(model, 60, 10)), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Contains(t, lines[0], "Backlog")
	assert.Contains(t, lines[0], "Doing")
	assert.Contains(t, lines[0], "Done")
	assert.Contains(t, lines[1], "alpha")
	assert.Contains(t, lines[1], "review")
	assert.Contains(t, lines[1], gripGlyph)
	assert.Contains(t, lines[4], "delta")
	assert.Contains(t, lines[9], "q quit")
	assert.NotContains(t, lines[9], "cancel drag")
}

func TestViewWhileDragging(t *testing.T) {
	model := newBoard(t, boardConfig)

	test.SimulateModel(model, tea.Sequence(test.MouseDown(5, 1), test.MouseMove(5, 3)))
	require.True(t, model.Dragging())

	view := model.View()
	lines := strings.Split(view, "\n")
	assert.Contains(t, lines[1], "beta")
	assert.Contains(t, lines[2], "gamma")
	assert.Contains(t, lines[3], "alpha", "the proxy follows the pointer")
	assert.Contains(t, view, `dragging "alpha" over Backlog`)
	assert.Contains(t, lines[9], "esc cancel drag")
}

func TestViewShowsPlaceholder(t *testing.T) {
	model := newBoard(t, boardConfig)

	// below the last item the slot moves to the end of the list
	test.SimulateModel(model, tea.Sequence(test.MouseDown(5, 1), test.MouseMove(5, 7)))

	lines := strings.Split(model.View(), "\n")
	assert.Contains(t, lines[1], "beta")
	assert.Contains(t, lines[4], "┄")
	assert.Contains(t, lines[7], "alpha")
}

func renderCells(model *Model, width, height int) *cellbuf.Buffer {
	dl := render.NewDisplayContext()
	model.ViewRect(dl, layout.NewBox(cellbuf.Rect(0, 0, width, height)))
	buf := cellbuf.NewBuffer(width, height)
	dl.Render(buf)
	return buf
}

func hasAttrs(t *testing.T, buf *cellbuf.Buffer, x, y int, set func(*cellbuf.Style)) bool {
	t.Helper()
	cell := buf.Cell(x, y)
	require.NotNil(t, cell)
	var want cellbuf.Style
	set(&want)
	return cell.Style.Attrs&want.Attrs == want.Attrs
}

func faint(s *cellbuf.Style) { s.Faint(true) }
func bold(s *cellbuf.Style)  { s.Bold(true) }

func TestViewDimsDisabledList(t *testing.T) {
	model := newBoard(t, `
[[lists]]
name = "frozen"
enabled = false
items = ["one"]

[[lists]]
name = "open"
items = ["two"]
`)

	// frozen spans x 0-28, open x 31-59
	buf := renderCells(model, 60, 10)

	assert.True(t, hasAttrs(t, buf, 3, 1, faint))
	assert.False(t, hasAttrs(t, buf, 34, 1, faint))
}

func TestViewBoldsTitleOfDraggingList(t *testing.T) {
	model := newBoard(t, boardConfig)

	buf := renderCells(model, 60, 10)
	assert.False(t, hasAttrs(t, buf, 0, 0, bold))

	test.SimulateModel(model, tea.Sequence(test.MouseDown(5, 1), test.MouseMove(5, 3)))
	buf = renderCells(model, 60, 10)
	assert.True(t, hasAttrs(t, buf, 0, 0, bold), "backlog owns the drag")
	assert.False(t, hasAttrs(t, buf, 20, 0, bold))

	test.SimulateModel(model, test.MouseMove(25, 5))
	buf = renderCells(model, 60, 10)
	assert.False(t, hasAttrs(t, buf, 0, 0, bold))
	assert.True(t, hasAttrs(t, buf, 20, 0, bold), "doing took the drag over")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel", truncate("hello", 3))
	assert.Equal(t, "", truncate("hello", 0))
	assert.Equal(t, "日", truncate("日本", 3))
}
