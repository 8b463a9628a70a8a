package board

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/rivo/uniseg"

	"github.com/idursun/dragorder/internal/config"
	"github.com/idursun/dragorder/internal/dragorder"
	"github.com/idursun/dragorder/internal/tree"
	"github.com/idursun/dragorder/internal/ui/common"
	"github.com/idursun/dragorder/internal/ui/layout"
	"github.com/idursun/dragorder/internal/ui/render"
)

const (
	listClass  = "list"
	gripClass  = "grip"
	labelClass = "label"
	gripWidth  = 2
	gripGlyph  = "⠿"
)

type list struct {
	cfg   config.ListConfig
	node  *tree.Node
	ctrl  *dragorder.Controller
	title cellbuf.Rectangle
}

// Model shows configured lists side by side and lets the user reorder items
// with the mouse, including moving them between lists of the same group.
type Model struct {
	*common.Sizeable
	root       *tree.Node
	doc        *tree.Document
	host       *host
	registry   *dragorder.Registry
	lists      []*list
	keyMap     config.KeyMappings[key.Binding]
	help       help.Model
	styles     Styles
	gap        int
	showStatus bool
	statusRect cellbuf.Rectangle
	status     string
	dragged    *tree.Node
	pending    []tea.Cmd
}

var _ common.ImmediateModel = (*Model)(nil)

func New(cfg *config.Config) (*Model, error) {
	root := tree.New("board")
	m := &Model{
		Sizeable:   common.NewSizeable(0, 0),
		root:       root,
		doc:        tree.NewDocument(root),
		registry:   dragorder.NewRegistry(),
		keyMap:     config.Convert(cfg.Keys),
		help:       help.New(),
		styles:     DefaultStyles(),
		gap:        cfg.UI.ColumnGap,
		showStatus: cfg.UI.ShowStatus,
	}
	m.host = newHost(m.doc, m.layout)

	for _, lc := range cfg.Lists {
		node := tree.New(lc.Name, listClass)
		if lc.Group != "" {
			node.AddClass(groupClass(lc.Group))
		}
		for i, label := range lc.Items {
			node.Append(newItem(fmt.Sprintf("%s-%d", lc.Name, i+1), label))
		}
		root.Append(node)

		l := &list{cfg: lc, node: node}
		opts := dragorder.Options{
			Disabled:  !lc.IsEnabled(),
			CancelKey: m.keyMap.Cancel,
			Registry:  m.registry,
			Callbacks: m.callbacks(l),
		}
		if lc.Group != "" {
			opts.ForeignDrop = tree.All(tree.HasClass(listClass), tree.HasClass(groupClass(lc.Group)))
		}
		if lc.Handle {
			opts.Handle = tree.HasClass(gripClass)
		}
		ctrl, err := dragorder.New(node, m.host, opts)
		if err != nil {
			return nil, fmt.Errorf("board: list %s: %w", lc.Name, err)
		}
		l.ctrl = ctrl
		m.lists = append(m.lists, l)
	}
	return m, nil
}

func groupClass(group string) string {
	return "group-" + group
}

func newItem(id, label string) *tree.Node {
	item := tree.New(id, "item")
	item.Label = label
	grip := tree.New(id+"-grip", gripClass)
	grip.Label = gripGlyph
	text := tree.New(id+"-label", labelClass)
	text.Label = label
	item.Append(grip)
	item.Append(text)
	return item
}

func (m *Model) callbacks(l *list) dragorder.Callbacks {
	return dragorder.Callbacks{
		DragStart: func(_ []*tree.Node, item *tree.Node) {
			m.dragged = item
			m.status = fmt.Sprintf("dragging %q", item.Label)
		},
		DragEnter: func() {
			if m.dragged != nil {
				m.status = fmt.Sprintf("dragging %q over %s", m.dragged.Label, l.cfg.DisplayTitle())
			}
		},
		Drop: func(items []*tree.Node, item *tree.Node) {
			log.Printf("dropped %q into %s", item.Label, l.cfg.Name)
			m.status = fmt.Sprintf("moved %q to %s", item.Label, l.cfg.DisplayTitle())
			m.emit(common.ReorderedMsg{List: l.cfg.Name, Item: item.Label, Items: labels(items)})
		},
		DragEnd: func(_ []*tree.Node, item *tree.Node) {
			if l.ctrl.State() != dragorder.Cancelled {
				return
			}
			log.Printf("cancelled drag of %q", item.Label)
			m.status = fmt.Sprintf("cancelled %q", item.Label)
			m.emit(common.CancelledMsg{List: l.cfg.Name, Item: item.Label})
		},
		DragLeave: func() {
			if l.ctrl.State() != dragorder.HandedOff {
				m.dragged = nil
				return
			}
			to := m.owner(m.dragged)
			if to == nil || m.dragged == nil {
				return
			}
			log.Printf("handed %q from %s to %s", m.dragged.Label, l.cfg.Name, to.cfg.Name)
			m.emit(common.TransferredMsg{From: l.cfg.Name, To: to.cfg.Name, Item: m.dragged.Label})
		},
	}
}

// owner returns the list whose controller is dragging item.
func (m *Model) owner(item *tree.Node) *list {
	for _, l := range m.lists {
		if item != nil && l.ctrl.SelectedItem() == item {
			return l
		}
	}
	return nil
}

func (m *Model) emit(msg tea.Msg) {
	m.pending = append(m.pending, common.Emit(msg))
}

func (m *Model) flush() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := m.pending
	m.pending = nil
	return tea.Batch(cmds...)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

// Dragging reports whether any list has a drag in progress.
func (m *Model) Dragging() bool {
	return m.host.dragging()
}

// Status is the text shown on the status line.
func (m *Model) Status() string {
	return m.status
}

// Names returns the list names in display order.
func (m *Model) Names() []string {
	names := make([]string, len(m.lists))
	for i, l := range m.lists {
		names[i] = l.cfg.Name
	}
	return names
}

// Order returns the labels of the named list's items, top to bottom.
func (m *Model) Order(name string) []string {
	for _, l := range m.lists {
		if l.cfg.Name == name {
			return labels(l.ctrl.Items())
		}
	}
	return nil
}

// CancelAll aborts every drag in progress.
func (m *Model) CancelAll() {
	for _, l := range m.lists {
		l.ctrl.Cancel()
	}
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetFrame(cellbuf.Rect(0, 0, msg.Width, msg.Height))
		m.layout()
	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionPress:
			if msg.Button == tea.MouseButtonLeft {
				m.host.pointerDown(msg.X, msg.Y)
			}
		case tea.MouseActionMotion:
			m.host.pointerMove(msg.X, msg.Y)
		case tea.MouseActionRelease:
			m.host.pointerUp(msg.X, msg.Y)
		}
		m.layout()
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Quit) {
			m.CancelAll()
			return tea.Sequence(m.flush(), tea.Quit)
		}
		if m.host.dragging() {
			m.host.keyUp(msg.String())
			m.layout()
		}
	}
	return m.flush()
}

// layout assigns rectangles to every node from the current frame.
func (m *Model) layout() {
	box := layout.NewBox(m.Frame)
	m.root.Rect = box.R
	if m.showStatus && box.R.Dy() > 1 {
		var status layout.Box
		box, status = box.CutTop(box.R.Dy() - 1)
		m.statusRect = status.R
	} else {
		m.statusRect = cellbuf.Rectangle{}
	}
	columns := box.Columns(len(m.lists), m.gap)
	for i, l := range m.lists {
		title, rest := columns[i].CutTop(1)
		l.title = title.R
		layout.Flow(l.node, rest, nil)
		for _, item := range l.node.Elements() {
			if !item.Floating {
				arrangeItem(item)
			}
		}
	}
}

// arrangeItem places the grip and label inside an item's row.
func arrangeItem(item *tree.Node) {
	box := layout.NewBox(item.Rect)
	for _, c := range item.Elements() {
		switch {
		case c.HasClass(gripClass):
			var grip layout.Box
			grip, box = box.CutLeft(gripWidth)
			c.Rect = grip.R
		default:
			c.Rect = box.R
		}
	}
}

func (m *Model) ViewRect(dl *render.DisplayContext, box layout.Box) {
	if box.R != m.Frame {
		m.SetFrame(box.R)
	}
	m.layout()

	var proxies []*tree.Node
	for _, l := range m.lists {
		dl.AddDraw(l.title, m.styles.Title.Render(truncate(l.cfg.DisplayTitle(), l.title.Dx())), render.ZBase)
		if l.ctrl.Dragging() {
			dl.AddBold(l.title, render.ZBase)
		}
		for _, n := range l.node.Elements() {
			switch {
			case n.Floating:
				proxies = append(proxies, n)
			case n.HasClass("placeholder"):
				dl.AddFill(n.Rect, '┄', m.styles.Placeholder, render.ZItems)
			default:
				m.drawItem(dl, n, render.ZItems)
				if !l.ctrl.Enabled() {
					dl.AddDim(n.Rect, render.ZItems)
				}
			}
		}
	}
	for _, p := range proxies {
		m.drawItem(dl, p, render.ZDragProxy)
		bounds := layout.Bounds(p)
		dl.AddStyle(bounds, m.styles.Proxy, render.ZDragProxy)
		dl.AddReverse(bounds, render.ZDragProxy)
	}
	if !m.statusRect.Empty() {
		m.drawStatus(dl)
	}
}

// drawStatus shows the last event on the left and the key hints on the
// right of the status row.
func (m *Model) drawStatus(dl *render.DisplayContext) {
	box := layout.NewBox(m.statusRect)
	bindings := []key.Binding{m.keyMap.Quit}
	if m.host.dragging() {
		bindings = []key.Binding{m.keyMap.Cancel, m.keyMap.Quit}
	}
	m.help.Width = box.R.Dx() / 2
	hints := m.help.ShortHelpView(bindings)
	if w := lipgloss.Width(hints); w > 0 && w < box.R.Dx() {
		var right layout.Box
		box, right = box.CutLeft(box.R.Dx() - w)
		dl.AddDraw(right.R, hints, render.ZStatus)
	}
	dl.AddDraw(box.R, m.styles.Status.Render(truncate(m.status, box.R.Dx())), render.ZStatus)
}

func (m *Model) drawItem(dl *render.DisplayContext, item *tree.Node, z int) {
	for _, c := range item.Elements() {
		if c.Rect.Empty() {
			continue
		}
		style := m.styles.Item
		if c.HasClass(gripClass) {
			style = m.styles.Grip
		}
		dl.AddDraw(c.Rect, style.Render(truncate(c.Label, c.Rect.Dx())), z)
	}
}

func (m *Model) View() string {
	dl := render.NewDisplayContext()
	m.ViewRect(dl, layout.NewBox(m.Frame))
	return dl.RenderToString(m.Width, m.Height)
}

// truncate cuts s to at most width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if uniseg.StringWidth(s) <= width {
		return s
	}
	var sb strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width {
			break
		}
		sb.WriteString(g.Str())
		used += w
	}
	return sb.String()
}

func labels(nodes []*tree.Node) []string {
	result := make([]string, len(nodes))
	for i, n := range nodes {
		result[i] = n.Label
	}
	return result
}
