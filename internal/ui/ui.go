package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/cellbuf"

	"github.com/idursun/dragorder/internal/config"
	"github.com/idursun/dragorder/internal/ui/board"
	"github.com/idursun/dragorder/internal/ui/common"
	"github.com/idursun/dragorder/internal/ui/layout"
	"github.com/idursun/dragorder/internal/ui/render"
)

type Model struct {
	board          *board.Model
	displayContext *render.DisplayContext
	width          int
	height         int
	moves          int
	transfers      int
	cancels        int
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("dragorder"), m.board.Init())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.FocusMsg:
		return tea.EnableMouseCellMotion
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case common.ReorderedMsg:
		m.moves++
		log.Printf("%s: %s", msg.List, strings.Join(msg.Items, ", "))
		return nil
	case common.TransferredMsg:
		m.transfers++
		return nil
	case common.CancelledMsg:
		m.cancels++
		return nil
	}
	return m.board.Update(msg)
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.displayContext == nil {
		m.displayContext = render.NewDisplayContext()
	}
	m.displayContext.Clear()
	box := layout.NewBox(cellbuf.Rect(0, 0, m.width, m.height))
	m.board.ViewRect(m.displayContext, box)

	screenBuf := cellbuf.NewBuffer(m.width, m.height)
	m.displayContext.Render(screenBuf)
	finalView := cellbuf.Render(screenBuf)
	return strings.ReplaceAll(finalView, "\r", "")
}

// Order returns the current item labels of the named list.
func (m *Model) Order(name string) []string {
	return m.board.Order(name)
}

// Summary describes the final order of every list, one list per line.
func (m *Model) Summary() string {
	var sb strings.Builder
	for _, name := range m.board.Names() {
		fmt.Fprintf(&sb, "%s: %s\n", name, strings.Join(m.board.Order(name), ", "))
	}
	fmt.Fprintf(&sb, "%d drops, %d transfers, %d cancelled\n", m.moves, m.transfers, m.cancels)
	return sb.String()
}

var _ tea.Model = (*wrapper)(nil)

type (
	frameTickMsg struct{}
	wrapper      struct {
		ui                 *Model
		scheduledNextFrame bool
		render             bool
		cachedFrame        string
	}
)

func (w *wrapper) Init() tea.Cmd {
	return w.ui.Init()
}

func (w *wrapper) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(frameTickMsg); ok {
		w.render = true
		w.scheduledNextFrame = false
		return w, nil
	}
	cmd := w.ui.Update(msg)
	if !w.scheduledNextFrame {
		w.scheduledNextFrame = true
		return w, tea.Batch(cmd, tea.Tick(time.Millisecond*8, func(t time.Time) tea.Msg {
			return frameTickMsg{}
		}))
	}
	return w, cmd
}

func (w *wrapper) View() string {
	if w.render {
		w.cachedFrame = w.ui.View()
		w.render = false
	}
	return w.cachedFrame
}

func NewUI(cfg *config.Config) (*Model, error) {
	b, err := board.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Model{board: b}, nil
}

// New wraps ui so bubbletea renders it at most once per frame.
func New(ui *Model) tea.Model {
	return &wrapper{ui: ui}
}
