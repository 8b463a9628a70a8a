package render

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// DisplayContext holds all rendering operations for a frame.
// Operations are accumulated while the board walks its node tree,
// then executed in order by Z-index.
type DisplayContext struct {
	draws        []drawOp
	effects      []effectOp
	orderCounter int
}

// NewDisplayContext creates a new empty display context.
func NewDisplayContext() *DisplayContext {
	return &DisplayContext{
		draws:   make([]drawOp, 0, 16),
		effects: make([]effectOp, 0, 8),
	}
}

func (dl *DisplayContext) nextOrder() int {
	dl.orderCounter++
	return dl.orderCounter
}

// AddDraw adds a Draw to the display context.
func (dl *DisplayContext) AddDraw(rect cellbuf.Rectangle, content string, z int) {
	dl.draws = append(dl.draws, drawOp{
		Draw: Draw{
			Rect:    rect,
			Content: content,
			Z:       z,
		},
		order: dl.nextOrder(),
	})
}

// AddFill fills a rectangle with the provided rune and style.
func (dl *DisplayContext) AddFill(rect cellbuf.Rectangle, ch rune, style lipgloss.Style, z int) {
	if rect.Dx() <= 0 || rect.Dy() <= 0 {
		return
	}
	dl.AddDraw(rect, fillString(rect.Dx(), rect.Dy(), ch, style), z)
}

// AddEffect adds a custom Effect to the display context.
func (dl *DisplayContext) AddEffect(effect Effect) {
	dl.effects = append(dl.effects, effectOp{
		effect: effect,
		order:  dl.nextOrder(),
		z:      effect.GetZ(),
	})
}

// AddReverse adds a ReverseEffect (reverses foreground/background colors).
func (dl *DisplayContext) AddReverse(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(ReverseEffect{Rect: rect, Z: z})
}

// AddDim adds a DimEffect (dims the content).
func (dl *DisplayContext) AddDim(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(DimEffect{Rect: rect, Z: z})
}

// AddBold adds a BoldEffect.
func (dl *DisplayContext) AddBold(rect cellbuf.Rectangle, z int) {
	dl.AddEffect(BoldEffect{Rect: rect, Z: z})
}

// Clear removes all operations so the context can be reused across frames.
func (dl *DisplayContext) Clear() {
	dl.draws = dl.draws[:0]
	dl.effects = dl.effects[:0]
	dl.orderCounter = 0
}

// Render executes all operations in the display context to the given cellbuf.
// Draws and effects are interleaved by Z-index (low to high); ties keep the
// order they were added in.
func (dl *DisplayContext) Render(buf *cellbuf.Buffer) {
	if len(dl.draws) == 0 && len(dl.effects) == 0 {
		return
	}

	ops := make([]renderOp, 0, len(dl.draws)+len(dl.effects))
	for _, op := range dl.draws {
		ops = append(ops, renderOp{z: op.Z, order: op.order, draw: op.Draw, isDraw: true})
	}
	for _, op := range dl.effects {
		ops = append(ops, renderOp{z: op.z, order: op.order, effect: op.effect})
	}

	sort.SliceStable(ops, func(i, j int) bool {
		if ops[i].z != ops[j].z {
			return ops[i].z < ops[j].z
		}
		return ops[i].order < ops[j].order
	})

	for _, op := range ops {
		if op.isDraw {
			cellbuf.SetContentRect(buf, op.draw.Content, op.draw.Rect)
			continue
		}
		op.effect.Apply(buf)
	}
}

// RenderToString renders to a new buffer and returns the final string output.
func (dl *DisplayContext) RenderToString(width, height int) string {
	buf := cellbuf.NewBuffer(width, height)
	dl.Render(buf)
	return cellbuf.Render(buf)
}

// Len returns the total number of operations in the display context
func (dl *DisplayContext) Len() int {
	return len(dl.draws) + len(dl.effects)
}

// Draw places pre-rendered content in a rectangle. Lower Z is painted
// first.
type Draw struct {
	Rect    cellbuf.Rectangle
	Content string
	Z       int
}

type drawOp struct {
	Draw
	order int
}

type effectOp struct {
	effect Effect
	order  int
	z      int
}

type renderOp struct {
	z      int
	order  int
	draw   Draw
	effect Effect
	isDraw bool
}

func fillString(width, height int, ch rune, style lipgloss.Style) string {
	line := style.Render(strings.Repeat(string(ch), width))
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// AddStyle adds a StyleEffect.
func (dl *DisplayContext) AddStyle(rect cellbuf.Rectangle, style lipgloss.Style, z int) {
	dl.AddEffect(StyleEffect{Rect: rect, Style: style, Z: z})
}
