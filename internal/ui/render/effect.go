package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Effect is the interface that all effect operations must implement.
// Effects are post-processing operations that modify already-rendered content.
type Effect interface {
	// Apply applies the effect to the buffer
	Apply(buf *cellbuf.Buffer)
	// GetZ returns the Z-index for layering (higher Z renders later)
	GetZ() int
	// GetRect returns the rectangle this effect applies to
	GetRect() cellbuf.Rectangle
}

// ReverseEffect reverses foreground and background colors.
type ReverseEffect struct {
	Rect cellbuf.Rectangle
	Z    int
}

func (e ReverseEffect) Apply(buf *cellbuf.Buffer) {
	iterateCells(buf, e.Rect, func(cell *cellbuf.Cell) *cellbuf.Cell {
		if cell == nil {
			return nil
		}
		newCell := cell.Clone()
		newCell.Style.Reverse(true)
		return newCell
	})
}

func (e ReverseEffect) GetZ() int                  { return e.Z }
func (e ReverseEffect) GetRect() cellbuf.Rectangle { return e.Rect }

// DimEffect dims the content by setting the Faint attribute.
type DimEffect struct {
	Rect cellbuf.Rectangle
	Z    int
}

func (e DimEffect) Apply(buf *cellbuf.Buffer) {
	iterateCells(buf, e.Rect, func(cell *cellbuf.Cell) *cellbuf.Cell {
		if cell == nil {
			return nil
		}
		newCell := cell.Clone()
		newCell.Style.Faint(true)
		return newCell
	})
}

func (e DimEffect) GetZ() int                  { return e.Z }
func (e DimEffect) GetRect() cellbuf.Rectangle { return e.Rect }

// BoldEffect makes content bold.
type BoldEffect struct {
	Rect cellbuf.Rectangle
	Z    int
}

func (e BoldEffect) Apply(buf *cellbuf.Buffer) {
	iterateCells(buf, e.Rect, func(cell *cellbuf.Cell) *cellbuf.Cell {
		if cell == nil {
			return nil
		}
		newCell := cell.Clone()
		newCell.Style.Bold(true)
		return newCell
	})
}

func (e BoldEffect) GetZ() int                  { return e.Z }
func (e BoldEffect) GetRect() cellbuf.Rectangle { return e.Rect }

// StyleEffect recolours content with the foreground and background of a
// lipgloss style, leaving the text untouched.
type StyleEffect struct {
	Rect  cellbuf.Rectangle
	Style lipgloss.Style
	Z     int
}

func (e StyleEffect) Apply(buf *cellbuf.Buffer) {
	style := lipglossToStyle(e.Style)
	iterateCells(buf, e.Rect, func(cell *cellbuf.Cell) *cellbuf.Cell {
		if cell == nil {
			return nil
		}
		newCell := cell.Clone()
		if style.Fg != nil {
			newCell.Style.Fg = style.Fg
		}
		if style.Bg != nil {
			newCell.Style.Bg = style.Bg
		}
		return newCell
	})
}

func (e StyleEffect) GetZ() int                  { return e.Z }
func (e StyleEffect) GetRect() cellbuf.Rectangle { return e.Rect }

func lipglossToStyle(ls lipgloss.Style) cellbuf.Style {
	var cs cellbuf.Style
	if _, isNoColor := ls.GetForeground().(lipgloss.NoColor); !isNoColor {
		cs.Fg = ls.GetForeground()
	}
	if _, isNoColor := ls.GetBackground().(lipgloss.NoColor); !isNoColor {
		cs.Bg = ls.GetBackground()
	}
	return cs
}

// iterateCells iterates over all cells in a rectangle, applies a transformation,
// and writes the modified cells back to the buffer.
func iterateCells(buf *cellbuf.Buffer, rect cellbuf.Rectangle, transform func(*cellbuf.Cell) *cellbuf.Cell) {
	bounds := buf.Bounds()
	// Clamp rect to buffer bounds
	rect = rect.Intersect(bounds)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			cell := buf.Cell(x, y)
			newCell := transform(cell)
			if newCell != nil {
				buf.SetCell(x, y, newCell)
			}
		}
	}
}
