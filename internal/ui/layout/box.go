package layout

import "github.com/charmbracelet/x/cellbuf"

// Box wraps a cellbuf.Rectangle to provide a fluent API for placing lists
// and rows on the board.
type Box struct {
	R cellbuf.Rectangle
}

// NewBox creates a new Box wrapping the given rectangle.
func NewBox(r cellbuf.Rectangle) Box {
	return Box{R: r}
}

// Inset returns a new Box with n cells of padding on all sides.
func (b Box) Inset(n int) Box {
	return Box{R: b.R.Inset(n)}
}

// Columns splits the box into n equal columns separated by gap cells. The
// last column receives any rounding remainder.
func (b Box) Columns(n int, gap int) []Box {
	if n <= 0 {
		return nil
	}
	gap = max(gap, 0)
	usable := b.R.Dx() - gap*(n-1)
	if usable < n {
		usable = n
	}
	width := usable / n
	result := make([]Box, n)
	x := b.R.Min.X
	for i := range result {
		right := min(x+width, b.R.Max.X)
		if i == n-1 {
			right = b.R.Max.X
		}
		right = max(right, x)
		result[i] = Box{R: cellbuf.Rectangle{
			Min: cellbuf.Pos(x, b.R.Min.Y),
			Max: cellbuf.Pos(right, b.R.Max.Y),
		}}
		x = right + gap
	}
	return result
}

// CutTop cuts h cells from the top, returning the top box and the rest.
func (b Box) CutTop(h int) (top, rest Box) {
	if h <= 0 {
		return Box{R: cellbuf.Rectangle{Min: b.R.Min, Max: cellbuf.Pos(b.R.Max.X, b.R.Min.Y)}}, b
	}
	if h >= b.R.Dy() {
		return b, Box{R: cellbuf.Rectangle{Min: cellbuf.Pos(b.R.Min.X, b.R.Max.Y), Max: b.R.Max}}
	}
	splitY := b.R.Min.Y + h
	top = Box{R: cellbuf.Rectangle{Min: b.R.Min, Max: cellbuf.Pos(b.R.Max.X, splitY)}}
	rest = Box{R: cellbuf.Rectangle{Min: cellbuf.Pos(b.R.Min.X, splitY), Max: b.R.Max}}
	return
}

// CutLeft cuts w cells from the left, returning the left box and the rest.
func (b Box) CutLeft(w int) (left, rest Box) {
	if w <= 0 {
		return Box{R: cellbuf.Rectangle{Min: b.R.Min, Max: cellbuf.Pos(b.R.Min.X, b.R.Max.Y)}}, b
	}
	if w >= b.R.Dx() {
		return b, Box{R: cellbuf.Rectangle{Min: cellbuf.Pos(b.R.Max.X, b.R.Min.Y), Max: b.R.Max}}
	}
	splitX := b.R.Min.X + w
	left = Box{R: cellbuf.Rectangle{Min: b.R.Min, Max: cellbuf.Pos(splitX, b.R.Max.Y)}}
	rest = Box{R: cellbuf.Rectangle{Min: cellbuf.Pos(splitX, b.R.Min.Y), Max: b.R.Max}}
	return
}
