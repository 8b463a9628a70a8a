package layout

import (
	"github.com/charmbracelet/x/cellbuf"
	"github.com/idursun/dragorder/internal/tree"
)

// Union returns the smallest rectangle covering every non-empty input.
// Empty rectangles are ignored; the union of nothing is the zero rectangle.
func Union(rects ...cellbuf.Rectangle) cellbuf.Rectangle {
	var result cellbuf.Rectangle
	for _, r := range rects {
		if r.Empty() {
			continue
		}
		if result.Empty() {
			result = r
			continue
		}
		result.Min.X = min(result.Min.X, r.Min.X)
		result.Min.Y = min(result.Min.Y, r.Min.Y)
		result.Max.X = max(result.Max.X, r.Max.X)
		result.Max.Y = max(result.Max.Y, r.Max.Y)
	}
	return result
}

// Bounds returns the rectangle a node occupies on screen. Layout transparent
// nodes (tree.DisplayContents) have no box of their own, so their bounds are
// the union of their children's bounds.
func Bounds(n *tree.Node) cellbuf.Rectangle {
	if n == nil || n.Marker {
		return cellbuf.Rectangle{}
	}
	if n.Display != tree.DisplayContents {
		return n.Rect
	}
	elements := n.Elements()
	rects := make([]cellbuf.Rectangle, 0, len(elements))
	for _, c := range elements {
		rects = append(rects, Bounds(c))
	}
	return Union(rects...)
}

// Flow stacks the element children of container top to bottom inside box,
// giving each one row per entry in heights (default 1). Floating children and
// markers keep their rectangles. Children of DisplayContents nodes are laid
// out in place of their parent. It returns the box left below the last row.
func Flow(container *tree.Node, box Box, height func(*tree.Node) int) Box {
	container.Rect = box.R
	rest := box
	var place func(n *tree.Node)
	place = func(n *tree.Node) {
		for _, c := range n.Children() {
			if c.Marker {
				c.Rect = cellbuf.Rectangle{Min: rest.R.Min, Max: rest.R.Min}
				continue
			}
			if c.Floating {
				continue
			}
			if c.Display == tree.DisplayContents {
				place(c)
				continue
			}
			h := 1
			if height != nil {
				h = max(height(c), 1)
			}
			var row Box
			row, rest = rest.CutTop(h)
			c.Rect = row.R
		}
	}
	place(container)
	return rest
}
