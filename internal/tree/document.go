package tree

import (
	"sort"

	"github.com/charmbracelet/x/cellbuf"
)

// Document is the root of a node tree together with the point-stack query
// used for hit testing.
type Document struct {
	Root *Node
}

func NewDocument(root *Node) *Document {
	return &Document{Root: root}
}

type stackEntry struct {
	node  *Node
	z     int
	order int
}

// NodesAt returns every node whose rectangle contains (x, y), topmost
// first. Higher Z wins; within the same Z, nodes painted later (deeper or
// further along in document order) are on top. Markers and nodes with
// DisplayContents never appear since they have no box of their own.
func (d *Document) NodesAt(x, y int) []*Node {
	if d == nil || d.Root == nil {
		return nil
	}
	p := cellbuf.Pos(x, y)
	var entries []stackEntry
	order := 0
	var visit func(n *Node, z int)
	visit = func(n *Node, z int) {
		if n.Z > z {
			z = n.Z
		}
		order++
		if !n.Marker && n.Display != DisplayContents && p.In(n.Rect) {
			entries = append(entries, stackEntry{node: n, z: z, order: order})
		}
		for _, c := range n.children {
			visit(c, z)
		}
	}
	visit(d.Root, d.Root.Z)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].z != entries[j].z {
			return entries[i].z > entries[j].z
		}
		return entries[i].order > entries[j].order
	})
	result := make([]*Node, len(entries))
	for i, e := range entries {
		result[i] = e.node
	}
	return result
}

// TopAt returns the topmost node at (x, y), or nil.
func (d *Document) TopAt(x, y int) *Node {
	stack := d.NodesAt(x, y)
	if len(stack) == 0 {
		return nil
	}
	return stack[0]
}
