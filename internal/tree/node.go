package tree

import (
	"slices"

	"github.com/charmbracelet/x/cellbuf"
)

// Display controls whether a node renders a box of its own.
type Display int

const (
	// DisplayBlock nodes occupy their own rectangle.
	DisplayBlock Display = iota
	// DisplayContents nodes are layout transparent: only their children
	// render, so their geometry is the union of the children's.
	DisplayContents
)

// Node is an element (or marker) in a retained tree. Nodes are owned by
// whoever built the tree; the tree only keeps the parent/child links
// consistent.
type Node struct {
	ID      string
	Classes []string
	Label   string
	Display Display
	Rect    cellbuf.Rectangle
	Z       int
	// Floating nodes are skipped by flow layout and item snapshots.
	Floating bool
	// Marker nodes are zero-size sentinels. They are never hit and never
	// count as elements.
	Marker bool

	parent   *Node
	children []*Node
}

// New creates a block node with the given id and classes.
func New(id string, classes ...string) *Node {
	return &Node{ID: id, Classes: classes}
}

// NewMarker creates a sentinel node.
func NewMarker() *Node {
	return &Node{Marker: true}
}

func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of all children, markers included.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Elements returns the children that are not markers.
func (n *Node) Elements() []*Node {
	var result []*Node
	for _, c := range n.children {
		if !c.Marker {
			result = append(result, c)
		}
	}
	return result
}

// Index returns the position of n among its parent's children, or -1 when
// detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return slices.Index(n.parent.children, n)
}

func (n *Node) HasClass(class string) bool {
	return slices.Contains(n.Classes, class)
}

func (n *Node) AddClass(class string) {
	if !n.HasClass(class) {
		n.Classes = append(n.Classes, class)
	}
}

// Append moves child to the end of n's children.
func (n *Node) Append(child *Node) {
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
}

// InsertBefore moves child so that it directly precedes ref. A nil or
// foreign ref appends.
func (n *Node) InsertBefore(child, ref *Node) {
	if child == ref {
		return
	}
	child.Remove()
	i := -1
	if ref != nil && ref.parent == n {
		i = ref.Index()
	}
	child.parent = n
	if i < 0 {
		n.children = append(n.children, child)
		return
	}
	n.children = slices.Insert(n.children, i, child)
}

// InsertAfter moves child so that it directly follows ref.
func (n *Node) InsertAfter(child, ref *Node) {
	if child == ref {
		return
	}
	child.Remove()
	i := -1
	if ref != nil && ref.parent == n {
		i = ref.Index()
	}
	child.parent = n
	if i < 0 || i == len(n.children)-1 {
		n.children = append(n.children, child)
		return
	}
	n.children = slices.Insert(n.children, i+1, child)
}

// Before places other directly before n in n's parent. No-op when n is
// detached.
func (n *Node) Before(other *Node) {
	if n.parent != nil {
		n.parent.InsertBefore(other, n)
	}
}

// After places other directly after n in n's parent. No-op when n is
// detached.
func (n *Node) After(other *Node) {
	if n.parent != nil {
		n.parent.InsertAfter(other, n)
	}
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if i := p.indexOf(n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// ReplaceWith puts other in n's slot and detaches n.
func (n *Node) ReplaceWith(other *Node) {
	if n == other || n.parent == nil {
		return
	}
	p := n.parent
	other.Remove()
	i := p.indexOf(n)
	p.children[i] = other
	other.parent = p
	n.parent = nil
}

// Contains reports whether other is n or one of its descendants.
func (n *Node) Contains(other *Node) bool {
	for c := other; c != nil; c = c.parent {
		if c == n {
			return true
		}
	}
	return false
}

// Closest returns the nearest of n and its ancestors that matches m.
func (n *Node) Closest(m Matcher) *Node {
	if m == nil {
		return nil
	}
	for c := n; c != nil; c = c.parent {
		if m(c) {
			return c
		}
	}
	return nil
}

func (n *Node) Matches(m Matcher) bool {
	return m != nil && m(n)
}

// Clone returns a detached deep copy of n. Rectangles, classes and labels are
// copied; the copy shares nothing with n.
func (n *Node) Clone() *Node {
	c := n.shallow()
	for _, child := range n.children {
		cc := child.Clone()
		cc.parent = c
		c.children = append(c.children, cc)
	}
	return c
}

// CloneShallow returns a detached copy of n without children.
func (n *Node) CloneShallow() *Node {
	return n.shallow()
}

func (n *Node) shallow() *Node {
	return &Node{
		ID:       n.ID,
		Classes:  slices.Clone(n.Classes),
		Label:    n.Label,
		Display:  n.Display,
		Rect:     n.Rect,
		Z:        n.Z,
		Floating: n.Floating,
		Marker:   n.Marker,
	}
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the node's subtree.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range slices.Clone(n.children) {
		c.Walk(fn)
	}
}

// Query returns descendants of n (excluding n) matching m in document order.
func (n *Node) Query(m Matcher) []*Node {
	var result []*Node
	n.Walk(func(c *Node) bool {
		if c != n && !c.Marker && m(c) {
			result = append(result, c)
		}
		return true
	})
	return result
}

func (n *Node) indexOf(child *Node) int {
	return slices.Index(n.children, child)
}

// MoveBy translates the node and its descendants.
func (n *Node) MoveBy(dx, dy int) {
	n.Walk(func(c *Node) bool {
		c.Rect = c.Rect.Add(cellbuf.Pos(dx, dy))
		return true
	})
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Marker {
		return "#marker"
	}
	return n.ID
}

// NextSibling returns the child following n in its parent, markers included.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	i := n.parent.indexOf(n)
	if i < 0 || i+1 >= len(n.parent.children) {
		return nil
	}
	return n.parent.children[i+1]
}
