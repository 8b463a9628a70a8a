package dragorder

import "github.com/idursun/dragorder/internal/tree"

// pointStack returns the nodes under (x, y), topmost first, with the drag
// proxy and everything inside it filtered out.
func (c *Controller) pointStack(x, y int) []*tree.Node {
	stack := c.host.NodesAt(x, y)
	if c.session == nil {
		return stack
	}
	filtered := stack[:0:0]
	for _, n := range stack {
		if !c.session.proxy.Contains(n) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

func (c *Controller) isItem(n *tree.Node) bool {
	if c.opts.Items != nil {
		return c.opts.Items(n)
	}
	return tree.ChildOf(c.container)(n)
}

// resolveItem returns the topmost item under (x, y). Items outside the
// container only count when they sit inside a foreign drop target.
func (c *Controller) resolveItem(x, y int) *tree.Node {
	for _, n := range c.pointStack(x, y) {
		if !c.isItem(n) {
			continue
		}
		if !c.container.Contains(n) {
			if c.opts.ForeignDrop == nil || n.Closest(c.opts.ForeignDrop) == nil {
				return nil
			}
		}
		return n
	}
	return nil
}

// resolveContainer returns the drop container under (x, y). Without a
// Parents matcher it is the owning container or a foreign drop target under
// the pointer, falling back to the owning container.
func (c *Controller) resolveContainer(x, y int) *tree.Node {
	stack := c.pointStack(x, y)
	if c.opts.Parents != nil {
		for _, n := range stack {
			if c.opts.Parents(n) {
				return n
			}
		}
		return nil
	}
	for _, n := range stack {
		if n == c.container || n.Matches(c.opts.ForeignDrop) {
			return n
		}
	}
	return c.container
}
