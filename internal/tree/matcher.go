package tree

// Matcher selects nodes. It plays the role a CSS selector plays in a
// browser: options that restrict which nodes count as items, containers or
// handles are expressed as matchers.
type Matcher func(*Node) bool

// HasClass matches nodes carrying class.
func HasClass(class string) Matcher {
	return func(n *Node) bool {
		return n.HasClass(class)
	}
}

// ChildOf matches element children of parent.
func ChildOf(parent *Node) Matcher {
	return func(n *Node) bool {
		return !n.Marker && n.parent == parent
	}
}

// All matches when every one of ms matches.
func All(ms ...Matcher) Matcher {
	return func(n *Node) bool {
		for _, m := range ms {
			if m == nil || !m(n) {
				return false
			}
		}
		return true
	}
}
