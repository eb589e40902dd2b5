package scene

// FocusPressables makes every pressable or direction-marked node in the
// given subtrees keyboard-focusable by assigning a zero tab index, but only
// when no index is set or the current one is negative. Idempotent and safe
// to call on overlapping subtrees after any mutation (footer injection,
// theme refresh).
func FocusPressables(roots ...*Node) {
	for _, root := range roots {
		focusWalk(root)
	}
}

func focusWalk(n *Node) {
	if n == nil {
		return
	}
	if n.Pressable || n.TransitionDirection != "" {
		if n.TabIndex == nil || *n.TabIndex < 0 {
			zero := 0
			n.TabIndex = &zero
		}
	}
	for _, child := range n.Children {
		focusWalk(child)
	}
}
