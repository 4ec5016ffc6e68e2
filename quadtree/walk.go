package quadtree

// Walk calls fn for n and its descendants, parents before children and
// children in the order NW, NE, SW, SE. Returning false from fn skips the
// subtree below that node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) || n.leaf {
		return
	}
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

type Stats struct {
	Nodes    int
	Leaves   int
	Points   int
	MaxDepth int
}

func (n *Node) Stats() Stats {
	stats := Stats{}
	n.Walk(func(node *Node) bool {
		stats.Nodes += 1
		stats.MaxDepth = max(stats.MaxDepth, node.depth-n.depth)
		if node.leaf {
			stats.Leaves += 1
			stats.Points += len(node.Points)
		}
		return true
	})
	return stats
}

// Len returns the number of points stored below n.
func (n *Node) Len() int {
	return n.Stats().Points
}
