package quadtree

import (
	"github.com/quartercastle/vector"
)

// Insert stores p with the external id into the leaf of n covering it,
// splitting full leaves on the way down. It returns false, and stores
// nothing, if p lies outside the region of n. Callers inserting into a tree
// they did not size themselves lose such points silently.
// p is stored as is and shares its backing array with the caller.
func (n *Node) Insert(p vector.Vector, id int) bool {
	if !n.Contains(p) {
		return false
	}
	node := n
	for {
		if !node.leaf {
			node = node.Children[node.quadrant(p)]
			continue
		}
		if len(node.Points) < node.config.Capacity || node.depth >= node.config.MaxDepth {
			node.Points = append(node.Points, p)
			node.IDs = append(node.IDs, id)
			return true
		}
		node.split()
	}
}
