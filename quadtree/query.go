package quadtree

import (
	"github.com/quartercastle/vector"
)

// LeavesInSquare returns every leaf whose region intersects the square of
// side length centered on center. Leaves are listed depth first, children
// visited in the order NW, NE, SW, SE.
func (n *Node) LeavesInSquare(center vector.Vector, length float64) []*Node {
	return n.appendLeavesInSquare(nil, center, length)
}

func (n *Node) appendLeavesInSquare(leaves []*Node, center vector.Vector, length float64) []*Node {
	if !Intersects(n.Center, n.Length, center, length) {
		return leaves
	}
	if n.leaf {
		return append(leaves, n)
	}
	for _, child := range n.Children {
		leaves = child.appendLeavesInSquare(leaves, center, length)
	}
	return leaves
}

// ParticlesInBox returns the points and ids of all leaves intersecting the
// square of side length centered on center. The result over-approximates the
// box: whole leaves are returned, so callers filter by exact distance
// themselves. Points are grouped by leaf in LeavesInSquare order and keep
// their insertion order within a leaf.
func (n *Node) ParticlesInBox(center vector.Vector, length float64) ([]vector.Vector, []int) {
	return n.AppendParticlesInBox(nil, nil, center, length)
}

// AppendParticlesInBox is like ParticlesInBox but appends to the given
// buffers, which lets a caller reuse them across queries.
func (n *Node) AppendParticlesInBox(points []vector.Vector, ids []int, center vector.Vector, length float64) ([]vector.Vector, []int) {
	leaves := n.LeavesInSquare(center, length)
	total := 0
	for _, leaf := range leaves {
		total += len(leaf.Points)
	}
	if points == nil {
		points = make([]vector.Vector, 0, total)
	}
	if ids == nil {
		ids = make([]int, 0, total)
	}
	for _, leaf := range leaves {
		points = append(points, leaf.Points...)
		ids = append(ids, leaf.IDs...)
	}
	return points, ids
}
