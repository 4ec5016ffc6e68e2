// Package quadtree implements the region quadtree used as broad-phase
// neighbor search of the granular simulation. A tree is built once per
// simulation step from the current particle positions, queried read-only and
// then discarded.
package quadtree

import (
	"github.com/quartercastle/vector"
)

// Quadrants of a split node, in the order they are stored and visited.
const (
	NW = iota
	NE
	SW
	SE
)

// Node is a square region of space. A leaf stores up to Config.Capacity
// points together with their ids, an internal node stores exactly four
// children and no points. A node never turns back into a leaf.
type Node struct {
	Center vector.Vector
	// Length is the full side length of the square.
	Length   float64
	Points   []vector.Vector
	IDs      []int
	Children [4]*Node

	leaf   bool
	depth  int
	config *Config
}

// NewNode returns an empty leaf covering the square of side length centered
// on center. A nil config selects DefaultConfig.
func NewNode(center vector.Vector, length float64, config *Config) *Node {
	conf := DefaultConfig
	if config != nil {
		conf = config.withDefaults()
	}
	return newNode(vector.Vector{center.X(), center.Y()}, length, 0, &conf)
}

func newNode(center vector.Vector, length float64, depth int, config *Config) *Node {
	return &Node{
		Center: center,
		Length: length,
		Points: make([]vector.Vector, 0, config.Capacity),
		IDs:    make([]int, 0, config.Capacity),
		leaf:   true,
		depth:  depth,
		config: config,
	}
}

func (n *Node) IsLeaf() bool {
	return n.leaf
}

// Depth is 0 for a root.
func (n *Node) Depth() int {
	return n.depth
}

func (n *Node) Config() Config {
	return *n.config
}

// Bounds returns the edges of the node's square.
func (n *Node) Bounds() (xmin, xmax, ymin, ymax float64) {
	half := n.Length / 2
	return n.Center.X() - half, n.Center.X() + half, n.Center.Y() - half, n.Center.Y() + half
}

// Contains is the containment rule used for insertion: the lower edges are
// excluded and the upper edges included, i.e. x ∈ (xmin, xmax] and
// y ∈ (ymin, ymax].
func (n *Node) Contains(p vector.Vector) bool {
	xmin, xmax, ymin, ymax := n.Bounds()
	x, y := p.X(), p.Y()
	return x > xmin && x <= xmax && y > ymin && y <= ymax
}

// quadrant selects the child covering p. Points on the center lines belong
// to the west and south children, matching Contains of the children.
func (n *Node) quadrant(p vector.Vector) int {
	east := p.X() > n.Center.X()
	north := p.Y() > n.Center.Y()
	switch {
	case north && !east:
		return NW
	case north && east:
		return NE
	case !north && !east:
		return SW
	default:
		return SE
	}
}

// split turns a full leaf into an internal node and moves its points into
// the four new children. A full leaf holds at most Capacity points, so no
// child can overflow while they are redistributed.
func (n *Node) split() {
	l := n.Length / 2
	d := n.Length / 4
	cx, cy := n.Center.X(), n.Center.Y()
	n.Children[NW] = newNode(vector.Vector{cx - d, cy + d}, l, n.depth+1, n.config)
	n.Children[NE] = newNode(vector.Vector{cx + d, cy + d}, l, n.depth+1, n.config)
	n.Children[SW] = newNode(vector.Vector{cx - d, cy - d}, l, n.depth+1, n.config)
	n.Children[SE] = newNode(vector.Vector{cx + d, cy - d}, l, n.depth+1, n.config)
	for i, p := range n.Points {
		child := n.Children[n.quadrant(p)]
		child.Points = append(child.Points, p)
		child.IDs = append(child.IDs, n.IDs[i])
	}
	n.Points, n.IDs = nil, nil
	n.leaf = false
}
