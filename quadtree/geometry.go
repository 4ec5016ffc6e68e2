package quadtree

import (
	"github.com/quartercastle/vector"
	"golang.org/x/exp/constraints"
)

// PointInSquare reports whether p lies in the closed square of side length
// centered on center. Both edges are inclusive.
func PointInSquare(p, center vector.Vector, length float64) bool {
	half := length / 2
	return center.X()-half <= p.X() && p.X() <= center.X()+half &&
		center.Y()-half <= p.Y() && p.Y() <= center.Y()+half
}

// Intersects reports whether the axis aligned squares A and B overlap.
// Touching edges count as overlap.
func Intersects(centerA vector.Vector, lengthA float64, centerB vector.Vector, lengthB float64) bool {
	halfA, halfB := lengthA/2, lengthB/2
	return !(centerA.X()+halfA < centerB.X()-halfB ||
		centerB.X()+halfB < centerA.X()-halfA ||
		centerA.Y()+halfA < centerB.Y()-halfB ||
		centerB.Y()+halfB < centerA.Y()-halfA)
}

func min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
