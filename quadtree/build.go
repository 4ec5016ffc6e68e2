package quadtree

import (
	"math"

	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
)

var ErrEmptyPointSet = errors.New("empty point set")

// BoundingSquare returns the square around the axis aligned bounding box of
// points, grown by padding on every side. Its side length is the larger of
// the padded box's width and height.
func BoundingSquare(points []vector.Vector, padding float64) (vector.Vector, float64, error) {
	if len(points) == 0 {
		return nil, 0, ErrEmptyPointSet
	}
	xmin, ymin := math.Inf(+1), math.Inf(+1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for i, p := range points {
		if len(p) < 2 {
			return nil, 0, errors.Errorf("point %d has %d components, need at least 2", i, len(p))
		}
		if !isFinite(p[0]) || !isFinite(p[1]) {
			return nil, 0, errors.Errorf("point %d is not finite: %v", i, p)
		}
		xmin, xmax = min(xmin, p[0]), max(xmax, p[0])
		ymin, ymax = min(ymin, p[1]), max(ymax, p[1])
	}
	xmin, xmax = xmin-padding, xmax+padding
	ymin, ymax = ymin-padding, ymax+padding
	center := vector.Vector{(xmax + xmin) / 2, (ymax + ymin) / 2}
	return center, max(xmax-xmin, ymax-ymin), nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Build constructs a tree over points. The root covers the padded bounding
// square of the points, and every point is inserted in order with its index
// as id. A nil config selects DefaultConfig.
//
// The tree stores the given vectors, not copies. Modifying a point after the
// build changes the tree's contents, so positions of the next step must be
// integrated only after the tree of the current step is no longer queried.
func Build(points []vector.Vector, config *Config) (*Node, error) {
	conf := DefaultConfig
	if config != nil {
		conf = config.withDefaults()
	}
	center, length, err := BoundingSquare(points, conf.Padding)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute root region")
	}
	root := newNode(center, length, 0, &conf)
	for i, p := range points {
		root.Insert(p, i)
	}
	return root, nil
}
