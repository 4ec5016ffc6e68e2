package quadtree

import (
	"testing"

	"github.com/quartercastle/vector"
	"github.com/stretchr/testify/assert"
)

func TestNode_ParticlesInBox_scenario(t *testing.T) {
	assert := assert.New(t)
	n := NewNode(vector.Vector{2.5, 2.5}, 10, nil)
	for i, p := range []vector.Vector{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {5, 5}} {
		assert.True(n.Insert(p, i))
	}
	assert.False(n.IsLeaf(), "fifth point overflows the root")
	points, ids := n.ParticlesInBox(vector.Vector{0.5, 0.5}, 2)
	assert.Equal([]int{0, 1, 2, 3}, ids)
	assert.Equal([]vector.Vector{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, points)
	assert.NotContains(ids, 4)
}

func TestNode_ParticlesInBox_order(t *testing.T) {
	n := NewNode(vector.Vector{0, 0}, 8, &Config{Capacity: 1})
	n.Insert(vector.Vector{2, -2}, 0)
	n.Insert(vector.Vector{-2, 2}, 1)
	n.Insert(vector.Vector{-2, -2}, 2)
	n.Insert(vector.Vector{2, 2}, 3)
	_, ids := n.ParticlesInBox(n.Center, n.Length)
	assert.Equal(t, []int{1, 3, 2, 0}, ids, "leaves are visited NW, NE, SW, SE")
}

func TestNode_ParticlesInBox_outside(t *testing.T) {
	assert := assert.New(t)
	n := NewNode(vector.Vector{0, 0}, 4, nil)
	n.Insert(vector.Vector{1, 1}, 0)
	points, ids := n.ParticlesInBox(vector.Vector{100, 100}, 2)
	assert.Empty(points)
	assert.Empty(ids)
	assert.Empty(n.LeavesInSquare(vector.Vector{100, 100}, 2))
}

func TestNode_ParticlesInBox_overApproximation(t *testing.T) {
	n := NewNode(vector.Vector{0, 0}, 8, nil)
	n.Insert(vector.Vector{0.1, 0.1}, 0)
	n.Insert(vector.Vector{3.9, 3.9}, 1)
	_, ids := n.ParticlesInBox(vector.Vector{0, 0}, 0.5)
	assert.Equal(t, []int{0, 1}, ids, "the whole leaf is returned, not only points inside the box")
}

func TestNode_ParticlesInBox_idempotent(t *testing.T) {
	points := []vector.Vector{}
	for i := 0; i < 100; i++ {
		points = append(points, vector.Vector{float64(i % 10), float64(i / 10)})
	}
	n, err := Build(points, nil)
	assert := assert.New(t)
	assert.NoError(err)
	p1, ids1 := n.ParticlesInBox(vector.Vector{4, 4}, 3)
	p2, ids2 := n.ParticlesInBox(vector.Vector{4, 4}, 3)
	assert.Equal(p1, p2)
	assert.Equal(ids1, ids2)
	assert.NotEmpty(ids1)
}

func TestNode_AppendParticlesInBox(t *testing.T) {
	assert := assert.New(t)
	n := NewNode(vector.Vector{0, 0}, 4, nil)
	n.Insert(vector.Vector{1, 1, 7}, 3)
	points, ids := n.AppendParticlesInBox([]vector.Vector{{9, 9}}, []int{9}, vector.Vector{0, 0}, 1)
	assert.Equal([]vector.Vector{{9, 9}, {1, 1, 7}}, points)
	assert.Equal([]int{9, 3}, ids)
	points, ids = n.AppendParticlesInBox(points[:0], ids[:0], vector.Vector{0, 0}, 1)
	assert.Equal([]vector.Vector{{1, 1, 7}}, points)
	assert.Equal([]int{3}, ids)
}
