package app

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/quartercastle/vector"
	"github.com/stretchr/testify/assert"

	"github.com/suxatcode/granular-broadphase/internal/controller"
	"github.com/suxatcode/granular-broadphase/quadtree"
)

func TestGetEnvConfig(t *testing.T) {
	t.Setenv("QUADTREE_CAPACITY", "8")
	t.Setenv("BROADPHASE_BOX_LENGTH", "0.25")
	conf, err := GetEnvConfig()
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(8, conf.Capacity)
	assert.Equal(32, conf.MaxDepth)
	assert.Equal(0.25, conf.BoxLength)
	assert.Equal("info", conf.LogLevel)
	bp := conf.BroadPhaseConfig()
	assert.Equal(8, bp.Tree.Capacity)
	assert.Equal(1.0, bp.Tree.Padding)
}

func TestGetEnvConfig_zeroPadding(t *testing.T) {
	t.Setenv("QUADTREE_PADDING", "0")
	conf, err := GetEnvConfig()
	assert := assert.New(t)
	assert.NoError(err)
	bp := conf.BroadPhaseConfig()
	assert.Equal(quadtree.NoPadding, bp.Tree.Padding)
	tree, err := quadtree.Build([]vector.Vector{{0, 0}, {2, 2}}, &bp.Tree)
	assert.NoError(err)
	assert.Equal(2.0, tree.Length, "root covers the exact bounding box")
}

func TestGetEnvConfig_invalid(t *testing.T) {
	t.Setenv("QUADTREE_CAPACITY", "many")
	_, err := GetEnvConfig()
	assert.Error(t, err)
}

func TestRunNeighbors(t *testing.T) {
	in := strings.NewReader("Computation time: 0.5\n" +
		"\tPosition: 0 0 0\n" +
		"\tPosition: 1 0 0\n" +
		"\tPosition: 0 1 0\n" +
		"\tPosition: 1 1 0\n" +
		"\tPosition: 5 5 0\n" +
		"\n" +
		"Computation time: 1.0\n" +
		"\tPosition: 3 3 0\n")
	out := &bytes.Buffer{}
	conf := Config{LogLevel: "error", Capacity: 4, Padding: 1, BoxLength: 2}
	assert := assert.New(t)
	assert.NoError(RunNeighbors(context.Background(), conf, in, out))
	reports := []controller.Report{}
	assert.NoError(json.Unmarshal(out.Bytes(), &reports))
	assert.Len(reports, 2)
	assert.Equal(0.5, reports[0].Time)
	assert.Equal(5, reports[0].Particles)
	assert.Equal(12, reports[0].Candidates)
	assert.Equal(1, reports[1].Particles)
	assert.Equal(0, reports[1].Candidates)
}

func TestRunNeighbors_badReplay(t *testing.T) {
	err := RunNeighbors(context.Background(), Config{}, strings.NewReader("\tPosition: 1 1\n"), &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to parse replay")
}
