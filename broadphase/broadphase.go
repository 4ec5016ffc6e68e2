// Package broadphase runs the per-step neighbor search of the granular
// simulation: it builds a fresh quadtree over the current particle positions
// and collects, for every particle, the candidates it may be in contact with.
// Exact distance filtering is left to the contact stage.
package broadphase

import (
	"context"
	"runtime"
	"time"

	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/suxatcode/granular-broadphase/quadtree"
)

type Config struct {
	// BoxLength is the side length of the query square around each particle,
	// usually twice the interaction radius.
	BoxLength float64
	// Parallelization is the number of queries running concurrently.
	Parallelization int
	Tree            quadtree.Config
}

var DefaultConfig = Config{
	BoxLength:       2.0,
	Parallelization: runtime.NumCPU(),
	Tree:            quadtree.DefaultConfig,
}

type BroadPhase struct {
	conf Config
}

func New(conf Config) *BroadPhase {
	b := &BroadPhase{}
	b.ApplyConfig(conf)
	return b
}

func (b *BroadPhase) ApplyConfig(conf Config) {
	if conf.BoxLength <= 0.0 {
		conf.BoxLength = DefaultConfig.BoxLength
	}
	if conf.Parallelization <= 0 {
		conf.Parallelization = DefaultConfig.Parallelization
	}
	b.conf = conf
}

func (b *BroadPhase) Config() Config {
	return b.conf
}

// Frame is the result of a single step. Candidates[i] lists the ids of all
// particles sharing a leaf with the query box around particle i, without i
// itself.
type Frame struct {
	Tree       *quadtree.Node
	Candidates [][]int
	Stats      quadtree.Stats
	BuildTime  time.Duration
	QueryTime  time.Duration
}

// TotalCandidates is the sum of the lengths of all candidate lists.
func (f *Frame) TotalCandidates() int {
	total := 0
	for _, c := range f.Candidates {
		total += len(c)
	}
	return total
}

// Step builds the tree over positions and queries it once per particle.
// Queries run concurrently, the tree is not modified after the build.
func (b *BroadPhase) Step(ctx context.Context, positions []vector.Vector) (*Frame, error) {
	start := time.Now()
	tree, err := quadtree.Build(positions, &b.conf.Tree)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build quadtree")
	}
	frame := &Frame{
		Tree:       tree,
		Candidates: make([][]int, len(positions)),
		Stats:      tree.Stats(),
		BuildTime:  time.Since(start),
	}

	start = time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.conf.Parallelization)
	for _, chunk := range chunks(len(positions), b.conf.Parallelization) {
		chunk := chunk
		g.Go(func() error {
			var (
				points []vector.Vector
				ids    []int
			)
			for i := chunk[0]; i < chunk[1]; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				points, ids = tree.AppendParticlesInBox(points[:0], ids[:0], positions[i], b.conf.BoxLength)
				frame.Candidates[i] = withoutID(ids, i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "neighbor queries aborted")
	}
	frame.QueryTime = time.Since(start)

	log.Ctx(ctx).Debug().
		Int("particles", len(positions)).
		Int("nodes", frame.Stats.Nodes).
		Int("leaves", frame.Stats.Leaves).
		Int("depth", frame.Stats.MaxDepth).
		Int("candidates", frame.TotalCandidates()).
		Dur("build", frame.BuildTime).
		Dur("query", frame.QueryTime).
		Msg("broad-phase step")
	return frame, nil
}

// withoutID copies ids into a new slice, dropping id.
func withoutID(ids []int, id int) []int {
	res := make([]int, 0, len(ids))
	for _, other := range ids {
		if other != id {
			res = append(res, other)
		}
	}
	return res
}

// chunks splits [0, n) into at most parts half-open ranges of similar size.
func chunks(n, parts int) [][2]int {
	if n == 0 {
		return nil
	}
	if parts > n {
		parts = n
	}
	res := make([][2]int, 0, parts)
	size := n / parts
	rest := n % parts
	from := 0
	for i := 0; i < parts; i++ {
		to := from + size
		if i < rest {
			to++
		}
		res = append(res, [2]int{from, to})
		from = to
	}
	return res
}
