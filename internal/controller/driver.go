package controller

import (
	"context"

	"github.com/pkg/errors"
	"github.com/quartercastle/vector"
	"github.com/rs/zerolog/log"

	"github.com/suxatcode/granular-broadphase/broadphase"
	"github.com/suxatcode/granular-broadphase/replay"
)

// NeighborSearch is the per-step broad-phase the driver runs on every frame.
//
//go:generate mockgen -destination neighborsearch_mock.go -package controller . NeighborSearch
type NeighborSearch interface {
	// Step builds a fresh index over positions and returns the candidate
	// neighbors of every particle.
	Step(ctx context.Context, positions []vector.Vector) (*broadphase.Frame, error)
}

// Report summarizes the broad-phase of a single frame.
type Report struct {
	Time           float64 `json:"time"`
	Particles      int     `json:"particles"`
	Nodes          int     `json:"nodes"`
	Leaves         int     `json:"leaves"`
	Depth          int     `json:"depth"`
	Candidates     int     `json:"candidates"`
	MeanCandidates float64 `json:"meanCandidates"`
	BuildMicros    int64   `json:"buildMicros"`
	QueryMicros    int64   `json:"queryMicros"`
}

type Driver struct {
	search NeighborSearch
}

func NewDriver(search NeighborSearch) *Driver {
	return &Driver{search: search}
}

// Run steps through frames in order. Frames without particles are skipped.
// The first failing frame aborts the run.
func (d *Driver) Run(ctx context.Context, frames []replay.Frame) ([]Report, error) {
	reports := make([]Report, 0, len(frames))
	for i, frame := range frames {
		if err := ctx.Err(); err != nil {
			return reports, errors.Wrapf(err, "stopped before frame %d", i)
		}
		if len(frame.Positions) == 0 {
			log.Ctx(ctx).Warn().Msgf("frame %d (t=%v) has no particles, skipping", i, frame.Time)
			continue
		}
		res, err := d.search.Step(ctx, frame.Positions)
		if err != nil {
			log.Ctx(ctx).Error().Msgf("frame %d: %v", i, err)
			return reports, errors.Wrapf(err, "frame %d (t=%v)", i, frame.Time)
		}
		reports = append(reports, newReport(frame, res))
	}
	log.Ctx(ctx).Info().Msgf("broad-phase finished: %d of %d frames", len(reports), len(frames))
	return reports, nil
}

func newReport(frame replay.Frame, res *broadphase.Frame) Report {
	total := res.TotalCandidates()
	return Report{
		Time:           frame.Time,
		Particles:      len(frame.Positions),
		Nodes:          res.Stats.Nodes,
		Leaves:         res.Stats.Leaves,
		Depth:          res.Stats.MaxDepth,
		Candidates:     total,
		MeanCandidates: float64(total) / float64(len(frame.Positions)),
		BuildMicros:    res.BuildTime.Microseconds(),
		QueryMicros:    res.QueryTime.Microseconds(),
	}
}
