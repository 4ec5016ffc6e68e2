package app

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/suxatcode/granular-broadphase/broadphase"
	"github.com/suxatcode/granular-broadphase/internal/controller"
	"github.com/suxatcode/granular-broadphase/quadtree"
	"github.com/suxatcode/granular-broadphase/replay"
)

type Config struct {
	Production bool `env:"PRODUCTION" envDefault:"false"`
	// Levels are {trace, debug, info, warn, error, fatal, panic}.
	// See github.com/rs/zerolog@v1.32.0/log.go for possible values.
	LogLevel string `env:"LOGLEVEL" envDefault:"info"`

	Capacity        int     `env:"QUADTREE_CAPACITY" envDefault:"4"`
	MaxDepth        int     `env:"QUADTREE_MAX_DEPTH" envDefault:"32"`
	// Padding around the bounding box of each frame, 0 or negative disables it.
	Padding         float64 `env:"QUADTREE_PADDING" envDefault:"1.0"`
	BoxLength       float64 `env:"BROADPHASE_BOX_LENGTH" envDefault:"2.0"`
	Parallelization int     `env:"BROADPHASE_PARALLELIZATION" envDefault:"0"`
}

func GetEnvConfig() (Config, error) {
	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		return conf, errors.Wrap(err, "failed to parse environment")
	}
	return conf, nil
}

// BroadPhaseConfig maps the environment onto the broad-phase settings. Zero
// values fall back to the package defaults, except for Padding, where the
// environment already carries the default and 0 means no padding.
func (conf Config) BroadPhaseConfig() broadphase.Config {
	padding := conf.Padding
	if padding <= 0.0 {
		padding = quadtree.NoPadding
	}
	return broadphase.Config{
		BoxLength:       conf.BoxLength,
		Parallelization: conf.Parallelization,
		Tree: quadtree.Config{
			Capacity: conf.Capacity,
			MaxDepth: conf.MaxDepth,
			Padding:  padding,
		},
	}
}

// SetupLogging configures the global zerolog logger.
func SetupLogging(conf Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		println("failed to parse LogLevel: '" + conf.LogLevel + "', setting to info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if !conf.Production {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// RunNeighbors reads a replay from in, runs the broad-phase on every frame
// and writes the per-frame reports as json to out.
func RunNeighbors(ctx context.Context, conf Config, in io.Reader, out io.Writer) error {
	ctx = log.Logger.WithContext(ctx)
	frames, err := replay.Parse(in)
	if err != nil {
		return errors.Wrap(err, "failed to parse replay")
	}
	bp := broadphase.New(conf.BroadPhaseConfig())
	log.Ctx(ctx).Info().Msgf("Config: %#v", bp.Config())
	reports, err := controller.NewDriver(bp).Run(ctx, frames)
	if err != nil {
		return err
	}
	return json.NewEncoder(out).Encode(&reports)
}
