/*
 * gen-neighbors runs the broad-phase neighbor search on every frame of the
 * simulation replay received on stdin and writes a json report per frame to
 * stdout
 */
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/suxatcode/granular-broadphase/internal/app"
)

func main() {
	conf, err := app.GetEnvConfig()
	if err != nil {
		log.Fatal().Msgf("%v", err)
	}
	app.SetupLogging(conf)
	if err := app.RunNeighbors(context.Background(), conf, os.Stdin, os.Stdout); err != nil {
		log.Fatal().Msgf("%v", err)
	}
}
