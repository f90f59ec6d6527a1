package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"zen/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	defaults := experiments.DefaultSettings()
	games := flag.Int("games", defaults.Games, "Number of games per match-up")
	seed := flag.Uint64("seed", defaults.Seed, "Seed for the random agents")
	maxTurns := flag.Int("max-turns", defaults.MaxTurns, "Turn cap per game, 0 for none")
	pieceDraws := flag.Int("piece-draws", defaults.PieceDraws, "Random agent piece draws before sweeping all moves")
	out := flag.String("out", defaults.OutDir, "Directory for the CSV records")
	level := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("bad log level")
	}
	zerolog.SetGlobalLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dir, err := experiments.RunStrength(ctx, experiments.Settings{
		Games:      *games,
		Seed:       *seed,
		MaxTurns:   *maxTurns,
		PieceDraws: *pieceDraws,
		OutDir:     *out,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().Msgf("done, records in %s", dir)
}
