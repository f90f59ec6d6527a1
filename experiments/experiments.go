package experiments

import (
	"context"
	"fmt"

	"zen/agent"
	"zen/engine"
	"zen/experiments/metrics"
	"zen/meta"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const (
	KindRandom = "random"
	KindGreedy = "greedy"
)

type Settings struct {
	Games      int // per match-up
	Seed       uint64
	MaxTurns   int
	PieceDraws int
	OutDir     string
}

func DefaultSettings() Settings {
	return Settings{
		Games:      30,
		Seed:       1,
		MaxTurns:   meta.MAX_TURNS,
		PieceDraws: meta.PIECE_DRAWS,
		OutDir:     "results",
	}
}

// RunStrength pits the random agent against the greedy one from both seats,
// plus the random mirror match as a baseline. It returns the directory the
// records were written to.
func RunStrength(ctx context.Context, settings Settings) (string, error) {
	random := metrics.AgentConfig{ID: 1, Kind: KindRandom, Seed: settings.Seed, PieceDraws: settings.PieceDraws}
	greedy := metrics.AgentConfig{ID: 2, Kind: KindGreedy}
	configs := []metrics.AgentConfig{random, greedy}

	matchUps := [][]metrics.AgentConfig{
		{random, greedy},
		{greedy, random},
		{random, random},
	}
	return runExperiment(ctx, "strength", settings, configs, matchUps)
}

func runExperiment(ctx context.Context, name string, settings Settings, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	seeds := rand.New(rand.NewSource(settings.Seed))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]
		wins := map[string]int{}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < settings.Games; i++ {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			count++
			gameMetric, moveMetrics, err := runGame(ctx, config1, config2, seeds.Uint64(), seeds.Uint64(), settings)
			if err != nil {
				log.Warn().Err(err).Msgf("matchup %d game %d aborted", mi+1, i+1)
				gameMetric.Ending = "aborted"
			}
			wins[gameMetric.Winner]++

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Debug().Msgf("completed matchup %d game %d: %s after %d moves", mi+1, i+1, gameMetric.Ending, gameMetric.TotalMoves)
		}
		log.Info().Msgf("completed matchup %d of %d: %v", mi+1, len(matchUps), wins)
	}

	log.Info().Msgf("completed %s experiment", name)
	summarize(moveRecords)

	writer, err := metrics.NewWriter(settings.OutDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame plays one match; the seat names carry the agent ids so winners can
// be told apart in a mirror match.
func runGame(ctx context.Context, config1, config2 metrics.AgentConfig, seed1, seed2 uint64, settings Settings) (metrics.GameMetric, []metrics.MoveMetric, error) {
	a := engine.NewAgentController(seatName(config1, 1), createAgent(config1, seed1))
	b := engine.NewAgentController(seatName(config2, 2), createAgent(config2, seed2))
	e, err := engine.New(a, b,
		engine.WithMaxTurns(settings.MaxTurns),
		engine.WithMetrics(metrics.NewCollector()),
	)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	_, err = e.Run(ctx)
	gameMetric, moveMetrics := e.Metrics()
	return gameMetric, moveMetrics, err
}

func createAgent(config metrics.AgentConfig, seed uint64) agent.Agent {
	switch config.Kind {
	case KindGreedy:
		return agent.NewGreedy()
	case KindRandom:
		options := []agent.Option{agent.WithSeed(seed)}
		if config.PieceDraws > 0 {
			options = append(options, agent.WithPieceDraws(config.PieceDraws))
		}
		return agent.NewRandom(options...)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}

func seatName(config metrics.AgentConfig, seat int) string {
	return fmt.Sprintf("%s#%d.%d", config.Kind, config.ID, seat)
}
