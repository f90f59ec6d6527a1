package experiments

import (
	"strings"
	"time"

	"zen/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// TierStats aggregates the moves one agent tier produced.
type TierStats struct {
	Tier     string
	Moves    int
	Attempts int
	Duration time.Duration
}

func (s TierStats) AttemptsPerMove() float64 {
	if s.Moves == 0 {
		return 0
	}
	return float64(s.Attempts) / float64(s.Moves)
}

// Throughput groups move records by tier, most used tier first. Aborted
// steps produced no move and are left out.
func Throughput(records []metrics.MoveRecord) []TierStats {
	byTier := map[string]*TierStats{}
	for _, r := range records {
		if r.Aborted {
			continue
		}
		s, ok := byTier[r.Tier]
		if !ok {
			s = &TierStats{Tier: r.Tier}
			byTier[r.Tier] = s
		}
		s.Moves++
		s.Attempts += r.Attempts
		s.Duration += r.Duration
	}

	stats := make([]TierStats, 0, len(byTier))
	for _, s := range byTier {
		stats = append(stats, *s)
	}
	slices.SortFunc(stats, func(a, b TierStats) int {
		if a.Moves != b.Moves {
			return b.Moves - a.Moves
		}
		return strings.Compare(a.Tier, b.Tier)
	})
	return stats
}

func summarize(records []metrics.MoveRecord) {
	for _, s := range Throughput(records) {
		log.Info().Msgf("tier %s: %d moves, %.1f attempts per move, %s total", s.Tier, s.Moves, s.AttemptsPerMove(), s.Duration)
	}
}
