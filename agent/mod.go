package agent

import (
	"errors"
	"time"

	"zen/game"
	"zen/meta"
)

// ErrNoLegalMove means an agent exhausted its search without finding a move
// the validator accepts.
var ErrNoLegalMove = errors.New("no legal move found")

type Agent interface {
	// ChooseMove returns a move that game.Validate accepts for self in s.
	ChooseMove(s *game.State, self, opponent *game.PlayerState) (game.MoveIntent, error)
}

// Tier tells which stage of an agent's search produced its last move.
type Tier int

const (
	TierSample   Tier = iota // random piece and direction draw
	TierSweep                // exhaustive sweep after the draws ran out
	TierBest                 // closes the larger gap to the anchor
	TierSecond               // closes the smaller gap
	TierFallback             // first valid ray
	TierSettle               // no stragglers, keep the cluster whole
)

func (t Tier) String() string {
	switch t {
	case TierSample:
		return "sample"
	case TierSweep:
		return "sweep"
	case TierBest:
		return "best"
	case TierSecond:
		return "second"
	case TierFallback:
		return "fallback"
	case TierSettle:
		return "settle"
	default:
		return "unknown"
	}
}

// Decision describes how the last move was found.
type Decision struct {
	Tier     Tier
	Attempts int // validator calls spent
}

// Reporter is implemented by agents that can explain their last move.
type Reporter interface {
	LastDecision() Decision
}

type Option func(c *config)

type config struct {
	seed       uint64
	pieceDraws int
}

func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithPieceDraws bounds how many random pieces Random tries before it falls
// back to sweeping every legal move.
func WithPieceDraws(draws int) Option {
	return func(c *config) {
		if draws > 0 {
			c.pieceDraws = draws
		}
	}
}

func newConfig(options []Option) config {
	c := config{
		seed:       uint64(time.Now().UnixNano()),
		pieceDraws: meta.PIECE_DRAWS,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}
