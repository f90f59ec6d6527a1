package agent

import (
	"fmt"

	"zen/game"

	"golang.org/x/exp/rand"
)

// Random draws a random own piece and tries its eight rays in random order,
// drawing another piece when none of them is legal.
type Random struct {
	rng        *rand.Rand
	pieceDraws int
	last       Decision
}

func NewRandom(options ...Option) *Random {
	c := newConfig(options)
	return &Random{
		rng:        rand.New(rand.NewSource(c.seed)),
		pieceDraws: c.pieceDraws,
	}
}

func (r *Random) ChooseMove(s *game.State, self, opponent *game.PlayerState) (game.MoveIntent, error) {
	r.last = Decision{Tier: TierSample}
	pieces := s.Pieces(self.Side)
	if len(pieces) == 0 {
		return game.MoveIntent{}, fmt.Errorf("%s has no pieces: %w", self.Name, ErrNoLegalMove)
	}

	for draw := 0; draw < r.pieceDraws; draw++ {
		piece := pieces[r.rng.Intn(len(pieces))]
		for _, i := range r.rng.Perm(len(game.Directions)) {
			m := game.Intent(s.Board, piece, game.Directions[i])
			r.last.Attempts++
			if game.Validate(s, self.Side, m) == nil {
				return m, nil
			}
		}
	}

	// The draws can miss the rare piece that still has a move.
	r.last.Tier = TierSweep
	moves := game.LegalMoves(s, self.Side)
	r.last.Attempts += len(pieces) * len(game.Directions)
	if len(moves) == 0 {
		return game.MoveIntent{}, fmt.Errorf("%s after %d draws: %w", self.Name, r.pieceDraws, ErrNoLegalMove)
	}
	return moves[r.rng.Intn(len(moves))], nil
}

func (r *Random) LastDecision() Decision {
	return r.last
}
