package agent

import (
	"testing"

	"zen/game"
	"zen/meta"

	"github.com/stretchr/testify/require"
)

func emptyState() *game.State {
	return game.NewEmptyState(game.Config{Size: 11, PiecesPerPlayer: 12}, "alice", "bob")
}

func add(t *testing.T, s *game.State, owner game.Owner, id, row, col int) {
	t.Helper()
	_, err := s.AddPiece(owner, id, game.Position{Row: row, Col: col})
	require.NoError(t, err)
}

func standardState(t *testing.T) *game.State {
	t.Helper()
	s, err := game.NewState(game.Config{Size: 11, PiecesPerPlayer: 12}, "alice", "bob", game.StandardLayout(11))
	require.NoError(t, err)
	return s
}

// stuckState leaves PlayerA with pieces that every ray sends through an
// opposing piece.
func stuckState(t *testing.T) *game.State {
	s := emptyState()
	add(t, s, game.PlayerA, 0, 0, 0)
	add(t, s, game.PlayerA, 1, 0, 10)
	add(t, s, game.PlayerB, 0, 0, 1)
	add(t, s, game.PlayerB, 1, 1, 0)
	add(t, s, game.PlayerB, 2, 1, 1)
	add(t, s, game.PlayerB, 3, 0, 9)
	add(t, s, game.PlayerB, 4, 1, 10)
	add(t, s, game.PlayerB, 5, 1, 9)
	return s
}

func TestRandomChooseMove(t *testing.T) {
	t.Run("always legal on the opening position", func(t *testing.T) {
		s := standardState(t)
		r := NewRandom(WithSeed(7))
		self, opp := s.Player(game.PlayerA), s.Player(game.PlayerB)

		for i := 0; i < 1000; i++ {
			m, err := r.ChooseMove(s, self, opp)
			require.NoError(t, err)
			require.NoError(t, game.Validate(s, game.PlayerA, m))
			require.LessOrEqual(t, r.LastDecision().Attempts, meta.PIECE_DRAWS*8+13*8)
		}
	})

	t.Run("always legal while the game goes on", func(t *testing.T) {
		s := standardState(t)
		agents := map[game.Owner]*Random{
			game.PlayerA: NewRandom(WithSeed(1)),
			game.PlayerB: NewRandom(WithSeed(2)),
		}
		for turn := 0; turn < 300; turn++ {
			side := s.Active()
			m, err := agents[side].ChooseMove(s, s.Player(side), s.Player(side.Opponent()))
			if err != nil {
				require.ErrorIs(t, err, ErrNoLegalMove)
				require.Empty(t, game.LegalMoves(s, side))
				break
			}
			_, err = s.Apply(side, m)
			require.NoError(t, err)
			if s.Connected(game.PlayerA) || s.Connected(game.PlayerB) {
				break
			}
			s.SetActive(side.Opponent())
		}
	})

	t.Run("finds the only mobile piece", func(t *testing.T) {
		s := stuckState(t)
		add(t, s, game.PlayerA, 2, 6, 6)
		r := NewRandom(WithSeed(3), WithPieceDraws(1))

		for i := 0; i < 50; i++ {
			m, err := r.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))
			require.NoError(t, err)
			require.Equal(t, 2, m.PieceID)
			require.NoError(t, game.Validate(s, game.PlayerA, m))
		}
	})

	t.Run("reports exhaustion", func(t *testing.T) {
		s := stuckState(t)
		r := NewRandom(WithSeed(4))

		_, err := r.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))

		require.ErrorIs(t, err, ErrNoLegalMove)
		require.Equal(t, TierSweep, r.LastDecision().Tier)
	})

	t.Run("same seed, same moves", func(t *testing.T) {
		s := standardState(t)
		r1, r2 := NewRandom(WithSeed(9)), NewRandom(WithSeed(9))
		for i := 0; i < 20; i++ {
			m1, err := r1.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))
			require.NoError(t, err)
			m2, err := r2.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))
			require.NoError(t, err)
			require.Equal(t, m1, m2)
		}
	})
}

func TestGreedyChooseMove(t *testing.T) {
	t.Run("best tier closes the larger gap", func(t *testing.T) {
		s := emptyState()
		add(t, s, game.PlayerA, 0, 5, 5)
		add(t, s, game.PlayerA, 1, 5, 6)
		add(t, s, game.PlayerA, 2, 1, 5)
		add(t, s, game.PlayerB, 0, 10, 0)
		g := NewGreedy()

		m, err := g.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))

		require.NoError(t, err)
		require.Equal(t, game.MoveIntent{PieceID: 2, Row: 3, Col: 5}, m)
		require.Equal(t, TierBest, g.LastDecision().Tier)
	})

	t.Run("equal gaps move diagonally", func(t *testing.T) {
		s := emptyState()
		add(t, s, game.PlayerA, 0, 5, 5)
		add(t, s, game.PlayerA, 1, 5, 6)
		add(t, s, game.PlayerA, 2, 2, 5)
		add(t, s, game.PlayerA, 3, 0, 0)
		g := NewGreedy()

		m, err := g.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))

		require.NoError(t, err)
		require.Equal(t, game.MoveIntent{PieceID: 3, Row: 2, Col: 2}, m, "Farthest straggler goes first")
		require.Equal(t, TierBest, g.LastDecision().Tier)
	})

	t.Run("second tier closes the smaller gap", func(t *testing.T) {
		s := emptyState()
		add(t, s, game.PlayerA, 0, 5, 5)
		add(t, s, game.PlayerA, 1, 5, 6)
		add(t, s, game.PlayerA, 2, 1, 4)
		add(t, s, game.PlayerB, 0, 2, 4)
		g := NewGreedy()

		m, err := g.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))

		require.NoError(t, err)
		require.Equal(t, game.MoveIntent{PieceID: 2, Row: 1, Col: 5}, m)
		require.Equal(t, TierSecond, g.LastDecision().Tier)
	})

	t.Run("fallback tier takes the first open ray", func(t *testing.T) {
		s := emptyState()
		add(t, s, game.PlayerA, 0, 5, 5)
		add(t, s, game.PlayerA, 1, 5, 6)
		add(t, s, game.PlayerA, 2, 1, 4)
		add(t, s, game.PlayerB, 0, 2, 4)
		add(t, s, game.PlayerB, 1, 1, 5)
		g := NewGreedy()

		m, err := g.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))

		require.NoError(t, err)
		require.Equal(t, game.MoveIntent{PieceID: 2, Row: 1, Col: 2}, m)
		require.Equal(t, TierFallback, g.LastDecision().Tier)
	})

	t.Run("without a cluster the centre is the anchor", func(t *testing.T) {
		s := emptyState()
		add(t, s, game.PlayerA, 0, 0, 0)
		add(t, s, game.PlayerA, 1, 10, 10)
		g := NewGreedy()

		m, err := g.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))

		require.NoError(t, err)
		require.Equal(t, game.MoveIntent{PieceID: 1, Row: 8, Col: 8}, m)
	})

	t.Run("connected set has no stragglers and stays connected", func(t *testing.T) {
		s := emptyState()
		add(t, s, game.PlayerA, 0, 5, 5)
		add(t, s, game.PlayerA, 1, 5, 6)
		add(t, s, game.PlayerB, 0, 0, 0)
		g := NewGreedy()

		m, err := g.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))

		require.NoError(t, err)
		require.Equal(t, TierSettle, g.LastDecision().Tier)
		_, err = s.Apply(game.PlayerA, m)
		require.NoError(t, err)
		require.True(t, s.Connected(game.PlayerA))
	})

	t.Run("moves the chain when every straggler is pinned", func(t *testing.T) {
		s := stuckState(t)
		add(t, s, game.PlayerA, 2, 6, 6)
		add(t, s, game.PlayerA, 3, 6, 7)
		g := NewGreedy()

		m, err := g.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))

		require.NoError(t, err)
		require.NoError(t, game.Validate(s, game.PlayerA, m))
		require.Contains(t, []int{2, 3}, m.PieceID)
		require.Equal(t, TierSettle, g.LastDecision().Tier)
	})

	t.Run("reports exhaustion instead of guessing", func(t *testing.T) {
		s := stuckState(t)
		g := NewGreedy()

		_, err := g.ChooseMove(s, s.Player(game.PlayerA), s.Player(game.PlayerB))

		require.ErrorIs(t, err, ErrNoLegalMove)
	})

	t.Run("always legal while the game goes on", func(t *testing.T) {
		s := standardState(t)
		agents := map[game.Owner]Agent{
			game.PlayerA: NewGreedy(),
			game.PlayerB: NewRandom(WithSeed(5)),
		}
		for turn := 0; turn < 300; turn++ {
			side := s.Active()
			m, err := agents[side].ChooseMove(s, s.Player(side), s.Player(side.Opponent()))
			if err != nil {
				require.ErrorIs(t, err, ErrNoLegalMove)
				require.Empty(t, game.LegalMoves(s, side), "Agents only give up without legal moves")
				break
			}
			_, err = s.Apply(side, m)
			require.NoError(t, err)
			if s.Connected(game.PlayerA) || s.Connected(game.PlayerB) {
				break
			}
			s.SetActive(side.Opponent())
		}
	})
}
