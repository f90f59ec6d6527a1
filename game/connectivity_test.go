package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFullyConnected(t *testing.T) {
	t.Run("empty and single sets are connected", func(t *testing.T) {
		s := emptyState()
		require.True(t, IsFullyConnected(s.Board, nil))

		p := add(t, s, PlayerA, 0, 4, 4)
		require.True(t, IsFullyConnected(s.Board, []Piece{p}))
	})

	t.Run("diagonal touch links pieces", func(t *testing.T) {
		s := emptyState()
		add(t, s, PlayerA, 0, 0, 0)
		add(t, s, PlayerA, 1, 1, 1)
		add(t, s, PlayerA, 2, 2, 0)

		require.True(t, s.Connected(PlayerA))
	})

	t.Run("gap splits the set", func(t *testing.T) {
		s := emptyState()
		add(t, s, PlayerA, 0, 0, 0)
		add(t, s, PlayerA, 1, 0, 1)
		add(t, s, PlayerA, 2, 0, 3)

		require.False(t, s.Connected(PlayerA))
	})

	t.Run("other pieces do not bridge a gap", func(t *testing.T) {
		s := emptyState()
		add(t, s, PlayerA, 0, 0, 0)
		add(t, s, PlayerB, 0, 0, 1)
		add(t, s, PlayerA, 1, 0, 2)

		require.False(t, s.Connected(PlayerA))
	})

	t.Run("the zen bridges both players", func(t *testing.T) {
		s := emptyState()
		add(t, s, PlayerA, 0, 0, 0)
		add(t, s, Neutral, ZenID, 0, 1)
		add(t, s, PlayerA, 1, 0, 2)

		require.True(t, s.Connected(PlayerA))
	})

	t.Run("result does not depend on order", func(t *testing.T) {
		s := emptyState()
		add(t, s, PlayerA, 0, 3, 3)
		add(t, s, PlayerA, 1, 4, 4)
		add(t, s, PlayerA, 2, 5, 3)
		add(t, s, PlayerA, 3, 6, 2)
		pieces := s.Pieces(PlayerA)

		reversed := make([]Piece, len(pieces))
		for i, p := range pieces {
			reversed[len(pieces)-1-i] = p
		}
		rotated := append(append([]Piece{}, pieces[2:]...), pieces[:2]...)

		require.True(t, IsFullyConnected(s.Board, pieces))
		require.True(t, IsFullyConnected(s.Board, reversed))
		require.True(t, IsFullyConnected(s.Board, rotated))

		add(t, s, PlayerA, 4, 9, 9)
		pieces = s.Pieces(PlayerA)
		require.False(t, IsFullyConnected(s.Board, pieces))
		require.False(t, IsFullyConnected(s.Board, append([]Piece{pieces[4]}, pieces[:4]...)))
	})
}

func TestLargestConnectedSubset(t *testing.T) {
	t.Run("connected set is returned whole", func(t *testing.T) {
		s := emptyState()
		add(t, s, PlayerA, 0, 3, 3)
		add(t, s, PlayerA, 1, 3, 4)
		add(t, s, PlayerA, 2, 4, 5)
		pieces := s.Pieces(PlayerA)

		got := LargestConnectedSubset(s.Board, pieces)

		require.ElementsMatch(t, pieces, got)
		require.Equal(t, pieces[0], got[0], "Seed comes first")
	})

	t.Run("largest cluster wins", func(t *testing.T) {
		s := emptyState()
		lone := add(t, s, PlayerA, 0, 0, 0)
		a := add(t, s, PlayerA, 1, 5, 5)
		b := add(t, s, PlayerA, 2, 5, 6)
		c := add(t, s, PlayerA, 3, 6, 7)
		d := add(t, s, PlayerA, 4, 9, 0)
		e := add(t, s, PlayerA, 5, 10, 1)

		got := LargestConnectedSubset(s.Board, s.Pieces(PlayerA))

		require.ElementsMatch(t, []Piece{a, b, c}, got)
		require.Equal(t, a, got[0])
		require.NotContains(t, got, lone)
		require.NotContains(t, got, d)
		require.NotContains(t, got, e)
	})

	t.Run("ties go to the first cluster found", func(t *testing.T) {
		s := emptyState()
		a := add(t, s, PlayerA, 0, 0, 0)
		b := add(t, s, PlayerA, 1, 0, 1)
		c := add(t, s, PlayerA, 2, 8, 8)
		d := add(t, s, PlayerA, 3, 9, 9)

		got := LargestConnectedSubset(s.Board, []Piece{c, a, b, d})
		require.ElementsMatch(t, []Piece{c, d}, got)

		got = LargestConnectedSubset(s.Board, []Piece{a, c, b, d})
		require.ElementsMatch(t, []Piece{a, b}, got)
	})

	t.Run("empty set", func(t *testing.T) {
		s := emptyState()
		require.Empty(t, LargestConnectedSubset(s.Board, nil))
	})
}
