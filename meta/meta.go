// meta/meta.go
package meta

// BOARD_SIZE is the side length of the standard board.
const BOARD_SIZE = 11

// PIECES_PER_PLAYER is the number of regular pieces each side starts with.
const PIECES_PER_PLAYER = 12

// MAX_TURNS caps a match; 0 lets it run until somebody connects.
const MAX_TURNS = 300

// PIECE_DRAWS bounds the random agent's piece draws before it sweeps all moves.
const PIECE_DRAWS = 64
