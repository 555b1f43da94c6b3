package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoardApply(t *testing.T) {
	t.Run("placement fills the destination", func(t *testing.T) {
		var b Board
		next := b.Apply(Move{Action: PlaceAction, To: Coord{2, 3}}, Black)

		require.Equal(t, Black, next.At(Coord{2, 3}))
		require.Equal(t, NoPiece, b.At(Coord{2, 3}), "receiver must stay untouched")
	})

	t.Run("relocation vacates the source", func(t *testing.T) {
		var b Board
		b[1][1] = Red
		next := b.Apply(Move{Action: RelocateAction, To: Coord{2, 2}, From: Coord{1, 1}}, Red)

		require.Equal(t, NoPiece, next.At(Coord{1, 1}))
		require.Equal(t, Red, next.At(Coord{2, 2}))
		require.Equal(t, Red, b.At(Coord{1, 1}), "receiver must stay untouched")
	})
}

func TestBoardValidate(t *testing.T) {
	t.Run("legal positions pass", func(t *testing.T) {
		var b Board
		require.NoError(t, b.Validate())

		b[0][0], b[1][1], b[2][2], b[3][3] = Black, Black, Black, Black
		b[0][4], b[1][3], b[4][0], b[4][4] = Red, Red, Red, Red
		require.NoError(t, b.Validate())
	})

	t.Run("unknown cell value is rejected", func(t *testing.T) {
		var b Board
		b[2][2] = Piece(7)
		require.Error(t, b.Validate())
	})

	t.Run("too many pieces per side is rejected", func(t *testing.T) {
		var b Board
		for c := 0; c < 5; c++ {
			b[0][c] = Red
		}
		require.Error(t, b.Validate())
	})
}

func TestCoordAdjacent(t *testing.T) {
	center := Coord{2, 2}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			neighbor := Coord{2 + dr, 2 + dc}
			if dr == 0 && dc == 0 {
				require.False(t, center.Adjacent(neighbor), "a cell is not its own neighbor")
			} else {
				require.True(t, center.Adjacent(neighbor))
			}
		}
	}

	require.False(t, Coord{0, 0}.Adjacent(Coord{0, 2}))
	require.False(t, Coord{0, 0}.Adjacent(Coord{2, 2}))
	// Opposite edges are far apart: adjacency never wraps.
	require.False(t, Coord{0, 0}.Adjacent(Coord{0, 4}))
	require.False(t, Coord{0, 0}.Adjacent(Coord{4, 0}))
}

func TestPieceOpponent(t *testing.T) {
	require.Equal(t, Red, Black.Opponent())
	require.Equal(t, Black, Red.Opponent())
	require.Equal(t, NoPiece, NoPiece.Opponent())
}
