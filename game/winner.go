package game

// Outcome is a terminal verdict from the agent's point of view.
type Outcome int

const (
	NoWinner Outcome = iota
	AgentWins
	OpponentWins
)

// Winner scans the board for a win condition and returns the piece that
// achieved it, or NoPiece when no pattern matches. Five pattern families are
// checked: horizontal, vertical, both diagonal directions (four contiguous
// same-piece cells each), and the corners of a 3x3 square whose center cell
// is empty. The scan is identical regardless of whose turn produced the
// board.
func (b Board) Winner() Piece {
	// Horizontal runs
	for r := 0; r < Size; r++ {
		for c := 0; c < Size-3; c++ {
			p := b[r][c]
			if p != NoPiece && p == b[r][c+1] && p == b[r][c+2] && p == b[r][c+3] {
				return p
			}
		}
	}

	// Vertical runs
	for c := 0; c < Size; c++ {
		for r := 0; r < Size-3; r++ {
			p := b[r][c]
			if p != NoPiece && p == b[r+1][c] && p == b[r+2][c] && p == b[r+3][c] {
				return p
			}
		}
	}

	// Top-left to bottom-right diagonals
	for r := 0; r < Size-3; r++ {
		for c := 0; c < Size-3; c++ {
			p := b[r][c]
			if p != NoPiece && p == b[r+1][c+1] && p == b[r+2][c+2] && p == b[r+3][c+3] {
				return p
			}
		}
	}

	// Top-right to bottom-left diagonals
	for r := 0; r < Size-3; r++ {
		for c := 3; c < Size; c++ {
			p := b[r][c]
			if p != NoPiece && p == b[r+1][c-1] && p == b[r+2][c-2] && p == b[r+3][c-3] {
				return p
			}
		}
	}

	// 3x3 square corners around an empty center
	for r := 0; r < Size-2; r++ {
		for c := 0; c < Size-2; c++ {
			p := b[r][c]
			if p != NoPiece && b[r+1][c+1] == NoPiece &&
				p == b[r][c+2] && p == b[r+2][c] && p == b[r+2][c+2] {
				return p
			}
		}
	}

	return NoPiece
}

// Result maps Winner to the perspective of the side holding mine.
func Result(b Board, mine Piece) Outcome {
	switch b.Winner() {
	case NoPiece:
		return NoWinner
	case mine:
		return AgentWins
	default:
		return OpponentWins
	}
}
