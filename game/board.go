package game

import "fmt"

// Size is the board edge length. Teeko2 is only played on a 5x5 grid.
const Size = 5

// PiecesPerSide is the number of pieces each player drops before the
// relocation stage begins.
const PiecesPerSide = 4

// Piece identifies which side occupies a cell, or NoPiece for an empty cell.
type Piece int8

const (
	NoPiece Piece = iota
	Black
	Red
)

// Opponent returns the other side's piece.
func (p Piece) Opponent() Piece {
	switch p {
	case Black:
		return Red
	case Red:
		return Black
	default:
		return NoPiece
	}
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return " "
	case Black:
		return "b"
	case Red:
		return "r"
	default:
		return "?"
	}
}

// Coord addresses a single board cell by row and column.
type Coord struct {
	Row int
	Col int
}

// In reports whether the coordinate lies on the board.
func (c Coord) In() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Adjacent reports whether o is one of the up to 8 orthogonal or diagonal
// neighbors of c. Wrapping around the board edge does not count.
func (c Coord) Adjacent(o Coord) bool {
	dr := c.Row - o.Row
	dc := c.Col - o.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
}

func (c Coord) String() string {
	return fmt.Sprintf("%c%d", 'A'+c.Col, c.Row)
}

// Board holds the full game position. It is an array, so assignment and
// passing by value copy the whole grid - successor boards never alias the
// board they were generated from.
type Board [Size][Size]Piece

// At returns the piece at c.
func (b Board) At(c Coord) Piece {
	return b[c.Row][c.Col]
}

// Apply produces the board that results from p making move m. The receiver
// is left untouched. The move is assumed to have been validated.
func (b Board) Apply(m Move, p Piece) Board {
	if m.Action == RelocateAction {
		b[m.From.Row][m.From.Col] = NoPiece
	}
	b[m.To.Row][m.To.Col] = p
	return b
}

// Count returns the number of cells holding p.
func (b Board) Count(p Piece) int {
	n := 0
	for _, row := range b {
		for _, cell := range row {
			if cell == p {
				n++
			}
		}
	}
	return n
}

// Validate rejects boards that are outside the game's domain: unknown cell
// values, or more pieces per side than the rules allow. It is meant to run
// at the harness boundary before a board enters search.
func (b Board) Validate() error {
	for r, row := range b {
		for c, cell := range row {
			if cell != NoPiece && cell != Black && cell != Red {
				return fmt.Errorf("unknown piece value %d at %v", cell, Coord{r, c})
			}
		}
	}
	if n := b.Count(Black); n > PiecesPerSide {
		return fmt.Errorf("%d black pieces on board, at most %d allowed", n, PiecesPerSide)
	}
	if n := b.Count(Red); n > PiecesPerSide {
		return fmt.Errorf("%d red pieces on board, at most %d allowed", n, PiecesPerSide)
	}
	return nil
}
