package game

// Successor pairs a legal move with the board it produces.
type Successor struct {
	Move  Move
	Board Board
}

// Successors returns every legal next position for piece. During the drop
// phase each empty cell yields a placement; afterwards each of piece's men
// may slide to any empty adjacent cell. Every successor board is an
// independent copy, so callers may mutate one without affecting the input
// board or its siblings.
func Successors(b Board, piece Piece, dropPhase bool) []Successor {
	if dropPhase {
		return placements(b, piece)
	}
	return relocations(b, piece)
}

func placements(b Board, piece Piece) []Successor {
	var successors []Successor
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != NoPiece {
				continue
			}
			move := Move{Action: PlaceAction, To: Coord{r, c}}
			successors = append(successors, Successor{Move: move, Board: b.Apply(move, piece)})
		}
	}
	return successors
}

func relocations(b Board, piece Piece) []Successor {
	var successors []Successor
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != piece {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					to := Coord{r + dr, c + dc}
					if !to.In() || b.At(to) != NoPiece {
						continue
					}
					move := Move{Action: RelocateAction, To: to, From: Coord{r, c}}
					successors = append(successors, Successor{Move: move, Board: b.Apply(move, piece)})
				}
			}
		}
	}
	return successors
}
