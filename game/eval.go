package game

// Evaluate scores a non-terminal board between -1 and 1 (exclusive)
// indicating how favorable the position is for the side holding mine.
// Callers must check for a terminal position first.
type Evaluate func(b Board, mine Piece) float64

// Concentric cell weights: the center counts most, the ring around it less,
// the border least.
var cellWeights = [Size][Size]float64{
	{0.05, 0.05, 0.05, 0.05, 0.05},
	{0.05, 0.10, 0.10, 0.10, 0.05},
	{0.05, 0.10, 0.20, 0.10, 0.05},
	{0.05, 0.10, 0.10, 0.10, 0.05},
	{0.05, 0.05, 0.05, 0.05, 0.05},
}

// PositionalEval sums the weights of the cells each side occupies, adding
// for mine and subtracting for the opponent. With at most four pieces per
// side the total stays strictly inside (-1, 1). It values central control
// only and is intended as a baseline evaluation at the search horizon.
func PositionalEval(b Board, mine Piece) float64 {
	opponent := mine.Opponent()
	score := 0.0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case mine:
				score += cellWeights[r][c]
			case opponent:
				score -= cellWeights[r][c]
			}
		}
	}
	return score
}
