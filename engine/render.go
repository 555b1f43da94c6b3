package engine

import (
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"teeko/game"
)

var output = termenv.NewOutput(os.Stdout)

var pieceColors = map[game.Piece]termenv.Color{
	game.Black: output.Color("12"), // bright blue
	game.Red:   output.Color("9"),  // bright red
}

// Render formats the board the way the original console agent printed it:
// one numbered line per row, column letters underneath. Pieces are colored
// when the terminal supports it.
func Render(b game.Board) string {
	var sb strings.Builder
	for r := 0; r < game.Size; r++ {
		sb.WriteString(strconv.Itoa(r))
		sb.WriteString(": ")
		for c := 0; c < game.Size; c++ {
			cell := b[r][c]
			if color, ok := pieceColors[cell]; ok {
				sb.WriteString(output.String(cell.String()).Foreground(color).String())
			} else {
				sb.WriteString(cell.String())
			}
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   A B C D E\n")
	return sb.String()
}
