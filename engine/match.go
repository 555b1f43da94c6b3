package engine

import (
	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"

	"teeko/game"
)

// MaxTurns caps a match: Teeko positions can cycle forever once both sides
// are relocating.
const MaxTurns = 200

// Mover produces a move for the given position. searcher.Minimax satisfies
// this for a search-driven opponent.
type Mover interface {
	FindMove(b game.Board, dropPhase bool) game.Move
}

// RandomMover plays a uniformly random legal move. It stands in for an
// external opponent during local matches.
type RandomMover struct {
	piece game.Piece
}

func NewRandomMover(piece game.Piece) *RandomMover {
	return &RandomMover{piece: piece}
}

func (rm *RandomMover) FindMove(b game.Board, dropPhase bool) game.Move {
	successors := game.Successors(b, rm.piece, dropPhase)
	if len(successors) == 0 {
		panic("no legal moves at all")
	}
	return successors[rand.Intn(len(successors))].Move
}

// Run plays a full local game between the session's agent and the given
// opponent, black moving first, until a win or MaxTurns total moves. It
// returns the winning piece, or NoPiece when the match was cut off.
func (s *Session) Run(opponent Mover) (game.Piece, error) {
	agentTurn := s.agent == game.Black

	for turn := 1; turn <= MaxTurns; turn++ {
		if s.board.Winner() != game.NoPiece {
			break
		}

		if agentTurn {
			if _, err := s.AgentMove(); err != nil {
				return game.NoPiece, err
			}
		} else {
			dropPhase := s.board.Count(s.opponent) < game.PiecesPerSide
			move := opponent.FindMove(s.board, dropPhase)
			if err := s.OpponentMove(move); err != nil {
				return game.NoPiece, err
			}
		}
		agentTurn = !agentTurn
	}

	winner := s.board.Winner()
	if winner == game.NoPiece {
		log.Warn().Int("turns", MaxTurns).Msg("match cut off without a winner")
	}
	return winner, nil
}
