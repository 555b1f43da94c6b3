package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"teeko/game"
	"teeko/searcher"
)

var (
	// ErrInvalidMove marks a move that violates occupancy or adjacency rules.
	ErrInvalidMove = errors.New("invalid move")
	// ErrMalformedBoard marks a board outside the expected domain.
	ErrMalformedBoard = errors.New("malformed board")
	// ErrGameOver is returned when a move is attempted after a win.
	ErrGameOver = errors.New("game is over")
)

type Option func(s *Session)

// WithAgentPiece fixes the agent's color instead of drawing it at random.
func WithAgentPiece(p game.Piece) Option {
	return func(s *Session) {
		s.agent = p
	}
}

// WithBoard starts the session from an existing position.
func WithBoard(b game.Board) Option {
	return func(s *Session) {
		s.board = b
	}
}

// WithSearchOptions forwards options to the session's searcher.
func WithSearchOptions(options ...searcher.Option) Option {
	return func(s *Session) {
		s.searchOptions = options
	}
}

// Session drives one game for the agent: it owns the authoritative board,
// tracks the drop phase, validates the opponent's moves, and asks the
// searcher for the agent's own moves. The searcher only ever sees value
// copies of the board.
type Session struct {
	board         game.Board
	agent         game.Piece
	opponent      game.Piece
	placed        int // pieces placed by both sides, see AgentMove
	searchOptions []searcher.Option
	search        *searcher.Minimax
}

func NewSession(options ...Option) *Session {
	s := &Session{}
	for _, option := range options {
		option(s)
	}
	if s.agent == game.NoPiece {
		pieces := []game.Piece{game.Black, game.Red}
		s.agent = pieces[rand.Intn(len(pieces))]
	}
	s.opponent = s.agent.Opponent()
	s.search = searcher.NewMinimax(s.agent, s.searchOptions...)
	log.Info().Stringer("piece", s.agent).Msg("session started")
	return s
}

// Board returns a snapshot of the current position.
func (s *Session) Board() game.Board {
	return s.board
}

// AgentPiece returns the color the agent plays.
func (s *Session) AgentPiece() game.Piece {
	return s.agent
}

// OpponentPiece returns the color the opponent plays.
func (s *Session) OpponentPiece() game.Piece {
	return s.opponent
}

// Winner returns the winning piece, or NoPiece while play continues.
func (s *Session) Winner() game.Piece {
	return s.board.Winner()
}

// DropPhase reports whether the next agent move is a placement. The counter
// runs one move ahead of the board (it is bumped before the agent searches),
// so the drop phase ends once it reaches both sides' full piece count.
func (s *Session) DropPhase() bool {
	return s.placed < 2*game.PiecesPerSide+1
}

// AgentMove advances the placement counter, searches for the agent's best
// move, and applies it to the session board. The counter is bumped by two
// per agent turn, one move for each side, with a one-time correction when
// the agent moves first (black opens, so only its own piece has landed by
// the end of its first turn).
func (s *Session) AgentMove() (game.Move, error) {
	if err := s.board.Validate(); err != nil {
		return game.Move{}, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
	}
	if s.board.Winner() != game.NoPiece {
		return game.Move{}, ErrGameOver
	}

	s.placed += 2
	if s.agent == game.Black && s.placed == 2 {
		s.placed--
	}

	move := s.search.FindMove(s.board, s.DropPhase())
	s.board = s.board.Apply(move, s.agent)
	log.Info().Stringer("piece", s.agent).Stringer("move", move).Msg("agent moved")
	return move, nil
}

// OpponentMove validates an externally supplied move against the session
// board and applies it. Validation failures leave the board untouched.
func (s *Session) OpponentMove(m game.Move) error {
	if s.board.Winner() != game.NoPiece {
		return ErrGameOver
	}
	if err := s.validateOpponent(m); err != nil {
		return err
	}
	s.board = s.board.Apply(m, s.opponent)
	log.Info().Stringer("piece", s.opponent).Stringer("move", m).Msg("opponent moved")
	return nil
}

func (s *Session) validateOpponent(m game.Move) error {
	if !m.To.In() {
		return fmt.Errorf("%w: destination %v is off the board", ErrInvalidMove, m.To)
	}
	if s.board.At(m.To) != game.NoPiece {
		return fmt.Errorf("%w: destination %v is occupied", ErrInvalidMove, m.To)
	}
	switch m.Action {
	case game.PlaceAction:
		if s.board.Count(s.opponent) >= game.PiecesPerSide {
			return fmt.Errorf("%w: all pieces already placed", ErrInvalidMove)
		}
	case game.RelocateAction:
		if !m.From.In() {
			return fmt.Errorf("%w: source %v is off the board", ErrInvalidMove, m.From)
		}
		if s.board.At(m.From) != s.opponent {
			return fmt.Errorf("%w: no %v piece at %v", ErrInvalidMove, s.opponent, m.From)
		}
		if !m.From.Adjacent(m.To) {
			return fmt.Errorf("%w: can only move to an adjacent space", ErrInvalidMove)
		}
	default:
		return fmt.Errorf("%w: unknown action %d", ErrInvalidMove, m.Action)
	}
	return nil
}
