package searcher

import (
	"fmt"
	"math"

	"teeko/game"
)

type Option func(m *Minimax)

// WithDepth sets how many plies are searched below the top-level move.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithEvaluationFn replaces the positional evaluation used at the horizon.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// Minimax picks moves by bounded-depth minimax with alpha-beta pruning.
// Terminal positions score +-1; positions at the depth horizon are scored
// by the evaluation function. The search never mutates the board it is
// given: every node works on successor copies.
type Minimax struct {
	piece    game.Piece
	depth    int
	evaluate game.Evaluate
}

func NewMinimax(piece game.Piece, options ...Option) *Minimax {
	if piece != game.Black && piece != game.Red {
		panic("searcher needs a concrete piece to play")
	}
	m := &Minimax{ // Default values
		piece:    piece,
		depth:    DefaultDepth,
		evaluate: game.PositionalEval,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move for the searcher's piece on b. Ties break
// toward the first successor in generation order. A position with no legal
// successors is an invariant violation upstream, so it panics rather than
// returning a move it cannot justify.
func (m *Minimax) FindMove(b game.Board, dropPhase bool) game.Move {
	successors := game.Successors(b, m.piece, dropPhase)
	if len(successors) == 0 {
		panic(fmt.Sprintf("no legal moves for %v (drop phase %v)", m.piece, dropPhase))
	}

	best := successors[0].Move
	bestScore := math.Inf(-1)
	for _, s := range successors {
		score := m.minValue(s.Board, m.depth, math.Inf(-1), math.Inf(1), dropPhase)
		if score > bestScore {
			bestScore = score
			best = s.Move
		}
	}
	return best
}

// maxValue evaluates a node where the searcher's piece is about to move,
// returning the best score the maximizer can guarantee within [alpha, beta].
func (m *Minimax) maxValue(b game.Board, depth int, alpha, beta float64, dropPhase bool) float64 {
	switch game.Result(b, m.piece) {
	case game.AgentWins:
		return Win
	case game.OpponentWins:
		return Loss
	}
	if depth == 0 {
		return m.evaluate(b, m.piece)
	}

	successors := game.Successors(b, m.piece, dropPhase)
	if len(successors) == 0 {
		panic("maximizing node has no successors")
	}
	for _, s := range successors {
		alpha = math.Max(alpha, m.minValue(s.Board, depth-1, alpha, beta, dropPhase))
		if alpha >= beta {
			return beta
		}
	}
	return alpha
}

// minValue evaluates a node where the opponent is about to move.
func (m *Minimax) minValue(b game.Board, depth int, alpha, beta float64, dropPhase bool) float64 {
	switch game.Result(b, m.piece) {
	case game.AgentWins:
		return Win
	case game.OpponentWins:
		return Loss
	}
	if depth == 0 {
		return m.evaluate(b, m.piece)
	}

	successors := game.Successors(b, m.piece.Opponent(), dropPhase)
	if len(successors) == 0 {
		panic("minimizing node has no successors")
	}
	for _, s := range successors {
		beta = math.Min(beta, m.maxValue(s.Board, depth-1, alpha, beta, dropPhase))
		if alpha >= beta {
			return alpha
		}
	}
	return beta
}
