package game

import "fmt"

// ActionType represents the kind of move a player can perform.
type ActionType int

const (
	// PlaceAction drops a new piece onto an empty cell (drop phase only).
	PlaceAction ActionType = iota
	// RelocateAction slides an existing piece to an adjacent empty cell.
	RelocateAction
)

// Move is either a placement onto To, or a relocation from From to To.
// From is only meaningful when Action is RelocateAction.
type Move struct {
	Action ActionType
	To     Coord
	From   Coord
}

func (m Move) String() string {
	if m.Action == RelocateAction {
		return fmt.Sprintf("%v -> %v", m.From, m.To)
	}
	return fmt.Sprintf("place %v", m.To)
}
