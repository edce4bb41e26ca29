package searcher

import (
	"math"

	"mancala/game"
)

// Polarity tells whether a search node maximizes (the computer's turn) or
// minimizes (the human's turn) the evaluation.
type Polarity int

const (
	Max Polarity = iota
	Min
)

// Initial alpha-beta window
const (
	NegInf = math.MinInt
	PosInf = math.MaxInt
)

func (p Polarity) String() string {
	if p == Max {
		return "MAX"
	}
	return "MIN"
}

// Next returns the polarity of the following ply.
func (p Polarity) Next() Polarity {
	if p == Max {
		return Min
	}
	return Max
}

// side returns the side to move at a node of this polarity.
func (p Polarity) side(roles game.Roles) game.Side {
	if p == Max {
		return roles.Computer
	}
	return roles.Human
}

// worst is the starting best value of a node before any child is scored.
func (p Polarity) worst() int {
	if p == Max {
		return NegInf
	}
	return PosInf
}

func (p Polarity) improves(value, best int) bool {
	if p == Max {
		return value > best
	}
	return value < best
}
