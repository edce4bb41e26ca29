package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when a side tries to sow a pit it does not own
// or a pit without seeds.
var ErrInvalidMove = errors.New("invalid move")

// Side identifies one half of the board.
type Side int

const (
	P1 Side = iota
	P2
)

func (s Side) Opponent() Side {
	if s == P1 {
		return P2
	}
	return P1
}

// Pits returns the side's six playable pits in sowing order.
func (s Side) Pits() []Pit {
	pits := player1Pits
	if s == P2 {
		pits = player2Pits
	}
	return pits[:]
}

// Store returns the side's scoring slot.
func (s Side) Store() Pit {
	return stores[s]
}

func (s Side) String() string {
	switch s {
	case P1:
		return "P1"
	case P2:
		return "P2"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "P1":
		return P1, nil
	case "P2":
		return P2, nil
	}
	return P1, fmt.Errorf("unknown side %q", s)
}

// Role tells whether a side is played by the human or by the computer.
type Role int

const (
	Human Role = iota
	Computer
)

func (r Role) String() string {
	if r == Human {
		return "HUMAN"
	}
	return "COMPUTER"
}

// Evaluates a game to a score from the computer's perspective: positive
// values favour the side labeled Computer.
type Evaluate func(*Game) int
