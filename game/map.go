package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"mancala/meta"
)

// Pit identifies one of the 14 slots of the board, in sowing order.
type Pit int

const (
	A Pit = iota
	B
	C
	D
	E
	F
	StoreP1
	G
	H
	I
	J
	K
	L
	StoreP2

	NoPit Pit = -1
)

// NumSlots is the number of slots (12 pits and 2 stores) on the board.
const NumSlots = 2*meta.PITS + 2

// GLOBAL DATA. The board topology never changes, so the lookup tables are
// built once at startup and shared by every board.

var pitNames = [NumSlots]string{
	"A", "B", "C", "D", "E", "F", "P1",
	"G", "H", "I", "J", "K", "L", "P2",
}

var (
	player1Pits = [meta.PITS]Pit{A, B, C, D, E, F}
	player2Pits = [meta.PITS]Pit{G, H, I, J, K, L}
	stores      = [2]Pit{StoreP1, StoreP2}

	// opposite maps a pit to the pit directly across the board
	opposite [NumSlots]Pit
	// nextPit is the circular sowing order over all 14 slots
	nextPit [NumSlots]Pit
	// owner maps every slot to the side it belongs to
	owner [NumSlots]Side
)

func init() {
	for i := range opposite {
		opposite[i] = NoPit
	}
	for i := 0; i < meta.PITS; i++ {
		a, b := player1Pits[i], player2Pits[meta.PITS-1-i]
		opposite[a] = b
		opposite[b] = a
	}

	cycle := make([]Pit, 0, NumSlots)
	cycle = append(cycle, player1Pits[:]...)
	cycle = append(cycle, StoreP1)
	cycle = append(cycle, player2Pits[:]...)
	cycle = append(cycle, StoreP2)
	for i, pit := range cycle {
		nextPit[pit] = cycle[(i+1)%len(cycle)]
		if i <= int(StoreP1) {
			owner[pit] = P1
		} else {
			owner[pit] = P2
		}
	}
}

func (p Pit) valid() bool {
	return p >= 0 && p < NumSlots
}

// IsStore reports whether the slot is a side's store.
func (p Pit) IsStore() bool {
	return p == StoreP1 || p == StoreP2
}

// Owner returns the side a pit or store belongs to.
func (p Pit) Owner() Side {
	if !p.valid() {
		panic(fmt.Sprintf("no owner for %s", p))
	}
	return owner[p]
}

// Opposite returns the pit across the board, or NoPit for stores.
func (p Pit) Opposite() Pit {
	if !p.valid() {
		return NoPit
	}
	return opposite[p]
}

// Next returns the slot following p in sowing order.
func (p Pit) Next() Pit {
	return nextPit[p]
}

func (p Pit) String() string {
	if !p.valid() {
		return "none"
	}
	return pitNames[p]
}

// ParsePit converts a pit letter ("a".."l") or a store name ("P1", "P2")
// into a Pit.
func ParsePit(s string) (Pit, error) {
	i := slices.Index(pitNames[:], strings.ToUpper(strings.TrimSpace(s)))
	if i < 0 {
		return NoPit, fmt.Errorf("unknown pit %q", s)
	}
	return Pit(i), nil
}
