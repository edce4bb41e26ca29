package game

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"mancala/meta"
)

// Board holds the seed count of every slot, indexed by Pit. It is a plain
// value: assigning a Board copies it, so search branches never share state.
type Board [NumSlots]int

// NewBoard returns the starting position: 4 seeds per pit, empty stores.
func NewBoard() Board {
	var b Board
	for _, pit := range player1Pits {
		b[pit] = meta.SEEDS
	}
	for _, pit := range player2Pits {
		b[pit] = meta.SEEDS
	}
	return b
}

// Seeds returns the number of seeds in a slot.
func (b *Board) Seeds(pit Pit) int {
	return b[pit]
}

// Store returns the number of seeds in the side's store.
func (b *Board) Store(side Side) int {
	return b[side.Store()]
}

// Total returns the number of seeds on the whole board.
func (b *Board) Total() int {
	total := 0
	for _, seeds := range b {
		total += seeds
	}
	return total
}

// PossibleMoves returns the side's non-empty pits in sowing order.
func (b *Board) PossibleMoves(side Side) []Pit {
	moves := make([]Pit, 0, meta.PITS)
	for _, pit := range side.Pits() {
		if b[pit] > 0 {
			moves = append(moves, pit)
		}
	}
	return moves
}

// DoMove sows the seeds of pit for side and returns the slot where the last
// seed landed. Landing in the side's own store grants an extra turn, which is
// left to the caller. The board is not modified when the move is invalid.
func (b *Board) DoMove(side Side, pit Pit) (Pit, error) {
	if !pit.valid() || pit.IsStore() || pit.Owner() != side {
		return NoPit, fmt.Errorf("%w: pit %s does not belong to %s", ErrInvalidMove, pit, side)
	}
	if b[pit] == 0 {
		return NoPit, fmt.Errorf("%w: pit %s is empty", ErrInvalidMove, pit)
	}

	seeds := b[pit]
	b[pit] = 0
	skip := side.Opponent().Store()
	current := pit
	for seeds > 0 {
		current = nextPit[current]
		if current == skip {
			continue
		}
		b[current]++
		seeds--
	}

	// Capture: last seed in an own pit that was empty before the move
	if !current.IsStore() && owner[current] == side && b[current] == 1 {
		across := opposite[current]
		b[side.Store()] += b[across] + 1
		b[current] = 0
		b[across] = 0
	}

	return current, nil
}

// IsGameOver reports whether either side has run out of seeds in its pits.
func (b *Board) IsGameOver() bool {
	return b.empty(P1) || b.empty(P2)
}

func (b *Board) empty(side Side) bool {
	for _, pit := range side.Pits() {
		if b[pit] > 0 {
			return false
		}
	}
	return true
}

// CollectRemainingSeeds moves the seeds left in each side's pits into that
// side's store.
func (b *Board) CollectRemainingSeeds() {
	for _, side := range []Side{P1, P2} {
		store := side.Store()
		for _, pit := range side.Pits() {
			b[store] += b[pit]
			b[pit] = 0
		}
	}
}

// String encodes the board as <p1store,p2store,A,B,C,D,E,F,G,H,I,J,K,L>.
func (b Board) String() string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<%d,%d", b[StoreP1], b[StoreP2])
	for _, pit := range player1Pits {
		fmt.Fprintf(&buf, ",%d", b[pit])
	}
	for _, pit := range player2Pits {
		fmt.Fprintf(&buf, ",%d", b[pit])
	}
	buf.WriteString(">")

	return buf.String()
}

// ParseBoard decodes the notation produced by Board.String.
func ParseBoard(notation string) (Board, error) {
	var b Board

	notation = strings.TrimSpace(notation)
	if !strings.HasPrefix(notation, "<") || !strings.HasSuffix(notation, ">") {
		return b, errors.New("invalid board notation")
	}
	parts := strings.Split(notation[1:len(notation)-1], ",")
	if len(parts) != NumSlots {
		return b, fmt.Errorf("invalid board notation: expected %d counts, got %d", NumSlots, len(parts))
	}

	counts := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return b, fmt.Errorf("invalid seed count %q: %w", part, err)
		}
		if n < 0 {
			return b, fmt.Errorf("negative seed count %d", n)
		}
		if n > meta.TOTAL_SEEDS {
			return b, fmt.Errorf("seed count %d exceeds the %d seeds in play", n, meta.TOTAL_SEEDS)
		}
		counts[i] = n
	}

	b[StoreP1], b[StoreP2] = counts[0], counts[1]
	for i, pit := range player1Pits {
		b[pit] = counts[2+i]
	}
	for i, pit := range player2Pits {
		b[pit] = counts[2+meta.PITS+i]
	}

	if total := b.Total(); total != meta.TOTAL_SEEDS {
		return b, fmt.Errorf("board holds %d seeds, expected %d", total, meta.TOTAL_SEEDS)
	}
	return b, nil
}
