// meta/meta.go
package meta

// PITS defines the number of playable pits per side.
const PITS = 6

// SEEDS defines the number of seeds placed in every pit at the start.
const SEEDS = 4

// TOTAL_SEEDS is the number of seeds on the board for the whole game.
const TOTAL_SEEDS = 2 * PITS * SEEDS

// SEARCH_DEPTH defines the minimax depth used by the computer opponent.
const SEARCH_DEPTH = 3

// EXTRA_TURN_BONUS weights an extra turn in the computer vs computer heuristic.
const EXTRA_TURN_BONUS = 10

// MAX_MOVES caps the number of moves an engine plays in one game.
const MAX_MOVES = 500
