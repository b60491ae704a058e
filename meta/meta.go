// meta/meta.go
package meta

import "time"

// BOARD_SIZE is the width and height of the grid.
const BOARD_SIZE = 7

// GO_ROUTINES defines the default number of goroutines scoring root moves.
const GO_ROUTINES = 1

// REPETITION_LIMIT is the number of occurrences of a position that draws the game.
const REPETITION_LIMIT = 3

// MAX_TURNS caps self-play games that would otherwise shuffle forever.
const MAX_TURNS = 300

// THINKING_DELAY is the cosmetic pause before a computer move.
const THINKING_DELAY = 800 * time.Millisecond
