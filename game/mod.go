package game

import "kvinti/meta"

const BoardSize = meta.BOARD_SIZE

// Player identifies a side. Player 1 moves first.
type Player int

const (
	NoPlayer Player = 0
	Player1  Player = 1
	Player2  Player = 2
)

func (p Player) Opponent() Player {
	if p == Player1 {
		return Player2
	}
	return Player1
}

func (p Player) Valid() bool {
	return p == Player1 || p == Player2
}

type StateHash uint64

// Evaluate scores a board from the perspective player's point of view.
// Larger is better for perspective.
type Evaluate func(b *Board, perspective Player) float64
