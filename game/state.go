package game

import (
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// Board is an immutable snapshot of the pieces on the grid and the side to
// move. Operations on a Board always return a new Board.
type Board struct {
	pieces []Piece
	cells  [BoardSize][BoardSize]int8 // index into pieces + 1, 0 means empty
	toMove Player
}

// NewBoard validates the placement and builds a board. At most one piece may
// occupy a cell and keys must be unique.
func NewBoard(pieces []Piece, toMove Player) (*Board, error) {
	if !toMove.Valid() {
		return nil, fmt.Errorf("invalid side to move %d", toMove)
	}
	b := &Board{
		pieces: make([]Piece, len(pieces)),
		toMove: toMove,
	}
	copy(b.pieces, pieces)

	keys := make(map[PieceKey]struct{}, len(pieces))
	royals := make(map[Player]int)
	for i, p := range b.pieces {
		if p.Key == "" {
			return nil, errors.New("piece without key")
		}
		if _, dup := keys[p.Key]; dup {
			return nil, fmt.Errorf("duplicate piece key %s", p.Key)
		}
		keys[p.Key] = struct{}{}
		if !p.Type.Valid() {
			return nil, fmt.Errorf("piece %s has invalid type %d", p.Key, int(p.Type))
		}
		if !p.Owner.Valid() {
			return nil, fmt.Errorf("piece %s has invalid owner %d", p.Key, p.Owner)
		}
		if !p.Pos.InBounds() {
			return nil, fmt.Errorf("piece %s is off the board at %s", p.Key, p.Pos)
		}
		if b.cells[p.Pos.Row][p.Pos.Col] != 0 {
			return nil, fmt.Errorf("cell %s is occupied twice", p.Pos)
		}
		b.cells[p.Pos.Row][p.Pos.Col] = int8(i + 1)
		if p.Type == Royal {
			royals[p.Owner]++
		}
	}
	for player, n := range royals {
		if n > 1 {
			return nil, fmt.Errorf("player %d has %d royals", player, n)
		}
	}
	return b, nil
}

func (b *Board) ToMove() Player {
	return b.toMove
}

// WithToMove returns a copy of b with player to move.
func (b *Board) WithToMove(player Player) *Board {
	next := *b
	next.pieces = b.Pieces()
	next.toMove = player
	return &next
}

// Pieces returns a copy of the pieces in their stable order.
func (b *Board) Pieces() []Piece {
	out := make([]Piece, len(b.pieces))
	copy(out, b.pieces)
	return out
}

func (b *Board) PieceAt(pos Position) (Piece, bool) {
	if !pos.InBounds() {
		return Piece{}, false
	}
	idx := b.cells[pos.Row][pos.Col]
	if idx == 0 {
		return Piece{}, false
	}
	return b.pieces[idx-1], true
}

func (b *Board) Occupied(pos Position) bool {
	_, ok := b.PieceAt(pos)
	return ok
}

func (b *Board) Piece(key PieceKey) (Piece, bool) {
	for _, p := range b.pieces {
		if p.Key == key {
			return p, true
		}
	}
	return Piece{}, false
}

// Royal returns the royal piece of player, if it is still on the board.
func (b *Board) Royal(player Player) (Piece, bool) {
	for _, p := range b.pieces {
		if p.Owner == player && p.Type == Royal {
			return p, true
		}
	}
	return Piece{}, false
}

// Count returns how many pieces player has left.
func (b *Board) Count(player Player) int {
	n := 0
	for _, p := range b.pieces {
		if p.Owner == player {
			n++
		}
	}
	return n
}

// Play returns the board after action. It does not check legality; callers
// that accept untrusted input validate first. Any piece standing on the
// destination is removed together with the relocation.
func (b *Board) Play(action Action) *Board {
	next := &Board{
		pieces: make([]Piece, 0, len(b.pieces)),
		toMove: b.toMove.Opponent(),
	}
	moved := false
	for _, p := range b.pieces {
		switch {
		case p.Key == action.Piece:
			p.Pos = action.To
			moved = true
		case p.Pos == action.To:
			continue
		}
		next.pieces = append(next.pieces, p)
		next.cells[p.Pos.Row][p.Pos.Col] = int8(len(next.pieces))
	}
	if !moved {
		panic(fmt.Sprintf("piece %s is not on the board", action.Piece))
	}
	return next
}

// Fingerprint is the canonical form used for repetition detection: pieces
// sorted by key, then the side to move.
func (b *Board) Fingerprint() string {
	sorted := b.Pieces()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	var sb strings.Builder
	for i, p := range sorted {
		if i > 0 {
			sb.WriteByte(';')
		}
		fmt.Fprintf(&sb, "%s:%d,%d", p.Key, p.Pos.Row, p.Pos.Col)
	}
	fmt.Fprintf(&sb, "|player:%d", b.toMove)
	return sb.String()
}

func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()
	hasher.Write([]byte(b.Fingerprint()))
	return StateHash(hasher.Sum64())
}

// String draws the board with rank 7 on top. Player 1 pieces are upper case.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		fmt.Fprintf(&sb, "%d ", BoardSize-row)
		for col := 0; col < BoardSize; col++ {
			p, ok := b.PieceAt(Position{Row: row, Col: col})
			switch {
			case !ok:
				sb.WriteString(" .")
			case p.Owner == Player1:
				sb.WriteString(" " + symbol(p.Type))
			default:
				sb.WriteString(" " + strings.ToLower(symbol(p.Type)))
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		fmt.Fprintf(&sb, " %c", 'a'+rune(col))
	}
	fmt.Fprintf(&sb, "\nto move: %d\n", b.toMove)
	return sb.String()
}

func symbol(t PieceType) string {
	if t == Royal {
		return "K"
	}
	return t.String()[1:]
}
