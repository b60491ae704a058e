package gamemaster

import (
	"errors"
	"fmt"
	"kvinti/game"
	"kvinti/meta"
	"kvinti/utils"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Game owns the record of one match and is the only place where actions are
// applied to it.
type Game struct {
	ID string

	mu         sync.Mutex
	record     *Record
	generation uint64
}

// Ticket pins the position a computer move is being computed for. A result is
// only accepted if the game is still at that position.
type Ticket struct {
	Board      *game.Board
	Side       game.Player
	ply        int
	generation uint64
}

// New starts a game from the standard layout.
func New() *Game {
	g, err := NewFrom(game.NewStandardBoard())
	if err != nil {
		panic(err)
	}
	return g
}

// NewFrom starts a game from an arbitrary position. Both Royals must be on the
// board.
func NewFrom(b *game.Board) (*Game, error) {
	for _, p := range []game.Player{game.Player1, game.Player2} {
		if _, ok := b.Royal(p); !ok {
			return nil, fmt.Errorf("player %d has no royal", p)
		}
	}
	g := &Game{ID: uuid.NewString()}
	g.record = newRecord(initialEntry(b))
	return g, nil
}

func initialEntry(b *game.Board) Entry {
	status := Status{}
	if !b.HasActions(b.ToMove()) {
		status = won(b.ToMove().Opponent(), NoLegalMoves)
	}
	return Entry{Board: b, Fingerprint: b.Fingerprint(), Status: status}
}

// Board returns the current position.
func (g *Game) Board() *game.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.record.Latest().Board
}

func (g *Game) Status() Status {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.record.Latest().Status
}

// Record returns a copy of the history, first entry being the start position.
func (g *Game) Record() []Entry {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.record.Entries()
}

// FirstMove reports whether side has not moved yet in this game.
func (g *Game) FirstMove(side game.Player) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.record.Moves(side) == 0
}

// LegalActions recomputes the legal destinations of the piece with key.
func (g *Game) LegalActions(key game.PieceKey) (game.Actions, error) {
	b := g.Board()
	p, ok := b.Piece(key)
	if !ok {
		return game.Actions{}, fmt.Errorf("piece %s is not on the board", key)
	}
	return game.LegalActions(p, b), nil
}

// Apply validates action against the current position and appends the
// resulting position. On error nothing changes.
func (g *Game) Apply(action game.Action) (Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.apply(action)
}

// Ticket captures the current position for an asynchronous computer move.
func (g *Game) Ticket() Ticket {
	g.mu.Lock()
	defer g.mu.Unlock()
	b := g.record.Latest().Board
	return Ticket{
		Board:      b,
		Side:       b.ToMove(),
		ply:        g.record.Len(),
		generation: g.generation,
	}
}

// ApplyTicket applies an action computed for ticket. It fails with
// ErrStaleResult if the game was reset, rewound or advanced in the meantime.
func (g *Game) ApplyTicket(t Ticket, action game.Action) (Status, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.record.Latest().Status.Over() {
		return g.record.Latest().Status, ErrGameOver
	}
	if t.generation != g.generation || t.ply != g.record.Len() {
		log.Warn().Str("game", g.ID).Str("action", action.String()).Msg("discarding stale computer move")
		return g.record.Latest().Status, ErrStaleResult
	}
	return g.apply(action)
}

// Reset returns the game to the standard layout. Pending tickets go stale.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.record = newRecord(initialEntry(game.NewStandardBoard()))
	g.generation++
	log.Debug().Str("game", g.ID).Msg("game reset")
}

// Undo rewinds to the entry at index; later entries are dropped and the
// status of that entry is restored. Pending tickets go stale.
func (g *Game) Undo(index int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if index < 0 || index >= g.record.Len() {
		return fmt.Errorf("undo index %d out of range [0, %d)", index, g.record.Len())
	}
	g.record.truncate(index)
	g.generation++
	return nil
}

func (g *Game) apply(action game.Action) (Status, error) {
	latest := g.record.Latest()
	if latest.Status.Over() {
		return latest.Status, ErrGameOver
	}

	b := latest.Board
	action, err := validate(b, action)
	if err != nil {
		return latest.Status, err
	}

	mover := b.ToMove()
	next := b.Play(action)
	entry := Entry{
		Board:       next,
		Action:      &action,
		Mover:       mover,
		Notation:    game.Notation(b, action),
		Fingerprint: next.Fingerprint(),
	}
	g.record.append(entry)

	status := g.evaluate(b, action, next)
	g.record.entries[g.record.Len()-1].Status = status

	log.Debug().
		Str("game", g.ID).
		Int("player", int(mover)).
		Str("move", entry.Notation).
		Msg("action applied")
	if status.Over() {
		log.Info().Str("game", g.ID).Int("moves", g.record.Len()-1).Msgf("game over: %s", status)
	}
	return status, nil
}

// validate checks action against the legal set of its piece, computed fresh
// from b, and fills in the captured key from the board.
func validate(b *game.Board, action game.Action) (game.Action, error) {
	illegal := func(reason string) (game.Action, error) {
		return action, &IllegalActionError{Action: action, Reason: reason}
	}

	piece, ok := b.Piece(action.Piece)
	if !ok {
		return illegal("piece is not on the board")
	}
	if piece.Owner != b.ToMove() {
		return illegal(fmt.Sprintf("it is player %d's turn", b.ToMove()))
	}
	if piece.Pos != action.From {
		return illegal(fmt.Sprintf("piece stands on %s", piece.Pos))
	}

	legal := game.LegalActions(piece, b)
	switch {
	case utils.Contains(legal.Steps, action.To):
		if action.Captured != "" {
			return illegal("destination is empty")
		}
	case utils.Contains(legal.Captures, action.To):
		target, _ := b.PieceAt(action.To)
		if action.Captured != "" && action.Captured != target.Key {
			return illegal(fmt.Sprintf("destination holds %s", target.Key))
		}
		action.Captured = target.Key
	default:
		return illegal("destination is not reachable")
	}
	return action, nil
}

// evaluate decides the status after action, in priority order: royal
// capture, elimination, repetition, then a stuck opponent.
func (g *Game) evaluate(prev *game.Board, action game.Action, next *game.Board) Status {
	mover := prev.ToMove()

	if action.IsCapture() {
		if captured, ok := prev.Piece(action.Captured); ok && captured.Type == game.Royal {
			return won(mover, RoyalCaptured)
		}
	}
	if next.Count(mover.Opponent()) == 0 {
		return won(mover, Elimination)
	}
	if g.record.Occurrences(next.Fingerprint()) >= meta.REPETITION_LIMIT {
		return Status{Kind: Drawn, Reason: Repetition}
	}
	if !next.HasActions(next.ToMove()) {
		return won(mover, NoLegalMoves)
	}
	return Status{}
}

// IsIllegal reports whether err is an illegal action error.
func IsIllegal(err error) bool {
	return errors.Is(err, ErrIllegalAction)
}
