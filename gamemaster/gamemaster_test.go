package gamemaster

import (
	"errors"
	"kvinti/game"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

func step(key game.PieceKey, from, to game.Position) game.Action {
	return game.Action{Piece: key, From: from, To: to}
}

func newGameFrom(t *testing.T, toMove game.Player, pieces ...game.Piece) *Game {
	t.Helper()
	b, err := game.NewBoard(pieces, toMove)
	require.NoError(t, err)
	g, err := NewFrom(b)
	require.NoError(t, err)
	return g
}

func TestNewGame(t *testing.T) {
	g := New()

	_, err := uuid.Parse(g.ID)
	require.NoError(t, err)
	require.Equal(t, Status{Kind: InProgress}, g.Status())
	require.Len(t, g.Record(), 1)
	require.Nil(t, g.Record()[0].Action)
	require.Equal(t, game.Player1, g.Board().ToMove())
	require.True(t, g.FirstMove(game.Player1))
	require.True(t, g.FirstMove(game.Player2))
}

func TestNewFrom(t *testing.T) {
	t.Run("both royals are required", func(t *testing.T) {
		b, err := game.NewBoard([]game.Piece{
			{Key: "WK", Type: game.Royal, Owner: game.Player1, Pos: pos(6, 3)},
		}, game.Player1)
		require.NoError(t, err)
		_, err = NewFrom(b)
		require.Error(t, err)
	})

	t.Run("stuck side to move has already lost", func(t *testing.T) {
		g := newGameFrom(t, game.Player2,
			game.Piece{Key: "WK", Type: game.Royal, Owner: game.Player1, Pos: pos(6, 3)},
			game.Piece{Key: "W1", Type: game.T1, Owner: game.Player1, Pos: pos(0, 1)},
			game.Piece{Key: "BK", Type: game.Royal, Owner: game.Player2, Pos: pos(0, 0)},
		)
		require.Equal(t, won(game.Player1, NoLegalMoves), g.Status())
	})
}

func TestApply(t *testing.T) {
	t.Run("legal step is appended", func(t *testing.T) {
		g := New()
		status, err := g.Apply(step("W2", pos(5, 4), pos(4, 4)))
		require.NoError(t, err)
		require.False(t, status.Over())

		record := g.Record()
		require.Len(t, record, 2)
		require.Equal(t, game.Player1, record[1].Mover)
		require.Equal(t, "T2: e2-e3", record[1].Notation)
		require.Equal(t, game.Player2, g.Board().ToMove())
		p, ok := g.Board().Piece("W2")
		require.True(t, ok)
		require.Equal(t, pos(4, 4), p.Pos)
		require.False(t, g.FirstMove(game.Player1))
		require.True(t, g.FirstMove(game.Player2))
	})

	t.Run("legal actions are recomputed per piece", func(t *testing.T) {
		g := New()
		_, err := g.Apply(step("W2", pos(5, 4), pos(4, 4)))
		require.NoError(t, err)

		actions, err := g.LegalActions("B4")
		require.NoError(t, err)
		require.Contains(t, actions.Steps, pos(2, 4))
		require.Empty(t, actions.Captures)

		_, err = g.LegalActions("nope")
		require.Error(t, err)
	})

	t.Run("capture key is taken from the board", func(t *testing.T) {
		g := newGameFrom(t, game.Player1,
			game.Piece{Key: "WK", Type: game.Royal, Owner: game.Player1, Pos: pos(6, 0)},
			game.Piece{Key: "W3", Type: game.T3, Owner: game.Player1, Pos: pos(3, 3)},
			game.Piece{Key: "B1", Type: game.T1, Owner: game.Player2, Pos: pos(5, 3)},
			game.Piece{Key: "BK", Type: game.Royal, Owner: game.Player2, Pos: pos(0, 6)},
		)
		status, err := g.Apply(step("W3", pos(3, 3), pos(5, 3)))
		require.NoError(t, err)
		require.False(t, status.Over())

		latest := g.Record()[1]
		require.Equal(t, game.PieceKey("B1"), latest.Action.Captured)
		require.Equal(t, "T3: d4-d2xT1", latest.Notation)
		_, ok := g.Board().Piece("B1")
		require.False(t, ok)
	})
}

func TestApplyRejectsIllegalActions(t *testing.T) {
	tests := []struct {
		name   string
		action game.Action
	}{
		{"unknown piece", step("ZZ", pos(3, 3), pos(3, 4))},
		{"opponent's piece", step("B4", pos(1, 4), pos(2, 4))},
		{"wrong origin", step("W2", pos(4, 4), pos(3, 4))},
		{"unreachable destination", step("W2", pos(5, 4), pos(3, 4))},
		{"occupied step destination", step("W2", pos(5, 4), pos(5, 3))},
		{"capture claim on an empty cell", game.Action{Piece: "W2", From: pos(5, 4), To: pos(4, 4), Captured: "B4"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := New()
			before := g.Board().Fingerprint()

			_, err := g.Apply(tc.action)
			require.Error(t, err)
			require.True(t, IsIllegal(err))
			var illegal *IllegalActionError
			require.True(t, errors.As(err, &illegal))
			require.Equal(t, tc.action, illegal.Action)

			require.Len(t, g.Record(), 1, "record is untouched")
			require.Equal(t, before, g.Board().Fingerprint())
		})
	}

	t.Run("wrong captured key", func(t *testing.T) {
		g := newGameFrom(t, game.Player1,
			game.Piece{Key: "WK", Type: game.Royal, Owner: game.Player1, Pos: pos(6, 0)},
			game.Piece{Key: "W3", Type: game.T3, Owner: game.Player1, Pos: pos(3, 3)},
			game.Piece{Key: "B1", Type: game.T1, Owner: game.Player2, Pos: pos(5, 3)},
			game.Piece{Key: "BK", Type: game.Royal, Owner: game.Player2, Pos: pos(0, 6)},
		)
		_, err := g.Apply(game.Action{Piece: "W3", From: pos(3, 3), To: pos(5, 3), Captured: "BK"})
		require.ErrorIs(t, err, ErrIllegalAction)
		require.Len(t, g.Record(), 1)
	})
}

func TestTerminalConditions(t *testing.T) {
	t.Run("royal capture wins before elimination is considered", func(t *testing.T) {
		g := newGameFrom(t, game.Player1,
			game.Piece{Key: "WK", Type: game.Royal, Owner: game.Player1, Pos: pos(6, 0)},
			game.Piece{Key: "W4", Type: game.T4, Owner: game.Player1, Pos: pos(2, 2)},
			game.Piece{Key: "BK", Type: game.Royal, Owner: game.Player2, Pos: pos(0, 4)},
		)
		status, err := g.Apply(step("W4", pos(2, 2), pos(0, 4)))
		require.NoError(t, err)
		require.Equal(t, won(game.Player1, RoyalCaptured), status)
		require.Equal(t, status, g.Status())
	})

	t.Run("stuck opponent loses", func(t *testing.T) {
		g := newGameFrom(t, game.Player1,
			game.Piece{Key: "WK", Type: game.Royal, Owner: game.Player1, Pos: pos(6, 3)},
			game.Piece{Key: "W1", Type: game.T1, Owner: game.Player1, Pos: pos(1, 1)},
			game.Piece{Key: "BK", Type: game.Royal, Owner: game.Player2, Pos: pos(0, 0)},
		)
		status, err := g.Apply(step("W1", pos(1, 1), pos(0, 1)))
		require.NoError(t, err)
		require.Equal(t, won(game.Player1, NoLegalMoves), status)
	})

	t.Run("threefold repetition draws on the third occurrence", func(t *testing.T) {
		g := New()
		shuffle := []game.Action{
			step("W5", pos(6, 2), pos(6, 1)),
			step("B4", pos(1, 4), pos(2, 4)),
			step("W5", pos(6, 1), pos(6, 2)),
			step("B4", pos(2, 4), pos(1, 4)),
		}
		var status Status
		var err error
		for i := 0; i < 8; i++ {
			status, err = g.Apply(shuffle[i%4])
			require.NoError(t, err)
			if i < 7 {
				require.False(t, status.Over(), "move %d", i+1)
			}
		}
		require.Equal(t, Status{Kind: Drawn, Reason: Repetition}, status)
		require.Equal(t, 3, g.record.Occurrences(g.Board().Fingerprint()))
	})

	t.Run("terminal states are absorbing", func(t *testing.T) {
		g := newGameFrom(t, game.Player1,
			game.Piece{Key: "WK", Type: game.Royal, Owner: game.Player1, Pos: pos(6, 0)},
			game.Piece{Key: "W4", Type: game.T4, Owner: game.Player1, Pos: pos(2, 2)},
			game.Piece{Key: "BK", Type: game.Royal, Owner: game.Player2, Pos: pos(0, 4)},
			game.Piece{Key: "B1", Type: game.T1, Owner: game.Player2, Pos: pos(0, 6)},
		)
		_, err := g.Apply(step("W4", pos(2, 2), pos(0, 4)))
		require.NoError(t, err)

		ticket := g.Ticket()
		_, err = g.Apply(step("B1", pos(0, 6), pos(1, 6)))
		require.ErrorIs(t, err, ErrGameOver)
		_, err = g.ApplyTicket(ticket, step("B1", pos(0, 6), pos(1, 6)))
		require.ErrorIs(t, err, ErrGameOver)
		require.Len(t, g.Record(), 2)
	})
}

func TestTickets(t *testing.T) {
	move := step("W2", pos(5, 4), pos(4, 4))

	t.Run("fresh ticket applies", func(t *testing.T) {
		g := New()
		ticket := g.Ticket()
		require.Equal(t, game.Player1, ticket.Side)
		_, err := g.ApplyTicket(ticket, move)
		require.NoError(t, err)
		require.Len(t, g.Record(), 2)
	})

	t.Run("reset makes pending results stale", func(t *testing.T) {
		g := New()
		ticket := g.Ticket()
		g.Reset()
		_, err := g.ApplyTicket(ticket, move)
		require.ErrorIs(t, err, ErrStaleResult)
		require.Len(t, g.Record(), 1)
	})

	t.Run("a move in between makes pending results stale", func(t *testing.T) {
		g := New()
		ticket := g.Ticket()
		_, err := g.Apply(step("W5", pos(6, 2), pos(6, 1)))
		require.NoError(t, err)
		_, err = g.ApplyTicket(ticket, move)
		require.ErrorIs(t, err, ErrStaleResult)
	})

	t.Run("rewinding to the same length still invalidates", func(t *testing.T) {
		g := New()
		_, err := g.Apply(step("W5", pos(6, 2), pos(6, 1)))
		require.NoError(t, err)
		_, err = g.Apply(step("B4", pos(1, 4), pos(2, 4)))
		require.NoError(t, err)
		ticket := g.Ticket()

		require.NoError(t, g.Undo(1))
		_, err = g.Apply(step("B4", pos(1, 4), pos(2, 4)))
		require.NoError(t, err)

		_, err = g.ApplyTicket(ticket, move)
		require.ErrorIs(t, err, ErrStaleResult)
	})
}

func TestUndo(t *testing.T) {
	moves := []game.Action{
		step("W2", pos(5, 4), pos(4, 4)),
		step("B4", pos(1, 4), pos(2, 4)),
		step("W3", pos(5, 3), pos(4, 3)),
	}

	t.Run("truncate then replay", func(t *testing.T) {
		g := New()
		for _, m := range moves {
			_, err := g.Apply(m)
			require.NoError(t, err)
		}
		played := g.Record()

		require.NoError(t, g.Undo(1))
		require.Len(t, g.Record(), 2)
		require.Equal(t, played[1].Fingerprint, g.Board().Fingerprint())
		require.Equal(t, game.Player2, g.Board().ToMove())

		for _, m := range moves[1:] {
			_, err := g.Apply(m)
			require.NoError(t, err)
		}
		replayed := g.Record()
		require.Len(t, replayed, len(played))
		for i := range played {
			require.Equal(t, played[i].Fingerprint, replayed[i].Fingerprint)
		}
	})

	t.Run("rewinding a finished game resumes play", func(t *testing.T) {
		g := newGameFrom(t, game.Player1,
			game.Piece{Key: "WK", Type: game.Royal, Owner: game.Player1, Pos: pos(6, 0)},
			game.Piece{Key: "W4", Type: game.T4, Owner: game.Player1, Pos: pos(2, 2)},
			game.Piece{Key: "BK", Type: game.Royal, Owner: game.Player2, Pos: pos(0, 4)},
		)
		_, err := g.Apply(step("W4", pos(2, 2), pos(0, 4)))
		require.NoError(t, err)
		require.True(t, g.Status().Over())

		require.NoError(t, g.Undo(0))
		require.False(t, g.Status().Over())
		require.True(t, g.FirstMove(game.Player1))
	})

	t.Run("out of range", func(t *testing.T) {
		g := New()
		require.Error(t, g.Undo(1))
		require.Error(t, g.Undo(-1))
	})
}

func TestManager(t *testing.T) {
	m := NewManager()
	g1 := m.NewGame()
	g2 := m.NewGame()
	require.NotEqual(t, g1.ID, g2.ID)
	require.Len(t, m.IDs(), 2)

	got, err := m.Get(g1.ID)
	require.NoError(t, err)
	require.Same(t, g1, got)

	require.NoError(t, m.Delete(g1.ID))
	_, err = m.Get(g1.ID)
	require.ErrorIs(t, err, ErrGameNotFound)
	require.ErrorIs(t, m.Delete(g1.ID), ErrGameNotFound)
	require.Equal(t, []string{g2.ID}, m.IDs())
}
