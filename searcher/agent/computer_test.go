package agent

import (
	"kvinti/game"
	"kvinti/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputerAgent(t *testing.T) {
	b := game.NewStandardBoard()
	legal := b.ActionsFor(game.Player1)

	t.Run("first move is random when enabled", func(t *testing.T) {
		a1 := NewComputerAgent(searcher.NewSearcher(searcher.WithSeed(3)), searcher.Strong, true)
		a2 := NewComputerAgent(searcher.NewSearcher(searcher.WithSeed(3)), searcher.Strong, true)

		m1, ok, metric := a1.FindMove(b, game.Player1, true)
		require.True(t, ok)
		require.True(t, metric.Random)
		require.Equal(t, "strong", metric.Tier)
		require.Contains(t, legal, m1)

		m2, _, _ := a2.FindMove(b, game.Player1, true)
		require.Equal(t, m1, m2, "same seed, same opening")
	})

	t.Run("later moves are searched", func(t *testing.T) {
		s := searcher.NewSearcher(searcher.WithSeed(3))
		agent := NewComputerAgent(s, searcher.Moderate, true)

		got, ok, metric := agent.FindMove(b, game.Player1, false)
		require.True(t, ok)
		require.False(t, metric.Random)
		want, _, _ := s.FindMove(b, game.Player1, searcher.Moderate)
		require.Equal(t, want, got)
	})

	t.Run("first move is searched when the policy is off", func(t *testing.T) {
		s := searcher.NewSearcher()
		agent := NewComputerAgent(s, searcher.Moderate, false)

		got, ok, _ := agent.FindMove(b, game.Player1, true)
		require.True(t, ok)
		want, _, _ := s.FindMove(b, game.Player1, searcher.Moderate)
		require.Equal(t, want, got)
	})
}
