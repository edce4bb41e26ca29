package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mancala/game"
	"mancala/searcher"
)

func TestMinimaxAgent(t *testing.T) {
	a := NewMinimaxAgent(searcher.NewMinimax(searcher.WithDepth(1), searcher.WithMetrics()))
	g := *game.NewGame(game.P1)

	pit, metric := a.FindMove(g, game.P1)

	require.Equal(t, game.C, pit)
	require.Equal(t, 1, metric.Depth)
	require.Equal(t, 1, metric.Value)
	require.Equal(t, 7, metric.Nodes, "root plus six children")
}

func TestGreedyAgent(t *testing.T) {
	a := NewGreedyAgent()

	t.Run("takes the extra turn", func(t *testing.T) {
		pit, metric := a.FindMove(*game.NewGame(game.P1), game.P2)
		require.Equal(t, game.I, pit)
		require.Equal(t, 11, metric.Value)
	})

	t.Run("no legal move", func(t *testing.T) {
		b, err := game.ParseBoard("<24,0,0,0,0,0,0,0,4,4,4,4,4,4>")
		require.NoError(t, err)
		pit, _ := a.FindMove(game.Game{State: b, Sides: game.Roles{Human: game.P1, Computer: game.P2}}, game.P1)
		require.Equal(t, game.NoPit, pit)
	})
}

func TestRandomAgent(t *testing.T) {
	t.Run("plays legal moves", func(t *testing.T) {
		a := NewRandomAgent(7)
		g := *game.NewGame(game.P1)
		for i := 0; i < 50; i++ {
			pit, _ := a.FindMove(g, game.P2)
			require.Contains(t, g.State.PossibleMoves(game.P2), pit)
		}
	})

	t.Run("same seed same choices", func(t *testing.T) {
		a, b := NewRandomAgent(99), NewRandomAgent(99)
		g := *game.NewGame(game.P1)
		for i := 0; i < 20; i++ {
			pa, _ := a.FindMove(g, game.P1)
			pb, _ := b.FindMove(g, game.P1)
			require.Equal(t, pa, pb)
		}
	})

	t.Run("only one choice", func(t *testing.T) {
		b, err := game.ParseBoard("<20,0,0,0,0,0,0,4,4,4,4,4,4,4>")
		require.NoError(t, err)
		pit, _ := NewRandomAgent(1).FindMove(game.Game{State: b}, game.P1)
		require.Equal(t, game.F, pit)
	})
}
