package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts search events", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		for i := 0; i < 5; i++ {
			c.AddNode()
		}
		c.AddLeaf()
		c.AddLeaf()
		c.AddCutoff()

		got := c.Complete(4)

		require.Equal(t, 3, got.Depth)
		require.Equal(t, 5, got.Nodes)
		require.Equal(t, 2, got.Leaves)
		require.Equal(t, 1, got.Cutoffs)
		require.Equal(t, 4, got.Value)
		require.GreaterOrEqual(t, got.Duration, time.Duration(0))
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start(1)
		c.AddNode()
		c.Start(2)

		got := c.Complete(0)
		require.Zero(t, got.Nodes)
		require.Equal(t, 2, got.Depth)
	})

	t.Run("dummy collector only keeps the value", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(3)
		c.AddNode()
		require.Equal(t, SearchMetric{Value: 7}, c.Complete(7))
	})
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
		{ID: 1, Kind: "minimax", Depth: 3, Eval: "material"},
		{ID: 2, Kind: "random", Seed: 42},
	}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{
		{ID: 1, Agent1: 1, Agent2: 2, GameMetric: GameMetric{ID: "abc", StartingSide: "P1", Winner: "P1", P1Score: 30, P2Score: 18, TotalMoves: 40}},
	}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Side: "P1", Pit: "C", Landed: "P1", ExtraTurn: true, SearchMetric: SearchMetric{Depth: 3, Nodes: 10}}},
	}))

	configs := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, []string{"id", "kind", "depth", "eval", "seed"}, configs[0])
	require.Equal(t, []string{"2", "random", "0", "", "42"}, configs[2])

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "abc", games[1][1])
	require.Equal(t, "30", games[1][6])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, moves, 2)
	require.Equal(t, []string{"1", "1", "P1", "C", "P1", "true", "3"}, moves[1][:7])
}
