package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopology(t *testing.T) {
	t.Run("opposite pits mirror across the board", func(t *testing.T) {
		pairs := map[Pit]Pit{A: L, B: K, C: J, D: I, E: H, F: G}
		for a, b := range pairs {
			require.Equal(t, b, a.Opposite())
			require.Equal(t, a, b.Opposite())
		}
		require.Equal(t, NoPit, StoreP1.Opposite())
		require.Equal(t, NoPit, StoreP2.Opposite())
	})

	t.Run("sowing order visits every slot once per lap", func(t *testing.T) {
		visited := []Pit{}
		pit := A
		for i := 0; i < NumSlots; i++ {
			visited = append(visited, pit)
			pit = pit.Next()
		}
		require.Equal(t, A, pit)
		require.Equal(t, []Pit{A, B, C, D, E, F, StoreP1, G, H, I, J, K, L, StoreP2}, visited)
	})

	t.Run("ownership", func(t *testing.T) {
		require.Equal(t, P1, StoreP1.Owner())
		require.Equal(t, P2, StoreP2.Owner())
		for _, pit := range P1.Pits() {
			require.Equal(t, P1, pit.Owner())
		}
		for _, pit := range P2.Pits() {
			require.Equal(t, P2, pit.Owner())
		}
		require.Panics(t, func() { NoPit.Owner() })
	})
}

func TestParsePit(t *testing.T) {
	for input, expected := range map[string]Pit{
		"a": A, "F": F, " g ": G, "l": L, "p1": StoreP1, "P2": StoreP2,
	} {
		pit, err := ParsePit(input)
		require.NoError(t, err)
		require.Equal(t, expected, pit)
		require.Equal(t, expected, mustParsePit(t, expected.String()))
	}

	for _, input := range []string{"", "M", "1", "AB"} {
		_, err := ParsePit(input)
		require.Error(t, err, input)
	}
}

func mustParsePit(t *testing.T, s string) Pit {
	t.Helper()
	pit, err := ParsePit(s)
	require.NoError(t, err)
	return pit
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("p2")
	require.NoError(t, err)
	require.Equal(t, P2, side)
	require.Equal(t, P1, side.Opponent())
	require.Equal(t, "P2", side.String())

	_, err = ParseSide("P3")
	require.Error(t, err)
}
