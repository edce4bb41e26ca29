package player

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"mancala/game"
)

func TestConsoleFindMove(t *testing.T) {
	t.Run("reads a legal pit", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("c\n"), &out, false)

		pit, _ := c.FindMove(*game.NewGame(game.P1), game.P1)

		require.Equal(t, game.C, pit)
		require.Contains(t, out.String(), "Your turn. Possible pits: [A B C D E F]\n")
		require.Contains(t, out.String(), "Choose a pit: ")
		require.NotContains(t, out.String(), "Invalid move")
	})

	t.Run("re-prompts until the pit is legal", func(t *testing.T) {
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("x\nA\n\n  i \n"), &out, false)

		pit, _ := c.FindMove(*game.NewGame(game.P1), game.P2)

		require.Equal(t, game.I, pit)
		require.Equal(t, 3, strings.Count(out.String(), "Invalid move. Choose another pit: "))
	})

	t.Run("empty pits are not accepted", func(t *testing.T) {
		b, err := game.ParseBoard("<4,0,0,4,4,4,4,4,4,4,4,4,4,4>")
		require.NoError(t, err)
		var out bytes.Buffer
		c := NewConsole(strings.NewReader("A\nB\n"), &out, false)

		pit, _ := c.FindMove(game.Game{State: b, Sides: game.Roles{Human: game.P1, Computer: game.P2}}, game.P1)

		require.Equal(t, game.B, pit)
		require.Contains(t, out.String(), "Possible pits: [B C D E F]")
	})

	t.Run("end of input", func(t *testing.T) {
		c := NewConsole(strings.NewReader("z\n"), &bytes.Buffer{}, false)
		pit, _ := c.FindMove(*game.NewGame(game.P1), game.P1)
		require.Equal(t, game.NoPit, pit)
	})
}

func TestConsoleChooseStarter(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected game.Role
		retries  int
	}{
		{"human", "1\n", game.Human, 0},
		{"computer", "2\n", game.Computer, 0},
		{"after invalid choices", "3\nhuman\n2\n", game.Computer, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := NewConsole(strings.NewReader(tt.input), &out, false)

			role, err := c.ChooseStarter()

			require.NoError(t, err)
			require.Equal(t, tt.expected, role)
			require.True(t, strings.HasPrefix(out.String(), "Who should start first?\n1. Human\n2. Computer\nEnter 1 or 2: "))
			require.Equal(t, tt.retries, strings.Count(out.String(), "Invalid choice. Enter 1 for Human or 2 for Computer: "))
		})
	}

	t.Run("end of input", func(t *testing.T) {
		c := NewConsole(strings.NewReader(""), &bytes.Buffer{}, false)
		_, err := c.ChooseStarter()
		require.True(t, errors.Is(err, ErrNoInput))
	})
}

func TestConsoleRenderBoard(t *testing.T) {
	b, err := game.ParseBoard("<3,7,1,2,3,4,5,6,1,1,1,1,4,9>")
	require.NoError(t, err)
	var out bytes.Buffer

	NewConsole(nil, &out, false).RenderBoard(game.Game{State: b, Sides: game.Roles{Human: game.P1, Computer: game.P2}})

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 7)
	require.Equal(t, "P2 (COMPUTER)", lines[0])
	require.Equal(t, "        L    K    J    I    H    G  ", lines[1])
	require.Equal(t, "      [ 9] [ 4] [ 1] [ 1] [ 1] [ 1] ", lines[2])
	require.Equal(t, " ( 7)                               ( 3)", lines[3])
	require.Equal(t, "      [ 1] [ 2] [ 3] [ 4] [ 5] [ 6] ", lines[4])
	require.Equal(t, "        A    B    C    D    E    F  ", lines[5])
	require.Equal(t, "P1 (HUMAN)", lines[6])
}
