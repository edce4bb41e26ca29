package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
	"golang.org/x/exp/slices"

	"mancala/experiments/metrics"
	"mancala/game"
)

// Console is a human player reading moves from a terminal. It satisfies
// agent.Agent so the engine can drive it like any computer player.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
	au  aurora.Aurora
}

// NewConsole creates a console player reading from in and writing prompts to
// out. Colors are emitted only when colors is true.
func NewConsole(in io.Reader, out io.Writer, colors bool) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
		au:  aurora.NewAurora(colors),
	}
}

// readLine returns the next input line without surrounding blanks.
func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// FindMove shows the board and asks for a pit until a legal one is entered.
// It returns NoPit when the input is exhausted.
func (c *Console) FindMove(g game.Game, side game.Side) (game.Pit, metrics.SearchMetric) {
	c.RenderBoard(g)

	moves := g.State.PossibleMoves(side)
	fmt.Fprintf(c.out, "Your turn. Possible pits: %v\n", moves)
	fmt.Fprint(c.out, "Choose a pit: ")
	for {
		line, err := c.readLine()
		if err != nil {
			fmt.Fprintln(c.out)
			return game.NoPit, metrics.SearchMetric{}
		}
		pit, err := game.ParsePit(line)
		if err == nil && slices.Contains(moves, pit) {
			return pit, metrics.SearchMetric{}
		}
		fmt.Fprint(c.out, "Invalid move. Choose another pit: ")
	}
}

var ErrNoInput = errors.New("no input")

// ChooseStarter asks whether the human or the computer moves first.
func (c *Console) ChooseStarter() (game.Role, error) {
	fmt.Fprintln(c.out, "Who should start first?")
	fmt.Fprintln(c.out, "1. Human")
	fmt.Fprintln(c.out, "2. Computer")
	fmt.Fprint(c.out, "Enter 1 or 2: ")
	for {
		line, err := c.readLine()
		if err != nil {
			return game.Human, fmt.Errorf("%w: %w", ErrNoInput, err)
		}
		switch line {
		case "1":
			return game.Human, nil
		case "2":
			return game.Computer, nil
		}
		fmt.Fprint(c.out, "Invalid choice. Enter 1 for Human or 2 for Computer: ")
	}
}

// RenderBoard draws P2's pits right to left on top, P1's pits left to right
// at the bottom, and each store on its owner's end of the board.
func (c *Console) RenderBoard(g game.Game) {
	b := g.State
	top, bottom := game.P2.Pits(), game.P1.Pits()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n      ", c.au.Bold(c.label(game.P2, g.Sides)))
	for i := len(top) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "  %s  ", c.au.Faint(top[i].String()))
	}
	sb.WriteString("\n      ")
	for i := len(top) - 1; i >= 0; i-- {
		sb.WriteString(c.pit(b.Seeds(top[i]), game.P2))
	}
	fmt.Fprintf(&sb, "\n %s%s%s\n      ",
		c.store(b.Store(game.P2), game.P2),
		strings.Repeat(" ", 5*len(top)+1),
		c.store(b.Store(game.P1), game.P1),
	)
	for _, pit := range bottom {
		sb.WriteString(c.pit(b.Seeds(pit), game.P1))
	}
	sb.WriteString("\n      ")
	for _, pit := range bottom {
		fmt.Fprintf(&sb, "  %s  ", c.au.Faint(pit.String()))
	}
	fmt.Fprintf(&sb, "\n%s\n", c.au.Bold(c.label(game.P1, g.Sides)))

	fmt.Fprint(c.out, sb.String())
}

func (c *Console) label(side game.Side, roles game.Roles) string {
	role := game.Computer
	if roles.Human == side {
		role = game.Human
	}
	return fmt.Sprintf("%s (%s)", side, role)
}

func (c *Console) pit(seeds int, side game.Side) string {
	return fmt.Sprintf("[%s] ", c.colorize(fmt.Sprintf("%2d", seeds), side))
}

func (c *Console) store(seeds int, side game.Side) string {
	return fmt.Sprintf("(%s)", c.colorize(fmt.Sprintf("%2d", seeds), side))
}

func (c *Console) colorize(s string, side game.Side) string {
	if side == game.P1 {
		return c.au.Cyan(s).String()
	}
	return c.au.Magenta(s).String()
}
