// internal/players/console.go
package players

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jason-s-yu/farkle/internal/farkle"
)

// Console is an interactive decider: it prints the turn situation and the
// numbered choices, then reads the chosen number. Invalid input is
// re-prompted here; only a read failure (e.g. closed stdin) is fatal.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole returns a Console decider reading from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Act(state farkle.State, choices []farkle.Action) (farkle.Action, error) {
	if len(choices) == 0 {
		return farkle.Action{}, ErrNoChoices
	}

	fmt.Fprintf(c.out, "\nPlayer %d | scores %v | turn sum %d | dice %v\n",
		state.CurrentPlayer(), state.Scores(), state.TurnSum(), state.Held())
	for i, choice := range choices {
		fmt.Fprintf(c.out, "  [%d] %s\n", i, choice)
	}

	for {
		fmt.Fprintf(c.out, "choice> ")
		line, err := c.in.ReadString('\n')
		if err != nil {
			return farkle.Action{}, fmt.Errorf("read choice: %w", err)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || idx < 0 || idx >= len(choices) {
			fmt.Fprintf(c.out, "enter a number between 0 and %d\n", len(choices)-1)
			continue
		}
		return choices[idx], nil
	}
}

func (c *Console) Name() string { return "console" }
