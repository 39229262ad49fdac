package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/dungeoncrawl/internal/entity"
)

// ErrNoName is returned when input ends before a name was entered.
var ErrNoName = errors.New("no character name entered")

var (
	colorTitle  = color.Style{color.FgCyan, color.OpBold}
	colorPrompt = color.Style{color.FgMagenta}
	colorDenied = color.Style{color.FgRed, color.OpBold}
	colorSubtle = color.Style{color.FgGray}
)

// CreateCharacter asks for a name on the plain console, before the screen
// is taken over, and repeats the prompt until a non-empty name is given.
func CreateCharacter(in io.Reader, out io.Writer) (*entity.Player, error) {
	fmt.Fprintln(out, colorTitle.Sprint("Welcome to the dungeon"))
	fmt.Fprintln(out, colorSubtle.Sprint("Arrows or WASD move, i opens the inventory, q quits."))

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, colorPrompt.Sprint("What is your name, adventurer? "))
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("read name: %w", err)
			}
			return nil, ErrNoName
		}

		name := strings.TrimSpace(sc.Text())
		if name != "" {
			return entity.NewPlayer(name), nil
		}
		fmt.Fprintln(out, colorDenied.Sprint("Every adventurer needs a name."))
	}
}

// Farewell prints the summary of a finished run.
func Farewell(out io.Writer, p *entity.Player, depth int, dead bool) {
	if dead {
		fmt.Fprintln(out, colorDenied.Sprintf("%s died on depth %d.", p.Name, depth))
	} else {
		fmt.Fprintln(out, colorTitle.Sprintf("%s leaves the dungeon from depth %d.", p.Name, depth))
	}
	fmt.Fprintln(out, colorSubtle.Sprintf("Gold: %d  Items carried: %d", p.Gold, len(p.Inventory)))
}
