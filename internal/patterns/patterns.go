// Package patterns holds the named shapes players stamp onto the board.
//
// Shapes are written in the plaintext format: 'O' (or '*') is a live cell,
// '.' is a dead one, and lines starting with '!' are comments. Row 0 is the
// first non-blank, non-comment line and x grows to the right.
package patterns

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"gol-duel/internal/core"
)

// ErrEmpty is returned when a definition contains no live cells.
var ErrEmpty = errors.New("pattern has no live cells")

// Parse reads a plaintext definition.
func Parse(name, text string) (core.Pattern, error) {
	p := core.Pattern{Name: name}
	sc := bufio.NewScanner(strings.NewReader(text))
	y, started := 0, false
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") || (!started && line == "") {
			continue
		}
		started = true
		for x, r := range line {
			switch r {
			case 'O', 'o', '*':
				p.Cells = append(p.Cells, core.Coord{X: x, Y: y})
			case '.', ' ':
			default:
				return core.Pattern{}, errors.Errorf("[Parse] %s: unexpected %q at row %d col %d", name, r, y, x)
			}
		}
		y++
	}
	if err := sc.Err(); err != nil {
		return core.Pattern{}, errors.Wrapf(err, "[Parse] %s", name)
	}
	if len(p.Cells) == 0 {
		return core.Pattern{}, errors.Wrapf(ErrEmpty, "[Parse] %s", name)
	}
	return p, nil
}

// Load reads a pattern file; the pattern is named after the file without its
// extension.
func Load(path string) (core.Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Pattern{}, errors.Wrapf(err, "[Load] failed to read file: %+v", path)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, string(data))
}

func mustParse(name, text string) core.Pattern {
	p, err := Parse(name, text)
	if err != nil {
		panic(err)
	}
	return p
}

var (
	Cell = core.SingleCell

	Glider = mustParse("Glider", `
!Name: Glider
.O.
..O
OOO`)

	PentominoR = mustParse("Pentomino-R", `
!Name: R-pentomino
.OO
OO.
.O.`)

	Block = mustParse("Block", `
OO
OO`)

	Blinker = mustParse("Blinker", `OOO`)
)

// Figures lists the shapes a player cycles through during setup, in order.
func Figures() []core.Pattern {
	return []core.Pattern{Cell, Glider, PentominoR}
}

// All lists every built-in pattern.
func All() []core.Pattern {
	return []core.Pattern{Cell, Glider, PentominoR, Block, Blinker}
}

// ByName looks up a built-in pattern, ignoring case.
func ByName(name string) (core.Pattern, bool) {
	for _, p := range All() {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return core.Pattern{}, false
}

// Cycler steps through a fixed list of figures.
type Cycler struct {
	figures []core.Pattern
	index   int
}

// NewCycler returns a cycler over figures, or over Figures() when none are given.
func NewCycler(figures ...core.Pattern) *Cycler {
	if len(figures) == 0 {
		figures = Figures()
	}
	return &Cycler{figures: figures}
}

// Current returns the selected figure.
func (c *Cycler) Current() core.Pattern { return c.figures[c.index] }

// Index returns the position of the selected figure.
func (c *Cycler) Index() int { return c.index }

// Next selects the following figure, wrapping around, and returns it.
func (c *Cycler) Next() core.Pattern {
	c.index = (c.index + 1) % len(c.figures)
	return c.Current()
}
