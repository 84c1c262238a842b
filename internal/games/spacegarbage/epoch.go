package spacegarbage

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/space-garbage/internal/core"
)

// Epoch is the in-game year shared by the spawner, the fire gate and the
// banner.
type Epoch struct {
	year int
}

// NewEpoch starts the calendar at year.
func NewEpoch(year int) *Epoch {
	return &Epoch{year: year}
}

// Year returns the current year.
func (e *Epoch) Year() int {
	return e.year
}

// Advance moves the calendar forward by one year.
func (e *Epoch) Advance() {
	e.year++
}

// clock advances the epoch once every `every` ticks.
type clock struct {
	epoch *Epoch
	every int
	count int
}

func (c *clock) Step() bool {
	c.count++
	if c.count >= c.every {
		c.count = 0
		c.epoch.Advance()
	}
	return true
}

var bannerStyle = core.Style{Color: core.ColorBrightWhite}

// banner shows the current year and its milestone, if any, in the bottom
// left corner. The previous label is erased before the new one is drawn.
type banner struct {
	g    *Game
	last string
}

func (b *banner) Step() bool {
	rows, _ := b.g.surface.Size()
	row := rows - 2

	if b.last != "" {
		core.DrawText(b.g.surface, row, 2, strings.Repeat(" ", len([]rune(b.last))), core.StyleDefault)
	}
	b.last = b.g.EpochLabel()
	core.DrawText(b.g.surface, row, 2, b.last, bannerStyle)
	return true
}

// EpochLabel renders the year with its milestone phrase.
func (g *Game) EpochLabel() string {
	year := g.epoch.Year()
	if phrase, ok := g.catalog.Phrase(year); ok {
		return fmt.Sprintf("Year %d: %s", year, phrase)
	}
	return fmt.Sprintf("Year %d", year)
}
