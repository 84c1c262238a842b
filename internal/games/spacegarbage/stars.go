package spacegarbage

import (
	"math/rand"

	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/scheduler"
)

var starStyle = core.Style{Color: core.ColorWhite}

// starTask is one blinking star. Its startup delay and blink loop run as a
// single sequence; the wrapper type lets the game keep stars alive after
// the ship is lost.
type starTask struct {
	scheduler.Task
}

// blink cycles a star through dim, normal, bold, normal forever.
type blink struct {
	surface core.Surface
	row     int
	col     int
	symbol  rune
	phases  [4]blinkPhase
	phase   int
	left    int
}

type blinkPhase struct {
	attr  core.Attr
	ticks int
}

func newStar(s core.Surface, row, col int, symbol rune, delay int, cfg config.StarsConfig) *starTask {
	b := &blink{
		surface: s,
		row:     row,
		col:     col,
		symbol:  symbol,
		phases: [4]blinkPhase{
			{core.AttrDim, cfg.DimTicks},
			{core.AttrNormal, cfg.NormalTicks},
			{core.AttrBold, cfg.BoldTicks},
			{core.AttrNormal, cfg.NormalTicks},
		},
	}
	b.left = b.phases[0].ticks
	return &starTask{Task: scheduler.Sequence(scheduler.Sleep(delay), b)}
}

func (b *blink) Step() bool {
	// Skip phases configured with zero length.
	for i := 0; b.left <= 0 && i < len(b.phases); i++ {
		b.phase = (b.phase + 1) % len(b.phases)
		b.left = b.phases[b.phase].ticks
	}
	b.surface.Place(b.row, b.col, b.symbol, starStyle.WithAttr(b.phases[b.phase].attr))
	b.left--
	return true
}

// scatterStars places up to cfg.Count stars at distinct interior cells of a
// rows x cols grid. Each star starts after a random delay in [1, MaxDelay].
func scatterStars(s core.Surface, rng *rand.Rand, cfg config.StarsConfig) []*starTask {
	rows, cols := s.Size()
	innerRows, innerCols := rows-2, cols-2
	if innerRows <= 0 || innerCols <= 0 || cfg.Count <= 0 {
		return nil
	}

	symbols := []rune(cfg.Symbols)
	cells := rng.Perm(innerRows * innerCols)
	count := min(cfg.Count, len(cells))

	stars := make([]*starTask, 0, count)
	for _, cell := range cells[:count] {
		row := 1 + cell/innerCols
		col := 1 + cell%innerCols
		symbol := symbols[rng.Intn(len(symbols))]
		delay := 1 + rng.Intn(max(cfg.MaxDelay, 1))
		stars = append(stars, newStar(s, row, col, symbol, delay, cfg))
	}
	return stars
}

func isStar(t scheduler.Task) bool {
	_, ok := t.(*starTask)
	return ok
}
