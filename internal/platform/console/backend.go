package console

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/games/spacegarbage"
	"github.com/vovakirdan/space-garbage/internal/registry"
)

// eventBuffer is how many terminal events may queue between ticks.
const eventBuffer = 100

// Backend runs the game on a tcell screen.
type Backend struct {
	// open creates the screen. Defaults to tcell.NewScreen.
	open func() (tcell.Screen, error)
}

// Name implements registry.Backend.
func (Backend) Name() string {
	return "tcell"
}

// Title implements registry.Backend.
func (Backend) Title() string {
	return "Direct cell rendering with tcell"
}

// Run implements registry.Backend. Keys are read by a polling goroutine
// and queued; the game itself only runs on this goroutine, once per tick.
func (b Backend) Run(ctx context.Context, opts registry.RunOptions) error {
	open := b.open
	if open == nil {
		open = tcell.NewScreen
	}

	screen, err := open()
	if err != nil {
		return fmt.Errorf("console: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("console: cannot init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	if opts.Width > 0 && opts.Height > 0 {
		cols, rows = min(cols, opts.Width), min(rows, opts.Height)
	}
	surface := NewSurface(screen, rows, cols)

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	game := spacegarbage.New(surface, opts.Catalog, opts.Config, seed, opts.GameOptions()...)

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, eventBuffer)
	go poll(screen, events, done)

	ticker := time.NewTicker(opts.Config.Timing.Tick())
	defer ticker.Stop()

	input := core.NewInputFrame()
	reported := false

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				action := actionFor(ev)
				if action == core.ActionQuit {
					return nil
				}
				input.Push(action)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			c := input.Drain()
			if c.Restart && game.State() == spacegarbage.GameOver {
				game.Reset(time.Now().UnixNano())
				reported = false
				continue
			}

			if game.Step(c) == spacegarbage.GameOver && !reported {
				reported = true
				s := game.Summary()
				if opts.Logger != nil {
					opts.Logger.Info("game over", "year", s.Year, "destroyed", s.Destroyed, "ticks", s.Ticks)
				}
				opts.GameOver(s)
			}
		}
	}
}

// poll forwards terminal events until the screen is finalized or done
// is closed.
func poll(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func init() {
	registry.Register("tcell", func() registry.Backend { return Backend{} })
}
