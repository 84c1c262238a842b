// Package spacegarbage implements the space garbage game: a ship dodging
// and, from a certain year on, shooting debris that falls faster as the
// calendar advances. All animation runs as tasks on one cooperative
// scheduler and draws onto a core.Surface.
package spacegarbage

import (
	"math/rand"

	"github.com/vovakirdan/space-garbage/internal/assets"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/core"
	"github.com/vovakirdan/space-garbage/internal/scheduler"
)

// State is the game phase.
type State int

const (
	Running State = iota
	GameOver
)

func (s State) String() string {
	if s == GameOver {
		return "game over"
	}
	return "running"
}

// Sound identifies a sound effect.
type Sound int

const (
	SoundFire Sound = iota
	SoundExplosion
)

// Sounder plays sound effects. Play must not block the tick.
type Sounder interface {
	Play(Sound)
}

// Option configures a Game.
type Option func(*Game)

// WithSounder sets the sound effect sink.
func WithSounder(s Sounder) Option {
	return func(g *Game) {
		g.sounds = s
	}
}

// Summary describes a run, finished or not.
type Summary struct {
	Seed      int64
	Ticks     int
	StartYear int
	Year      int
	Spawned   int
	Destroyed int
	Shots     int
	State     State
}

// Game owns every piece of mutable game state. It is driven by Step and is
// not safe for concurrent use.
type Game struct {
	cfg        config.SpaceGarbageConfig
	catalog    *assets.Catalog
	surface    core.Surface
	difficulty *config.DifficultyManager
	sounds     Sounder

	seed      int64
	rng       *rand.Rand
	sched     *scheduler.Scheduler
	obstacles *ObstacleSet
	epoch     *Epoch
	player    Player
	sprite    *SpriteCycle
	shipFrame core.Frame
	state     State
	lost      bool

	fireRequested bool
	ticks         int
	destroyed     int
	shots         int
	spawned       int
}

// New creates a game drawing on surface and starts the first run with seed.
func New(surface core.Surface, catalog *assets.Catalog, cfg config.SpaceGarbageConfig, seed int64, opts ...Option) *Game {
	g := &Game{
		cfg:        cfg,
		catalog:    catalog,
		surface:    surface,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.Reset(seed)
	return g
}

// Reset clears the surface and starts a new run.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
	g.sched = scheduler.New()
	g.obstacles = NewObstacleSet()
	g.epoch = NewEpoch(g.cfg.Epoch.StartYear)
	g.sprite = NewSpriteCycle(g.catalog.Rocket)
	g.shipFrame = g.catalog.Rocket[0]
	g.state = Running
	g.lost = false
	g.fireRequested = false
	g.ticks, g.destroyed, g.shots, g.spawned = 0, 0, 0, 0

	clearSurface(g.surface)

	rows, cols := g.surface.Size()
	frameRows, frameCols := g.shipFrame.Size()
	g.player = Player{
		Row: float64(rows/2 - frameRows/2),
		Col: float64(cols/2 - frameCols/2),
	}
	g.player.Steer(core.Controls{}, g.cfg.Player, rows, cols, frameRows, frameCols)

	for _, s := range scatterStars(g.surface, g.rng, g.cfg.Stars) {
		g.sched.Add(s)
	}
	g.sched.Add(&ship{g: g})
	g.sched.Add(&spawner{g: g})
	g.sched.Add(&clock{epoch: g.epoch, every: g.cfg.Timing.TicksPerYear})
	g.sched.Add(&banner{g: g})
}

// Step runs one tick: apply the controls to the ship, advance every task
// once, redraw the border and commit the frame.
func (g *Game) Step(c core.Controls) State {
	if g.state == Running {
		rows, cols := g.surface.Size()
		g.shipFrame = g.sprite.Next()
		frameRows, frameCols := g.shipFrame.Size()
		g.player.Steer(c, g.cfg.Player, rows, cols, frameRows, frameCols)
		g.fireRequested = c.Fire && g.FireUnlocked()
	}

	g.sched.Tick()
	if g.lost {
		g.lost = false
		g.endRun()
	}

	g.surface.DrawBorder()
	g.surface.Commit()
	g.ticks++
	return g.state
}

// lose is called by the ship task when it hits an obstacle. The rest of
// the tick still runs; endRun cleans up once it is over.
func (g *Game) lose() {
	g.state = GameOver
	g.lost = true
	g.fireRequested = false
}

// eraser is implemented by tasks that leave something on screen between
// steps.
type eraser interface {
	erase()
}

// endRun wipes and stops everything but the stars and shows the banner
// from the next tick on.
func (g *Game) endRun() {
	g.sched.Each(func(t scheduler.Task) {
		if e, ok := t.(eraser); ok {
			e.erase()
		}
	})
	g.sched.Retain(isStar)
	g.obstacles.Clear()
	g.play(SoundExplosion)
	g.sched.Add(&gameOver{g: g})
}

func (g *Game) spawnDebris() {
	_, cols := g.surface.Size()
	if cols < 3 || len(g.catalog.Garbage) == 0 {
		return
	}
	frame := g.catalog.Garbage[g.rng.Intn(len(g.catalog.Garbage))]
	col := 1 + g.rng.Intn(cols-2)
	g.sched.Add(newDebris(g, frame, col))
	g.spawned++
}

func (g *Game) play(s Sound) {
	if g.sounds != nil {
		g.sounds.Play(s)
	}
}

// FireUnlocked reports whether the current year allows shooting.
func (g *Game) FireUnlocked() bool {
	return g.epoch.Year() >= g.cfg.Fire.UnlockYear
}

// State returns the current phase.
func (g *Game) State() State {
	return g.state
}

// Year returns the current in-game year.
func (g *Game) Year() int {
	return g.epoch.Year()
}

// Player returns the ship's kinematic state.
func (g *Game) Player() Player {
	return g.player
}

// Tasks returns the number of scheduled tasks.
func (g *Game) Tasks() int {
	return g.sched.Len()
}

// Obstacles returns the number of obstacles in flight.
func (g *Game) Obstacles() int {
	return g.obstacles.Len()
}

// Summary describes the current run.
func (g *Game) Summary() Summary {
	return Summary{
		Seed:      g.seed,
		Ticks:     g.ticks,
		StartYear: g.cfg.Epoch.StartYear,
		Year:      g.epoch.Year(),
		Spawned:   g.spawned,
		Destroyed: g.destroyed,
		Shots:     g.shots,
		State:     g.state,
	}
}

// Snapshot returns the score view used by the status bars.
func (g *Game) Snapshot() core.GameState {
	return core.GameState{
		Score:    g.destroyed,
		Epoch:    g.epoch.Year(),
		GameOver: g.state == GameOver,
	}
}

func clearSurface(s core.Surface) {
	rows, cols := s.Size()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			s.Place(r, c, ' ', core.StyleDefault)
		}
	}
}
