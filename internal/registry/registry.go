// Package registry provides a global registry for display backends.
// Backends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-garbage/internal/assets"
	"github.com/vovakirdan/space-garbage/internal/config"
	"github.com/vovakirdan/space-garbage/internal/games/spacegarbage"
)

// Backend drives a game on some kind of terminal.
// The game itself knows nothing about the backend; the backend owns the
// surface, input mapping and wall-clock pacing.
type Backend interface {
	// Name returns a unique identifier (e.g., "tea", "tcell").
	// Used for the --backend flag and stored with every run.
	Name() string

	// Title returns a human-readable description.
	Title() string

	// Run plays until the user quits or ctx is cancelled.
	Run(ctx context.Context, opts RunOptions) error
}

// RunOptions is everything a backend needs to play.
type RunOptions struct {
	Catalog *assets.Catalog
	Config  config.SpaceGarbageConfig
	Seed    int64 // 0 means seed from the clock
	Width   int   // Initial terminal size; 0 lets the backend decide
	Height  int
	Sounder spacegarbage.Sounder
	Logger  *log.Logger

	// OnGameOver is called once for every run that ends with a collision.
	OnGameOver func(spacegarbage.Summary)
}

// GameOptions returns the game options implied by opts.
func (o RunOptions) GameOptions() []spacegarbage.Option {
	if o.Sounder == nil {
		return nil
	}
	return []spacegarbage.Option{spacegarbage.WithSounder(o.Sounder)}
}

// GameOver reports a finished run to the callback, if any.
func (o RunOptions) GameOver(s spacegarbage.Summary) {
	if o.OnGameOver != nil {
		o.OnGameOver(s)
	}
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name  string
	Title string
}

// Factory is a function that creates a new instance of a backend.
type Factory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	titles[name] = f().Title()
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:  name,
			Title: titles[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a backend by name.
// Returns an error if the name is not registered.
func Create(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	return f(), nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
