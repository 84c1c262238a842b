// Package assets loads the ASCII-art frames and epoch descriptions the game
// draws. Assets ship embedded in the binary and can be replaced by a
// directory with the same layout.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/space-garbage/internal/core"
)

//go:embed files
var embedded embed.FS

// ErrMissingAsset is returned when a required asset is absent or empty.
var ErrMissingAsset = errors.New("assets: missing asset")

// Asset paths relative to the asset root.
const (
	rocketFrame1 = "rocket_frame_1.txt"
	rocketFrame2 = "rocket_frame_2.txt"
	gameOverFile = "game_over.txt"
	phrasesFile  = "phrases.yaml"
	garbageDir   = "garbage"
	explosionDir = "explosion"
)

// Catalog holds every frame the game needs, loaded once at startup.
type Catalog struct {
	Rocket    [2]core.Frame
	Garbage   []core.Frame
	Explosion []core.Frame
	GameOver  core.Frame
	phrases   map[int]string
	names     []string // garbage frame names, parallel to Garbage
}

// Embedded returns the asset tree compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "files")
	if err != nil {
		// The embed directive guarantees the directory exists.
		panic(fmt.Sprintf("assets: embedded tree: %v", err))
	}
	return sub
}

// Open returns the asset tree at dir, or the embedded tree when dir is empty.
func Open(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

// Load reads and validates all assets from fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{}
	var err error

	if c.Rocket[0], err = readFrame(fsys, rocketFrame1); err != nil {
		return nil, err
	}
	if c.Rocket[1], err = readFrame(fsys, rocketFrame2); err != nil {
		return nil, err
	}
	if c.GameOver, err = readFrame(fsys, gameOverFile); err != nil {
		return nil, err
	}

	if c.names, c.Garbage, err = readFrameDir(fsys, garbageDir); err != nil {
		return nil, err
	}
	if _, c.Explosion, err = readFrameDir(fsys, explosionDir); err != nil {
		return nil, err
	}

	if c.phrases, err = readPhrases(fsys); err != nil {
		return nil, err
	}

	return c, nil
}

// Phrase returns the description for a year.
func (c *Catalog) Phrase(year int) (string, bool) {
	p, ok := c.phrases[year]
	return p, ok
}

// GarbageNames lists the garbage frames in load order.
func (c *Catalog) GarbageNames() []string {
	return c.names
}

func readFrame(fsys fs.FS, name string) (core.Frame, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return core.Frame{}, fmt.Errorf("%w: %s", ErrMissingAsset, name)
		}
		return core.Frame{}, fmt.Errorf("assets: read %s: %w", name, err)
	}
	f := core.NewFrame(string(data))
	if f.Empty() {
		return core.Frame{}, fmt.Errorf("%w: %s is empty", ErrMissingAsset, name)
	}
	return f, nil
}

// readFrameDir loads every .txt file in dir, sorted by name.
func readFrameDir(fsys fs.FS, dir string) ([]string, []core.Frame, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s/", ErrMissingAsset, dir)
		}
		return nil, nil, fmt.Errorf("assets: read dir %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".txt") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, nil, fmt.Errorf("%w: no frames in %s/", ErrMissingAsset, dir)
	}

	frames := make([]core.Frame, 0, len(names))
	ids := make([]string, 0, len(names))
	for _, n := range names {
		f, err := readFrame(fsys, path.Join(dir, n))
		if err != nil {
			return nil, nil, err
		}
		frames = append(frames, f)
		ids = append(ids, strings.TrimSuffix(n, ".txt"))
	}
	return ids, frames, nil
}

func readPhrases(fsys fs.FS) (map[int]string, error) {
	data, err := fs.ReadFile(fsys, phrasesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, phrasesFile)
		}
		return nil, fmt.Errorf("assets: read %s: %w", phrasesFile, err)
	}

	phrases := make(map[int]string)
	if err := yaml.Unmarshal(data, &phrases); err != nil {
		return nil, fmt.Errorf("assets: parse %s: %w", phrasesFile, err)
	}
	return phrases, nil
}
