// Package resource serves the ASCII art textures drawn by screens.
package resource

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starfall/internal/logging"
)

// ErrNotFound is returned for textures missing from the asset store.
var ErrNotFound = errors.New("resource: not found")

//go:embed art/*.txt
var embeddedArt embed.FS

// Texture is a block of text art.
type Texture struct {
	Name   string
	Lines  []string
	Width  int
	Height int
}

// Placeholder builds the texture shown when name cannot be loaded.
func Placeholder(name string) Texture {
	label := "[" + name + "]"
	return newTexture(name, []string{label})
}

func newTexture(name string, lines []string) Texture {
	w := 0
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	return Texture{Name: name, Lines: lines, Width: w, Height: len(lines)}
}

// Assets loads textures from art/<name>.txt and caches them. It is safe
// for concurrent use, so SSH sessions can share one instance.
type Assets struct {
	fsys   fs.FS
	logger *log.Logger

	mu    sync.RWMutex
	cache map[string]Texture
}

// NewAssets creates a store reading from fsys.
func NewAssets(fsys fs.FS, logger *log.Logger) *Assets {
	return &Assets{
		fsys:   fsys,
		logger: logging.OrDiscard(logger).WithPrefix("assets"),
		cache:  make(map[string]Texture),
	}
}

// Embedded returns a store over the art bundled in the binary.
func Embedded(logger *log.Logger) *Assets {
	return NewAssets(embeddedArt, logger)
}

// Names lists the available textures, sorted.
func (a *Assets) Names() []string {
	paths, err := fs.Glob(a.fsys, "art/*.txt")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, strings.TrimSuffix(path.Base(p), ".txt"))
	}
	sort.Strings(names)
	return names
}

// Texture returns the named texture, loading it on first use.
func (a *Assets) Texture(name string) (Texture, error) {
	a.mu.RLock()
	tex, ok := a.cache[name]
	a.mu.RUnlock()
	if ok {
		return tex, nil
	}

	data, err := fs.ReadFile(a.fsys, "art/"+name+".txt")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Texture{}, fmt.Errorf("%w: texture %q", ErrNotFound, name)
		}
		return Texture{}, fmt.Errorf("resource: load texture %q: %w", name, err)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	tex = newTexture(name, strings.Split(strings.TrimRight(text, "\n"), "\n"))

	a.mu.Lock()
	a.cache[name] = tex
	a.mu.Unlock()
	return tex, nil
}

// TextureOr returns the named texture, or a placeholder with a logged
// warning when it cannot be loaded.
func (a *Assets) TextureOr(name string) Texture {
	tex, err := a.Texture(name)
	if err != nil {
		a.logger.Warn("using placeholder texture", "texture", name, "error", err)
		return Placeholder(name)
	}
	return tex
}

// Preload loads every name and returns how many succeeded. Failures are
// logged, not returned.
func (a *Assets) Preload(names ...string) int {
	loaded := 0
	for _, name := range names {
		if _, err := a.Texture(name); err != nil {
			a.logger.Warn("preload failed", "texture", name, "error", err)
			continue
		}
		loaded++
	}
	return loaded
}

// Cached reports how many textures are in the cache.
func (a *Assets) Cached() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return len(a.cache)
}
