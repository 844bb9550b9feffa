// Package registry maps game IDs to factories so the terminal front end,
// the SSH server and the CLI can create games without importing them
// directly. Games register themselves from init().
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/toppa/internal/core"
)

// Game is what the platform drives. Implementations hold pure rules and
// never import Bubble Tea; the platform maps keys to actions, owns the
// frame timer and turns the screen buffer into terminal output.
type Game interface {
	// ID is the stable identifier used on the command line and in the
	// result log.
	ID() string

	// Title is the display name.
	Title() string

	// Reset builds a fresh game for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current summary without advancing.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory. Registering the same ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id, title := range titles {
		out = append(out, GameInfo{ID: id, Title: title})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
