// Package registry keeps the cartridge factories the platforms can run.
// Cartridges register themselves in init(), so the CLI discovers them by
// importing the package for its side effect.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/bear-adventure/internal/core"
)

// Game is what a platform drives once per tick. Implementations hold pure
// game logic; the platform owns timing, input mapping and output.
type Game interface {
	// ID returns a unique identifier (e.g. "bear"), used on the CLI and
	// in run records.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset loads the game and shows its first screen. Called once before
	// the first Step.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into a terminal screen buffer.
	Render(dst *core.Screen)

	// State summarizes the running game.
	State() core.GameState
}

// GameInfo describes a registered cartridge without creating it.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh, un-Reset game.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a cartridge. The title is read once from a throwaway
// instance. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered cartridge ordered by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create returns a new instance of the cartridge registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
