// Package registry maps game IDs to factories. Games register from init, so
// the CLI and the SSH server can create them by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/walk-the-dog/internal/core"
)

// Game is the interface the frame pump drives.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "walk").
	// Used as the score-table key.
	ID() string

	// Title returns a human-readable name for display (e.g., "Walk the Dog").
	Title() string

	// Reset starts the game from scratch. The frame pump calls it once;
	// restarts after game over arrive as ActionRestart input.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick with the actions pressed
	// during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into dst.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. It panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(games, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return games
}

// Create returns a new instance of the game registered as id.
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
