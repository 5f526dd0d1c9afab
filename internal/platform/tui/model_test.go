package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/storage"
)

// scriptedGame ends after a fixed number of steps and records the input it saw.
type scriptedGame struct {
	steps    int
	endAfter int
	score    int
	seen     []core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) { g.steps = 0 }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.seen = append(g.seen, in)
	if in.Has(core.ActionRestart) && g.steps >= g.endAfter {
		g.steps = 0
	}
	g.steps++
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.steps >= g.endAfter}
}

func (g *scriptedGame) Distance() int { return g.score * 10 }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(game *scriptedGame, store *storage.Store) Model {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 7}
	m := NewModel(game, store, cfg, Options{Logger: log.New(&bytes.Buffer{})})
	m.Init()
	return m
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(Model)
}

func TestModelForwardsInputOncePerTick(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := newTestModel(game, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	m = tick(t, m)
	m = tick(t, m)

	if len(game.seen) != 2 {
		t.Fatalf("game stepped %d times, want 2", len(game.seen))
	}
	if !game.seen[0].IsPressed(core.ActionJump) {
		t.Error("first tick should carry the jump")
	}
	if game.seen[1].IsPressed(core.ActionJump) {
		t.Error("input should be cleared after the tick")
	}
}

func TestModelSavesRunOncePerGameOver(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAfter: 3, score: 12}
	m := newTestModel(game, store)

	for i := 0; i < 6; i++ {
		m = tick(t, m)
	}

	runs, err := store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Score != 12 || runs[0].Distance != 120 || runs[0].Seed != 7 {
		t.Errorf("run = %+v, want score 12, distance 120, seed 7", runs[0])
	}

	// Restart, play to the next game over.
	next, _ := m.Update(runeKey('r'))
	m = next.(Model)
	for i := 0; i < 4; i++ {
		m = tick(t, m)
	}

	runs, err = store.TopRuns("scripted", 10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Errorf("saved %d runs after restart, want 2", len(runs))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{endAfter: 1}
	m := newTestModel(game, store)
	tick(t, m)

	high, err := store.HighScore("scripted")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if high != 0 {
		t.Errorf("high score = %d, want 0", high)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&scriptedGame{endAfter: 100}, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("command should produce tea.QuitMsg")
	}
	if view := next.(Model).View(); view != "" {
		t.Errorf("view after quit = %q, want empty", view)
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	m := newTestModel(game, nil)
	m = tick(t, m)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)
	if m.screen.Width() != 60 || m.screen.Height() != 20 {
		t.Errorf("screen = %dx%d, want 60x20", m.screen.Width(), m.screen.Height())
	}
	if game.steps != 1 {
		t.Errorf("resize reset the game: steps = %d, want 1", game.steps)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should contain the game's render")
	}
}

func TestModelDebugOverlay(t *testing.T) {
	game := &scriptedGame{endAfter: 100}
	cfg := core.RuntimeConfig{ScreenW: 60, ScreenH: 10, TickRate: 60, Seed: 99}
	m := NewModel(game, nil, cfg, Options{Debug: true, Logger: log.New(&bytes.Buffer{})})
	m.Init()

	if !strings.Contains(m.View(), "seed 99") {
		t.Error("debug overlay should show the seed")
	}
}

func TestRunRows(t *testing.T) {
	when := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	rows := runRows([]storage.Run{
		{Score: 40, Distance: 400, Seed: 3, CreatedAt: when},
		{Score: 7, Distance: 70, Seed: 4, CreatedAt: when},
	})

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	want := []string{"#1", "40", "400", "3", "Mar 05 14:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 column %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" {
		t.Errorf("second rank = %q, want #2", rows[1][0])
	}
}

func TestScoreboardStatsLine(t *testing.T) {
	store := openStore(t)
	m := NewScoreboardModel(store, "scripted", "Scripted", 80, 24)
	if got := m.statsLine(); got != "no runs yet" {
		t.Errorf("empty stats line = %q", got)
	}

	for _, score := range []int{10, 30} {
		if _, err := store.SaveRun(storage.Run{GameID: "scripted", Score: score, Distance: score * 10}); err != nil {
			t.Fatalf("SaveRun: %v", err)
		}
	}
	m = NewScoreboardModel(store, "scripted", "Scripted", 80, 24)
	want := "2 runs | best 30 | average 20 | longest 300 px"
	if got := m.statsLine(); got != want {
		t.Errorf("stats line = %q, want %q", got, want)
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Scripted") {
		t.Error("view should carry the title")
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tt := range tests {
		if got := centerText(tt.s, tt.width); got != tt.want {
			t.Errorf("centerText(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}
