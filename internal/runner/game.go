package runner

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walk-the-dog/internal/assets"
	"github.com/vovakirdan/walk-the-dog/internal/config"
	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/registry"
)

// GameID is the registry identifier and score-table key.
const GameID = "walk"

// Game adapts a Session to the platform: it adds scoring, pause, difficulty
// and the overlays the player sees between runs.
type Game struct {
	session    *Session
	pack       *assets.Pack
	cfg        config.WalkConfig
	difficulty *config.DifficultyManager
	runtime    core.RuntimeConfig
	paused     bool
	ticks      int
}

// Settings applied to every new Game, set from the command line.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	audioOut         Audio
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the
// config file's setting.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetAudio sets the sound output. Nil plays nothing.
func SetAudio(a Audio) {
	audioOut = a
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	logger = l
}

// New creates a new Walk the Dog game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Walk the Dog"
}

// Reset loads configuration and starts a new session in Ready. Assets are
// loaded on the first call and reused afterwards.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadWalk(configPath)
	if err != nil {
		g.log().Warn("using default config", "err", err)
		cfg = config.DefaultWalkConfig()
	}
	config.ApplyPreset(&cfg, difficultyPreset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	if g.pack == nil {
		pack, err := assets.Load()
		if err != nil {
			panic(fmt.Sprintf("runner: cannot load assets: %v", err))
		}
		g.pack = pack
	}

	g.session = NewSession(g.pack, Options{
		Logger:          g.log(),
		Audio:           audioOut,
		Seed:            runtime.Seed,
		TimelineMinimum: cfg.Generator.TimelineMinimum,
		Gap:             g.gap(0),
	})
	g.paused = false
	g.ticks = 0
}

func (g *Game) log() *log.Logger {
	if logger != nil {
		return logger
	}
	return log.Default()
}

// gap is the segment spacing for the given score. Without progression the
// segments sit obstacle_buffer apart.
func (g *Game) gap(score int) int {
	if !g.difficulty.IsEnabled() {
		return g.cfg.Generator.ObstacleBuffer
	}
	return g.difficulty.Gap(g.cfg.Generator.MaxGap, g.cfg.Generator.ObstacleBuffer, score, g.ticks)
}

// Session returns the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.session.Phase() {
	case GameOver:
		if in.Has(core.ActionRestart) {
			g.session.RequestRestart()
			g.paused = false
			g.ticks = 0
		}
	case Walking:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return core.StepResult{State: g.State()}
		}
		g.ticks++
		g.session.SetGap(g.gap(g.score()))
	}

	g.session.Update(in)
	return core.StepResult{State: g.State()}
}

// Distance returns how far the current run has scrolled, in pixels.
func (g *Game) Distance() int {
	return g.session.Walk().Distance()
}

func (g *Game) score() int {
	return g.session.Walk().Distance() / g.cfg.Score.PixelsPerPoint
}

// Render draws the world scaled to dst, then the HUD and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.session.Draw(core.NewCanvas(dst, WorldWidth, WorldHeight))

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.score()))
	if g.difficulty.IsEnabled() && g.session.Phase() == Walking {
		levelText := fmt.Sprintf(" Lvl: %.0f%% ", g.difficulty.Level(g.score(), g.ticks)*100)
		dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
	}

	switch {
	case g.session.Phase() == Ready:
		dst.DrawMessage("WALK THE DOG", "Press → or D to start")
		dst.DrawTextCentered(dst.Height()-1, "Space/↑ jump  |  ↓/S slide  |  P pause")
	case g.session.Phase() == GameOver:
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score()))
	case g.paused:
		dst.DrawMessage("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: g.session.Phase() == GameOver,
		Paused:   g.paused,
	}
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
