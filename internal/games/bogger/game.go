// Package bogger implements Bogger: steer a collector craft, spool a jointed
// pontoon out behind it, and herd floating berries into the bucket while
// rescuing spiders onto rocks for bonus time.
package bogger

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
	"github.com/vovakirdan/bogger/internal/registry"
)

// Mode selects between the timed game and the sandbox.
type Mode int

const (
	ModeTimed   Mode = iota // Countdown, spiders, run history
	ModeSandbox             // No countdown, no spiders
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session debug logs; nil discards them
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger new sessions write to.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a Session to the platform's fixed-tick loop.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.BoggerConfig

	session *Session
	paused  bool
	timeMs  float64
	tick    uint64
	runs    int // Sessions started since Reset, continues included
}

// New creates a timed Bogger game.
func New() *Game {
	return &Game{mode: ModeTimed}
}

// NewSandbox creates an untimed Bogger game without spiders.
func NewSandbox() *Game {
	return &Game{mode: ModeSandbox}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeSandbox {
		return "bogger_sandbox"
	}
	return "bogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeSandbox {
		return "Bogger (Sandbox)"
	}
	return "Bogger"
}

// Description returns a one-line summary for menus and listings.
func (g *Game) Description() string {
	if g.mode == ModeSandbox {
		return "Endless chain playground, no clock, no spiders"
	}
	return "Beat the clock: bucket berries, rescue spiders"
}

// Reset loads configuration and starts a fresh session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBogger(configPath)
	if err != nil {
		cfg = config.DefaultBoggerConfig()
	}
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a fresh session from cfg, applying the preset and mode.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.BoggerConfig) {
	if difficultyPreset != "" {
		config.ApplyBoggerPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeSandbox {
		config.ApplySandbox(&cfg)
	}

	g.runtime = runtime
	g.cfg = cfg
	g.runs = 0
	g.start(Params{})
}

func (g *Game) start(p Params) {
	if g.session != nil {
		g.session.Teardown()
	}
	world := physics.NewSpace(physics.SpaceOptions{
		Iterations:     g.cfg.Physics.Iterations,
		StiffnessScale: g.cfg.Physics.StiffnessScale,
		DampingScale:   g.cfg.Physics.DampingScale,
	})
	g.session = NewSession(world, g.cfg, g.runtime.Seed+int64(g.runs), logger)
	g.session.Create(p)
	g.runs++
	g.paused = false
	g.timeMs = 0
	g.tick = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.Over() {
		if in.Has(core.ActionContinue) {
			g.start(Params{PriorScore: g.session.State().Score})
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	delta := g.runtime.TickMillis()
	g.tick++
	g.timeMs += delta
	g.session.Update(g.timeMs, delta, InputFromFrame(in))

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:       st.Score,
		Rescues:     st.Rescues,
		CountdownMs: g.session.CountdownMs(),
		Timed:       g.session.Timed(),
		GameOver:    g.session.Over(),
		Paused:      g.paused,
	}
}

// Summary returns the finished run for the history, once the countdown
// has expired.
func (g *Game) Summary() (core.RunSummary, bool) {
	r, ok := g.session.Result()
	if !ok {
		return core.RunSummary{}, false
	}
	return core.RunSummary{
		Score:        r.Score,
		Rescues:      r.Rescues,
		Berries:      r.Berries,
		PeakSegments: r.PeakSegments,
		DurationMs:   r.DurationMs,
		Seed:         g.runtime.Seed + int64(g.runs-1),
	}, true
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Register the games with the registry
func init() {
	registry.Register("bogger", func() registry.Game {
		return New()
	})
	registry.Register("bogger_sandbox", func() registry.Game {
		return NewSandbox()
	})
}
