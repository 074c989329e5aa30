package bogger

import (
	"strings"
	"testing"

	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{"bogger", "bogger_sandbox"} {
		if !registry.Exists(id) {
			t.Errorf("registry.Exists(%q) = false, expected true", id)
		}
	}
}

func TestGameResetLoadsDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.Reset(testRuntime(1))

	st := g.State()
	if !st.Timed || st.CountdownMs != 90000 {
		t.Errorf("State() = %+v, expected a 90000ms timed game", st)
	}
	if st.Score != 0 || st.GameOver || st.Paused {
		t.Errorf("State() = %+v, expected a fresh game", st)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 120)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i < 60 {
			inputs[i].Set(core.ActionRight)
		}
		if i%4 == 0 {
			inputs[i].Set(core.ActionDown)
		}
		if i > 30 && i < 70 {
			inputs[i].Set(core.ActionSpool)
		}
		if i > 90 {
			inputs[i].Set(core.ActionRetract)
		}
	}

	play := func() Snapshot {
		g := New()
		g.ResetWithConfig(testRuntime(12345), testConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	snap1, snap2 := play(), play()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ.\nRun1=%+v\nRun2=%+v", snap1, snap2)
	}
	if snap1.Tick != 120 {
		t.Errorf("Tick = %d, expected 120", snap1.Tick)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime(1), testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("State().Paused = false after pause")
	}
	before := g.State().CountdownMs
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().CountdownMs != before {
		t.Errorf("CountdownMs = %v while paused, expected %v", g.State().CountdownMs, before)
	}

	g.Step(pause)
	g.Step(core.NewInputFrame())
	if g.State().Paused || g.State().CountdownMs >= before {
		t.Errorf("State() = %+v after resume, expected the clock running", g.State())
	}
}

func TestGameOverSummaryAndContinue(t *testing.T) {
	cfg := testConfig()
	cfg.Timer.CountdownMs = 200

	g := New()
	g.ResetWithConfig(testRuntime(7), cfg)
	g.session.state.Score = 17

	if _, ok := g.Summary(); ok {
		t.Error("Summary() ok before game over")
	}
	for i := 0; i < 20 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("game did not end on a 200ms timer")
	}

	sum, ok := g.Summary()
	if !ok || sum.Score != 17 || sum.Seed != 7 {
		t.Errorf("Summary() = %+v, %v, expected score 17 with seed 7", sum, ok)
	}

	// Steps after game over are ignored until continue.
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Error("game restarted without input")
	}

	cont := core.NewInputFrame()
	cont.Set(core.ActionContinue)
	g.Step(cont)

	st := g.State()
	if st.GameOver || st.Score != 17 || st.CountdownMs != 200 {
		t.Errorf("State() after continue = %+v, expected score 17 carried into a new 200ms run", st)
	}
	if sum, _ := g.Summary(); sum.Seed == 7 {
		t.Errorf("continued run reused seed %d", sum.Seed)
	}
}

func TestGameSandbox(t *testing.T) {
	g := NewSandbox()
	g.ResetWithConfig(testRuntime(1), config.DefaultBoggerConfig())

	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}
	st := g.State()
	if st.Timed || st.GameOver {
		t.Errorf("State() = %+v, expected untimed sandbox", st)
	}
	if _, ok := g.Summary(); ok {
		t.Error("Summary() ok in sandbox")
	}
	if n := len(g.Session().Spiders()); n != 0 {
		t.Errorf("spiders = %d in sandbox", n)
	}
}

func TestGameHardPreset(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := New()
	g.ResetWithConfig(testRuntime(1), config.DefaultBoggerConfig())
	if got := g.State().CountdownMs; got != 60000 {
		t.Errorf("CountdownMs = %v, expected 60000 on hard", got)
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime(1), testConfig())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Score:") {
		t.Error("HUD missing score")
	}
	if !strings.ContainsRune(out, PlayerChar) {
		t.Error("craft not drawn")
	}

	small := core.NewScreen(20, 6)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Errorf("small screen = %q, expected size warning", small.String())
	}
}
