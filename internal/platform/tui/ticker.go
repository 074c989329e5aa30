package tui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// scoreTicker eases the displayed score toward the real one.
type scoreTicker struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newScoreTicker(fps int) *scoreTicker {
	if fps <= 0 {
		fps = 60
	}
	return &scoreTicker{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

// Update advances the spring one frame toward target.
func (t *scoreTicker) Update(target int) {
	t.pos, t.vel = t.spring.Update(t.pos, t.vel, float64(target))
}

// Snap jumps straight to target.
func (t *scoreTicker) Snap(target int) {
	t.pos = float64(target)
	t.vel = 0
}

// Value returns the score to display.
func (t *scoreTicker) Value() int {
	return int(math.Round(t.pos))
}
