package bogger

import (
	"fmt"
	"hash/fnv"
	"math"
)

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Score       int
	Rescues     int
	Collected   int
	Segments    int
	Berries     int
	Spiders     int
	Engaged     bool
	CountdownMs float64
	PlayerX     float64
	PlayerY     float64
	TailX       float64
	TailY       float64
	GameOver    bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.session.Snapshot()
	snap.Tick = g.tick
	return snap
}

// Snapshot returns the current session snapshot. Positions are rounded to
// 1e-6 world units.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        s.ticks,
		Score:       s.state.Score,
		Rescues:     s.state.Rescues,
		Collected:   s.state.Collected,
		CountdownMs: s.CountdownMs(),
		GameOver:    s.over,
	}
	if !s.created {
		return snap
	}
	snap.Segments = s.chain.Len()
	snap.Berries = len(s.bridge.Berries())
	snap.Spiders = len(s.bridge.Spiders())
	snap.Engaged = s.tether.Engaged()
	if s.world.Exists(s.player) {
		p := s.world.Position(s.player)
		snap.PlayerX, snap.PlayerY = round6(p.X), round6(p.Y)
	}
	if tail := s.chain.Tail(); tail != nil {
		p := s.world.Position(tail.Body)
		snap.TailX, snap.TailY = round6(p.X), round6(p.Y)
	}
	return snap
}

// Hash returns a stable hash of the snapshot.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%+v", s)
	return h.Sum64()
}

func round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
