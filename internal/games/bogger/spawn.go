package bogger

import (
	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
)

// Berry is a floating berry waiting to be herded into the collector.
type Berry struct {
	Body   physics.Body
	Value  int
	Health float64
}

// Spider drifts in from an edge and can be rescued onto a rock once active.
type Spider struct {
	Body   physics.Body
	Active bool
	AgeMs  float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a simple LCG (Linear Congruential Generator).
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// Range returns a random float64 in [lo, hi).
func (r *SimpleRNG) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Spawner places berries, spiders and rocks in the playfield.
type Spawner struct {
	world  physics.World
	rng    *SimpleRNG
	cfg    config.BoggerConfig
	bounds core.Bounds

	berryCategory  uint
	spiderCategory uint
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(world physics.World, rng *SimpleRNG, cfg config.BoggerConfig) *Spawner {
	return &Spawner{
		world:          world,
		rng:            rng,
		cfg:            cfg,
		bounds:         core.Bounds{Max: core.V(cfg.Playfield.Width, cfg.Playfield.Height)},
		berryCategory:  world.NextCategory(),
		spiderCategory: world.NextCategory(),
	}
}

// collectorBounds returns the collector rectangle in world coordinates.
func collectorBounds(c config.CollectorConfig) core.Bounds {
	return core.Bounds{Min: core.V(c.X, c.Y), Max: core.V(c.X+c.Width, c.Y+c.Height)}
}

// freePoint picks a point away from the edges, the collector and the rocks.
func (s *Spawner) freePoint(radius float64) core.Vec {
	margin := s.cfg.Playfield.RepelMargin + radius
	collector := collectorBounds(s.cfg.Collector)
	collector.Min = collector.Min.Sub(core.V(radius, radius))
	collector.Max = collector.Max.Add(core.V(radius, radius*4))

	var p core.Vec
	for attempt := 0; attempt < 16; attempt++ {
		p = core.V(
			s.rng.Range(margin, s.bounds.Width()-margin),
			s.rng.Range(margin, s.bounds.Height()-margin),
		)
		if collector.Contains(p) {
			continue
		}
		free := true
		for _, rock := range s.cfg.Rocks.Positions {
			if p.Dist(core.V(rock.X, rock.Y)) < s.cfg.Rocks.Radius+radius*2 {
				free = false
				break
			}
		}
		if free {
			return p
		}
	}
	return p
}

// Berry creates a berry at a random free point.
func (s *Spawner) Berry() *Berry {
	cfg := s.cfg.Berries
	value := cfg.Value
	if value <= 0 {
		value = 1
	}
	if cfg.GoldenChance > 0 && s.rng.Float64() < cfg.GoldenChance {
		value = cfg.GoldenValue
	}
	return s.BerryAt(s.freePoint(cfg.Radius), value)
}

// BerryAt creates a berry with the given value at p.
func (s *Spawner) BerryAt(p core.Vec, value int) *Berry {
	cfg := s.cfg.Berries
	body := s.world.CreateBody(physics.BodyDef{
		Kind:        physics.KindBerry,
		Position:    p,
		Shape:       physics.Circle(cfg.Radius),
		Mass:        cfg.Mass,
		FrictionAir: cfg.AirFriction,
		Category:    s.berryCategory,
	})
	return &Berry{Body: body, Value: value, Health: cfg.Health}
}

// Spider creates a spider on a random side or bottom edge, drifting inward
// at speed.
func (s *Spawner) Spider(speed float64) *Spider {
	cfg := s.cfg.Spiders
	w, h := s.bounds.Width(), s.bounds.Height()
	inset := s.cfg.Playfield.RepelMargin + cfg.Radius

	var p, dir core.Vec
	switch s.rng.Intn(3) {
	case 0: // left
		p, dir = core.V(inset, s.rng.Range(h*0.3, h-inset)), core.V(1, 0)
	case 1: // right
		p, dir = core.V(w-inset, s.rng.Range(h*0.3, h-inset)), core.V(-1, 0)
	default: // bottom
		p, dir = core.V(s.rng.Range(inset, w-inset), h-inset), core.V(0, -1)
	}
	// Up to 30 degrees off the inward normal.
	dir = dir.Rotate(s.rng.Range(-0.5, 0.5))
	return s.SpiderAt(p, dir.Scale(speed))
}

// SpiderAt creates an inactive spider at p with velocity v.
func (s *Spawner) SpiderAt(p, v core.Vec) *Spider {
	cfg := s.cfg.Spiders
	body := s.world.CreateBody(physics.BodyDef{
		Kind:        physics.KindSpider,
		Position:    p,
		Shape:       physics.Circle(cfg.Radius),
		Mass:        cfg.Mass,
		FrictionAir: cfg.AirFriction,
		Category:    s.spiderCategory,
	})
	s.world.SetVelocity(body, v)
	return &Spider{Body: body}
}

// Rocks creates the static rescue rocks.
func (s *Spawner) Rocks() []physics.Body {
	out := make([]physics.Body, 0, len(s.cfg.Rocks.Positions))
	for _, p := range s.cfg.Rocks.Positions {
		out = append(out, s.world.CreateBody(physics.BodyDef{
			Kind:     physics.KindRock,
			Position: core.V(p.X, p.Y),
			Shape:    physics.Circle(s.cfg.Rocks.Radius),
			Static:   true,
		}))
	}
	return out
}

// Collector creates the static scoring sensor.
func (s *Spawner) Collector() physics.Body {
	b := collectorBounds(s.cfg.Collector)
	return s.world.CreateBody(physics.BodyDef{
		Kind:     physics.KindCollector,
		Position: b.Center(),
		Shape:    physics.Box(b.Width(), b.Height()),
		Static:   true,
		Sensor:   true,
	})
}

// Walls creates four static boxes just outside the playfield.
func (s *Spawner) Walls() []physics.Body {
	const thick = 40.0
	w, h := s.bounds.Width(), s.bounds.Height()
	boxes := []struct {
		center core.Vec
		size   core.Vec
	}{
		{core.V(w/2, -thick/2), core.V(w+2*thick, thick)},
		{core.V(w/2, h+thick/2), core.V(w+2*thick, thick)},
		{core.V(-thick/2, h/2), core.V(thick, h)},
		{core.V(w+thick/2, h/2), core.V(thick, h)},
	}
	out := make([]physics.Body, 0, len(boxes))
	for _, b := range boxes {
		out = append(out, s.world.CreateBody(physics.BodyDef{
			Kind:     physics.KindWall,
			Position: b.center,
			Shape:    physics.Box(b.size.X, b.size.Y),
			Static:   true,
		}))
	}
	return out
}
