package bogger

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
)

// State is the mutable score state of one session.
type State struct {
	Score     int
	Rescues   int
	Collected int // Berries scored
	Penalties int // Spiders lost into the collector
}

// AddScore adds n points.
func (s *State) AddScore(n int) {
	s.Score += n
}

// Penalize subtracts n points without going below zero.
func (s *State) Penalize(n int) {
	s.Score -= n
	if s.Score < 0 {
		s.Score = 0
	}
}

// Bridge turns contacts into score and timer changes.
type Bridge struct {
	world     physics.World
	state     *State
	countdown *Countdown
	scoring   config.ScoringConfig
	field     config.PlayfieldConfig
	log       *log.Logger

	berries map[physics.Body]*Berry
	spiders map[physics.Body]*Spider

	collected []*Berry // Berries scored since the last Drain
}

// NewBridge creates a bridge over the session's entity sets.
func NewBridge(world physics.World, state *State, countdown *Countdown, cfg config.BoggerConfig, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = discardLogger()
	}
	return &Bridge{
		world:     world,
		state:     state,
		countdown: countdown,
		scoring:   cfg.Scoring,
		field:     cfg.Playfield,
		log:       logger,
		berries:   make(map[physics.Body]*Berry),
		spiders:   make(map[physics.Body]*Spider),
	}
}

// TrackBerry registers a berry for scoring.
func (b *Bridge) TrackBerry(berry *Berry) {
	b.berries[berry.Body] = berry
}

// TrackSpider registers a spider for penalties and rescues.
func (b *Bridge) TrackSpider(spider *Spider) {
	b.spiders[spider.Body] = spider
}

// Berry returns the tracked berry for body.
func (b *Bridge) Berry(body physics.Body) (*Berry, bool) {
	berry, ok := b.berries[body]
	return berry, ok
}

// Spider returns the tracked spider for body.
func (b *Bridge) Spider(body physics.Body) (*Spider, bool) {
	spider, ok := b.spiders[body]
	return spider, ok
}

// Berries returns the tracked berries.
func (b *Bridge) Berries() map[physics.Body]*Berry {
	return b.berries
}

// Spiders returns the tracked spiders.
func (b *Bridge) Spiders() map[physics.Body]*Spider {
	return b.spiders
}

// Drain returns and forgets the berries scored since the last call.
func (b *Bridge) Drain() []*Berry {
	out := b.collected
	b.collected = nil
	return out
}

// HandleContact applies the gameplay effect of one contact.
func (b *Bridge) HandleContact(c physics.Contact) {
	if other, kind, ok := c.Other(physics.KindCollector); ok {
		b.intoCollector(other, kind)
		return
	}
	if spider, _, ok := c.Involves(physics.KindSpider, physics.KindRock); ok {
		b.rescue(spider)
	}
}

func (b *Bridge) intoCollector(body physics.Body, kind physics.Kind) {
	switch kind {
	case physics.KindBerry:
		berry, ok := b.berries[body]
		if !ok {
			return
		}
		b.state.AddScore(berry.Value)
		b.state.Collected++
		b.RemoveBerry(body)
		b.collected = append(b.collected, berry)
		b.log.Debug("berry collected", "value", berry.Value, "score", b.state.Score)
	case physics.KindSpider:
		if _, ok := b.spiders[body]; !ok {
			return
		}
		b.state.Penalize(b.scoring.SpiderPenalty)
		b.state.Penalties++
		b.RemoveSpider(body)
		b.log.Debug("spider lost", "score", b.state.Score)
	case physics.KindPlayer, physics.KindSegment, physics.KindRock,
		physics.KindCollector, physics.KindWall, physics.KindNone:
	}
}

func (b *Bridge) rescue(body physics.Body) {
	spider, ok := b.spiders[body]
	if !ok || !spider.Active {
		return
	}
	b.state.Rescues++
	b.countdown.Add(b.scoring.RescueBonusMs)
	b.RemoveSpider(body)
	b.log.Debug("spider rescued", "rescues", b.state.Rescues, "countdown", b.countdown.Remaining())
}

// RemoveBerry destroys and forgets a berry.
func (b *Bridge) RemoveBerry(body physics.Body) {
	delete(b.berries, body)
	b.world.DestroyBody(body)
}

// RemoveSpider destroys and forgets a spider.
func (b *Bridge) RemoveSpider(body physics.Body) {
	delete(b.spiders, body)
	b.world.DestroyBody(body)
}

// Repel pushes berries near an edge back toward the middle, scaled by
// the elapsed time.
func (b *Bridge) Repel(deltaMs float64) {
	margin := b.field.RepelMargin
	if margin <= 0 || deltaMs <= 0 {
		return
	}
	mag := b.field.RepelForcePerMs * deltaMs
	for body := range b.berries {
		if f := RepelForce(b.world.Position(body), b.field.Width, b.field.Height, margin, mag); f != (core.Vec{}) {
			b.world.ApplyForce(body, f)
		}
	}
}

// RepelForce returns the push for a point at p in a w by h field: mag along
// the inward normal of every edge closer than margin.
func RepelForce(p core.Vec, w, h, margin, mag float64) core.Vec {
	var f core.Vec
	if p.X < margin {
		f.X += mag
	}
	if p.X > w-margin {
		f.X -= mag
	}
	if p.Y < margin {
		f.Y += mag
	}
	if p.Y > h-margin {
		f.Y -= mag
	}
	return f
}
