package bogger

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
)

// Params carries state from a previous session.
type Params struct {
	PriorScore int
}

// Result is reported once when a timed session ends.
type Result struct {
	Score        int
	Rescues      int
	Berries      int
	PeakSegments int
	DurationMs   float64
}

// Session owns every body and constraint of one game.
type Session struct {
	world      physics.World
	cfg        config.BoggerConfig
	log        *log.Logger
	rng        *SimpleRNG
	difficulty *config.DifficultyManager

	spawner    *Spawner
	chain      *Chain
	tether     *Tether
	controller *Controller
	loco       *Locomotion
	bridge     *Bridge
	countdown  *Countdown
	state      State

	player    physics.Body
	collector physics.Body
	rocks     []physics.Body
	walls     []physics.Body

	created      bool
	over         bool
	torn         bool
	result       Result
	elapsedMs    float64
	ticks        uint64
	peakSegments int
}

// NewSession creates a session on world. A nil logger discards output.
func NewSession(world physics.World, cfg config.BoggerConfig, seed int64, logger *log.Logger) *Session {
	if logger == nil {
		logger = discardLogger()
	}
	return &Session{
		world:      world,
		cfg:        cfg,
		log:        logger,
		rng:        NewSimpleRNG(seed),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

func discardLogger() *log.Logger {
	return log.New(io.Discard)
}

// Create builds the playfield, chain, craft and berries. It runs once.
func (s *Session) Create(p Params) {
	if s.created {
		return
	}
	s.created = true

	s.state = State{Score: p.PriorScore}
	s.countdown = NewCountdown(s.cfg.Timer.CountdownMs)
	s.spawner = NewSpawner(s.world, s.rng, s.cfg)

	if s.cfg.Playfield.Walls {
		s.walls = s.spawner.Walls()
	}
	s.collector = s.spawner.Collector()
	s.rocks = s.spawner.Rocks()

	chainCfg := s.cfg.Chain
	s.chain = NewChain(s.world, chainCfg, s.log)
	anchor := core.V(chainCfg.AnchorX, chainCfg.AnchorY)
	for i := 0; i <= chainCfg.InitialSegments; i++ {
		s.chain.Append(anchor.Add(core.V(float64(i)*chainCfg.SegmentLength, 0)), nil)
	}

	tailPos := s.world.Position(s.chain.Tail().Body)
	s.player = s.world.CreateBody(physics.BodyDef{
		Kind:        physics.KindPlayer,
		Position:    tailPos.Add(core.V(chainCfg.SegmentLength/2+s.cfg.Tether.RestLength, 0)),
		Shape:       physics.Circle(s.cfg.Player.Radius),
		Mass:        s.cfg.Player.Mass,
		FrictionAir: s.cfg.Player.AirFriction,
		Group:       s.chain.Group(),
	})
	s.world.SetFixedRotation(s.player)
	s.world.SetMass(s.player, s.cfg.Player.Mass)

	s.tether = NewTether(s.world, s.chain, s.player, s.cfg.Tether, s.log)
	s.controller = NewController(s.world, s.chain, s.tether, s.player, chainCfg)
	s.loco = NewLocomotion(s.world, s.player, s.cfg.Player)
	s.bridge = NewBridge(s.world, &s.state, s.countdown, s.cfg, s.log)

	for i := 0; i < s.cfg.Berries.Count; i++ {
		s.bridge.TrackBerry(s.spawner.Berry())
	}

	s.tether.Sync(true)
	s.peakSegments = s.chain.Len()
	s.world.OnContact(s.bridge.HandleContact)

	s.log.Debug("session created", "prior", p.PriorScore, "segments", s.chain.Len(), "berries", s.cfg.Berries.Count)
}

// Update advances the session by one tick: locomotion, shrink, growth,
// tether sync, spawns, physics step with contacts, then the countdown.
func (s *Session) Update(timeMs, deltaMs float64, in Input) {
	if !s.created || s.over {
		return
	}
	s.ticks++
	s.elapsedMs += deltaMs

	s.loco.Apply(in)
	s.controller.Update(in.Spool, in.Retract, timeMs)
	// The chain stays taut on the craft unless it is spooling out.
	s.tether.Sync(!in.Spool)
	if n := s.chain.Len(); n > s.peakSegments {
		s.peakSegments = n
	}

	s.updateSpiders(deltaMs)
	s.decayBerries(deltaMs)
	s.bridge.Repel(deltaMs)

	s.world.Step(deltaMs)

	for range s.bridge.Drain() {
		s.respawnBerry()
	}

	if s.countdown.Tick(deltaMs) {
		s.finish()
	}
}

func (s *Session) updateSpiders(deltaMs float64) {
	cfg := s.cfg.Spiders
	if !cfg.Enabled {
		return
	}
	spiders := s.bridge.Spiders()
	for _, body := range sortedBodies(spiders) {
		spider := spiders[body]
		spider.AgeMs += deltaMs
		if !spider.Active && spider.AgeMs >= cfg.ActivateMs {
			spider.Active = true
			// A contact that began while inactive is not reported again.
			if s.onRock(body) {
				s.bridge.rescue(body)
			}
		}
	}

	if len(spiders) >= cfg.MaxAlive {
		return
	}
	chance := s.difficulty.SpawnChance(cfg.SpawnChance, s.state.Score, s.elapsedMs)
	if s.rng.Float64() < chance {
		speed := s.difficulty.Speed(cfg.Speed, s.state.Score, s.elapsedMs)
		spider := s.spawner.Spider(speed)
		s.bridge.TrackSpider(spider)
		s.log.Debug("spider spawned", "alive", len(spiders))
	}
}

// rockSlop covers the overlap the solver leaves between resting shapes.
const rockSlop = 0.5

// onRock reports whether body touches any rock.
func (s *Session) onRock(body physics.Body) bool {
	p := s.world.Position(body)
	reach := s.cfg.Rocks.Radius + s.cfg.Spiders.Radius + rockSlop
	for _, rock := range s.rocks {
		if p.Dist(s.world.Position(rock)) <= reach {
			return true
		}
	}
	return false
}

func (s *Session) decayBerries(deltaMs float64) {
	rate := s.cfg.Berries.DecayPerSecond
	if rate <= 0 {
		return
	}
	berries := s.bridge.Berries()
	for _, body := range sortedBodies(berries) {
		berry := berries[body]
		berry.Health -= rate * deltaMs / 1000
		if berry.Health <= 0 {
			s.bridge.RemoveBerry(body)
			s.respawnBerry()
		}
	}
}

func (s *Session) respawnBerry() {
	if s.cfg.Berries.Respawn {
		s.bridge.TrackBerry(s.spawner.Berry())
	}
}

func (s *Session) finish() {
	s.over = true
	s.result = Result{
		Score:        s.state.Score,
		Rescues:      s.state.Rescues,
		Berries:      s.state.Collected,
		PeakSegments: s.peakSegments,
		DurationMs:   s.elapsedMs,
	}
	s.log.Debug("game over", "score", s.result.Score, "rescues", s.result.Rescues)
	s.Teardown()
}

// Teardown destroys every session body and constraint: the tether, then
// the chain from its free end, then everything else.
func (s *Session) Teardown() {
	if !s.created || s.torn {
		return
	}
	s.torn = true

	s.tether.Release()
	s.chain.Teardown()

	berries := s.bridge.Berries()
	for _, body := range sortedBodies(berries) {
		s.bridge.RemoveBerry(body)
	}
	spiders := s.bridge.Spiders()
	for _, body := range sortedBodies(spiders) {
		s.bridge.RemoveSpider(body)
	}

	s.world.DestroyBody(s.player)
	for _, b := range s.rocks {
		s.world.DestroyBody(b)
	}
	s.world.DestroyBody(s.collector)
	for _, b := range s.walls {
		s.world.DestroyBody(b)
	}
	s.log.Debug("session torn down")
}

// Result returns the final result once the countdown has expired.
func (s *Session) Result() (Result, bool) {
	return s.result, s.over
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.over
}

// State returns the live score state.
func (s *Session) State() State {
	return s.state
}

// CountdownMs returns the remaining time.
func (s *Session) CountdownMs() float64 {
	if s.countdown == nil {
		return 0
	}
	return s.countdown.Remaining()
}

// Timed reports whether the session has a countdown.
func (s *Session) Timed() bool {
	return s.countdown != nil && s.countdown.Timed()
}

// Chain returns the pontoon.
func (s *Session) Chain() *Chain {
	return s.chain
}

// Tether returns the grab coordinator.
func (s *Session) Tether() *Tether {
	return s.tether
}

// Player returns the craft body.
func (s *Session) Player() physics.Body {
	return s.player
}

// Rocks returns the rock bodies.
func (s *Session) Rocks() []physics.Body {
	return s.rocks
}

// Berries returns live berries in body order.
func (s *Session) Berries() []*Berry {
	berries := s.bridge.Berries()
	out := make([]*Berry, 0, len(berries))
	for _, body := range sortedBodies(berries) {
		out = append(out, berries[body])
	}
	return out
}

// Spiders returns live spiders in body order.
func (s *Session) Spiders() []*Spider {
	spiders := s.bridge.Spiders()
	out := make([]*Spider, 0, len(spiders))
	for _, body := range sortedBodies(spiders) {
		out = append(out, spiders[body])
	}
	return out
}

// World returns the physics world.
func (s *Session) World() physics.World {
	return s.world
}

// ElapsedMs returns the simulated time since Create.
func (s *Session) ElapsedMs() float64 {
	return s.elapsedMs
}

func sortedBodies[V any](m map[physics.Body]V) []physics.Body {
	out := make([]physics.Body, 0, len(m))
	for b := range m {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
