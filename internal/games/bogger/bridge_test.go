package bogger

import (
	"testing"

	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
	"github.com/vovakirdan/bogger/internal/physics/physicstest"
)

type bridgeRig struct {
	world     *physicstest.World
	bridge    *Bridge
	state     *State
	countdown *Countdown
	spawner   *Spawner
	collector physics.Body
	rock      physics.Body
}

func newBridgeRig(t *testing.T) *bridgeRig {
	t.Helper()
	cfg := testConfig()
	w := physicstest.New()
	state := &State{}
	countdown := NewCountdown(90000)
	b := NewBridge(w, state, countdown, cfg, nil)
	w.OnContact(b.HandleContact)
	sp := NewSpawner(w, NewSimpleRNG(1), cfg)
	return &bridgeRig{
		world:     w,
		bridge:    b,
		state:     state,
		countdown: countdown,
		spawner:   sp,
		collector: sp.Collector(),
		rock:      sp.Rocks()[0],
	}
}

func TestBridgeBerryScoresValue(t *testing.T) {
	r := newBridgeRig(t)
	berry := r.spawner.BerryAt(core.V(300, 300), 10)
	r.bridge.TrackBerry(berry)

	r.world.Inject(r.collector, berry.Body)
	r.world.Step(16)

	if r.state.Score != 10 {
		t.Errorf("Score = %d, expected 10", r.state.Score)
	}
	if r.world.Exists(berry.Body) {
		t.Error("berry body still exists")
	}
	if _, ok := r.bridge.Berry(berry.Body); ok {
		t.Error("berry still tracked")
	}
	if got := r.bridge.Drain(); len(got) != 1 || got[0] != berry {
		t.Errorf("Drain() = %v, expected the collected berry", got)
	}
	if got := r.bridge.Drain(); len(got) != 0 {
		t.Errorf("second Drain() = %v, expected empty", got)
	}
}

func TestBridgeSpiderPenaltyClamps(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"above penalty", 12, 7},
		{"equal to penalty", 5, 0},
		{"below penalty", 3, 0},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newBridgeRig(t)
			r.state.Score = tt.score
			spider := r.spawner.SpiderAt(core.V(400, 30), core.Vec{})
			r.bridge.TrackSpider(spider)

			r.world.Inject(spider.Body, r.collector)
			r.world.Step(16)

			if r.state.Score != tt.want {
				t.Errorf("Score = %d, expected %d", r.state.Score, tt.want)
			}
			if r.world.Exists(spider.Body) {
				t.Error("spider body still exists")
			}
		})
	}
}

func TestBridgeSpiderRescue(t *testing.T) {
	r := newBridgeRig(t)
	r.state.Score = 4
	spider := r.spawner.SpiderAt(core.V(120, 450), core.Vec{})
	spider.Active = true
	r.bridge.TrackSpider(spider)
	before := r.countdown.Remaining()

	r.world.Inject(r.rock, spider.Body)
	r.world.Step(16)

	if r.state.Rescues != 1 {
		t.Errorf("Rescues = %d, expected 1", r.state.Rescues)
	}
	if got := r.countdown.Remaining() - before; got != 5000 {
		t.Errorf("countdown gained %v, expected 5000", got)
	}
	if r.state.Score != 4 {
		t.Errorf("Score = %d, expected unchanged 4", r.state.Score)
	}
	if r.world.Exists(spider.Body) {
		t.Error("spider body still exists")
	}
}

func TestBridgeInactiveSpiderNotRescued(t *testing.T) {
	r := newBridgeRig(t)
	spider := r.spawner.SpiderAt(core.V(120, 450), core.Vec{})
	r.bridge.TrackSpider(spider)

	r.world.Inject(spider.Body, r.rock)
	r.world.Step(16)

	if r.state.Rescues != 0 || !r.world.Exists(spider.Body) {
		t.Errorf("Rescues = %d, exists = %v, expected no rescue", r.state.Rescues, r.world.Exists(spider.Body))
	}
}

func TestBridgeIgnoresOtherContacts(t *testing.T) {
	r := newBridgeRig(t)
	player := r.world.CreateBody(physics.BodyDef{Kind: physics.KindPlayer, Mass: 1})
	berry := r.spawner.BerryAt(core.V(300, 300), 1)
	r.bridge.TrackBerry(berry)

	r.world.Inject(player, r.collector)
	r.world.Inject(berry.Body, r.rock)
	r.world.Inject(player, berry.Body)
	r.world.Step(16)

	if *r.state != (State{}) {
		t.Errorf("State = %+v, expected untouched", *r.state)
	}
	if !r.world.Exists(player) || !r.world.Exists(berry.Body) {
		t.Error("bodies destroyed by non-scoring contacts")
	}
}

func TestBridgeDuplicateContactScoresOnce(t *testing.T) {
	r := newBridgeRig(t)
	berry := r.spawner.BerryAt(core.V(300, 300), 2)
	r.bridge.TrackBerry(berry)

	r.world.Inject(r.collector, berry.Body)
	r.world.Inject(berry.Body, r.collector)
	r.world.Step(16)

	if r.state.Score != 2 || r.state.Collected != 1 {
		t.Errorf("Score/Collected = %d/%d, expected 2/1", r.state.Score, r.state.Collected)
	}
}

func TestRepelForce(t *testing.T) {
	const w, h, margin, mag = 800.0, 600.0, 20.0, 5.0

	tests := []struct {
		name string
		p    core.Vec
		want core.Vec
	}{
		{"middle", core.V(400, 300), core.V(0, 0)},
		{"left edge", core.V(5, 300), core.V(5, 0)},
		{"right edge", core.V(795, 300), core.V(-5, 0)},
		{"top edge", core.V(400, 10), core.V(0, 5)},
		{"bottom edge", core.V(400, 590), core.V(0, -5)},
		{"corner", core.V(5, 595), core.V(5, -5)},
		{"on margin", core.V(20, 300), core.V(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RepelForce(tt.p, w, h, margin, mag); got != tt.want {
				t.Errorf("RepelForce(%v) = %v, expected %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestBridgeRepelScalesWithDelta(t *testing.T) {
	r := newBridgeRig(t)
	edge := r.spawner.BerryAt(core.V(2, 300), 1)
	middle := r.spawner.BerryAt(core.V(400, 300), 1)
	r.bridge.TrackBerry(edge)
	r.bridge.TrackBerry(middle)

	r.bridge.Repel(10)

	want := testConfig().Playfield.RepelForcePerMs * 10
	if got := r.world.Force(edge.Body); got.X != want || got.Y != 0 {
		t.Errorf("edge berry force = %v, expected (%v,0)", got, want)
	}
	if got := r.world.Force(middle.Body); got != (core.Vec{}) {
		t.Errorf("middle berry force = %v, expected zero", got)
	}
}

func TestStatePenalize(t *testing.T) {
	s := State{Score: 2}
	s.Penalize(5)
	if s.Score != 0 {
		t.Errorf("Score = %d, expected 0", s.Score)
	}
	s.AddScore(3)
	if s.Score != 3 {
		t.Errorf("Score = %d, expected 3", s.Score)
	}
}
