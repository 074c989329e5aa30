package bogger

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/bogger/internal/core"
)

func TestRetractScenario(t *testing.T) {
	// Ten segments plus the anchor, floor 3, retract held on five ticks 130ms apart.
	r := newRig(t, 10, 3)
	if r.chain.Len() != 11 {
		t.Fatalf("Len() = %d, expected 11", r.chain.Len())
	}
	r.world.ResetOps()

	for i := 0; i < 5; i++ {
		now := float64(i) * 130
		before := r.chain.Len()
		_, shrank := r.controller.Update(false, true, now)
		if !shrank || r.chain.Len() != before-1 {
			t.Fatalf("tick %d: shrank = %v, Len() = %d, expected %d", i, shrank, r.chain.Len(), before-1)
		}
		if d := r.world.DanglingJoints(); len(d) != 0 {
			t.Fatalf("tick %d: dangling joints %v", i, d)
		}
		e, ok := r.tether.State().(Engaged)
		if !ok || e.Tail != r.chain.Tail().Body {
			t.Fatalf("tick %d: tether = %+v, expected engaged on new tail", i, r.tether.State())
		}
	}

	if r.chain.Len() != 6 {
		t.Errorf("Len() = %d, expected 6", r.chain.Len())
	}

	// Every decrement is: release tether, remove joint, destroy tail, engage tether.
	ops := r.world.Ops()
	if len(ops) != 20 {
		t.Fatalf("Ops() = %v, expected 20 entries", ops)
	}
	pattern := []string{"joint- ", "joint- ", "destroy segment", "joint+ "}
	for i, op := range ops {
		if !strings.HasPrefix(op, pattern[i%4]) {
			t.Errorf("op %d = %q, expected prefix %q", i, op, pattern[i%4])
		}
	}
}

func TestRetractCooldown(t *testing.T) {
	r := newRig(t, 10, 3)

	tests := []struct {
		now  float64
		want int
	}{
		{0, 10},
		{50, 10},
		{119.9, 10},
		{120, 9},
		{200, 9},
		{240, 8},
	}

	for _, tt := range tests {
		r.controller.Update(false, true, tt.now)
		if got := r.chain.Len(); got != tt.want {
			t.Errorf("at %vms Len() = %d, expected %d", tt.now, got, tt.want)
		}
	}
}

func TestRetractStopsAtFloor(t *testing.T) {
	r := newRig(t, 4, 3)
	for i := 0; i < 10; i++ {
		r.controller.Update(false, true, float64(i)*200)
	}
	if r.chain.Len() != 3 {
		t.Errorf("Len() = %d, expected floor 3", r.chain.Len())
	}
	if !r.tether.Engaged() {
		t.Error("tether not engaged after retracting")
	}
}

func TestRetractNotHeld(t *testing.T) {
	r := newRig(t, 5, 3)
	r.world.ResetOps()
	if _, shrank := r.controller.Update(false, false, 1000); shrank {
		t.Error("shrank without retract")
	}
	if len(r.world.Ops()) != 0 {
		t.Errorf("Ops() = %v, expected none", r.world.Ops())
	}
}

func TestGrowthThreshold(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		extend   bool
		grows    bool
	}{
		{"far while spooling", 200, true, true},
		{"just beyond threshold", 65.01, true, true},
		{"at threshold", 65, true, false},
		{"close", 40, true, false},
		{"far without spooling", 200, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, 2, 1)
			tailPos := r.world.Position(r.chain.Tail().Body)
			r.world.SetPosition(r.player, tailPos.Add(core.V(tt.distance, 0)))

			before := r.chain.Len()
			grew, _ := r.controller.Update(tt.extend, false, 0)
			if grew != tt.grows {
				t.Errorf("grew = %v, expected %v", grew, tt.grows)
			}
			want := before
			if tt.grows {
				want++
			}
			if r.chain.Len() != want {
				t.Errorf("Len() = %d, expected %d", r.chain.Len(), want)
			}
		})
	}
}

func TestGrowthPlacesSegmentTowardPlayer(t *testing.T) {
	r := newRig(t, 2, 1)
	tail := r.chain.Tail()
	tailPos := r.world.Position(tail.Body)
	r.world.SetPosition(r.player, tailPos.Add(core.V(0, 300)))

	r.controller.Update(true, false, 0)

	seg := r.chain.Tail()
	if seg == tail {
		t.Fatal("no segment appended")
	}
	if got, want := r.world.Position(seg.Body), tailPos.Add(core.V(0, r.cfg.SegmentLength)); !near(got, want) {
		t.Errorf("Position() = %v, expected %v", got, want)
	}
	if got := r.world.Angle(seg.Body); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("Angle() = %v, expected pi/2", got)
	}
	def, _ := r.world.Joint(seg.Joint)
	if def.A != tail.Body || def.B != seg.Body {
		t.Errorf("joint links %d-%d, expected %d-%d", def.A, def.B, tail.Body, seg.Body)
	}
}

func TestGrowthAtMostOnePerTick(t *testing.T) {
	r := newRig(t, 1, 1)
	tailPos := r.world.Position(r.chain.Tail().Body)
	r.world.SetPosition(r.player, tailPos.Add(core.V(1000, 0)))

	for tick := 1; tick <= 10; tick++ {
		before := r.chain.Len()
		r.controller.Update(true, false, float64(tick)*16)
		if got := r.chain.Len(); got != before+1 {
			t.Fatalf("tick %d: Len() = %d, expected %d", tick, got, before+1)
		}
	}
}

func TestShrinkBeforeGrowth(t *testing.T) {
	r := newRig(t, 5, 3)
	tailPos := r.world.Position(r.chain.Tail().Body)
	r.world.SetPosition(r.player, tailPos.Add(core.V(1000, 0)))

	grew, shrank := r.controller.Update(true, true, 0)
	if !grew || !shrank {
		t.Fatalf("grew, shrank = %v, %v, expected both", grew, shrank)
	}
	// Removed one, then appended one from the new tail.
	if r.chain.Len() != 6 {
		t.Errorf("Len() = %d, expected 6", r.chain.Len())
	}
	if d := r.world.DanglingJoints(); len(d) != 0 {
		t.Errorf("dangling joints %v", d)
	}
}
