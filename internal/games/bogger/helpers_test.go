package bogger

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/bogger/internal/config"
	"github.com/vovakirdan/bogger/internal/core"
	"github.com/vovakirdan/bogger/internal/physics"
	"github.com/vovakirdan/bogger/internal/physics/physicstest"
)

// testConfig is the default config with a small, quiet playfield.
func testConfig() config.BoggerConfig {
	cfg := config.DefaultBoggerConfig()
	cfg.Berries.Count = 3
	cfg.Berries.GoldenChance = 0
	cfg.Spiders.Enabled = false
	cfg.Difficulty.Enabled = false
	return cfg
}

// rig is a chain with a craft and tether on a fake world.
type rig struct {
	world      *physicstest.World
	chain      *Chain
	tether     *Tether
	controller *Controller
	player     physics.Body
	cfg        config.ChainConfig
}

// newRig builds an anchor plus n segments laid out along +x, a craft just
// past the tail, and an engaged tether.
func newRig(t *testing.T, n, floor int) *rig {
	t.Helper()
	cfg := testConfig()
	cfg.Chain.Floor = floor

	w := physicstest.New()
	chain := NewChain(w, cfg.Chain, nil)
	for i := 0; i <= n; i++ {
		chain.Append(core.V(100+float64(i)*cfg.Chain.SegmentLength, 100), nil)
	}
	player := w.CreateBody(physics.BodyDef{
		Kind:     physics.KindPlayer,
		Position: w.Position(chain.Tail().Body).Add(core.V(40, 0)),
		Mass:     cfg.Player.Mass,
		Group:    chain.Group(),
	})
	tether := NewTether(w, chain, player, cfg.Tether, nil)
	tether.Sync(true)

	return &rig{
		world:      w,
		chain:      chain,
		tether:     tether,
		controller: NewController(w, chain, tether, player, cfg.Chain),
		player:     player,
		cfg:        cfg.Chain,
	}
}

func near(a, b core.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func countPrefix(ops []string, prefix string) int {
	n := 0
	for _, op := range ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func indexOf(ops []string, prefix string) int {
	for i, op := range ops {
		if strings.HasPrefix(op, prefix) {
			return i
		}
	}
	return -1
}

func lastIndexOf(ops []string, prefix string) int {
	for i := len(ops) - 1; i >= 0; i-- {
		if strings.HasPrefix(ops[i], prefix) {
			return i
		}
	}
	return -1
}
