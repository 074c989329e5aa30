package bogger

import (
	"fmt"
	"math"

	"github.com/vovakirdan/bogger/internal/core"
)

// Visual characters for rendering
const (
	AnchorChar    = '█'
	SegmentChar   = '■'
	RopeChar      = '·'
	TetherChar    = ':'
	PlayerChar    = '@'
	BerryChar     = '●'
	GoldenChar    = '◆'
	SpiderChar    = 'ж'
	RockChar      = '▓'
	CollectorChar = '░'
)

// Minimum terminal size for a readable playfield
const (
	MinScreenW = 32
	MinScreenH = 12
)

// viewport maps world coordinates onto the screen area below the HUD row.
type viewport struct {
	x, y, w, h int
	worldW     float64
	worldH     float64
}

func newViewport(dst *core.Screen, worldW, worldH float64) viewport {
	// Border occupies the outer ring; HUD takes row 0.
	return viewport{
		x:      1,
		y:      2,
		w:      dst.Width() - 2,
		h:      dst.Height() - 3,
		worldW: worldW,
		worldH: worldH,
	}
}

func (v viewport) cell(p core.Vec) (int, int) {
	cx := v.x + int(p.X/v.worldW*float64(v.w))
	cy := v.y + int(p.Y/v.worldH*float64(v.h))
	return core.Clamp(cx, v.x, v.x+v.w-1), core.Clamp(cy, v.y, v.y+v.h-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	s := g.session
	v := newViewport(dst, g.cfg.Playfield.Width, g.cfg.Playfield.Height)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1), core.ColorBlue)

	g.drawHUD(dst)

	if s.Over() {
		r, _ := s.Result()
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  Rescues: %d  Berries: %d", r.Score, r.Rescues, r.Berries),
			"R restart  C continue  Q quit")
		return
	}

	g.drawCollector(dst, v)
	g.drawRocks(dst, v)
	g.drawChain(dst, v)
	g.drawEntities(dst, v)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume", "")
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	st := g.session.State()
	text := fmt.Sprintf(" Score: %d  Rescues: %d  Pontoon: %d ", st.Score, st.Rescues, g.session.Chain().Len())
	dst.DrawTextColor(1, 0, text, core.ColorBrightYellow)

	var clock string
	if g.session.Timed() {
		secs := int(math.Ceil(g.session.CountdownMs() / 1000))
		clock = fmt.Sprintf(" %02d:%02d ", secs/60, secs%60)
	} else {
		clock = " SANDBOX "
	}
	color := core.ColorBrightCyan
	if g.session.Timed() && g.session.CountdownMs() < 10000 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(dst.Width()-len(clock)-1, 0, clock, color)
}

func (g *Game) drawCollector(dst *core.Screen, v viewport) {
	b := collectorBounds(g.cfg.Collector)
	x0, y0 := v.cell(b.Min)
	x1, y1 := v.cell(b.Max)
	dst.DrawRect(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), CollectorChar, core.ColorYellow)
	label := "BUCKET"
	if x1-x0+1 >= len(label) {
		dst.DrawTextColor(x0+(x1-x0+1-len(label))/2, y0, label, core.ColorBrightYellow)
	}
}

func (g *Game) drawRocks(dst *core.Screen, v viewport) {
	world := g.session.World()
	r := g.cfg.Rocks.Radius
	for _, rock := range g.session.Rocks() {
		c := world.Position(rock)
		x0, y0 := v.cell(c.Sub(core.V(r, r)))
		x1, y1 := v.cell(c.Add(core.V(r, r)))
		cx, cy := float64(x0+x1)/2, float64(y0+y1)/2
		rx, ry := math.Max(float64(x1-x0)/2, 0.5), math.Max(float64(y1-y0)/2, 0.5)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dx, dy := (float64(x)-cx)/rx, (float64(y)-cy)/ry
				if dx*dx+dy*dy <= 1.2 {
					dst.SetColor(x, y, RockChar, core.ColorGray)
				}
			}
		}
	}
}

func (g *Game) drawChain(dst *core.Screen, v viewport) {
	s := g.session
	world := s.World()
	pts := s.Chain().Positions()

	for i := 1; i < len(pts); i++ {
		x0, y0 := v.cell(pts[i-1])
		x1, y1 := v.cell(pts[i])
		dst.DrawLine(x0, y0, x1, y1, RopeChar, core.ColorCyan)
	}
	if e, ok := s.Tether().State().(Engaged); ok && world.Exists(e.Tail) {
		x0, y0 := v.cell(world.Position(e.Tail))
		x1, y1 := v.cell(world.Position(s.Player()))
		dst.DrawLine(x0, y0, x1, y1, TetherChar, core.ColorGray)
	}
	for i, p := range pts {
		x, y := v.cell(p)
		if i == 0 {
			dst.SetColor(x, y, AnchorChar, core.ColorWhite)
		} else {
			dst.SetColor(x, y, SegmentChar, core.ColorBrightCyan)
		}
	}
}

func (g *Game) drawEntities(dst *core.Screen, v viewport) {
	s := g.session
	world := s.World()

	for _, berry := range s.Berries() {
		x, y := v.cell(world.Position(berry.Body))
		if berry.Value > g.cfg.Berries.Value {
			dst.SetColor(x, y, GoldenChar, core.ColorBrightYellow)
		} else {
			dst.SetColor(x, y, BerryChar, core.ColorRed)
		}
	}
	for _, spider := range s.Spiders() {
		x, y := v.cell(world.Position(spider.Body))
		color := core.ColorGray
		if spider.Active {
			color = core.ColorMagenta
		}
		dst.SetColor(x, y, SpiderChar, color)
	}

	x, y := v.cell(world.Position(s.Player()))
	dst.SetColor(x, y, PlayerChar, core.ColorBrightGreen)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle, hint string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle)), len([]rune(hint))) + 4
	boxH := 5
	if hint != "" {
		boxH = 6
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
	if hint != "" {
		dst.DrawTextColor(boxX+(boxW-len([]rune(hint)))/2, boxY+4, hint, core.ColorGray)
	}
}
