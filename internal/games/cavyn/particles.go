package cavyn

import (
	"math"

	"github.com/vovakirdan/cavyn/internal/core"
)

// maxSparks bounds the live spark population.
const maxSparks = 2048

// Motion is the movement rule of a spark.
type Motion interface {
	gravity() float64
	collides() bool
}

// Physical sparks fall under gravity and bounce off solids.
type Physical struct {
	Gravity float64
}

func (m Physical) gravity() float64 { return m.Gravity }
func (Physical) collides() bool { return true }

// Ballistic sparks fly straight through everything.
type Ballistic struct{}

func (Ballistic) gravity() float64 { return 0 }
func (Ballistic) collides() bool { return false }

// Spark is a short-lived particle in world pixels.
type Spark struct {
	X, Y     float64
	VX, VY   float64
	Size     float64
	Decay    float64
	Color    core.Color
	Motion   Motion
	Grounded bool
}

// Mote is a background parallax dot. Depth in (0, 1] scales how much of the
// world scroll it follows.
type Mote struct {
	X, Y  float64
	Depth float64
}

// spawnSpark appends a spark unless the population is full.
func (g *Game) spawnSpark(s Spark) {
	if len(g.sparks) >= maxSparks {
		return
	}
	g.sparks = append(g.sparks, s)
}

// burst emits n sparks from (x, y) in random directions.
func (g *Game) burst(x, y float64, n int, c core.Color, physical bool) {
	for i := 0; i < n; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := 0.5 + g.rng.Float64()*2.5
		s := Spark{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed,
			VY:    math.Sin(angle) * speed,
			Size:  2 + g.rng.Float64()*3,
			Decay: 0.05 + g.rng.Float64()*0.1,
			Color: c,
		}
		if physical {
			s.Motion = Physical{Gravity: 0.15}
		} else {
			s.Motion = Ballistic{}
		}
		g.spawnSpark(s)
	}
}

// directedBurst emits n sparks travelling along dir (+1 right, -1 left).
func (g *Game) directedBurst(x, y, dir float64, n int, c core.Color) {
	for i := 0; i < n; i++ {
		g.spawnSpark(Spark{
			X:      x,
			Y:      y,
			VX:     -dir * (1 + g.rng.Float64()*2),
			VY:     (g.rng.Float64() - 0.5) * 1.5,
			Size:   2 + g.rng.Float64()*2,
			Decay:  0.15,
			Color:  c,
			Motion: Ballistic{},
		})
	}
}

// updateParticles advances sparks. Physical sparks reflect off solid cells
// and walls with a factor of -0.7.
func (g *Game) updateParticles() {
	ts := g.run.TimeScale
	live := g.sparks[:0]
	for _, s := range g.sparks {
		if s.Motion == nil {
			s.Motion = Ballistic{}
		}
		if !s.Grounded {
			s.VY += s.Motion.gravity() * ts
		}
		nx, ny := s.X+s.VX*ts, s.Y+s.VY*ts

		if s.Motion.collides() {
			if g.solidAt(nx, s.Y) {
				s.VX *= -0.7
				nx = s.X
			}
			if g.solidAt(nx, ny) {
				s.VY *= -0.7
				ny = s.Y
				if math.Abs(s.VY) < 0.1 {
					s.VY = 0
					s.Grounded = true
				}
			}
			if s.Grounded {
				s.VX *= 0.9
			}
		}

		s.X, s.Y = core.Finite(nx), core.Finite(ny)
		s.Size -= s.Decay * ts
		if s.Size > 1 {
			live = append(live, s)
		}
	}
	// Drop stale references held past the live length.
	clear(g.sparks[len(live):])
	g.sparks = live
}

// solidAt reports whether the pixel lies in a solid cell.
func (g *Game) solidAt(x, y float64) bool {
	cx, cy := g.grid.CellAt(x, y)
	return g.grid.Solid(cx, cy)
}

// initMotes scatters the background dots over the display.
func (g *Game) initMotes() {
	n := g.cfg.World.Motes
	g.motes = make([]Mote, 0, n)
	for i := 0; i < n; i++ {
		g.motes = append(g.motes, Mote{
			X:     g.rng.Float64() * g.grid.PlayRight(),
			Y:     g.rng.Float64() * float64(g.cfg.World.DisplayH),
			Depth: 0.2 + g.rng.Float64()*0.6,
		})
	}
}

// moteScreenY returns a mote's vertical position on the display.
func (g *Game) moteScreenY(m Mote) float64 {
	h := float64(g.cfg.World.DisplayH)
	y := math.Mod(m.Y+g.run.Height*m.Depth, h)
	if y < 0 {
		y += h
	}
	return y
}
