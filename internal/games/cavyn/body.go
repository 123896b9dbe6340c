package cavyn

import (
	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

// Body is a movable axis-aligned box with a velocity in pixels per tick.
// The player, items and projectiles embed one.
type Body struct {
	Box    core.Box
	VX, VY float64
}

// CenterX returns the horizontal centre.
func (b *Body) CenterX() float64 { return b.Box.CenterX() }

// CenterY returns the vertical centre.
func (b *Body) CenterY() float64 { return b.Box.CenterY() }

// sanitize zeroes any non-finite scalar. It reports whether one was found.
func (b *Body) sanitize() bool {
	bad := false
	for _, p := range []*float64{&b.Box.X, &b.Box.Y, &b.VX, &b.VY} {
		if core.Finite(*p) != *p {
			*p = 0
			bad = true
		}
	}
	return bad
}

// move resolves the body against solids for one tick scaled by ts.
func (b *Body) move(ts float64, solids []core.Box) world.Contacts {
	box, c := world.Resolve(b.Box, b.VX*ts, b.VY*ts, solids)
	b.Box = box
	return c
}

// solidsAround collects wall rectangles and the grid cells around a box.
func (g *Game) solidsAround(box core.Box) []core.Box {
	solids := g.grid.Walls()
	return append(solids, g.grid.SolidsNear(box.CenterX(), box.CenterY())...)
}
