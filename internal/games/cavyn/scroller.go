package cavyn

import (
	"math"
)

// updateScroller starts a one-tile scroll when a row is full and eases the
// world height toward the target. On arrival the grid floor rises one row.
func (g *Game) updateScroller() {
	r := &g.run
	wc := g.cfg.World
	ts := float64(wc.Tile)

	if !r.Scrolling {
		if _, ok := g.grid.FullRow(); !ok {
			return
		}
		r.TargetHeight = math.Floor(r.Height/ts)*ts + ts
		r.Scrolling = true
		g.log.Debug("scroll started", "target", r.TargetHeight)
	}

	r.Height += (r.TargetHeight - r.Height) * wc.ScrollLerp
	if math.Abs(r.TargetHeight-r.Height) >= wc.ScrollSnap {
		return
	}
	r.Height = r.TargetHeight
	r.Scrolling = false
	removed := g.grid.Scroll()
	g.liftAboveFloor()
	g.log.Debug("scrolled", "height", r.Height, "floor", g.grid.Floor(), "removed", removed)
}

// liftAboveFloor moves items and the player out of the new bedrock row.
func (g *Game) liftAboveFloor() {
	floorY := float64(g.grid.Floor() * g.grid.TileSize())
	for _, it := range g.items {
		if it.Box.Bottom() > floorY {
			it.Box.Y = floorY - it.Box.H
			it.VY = 0
		}
	}
	if p := &g.player; p.Box.Bottom() > floorY {
		p.Box.Y = floorY - p.Box.H
		p.VY = 0
	}
	live := g.sparks[:0]
	for _, s := range g.sparks {
		if s.Y < floorY {
			live = append(live, s)
		}
	}
	clear(g.sparks[len(live):])
	g.sparks = live
}
