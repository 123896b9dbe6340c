package cavyn

import (
	"math"

	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

// FallingTile is an unplaced tile descending in pixel space.
type FallingTile struct {
	X, Y   float64
	Column int
	Kind   world.Kind
	Grazed bool

	removed bool
}

// Box returns the tile rectangle for a tile edge of ts pixels.
func (f *FallingTile) Box(ts int) core.Box {
	return core.NewBox(f.X, f.Y, float64(ts), float64(ts))
}

// updateFalling moves falling tiles, resolves grazes, hits and dash
// destruction against the player's box from the previous tick, and lands
// tiles onto their column.
func (g *Game) updateFalling() {
	ts := g.grid.TileSize()
	tsf := float64(ts)
	frozen := g.run.Freeze > 0
	pbox := g.player.Box

	for _, f := range g.falling {
		if f.removed {
			continue
		}
		if !frozen {
			f.Y += g.cfg.Falling.Speed * g.run.TimeScale
		}
		box := f.Box(ts)

		if !g.run.Dead {
			if g.player.Dash > 0 && pbox.Overlaps(box) {
				g.dashDestroy(f)
				continue
			}
			if pbox.Overlaps(box) {
				if g.kill(causeCrush) {
					g.removeFalling(f)
					g.shatter(f)
					continue
				}
			} else if g.player.Dash <= 0 && !f.Grazed && pbox.Inflate(g.cfg.Falling.GrazeMargin).Overlaps(box) {
				f.Grazed = true
				g.gainCombo(g.cfg.Falling.GrazeCombo)
			}
		}

		if frozen {
			continue
		}

		cellY := int(math.Floor((f.Y + tsf) / tsf))
		if !g.grid.Solid(f.Column, cellY) {
			continue
		}
		if t, ok := g.grid.Get(f.Column, cellY); ok && t.Kind == world.KindGreed {
			g.grid.Remove(f.Column, cellY)
			g.greedBurst(f.Column, cellY)
			continue
		}
		g.land(f, cellY)
		g.removeFalling(f)
	}
	g.compactFalling()
}

// land places f on top of the cell at cellY.
func (g *Game) land(f *FallingTile, cellY int) {
	if t, ok := g.grid.Get(f.Column, cellY); ok && t.Kind == world.KindChest {
		g.grid.Replace(f.Column, cellY, world.NewTile(world.KindNormal))
		cx, cy := g.grid.CellCenter(f.Column, cellY)
		g.burst(cx, cy, 40, core.ColorYellow, true)
		g.emit(SoundChestDestroy)
	}
	g.grid.Set(f.Column, cellY-1, world.NewTile(f.Kind))
	g.emit(SoundBlockLand)
	if !g.run.Dead && core.Abs(f.Column-g.playerColumn()) <= g.cfg.Falling.ShakeColumns {
		g.run.addShake(4)
	}
}

// greedBurst spawns the coin fountain of a consumed greed tile.
func (g *Game) greedBurst(cx, cy int) {
	x, y := g.grid.CellCenter(cx, cy)
	lo, hi := g.cfg.Falling.GreedCoinsMin, g.cfg.Falling.GreedCoinsMax
	n := lo + g.rng.Intn(core.Max(1, hi-lo+1))
	for i := 0; i < n; i++ {
		g.spawnItem(ItemCoin, x, y, (g.rng.Float64()-0.5)*3, -2-g.rng.Float64()*2.5)
	}
	g.burst(x, y, 24, core.ColorYellow, true)
	g.emit(SoundChestDestroy)
}

// dashDestroy breaks a tile the dashing player ran through.
func (g *Game) dashDestroy(f *FallingTile) {
	g.removeFalling(f)
	g.addCoins(g.cfg.Falling.DashCoins)
	g.gainCombo(g.cfg.Falling.DashCombo)
	g.shatter(f)
	g.bus.DashHit(&DashHit{Tile: f})
}

// chainDestroy breaks every falling tile overlapping src inflated by a tile.
func (g *Game) chainDestroy(src *FallingTile) {
	ts := g.grid.TileSize()
	reach := src.Box(ts).Inflate(float64(ts))
	for _, f := range g.falling {
		if f.removed || f == src || !reach.Overlaps(f.Box(ts)) {
			continue
		}
		g.removeFalling(f)
		g.addCoins(g.cfg.Falling.ChainCoins)
		g.shatter(f)
	}
}

// shatter emits the destruction burst of a falling tile.
func (g *Game) shatter(f *FallingTile) {
	ts := float64(g.grid.TileSize())
	g.burst(f.X+ts/2, f.Y+ts/2, 20+g.rng.Intn(20), g.kindColor(f.Kind), true)
	g.emit(SoundChestDestroy)
}

// removeFalling marks f for deletion at the end of the pass.
func (g *Game) removeFalling(f *FallingTile) {
	f.removed = true
}

// compactFalling drops removed tiles, preserving order.
func (g *Game) compactFalling() {
	kept := g.falling[:0]
	for _, f := range g.falling {
		if !f.removed {
			kept = append(kept, f)
		}
	}
	clear(g.falling[len(kept):])
	g.falling = kept
}
