package cavyn

import (
	"math"

	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

// deathCause names what killed the player, for logs.
type deathCause string

const (
	causeCrush deathCause = "crush"
	causeSpike deathCause = "spike"
)

// updateTileEffects burns fragile fuses and applies magnetic pull.
func (g *Game) updateTileEffects() {
	ts := g.run.TimeScale
	tile := float64(g.grid.TileSize())
	pc := g.cfg.Player
	top := -g.run.Height - tile
	bottom := top + tile + float64(g.cfg.World.DisplayH)

	for _, c := range g.grid.Coords() {
		t, _ := g.grid.Get(c.X, c.Y)
		x, y := g.grid.CellCenter(c.X, c.Y)

		if t.Armed() {
			t.Fuse.Remaining -= ts
			if g.rng.Intn(3) == 0 {
				g.spawnSpark(Spark{
					X:      float64(c.X)*tile + g.rng.Float64()*tile,
					Y:      float64(c.Y+1) * tile,
					VY:     0.3,
					Size:   2,
					Decay:  0.05,
					Color:  core.ColorOrange,
					Motion: Physical{Gravity: 0.1},
				})
			}
			if t.Fuse.Remaining <= 0 {
				g.grid.Remove(c.X, c.Y)
				g.burst(x, y, 20, core.ColorOrange, true)
			}
			continue
		}

		if t.Kind == world.KindMagnetic && !g.run.Dead && y >= top && y <= bottom {
			pull := core.ClampF((x-g.player.CenterX())/pc.MagnetDivisor, -pc.MagnetMax, pc.MagnetMax)
			g.player.VX += pull * ts
		}
	}
}

// resolveInteractions applies the effect of the tile under the player's feet.
func (g *Game) resolveInteractions() {
	p := &g.player
	if !p.Grounded {
		return
	}
	cx, cy := g.grid.CellAt(p.CenterX(), p.Box.Bottom()+0.5)
	t, ok := g.grid.Get(cx, cy)
	if !ok {
		return
	}
	pc := g.cfg.Player

	switch t.Kind {
	case world.KindFragile:
		if !t.Armed() {
			t.Fuse = &world.Fuse{Remaining: pc.FuseTicks}
			g.grid.Replace(cx, cy, t)
		}
	case world.KindBounce:
		p.VY = pc.BounceVelocity
		p.Jumps = p.MaxJumps
		p.Jumping = true
		p.Grounded = false
		g.gainCombo(g.cfg.Combo.Bounce)
		g.run.addShake(6)
		g.emit(SoundJump)
	case world.KindSpike:
		if g.kill(causeSpike) {
			p.VY = pc.BounceVelocity
			p.Jumping = true
			p.Grounded = false
		}
	case world.KindChest:
		g.grid.Replace(cx, cy, world.NewTile(world.KindOpenedChest))
		g.gainCombo(g.cfg.Combo.Chest)
		x, y := g.grid.CellCenter(cx, cy)
		g.burst(x, y, 40+g.rng.Intn(40), core.ColorBrightYellow, true)
		g.emit(SoundChestOpen)
		p.Jumps++
		p.VY = pc.ChestHopVelocity
		p.Jumping = true
		p.Grounded = false
		g.rollLoot(cx, cy)
	}
}

// kill handles a lethal contact. A shield absorbs it unless glass cannon is
// configured to bypass shields. It reports whether the player survived.
func (g *Game) kill(cause deathCause) bool {
	if g.run.Dead {
		return false
	}
	p := &g.player
	bypass := g.cfg.Rules.GlassCannonIgnoresShield && g.run.Perks.Has(PerkGlassCannon)
	if p.Shield && !bypass {
		p.Shield = false
		g.burst(p.CenterX(), p.CenterY(), 60, core.ColorBrightBlue, false)
		g.run.addShake(15)
		g.emit(SoundCollectItem)
		g.log.Debug("shield consumed", "cause", cause, "tick", g.run.Tick)
		return true
	}

	g.run.Dead = true
	g.run.DeadTicks = 0
	p.Charging = false
	p.Dash = 0
	p.VX, p.VY = 0, 0
	g.run.SlowHeld = false
	for i := 0; i < 380; i++ {
		angle := g.rng.Float64() * 2 * math.Pi
		speed := g.rng.Float64() * 4
		g.spawnSpark(Spark{
			X:      p.CenterX(),
			Y:      p.CenterY(),
			VX:     math.Cos(angle) * speed,
			VY:     math.Sin(angle)*speed - 1,
			Size:   2 + g.rng.Float64()*4,
			Decay:  0.03 + g.rng.Float64()*0.05,
			Color:  deathColors[i%len(deathColors)],
			Motion: Physical{Gravity: 0.12},
		})
	}
	g.run.addShake(12)
	g.emit(SoundDeath)
	g.log.Info("player died", "cause", cause, "coins", g.run.Coins, "tick", g.run.Tick)
	return false
}

var deathColors = []core.Color{core.ColorBrightRed, core.ColorOrange, core.ColorBrightYellow, core.ColorWhite}
