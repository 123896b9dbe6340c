package cavyn

import (
	"github.com/vovakirdan/cavyn/internal/core"
)

// projectileSize is the edge of a projectile box in pixels.
const projectileSize = 4

// Projectile is a player-fired shot.
type Projectile struct {
	Body
	Pierce int
	Age    float64
}

// fire launches a projectile upward, downward or along the facing.
func (g *Game) fire(up, down bool) {
	pc := g.cfg.Projectiles
	if len(g.projectiles) >= pc.MaxActive {
		return
	}
	p := &g.player
	vx, vy := p.Facing*pc.Speed, 0.0
	switch {
	case up && !down:
		vx, vy = 0, -pc.Speed
	case down && !up:
		vx, vy = 0, pc.Speed
	}
	pr := &Projectile{
		Body: Body{
			Box: core.NewBox(p.CenterX()-projectileSize/2, p.CenterY()-projectileSize/2, projectileSize, projectileSize),
			VX:  vx,
			VY:  vy,
		},
		Pierce: pc.Pierce,
	}
	g.bus.Projectile(pr)
	g.projectiles = append(g.projectiles, pr)
}

// updateProjectiles moves shots, breaks falling tiles they touch and retires
// shots that hit the grid, a wall or run out of time.
func (g *Game) updateProjectiles() {
	ts := g.run.TimeScale
	tile := g.grid.TileSize()
	lifetime := float64(g.cfg.Projectiles.Lifetime)
	live := g.projectiles[:0]

	for _, pr := range g.projectiles {
		pr.Age += ts
		pr.Box = pr.Box.Offset(pr.VX*ts, pr.VY*ts)
		pr.sanitize()

		for _, f := range g.falling {
			if pr.Pierce <= 0 {
				break
			}
			if f.removed || !pr.Box.Overlaps(f.Box(tile)) {
				continue
			}
			g.removeFalling(f)
			g.shatter(f)
			pr.Pierce--
			g.addCoins(1)
			g.gainCombo(g.cfg.Combo.Projectile)
		}

		if pr.Pierce <= 0 || pr.Age > lifetime || g.projectileBlocked(pr) {
			continue
		}
		live = append(live, pr)
	}
	clear(g.projectiles[len(live):])
	g.projectiles = live
	g.compactFalling()
}

// projectileBlocked reports contact with a grid solid or a wall.
func (g *Game) projectileBlocked(pr *Projectile) bool {
	for _, s := range g.solidsAround(pr.Box) {
		if pr.Box.Overlaps(s) {
			return true
		}
	}
	return false
}
