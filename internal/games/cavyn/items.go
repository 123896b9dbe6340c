package cavyn

import (
	"math"

	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

// ItemKind identifies a pickup.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemCoin
	ItemCube
	ItemWarp
	ItemJump
	ItemBomb
	ItemFreeze
	ItemShield
)

var itemNames = [...]string{
	ItemNone:   "none",
	ItemCoin:   "coin",
	ItemCube:   "cube",
	ItemWarp:   "warp",
	ItemJump:   "jump",
	ItemBomb:   "bomb",
	ItemFreeze: "freeze",
	ItemShield: "shield",
}

func (k ItemKind) String() string {
	if int(k) >= len(itemNames) {
		return "unknown"
	}
	return itemNames[k]
}

// lootTable is the chest item pool.
var lootTable = []ItemKind{ItemWarp, ItemCube, ItemJump, ItemBomb, ItemFreeze, ItemShield}

// itemSize is the edge of an item box in pixels.
const itemSize = 6

// Item is a pickup with simple physics.
type Item struct {
	Body
	Kind ItemKind
	Age  float64
}

// spawnItem drops an item centred on (x, y).
func (g *Game) spawnItem(k ItemKind, x, y, vx, vy float64) *Item {
	it := &Item{
		Body: Body{
			Box: core.NewBox(x-itemSize/2, y-itemSize/2, itemSize, itemSize),
			VX:  vx,
			VY:  vy,
		},
		Kind: k,
	}
	g.items = append(g.items, it)
	return it
}

// updateItems integrates item physics and collects items the player touches.
func (g *Game) updateItems() {
	ic := g.cfg.Items
	ts := g.run.TimeScale
	magnet := g.level(upgradeCoinMagnet)
	live := g.items[:0]

	for _, it := range g.items {
		it.Age += ts
		it.VY = math.Min(it.VY+ic.Gravity*ts, ic.MaxFall)
		it.VX = approach(it.VX, 0, ic.Friction*ts)

		if it.Kind == ItemCoin && magnet > 0 && !g.run.Dead {
			lv := float64(magnet)
			dx := g.player.CenterX() - it.CenterX()
			dy := g.player.CenterY() - it.CenterY()
			if d := math.Hypot(dx, dy); d > 0 && d <= ic.MagnetRange+ic.MagnetRangePerLevel*lv {
				a := (ic.MagnetAccel + ic.MagnetAccelPerLevel*lv) * ts
				it.VX += dx / d * a
				it.VY += dy / d * a
			}
		}

		c := it.move(ts, g.solidsAround(it.Box))
		if c.Bottom || c.Top {
			it.VY = 0
		}
		if c.Wall() {
			it.VX = -it.VX * 0.5
		}
		it.sanitize()

		if !g.run.Dead && it.Age > float64(ic.PickupAge) && it.Box.Overlaps(g.player.Box) {
			g.collect(it)
			continue
		}
		live = append(live, it)
	}
	clear(g.items[len(live):])
	g.items = live
}

// collect applies a picked-up item.
func (g *Game) collect(it *Item) {
	switch it.Kind {
	case ItemCoin:
		g.awardCoins(1)
		g.gainCombo(g.cfg.Combo.Coin)
		g.emit(SoundCoin)
	case ItemShield:
		g.player.Shield = true
		g.emit(SoundCollectItem)
	default:
		g.player.Item = it.Kind
		g.emit(SoundCollectItem)
	}
}

// rollLoot fills an opened chest's yield: an item with the luck-adjusted
// chance, otherwise a handful of coins.
func (g *Game) rollLoot(cx, cy int) {
	ic := g.cfg.Items
	x, y := g.grid.CellCenter(cx, cy)
	y -= float64(g.grid.TileSize())

	chance := ic.ItemChance + ic.ItemLuckBonus*float64(g.level(upgradeItemLuck))
	if g.rng.Float64() < chance {
		k := lootTable[g.rng.Intn(len(lootTable))]
		g.spawnItem(k, x, y, 0, -2.5)
		return
	}

	n := ic.ChestCoinsMin + g.rng.Intn(core.Max(1, ic.ChestCoinsMax-ic.ChestCoinsMin+1))
	loot := Loot{Coins: n}
	g.bus.Loot(&loot)
	for i := 0; i < loot.Coins; i++ {
		g.spawnItem(ItemCoin, x, y, (g.rng.Float64()-0.5)*2.5, -1.5-g.rng.Float64()*2)
	}
}

// useItem consumes the held item.
func (g *Game) useItem() {
	p := &g.player
	k := p.Item
	if k == ItemNone {
		return
	}
	p.Item = ItemNone
	g.log.Debug("item used", "item", k, "tick", g.run.Tick)

	switch k {
	case ItemWarp:
		g.warp()
	case ItemJump:
		p.Jumps++
		p.VY = g.cfg.Player.SuperJumpVelocity
		p.Jumping = true
		p.Coyote = 0
		g.burst(p.CenterX(), p.Box.Bottom(), 20, core.ColorBrightWhite, false)
		g.emit(SoundSuperJump)
	case ItemCube:
		g.fillColumn()
	case ItemBomb:
		g.bomb()
	case ItemFreeze:
		g.run.Freeze = g.cfg.Items.FreezeTicks
		g.burst(p.CenterX(), p.CenterY(), 30, core.ColorBrightCyan, false)
	}
}

// warp moves the player to the top of the deepest column.
func (g *Game) warp() {
	p := &g.player
	best, bestH := g.grid.FirstColumn(), -1<<31
	for cx := g.grid.FirstColumn(); cx <= g.grid.LastColumn(); cx++ {
		if h := g.grid.Height(cx); h > bestH {
			best, bestH = cx, h
		}
	}
	ts := float64(g.grid.TileSize())
	g.burst(p.CenterX(), p.CenterY(), 30, core.ColorMagenta, false)
	p.Box.X = float64(best)*ts + (ts-p.Box.W)/2
	p.Box.Y = float64(bestH)*ts - p.Box.H
	p.VX, p.VY = 0, 0
	g.burst(p.CenterX(), p.CenterY(), 30, core.ColorMagenta, false)
	g.emit(SoundWarp)
}

// fillColumn stacks placed tiles under the player from the feet row down to
// the column top and lifts the player onto the new top.
func (g *Game) fillColumn() {
	p := &g.player
	ts := float64(g.grid.TileSize())
	cx := g.playerColumn()
	top := int(math.Floor((p.Box.Bottom() - 0.01) / ts))
	h := g.grid.Height(cx)
	if top >= h {
		return
	}
	for row := top; row < h; row++ {
		g.grid.Insert(cx, row, world.NewTile(world.KindPlaced))
	}
	p.Box.X = core.ClampF(p.Box.X, float64(cx)*ts, float64(cx+1)*ts-p.Box.W)
	p.Box.Y = float64(top)*ts - p.Box.H
	p.VY = 0
	g.emit(SoundBlockLand)
}

// bomb removes every tile whose centre lies within the blast radius.
func (g *Game) bomb() {
	p := &g.player
	ts := float64(g.grid.TileSize())
	r := g.cfg.Items.BombRadiusTiles * ts
	px, py := p.CenterX(), p.CenterY()
	removed := 0
	for _, c := range g.grid.Coords() {
		x, y := g.grid.CellCenter(c.X, c.Y)
		if math.Hypot(x-px, y-py) <= r {
			if t, ok := g.grid.Remove(c.X, c.Y); ok {
				removed++
				g.burst(x, y, 6, g.kindColor(t.Kind), true)
			}
		}
	}
	g.grid.RecomputeStackHeights()
	g.run.addShake(20)
	g.emit(SoundExplosion)
	g.log.Debug("bomb", "removed", removed)
}

// approach moves v toward target by at most step.
func approach(v, target, step float64) float64 {
	if v < target {
		return math.Min(v+step, target)
	}
	return math.Max(v-step, target)
}
