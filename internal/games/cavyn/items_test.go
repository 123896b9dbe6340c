package cavyn

import (
	"math"
	"testing"

	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

func TestUseItem(t *testing.T) {
	t.Run("warp to the deepest column", func(t *testing.T) {
		g := newQuietGame(t)
		for cx := g.grid.FirstColumn(); cx <= g.grid.LastColumn(); cx++ {
			if cx != 8 {
				g.grid.Set(cx, 10, world.NewTile(world.KindNormal))
			}
		}
		g.player.Item = ItemWarp
		res := g.Step(press(core.ActionUseItem))
		if got := g.playerColumn(); got != 8 {
			t.Errorf("column after warp = %d, expected 8", got)
		}
		if g.player.Item != ItemNone {
			t.Errorf("Item = %v, expected none", g.player.Item)
		}
		if countSound(res.Sounds, SoundWarp) != 1 {
			t.Errorf("warp sounds = %d, expected 1", countSound(res.Sounds, SoundWarp))
		}
	})

	t.Run("super jump", func(t *testing.T) {
		g := newQuietGame(t)
		stepN(g, 2)
		g.player.Item = ItemJump
		jumps := g.player.Jumps
		g.useItem()
		if g.player.VY != g.cfg.Player.SuperJumpVelocity {
			t.Errorf("VY = %v, expected %v", g.player.VY, g.cfg.Player.SuperJumpVelocity)
		}
		if g.player.Jumps != jumps+1 {
			t.Errorf("Jumps = %d, expected %d", g.player.Jumps, jumps+1)
		}
	})

	t.Run("cube fills the column", func(t *testing.T) {
		g := newQuietGame(t)
		stepN(g, 2)
		g.player.Item = ItemCube
		g.useItem()
		tile, ok := g.grid.Get(5, 10)
		if !ok || tile.Kind != world.KindPlaced {
			t.Errorf("(5,10) = %v/%v, expected placed", tile.Kind, ok)
		}
		if g.grid.Height(5) != 10 {
			t.Errorf("Height(5) = %d, expected 10", g.grid.Height(5))
		}
		if g.player.Box.Bottom() != 160 {
			t.Errorf("player bottom = %v, expected 160", g.player.Box.Bottom())
		}
	})

	t.Run("freeze", func(t *testing.T) {
		g := newQuietGame(t)
		g.player.Item = ItemFreeze
		g.useItem()
		if g.Run().Freeze != g.cfg.Items.FreezeTicks {
			t.Errorf("Freeze = %v, expected %v", g.Run().Freeze, g.cfg.Items.FreezeTicks)
		}
	})

	t.Run("nothing held", func(t *testing.T) {
		g := newQuietGame(t)
		before := g.Player()
		res := g.Step(press(core.ActionUseItem))
		if len(res.Sounds) != 0 {
			t.Errorf("sounds = %v, expected none", res.Sounds)
		}
		if g.player.Item != before.Item {
			t.Errorf("Item = %v, expected %v", g.player.Item, before.Item)
		}
	})
}

func TestBombThenRefill(t *testing.T) {
	g := newQuietGame(t)
	for cx := g.grid.FirstColumn(); cx <= g.grid.LastColumn(); cx++ {
		for cy := 7; cy <= 10; cy++ {
			if (cx+cy)%3 != 0 {
				g.grid.Set(cx, cy, world.NewTile(world.KindNormal))
			}
		}
	}
	g.player.Box.Y = 7*16 - g.player.Box.H
	original := g.grid.Clone()

	g.player.Item = ItemBomb
	res := g.Step(press(core.ActionUseItem))
	if countSound(res.Sounds, SoundExplosion) != 1 {
		t.Errorf("explosion sounds = %d, expected 1", countSound(res.Sounds, SoundExplosion))
	}
	if g.grid.Len() >= original.Len() {
		t.Fatalf("Len() = %d, expected fewer than %d", g.grid.Len(), original.Len())
	}

	px, py := g.player.CenterX(), g.player.CenterY()
	r := g.cfg.Items.BombRadiusTiles * float64(g.grid.TileSize())
	for _, c := range g.grid.Coords() {
		x, y := g.grid.CellCenter(c.X, c.Y)
		if math.Hypot(x-px, y-py) < r-float64(g.grid.TileSize()) {
			t.Errorf("tile (%d,%d) survived well inside the blast", c.X, c.Y)
		}
	}

	for _, c := range original.Coords() {
		if !g.grid.Has(c.X, c.Y) {
			tile, _ := original.Get(c.X, c.Y)
			g.grid.Insert(c.X, c.Y, tile)
		}
	}
	g.grid.RecomputeStackHeights()
	if !g.grid.Equal(original) {
		t.Error("grid after refill differs from the original")
	}
}

func TestCoinPickup(t *testing.T) {
	g := newQuietGame(t)
	g.gainCombo(1)
	it := g.spawnItem(ItemCoin, g.player.CenterX(), g.player.CenterY(), 0, 0)

	g.Step(idle())
	if g.Run().Coins != 0 {
		t.Fatalf("Coins = %d, expected a fresh coin to wait out its pickup delay", g.Run().Coins)
	}
	it.Age = float64(g.cfg.Items.PickupAge)
	res := g.Step(idle())
	if g.Run().Coins != 2 {
		t.Errorf("Coins = %d, expected 2 at x2 combo", g.Run().Coins)
	}
	if len(g.items) != 0 {
		t.Errorf("items = %d, expected 0", len(g.items))
	}
	if countSound(res.Sounds, SoundCoin) != 1 {
		t.Errorf("coin sounds = %d, expected 1", countSound(res.Sounds, SoundCoin))
	}
}

func TestShieldPickup(t *testing.T) {
	g := newQuietGame(t)
	it := g.spawnItem(ItemShield, g.player.CenterX(), g.player.CenterY(), 0, 0)
	it.Age = float64(g.cfg.Items.PickupAge)
	g.Step(idle())
	if !g.player.Shield {
		t.Error("expected the shield to be raised")
	}
	if g.player.Item != ItemNone {
		t.Errorf("Item = %v, expected the shield not to occupy the slot", g.player.Item)
	}
}

func TestItemsSettleOnFloor(t *testing.T) {
	g := newQuietGame(t)
	it := g.spawnItem(ItemBomb, 40, 40, 2, 0)
	stepN(g, 200)
	floor := float64(g.grid.Floor() * g.grid.TileSize())
	if it.Box.Bottom() != floor {
		t.Errorf("item bottom = %v, expected %v", it.Box.Bottom(), floor)
	}
	if it.VX != 0 {
		t.Errorf("item VX = %v, expected friction to stop it", it.VX)
	}
}

func TestProjectiles(t *testing.T) {
	t.Run("active cap", func(t *testing.T) {
		g := newQuietGame(t)
		stepN(g, 2)
		for i := 0; i < 6; i++ {
			g.Step(press(core.ActionShoot))
		}
		if len(g.projectiles) != g.cfg.Projectiles.MaxActive {
			t.Errorf("projectiles = %d, expected %d", len(g.projectiles), g.cfg.Projectiles.MaxActive)
		}
	})

	t.Run("aim", func(t *testing.T) {
		tests := []struct {
			name     string
			up, down bool
			vx, vy   float64
		}{
			{"facing", false, false, 4, 0},
			{"up", true, false, 0, -4},
			{"down", false, true, 0, 4},
			{"both", true, true, 4, 0},
		}
		for _, tt := range tests {
			g := newQuietGame(t)
			g.fire(tt.up, tt.down)
			pr := g.projectiles[0]
			if pr.VX != tt.vx || pr.VY != tt.vy {
				t.Errorf("%s: velocity = (%v, %v), expected (%v, %v)", tt.name, pr.VX, pr.VY, tt.vx, tt.vy)
			}
		}
	})

	t.Run("breaks falling tile", func(t *testing.T) {
		g := newQuietGame(t)
		g.run.Freeze = 1000
		f := g.dropTile(5, world.KindNormal)
		f.Y = 60
		g.fire(true, false)
		stepN(g, 40)
		if len(g.falling) != 0 {
			t.Errorf("falling = %d, expected the shot to break the tile", len(g.falling))
		}
		if g.Run().Coins != 1 {
			t.Errorf("Coins = %d, expected 1", g.Run().Coins)
		}
		if want := 1 + g.cfg.Combo.Projectile; math.Abs(g.Run().Combo.Multiplier-want) > epsilon {
			t.Errorf("Combo = %v, expected %v", g.Run().Combo.Multiplier, want)
		}
		if len(g.projectiles) != 0 {
			t.Errorf("projectiles = %d, expected the spent shot retired", len(g.projectiles))
		}
	})

	t.Run("wall retires shot", func(t *testing.T) {
		g := newQuietGame(t)
		g.fire(false, false)
		stepN(g, 40)
		if len(g.projectiles) != 0 {
			t.Errorf("projectiles = %d, expected 0", len(g.projectiles))
		}
	})
}
