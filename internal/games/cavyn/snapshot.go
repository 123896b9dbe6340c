package cavyn

import (
	"fmt"

	"github.com/vovakirdan/cavyn/internal/core"
)

// Layer orders sprites back to front.
type Layer uint8

const (
	LayerMote Layer = iota
	LayerWall
	LayerTile
	LayerFalling
	LayerItem
	LayerPlayer
	LayerProjectile
	LayerSpark
)

// Sprite is one blit in display pixels.
type Sprite struct {
	X, Y     float64
	W, H     float64
	ID       string
	Flip     bool
	Rotation float64
	Scale    float64
	Opacity  float64
	Color    core.Color
	Layer    Layer
}

// HUD carries the values drawn over the playfield.
type HUD struct {
	Coins      int
	Combo      float64
	ComboFrac  float64
	TimeFrac   float64
	FocusFrac  float64
	Item       string
	Shield     bool
	Perks      []string
	Biome      int
	BiomeName  string
	Dead       bool
	Banked     bool
	Shake      float64
	Frozen     bool
	Tick       int
	Offer      []string
	OfferBlurb []string
	Cursor     int
}

// Frame is the per-tick snapshot consumed by renderers.
type Frame struct {
	DisplayW, DisplayH int
	OffsetX            float64 // Left edge of the shaft on the display
	Height             float64 // World origin offset
	Sprites            []Sprite
	HUD                HUD
}

// Frame builds the snapshot of the current tick.
func (g *Game) Frame() Frame {
	wc := g.cfg.World
	ts := float64(wc.Tile)
	ox := float64(wc.DisplayW-wc.Columns*wc.Tile) / 2
	h := g.run.Height

	f := Frame{
		DisplayW: wc.DisplayW,
		DisplayH: wc.DisplayH,
		OffsetX:  ox,
		Height:   h,
	}
	add := func(s Sprite) {
		if s.Scale == 0 {
			s.Scale = 1
		}
		if s.Opacity == 0 {
			s.Opacity = 1
		}
		f.Sprites = append(f.Sprites, s)
	}

	for _, m := range g.motes {
		add(Sprite{X: m.X + ox, Y: g.moteScreenY(m), W: 1, H: 1, ID: "mote", Opacity: m.Depth, Color: core.ColorDarkGray, Layer: LayerMote})
	}
	for _, wall := range g.grid.Walls() {
		add(Sprite{X: wall.X + ox, Y: 0, W: wall.W, H: float64(wc.DisplayH), ID: "wall", Color: core.ColorGray, Layer: LayerWall})
	}
	floorY := float64(g.grid.Floor())*ts + h
	add(Sprite{X: ox + ts, Y: floorY, W: g.grid.PlayRight() - ts, H: float64(wc.DisplayH) - floorY, ID: "bedrock", Color: core.ColorDarkGray, Layer: LayerWall})

	for _, c := range g.grid.Coords() {
		t, _ := g.grid.Get(c.X, c.Y)
		s := Sprite{
			X: float64(c.X)*ts + ox, Y: float64(c.Y)*ts + h, W: ts, H: ts,
			ID:    "tile/" + t.Kind.String(),
			Color: g.kindColor(t.Kind),
			Layer: LayerTile,
		}
		if t.Armed() {
			s.Opacity = 0.3 + 0.7*t.Fuse.Remaining/g.cfg.Player.FuseTicks
		}
		add(s)
	}
	for _, ft := range g.falling {
		add(Sprite{X: ft.X + ox, Y: ft.Y + h, W: ts, H: ts, ID: "falling/" + ft.Kind.String(), Color: g.kindColor(ft.Kind), Layer: LayerFalling})
	}
	for _, it := range g.items {
		add(Sprite{X: it.Box.X + ox, Y: it.Box.Y + h, W: it.Box.W, H: it.Box.H, ID: "item/" + it.Kind.String(), Color: itemColor(it.Kind), Layer: LayerItem})
	}
	if !g.run.Dead {
		p := g.player
		add(Sprite{
			X: p.Box.X + ox, Y: p.Box.Y + h, W: p.Box.W, H: p.Box.H,
			ID:       "player/" + p.Anim.String(),
			Flip:     p.Facing < 0,
			Rotation: p.Rotation,
			Scale:    p.ScaleY,
			Color:    playerColor(p),
			Layer:    LayerPlayer,
		})
	}
	for _, pr := range g.projectiles {
		add(Sprite{X: pr.Box.X + ox, Y: pr.Box.Y + h, W: pr.Box.W, H: pr.Box.H, ID: "projectile", Color: core.ColorBrightWhite, Layer: LayerProjectile})
	}
	for _, s := range g.sparks {
		add(Sprite{X: s.X + ox, Y: s.Y + h, W: s.Size, H: s.Size, ID: "spark", Scale: s.Size, Color: s.Color, Layer: LayerSpark})
	}

	f.HUD = g.hud()
	return f
}

func (g *Game) hud() HUD {
	r := g.run
	p := g.player
	hud := HUD{
		Coins:     r.Coins,
		Combo:     r.Combo.Multiplier,
		ComboFrac: r.Combo.Timer / g.cfg.Combo.Duration,
		TimeFrac:  r.TimeMeter / g.cfg.Time.MeterCap,
		FocusFrac: p.Focus / g.cfg.Player.FocusCap,
		Item:      p.Item.String(),
		Shield:    p.Shield,
		Biome:     r.Biome,
		BiomeName: g.biome().Name,
		Dead:      r.Dead,
		Banked:    r.Banked,
		Shake:     r.Shake,
		Frozen:    r.Freeze > 0,
		Tick:      r.Tick,
	}
	for _, perk := range r.Perks.List() {
		hud.Perks = append(hud.Perks, perk.String())
	}
	if g.offer != nil {
		for _, perk := range g.offer.Choices {
			hud.Offer = append(hud.Offer, perk.String())
			hud.OfferBlurb = append(hud.OfferBlurb, perk.Blurb())
		}
		hud.Cursor = g.offer.Cursor
	}
	return hud
}

func itemColor(k ItemKind) core.Color {
	switch k {
	case ItemCoin:
		return core.ColorBrightYellow
	case ItemShield:
		return core.ColorBrightBlue
	case ItemBomb:
		return core.ColorBrightRed
	case ItemFreeze:
		return core.ColorBrightCyan
	case ItemWarp:
		return core.ColorMagenta
	default:
		return core.ColorBrightWhite
	}
}

func playerColor(p Player) core.Color {
	switch {
	case p.Charging:
		return core.ColorBrightCyan
	case p.Dash > 0:
		return core.ColorCyan
	case p.Shield:
		return core.ColorBrightBlue
	default:
		return core.ColorBrightWhite
	}
}

// String summarises the HUD on one line.
func (h HUD) String() string {
	return fmt.Sprintf("coins %d  x%.1f  %s", h.Coins, h.Combo, h.BiomeName)
}
