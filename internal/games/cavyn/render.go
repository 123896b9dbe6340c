package cavyn

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/cavyn/internal/core"
)

// Terminal rasterisation: one character cell covers CellW x CellH display
// pixels.
const (
	CellW = 4
	CellH = 8
)

// Layout constants for the terminal view.
const (
	fieldLeft = 1  // Terminal column of the shaft's left wall
	hudGap    = 2  // Columns between the shaft and the HUD panel
	hudWidth  = 24 // Width of the HUD panel
)

var spriteGlyphs = map[string]rune{
	"mote":              '·',
	"wall":              '█',
	"bedrock":           '▓',
	"tile/normal":       '█',
	"tile/placed":       '▒',
	"tile/fragile":      '░',
	"tile/bounce":       '≡',
	"tile/spike":        '▲',
	"tile/chest":        '■',
	"tile/opened_chest": '□',
	"tile/greed":        '¤',
	"tile/magnetic":     '◆',
	"tile/sticky":       '#',
	"item/coin":         '$',
	"item/cube":         'C',
	"item/warp":         'W',
	"item/jump":         'J',
	"item/bomb":         'B',
	"item/freeze":       'F',
	"item/shield":       'S',
	"projectile":        '•',
	"player/idle":       '@',
	"player/run":        '@',
	"player/jump":       '@',
	"player/charge":     '@',
	"spark":             '*',
}

// MinScreen returns the smallest terminal that fits the view.
func (g *Game) MinScreen() (int, int) {
	wc := g.cfg.World
	w := fieldLeft + wc.Columns*wc.Tile/CellW + hudGap + hudWidth
	h := (wc.DisplayH + CellH - 1) / CellH
	return w, h
}

// Render draws the current frame into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	minW, minH := g.MinScreen()
	if dst.Width() < minW || dst.Height() < minH {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Terminal too small: need %dx%d", minW, minH))
		return
	}

	f := g.Frame()
	RenderFrame(dst, f)
}

// RenderFrame rasterises a snapshot. Sprites are drawn in slice order.
func RenderFrame(dst *core.Screen, f Frame) {
	shake := 0
	if f.HUD.Shake > 0 {
		shake = 1
		if f.HUD.Tick%2 == 0 {
			shake = -1
		}
	}
	fieldW := int(math.Ceil((float64(f.DisplayW) - 2*f.OffsetX) / CellW))
	clip := core.NewRect(fieldLeft, 0, fieldW, dst.Height())

	for _, s := range f.Sprites {
		glyph, ok := spriteGlyphs[strings.Replace(s.ID, "falling/", "tile/", 1)]
		if !ok {
			glyph = '?'
		}
		if s.ID == "spark" && s.Scale < 3 {
			glyph = '.'
		}
		if s.ID == "mote" && s.Opacity < 0.5 {
			glyph = ' '
		}
		x0 := int(math.Floor((s.X-f.OffsetX)/CellW)) + fieldLeft
		y0 := int(math.Floor(s.Y / CellH))
		x1 := int(math.Ceil((s.X-f.OffsetX+s.W)/CellW)) + fieldLeft
		y1 := int(math.Ceil((s.Y + s.H) / CellH))
		if x1 <= x0 {
			x1 = x0 + 1
		}
		if y1 <= y0 {
			y1 = y0 + 1
		}
		dx := 0
		if s.Layer != LayerWall && s.Layer != LayerMote {
			dx = shake
		}
		for y := y0; y < y1; y++ {
			for x := x0 + dx; x < x1+dx; x++ {
				if clip.Contains(x, y) {
					dst.SetColored(x, y, glyph, s.Color)
				}
			}
		}
	}

	drawHUD(dst, fieldLeft+fieldW+hudGap, f.HUD)

	if len(f.HUD.Offer) > 0 {
		drawOffer(dst, clip, f.HUD)
	} else if f.HUD.Dead {
		cy := dst.Height() / 2
		msg := "YOU DIED"
		sub := fmt.Sprintf("%d coins", f.HUD.Coins)
		if f.HUD.Banked {
			sub += " banked - R to restart"
		}
		dst.DrawTextColored(clip.X+(clip.W-len(msg))/2, cy-1, msg, core.ColorBrightRed)
		dst.DrawTextColored(clip.X+(clip.W-len([]rune(sub)))/2, cy+1, sub, core.ColorWhite)
	}
}

func drawHUD(dst *core.Screen, x int, h HUD) {
	y := 0
	line := func(text string, c core.Color) {
		dst.DrawTextColored(x, y, text, c)
		y++
	}

	line("CAVYN", core.ColorBrightYellow)
	y++
	line(fmt.Sprintf("Coins  %d", h.Coins), core.ColorBrightYellow)
	line(fmt.Sprintf("Combo  x%.2f", h.Combo), comboColor(h.Combo))
	line(bar(h.ComboFrac, hudWidth-2), core.ColorYellow)
	line("Time", core.ColorCyan)
	line(bar(h.TimeFrac, hudWidth-2), core.ColorCyan)
	line("Focus", core.ColorBrightCyan)
	line(bar(h.FocusFrac, hudWidth-2), core.ColorBrightCyan)
	y++
	line("Item   "+h.Item, core.ColorWhite)
	if h.Shield {
		line("Shield up", core.ColorBrightBlue)
	} else {
		y++
	}
	if h.Frozen {
		line("Frozen", core.ColorBrightCyan)
	} else {
		y++
	}
	line("Biome  "+h.BiomeName, core.ColorMagenta)
	y++
	line("Perks", core.ColorGreen)
	for _, p := range h.Perks {
		line(" "+p, core.ColorGreen)
	}
}

func drawOffer(dst *core.Screen, clip core.Rect, h HUD) {
	w := core.Min(clip.W-2, 40)
	box := core.NewRect(clip.X+(clip.W-w)/2, 3, w, len(h.Offer)*2+4)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextColored(box.X+2, box.Y+1, "Choose a perk", core.ColorBrightYellow)
	for i, name := range h.Offer {
		c := core.ColorWhite
		prefix := "  "
		if i == h.Cursor {
			c = core.ColorBrightGreen
			prefix = "> "
		}
		dst.DrawTextColored(box.X+2, box.Y+2+i*2, prefix+name, c)
		blurb := h.OfferBlurb[i]
		if limit := box.W - 6; len(blurb) > limit {
			blurb = blurb[:limit]
		}
		dst.DrawTextColored(box.X+4, box.Y+3+i*2, blurb, core.ColorGray)
	}
}

// bar draws a meter of width cells filled to frac.
func bar(frac float64, width int) string {
	frac = core.ClampF(frac, 0, 1)
	n := int(math.Round(frac * float64(width)))
	return "[" + strings.Repeat("█", n) + strings.Repeat("·", width-n) + "]"
}

func comboColor(m float64) core.Color {
	switch {
	case m >= 3:
		return core.ColorBrightRed
	case m >= 2:
		return core.ColorOrange
	case m > 1:
		return core.ColorBrightYellow
	default:
		return core.ColorWhite
	}
}
