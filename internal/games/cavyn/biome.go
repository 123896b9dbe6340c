package cavyn

import (
	"github.com/vovakirdan/cavyn/internal/config"
	"github.com/vovakirdan/cavyn/internal/core"
	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

// Biome gates which tile kinds spawn and sets the palette.
type Biome struct {
	Name        string
	Threshold   int
	Specials    map[int]world.Kind // Kind roll -> special tile
	TileColor   core.Color
	AccentColor core.Color

	allowed map[world.Kind]bool
}

// Allows reports whether k may spawn in this biome.
func (b Biome) Allows(k world.Kind) bool {
	if len(b.allowed) == 0 {
		return true
	}
	return b.allowed[k]
}

// buildBiomes converts config profiles. Unknown kind names are logged and
// skipped.
func (g *Game) buildBiomes(cfgs []config.BiomeConfig) []Biome {
	out := make([]Biome, 0, len(cfgs))
	for _, bc := range cfgs {
		b := Biome{
			Name:        bc.Name,
			Threshold:   bc.Threshold,
			Specials:    make(map[int]world.Kind, len(bc.Specials)),
			TileColor:   core.ParseColor(bc.TileColor),
			AccentColor: core.ParseColor(bc.AccentColor),
			allowed:     make(map[world.Kind]bool, len(bc.Kinds)),
		}
		for _, name := range bc.Kinds {
			k, ok := world.ParseKind(name)
			if !ok {
				g.log.Warn("unknown tile kind in biome", "biome", bc.Name, "kind", name)
				continue
			}
			b.allowed[k] = true
		}
		for roll, name := range bc.Specials {
			k, ok := world.ParseKind(name)
			if !ok {
				g.log.Warn("unknown special kind in biome", "biome", bc.Name, "roll", roll, "kind", name)
				continue
			}
			b.Specials[roll] = k
		}
		out = append(out, b)
	}
	if len(out) == 0 {
		out = append(out, Biome{Name: "cavern", TileColor: core.ColorBrown, AccentColor: core.ColorYellow})
	}
	return out
}

// biome returns the current profile.
func (g *Game) biome() Biome {
	return g.biomes[g.run.Biome]
}

// updateBiome advances the biome index when coins reach the next threshold.
func (g *Game) updateBiome() {
	for g.run.Biome+1 < len(g.biomes) && g.run.Coins >= g.biomes[g.run.Biome+1].Threshold {
		g.run.Biome++
		b := g.biome()
		g.log.Debug("biome reached", "biome", b.Name, "coins", g.run.Coins)
		g.burst(g.player.CenterX(), g.player.CenterY(), 60, b.AccentColor, false)
	}
}

// accentColor returns the current biome accent.
func (g *Game) accentColor() core.Color {
	return g.biome().AccentColor
}

// kindColor returns the display colour of a tile kind in the current biome.
func (g *Game) kindColor(k world.Kind) core.Color {
	switch k {
	case world.KindPlaced:
		return core.ColorGray
	case world.KindFragile:
		return core.ColorOrange
	case world.KindBounce:
		return core.ColorBrightGreen
	case world.KindSpike:
		return core.ColorBrightRed
	case world.KindChest, world.KindOpenedChest, world.KindGreed:
		return core.ColorBrightYellow
	case world.KindMagnetic:
		return core.ColorBrightMagenta
	case world.KindSticky:
		return core.ColorGreen
	default:
		return g.biome().TileColor
	}
}
