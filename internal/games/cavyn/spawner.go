package cavyn

import (
	"math"
	"slices"

	"github.com/vovakirdan/cavyn/internal/games/cavyn/world"
)

// Spawner schedules falling tiles.
type Spawner struct {
	Cooldown float64
	Last     int // Grid column of the previous spawn, 0 for none
}

// updateSpawner accrues the cooldown once warm-up has passed and emits one
// tile when it exceeds the current interval.
func (g *Game) updateSpawner() {
	sc := g.cfg.Spawner
	if g.run.Tick <= sc.WarmupTicks {
		return
	}
	g.spawner.Cooldown += g.run.TimeScale
	if g.spawner.Cooldown <= g.difficulty.SpawnInterval(sc.BaseInterval, sc.IntervalRange, g.run.Tick) {
		return
	}
	g.spawner.Cooldown = 0
	g.spawnFalling()
}

// spawnFalling picks a column and a kind and drops a tile above the screen.
// It reports false when no column could be chosen.
func (g *Game) spawnFalling() bool {
	cx, ok := g.pickColumn()
	if !ok {
		return false
	}
	g.dropTile(cx, g.pickKind())
	return true
}

// dropTile appends a falling tile of kind k just above the visible top of
// column cx.
func (g *Game) dropTile(cx int, k world.Kind) *FallingTile {
	ts := float64(g.grid.TileSize())
	f := &FallingTile{
		X:      float64(cx) * ts,
		Y:      -g.run.Height - ts,
		Column: cx,
		Kind:   k,
	}
	g.falling = append(g.falling, f)
	g.spawner.Last = cx
	return f
}

// columnWeights returns the ticket count per playable column. Deep columns
// weigh more; the last spawn column is excluded unless it is the only one.
func (g *Game) columnWeights() []int {
	sc := g.cfg.Spawner
	heights := g.grid.StackHeights()
	minH := slices.Min(heights)
	e := g.difficulty.Exponent(sc.ExponentStart, sc.ExponentSpan, sc.ExponentFloor, g.run.Tick)

	weights := make([]int, len(heights))
	for i, h := range heights {
		if i+1 == g.spawner.Last && len(heights) > 1 {
			continue
		}
		d := float64(h - minH)
		tickets := 1
		if d > 0 {
			v := math.Pow(d, e)
			if math.IsInf(v, 0) || math.IsNaN(v) || v > 1<<20 {
				v = 1 << 20
			}
			tickets += int(v)
		}
		weights[i] = tickets
	}
	return weights
}

// pickColumn samples a grid column by weight.
func (g *Game) pickColumn() (int, bool) {
	weights := g.columnWeights()
	total := 0
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return 0, false
	}
	r := g.rng.Intn(total)
	for i, w := range weights {
		if r < w {
			return i + 1, true
		}
		r -= w
	}
	return 0, false
}

// pickKind rolls the tile kind and clamps it to the biome's allowed set.
func (g *Game) pickKind() world.Kind {
	roll := g.rng.Intn(g.cfg.Spawner.KindRoll) + 1
	b := g.biome()
	k := world.KindNormal
	switch roll {
	case 1:
		k = world.KindChest
	case 2, 3:
		k = world.KindFragile
	case 4, 5:
		k = world.KindBounce
	case 7:
		k = world.KindSpike
	case 8:
		k = world.KindGreed
	}
	if special, ok := b.Specials[roll]; ok {
		k = special
	}
	if !b.Allows(k) {
		return world.KindNormal
	}
	return k
}
