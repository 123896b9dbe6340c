package world

import (
	"math"
	"slices"

	"github.com/vovakirdan/cavyn/internal/core"
)

// wallSpan is the half height of the side wall rectangles in pixels.
const wallSpan = 1 << 20

// Grid is the shaft lattice. Columns 0 and W-1 are walls; tiles live in the
// playable columns [1, W-2]. Rows at or below the floor row are bedrock.
type Grid struct {
	cols    int
	tile    int
	floor   int
	tiles   map[Coord]Tile
	heights []int
	dirty   bool
}

// NewGrid creates an empty shaft of cols columns (walls included) with the
// bedrock starting at row cols-1.
func NewGrid(cols, tile int) *Grid {
	g := &Grid{
		cols:  cols,
		tile:  tile,
		floor: cols - 1,
		tiles: make(map[Coord]Tile),
	}
	g.heights = make([]int, cols-2)
	g.RecomputeStackHeights()
	return g
}

// Columns returns the shaft width W including walls.
func (g *Grid) Columns() int { return g.cols }

// TileSize returns the edge of one cell in pixels.
func (g *Grid) TileSize() int { return g.tile }

// FirstColumn returns the leftmost playable column.
func (g *Grid) FirstColumn() int { return 1 }

// LastColumn returns the rightmost playable column.
func (g *Grid) LastColumn() int { return g.cols - 2 }

// Floor returns the bedrock row.
func (g *Grid) Floor() int { return g.floor }

// Len returns the number of placed tiles.
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds reports whether (cx, cy) may hold a tile.
func (g *Grid) InBounds(cx, cy int) bool {
	return cx >= 1 && cx <= g.cols-2 && cy < g.floor
}

// ClampColumn restricts cx to the playable columns.
func (g *Grid) ClampColumn(cx int) int {
	return core.Clamp(cx, 1, g.cols-2)
}

// Get returns the tile at (cx, cy).
func (g *Grid) Get(cx, cy int) (Tile, bool) {
	t, ok := g.tiles[Coord{cx, cy}]
	return t, ok
}

// Has reports whether a tile is placed at (cx, cy).
func (g *Grid) Has(cx, cy int) bool {
	_, ok := g.tiles[Coord{cx, cy}]
	return ok
}

// Solid reports whether the cell blocks movement: a tile, a wall column or
// bedrock.
func (g *Grid) Solid(cx, cy int) bool {
	if cx <= 0 || cx >= g.cols-1 {
		return true
	}
	if cy >= g.floor {
		return true
	}
	return g.Has(cx, cy)
}

// Set places t at (cx, cy). This is the landing path: the stack height of
// the column is lowered in place without a rescan. Out-of-range coordinates
// are ignored.
func (g *Grid) Set(cx, cy int, t Tile) bool {
	if !g.InBounds(cx, cy) {
		return false
	}
	g.tiles[Coord{cx, cy}] = t
	if !g.dirty && cy < g.heights[cx-1] {
		g.heights[cx-1] = cy
	}
	return true
}

// Replace swaps the data of an existing tile without touching stack heights.
func (g *Grid) Replace(cx, cy int, t Tile) bool {
	c := Coord{cx, cy}
	if _, ok := g.tiles[c]; !ok {
		return false
	}
	g.tiles[c] = t
	return true
}

// Insert places t at (cx, cy) outside the landing path and marks stack
// heights dirty.
func (g *Grid) Insert(cx, cy int, t Tile) bool {
	if !g.InBounds(cx, cy) {
		return false
	}
	g.tiles[Coord{cx, cy}] = t
	g.dirty = true
	return true
}

// Remove deletes the tile at (cx, cy) and marks stack heights dirty.
func (g *Grid) Remove(cx, cy int) (Tile, bool) {
	c := Coord{cx, cy}
	t, ok := g.tiles[c]
	if !ok {
		return Tile{}, false
	}
	delete(g.tiles, c)
	g.dirty = true
	return t, true
}

// Height returns the topmost occupied row of column cx, or the floor row for
// an empty column.
func (g *Grid) Height(cx int) int {
	if cx < 1 || cx > g.cols-2 {
		return g.floor
	}
	if g.dirty {
		g.RecomputeStackHeights()
	}
	return g.heights[cx-1]
}

// StackHeights returns a copy of the per-column table; index i is column i+1.
func (g *Grid) StackHeights() []int {
	if g.dirty {
		g.RecomputeStackHeights()
	}
	return slices.Clone(g.heights)
}

// RecomputeStackHeights rebuilds the table from the tile map.
func (g *Grid) RecomputeStackHeights() {
	for i := range g.heights {
		g.heights[i] = g.floor
	}
	for c := range g.tiles {
		if i := c.X - 1; i >= 0 && i < len(g.heights) && c.Y < g.heights[i] {
			g.heights[i] = c.Y
		}
	}
	g.dirty = false
}

// Coords returns every occupied coordinate ordered by row then column.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, 0, len(g.tiles))
	for c := range g.tiles {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b Coord) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

// CellAt returns the cell holding pixel (x, y).
func (g *Grid) CellAt(x, y float64) (int, int) {
	ts := float64(g.tile)
	return int(math.Floor(x / ts)), int(math.Floor(y / ts))
}

// ColumnAt returns the column holding pixel x.
func (g *Grid) ColumnAt(x float64) int {
	return int(math.Floor(x / float64(g.tile)))
}

// CellBox returns the pixel rectangle of a cell.
func (g *Grid) CellBox(cx, cy int) core.Box {
	ts := float64(g.tile)
	return core.NewBox(float64(cx)*ts, float64(cy)*ts, ts, ts)
}

// CellCenter returns the pixel centre of a cell.
func (g *Grid) CellCenter(cx, cy int) (float64, float64) {
	ts := float64(g.tile)
	return (float64(cx) + 0.5) * ts, (float64(cy) + 0.5) * ts
}

// SolidsNear returns the rectangles of the solid cells among the cell
// holding (x, y) and its eight neighbours. Wall columns are left to Walls.
func (g *Grid) SolidsNear(x, y float64) []core.Box {
	cx, cy := g.CellAt(x, y)
	out := make([]core.Box, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := cx+dx, cy+dy
			if nx < 1 || nx > g.cols-2 {
				continue
			}
			if ny >= g.floor || g.Has(nx, ny) {
				out = append(out, g.CellBox(nx, ny))
			}
		}
	}
	return out
}

// Walls returns the two side wall rectangles.
func (g *Grid) Walls() []core.Box {
	ts := float64(g.tile)
	return []core.Box{
		core.NewBox(0, -wallSpan, ts, 2*wallSpan),
		core.NewBox(float64(g.cols-1)*ts, -wallSpan, ts, 2*wallSpan),
	}
}

// PlayLeft returns the x of the left edge of the playable area.
func (g *Grid) PlayLeft() float64 { return float64(g.tile) }

// PlayRight returns the x of the right edge of the playable area.
func (g *Grid) PlayRight() float64 { return float64((g.cols - 1) * g.tile) }

// FullRow returns the topmost row occupied across every playable column.
func (g *Grid) FullRow() (int, bool) {
	counts := make(map[int]int)
	for c := range g.tiles {
		counts[c.Y]++
	}
	best, found := 0, false
	for row, n := range counts {
		if n == g.cols-2 && (!found || row < best) {
			best, found = row, true
		}
	}
	return best, found
}

// Scroll raises the bedrock by one row, discarding every tile at or below
// the new floor, and returns how many tiles were removed.
func (g *Grid) Scroll() int {
	g.floor--
	removed := 0
	for c := range g.tiles {
		if c.Y >= g.floor {
			delete(g.tiles, c)
			removed++
		}
	}
	g.RecomputeStackHeights()
	return removed
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		cols:    g.cols,
		tile:    g.tile,
		floor:   g.floor,
		tiles:   make(map[Coord]Tile, len(g.tiles)),
		heights: slices.Clone(g.heights),
		dirty:   g.dirty,
	}
	for c, t := range g.tiles {
		if t.Fuse != nil {
			f := *t.Fuse
			t.Fuse = &f
		}
		out.tiles[c] = t
	}
	return out
}

// Equal reports whether two grids hold the same tiles, floor and heights.
func (g *Grid) Equal(o *Grid) bool {
	if g.cols != o.cols || g.tile != o.tile || g.floor != o.floor || len(g.tiles) != len(o.tiles) {
		return false
	}
	for c, t := range g.tiles {
		u, ok := o.tiles[c]
		if !ok || u.Kind != t.Kind || u.Armed() != t.Armed() {
			return false
		}
		if t.Armed() && t.Fuse.Remaining != u.Fuse.Remaining {
			return false
		}
	}
	return slices.Equal(g.StackHeights(), o.StackHeights())
}
