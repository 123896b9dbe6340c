package world

import (
	"slices"
	"testing"
)

func TestNewGridHeights(t *testing.T) {
	g := NewGrid(12, 16)
	heights := g.StackHeights()
	if len(heights) != 10 {
		t.Fatalf("len(StackHeights()) = %d, expected 10", len(heights))
	}
	for i, h := range heights {
		if h != 11 {
			t.Errorf("height[%d] = %d, expected 11", i, h)
		}
	}
}

func TestGridSetRemove(t *testing.T) {
	g := NewGrid(12, 16)

	if !g.Set(3, 10, NewTile(KindNormal)) {
		t.Fatal("Set(3, 10) should succeed")
	}
	if got := g.Height(3); got != 10 {
		t.Errorf("Height(3) = %d, expected 10", got)
	}
	if g.dirty {
		t.Error("landing path should not mark heights dirty")
	}

	g.Set(3, 9, NewTile(KindBounce))
	if got := g.Height(3); got != 9 {
		t.Errorf("Height(3) = %d, expected 9", got)
	}

	if _, ok := g.Remove(3, 9); !ok {
		t.Fatal("Remove(3, 9) should succeed")
	}
	if !g.dirty {
		t.Error("Remove should mark heights dirty")
	}
	if got := g.Height(3); got != 10 {
		t.Errorf("Height(3) after remove = %d, expected 10", got)
	}
	if _, ok := g.Remove(3, 9); ok {
		t.Error("second Remove should report false")
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(12, 16)

	tests := []struct {
		name   string
		cx, cy int
		ok     bool
	}{
		{"left wall", 0, 5, false},
		{"right wall", 11, 5, false},
		{"bedrock", 4, 11, false},
		{"first column", 1, 10, true},
		{"last column", 10, 10, true},
		{"above screen", 5, -3, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Set(tt.cx, tt.cy, NewTile(KindNormal)); got != tt.ok {
				t.Errorf("Set(%d, %d) = %v, expected %v", tt.cx, tt.cy, got, tt.ok)
			}
		})
	}

	for _, c := range g.Coords() {
		if c.X < 1 || c.X > 10 {
			t.Errorf("tile at column %d outside playable range", c.X)
		}
	}
}

func TestRecomputeIdempotent(t *testing.T) {
	g := NewGrid(12, 16)
	g.Insert(2, 10, NewTile(KindNormal))
	g.Insert(2, 7, NewTile(KindNormal))
	g.Insert(5, 9, NewTile(KindSpike))

	g.RecomputeStackHeights()
	first := g.StackHeights()
	g.RecomputeStackHeights()
	second := g.StackHeights()

	if !slices.Equal(first, second) {
		t.Errorf("recompute not idempotent: %v vs %v", first, second)
	}
	if first[1] != 7 || first[4] != 9 || first[0] != 11 {
		t.Errorf("unexpected heights %v", first)
	}
}

func TestSolidsNear(t *testing.T) {
	g := NewGrid(12, 16)
	g.Set(5, 9, NewTile(KindNormal))

	solids := g.SolidsNear(5*16+8, 9*16+8)
	if len(solids) != 1 {
		t.Fatalf("len(SolidsNear) = %d, expected 1", len(solids))
	}

	// Standing just above bedrock sees the three bedrock cells below.
	solids = g.SolidsNear(3*16+8, 10*16+8)
	if len(solids) != 3 {
		t.Errorf("len(SolidsNear) near bedrock = %d, expected 3", len(solids))
	}

	// Wall columns are excluded.
	solids = g.SolidsNear(8, 10*16+8)
	if len(solids) != 1 {
		t.Errorf("len(SolidsNear) at the wall = %d, expected 1", len(solids))
	}
}

func TestFullRowAndScroll(t *testing.T) {
	g := NewGrid(12, 16)
	if _, ok := g.FullRow(); ok {
		t.Fatal("empty grid should have no full row")
	}
	for cx := 1; cx <= 10; cx++ {
		g.Set(cx, 10, NewTile(KindNormal))
	}
	g.Set(4, 9, NewTile(KindNormal))

	row, ok := g.FullRow()
	if !ok || row != 10 {
		t.Fatalf("FullRow() = %d, %v, expected 10, true", row, ok)
	}

	removed := g.Scroll()
	if removed != 10 {
		t.Errorf("Scroll() removed %d, expected 10", removed)
	}
	if g.Floor() != 10 {
		t.Errorf("Floor() = %d, expected 10", g.Floor())
	}
	if !g.Has(4, 9) {
		t.Error("tile above the scrolled row should survive")
	}
	if got := g.Height(1); got != 10 {
		t.Errorf("Height(1) = %d, expected the new floor 10", got)
	}
	if got := g.Height(4); got != 9 {
		t.Errorf("Height(4) = %d, expected 9", got)
	}
	if !g.Solid(2, 10) {
		t.Error("new floor row should be solid bedrock")
	}
}

func TestCloneEqual(t *testing.T) {
	g := NewGrid(12, 16)
	g.Set(3, 10, Tile{Kind: KindFragile, Fuse: &Fuse{Remaining: 40}})
	c := g.Clone()
	if !g.Equal(c) {
		t.Fatal("clone should equal original")
	}
	tile, _ := c.Get(3, 10)
	tile.Fuse.Remaining = 10
	if g.Equal(c) {
		t.Error("fuse of the clone should be independent")
	}
}

func TestParseKind(t *testing.T) {
	for k := KindNormal; k < kindCount; k++ {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("lava"); ok {
		t.Error("ParseKind(lava) should fail")
	}
}
