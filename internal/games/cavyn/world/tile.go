// Package world holds the tile lattice of the shaft: placed tiles keyed by
// grid coordinate, per-column stack heights, the side walls and the
// axis-separated collision solver shared by every moving body.
package world

// Kind identifies the behavior of a tile.
type Kind uint8

const (
	KindNormal Kind = iota
	KindPlaced
	KindFragile
	KindBounce
	KindSpike
	KindChest
	KindOpenedChest
	KindGreed
	KindMagnetic
	KindSticky
	kindCount
)

var kindNames = [...]string{
	KindNormal:      "normal",
	KindPlaced:      "placed",
	KindFragile:     "fragile",
	KindBounce:      "bounce",
	KindSpike:       "spike",
	KindChest:       "chest",
	KindOpenedChest: "opened_chest",
	KindGreed:       "greed",
	KindMagnetic:    "magnetic",
	KindSticky:      "sticky",
}

func (k Kind) String() string {
	if k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a config name to a Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindNormal, false
}

// Fuse is the countdown planted on a fragile tile when it is stepped on.
type Fuse struct {
	Remaining float64
}

// Tile is one grid entry. Fuse is only set on an armed fragile tile.
type Tile struct {
	Kind Kind
	Fuse *Fuse
}

// NewTile returns an unarmed tile of the given kind.
func NewTile(k Kind) Tile {
	return Tile{Kind: k}
}

// Armed reports whether a fuse is burning on the tile.
func (t Tile) Armed() bool {
	return t.Fuse != nil
}

// Coord is a grid coordinate: column X, row Y (rows grow downward).
type Coord struct {
	X, Y int
}
