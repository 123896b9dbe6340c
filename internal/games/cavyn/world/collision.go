package world

import "github.com/vovakirdan/cavyn/internal/core"

// Contacts records which sides of a moving box touched a solid.
type Contacts struct {
	Left, Right, Top, Bottom bool
}

// Wall reports a left or right contact.
func (c Contacts) Wall() bool { return c.Left || c.Right }

// Resolve moves box by (dx, dy) against the static solids, X axis first and
// then Y. An overlap after each axis move snaps the box to the contacted
// edge. Solids the box already overlapped before moving along an axis are
// not pushed against on that axis.
func Resolve(box core.Box, dx, dy float64, solids []core.Box) (core.Box, Contacts) {
	var c Contacts

	dx, dy = core.Finite(dx), core.Finite(dy)

	if dx != 0 {
		start := box
		box.X += dx
		for _, s := range solids {
			if !box.Overlaps(s) || start.Overlaps(s) {
				continue
			}
			if dx > 0 {
				box.X = s.X - box.W
				c.Right = true
			} else {
				box.X = s.Right()
				c.Left = true
			}
		}
	}

	if dy != 0 {
		start := box
		box.Y += dy
		for _, s := range solids {
			if !box.Overlaps(s) || start.Overlaps(s) {
				continue
			}
			if dy > 0 {
				box.Y = s.Y - box.H
				c.Bottom = true
			} else {
				box.Y = s.Bottom()
				c.Top = true
			}
		}
	}

	return box, c
}

