package terrain

import "fmt"

// Class is a bitmask describing the traversal properties of one grid cell.
// Collision code tests individual flags, never named combinations.
type Class uint8

const (
	// Solid fully blocks horizontal movement and counts as ground.
	Solid Class = 1 << iota
	// Walkable can be stood on across the body's full bottom span.
	Walkable
	// PointWalkable can be stood on only via a single-pixel center probe.
	PointWalkable
	// Fearless marks ground that doesn't trigger fall-fear behavior.
	Fearless
	// Walled blocks horizontal movement (side collision).
	Walled
	// Passable can be fallen through intentionally (platforms, ramps).
	Passable
	// Droppable is explicitly markable as a fall-through surface.
	Droppable
)

// Named classes. The palette below maps image colors onto these.
const (
	ClassAir             = Droppable
	ClassSolid           = Solid | Walled | Walkable
	ClassPassableSolid   = Walkable | Passable
	ClassPassableRamp    = Walkable | Passable
	ClassDroppable       = Walkable | Passable | Droppable
	ClassPointPassable   = PointWalkable | Droppable
	ClassSolidNoFear     = ClassSolid | Fearless
	ClassDroppableNoFear = ClassDroppable | Fearless
)

func (c Class) IsSolid() bool         { return c&Solid != 0 }
func (c Class) IsWalkable() bool      { return c&Walkable != 0 }
func (c Class) IsPointWalkable() bool { return c&PointWalkable != 0 }
func (c Class) IsFearless() bool      { return c&Fearless != 0 }
func (c Class) IsWalled() bool        { return c&Walled != 0 }
func (c Class) IsPassable() bool      { return c&Passable != 0 }
func (c Class) IsDroppable() bool     { return c&Droppable != 0 }

var flagNames = []struct {
	flag Class
	name string
}{
	{Solid, "solid"},
	{Walkable, "walkable"},
	{PointWalkable, "point-walkable"},
	{Fearless, "fearless"},
	{Walled, "walled"},
	{Passable, "passable"},
	{Droppable, "droppable"},
}

// String lists the set flags, pipe-separated, for debug display.
func (c Class) String() string {
	if c == 0 {
		return "none"
	}
	var out string
	for _, f := range flagNames {
		if c&f.flag == 0 {
			continue
		}
		if out != "" {
			out += "|"
		}
		out += f.name
	}
	return out
}

// RGB is an 8-bit-per-channel palette key.
type RGB struct {
	R, G, B uint8
}

// Palette maps the eight recognized terrain colors to their classes.
// Any other pixel color is a construction error; there is no "unknown
// terrain" runtime value.
var Palette = map[RGB]Class{
	{0x00, 0x00, 0x00}: ClassSolid,           // black
	{0xff, 0xff, 0xff}: ClassAir,             // white
	{0xff, 0x00, 0x00}: ClassPassableSolid,   // red
	{0x00, 0xff, 0x00}: ClassPassableRamp,    // green
	{0xff, 0x00, 0xff}: ClassDroppable,       // magenta
	{0xff, 0xff, 0x00}: ClassPointPassable,   // yellow
	{0x80, 0x80, 0x80}: ClassSolidNoFear,     // gray
	{0xff, 0xaf, 0xaf}: ClassDroppableNoFear, // pink
}

// PaletteError reports a terrain image pixel whose color matches no
// palette entry. The coordinate and raw channel values identify the
// offending pixel for asset debugging.
type PaletteError struct {
	X, Y  int
	Color RGB
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("terrain: unrecognized color rgb(%d, %d, %d) at pixel (%d, %d)",
		e.Color.R, e.Color.G, e.Color.B, e.X, e.Y)
}
