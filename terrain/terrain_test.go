package terrain

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// fillImage builds a w x h RGBA image painted with a single palette color.
func fillImage(w, h int, c RGB) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}
	return img
}

func TestPaletteRoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		color RGB
		want  Class
	}{
		{"black_solid", RGB{0x00, 0x00, 0x00}, ClassSolid},
		{"white_air", RGB{0xff, 0xff, 0xff}, ClassAir},
		{"red_passable_solid", RGB{0xff, 0x00, 0x00}, ClassPassableSolid},
		{"green_passable_ramp", RGB{0x00, 0xff, 0x00}, ClassPassableRamp},
		{"magenta_droppable", RGB{0xff, 0x00, 0xff}, ClassDroppable},
		{"yellow_point_passable", RGB{0xff, 0xff, 0x00}, ClassPointPassable},
		{"gray_solid_no_fear", RGB{0x80, 0x80, 0x80}, ClassSolidNoFear},
		{"pink_droppable_no_fear", RGB{0xff, 0xaf, 0xaf}, ClassDroppableNoFear},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := NewGrid(fillImage(1, 1, c.color))
			if err != nil {
				t.Fatalf("NewGrid: %v", err)
			}
			if got := g.ClassificationAt(0, 0); got != c.want {
				t.Fatalf("classification = %08b, want %08b", got, c.want)
			}
		})
	}
}

func TestClassFlags(t *testing.T) {
	cases := []struct {
		name  string
		class Class
		solid, walkable, pointWalkable, fearless,
		walled, passable, droppable bool
	}{
		{name: "air", class: ClassAir, droppable: true},
		{name: "solid", class: ClassSolid, solid: true, walkable: true, walled: true},
		{name: "passable_solid", class: ClassPassableSolid, walkable: true, passable: true},
		{name: "droppable", class: ClassDroppable, walkable: true, passable: true, droppable: true},
		{name: "point_passable", class: ClassPointPassable, pointWalkable: true, droppable: true},
		{name: "solid_no_fear", class: ClassSolidNoFear, solid: true, walkable: true, walled: true, fearless: true},
		{name: "droppable_no_fear", class: ClassDroppableNoFear, walkable: true, passable: true, droppable: true, fearless: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			checks := []struct {
				name string
				got  bool
				want bool
			}{
				{"IsSolid", c.class.IsSolid(), c.solid},
				{"IsWalkable", c.class.IsWalkable(), c.walkable},
				{"IsPointWalkable", c.class.IsPointWalkable(), c.pointWalkable},
				{"IsFearless", c.class.IsFearless(), c.fearless},
				{"IsWalled", c.class.IsWalled(), c.walled},
				{"IsPassable", c.class.IsPassable(), c.passable},
				{"IsDroppable", c.class.IsDroppable(), c.droppable},
			}
			for _, ch := range checks {
				if ch.got != ch.want {
					t.Errorf("%s = %v, want %v", ch.name, ch.got, ch.want)
				}
			}
		})
	}
}

func TestPassableRampSharesSemantics(t *testing.T) {
	// Red and green are visually distinct but behave identically.
	if ClassPassableSolid != ClassPassableRamp {
		t.Fatalf("ClassPassableSolid (%08b) != ClassPassableRamp (%08b)", ClassPassableSolid, ClassPassableRamp)
	}
}

func TestUnrecognizedColorFailsConstruction(t *testing.T) {
	img := fillImage(3, 2, RGB{0xff, 0xff, 0xff})
	img.Set(2, 1, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff})

	g, err := NewGrid(img)
	if g != nil {
		t.Fatalf("expected no grid on palette error, got %v", g)
	}
	var pe *PaletteError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *PaletteError, got %v", err)
	}
	if pe.X != 2 || pe.Y != 1 {
		t.Fatalf("pixel = (%d, %d), want (2, 1)", pe.X, pe.Y)
	}
	if pe.Color != (RGB{0x12, 0x34, 0x56}) {
		t.Fatalf("color = %+v, want {12 34 56}", pe.Color)
	}
}

func TestClassString(t *testing.T) {
	cases := []struct {
		class Class
		want  string
	}{
		{Class(0), "none"},
		{Solid, "solid"},
		{ClassAir, "droppable"},
		{ClassSolid, "solid|walkable|walled"},
		{ClassPointPassable, "point-walkable|droppable"},
	}
	for _, c := range cases {
		if got := c.class.String(); got != c.want {
			t.Errorf("String(%08b) = %q, want %q", uint8(c.class), got, c.want)
		}
	}
}
