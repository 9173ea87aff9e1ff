package physics

import "testing"

func TestBodyGeometry(t *testing.T) {
	b := NewBody(1, 10, 20, 4, 6)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"Top", b.Top(), 20},
		{"Bottom", b.Bottom(), 26},
		{"Left", b.Left(), 10},
		{"Right", b.Right(), 14},
		{"CenterX", b.CenterX(), 12},
		{"CenterY", b.CenterY(), 23},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}

	// Derived geometry recomputes from position, never caches.
	b.X, b.Y = 0, 0
	if b.Right() != 4 || b.Bottom() != 6 || b.CenterX() != 2 {
		t.Fatalf("geometry not recomputed after move: right=%v bottom=%v centerX=%v",
			b.Right(), b.Bottom(), b.CenterX())
	}
}

func TestBodyDefaults(t *testing.T) {
	b := NewBody(7, 0, 0, 1, 1)
	if b.Weight != 1 {
		t.Fatalf("default weight = %v, want 1", b.Weight)
	}
	if !b.Collideable {
		t.Fatalf("bodies default to collideable")
	}
	if _, ok := b.Fallthrough(); ok {
		t.Fatalf("new body must not carry a fallthrough marker")
	}
}

func TestApplyImpulse(t *testing.T) {
	b := NewBody(1, 0, 0, 1, 1)
	b.ApplyImpulse(2, -3)
	b.ApplyImpulse(0.5, 1)
	if b.VX != 2.5 || b.VY != -2 {
		t.Fatalf("velocity = (%v, %v), want (2.5, -2)", b.VX, b.VY)
	}
}

func TestFallthroughMarker(t *testing.T) {
	b := NewBody(1, 0, 40, 2, 2)
	b.SetFallthrough(40)
	if y, ok := b.Fallthrough(); !ok || y != 40 {
		t.Fatalf("marker = (%v, %v), want (40, true)", y, ok)
	}
	b.ClearFallthrough()
	if _, ok := b.Fallthrough(); ok {
		t.Fatalf("marker should be cleared")
	}
}

func TestIDSource(t *testing.T) {
	var ids IDSource
	for want := 1; want <= 5; want++ {
		if got := ids.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}

	// Independent sources allocate independent sequences.
	var other IDSource
	if got := other.Next(); got != 1 {
		t.Fatalf("fresh source Next() = %d, want 1", got)
	}
}
