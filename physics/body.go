package physics

// Body is a movable axis-aligned rectangle: position (top-left origin),
// size, velocity, and weight. The motion resolver borrows a Body for the
// duration of one call and never retains it; ownership stays with whatever
// actor system created it.
type Body struct {
	// ID is an opaque identifier assigned at creation. It is used only for
	// external bookkeeping, never by the physics logic.
	ID int

	X, Y float64
	W, H float64

	VX, VY float64

	// Weight scales how strongly repulsion moves this body. Always positive.
	Weight float64

	// Collideable bodies participate in pairwise repulsion. A
	// non-collideable body blocks nothing but can still be queried.
	Collideable bool

	fallthroughY   float64
	hasFallthrough bool
}

// NewBody creates a body with the given identifier, position, and size,
// with default weight 1 and collideable set.
func NewBody(id int, x, y, w, h float64) *Body {
	return &Body{
		ID:          id,
		X:           x,
		Y:           y,
		W:           w,
		H:           h,
		Weight:      1,
		Collideable: true,
	}
}

// Derived geometry, always recomputed from position and size.

func (b *Body) Top() float64     { return b.Y }
func (b *Body) Bottom() float64  { return b.Y + b.H }
func (b *Body) Left() float64    { return b.X }
func (b *Body) Right() float64   { return b.X + b.W }
func (b *Body) CenterX() float64 { return b.X + b.W/2 }
func (b *Body) CenterY() float64 { return b.Y + b.H/2 }

// ApplyImpulse adds (dx, dy) directly to the body's velocity. No clamping:
// gravity, jump strength, and speed limits are caller policy.
func (b *Body) ApplyImpulse(dx, dy float64) {
	b.VX += dx
	b.VY += dy
}

// SetFallthrough records the y at which the body intentionally dropped
// through passable terrain, suppressing re-collision for a short vertical
// grace window.
func (b *Body) SetFallthrough(y float64) {
	b.fallthroughY = y
	b.hasFallthrough = true
}

// ClearFallthrough removes the fallthrough marker.
func (b *Body) ClearFallthrough() {
	b.hasFallthrough = false
}

// Fallthrough returns the marker y and whether a marker is set.
func (b *Body) Fallthrough() (float64, bool) {
	return b.fallthroughY, b.hasFallthrough
}

// IDSource allocates monotonically increasing body identifiers, starting at
// 1. It replaces a process-global counter so tests and parallel worlds get
// independent sequences.
type IDSource struct {
	next int
}

// Next returns the next unused identifier.
func (s *IDSource) Next() int {
	s.next++
	return s.next
}
