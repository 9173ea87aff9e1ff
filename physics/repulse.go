package physics

import "math"

const (
	// DefaultDamper is the standard falloff constant for body repulsion.
	DefaultDamper = 8.5
	// repelRangeFactor scales the combined half-widths into the interaction
	// range; bodies further apart than this don't repel at all.
	repelRangeFactor = 0.85
	// repelBandHeight is the maximum bottom-edge difference for two bodies
	// to count as sharing a vertical band. A body on a platform doesn't
	// shove one standing below it.
	repelBandHeight = 15.0
)

// RepulsionForce returns the separation force magnitude for two bodies
// whose horizontal centers are distance apart. Inverse-linear falloff:
// 1 at contact, halved once |distance| reaches damper.
func RepulsionForce(distance, damper float64) float64 {
	return damper / (math.Abs(distance) + damper)
}

// Repel applies a soft separating force between two overlapping,
// vertically aligned bodies, mutating both horizontal velocities. It
// reports whether the pair was within interaction range. This is crowd
// separation between actors, not hard collision: a non-collideable first
// body does nothing, a non-collideable second body or a pair in different
// vertical bands acknowledges proximity without applying force.
func Repel(a, b *Body, damper float64) bool {
	if !a.Collideable {
		return false
	}
	dist := a.CenterX() - b.CenterX()
	if math.Abs(dist) >= repelRangeFactor*(a.W/2+b.W/2) {
		return false
	}
	if !b.Collideable {
		return true
	}
	if math.Abs(a.Bottom()-b.Bottom()) >= repelBandHeight {
		return true
	}

	if dist == 0 {
		// coincident centers: break the tie deterministically, pushing a
		// to the right
		dist = snapEpsilon
	}
	dir := 1.0
	if dist < 0 {
		dir = -1
	}
	force := RepulsionForce(dist, damper)

	// Each body is pushed away from the other, scaled by the inverse
	// weight ratio. A body still moving toward its partner is pushed twice
	// as hard as one already separating.
	fa := dir * force * (b.Weight / a.Weight)
	if a.VX*dir < 0 {
		fa *= 2
	}
	fb := -dir * force * (a.Weight / b.Weight)
	if b.VX*dir > 0 {
		fb *= 2
	}
	a.VX += fa
	b.VX += fb
	return true
}
