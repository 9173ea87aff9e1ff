package physics

import (
	"math"

	"github.com/milk9111/gridwalk/terrain"
)

const (
	// snapEpsilon keeps a snapped edge just inside the cell it resolved
	// against, so the follow-up probes don't read the neighboring cell.
	snapEpsilon = 0.01
	// solidProbeOffset is how far above the bottom edge the solid ground
	// test samples. Probing above the edge catches contact one step early,
	// before the body visibly sinks into the surface.
	solidProbeOffset = 0.1
	// groundProbeBias is how far below the bottom edge walkable tests
	// sample, so a body snapped to rowTop-epsilon still reads as resting
	// on the row.
	groundProbeBias = 0.1
	// FallthroughGrace is the vertical distance over which the fallthrough
	// marker keeps suppressing passable collision after a drop. Drivers
	// clear the marker once the body has fallen past it.
	FallthroughGrace = 5.0
)

// CollisionFlags reports which axes resolved against terrain during one
// Move call. The driver reads these to trigger side effects (landing
// sounds, state transitions, zeroing velocity).
type CollisionFlags struct {
	Horizontal bool
	Vertical   bool
}

// Move integrates one body through the grid for one tick. Motion is split
// into ceil(|v|) sub-steps so no terrain cell narrower than the velocity is
// skipped. Each sub-step resolves vertical then horizontal motion, then
// applies 1px slope correction; both axes can resolve within the same tick.
// Move mutates position only; velocity is left to the driver.
func Move(b *Body, g *terrain.Grid) CollisionFlags {
	var flags CollisionFlags

	magnitude := math.Ceil(math.Hypot(b.VX, b.VY))
	if magnitude == 0 {
		return flags
	}
	stepX := b.VX / magnitude
	stepY := b.VY / magnitude
	movingX := b.VX != 0
	movingY := b.VY != 0

	for i := 0; i < int(magnitude) && (movingX || movingY); i++ {
		if movingY {
			b.Y += stepY
			// Upward motion never collides: there is no ceiling in this
			// model. Downward motion stops on solid ground, or on walkable
			// ground when the body isn't falling through a passable volume.
			if b.VY >= 0 &&
				(groundLine(b, g, -solidProbeOffset, terrain.Class.IsSolid) ||
					(onWalkableGround(b, g, 0) && !InsidePassable(b, g))) {
				movingY = false
				flags.Vertical = true
				b.Y = math.Floor(b.Bottom()) - snapEpsilon - b.H
			}
		}

		if movingX {
			b.X += stepX
			if leadingEdgeWalled(b, g, stepX) {
				movingX = false
				flags.Horizontal = true
				// Snap the leading edge out of the column the probe hit.
				if stepX < 0 {
					b.X = math.Ceil(b.Left() + snapEpsilon)
				} else {
					b.X = math.Floor(b.Right()-snapEpsilon) - snapEpsilon - b.W
				}
			}
		}

		// Slope correction: while walking with vertical motion settled,
		// climb or descend single-pixel terrain steps instead of stuttering.
		if !movingY && movingX {
			if onWalkableGround(b, g, groundProbeBias-1) {
				b.Y--
			} else if !onWalkableGround(b, g, groundProbeBias) && onWalkableGround(b, g, groundProbeBias+1) {
				b.Y++
			}
		}
	}

	return flags
}

// IsGrounded reports whether the body rests stably on walkable,
// non-passable terrain. Moving upward is never grounded; resting on fully
// solid terrain always is; anything else is grounded unless the body is
// currently inside a passable volume (mid fall-through).
func IsGrounded(b *Body, g *terrain.Grid) bool {
	if b.VY < 0 {
		return false
	}
	if !onWalkableGround(b, g, groundProbeBias) {
		return false
	}
	if groundLine(b, g, groundProbeBias, terrain.Class.IsSolid) {
		return true
	}
	if InsidePassable(b, g) {
		return false
	}
	return true
}

// InsidePassable reports whether the body currently overlaps terrain it can
// fall through: either within the grace window after an intentional drop,
// or with passable cells just above its bottom edge.
func InsidePassable(b *Body, g *terrain.Grid) bool {
	if y, ok := b.Fallthrough(); ok && math.Abs(b.Y-y) < FallthroughGrace {
		return true
	}
	probeY := b.Bottom() - 2
	if g.ClassificationAt(b.CenterX(), probeY).IsPointWalkable() {
		return true
	}
	return g.TestLine(
		terrain.Point{X: b.Left(), Y: probeY},
		terrain.Point{X: b.Right() - snapEpsilon, Y: probeY},
		terrain.Class.IsPassable,
		int(b.W),
	)
}

// onWalkableGround tests whether the body rests on walkable terrain with
// its bottom probe shifted dy from the bottom edge: a single-pixel center
// probe for point-walkable cells, then a full-span line test, one sample
// per pixel of body width. Collision checks probe at dy 0 (the bottom
// itself); resting queries probe groundProbeBias lower so a body snapped
// just above a row boundary still reads its supporting row.
func onWalkableGround(b *Body, g *terrain.Grid, dy float64) bool {
	if g.ClassificationAt(b.CenterX(), b.Bottom()+dy).IsPointWalkable() {
		return true
	}
	return groundLine(b, g, dy, terrain.Class.IsWalkable)
}

// groundLine runs pred across the body's bottom span at dy relative to the
// bottom edge.
func groundLine(b *Body, g *terrain.Grid, dy float64, pred func(terrain.Class) bool) bool {
	y := b.Bottom() + dy
	return g.TestLine(
		terrain.Point{X: b.Left(), Y: y},
		terrain.Point{X: b.Right() - snapEpsilon, Y: y},
		pred,
		int(b.W),
	)
}

// leadingEdgeWalled probes a vertical line along the body's leading edge,
// from the top down to just above the bottom pixel row. The bottom row is
// skipped so ground classified as walled directly under the body doesn't
// read as a side hit.
func leadingEdgeWalled(b *Body, g *terrain.Grid, stepX float64) bool {
	var edge float64
	if stepX < 0 {
		edge = b.Left() + snapEpsilon
	} else {
		edge = b.Right() - snapEpsilon
	}
	return g.TestLine(
		terrain.Point{X: edge, Y: b.Top()},
		terrain.Point{X: edge, Y: b.Bottom() - 1 - snapEpsilon},
		terrain.Class.IsWalled,
		int(b.H),
	)
}
