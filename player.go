package main

import (
	"math"

	"github.com/milk9111/gridwalk/common"
	"github.com/milk9111/gridwalk/physics"
	"github.com/milk9111/gridwalk/prefabs"
	"github.com/milk9111/gridwalk/terrain"
)

// Player is the keyboard-driven actor.
type Player struct {
	body  *physics.Body
	input *Input
	spec  *prefabs.PlayerSpec

	grounded bool
}

func NewPlayer(body *physics.Body, input *Input, spec *prefabs.PlayerSpec) *Player {
	spec.Body.Apply(body)
	return &Player{body: body, input: input, spec: spec}
}

func (p *Player) Body() *physics.Body { return p.body }

func (p *Player) Grounded() bool { return p.grounded }

func (p *Player) UpdateImpulse(g *terrain.Grid) {
	p.grounded = physics.IsGrounded(p.body, g)
	p.body.ApplyImpulse(0, p.spec.Gravity)

	// Steer horizontal velocity toward the input direction rather than
	// setting it outright, so repulsion shoves still read through.
	p.body.VX = common.Lerp(p.body.VX, p.input.MoveX*p.spec.MoveSpeed, 0.4)
	if p.input.MoveX == 0 && math.Abs(p.body.VX) < 0.05 {
		p.body.VX = 0
	}

	if p.input.JumpPressed && p.grounded {
		p.body.VY = -p.spec.JumpSpeed
	}
	if p.input.DropPressed && p.grounded {
		p.body.SetFallthrough(p.body.Y)
	}
}

func (p *Player) HandleCollisions(flags physics.CollisionFlags) {
	if flags.Vertical {
		p.body.VY = 0
	}
	if flags.Horizontal {
		p.body.VX = 0
	}
}

func (p *Player) FrameUpdate() {
	// The drop marker only matters within the grace window below the drop
	// point; clear it once the body has fallen past.
	if y, ok := p.body.Fallthrough(); ok && math.Abs(p.body.Y-y) >= physics.FallthroughGrace {
		p.body.ClearFallthrough()
	}
}
