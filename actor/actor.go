package actor

import (
	"github.com/milk9111/gridwalk/physics"
	"github.com/milk9111/gridwalk/terrain"
)

// Actor is the capability interface every movable entity implements. The
// motion resolver itself only touches the physical body; these hooks are
// how entity-specific behavior plugs into the tick.
type Actor interface {
	// Body exposes the actor's physical state. The registry borrows it for
	// the move and repel phases of one tick.
	Body() *physics.Body
	// UpdateImpulse applies the actor's per-tick impulse policy (player
	// input, scripted AI, gravity).
	UpdateImpulse(g *terrain.Grid)
	// HandleCollisions reacts to the collision flags produced by this
	// tick's move phase.
	HandleCollisions(flags physics.CollisionFlags)
	// FrameUpdate runs end-of-tick bookkeeping (timers, animation state).
	FrameUpdate()
}

// Registry owns the actor list and sequences one simulation tick: impulse
// phase for every actor, then the move phase, then pairwise repulsion, then
// collision callbacks, then frame updates. Repulsion pairs are visited in
// registration order so identical inputs replay identically.
type Registry struct {
	ids    physics.IDSource
	actors []Actor
	damper float64
}

func NewRegistry() *Registry {
	return &Registry{damper: physics.DefaultDamper}
}

// NewBody allocates a body carrying the next unique identifier.
func (r *Registry) NewBody(x, y, w, h float64) *physics.Body {
	return physics.NewBody(r.ids.Next(), x, y, w, h)
}

func (r *Registry) Add(a Actor) {
	if a == nil {
		return
	}
	r.actors = append(r.actors, a)
}

func (r *Registry) Remove(a Actor) bool {
	for i, cur := range r.actors {
		if cur == a {
			r.actors = append(r.actors[:i], r.actors[i+1:]...)
			return true
		}
	}
	return false
}

// Actors returns the registered actors in tick order.
func (r *Registry) Actors() []Actor {
	out := make([]Actor, 0, len(r.actors))
	return append(out, r.actors...)
}

// Tick advances the simulation one step against g.
func (r *Registry) Tick(g *terrain.Grid) {
	for _, a := range r.actors {
		a.UpdateImpulse(g)
	}

	flags := make([]physics.CollisionFlags, len(r.actors))
	for i, a := range r.actors {
		flags[i] = physics.Move(a.Body(), g)
	}

	for i := 0; i < len(r.actors); i++ {
		for j := i + 1; j < len(r.actors); j++ {
			physics.Repel(r.actors[i].Body(), r.actors[j].Body(), r.damper)
		}
	}

	for i, a := range r.actors {
		a.HandleCollisions(flags[i])
	}
	for _, a := range r.actors {
		a.FrameUpdate()
	}
}
