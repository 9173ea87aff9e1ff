package actor

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/gridwalk/physics"
	"github.com/milk9111/gridwalk/terrain"
)

// scriptDispatch is appended to every impulse script so the runtime can
// call into the script-defined update function with stable globals.
const scriptDispatch = `
if __phase == "update" {
	update(__engine, __state)
}
`

// Script is a compiled tengo impulse controller. The script source must
// define `update := func(engine, state) { ... }`; state persists between
// calls, engine is rebuilt each tick.
type Script struct {
	compiled *tengo.Compiled
	state    *tengo.Map
}

// CompileScript compiles src once for repeated per-tick execution.
func CompileScript(src []byte) (*Script, error) {
	full := make([]byte, 0, len(src)+len(scriptDispatch)+1)
	full = append(full, src...)
	full = append(full, '\n')
	full = append(full, scriptDispatch...)

	script := tengo.NewScript(full)
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("actor: compile impulse script: %w", err)
	}
	return &Script{
		compiled: compiled,
		state:    &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

// Update runs the script's update function against the given engine surface.
func (s *Script) Update(engine map[string]tengo.Object) error {
	_ = s.compiled.Set("__phase", "update")
	_ = s.compiled.Set("__engine", &tengo.ImmutableMap{Value: engine})
	_ = s.compiled.Set("__state", s.state)
	return s.compiled.Run()
}

// ScriptedActor drives its body's impulse from a tengo script. Collision
// flags from the previous move phase are fed back to the script as
// hit_wall / hit_ground, which is how patrol scripts turn around at walls.
type ScriptedActor struct {
	body    *physics.Body
	script  *Script
	gravity float64

	grounded  bool
	hitWall   bool
	hitGround bool
}

// NewScriptedActor wraps body with a script controller. gravity is applied
// as a constant downward impulse each tick before the script runs.
func NewScriptedActor(body *physics.Body, script *Script, gravity float64) *ScriptedActor {
	return &ScriptedActor{body: body, script: script, gravity: gravity}
}

func (a *ScriptedActor) Body() *physics.Body { return a.body }

// SetScript swaps the impulse script in place. The old script's state map
// is dropped with it, so a reloaded script starts fresh.
func (a *ScriptedActor) SetScript(s *Script) { a.script = s }

func (a *ScriptedActor) UpdateImpulse(g *terrain.Grid) {
	a.body.ApplyImpulse(0, a.gravity)
	a.grounded = physics.IsGrounded(a.body, g)

	if a.script == nil {
		return
	}
	if err := a.script.Update(a.engine()); err != nil {
		log.Printf("actor: body %d impulse script: %v", a.body.ID, err)
	}
}

func (a *ScriptedActor) HandleCollisions(flags physics.CollisionFlags) {
	a.hitWall = flags.Horizontal
	a.hitGround = flags.Vertical
	if flags.Vertical {
		a.body.VY = 0
	}
	if flags.Horizontal {
		a.body.VX = 0
	}
}

func (a *ScriptedActor) FrameUpdate() {
	// Horizontal velocity decays so scripted impulses read as walking
	// speed rather than endless acceleration.
	a.body.VX *= 0.8
}

func boolObj(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

// engine builds the script-visible view of the actor for one tick.
func (a *ScriptedActor) engine() map[string]tengo.Object {
	return map[string]tengo.Object{
		"x":          &tengo.Float{Value: a.body.X},
		"y":          &tengo.Float{Value: a.body.Y},
		"vx":         &tengo.Float{Value: a.body.VX},
		"vy":         &tengo.Float{Value: a.body.VY},
		"width":      &tengo.Float{Value: a.body.W},
		"height":     &tengo.Float{Value: a.body.H},
		"grounded":   boolObj(a.grounded),
		"hit_wall":   boolObj(a.hitWall),
		"hit_ground": boolObj(a.hitGround),
		"impulse": &tengo.UserFunction{
			Name: "impulse",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				if len(args) != 2 {
					return nil, tengo.ErrWrongNumArguments
				}
				dx, ok := tengo.ToFloat64(args[0])
				if !ok {
					return nil, tengo.ErrInvalidArgumentType{Name: "dx", Expected: "float", Found: args[0].TypeName()}
				}
				dy, ok := tengo.ToFloat64(args[1])
				if !ok {
					return nil, tengo.ErrInvalidArgumentType{Name: "dy", Expected: "float", Found: args[1].TypeName()}
				}
				a.body.ApplyImpulse(dx, dy)
				return tengo.UndefinedValue, nil
			},
		},
		"drop": &tengo.UserFunction{
			Name: "drop",
			Value: func(args ...tengo.Object) (tengo.Object, error) {
				a.body.SetFallthrough(a.body.Y)
				return tengo.UndefinedValue, nil
			},
		},
	}
}
