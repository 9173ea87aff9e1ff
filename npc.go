package main

import (
	"fmt"

	"github.com/milk9111/gridwalk/actor"
	"github.com/milk9111/gridwalk/levels"
	"github.com/milk9111/gridwalk/prefabs"
)

// NPC is a scripted actor together with its level placement data.
type NPC struct {
	*actor.ScriptedActor
	Kind     string
	Dialogue []string

	scriptName string
}

func buildNPC(reg *actor.Registry, placement levels.NPC) (*NPC, error) {
	spec, err := prefabs.LoadNPCSpec(placement.Prefab)
	if err != nil {
		return nil, err
	}
	src, err := prefabs.LoadScript(spec.Script)
	if err != nil {
		return nil, fmt.Errorf("npc %s: %w", placement.Prefab, err)
	}
	script, err := actor.CompileScript(src)
	if err != nil {
		return nil, fmt.Errorf("npc %s: %w", placement.Prefab, err)
	}

	body := reg.NewBody(placement.X, placement.Y, spec.Body.Width, spec.Body.Height)
	spec.Body.Apply(body)

	return &NPC{
		ScriptedActor: actor.NewScriptedActor(body, script, spec.Gravity),
		Kind:          placement.Prefab,
		Dialogue:      placement.Dialogue,
		scriptName:    spec.Script,
	}, nil
}
