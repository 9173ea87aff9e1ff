package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/gridwalk/physics"
)

// LoadSpec reads and unmarshals a prefab file into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// BodySpec is the physical portion shared by every prefab.
type BodySpec struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Weight      float64 `yaml:"weight"`
	Collideable *bool   `yaml:"collideable"`
}

// Apply copies the spec's non-default fields onto b. Zero weight and an
// absent collideable key leave the body's defaults alone.
func (s BodySpec) Apply(b *physics.Body) {
	b.W = s.Width
	b.H = s.Height
	if s.Weight > 0 {
		b.Weight = s.Weight
	}
	if s.Collideable != nil {
		b.Collideable = *s.Collideable
	}
}

type PlayerSpec struct {
	Name      string   `yaml:"name"`
	MoveSpeed float64  `yaml:"move_speed"`
	JumpSpeed float64  `yaml:"jump_speed"`
	Gravity   float64  `yaml:"gravity"`
	Body      BodySpec `yaml:"body"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// NPCSpec describes a scripted actor: its body plus the tengo script that
// drives its impulse each tick.
type NPCSpec struct {
	Name    string   `yaml:"name"`
	Script  string   `yaml:"script"`
	Gravity float64  `yaml:"gravity"`
	Body    BodySpec `yaml:"body"`
}

// LoadNPCSpec loads the prefab for one NPC kind, e.g. "waddler".
func LoadNPCSpec(kind string) (*NPCSpec, error) {
	spec, err := LoadSpec[NPCSpec](kind + ".yaml")
	if err != nil {
		return nil, err
	}
	if spec.Script == "" {
		return nil, fmt.Errorf("prefabs: npc %s: missing script", kind)
	}
	return &spec, nil
}
