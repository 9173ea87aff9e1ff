package prefabs

import (
	"testing"

	"github.com/milk9111/gridwalk/physics"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.Name != "player" {
		t.Errorf("name = %q, want player", spec.Name)
	}
	if spec.MoveSpeed <= 0 || spec.JumpSpeed <= 0 || spec.Gravity <= 0 {
		t.Errorf("movement tuning must be positive: %+v", spec)
	}
	if spec.Body.Width <= 0 || spec.Body.Height <= 0 {
		t.Errorf("body size must be positive: %+v", spec.Body)
	}
}

func TestLoadNPCSpec(t *testing.T) {
	cases := []struct {
		kind        string
		script      string
		collideable bool
	}{
		{"waddler", "patrol.tengo", true},
		{"ghost", "hover.tengo", false},
	}
	for _, c := range cases {
		t.Run(c.kind, func(t *testing.T) {
			spec, err := LoadNPCSpec(c.kind)
			if err != nil {
				t.Fatalf("LoadNPCSpec(%s): %v", c.kind, err)
			}
			if spec.Script != c.script {
				t.Errorf("script = %q, want %q", spec.Script, c.script)
			}

			b := physics.NewBody(1, 0, 0, 0, 0)
			spec.Body.Apply(b)
			if b.W != spec.Body.Width || b.H != spec.Body.Height {
				t.Errorf("applied size = (%v, %v), want (%v, %v)", b.W, b.H, spec.Body.Width, spec.Body.Height)
			}
			if b.Collideable != c.collideable {
				t.Errorf("collideable = %v, want %v", b.Collideable, c.collideable)
			}
		})
	}

	if _, err := LoadNPCSpec("nonexistent"); err == nil {
		t.Fatalf("unknown prefab must fail to load")
	}
}

func TestBodySpecDefaults(t *testing.T) {
	b := physics.NewBody(1, 0, 0, 1, 1)
	BodySpec{Width: 3, Height: 4}.Apply(b)

	if b.Weight != 1 {
		t.Errorf("zero spec weight must keep the default, got %v", b.Weight)
	}
	if !b.Collideable {
		t.Errorf("absent collideable key must keep the default")
	}
}

func TestLoadScripts(t *testing.T) {
	for _, name := range []string{"patrol.tengo", "scripts/hover.tengo", "prefabs/scripts/patrol.tengo"} {
		src, err := LoadScript(name)
		if err != nil {
			t.Fatalf("LoadScript(%s): %v", name, err)
		}
		if len(src) == 0 {
			t.Fatalf("LoadScript(%s) returned empty source", name)
		}
	}
}

func TestPathCleaning(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"player.yaml", "player.yaml"},
		{"prefabs/player.yaml", "player.yaml"},
		{"", ""},
	}
	for _, c := range cases {
		if got := cleanPrefabPath(c.in); got != c.want {
			t.Errorf("cleanPrefabPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	scriptCases := []struct {
		in   string
		want string
	}{
		{"patrol.tengo", "scripts/patrol.tengo"},
		{"scripts/patrol.tengo", "scripts/patrol.tengo"},
		{"prefabs/scripts/patrol.tengo", "scripts/patrol.tengo"},
	}
	for _, c := range scriptCases {
		if got := cleanScriptPath(c.in); got != c.want {
			t.Errorf("cleanScriptPath(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
