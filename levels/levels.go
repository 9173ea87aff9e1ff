package levels

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Gate is a world-space coordinate a level uses for spawn and exit
// placement.
type Gate struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// NPC places one scripted actor in a level. Prefab names a file in the
// prefabs package ("waddler" loads waddler.yaml).
type NPC struct {
	Prefab   string   `yaml:"prefab"`
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	Dialogue []string `yaml:"dialogue"`
}

// Level is one entry of the static level table.
type Level struct {
	Name       string `yaml:"name"`
	Terrain    string `yaml:"terrain"`
	Background *Color `yaml:"background"`
	Entry      Gate   `yaml:"entry"`
	Exit       Gate   `yaml:"exit"`
	NPCs       []NPC  `yaml:"npcs"`
}

// Load reads the named level from the table.
func Load(name string) (*Level, error) {
	data, err := ReadAsset(name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Terrain == "" {
		return nil, fmt.Errorf("levels: %s: missing terrain image", name)
	}
	for i, npc := range lvl.NPCs {
		if npc.Prefab == "" {
			return nil, fmt.Errorf("levels: %s: npc %d: missing prefab", name, i)
		}
	}
	return &lvl, nil
}

// List returns the names of every level in the table, sorted.
func List() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, "data")
	if err != nil {
		return nil, fmt.Errorf("levels: list: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}
