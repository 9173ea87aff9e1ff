// Package world loads a level into a live scene: the classification grid,
// the source raster for rendering, and the level's table entry.
package world

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/milk9111/gridwalk/levels"
	"github.com/milk9111/gridwalk/terrain"
)

// World is one loaded level. The grid is immutable after Load; the raster
// is the decoded terrain image kept around for rendering and inspection.
type World struct {
	Level      *levels.Level
	Grid       *terrain.Grid
	Raster     image.Image
	Background color.Color
}

// Load reads the named level from the table, decodes its terrain image
// (PNG or BMP), and classifies it into a grid.
func Load(name string) (*World, error) {
	lvl, err := levels.Load(name)
	if err != nil {
		return nil, err
	}

	raw, err := levels.ReadAsset(lvl.Terrain)
	if err != nil {
		return nil, fmt.Errorf("world: read terrain %s: %w", lvl.Terrain, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("world: decode terrain %s: %w", lvl.Terrain, err)
	}

	grid, err := terrain.NewGrid(img)
	if err != nil {
		return nil, fmt.Errorf("world: classify terrain %s: %w", lvl.Terrain, err)
	}

	bg := color.Color(color.Black)
	if lvl.Background != nil {
		bg = lvl.Background.Color
	}

	return &World{
		Level:      lvl,
		Grid:       grid,
		Raster:     img,
		Background: bg,
	}, nil
}

// Dispose drops the raster so a level switch releases the decoded image
// before the next Load.
func (w *World) Dispose() {
	w.Raster = nil
	w.Grid = nil
}
