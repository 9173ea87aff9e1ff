package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

// dialogueRange is how close (in cells) the player must stand for an NPC's
// dialogue to show.
const dialogueRange = 20.0

// drawWorld paints the terrain raster and every body into the camera view.
func (g *Game) drawWorld(view *ebiten.Image) {
	camX, camY := g.camera.ViewTopLeft()
	zoom := g.camera.Zoom()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(-camX*zoom, -camY*zoom)
	op.Filter = ebiten.FilterNearest
	view.DrawImage(g.terrain, op)

	for _, a := range g.registry.Actors() {
		b := a.Body()
		clr := colornames.Orange
		switch {
		case a == g.player:
			clr = colornames.Aquamarine
		case !b.Collideable:
			clr = colornames.Violet
		}
		x := float32((b.X - camX) * zoom)
		y := float32((b.Y - camY) * zoom)
		w := float32(b.W * zoom)
		h := float32(b.H * zoom)
		vector.FillRect(view, x, y, w, h, clr, false)
		vector.StrokeRect(view, x, y, w, h, 1.0, colornames.Black, false)
	}

	g.drawDialogue(view, camX, camY, zoom)
}

func (g *Game) drawDialogue(view *ebiten.Image, camX, camY, zoom float64) {
	pb := g.player.Body()
	for _, npc := range g.npcs {
		if len(npc.Dialogue) == 0 {
			continue
		}
		b := npc.Body()
		if math.Hypot(pb.CenterX()-b.CenterX(), pb.CenterY()-b.CenterY()) > dialogueRange {
			continue
		}
		line := npc.Dialogue[(g.frames/180)%len(npc.Dialogue)]
		x := int((b.X - camX) * zoom)
		y := int((b.Top()-camY)*zoom) - 16
		ebitenutil.DebugPrintAt(view, line, x, y)
	}
}
