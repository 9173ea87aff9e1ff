package main

import (
	"fmt"
	"log"
	"math"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.design/x/clipboard"

	"github.com/milk9111/gridwalk/actor"
	"github.com/milk9111/gridwalk/common"
	"github.com/milk9111/gridwalk/levels"
	"github.com/milk9111/gridwalk/prefabs"
	"github.com/milk9111/gridwalk/world"
)

// sandboxZoom is the screen pixels drawn per grid cell.
const sandboxZoom = 4.0

// exitRange is how close (in cells) the player's center must get to the
// exit gate to advance to the next level.
const exitRange = 4.0

type Game struct {
	frames int
	paused bool
	debug  bool

	input    *Input
	world    *world.World
	registry *actor.Registry
	player   *Player
	npcs     []*NPC
	camera   *Camera
	terrain  *ebiten.Image
	pauseUI  *ebitenui.UI

	levelNames []string
	levelIdx   int

	watcher        *prefabs.Watcher
	clipboardReady bool
}

func NewGame(levelName string, debug, watch bool) (*Game, error) {
	names, err := levels.List()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no levels in the table")
	}

	idx := 0
	if levelName != "" {
		base := filepath.Base(levelName)
		if ext := filepath.Ext(base); ext == ".yaml" {
			base = base[:len(base)-len(ext)]
		}
		found := false
		for i, n := range names {
			if n == base {
				idx, found = i, true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("unknown level %q (have %v)", levelName, names)
		}
	}

	g := &Game{
		input:      NewInput(),
		debug:      debug,
		levelNames: names,
		levelIdx:   idx,
	}
	if err := g.loadLevel(names[idx]); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)

	if watch {
		w, err := prefabs.NewWatcher("prefabs", filepath.Join("prefabs", "scripts"))
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if debug {
		if err := clipboard.Init(); err != nil {
			log.Printf("clipboard unavailable: %v", err)
		} else {
			g.clipboardReady = true
		}
	}

	return g, nil
}

// loadLevel replaces the current scene with the named level: new world,
// fresh registry, player at the entry gate, NPCs per the level table.
func (g *Game) loadLevel(name string) error {
	if g.world != nil {
		g.world.Dispose()
	}

	w, err := world.Load(name)
	if err != nil {
		return err
	}

	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}

	reg := actor.NewRegistry()
	body := reg.NewBody(w.Level.Entry.X, w.Level.Entry.Y, playerSpec.Body.Width, playerSpec.Body.Height)
	player := NewPlayer(body, g.input, playerSpec)
	reg.Add(player)

	var npcs []*NPC
	for _, placement := range w.Level.NPCs {
		npc, err := buildNPC(reg, placement)
		if err != nil {
			log.Printf("level %s: skipping npc: %v", name, err)
			continue
		}
		reg.Add(npc)
		npcs = append(npcs, npc)
	}

	g.world = w
	g.registry = reg
	g.player = player
	g.npcs = npcs
	g.terrain = ebiten.NewImageFromImage(w.Raster)

	g.camera = NewCamera(common.BaseWidth, common.BaseHeight, sandboxZoom)
	g.camera.SetWorldBounds(w.Grid.Width(), w.Grid.Height())
	g.camera.SnapTo(body.CenterX(), body.CenterY())

	log.Printf("loaded level %s (%dx%d, %d npcs)", name, w.Grid.Width(), w.Grid.Height(), len(npcs))
	return nil
}

// Close releases background resources. Called once the game loop exits.
func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		log.Printf("close watcher: %v", err)
	}
	g.watcher = nil
}

func (g *Game) advanceLevel() {
	g.levelIdx = (g.levelIdx + 1) % len(g.levelNames)
	if err := g.loadLevel(g.levelNames[g.levelIdx]); err != nil {
		log.Printf("advance level: %v", err)
	}
}

func (g *Game) Update() error {
	g.frames++
	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.drainWatcher()

	g.registry.Tick(g.world.Grid)

	pb := g.player.Body()
	g.camera.Update(pb.CenterX(), pb.CenterY())

	exit := g.world.Level.Exit
	if math.Hypot(pb.CenterX()-exit.X, pb.CenterY()-exit.Y) < exitRange {
		g.advanceLevel()
		return nil
	}

	if g.debug && g.input.CopyPressed {
		g.copyInspected()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.world.Background)
	g.camera.Render(screen, g.drawWorld)

	if g.debug {
		pb := g.player.Body()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS %.1f  tick %d  pos (%.1f, %.1f) v (%.2f, %.2f) grounded %v\n%s",
			ebiten.ActualFPS(), g.frames, pb.X, pb.Y, pb.VX, pb.VY, g.player.Grounded(),
			g.inspectText(),
		))
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

// cursorWorld maps the cursor into world coordinates.
func (g *Game) cursorWorld() (float64, float64) {
	camX, camY := g.camera.ViewTopLeft()
	zoom := g.camera.Zoom()
	return camX + float64(g.input.CursorX)/zoom, camY + float64(g.input.CursorY)/zoom
}

func (g *Game) inspectText() string {
	wx, wy := g.cursorWorld()
	class := g.world.Grid.ClassificationAt(wx, wy)
	return fmt.Sprintf("cell (%d, %d): %s", int(math.Floor(wx)), int(math.Floor(wy)), class)
}

// copyInspected exports the cell under the cursor to the system clipboard.
func (g *Game) copyInspected() {
	if !g.clipboardReady {
		log.Printf("clipboard not available")
		return
	}
	text := g.inspectText()
	clipboard.Write(clipboard.FmtText, []byte(text))
	log.Printf("copied %q", text)
}

// drainWatcher applies any pending prefab or script edits.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

// reload applies one edited file: recompile a script for the NPCs using it,
// or re-read the player spec.
func (g *Game) reload(path string) {
	base := filepath.Base(path)
	switch filepath.Ext(base) {
	case ".tengo":
		src, err := prefabs.LoadScript(base)
		if err != nil {
			log.Printf("reload %s: %v", base, err)
			return
		}
		n := 0
		for _, npc := range g.npcs {
			if npc.scriptName != base {
				continue
			}
			// Each actor gets its own compiled copy so script state is
			// never shared between NPCs.
			script, err := actor.CompileScript(src)
			if err != nil {
				log.Printf("reload %s: %v", base, err)
				return
			}
			npc.SetScript(script)
			n++
		}
		log.Printf("reloaded script %s for %d npc(s)", base, n)
	case ".yaml", ".yml":
		if base != "player.yaml" {
			return
		}
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("reload %s: %v", base, err)
			return
		}
		g.player.spec = spec
		spec.Body.Apply(g.player.Body())
		log.Printf("reloaded player spec")
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
