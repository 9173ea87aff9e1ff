package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/data (basename, .yaml optional)")
	debug := flag.Bool("debug", false, "enable the debug inspector")
	watch := flag.Bool("watch", false, "reload prefabs and scripts on change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("gridwalk")

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}

	runErr := ebiten.RunGame(game)
	game.Close()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
