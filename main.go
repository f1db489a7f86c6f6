package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"poster-wall/input"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	log.SetPrefix("poster-wall: ")

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	g, err := NewGame(cfg, &input.EbitenSource{})
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
