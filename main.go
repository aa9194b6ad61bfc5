package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "path to the JSON config file")
		headless   = flag.Bool("headless", false, "render to the terminal instead of a window")
	)
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Println("Using default configuration (config file not found)")
		config = utils.DefaultConfig()
	}
	if *headless {
		config.Headless = true
	}

	game, err := newGame(config)
	if err != nil {
		log.Fatal(err)
	}

	if config.Headless {
		game.runHeadless()
		return
	}

	ebiten.SetWindowSize(game.width, game.height)
	ebiten.SetWindowTitle("Game of Life")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	game.printFinalStats()
}
