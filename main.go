package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/steering/common"
	"github.com/milk9111/steering/prefabs"
)

func main() {
	config := flag.String("config", prefabs.DefaultSimFile, "simulation config under prefabs/")
	strategy := flag.String("strategy", "", "override the navigation strategy (astar)")
	follow := flag.Bool("follow", true, "camera follows the leading car")
	watch := flag.Bool("watch", true, "reload when prefabs/ changes on disk")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("steering")

	game, err := NewGame(GameOptions{
		Config:   *config,
		Strategy: *strategy,
		Follow:   *follow,
		Watch:    *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
