//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"cavegen/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	params, _, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	border, err := cfg.BorderPolicy()
	if err != nil {
		log.Fatal(err)
	}
	session, err := app.NewSession(params, border, cfg.Seed)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(session, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle(fmt.Sprintf("cavegen - seed %d", session.Seed()))
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
