//go:build ebiten

package main

import (
	"errors"

	"life-canvas/internal/app"
	"life-canvas/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

func runGUI(cfg *app.Config, adapter *engine.Adapter, _ bool) error {
	game := app.New(adapter, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("life-canvas — " + adapter.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
