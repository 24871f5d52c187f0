//go:build !ebiten

package main

import (
	"log"

	"life-canvas/internal/app"
	"life-canvas/internal/engine"
)

func runGUI(cfg *app.Config, adapter *engine.Adapter, color bool) error {
	log.Print("The GUI build of life-canvas requires the ebiten build tag; falling back to the terminal.")
	log.Print("Re-run with `go run -tags ebiten ./cmd/life` or build with `-tags ebiten`.")
	return runTerminal(cfg, adapter, color)
}
