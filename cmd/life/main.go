package main

import (
	"fmt"
	"log"
	"os"

	"life-canvas/internal/app"
	"life-canvas/internal/engine"
	"life-canvas/internal/render"
	_ "life-canvas/internal/sims/elementary"
	_ "life-canvas/internal/sims/life"
	"life-canvas/internal/term"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
)

func main() {
	cfg := app.NewConfig()
	noColor := false

	p := flaggy.NewParser("life")
	p.Description = "Interactive cellular automaton viewer"
	p.ShowHelpOnUnexpected = true
	cfg.Bind(p)
	p.Bool(&noColor, "", "no-color", "Disable ANSI colours in terminal and headless output")
	if err := p.Parse(); err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		p.ShowHelpAndExit(err.Error())
	}

	adapter, err := cfg.NewEngine()
	if err != nil {
		log.Fatal(err)
	}
	size := adapter.Dimensions()
	log.Printf("engine %s %dx%d, interval %v", adapter.Name(), size.W, size.H, cfg.Interval)

	switch {
	case cfg.Generations > 0:
		err = runHeadless(cfg, adapter, aurora.NewAurora(!noColor))
	case cfg.TUI:
		err = runTerminal(cfg, adapter, !noColor)
	default:
		err = runGUI(cfg, adapter, !noColor)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runTerminal(cfg *app.Config, adapter *engine.Adapter, color bool) error {
	console, err := term.New(adapter, term.Options{
		Interval:     cfg.Interval,
		MinInterval:  cfg.MinInterval,
		MaxInterval:  cfg.MaxInterval,
		IntervalStep: cfg.IntervalStep,
		Color:        color,
	})
	if err != nil {
		return err
	}
	return console.Run()
}

func runHeadless(cfg *app.Config, adapter *engine.Adapter, au aurora.Aurora) error {
	for i := 0; i < cfg.Generations; i++ {
		adapter.Advance()
	}
	if err := term.PrintBoard(os.Stdout, adapter, cfg.Generations, au); err != nil {
		return err
	}
	if cfg.Snapshot == "" {
		return nil
	}

	renderer := render.NewGridRenderer(cfg.Geometry(adapter.Dimensions()), render.DefaultPalette())
	f, err := os.Create(cfg.Snapshot)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := renderer.Snapshot(adapter.CurrentBuffer()).WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	log.Printf("wrote %s", cfg.Snapshot)
	return nil
}
