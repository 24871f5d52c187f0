package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"life-canvas/internal/core"
	"life-canvas/internal/engine"
	"life-canvas/internal/playback"
	"life-canvas/internal/render"

	"github.com/integrii/flaggy"
)

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the command-line parameters for the application.
type Config struct {
	Engine  string
	Width   int
	Height  int
	Rule    string
	Seed    int64
	Density float64

	CellSize     int
	Interval     time.Duration
	MinInterval  time.Duration
	MaxInterval  time.Duration
	IntervalStep time.Duration
	TPS          int

	TUI         bool
	Generations int
	Snapshot    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Engine:       "life",
		Width:        64,
		Height:       64,
		Density:      0.5,
		CellSize:     render.DefaultCellSize,
		Interval:     playback.DefaultInterval,
		MinInterval:  0,
		MaxInterval:  time.Second,
		IntervalStep: 25 * time.Millisecond,
		TPS:          60,
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.String(&c.Engine, "e", "engine", "Engine to use ["+strings.Join(core.EngineNames(), "|")+"]")
	p.Int(&c.Width, "x", "width", "Width of the grid in cells")
	p.Int(&c.Height, "y", "height", "Height of the grid in cells")
	p.String(&c.Rule, "", "rule", "Rule: B/S notation for life engines (e.g. B3/S23), Wolfram code for elementary")
	p.Int64(&c.Seed, "s", "seed", "Seed for a random initial board (0 keeps the stripe pattern)")
	p.Float64(&c.Density, "", "density", "Share of live cells when seeding randomly")
	p.Int(&c.CellSize, "c", "cell", "Cell size in pixels")
	p.Duration(&c.Interval, "i", "interval", "Delay between generations, e.g. 150ms")
	p.Duration(&c.MaxInterval, "", "max-interval", "Upper bound of the speed control")
	p.Int(&c.TPS, "", "tps", "Frames per second of the GUI host")
	p.Bool(&c.TUI, "t", "tui", "Run in the terminal instead of a window")
	p.Int(&c.Generations, "g", "generations", "Advance this many generations headless, print the board and exit")
	p.String(&c.Snapshot, "o", "snapshot", "With --generations, also write the rendered board to this PNG file")
}

// Validate checks the values the rest of the program relies on.
func (c *Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.CellSize < 1:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	case c.MinInterval < 0 || c.MaxInterval < c.MinInterval:
		return fmt.Errorf("%w: interval range [%v, %v]", ErrInvalidConfig, c.MinInterval, c.MaxInterval)
	case c.Interval < c.MinInterval || c.Interval > c.MaxInterval:
		return fmt.Errorf("%w: interval %v outside [%v, %v]", ErrInvalidConfig, c.Interval, c.MinInterval, c.MaxInterval)
	case c.Density < 0 || c.Density > 1:
		return fmt.Errorf("%w: density %v", ErrInvalidConfig, c.Density)
	case c.TPS < 1:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	case c.Generations < 0:
		return fmt.Errorf("%w: generations %d", ErrInvalidConfig, c.Generations)
	case c.Snapshot != "" && c.Generations == 0:
		return fmt.Errorf("%w: --snapshot needs --generations", ErrInvalidConfig)
	}
	if _, ok := core.Engines()[c.Engine]; !ok {
		return fmt.Errorf("%w: unknown engine %q", ErrInvalidConfig, c.Engine)
	}
	if strings.TrimSpace(c.Rule) != "" {
		if err := core.CheckRule(c.Engine, c.Rule); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// EngineOptions renders the engine settings as the factory's key/value map.
func (c *Config) EngineOptions() map[string]string {
	opts := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
	if strings.TrimSpace(c.Rule) != "" {
		opts["rule"] = c.Rule
	}
	return opts
}

// NewEngine builds the configured engine and wraps it in an adapter.
func (c *Config) NewEngine() (*engine.Adapter, error) {
	factory, ok := core.Engines()[c.Engine]
	if !ok {
		return nil, fmt.Errorf("%w: unknown engine %q", ErrInvalidConfig, c.Engine)
	}
	a, err := engine.NewAdapter(factory(c.EngineOptions()))
	if err != nil {
		return nil, fmt.Errorf("start engine %q: %w", c.Engine, err)
	}
	return a, nil
}

// Geometry returns the viewport geometry for the configured grid.
func (c *Config) Geometry(size core.Size) render.Geometry {
	return render.NewGeometry(size, c.CellSize)
}
