package app

import (
	"errors"
	"testing"
	"time"

	_ "life-canvas/internal/sims/elementary"
	_ "life-canvas/internal/sims/life"

	"github.com/integrii/flaggy"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	p := flaggy.NewParser("life")
	cfg.Bind(p)
	args := []string{"--engine", "highlife", "-x", "32", "-y", "16", "--interval", "250ms", "--seed", "9", "--tui"}
	if err := p.ParseArgs(args); err != nil {
		t.Fatalf("ParseArgs: %v", err)
	}
	if cfg.Engine != "highlife" || cfg.Width != 32 || cfg.Height != 16 {
		t.Fatalf("parsed engine=%s size=%dx%d", cfg.Engine, cfg.Width, cfg.Height)
	}
	if cfg.Interval != 250*time.Millisecond || cfg.Seed != 9 || !cfg.TUI {
		t.Fatalf("parsed interval=%v seed=%d tui=%v", cfg.Interval, cfg.Seed, cfg.TUI)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero width":        func(c *Config) { c.Width = 0 },
		"zero cell":         func(c *Config) { c.CellSize = 0 },
		"negative interval": func(c *Config) { c.Interval = -time.Millisecond },
		"interval too long": func(c *Config) { c.Interval = 2 * time.Second },
		"bad density":       func(c *Config) { c.Density = 1.5 },
		"unknown engine":    func(c *Config) { c.Engine = "nope" },
		"snapshot alone":    func(c *Config) { c.Snapshot = "out.png" },
		"negative gens":     func(c *Config) { c.Generations = -1 },
		"malformed rule":    func(c *Config) { c.Rule = "B9/Sxyz" },
		"rule without S":    func(c *Config) { c.Engine, c.Rule = "highlife", "B36" },
		"wolfram too large": func(c *Config) { c.Engine, c.Rule = "elementary", "256" },
		"wolfram as B/S":    func(c *Config) { c.Engine, c.Rule = "elementary", "B3/S23" },
	}
	for name, mutate := range cases {
		cfg := NewConfig()
		mutate(cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: got %v, want ErrInvalidConfig", name, err)
		}
	}
	if err := NewConfig().Validate(); err != nil {
		t.Fatalf("defaults invalid: %v", err)
	}

	valid := []struct{ engine, rule string }{
		{"life", "B36/S23"},
		{"highlife", "b3/s23"},
		{"elementary", "30"},
		{"elementary", ""},
	}
	for _, tc := range valid {
		cfg := NewConfig()
		cfg.Engine, cfg.Rule = tc.engine, tc.rule
		if err := cfg.Validate(); err != nil {
			t.Fatalf("%s with rule %q: %v", tc.engine, tc.rule, err)
		}
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := NewConfig()
	opts := cfg.EngineOptions()
	if _, ok := opts["rule"]; ok {
		t.Fatal("empty rule should not be forwarded")
	}
	cfg.Rule = "B36/S23"
	if cfg.EngineOptions()["rule"] != "B36/S23" {
		t.Fatal("rule not forwarded")
	}
	if opts["w"] != "64" || opts["h"] != "64" || opts["seed"] != "0" {
		t.Fatalf("options %v", opts)
	}
}

func TestNewEngine(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height = 12, 7
	a, err := cfg.NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if size := a.Dimensions(); size.W != 12 || size.H != 7 {
		t.Fatalf("dimensions %v", size)
	}
	if len(a.CurrentBuffer()) != 84 {
		t.Fatalf("buffer length %d", len(a.CurrentBuffer()))
	}

	cfg.Engine = "missing"
	if _, err := cfg.NewEngine(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("unknown engine: %v", err)
	}
}
