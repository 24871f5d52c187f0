package life

import (
	"strconv"
	"strings"
)

// Config holds parameters for a Life-like engine.
type Config struct {
	Width  int
	Height int
	Rule   Rule

	// Seed selects the initial board. Zero keeps the fixed stripe pattern,
	// any other value scatters cells at Density using a seeded RNG.
	Seed    int64
	Density float64
}

// DefaultConfig returns the standard 64x64 Conway configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Rule: Conway, Density: 0.5}
}

// FromMap populates a Config from a string map. Invalid entries keep their
// defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && strings.TrimSpace(v) != "" {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}
