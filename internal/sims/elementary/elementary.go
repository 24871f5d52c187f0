package elementary

import (
	"fmt"
	"strconv"
	"strings"

	"life-canvas/internal/core"
)

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	Rule   uint8
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 64, Height: 64, Rule: 110}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	return c
}

// ParseRule reads a Wolfram code in 0..255.
func ParseRule(s string) (uint8, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 255 {
		return 0, fmt.Errorf("rule %q: want a Wolfram code in 0..255", s)
	}
	return uint8(n), nil
}

// Elementary runs a one-dimensional Wolfram rule on the top row and scrolls
// older rows downwards, so the board shows the history of the line.
type Elementary struct {
	rule uint8
	grid *core.ByteGrid
	tmp  []uint8
}

// New creates an automaton with the given configuration.
func New(cfg Config) *Elementary {
	e := &Elementary{rule: cfg.Rule, grid: core.NewByteGrid(cfg.Width, cfg.Height)}
	e.tmp = make([]uint8, e.grid.W)
	e.Reset()
	return e
}

// Name returns the engine identifier.
func (e *Elementary) Name() string { return "elementary" }

// Width returns the number of columns.
func (e *Elementary) Width() int { return e.grid.W }

// Height returns the number of rows.
func (e *Elementary) Height() int { return e.grid.H }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Reset clears the grid and seeds the top row with a single live cell.
func (e *Elementary) Reset() {
	e.grid.Clear()
	e.grid.Cells()[e.grid.W/2] = core.Alive
}

// Clear kills every cell.
func (e *Elementary) Clear() { e.grid.Clear() }

// Toggle flips one cell. Flipping a cell in the top row changes what the next
// line grows from.
func (e *Elementary) Toggle(row, col int) {
	if !e.grid.Size().Contains(row, col) {
		return
	}
	idx := e.grid.Index(row, col)
	cells := e.grid.Cells()
	if cells[idx] == core.Dead {
		cells[idx] = core.Alive
		return
	}
	cells[idx] = core.Dead
}

// Tick computes the next line and scrolls history downwards.
func (e *Elementary) Tick() {
	w, h := e.grid.W, e.grid.H
	cur := e.grid.Cells()
	copy(e.tmp, cur[:w])
	copy(cur[w:], cur[:w*(h-1)])
	for x := 0; x < w; x++ {
		left := alive(e.tmp[(x-1+w)%w])
		center := alive(e.tmp[x])
		right := alive(e.tmp[(x+1)%w])
		idx := (left << 2) | (center << 1) | right
		cur[x] = (e.rule >> idx) & 1
	}
}

func alive(c uint8) uint8 {
	if c == core.Dead {
		return 0
	}
	return 1
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Engine {
		return New(FromMap(cfg))
	})
	core.RegisterRuleCheck("elementary", func(rule string) error {
		_, err := ParseRule(rule)
		return err
	})
}
