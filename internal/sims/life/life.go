package life

import (
	"strings"

	"life-canvas/internal/core"
)

// Life implements a Life-like automaton with toroidal wrapping.
type Life struct {
	name string
	cfg  Config
	cur  *core.ByteGrid
	nxt  *core.ByteGrid
}

// New returns an engine for cfg with its initial board already seeded.
func New(name string, cfg Config) *Life {
	l := &Life{
		name: name,
		cfg:  cfg,
		cur:  core.NewByteGrid(cfg.Width, cfg.Height),
		nxt:  core.NewByteGrid(cfg.Width, cfg.Height),
	}
	l.Reset()
	return l
}

// Name returns the engine identifier.
func (l *Life) Name() string { return l.name }

// Width returns the number of columns.
func (l *Life) Width() int { return l.cur.W }

// Height returns the number of rows.
func (l *Life) Height() int { return l.cur.H }

// Rule returns the birth/survival rule in use.
func (l *Life) Rule() Rule { return l.cfg.Rule }

// Cells exposes the current grid values. The slice changes identity on every
// Tick.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Reset rebuilds the initial board.
func (l *Life) Reset() {
	cells := l.cur.Cells()
	if l.cfg.Seed != 0 {
		core.NewRNG(l.cfg.Seed).Seed(cells, l.cfg.Density)
		return
	}
	for i := range cells {
		if i%2 == 0 || i%7 == 0 {
			cells[i] = core.Alive
			continue
		}
		cells[i] = core.Dead
	}
}

// Clear kills every cell.
func (l *Life) Clear() { l.cur.Clear() }

// Toggle flips one cell. Coordinates outside the grid are ignored.
func (l *Life) Toggle(row, col int) {
	if !l.cur.Size().Contains(row, col) {
		return
	}
	cells := l.cur.Cells()
	idx := l.cur.Index(row, col)
	if cells[idx] == core.Dead {
		cells[idx] = core.Alive
		return
	}
	cells[idx] = core.Dead
}

// Tick advances the simulation by one generation.
func (l *Life) Tick() {
	w, h := l.cur.W, l.cur.H
	cur, nxt := l.cur.Cells(), l.nxt.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			neighbors := l.liveNeighbors(row, col)
			idx := l.cur.Index(row, col)
			alive := cur[idx] != core.Dead
			nxt[idx] = core.Dead
			if (alive && l.cfg.Rule.Survive[neighbors]) || (!alive && l.cfg.Rule.Birth[neighbors]) {
				nxt[idx] = core.Alive
			}
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
}

func (l *Life) liveNeighbors(row, col int) int {
	cells := l.cur.Cells()
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := l.cur.Wrap(row+dr, col+dc)
			if cells[l.cur.Index(r, c)] != core.Dead {
				count++
			}
		}
	}
	return count
}

// String draws the board as text, one line per row.
func (l *Life) String() string {
	var b strings.Builder
	w := l.cur.W
	cells := l.cur.Cells()
	for start := 0; start < len(cells); start += w {
		for _, c := range cells[start : start+w] {
			if c == core.Dead {
				b.WriteRune('◻')
			} else {
				b.WriteRune('◼')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Engine {
		return New("life", FromMap(cfg))
	})
	core.Register("highlife", func(cfg map[string]string) core.Engine {
		c := FromMap(cfg)
		if _, ok := cfg["rule"]; !ok {
			c.Rule = HighLife
		}
		return New("highlife", c)
	})
	for _, name := range []string{"life", "highlife"} {
		core.RegisterRuleCheck(name, func(rule string) error {
			_, err := ParseRule(rule)
			return err
		})
	}
}
