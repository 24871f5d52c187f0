// Package engine wraps a core.Engine behind the narrow surface the
// presentation layer uses.
package engine

import (
	"errors"
	"fmt"

	"life-canvas/internal/core"
)

var (
	// ErrNoEngine is returned when no engine was supplied.
	ErrNoEngine = errors.New("engine unavailable")
	// ErrBadDimensions is returned when the engine reports an unusable grid.
	ErrBadDimensions = errors.New("engine dimensions unreadable")
)

// Adapter is a typed façade over an engine. Dimensions are captured once; the
// cell buffer is fetched again on every call.
type Adapter struct {
	eng  core.Engine
	size core.Size
}

// NewAdapter validates eng and captures its dimensions.
func NewAdapter(eng core.Engine) (*Adapter, error) {
	if eng == nil {
		return nil, ErrNoEngine
	}
	size := core.Size{W: eng.Width(), H: eng.Height()}
	if size.W < 1 || size.H < 1 {
		return nil, fmt.Errorf("%w: %s reports %dx%d", ErrBadDimensions, eng.Name(), size.W, size.H)
	}
	if n := len(eng.Cells()); n != size.Cells() {
		return nil, fmt.Errorf("%w: %s buffer holds %d cells, want %d", ErrBadDimensions, eng.Name(), n, size.Cells())
	}
	return &Adapter{eng: eng, size: size}, nil
}

// Name returns the wrapped engine's name.
func (a *Adapter) Name() string { return a.eng.Name() }

// Dimensions returns the grid size fixed at startup.
func (a *Adapter) Dimensions() core.Size { return a.size }

// CurrentBuffer returns the engine's live cell buffer. Do not retain it.
func (a *Adapter) CurrentBuffer() []uint8 { return a.eng.Cells() }

// Advance steps the engine by one generation.
func (a *Adapter) Advance() { a.eng.Tick() }

// Toggle flips the cell at (row, col). The caller keeps the coordinates in
// range.
func (a *Adapter) Toggle(row, col int) { a.eng.Toggle(row, col) }

// Clear sets every cell to Dead.
func (a *Adapter) Clear() { a.eng.Clear() }

// Rebuild restores the engine's initial board.
func (a *Adapter) Rebuild() { a.eng.Reset() }

// Population counts the cells that are not Dead.
func (a *Adapter) Population() int {
	n := 0
	for _, c := range a.eng.Cells() {
		if c != core.Dead {
			n++
		}
	}
	return n
}
