// Package playback owns the run/pause state of the simulation view, paces the
// update loop and turns user input into engine commands.
package playback

import (
	"image"
	"strconv"
	"strings"
	"time"

	"life-canvas/internal/core"
	"life-canvas/internal/render"
)

// Engine is the part of the engine adapter the controller drives.
type Engine interface {
	Dimensions() core.Size
	Advance()
	Toggle(row, col int)
	Clear()
	Rebuild()
}

// Painter redraws the view from the engine's current buffer.
type Painter interface {
	Repaint()
}

// PainterFunc adapts a function to the Painter interface.
type PainterFunc func()

// Repaint calls f.
func (f PainterFunc) Repaint() { f() }

// State is the playback state.
type State int

const (
	// Running advances one generation per cycle.
	Running State = iota
	// Paused keeps repainting without advancing.
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// DefaultInterval is the delay between generations when none is configured.
const DefaultInterval = 100 * time.Millisecond

// Controller is the playback state machine. All methods must be called from
// the host's single logical thread.
type Controller struct {
	engine  Engine
	painter Painter
	sched   Scheduler
	geom    render.Geometry

	state      State
	interval   time.Duration
	generation uint64

	started bool
	stopped bool
	armed   Timer
}

// NewController builds a controller in the Running state. geom is used to map
// pointer positions onto cells.
func NewController(engine Engine, painter Painter, sched Scheduler, geom render.Geometry, interval time.Duration) *Controller {
	if interval < 0 {
		interval = DefaultInterval
	}
	return &Controller{
		engine:   engine,
		painter:  painter,
		sched:    sched,
		geom:     geom,
		state:    Running,
		interval: interval,
	}
}

// State returns the current playback state.
func (c *Controller) State() State { return c.state }

// Running reports whether cycles advance the engine.
func (c *Controller) Running() bool { return c.state == Running }

// Interval returns the delay armed after each cycle.
func (c *Controller) Interval() time.Duration { return c.interval }

// Generation counts advances since the last clear or rebuild.
func (c *Controller) Generation() uint64 { return c.generation }

// Stopped reports whether Stop has been called.
func (c *Controller) Stopped() bool { return c.stopped }

// PauseLabel names the action the pause control will perform next.
func (c *Controller) PauseLabel() string {
	if c.state == Running {
		return "Pause"
	}
	return "Play"
}

// TogglePause switches between Running and Paused.
func (c *Controller) TogglePause() {
	if c.state == Running {
		c.state = Paused
		return
	}
	c.state = Running
}

// SetInterval changes the playback delay. Negative values are rejected and the
// previous interval kept. The new value is used the next time a delay is
// armed; a delay already waiting is left alone.
func (c *Controller) SetInterval(d time.Duration) bool {
	if d < 0 {
		return false
	}
	c.interval = d
	return true
}

// SetRate parses a slider value in whole milliseconds.
func (c *Controller) SetRate(raw string) bool {
	ms, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || ms < 0 {
		return false
	}
	return c.SetInterval(time.Duration(ms) * time.Millisecond)
}

// ClearCells kills every cell and repaints. Playback state is unchanged.
func (c *Controller) ClearCells() {
	c.engine.Clear()
	c.generation = 0
	c.painter.Repaint()
}

// Rebuild restores the engine's initial board and repaints.
func (c *Controller) Rebuild() {
	c.engine.Rebuild()
	c.generation = 0
	c.painter.Repaint()
}

// ToggleCell flips (row, col) and repaints. Coordinates outside the grid are
// ignored and reported as false.
func (c *Controller) ToggleCell(row, col int) bool {
	if !c.engine.Dimensions().Contains(row, col) {
		return false
	}
	c.engine.Toggle(row, col)
	c.painter.Repaint()
	return true
}

// Click toggles the cell under a surface-local point.
func (c *Controller) Click(x, y float64) bool {
	row, col, ok := c.geom.CellAt(x, y)
	if !ok {
		return false
	}
	return c.ToggleCell(row, col)
}

// ClickDevice toggles the cell under a device position, given the raster
// surface's on-screen origin.
func (c *Controller) ClickDevice(device, origin image.Point) bool {
	p := render.Local(device, origin)
	return c.Click(float64(p.X), float64(p.Y))
}

// Start paints the initial board and requests the first cycle.
func (c *Controller) Start() {
	if c.started || c.stopped {
		return
	}
	c.started = true
	c.painter.Repaint()
	c.sched.RequestFrame(c.cycle)
}

// Stop ends the loop: the armed delay is disarmed and no further cycle runs.
func (c *Controller) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	if c.armed != nil {
		c.armed.Stop()
		c.armed = nil
	}
}

func (c *Controller) cycle() {
	if c.stopped {
		return
	}
	if c.state == Running {
		c.engine.Advance()
		c.generation++
	}
	c.painter.Repaint()
	// The delay callback may run off the host thread, so it only queues the
	// next cycle; cycle itself checks the stop flag.
	c.armed = c.sched.AfterDelay(c.interval, func() { c.sched.RequestFrame(c.cycle) })
}
