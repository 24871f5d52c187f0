// Package term runs the playback controller inside a terminal UI.
package term

import (
	"bytes"
	"fmt"
	"time"

	"life-canvas/internal/engine"
	"life-canvas/internal/playback"
	"life-canvas/internal/render"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

const (
	boardView  = "board"
	statusView = "status"
	helpView   = "help"

	statusWidth = 28
)

// Options configures the terminal host.
type Options struct {
	Interval     time.Duration
	MinInterval  time.Duration
	MaxInterval  time.Duration
	IntervalStep time.Duration
	Color        bool
}

func (o Options) aurora() aurora.Aurora { return aurora.NewAurora(o.Color) }

type keyBinding struct {
	key     interface{}
	name    string
	descr   string
	handler func(v *gocui.View) error
	view    string
}

// Console draws the board as one character per cell and maps terminal keys
// and mouse clicks onto controller commands. gocui's main loop is the single
// thread every controller call runs on.
type Console struct {
	g       *gocui.Gui
	adapter *engine.Adapter
	ctrl    *playback.Controller
	frames  *playback.FrameQueue
	opts    Options
	au      aurora.Aurora
	fillers Fillers
	keys    []keyBinding
}

// New sets up the terminal and the playback loop. Call Run to start it.
func New(adapter *engine.Adapter, opts Options) (*Console, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	g.Mouse = true

	au := opts.aurora()
	c := &Console{
		g:       g,
		adapter: adapter,
		frames:  playback.NewFrameQueue(),
		opts:    opts,
		au:      au,
		fillers: NewFillers(au, '█', '·'),
	}
	// Each grid cell is one terminal character, so clicks go straight to
	// ToggleCell and the pixel geometry is never consulted.
	geom := render.NewGeometry(adapter.Dimensions(), 0)
	c.ctrl = playback.NewController(adapter, playback.PainterFunc(c.refresh), c.frames, geom, opts.Interval)
	c.frames.Notify = func() {
		g.Update(func(*gocui.Gui) error {
			c.frames.Drain()
			return nil
		})
	}

	c.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", c.cmdQuit, ""},
		{'q', "Q", "Exit", c.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause/Play", c.cmdKey(" "), ""},
		{'c', "C", "Clear", c.cmdKey("c"), ""},
		{'C', "", "", c.cmdKey("C"), ""},
		{'r', "R", "Rebuild", c.cmdKey("r"), ""},
		{'R', "", "", c.cmdKey("R"), ""},
		{'+', "+", "Slower", c.cmdAdjust(1), ""},
		{'-', "-", "Faster", c.cmdAdjust(-1), ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", c.cmdClick, boardView},
	}
	g.SetManagerFunc(c.layout)
	for _, kb := range c.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.view, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, fmt.Errorf("bind %s: %w", kb.name, err)
		}
	}
	return c, nil
}

// Controller exposes the playback controller.
func (c *Console) Controller() *playback.Controller { return c.ctrl }

// Run blocks until the user quits.
func (c *Console) Run() error {
	defer c.g.Close()
	c.ctrl.Start()
	if err := c.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

func (c *Console) refresh() {
	c.renderBoard()
	c.renderStatus()
}

func (c *Console) renderBoard() {
	v, err := c.g.View(boardView)
	if err != nil {
		return
	}
	v.Clear()
	maxW, maxH := v.Size()
	_, _ = fmt.Fprint(v, FormatBoard(c.adapter.CurrentBuffer(), c.adapter.Dimensions(), maxW, maxH, c.fillers))
}

func (c *Console) renderStatus() {
	v, err := c.g.View(statusView)
	if err != nil {
		return
	}
	v.Clear()
	size := c.adapter.Dimensions()
	mode := c.au.Colorize("running", aurora.CyanFg)
	if !c.ctrl.Running() {
		mode = c.au.Colorize("paused", aurora.BlueFg)
	}
	_, _ = fmt.Fprintln(v, c.renderProp("Engine", "%v", c.adapter.Name()))
	_, _ = fmt.Fprintln(v, c.renderProp("Dimension", "%v x %v", size.W, size.H))
	_, _ = fmt.Fprintln(v, c.renderProp("Generation", "%v", c.ctrl.Generation()))
	_, _ = fmt.Fprintln(v, c.renderProp("Population", "%v", c.adapter.Population()))
	_, _ = fmt.Fprintln(v, c.renderProp("Interval", "%v", c.ctrl.Interval()))
	_, _ = fmt.Fprintln(v, c.renderProp("Mode", "%v", mode))
}

func (c *Console) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+c.au.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (c *Console) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	size := c.adapter.Dimensions()

	boardW := min(size.W+1, maxX-statusWidth-2)
	boardH := min(size.H+1, maxY-3)
	if boardW < 2 || boardH < 2 {
		return nil
	}

	if v, err := g.SetView(boardView, 0, 0, boardW, boardH); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Board"
	}
	c.renderBoard()

	if v, err := g.SetView(statusView, boardW+1, 0, boardW+1+statusWidth, min(8, boardH)); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	c.renderStatus()

	if v, err := g.SetView(helpView, -1, maxY-2, maxX, maxY); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		first := true
		for _, k := range c.keys {
			if k.name == "" {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(c.au.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprint(v, b.String())
	}
	return nil
}

func (c *Console) cmdQuit(_ *gocui.View) error {
	c.ctrl.Stop()
	return gocui.ErrQuit
}

func (c *Console) cmdKey(key string) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		c.ctrl.HandleKey(playback.KeyEvent{Key: key})
		c.renderStatus()
		return nil
	}
}

func (c *Console) cmdAdjust(direction int) func(*gocui.View) error {
	return func(_ *gocui.View) error {
		c.ctrl.SetInterval(StepInterval(c.ctrl.Interval(), direction, c.opts))
		c.renderStatus()
		return nil
	}
}

func (c *Console) cmdClick(v *gocui.View) error {
	row, col := cellUnderCursor(v)
	c.ctrl.ToggleCell(row, col)
	return nil
}

type scrolledCursor interface {
	Cursor() (x, y int)
	Origin() (x, y int)
}

// cellUnderCursor maps a view's cursor to a grid cell. Terminal x is the
// column and y the row, both offset by the view's scroll origin.
func cellUnderCursor(v scrolledCursor) (row, col int) {
	cx, cy := v.Cursor()
	ox, oy := v.Origin()
	return cy + oy, cx + ox
}

// StepInterval moves cur by one IntervalStep in direction, clamped to the
// configured range.
func StepInterval(cur time.Duration, direction int, opts Options) time.Duration {
	step := opts.IntervalStep
	if step <= 0 {
		step = 25 * time.Millisecond
	}
	next := cur + time.Duration(direction)*step
	if next < opts.MinInterval {
		next = opts.MinInterval
	}
	if opts.MaxInterval > 0 && next > opts.MaxInterval {
		next = opts.MaxInterval
	}
	return next
}
