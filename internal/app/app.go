//go:build ebiten

package app

import (
	"image"
	"image/color"

	"life-canvas/internal/engine"
	"life-canvas/internal/playback"
	"life-canvas/internal/render"
	"life-canvas/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// boardOrigin is where the raster surface sits on screen.
var boardOrigin = image.Pt(0, 0)

// Game adapts the playback controller to the ebiten.Game interface. ebiten's
// Update is the frame-pacing callback: queued cycles run there, so the
// controller, the engine and the renderer are only touched from one thread.
type Game struct {
	adapter  *engine.Adapter
	ctrl     *playback.Controller
	frames   *playback.FrameQueue
	renderer *render.GridRenderer
	surface  *render.EbitenSurface
	panel    *ui.Panel

	width, height int
}

// New constructs a Game for the provided engine. The playback loop starts on
// the first Update.
func New(adapter *engine.Adapter, cfg *Config) *Game {
	geom := cfg.Geometry(adapter.Dimensions())
	g := &Game{
		adapter:  adapter,
		frames:   playback.NewFrameQueue(),
		renderer: render.NewGridRenderer(geom, render.DefaultPalette()),
		surface:  render.NewEbitenSurface(geom),
	}
	g.ctrl = playback.NewController(adapter, playback.PainterFunc(g.repaint), g.frames, geom, cfg.Interval)

	w, h := geom.SurfaceSize()
	g.width, g.height = w, h+ui.PanelHeight
	g.panel = ui.NewPanel(g.ctrl, w, cfg.MinInterval, cfg.MaxInterval)
	return g
}

// Controller exposes the playback controller.
func (g *Game) Controller() *playback.Controller { return g.ctrl }

func (g *Game) repaint() {
	g.renderer.Repaint(g.surface, g.adapter.CurrentBuffer())
}

// Update handles input and then runs whatever cycles are due this frame.
func (g *Game) Update() error {
	g.ctrl.Start()
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Stop()
		return ebiten.Termination
	}
	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if ev, ok := keyEvent(key); ok {
			g.ctrl.HandleKey(ev)
		}
	}

	cursor := image.Pt(ebiten.CursorPosition())
	_, boardH := g.renderer.Geometry().SurfaceSize()
	if !g.panel.Update(cursor, boardOrigin.Y+boardH) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.ClickDevice(cursor, boardOrigin)
	}

	g.frames.Drain()
	return nil
}

// Draw blits the last repaint and the control panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.surface.Blit(screen, boardOrigin.X, boardOrigin.Y)
	g.panel.Draw(screen)
}

// Layout returns the logical screen size: the board plus the panel below it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// keyEvent maps ebiten keys onto the text the controller's bindings expect.
// ebiten does not report IME composition, so events are never composing.
func keyEvent(key ebiten.Key) (playback.KeyEvent, bool) {
	switch key {
	case ebiten.KeySpace:
		return playback.KeyEvent{Key: " "}, true
	case ebiten.KeyC:
		return playback.KeyEvent{Key: "c"}, true
	case ebiten.KeyR:
		return playback.KeyEvent{Key: "r"}, true
	}
	return playback.KeyEvent{}, false
}
