//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Controls is the subset of the playback controller the panel drives.
type Controls interface {
	TogglePause()
	ClearCells()
	SetRate(raw string) bool
	Interval() time.Duration
	PauseLabel() string
	Generation() uint64
}

// Panel renders the Pause/Play and Clear buttons and the speed slider below
// the board and routes clicks on them to the controller.
type Panel struct {
	ctrl   Controls
	layout Layout
	panel  *ebiten.Image
	pixel  *ebiten.Image

	offsetY  int
	dragging bool
}

// NewPanel constructs a panel of the given width for interval values in
// [minInterval, maxInterval] milliseconds.
func NewPanel(ctrl Controls, width int, minInterval, maxInterval time.Duration) *Panel {
	p := &Panel{
		ctrl:   ctrl,
		layout: NewLayout(width, int(minInterval.Milliseconds()), int(maxInterval.Milliseconds())),
	}
	p.pixel = ebiten.NewImage(1, 1)
	p.pixel.Fill(color.White)
	return p
}

// Update handles clicks and slider drags. cursor is in screen coordinates and
// offsetY is where the panel starts on screen. It reports whether the pointer
// event was consumed by the panel.
func (p *Panel) Update(cursor image.Point, offsetY int) bool {
	if p == nil {
		return false
	}
	p.offsetY = offsetY
	local := cursor.Sub(image.Pt(0, offsetY))

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.dragging = false
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		switch {
		case pointInRect(local, p.layout.Pause):
			p.ctrl.TogglePause()
			return true
		case pointInRect(local, p.layout.Clear):
			p.ctrl.ClearCells()
			return true
		case p.layout.Slider.Hit(local):
			p.dragging = true
		}
	}
	if p.dragging {
		p.ctrl.SetRate(strconv.Itoa(p.layout.Slider.ValueAt(local.X)))
		return true
	}
	return local.Y >= 0
}

// Draw paints the panel onto screen at its current offset.
func (p *Panel) Draw(screen *ebiten.Image) {
	if p == nil || p.layout.Width <= 0 {
		return
	}
	if p.panel == nil || p.panel.Bounds().Dx() != p.layout.Width {
		p.panel = ebiten.NewImage(p.layout.Width, PanelHeight)
	}
	p.panel.Fill(color.RGBA{R: 240, G: 240, B: 240, A: 255})

	p.drawButton(p.layout.Pause, p.ctrl.PauseLabel())
	p.drawButton(p.layout.Clear, "Clear")
	p.drawSlider()

	face := basicfont.Face7x13
	status := fmt.Sprintf("gen %d  %dms", p.ctrl.Generation(), p.ctrl.Interval().Milliseconds())
	bounds := text.BoundString(face, status)
	x := p.layout.Width - panelPadding - bounds.Dx()
	if x > p.layout.Clear.Max.X+buttonGap {
		text.Draw(p.panel, status, face, x, panelPadding+labelBaseline, color.RGBA{R: 60, G: 60, B: 70, A: 255})
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(p.offsetY))
	screen.DrawImage(p.panel, op)
}

func (p *Panel) drawButton(rect image.Rectangle, label string) {
	p.fillRect(rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(p.panel, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (p *Panel) drawSlider() {
	s := p.layout.Slider
	mid := s.Rect.Min.Y + s.Rect.Dy()/2
	p.fillRect(image.Rect(s.Rect.Min.X, mid-1, s.Rect.Max.X, mid+1), color.RGBA{R: 150, G: 150, B: 160, A: 255})

	x := s.KnobX(int(p.ctrl.Interval().Milliseconds()))
	p.fillRect(image.Rect(x-3, s.Rect.Min.Y, x+3, s.Rect.Max.Y), color.RGBA{R: 54, G: 56, B: 64, A: 255})
}

func (p *Panel) fillRect(rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(c)
	p.panel.DrawImage(p.pixel, op)
}
