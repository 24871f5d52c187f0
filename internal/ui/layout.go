package ui

import "image"

const (
	panelPadding  = 8
	PanelHeight   = 64
	buttonWidth   = 56
	buttonHeight  = 22
	buttonGap     = 6
	sliderHeight  = 10
	sliderTop     = panelPadding + buttonHeight + 12
	labelBaseline = 15
)

// Layout holds the hit rectangles of the panel controls, relative to the
// panel's top-left corner.
type Layout struct {
	Width  int
	Pause  image.Rectangle
	Clear  image.Rectangle
	Slider Slider
}

// NewLayout arranges the controls for a panel of the given width.
func NewLayout(width int, minInterval, maxInterval int) Layout {
	pause := image.Rect(panelPadding, panelPadding, panelPadding+buttonWidth, panelPadding+buttonHeight)
	clr := image.Rect(pause.Max.X+buttonGap, panelPadding, pause.Max.X+buttonGap+buttonWidth, panelPadding+buttonHeight)
	track := image.Rect(panelPadding, sliderTop, max(width-panelPadding, panelPadding+1), sliderTop+sliderHeight)
	return Layout{
		Width:  width,
		Pause:  pause,
		Clear:  clr,
		Slider: Slider{Rect: track, Min: minInterval, Max: maxInterval},
	}
}

func pointInRect(p image.Point, rect image.Rectangle) bool {
	return p.In(rect)
}
