package ui

import "image"

// Slider is a horizontal range input mapping the track's x range onto
// [Min, Max].
type Slider struct {
	Rect image.Rectangle
	Min  int
	Max  int
}

// ValueAt returns the value under pixel column x, clamped to the range.
func (s Slider) ValueAt(x int) int {
	span := s.Rect.Dx() - 1
	if span <= 0 || s.Max <= s.Min {
		return s.Min
	}
	offset := min(max(x-s.Rect.Min.X, 0), span)
	return s.Min + (offset*(s.Max-s.Min)+span/2)/span
}

// KnobX returns the pixel column that represents v.
func (s Slider) KnobX(v int) int {
	span := s.Rect.Dx() - 1
	if span <= 0 || s.Max <= s.Min {
		return s.Rect.Min.X
	}
	v = min(max(v, s.Min), s.Max)
	return s.Rect.Min.X + ((v-s.Min)*span+(s.Max-s.Min)/2)/(s.Max-s.Min)
}

// Hit reports whether p grabs the slider. The grab area extends a few pixels
// above and below the track.
func (s Slider) Hit(p image.Point) bool {
	return pointInRect(p, s.Rect.Inset(-4))
}
