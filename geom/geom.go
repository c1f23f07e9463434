// SPDX-License-Identifier: Unlicense OR MIT

/*
Package geom provides the floating point geometry used during layout
and the deterministic snapping rules that convert layout results to
the integer pixel grid just before drawing.

The coordinate space has the origin in the top left corner with the
axes extending right and down.
*/
package geom

import (
	"image"
	"math"
)

// A Rect is a position and size in the UI.
//
// The members are deliberately allowed to be any value, including
// negative, zero or fractional, while layout math is in progress:
//
//   - otherwise there is a lot of casting to and from integers; it is
//     best to stay in floating point until just before use
//   - a one pixel difference can lead to a visible jump, for example
//     when a label's font size changes inside a horizontal layout and
//     a one pixel change in height becomes a larger change in width
//     through the aspect ratio
type Rect struct {
	X, Y, W, H float32
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// PosRound rounds a position. If the value is exactly between two
// integers, even when negative, it always rounds up. This is required
// or else a one pixel gap can appear between adjacent rects.
func PosRound(v float32) int {
	whole, frac := math.Modf(float64(v))
	if frac == -0.5 {
		return int(whole)
	}
	return int(math.Round(float64(v)))
}

// LenRound rounds a length, only giving strictly positive output. The
// second return value is false if the length rounds below one pixel;
// such a rect must not be drawn.
func LenRound(v float32) (int, bool) {
	i := math.Round(float64(v))
	if i < 1 {
		return 0, false
	}
	return int(i), true
}

// Pixel snaps r to the integer pixel grid for drawing. It reports
// false if either dimension rounds to zero; the drawing primitives
// require strictly positive area and such a rect is skipped instead.
func (r Rect) Pixel() (image.Rectangle, bool) {
	w, ok := LenRound(r.W)
	if !ok {
		return image.Rectangle{}, false
	}
	h, ok := LenRound(r.H)
	if !ok {
		return image.Rectangle{}, false
	}
	x := PosRound(r.X)
	y := PosRound(r.Y)
	return image.Rect(x, y, x+w, y+h), true
}

// FromPixel converts an integer rect back to layout coordinates.
func FromPixel(r image.Rectangle) Rect {
	return Rect{
		X: float32(r.Min.X),
		Y: float32(r.Min.Y),
		W: float32(r.Dx()),
		H: float32(r.Dy()),
	}
}
