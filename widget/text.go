// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"math"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// HeightMode states what happens when wrapped text is taller than the
// area the Text widget was given.
type HeightMode uint8

const (
	// HeightRunOff lets the text be drawn past the boundary in the
	// direction the anchor leaves open.
	HeightRunOff HeightMode = iota
	// HeightCutOff clips the text to the boundary.
	HeightCutOff
	// HeightGrow requests an appropriate height up front, derived
	// from the wrap width and the text, even past the parent portion.
	HeightGrow
)

// HeightPolicy is a HeightMode with its anchoring.
type HeightPolicy struct {
	Mode HeightMode

	// Anchor applies to HeightCutOff: 0 cuts from the top, 1 from
	// the bottom.
	Anchor float32

	// MinFail and MaxFail apply to HeightRunOff and HeightGrow.
	MinFail layout.MinLenFailPolicy
	MaxFail layout.MaxLenFailPolicy
}

// RunOffBottom runs excess text off the bottom edge.
var RunOffBottom = HeightPolicy{Mode: HeightRunOff, MinFail: layout.MinFailPositive}

// Text is multiple lines of wrapped text. Unlike a Label the point
// size is stated literally; inferring one from the available height
// does not make sense for a wrapping paragraph.
//
// Text derives height from width but not width from height, so in a
// width-from-height context (a vertical layout) with HeightGrow the
// text can end up vertically compressed; wrap it in something that
// places its content, such as a horizontal layout, when that bites.
type Text struct {
	Text      string
	PointSize int
	Color     color.NRGBA

	// MaxHFail anchors text shorter than the given area.
	MaxHFail layout.MaxLenFailPolicy
	Height   HeightPolicy

	PreferredW, PreferredH layout.PreferredPortion

	layout.Base

	drawPos geom.Rect
}

// NewText returns wrapped text that runs off the bottom when too
// tall.
func NewText(text string, pointSize int, c color.NRGBA) *Text {
	return &Text{
		Text:       text,
		PointSize:  pointSize,
		Color:      c,
		MaxHFail:   layout.MaxFailCentered,
		Height:     RunOffBottom,
		PreferredW: layout.Full,
		PreferredH: layout.Full,
	}
}

func (t *Text) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return t.PreferredW, t.PreferredH
}

func (t *Text) RatioExceedsParent() bool { return t.Height.Mode == HeightGrow }

func (t *Text) MinHFailPolicy() layout.MinLenFailPolicy {
	if t.Height.Mode == HeightGrow {
		return t.Height.MinFail
	}
	return layout.MinFailCentered
}

func (t *Text) MaxHFailPolicy() layout.MaxLenFailPolicy {
	if t.Height.Mode == HeightGrow {
		return t.Height.MaxFail
	}
	return layout.MaxFailCentered
}

func (t *Text) HeightFromWidth(w float32, s sys.System) (float32, bool, error) {
	if t.Height.Mode != HeightGrow {
		return 0, false, nil
	}
	wrap, ok := geom.LenRound(w)
	if !ok || t.Text == "" {
		return 0, true, nil
	}
	tex, err := s.Text(t.Text, t.Color, t.PointSize, wrap)
	if err != nil {
		return 0, false, err
	}
	size, err := tex.Size()
	if err != nil {
		return 0, false, err
	}
	return float32(size.Y), true, nil
}

func (t *Text) Update(ctx *layout.Context, _ sys.System) (bool, error) {
	t.drawPos = ctx.Position
	return false, nil
}

func (t *Text) Draw(s sys.System) error {
	pos, ok := t.drawPos.Pixel()
	if !ok || t.Text == "" {
		return nil
	}

	tex, err := s.Text(t.Text, t.Color, t.PointSize, pos.Dx())
	if err != nil {
		return err
	}
	size, err := tex.Size()
	if err != nil {
		return err
	}

	if size.Y <= pos.Dy() {
		// shorter than the area: anchor within it
		excess := roundI(float32(pos.Dy()-size.Y) * float32(t.MaxHFail))
		dst := geom.Rect{
			X: float32(pos.Min.X),
			Y: float32(pos.Min.Y + excess),
			W: float32(size.X),
			H: float32(size.Y),
		}
		return tex.Draw(nil, dst)
	}

	excess := float32(size.Y - pos.Dy())
	switch t.Height.Mode {
	case HeightCutOff:
		cut := roundI(excess * (1 - t.Height.Anchor))
		src := image.Rect(0, cut, size.X, cut+pos.Dy())
		dst := geom.Rect{
			X: float32(pos.Min.X),
			Y: float32(pos.Min.Y),
			W: float32(size.X),
			H: float32(pos.Dy()),
		}
		return tex.Draw(&src, dst)
	case HeightRunOff:
		off := roundI(excess * (float32(t.Height.MinFail) - 1))
		dst := geom.Rect{
			X: float32(pos.Min.X),
			Y: float32(pos.Min.Y + off),
			W: float32(size.X),
			H: float32(size.Y),
		}
		return tex.Draw(nil, dst)
	default: // HeightGrow: the height request was not honored; fill
		return tex.Draw(nil, geom.FromPixel(pos))
	}
}

func roundI(v float32) int {
	return int(math.Round(float64(v)))
}
