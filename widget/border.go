// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// Border frames its contained widget with a picture border built from
// two texture regions: an edge that is repeated along each side until
// the length is covered, and a corner.
//
// The edge region must be oriented with its length running left to
// right and its innermost part at the top; the other sides reuse it by
// quarter turns. The border thickness is the edge region's height.
type Border struct {
	Contained layout.Widget

	Path   string
	Edge   image.Rectangle
	Corner image.Rectangle

	drawPos geom.Rect
}

// NewBorder frames contained with the border cut from the texture at
// path.
func NewBorder(contained layout.Widget, path string, edge, corner image.Rectangle) *Border {
	return &Border{Contained: contained, Path: path, Edge: edge, Corner: corner}
}

// thickness of one side
func (b *Border) inset() float32 { return float32(b.Edge.Dy()) }

func (b *Border) Min(s sys.System) (layout.MinLen, layout.MinLen, error) {
	minW, minH, err := b.Contained.Min(s)
	if err != nil {
		return 0, 0, err
	}
	both := layout.MinLen(2 * b.inset())
	return minW.Combined(both), minH.Combined(both), nil
}

func (b *Border) Max(s sys.System) (layout.MaxLen, layout.MaxLen, error) {
	maxW, maxH, err := b.Contained.Max(s)
	if err != nil {
		return 0, 0, err
	}
	both := layout.MaxLen(2 * b.inset())
	return maxW.Combined(both), maxH.Combined(both), nil
}

func (b *Border) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return b.Contained.PreferredPortion()
}

func (b *Border) MinWFailPolicy() layout.MinLenFailPolicy { return b.Contained.MinWFailPolicy() }
func (b *Border) MinHFailPolicy() layout.MinLenFailPolicy { return b.Contained.MinHFailPolicy() }
func (b *Border) MaxWFailPolicy() layout.MaxLenFailPolicy { return b.Contained.MaxWFailPolicy() }
func (b *Border) MaxHFailPolicy() layout.MaxLenFailPolicy { return b.Contained.MaxHFailPolicy() }

// insetFirst subtracts the border from a length before passing it to
// the contained widget, guarding against going negative.
func (b *Border) insetFirst(v float32) (subtracted, inner float32) {
	both := 2 * b.inset()
	if both >= v {
		return v, 0
	}
	return both, v - both
}

func (b *Border) WidthFromHeight(h float32, s sys.System) (float32, bool, error) {
	sub, inner := b.insetFirst(h)
	w, ok, err := b.Contained.WidthFromHeight(inner, s)
	if !ok || err != nil {
		return 0, ok, err
	}
	return w + sub, true, nil
}

func (b *Border) HeightFromWidth(w float32, s sys.System) (float32, bool, error) {
	sub, inner := b.insetFirst(w)
	h, ok, err := b.Contained.HeightFromWidth(inner, s)
	if !ok || err != nil {
		return 0, ok, err
	}
	return h + sub, true, nil
}

func (b *Border) RatioExceedsParent() bool { return b.Contained.RatioExceedsParent() }

func (b *Border) Update(ctx *layout.Context, s sys.System) (bool, error) {
	b.drawPos = ctx.Position
	in := b.inset()
	inner := geom.Rect{
		X: ctx.Position.X + in,
		Y: ctx.Position.Y + in,
		W: ctx.Position.W - 2*in,
		// deliberately allowed to go negative
		H: ctx.Position.H - 2*in,
	}
	sub := ctx.Sub(inner)
	return b.Contained.Update(&sub, s)
}

func (b *Border) Draw(s sys.System) error {
	if err := b.Contained.Draw(s); err != nil {
		return err
	}
	pos, ok := b.drawPos.Pixel()
	if !ok {
		return nil
	}

	t, err := s.Image(b.Path)
	if err != nil {
		return err
	}

	in := b.Edge.Dy()
	// top runs left to right, then each further side is the edge
	// texture turned another quarter clockwise
	if err := b.drawSide(t, pos.Min.X+in, pos.Min.Y, pos.Dx()-2*in, true, 0); err != nil {
		return err
	}
	if err := b.drawSide(t, pos.Max.X-in, pos.Min.Y+in, pos.Dy()-2*in, false, 1); err != nil {
		return err
	}
	if err := b.drawSide(t, pos.Min.X+in, pos.Max.Y-in, pos.Dx()-2*in, true, 2); err != nil {
		return err
	}
	if err := b.drawSide(t, pos.Min.X, pos.Min.Y+in, pos.Dy()-2*in, false, 3); err != nil {
		return err
	}

	corners := []struct {
		x, y  int
		turns int
	}{
		{pos.Max.X - in, pos.Min.Y, 0}, // top right, as authored
		{pos.Max.X - in, pos.Max.Y - in, 1},
		{pos.Min.X, pos.Max.Y - in, 2},
		{pos.Min.X, pos.Min.Y, 3},
	}
	for _, c := range corners {
		dst := geom.Rect{
			X: float32(c.x),
			Y: float32(c.y),
			W: float32(b.Corner.Dx()),
			H: float32(b.Corner.Dy()),
		}
		if err := t.DrawRotated(&b.Corner, dst, c.turns); err != nil {
			return err
		}
	}
	return nil
}

// drawSide tiles the edge texture along one side. horizontal sides
// advance in x, vertical sides in y; turns rotates the edge to suit
// the side.
func (b *Border) drawSide(t sys.Texture, x, y, length int, horizontal bool, turns int) error {
	in := b.Edge.Dy()
	for length > 0 {
		step := b.Edge.Dx()
		if step > length {
			step = length
		}
		src := image.Rect(b.Edge.Min.X, b.Edge.Min.Y, b.Edge.Min.X+step, b.Edge.Max.Y)
		var dst geom.Rect
		if horizontal {
			dst = geom.Rect{X: float32(x), Y: float32(y), W: float32(step), H: float32(in)}
			x += step
		} else {
			dst = geom.Rect{X: float32(x), Y: float32(y), W: float32(in), H: float32(step)}
			y += step
		}
		if err := t.DrawRotated(&src, dst, turns); err != nil {
			return err
		}
		length -= step
	}
	return nil
}
