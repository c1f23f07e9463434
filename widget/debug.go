// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// Debug draws an outline at its position and flashes when clicked.
// Use it to see what a layout is doing.
type Debug struct {
	Sizing layout.CustomSizing

	Color color.NRGBA

	// set during update, used during draw
	clicked bool
	drawPos geom.Rect
}

// NewDebug returns an unconstrained magenta outline.
func NewDebug() *Debug {
	return &Debug{
		Sizing: layout.DefaultCustomSizing(),
		Color:  color.NRGBA{R: 0xFF, B: 0xFF, A: 0xFF},
	}
}

func (d *Debug) Min(sys.System) (layout.MinLen, layout.MinLen, error) {
	return d.Sizing.MinW, d.Sizing.MinH, nil
}

func (d *Debug) Max(sys.System) (layout.MaxLen, layout.MaxLen, error) {
	return d.Sizing.MaxW, d.Sizing.MaxH, nil
}

func (d *Debug) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return d.Sizing.PreferredW, d.Sizing.PreferredH
}

func (d *Debug) MinWFailPolicy() layout.MinLenFailPolicy { return d.Sizing.MinWFail }
func (d *Debug) MinHFailPolicy() layout.MinLenFailPolicy { return d.Sizing.MinHFail }
func (d *Debug) MaxWFailPolicy() layout.MaxLenFailPolicy { return d.Sizing.MaxWFail }
func (d *Debug) MaxHFailPolicy() layout.MaxLenFailPolicy { return d.Sizing.MaxHFail }

func (d *Debug) WidthFromHeight(h float32, _ sys.System) (float32, bool, error) {
	if d.Sizing.AspectRatio == 0 {
		return 0, false, nil
	}
	return layout.WidthFromHeight(d.Sizing.AspectRatio, h), true, nil
}

func (d *Debug) HeightFromWidth(w float32, _ sys.System) (float32, bool, error) {
	if d.Sizing.AspectRatio == 0 {
		return 0, false, nil
	}
	return layout.HeightFromWidth(d.Sizing.AspectRatio, w), true, nil
}

func (d *Debug) RatioExceedsParent() bool { return d.Sizing.RatioMayExceedParent }

func (d *Debug) Update(ctx *layout.Context, _ sys.System) (bool, error) {
	d.clicked = false
	d.drawPos = ctx.Position

	pos, ok := ctx.Position.Pixel()
	if !ok {
		return false, nil
	}

	for i := range ctx.Events {
		in := &ctx.Events[i]
		if !in.Available() {
			continue
		}
		if p, isPointer := in.Event.(event.Pointer); isPointer {
			pt := image.Pt(p.X, p.Y)
			if p.Down && p.Changed && pt.In(pos) && ctx.Clip.Contains(pt) {
				in.Consume()
				d.clicked = true
			}
		}
	}
	return false, nil
}

func (d *Debug) Draw(s sys.System) error {
	pos, ok := d.drawPos.Pixel()
	if !ok {
		return nil
	}
	if d.clicked {
		// brief flash
		return s.Fill(geom.FromPixel(pos), d.Color)
	}
	f := geom.FromPixel(pos)
	edges := []geom.Rect{
		{X: f.X, Y: f.Y, W: f.W, H: 1},
		{X: f.X, Y: f.Bottom() - 1, W: f.W, H: 1},
		{X: f.X, Y: f.Y, W: 1, H: f.H},
		{X: f.Right() - 1, Y: f.Y, W: 1, H: f.H},
	}
	for _, e := range edges {
		if err := s.Fill(e, d.Color); err != nil {
			return err
		}
	}
	return nil
}
