// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// Solid fills its position with one color. Useful as a backdrop or a
// plain button skin.
type Solid struct {
	Sizing layout.CustomSizing
	Color  color.NRGBA

	drawPos geom.Rect
}

// NewSolid returns an unconstrained solid fill.
func NewSolid(c color.NRGBA) *Solid {
	return &Solid{Sizing: layout.DefaultCustomSizing(), Color: c}
}

func (so *Solid) Min(sys.System) (layout.MinLen, layout.MinLen, error) {
	return so.Sizing.MinW, so.Sizing.MinH, nil
}

func (so *Solid) Max(sys.System) (layout.MaxLen, layout.MaxLen, error) {
	return so.Sizing.MaxW, so.Sizing.MaxH, nil
}

func (so *Solid) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return so.Sizing.PreferredW, so.Sizing.PreferredH
}

func (so *Solid) MinWFailPolicy() layout.MinLenFailPolicy { return so.Sizing.MinWFail }
func (so *Solid) MinHFailPolicy() layout.MinLenFailPolicy { return so.Sizing.MinHFail }
func (so *Solid) MaxWFailPolicy() layout.MaxLenFailPolicy { return so.Sizing.MaxWFail }
func (so *Solid) MaxHFailPolicy() layout.MaxLenFailPolicy { return so.Sizing.MaxHFail }

func (so *Solid) WidthFromHeight(h float32, _ sys.System) (float32, bool, error) {
	if so.Sizing.AspectRatio == 0 {
		return 0, false, nil
	}
	return layout.WidthFromHeight(so.Sizing.AspectRatio, h), true, nil
}

func (so *Solid) HeightFromWidth(w float32, _ sys.System) (float32, bool, error) {
	if so.Sizing.AspectRatio == 0 {
		return 0, false, nil
	}
	return layout.HeightFromWidth(so.Sizing.AspectRatio, w), true, nil
}

func (so *Solid) RatioExceedsParent() bool { return so.Sizing.RatioMayExceedParent }

func (so *Solid) Update(ctx *layout.Context, _ sys.System) (bool, error) {
	so.drawPos = ctx.Position
	return false, nil
}

func (so *Solid) Draw(s sys.System) error {
	return s.Fill(so.drawPos, so.Color)
}
