// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/sys"
)

// CustomSizing states a wrapper widget's size literally, ignoring
// whatever it contains.
type CustomSizing struct {
	MinW, MinH             MinLen
	MaxW, MaxH             MaxLen
	PreferredW, PreferredH PreferredPortion

	// AspectRatio links the axes, width over height. Zero leaves them
	// independent.
	AspectRatio          float32
	RatioMayExceedParent bool

	MinWFail MinLenFailPolicy
	MaxWFail MaxLenFailPolicy
	MinHFail MinLenFailPolicy
	MaxHFail MaxLenFailPolicy
}

// DefaultCustomSizing is unconstrained, centered and full-portion.
func DefaultCustomSizing() CustomSizing {
	return CustomSizing{
		MaxW:       MaxLenLax,
		MaxH:       MaxLenLax,
		PreferredW: Full,
		PreferredH: Full,
		MinWFail:   MinFailCentered,
		MaxWFail:   MaxFailCentered,
		MinHFail:   MinFailCentered,
		MaxHFail:   MaxFailCentered,
	}
}

// Sizing decides how a wrapper widget (a scroller, a border, a
// background) reports its size: by inheriting the contained widget's
// sizing, which is the zero value, or by stating its own.
type Sizing struct {
	Custom *CustomSizing
}

// Inherit passes the contained widget's sizing through unchanged.
var Inherit = Sizing{}

// Literal states the wrapper's sizing directly.
func Literal(c CustomSizing) Sizing { return Sizing{Custom: &c} }

func (z Sizing) Min(contained Widget, s sys.System) (MinLen, MinLen, error) {
	if z.Custom != nil {
		return z.Custom.MinW, z.Custom.MinH, nil
	}
	return contained.Min(s)
}

func (z Sizing) Max(contained Widget, s sys.System) (MaxLen, MaxLen, error) {
	if z.Custom != nil {
		return z.Custom.MaxW, z.Custom.MaxH, nil
	}
	return contained.Max(s)
}

func (z Sizing) PreferredPortion(contained Widget) (PreferredPortion, PreferredPortion) {
	if z.Custom != nil {
		return z.Custom.PreferredW, z.Custom.PreferredH
	}
	return contained.PreferredPortion()
}

func (z Sizing) WidthFromHeight(contained Widget, h float32, s sys.System) (float32, bool, error) {
	if z.Custom != nil {
		if z.Custom.AspectRatio == 0 {
			return 0, false, nil
		}
		return WidthFromHeight(z.Custom.AspectRatio, h), true, nil
	}
	return contained.WidthFromHeight(h, s)
}

func (z Sizing) HeightFromWidth(contained Widget, w float32, s sys.System) (float32, bool, error) {
	if z.Custom != nil {
		if z.Custom.AspectRatio == 0 {
			return 0, false, nil
		}
		return HeightFromWidth(z.Custom.AspectRatio, w), true, nil
	}
	return contained.HeightFromWidth(w, s)
}

func (z Sizing) RatioExceedsParent(contained Widget) bool {
	if z.Custom != nil {
		return z.Custom.RatioMayExceedParent
	}
	return contained.RatioExceedsParent()
}

func (z Sizing) MinWFailPolicy(contained Widget) MinLenFailPolicy {
	if z.Custom != nil {
		return z.Custom.MinWFail
	}
	return contained.MinWFailPolicy()
}

func (z Sizing) MinHFailPolicy(contained Widget) MinLenFailPolicy {
	if z.Custom != nil {
		return z.Custom.MinHFail
	}
	return contained.MinHFailPolicy()
}

func (z Sizing) MaxWFailPolicy(contained Widget) MaxLenFailPolicy {
	if z.Custom != nil {
		return z.Custom.MaxWFail
	}
	return contained.MaxWFailPolicy()
}

func (z Sizing) MaxHFailPolicy(contained Widget) MaxLenFailPolicy {
	if z.Custom != nil {
		return z.Custom.MaxHFail
	}
	return contained.MaxHFailPolicy()
}

// PositionFor is the position the contained widget would be updated
// with. When inheriting, the wrapper's position passes through; when
// literal, the contained widget is placed within it.
func (z Sizing) PositionFor(contained Widget, ctx *Context, s sys.System) (geom.Rect, error) {
	if z.Custom == nil {
		return ctx.Position, nil
	}
	return Place(contained, ctx.Position, ctx.AspectPriority, s)
}

// UpdateContained updates the contained widget at PositionFor.
func (z Sizing) UpdateContained(contained Widget, ctx *Context, s sys.System) (bool, error) {
	pos, err := z.PositionFor(contained, ctx, s)
	if err != nil {
		return false, err
	}
	sub := ctx.Sub(pos)
	return contained.Update(&sub, s)
}
