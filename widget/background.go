// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// Background pairs a contained widget with decoration drawn behind it
// or, as an overlay, in front of it.
//
// Sizing comes from the contained widget alone; the decoration is
// given the same position and is assumed lax about it.
type Background struct {
	Contained  layout.Widget
	Decoration layout.Widget

	// Overlay draws the decoration in front of the contained widget
	// instead of behind it.
	Overlay bool

	Sizing layout.Sizing
}

// NewBackground returns contained over a backdrop.
func NewBackground(contained, decoration layout.Widget) *Background {
	return &Background{Contained: contained, Decoration: decoration}
}

func (b *Background) Min(s sys.System) (layout.MinLen, layout.MinLen, error) {
	return b.Sizing.Min(b.Contained, s)
}

func (b *Background) Max(s sys.System) (layout.MaxLen, layout.MaxLen, error) {
	return b.Sizing.Max(b.Contained, s)
}

func (b *Background) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return b.Sizing.PreferredPortion(b.Contained)
}

func (b *Background) MinWFailPolicy() layout.MinLenFailPolicy {
	return b.Sizing.MinWFailPolicy(b.Contained)
}

func (b *Background) MinHFailPolicy() layout.MinLenFailPolicy {
	return b.Sizing.MinHFailPolicy(b.Contained)
}

func (b *Background) MaxWFailPolicy() layout.MaxLenFailPolicy {
	return b.Sizing.MaxWFailPolicy(b.Contained)
}

func (b *Background) MaxHFailPolicy() layout.MaxLenFailPolicy {
	return b.Sizing.MaxHFailPolicy(b.Contained)
}

func (b *Background) WidthFromHeight(h float32, s sys.System) (float32, bool, error) {
	return b.Sizing.WidthFromHeight(b.Contained, h, s)
}

func (b *Background) HeightFromWidth(w float32, s sys.System) (float32, bool, error) {
	return b.Sizing.HeightFromWidth(b.Contained, w, s)
}

func (b *Background) RatioExceedsParent() bool {
	return b.Sizing.RatioExceedsParent(b.Contained)
}

func (b *Background) Update(ctx *layout.Context, s sys.System) (bool, error) {
	more1, err := b.Sizing.UpdateContained(b.Contained, ctx, s)
	if err != nil {
		return false, err
	}
	more2, err := b.Sizing.UpdateContained(b.Decoration, ctx, s)
	if err != nil {
		return false, err
	}
	return more1 || more2, nil
}

func (b *Background) Draw(s sys.System) error {
	if !b.Overlay {
		if err := b.Decoration.Draw(s); err != nil {
			return err
		}
	}
	if err := b.Contained.Draw(s); err != nil {
		return err
	}
	if b.Overlay {
		return b.Decoration.Draw(s)
	}
	return nil
}
