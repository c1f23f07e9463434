// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// Slot optionally holds a widget, which can be swapped out or removed
// between frames. An empty slot has the default flexible sizing and
// does nothing.
type Slot struct {
	layout.Base

	Contained layout.Widget
}

func (sl *Slot) Min(s sys.System) (layout.MinLen, layout.MinLen, error) {
	if sl.Contained == nil {
		return sl.Base.Min(s)
	}
	return sl.Contained.Min(s)
}

func (sl *Slot) Max(s sys.System) (layout.MaxLen, layout.MaxLen, error) {
	if sl.Contained == nil {
		return sl.Base.Max(s)
	}
	return sl.Contained.Max(s)
}

func (sl *Slot) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	if sl.Contained == nil {
		return sl.Base.PreferredPortion()
	}
	return sl.Contained.PreferredPortion()
}

func (sl *Slot) MinWFailPolicy() layout.MinLenFailPolicy {
	if sl.Contained == nil {
		return sl.Base.MinWFailPolicy()
	}
	return sl.Contained.MinWFailPolicy()
}

func (sl *Slot) MinHFailPolicy() layout.MinLenFailPolicy {
	if sl.Contained == nil {
		return sl.Base.MinHFailPolicy()
	}
	return sl.Contained.MinHFailPolicy()
}

func (sl *Slot) MaxWFailPolicy() layout.MaxLenFailPolicy {
	if sl.Contained == nil {
		return sl.Base.MaxWFailPolicy()
	}
	return sl.Contained.MaxWFailPolicy()
}

func (sl *Slot) MaxHFailPolicy() layout.MaxLenFailPolicy {
	if sl.Contained == nil {
		return sl.Base.MaxHFailPolicy()
	}
	return sl.Contained.MaxHFailPolicy()
}

func (sl *Slot) WidthFromHeight(h float32, s sys.System) (float32, bool, error) {
	if sl.Contained == nil {
		return sl.Base.WidthFromHeight(h, s)
	}
	return sl.Contained.WidthFromHeight(h, s)
}

func (sl *Slot) HeightFromWidth(w float32, s sys.System) (float32, bool, error) {
	if sl.Contained == nil {
		return sl.Base.HeightFromWidth(w, s)
	}
	return sl.Contained.HeightFromWidth(w, s)
}

func (sl *Slot) RatioExceedsParent() bool {
	if sl.Contained == nil {
		return sl.Base.RatioExceedsParent()
	}
	return sl.Contained.RatioExceedsParent()
}

func (sl *Slot) Update(ctx *layout.Context, s sys.System) (bool, error) {
	if sl.Contained == nil {
		return false, nil
	}
	return sl.Contained.Update(ctx, s)
}

func (sl *Slot) Draw(s sys.System) error {
	if sl.Contained == nil {
		return nil
	}
	return sl.Contained.Draw(s)
}
