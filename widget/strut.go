// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget provides the built-in widgets: spacing, debug outlines,
single and multi line text, images, buttons, checkboxes, backgrounds
and borders. All of them implement layout.Widget and are composed
freely inside layout containers.
*/
package widget

import (
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// Strut is empty space used to separate or pad other widgets.
type Strut struct {
	layout.Base

	MinW, MinH             layout.MinLen
	MaxW, MaxH             layout.MaxLen
	PreferredW, PreferredH layout.PreferredPortion
}

// Fixed returns a strut of exactly the given size.
func Fixed(w, h float32) *Strut {
	return &Strut{
		MinW: layout.MinLen(w),
		MinH: layout.MinLen(h),
		MaxW: layout.MaxLen(w),
		MaxH: layout.MaxLen(h),
	}
}

// Shrinkable returns a strut that prefers to be at its largest but
// shrinks down to min as needed.
func Shrinkable(minW, minH layout.MinLen, maxW, maxH layout.MaxLen) *Strut {
	return &Strut{
		MinW:       minW,
		MinH:       minH,
		MaxW:       maxW,
		MaxH:       maxH,
		PreferredW: layout.Full,
		PreferredH: layout.Full,
	}
}

func (st *Strut) Min(sys.System) (layout.MinLen, layout.MinLen, error) {
	return st.MinW, st.MinH, nil
}

func (st *Strut) Max(sys.System) (layout.MaxLen, layout.MaxLen, error) {
	return st.MaxW, st.MaxH, nil
}

func (st *Strut) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return st.PreferredW, st.PreferredH
}

func (st *Strut) Draw(sys.System) error { return nil }
