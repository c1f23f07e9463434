// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"time"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/sys"
)

// Widget is the sizing and update contract every UI element
// implements. Containers consume it polymorphically; they are
// themselves Widgets, so the contract is recursively self similar.
//
// Sizing queries may reach into the backend (for example to measure
// text) and are therefore fallible and not assumed cheap. A query
// error aborts the whole frame's layout.
type Widget interface {
	// Min is the width and height the widget will never go below.
	Min(s sys.System) (MinLen, MinLen, error)

	// Max is the width and height the widget will never exceed,
	// unless that would conflict with Min.
	Max(s sys.System) (MaxLen, MaxLen, error)

	// PreferredPortion is the requested portion of the parent on each
	// axis, also used as a weight between competing siblings.
	PreferredPortion() (PreferredPortion, PreferredPortion)

	MinWFailPolicy() MinLenFailPolicy
	MinHFailPolicy() MinLenFailPolicy
	MaxWFailPolicy() MaxLenFailPolicy
	MaxHFailPolicy() MaxLenFailPolicy

	// WidthFromHeight derives a preferred width from an already
	// resolved height, for aspect-ratio-locked content. It reports
	// false if the widget has no opinion, in which case the axes are
	// sized independently.
	WidthFromHeight(h float32, s sys.System) (float32, bool, error)

	// HeightFromWidth is the transposed WidthFromHeight.
	HeightFromWidth(w float32, s sys.System) (float32, bool, error)

	// RatioExceedsParent is whether an aspect-derived length may
	// exceed the portion of the parent this widget was offered. It
	// generally should be left false.
	RatioExceedsParent() bool

	// Update receives the final position for this frame along with
	// the input events and ambient clip. It is called for every
	// widget before any call to Draw. The returned bool requests
	// that another frame follow quickly, for animation under a lazily
	// redrawing loop.
	Update(ctx *Context, s sys.System) (bool, error)

	// Draw paints the widget using the position captured during
	// Update. It is called after all widgets are updated.
	Draw(s sys.System) error
}

// Context is the per-widget slice of frame state passed down the tree
// during the update traversal.
type Context struct {
	// Position is where the widget is. It stays floating point while
	// layout is in progress.
	Position geom.Rect

	// Clip is the clipping area that will be in effect once the
	// widget is drawn.
	Clip geom.Clip

	// AspectPriority is which axis is resolved first for aspect
	// ratio derivation in this part of the tree.
	AspectPriority AspectDirection

	// Events holds the frame's input events in order of occurrence.
	// All Contexts of a frame share the same backing slice, so
	// consuming an event anywhere hides it everywhere after.
	Events []event.Input

	// Dt is the time since the previous frame, or 0 on the first.
	Dt time.Duration
}

// Sub returns a context for a child at a different position, sharing
// the frame's events.
func (c *Context) Sub(pos geom.Rect) Context {
	sub := *c
	sub.Position = pos
	return sub
}

// Base provides the default widget contract: unconstrained and
// centered, requesting the full parent portion, with no aspect
// opinion and an inert update. Widgets embed Base and override what
// they care about.
type Base struct{}

func (Base) Min(sys.System) (MinLen, MinLen, error) { return MinLenLax, MinLenLax, nil }
func (Base) Max(sys.System) (MaxLen, MaxLen, error) { return MaxLenLax, MaxLenLax, nil }
func (Base) PreferredPortion() (PreferredPortion, PreferredPortion) {
	return Full, Full
}
func (Base) MinWFailPolicy() MinLenFailPolicy { return MinFailCentered }
func (Base) MinHFailPolicy() MinLenFailPolicy { return MinFailCentered }
func (Base) MaxWFailPolicy() MaxLenFailPolicy { return MaxFailCentered }
func (Base) MaxHFailPolicy() MaxLenFailPolicy { return MaxFailCentered }
func (Base) WidthFromHeight(float32, sys.System) (float32, bool, error) {
	return 0, false, nil
}
func (Base) HeightFromWidth(float32, sys.System) (float32, bool, error) {
	return 0, false, nil
}
func (Base) RatioExceedsParent() bool                  { return false }
func (Base) Update(*Context, sys.System) (bool, error) { return false, nil }

// Place resolves a widget's rect within a parent rect from its min,
// max and preferred lengths and its fail policies.
func Place(w Widget, parent geom.Rect, prio AspectDirection, s sys.System) (geom.Rect, error) {
	minW, minH, err := w.Min(s)
	if err != nil {
		return geom.Rect{}, err
	}
	maxW, maxH, err := w.Max(s)
	if err != nil {
		return geom.Rect{}, err
	}
	prefW, prefH := w.PreferredPortion()
	preClampW := prefW.Get(parent.W)
	preClampH := prefH.Get(parent.H)
	width := Clamp(preClampW, minW, maxW)
	height := Clamp(preClampH, minH, maxH)

	// One axis may be re-derived from the other to hold an aspect
	// ratio. The derived length is kept within the parent's portion
	// unless the widget explicitly allows exceeding it.
	switch prio {
	case DeriveWidth:
		newW, ok, err := w.WidthFromHeight(height, s)
		if err != nil {
			return geom.Rect{}, err
		}
		if ok {
			max := maxW
			if !w.RatioExceedsParent() {
				max = max.Strictest(MaxLen(preClampW))
			}
			width = Clamp(newW, minW, max)
		}
	case DeriveHeight:
		newH, ok, err := w.HeightFromWidth(width, s)
		if err != nil {
			return geom.Rect{}, err
		}
		if ok {
			max := maxH
			if !w.RatioExceedsParent() {
				max = max.Strictest(MaxLen(preClampH))
			}
			height = Clamp(newH, minH, max)
		}
	}

	return geom.Rect{
		X: parent.X + failOffset(width, parent.W, w.MinWFailPolicy(), w.MaxWFailPolicy()),
		Y: parent.Y + failOffset(height, parent.H, w.MinHFailPolicy(), w.MaxHFailPolicy()),
		W: width,
		H: height,
	}, nil
}

// UpdateUI runs one update traversal of the whole tree against the
// current window size. Each frame the widget should afterwards be
// drawn with its Draw method. The returned bool requests an eager
// redraw.
func UpdateUI(root Widget, events []event.Input, s sys.System, dt time.Duration) (bool, error) {
	size, err := s.Size()
	if err != nil {
		return false, err
	}
	window := geom.Rect{W: float32(size.X), H: float32(size.Y)}
	pos, err := Place(root, window, DeriveWidth, s)
	if err != nil {
		return false, err
	}
	ctx := Context{
		Position:       pos,
		Clip:           geom.NoClip,
		AspectPriority: DeriveWidth,
		Events:         events,
		Dt:             dt,
	}
	return root.Update(&ctx, s)
}
