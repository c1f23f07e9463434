// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"math"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/sys"
)

// Defaults for Scroller tuning fields left zero.
const (
	DragDeadZoneDefault     = 10
	WheelSensitivityDefault = 20
)

type dragPhase uint8

const (
	dragNone dragPhase = iota
	// mouse went down inside; waiting for it to travel out of the
	// dead zone
	dragArmed
	dragActive
)

// ScrollState is the part of a Scroller that persists between frames.
// Under an immediate mode UI the widget tree may be rebuilt every
// frame, so the state is owned by the caller and lent to the Scroller.
type ScrollState struct {
	// X and Y are the current scroll offsets in pixels.
	X, Y int

	phase dragPhase
	// armed: where the mouse went down. active: the grab offset
	// between the mouse and the scroll position.
	refX, refY int
}

// Dragging reports whether a click and drag scroll is in progress.
func (st *ScrollState) Dragging() bool { return st.phase == dragActive }

// ScrollRange is an observer output: how far the content is scrolled
// and how far it can scroll, both in pixels. A scrollbar is drawn
// from exactly this.
type ScrollRange struct {
	Offset float32
	Range  float32
}

// Scroller translates and clips its contained widget to let content
// larger than the available area be viewed. It scrolls by mouse wheel
// and by click and drag.
//
// It does not cull: the contained widget is updated and drawn even
// when fully scrolled out of view, and widgets must themselves ignore
// pointer events outside the ambient clip.
//
// Scrollers do not nest. An inner scroller would fight the outer one
// over the same drag and wheel events.
type Scroller struct {
	State *ScrollState

	// DragDeadZone is the distance in pixels the mouse must travel on
	// an axis, while down, before a drag scroll starts. Zero means
	// DragDeadZoneDefault.
	DragDeadZone int

	// WheelSensitivity is pixels scrolled per wheel step. Zero means
	// WheelSensitivityDefault.
	WheelSensitivity int

	ScrollX bool
	ScrollY bool

	Contained Widget
	Sizing    Sizing

	// LockSmallX and LockSmallY anchor content smaller than the view
	// on the respective axis, using the same 0-to-1 anchor as a max
	// fail policy, instead of letting it be scrolled around. Nil
	// disables the lock.
	LockSmallX *MaxLenFailPolicy
	LockSmallY *MaxLenFailPolicy

	// RangeX and RangeY, when non nil, receive the scroll offset and
	// range each update.
	RangeX *ScrollRange
	RangeY *ScrollRange

	// captured during update for draw
	clipForContained geom.Clip
	posForContained  geom.Rect
}

// Anchor is a convenience for the LockSmall fields.
func Anchor(p MaxLenFailPolicy) *MaxLenFailPolicy { return &p }

// NewScroller returns a scroller around contained with the default
// tuning: content smaller than the view is locked to the negative
// edge.
func NewScroller(scrollX, scrollY bool, state *ScrollState, contained Widget) *Scroller {
	return &Scroller{
		State:      state,
		ScrollX:    scrollX,
		ScrollY:    scrollY,
		Contained:  contained,
		LockSmallX: Anchor(MaxFailNegative),
		LockSmallY: Anchor(MaxFailNegative),
	}
}

func (sc *Scroller) deadZone() int {
	if sc.DragDeadZone != 0 {
		return sc.DragDeadZone
	}
	return DragDeadZoneDefault
}

func (sc *Scroller) sensitivity() int {
	if sc.WheelSensitivity != 0 {
		return sc.WheelSensitivity
	}
	return WheelSensitivityDefault
}

func (sc *Scroller) Min(s sys.System) (MinLen, MinLen, error) {
	return sc.Sizing.Min(sc.Contained, s)
}

func (sc *Scroller) Max(s sys.System) (MaxLen, MaxLen, error) {
	return sc.Sizing.Max(sc.Contained, s)
}

func (sc *Scroller) PreferredPortion() (PreferredPortion, PreferredPortion) {
	return sc.Sizing.PreferredPortion(sc.Contained)
}

func (sc *Scroller) MinWFailPolicy() MinLenFailPolicy { return sc.Sizing.MinWFailPolicy(sc.Contained) }
func (sc *Scroller) MinHFailPolicy() MinLenFailPolicy { return sc.Sizing.MinHFailPolicy(sc.Contained) }
func (sc *Scroller) MaxWFailPolicy() MaxLenFailPolicy { return sc.Sizing.MaxWFailPolicy(sc.Contained) }
func (sc *Scroller) MaxHFailPolicy() MaxLenFailPolicy { return sc.Sizing.MaxHFailPolicy(sc.Contained) }

func (sc *Scroller) WidthFromHeight(h float32, s sys.System) (float32, bool, error) {
	return sc.Sizing.WidthFromHeight(sc.Contained, h, s)
}

func (sc *Scroller) HeightFromWidth(w float32, s sys.System) (float32, bool, error) {
	return sc.Sizing.HeightFromWidth(sc.Contained, w, s)
}

func (sc *Scroller) RatioExceedsParent() bool {
	return sc.Sizing.RatioExceedsParent(sc.Contained)
}

func (sc *Scroller) Update(ctx *Context, s sys.System) (bool, error) {
	view, ok := ctx.Position.Pixel()
	if !ok {
		// zero view area; nothing can be seen or scrolled. The events
		// still reach the contained widget, which might react to a
		// key press despite having no area.
		sc.clipForContained = geom.ZeroClip
		sub := ctx.Sub(ctx.Position)
		return sc.Contained.Update(&sub, s)
	}

	// scrolling consumes events, but only after the contained widget
	// saw them, or nothing inside would be clickable. Which events to
	// consume is decided now and applied at the end.
	deferConsumed := make([]bool, len(ctx.Events))

	for i := range ctx.Events {
		in := &ctx.Events[i]
		if !in.Available() {
			continue
		}
		switch e := in.Event.(type) {
		case event.Wheel:
			pt := image.Pt(e.X, e.Y)
			if pt.In(view) && ctx.Clip.Contains(pt) {
				sc.State.X -= e.DX * sc.sensitivity()
				sc.State.Y += e.DY * sc.sensitivity()
			}
		case event.Pointer:
			if !e.Down {
				// falling edge: a drag in progress still swallows the
				// release
				if sc.State.phase == dragActive {
					in.ConsumeByLayout()
				}
				sc.State.phase = dragNone
				continue
			}

			if sc.State.phase == dragNone && e.Changed {
				pt := image.Pt(e.X, e.Y)
				if pt.In(view) && ctx.Clip.Contains(pt) {
					sc.State.phase = dragArmed
					sc.State.refX, sc.State.refY = e.X, e.Y
				}
			}

			if sc.State.phase == dragArmed {
				farX := abs(sc.State.refX-e.X) > sc.deadZone()
				farY := abs(sc.State.refY-e.Y) > sc.deadZone()
				if (farX && sc.ScrollX) || (farY && sc.ScrollY) {
					sc.State.phase = dragActive
					sc.State.refX = e.X - sc.State.X
					sc.State.refY = e.Y - sc.State.Y
				}
			}

			if sc.State.phase == dragActive {
				if sc.ScrollX {
					sc.State.X = e.X - sc.State.refX
				}
				if sc.ScrollY {
					sc.State.Y = e.Y - sc.State.refY
				}
			}

			if sc.State.phase != dragNone {
				deferConsumed[i] = true
			}
		}
	}

	contentPos, err := sc.Sizing.PositionFor(sc.Contained, ctx, s)
	if err != nil {
		return false, err
	}
	content, ok := contentPos.Pixel()
	if !ok {
		sc.clipForContained = geom.ZeroClip
		sub := ctx.Sub(ctx.Position)
		return sc.Contained.Update(&sub, s)
	}

	sc.applyRestrictions(content, view)

	sc.clipForContained = ctx.Clip.Intersect(geom.ClipRect(view))
	sc.posForContained = contentPos
	sc.posForContained.X += float32(sc.State.X)
	sc.posForContained.Y += float32(sc.State.Y)

	sub := ctx.Sub(sc.posForContained)
	sub.Clip = sc.clipForContained
	more, err := sc.Contained.Update(&sub, s)
	if err != nil {
		return false, err
	}

	for i, c := range deferConsumed {
		if c {
			ctx.Events[i].ConsumeByLayout()
		}
	}
	return more, nil
}

// applyRestrictions clamps the scroll offsets so no blank space shows
// where content could be, and feeds the observer outputs. It runs
// even with scrolling disabled, since content may have been moved off
// view while scrolling was previously enabled. Applying it twice with
// the same inputs changes nothing.
func (sc *Scroller) applyRestrictions(content, view image.Rectangle) {
	content = content.Add(image.Pt(sc.State.X, sc.State.Y))

	contentW := content.Dx()
	contentH := content.Dy()
	viewW := view.Dx()
	viewH := view.Dy()

	if contentH < viewH {
		// content smaller than the view
		if sc.LockSmallY != nil {
			sc.State.Y = roundI(float32(viewH-contentH) * float32(*sc.LockSmallY))
			if sc.RangeY != nil {
				*sc.RangeY = ScrollRange{}
			}
		} else {
			if content.Min.Y < view.Min.Y {
				sc.State.Y += view.Min.Y - content.Min.Y
			} else if content.Max.Y > view.Max.Y {
				sc.State.Y -= content.Max.Y - view.Max.Y
			}
			if sc.RangeY != nil {
				avail := float32(viewH - contentH)
				off := clampF(float32(content.Min.Y-view.Min.Y), 0, avail)
				*sc.RangeY = ScrollRange{Offset: off, Range: avail}
			}
		}
	} else {
		if content.Min.Y > view.Min.Y {
			sc.State.Y += view.Min.Y - content.Min.Y
		} else if content.Max.Y < view.Max.Y {
			sc.State.Y -= content.Max.Y - view.Max.Y
		}
		if sc.RangeY != nil {
			hidden := float32(contentH - viewH)
			off := clampF(float32(view.Min.Y-content.Min.Y), 0, hidden)
			*sc.RangeY = ScrollRange{Offset: off, Range: hidden}
		}
	}

	if contentW < viewW {
		if sc.LockSmallX != nil {
			sc.State.X = roundI(float32(viewW-contentW) * float32(*sc.LockSmallX))
			if sc.RangeX != nil {
				*sc.RangeX = ScrollRange{}
			}
		} else {
			if content.Min.X < view.Min.X {
				sc.State.X += view.Min.X - content.Min.X
			} else if content.Max.X > view.Max.X {
				sc.State.X -= content.Max.X - view.Max.X
			}
			if sc.RangeX != nil {
				avail := float32(viewW - contentW)
				off := clampF(float32(content.Min.X-view.Min.X), 0, avail)
				*sc.RangeX = ScrollRange{Offset: off, Range: avail}
			}
		}
	} else {
		if content.Min.X > view.Min.X {
			sc.State.X += view.Min.X - content.Min.X
		} else if content.Max.X < view.Max.X {
			sc.State.X -= content.Max.X - view.Max.X
		}
		if sc.RangeX != nil {
			hidden := float32(contentW - viewW)
			off := clampF(float32(view.Min.X-content.Min.X), 0, hidden)
			*sc.RangeX = ScrollRange{Offset: off, Range: hidden}
		}
	}
}

func (sc *Scroller) Draw(s sys.System) error {
	prev := s.CurrentClip()
	s.Clip(sc.clipForContained)
	err := sc.Contained.Draw(s)
	s.Clip(prev)
	return err
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func roundI(v float32) int {
	return int(math.Round(float64(v)))
}

func clampF(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
