// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the sizing negotiation that underlies every
widget: length constraints and preferred portions, the place routine
resolving one widget within its parent, linear containers distributing
a parent length among competing children, and the scroll and clip
transforms layered on top.

All sizing math stays in floating point; results are snapped to the
integer pixel grid only at the drawing boundary (see package geom).
*/
package layout

import "math"

// MinLen is a lower bound on one axis of a widget's size. A widget is
// never given a length below its minimum, even when that conflicts
// with a maximum or with the parent's available length.
type MinLen float32

// MinLenLax means no lower bound.
const MinLenLax MinLen = 0

// Combined is the minimum of two lengths laid end to end: the sums of
// the parts.
func (m MinLen) Combined(o MinLen) MinLen { return m + o }

// Strictest is the tighter of two lower bounds on the same length.
func (m MinLen) Strictest(o MinLen) MinLen {
	if o > m {
		return o
	}
	return m
}

// MaxLen is an upper bound on one axis of a widget's size.
type MaxLen float32

// MaxLenLax means no meaningful upper bound.
const MaxLenLax MaxLen = math.MaxFloat32

// Combined is the maximum of two lengths laid end to end: the sum of
// the parts.
func (m MaxLen) Combined(o MaxLen) MaxLen { return m + o }

// Strictest is the tighter of two upper bounds on the same length.
func (m MaxLen) Strictest(o MaxLen) MaxLen {
	if o < m {
		return o
	}
	return m
}

// Clamp restricts v to [min, max]. If the bounds conflict the minimum
// wins: a widget is never shrunk below its stated minimum even if
// that exceeds its stated maximum.
func Clamp(v float32, min MinLen, max MaxLen) float32 {
	if float32(min) > float32(max) {
		return float32(min)
	}
	if v < float32(min) {
		return float32(min)
	}
	if v > float32(max) {
		return float32(max)
	}
	return v
}

// PreferredPortion is the portion of the parent length a widget
// requests before min and max clamping. Between siblings it acts as a
// relative weight rather than a strict fraction.
type PreferredPortion float32

// Full requests the entire parent length.
const Full PreferredPortion = 1

// Get returns the requested length out of an available length. The
// result is not clamped here; clamping against min and max happens in
// the caller.
func (p PreferredPortion) Get(available float32) float32 {
	return float32(p) * available
}

// Weighted returns this portion's share of an available length when
// competing against siblings whose portions sum to total.
func (p PreferredPortion) Weighted(total PreferredPortion, available float32) float32 {
	if total == 0 {
		return 0
	}
	return (float32(p) / float32(total)) * available
}

// MinLenFailPolicy states where a widget is anchored along an axis
// when its minimum forces it to be larger than the length its parent
// offered.
type MinLenFailPolicy float32

const (
	// MinFailNegative anchors at the negative edge; excess protrudes
	// in the positive direction.
	MinFailNegative MinLenFailPolicy = 0
	MinFailCentered MinLenFailPolicy = 0.5
	MinFailPositive MinLenFailPolicy = 1
)

// MaxLenFailPolicy states where a widget is anchored along an axis
// when its maximum keeps it smaller than the length its parent
// offered.
type MaxLenFailPolicy float32

const (
	// MaxFailNegative anchors at the negative edge; blank space is
	// left in the positive direction.
	MaxFailNegative MaxLenFailPolicy = 0
	MaxFailCentered MaxLenFailPolicy = 0.5
	MaxFailPositive MaxLenFailPolicy = 1
)

// failOffset is the offset of a widget of length len inside a parent
// of length parent, applying the min policy when the widget is larger
// and the max policy when it is smaller.
func failOffset(len, parent float32, minP MinLenFailPolicy, maxP MaxLenFailPolicy) float32 {
	if len > parent {
		return (parent - len) * float32(minP)
	}
	return (parent - len) * float32(maxP)
}

// AspectDirection states which axis is resolved first when a widget
// derives one axis from the other to keep an aspect ratio. It is a
// property of where a widget sits in the tree, not of the widget: a
// horizontal layout resolves widths first, a vertical layout heights.
type AspectDirection uint8

const (
	// DeriveWidth resolves the height first and derives the width.
	DeriveWidth AspectDirection = iota
	// DeriveHeight resolves the width first and derives the height.
	DeriveHeight
)

// WidthFromHeight is the width of a rect of the given aspect ratio
// (width over height) and height.
func WidthFromHeight(ratio, h float32) float32 { return ratio * h }

// HeightFromWidth is the height of a rect of the given aspect ratio
// (width over height) and width.
func HeightFromWidth(ratio, w float32) float32 {
	if ratio == 0 {
		return 0
	}
	return w / ratio
}

// MinLenPolicy decides where a container's own minimum on an axis
// comes from: aggregated from its children or stated literally.
type MinLenPolicy struct {
	len     MinLen
	literal bool
}

// MinFromChildren aggregates the minimum from the children.
var MinFromChildren = MinLenPolicy{}

// LiteralMin states the minimum directly.
func LiteralMin(l MinLen) MinLenPolicy { return MinLenPolicy{len: l, literal: true} }

// Literal returns the stated minimum, or false if the policy derives
// it from content.
func (p MinLenPolicy) Literal() (MinLen, bool) { return p.len, p.literal }

// MaxLenPolicy decides where a container's own maximum on an axis
// comes from: aggregated from its children or stated literally.
type MaxLenPolicy struct {
	len     MaxLen
	literal bool
}

// MaxFromChildren aggregates the maximum from the children.
var MaxFromChildren = MaxLenPolicy{}

// LiteralMax states the maximum directly.
func LiteralMax(l MaxLen) MaxLenPolicy { return MaxLenPolicy{len: l, literal: true} }

// Literal returns the stated maximum, or false if the policy derives
// it from content.
func (p MaxLenPolicy) Literal() (MaxLen, bool) { return p.len, p.literal }

// MajorMaxPolicy is the maximum policy along a container's major
// axis.
type MajorMaxPolicy struct {
	spread   bool
	together MaxLenPolicy
}

// Spread imposes no maximum on the major axis: leftover parent length
// becomes spacing between the children.
var Spread = MajorMaxPolicy{spread: true}

// Together keeps the children adjacent, bounding the major axis by p.
func Together(p MaxLenPolicy) MajorMaxPolicy { return MajorMaxPolicy{together: p} }

// Literal returns the stated maximum, or false if the policy derives
// it from the children.
func (p MajorMaxPolicy) Literal() (MaxLen, bool) {
	if p.spread {
		return MaxLenLax, true
	}
	return p.together.Literal()
}
