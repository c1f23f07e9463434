// SPDX-License-Identifier: Unlicense OR MIT

package geom

import "image"

type clipKind uint8

const (
	clipNone clipKind = iota
	clipZero
	clipSome
)

// Clip is a tri-state clipping area: the absence of a clip, a clip
// with zero area rejecting everything, or a non-empty rectangle.
//
// Intersection over Clip is commutative and associative, with NoClip
// as the identity and ZeroClip as the absorbing element.
type Clip struct {
	kind clipKind
	rect image.Rectangle
}

// NoClip is the absence of a clipping area.
var NoClip = Clip{kind: clipNone}

// ZeroClip is a clipping area with zero area.
var ZeroClip = Clip{kind: clipZero}

// ClipRect returns a clip covering r, or ZeroClip if r is empty.
func ClipRect(r image.Rectangle) Clip {
	if r.Empty() {
		return ZeroClip
	}
	return Clip{kind: clipSome, rect: r}
}

// Rect returns the clip rectangle. It reports false for NoClip and
// ZeroClip.
func (c Clip) Rect() (image.Rectangle, bool) {
	return c.rect, c.kind == clipSome
}

// Zero reports whether the clip rejects everything.
func (c Clip) Zero() bool { return c.kind == clipZero }

// None reports whether the clip is unbounded.
func (c Clip) None() bool { return c.kind == clipNone }

// Intersect returns the intersection of c and o.
func (c Clip) Intersect(o Clip) Clip {
	switch c.kind {
	case clipZero:
		return ZeroClip
	case clipNone:
		return o
	}
	switch o.kind {
	case clipZero:
		return ZeroClip
	case clipNone:
		return c
	}
	return ClipRect(c.rect.Intersect(o.rect))
}

// Contains reports whether the point lies within the clip. NoClip
// contains every point and ZeroClip contains none.
func (c Clip) Contains(p image.Point) bool {
	switch c.kind {
	case clipNone:
		return true
	case clipZero:
		return false
	}
	return p.In(c.rect)
}
