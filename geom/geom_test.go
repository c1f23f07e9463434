// SPDX-License-Identifier: Unlicense OR MIT

package geom

import (
	"image"
	"testing"
)

func TestPosRound(t *testing.T) {
	cases := []struct {
		in   float32
		want int
	}{
		// whole numbers unaffected
		{1, 1}, {2, 2}, {0, 0}, {-1, -1}, {-2, -2},
		// typical rounding
		{0.00001, 0}, {-0.00001, 0},
		{1.0001, 1}, {0.9999, 1},
		{1.4999, 1}, {0.5001, 1},
		{-1.0001, -1}, {-0.9999, -1},
		{-1.4999, -1}, {-0.5001, -1},
		// rounding away from zero on the positive side unaffected
		{0.5, 1}, {1.5, 2},
		// ties round up, not away from zero
		{-0.5, 0}, {-1.5, -1}, {-2.5, -2},
	}
	for _, c := range cases {
		if got := PosRound(c.in); got != c.want {
			t.Errorf("PosRound(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestLenRound(t *testing.T) {
	if _, ok := LenRound(0.49); ok {
		t.Error("length rounding to zero must be rejected")
	}
	if _, ok := LenRound(-3); ok {
		t.Error("negative length must be rejected")
	}
	if v, ok := LenRound(0.5); !ok || v != 1 {
		t.Errorf("LenRound(0.5) = %d, %v, want 1, true", v, ok)
	}
}

func TestPixelDropsZeroArea(t *testing.T) {
	if _, ok := (Rect{X: 5, Y: 5, W: 0.2, H: 40}).Pixel(); ok {
		t.Error("zero width rect must convert to nothing, not a degenerate rect")
	}
	if _, ok := (Rect{X: 5, Y: 5, W: 40, H: -2}).Pixel(); ok {
		t.Error("negative height rect must convert to nothing")
	}
	r, ok := (Rect{X: -0.5, Y: 1.5, W: 2.5, H: 2.5}).Pixel()
	if !ok {
		t.Fatal("positive area rect must convert")
	}
	if want := image.Rect(0, 2, 2, 4); r != want {
		t.Errorf("snapped to %v, want %v", r, want)
	}
}

func TestClipAlgebra(t *testing.T) {
	a := ClipRect(image.Rect(0, 0, 10, 10))
	b := ClipRect(image.Rect(5, 5, 20, 20))

	if got := NoClip.Intersect(a); got != a {
		t.Errorf("NoClip must be the identity, got %v", got)
	}
	if got := a.Intersect(NoClip); got != a {
		t.Errorf("NoClip must be the identity on the right, got %v", got)
	}
	if got := ZeroClip.Intersect(a); !got.Zero() {
		t.Errorf("ZeroClip must absorb, got %v", got)
	}
	if got := a.Intersect(ZeroClip); !got.Zero() {
		t.Errorf("ZeroClip must absorb on the right, got %v", got)
	}
	ab := a.Intersect(b)
	ba := b.Intersect(a)
	if ab != ba {
		t.Errorf("intersection must commute: %v != %v", ab, ba)
	}
	if r, ok := ab.Rect(); !ok || r != image.Rect(5, 5, 10, 10) {
		t.Errorf("intersection = %v, want (5,5)-(10,10)", r)
	}
	// disjoint rects intersect to the zero clip
	c := ClipRect(image.Rect(50, 50, 60, 60))
	if got := a.Intersect(c); !got.Zero() {
		t.Errorf("disjoint intersection must be zero, got %v", got)
	}
}

func TestClipContains(t *testing.T) {
	if !NoClip.Contains(image.Pt(1000, -1000)) {
		t.Error("NoClip contains every point")
	}
	if ZeroClip.Contains(image.Pt(0, 0)) {
		t.Error("ZeroClip contains no point")
	}
	c := ClipRect(image.Rect(0, 0, 10, 10))
	if !c.Contains(image.Pt(9, 9)) || c.Contains(image.Pt(10, 10)) {
		t.Error("rect clip must contain interior points only")
	}
}
