// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"testing"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/sys"
)

// sizeOnlySystem provides just the window size; anything else panics.
type sizeOnlySystem struct {
	sys.System
	w, h int
}

func (s *sizeOnlySystem) Size() (image.Point, error) { return image.Pt(s.w, s.h), nil }

func TestPlaceClampsToParent(t *testing.T) {
	w := newStub()
	w.maxW = 40
	w.maxH = 40
	got, err := Place(w, geom.Rect{X: 10, Y: 10, W: 100, H: 100}, DeriveHeight, nil)
	if err != nil {
		t.Fatal(err)
	}
	// centered by the default fail policies
	want := geom.Rect{X: 40, Y: 40, W: 40, H: 40}
	if got != want {
		t.Errorf("Place = %+v, want %+v", got, want)
	}
}

func TestPlaceMinOverflowsParent(t *testing.T) {
	w := newStub()
	w.minW = 140
	got, err := Place(w, geom.Rect{W: 100, H: 100}, DeriveHeight, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.W != 140 || got.X != -20 {
		t.Errorf("overflow rect = %+v, want w 140 at x -20", got)
	}
}

func TestPlaceAspectStaysInPortion(t *testing.T) {
	w := newStub()
	w.ratio = 4 // wants to be 4x wider than tall
	got, err := Place(w, geom.Rect{W: 100, H: 100}, DeriveHeight, nil)
	if err != nil {
		t.Fatal(err)
	}
	// height derives as 100/4 = 25
	if got.W != 100 || got.H != 25 {
		t.Errorf("derived rect = %+v, want 100x25", got)
	}

	// transposed priority: width would derive as 400, but the derived
	// axis is held within the parent's portion
	got, err = Place(w, geom.Rect{W: 100, H: 100}, DeriveWidth, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.W != 100 {
		t.Errorf("derived width = %v, want clamped to 100", got.W)
	}
}

func TestUpdateUIUsesWindow(t *testing.T) {
	w := newStub()
	s := &sizeOnlySystem{w: 300, h: 200}
	if _, err := UpdateUI(w, nil, s, 0); err != nil {
		t.Fatal(err)
	}
	want := geom.Rect{W: 300, H: 200}
	if w.pos != want {
		t.Errorf("root position = %+v, want %+v", w.pos, want)
	}
}
