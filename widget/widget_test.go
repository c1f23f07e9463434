// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"testing"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// atlas returns the i'th 8x8 cell of a texture atlas row.
func atlas(i int) image.Rectangle {
	return image.Rect(i*8, 0, i*8+8, 8)
}

// recorder is a widget that remembers where it was placed.
type recorder struct {
	layout.Base
	pos geom.Rect
}

func (r *recorder) Update(ctx *layout.Context, _ sys.System) (bool, error) {
	r.pos = ctx.Position
	return false, nil
}

func (r *recorder) Draw(sys.System) error { return nil }

func TestStrutFixed(t *testing.T) {
	st := Fixed(30, 20)
	minW, minH, err := st.Min(nil)
	if err != nil {
		t.Fatal(err)
	}
	maxW, maxH, err := st.Max(nil)
	if err != nil {
		t.Fatal(err)
	}
	if minW != 30 || minH != 20 || maxW != 30 || maxH != 20 {
		t.Errorf("bounds = %v %v %v %v, want 30 20 30 20", minW, minH, maxW, maxH)
	}
	prefW, prefH := st.PreferredPortion()
	if prefW != 0 || prefH != 0 {
		t.Errorf("fixed strut competes for space: %v %v", prefW, prefH)
	}
}

func TestButtonPressAndRelease(t *testing.T) {
	var released bool
	idle, hovered, pressed := &recorder{}, &recorder{}, &recorder{}
	b := NewButton(idle, hovered, pressed, &released)
	ctx := layout.Context{
		Position: geom.Rect{W: 50, H: 50},
		Clip:     geom.NoClip,
		Events:   event.Gather(event.Pointer{X: 10, Y: 10, Down: true, Changed: true}),
	}
	if _, err := b.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	if released {
		t.Error("released on press")
	}
	if b.state != buttonPressed {
		t.Errorf("state = %v, want pressed", b.state)
	}
	if ctx.Events[0].Available() {
		t.Error("press not consumed")
	}

	ctx.Events = event.Gather(event.Pointer{X: 10, Y: 10, Down: false, Changed: true})
	if _, err := b.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	if !released {
		t.Error("not released on falling edge")
	}
	if b.state != buttonHovered {
		t.Errorf("state = %v, want hovered", b.state)
	}
	if ctx.Events[0].Available() {
		t.Error("release not consumed")
	}

	// released resets the next frame
	ctx.Events = nil
	if _, err := b.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	if released {
		t.Error("released flag not reset")
	}
}

func TestButtonOutsideIsIdle(t *testing.T) {
	var released bool
	b := NewButton(&recorder{}, &recorder{}, &recorder{}, &released)
	ctx := layout.Context{
		Position: geom.Rect{W: 50, H: 50},
		Clip:     geom.NoClip,
		Events:   event.Gather(event.Pointer{X: 200, Y: 10, Down: true, Changed: true}),
	}
	if _, err := b.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	if b.state != buttonIdle {
		t.Errorf("state = %v, want idle", b.state)
	}
	if !ctx.Events[0].Available() {
		t.Error("outside press should stay available")
	}
	if released {
		t.Error("released by an outside press")
	}
}

func TestCheckboxToggle(t *testing.T) {
	var checked, changed bool
	c := NewCheckbox("box.png", 10, 40, &checked, &changed,
		atlas(0), atlas(1), atlas(2), atlas(3))
	ctx := layout.Context{
		Position: geom.Rect{W: 40, H: 40},
		Clip:     geom.NoClip,
		Events:   event.Gather(event.Pointer{X: 5, Y: 5, Down: true, Changed: true}),
	}
	if _, err := c.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	if !checked || !changed {
		t.Errorf("checked=%v changed=%v after click, want true true", checked, changed)
	}
	if ctx.Events[0].Available() {
		t.Error("toggle click not consumed")
	}

	// held button does not re-toggle
	ctx.Events = event.Gather(event.Pointer{X: 5, Y: 5, Down: true})
	if _, err := c.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	if !checked || changed {
		t.Errorf("checked=%v changed=%v while held, want true false", checked, changed)
	}
}

func TestCheckboxSquare(t *testing.T) {
	var checked, changed bool
	c := NewCheckbox("box.png", 10, 40, &checked, &changed,
		atlas(0), atlas(1), atlas(2), atlas(3))
	if w, ok, _ := c.WidthFromHeight(33, nil); !ok || w != 33 {
		t.Errorf("WidthFromHeight = %v %v, want 33 true", w, ok)
	}
	if !c.RatioExceedsParent() {
		t.Error("a checkbox must stay square even in a cramped parent")
	}
}

func TestBorderSizing(t *testing.T) {
	inner := Fixed(10, 10)
	b := NewBorder(inner, "border.png", atlas(0), atlas(1))
	// atlas regions are 8x8, so the border adds 8 per side
	minW, minH, err := b.Min(nil)
	if err != nil {
		t.Fatal(err)
	}
	if minW != 26 || minH != 26 {
		t.Errorf("Min = %v %v, want 26 26", minW, minH)
	}
}

func TestBorderInsetsContained(t *testing.T) {
	inner := &recorder{}
	b := NewBorder(inner, "border.png", atlas(0), atlas(1))
	ctx := layout.Context{Position: geom.Rect{X: 10, Y: 10, W: 100, H: 60}}
	if _, err := b.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	want := geom.Rect{X: 18, Y: 18, W: 84, H: 44}
	if inner.pos != want {
		t.Errorf("contained position = %+v, want %+v", inner.pos, want)
	}
}

func TestBackgroundOrder(t *testing.T) {
	contained, backdrop := &recorder{}, &recorder{}
	bg := NewBackground(contained, backdrop)
	ctx := layout.Context{Position: geom.Rect{W: 40, H: 40}}
	if _, err := bg.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	if contained.pos != ctx.Position || backdrop.pos != ctx.Position {
		t.Errorf("positions %+v %+v, want both %+v", contained.pos, backdrop.pos, ctx.Position)
	}
}

func TestSlotEmptyIsFlexible(t *testing.T) {
	sl := &Slot{}
	minW, minH, err := sl.Min(nil)
	if err != nil {
		t.Fatal(err)
	}
	maxW, maxH, err := sl.Max(nil)
	if err != nil {
		t.Fatal(err)
	}
	if minW != 0 || minH != 0 || maxW != layout.MaxLenLax || maxH != layout.MaxLenLax {
		t.Errorf("bounds = %v %v %v %v, want unconstrained", minW, minH, maxW, maxH)
	}
	ctx := layout.Context{Position: geom.Rect{W: 40, H: 40}}
	if _, err := sl.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	if err := sl.Draw(nil); err != nil {
		t.Fatal(err)
	}
}

func TestSlotDelegatesWhenFilled(t *testing.T) {
	inner := &recorder{}
	sl := &Slot{Contained: Fixed(30, 20)}
	minW, minH, err := sl.Min(nil)
	if err != nil {
		t.Fatal(err)
	}
	if minW != 30 || minH != 20 {
		t.Errorf("Min = %v %v, want the contained widget's 30 20", minW, minH)
	}

	// refill between frames
	sl.Contained = inner
	ctx := layout.Context{Position: geom.Rect{X: 5, Y: 5, W: 40, H: 40}}
	if _, err := sl.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
	if inner.pos != ctx.Position {
		t.Errorf("contained position = %+v, want %+v", inner.pos, ctx.Position)
	}
}
