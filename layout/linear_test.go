// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"golang.org/x/exp/slices"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/sys"
)

// stub is a widget that records where it ended up.
type stub struct {
	Base
	minW, minH MinLen
	maxW, maxH MaxLen
	prefW      PreferredPortion
	prefH      PreferredPortion
	ratio      float32 // width over height, 0 meaning no opinion

	pos   geom.Rect
	order *[]int
	id    int
}

func newStub() *stub {
	return &stub{maxW: MaxLenLax, maxH: MaxLenLax, prefW: Full, prefH: Full}
}

func (w *stub) Min(sys.System) (MinLen, MinLen, error) { return w.minW, w.minH, nil }
func (w *stub) Max(sys.System) (MaxLen, MaxLen, error) { return w.maxW, w.maxH, nil }
func (w *stub) PreferredPortion() (PreferredPortion, PreferredPortion) {
	return w.prefW, w.prefH
}

func (w *stub) HeightFromWidth(width float32, _ sys.System) (float32, bool, error) {
	if w.ratio == 0 {
		return 0, false, nil
	}
	return HeightFromWidth(w.ratio, width), true, nil
}

func (w *stub) WidthFromHeight(height float32, _ sys.System) (float32, bool, error) {
	if w.ratio == 0 {
		return 0, false, nil
	}
	return WidthFromHeight(w.ratio, height), true, nil
}

func (w *stub) Update(ctx *Context, _ sys.System) (bool, error) {
	w.pos = ctx.Position
	if w.order != nil {
		*w.order = append(*w.order, w.id)
	}
	return false, nil
}

func (w *stub) Draw(sys.System) error { return nil }

func update(t *testing.T, l *Linear, pos geom.Rect) {
	t.Helper()
	ctx := Context{Position: pos, Clip: geom.NoClip, AspectPriority: DeriveHeight}
	if _, err := l.Update(&ctx, nil); err != nil {
		t.Fatal(err)
	}
}

func widths(children []Widget) []float32 {
	w := make([]float32, len(children))
	for i, c := range children {
		w[i] = c.(*stub).pos.W
	}
	return w
}

func TestLinearExcessToSiblings(t *testing.T) {
	capped := newStub()
	capped.maxW = 20
	other := newStub()
	l := NewHorizontal(capped, other)
	update(t, l, geom.Rect{W: 100, H: 50})
	if capped.pos.W != 20 {
		t.Errorf("capped width = %v, want 20", capped.pos.W)
	}
	if other.pos.W != 80 {
		t.Errorf("sibling width = %v, want 80", other.pos.W)
	}
}

func TestLinearDeficitFromSiblings(t *testing.T) {
	wide := newStub()
	wide.minW = 80
	other := newStub()
	l := NewHorizontal(wide, other)
	update(t, l, geom.Rect{W: 100, H: 50})
	if wide.pos.W != 80 {
		t.Errorf("wide width = %v, want 80", wide.pos.W)
	}
	if other.pos.W != 20 {
		t.Errorf("sibling width = %v, want 20", other.pos.W)
	}
}

func TestLinearSnapExact(t *testing.T) {
	children := []Widget{newStub(), newStub(), newStub()}
	l := NewHorizontal(children...)
	update(t, l, geom.Rect{W: 100, H: 50})

	got := widths(children)
	var sum float32
	for _, w := range got {
		if w != float32(int(w)) {
			t.Errorf("width %v is not integral", w)
		}
		sum += w
	}
	if sum != 100 {
		t.Errorf("widths %v sum to %v, want 100", got, sum)
	}
	sorted := slices.Clone(got)
	slices.Sort(sorted)
	if want := []float32{33, 33, 34}; !slices.Equal(sorted, want) {
		t.Errorf("widths %v, want a permutation of %v", got, want)
	}

	// children tile the parent with no gaps or overlap on the pixel
	// grid
	x := 0
	for i, c := range children {
		st := c.(*stub)
		if got := geom.PosRound(st.pos.X); got != x {
			t.Errorf("child %d at x=%d, want %d", i, got, x)
		}
		x += int(st.pos.W)
	}

	// and the extra pixel lands on the same child every time
	update(t, l, geom.Rect{W: 100, H: 50})
	if again := widths(children); !slices.Equal(again, got) {
		t.Errorf("second pass widths %v, first pass %v", again, got)
	}
}

func TestLinearMinWinsUnderDeficit(t *testing.T) {
	pinned := newStub()
	pinned.minW = 50
	a, b := newStub(), newStub()
	l := NewHorizontal(pinned, a, b)
	update(t, l, geom.Rect{W: 60, H: 50})
	if got := widths(l.Children); !slices.Equal(got, []float32{50, 5, 5}) {
		t.Errorf("widths = %v, want [50 5 5]", got)
	}
}

func TestLinearLeftoverBecomesGaps(t *testing.T) {
	a, b := newStub(), newStub()
	a.maxW, b.maxW = 20, 20
	l := NewHorizontal(a, b)
	update(t, l, geom.Rect{W: 100, H: 50})
	if a.pos.X != 0 || a.pos.W != 20 {
		t.Errorf("first child at x=%v w=%v, want x=0 w=20", a.pos.X, a.pos.W)
	}
	if b.pos.X != 80 || b.pos.W != 20 {
		t.Errorf("second child at x=%v w=%v, want x=80 w=20", b.pos.X, b.pos.W)
	}
}

func TestLinearWeights(t *testing.T) {
	a, b := newStub(), newStub()
	a.prefW = 3
	b.prefW = 1
	l := NewHorizontal(a, b)
	update(t, l, geom.Rect{W: 100, H: 50})
	if a.pos.W != 75 || b.pos.W != 25 {
		t.Errorf("widths = %v, %v, want 75, 25", a.pos.W, b.pos.W)
	}
}

func TestLinearCrossAxisFailPolicies(t *testing.T) {
	tall := newStub()
	tall.minH = 80 // protrudes, centered by default
	short := newStub()
	short.maxH = 20
	short.maxW = 50
	l := NewHorizontal(tall, short)
	update(t, l, geom.Rect{W: 100, H: 50})
	if tall.pos.H != 80 || tall.pos.Y != -15 {
		t.Errorf("tall child h=%v y=%v, want h=80 y=-15", tall.pos.H, tall.pos.Y)
	}
	if short.pos.H != 20 || short.pos.Y != 15 {
		t.Errorf("short child h=%v y=%v, want h=20 y=15", short.pos.H, short.pos.Y)
	}
}

func TestLinearCrossFromAspect(t *testing.T) {
	sq := newStub()
	sq.ratio = 1
	sq.maxW = 30
	l := NewHorizontal(sq)
	update(t, l, geom.Rect{W: 100, H: 50})
	if sq.pos.W != 30 || sq.pos.H != 30 {
		t.Errorf("square child w=%v h=%v, want 30x30", sq.pos.W, sq.pos.H)
	}
}

func TestLinearVerticalTransposes(t *testing.T) {
	capped := newStub()
	capped.maxH = 20
	other := newStub()
	l := NewVertical(capped, other)
	update(t, l, geom.Rect{W: 50, H: 100})
	if capped.pos.H != 20 || other.pos.H != 80 {
		t.Errorf("heights = %v, %v, want 20, 80", capped.pos.H, other.pos.H)
	}
	if capped.pos.Y != 0 || other.pos.Y != 20 {
		t.Errorf("ys = %v, %v, want 0, 20", capped.pos.Y, other.pos.Y)
	}
}

func TestLinearReverseUpdateOrderOnly(t *testing.T) {
	var order []int
	a, b, c := newStub(), newStub(), newStub()
	for i, st := range []*stub{a, b, c} {
		st.id = i
		st.order = &order
	}
	l := NewHorizontal(a, b, c)
	l.Reverse = true
	update(t, l, geom.Rect{W: 99, H: 50})

	if want := []int{2, 1, 0}; !slices.Equal(order, want) {
		t.Errorf("update order = %v, want %v", order, want)
	}
	// spatially still left to right
	if !(a.pos.X < b.pos.X && b.pos.X < c.pos.X) {
		t.Errorf("positions not left to right: %v %v %v", a.pos.X, b.pos.X, c.pos.X)
	}
	if a.pos.X != 0 || c.pos.X+c.pos.W != 99 {
		t.Errorf("children do not tile the parent: %+v %+v %+v", a.pos, b.pos, c.pos)
	}
}

func TestLinearEmpty(t *testing.T) {
	l := NewHorizontal()
	ctx := Context{Position: geom.Rect{W: 100, H: 100}}
	more, err := l.Update(&ctx, nil)
	if err != nil || more {
		t.Errorf("empty layout: more=%v err=%v", more, err)
	}
}

func TestLinearAggregatedBounds(t *testing.T) {
	a, b := newStub(), newStub()
	a.minW, a.minH = 10, 40
	b.minW, b.minH = 20, 30
	a.maxW, a.maxH = 50, 60
	b.maxW, b.maxH = 70, 80
	l := NewHorizontal(a, b)

	minW, minH, err := l.Min(nil)
	if err != nil {
		t.Fatal(err)
	}
	// sums along the major axis, strictest across
	if minW != 30 || minH != 40 {
		t.Errorf("Min = %v, %v, want 30, 40", minW, minH)
	}
	maxW, maxH, err := l.Max(nil)
	if err != nil {
		t.Fatal(err)
	}
	if maxW != 120 {
		t.Errorf("MaxW = %v, want 120", maxW)
	}
	// the default cross max policy is unbounded
	if maxH != MaxLenLax {
		t.Errorf("MaxH = %v, want lax", maxH)
	}
}

func TestLinearAggregatedBoundsVertical(t *testing.T) {
	a, b := newStub(), newStub()
	a.minW, a.minH = 10, 40
	b.minW, b.minH = 20, 30
	l := NewVertical(a, b)

	minW, minH, err := l.Min(nil)
	if err != nil {
		t.Fatal(err)
	}
	// in a column, heights sum and the widest width wins
	if minW != 20 || minH != 70 {
		t.Errorf("Min = %v, %v, want 20, 70", minW, minH)
	}
}
