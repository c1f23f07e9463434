// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/sys"
)

// Axis is the direction along which a Linear arranges its children.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("invalid Axis")
	}
}

// seeds for the pixel debt distribution, one per priority bucket.
const (
	bumpSeedFree  = 1234
	bumpSeedAtMin = 5678
)

// Linear distributes its parent's length among its children along the
// major axis, reconciling their preferred weights against their min
// and max constraints, and places each child on the cross axis
// independently. Horizontal and vertical layouts are the same solver
// transposed.
type Linear struct {
	Axis     Axis
	Children []Widget

	// Reverse reverses the order in time that children are updated
	// in, within one frame, so dependent widgets can be refreshed in
	// the right order. It does not affect where children are placed
	// in space.
	Reverse bool

	PreferredW PreferredPortion
	PreferredH PreferredPortion

	MinWFail MinLenFailPolicy
	MaxWFail MaxLenFailPolicy
	MinHFail MinLenFailPolicy
	MaxHFail MaxLenFailPolicy

	// MinMajor and MaxMajor bound the container itself on the major
	// axis; MinCross and MaxCross on the cross axis.
	MinMajor MinLenPolicy
	MaxMajor MajorMaxPolicy
	MinCross MinLenPolicy
	MaxCross MaxLenPolicy

	// SizingIterations caps the excess and deficit redistribution
	// passes. Zero means one pass per child, which always yields the
	// exact result at O(n^2) worst case; a small cap such as 15
	// trades exactness on pathologically constrained layouts for
	// bounded time, possibly leaving small gaps or overlaps.
	SizingIterations int

	Base
}

// NewLinear returns a container along the given axis with the default
// sizing policies: bounds aggregated from the children, except the
// cross axis maximum which is unbounded.
func NewLinear(axis Axis, children ...Widget) *Linear {
	return &Linear{
		Axis:       axis,
		Children:   children,
		PreferredW: Full,
		PreferredH: Full,
		MinWFail:   MinFailCentered,
		MaxWFail:   MaxFailCentered,
		MinHFail:   MinFailCentered,
		MaxHFail:   MaxFailCentered,
		MinMajor:   MinFromChildren,
		MaxMajor:   Together(MaxFromChildren),
		MinCross:   MinFromChildren,
		MaxCross:   LiteralMax(MaxLenLax),
	}
}

// NewHorizontal returns a row container.
func NewHorizontal(children ...Widget) *Linear {
	return NewLinear(Horizontal, children...)
}

// NewVertical returns a column container.
func NewVertical(children ...Widget) *Linear {
	return NewLinear(Vertical, children...)
}

func (l *Linear) PreferredPortion() (PreferredPortion, PreferredPortion) {
	return l.PreferredW, l.PreferredH
}

func (l *Linear) MinWFailPolicy() MinLenFailPolicy { return l.MinWFail }
func (l *Linear) MinHFailPolicy() MinLenFailPolicy { return l.MinHFail }
func (l *Linear) MaxWFailPolicy() MaxLenFailPolicy { return l.MaxWFail }
func (l *Linear) MaxHFailPolicy() MaxLenFailPolicy { return l.MaxHFail }

// Min aggregates the children: minimums sum along the major axis and
// the strictest wins on the cross axis.
func (l *Linear) Min(s sys.System) (MinLen, MinLen, error) {
	majorLit, majorOK := l.MinMajor.Literal()
	crossLit, crossOK := l.MinCross.Literal()
	major, cross := majorLit, crossLit
	if !majorOK || !crossOK {
		sumMajor, maxCross := MinLenLax, MinLenLax
		for _, child := range l.Children {
			minW, minH, err := child.Min(s)
			if err != nil {
				return 0, 0, err
			}
			cMajor, cCross := l.majorMin(minW, minH)
			sumMajor = sumMajor.Combined(cMajor)
			maxCross = maxCross.Strictest(cCross)
		}
		if !majorOK {
			major = sumMajor
		}
		if !crossOK {
			cross = maxCross
		}
	}
	w, h := l.unmajor(major, cross)
	return w, h, nil
}

// Max aggregates the children: maximums sum along the major axis and
// the strictest wins on the cross axis.
func (l *Linear) Max(s sys.System) (MaxLen, MaxLen, error) {
	majorLit, majorOK := l.MaxMajor.Literal()
	crossLit, crossOK := l.MaxCross.Literal()
	major, cross := majorLit, crossLit
	if !majorOK || !crossOK {
		sumMajor, minCross := MaxLen(0), MaxLenLax
		for _, child := range l.Children {
			maxW, maxH, err := child.Max(s)
			if err != nil {
				return 0, 0, err
			}
			cMajor, cCross := l.majorMax(maxW, maxH)
			sumMajor = sumMajor.Combined(cMajor)
			minCross = minCross.Strictest(cCross)
		}
		if !majorOK {
			major = sumMajor
		}
		if !crossOK {
			cross = minCross
		}
	}
	w, h := l.unmajorMax(major, cross)
	return w, h, nil
}

// childInfo is the per-child layout scratch, recomputed from scratch
// every update and never persisted across frames.
type childInfo struct {
	prefMajor PreferredPortion
	maxMajor  float32
	minMajor  float32

	// iterated upon by the solver
	length float32

	prefCross PreferredPortion
	maxCross  MaxLen
	minCross  MinLen
}

func (l *Linear) Update(ctx *Context, s sys.System) (bool, error) {
	if len(l.Children) == 0 {
		return false, nil
	}

	availMajor, availCross := l.major(ctx.Position.W, ctx.Position.H)

	// collect sizing info from the children
	info := make([]childInfo, len(l.Children))
	var sumPref PreferredPortion
	for i := range l.Children {
		child := l.child(i)
		minW, minH, err := child.Min(s)
		if err != nil {
			return false, err
		}
		maxW, maxH, err := child.Max(s)
		if err != nil {
			return false, err
		}
		prefW, prefH := child.PreferredPortion()

		minMajor, minCross := l.major(float32(minW), float32(minH))
		maxMajor, maxCross := l.major(float32(maxW), float32(maxH))
		prefMajor, prefCross := l.major(float32(prefW), float32(prefH))

		info[i] = childInfo{
			prefMajor: PreferredPortion(prefMajor),
			maxMajor:  maxMajor,
			minMajor:  minMajor,
			prefCross: PreferredPortion(prefCross),
			maxCross:  MaxLen(maxCross),
			minCross:  MinLen(minCross),
		}
		sumPref += PreferredPortion(prefMajor)
	}

	// weighted share per child, then clamp to each child's own
	// bounds, tracking how much clamping took from or gave back to
	// the pool
	var taken, given float32
	for i := range info {
		in := &info[i]
		in.length = in.prefMajor.Weighted(sumPref, availMajor)
		clamped := Clamp(in.length, MinLen(in.minMajor), MaxLen(in.maxMajor))
		if in.length < clamped {
			taken += clamped - in.length
		} else if in.length > clamped {
			given += in.length - clamped
		}
		in.length = clamped
	}

	if given >= taken {
		l.distributeExcess(info, given-taken)
	} else {
		l.takeDeficit(info, taken-given)
	}

	var sumLength float32
	for i := range info {
		sumLength += info[i].length
	}

	// leftover length becomes equal spacing between the children
	var gap float32
	if sumLength < availMajor && len(l.Children) > 1 {
		gap = (availMajor - sumLength) / float32(len(l.Children)-1)
	}

	l.snapLengths(info)

	majorPos, crossPos := l.major(ctx.Position.X, ctx.Position.Y)
	pos := majorPos
	if l.Reverse {
		pos = majorPos + availMajor
	}

	wantsMore := false
	for i := range l.Children {
		child := l.child(i)
		in := &info[i]
		if l.Reverse {
			pos -= in.length
		}

		// cross axis: independent clamp, then an optional aspect
		// derivation from the now final major length
		preClampCross := in.prefCross.Get(availCross)
		cross := Clamp(preClampCross, in.minCross, in.maxCross)
		derived, ok, err := l.crossFromMajor(child, in.length, s)
		if err != nil {
			return false, err
		}
		if ok {
			max := in.maxCross
			if !child.RatioExceedsParent() {
				max = max.Strictest(MaxLen(preClampCross))
			}
			cross = Clamp(derived, in.minCross, max)
		}

		crossOffset := crossPos + l.crossFailOffset(child, cross, availCross)

		x, y := l.unmajor2(pos, crossOffset)
		w, h := l.unmajor2(in.length, cross)
		sub := ctx.Sub(geom.Rect{X: x, Y: y, W: w, H: h})
		more, err := child.Update(&sub, s)
		if err != nil {
			return false, err
		}
		wantsMore = wantsMore || more
		if l.Reverse {
			pos -= gap
		} else {
			pos += in.length + gap
		}
	}
	return wantsMore, nil
}

func (l *Linear) Draw(s sys.System) error {
	for _, child := range l.Children {
		if err := child.Draw(s); err != nil {
			return err
		}
	}
	return nil
}

// snapLengths floors every length onto the integer grid and pays the
// accumulated fractional remainder back as single pixel bumps.
// Rounding each length independently would instead accumulate a bias
// that visibly shrinks or tears the layout.
//
// The children to bump are chosen deterministically:
//   - children sitting at their floored minimum are left alone to
//     avoid jitter, and bumped only as a last resort
//   - maximums are respected
//   - within each bucket the order is a seeded shuffle, spreading the
//     bumps semi evenly instead of always favoring the leading
//     children
func (l *Linear) snapLengths(info []childInfo) {
	var debt float32
	var notAtMin, atMin []int
	for i := range info {
		in := &info[i]
		floored := float32(math.Floor(float64(in.length)))
		debt += in.length - floored
		in.length = floored
		if in.length <= in.minMajor {
			atMin = append(atMin, i)
		} else {
			notAtMin = append(notAtMin, i)
		}
	}

	owed := int(math.Round(float64(debt)))

	shuffle(notAtMin, bumpSeedFree)
	shuffle(atMin, bumpSeedAtMin)
	visit := append(notAtMin, atMin...)

	for _, i := range visit {
		if owed < 1 {
			break
		}
		in := &info[i]
		if in.length+1 <= in.maxMajor {
			in.length++
			owed--
		}
	}
}

// iterations is the redistribution pass bound. Regardless of the
// value, sizing nearly always settles in one to three passes.
func (l *Linear) iterations(n int) int {
	if l.SizingIterations > 0 {
		return l.SizingIterations
	}
	return n
}

// distributeExcess hands surplus length to the children not yet at
// their maximum, in proportion to their weights. A child that tops
// out keeps only what it can take; the remainder goes around again on
// the next pass.
func (l *Linear) distributeExcess(info []childInfo, excess float32) {
	for iter := 0; iter < l.iterations(len(info)); iter++ {
		if excess == 0 {
			return
		}
		var overflow float32

		var weight float32
		for i := range info {
			in := &info[i]
			if in.maxMajor < in.minMajor {
				continue
			}
			if in.length < in.maxMajor {
				weight += float32(in.prefMajor)
			}
		}
		if weight <= 0 {
			return
		}

		for i := range info {
			in := &info[i]
			if in.maxMajor < in.minMajor {
				continue
			}
			if in.length >= in.maxMajor {
				continue
			}
			ideal := (float32(in.prefMajor) / weight) * excess
			room := in.maxMajor - in.length
			if ideal > room {
				in.length = in.maxMajor
				overflow += ideal - room
			} else {
				in.length += ideal
			}
		}
		excess = overflow
	}
}

// takeDeficit is the symmetric pass: it sources missing length from
// the children not yet at their minimum, in proportion to their
// weights.
func (l *Linear) takeDeficit(info []childInfo, deficit float32) {
	for iter := 0; iter < l.iterations(len(info)); iter++ {
		var shortfall float32

		var weight float32
		for i := range info {
			in := &info[i]
			if in.maxMajor < in.minMajor {
				continue
			}
			if in.length > in.minMajor {
				weight += float32(in.prefMajor)
			}
		}
		if weight <= 0 {
			return
		}

		for i := range info {
			in := &info[i]
			if in.maxMajor < in.minMajor {
				continue
			}
			if in.length <= in.minMajor {
				continue
			}
			ideal := (float32(in.prefMajor) / weight) * deficit
			room := in.length - in.minMajor
			if ideal > room {
				in.length = in.minMajor
				shortfall += ideal - room
			} else {
				in.length -= ideal
			}
		}
		deficit = shortfall
		if deficit == 0 {
			return
		}
	}
}

// child returns the i'th child in update order, honoring Reverse.
func (l *Linear) child(i int) Widget {
	return l.Children[l.childIndex(i)]
}

func (l *Linear) childIndex(i int) int {
	if l.Reverse {
		return len(l.Children) - 1 - i
	}
	return i
}

// major transposes an (x, y) pair into (major, cross).
func (l *Linear) major(x, y float32) (float32, float32) {
	if l.Axis == Horizontal {
		return x, y
	}
	return y, x
}

// unmajor2 transposes a (major, cross) pair back into (x, y).
func (l *Linear) unmajor2(major, cross float32) (float32, float32) {
	if l.Axis == Horizontal {
		return major, cross
	}
	return cross, major
}

func (l *Linear) unmajor(major, cross MinLen) (MinLen, MinLen) {
	if l.Axis == Horizontal {
		return major, cross
	}
	return cross, major
}

func (l *Linear) majorMin(w, h MinLen) (MinLen, MinLen) {
	if l.Axis == Horizontal {
		return w, h
	}
	return h, w
}

func (l *Linear) majorMax(w, h MaxLen) (MaxLen, MaxLen) {
	if l.Axis == Horizontal {
		return w, h
	}
	return h, w
}

func (l *Linear) unmajorMax(major, cross MaxLen) (MaxLen, MaxLen) {
	if l.Axis == Horizontal {
		return major, cross
	}
	return cross, major
}

// crossFromMajor asks a child to derive its cross length from its
// final major length.
func (l *Linear) crossFromMajor(child Widget, major float32, s sys.System) (float32, bool, error) {
	if l.Axis == Horizontal {
		return child.HeightFromWidth(major, s)
	}
	return child.WidthFromHeight(major, s)
}

// crossFailOffset aligns a child inside the available cross length.
func (l *Linear) crossFailOffset(child Widget, cross, avail float32) float32 {
	if l.Axis == Horizontal {
		return failOffset(cross, avail, child.MinHFailPolicy(), child.MaxHFailPolicy())
	}
	return failOffset(cross, avail, child.MinWFailPolicy(), child.MaxWFailPolicy())
}
