// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

type buttonState uint8

const (
	buttonIdle buttonState = iota
	buttonHovered
	buttonPressed
)

// InheritSizing picks which sub-widget a Button sizes from when its
// sizing is inherited.
type InheritSizing uint8

const (
	// InheritCurrent sizes from whichever sub-widget is showing. The
	// sizes should agree or the button will shift when its state
	// changes.
	InheritCurrent InheritSizing = iota
	InheritIdle
	InheritHovered
	InheritPressed
)

// Button shows one of three widgets depending on pointer state and
// reports releases through a caller-owned flag.
type Button struct {
	Idle    layout.Widget
	Hovered layout.Widget
	Pressed layout.Widget

	Sizing        layout.Sizing
	SizingInherit InheritSizing

	// Released is set for one frame when the button is clicked; the
	// caller implements its functionality off this flag.
	Released *bool

	state buttonState
}

// NewButton returns a button over the three visual states.
func NewButton(idle, hovered, pressed layout.Widget, released *bool) *Button {
	return &Button{
		Idle:     idle,
		Hovered:  hovered,
		Pressed:  pressed,
		Released: released,
	}
}

func (b *Button) current() layout.Widget {
	switch b.state {
	case buttonHovered:
		return b.Hovered
	case buttonPressed:
		return b.Pressed
	default:
		return b.Idle
	}
}

func (b *Button) sizingWidget() layout.Widget {
	switch b.SizingInherit {
	case InheritIdle:
		return b.Idle
	case InheritHovered:
		return b.Hovered
	case InheritPressed:
		return b.Pressed
	default:
		return b.current()
	}
}

func (b *Button) Min(s sys.System) (layout.MinLen, layout.MinLen, error) {
	return b.Sizing.Min(b.sizingWidget(), s)
}

func (b *Button) Max(s sys.System) (layout.MaxLen, layout.MaxLen, error) {
	return b.Sizing.Max(b.sizingWidget(), s)
}

func (b *Button) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return b.Sizing.PreferredPortion(b.sizingWidget())
}

func (b *Button) MinWFailPolicy() layout.MinLenFailPolicy {
	return b.Sizing.MinWFailPolicy(b.sizingWidget())
}

func (b *Button) MinHFailPolicy() layout.MinLenFailPolicy {
	return b.Sizing.MinHFailPolicy(b.sizingWidget())
}

func (b *Button) MaxWFailPolicy() layout.MaxLenFailPolicy {
	return b.Sizing.MaxWFailPolicy(b.sizingWidget())
}

func (b *Button) MaxHFailPolicy() layout.MaxLenFailPolicy {
	return b.Sizing.MaxHFailPolicy(b.sizingWidget())
}

func (b *Button) WidthFromHeight(h float32, s sys.System) (float32, bool, error) {
	return b.Sizing.WidthFromHeight(b.sizingWidget(), h, s)
}

func (b *Button) HeightFromWidth(w float32, s sys.System) (float32, bool, error) {
	return b.Sizing.HeightFromWidth(b.sizingWidget(), w, s)
}

func (b *Button) RatioExceedsParent() bool {
	return b.Sizing.RatioExceedsParent(b.sizingWidget())
}

func (b *Button) Update(ctx *layout.Context, s sys.System) (bool, error) {
	if b.Released != nil {
		*b.Released = false
	}
	pos, ok := ctx.Position.Pixel()
	if !ok {
		// can't click or hover zero area
		return false, nil
	}
	for i := range ctx.Events {
		in := &ctx.Events[i]
		if !in.Available() {
			continue
		}
		p, isPointer := in.Event.(event.Pointer)
		if !isPointer {
			continue
		}
		pt := image.Pt(p.X, p.Y)
		if pt.In(pos) && ctx.Clip.Contains(pt) {
			if !p.Down {
				if p.Changed {
					// falling edge is the click
					in.Consume()
					if b.Released != nil {
						*b.Released = true
					}
				}
				b.state = buttonHovered
			} else {
				in.Consume()
				b.state = buttonPressed
			}
		} else {
			b.state = buttonIdle
		}
	}

	if _, err := b.Sizing.UpdateContained(b.current(), ctx, s); err != nil {
		return false, err
	}
	return false, nil
}

func (b *Button) Draw(s sys.System) error {
	return b.current().Draw(s)
}
