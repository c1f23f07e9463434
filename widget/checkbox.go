// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// Checkbox is a square toggle drawn from four regions of one texture
// atlas. The checked state is caller owned, so the widget can be
// rebuilt every frame without losing it.
type Checkbox struct {
	layout.Base

	Path string

	// square side bounds
	MinSide layout.MinLen
	MaxSide layout.MaxLen

	// ToggleSound, when non empty, plays on every toggle.
	ToggleSound string

	Check        image.Rectangle
	CheckFaded   image.Rectangle
	Uncheck      image.Rectangle
	UncheckFaded image.Rectangle

	Checked *bool
	// Changed is set for one frame when the box is toggled.
	Changed *bool

	drawPos geom.Rect
	hovered bool
}

// NewCheckbox returns a checkbox over caller-owned state.
func NewCheckbox(path string, minSide layout.MinLen, maxSide layout.MaxLen, checked, changed *bool, check, checkFaded, uncheck, uncheckFaded image.Rectangle) *Checkbox {
	return &Checkbox{
		Path:         path,
		MinSide:      minSide,
		MaxSide:      maxSide,
		Check:        check,
		CheckFaded:   checkFaded,
		Uncheck:      uncheck,
		UncheckFaded: uncheckFaded,
		Checked:      checked,
		Changed:      changed,
	}
}

func (c *Checkbox) Min(sys.System) (layout.MinLen, layout.MinLen, error) {
	return c.MinSide, c.MinSide, nil
}

func (c *Checkbox) Max(sys.System) (layout.MaxLen, layout.MaxLen, error) {
	return c.MaxSide, c.MaxSide, nil
}

// always square
func (c *Checkbox) RatioExceedsParent() bool { return true }

func (c *Checkbox) WidthFromHeight(h float32, _ sys.System) (float32, bool, error) {
	return h, true, nil
}

func (c *Checkbox) HeightFromWidth(w float32, _ sys.System) (float32, bool, error) {
	return w, true, nil
}

func (c *Checkbox) Update(ctx *layout.Context, s sys.System) (bool, error) {
	if c.Changed != nil {
		*c.Changed = false
	}
	c.drawPos = ctx.Position

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
			c.hovered = true
			if p.Down && p.Changed {
				// toggle on the rising edge
				in.Consume()
				*c.Checked = !*c.Checked
				if c.Changed != nil {
					*c.Changed = true
				}
				if c.ToggleSound != "" {
					if err := s.Sound(c.ToggleSound, 0, 0); err != nil {
						return false, err
					}
				}
			}
		} else {
			c.hovered = false
		}
	}
	return false, nil
}

func (c *Checkbox) Draw(s sys.System) error {
	if _, ok := c.drawPos.Pixel(); !ok {
		return nil
	}
	t, err := s.Image(c.Path)
	if err != nil {
		return err
	}
	var src image.Rectangle
	switch {
	case *c.Checked && c.hovered:
		src = c.CheckFaded
	case *c.Checked:
		src = c.Check
	case c.hovered:
		src = c.UncheckFaded
	default:
		src = c.Uncheck
	}
	return t.Draw(&src, c.drawPos)
}
