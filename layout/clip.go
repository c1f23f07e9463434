// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/sys"
)

// Clipper confines the contained widget's drawing to the position the
// clipper was given. Sizing passes through untouched.
type Clipper struct {
	Contained Widget

	// captured during Update for Draw
	clip geom.Clip
}

// NewClipper clips contained to its own position.
func NewClipper(contained Widget) *Clipper {
	return &Clipper{Contained: contained, clip: geom.NoClip}
}

func (c *Clipper) Min(s sys.System) (MinLen, MinLen, error) { return c.Contained.Min(s) }
func (c *Clipper) Max(s sys.System) (MaxLen, MaxLen, error) { return c.Contained.Max(s) }

func (c *Clipper) PreferredPortion() (PreferredPortion, PreferredPortion) {
	return c.Contained.PreferredPortion()
}

func (c *Clipper) MinWFailPolicy() MinLenFailPolicy { return c.Contained.MinWFailPolicy() }
func (c *Clipper) MinHFailPolicy() MinLenFailPolicy { return c.Contained.MinHFailPolicy() }
func (c *Clipper) MaxWFailPolicy() MaxLenFailPolicy { return c.Contained.MaxWFailPolicy() }
func (c *Clipper) MaxHFailPolicy() MaxLenFailPolicy { return c.Contained.MaxHFailPolicy() }

func (c *Clipper) WidthFromHeight(h float32, s sys.System) (float32, bool, error) {
	return c.Contained.WidthFromHeight(h, s)
}

func (c *Clipper) HeightFromWidth(w float32, s sys.System) (float32, bool, error) {
	return c.Contained.HeightFromWidth(w, s)
}

func (c *Clipper) RatioExceedsParent() bool { return c.Contained.RatioExceedsParent() }

func (c *Clipper) Update(ctx *Context, s sys.System) (bool, error) {
	px, ok := ctx.Position.Pixel()
	if !ok {
		c.clip = geom.ZeroClip
	} else {
		c.clip = ctx.Clip.Intersect(geom.ClipRect(px))
	}
	// the contained widget sees the narrowed clip so its own hit
	// testing matches what will be visible
	sub := ctx.Sub(ctx.Position)
	sub.Clip = c.clip
	return c.Contained.Update(&sub, s)
}

func (c *Clipper) Draw(s sys.System) error {
	prev := s.CurrentClip()
	s.Clip(c.clip)
	err := c.Contained.Draw(s)
	s.Clip(prev)
	return err
}
