// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// drawTexture draws a texture region into dst through an aspect
// policy. A nil src means the whole texture. dst stays in floating
// point until the backend snaps it; snapping earlier makes content
// jumpy when its size changes gradually.
func drawTexture(t sys.Texture, policy layout.AspectPolicy, src *image.Rectangle, dst geom.Rect) error {
	var srcRect geom.Rect
	if src != nil {
		srcRect = geom.FromPixel(*src)
	} else {
		size, err := t.Size()
		if err != nil {
			return err
		}
		srcRect = geom.Rect{W: float32(size.X), H: float32(size.Y)}
	}

	srcF, dstF, ok := policy.Apply(srcRect, dst)
	if !ok {
		return nil
	}
	srcPx, ok := srcF.Pixel()
	if !ok {
		return nil
	}
	return t.Draw(&srcPx, dstF)
}
