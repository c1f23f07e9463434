// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "github.com/halcyonui/halcyon/geom"

// AspectMode states how textured content is fitted when the area it
// is given does not share its aspect ratio.
type AspectMode uint8

const (
	// AspectStretch distorts the content to fill the area.
	AspectStretch AspectMode = iota
	// AspectZoomOut shrinks the content to fit entirely, leaving
	// blank space on one axis.
	AspectZoomOut
	// AspectZoomIn crops the content so it covers the area entirely.
	AspectZoomIn
)

// AspectPolicy is an AspectMode plus the alignment of the content
// within the area (zoom out) or of the visible window within the
// content (zoom in). Alignments run 0 to 1 from the negative edge to
// the positive edge.
type AspectPolicy struct {
	Mode   AspectMode
	AlignX float32
	AlignY float32
}

// DefaultAspect fits the whole content, centered.
var DefaultAspect = AspectPolicy{Mode: AspectZoomOut, AlignX: 0.5, AlignY: 0.5}

// ZoomIn crops to cover, with the given alignment of the visible
// window.
func ZoomIn(alignX, alignY float32) AspectPolicy {
	return AspectPolicy{Mode: AspectZoomIn, AlignX: alignX, AlignY: alignY}
}

// ZoomOut fits to contain, with the given alignment of the content.
func ZoomOut(alignX, alignY float32) AspectPolicy {
	return AspectPolicy{Mode: AspectZoomOut, AlignX: alignX, AlignY: alignY}
}

// Stretch ignores the aspect ratio.
var Stretch = AspectPolicy{Mode: AspectStretch}

func positiveArea(r geom.Rect) bool { return r.W > 0 && r.H > 0 }

// Apply resolves the source region of the content to sample and the
// destination region to cover, given the content's own extent src and
// the offered area dst. It reports false when nothing should be
// drawn, which happens whenever either resolved region has no
// positive area.
func (p AspectPolicy) Apply(src, dst geom.Rect) (geom.Rect, geom.Rect, bool) {
	switch p.Mode {
	case AspectStretch:
		if !positiveArea(src) || !positiveArea(dst) {
			return geom.Rect{}, geom.Rect{}, false
		}
		return src, dst, true
	case AspectZoomOut:
		if dst.H == 0 || !positiveArea(src) {
			return geom.Rect{}, geom.Rect{}, false
		}
		srcRatio := src.W / src.H
		dstRatio := dst.W / dst.H
		var fit geom.Rect
		if srcRatio > dstRatio {
			// blank space above and below; scale so the widths match
			scale := dst.W / src.W
			fit = geom.Rect{
				X: dst.X,
				Y: dst.Y + (dst.H-src.H*scale)*p.AlignY,
				W: src.W * scale,
				H: src.H * scale,
			}
		} else {
			// blank space at the sides; scale so the heights match
			scale := dst.H / src.H
			fit = geom.Rect{
				X: dst.X + (dst.W-src.W*scale)*p.AlignX,
				Y: dst.Y,
				W: src.W * scale,
				H: src.H * scale,
			}
		}
		if !positiveArea(fit) {
			return geom.Rect{}, geom.Rect{}, false
		}
		return src, fit, true
	case AspectZoomIn:
		if dst.H == 0 || dst.W == 0 || !positiveArea(src) {
			return geom.Rect{}, geom.Rect{}, false
		}
		srcRatio := src.W / src.H
		dstRatio := dst.W / dst.H
		var window geom.Rect
		if srcRatio > dstRatio {
			// crop the sides of the content
			w := dstRatio * src.H
			window = geom.Rect{
				X: src.X + (src.W-w)*p.AlignX,
				Y: src.Y,
				W: w,
				H: src.H,
			}
		} else {
			// crop the top and bottom of the content
			h := (src.W / dst.W) * dst.H
			window = geom.Rect{
				X: src.X,
				Y: src.Y + (src.H-h)*p.AlignY,
				W: src.W,
				H: h,
			}
		}
		if !positiveArea(window) || !positiveArea(dst) {
			return geom.Rect{}, geom.Rect{}, false
		}
		return window, dst, true
	default:
		return geom.Rect{}, geom.Rect{}, false
	}
}
