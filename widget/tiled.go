// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// Tiled fills its rectangle by repeating a texture region at its
// native pixel size, cut off at the right and bottom edges. The tiles
// are never scaled; to change the tile size, change the texture.
type Tiled struct {
	Path string
	// Src selects the tile within the texture; nil means all of it.
	Src *image.Rectangle

	Sizing layout.CustomSizing

	drawPos geom.Rect
}

// NewTiled returns a tiled background that accepts any size.
func NewTiled(path string) *Tiled {
	return &Tiled{Path: path, Sizing: layout.DefaultCustomSizing()}
}

func (tl *Tiled) Min(sys.System) (layout.MinLen, layout.MinLen, error) {
	return tl.Sizing.MinW, tl.Sizing.MinH, nil
}

func (tl *Tiled) Max(sys.System) (layout.MaxLen, layout.MaxLen, error) {
	return tl.Sizing.MaxW, tl.Sizing.MaxH, nil
}

func (tl *Tiled) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return tl.Sizing.PreferredW, tl.Sizing.PreferredH
}

func (tl *Tiled) MinWFailPolicy() layout.MinLenFailPolicy { return tl.Sizing.MinWFail }
func (tl *Tiled) MinHFailPolicy() layout.MinLenFailPolicy { return tl.Sizing.MinHFail }
func (tl *Tiled) MaxWFailPolicy() layout.MaxLenFailPolicy { return tl.Sizing.MaxWFail }
func (tl *Tiled) MaxHFailPolicy() layout.MaxLenFailPolicy { return tl.Sizing.MaxHFail }

func (tl *Tiled) WidthFromHeight(h float32, _ sys.System) (float32, bool, error) {
	if tl.Sizing.AspectRatio == 0 {
		return 0, false, nil
	}
	return layout.WidthFromHeight(tl.Sizing.AspectRatio, h), true, nil
}

func (tl *Tiled) HeightFromWidth(w float32, _ sys.System) (float32, bool, error) {
	if tl.Sizing.AspectRatio == 0 {
		return 0, false, nil
	}
	return layout.HeightFromWidth(tl.Sizing.AspectRatio, w), true, nil
}

func (tl *Tiled) RatioExceedsParent() bool { return tl.Sizing.RatioMayExceedParent }

func (tl *Tiled) Update(ctx *layout.Context, _ sys.System) (bool, error) {
	tl.drawPos = ctx.Position
	return false, nil
}

func (tl *Tiled) Draw(s sys.System) error {
	pos, ok := tl.drawPos.Pixel()
	if !ok {
		return nil
	}
	t, err := s.Image(tl.Path)
	if err != nil {
		return err
	}
	var src image.Rectangle
	if tl.Src != nil {
		src = *tl.Src
	} else {
		size, err := t.Size()
		if err != nil {
			return err
		}
		src = image.Rectangle{Max: size}
	}
	tile := src.Size()
	if tile.X <= 0 || tile.Y <= 0 {
		return nil
	}

	// partial tiles at the edges are drawn from a cropped source so
	// the texture never stretches
	for y := pos.Min.Y; y < pos.Max.Y; y += tile.Y {
		h := tile.Y
		if left := pos.Max.Y - y; left < h {
			h = left
		}
		for x := pos.Min.X; x < pos.Max.X; x += tile.X {
			w := tile.X
			if left := pos.Max.X - x; left < w {
				w = left
			}
			sr := image.Rect(src.Min.X, src.Min.Y, src.Min.X+w, src.Min.Y+h)
			dst := geom.FromPixel(image.Rect(x, y, x+w, y+h))
			if err := t.Draw(&sr, dst); err != nil {
				return err
			}
		}
	}
	return nil
}
