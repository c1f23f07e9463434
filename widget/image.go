// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// Image draws a texture or a region of one.
type Image struct {
	Path string
	// Src selects a region of the texture; nil means all of it.
	Src *image.Rectangle

	// Aspect applies when RequestAspectRatio is false and the final
	// rect does not match the region's ratio.
	Aspect             layout.AspectPolicy
	RequestAspectRatio bool
	RatioMayExceed     bool

	// FromTexture policies size the widget by the region's pixel
	// dimensions.
	MinWPolicy layout.MinLenPolicy
	MinHPolicy layout.MinLenPolicy
	MaxWPolicy layout.MaxLenPolicy
	MaxHPolicy layout.MaxLenPolicy

	PreferredW, PreferredH layout.PreferredPortion

	MinWFail layout.MinLenFailPolicy
	MaxWFail layout.MaxLenFailPolicy
	MinHFail layout.MinLenFailPolicy
	MaxHFail layout.MaxLenFailPolicy

	drawPos geom.Rect
}

// NewImage returns an image widget that keeps the texture's aspect
// ratio and accepts any size.
func NewImage(path string) *Image {
	return &Image{
		Path:               path,
		Aspect:             layout.DefaultAspect,
		RequestAspectRatio: true,
		MaxWPolicy:         layout.LiteralMax(layout.MaxLenLax),
		MaxHPolicy:         layout.LiteralMax(layout.MaxLenLax),
		PreferredW:         layout.Full,
		PreferredH:         layout.Full,
		MinWFail:           layout.MinFailCentered,
		MaxWFail:           layout.MaxFailCentered,
		MinHFail:           layout.MinFailCentered,
		MaxHFail:           layout.MaxFailCentered,
	}
}

// size is the pixel size of the drawn region.
func (im *Image) size(s sys.System) (image.Point, error) {
	if im.Src != nil {
		return im.Src.Size(), nil
	}
	t, err := s.Image(im.Path)
	if err != nil {
		return image.Point{}, err
	}
	return t.Size()
}

func (im *Image) Min(s sys.System) (layout.MinLen, layout.MinLen, error) {
	w, wOK := im.MinWPolicy.Literal()
	h, hOK := im.MinHPolicy.Literal()
	if wOK && hOK {
		return w, h, nil
	}
	size, err := im.size(s)
	if err != nil {
		return 0, 0, err
	}
	if !wOK {
		w = layout.MinLen(size.X)
	}
	if !hOK {
		h = layout.MinLen(size.Y)
	}
	return w, h, nil
}

func (im *Image) Max(s sys.System) (layout.MaxLen, layout.MaxLen, error) {
	w, wOK := im.MaxWPolicy.Literal()
	h, hOK := im.MaxHPolicy.Literal()
	if wOK && hOK {
		return w, h, nil
	}
	size, err := im.size(s)
	if err != nil {
		return 0, 0, err
	}
	if !wOK {
		w = layout.MaxLen(size.X)
	}
	if !hOK {
		h = layout.MaxLen(size.Y)
	}
	return w, h, nil
}

func (im *Image) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return im.PreferredW, im.PreferredH
}

func (im *Image) MinWFailPolicy() layout.MinLenFailPolicy { return im.MinWFail }
func (im *Image) MinHFailPolicy() layout.MinLenFailPolicy { return im.MinHFail }
func (im *Image) MaxWFailPolicy() layout.MaxLenFailPolicy { return im.MaxWFail }
func (im *Image) MaxHFailPolicy() layout.MaxLenFailPolicy { return im.MaxHFail }

func (im *Image) ratio(s sys.System) (float32, error) {
	size, err := im.size(s)
	if err != nil {
		return 0, err
	}
	return float32(size.X) / float32(size.Y), nil
}

func (im *Image) WidthFromHeight(h float32, s sys.System) (float32, bool, error) {
	if !im.RequestAspectRatio {
		return 0, false, nil
	}
	r, err := im.ratio(s)
	if err != nil {
		return 0, false, err
	}
	return layout.WidthFromHeight(r, h), true, nil
}

func (im *Image) HeightFromWidth(w float32, s sys.System) (float32, bool, error) {
	if !im.RequestAspectRatio {
		return 0, false, nil
	}
	r, err := im.ratio(s)
	if err != nil {
		return 0, false, err
	}
	return layout.HeightFromWidth(r, w), true, nil
}

func (im *Image) RatioExceedsParent() bool { return im.RatioMayExceed }

func (im *Image) Update(ctx *layout.Context, _ sys.System) (bool, error) {
	im.drawPos = ctx.Position
	return false, nil
}

func (im *Image) Draw(s sys.System) error {
	t, err := s.Image(im.Path)
	if err != nil {
		return err
	}
	return drawTexture(t, im.Aspect, im.Src, im.drawPos)
}
