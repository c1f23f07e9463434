// SPDX-License-Identifier: Unlicense OR MIT

/*
Package headless implements the full backend surface in software. It
renders into an in-memory image, which makes it suitable for tests,
golden images and server-side rendering, and it doubles as the
reference for what a hardware-backed implementation must do.
*/
package headless

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // file textures are typically png
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/sys"
)

// Backend is a software implementation of sys.System.
type Backend struct {
	canvas *image.RGBA
	front  *image.RGBA
	clip   geom.Clip

	images     map[string]*texture
	registered map[string]image.Image

	text  textCache
	audio audioState

	events chan event.Event
}

// New returns a backend with a canvas of the given size, using the Go
// regular font for text.
func New(size image.Point) (*Backend, error) {
	return NewWithFont(size, nil)
}

// NewWithFont is New with a specific TrueType or OpenType font. A nil
// ttf means the Go regular font.
func NewWithFont(size image.Point, ttf []byte) (*Backend, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("headless: canvas size %v not positive", size)
	}
	b := &Backend{
		canvas:     image.NewRGBA(image.Rectangle{Max: size}),
		clip:       geom.NoClip,
		images:     make(map[string]*texture),
		registered: make(map[string]image.Image),
		events:     make(chan event.Event, 256),
	}
	b.audio.musicVolume = 1
	if err := b.text.init(b, ttf); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Backend) Size() (image.Point, error) {
	return b.canvas.Bounds().Size(), nil
}

// clipBounds is the drawable area: the canvas intersected with the
// current clip.
func (b *Backend) clipBounds() image.Rectangle {
	switch {
	case b.clip.Zero():
		return image.Rectangle{}
	case b.clip.None():
		return b.canvas.Bounds()
	}
	r, _ := b.clip.Rect()
	return r.Intersect(b.canvas.Bounds())
}

func (b *Backend) Clear(c color.NRGBA) error {
	draw.Draw(b.canvas, b.canvas.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

func (b *Backend) Fill(dst geom.Rect, c color.NRGBA) error {
	px, ok := dst.Pixel()
	if !ok {
		return nil
	}
	r := px.Intersect(b.clipBounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(b.canvas, r, image.NewUniform(c), image.Point{}, draw.Over)
	return nil
}

// Present snapshots the canvas as the visible frame and ends the
// frame for the text cache.
func (b *Backend) Present() error {
	if b.front == nil {
		b.front = image.NewRGBA(b.canvas.Bounds())
	}
	copy(b.front.Pix, b.canvas.Pix)
	b.text.endFrame()
	b.audio.endFrame()
	return nil
}

// Frame returns the last presented frame, or nil before the first
// Present.
func (b *Backend) Frame() *image.RGBA { return b.front }

func (b *Backend) Clip(c geom.Clip) { b.clip = c }

func (b *Backend) CurrentClip() geom.Clip { return b.clip }

// RegisterImage makes an image available under a path without
// touching the filesystem. Tests and embedded assets use this.
func (b *Backend) RegisterImage(path string, img image.Image) {
	b.registered[path] = img
	delete(b.images, path)
}

func (b *Backend) Image(path string) (sys.Texture, error) {
	if t, ok := b.images[path]; ok {
		return t, nil
	}
	src, ok := b.registered[path]
	if !ok {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("headless: image %q: %w", path, err)
		}
		defer f.Close()
		src, _, err = image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("headless: image %q: %w", path, err)
		}
	}
	t := &texture{b: b, img: toRGBA(src)}
	b.images[path] = t
	return t, nil
}

func toRGBA(src image.Image) *image.RGBA {
	if r, ok := src.(*image.RGBA); ok {
		return r
	}
	r := image.NewRGBA(src.Bounds())
	draw.Draw(r, r.Bounds(), src, src.Bounds().Min, draw.Src)
	return r
}

// texture is a backend-owned image honoring the backend clip when
// drawn.
type texture struct {
	b   *Backend
	img *image.RGBA
}

func (t *texture) Size() (image.Point, error) {
	return t.img.Bounds().Size(), nil
}

// dstImage is the canvas restricted to the current clip.
func (t *texture) dstImage() (*image.RGBA, bool) {
	r := t.b.clipBounds()
	if r.Empty() {
		return nil, false
	}
	return t.b.canvas.SubImage(r).(*image.RGBA), true
}

func (t *texture) srcRect(src *image.Rectangle) image.Rectangle {
	if src != nil {
		return *src
	}
	return t.img.Bounds()
}

func (t *texture) Draw(src *image.Rectangle, dst geom.Rect) error {
	dstPx, ok := dst.Pixel()
	if !ok {
		return nil
	}
	canvas, ok := t.dstImage()
	if !ok {
		return nil
	}
	draw.NearestNeighbor.Scale(canvas, dstPx, t.img, t.srcRect(src), draw.Over, nil)
	return nil
}

func (t *texture) DrawRotated(src *image.Rectangle, dst geom.Rect, quarterTurns int) error {
	turns := ((quarterTurns % 4) + 4) % 4
	if turns == 0 {
		return t.Draw(src, dst)
	}
	dstPx, ok := dst.Pixel()
	if !ok {
		return nil
	}
	canvas, ok := t.dstImage()
	if !ok {
		return nil
	}
	sr := t.srcRect(src)
	m := rotateMap(sr, dstPx, turns)
	draw.NearestNeighbor.Transform(canvas, m, t.img, sr, draw.Over, nil)
	return nil
}

// rotateMap maps src onto dst rotated clockwise by quarter turns.
func rotateMap(src, dst image.Rectangle, turns int) f64.Aff3 {
	sw := float64(src.Dx())
	sh := float64(src.Dy())
	dw := float64(dst.Dx())
	dh := float64(dst.Dy())
	sx := float64(src.Min.X)
	sy := float64(src.Min.Y)
	dx := float64(dst.Min.X)
	dy := float64(dst.Min.Y)

	switch turns {
	case 1:
		// (u, v) -> (dw - v', u')
		kx := dw / sh
		ky := dh / sw
		return f64.Aff3{
			0, -kx, dx + dw + kx*sy,
			ky, 0, dy - ky*sx,
		}
	case 2:
		kx := dw / sw
		ky := dh / sh
		return f64.Aff3{
			-kx, 0, dx + dw + kx*sx,
			0, -ky, dy + dh + ky*sy,
		}
	default: // 3
		kx := dw / sh
		ky := dh / sw
		return f64.Aff3{
			0, kx, dx - kx*sy,
			-ky, 0, dy + dh + ky*sx,
		}
	}
}
