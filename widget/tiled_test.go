// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"testing"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys/headless"
)

func TestTiledRepeatsTexture(t *testing.T) {
	b, err := headless.New(image.Pt(5, 3))
	if err != nil {
		t.Fatal(err)
	}

	red := color.RGBA{R: 0xff, A: 0xff}
	green := color.RGBA{G: 0xff, A: 0xff}
	blue := color.RGBA{B: 0xff, A: 0xff}
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	tile := image.NewRGBA(image.Rect(0, 0, 2, 2))
	tile.SetRGBA(0, 0, red)
	tile.SetRGBA(1, 0, green)
	tile.SetRGBA(0, 1, blue)
	tile.SetRGBA(1, 1, white)
	b.RegisterImage("tile.png", tile)

	tl := NewTiled("tile.png")
	ctx := layout.Context{Position: geom.Rect{W: 5, H: 3}, Clip: geom.NoClip}
	if _, err := tl.Update(&ctx, b); err != nil {
		t.Fatal(err)
	}
	if err := tl.Draw(b); err != nil {
		t.Fatal(err)
	}
	if err := b.Present(); err != nil {
		t.Fatal(err)
	}

	// 2x2 tiles repeat across 5x3, cropped at the right and bottom
	frame := b.Frame()
	cases := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, red}, {1, 0, green}, {2, 0, red}, {3, 0, green}, {4, 0, red},
		{0, 1, blue}, {1, 1, white}, {3, 1, white}, {4, 1, blue},
		{0, 2, red}, {1, 2, green}, {4, 2, red},
	}
	for _, c := range cases {
		if got := frame.RGBAAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestTiledSourceRegion(t *testing.T) {
	b, err := headless.New(image.Pt(3, 1))
	if err != nil {
		t.Fatal(err)
	}

	red := color.RGBA{R: 0xff, A: 0xff}
	green := color.RGBA{G: 0xff, A: 0xff}
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(0, 0, red)
	img.SetRGBA(1, 0, green)
	b.RegisterImage("strip.png", img)

	tl := NewTiled("strip.png")
	src := image.Rect(1, 0, 2, 1)
	tl.Src = &src
	ctx := layout.Context{Position: geom.Rect{W: 3, H: 1}, Clip: geom.NoClip}
	if _, err := tl.Update(&ctx, b); err != nil {
		t.Fatal(err)
	}
	if err := tl.Draw(b); err != nil {
		t.Fatal(err)
	}
	if err := b.Present(); err != nil {
		t.Fatal(err)
	}

	frame := b.Frame()
	for x := 0; x < 3; x++ {
		if got := frame.RGBAAt(x, 0); got != green {
			t.Errorf("pixel (%d, 0) = %v, want the selected region only", x, got)
		}
	}
}
