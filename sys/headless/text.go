// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/halcyonui/halcyon/sys"
)

// textKey is the full identity of a rendered string.
type textKey struct {
	s    string
	c    color.NRGBA
	size int
	wrap int
}

type textEntry struct {
	tex    *texture
	active bool
}

// textCache renders strings to textures and caches them per frame.
// Entries untouched for a whole frame are evicted at Present.
type textCache struct {
	b     *Backend
	font  *sfnt.Font
	faces map[int]font.Face

	entries map[textKey]*textEntry
}

func (tc *textCache) init(b *Backend, ttf []byte) error {
	if ttf == nil {
		ttf = goregular.TTF
	}
	f, err := sfnt.Parse(ttf)
	if err != nil {
		return fmt.Errorf("headless: parse font: %w", err)
	}
	tc.b = b
	tc.font = f
	tc.faces = make(map[int]font.Face)
	tc.entries = make(map[textKey]*textEntry)
	return nil
}

func (tc *textCache) face(pointSize int) (font.Face, error) {
	if pointSize < 1 {
		pointSize = 1
	}
	if f, ok := tc.faces[pointSize]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(tc.font, &opentype.FaceOptions{
		Size:    float64(pointSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("headless: face %dpt: %w", pointSize, err)
	}
	tc.faces[pointSize] = f
	return f, nil
}

func (b *Backend) Text(s string, c color.NRGBA, pointSize int, wrapWidth int) (sys.Texture, error) {
	key := textKey{s: s, c: c, size: pointSize, wrap: wrapWidth}
	if e, ok := b.text.entries[key]; ok {
		e.active = true
		return e.tex, nil
	}
	tex, err := b.text.render(s, c, pointSize, wrapWidth)
	if err != nil {
		return nil, err
	}
	b.text.entries[key] = &textEntry{tex: tex, active: true}
	return tex, nil
}

func (tc *textCache) render(s string, c color.NRGBA, pointSize, wrapWidth int) (*texture, error) {
	face, err := tc.face(pointSize)
	if err != nil {
		return nil, err
	}
	lines, err := wrapLines(face, s, wrapWidth)
	if err != nil {
		return nil, err
	}

	m := face.Metrics()
	lineHeight := m.Height.Ceil()
	if lineHeight < 1 {
		lineHeight = 1
	}
	width := 1
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	height := lineHeight * len(lines)
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: face,
	}
	for i, line := range lines {
		d.Dot = fixed.P(0, i*lineHeight) // baseline below
		d.Dot.Y += m.Ascent
		d.DrawString(line)
	}
	return &texture{b: tc.b, img: img}, nil
}

// endFrame evicts entries that were not used this frame, in the same
// spirit as a glyph cache reset.
func (tc *textCache) endFrame() {
	for key, e := range tc.entries {
		if !e.active {
			delete(tc.entries, key)
			continue
		}
		e.active = false
	}
}

// wrapLines splits s on newlines and greedily wraps each paragraph at
// UAX #14 break opportunities so that every line measures at most
// wrapWidth. A wrapWidth of zero disables wrapping. A fragment wider
// than wrapWidth occupies a line of its own and overflows.
func wrapLines(face font.Face, s string, wrapWidth int) ([]string, error) {
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		if wrapWidth <= 0 || para == "" {
			lines = append(lines, para)
			continue
		}
		wrapped, err := wrapParagraph(face, para, wrapWidth)
		if err != nil {
			return nil, err
		}
		lines = append(lines, wrapped...)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, nil
}

func wrapParagraph(face font.Face, para string, wrapWidth int) ([]string, error) {
	seg := segment.NewSegmenter(uax14.NewLineWrap())
	seg.Init(strings.NewReader(para))

	limit := fixed.I(wrapWidth)
	var lines []string
	var line strings.Builder
	for seg.Next() {
		frag := seg.Text()
		candidate := line.String() + frag
		if line.Len() > 0 && font.MeasureString(face, strings.TrimRight(candidate, " ")) > limit {
			lines = append(lines, strings.TrimRight(line.String(), " "))
			line.Reset()
			frag = strings.TrimLeft(frag, " ")
		}
		line.WriteString(frag)
	}
	if err := seg.Err(); err != nil {
		return nil, fmt.Errorf("headless: wrap: %w", err)
	}
	if line.Len() > 0 || len(lines) == 0 {
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return lines, nil
}
