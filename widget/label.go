// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"github.com/halcyonui/halcyon/geom"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
)

// RefPointSize is the point size labels measure at to learn their
// aspect ratio. The ratio is near constant across point sizes, so one
// cached rendering serves all sizing queries.
const RefPointSize = 16

// Label is a single line of text. It sizes itself by receiving a
// height and deriving the corresponding width through the measured
// aspect ratio of its text; the point size follows from whatever
// height layout settles on.
type Label struct {
	Text  string
	Color color.NRGBA

	// Aspect applies when RequestAspectRatio is false and the final
	// rect does not match the text's ratio.
	Aspect             layout.AspectPolicy
	RequestAspectRatio bool

	MinH layout.MinLen
	MaxH layout.MaxLen

	PreferredW, PreferredH layout.PreferredPortion

	MinWFail layout.MinLenFailPolicy
	MaxWFail layout.MaxLenFailPolicy
	MinHFail layout.MinLenFailPolicy
	MaxHFail layout.MaxLenFailPolicy

	drawPos geom.Rect
}

// NewLabel returns a white label that keeps its text's aspect ratio.
func NewLabel(text string) *Label {
	return &Label{
		Text:               text,
		Color:              color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Aspect:             layout.DefaultAspect,
		RequestAspectRatio: true,
		MaxH:               layout.MaxLenLax,
		PreferredW:         layout.Full,
		PreferredH:         layout.Full,
		MinWFail:           layout.MinFailCentered,
		MaxWFail:           layout.MaxFailCentered,
		MinHFail:           layout.MinFailCentered,
		MaxHFail:           layout.MaxFailCentered,
	}
}

// ratio is width over height of the rendered text, 0 for empty text.
func (l *Label) ratio(s sys.System) (float32, error) {
	if l.Text == "" {
		return 0, nil
	}
	t, err := s.Text(l.Text, l.Color, RefPointSize, 0)
	if err != nil {
		return 0, err
	}
	size, err := t.Size()
	if err != nil {
		return 0, err
	}
	return float32(size.X) / float32(size.Y), nil
}

func (l *Label) Min(s sys.System) (layout.MinLen, layout.MinLen, error) {
	r, err := l.ratio(s)
	if err != nil {
		return 0, 0, err
	}
	return layout.MinLen(layout.WidthFromHeight(r, float32(l.MinH))), l.MinH, nil
}

func (l *Label) Max(s sys.System) (layout.MaxLen, layout.MaxLen, error) {
	if l.MaxH == layout.MaxLenLax {
		return layout.MaxLenLax, layout.MaxLenLax, nil
	}
	r, err := l.ratio(s)
	if err != nil {
		return 0, 0, err
	}
	return layout.MaxLen(layout.WidthFromHeight(r, float32(l.MaxH))), l.MaxH, nil
}

func (l *Label) PreferredPortion() (layout.PreferredPortion, layout.PreferredPortion) {
	return l.PreferredW, l.PreferredH
}

func (l *Label) MinWFailPolicy() layout.MinLenFailPolicy { return l.MinWFail }
func (l *Label) MinHFailPolicy() layout.MinLenFailPolicy { return l.MinHFail }
func (l *Label) MaxWFailPolicy() layout.MaxLenFailPolicy { return l.MaxWFail }
func (l *Label) MaxHFailPolicy() layout.MaxLenFailPolicy { return l.MaxHFail }

func (l *Label) WidthFromHeight(h float32, s sys.System) (float32, bool, error) {
	if !l.RequestAspectRatio {
		return 0, false, nil
	}
	r, err := l.ratio(s)
	if err != nil {
		return 0, false, err
	}
	return layout.WidthFromHeight(r, h), true, nil
}

func (l *Label) HeightFromWidth(w float32, s sys.System) (float32, bool, error) {
	if !l.RequestAspectRatio {
		return 0, false, nil
	}
	r, err := l.ratio(s)
	if err != nil {
		return 0, false, err
	}
	return layout.HeightFromWidth(r, w), true, nil
}

func (l *Label) RatioExceedsParent() bool { return false }

func (l *Label) Update(ctx *layout.Context, _ sys.System) (bool, error) {
	l.drawPos = ctx.Position
	return false, nil
}

func (l *Label) Draw(s sys.System) error {
	pos, ok := l.drawPos.Pixel()
	if !ok || l.Text == "" {
		return nil
	}
	t, err := s.Text(l.Text, l.Color, pos.Dy(), 0)
	if err != nil {
		return err
	}
	return drawTexture(t, l.Aspect, nil, l.drawPos)
}
