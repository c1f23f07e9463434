// SPDX-License-Identifier: Unlicense OR MIT

/*
Package theme loads widget styling from TOML: colors, point sizes and
the texture atlas regions used by skinned widgets. A theme is plain
data; helpers turn its styles into configured widgets.
*/
package theme

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/widget"
)

// Color is an NRGBA color parsed from "#RRGGBB" or "#RRGGBBAA".
type Color color.NRGBA

func (c *Color) UnmarshalText(text []byte) error {
	s := string(text)
	if len(s) == 0 || s[0] != '#' {
		return fmt.Errorf("theme: color %q must start with '#'", s)
	}
	var parsed Color
	parsed.A = 0xFF
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &parsed.R, &parsed.G, &parsed.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &parsed.R, &parsed.G, &parsed.B, &parsed.A)
	default:
		return fmt.Errorf("theme: color %q must be #RRGGBB or #RRGGBBAA", s)
	}
	if err != nil {
		return fmt.Errorf("theme: color %q: %w", s, err)
	}
	*c = parsed
	return nil
}

// NRGBA converts to the stdlib color type the backend consumes.
func (c Color) NRGBA() color.NRGBA { return color.NRGBA(c) }

// Region is a rectangle within a texture atlas.
type Region struct {
	X int `toml:"x"`
	Y int `toml:"y"`
	W int `toml:"w"`
	H int `toml:"h"`
}

func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

type TextStyle struct {
	Color     Color `toml:"color"`
	PointSize int   `toml:"point_size"`
}

type CheckboxStyle struct {
	Atlas       string `toml:"atlas"`
	ToggleSound string `toml:"toggle_sound"`
	MinSide     int    `toml:"min_side"`
	MaxSide     int    `toml:"max_side"`

	Check        Region `toml:"check"`
	CheckFaded   Region `toml:"check_faded"`
	Uncheck      Region `toml:"uncheck"`
	UncheckFaded Region `toml:"uncheck_faded"`
}

type BorderStyle struct {
	Atlas  string `toml:"atlas"`
	Edge   Region `toml:"edge"`
	Corner Region `toml:"corner"`
}

type ButtonStyle struct {
	Idle    Color `toml:"idle"`
	Hovered Color `toml:"hovered"`
	Pressed Color `toml:"pressed"`
}

// Theme is one decoded style sheet.
type Theme struct {
	Text     TextStyle     `toml:"text"`
	Button   ButtonStyle   `toml:"button"`
	Checkbox CheckboxStyle `toml:"checkbox"`
	Border   BorderStyle   `toml:"border"`
}

// Default is the style used where no theme file is given.
func Default() Theme {
	return Theme{
		Text: TextStyle{
			Color:     Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
			PointSize: 16,
		},
		Button: ButtonStyle{
			Idle:    Color{R: 0x40, G: 0x40, B: 0x48, A: 0xFF},
			Hovered: Color{R: 0x50, G: 0x50, B: 0x5A, A: 0xFF},
			Pressed: Color{R: 0x30, G: 0x30, B: 0x36, A: 0xFF},
		},
	}
}

// Parse decodes a theme strictly: unknown keys are an error, so typos
// in a style sheet surface instead of silently styling nothing.
func Parse(data []byte) (Theme, error) {
	t := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&t); err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return t, nil
}

// Load reads and parses a theme file.
func Load(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme: %w", err)
	}
	return Parse(data)
}

// Label returns a single-line label styled by the theme.
func (t *Theme) Label(s string) *widget.Label {
	l := widget.NewLabel(s)
	l.Color = t.Text.Color.NRGBA()
	return l
}

// Paragraph returns wrapped multi-line text styled by the theme.
func (t *Theme) Paragraph(s string) *widget.Text {
	return widget.NewText(s, t.Text.PointSize, t.Text.Color.NRGBA())
}

// NewCheckbox returns a checkbox skinned by the theme over
// caller-owned state.
func (t *Theme) NewCheckbox(checked, changed *bool) *widget.Checkbox {
	st := &t.Checkbox
	maxSide := layout.MaxLenLax
	if st.MaxSide > 0 {
		maxSide = layout.MaxLen(st.MaxSide)
	}
	c := widget.NewCheckbox(st.Atlas, layout.MinLen(st.MinSide), maxSide,
		checked, changed,
		st.Check.Rect(), st.CheckFaded.Rect(), st.Uncheck.Rect(), st.UncheckFaded.Rect())
	c.ToggleSound = st.ToggleSound
	return c
}

// NewBorder frames contained with the theme's border skin.
func (t *Theme) NewBorder(contained layout.Widget) *widget.Border {
	return widget.NewBorder(contained, t.Border.Atlas, t.Border.Edge.Rect(), t.Border.Corner.Rect())
}

// NewButton returns a flat-color button over caller-owned state.
func (t *Theme) NewButton(released *bool) *widget.Button {
	return widget.NewButton(
		widget.NewSolid(t.Button.Idle.NRGBA()),
		widget.NewSolid(t.Button.Hovered.NRGBA()),
		widget.NewSolid(t.Button.Pressed.NRGBA()),
		released,
	)
}
