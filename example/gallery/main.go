// SPDX-License-Identifier: Unlicense OR MIT

// Gallery renders a small widget tour with the headless backend and
// writes each presented frame as a PNG. Input is scripted, so the
// output is deterministic.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/example/internal/frameloop"
	"github.com/halcyonui/halcyon/layout"
	"github.com/halcyonui/halcyon/sys"
	"github.com/halcyonui/halcyon/sys/headless"
	"github.com/halcyonui/halcyon/theme"
	"github.com/halcyonui/halcyon/widget"
)

const themeTOML = `
[text]
color = "#e8e8f0"
point_size = 16

[button]
idle = "#404048"
hovered = "#50505a"
pressed = "#303036"

[checkbox]
atlas = "skin.png"
min_side = 16
max_side = 32
check = { x = 0, y = 0, w = 8, h = 8 }
check_faded = { x = 8, y = 0, w = 8, h = 8 }
uncheck = { x = 16, y = 0, w = 8, h = 8 }
uncheck_faded = { x = 24, y = 0, w = 8, h = 8 }

[border]
atlas = "skin.png"
edge = { x = 0, y = 8, w = 8, h = 4 }
corner = { x = 8, y = 8, w = 4, h = 4 }
`

// skin paints the texture atlas the theme's regions point into.
func skin() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 32, 12))
	cell := func(r image.Rectangle, c color.NRGBA) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
	}
	cell(image.Rect(0, 0, 8, 8), color.NRGBA{G: 0xC0, A: 0xFF})            // check
	cell(image.Rect(8, 0, 16, 8), color.NRGBA{G: 0x70, A: 0xFF})           // check faded
	cell(image.Rect(16, 0, 24, 8), color.NRGBA{R: 0x50, A: 0xFF})          // uncheck
	cell(image.Rect(24, 0, 32, 8), color.NRGBA{R: 0x30, A: 0xFF})          // uncheck faded
	cell(image.Rect(0, 8, 8, 12), color.NRGBA{B: 0xA0, A: 0xFF})           // edge
	cell(image.Rect(8, 8, 12, 12), color.NRGBA{R: 0xA0, B: 0xA0, A: 0xFF}) // corner
	return img
}

// uiState is the caller-owned widget state surviving across frames.
type uiState struct {
	scroll   layout.ScrollState
	checked  bool
	changed  bool
	released bool
	clicks   int
}

// buildUI constructs the whole tree anew, as an immediate-mode caller
// would each frame.
func buildUI(th *theme.Theme, st *uiState) layout.Widget {
	left := layout.NewVertical(
		th.Label("halcyon"),
		widget.Fixed(0, 10),
		th.NewCheckbox(&st.checked, &st.changed),
		widget.Fixed(0, 10),
		th.NewButton(&st.released),
	)

	var rows []layout.Widget
	for i := 0; i < 12; i++ {
		d := widget.NewDebug()
		d.Sizing.MinH = 40
		d.Sizing.MaxH = 40
		rows = append(rows, d)
	}
	tall := layout.NewVertical(rows...)
	scroller := layout.NewScroller(false, true, &st.scroll, tall)

	right := th.NewBorder(layout.NewClipper(scroller))

	para := th.Paragraph("the quick brown fox jumps over the lazy dog, " +
		"wrapped to whatever width the layout grants")

	root := layout.NewHorizontal(
		left,
		widget.Fixed(20, 0),
		right,
		widget.Fixed(20, 0),
		para,
	)
	return root
}

// script feeds a deterministic input sequence to the backend.
func script(b *headless.Backend) {
	moves := []event.Event{
		event.Pointer{X: 60, Y: 120},
		event.Pointer{X: 60, Y: 120, Down: true, Changed: true},
		event.Pointer{X: 60, Y: 120, Changed: true},
		event.Wheel{X: 400, Y: 200, DY: 3},
		event.Wheel{X: 400, Y: 200, DY: 3},
		event.Pointer{X: 60, Y: 200, Down: true, Changed: true},
		event.Pointer{X: 60, Y: 200, Changed: true},
	}
	for _, e := range moves {
		b.Inject(e)
		time.Sleep(5 * time.Millisecond)
	}
	b.Inject(event.Quit{})
}

func main() {
	out := flag.String("out", ".", "directory for frame PNGs")
	flag.Parse()

	b, err := headless.New(image.Pt(800, 400))
	if err != nil {
		log.Fatal(err)
	}
	b.RegisterImage("skin.png", skin())

	th, err := theme.Parse([]byte(themeTOML))
	if err != nil {
		log.Fatal(err)
	}

	var st uiState
	frame := 0
	last := time.Now()

	go script(b)

	err = frameloop.Run(b, 16*time.Millisecond, func(s sys.System, events []event.Input) (frameloop.Action, error) {
		now := time.Now()
		dt := now.Sub(last)
		last = now

		ui := buildUI(&th, &st)
		redraw, err := layout.UpdateUI(ui, events, s, dt)
		if err != nil {
			return frameloop.Stop, err
		}
		if st.released {
			st.clicks++
			log.Printf("button clicked, total %d", st.clicks)
		}
		if st.changed {
			log.Printf("checkbox now %v", st.checked)
		}

		if err := s.Clear(color.NRGBA{R: 0x16, G: 0x16, B: 0x1C, A: 0xFF}); err != nil {
			return frameloop.Stop, err
		}
		if err := ui.Draw(s); err != nil {
			return frameloop.Stop, err
		}
		if err := s.Present(); err != nil {
			return frameloop.Stop, err
		}

		if err := writeFrame(*out, frame, b.Frame()); err != nil {
			return frameloop.Stop, err
		}
		frame++

		if redraw {
			return frameloop.NextFrame, nil
		}
		return frameloop.DelayNextFrame, nil
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d frames", frame)
}

func writeFrame(dir string, n int, img image.Image) error {
	path := filepath.Join(dir, fmt.Sprintf("frame_%03d.png", n))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
