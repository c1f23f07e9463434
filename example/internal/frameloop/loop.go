// SPDX-License-Identifier: Unlicense OR MIT

// Package frameloop drives a lazily redrawing UI: it blocks until an
// input event arrives, accumulates closely following events so one
// frame handles them together, and only then calls the handler.
package frameloop

import (
	"time"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/sys"
)

// Action is what the handler wants to happen after its frame.
type Action int

const (
	// Stop leaves the loop.
	Stop Action = iota
	// NextFrame redraws eagerly, for animation.
	NextFrame
	// DelayNextFrame sleeps until the next input event.
	DelayNextFrame
)

// Handler runs one frame: update the UI with the accumulated events,
// draw, present.
type Handler func(s sys.System, events []event.Input) (Action, error)

// Run drives handler until it returns Stop or a Quit event arrives.
// maxDelay bounds how stale the oldest accumulated event may get
// before a frame is forced.
func Run(s sys.System, maxDelay time.Duration, h Handler) error {
	var acc []event.Event

	// initial frame before any input
	action, err := h(s, nil)
	if err != nil || action == Stop {
		return err
	}

	for {
		if action != NextFrame {
			e := s.NextEvent()
			if _, quit := e.(event.Quit); quit {
				return nil
			}
			acc = append(acc, e)
		}
		oldest := time.Now()

		// accumulate whatever arrives shortly after
		for {
			wait := maxDelay - time.Since(oldest)
			if wait <= 0 {
				break
			}
			e, ok := s.NextEventTimeout(wait)
			if !ok {
				break
			}
			if _, quit := e.(event.Quit); quit {
				// still handle what was gathered so far
				_, err := h(s, event.Gather(acc...))
				return err
			}
			acc = append(acc, e)
		}

		action, err = h(s, event.Gather(acc...))
		if err != nil || action == Stop {
			return err
		}
		acc = acc[:0]
	}
}
