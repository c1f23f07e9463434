// SPDX-License-Identifier: Unlicense OR MIT

/*
Package event defines the input events delivered by a backend and the
per-event consumption marking used while events travel down the widget
tree.
*/
package event

// Event is the interface implemented by all backend input events.
type Event interface {
	ImplementsEvent()
}

// Quit is a request to close the application.
type Quit struct{}

// Resize indicates a new window size.
type Resize struct {
	Width, Height int
}

// Pointer is the state of the primary (left) mouse button at a
// position.
type Pointer struct {
	X, Y int
	// Down is whether the button is held.
	Down bool
	// Changed is whether Down differs from what it was immediately
	// before this event.
	Changed bool
}

// Wheel is a mouse wheel movement at a position. Wheel events might
// not be available on every backend, for example on mobile.
type Wheel struct {
	X, Y   int
	DX, DY int
}

// Key is a typed key, accounting for keyboard layout.
type Key struct {
	Code byte
	Down bool
}

func (Quit) ImplementsEvent()    {}
func (Resize) ImplementsEvent()  {}
func (Pointer) ImplementsEvent() {}
func (Wheel) ImplementsEvent()   {}
func (Key) ImplementsEvent()     {}

// Status records which part of the tree, if any, has used an event.
type Status uint8

const (
	// StatusFree marks an event no widget has used.
	StatusFree Status = iota
	// StatusWidget marks an event used by a non-layout widget. For
	// the most part it should be considered consumed, but a layout
	// (for example a scroller) may still choose to observe it.
	StatusWidget
	// StatusLayout marks an event used by a layout. Nothing else may
	// use it.
	StatusLayout
)

// Input wraps an Event together with its consumption status. It has
// two purposes: ensuring a single widget uses an event, and telling
// the application which events the UI left untouched.
type Input struct {
	Event  Event
	status Status
}

// Gather wraps backend events for one update traversal.
func Gather(events ...Event) []Input {
	in := make([]Input, len(events))
	for i, e := range events {
		in[i] = Input{Event: e}
	}
	return in
}

// Available reports whether the event is still unused.
func (in *Input) Available() bool { return in.status == StatusFree }

// Consumed reports whether any widget or layout used the event.
func (in *Input) Consumed() bool { return in.status != StatusFree }

// Status returns the consumption status.
func (in *Input) Status() Status { return in.status }

// Consume marks the event as used by a widget.
func (in *Input) Consume() { in.status = StatusWidget }

// ConsumeByLayout marks the event as used by a layout. It must not be
// called twice for the same event.
func (in *Input) ConsumeByLayout() { in.status = StatusLayout }
