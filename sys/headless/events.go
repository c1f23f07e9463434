// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"time"

	"github.com/halcyonui/halcyon/event"
)

// Inject queues an input event for NextEvent. It is safe to call from
// any goroutine; the oldest event is dropped when the queue is full.
func (b *Backend) Inject(e event.Event) {
	for {
		select {
		case b.events <- e:
			return
		default:
		}
		select {
		case <-b.events:
		default:
		}
	}
}

func (b *Backend) NextEvent() event.Event {
	return <-b.events
}

func (b *Backend) NextEventTimeout(d time.Duration) (event.Event, bool) {
	if d <= 0 {
		select {
		case e := <-b.events:
			return e, true
		default:
			return nil, false
		}
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case e := <-b.events:
		return e, true
	case <-t.C:
		return nil, false
	}
}
