// SPDX-License-Identifier: Unlicense OR MIT

/*
Package sys declares the capability surface a backend provides to the
UI: window size, drawing with a clipping area, cached image and text
textures, spatialized audio, and input event polling.

The layout engine only ever talks to a backend through these
interfaces. Any query may fail, and a failure aborts the current
frame's layout; there is no partial or degraded layout mode.
*/
package sys

import (
	"image"
	"image/color"
	"time"

	"github.com/halcyonui/halcyon/event"
	"github.com/halcyonui/halcyon/geom"
)

// Texture is a drawable, sized resource owned by the backend. Handles
// are only valid until the next call into the backend; they are cheap
// to re-acquire since backends cache by key.
type Texture interface {
	// Size reports the texture dimensions in pixels. Textures always
	// have strictly positive area.
	Size() (image.Point, error)

	// Draw copies src (nil meaning the whole texture) to dst on the
	// canvas, scaling as needed and honoring the current clip. A dst
	// that snaps to zero area is skipped.
	Draw(src *image.Rectangle, dst geom.Rect) error

	// DrawRotated is Draw with the source rotated by quarter turns
	// clockwise before scaling into dst.
	DrawRotated(src *image.Rectangle, dst geom.Rect, quarterTurns int) error
}

// LoopHandle identifies one looping sound. It is meant to be managed
// by the single entity producing the sound; that entity should call
// System.LoopSound with the same handle every frame the sound plays.
type LoopHandle struct {
	Path string

	// backend bookkeeping
	ID uint64
}

// System is the full backend capability surface.
type System interface {
	// Size is the size of the window canvas.
	Size() (image.Point, error)

	// Clear sets the whole canvas to a color, ignoring the clip.
	Clear(c color.NRGBA) error

	// Fill draws a solid rectangle, honoring the clip. A dst that
	// snaps to zero area is skipped.
	Fill(dst geom.Rect, c color.NRGBA) error

	// Present makes the drawn content visible.
	Present() error

	// Clip restricts subsequent drawing to an area.
	Clip(c geom.Clip)

	// CurrentClip returns the clip in effect.
	CurrentClip() geom.Clip

	// Image loads a texture from a file, or reuses it from an
	// unspecified cache.
	Image(path string) (Texture, error)

	// Text renders a string, or reuses it from an unspecified cache.
	// A wrapWidth of zero disables wrapping. The rendered size is
	// derived from pointSize but is not guaranteed to match it
	// exactly; callers scale the result.
	//
	// Text should be discretized: a large number of distinct
	// (text, color, size, wrap) keys live at the same time will not
	// work well with the cache.
	Text(s string, c color.NRGBA, pointSize int, wrapWidth int) (Texture, error)

	// Sound plays a one-shot sound, non blocking. The backend may
	// silently do nothing, for example if too many sounds play at
	// once. Direction is 0 to 1, 0 meaning north and increasing
	// clockwise. Distance is 0 to 1; 0 is full volume and 1 is very
	// quiet but not necessarily silent.
	Sound(path string, direction, distance float32) error

	// LoopSound plays or adjusts a looping sound, non blocking. The
	// fade-in is applied only if the loop just started.
	LoopSound(h *LoopHandle, direction, distance float32, fadeIn time.Duration) error

	// StopLoopSound fades out and stops a looping sound, resetting
	// the handle for reuse.
	StopLoopSound(h *LoopHandle, fadeOut time.Duration)

	// Music plays a track looping forever, non blocking. If music is
	// already playing it is faded out with fadeOut first; fadeIn
	// applies to the new track.
	Music(path string, fadeOut, fadeIn time.Duration) error

	// StopMusic fades out and stops the current track.
	StopMusic(fadeOut time.Duration) error

	// SetMusicVolume sets the music volume, 0 to 1.
	SetMusicVolume(v float32)

	// MusicVolume reports the music volume, 0 to 1.
	MusicVolume() float32

	// NextEvent waits forever for the next input event.
	NextEvent() event.Event

	// NextEventTimeout waits up to d for the next input event. It
	// reports false if no event arrived in time.
	NextEventTimeout(d time.Duration) (event.Event, bool)
}
