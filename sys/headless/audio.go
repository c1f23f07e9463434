// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"math"
	"time"

	"github.com/halcyonui/halcyon/sys"
)

// numChannels bounds how many sounds play at once. Requests beyond it
// are silently dropped, matching mixer-style backends.
const numChannels = 8

// Channel is the audible state of one mixer channel. Direction and
// distance are kept in mixer units: degrees clockwise from north and
// 0..255 attenuation.
type Channel struct {
	Path     string
	Angle    int16
	Distance uint8
	Looping  bool
	FadeIn   time.Duration
}

// Gains derives constant-power stereo gains from the channel's
// position: equal power across the pan sweep, attenuated by distance
// down to a tenth at the far end.
func (c Channel) Gains() (left, right float32) {
	direction := float64(c.Angle) / 360
	lateral := math.Sin(2 * math.Pi * direction)
	theta := (lateral + 1) * math.Pi / 4
	att := 1 - 0.9*float64(c.Distance)/0xFF
	return float32(att * math.Cos(theta)), float32(att * math.Sin(theta))
}

type audioState struct {
	channels [numChannels]*Channel

	musicPath   string
	musicFadeIn time.Duration
	musicVolume float32
}

func mixerPosition(direction, distance float32) (int16, uint8) {
	angle := int16(direction*360 + 0.5)
	d := distance * 0xFF
	switch {
	case d < 0:
		d = 0
	case d > 0xFF:
		d = 0xFF
	}
	return angle, uint8(d + 0.5)
}

func (a *audioState) freeChannel() int {
	for i, ch := range a.channels {
		if ch == nil {
			return i
		}
	}
	return -1
}

func (b *Backend) Sound(path string, direction, distance float32) error {
	i := b.audio.freeChannel()
	if i < 0 {
		// all channels busy, drop without error
		return nil
	}
	angle, dist := mixerPosition(direction, distance)
	b.audio.channels[i] = &Channel{Path: path, Angle: angle, Distance: dist}
	return nil
}

func (b *Backend) LoopSound(h *sys.LoopHandle, direction, distance float32, fadeIn time.Duration) error {
	angle, dist := mixerPosition(direction, distance)
	if h.ID != 0 {
		ch := b.audio.channels[h.ID-1]
		ch.Angle = angle
		ch.Distance = dist
		return nil
	}
	i := b.audio.freeChannel()
	if i < 0 {
		return nil
	}
	b.audio.channels[i] = &Channel{
		Path:     h.Path,
		Angle:    angle,
		Distance: dist,
		Looping:  true,
		FadeIn:   fadeIn,
	}
	h.ID = uint64(i + 1)
	return nil
}

func (b *Backend) StopLoopSound(h *sys.LoopHandle, fadeOut time.Duration) {
	if h.ID == 0 {
		return
	}
	// no real clock here, so the fade completes immediately
	b.audio.channels[h.ID-1] = nil
	h.ID = 0
}

func (b *Backend) Music(path string, fadeOut, fadeIn time.Duration) error {
	// the fade-out of the previous track resolves immediately
	b.audio.musicPath = path
	b.audio.musicFadeIn = fadeIn
	return nil
}

func (b *Backend) StopMusic(fadeOut time.Duration) error {
	b.audio.musicPath = ""
	b.audio.musicFadeIn = 0
	return nil
}

func (b *Backend) SetMusicVolume(v float32) {
	switch {
	case v < 0:
		v = 0
	case v > 1:
		v = 1
	}
	b.audio.musicVolume = v
}

func (b *Backend) MusicVolume() float32 { return b.audio.musicVolume }

// Channels snapshots the channels currently playing. One-shot sounds
// stay audible until the end of the frame; loops stay until stopped.
func (b *Backend) Channels() []Channel {
	var out []Channel
	for _, ch := range b.audio.channels {
		if ch != nil {
			out = append(out, *ch)
		}
	}
	return out
}

// MusicPlaying reports the current track, if any.
func (b *Backend) MusicPlaying() (string, bool) {
	return b.audio.musicPath, b.audio.musicPath != ""
}

// endFrame retires one-shot sounds.
func (a *audioState) endFrame() {
	for i, ch := range a.channels {
		if ch != nil && !ch.Looping {
			a.channels[i] = nil
		}
	}
}
