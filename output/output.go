// SPDX-License-Identifier: EPL-2.0

package output

import (
	"errors"
	"time"

	"github.com/ik5/audplay/audio"
)

// ErrNoDevice is returned when no default output device can be opened.
var ErrNoDevice = errors.New("no audio output device")

// Device is an opened output that hands out sinks.
type Device interface {
	// SampleRate and Channels describe the format sinks are mixed at.
	SampleRate() int
	Channels() int
	// NewSink creates an idle sink attached to the device.
	NewSink() Sink
	Close() error
}

// Sink is a single playback voice. Appended sources play back to back once
// Play is called. Implementations are safe for concurrent use.
type Sink interface {
	Append(src audio.Source) error
	Play()
	Pause()
	// Stop ends playback and releases queued sources. A stopped sink stays
	// stopped.
	Stop()
	SetGain(gain float32)
	Gain() float32
	// Active reports whether the sink is started, not paused and still has
	// audio to play.
	Active() bool
	Paused() bool
}

// Options configures the default device.
type Options struct {
	SampleRate int
	Channels   int
	// BufferSize is the device buffer length; zero keeps the driver default.
	BufferSize time.Duration
}

// DefaultOptions is CD quality stereo.
func DefaultOptions() Options {
	return Options{
		SampleRate: 44100,
		Channels:   2,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.SampleRate <= 0 {
		o.SampleRate = def.SampleRate
	}
	if o.Channels <= 0 {
		o.Channels = def.Channels
	}
	if o.BufferSize < 0 {
		o.BufferSize = 0
	}

	return o
}
