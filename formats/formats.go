// SPDX-License-Identifier: EPL-2.0

// Package formats wires every bundled codec into an audio.Registry.
package formats

import (
	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/formats/aiff"
	"github.com/ik5/audplay/formats/flac"
	"github.com/ik5/audplay/formats/mp3"
	"github.com/ik5/audplay/formats/vorbis"
	"github.com/ik5/audplay/formats/wav"
)

// Format keys, in probe order.
const (
	WAV    = "wav"
	AIFF   = "aiff"
	FLAC   = "flac"
	Vorbis = "vorbis"
	MP3    = "mp3"
)

// NewRegistry returns a registry with every bundled codec registered.
// Containers with a fixed signature are probed first and MP3, which only
// has a frame sync word, last.
func NewRegistry() *audio.Registry {
	r := audio.NewRegistry()

	r.Register(WAV, wav.Decoder{})
	r.Register(AIFF, aiff.Decoder{})
	r.Register(FLAC, flac.Decoder{})
	r.Register(Vorbis, vorbis.Decoder{})
	r.Register(MP3, mp3.Decoder{})

	return r
}

var defaultRegistry = NewRegistry()

// Default returns the shared registry. Registering on it affects every
// caller in the process.
func Default() *audio.Registry {
	return defaultRegistry
}
