// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams of any channel count and sample rate. Samples are delivered as
// float32 in [-1.0, 1.0], interleaved in Vorbis channel order.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	switch {
//	case errors.Is(err, vorbis.ErrNotOggFile):
//	    // not an Ogg container
//	case errors.Is(err, vorbis.ErrInvalidVorbisStream):
//	    // Ogg, but not Vorbis (e.g. Opus)
//	}
package vorbis
