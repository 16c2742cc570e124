// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MPEG-1 and
// MPEG-2 Layer III streams. go-mp3 always produces interleaved stereo, so
// mono files are reported as two identical channels.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	if errors.Is(err, mp3.ErrNotMp3File) {
//	    // no MPEG frame found
//	}
//
// MP3 has no container signature; the decoder scans for a frame sync word.
// When probing unknown data, try stricter formats first.
package mp3
