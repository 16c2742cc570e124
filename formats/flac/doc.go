// SPDX-License-Identifier: EPL-2.0

// Package flac provides FLAC decoding on top of github.com/mewkiz/flac.
//
// Frames are decoded one at a time and interleaved on the fly, so memory
// use is bounded by the largest frame block size. Any bit depth up to 32
// bits is normalized to float32 in [-1.0, 1.0].
//
//	src, err := flac.Decoder{}.Decode(file)
//	if errors.Is(err, flac.ErrNotFlacFile) {
//	    // try another decoder
//	}
package flac
