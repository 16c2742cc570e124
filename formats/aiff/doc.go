// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files.
// AIFF is Apple's uncompressed PCM container; samples are big-endian and
// the sample rate is stored as an 80-bit float, both handled by the
// decoder.
//
// # Supported Formats
//
//   - AIFF with 8, 16, 24 or 32-bit signed PCM
//   - Any channel count and sample rate
//
// AIFF-C files are rejected with ErrUnsupportedAiffLayout.
//
// # Decoding
//
//	src, err := aiff.Decoder{}.Decode(file)
//	if errors.Is(err, aiff.ErrNotAiffFile) {
//	    // not AIFF, try another decoder
//	}
//
// The decoder needs an io.ReadSeeker; other readers are read fully into
// memory first.
package aiff
