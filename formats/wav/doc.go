// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV decoding and a minimal 16-bit WAV writer.
//
// Decoding uses github.com/go-audio/wav. Integer PCM with 8, 16, 24 or 32
// bits per sample is supported, both plain and WAVE_FORMAT_EXTENSIBLE
// headers, with any channel count and sample rate. Samples are delivered
// as float32 in [-1.0, 1.0].
//
//	src, err := wav.Decoder{}.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // try another format
//	}
//
// The decoder needs an io.ReadSeeker; other readers are buffered in memory.
//
// WriteWAV16 emits a canonical 44-byte header followed by interleaved
// little-endian samples:
//
//	err := wav.WriteWAV16(out, 44100, 2, samples)
package wav
