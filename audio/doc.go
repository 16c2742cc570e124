// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks shared by the
// codecs and the playback engine.
//
//   - Source and Decoder are the contracts every codec implements.
//   - Registry probes registered decoders in order, which is how raw
//     bytes are matched to a codec.
//   - Resampler and ChannelMapper adapt a Source to another rate or
//     channel layout; Conform chains them as needed.
//   - Queue plays several sources back to back and may be fed from one
//     goroutine while another reads it.
//   - PCM16Reader turns a Source into the signed 16-bit little-endian byte
//     stream consumed by output devices.
//
// A typical playback chain for a decoded file:
//
//	src, _ := registry.Decode(bytes.NewReader(data))
//	q := audio.NewQueue(44100, 2)
//	_ = q.Push(audio.Conform(src, 44100, 2))
//	pcm := audio.NewPCM16Reader(q)
//
// Samples are float32 values in [-1, 1], interleaved by channel:
//
//	[L0, R0, L1, R1, ...]
package audio
