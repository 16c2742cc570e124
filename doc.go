// SPDX-License-Identifier: EPL-2.0

// Package audplay is a small playback engine for interactive programs.
//
// An Asset holds encoded audio that has been validated once. A Context owns
// the output device and a global volume, and creates any number of
// Instances of an asset. Every instance plays, pauses and stops on its own
// and carries its own volume; what reaches the device is the instance
// volume multiplied by the global one.
//
// # Quick Start
//
//	ctx, err := audplay.New()
//	if err != nil {
//		// *audplay.DeviceError
//	}
//	defer ctx.Close()
//
//	a, err := audplay.ReadFile("jump.ogg")
//	if err != nil {
//		// *audplay.DecodeError
//	}
//
//	music := ctx.Instance(a)
//	music.SetVolume(0.6)
//	music.Play()
//
//	ctx.Play(a) // one-shot, not controllable
//
//	for running {
//		ctx.Tick()
//		// draw a frame ...
//	}
//
// # Volume
//
// Volumes are clamped to [0, 1]. Context.SetVolume reaches every instance
// that is still alive, immediately and including playing ones. One-shot
// sounds started with Context.Play keep the global volume they started
// with.
//
// # Lifetime
//
// The context does not keep instances alive. Once the last reference to an
// instance is dropped, its playback is stopped by the garbage collector
// and the next Tick removes it from the registry. Tick also releases
// finished one-shot sounds, so call it regularly, e.g. once per frame.
//
// # Formats
//
// FromBytes probes WAV, AIFF, FLAC, Ogg Vorbis and MP3, in that order,
// using the decoders in formats. FromBytesWith takes any audio.Decoder.
//
// # Concurrency
//
// Assets are immutable and may be shared. Instance and Context methods are
// safe for concurrent use and never block on audio output.
package audplay
