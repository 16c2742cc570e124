// SPDX-License-Identifier: EPL-2.0

package audio

// Conform adapts src to the given sample rate and channel count, returning
// src unchanged when it already matches. Downmixing happens before
// resampling and upmixing after it, so the resampler always works on the
// narrower layout.
func Conform(src Source, sampleRate, channels int) Source {
	out := src

	if channels < out.Channels() {
		out = NewChannelMapper(out, channels)
	}
	if sampleRate != out.SampleRate() {
		out = NewResampler(out, sampleRate)
	}
	if channels != out.Channels() {
		out = NewChannelMapper(out, channels)
	}

	return out
}
