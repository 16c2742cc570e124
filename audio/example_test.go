// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/internal/audiotest"
)

func countSamples(src audio.Source) int {
	buf := make([]float32, 4096)
	total := 0

	for {
		n, err := src.ReadSamples(buf)
		total += n
		if err != nil {
			return total
		}
	}
}

// Example_resampler demonstrates how to use the Resampler to change sample rates.
func Example_resampler() {
	source := audiotest.NewSineSource(44100, 1, 44100, 440.0) // 1 second, 440Hz tone
	resampler := audio.NewResampler(source, 16000)

	fmt.Printf("Output sample rate: %d Hz\n", resampler.SampleRate())
	fmt.Printf("Channels: %d\n", resampler.Channels())
	fmt.Printf("Total samples read: %d\n", countSamples(resampler))
	// Output:
	// Output sample rate: 16000 Hz
	// Channels: 1
	// Total samples read: 16000
}

// Example_conform converts a 5.1 source to the layout of a stereo device.
func Example_conform() {
	source := audiotest.NewConstantSource(48000, 6, 48000, 0.5)
	out := audio.Conform(source, 44100, 2)

	fmt.Printf("%d Hz, %d channels\n", out.SampleRate(), out.Channels())
	fmt.Printf("Frames: %d\n", countSamples(out)/out.Channels())
	// Output:
	// 44100 Hz, 2 channels
	// Frames: 44100
}

// Example_queue plays two sounds back to back.
func Example_queue() {
	q := audio.NewQueue(8000, 1)
	_ = q.Push(audiotest.NewSilentSource(8000, 1, 100))
	_ = q.Push(audiotest.NewSilentSource(8000, 1, 50))

	fmt.Printf("Queued: %d\n", q.Len())
	fmt.Printf("Samples: %d\n", countSamples(q))
	fmt.Printf("Queued after drain: %d\n", q.Len())
	// Output:
	// Queued: 2
	// Samples: 150
	// Queued after drain: 0
}

// Example_pcm16Reader encodes samples for an output device.
func Example_pcm16Reader() {
	source := audiotest.NewConstantSource(8000, 1, 2, 0.5)
	data, _ := io.ReadAll(audio.NewPCM16Reader(source))

	fmt.Printf("% x\n", data)
	// Output:
	// ff 3f ff 3f
}
