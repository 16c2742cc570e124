// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"fmt"
	"io"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/utils"
)

// RenderPCM16 converts src to sampleRate and channels and collects the
// whole stream as interleaved 16-bit PCM. bufferSize is the number of
// samples read per call; values below one frame use 4096.
//
// The result is held in memory, so this is meant for short sounds such as
// offline conversion, not playback.
func RenderPCM16(src audio.Source, sampleRate, channels, bufferSize int) ([]int16, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, fmt.Errorf("%w: %dHz/%dch", ErrInvalidConfig, sampleRate, channels)
	}

	out := audio.Conform(src, sampleRate, channels)
	defer out.Close()

	if bufferSize < channels {
		bufferSize = 4096
	}
	bufferSize -= bufferSize % channels

	pcm16 := make([]int16, 0, sampleRate*channels)
	buf := make([]float32, bufferSize)

	for {
		n, err := out.ReadSamples(buf)
		for _, x := range buf[:n] {
			pcm16 = append(pcm16, utils.Float32ToInt16(x))
		}

		if err == io.EOF {
			return pcm16, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}
}
