// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"

	"github.com/ik5/audplay/utils"
)

// PCM16Reader exposes a Source as an io.Reader of interleaved signed
// 16-bit little-endian PCM, the byte layout expected by output devices.
// Reads always return whole frames.
type PCM16Reader struct {
	src Source
	buf []float32
	err error
}

func NewPCM16Reader(src Source) *PCM16Reader {
	return &PCM16Reader{
		src: src,
		buf: make([]float32, 4096),
	}
}

func (r *PCM16Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if len(p) == 0 {
		return 0, nil
	}

	channels := r.src.Channels()
	samples := len(p) / 2
	samples -= samples % channels
	if samples == 0 {
		return 0, io.ErrShortBuffer
	}

	if cap(r.buf) < samples {
		r.buf = make([]float32, samples)
	}

	n, err := r.src.ReadSamples(r.buf[:samples])
	n -= n % channels
	written := utils.PutInt16LE(p, r.buf[:n])

	if err != nil {
		r.err = err
		if written > 0 {
			return written, nil
		}
		return 0, err
	}

	return written, nil
}
