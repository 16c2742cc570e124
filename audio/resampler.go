// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audplay/utils"
)

// Resampler streams from src to a target sample rate using cubic
// interpolation over interleaved frames; the channel count is preserved.
//
// Output positions are tracked as integer ratios, so a source of N frames
// always yields ceil(N * dstRate / srcRate) frames. When downsampling a
// one-pole low-pass filter is applied to incoming frames.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int

	// win holds source frames base-1, base, base+1 and base+2.
	win  [4][]float32
	base int64
	k    int64 // output frames produced so far

	in       []float32
	inPos    int
	inLen    int
	read     int64 // real source frames consumed
	eof      bool
	primed   bool
	lowpass  bool
	filtered []float32
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:      src,
		srcRate:  int64(src.SampleRate()),
		dstRate:  int64(dstRate),
		channels: channels,
		in:       make([]float32, channels*1024),
		lowpass:  src.SampleRate() > dstRate,
		filtered: make([]float32, channels),
	}
	for i := range r.win {
		r.win[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// pull copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	for r.inPos+r.channels > r.inLen {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n-n%r.channels
		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}
	}

	frame := r.in[r.inPos : r.inPos+r.channels]
	r.inPos += r.channels
	r.read++

	if !r.lowpass {
		copy(dst, frame)
		return true, nil
	}

	if r.read == 1 {
		copy(r.filtered, frame)
	}
	for c, x := range frame {
		r.filtered[c] = 0.5*x + 0.5*r.filtered[c]
	}
	copy(dst, r.filtered)

	return true, nil
}

func (r *Resampler) prime() error {
	r.primed = true

	ok, err := r.pull(r.win[1])
	if err != nil || !ok {
		return err
	}
	copy(r.win[0], r.win[1])

	for i := 2; i < 4; i++ {
		ok, err := r.pull(r.win[i])
		if err != nil {
			return err
		}
		if !ok {
			copy(r.win[i], r.win[i-1])
		}
	}

	return nil
}

// shift moves the window forward by one source frame, repeating the last
// frame past the end of the stream.
func (r *Resampler) shift() error {
	r.win[0], r.win[1], r.win[2], r.win[3] = r.win[1], r.win[2], r.win[3], r.win[0]
	r.base++

	ok, err := r.pull(r.win[3])
	if err != nil {
		return err
	}
	if !ok {
		copy(r.win[3], r.win[2])
	}

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if r.srcRate == r.dstRate {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		num := r.k * r.srcRate
		idx := num / r.dstRate

		for r.base < idx {
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}

		if r.eof && idx >= r.read {
			if written == 0 {
				return 0, io.EOF
			}
			return written * r.channels, io.EOF
		}

		x := float32(num%r.dstRate) / float32(r.dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]
		for c := range out {
			out[c] = utils.CubicInterpolate(r.win[0][c], r.win[1][c], r.win[2][c], r.win[3][c], x)
		}

		written++
		r.k++
	}

	return written * r.channels, nil
}
