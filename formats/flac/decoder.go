// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/audplay/audio"
)

var flacMagic = []byte("fLaC")

// frameParser is an interface for flac.Stream to allow testing
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	dec        frameParser
	sampleRate int
	channels   int
	scale      float32

	// pending holds decoded, interleaved samples not yet returned.
	pending []int32
	pos     int
	err     error
}

func newSource(dec frameParser, sampleRate, channels, bitDepth int) *source {
	return &source{
		dec:        dec,
		sampleRate: sampleRate,
		channels:   channels,
		scale:      1 / float32(int64(1)<<(bitDepth-1)),
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return max(cap(s.pending), 4096) }

// fill decodes the next frame into pending.
func (s *source) fill() error {
	f, err := s.dec.ParseNext()
	if err != nil {
		return err
	}
	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%w: %d subframes, stream has %d channels", ErrInvalidFrame, len(f.Subframes), s.channels)
	}

	frames := len(f.Subframes[0].Samples)
	for _, sub := range f.Subframes[1:] {
		if len(sub.Samples) != frames {
			return fmt.Errorf("%w: uneven subframe lengths", ErrInvalidFrame)
		}
	}

	need := frames * s.channels
	if cap(s.pending) < need {
		s.pending = make([]int32, need)
	}
	s.pending = s.pending[:need]
	s.pos = 0

	for c, sub := range f.Subframes {
		for i, v := range sub.Samples {
			s.pending[i*s.channels+c] = v
		}
	}

	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if s.pos >= len(s.pending) {
			if s.err != nil {
				break
			}
			if err := s.fill(); err != nil {
				s.err = err
				break
			}
			continue
		}

		n := min(len(dst)-written, len(s.pending)-s.pos)
		for i, v := range s.pending[s.pos : s.pos+n] {
			dst[written+i] = float32(v) * s.scale
		}
		written += n
		s.pos += n
	}

	if written > 0 {
		return written, nil
	}
	if s.err == io.EOF {
		return 0, io.EOF
	}

	return 0, fmt.Errorf("%w", s.err)
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(len(flacMagic))
	if err != nil || !bytes.Equal(magic, flacMagic) {
		return nil, ErrNotFlacFile
	}

	stream, err := flac.New(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFlacFile, err)
	}

	info := stream.Info
	if info.BitsPerSample == 0 || info.BitsPerSample > 32 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, info.BitsPerSample)
	}

	return newSource(stream, int(info.SampleRate), int(info.NChannels), int(info.BitsPerSample)), nil
}
