// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audplay/audio"
)

var oggMagic = []byte("OggS")

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	bufSize    int
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int    { return s.bufSize }

// ReadSamples decodes straight into dst. oggvorbis counts interleaved
// values, not frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) - len(dst)%s.channels
	if want == 0 {
		return 0, audio.ErrInvalidDstSize
	}

	n, err := read(s.dec, dst[:want])
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("%w", err)
	}

	return n, err
}

// read calls r.Read, reporting a panic inside the decoder on a corrupt
// packet as ErrInvalidVorbisStream.
func read(r oggReader, dst []float32) (n int, err error) {
	defer func() {
		if p := recover(); p != nil {
			n, err = 0, fmt.Errorf("%w: %v", ErrInvalidVorbisStream, p)
		}
	}()

	return r.Read(dst)
}

// newReader wraps oggvorbis.NewReader; malformed headers can make it panic.
func newReader(r io.Reader) (dec *oggvorbis.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			dec, err = nil, fmt.Errorf("%w: %v", ErrInvalidVorbisStream, p)
		}
	}()

	dec, err = oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidVorbisStream, err)
	}

	return dec, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(len(oggMagic))
	if err != nil || !bytes.Equal(magic, oggMagic) {
		return nil, ErrNotOggFile
	}

	dec, err := newReader(br)
	if err != nil {
		return nil, err
	}
	if dec.Channels() < 1 {
		return nil, ErrInvalidVorbisStream
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		bufSize:    4096,
	}, nil
}
