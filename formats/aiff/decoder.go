// SPDX-License-Identifier: EPL-2.0

package aiff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/utils"
)

// aiffReader is an interface for aiff.Decoder to allow testing
type aiffReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// source wraps go-audio aiff.Decoder to implement audio.Source
type source struct {
	dec        aiffReader
	sampleRate int
	channels   int
	bitDepth   int
	intBuf     *goaudio.IntBuffer
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }
func (s *source) BufSize() int {
	if s.intBuf != nil {
		return cap(s.intBuf.Data)
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	if s.intBuf == nil || cap(s.intBuf.Data) < len(dst) {
		s.intBuf = &goaudio.IntBuffer{Data: make([]int, len(dst))}
	}
	s.intBuf.Data = s.intBuf.Data[:len(dst)]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if n == 0 {
		if err != nil && err != io.EOF {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	for i, v := range s.intBuf.Data[:n] {
		dst[i] = utils.IntToFloat32(v, s.bitDepth)
	}

	if err == io.EOF {
		return n, io.EOF
	}
	if err != nil {
		return n, fmt.Errorf("%w", err)
	}

	return n, nil
}

// Decoder reads uncompressed AIFF files with 8, 16, 24 or 32 bits per
// sample.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading aiff data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	if err := checkHeader(rs); err != nil {
		return nil, err
	}

	dec := aiff.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrNotAiffFile
	}
	dec.ReadInfo()

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	format := dec.Format()
	if format == nil || format.NumChannels < 1 {
		return nil, ErrUnsupportedAiffLayout
	}

	return &source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		bitDepth:   int(dec.BitDepth),
	}, nil
}

// checkHeader verifies the FORM/AIFF signature and rewinds rs. AIFF-C is
// refused since its samples may be compressed.
func checkHeader(rs io.ReadSeeker) error {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return ErrNotAiffFile
	}
	if !bytes.Equal(header[:4], []byte("FORM")) {
		return ErrNotAiffFile
	}

	switch string(header[8:12]) {
	case "AIFF":
	case "AIFC":
		return fmt.Errorf("%w: AIFF-C", ErrUnsupportedAiffLayout)
	default:
		return ErrNotAiffFile
	}

	if err := checkChunks(rs, start+12); err != nil {
		return err
	}

	if _, err := rs.Seek(start, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// checkChunks walks the chunk headers from pos to the end of rs and
// rejects any chunk that declares more bytes than remain.
func checkChunks(rs io.ReadSeeker, pos int64) error {
	end, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	hdr := make([]byte, 8)
	for end-pos >= int64(len(hdr)) {
		if _, err := rs.Seek(pos, io.SeekStart); err != nil {
			return fmt.Errorf("%w", err)
		}
		if _, err := io.ReadFull(rs, hdr); err != nil {
			return fmt.Errorf("%w: %w", ErrNotAiffFile, err)
		}
		pos += int64(len(hdr))

		size := int64(binary.BigEndian.Uint32(hdr[4:]))
		if size > end-pos {
			return fmt.Errorf("%w: %q chunk of %d bytes, %d left", ErrNotAiffFile, hdr[:4], size, end-pos)
		}

		pos += size + size%2
	}

	return nil
}
