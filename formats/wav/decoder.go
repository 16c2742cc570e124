// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/utils"
)

const (
	formatPCM        = 1
	formatExtensible = 0xFFFE
)

// pcmReader is an interface for gowav.Decoder to allow testing
type pcmReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

type source struct {
	dec        pcmReader
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
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		return 0, io.EOF
	}

	// 8-bit WAV is unsigned.
	if s.bitDepth == 8 {
		for i, v := range s.intBuf.Data[:n] {
			dst[i] = utils.IntToFloat32(v-128, 8)
		}
	} else {
		for i, v := range s.intBuf.Data[:n] {
			dst[i] = utils.IntToFloat32(v, s.bitDepth)
		}
	}

	if err != nil {
		return n, fmt.Errorf("%w", err)
	}
	return n, nil
}

// Decoder reads integer PCM WAV files with 8, 16, 24 or 32 bits per
// sample.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	// go-audio requires io.ReadSeeker
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	if err := checkHeader(rs); err != nil {
		return nil, err
	}

	dec := gowav.NewDecoder(rs)
	if !dec.IsValidFile() {
		return nil, ErrUnsupportedWavLayout
	}

	if dec.WavAudioFormat != formatPCM && dec.WavAudioFormat != formatExtensible {
		return nil, fmt.Errorf("%w: format tag %#x", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	switch dec.BitDepth {
	case 8, 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, dec.BitDepth)
	}

	if dec.NumChans == 0 {
		return nil, ErrInvalidChannels
	}

	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
	}

	return &source{
		dec:        dec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
		bitDepth:   int(dec.BitDepth),
	}, nil
}

// checkHeader verifies the RIFF/WAVE signature and rewinds rs.
func checkHeader(rs io.ReadSeeker) error {
	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	header := make([]byte, 12)
	if _, err := io.ReadFull(rs, header); err != nil {
		return ErrNotWavFile
	}
	if !bytes.Equal(header[:4], []byte("RIFF")) || !bytes.Equal(header[8:12], []byte("WAVE")) {
		return ErrNotWavFile
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
// rejects any chunk that declares more bytes than remain. go-audio sizes
// its buffers from these headers.
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
			return fmt.Errorf("%w: %w", ErrUnsupportedWavLayout, err)
		}
		pos += int64(len(hdr))

		size := int64(binary.LittleEndian.Uint32(hdr[4:]))
		if size > end-pos {
			return fmt.Errorf("%w: %q chunk of %d bytes, %d left", ErrUnsupportedWavLayout, hdr[:4], size, end-pos)
		}

		// chunks are padded to an even size
		pos += size + size%2
	}

	return nil
}
