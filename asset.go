// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/formats"
)

// detector is implemented by *audio.Registry.
type detector interface {
	Detect(r io.Reader) (string, audio.Source, error)
	Get(format string) (audio.Decoder, bool)
}

// Asset is a validated, immutable encoded sound. It is safe to share
// between goroutines and instances.
type Asset struct {
	data       []byte
	dec        audio.Decoder
	format     string
	sampleRate int
	channels   int
}

// FromBytes validates data with the bundled codecs and keeps a private
// copy of it.
func FromBytes(data []byte) (*Asset, error) {
	return FromBytesWith(formats.Default(), data)
}

// FromBytesWith validates data with dec. Validation decodes once and
// discards the result; playback decodes again from the stored bytes.
func FromBytesWith(dec audio.Decoder, data []byte) (*Asset, error) {
	if dec == nil {
		return nil, &DecodeError{Err: ErrNoDecoder}
	}
	if len(data) == 0 {
		return nil, &DecodeError{Err: ErrEmptyData}
	}

	a := &Asset{
		data: bytes.Clone(data),
		dec:  dec,
	}

	var (
		src audio.Source
		err error
	)

	if reg, ok := dec.(detector); ok {
		a.format, src, err = reg.Detect(bytes.NewReader(a.data))
		if err == nil {
			// Later decodes skip probing.
			if codec, ok := reg.Get(a.format); ok {
				a.dec = codec
			}
		}
	} else {
		src, err = dec.Decode(bytes.NewReader(a.data))
	}
	if err != nil {
		return nil, &DecodeError{Err: err}
	}

	a.sampleRate = src.SampleRate()
	a.channels = src.Channels()
	_ = src.Close()

	return a, nil
}

// ReadFile loads and validates an audio file from disk.
func ReadFile(path string) (*Asset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return FromBytes(data)
}

// Len returns the size of the encoded data in bytes.
func (a *Asset) Len() int { return len(a.data) }

func (a *Asset) SampleRate() int { return a.sampleRate }
func (a *Asset) Channels() int   { return a.channels }

// Format returns the detected codec name, or "" when a custom decoder was
// used.
func (a *Asset) Format() string { return a.format }

// Open starts an independent decode of the asset.
func (a *Asset) Open() (audio.Source, error) {
	src, err := a.dec.Decode(bytes.NewReader(a.data))
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return src, nil
}
