// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"sync"
)

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved float32 samples in [-1,1].
	// Returns number of float32 values written (not frames). When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []float32) (n int, err error)

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry holds decoders by format key (e.g., "wav", "mp3", "vorbis").
// Formats are probed in registration order, so register the strictest
// containers first and loosely framed codecs such as MP3 last.
type Registry struct {
	codecs map[string]Decoder
	order  []string

	mtx *sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.RWMutex{},
	}
}

// Register adds d under format. Re-registering a format replaces the
// decoder and keeps its probe position.
func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if _, ok := r.codecs[format]; !ok {
		r.order = append(r.order, format)
	}
	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	d, ok := r.codecs[format]
	return d, ok
}

// Formats returns the registered format keys in probe order.
func (r *Registry) Formats() []string {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return slices.Clone(r.order)
}

// Decode implements Decoder by probing every registered format.
func (r *Registry) Decode(rd io.Reader) (Source, error) {
	_, src, err := r.Detect(rd)
	return src, err
}

// Detect tries each registered decoder in order and returns the first
// format that accepts the stream. The reader is rewound between attempts;
// readers that cannot seek are buffered in memory first.
func (r *Registry) Detect(rd io.Reader) (string, Source, error) {
	rs, ok := rd.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(rd)
		if err != nil {
			return "", nil, fmt.Errorf("reading audio data: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	start, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return "", nil, fmt.Errorf("%w", err)
	}

	r.mtx.RLock()
	order := slices.Clone(r.order)
	codecs := make([]Decoder, len(order))
	for i, format := range order {
		codecs[i] = r.codecs[format]
	}
	r.mtx.RUnlock()

	var errs []error
	for i, format := range order {
		if _, err := rs.Seek(start, io.SeekStart); err != nil {
			return "", nil, fmt.Errorf("%w", err)
		}

		src, err := codecs[i].Decode(rs)
		if err == nil {
			return format, src, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", format, err))
	}

	if len(errs) == 0 {
		return "", nil, ErrUnsupportedFormat
	}
	return "", nil, fmt.Errorf("%w: %w", ErrUnsupportedFormat, errors.Join(errs...))
}
