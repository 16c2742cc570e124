// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/formats/wav"
	"github.com/ik5/audplay/internal/audiotest"
)

var discard = slog.New(slog.DiscardHandler)

// wavBytes returns a stereo 44.1kHz WAV of the given length.
func wavBytes(t testing.TB, frames int) []byte {
	t.Helper()

	samples := make([]int16, frames*2)
	for i := range samples {
		samples[i] = int16(i % 1000)
	}

	buf := new(bytes.Buffer)
	if err := wav.WriteWAV16(buf, 44100, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}

	return buf.Bytes()
}

// countingAsset returns an asset backed by a synthetic decoder whose
// Decode calls are counted. Validation accounts for the first call.
func countingAsset(t testing.TB) (*Asset, *audiotest.CountingDecoder) {
	t.Helper()

	dec := audiotest.NewCountingDecoder(audiotest.FixedDecoder{
		New: func() audio.Source { return audiotest.NewSineSource(44100, 2, 4410, 440) },
	})

	a, err := FromBytesWith(dec, []byte("synthetic"))
	if err != nil {
		t.Fatalf("FromBytesWith() error = %v", err)
	}

	return a, dec
}

func newTestContext(t testing.TB, opts ...Option) (*Context, *audiotest.FakeDevice) {
	t.Helper()

	dev := audiotest.NewFakeDevice(44100, 2)
	c, err := New(append([]Option{WithDevice(dev), WithLogger(discard)}, opts...)...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })

	return c, dev
}

// flakyDecoder succeeds ok times, then fails.
type flakyDecoder struct {
	ok    int
	calls int
}

var errCorrupt = errors.New("corrupt frame")

func (f *flakyDecoder) Decode(r io.Reader) (audio.Source, error) {
	f.calls++
	if f.calls > f.ok {
		return nil, errCorrupt
	}
	return audiotest.NewSilentSource(8000, 1, 80), nil
}
