// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mewkiz/flac/frame"
)

// mockParser returns prepared frames, then err (io.EOF when nil).
type mockParser struct {
	frames []*frame.Frame
	err    error
}

func (m *mockParser) ParseNext() (*frame.Frame, error) {
	if len(m.frames) == 0 {
		if m.err != nil {
			return nil, m.err
		}
		return nil, io.EOF
	}

	f := m.frames[0]
	m.frames = m.frames[1:]
	return f, nil
}

func newFrame(channels ...[]int32) *frame.Frame {
	f := &frame.Frame{}
	for _, samples := range channels {
		f.Subframes = append(f.Subframes, &frame.Subframe{Samples: samples})
	}
	return f
}

func readAll(t *testing.T, src *source, size int) []float32 {
	t.Helper()

	var out []float32
	dst := make([]float32, size)
	for {
		n, err := src.ReadSamples(dst)
		out = append(out, dst[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestDecoder_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{"text", []byte("This is not FLAC data")},
		{"empty", nil},
		{"marker only", []byte("fLaC")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := (Decoder{}).Decode(bytes.NewReader(tt.data)); !errors.Is(err, ErrNotFlacFile) {
				t.Errorf("Decode() error = %v, want ErrNotFlacFile", err)
			}
		})
	}
}

func TestSource_InterleavesSubframes(t *testing.T) {
	t.Parallel()

	dec := &mockParser{frames: []*frame.Frame{
		newFrame([]int32{0, 16384}, []int32{-16384, 8192}),
		newFrame([]int32{-32768}, []int32{32767}),
	}}
	src := newSource(dec, 44100, 2, 16)

	got := readAll(t, src, 3*2)
	want := []float32{0, -0.5, 0.5, 0.25, -1, 32767.0 / 32768.0}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestSource_SmallReadsSpanFrames(t *testing.T) {
	t.Parallel()

	dec := &mockParser{frames: []*frame.Frame{
		newFrame([]int32{1, 2, 3}),
		newFrame([]int32{4, 5}),
		newFrame([]int32{}),
		newFrame([]int32{6}),
	}}
	src := newSource(dec, 8000, 1, 8)

	got := readAll(t, src, 2)
	want := []float32{1.0 / 128, 2.0 / 128, 3.0 / 128, 4.0 / 128, 5.0 / 128, 6.0 / 128}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestSource_BitDepthScale(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		bits  int
		value int32
	}{
		{8, 64},
		{12, 1024},
		{16, 16384},
		{20, 262144},
		{24, 4194304},
		{32, 1073741824},
	} {
		src := newSource(&mockParser{frames: []*frame.Frame{newFrame([]int32{tt.value})}}, 8000, 1, tt.bits)

		dst := make([]float32, 1)
		if _, err := src.ReadSamples(dst); err != nil {
			t.Fatalf("%d-bit: ReadSamples() error = %v", tt.bits, err)
		}
		if dst[0] != 0.5 {
			t.Errorf("%d-bit: got %v, want 0.5", tt.bits, dst[0])
		}
	}
}

func TestSource_ErrorAfterData(t *testing.T) {
	t.Parallel()

	boom := errors.New("crc mismatch")
	dec := &mockParser{frames: []*frame.Frame{newFrame([]int32{1, 2})}, err: boom}
	src := newSource(dec, 8000, 1, 16)

	dst := make([]float32, 8)
	if n, err := src.ReadSamples(dst); n != 2 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}
	for range 2 {
		if _, err := src.ReadSamples(dst); !errors.Is(err, boom) {
			t.Errorf("ReadSamples() error = %v, want %v", err, boom)
		}
	}
}

func TestSource_RejectsMismatchedFrames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		frame *frame.Frame
	}{
		{"wrong channel count", newFrame([]int32{1})},
		{"uneven subframes", newFrame([]int32{1, 2}, []int32{1})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := newSource(&mockParser{frames: []*frame.Frame{tt.frame}}, 8000, 2, 16)
			if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, ErrInvalidFrame) {
				t.Errorf("ReadSamples() error = %v, want ErrInvalidFrame", err)
			}
		})
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&mockParser{}, 96000, 6, 24)

	if src.SampleRate() != 96000 || src.Channels() != 6 {
		t.Errorf("format = %dHz/%dch, want 96000Hz/6ch", src.SampleRate(), src.Channels())
	}
	if src.BufSize() != 4096 {
		t.Errorf("BufSize() = %d, want 4096", src.BufSize())
	}
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
	if n, err := src.ReadSamples(make([]float32, 6)); n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() on empty stream = (%d, %v), want (0, EOF)", n, err)
	}
}
