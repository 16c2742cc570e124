// SPDX-License-Identifier: EPL-2.0

package output

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestOptions_WithDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Options
		want Options
	}{
		{"zero value", Options{}, Options{SampleRate: 44100, Channels: 2}},
		{"keeps explicit format", Options{SampleRate: 48000, Channels: 1}, Options{SampleRate: 48000, Channels: 1}},
		{"negative values", Options{SampleRate: -1, Channels: -2, BufferSize: -time.Second}, Options{SampleRate: 44100, Channels: 2}},
		{"keeps buffer", Options{BufferSize: 50 * time.Millisecond}, Options{SampleRate: 44100, Channels: 2, BufferSize: 50 * time.Millisecond}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, tt.in.withDefaults()); diff != "" {
				t.Errorf("withDefaults() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	got := DefaultOptions()
	if got.SampleRate != 44100 || got.Channels != 2 || got.BufferSize != 0 {
		t.Errorf("DefaultOptions() = %+v", got)
	}
}
