// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// run executes the root command. Commands share flag state, so tests in
// this package do not run in parallel.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestToneProbeConvert(t *testing.T) {
	dir := t.TempDir()
	tone := filepath.Join(dir, "tone.wav")
	conv := filepath.Join(dir, "conv.wav")

	out, err := run(t, "tone", "--rate", "8000", "--channels", "1", "--duration", "100ms", "-o", tone)
	if err != nil {
		t.Fatalf("tone error = %v", err)
	}
	if want := tone + ": 800 frames at 8000 Hz\n"; out != want {
		t.Errorf("tone output = %q, want %q", out, want)
	}

	out, err = run(t, "probe", tone)
	if err != nil {
		t.Fatalf("probe error = %v", err)
	}
	if !strings.Contains(out, "wav 8000 Hz, 1 channels") {
		t.Errorf("probe output = %q", out)
	}

	out, err = run(t, "convert", "--rate", "16000", "--channels", "2", tone, conv)
	if err != nil {
		t.Fatalf("convert error = %v", err)
	}
	if want := conv + ": 1600 frames at 16000 Hz, 2 channels\n"; out != want {
		t.Errorf("convert output = %q, want %q", out, want)
	}

	out, err = run(t, "probe", conv)
	if err != nil {
		t.Fatalf("probe error = %v", err)
	}
	if !strings.Contains(out, "wav 16000 Hz, 2 channels, 6444 bytes") {
		t.Errorf("probe output = %q", out)
	}
}

func TestProbe_Garbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.bin")
	if err := os.WriteFile(path, []byte("definitely not audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "probe", path)
	if err == nil {
		t.Fatal("probe accepted garbage")
	}
	if !strings.HasPrefix(out, path+": ") {
		t.Errorf("probe output = %q", out)
	}
}

func TestTone_RequiresOutput(t *testing.T) {
	if _, err := run(t, "tone", "-o", ""); err == nil {
		t.Fatal("tone without -o succeeded")
	}
}

func TestSineTone(t *testing.T) {
	samples := sineTone(1000, 1, 4000, 2, 10*time.Millisecond)

	if len(samples) != 80 {
		t.Fatalf("len = %d, want 80", len(samples))
	}
	// 1 kHz at 4 kHz: 0, peak, 0, trough.
	for i, want := range []int16{0, 32767, 0, -32767} {
		got := samples[i*2]
		if d := int(got) - int(want); d < -1 || d > 1 {
			t.Errorf("frame %d = %d, want %d", i, got, want)
		}
		if samples[i*2+1] != got {
			t.Errorf("frame %d channels differ", i)
		}
	}
}
