// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"io"
	"sync"
	"sync/atomic"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/output"
	"github.com/ik5/audplay/utils"
)

// FakeDevice is an in-memory output.Device. Its sinks never play audio;
// tests end playback explicitly with FakeSink.Drain.
type FakeDevice struct {
	sampleRate int
	channels   int

	mu     sync.Mutex
	sinks  []*FakeSink
	closes int
}

var _ output.Device = (*FakeDevice)(nil)

func NewFakeDevice(sampleRate, channels int) *FakeDevice {
	return &FakeDevice{
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (d *FakeDevice) SampleRate() int { return d.sampleRate }
func (d *FakeDevice) Channels() int   { return d.channels }

func (d *FakeDevice) NewSink() output.Sink {
	s := &FakeSink{gain: 1}

	d.mu.Lock()
	d.sinks = append(d.sinks, s)
	d.mu.Unlock()

	return s
}

// Sinks returns every sink created so far, oldest first.
func (d *FakeDevice) Sinks() []*FakeSink {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*FakeSink, len(d.sinks))
	copy(out, d.sinks)

	return out
}

// LastSink returns the most recently created sink or nil.
func (d *FakeDevice) LastSink() *FakeSink {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.sinks) == 0 {
		return nil
	}
	return d.sinks[len(d.sinks)-1]
}

func (d *FakeDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closes++
	return nil
}

// Closes reports how many times Close was called.
func (d *FakeDevice) Closes() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.closes
}

// FakeSink records what was done to it.
type FakeSink struct {
	mu      sync.Mutex
	sources []audio.Source
	gain    float32
	started bool
	paused  bool
	stopped bool
	drained bool
	plays   int
}

var _ output.Sink = (*FakeSink)(nil)

func (s *FakeSink) Append(src audio.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return audio.ErrQueueClosed
	}
	s.sources = append(s.sources, src)

	return nil
}

func (s *FakeSink) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.plays++
	s.started = true
	s.paused = false
}

func (s *FakeSink) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || !s.started {
		return
	}
	s.paused = true
}

func (s *FakeSink) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	s.paused = false
	for _, src := range s.sources {
		_ = src.Close()
	}
}

func (s *FakeSink) SetGain(gain float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gain = utils.ClampUnit(gain)
}

func (s *FakeSink) Gain() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gain
}

func (s *FakeSink) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.started && !s.paused && !s.stopped && !s.drained
}

func (s *FakeSink) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.paused && !s.stopped
}

// Stopped reports whether Stop was called.
func (s *FakeSink) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.stopped
}

// Plays reports how many times Play was called on a live sink.
func (s *FakeSink) Plays() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.plays
}

// Appended returns the number of appended sources.
func (s *FakeSink) Appended() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sources)
}

// Drain reads every appended source to the end, as a device would, and
// returns the number of samples consumed. The sink is inactive afterwards.
func (s *FakeSink) Drain() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	buf := make([]float32, 4096)

	for _, src := range s.sources {
		for {
			n, err := src.ReadSamples(buf)
			total += n
			if err == io.EOF {
				break
			}
			if err != nil {
				return total, err
			}
		}
		_ = src.Close()
	}
	s.sources = nil
	s.drained = true

	return total, nil
}

// CountingDecoder wraps a decoder and counts Decode calls.
type CountingDecoder struct {
	audio.Decoder
	calls atomic.Int64
}

func NewCountingDecoder(dec audio.Decoder) *CountingDecoder {
	return &CountingDecoder{Decoder: dec}
}

func (c *CountingDecoder) Decode(r io.Reader) (audio.Source, error) {
	c.calls.Add(1)
	return c.Decoder.Decode(r)
}

// Calls returns the number of Decode calls so far.
func (c *CountingDecoder) Calls() int {
	return int(c.calls.Load())
}

// FixedDecoder ignores its input and returns a fresh source from New.
// Inputs starting with Reject fail with ErrRejected.
type FixedDecoder struct {
	New    func() audio.Source
	Reject []byte
}

func (f FixedDecoder) Decode(r io.Reader) (audio.Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 || (len(f.Reject) > 0 && bytes.HasPrefix(data, f.Reject)) {
		return nil, ErrRejected
	}

	return f.New(), nil
}
