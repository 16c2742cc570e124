// SPDX-License-Identifier: EPL-2.0

package output

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audplay/audio"
	"github.com/ik5/audplay/utils"
)

// oto only allows one context per process.
var (
	otoOnce sync.Once
	otoErr  error
	otoCtx  *oto.Context
	otoOpts Options

	otoMu   sync.Mutex
	otoRefs int
)

// Oto is the default output device backed by github.com/ebitengine/oto/v3.
type Oto struct {
	ctx        *oto.Context
	sampleRate int
	channels   int

	mu     sync.Mutex
	closed bool
}

// OpenDefault opens the system's default output. The first successful call
// fixes the device format for the process; later calls with a different
// format log a warning and share the existing one. Every call must be
// paired with Close.
func OpenDefault(opts Options) (*Oto, error) {
	opts = opts.withDefaults()

	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   opts.SampleRate,
			ChannelCount: opts.Channels,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   opts.BufferSize,
		}

		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			otoErr = fmt.Errorf("%w: failed to create oto context: %w", ErrNoDevice, err)
			return
		}
		<-ready

		otoCtx = ctx
		otoOpts = opts
		slog.Info("audio output opened", "sample_rate", opts.SampleRate, "channels", opts.Channels)
	})
	if otoErr != nil {
		return nil, otoErr
	}

	if opts.SampleRate != otoOpts.SampleRate || opts.Channels != otoOpts.Channels {
		slog.Warn("audio output already open with another format, reusing it",
			"requested_sample_rate", opts.SampleRate, "requested_channels", opts.Channels,
			"sample_rate", otoOpts.SampleRate, "channels", otoOpts.Channels)
	}

	otoMu.Lock()
	defer otoMu.Unlock()

	if otoRefs == 0 {
		if err := otoCtx.Resume(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoDevice, err)
		}
	}
	otoRefs++

	return &Oto{
		ctx:        otoCtx,
		sampleRate: otoOpts.SampleRate,
		channels:   otoOpts.Channels,
	}, nil
}

func (o *Oto) SampleRate() int { return o.sampleRate }
func (o *Oto) Channels() int   { return o.channels }

func (o *Oto) NewSink() Sink {
	return &otoSink{
		ctx:      o.ctx,
		rate:     o.sampleRate,
		channels: o.channels,
		queue:    audio.NewQueue(o.sampleRate, o.channels),
		gain:     1,
	}
}

// Close releases this handle. The shared context is suspended once the
// last handle is closed.
func (o *Oto) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.closed {
		return nil
	}
	o.closed = true

	otoMu.Lock()
	defer otoMu.Unlock()

	otoRefs--
	if otoRefs > 0 {
		return nil
	}

	slog.Info("audio output suspended")
	if err := o.ctx.Suspend(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// otoSink feeds one oto.Player from a queue of conformed sources.
type otoSink struct {
	ctx      *oto.Context
	rate     int
	channels int

	mu      sync.Mutex
	queue   *audio.Queue
	player  *oto.Player
	gain    float32
	paused  bool
	stopped bool
}

func (s *otoSink) Append(src audio.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return audio.ErrQueueClosed
	}

	if err := s.queue.Push(audio.Conform(src, s.rate, s.channels)); err != nil {
		return fmt.Errorf("%w", err)
	}

	if s.player == nil {
		s.player = s.ctx.NewPlayer(audio.NewPCM16Reader(s.queue))
		s.player.SetVolume(float64(s.gain))
	}

	return nil
}

func (s *otoSink) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.player == nil {
		return
	}
	s.paused = false
	s.player.Play()
}

func (s *otoSink) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || s.player == nil {
		return
	}
	s.paused = true
	s.player.Pause()
}

func (s *otoSink) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	s.paused = false

	if s.player != nil {
		s.player.Pause()
		_ = s.player.Close()
		s.player = nil
	}
	_ = s.queue.Close()
}

func (s *otoSink) SetGain(gain float32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gain = utils.ClampUnit(gain)
	if s.player != nil {
		s.player.SetVolume(float64(s.gain))
	}
}

func (s *otoSink) Gain() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gain
}

func (s *otoSink) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.player != nil && !s.paused && s.player.IsPlaying()
}

func (s *otoSink) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.player != nil && s.paused
}
