// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/ik5/audplay/output"
	"github.com/ik5/audplay/utils"
)

// openDefault is replaced in tests.
var openDefault = func(opts output.Options) (output.Device, error) {
	dev, err := output.OpenDefault(opts)
	if err != nil {
		return nil, err
	}
	return dev, nil
}

// Context owns the output device and the global volume. It keeps a
// non-owning list of the instances it created so volume changes reach
// them while they play. Call Tick regularly, e.g. once per frame, to
// forget dropped instances and finished one-shot sounds.
type Context struct {
	mu       sync.Mutex
	dev      output.Device
	ownsDev  bool
	log      *slog.Logger
	volume   float32
	registry registry
	detached []output.Sink
	closed   bool
}

// New opens the default output device unless WithDevice is given.
// Failure is reported as *DeviceError.
func New(opts ...Option) (*Context, error) {
	o := options{
		logger: slog.Default(),
		cfg:    DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		dev:    o.dev,
		log:    o.logger,
		volume: utils.ClampUnit(o.cfg.Volume),
	}

	if c.dev == nil {
		if err := o.cfg.Validate(); err != nil {
			return nil, &DeviceError{Err: err}
		}

		dev, err := openDefault(o.cfg.outputOptions())
		if err != nil {
			return nil, &DeviceError{Err: err}
		}
		c.dev = dev
		c.ownsDev = true
	}

	c.log.Info("audio context ready",
		"sample_rate", c.dev.SampleRate(), "channels", c.dev.Channels(), "volume", c.volume)

	return c, nil
}

// Instance creates a stopped instance of a bound to this context's device
// and current volume. On a closed context the instance is already closed.
func (c *Context) Instance(a *Asset) *Instance {
	c.mu.Lock()
	defer c.mu.Unlock()

	inst := newInstance(a, c.dev, c.volume, c.log)
	if c.closed {
		inst.Close()
		return inst
	}
	c.registry.add(inst)

	return inst
}

// Play starts a one-shot playback of a at the current global volume. It
// cannot be controlled and later volume changes do not affect it.
func (c *Context) Play(a *Asset) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	src, err := a.Open()
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInternalDecode, err)
		c.log.Error("cannot decode asset", "format", a.Format(), "error", err)
		panic(err)
	}

	sink := c.dev.NewSink()
	sink.SetGain(c.volume)
	if err := sink.Append(src); err != nil {
		_ = src.Close()
		sink.Stop()
		c.log.Error("cannot queue audio", "error", err)
		return
	}
	sink.Play()

	c.detached = append(c.detached, sink)
}

// Tick forgets collected or closed instances and finished one-shot sounds.
func (c *Context) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	pruned := c.registry.prune()

	before := len(c.detached)
	c.detached = slices.DeleteFunc(c.detached, func(s output.Sink) bool {
		if s.Active() {
			return false
		}
		s.Stop()
		return true
	})

	if pruned > 0 || before != len(c.detached) {
		c.log.Debug("audio context pruned",
			"instances", pruned, "one_shots", before-len(c.detached), "registered", c.registry.len())
	}
}

// Volume returns the global volume.
func (c *Context) Volume() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.volume
}

// SetVolume sets the global volume, clamped to [0, 1], and applies it to
// every live instance. Entries of dropped instances are skipped, not
// removed.
func (c *Context) SetVolume(v float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.volume = utils.ClampUnit(v)
	c.registry.each(func(inst *Instance) {
		inst.setGlobal(c.volume)
	})
}

// Registered returns the number of registry entries, including dropped
// instances not yet pruned by Tick.
func (c *Context) Registered() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.registry.len()
}

// OneShots returns the number of one-shot sounds started by Play that
// Tick has not yet released.
func (c *Context) OneShots() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.detached)
}

// Close stops one-shot sounds, closes every live instance and closes the
// device if New opened it. Instances created afterwards are closed from
// the start.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	for _, s := range c.detached {
		s.Stop()
	}
	c.detached = nil

	c.registry.each(func(inst *Instance) {
		inst.Close()
	})
	c.registry.prune()

	if !c.ownsDev {
		return nil
	}

	c.log.Info("audio context closed")
	if err := c.dev.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
