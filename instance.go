// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/ik5/audplay/output"
	"github.com/ik5/audplay/utils"
)

// playback is the mutable state of an Instance. It never points back at
// the Instance, so the cleanup attached to the Instance can use it.
type playback struct {
	mu     sync.Mutex
	volume float32
	global float32
	sink   output.Sink
	closed bool
}

// release stops the sink for good.
func (pb *playback) release() {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	pb.closed = true
	if pb.sink != nil {
		pb.sink.Stop()
		pb.sink = nil
	}
}

// Instance is one controllable playback of an Asset. A fresh instance is
// stopped at full volume. All methods are safe for concurrent use; copies
// of the pointer share one state. When the last reference is garbage
// collected the sound stops.
type Instance struct {
	id    uuid.UUID
	asset *Asset
	dev   output.Device
	log   *slog.Logger
	pb    *playback
}

func newInstance(a *Asset, dev output.Device, global float32, log *slog.Logger) *Instance {
	id := uuid.New()

	inst := &Instance{
		id:    id,
		asset: a,
		dev:   dev,
		log:   log.With("instance", id.String()),
		pb: &playback{
			volume: 1,
			global: global,
		},
	}
	runtime.AddCleanup(inst, func(pb *playback) { pb.release() }, inst.pb)

	return inst
}

// ID identifies the instance in logs.
func (i *Instance) ID() string { return i.id.String() }

// Play starts playback from the beginning, or resumes a paused instance
// where it left off. It does nothing while already playing.
func (i *Instance) Play() {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	i.play()
}

func (i *Instance) play() {
	pb := i.pb
	if pb.closed {
		return
	}

	if pb.sink != nil {
		switch {
		case pb.sink.Paused():
			pb.sink.Play()
			i.log.Debug("instance resumed")
			return
		case pb.sink.Active():
			return
		}

		// drained on its own
		pb.sink.Stop()
		pb.sink = nil
	}

	src, err := i.asset.Open()
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrInternalDecode, err)
		i.log.Error("cannot decode asset", "format", i.asset.Format(), "error", err)
		panic(err)
	}

	sink := i.dev.NewSink()
	sink.SetGain(pb.volume * pb.global)
	if err := sink.Append(src); err != nil {
		_ = src.Close()
		sink.Stop()
		i.log.Error("cannot queue audio", "error", err)
		return
	}
	sink.Play()
	pb.sink = sink

	i.log.Debug("instance playing", "gain", pb.volume*pb.global)
}

// Stop ends playback. The next Play starts from the beginning.
func (i *Instance) Stop() {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	i.stop()
}

func (i *Instance) stop() {
	pb := i.pb
	if pb.sink == nil {
		return
	}

	pb.sink.Stop()
	pb.sink = nil
	i.log.Debug("instance stopped")
}

// Pause holds playback at its current position. Stopped or already
// paused instances are left alone.
func (i *Instance) Pause() {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	if i.pb.sink != nil && i.pb.sink.Active() {
		i.pb.sink.Pause()
		i.log.Debug("instance paused")
	}
}

// TogglePlay stops a playing instance and plays any other.
func (i *Instance) TogglePlay() {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	if i.isPlaying() {
		i.stop()
		return
	}
	i.play()
}

func (i *Instance) IsPlaying() bool {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	return i.isPlaying()
}

func (i *Instance) isPlaying() bool {
	return i.pb.sink != nil && i.pb.sink.Active()
}

func (i *Instance) IsPaused() bool {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	return i.pb.sink != nil && i.pb.sink.Paused()
}

// Volume returns the instance's own volume, without the global factor.
func (i *Instance) Volume() float32 {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	return i.pb.volume
}

// SetVolume sets the instance volume, clamped to [0, 1]. The sink gain
// becomes volume times the context volume.
func (i *Instance) SetVolume(v float32) {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	i.pb.volume = utils.ClampUnit(v)
	i.applyGain()
}

func (i *Instance) setGlobal(v float32) {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	i.pb.global = v
	i.applyGain()
}

func (i *Instance) applyGain() {
	if i.pb.sink != nil {
		i.pb.sink.SetGain(i.pb.volume * i.pb.global)
	}
}

// Close stops playback for good. Later calls on the instance do nothing
// and the owning Context forgets it on the next Tick.
func (i *Instance) Close() {
	i.pb.release()
	i.log.Debug("instance closed")
}

func (i *Instance) isClosed() bool {
	i.pb.mu.Lock()
	defer i.pb.mu.Unlock()

	return i.pb.closed
}
