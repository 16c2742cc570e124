// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/ik5/audplay/output"
)

// Config holds the output format and the initial global volume.
type Config struct {
	SampleRate int           `env:"AUDPLAY_SAMPLE_RATE, default=44100"`
	Channels   int           `env:"AUDPLAY_CHANNELS, default=2"`
	Buffer     time.Duration `env:"AUDPLAY_BUFFER, default=0"`
	Volume     float32       `env:"AUDPLAY_VOLUME, default=1"`
}

func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		Channels:   2,
		Volume:     1,
	}
}

// NewConfigFromEnv reads AUDPLAY_* variables from the environment.
func NewConfigFromEnv(ctx context.Context) (*Config, error) {
	return newConfig(ctx, envconfig.OsLookuper())
}

func newConfig(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects formats no device can open. Volume is clamped on use
// and never rejected.
func (c Config) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %d", ErrInvalidConfig, c.SampleRate)
	}
	if c.Channels <= 0 {
		return fmt.Errorf("%w: %d channels", ErrInvalidConfig, c.Channels)
	}
	if c.Buffer < 0 {
		return fmt.Errorf("%w: negative buffer %s", ErrInvalidConfig, c.Buffer)
	}

	return nil
}

func (c Config) outputOptions() output.Options {
	return output.Options{
		SampleRate: c.SampleRate,
		Channels:   c.Channels,
		BufferSize: c.Buffer,
	}
}
