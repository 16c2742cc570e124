// SPDX-License-Identifier: EPL-2.0

package audplay

import (
	"log/slog"

	"github.com/ik5/audplay/output"
)

type options struct {
	dev    output.Device
	logger *slog.Logger
	cfg    Config
}

// Option configures a Context.
type Option func(*options)

// WithDevice plays through dev instead of the default output. The
// Context does not close it.
func WithDevice(dev output.Device) Option {
	return func(o *options) {
		o.dev = dev
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConfig sets the default device format and the initial global volume.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}
