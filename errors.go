// SPDX-License-Identifier: EPL-2.0

package audplay

import "errors"

var (
	// ErrInternalDecode is wrapped by the panic raised when an asset that
	// passed validation fails to decode at play time.
	ErrInternalDecode = errors.New("audplay: validated asset failed to decode")

	// ErrEmptyData is wrapped by the DecodeError returned for empty input.
	ErrEmptyData = errors.New("audplay: empty audio data")

	// ErrNoDecoder is wrapped by the DecodeError returned for a nil decoder.
	ErrNoDecoder = errors.New("audplay: no decoder")

	// ErrInvalidConfig is returned when configuration values are out of range.
	ErrInvalidConfig = errors.New("audplay: invalid config")
)

// DecodeError reports bytes that no decoder accepted.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "audplay: cannot decode audio: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DeviceError reports that no output device could be opened.
type DeviceError struct {
	Err error
}

func (e *DeviceError) Error() string {
	return "audplay: cannot open output device: " + e.Err.Error()
}

func (e *DeviceError) Unwrap() error { return e.Err }
