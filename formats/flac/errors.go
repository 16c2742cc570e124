// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var (
	// ErrNotFlacFile indicates the input does not start with the fLaC marker
	ErrNotFlacFile = errors.New("not a FLAC file")

	// ErrUnsupportedBitDepth indicates a sample size above 32 bits
	ErrUnsupportedBitDepth = errors.New("unsupported FLAC bit depth")

	// ErrInvalidFrame indicates a frame whose channel layout disagrees with the stream
	ErrInvalidFrame = errors.New("invalid FLAC frame")
)
