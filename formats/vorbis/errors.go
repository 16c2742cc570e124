// SPDX-License-Identifier: EPL-2.0

package vorbis

import "errors"

var (
	// ErrNotOggFile indicates the input does not start with an Ogg page
	ErrNotOggFile = errors.New("not an Ogg file")

	// ErrInvalidVorbisStream indicates an Ogg stream that is not valid Vorbis
	ErrInvalidVorbisStream = errors.New("invalid Vorbis stream")
)
