// SPDX-License-Identifier: EPL-2.0

package mp3

import "errors"

// ErrNotMp3File indicates no MPEG audio frame could be decoded
var ErrNotMp3File = errors.New("not an MP3 file")
