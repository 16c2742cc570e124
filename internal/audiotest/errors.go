// SPDX-License-Identifier: EPL-2.0

package audiotest

import "errors"

// ErrRejected is returned by FixedDecoder for input it refuses.
var ErrRejected = errors.New("audiotest: rejected input")
