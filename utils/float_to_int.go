// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float32ToInt16 converts a normalized sample to 16-bit PCM.
// Values outside [-1, 1] are clipped.
func Float32ToInt16(x float32) int16 {
	switch {
	case x >= 1:
		return 32767
	case x <= -1:
		return -32767
	}

	return int16(x * 32767.0)
}

// PutInt16LE encodes src as little-endian 16-bit PCM into dst and returns
// the number of bytes written. dst must hold at least 2*len(src) bytes.
func PutInt16LE(dst []byte, src []float32) int {
	for i, x := range src {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(Float32ToInt16(x)))
	}

	return 2 * len(src)
}
