// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package varint

import "math/bits"

// uintWidth is the constraint shared by every concrete encode/decode entry
// point; each one is a thin wrapper around a width-generic internal.
type uintWidth interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// continuationPattern[l] has 0x80 set in positions 0..l-2 and zero
// elsewhere, for l in 1..10: a continuation mask precomputed and keyed by
// L, playing the same role a static SIMD blend vector would in a
// shuffle-based encoder.
var continuationPattern [11][16]byte

func init() {
	for l := 1; l <= 10; l++ {
		for i := 0; i < l-1; i++ {
			continuationPattern[l][i] = 0x80
		}
	}
}

// encodeLength returns max(1, ceil(bitLen/7)).
func encodeLength(bitLen int) int {
	l := (bitLen + 6) / 7
	if l < 1 {
		l = 1
	}
	return l
}

// encodeValue spreads v's 7-bit groups into a 16-byte little-endian buffer
// and ORs in the continuation bits, returning the written length. It never
// fails: every T is bounded to at most 10 groups.
func encodeValue[T uintWidth](v T) ([16]byte, int) {
	x := uint64(v)
	bitLen := bits.Len64(x)
	if bitLen == 0 {
		bitLen = 1
	}
	l := encodeLength(bitLen)

	buf := spreadPayloadFn(x, l)
	pattern := continuationPattern[l]
	for i := 0; i < l; i++ {
		buf[i] |= pattern[i]
	}
	return buf, l
}

// EncodeU8 encodes v as an 8-bit-width varint. Returns the 16-byte buffer
// and the number of leading bytes written; bytes at positions >= n are
// zero.
func EncodeU8(v uint8) ([16]byte, int) { return encodeValue(v) }

// EncodeU16 encodes v as a 16-bit-width varint.
func EncodeU16(v uint16) ([16]byte, int) { return encodeValue(v) }

// EncodeU17 encodes v (which must fit in 17 bits) using the over-long u16
// width. Values outside [0, 1<<17) still encode, but will not round-trip
// through DecodeU17, which enforces the 17-bit terminal overflow mask.
func EncodeU17(v uint32) ([16]byte, int) { return encodeValue(v) }

// EncodeU32 encodes v as a 32-bit-width varint.
func EncodeU32(v uint32) ([16]byte, int) { return encodeValue(v) }

// EncodeU64 encodes v as a 64-bit-width varint.
func EncodeU64(v uint64) ([16]byte, int) { return encodeValue(v) }
