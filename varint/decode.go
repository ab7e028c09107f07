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

// continuationMask16 computes the 16-bit continuation-bit mask of a 16-byte
// view: bit i is the top bit of src[i]. This is the scalar equivalent of
// the "byte-wise top-bit mask" a SIMD MOVMSK/comparison would produce.
func continuationMask16(src []byte) uint16 {
	var m uint16
	for i := 0; i < 16; i++ {
		if src[i]&0x80 != 0 {
			m |= 1 << uint(i)
		}
	}
	return m
}

// decodeLength derives L from a continuation mask: the index of the
// lowest cleared bit, plus one.
func decodeLength(mask uint16) int {
	return bits.TrailingZeros16(^mask) + 1
}

// decodeValue is the safe single-value decoder shared by every width.
// src must be at least 16 bytes (callers with a shorter tail must copy
// into a zero-padded [16]byte scratch first).
func decodeValue[T uintWidth](src []byte, w Width) (T, int, error) {
	if len(src) < 16 {
		return 0, 0, ErrShortInput
	}

	mask := continuationMask16(src)
	l := decodeLength(mask)

	ml := maxLen(w)
	if l > ml {
		return 0, 0, ErrOverflow
	}
	if l == ml && src[l-1]&overflowMask(w) != 0 {
		return 0, 0, ErrOverflow
	}

	return T(gatherPayload(src, l)), l, nil
}

// decodeValueUnsafe skips both the length and terminal-overflow checks.
// src must still be at least 16 bytes; the caller alone is responsible for
// the varint being well-formed and not truncated. Behavior on malformed
// input is unspecified but never reads outside src[:16].
func decodeValueUnsafe[T uintWidth](src []byte, w Width) (T, int) {
	_ = w
	mask := continuationMask16(src)
	l := decodeLength(mask)
	if l > 16 {
		l = 16
	}
	return T(gatherPayload(src, l)), l
}

// gatherPayload masks off the continuation bit of each of the first l
// bytes and sums the 7-bit groups into a dense little-endian integer,
// dispatching to whichever of the portable byte loop, the BMI2 PEXT path,
// or the SSSE3 shuffle-then-mask path this build selected; all three are
// defined to agree bit-for-bit.
func gatherPayload(src []byte, l int) uint64 {
	return gatherPayloadFn(src, l)
}

// gatherPayloadPortable is the scalar fallback gatherPayload always has
// available, and the one every alternate path is checked against.
func gatherPayloadPortable(src []byte, l int) uint64 {
	var x uint64
	for i := 0; i < l; i++ {
		x |= uint64(src[i]&0x7F) << uint(7*i)
	}
	return x
}

// DecodeU8 decodes an 8-bit-width varint from a 16-byte view.
func DecodeU8(src []byte) (uint8, int, error) { return decodeValue[uint8](src, W8) }

// DecodeU8Unsafe decodes without validating length or terminal overflow.
func DecodeU8Unsafe(src []byte) (uint8, int) { return decodeValueUnsafe[uint8](src, W8) }

// DecodeU16 decodes a 16-bit-width varint from a 16-byte view.
func DecodeU16(src []byte) (uint16, int, error) { return decodeValue[uint16](src, W16) }

// DecodeU16Unsafe decodes without validating length or terminal overflow.
func DecodeU16Unsafe(src []byte) (uint16, int) { return decodeValueUnsafe[uint16](src, W16) }

// DecodeU17 decodes an over-long u16 (17-bit width) varint from a 16-byte
// view. See W17's doc comment for when this width applies.
func DecodeU17(src []byte) (uint32, int, error) { return decodeValue[uint32](src, W17) }

// DecodeU17Unsafe decodes without validating length or terminal overflow.
func DecodeU17Unsafe(src []byte) (uint32, int) { return decodeValueUnsafe[uint32](src, W17) }

// DecodeU32 decodes a 32-bit-width varint from a 16-byte view.
func DecodeU32(src []byte) (uint32, int, error) { return decodeValue[uint32](src, W32) }

// DecodeU32Unsafe decodes without validating length or terminal overflow.
func DecodeU32Unsafe(src []byte) (uint32, int) { return decodeValueUnsafe[uint32](src, W32) }

// DecodeU64 decodes a 64-bit-width varint from a 16-byte view.
func DecodeU64(src []byte) (uint64, int, error) { return decodeValue[uint64](src, W64) }

// DecodeU64Unsafe decodes without validating length or terminal overflow.
func DecodeU64Unsafe(src []byte) (uint64, int) { return decodeValueUnsafe[uint64](src, W64) }
