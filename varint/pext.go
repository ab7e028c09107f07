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

// This file models the BMI2 PEXT/PDEP gather/scatter path in pure Go: a
// software bit-compaction primitive standing in for the PEXT instruction
// (and its inverse, PDEP), wired into gatherPayloadFn/spreadPayloadFn by
// dispatch.go's init() when the host advertises fast BMI2. A real SIMD
// build would replace pextSoftware64/pdepSoftware64 with the hardware
// instruction; the surrounding byte-splitting logic is unchanged either
// way.

// pextSoftware64 extracts the bits of x selected by mask into a
// contiguous low-order result, in the order the set bits of mask appear
// from low to high. This is PEXT's definition.
func pextSoftware64(x, mask uint64) uint64 {
	var res uint64
	var bb uint64 = 1
	for bit := uint(0); bit < 64; bit++ {
		m := uint64(1) << bit
		if mask&m != 0 {
			if x&m != 0 {
				res |= bb
			}
			bb <<= 1
		}
	}
	return res
}

// pdepSoftware64 is pextSoftware64's inverse: it deposits the low-order
// bits of x into the positions selected by mask, in order.
func pdepSoftware64(x, mask uint64) uint64 {
	var res uint64
	var bb uint64 = 1
	for bit := uint(0); bit < 64; bit++ {
		m := uint64(1) << bit
		if mask&m != 0 {
			if x&bb != 0 {
				res |= m
			}
			bb <<= 1
		}
	}
	return res
}

const pextByteMask = 0x7F7F7F7F7F7F7F7F

// gatherPayloadPEXT compacts the low 7 bits of each of 16 bytes with two
// PEXT calls, one per 8-byte half, and stitches the two 56-bit results
// into a single 64-bit value the same way a real BMI2 decoder would: low
// half occupies bits 0..55, high half's low 8 bits continue from bit 56.
// Bytes at or beyond the true length l that happen to be nonzero (as they
// can be inside a 16-byte batch view) are excluded by the final mask, so
// the result equals gatherPayloadPortable(src, l) for any l in 1..10.
func gatherPayloadPEXT(src []byte, l int) uint64 {
	var lo, hi uint64
	for i := 0; i < 8; i++ {
		lo |= uint64(src[i]) << uint(8*i)
	}
	for i := 0; i < 8; i++ {
		hi |= uint64(src[8+i]) << uint(8*i)
	}
	loBits := pextSoftware64(lo, pextByteMask)
	hiBits := pextSoftware64(hi, pextByteMask)
	full := loBits | (hiBits << 56)

	bitsNeeded := uint(l * 7)
	if bitsNeeded >= 64 {
		return full
	}
	return full & (uint64(1)<<bitsNeeded - 1)
}

// spreadPayloadPDEP is gatherPayloadPEXT's encode-side mirror: it deposits
// x's low 7*l bits back out into one 7-bit payload group per byte.
func spreadPayloadPDEP(x uint64, l int) [16]byte {
	lo := x & (uint64(1)<<56 - 1)
	hi := x >> 56

	loBytes := pdepSoftware64(lo, pextByteMask)
	hiBytes := pdepSoftware64(hi, pextByteMask)

	var buf [16]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(loBytes >> uint(8*i))
	}
	for i := 0; i < 8; i++ {
		buf[8+i] = byte(hiBytes >> uint(8*i))
	}
	_ = l
	return buf
}
