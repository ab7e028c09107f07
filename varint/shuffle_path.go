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

// gatherShuffleControl[l] is a static per-length shuffle control: source
// index i for positions 0..l-1 (the payload bytes, already contiguous in
// a single-value decode), zero-fill past l. An SSSE3/NEON build would
// issue one PSHUFB/TBL against this control before the mask-and-sum
// reduction; shuffleBytes is the scalar stand-in.
var gatherShuffleControl [11][16]byte

func init() {
	for l := 1; l <= 10; l++ {
		var ctrl [16]byte
		for i := 0; i < l; i++ {
			ctrl[i] = byte(i)
		}
		for i := l; i < 16; i++ {
			ctrl[i] = 255
		}
		gatherShuffleControl[l] = ctrl
	}
}

// gatherPayloadShuffle runs the shuffle-then-mask path wired in for
// builds with a byte-granularity shuffle instruction but no fast BMI2.
// gatherShuffleControl only has entries for l in 1..10 (MaxLen never
// exceeds 10 for a well-formed varint); l arrives unclamped from callers
// like decodeValueUnsafe that only bound it to 16, so a malformed or
// truncated input with no cleared continuation bit before byte 11 must be
// clamped here rather than indexed directly, the same way the portable and
// PEXT paths degrade without panicking on such input.
func gatherPayloadShuffle(src []byte, l int) uint64 {
	if l > 10 {
		l = 10
	}
	gathered := shuffleBytes(src[:16], gatherShuffleControl[l])
	return gatherPayloadPortable(gathered[:], l)
}

// spreadPayloadPortable spreads x's 7-bit groups into a 16-byte
// little-endian buffer, one byte per group, with no continuation bits
// set. encodeValue ORs in continuationPattern afterward.
func spreadPayloadPortable(x uint64, l int) [16]byte {
	var buf [16]byte
	for i := 0; i < l; i++ {
		buf[i] = byte(x>>uint(7*i)) & 0x7F
	}
	return buf
}
