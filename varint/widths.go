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

// Width is the compile-time-selected integer width a codec entry point
// operates at. The zero value is not a valid width.
type Width int

const (
	// W8 is the width used by EncodeU8/DecodeU8.
	W8 Width = 8
	// W16 is the width used by EncodeU16/DecodeU16.
	W16 Width = 16
	// W17 is the "over-long u16" width: it accepts three-byte encodings
	// whose terminal payload carries up to 3 bits (vs. 2 for W16), the
	// shape produced when an int32 is sign-extended to 64 bits and then
	// zig-zag encoded before a narrower decoder reads it back.
	W17 Width = 17
	// W32 is the width used by EncodeU32/DecodeU32.
	W32 Width = 32
	// W64 is the width used by EncodeU64/DecodeU64.
	W64 Width = 64
)

// maxLen returns MaxLen(W) = ceil(W/7), the maximum number of bytes a
// varint of width w may occupy. Implemented as the standard integer
// ceiling-division identity floor((w+6)/7) to avoid a float conversion.
func maxLen(w Width) int {
	return (int(w) + 6) / 7
}

// terminalPayloadBits returns the number of low bits of the terminal byte's
// 7-bit payload that are legitimately part of the value when the encoding
// uses the maximum length for w. Payload bits at or above this position
// must be zero in a well-formed, non-overflowing encoding.
func terminalPayloadBits(w Width) int {
	ml := maxLen(w)
	return int(w) - 7*(ml-1)
}

// overflowMask returns the mask of payload bits (within the low 7 bits of a
// byte) that are forbidden in the terminal byte of a maximum-length
// encoding of width w. A nonzero AND against this mask is Overflow.
func overflowMask(w Width) byte {
	bits := terminalPayloadBits(w)
	if bits >= 7 {
		return 0
	}
	return 0x7F &^ ((1 << uint(bits)) - 1)
}
