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

// Zig-zag folds a signed integer onto the non-negative integers so that
// small-magnitude values (positive or negative) encode short: 0, -1, 1,
// -2, 2, ... map to 0, 1, 2, 3, 4, ...:
//
//	encode: (n << 1) ^ (n >> (W-1))
//	decode: (u >> 1) ^ -(u & 1), interpreted as signed
//
// The arithmetic right shift in the encoder broadcasts the sign bit across
// the whole width, which is what turns the XOR into "complement everything
// when n is negative".

func zigzagEncode8(n int8) uint8   { return uint8((n << 1) ^ (n >> 7)) }
func zigzagEncode16(n int16) uint16 { return uint16((n << 1) ^ (n >> 15)) }
func zigzagEncode32(n int32) uint32 { return uint32((n << 1) ^ (n >> 31)) }
func zigzagEncode64(n int64) uint64 { return uint64((n << 1) ^ (n >> 63)) }

func zigzagDecode8(u uint8) int8   { return int8(u>>1) ^ -int8(u&1) }
func zigzagDecode16(u uint16) int16 { return int16(u>>1) ^ -int16(u&1) }
func zigzagDecode32(u uint32) int32 { return int32(u>>1) ^ -int32(u&1) }
func zigzagDecode64(u uint64) int64 { return int64(u>>1) ^ -int64(u&1) }

// EncodeZigzagI8 zig-zag encodes n and then varint-encodes it at 8-bit
// width.
func EncodeZigzagI8(n int8) ([16]byte, int) { return encodeValue(zigzagEncode8(n)) }

// EncodeZigzagI16 zig-zag encodes n and then varint-encodes it at 16-bit
// width.
func EncodeZigzagI16(n int16) ([16]byte, int) { return encodeValue(zigzagEncode16(n)) }

// EncodeZigzagI32 zig-zag encodes n and then varint-encodes it at 32-bit
// width.
func EncodeZigzagI32(n int32) ([16]byte, int) { return encodeValue(zigzagEncode32(n)) }

// EncodeZigzagI64 zig-zag encodes n and then varint-encodes it at 64-bit
// width.
func EncodeZigzagI64(n int64) ([16]byte, int) { return encodeValue(zigzagEncode64(n)) }

// DecodeZigzagI8 decodes an 8-bit-width varint and reverses the zig-zag
// mapping.
func DecodeZigzagI8(src []byte) (int8, int, error) {
	u, n, err := decodeValue[uint8](src, W8)
	if err != nil {
		return 0, n, err
	}
	return zigzagDecode8(u), n, nil
}

// DecodeZigzagI16 decodes a 16-bit-width varint and reverses the zig-zag
// mapping.
func DecodeZigzagI16(src []byte) (int16, int, error) {
	u, n, err := decodeValue[uint16](src, W16)
	if err != nil {
		return 0, n, err
	}
	return zigzagDecode16(u), n, nil
}

// DecodeZigzagI32 decodes a 32-bit-width varint and reverses the zig-zag
// mapping.
func DecodeZigzagI32(src []byte) (int32, int, error) {
	u, n, err := decodeValue[uint32](src, W32)
	if err != nil {
		return 0, n, err
	}
	return zigzagDecode32(u), n, nil
}

// DecodeZigzagI64 decodes a 64-bit-width varint and reverses the zig-zag
// mapping.
func DecodeZigzagI64(src []byte) (int64, int, error) {
	u, n, err := decodeValue[uint64](src, W64)
	if err != nil {
		return 0, n, err
	}
	return zigzagDecode64(u), n, nil
}
