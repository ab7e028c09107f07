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

// Package varint provides SIMD-flavored LEB128 (Protocol Buffers style)
// variable-length integer encoding and decoding.
//
// A varint packs an unsigned integer into one to ten little-endian 7-bit
// groups. Every byte but the last has its top bit ("continuation") set;
// the terminal byte has it clear. Signed values are carried through a
// zig-zag mapping before encoding so that small-magnitude negative numbers
// stay short.
//
// The package is a pure function library: no allocation, no I/O, no mutable
// state beyond the read-only lookup tables built once at init(). All decode
// entry points read a fixed 16-byte window (pad short tails yourself) and
// the batch decoders consume two, four, or eight adjacent varints per call;
// the two- and four-way decoders use the shuffle/dispatch tables described
// in tables.go, the eight-way u8 decoder a byte loop.
//
// Basic usage:
//
//	buf, n := varint.EncodeU32(300)
//	v, n, err := varint.DecodeU32(buf[:])
//
//	v1, v2, n, err := varint.DecodeTwoU32(buf[:])
//	vals, n, err := varint.DecodeFourU16(buf[:])
package varint
