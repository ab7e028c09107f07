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

import "testing"

func packTwo(a, b []byte) []byte {
	var buf [16]byte
	copy(buf[:], a)
	copy(buf[len(a):], b)
	return buf[:]
}

func TestDecodeTwoU32(t *testing.T) {
	a, n1 := EncodeU32(300)
	b, n2 := EncodeU32(16384)
	src := packTwo(a[:n1], b[:n2])

	v1, v2, consumed, err := DecodeTwoU32(src)
	if err != nil {
		t.Fatalf("DecodeTwoU32 unexpected error: %v", err)
	}
	if v1 != 300 || v2 != 16384 {
		t.Errorf("DecodeTwoU32 = %d, %d, want 300, 16384", v1, v2)
	}
	if consumed != n1+n2 {
		t.Errorf("DecodeTwoU32 consumed %d, want %d", consumed, n1+n2)
	}
}

func TestDecodeFourU16(t *testing.T) {
	vals := [4]uint16{0, 1, 127, 200}
	var src [16]byte
	pos := 0
	for _, v := range vals {
		b, n := EncodeU16(v)
		copy(src[pos:], b[:n])
		pos += n
	}

	out, consumed, err := DecodeFourU16(src[:])
	if err != nil {
		t.Fatalf("DecodeFourU16 unexpected error: %v", err)
	}
	if out != vals {
		t.Errorf("DecodeFourU16 = %v, want %v", out, vals)
	}
	if consumed != pos {
		t.Errorf("DecodeFourU16 consumed %d, want %d", consumed, pos)
	}
}

func TestDecodeEightU8(t *testing.T) {
	vals := [8]uint8{0, 1, 127, 128, 255, 2, 3, 4}
	var src [16]byte
	pos := 0
	for _, v := range vals {
		b, n := EncodeU8(v)
		copy(src[pos:], b[:n])
		pos += n
	}

	out, count, consumed, err := DecodeEightU8(src[:])
	if err != nil {
		t.Fatalf("DecodeEightU8 unexpected error: %v", err)
	}
	if count != 8 || out != vals {
		t.Errorf("DecodeEightU8 = %v (count %d), want %v (count 8)", out, count, vals)
	}
	if consumed != pos {
		t.Errorf("DecodeEightU8 consumed %d, want %d", consumed, pos)
	}
}

func TestDecodeEightU8SaturatesOnOneByteValues(t *testing.T) {
	var src [16]byte // all zero bytes: sixteen valid 1-byte u8 zeros
	out, count, consumed, err := DecodeEightU8(src[:])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 8 || consumed != 8 {
		t.Errorf("count=%d consumed=%d, want 8 and 8", count, consumed)
	}
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %d, want 0", i, v)
		}
	}
}

func TestDecodeTwoU32ShortInput(t *testing.T) {
	_, _, _, err := DecodeTwoU32(make([]byte, 10))
	if err != ErrShortInput {
		t.Errorf("DecodeTwoU32 on a 10-byte slice = %v, want ErrShortInput", err)
	}
}
