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

// padded16 pads b to a 16-byte view, the fixed window every decoder in
// this package requires.
func padded16(b ...byte) []byte {
	var buf [16]byte
	copy(buf[:], b)
	return buf[:]
}

func TestDecodeU8(t *testing.T) {
	cases := []struct {
		src     []byte
		want    uint8
		wantLen int
	}{
		{padded16(0x00), 0, 1},
		{padded16(0x7F), 127, 1},
		{padded16(0x80, 0x01), 128, 2},
		{padded16(0xFF, 0x01), 255, 2},
	}
	for _, c := range cases {
		got, n, err := DecodeU8(c.src)
		if err != nil {
			t.Errorf("DecodeU8(%x) unexpected error: %v", c.src[:2], err)
			continue
		}
		if got != c.want || n != c.wantLen {
			t.Errorf("DecodeU8(%x) = %d, %d, want %d, %d", c.src[:2], got, n, c.want, c.wantLen)
		}
	}
}

func TestDecodeU8Overflow(t *testing.T) {
	// Three continuation bytes exceed MaxLen(W8) = 2.
	_, _, err := DecodeU8(padded16(0x80, 0x80, 0x01))
	if err != ErrOverflow {
		t.Errorf("DecodeU8 on a 3-byte u8 encoding = %v, want ErrOverflow", err)
	}
}

func TestDecodeU8TerminalOverflow(t *testing.T) {
	// MaxLen(W8) = 2; terminal byte may carry only 1 payload bit. 0x02 in
	// the second byte sets bit 1, which is forbidden.
	_, _, err := DecodeU8(padded16(0x80, 0x02))
	if err != ErrOverflow {
		t.Errorf("DecodeU8(80 02) = %v, want ErrOverflow", err)
	}
}

func TestDecodeU32(t *testing.T) {
	cases := []struct {
		src     []byte
		want    uint32
		wantLen int
	}{
		{padded16(0xAC, 0x02), 300, 2},
		{padded16(0xFF, 0x7F), 16383, 2},
		{padded16(0x80, 0x80, 0x01), 16384, 3},
	}
	for _, c := range cases {
		got, n, err := DecodeU32(c.src)
		if err != nil {
			t.Errorf("DecodeU32(%x) unexpected error: %v", c.src[:3], err)
			continue
		}
		if got != c.want || n != c.wantLen {
			t.Errorf("DecodeU32(%x) = %d, %d, want %d, %d", c.src[:3], got, n, c.want, c.wantLen)
		}
	}
}

func TestDecodeU16TerminalOverflow(t *testing.T) {
	// MaxLen(W16) = 3; terminal byte may carry only 2 payload bits. Bit 2
	// set in the third byte overflows.
	_, _, err := DecodeU16(padded16(0xFF, 0xFF, 0x04))
	if err != ErrOverflow {
		t.Errorf("DecodeU16(FF FF 04) = %v, want ErrOverflow", err)
	}
}

func TestDecodeShortInput(t *testing.T) {
	_, _, err := DecodeU32(make([]byte, 4))
	if err != ErrShortInput {
		t.Errorf("DecodeU32 on a 4-byte slice = %v, want ErrShortInput", err)
	}
}

func TestOverlongEncodingAccepted(t *testing.T) {
	// Zero payload groups before the terminator are overlong but valid.
	got, n, err := DecodeU32(padded16(0x80, 0x80, 0x00))
	if err != nil {
		t.Fatalf("unexpected error on overlong encoding: %v", err)
	}
	if got != 0 || n != 3 {
		t.Errorf("overlong zero decoded as %d, %d bytes, want 0, 3", got, n)
	}
}

func TestRoundTripAllWidths(t *testing.T) {
	u8s := []uint8{0, 1, 127, 128, 255}
	for _, v := range u8s {
		buf, n := EncodeU8(v)
		got, m, err := DecodeU8(buf[:])
		if err != nil || got != v || m != n {
			t.Errorf("u8 round-trip of %d: got %d, %d, %v", v, got, m, err)
		}
	}

	u16s := []uint16{0, 1, 16383, 16384, 65535}
	for _, v := range u16s {
		buf, n := EncodeU16(v)
		got, m, err := DecodeU16(buf[:])
		if err != nil || got != v || m != n {
			t.Errorf("u16 round-trip of %d: got %d, %d, %v", v, got, m, err)
		}
	}

	u32s := []uint32{0, 300, 16383, 16384, 1 << 21, ^uint32(0)}
	for _, v := range u32s {
		buf, n := EncodeU32(v)
		got, m, err := DecodeU32(buf[:])
		if err != nil || got != v || m != n {
			t.Errorf("u32 round-trip of %d: got %d, %d, %v", v, got, m, err)
		}
	}

	u64s := []uint64{0, 1, 1 << 63, ^uint64(0)}
	for _, v := range u64s {
		buf, n := EncodeU64(v)
		got, m, err := DecodeU64(buf[:])
		if err != nil || got != v || m != n {
			t.Errorf("u64 round-trip of %d: got %d, %d, %v", v, got, m, err)
		}
	}
}

func TestUnsafeMatchesSafeOnWellFormedInput(t *testing.T) {
	for _, v := range []uint32{0, 300, 16384, ^uint32(0)} {
		buf, _ := EncodeU32(v)
		safe, safeLen, err := DecodeU32(buf[:])
		if err != nil {
			t.Fatalf("DecodeU32(%d) unexpected error: %v", v, err)
		}
		unsafe, unsafeLen := DecodeU32Unsafe(buf[:])
		if safe != unsafe || safeLen != unsafeLen {
			t.Errorf("DecodeU32Unsafe(%d) = %d, %d, want %d, %d", v, unsafe, unsafeLen, safe, safeLen)
		}
	}
}

func FuzzEncodeDecodeU32(f *testing.F) {
	f.Add(uint32(0))
	f.Add(uint32(300))
	f.Add(^uint32(0))
	f.Fuzz(func(t *testing.T, v uint32) {
		buf, n := EncodeU32(v)
		got, m, err := DecodeU32(buf[:])
		if err != nil {
			t.Fatalf("DecodeU32 failed to decode its own encoding of %d: %v", v, err)
		}
		if got != v || m != n {
			t.Fatalf("round-trip mismatch for %d: got %d (len %d), want %d (len %d)", v, got, m, v, n)
		}
	})
}

func FuzzEncodeDecodeU64(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1) << 63)
	f.Add(^uint64(0))
	f.Fuzz(func(t *testing.T, v uint64) {
		buf, n := EncodeU64(v)
		got, m, err := DecodeU64(buf[:])
		if err != nil {
			t.Fatalf("DecodeU64 failed to decode its own encoding of %d: %v", v, err)
		}
		if got != v || m != n {
			t.Fatalf("round-trip mismatch for %d: got %d (len %d), want %d (len %d)", v, got, m, v, n)
		}
	})
}
