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

// decodeTwoGeneric decodes two adjacent varints from one 16-byte view via
// a single mask lookup, a shuffle, and a masked reduction.
//
// SHUFFLE_2's lanes only reserve 8 bytes each, so the fast path
// applies whenever both lengths fit in a lane (true for every width up to
// and including u32, whose MaxLen is 5). A u64 pair where either value
// needs 9 or 10 bytes falls outside what an 8-byte lane can hold; those
// rare values are still decoded correctly, just via the same direct
// gather decodeValue uses rather than the shuffle table.
func decodeTwoGeneric[T uintWidth](src []byte, w Width) (v1, v2 T, consumed int, err error) {
	if len(src) < 16 {
		return 0, 0, 0, ErrShortInput
	}

	mask := continuationMask16(src)
	entry := table2[mask&0x3FF]
	l1, l2 := entry.L1, entry.L2
	if entry.NeedsRecheck {
		l1 = decodeLength(mask)
		l2 = decodeLength(mask >> uint(min(l1, 16)))
	}

	ml := maxLen(w)
	if l1 > ml || l2 > ml || l1+l2 > 16 {
		return 0, 0, 0, ErrOverflow
	}
	if l1 == ml && src[l1-1]&overflowMask(w) != 0 {
		return 0, 0, 0, ErrOverflow
	}
	if l2 == ml && src[l1+l2-1]&overflowMask(w) != 0 {
		return 0, 0, 0, ErrOverflow
	}

	var x1, x2 uint64
	if l1 <= 8 && l2 <= 8 {
		ctrl := shuffle2[shuffle2Index(l1, l2)]
		gathered := shuffleBytes(src[:16], ctrl)
		for i := 0; i < l1; i++ {
			x1 |= uint64(gathered[i]&0x7F) << uint(7*i)
		}
		for i := 0; i < l2; i++ {
			x2 |= uint64(gathered[8+i]&0x7F) << uint(7*i)
		}
	} else {
		x1 = gatherPayload(src, l1)
		x2 = gatherPayload(src[l1:], l2)
	}

	return T(x1), T(x2), l1 + l2, nil
}

// DecodeTwoU32 decodes two adjacent 32-bit-width varints from a 16-byte
// view, e.g. a freq/norm pair in a posting list.
func DecodeTwoU32(src []byte) (v1, v2 uint32, consumed int, err error) {
	return decodeTwoGeneric[uint32](src, W32)
}

// DecodeTwoU64 decodes two adjacent 64-bit-width varints from a 16-byte
// view.
func DecodeTwoU64(src []byte) (v1, v2 uint64, consumed int, err error) {
	return decodeTwoGeneric[uint64](src, W64)
}

// decodeFourGeneric segments four adjacent varints from one 16-byte view
// via a 12-bit mask dispatch into TABLE_4/SHUFFLE_4. Because SHUFFLE_4
// saturates every length to 3 bytes so four lanes fit in 16 bytes, a value whose real length
// exceeds 3 bytes sets the record's invalid bit and the whole batch
// reports Overflow — callers expecting wider values (e.g. u32 values at or
// above 1<<21) must fall back to DecodeU32 in a loop for that batch.
func decodeFourGeneric[T uintWidth](src []byte, w Width) (out [4]T, consumed int, err error) {
	if len(src) < 16 {
		return out, 0, ErrShortInput
	}

	mask := continuationMask16(src)
	entry := table4[mask&0xFFF]
	if entry.Invalid {
		return out, 0, ErrOverflow
	}

	ml := maxLen(w)
	for _, li := range entry.L {
		if li > ml {
			return out, 0, ErrOverflow
		}
	}

	ctrl := shuffle4[entry.Index]
	gathered := shuffleBytes(src[:16], ctrl)

	total := 0
	for k := 0; k < 4; k++ {
		li := entry.L[k]
		if li == ml && gathered[4*k+li-1]&overflowMask(w) != 0 {
			return out, 0, ErrOverflow
		}
		var x uint64
		for i := 0; i < li; i++ {
			x |= uint64(gathered[4*k+i]&0x7F) << uint(7*i)
		}
		out[k] = T(x)
		total += li
	}
	return out, total, nil
}

// DecodeFourU16 decodes four adjacent 16-bit-width varints from a 16-byte
// view.
func DecodeFourU16(src []byte) (out [4]uint16, consumed int, err error) {
	return decodeFourGeneric[uint16](src, W16)
}

// DecodeFourU32 decodes four adjacent 32-bit-width varints from a 16-byte
// view. See decodeFourGeneric's doc comment for the 3-byte-per-lane limit.
func DecodeFourU32(src []byte) (out [4]uint32, consumed int, err error) {
	return decodeFourGeneric[uint32](src, W32)
}

// DecodeEightU8 decodes up to eight 8-bit-width varints from a 16-byte
// view: each byte is
// either a complete 1-byte u8 varint (top bit clear) or the first byte of
// a 2-byte varint whose second byte terminates it. Decoding stops after 8
// values (the batch saturates) or at the first malformed byte.
func DecodeEightU8(src []byte) (values [8]uint8, count int, consumed int, err error) {
	if len(src) < 16 {
		return values, 0, 0, ErrShortInput
	}

	pos := 0
	for count < 8 && pos < 16 {
		b0 := src[pos]
		if b0&0x80 == 0 {
			values[count] = b0
			count++
			pos++
			continue
		}
		if pos+1 >= 16 {
			return values, count, pos, ErrOverflow
		}
		b1 := src[pos+1]
		if b1&0x80 != 0 || b1&overflowMask(W8) != 0 {
			return values, count, pos, ErrOverflow
		}
		values[count] = (b0 & 0x7F) | (b1 << 7)
		count++
		pos += 2
	}
	return values, count, pos, nil
}
