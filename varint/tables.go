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

// This file builds the two normative lookup-table families, the same way
// hwy/contrib/varint/groupvarint_base.go builds its per-control-byte
// shuffle masks: computed once in init() from the rules that define them
// rather than hand-transcribed. cmd/varintgen renders the same tables
// offline as Go literals from its own copy of these builders; the package
// does not read that output and always builds its tables here in init().

const (
	shuffle2Count = 100 // L1, L2 each in 1..10
	table2Count   = 1 << 10
	shuffle4Count = 81 // L1..L4 each in 1..3
	table4Count   = 1 << 12
)

// table2Entry is the decoded form of a TABLE_2 record: the SHUFFLE_2 index
// to use, the two varint lengths, and whether the 10-bit window contained
// enough information to trust L2 (see buildTable2's doc comment).
type table2Entry struct {
	Index      int
	L1, L2     int
	NeedsRecheck bool
}

// table4Entry is the decoded form of a packed TABLE_4 record: table_index,
// L1..L4 saturated to 3, and the invalid bit.
type table4Entry struct {
	Index          int
	L              [4]int
	Invalid        bool
}

var (
	shuffle2 [shuffle2Count][16]byte
	table2   [table2Count]table2Entry

	shuffle4 [shuffle4Count][16]byte
	table4   [table4Count]table4Entry
)

func init() {
	buildShuffle2()
	buildTable2()
	buildShuffle4()
	buildTable4()
}

// shuffle2Index maps (L1, L2), each in 1..10, to the 0..99 counter used to
// index SHUFFLE_2.
func shuffle2Index(l1, l2 int) int { return (l1-1)*10 + (l2 - 1) }

// buildShuffle2 builds SHUFFLE_2: positions
// 0..min(L1,8)-1 hold source indices 0..min(L1,8)-1 (varint 1's payload,
// left-justified); positions 8..8+min(L2,8)-1 hold L1..L1+min(L2,8)-1
// (varint 2's payload); every other position holds source byte 0, which
// the subsequent AND 0x7F / shift-and-add reduction makes harmless since
// lane positions beyond the real length are never summed.
func buildShuffle2() {
	for l1 := 1; l1 <= 10; l1++ {
		for l2 := 1; l2 <= 10; l2++ {
			var mask [16]byte
			n1 := min(l1, 8)
			n2 := min(l2, 8)
			for i := 0; i < n1; i++ {
				mask[i] = byte(i)
			}
			for i := n1; i < 8; i++ {
				mask[i] = 0
			}
			for i := 0; i < n2; i++ {
				mask[8+i] = byte(l1 + i)
			}
			for i := 8 + n2; i < 16; i++ {
				mask[i] = 0
			}
			shuffle2[shuffle2Index(l1, l2)] = mask
		}
	}
}

// buildTable2 builds TABLE_2 keyed by the low 10 bits of the continuation
// mask. L1 = ctz(~mask)+1. L2 is computed the same way over the bits that
// remain after consuming L1, padded with 1s past bit 9 so a value that
// runs off the end of the window is treated as "more continuation bytes",
// never as a spurious short length.
//
// A varint pair whose second terminator falls past bit 9 (L1+L2 >
// 10) means the 10-bit window never actually observed that terminator;
// NeedsRecheck flags this so decodeTwoGeneric recomputes L2 from the full
// 16-bit mask instead of trusting the table. This mirrors a real SIMD
// decoder falling back to scalar code on the rare wide-split case instead
// of growing the table to cover it.
func buildTable2() {
	for m := 0; m < table2Count; m++ {
		mask := uint16(m) | 0xFC00 // bits 10..15 read as continuation
		l1 := bits.TrailingZeros16(^mask) + 1
		rest := mask >> uint(min(l1, 16))
		l2 := bits.TrailingZeros16(^rest) + 1

		idx := 0
		if l1 <= 10 && l2 <= 10 {
			idx = shuffle2Index(l1, l2)
		}
		table2[m] = table2Entry{
			Index:        idx,
			L1:           l1,
			L2:           l2,
			NeedsRecheck: l1 > 10 || l1+l2 > 10,
		}
	}
}

// shuffle4Index maps (L1..L4), each in 1..3, to the 0..80 counter.
func shuffle4Index(l [4]int) int {
	return (l[0]-1)*27 + (l[1]-1)*9 + (l[2]-1)*3 + (l[3] - 1)
}

// buildShuffle4 builds SHUFFLE_4: four 4-byte groups, each
// holding up to Li (already saturated to 3) consecutive source indices
// followed by 255 (zero-fill) padding.
func buildShuffle4() {
	for l0 := 1; l0 <= 3; l0++ {
		for l1 := 1; l1 <= 3; l1++ {
			for l2 := 1; l2 <= 3; l2++ {
				for l3 := 1; l3 <= 3; l3++ {
					lens := [4]int{l0, l1, l2, l3}
					var mask [16]byte
					off := 0
					for g := 0; g < 4; g++ {
						for i := 0; i < 4; i++ {
							if i < lens[g] {
								mask[4*g+i] = byte(off + i)
							} else {
								mask[4*g+i] = 255
							}
						}
						off += lens[g]
					}
					shuffle4[shuffle4Index(lens)] = mask
				}
			}
		}
	}
}

// buildTable4 builds the 4096-entry packed dispatch table. Each of the
// four lengths is derived by chained ctz over the 12-bit
// window, with every bit past bit 11 (including those shifted in from
// above bit 15) read as 1 (continuation) so running off the window reads
// as "longer than 3", which is exactly the condition that should set the
// invalid bit.
func buildTable4() {
	for m := 0; m < table4Count; m++ {
		mask := uint16(m) | 0xF000
		var raw, sat [4]int
		invalid := false
		pos := 0
		for k := 0; k < 4; k++ {
			sub := ^uint16(0)
			if pos < 16 {
				sub = mask>>uint(pos) | ^(^uint16(0) >> uint(pos))
			}
			li := bits.TrailingZeros16(^sub) + 1
			raw[k] = li
			if li > 3 {
				invalid = true
				sat[k] = 3
			} else {
				sat[k] = li
			}
			pos += li
		}
		table4[m] = table4Entry{
			Index:   shuffle4Index(sat),
			L:       sat,
			Invalid: invalid,
		}
	}
}

// shuffleBytes is the scalar equivalent of a PSHUFB/TBL byte-granularity
// table lookup: out[i] = src[ctrl[i]], or zero when ctrl[i] >= len(src) (the
// 255 "zero-fill" sentinel used throughout the shuffle tables).
func shuffleBytes(src []byte, ctrl [16]byte) [16]byte {
	var out [16]byte
	for i, c := range ctrl {
		if int(c) < len(src) {
			out[i] = src[c]
		}
	}
	return out
}
