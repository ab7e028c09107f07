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

package main

import "math/bits"

// The functions in this file are the offline mirror of
// varint/tables.go's init()-time table builders. They are kept as plain,
// allocation-returning functions (rather than filling package-level
// arrays) since this binary's only job is to serialize their output, not
// to use the tables itself.

func shuffle2Index(l1, l2 int) int { return (l1-1)*10 + (l2 - 1) }

func buildShuffle2Table() [][16]byte {
	rows := make([][16]byte, 100)
	for l1 := 1; l1 <= 10; l1++ {
		for l2 := 1; l2 <= 10; l2++ {
			var mask [16]byte
			n1 := min(l1, 8)
			n2 := min(l2, 8)
			for i := 0; i < n1; i++ {
				mask[i] = byte(i)
			}
			for i := 0; i < n2; i++ {
				mask[8+i] = byte(l1 + i)
			}
			rows[shuffle2Index(l1, l2)] = mask
		}
	}
	return rows
}

func buildTable2Table() []genTable2Entry {
	rows := make([]genTable2Entry, 1<<10)
	for m := 0; m < len(rows); m++ {
		mask := uint16(m) | 0xFC00
		l1 := bits.TrailingZeros16(^mask) + 1
		rest := mask >> uint(min(l1, 16))
		l2 := bits.TrailingZeros16(^rest) + 1

		idx := 0
		if l1 <= 10 && l2 <= 10 {
			idx = shuffle2Index(l1, l2)
		}
		rows[m] = genTable2Entry{
			index:        idx,
			l1:           l1,
			l2:           l2,
			needsRecheck: l1 > 10 || l1+l2 > 10,
		}
	}
	return rows
}

func shuffle4Index(l [4]int) int {
	return (l[0]-1)*27 + (l[1]-1)*9 + (l[2]-1)*3 + (l[3] - 1)
}

func buildShuffle4Table() [][16]byte {
	rows := make([][16]byte, 81)
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
					rows[shuffle4Index(lens)] = mask
				}
			}
		}
	}
	return rows
}

func buildTable4Table() []genTable4Entry {
	rows := make([]genTable4Entry, 1<<12)
	for m := 0; m < len(rows); m++ {
		mask := uint16(m) | 0xF000
		var sat [4]int
		invalid := false
		pos := 0
		for k := 0; k < 4; k++ {
			sub := ^uint16(0)
			if pos < 16 {
				sub = mask>>uint(pos) | ^(^uint16(0) >> uint(pos))
			}
			li := bits.TrailingZeros16(^sub) + 1
			if li > 3 {
				invalid = true
				sat[k] = 3
			} else {
				sat[k] = li
			}
			pos += li
		}
		rows[m] = genTable4Entry{
			index:   shuffle4Index(sat),
			l:       sat,
			invalid: invalid,
		}
	}
	return rows
}
