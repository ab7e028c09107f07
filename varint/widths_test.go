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

func TestMaxLen(t *testing.T) {
	cases := []struct {
		w    Width
		want int
	}{
		{W8, 2},
		{W16, 3},
		{W17, 3},
		{W32, 5},
		{W64, 10},
	}
	for _, c := range cases {
		if got := maxLen(c.w); got != c.want {
			t.Errorf("maxLen(%d) = %d, want %d", c.w, got, c.want)
		}
	}
}

func TestOverflowMask(t *testing.T) {
	cases := []struct {
		w    Width
		want byte
	}{
		{W8, 0x7E},  // terminal byte carries 1 bit (8 - 7*1)
		{W16, 0x7C}, // terminal byte carries 2 bits (16 - 7*2)
		{W17, 0x78}, // terminal byte carries 3 bits (17 - 7*2)
		{W32, 0x70}, // terminal byte carries 4 bits (32 - 7*4)
		{W64, 0x7E}, // terminal byte carries 1 bit (64 - 7*9)
	}
	for _, c := range cases {
		if got := overflowMask(c.w); got != c.want {
			t.Errorf("overflowMask(%d) = %#02x, want %#02x", c.w, got, c.want)
		}
	}
}
