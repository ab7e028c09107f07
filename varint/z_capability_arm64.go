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

//go:build arm64

package varint

import "golang.org/x/sys/cpu"

// detectCapabilities on arm64 uses the NEON TBL instruction's pure-Go
// equivalent; there is no PEXT/PDEP analogue on this architecture so
// PathBMI2 is never selected (mirrors hwy/contrib/varint's NEON override,
// which replaces only the shuffle-based operations).
func detectCapabilities() CapabilitySnapshot {
	if envDisabled("VARINT_NO_SIMD") {
		logf("varint: VARINT_NO_SIMD set, forcing portable path")
		return CapabilitySnapshot{Selected: PathPortable}
	}
	if cpu.ARM64.HasASIMD {
		return CapabilitySnapshot{Selected: PathShuffle, HasShuffle: true}
	}
	return CapabilitySnapshot{Selected: PathPortable}
}
