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

//go:build amd64

package varint

import "golang.org/x/sys/cpu"

// detectCapabilities on amd64 prefers PEXT/PDEP when the CPU advertises
// BMI2, unless VARINT_NO_PEXT is set. x/sys/cpu does not expose a portable
// "is this microarchitecture's PEXT actually fast" signal (the Zen family
// advertises BMI2 but emulates it in microcode), so that denylist
// is deliberately left to the operator via the environment variable rather
// than guessed from unexported CPUID family/model fields.
func detectCapabilities() CapabilitySnapshot {
	if envDisabled("VARINT_NO_SIMD") {
		logf("varint: VARINT_NO_SIMD set, forcing portable path")
		return CapabilitySnapshot{Selected: PathPortable}
	}

	hasShuffle := cpu.X86.HasSSSE3
	fastPEXT := cpu.X86.HasBMI2 && !envDisabled("VARINT_NO_PEXT")

	switch {
	case fastPEXT:
		return CapabilitySnapshot{Selected: PathBMI2, FastPEXT: true, HasShuffle: hasShuffle}
	case hasShuffle:
		return CapabilitySnapshot{Selected: PathShuffle, HasShuffle: true}
	default:
		logf("varint: no SSSE3 on this amd64 host, using portable path")
		return CapabilitySnapshot{Selected: PathPortable}
	}
}
