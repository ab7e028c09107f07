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

import "os"

// Path names the gather/scatter strategy a build is using. Round-trip
// correctness holds identically under every path; only throughput differs.
type Path string

const (
	// PathPortable is the byte-loop fallback: mask off continuation bits
	// and sum scaled 7-bit groups one byte at a time. Always available.
	PathPortable Path = "portable"
	// PathShuffle models an SSSE3-class byte shuffle: a static table keyed
	// by encoded length selects a no-op/left-justify shuffle control before
	// the same mask-and-sum reduction runs. Requires a byte-granularity
	// shuffle instruction (SSSE3, NEON TBL, or equivalent).
	PathShuffle Path = "shuffle"
	// PathBMI2 models the PEXT/PDEP-accelerated path: PEXT compacts the
	// low 7 bits of each byte of a 64-bit lane into a contiguous word in
	// one step, and PDEP is its encode-side mirror.
	PathBMI2 Path = "bmi2"
)

// logger receives the lines passed to logf. Capability detection calls logf
// when VARINT_NO_SIMD forces the portable path or when an amd64 host lacks
// SSSE3; it logs nothing about BMI2/PEXT. Detection runs while the package
// is initialized, before an importing package can call SetLogger, so those
// detection lines are dropped. Library consumers pay nothing if they never
// call SetLogger.
var logger func(msg string, args ...any)

// SetLogger installs a structured-logging callback (e.g. adapting
// (*log.Logger).Info from github.com/charmbracelet/log) for lines passed to
// logf. Passing nil disables logging. It does not re-run capability
// detection; the codec's hot paths never call it.
func SetLogger(fn func(msg string, args ...any)) {
	logger = fn
}

func logf(msg string, args ...any) {
	if logger != nil {
		logger(msg, args...)
	}
}

// CapabilitySnapshot reports which gather/scatter path the running binary
// has selected and why. It is a snapshot taken at init() time: the codec
// never re-inspects the host CPU once a build starts running.
type CapabilitySnapshot struct {
	// Selected is the path wired into the package's encode/decode dispatch
	// variables for this process.
	Selected Path
	// FastPEXT is true only when the host advertises BMI2 and
	// VARINT_NO_PEXT is not set. No microarchitecture check is made: on
	// hosts where PEXT/PDEP are emulated in microcode (AMD Zen/Zen+/Zen 2)
	// it is true unless VARINT_NO_PEXT is set.
	FastPEXT bool
	// HasShuffle is true when a byte-granularity shuffle instruction
	// (SSSE3 or NEON TBL) is available and VARINT_NO_SIMD is not set;
	// when it is false, PathShuffle is not selected.
	HasShuffle bool
}

var capabilities = detectCapabilities()

// Capabilities returns the capability snapshot computed at package
// initialization. It never changes over the lifetime of a process.
func Capabilities() CapabilitySnapshot {
	return capabilities
}

// envDisabled reports whether the named boolean escape hatch is set,
// following the same HWY_NO_SIMD convention as
// hwy/contrib/varint/z_varint_neon_arm64.go.
func envDisabled(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "0" && v != "false"
}
