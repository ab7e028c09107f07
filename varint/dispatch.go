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

// Dispatch function variables, following the same pattern as
// hwy/contrib/varint/dispatch.go: initialized here to the portable (pure
// Go) implementations, then possibly overridden by this file's init()
// according to the snapshot that the architecture-gated z_*.go file's
// detectCapabilities computed. Package-level variables such as
// capabilities are initialized before any init() runs, so that snapshot is
// already in place here.
//
// gatherPayloadFn is the decode-side "shift-in" reduction; spreadPayloadFn
// is its encode-side mirror. Every alternate body is required to agree
// bit-for-bit with the portable one for well-formed input; swapping either
// only changes throughput, never the codec's observable behavior.
type gatherFunc func(src []byte, l int) uint64
type spreadFunc func(x uint64, l int) [16]byte

var (
	gatherPayloadFn gatherFunc = gatherPayloadPortable
	spreadPayloadFn spreadFunc = spreadPayloadPortable
)

func init() {
	switch Capabilities().Selected {
	case PathBMI2:
		gatherPayloadFn = gatherPayloadPEXT
		spreadPayloadFn = spreadPayloadPDEP
	case PathShuffle:
		gatherPayloadFn = gatherPayloadShuffle
	}
}
