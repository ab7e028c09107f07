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

import "errors"

// ErrOverflow is returned when a varint's encoded length exceeds MaxLen(W)
// for the declared width, or when a maximum-length encoding's terminal byte
// carries payload bits above the width's legitimate range. It is the only
// error the safe decoders return for a malformed varint; a too-short input
// slice is reported as ErrShortInput instead.
var ErrOverflow = errors.New("varint: overflow")

// ErrShortInput is returned by the safe decoders when the supplied slice is
// shorter than the required 16-byte view. Unlike ErrOverflow this signals a
// caller-side precondition violation, not a malformed varint; callers
// decoding a shorter tail must first copy it into a zero-padded [16]byte
// scratch buffer.
var ErrShortInput = errors.New("varint: input shorter than 16 bytes")
