// Copyright 2026 Blink Labs Software
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

package bencode

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode failure modes, usable with errors.Is
var (
	// ErrUnexpectedByte indicates a leading byte that matches none of the
	// four value productions
	ErrUnexpectedByte = errors.New("unexpected byte")
	// ErrInvalidLength indicates a string length prefix that isn't a
	// well-formed, in-range non-negative integer
	ErrInvalidLength = errors.New("invalid string length")
	// ErrInvalidInteger indicates an integer production with no digits, a
	// non-digit character, or a value past the unsigned 64-bit range
	ErrInvalidInteger = errors.New("invalid integer")
	// ErrTruncated indicates input that ended before a declared string
	// payload or a container's closing marker was fully consumed
	ErrTruncated = errors.New("truncated input")
	// ErrNonStringKey indicates a dictionary key that isn't a string
	ErrNonStringKey = errors.New("non-string dictionary key")
	// ErrMaxDepthExceeded indicates nesting beyond the configured maximum
	ErrMaxDepthExceeded = errors.New("maximum nesting depth exceeded")
)

// DecodeError reports a decode failure and the byte offset where it was
// detected. It wraps one of the sentinel errors above.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("bencode: offset %d: %s", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Sentinel error for source read failures so callers can use errors.Is
var ErrRead = errors.New("read failed")

// ReadError indicates that reading the source bytes failed before decoding
// could start
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("bencode: read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (*ReadError) Is(target error) bool {
	return target == ErrRead
}
