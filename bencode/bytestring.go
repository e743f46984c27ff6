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
	"fmt"
	"unicode/utf8"
)

// Wrapper for raw byte payloads that allows them to be used as keys for a map
type ByteString struct {
	// We use a string because []byte isn't comparable, which means it can't be used as a map key
	data string
}

func NewByteString(data []byte) ByteString {
	bs := ByteString{
		data: string(data),
	}
	return bs
}

// NewByteStringFromString wraps the raw bytes of a Go string
func NewByteStringFromString(data string) ByteString {
	return ByteString{
		data: data,
	}
}

func (bs ByteString) Bytes() []byte {
	return []byte(bs.data)
}

func (bs ByteString) Len() int {
	return len(bs.data)
}

// Equal returns true when both byte sequences match length-for-length
func (bs ByteString) Equal(other ByteString) bool {
	return bs.data == other.data
}

// Less orders bytestrings by their raw bytes
func (bs ByteString) Less(other ByteString) bool {
	return bs.data < other.data
}

// String renders valid UTF-8 content as text and anything else as an opaque
// length marker. Partial or lossy decoding would misrepresent binary payloads
// such as piece hashes, so it's never attempted.
func (bs ByteString) String() string {
	if utf8.ValidString(bs.data) {
		return bs.data
	}
	return fmt.Sprintf("<%d bytes>", len(bs.data))
}
