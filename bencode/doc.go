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

// Package bencode implements encoding and decoding of the bencode
// serialization format defined in BEP 3.
//
// The wire grammar:
//
//	value    := integer | string | list | dict
//	integer  := 'i' digit+ 'e'
//	string   := length ':' byte{length}
//	length   := digit+
//	list     := 'l' value* 'e'
//	dict     := 'd' (string value)* 'e'
//
// Decoded documents are represented as a [Value] tree. Bencode "strings" are
// raw byte payloads (piece hashes, compact peer lists) rather than text, so
// they are modeled as [ByteString] instead of native Go strings.
// Dictionaries preserve insertion order through decode and re-encode; see
// [Dict] for the duplicate-key policy.
//
// Decode and Encode are pure functions with no shared state and are safe for
// concurrent use.
package bencode
