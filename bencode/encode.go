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
	"strconv"
)

// Encode serializes a Value tree to bencode bytes. Every in-memory Value is
// representable, so there's no error path; the zero (invalid) Value produces
// no output.
//
// Dictionary entries are written in their stored insertion order, never
// sorted. For any v produced by Decode, Decode(Encode(v)) is structurally
// equal to v. The stronger byte-for-byte guarantee Encode(Decode(data)) ==
// data additionally requires that data held no duplicate dictionary keys,
// since duplicates collapse to a single entry at decode time.
func Encode(value Value) []byte {
	return appendValue(nil, value)
}

func appendValue(buf []byte, value Value) []byte {
	switch value.typ {
	case TypeText:
		buf = appendText(buf, value.text)
	case TypeInteger:
		buf = append(buf, 'i')
		buf = strconv.AppendUint(buf, value.integer, 10)
		buf = append(buf, 'e')
	case TypeList:
		buf = append(buf, 'l')
		for _, item := range value.list {
			buf = appendValue(buf, item)
		}
		buf = append(buf, 'e')
	case TypeDict:
		buf = append(buf, 'd')
		for _, key := range value.dict.Keys() {
			buf = appendText(buf, key)
			entry, _ := value.dict.Get(key)
			buf = appendValue(buf, entry)
		}
		buf = append(buf, 'e')
	}
	return buf
}

func appendText(buf []byte, text ByteString) []byte {
	buf = strconv.AppendInt(buf, int64(text.Len()), 10)
	buf = append(buf, ':')
	buf = append(buf, text.Bytes()...)
	return buf
}
