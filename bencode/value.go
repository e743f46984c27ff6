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

// ValueType identifies which variant a Value holds
type ValueType uint8

const (
	TypeInvalid ValueType = iota
	TypeText
	TypeInteger
	TypeList
	TypeDict
)

func (t ValueType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInteger:
		return "integer"
	case TypeList:
		return "list"
	case TypeDict:
		return "dict"
	default:
		return "invalid"
	}
}

// Value is the decoded in-memory form of a single bencode document: a tagged
// union of text (raw bytes), unsigned integer, list, and dict variants. Each
// node exclusively owns its children and the tree contains no cycles. The
// zero Value holds no variant (TypeInvalid).
type Value struct {
	typ     ValueType
	text    ByteString
	integer uint64
	list    []Value
	dict    *Dict
}

// NewText creates a text Value from raw bytes
func NewText(data []byte) Value {
	return Value{typ: TypeText, text: NewByteString(data)}
}

// NewTextFromString creates a text Value from the raw bytes of a Go string
func NewTextFromString(data string) Value {
	return Value{typ: TypeText, text: NewByteStringFromString(data)}
}

// NewInteger creates an integer Value. Bencode integers in this
// implementation are unsigned 64-bit; negative numbers are not representable.
func NewInteger(n uint64) Value {
	return Value{typ: TypeInteger, integer: n}
}

// NewList creates a list Value holding the given items in order
func NewList(items ...Value) Value {
	return Value{typ: TypeList, list: items}
}

// Type returns which variant this Value holds
func (v Value) Type() ValueType {
	return v.typ
}

// Text returns the text payload and whether the Value is a text variant
func (v Value) Text() (ByteString, bool) {
	return v.text, v.typ == TypeText
}

// Integer returns the integer and whether the Value is an integer variant
func (v Value) Integer() (uint64, bool) {
	return v.integer, v.typ == TypeInteger
}

// List returns the items and whether the Value is a list variant. The
// returned slice is the Value's own backing storage and must not be modified.
func (v Value) List() ([]Value, bool) {
	return v.list, v.typ == TypeList
}

// Dict returns the dictionary and whether the Value is a dict variant
func (v Value) Dict() (*Dict, bool) {
	return v.dict, v.typ == TypeDict
}

// Equal reports structural equality: same variant and same nested content,
// including dictionary key order
func (v Value) Equal(other Value) bool {
	if v.typ != other.typ {
		return false
	}
	switch v.typ {
	case TypeText:
		return v.text.Equal(other.text)
	case TypeInteger:
		return v.integer == other.integer
	case TypeList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case TypeDict:
		return v.dict.Equal(other.dict)
	default:
		// Two invalid values are trivially equal
		return true
	}
}

// Dict is an insertion-order-preserving mapping from ByteString keys to
// Values. Key order is significant: it's preserved exactly through decode and
// encode, which is what makes re-encoding a decoded document faithful.
type Dict struct {
	keys    []ByteString
	entries map[ByteString]Value
}

func NewDict() *Dict {
	return &Dict{
		entries: map[ByteString]Value{},
	}
}

// Value wraps the dictionary as a dict-variant Value
func (d *Dict) Value() Value {
	return Value{typ: TypeDict, dict: d}
}

func (d *Dict) Len() int {
	if d == nil {
		return 0
	}
	return len(d.keys)
}

// Set stores a value under the given key. When the same key is written more
// than once the entry keeps the position of the first insertion and the value
// of the last write. This is a deliberate policy choice (standard ordered-map
// semantics), not something the wire format mandates.
func (d *Dict) Set(key ByteString, value Value) {
	if _, ok := d.entries[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = value
}

// SetString is a convenience for text keys
func (d *Dict) SetString(key string, value Value) {
	d.Set(NewByteStringFromString(key), value)
}

// Get looks up a key by its exact byte sequence
func (d *Dict) Get(key ByteString) (Value, bool) {
	if d == nil {
		return Value{}, false
	}
	value, ok := d.entries[key]
	return value, ok
}

// GetString is a convenience for looking up well-known text keys
func (d *Dict) GetString(key string) (Value, bool) {
	return d.Get(NewByteStringFromString(key))
}

// Keys returns the dictionary keys in insertion order. The returned slice is
// the Dict's own backing storage and must not be modified.
func (d *Dict) Keys() []ByteString {
	if d == nil {
		return nil
	}
	return d.keys
}

// Equal reports whether both dictionaries hold equal entries in the same
// key order
func (d *Dict) Equal(other *Dict) bool {
	if d.Len() != other.Len() {
		return false
	}
	for i, key := range d.Keys() {
		if !key.Equal(other.keys[i]) {
			return false
		}
		if !d.entries[key].Equal(other.entries[key]) {
			return false
		}
	}
	return true
}
