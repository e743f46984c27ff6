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
	"strconv"
)

// DefaultMaxDepth is the default nesting depth limit for Decode. The grammar
// allows unbounded nesting, so adversarial input could otherwise exhaust the
// call stack. Real documents are a handful of levels deep.
const DefaultMaxDepth = 256

// DecodeOptionFunc is a type that represents functions that modify the decoder config
type DecodeOptionFunc func(*decoder)

// WithMaxDepth specifies the maximum nesting depth. Documents nested deeper
// fail with ErrMaxDepthExceeded
func WithMaxDepth(depth int) DecodeOptionFunc {
	return func(d *decoder) {
		d.maxDepth = depth
	}
}

// Decode parses the first complete bencode value in data. Input is consumed
// left to right in a single pass; bytes beyond the first complete value are
// ignored rather than rejected, so multiple documents may be concatenated in
// one buffer and decoded by reslicing.
//
// Malformed or truncated input produces a *DecodeError wrapping one of the
// sentinel errors in this package; Decode never panics on untrusted input and
// never returns a partial tree.
func Decode(data []byte, opts ...DecodeOptionFunc) (Value, error) {
	d := &decoder{
		data:     data,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d.decodeValue(1)
}

type decoder struct {
	data     []byte
	pos      int
	maxDepth int
}

func (d *decoder) decodeValue(depth int) (Value, error) {
	if depth > d.maxDepth {
		return Value{}, d.fail(d.pos, ErrMaxDepthExceeded)
	}
	if d.pos >= len(d.data) {
		return Value{}, d.failf(d.pos, ErrTruncated, "expected a value")
	}
	switch b := d.data[d.pos]; {
	case b == 'i':
		return d.decodeInteger()
	case b == 'l':
		return d.decodeList(depth)
	case b == 'd':
		return d.decodeDict(depth)
	case isDigit(b):
		return d.decodeText()
	default:
		return Value{}, d.failf(d.pos, ErrUnexpectedByte, "%q", b)
	}
}

// decodeInteger parses i<digits>e. Only non-negative values are supported:
// a leading minus sign is rejected like any other non-digit.
func (d *decoder) decodeInteger() (Value, error) {
	// Skip over 'i'
	d.pos++
	start := d.pos
	for d.pos < len(d.data) && isDigit(d.data[d.pos]) {
		d.pos++
	}
	if d.pos >= len(d.data) {
		return Value{}, d.failf(d.pos, ErrTruncated, "unterminated integer")
	}
	if d.data[d.pos] != 'e' {
		return Value{}, d.failf(
			d.pos,
			ErrInvalidInteger,
			"unexpected byte %q",
			d.data[d.pos],
		)
	}
	if d.pos == start {
		return Value{}, d.failf(start, ErrInvalidInteger, "no digits")
	}
	n, err := strconv.ParseUint(string(d.data[start:d.pos]), 10, 64)
	if err != nil {
		// The digit span is all ASCII digits, so the only parse failure
		// left is overflow of the 64-bit range
		return Value{}, d.failf(start, ErrInvalidInteger, "value out of range")
	}
	// Skip over 'e'
	d.pos++
	return NewInteger(n), nil
}

// decodeText parses <length>:<bytes>
func (d *decoder) decodeText() (Value, error) {
	start := d.pos
	for d.pos < len(d.data) && isDigit(d.data[d.pos]) {
		d.pos++
	}
	if d.pos >= len(d.data) {
		return Value{}, d.failf(d.pos, ErrTruncated, "unterminated string length")
	}
	if d.data[d.pos] != ':' {
		return Value{}, d.failf(
			d.pos,
			ErrInvalidLength,
			"unexpected byte %q",
			d.data[d.pos],
		)
	}
	length, err := strconv.ParseUint(string(d.data[start:d.pos]), 10, 64)
	if err != nil {
		return Value{}, d.failf(start, ErrInvalidLength, "value out of range")
	}
	// Skip over ':'
	d.pos++
	if length > uint64(len(d.data)-d.pos) {
		return Value{}, d.failf(
			d.pos,
			ErrTruncated,
			"declared length %d exceeds %d remaining bytes",
			length,
			len(d.data)-d.pos,
		)
	}
	value := NewText(d.data[d.pos : d.pos+int(length)])
	d.pos += int(length)
	return value, nil
}

// decodeList parses l<value>*e
func (d *decoder) decodeList(depth int) (Value, error) {
	// Skip over 'l'
	d.pos++
	items := []Value{}
	for {
		if d.pos >= len(d.data) {
			return Value{}, d.failf(d.pos, ErrTruncated, "unterminated list")
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return NewList(items...), nil
		}
		item, err := d.decodeValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

// decodeDict parses d(<string><value>)*e
func (d *decoder) decodeDict(depth int) (Value, error) {
	// Skip over 'd'
	d.pos++
	dict := NewDict()
	for {
		if d.pos >= len(d.data) {
			return Value{}, d.failf(d.pos, ErrTruncated, "unterminated dict")
		}
		if d.data[d.pos] == 'e' {
			d.pos++
			return dict.Value(), nil
		}
		// Keys must be the string production
		if !isDigit(d.data[d.pos]) {
			return Value{}, d.failf(
				d.pos,
				ErrNonStringKey,
				"%q",
				d.data[d.pos],
			)
		}
		key, err := d.decodeText()
		if err != nil {
			return Value{}, err
		}
		value, err := d.decodeValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		// Dict.Set keeps the first-insertion position and last-written value
		// for repeated keys
		dict.Set(key.text, value)
	}
}

func (d *decoder) fail(offset int, err error) error {
	return &DecodeError{
		Offset: offset,
		Err:    err,
	}
}

func (d *decoder) failf(
	offset int,
	sentinel error,
	format string,
	args ...any,
) error {
	return &DecodeError{
		Offset: offset,
		Err:    fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...),
	}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
