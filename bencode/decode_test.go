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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeInteger(t *testing.T) {
	value, err := Decode([]byte("i64520998877e"))
	require.NoError(t, err)
	assert.True(t, value.Equal(NewInteger(64520998877)))
}

func TestDecodeText(t *testing.T) {
	value, err := Decode([]byte("6:bruno0"))
	require.NoError(t, err)
	assert.True(t, value.Equal(NewTextFromString("bruno0")))

	// Zero-length string
	value, err = Decode([]byte("0:"))
	require.NoError(t, err)
	assert.True(t, value.Equal(NewTextFromString("")))
}

func TestDecodeList(t *testing.T) {
	value, err := Decode([]byte("l4:spam4:eggse"))
	require.NoError(t, err)
	expected := NewList(
		NewTextFromString("spam"),
		NewTextFromString("eggs"),
	)
	assert.True(t, value.Equal(expected))
}

func TestDecodeListNested(t *testing.T) {
	value, err := Decode(
		[]byte("l4:spami55eli10el4:spam4:feeti33ee5:brunoee"),
	)
	require.NoError(t, err)
	expected := NewList(
		NewTextFromString("spam"),
		NewInteger(55),
		NewList(
			NewInteger(10),
			NewList(
				NewTextFromString("spam"),
				NewTextFromString("feet"),
				NewInteger(33),
			),
			NewTextFromString("bruno"),
		),
	)
	assert.True(t, value.Equal(expected))
}

func TestDecodeDict(t *testing.T) {
	value, err := Decode([]byte("d3:cow3:moo4:spam4:eggse"))
	require.NoError(t, err)

	dict, ok := value.Dict()
	require.True(t, ok)
	require.Equal(t, 2, dict.Len())

	// Key order must be preserved as decoded
	keys := dict.Keys()
	assert.Equal(t, "cow", keys[0].String())
	assert.Equal(t, "spam", keys[1].String())

	entry, ok := dict.GetString("cow")
	require.True(t, ok)
	assert.True(t, entry.Equal(NewTextFromString("moo")))
	entry, ok = dict.GetString("spam")
	require.True(t, ok)
	assert.True(t, entry.Equal(NewTextFromString("eggs")))
}

func TestDecodeDictNested(t *testing.T) {
	value, err := Decode(
		[]byte("d3:agei33e4:lifed6:can.be7:amazingee"),
	)
	require.NoError(t, err)

	inner := NewDict()
	inner.SetString("can.be", NewTextFromString("amazing"))
	expected := NewDict()
	expected.SetString("age", NewInteger(33))
	expected.SetString("life", inner.Value())

	assert.True(t, value.Equal(expected.Value()))
}

// Decoding a dict with a repeated key yields a single entry at the key's
// first position holding the last-written value
func TestDecodeDictDuplicateKey(t *testing.T) {
	value, err := Decode(
		[]byte("d3:cow3:moo4:spam4:eggs3:cow3:baae"),
	)
	require.NoError(t, err)

	dict, ok := value.Dict()
	require.True(t, ok)
	require.Equal(t, 2, dict.Len())
	assert.Equal(t, "cow", dict.Keys()[0].String())
	assert.Equal(t, "spam", dict.Keys()[1].String())

	entry, ok := dict.GetString("cow")
	require.True(t, ok)
	assert.True(t, entry.Equal(NewTextFromString("baa")))
}

// Text payloads keep their exact bytes even when they aren't valid UTF-8
func TestDecodeBinaryText(t *testing.T) {
	data := append([]byte("4:"), 0xde, 0xad, 0xbe, 0xef)
	value, err := Decode(data)
	require.NoError(t, err)
	payload, ok := value.Text()
	require.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, payload.Bytes())
}

// Bytes beyond the first complete value are ignored, not an error
func TestDecodeTrailingBytes(t *testing.T) {
	value, err := Decode([]byte("i17e4:more"))
	require.NoError(t, err)
	assert.True(t, value.Equal(NewInteger(17)))
}

func TestDecodeErrors(t *testing.T) {
	testDefs := []struct {
		name        string
		data        string
		expectedErr error
	}{
		{
			name:        "empty input",
			data:        "",
			expectedErr: ErrTruncated,
		},
		{
			name:        "unknown leading byte",
			data:        "x",
			expectedErr: ErrUnexpectedByte,
		},
		{
			name:        "integer with no digits",
			data:        "ie",
			expectedErr: ErrInvalidInteger,
		},
		{
			name:        "negative integer",
			data:        "i-12e",
			expectedErr: ErrInvalidInteger,
		},
		{
			name:        "integer with embedded non-digit",
			data:        "i12x3e",
			expectedErr: ErrInvalidInteger,
		},
		{
			name: "integer overflowing uint64",
			// 2^64, one past the maximum
			data:        "i18446744073709551616e",
			expectedErr: ErrInvalidInteger,
		},
		{
			name:        "unterminated integer",
			data:        "i123",
			expectedErr: ErrTruncated,
		},
		{
			name:        "string shorter than declared",
			data:        "5:ab",
			expectedErr: ErrTruncated,
		},
		{
			name:        "string length with non-digit",
			data:        "12x:ab",
			expectedErr: ErrInvalidLength,
		},
		{
			name:        "string length overflowing uint64",
			data:        "98446744073709551616:ab",
			expectedErr: ErrInvalidLength,
		},
		{
			name:        "string length with no colon",
			data:        "42",
			expectedErr: ErrTruncated,
		},
		{
			name:        "unterminated list",
			data:        "li1e",
			expectedErr: ErrTruncated,
		},
		{
			name:        "unterminated dict",
			data:        "d3:cow3:moo",
			expectedErr: ErrTruncated,
		},
		{
			name:        "integer dict key",
			data:        "di1ei2ee",
			expectedErr: ErrNonStringKey,
		},
		{
			name:        "list dict key",
			data:        "dl4:spame4:eggse",
			expectedErr: ErrNonStringKey,
		},
		{
			name:        "dict key without value",
			data:        "d3:cowe",
			expectedErr: ErrUnexpectedByte,
		},
		{
			name:        "error nested in list",
			data:        "l4:spamixee",
			expectedErr: ErrInvalidInteger,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, err := Decode([]byte(testDef.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, testDef.expectedErr)
			var decodeErr *DecodeError
			assert.ErrorAs(t, err, &decodeErr)
		})
	}
}

func TestDecodeErrorOffset(t *testing.T) {
	_, err := Decode([]byte("5:ab"))
	require.Error(t, err)
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	// Failure is detected at the start of the (missing) payload
	assert.Equal(t, 2, decodeErr.Offset)

	_, err = Decode([]byte("l4:spamixee"))
	require.Error(t, err)
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, 8, decodeErr.Offset)
}

// Removing any non-empty suffix of a valid document must produce a typed
// error, never a panic and never a wrong answer
func TestDecodeTruncationSafety(t *testing.T) {
	data := []byte("d3:cow3:moo4:spamli1ei2ed1:a1:beee")
	_, err := Decode(data)
	require.NoError(t, err)
	for i := 0; i < len(data); i++ {
		_, err := Decode(data[:i])
		require.Errorf(t, err, "prefix of length %d decoded successfully", i)
	}
}

func TestDecodeDepthLimit(t *testing.T) {
	// Deeply nested lists beyond the default limit
	data := []byte(
		strings.Repeat("l", DefaultMaxDepth+1) +
			strings.Repeat("e", DefaultMaxDepth+1),
	)
	_, err := Decode(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxDepthExceeded)

	// Nesting exactly at the limit decodes fine
	data = []byte(
		strings.Repeat("l", DefaultMaxDepth) +
			strings.Repeat("e", DefaultMaxDepth),
	)
	_, err = Decode(data)
	assert.NoError(t, err)
}

func TestDecodeWithMaxDepth(t *testing.T) {
	_, err := Decode([]byte("lli1eee"), WithMaxDepth(2))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxDepthExceeded)

	_, err = Decode([]byte("li1ee"), WithMaxDepth(2))
	assert.NoError(t, err)
}

func TestDecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.bencode")
	err := os.WriteFile(path, []byte("d3:cow3:mooe"), 0o644)
	require.NoError(t, err)

	value, err := DecodeFile(path)
	require.NoError(t, err)
	expected := NewDict()
	expected.SetString("cow", NewTextFromString("moo"))
	assert.True(t, value.Equal(expected.Value()))
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := DecodeFile(filepath.Join(t.TempDir(), "nope.bencode"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRead)
	var readErr *ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Contains(t, readErr.Path, "nope.bencode")
}
