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

package metainfo

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/gotorrent/bencode"
)

// ErrNotDict indicates a document whose top-level value is not a dictionary
var ErrNotDict = errors.New("metainfo: document is not a dictionary")

// MissingKeyError indicates a required metainfo key that is absent
type MissingKeyError struct {
	Key string
}

func (e MissingKeyError) Error() string {
	return fmt.Sprintf("metainfo: missing required key %q", e.Key)
}

// UnexpectedTypeError indicates a metainfo key holding the wrong variant
type UnexpectedTypeError struct {
	Key      string
	Expected bencode.ValueType
	Actual   bencode.ValueType
}

func (e UnexpectedTypeError) Error() string {
	return fmt.Sprintf(
		"metainfo: key %q holds %s, expected %s",
		e.Key,
		e.Actual,
		e.Expected,
	)
}
