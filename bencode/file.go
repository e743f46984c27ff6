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
	"os"
)

// DecodeFile reads the named file and decodes its contents. Read failures are
// reported as a *ReadError, which matches ErrRead with errors.Is; decode
// failures are reported the same way as Decode.
func DecodeFile(path string, opts ...DecodeOptionFunc) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Value{}, &ReadError{
			Path: path,
			Err:  err,
		}
	}
	return Decode(data, opts...)
}
