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

package tracker

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse indicates an announce response that doesn't match the
// expected document shape
var ErrInvalidResponse = errors.New("tracker: invalid announce response")

// FailureError carries the failure reason a tracker returned instead of an
// announce result
type FailureError struct {
	Reason string
}

func (e FailureError) Error() string {
	return fmt.Sprintf("tracker: announce failed: %s", e.Reason)
}

// StatusError indicates a non-OK HTTP response from the tracker
type StatusError struct {
	Code int
}

func (e StatusError) Error() string {
	return fmt.Sprintf("tracker: unexpected HTTP status %d", e.Code)
}
