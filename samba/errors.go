// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package samba

import (
	"errors"
	"fmt"
)

// ErrTimeout reports that no reply arrived within the command's budget.
// Commands are never retried automatically.
var ErrTimeout = errors.New("command timed out")

// ProtocolError reports a malformed reply: wrong length, or a first byte
// that does not echo the command letter.
type ProtocolError struct {
	Op       string
	Response []byte
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("%s: unexpected response % x", e.Op, e.Response)
}
