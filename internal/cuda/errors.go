/**
# Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
#
# Licensed under the Apache License, Version 2.0 (the "License");
# you may not use this file except in compliance with the License.
# You may obtain a copy of the License at
#
#     http://www.apache.org/licenses/LICENSE-2.0
#
# Unless required by applicable law or agreed to in writing, software
# distributed under the License is distributed on an "AS IS" BASIS,
# WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
# See the License for the specific language governing permissions and
# limitations under the License.
**/

package cuda

import (
	"fmt"
	"strings"
	"sync"
)

const descriptionSeparator = " | "

// Errors is the error table shared by the CUDA driver binding and the
// libraries layered on top of it. Libraries whose status codes overlap with
// CUresult values merge their descriptions into it when they are loaded.
var Errors = NewErrorTable()

// ErrorTable maps numeric status codes to their descriptions.
// A code can have descriptions from more than one library.
type ErrorTable struct {
	sync.RWMutex
	descriptions map[int][]string
}

// NewErrorTable creates an empty error table.
func NewErrorTable() *ErrorTable {
	return &ErrorTable{
		descriptions: make(map[int][]string),
	}
}

// Merge adds the specified descriptions to the table.
// Descriptions are appended to those already present for a code; a description
// that is already present for a code is not added again.
func (t *ErrorTable) Merge(descriptions map[int]string) {
	t.Lock()
	defer t.Unlock()
	for code, d := range descriptions {
		if contains(t.descriptions[code], d) {
			continue
		}
		t.descriptions[code] = append(t.descriptions[code], d)
	}
}

// Descriptions returns a copy of the descriptions for the specified code.
func (t *ErrorTable) Descriptions(code int) []string {
	t.RLock()
	defer t.RUnlock()
	return append([]string(nil), t.descriptions[code]...)
}

// Describe returns the descriptions for the specified code joined into a single string.
func (t *ErrorTable) Describe(code int) string {
	d := t.Descriptions(code)
	if len(d) == 0 {
		return "unknown error"
	}
	return strings.Join(d, descriptionSeparator)
}

// Len returns the number of codes in the table.
func (t *ErrorTable) Len() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.descriptions)
}

// Error constructs the error returned when the native function op fails with code.
func (t *ErrorTable) Error(op string, code int) *Error {
	return &Error{
		Op:          op,
		Code:        code,
		Description: t.Describe(code),
	}
}

// Error is returned when a native call fails with a non-zero status.
type Error struct {
	Op          string
	Code        int
	Description string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v() failed with error %d (%v)", e.Op, e.Code, e.Description)
}

// Is reports whether target is an *Error with the same code.
// The operation is only compared if it is set on target.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Op != "" && t.Op != e.Op {
		return false
	}
	return t.Code == e.Code
}

func contains(list []string, s string) bool {
	for _, l := range list {
		if l == s {
			return true
		}
	}
	return false
}
