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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/go-curand/internal/loader"
)

// closingDriver records whether the opened library was closed.
type closingDriver struct {
	*InterfaceMock
	closed int
}

func (d *closingDriver) Close() error {
	d.closed++
	return nil
}

func TestInitialize(t *testing.T) {
	testCases := []struct {
		description    string
		libraries      []string
		initResult     Result
		expectedError  bool
		expectedName   string
		expectedClosed int
	}{
		{
			description:   "no library found",
			libraries:     []string{"libmissing.so"},
			expectedError: true,
		},
		{
			description:   "empty candidate list",
			libraries:     []string{},
			expectedError: true,
		},
		{
			description:    "cuInit fails",
			libraries:      []string{"libcuda.so.1"},
			initResult:     ERROR_NO_DEVICE,
			expectedError:  true,
			expectedClosed: 1,
		},
		{
			description:  "second candidate is used",
			libraries:    []string{"libmissing.so", "libcuda.so.1"},
			expectedName: "libcuda.so.1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			b := loader.New[Interface](nil)
			errs := NewErrorTable()
			lib := &closingDriver{
				InterfaceMock: &InterfaceMock{
					InitFunc: func(uint32) Result { return tc.initResult },
				},
			}
			open := func(name string) (Interface, error) {
				if name != "libcuda.so.1" {
					return nil, fmt.Errorf("%v: cannot open shared object file", name)
				}
				return lib, nil
			}

			err := initialize(b, tc.libraries, open, errs)
			require.Equal(t, tc.expectedClosed, lib.closed)
			if tc.expectedError {
				require.ErrorIs(t, err, loader.ErrNotFound)
				require.Zero(t, errs.Len())
				_, ok := b.Get()
				require.False(t, ok)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectedName, b.Name())
			require.Equal(t, "CUDA_ERROR_NO_DEVICE", errs.Describe(int(ERROR_NO_DEVICE)))
			require.Equal(t, len(descriptions), errs.Len())
		})
	}
}
