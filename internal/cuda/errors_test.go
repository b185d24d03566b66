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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorTableMerge(t *testing.T) {
	testCases := []struct {
		description string
		merges      []map[int]string
		expected    map[int]string
	}{
		{
			description: "empty table",
			expected: map[int]string{
				1: "unknown error",
			},
		},
		{
			description: "single source",
			merges: []map[int]string{
				{100: "CUDA_ERROR_NO_DEVICE", 101: "CUDA_ERROR_INVALID_DEVICE"},
			},
			expected: map[int]string{
				100: "CUDA_ERROR_NO_DEVICE",
				101: "CUDA_ERROR_INVALID_DEVICE",
			},
		},
		{
			description: "overlapping codes are concatenated",
			merges: []map[int]string{
				{101: "CUDA_ERROR_INVALID_DEVICE"},
				{101: "CURAND_STATUS_NOT_INITIALIZED", 105: "CURAND_STATUS_LENGTH_NOT_MULTIPLE"},
			},
			expected: map[int]string{
				101: "CUDA_ERROR_INVALID_DEVICE | CURAND_STATUS_NOT_INITIALIZED",
				105: "CURAND_STATUS_LENGTH_NOT_MULTIPLE",
			},
		},
		{
			description: "merging the same source twice adds nothing",
			merges: []map[int]string{
				{101: "CUDA_ERROR_INVALID_DEVICE"},
				{101: "CURAND_STATUS_NOT_INITIALIZED"},
				{101: "CURAND_STATUS_NOT_INITIALIZED"},
				{101: "CUDA_ERROR_INVALID_DEVICE"},
			},
			expected: map[int]string{
				101: "CUDA_ERROR_INVALID_DEVICE | CURAND_STATUS_NOT_INITIALIZED",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			table := NewErrorTable()
			for _, m := range tc.merges {
				table.Merge(m)
			}
			for code, expected := range tc.expected {
				require.Equal(t, expected, table.Describe(code))
			}
		})
	}
}

func TestErrorTableDescriptionsIsACopy(t *testing.T) {
	table := NewErrorTable()
	table.Merge(map[int]string{1: "CUDA_ERROR_INVALID_VALUE"})

	d := table.Descriptions(1)
	d[0] = "modified"

	require.Equal(t, "CUDA_ERROR_INVALID_VALUE", table.Describe(1))
}

func TestError(t *testing.T) {
	table := NewErrorTable()
	table.Merge(Descriptions())
	table.Merge(map[int]string{201: "CURAND_STATUS_LAUNCH_FAILURE"})

	err := table.Error("curandCreateGenerator", 201)
	require.EqualError(t, err, "curandCreateGenerator() failed with error 201 (CUDA_ERROR_INVALID_CONTEXT | CURAND_STATUS_LAUNCH_FAILURE)")

	wrapped := fmt.Errorf("creating generator: %w", err)
	require.ErrorIs(t, wrapped, &Error{Code: 201})
	require.ErrorIs(t, wrapped, &Error{Op: "curandCreateGenerator", Code: 201})
	require.False(t, errors.Is(wrapped, &Error{Op: "cuCtxCreate_v2", Code: 201}))
	require.False(t, errors.Is(wrapped, &Error{Code: 202}))

	var e *Error
	require.ErrorAs(t, wrapped, &e)
	require.Equal(t, 201, e.Code)
}

func TestResultString(t *testing.T) {
	require.Equal(t, "CUDA_SUCCESS", SUCCESS.String())
	require.Equal(t, "CUDA_ERROR_NO_DEVICE", ERROR_NO_DEVICE.String())
	require.Equal(t, "CUDA_ERROR_UNKNOWN", ERROR_UNKNOWN.String())
	require.Equal(t, "CUresult(12345)", Result(12345).String())
}

func TestDescriptionsExcludeSuccess(t *testing.T) {
	d := Descriptions()
	_, ok := d[int(SUCCESS)]
	require.False(t, ok)
	require.Equal(t, "CUDA_ERROR_INVALID_CONTEXT", d[201])
}
