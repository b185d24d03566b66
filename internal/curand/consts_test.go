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

package curand

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRngType(t *testing.T) {
	testCases := []struct {
		input         string
		expected      RngType
		expectedError bool
	}{
		{input: "pseudo-default", expected: RNG_PSEUDO_DEFAULT},
		{input: "XORWOW", expected: RNG_PSEUDO_XORWOW},
		{input: "philox4_32_10", expected: RNG_PSEUDO_PHILOX4_32_10},
		{input: "scrambled-sobol64", expected: RNG_QUASI_SCRAMBLED_SOBOL64},
		{input: "test", expected: RNG_TEST},
		{input: "", expectedError: true},
		{input: "mersenne", expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			rngType, err := ParseRngType(tc.input)
			if tc.expectedError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, rngType)
		})
	}
}

func TestRngTypes(t *testing.T) {
	types := RngTypes()
	require.Len(t, types, 11)
	require.Equal(t, RNG_PSEUDO_DEFAULT, types[0])
	require.Equal(t, RNG_QUASI_SCRAMBLED_SOBOL64, types[len(types)-1])
	require.NotContains(t, types, RNG_TEST)

	for _, rngType := range types {
		parsed, err := ParseRngType(rngType.String())
		require.NoError(t, err)
		require.Equal(t, rngType, parsed)
		require.Equal(t, rngType >= 200, rngType.IsQuasiRandom())
	}
}

func TestParseOrdering(t *testing.T) {
	o, err := ParseOrdering("Seeded")
	require.NoError(t, err)
	require.Equal(t, ORDERING_PSEUDO_SEEDED, o)

	o, err = ParseOrdering("quasi_default")
	require.NoError(t, err)
	require.Equal(t, ORDERING_QUASI_DEFAULT, o)

	_, err = ParseOrdering("random")
	require.Error(t, err)
}

func TestStatusString(t *testing.T) {
	require.Equal(t, "CURAND_STATUS_SUCCESS", SUCCESS.String())
	require.Equal(t, "CURAND_STATUS_ARCH_MISMATCH", ARCH_MISMATCH.String())
	require.Equal(t, "curandStatus(42)", Status(42).String())
	require.Equal(t, "curandRngType(7)", RngType(7).String())
}

func TestDescriptions(t *testing.T) {
	d := Descriptions()
	require.Len(t, d, 12)
	require.NotContains(t, d, int(SUCCESS))
	require.Equal(t, "CURAND_STATUS_INTERNAL_ERROR", d[999])
	require.Equal(t, "CURAND_STATUS_NOT_INITIALIZED", d[101])
}
