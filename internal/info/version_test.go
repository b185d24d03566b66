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

package info

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatVersions(t *testing.T) {
	require.Equal(t, "12.2", FormatCudaVersion(12020))
	require.Equal(t, "11.8", FormatCudaVersion(11080))
	require.Equal(t, "10.3.3", FormatCurandVersion(10303))
	require.Equal(t, "10.2.10", FormatCurandVersion(10210))
}

func TestGetVersionString(t *testing.T) {
	defer func(v, c string) { version, gitCommit = v, c }(version, gitCommit)

	version, gitCommit = "v0.1.0", ""
	require.Equal(t, "v0.1.0\ncurand 10.3.3", GetVersionString("curand 10.3.3"))

	gitCommit = "abc123"
	require.Equal(t, []string{"v0.1.0", "commit: abc123"}, GetVersionParts())
}
