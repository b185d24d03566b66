/**
# Copyright 2024 NVIDIA CORPORATION
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


package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testPlatformInfo struct {
	hasNvml   bool
	isTegra   bool
	hasDXCore bool
}

func (i testPlatformInfo) HasDXCore() (bool, string)     { return i.hasDXCore, "dxcore" }
func (i testPlatformInfo) HasNvml() (bool, string)       { return i.hasNvml, "nvml" }
func (i testPlatformInfo) IsTegraSystem() (bool, string) { return i.isTegra, "tegra" }

func TestDetectPlatform(t *testing.T) {
	testCases := []struct {
		description      string
		info             testPlatformInfo
		expectedPlatform platform
		expectedDetected bool
	}{
		{
			description:      "nothing detected",
			expectedDetected: false,
		},
		{
			description:      "nvml",
			info:             testPlatformInfo{hasNvml: true},
			expectedPlatform: platform{hasNvml: true},
			expectedDetected: true,
		},
		{
			description:      "tegra on nvml system is ignored",
			info:             testPlatformInfo{hasNvml: true, isTegra: true},
			expectedPlatform: platform{hasNvml: true},
			expectedDetected: true,
		},
		{
			description:      "tegra",
			info:             testPlatformInfo{isTegra: true},
			expectedPlatform: platform{isTegra: true},
			expectedDetected: true,
		},
		{
			description:      "wsl",
			info:             testPlatformInfo{hasDXCore: true},
			expectedPlatform: platform{hasDXCore: true},
			expectedDetected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			p := detectPlatform(tc.info)
			require.Equal(t, tc.expectedPlatform, p)
			require.Equal(t, tc.expectedDetected, p.detected())
		})
	}
}

func TestCudaLibraries(t *testing.T) {
	testCases := []struct {
		description string
		platform    platform
		driverRoot  string
		configured  []string
		expected    []string
	}{
		{
			description: "configured libraries are used as is",
			platform:    platform{hasDXCore: true},
			driverRoot:  "/",
			configured:  []string{"/opt/cuda/libcuda.so"},
			expected:    []string{"/opt/cuda/libcuda.so"},
		},
		{
			description: "nvml system uses the default names",
			platform:    platform{hasNvml: true},
			driverRoot:  "/",
			expected:    []string{"libcuda.so.1", "libcuda.so"},
		},
		{
			description: "wsl library is tried first",
			platform:    platform{hasDXCore: true},
			driverRoot:  "/",
			expected:    []string{"/usr/lib/wsl/lib/libcuda.so.1", "libcuda.so.1", "libcuda.so"},
		},
		{
			description: "tegra library is resolved under the driver root",
			platform:    platform{isTegra: true},
			driverRoot:  "/run/nvidia/driver",
			expected:    []string{"/run/nvidia/driver/usr/lib/aarch64-linux-gnu/tegra/libcuda.so.1", "libcuda.so.1", "libcuda.so"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, tc.platform.cudaLibraries(tc.driverRoot, tc.configured))
		})
	}
}
