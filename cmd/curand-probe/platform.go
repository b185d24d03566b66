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
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/NVIDIA/go-curand/internal/cuda"
)

const (
	wslCudaLibrary   = "/usr/lib/wsl/lib/libcuda.so.1"
	tegraCudaLibrary = "/usr/lib/aarch64-linux-gnu/tegra/libcuda.so.1"
)

// platformInfo is the subset of the go-nvlib info.Interface used to detect
// the driver installation.
type platformInfo interface {
	HasDXCore() (bool, string)
	HasNvml() (bool, string)
	IsTegraSystem() (bool, string)
}

type platform struct {
	hasNvml   bool
	isTegra   bool
	hasDXCore bool
}

// detectPlatform logs and records the driver components found on the system.
func detectPlatform(infolib platformInfo) platform {
	// logWithReason logs the output of the has* / is* checks from the info.Interface
	logWithReason := func(f func() (bool, string), tag string) bool {
		is, reason := f()
		if !is {
			tag = "non-" + tag
		}
		klog.Infof("Detected %v platform: %v", tag, reason)
		return is
	}

	p := platform{
		hasNvml:   logWithReason(infolib.HasNvml, "NVML"),
		isTegra:   logWithReason(infolib.IsTegraSystem, "Tegra"),
		hasDXCore: logWithReason(infolib.HasDXCore, "DXCore"),
	}

	// Integrated and discrete GPUs on the same node are not supported.
	if p.hasNvml && p.isTegra {
		klog.Warning("Ignoring Tegra driver libraries on NVML system")
		p.isTegra = false
	}
	if !p.detected() {
		klog.Warning("No NVIDIA driver components detected")
	}
	return p
}

func (p platform) detected() bool {
	return p.hasNvml || p.isTegra || p.hasDXCore
}

// cudaLibraries returns the CUDA driver libraries to try, in order.
// Configured libraries are returned unchanged. Otherwise the platform specific
// locations, resolved under driverRoot, are tried before the default names.
func (p platform) cudaLibraries(driverRoot string, configured []string) []string {
	if configured != nil {
		return configured
	}

	var candidates []string
	if p.hasDXCore {
		candidates = append(candidates, filepath.Join(driverRoot, wslCudaLibrary))
	}
	if p.isTegra {
		candidates = append(candidates, filepath.Join(driverRoot, tegraCudaLibrary))
	}
	return append(candidates, cuda.DefaultLibraries...)
}
