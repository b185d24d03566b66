/**
# Copyright (c) 2022, NVIDIA CORPORATION.  All rights reserved.
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

package resource

import (
	"fmt"

	"github.com/NVIDIA/go-curand/internal/cuda"
)

type cudaDevice struct {
	driver cuda.Interface
	index  int
	device cuda.Device
}

var _ Device = (*cudaDevice)(nil)

// NewCudaDevice constructs a new CUDA device
func NewCudaDevice(driver cuda.Interface, index int, d cuda.Device) Device {
	return &cudaDevice{driver: driver, index: index, device: d}
}

// GetIndex returns the ordinal the device was enumerated at.
func (d *cudaDevice) GetIndex() int {
	return d.index
}

// GetCudaComputeCapability returns the CUDA Compute Capability major and minor versions.
func (d *cudaDevice) GetCudaComputeCapability() (int, int, error) {
	major, r := d.driver.DeviceGetAttribute(cuda.COMPUTE_CAPABILITY_MAJOR, d.device)
	if r != cuda.SUCCESS {
		return 0, 0, fmt.Errorf("failed to get CUDA compute capability major for device: %w", cuda.Errors.Error("cuDeviceGetAttribute", int(r)))
	}

	minor, r := d.driver.DeviceGetAttribute(cuda.COMPUTE_CAPABILITY_MINOR, d.device)
	if r != cuda.SUCCESS {
		return 0, 0, fmt.Errorf("failed to get CUDA compute capability minor for device: %w", cuda.Errors.Error("cuDeviceGetAttribute", int(r)))
	}

	return major, minor, nil
}

// GetTotalMemoryMB returns the total memory for a device
func (d *cudaDevice) GetTotalMemoryMB() (uint64, error) {
	total, r := d.driver.DeviceTotalMem(d.device)
	if r != cuda.SUCCESS {
		return 0, fmt.Errorf("failed to get memory info for device: %w", cuda.Errors.Error("cuDeviceTotalMem_v2", int(r)))
	}
	return total / (1024 * 1024), nil
}

// GetName returns the device name / model.
func (d *cudaDevice) GetName() (string, error) {
	name, r := d.driver.DeviceGetName(d.device)
	if r != cuda.SUCCESS {
		return "", fmt.Errorf("failed to get device name: %w", cuda.Errors.Error("cuDeviceGetName", int(r)))
	}

	return name, nil
}
