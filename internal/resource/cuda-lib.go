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

type cudaLib struct {
	driver cuda.Interface
}

var _ Manager = (*cudaLib)(nil)

// NewCudaManager returns an resource manger for the CUDA devices visible to driver
func NewCudaManager(driver cuda.Interface) Manager {
	return &cudaLib{driver: driver}
}

// GetDevices returns the CUDA devices available on the system
func (l *cudaLib) GetDevices() ([]Device, error) {
	count, r := l.driver.DeviceGetCount()
	if r != cuda.SUCCESS {
		return nil, fmt.Errorf("failed to get number of CUDA devices: %w", cuda.Errors.Error("cuDeviceGetCount", int(r)))
	}

	var devices []Device
	for i := 0; i < count; i++ {
		d, r := l.driver.DeviceGet(i)
		if r != cuda.SUCCESS {
			return nil, fmt.Errorf("failed to get CUDA device %v: %w", i, cuda.Errors.Error("cuDeviceGet", int(r)))
		}
		devices = append(devices, NewCudaDevice(l.driver, i, d))
	}

	return devices, nil
}

// GetCudaDriverVersion returns the CUDA driver version
func (l *cudaLib) GetCudaDriverVersion() (*uint, *uint, error) {
	version, r := l.driver.DriverGetVersion()
	if r != cuda.SUCCESS {
		return nil, nil, fmt.Errorf("failed to get driver version: %w", cuda.Errors.Error("cuDriverGetVersion", int(r)))
	}

	major := uint(version) / 1000
	minor := uint(version) % 100 / 10

	return &major, &minor, nil
}
