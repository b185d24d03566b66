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

// Manager defines an interface for managing devices
type Manager interface {
	GetDevices() ([]Device, error)
	GetCudaDriverVersion() (*uint, *uint, error)
}

// Device defines an interface for a CUDA device
type Device interface {
	GetIndex() int
	GetName() (string, error)
	GetTotalMemoryMB() (uint64, error)
	GetCudaComputeCapability() (int, int, error)
}
