/**
# Copyright (c) 2022-2024, NVIDIA CORPORATION.  All rights reserved.
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

import "fmt"

// Result represents the CUresult return type.
type Result int32

const (
	SUCCESS                              Result = 0
	ERROR_INVALID_VALUE                  Result = 1
	ERROR_OUT_OF_MEMORY                  Result = 2
	ERROR_NOT_INITIALIZED                Result = 3
	ERROR_DEINITIALIZED                  Result = 4
	ERROR_PROFILER_DISABLED              Result = 5
	ERROR_PROFILER_NOT_INITIALIZED       Result = 6
	ERROR_PROFILER_ALREADY_STARTED       Result = 7
	ERROR_PROFILER_ALREADY_STOPPED       Result = 8
	ERROR_NO_DEVICE                      Result = 100
	ERROR_INVALID_DEVICE                 Result = 101
	ERROR_INVALID_IMAGE                  Result = 200
	ERROR_INVALID_CONTEXT                Result = 201
	ERROR_CONTEXT_ALREADY_CURRENT        Result = 202
	ERROR_MAP_FAILED                     Result = 205
	ERROR_UNMAP_FAILED                   Result = 206
	ERROR_ARRAY_IS_MAPPED                Result = 207
	ERROR_ALREADY_MAPPED                 Result = 208
	ERROR_NO_BINARY_FOR_GPU              Result = 209
	ERROR_ALREADY_ACQUIRED               Result = 210
	ERROR_NOT_MAPPED                     Result = 211
	ERROR_NOT_MAPPED_AS_ARRAY            Result = 212
	ERROR_NOT_MAPPED_AS_POINTER          Result = 213
	ERROR_ECC_UNCORRECTABLE              Result = 214
	ERROR_UNSUPPORTED_LIMIT              Result = 215
	ERROR_CONTEXT_ALREADY_IN_USE         Result = 216
	ERROR_PEER_ACCESS_UNSUPPORTED        Result = 217
	ERROR_INVALID_PTX                    Result = 218
	ERROR_INVALID_GRAPHICS_CONTEXT       Result = 219
	ERROR_NVLINK_UNCORRECTABLE           Result = 220
	ERROR_JIT_COMPILER_NOT_FOUND         Result = 221
	ERROR_INVALID_SOURCE                 Result = 300
	ERROR_FILE_NOT_FOUND                 Result = 301
	ERROR_SHARED_OBJECT_SYMBOL_NOT_FOUND Result = 302
	ERROR_SHARED_OBJECT_INIT_FAILED      Result = 303
	ERROR_OPERATING_SYSTEM               Result = 304
	ERROR_INVALID_HANDLE                 Result = 400
	ERROR_NOT_FOUND                      Result = 500
	ERROR_NOT_READY                      Result = 600
	ERROR_ILLEGAL_ADDRESS                Result = 700
	ERROR_LAUNCH_OUT_OF_RESOURCES        Result = 701
	ERROR_LAUNCH_TIMEOUT                 Result = 702
	ERROR_LAUNCH_INCOMPATIBLE_TEXTURING  Result = 703
	ERROR_PEER_ACCESS_ALREADY_ENABLED    Result = 704
	ERROR_PEER_ACCESS_NOT_ENABLED        Result = 705
	ERROR_PRIMARY_CONTEXT_ACTIVE         Result = 708
	ERROR_CONTEXT_IS_DESTROYED           Result = 709
	ERROR_ASSERT                         Result = 710
	ERROR_TOO_MANY_PEERS                 Result = 711
	ERROR_HOST_MEMORY_ALREADY_REGISTERED Result = 712
	ERROR_HOST_MEMORY_NOT_REGISTERED     Result = 713
	ERROR_HARDWARE_STACK_ERROR           Result = 714
	ERROR_ILLEGAL_INSTRUCTION            Result = 715
	ERROR_MISALIGNED_ADDRESS             Result = 716
	ERROR_INVALID_ADDRESS_SPACE          Result = 717
	ERROR_INVALID_PC                     Result = 718
	ERROR_LAUNCH_FAILED                  Result = 719
	ERROR_COOPERATIVE_LAUNCH_TOO_LARGE   Result = 720
	ERROR_NOT_PERMITTED                  Result = 800
	ERROR_NOT_SUPPORTED                  Result = 801
	ERROR_UNKNOWN                        Result = 999
)

// descriptions holds the name of each CUresult as reported in the shared error table.
var descriptions = map[Result]string{
	ERROR_INVALID_VALUE:                  "CUDA_ERROR_INVALID_VALUE",
	ERROR_OUT_OF_MEMORY:                  "CUDA_ERROR_OUT_OF_MEMORY",
	ERROR_NOT_INITIALIZED:                "CUDA_ERROR_NOT_INITIALIZED",
	ERROR_DEINITIALIZED:                  "CUDA_ERROR_DEINITIALIZED",
	ERROR_PROFILER_DISABLED:              "CUDA_ERROR_PROFILER_DISABLED",
	ERROR_PROFILER_NOT_INITIALIZED:       "CUDA_ERROR_PROFILER_NOT_INITIALIZED",
	ERROR_PROFILER_ALREADY_STARTED:       "CUDA_ERROR_PROFILER_ALREADY_STARTED",
	ERROR_PROFILER_ALREADY_STOPPED:       "CUDA_ERROR_PROFILER_ALREADY_STOPPED",
	ERROR_NO_DEVICE:                      "CUDA_ERROR_NO_DEVICE",
	ERROR_INVALID_DEVICE:                 "CUDA_ERROR_INVALID_DEVICE",
	ERROR_INVALID_IMAGE:                  "CUDA_ERROR_INVALID_IMAGE",
	ERROR_INVALID_CONTEXT:                "CUDA_ERROR_INVALID_CONTEXT",
	ERROR_CONTEXT_ALREADY_CURRENT:        "CUDA_ERROR_CONTEXT_ALREADY_CURRENT",
	ERROR_MAP_FAILED:                     "CUDA_ERROR_MAP_FAILED",
	ERROR_UNMAP_FAILED:                   "CUDA_ERROR_UNMAP_FAILED",
	ERROR_ARRAY_IS_MAPPED:                "CUDA_ERROR_ARRAY_IS_MAPPED",
	ERROR_ALREADY_MAPPED:                 "CUDA_ERROR_ALREADY_MAPPED",
	ERROR_NO_BINARY_FOR_GPU:              "CUDA_ERROR_NO_BINARY_FOR_GPU",
	ERROR_ALREADY_ACQUIRED:               "CUDA_ERROR_ALREADY_ACQUIRED",
	ERROR_NOT_MAPPED:                     "CUDA_ERROR_NOT_MAPPED",
	ERROR_NOT_MAPPED_AS_ARRAY:            "CUDA_ERROR_NOT_MAPPED_AS_ARRAY",
	ERROR_NOT_MAPPED_AS_POINTER:          "CUDA_ERROR_NOT_MAPPED_AS_POINTER",
	ERROR_ECC_UNCORRECTABLE:              "CUDA_ERROR_ECC_UNCORRECTABLE",
	ERROR_UNSUPPORTED_LIMIT:              "CUDA_ERROR_UNSUPPORTED_LIMIT",
	ERROR_CONTEXT_ALREADY_IN_USE:         "CUDA_ERROR_CONTEXT_ALREADY_IN_USE",
	ERROR_PEER_ACCESS_UNSUPPORTED:        "CUDA_ERROR_PEER_ACCESS_UNSUPPORTED",
	ERROR_INVALID_PTX:                    "CUDA_ERROR_INVALID_PTX",
	ERROR_INVALID_GRAPHICS_CONTEXT:       "CUDA_ERROR_INVALID_GRAPHICS_CONTEXT",
	ERROR_NVLINK_UNCORRECTABLE:           "CUDA_ERROR_NVLINK_UNCORRECTABLE",
	ERROR_JIT_COMPILER_NOT_FOUND:         "CUDA_ERROR_JIT_COMPILER_NOT_FOUND",
	ERROR_INVALID_SOURCE:                 "CUDA_ERROR_INVALID_SOURCE",
	ERROR_FILE_NOT_FOUND:                 "CUDA_ERROR_FILE_NOT_FOUND",
	ERROR_SHARED_OBJECT_SYMBOL_NOT_FOUND: "CUDA_ERROR_SHARED_OBJECT_SYMBOL_NOT_FOUND",
	ERROR_SHARED_OBJECT_INIT_FAILED:      "CUDA_ERROR_SHARED_OBJECT_INIT_FAILED",
	ERROR_OPERATING_SYSTEM:               "CUDA_ERROR_OPERATING_SYSTEM",
	ERROR_INVALID_HANDLE:                 "CUDA_ERROR_INVALID_HANDLE",
	ERROR_NOT_FOUND:                      "CUDA_ERROR_NOT_FOUND",
	ERROR_NOT_READY:                      "CUDA_ERROR_NOT_READY",
	ERROR_ILLEGAL_ADDRESS:                "CUDA_ERROR_ILLEGAL_ADDRESS",
	ERROR_LAUNCH_OUT_OF_RESOURCES:        "CUDA_ERROR_LAUNCH_OUT_OF_RESOURCES",
	ERROR_LAUNCH_TIMEOUT:                 "CUDA_ERROR_LAUNCH_TIMEOUT",
	ERROR_LAUNCH_INCOMPATIBLE_TEXTURING:  "CUDA_ERROR_LAUNCH_INCOMPATIBLE_TEXTURING",
	ERROR_PEER_ACCESS_ALREADY_ENABLED:    "CUDA_ERROR_PEER_ACCESS_ALREADY_ENABLED",
	ERROR_PEER_ACCESS_NOT_ENABLED:        "CUDA_ERROR_PEER_ACCESS_NOT_ENABLED",
	ERROR_PRIMARY_CONTEXT_ACTIVE:         "CUDA_ERROR_PRIMARY_CONTEXT_ACTIVE",
	ERROR_CONTEXT_IS_DESTROYED:           "CUDA_ERROR_CONTEXT_IS_DESTROYED",
	ERROR_ASSERT:                         "CUDA_ERROR_ASSERT",
	ERROR_TOO_MANY_PEERS:                 "CUDA_ERROR_TOO_MANY_PEERS",
	ERROR_HOST_MEMORY_ALREADY_REGISTERED: "CUDA_ERROR_HOST_MEMORY_ALREADY_REGISTERED",
	ERROR_HOST_MEMORY_NOT_REGISTERED:     "CUDA_ERROR_HOST_MEMORY_NOT_REGISTERED",
	ERROR_HARDWARE_STACK_ERROR:           "CUDA_ERROR_HARDWARE_STACK_ERROR",
	ERROR_ILLEGAL_INSTRUCTION:            "CUDA_ERROR_ILLEGAL_INSTRUCTION",
	ERROR_MISALIGNED_ADDRESS:             "CUDA_ERROR_MISALIGNED_ADDRESS",
	ERROR_INVALID_ADDRESS_SPACE:          "CUDA_ERROR_INVALID_ADDRESS_SPACE",
	ERROR_INVALID_PC:                     "CUDA_ERROR_INVALID_PC",
	ERROR_LAUNCH_FAILED:                  "CUDA_ERROR_LAUNCH_FAILED",
	ERROR_COOPERATIVE_LAUNCH_TOO_LARGE:   "CUDA_ERROR_COOPERATIVE_LAUNCH_TOO_LARGE",
	ERROR_NOT_PERMITTED:                  "CUDA_ERROR_NOT_PERMITTED",
	ERROR_NOT_SUPPORTED:                  "CUDA_ERROR_NOT_SUPPORTED",
	ERROR_UNKNOWN:                        "CUDA_ERROR_UNKNOWN",
}

// String returns the CUresult name of the result.
func (r Result) String() string {
	if r == SUCCESS {
		return "CUDA_SUCCESS"
	}
	if d, ok := descriptions[r]; ok {
		return d
	}
	return fmt.Sprintf("CUresult(%d)", int32(r))
}

// Descriptions returns the error descriptions of all CUresult codes keyed by code.
func Descriptions() map[int]string {
	d := make(map[int]string, len(descriptions))
	for r, s := range descriptions {
		d[int(r)] = s
	}
	return d
}

// DeviceAttribute represents the CUdevice_attribute type
type DeviceAttribute int32

const (
	COMPUTE_CAPABILITY_MAJOR DeviceAttribute = 75
	COMPUTE_CAPABILITY_MINOR DeviceAttribute = 76
)

// Device represents a CUDA device handle
type Device int32

// ContextHandle is a CUcontext carried as an integer across the cgo boundary.
type ContextHandle uint64

// NilContext is the handle of a context that was never created or was destroyed.
const NilContext ContextHandle = 0

// DevicePtr is a CUdeviceptr.
type DevicePtr uint64

// Context creation flags.
const (
	CTX_SCHED_AUTO          uint32 = 0x00
	CTX_SCHED_SPIN          uint32 = 0x01
	CTX_SCHED_YIELD         uint32 = 0x02
	CTX_SCHED_BLOCKING_SYNC uint32 = 0x04
	CTX_MAP_HOST            uint32 = 0x08
)
