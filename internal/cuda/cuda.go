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

import (
	"unsafe"
)

/*
#cgo LDFLAGS: -Wl,--unresolved-symbols=ignore-in-object-files

#include <stddef.h>

#ifdef _WIN32
#define CUDAAPI __stdcall
#else
#define CUDAAPI
#endif

typedef int CUresult;
typedef int CUdevice;
typedef int CUdevice_attribute;

// Opaque handles are declared as size_t so that they can be passed around as
// integers on the Go side.
typedef size_t CUcontext;
typedef size_t CUdeviceptr;

CUresult CUDAAPI cuInit(unsigned int Flags);
CUresult CUDAAPI cuDriverGetVersion(int *driverVersion);
CUresult CUDAAPI cuDeviceGet(CUdevice *device, int ordinal);
CUresult CUDAAPI cuDeviceGetAttribute(int *pi, CUdevice_attribute attrib, CUdevice dev);
CUresult CUDAAPI cuDeviceGetCount(int *count);
CUresult CUDAAPI cuDeviceTotalMem_v2(size_t *bytes, CUdevice dev);
CUresult CUDAAPI cuDeviceGetName(char *name, int len, CUdevice dev);
CUresult CUDAAPI cuCtxCreate_v2(CUcontext *pctx, unsigned int flags, CUdevice dev);
CUresult CUDAAPI cuCtxDestroy_v2(CUcontext ctx);
CUresult CUDAAPI cuCtxPushCurrent_v2(CUcontext ctx);
CUresult CUDAAPI cuCtxPopCurrent_v2(CUcontext *pctx);
CUresult CUDAAPI cuMemAlloc_v2(CUdeviceptr *dptr, size_t bytesize);
CUresult CUDAAPI cuMemFree_v2(CUdeviceptr dptr);
CUresult CUDAAPI cuMemcpyDtoH_v2(void *dstHost, CUdeviceptr srcDevice, size_t ByteCount);
*/
import "C"

// cuInit function as declared in cuda.h
func cuInit(flags uint32) Result {
	_ret := C.cuInit(C.uint(flags))
	return Result(_ret)
}

// cuDriverGetVersion function as declared in cuda.h
func cuDriverGetVersion(version *int32) Result {
	cVersion := (*C.int)(unsafe.Pointer(version))
	_ret := C.cuDriverGetVersion(cVersion)
	return Result(_ret)
}

// cuDeviceGet function as declared in cuda.h
func cuDeviceGet(device *Device, index int32) Result {
	cDevice := (*C.CUdevice)(unsafe.Pointer(device))
	_ret := C.cuDeviceGet(cDevice, C.int(index))
	return Result(_ret)
}

// cuDeviceGetAttribute function as declared in cuda.h
func cuDeviceGetAttribute(value *int32, attribute DeviceAttribute, dev Device) Result {
	cValue := (*C.int)(unsafe.Pointer(value))
	_ret := C.cuDeviceGetAttribute(cValue, C.CUdevice_attribute(attribute), C.CUdevice(dev))
	return Result(_ret)
}

// cuDeviceGetCount function as declared in cuda.h
func cuDeviceGetCount(count *int32) Result {
	cCount := (*C.int)(unsafe.Pointer(count))
	_ret := C.cuDeviceGetCount(cCount)
	return Result(_ret)
}

// cuDeviceTotalMem function as declared in cuda.h
func cuDeviceTotalMem(bytes *uint64, dev Device) Result {
	cBytes := (*C.size_t)(unsafe.Pointer(bytes))
	_ret := C.cuDeviceTotalMem_v2(cBytes, C.CUdevice(dev))
	return Result(_ret)
}

// cuDeviceGetName function as declared in cuda.h
func cuDeviceGetName(name *byte, len int32, dev Device) Result {
	cName := (*C.char)(unsafe.Pointer(name))
	_ret := C.cuDeviceGetName(cName, C.int(len), C.CUdevice(dev))
	return Result(_ret)
}

// cuCtxCreate function as declared in cuda.h
func cuCtxCreate(ctx *ContextHandle, flags uint32, dev Device) Result {
	cCtx := (*C.CUcontext)(unsafe.Pointer(ctx))
	_ret := C.cuCtxCreate_v2(cCtx, C.uint(flags), C.CUdevice(dev))
	return Result(_ret)
}

// cuCtxDestroy function as declared in cuda.h
func cuCtxDestroy(ctx ContextHandle) Result {
	_ret := C.cuCtxDestroy_v2(C.CUcontext(ctx))
	return Result(_ret)
}

// cuCtxPushCurrent function as declared in cuda.h
func cuCtxPushCurrent(ctx ContextHandle) Result {
	_ret := C.cuCtxPushCurrent_v2(C.CUcontext(ctx))
	return Result(_ret)
}

// cuCtxPopCurrent function as declared in cuda.h
func cuCtxPopCurrent(ctx *ContextHandle) Result {
	cCtx := (*C.CUcontext)(unsafe.Pointer(ctx))
	_ret := C.cuCtxPopCurrent_v2(cCtx)
	return Result(_ret)
}

// cuMemAlloc function as declared in cuda.h
func cuMemAlloc(ptr *DevicePtr, size uint64) Result {
	cPtr := (*C.CUdeviceptr)(unsafe.Pointer(ptr))
	_ret := C.cuMemAlloc_v2(cPtr, C.size_t(size))
	return Result(_ret)
}

// cuMemFree function as declared in cuda.h
func cuMemFree(ptr DevicePtr) Result {
	_ret := C.cuMemFree_v2(C.CUdeviceptr(ptr))
	return Result(_ret)
}

// cuMemcpyDtoH function as declared in cuda.h
func cuMemcpyDtoH(dst unsafe.Pointer, src DevicePtr, size uint64) Result {
	_ret := C.cuMemcpyDtoH_v2(dst, C.CUdeviceptr(src), C.size_t(size))
	return Result(_ret)
}
