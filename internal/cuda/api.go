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
	"bytes"
	"fmt"
	"io"
	"sync"
	"unsafe"

	"github.com/NVIDIA/go-nvml/pkg/dl"
	"k8s.io/klog/v2"

	"github.com/NVIDIA/go-curand/internal/loader"
)

const (
	libraryLoadFlags = dl.RTLD_LAZY | dl.RTLD_GLOBAL
)

// DefaultLibraries lists the names tried, in order, when loading the CUDA driver library.
var DefaultLibraries = []string{"libcuda.so.1", "libcuda.so"}

var requiredSymbols = []string{
	"cuInit",
	"cuCtxCreate_v2",
	"cuCtxDestroy_v2",
	"cuCtxPushCurrent_v2",
	"cuCtxPopCurrent_v2",
}

//go:generate moq -stub -out interface_mock.go . Interface

// Interface defines the subset of the CUDA driver API used by this module.
type Interface interface {
	Init(flags uint32) Result
	DriverGetVersion() (int, Result)
	DeviceGet(index int) (Device, Result)
	DeviceGetCount() (int, Result)
	DeviceGetName(device Device) (string, Result)
	DeviceGetAttribute(attribute DeviceAttribute, device Device) (int, Result)
	DeviceTotalMem(device Device) (uint64, Result)
	CtxCreate(flags uint32, device Device) (ContextHandle, Result)
	CtxDestroy(ctx ContextHandle) Result
	CtxPushCurrent(ctx ContextHandle) Result
	CtxPopCurrent() (ContextHandle, Result)
	MemAlloc(size uint64) (DevicePtr, Result)
	MemFree(ptr DevicePtr) Result
	MemcpyDtoH(dst []byte, src DevicePtr) Result
}

// lock serializes the loading of native libraries across the process.
var lock sync.Mutex

// driver stores a reference to the loaded cuda dynamic library
var driver = loader.New[Interface](&lock)

// Lock returns the process-wide lock that guards the loading of native libraries.
func Lock() sync.Locker {
	return &lock
}

// Initialize loads the CUDA driver library, calls cuInit and merges the
// CUresult descriptions into the shared error table.
// It is a no-op if the library is already loaded. DefaultLibraries is used
// only when no list is passed.
func Initialize(libraries ...string) error {
	if libraries == nil {
		libraries = DefaultLibraries
	}
	return initialize(driver, libraries, Open, Errors)
}

func initialize(b *loader.Binding[Interface], libraries []string, open loader.OpenFunc[Interface], errs *ErrorTable) error {
	openAndInit := func(name string) (Interface, error) {
		lib, err := open(name)
		if err != nil {
			return nil, err
		}
		if r := lib.Init(0); r != SUCCESS {
			if c, ok := lib.(io.Closer); ok {
				_ = c.Close()
			}
			return nil, fmt.Errorf("cuInit failed: %v", r)
		}
		return lib, nil
	}
	onLoad := func(name string, _ Interface) {
		errs.Merge(Descriptions())
		klog.Infof("Initialized CUDA driver from %v", name)
	}
	if err := b.Initialize(libraries, openAndInit, onLoad); err != nil {
		return fmt.Errorf("error initializing CUDA: %w", err)
	}
	return nil
}

// Driver returns the loaded CUDA driver library or nil if Initialize has not succeeded.
func Driver() Interface {
	lib, _ := driver.Get()
	return lib
}

// library implements Interface over a dynamically loaded libcuda.
type library struct {
	dl *dl.DynamicLibrary
}

var _ Interface = (*library)(nil)

// Open loads the named CUDA driver library.
// The library is opened with RTLD_GLOBAL so that the cgo declarations of this
// package resolve against it.
func Open(name string) (Interface, error) {
	lib := dl.New(name, libraryLoadFlags)
	if err := lib.Open(); err != nil {
		return nil, err
	}
	for _, symbol := range requiredSymbols {
		if err := lib.Lookup(symbol); err != nil {
			_ = lib.Close()
			return nil, fmt.Errorf("missing symbol %v: %w", symbol, err)
		}
	}
	return &library{dl: lib}, nil
}

// Close unloads the library.
func (l *library) Close() error {
	return l.dl.Close()
}

// Init calls cuInit
func (l *library) Init(flags uint32) Result {
	return cuInit(flags)
}

// DriverGetVersion returns the driver version as an int.
func (l *library) DriverGetVersion() (int, Result) {
	var version int32
	r := cuDriverGetVersion(&version)
	return int(version), r
}

// DeviceGet returns the device with the specified index.
func (l *library) DeviceGet(index int) (Device, Result) {
	var device Device
	r := cuDeviceGet(&device, int32(index))
	return device, r
}

// DeviceGetCount returns the number of CUDA-capable devices available
func (l *library) DeviceGetCount() (int, Result) {
	var count int32
	r := cuDeviceGetCount(&count)
	return int(count), r
}

// DeviceGetName returns the name of the specified device.
func (l *library) DeviceGetName(device Device) (string, Result) {
	name := make([]byte, 96)
	r := cuDeviceGetName(&name[0], int32(len(name)), device)
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name), r
}

// DeviceGetAttribute returns the specified attribute for the specified device.
func (l *library) DeviceGetAttribute(attribute DeviceAttribute, device Device) (int, Result) {
	var value int32
	r := cuDeviceGetAttribute(&value, attribute, device)
	return int(value), r
}

// DeviceTotalMem returns the total memory for the specified device
func (l *library) DeviceTotalMem(device Device) (uint64, Result) {
	var total uint64
	r := cuDeviceTotalMem(&total, device)
	return total, r
}

// CtxCreate creates a context on the specified device.
// The new context is current to the calling thread.
func (l *library) CtxCreate(flags uint32, device Device) (ContextHandle, Result) {
	var ctx ContextHandle
	r := cuCtxCreate(&ctx, flags, device)
	return ctx, r
}

func (l *library) CtxDestroy(ctx ContextHandle) Result {
	return cuCtxDestroy(ctx)
}

func (l *library) CtxPushCurrent(ctx ContextHandle) Result {
	return cuCtxPushCurrent(ctx)
}

func (l *library) CtxPopCurrent() (ContextHandle, Result) {
	var ctx ContextHandle
	r := cuCtxPopCurrent(&ctx)
	return ctx, r
}

func (l *library) MemAlloc(size uint64) (DevicePtr, Result) {
	var ptr DevicePtr
	r := cuMemAlloc(&ptr, size)
	return ptr, r
}

func (l *library) MemFree(ptr DevicePtr) Result {
	return cuMemFree(ptr)
}

// MemcpyDtoH copies len(dst) bytes from device memory to dst.
func (l *library) MemcpyDtoH(dst []byte, src DevicePtr) Result {
	if len(dst) == 0 {
		return SUCCESS
	}
	return cuMemcpyDtoH(unsafe.Pointer(&dst[0]), src, uint64(len(dst)))
}
