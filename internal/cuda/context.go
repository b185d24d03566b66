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

package cuda

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"k8s.io/klog/v2"
)

var (
	// ErrContextInUse is returned when closing a context that still has dependent objects.
	ErrContextInUse = errors.New("context is in use")
	// ErrContextReleased is returned when using a context that has been closed.
	ErrContextReleased = errors.New("context has been released")
	// ErrNotInitialized is returned when no CUDA driver library is available.
	ErrNotInitialized = errors.New("CUDA driver not initialized")
)

// Context represents a CUDA driver context on a single device.
// Objects that depend on the context register themselves with AddRef and
// must be released before the context is closed.
type Context struct {
	sync.Mutex
	driver Interface
	device Device
	handle ContextHandle
	refs   map[string]struct{}
}

// NewContext creates a context on the specified device.
// The context is not left current on the calling thread; use WithCurrent to
// run calls against it.
func NewContext(driver Interface, device Device, flags uint32) (*Context, error) {
	if driver == nil {
		return nil, ErrNotInitialized
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	handle, r := driver.CtxCreate(flags, device)
	if r != SUCCESS {
		return nil, Errors.Error("cuCtxCreate_v2", int(r))
	}
	if _, r := driver.CtxPopCurrent(); r != SUCCESS {
		_ = driver.CtxDestroy(handle)
		return nil, Errors.Error("cuCtxPopCurrent_v2", int(r))
	}

	klog.V(4).Infof("Created context %#x on device %v", handle, device)

	c := &Context{
		driver: driver,
		device: device,
		handle: handle,
		refs:   make(map[string]struct{}),
	}
	return c, nil
}

// Handle returns the native context handle, or NilContext once the context is closed.
func (c *Context) Handle() ContextHandle {
	c.Lock()
	defer c.Unlock()
	return c.handle
}

// Device returns the device the context was created on.
func (c *Context) Device() Device {
	return c.device
}

// AddRef registers a dependent object with the specified id.
func (c *Context) AddRef(id string) {
	c.Lock()
	defer c.Unlock()
	c.refs[id] = struct{}{}
}

// DelRef removes the dependent object with the specified id.
func (c *Context) DelRef(id string) {
	c.Lock()
	defer c.Unlock()
	delete(c.refs, id)
}

// Refs returns the ids of the dependent objects in sorted order.
func (c *Context) Refs() []string {
	c.Lock()
	defer c.Unlock()
	var refs []string
	for id := range c.refs {
		refs = append(refs, id)
	}
	sort.Strings(refs)
	return refs
}

// WithCurrent makes the context current on the calling thread, runs fn and
// restores the previously current context.
func (c *Context) WithCurrent(fn func() error) (rerr error) {
	handle := c.Handle()
	if handle == NilContext {
		return ErrContextReleased
	}

	// The current context is per OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if r := c.driver.CtxPushCurrent(handle); r != SUCCESS {
		return Errors.Error("cuCtxPushCurrent_v2", int(r))
	}
	defer func() {
		if _, r := c.driver.CtxPopCurrent(); r != SUCCESS && rerr == nil {
			rerr = Errors.Error("cuCtxPopCurrent_v2", int(r))
		}
	}()

	return fn()
}

// Close destroys the native context.
// It fails with ErrContextInUse while dependent objects are registered and is
// a no-op for a context that is already closed.
func (c *Context) Close() error {
	c.Lock()
	defer c.Unlock()

	if c.handle == NilContext {
		return nil
	}
	if len(c.refs) > 0 {
		return fmt.Errorf("%w: %d dependent objects", ErrContextInUse, len(c.refs))
	}
	if r := c.driver.CtxDestroy(c.handle); r != SUCCESS {
		return Errors.Error("cuCtxDestroy_v2", int(r))
	}
	klog.V(4).Infof("Destroyed context %#x", c.handle)
	c.handle = NilContext
	return nil
}

// MemAlloc allocates size bytes of device memory in the context.
func (c *Context) MemAlloc(size uint64) (DevicePtr, error) {
	var ptr DevicePtr
	err := c.WithCurrent(func() error {
		var r Result
		ptr, r = c.driver.MemAlloc(size)
		if r != SUCCESS {
			return Errors.Error("cuMemAlloc_v2", int(r))
		}
		return nil
	})
	return ptr, err
}

// MemFree frees device memory allocated with MemAlloc.
func (c *Context) MemFree(ptr DevicePtr) error {
	return c.WithCurrent(func() error {
		if r := c.driver.MemFree(ptr); r != SUCCESS {
			return Errors.Error("cuMemFree_v2", int(r))
		}
		return nil
	})
}

// CopyToHost copies len(dst) bytes from src to dst.
func (c *Context) CopyToHost(dst []byte, src DevicePtr) error {
	return c.WithCurrent(func() error {
		if r := c.driver.MemcpyDtoH(dst, src); r != SUCCESS {
			return Errors.Error("cuMemcpyDtoH_v2", int(r))
		}
		return nil
	})
}
