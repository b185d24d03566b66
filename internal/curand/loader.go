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

package curand

import (
	"fmt"
	"sync"

	"k8s.io/klog/v2"

	"github.com/NVIDIA/go-curand/internal/cuda"
	"github.com/NVIDIA/go-curand/internal/loader"
)

// Default is the process-wide cuRAND loader.
var Default = NewLoader()

// Initialize loads the cuRAND library using the Default loader.
// The first of the specified libraries that can be loaded is used; if none are
// specified DefaultLibraries is tried.
func Initialize(libraries ...string) error {
	return Default.Initialize(libraries...)
}

// Loader binds the cuRAND library once for the lifetime of the process.
type Loader struct {
	binding    *loader.Binding[Interface]
	lock       sync.Locker
	open       loader.OpenFunc[Interface]
	driverInit func() error
	errors     *cuda.ErrorTable
	libraries  []string
}

// LoaderOption defines a function for passing options to the NewLoader() call.
type LoaderOption func(*Loader)

// NewLoader creates a cuRAND loader.
// By default the loader initializes the CUDA driver, serializes loading with
// cuda.Lock() and merges the cuRAND status descriptions into cuda.Errors.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		lock:       cuda.Lock(),
		open:       Open,
		driverInit: func() error { return cuda.Initialize() },
		errors:     cuda.Errors,
		libraries:  DefaultLibraries,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.binding = loader.New[Interface](l.lock)
	return l
}

// WithOpener sets the function used to open a candidate library.
func WithOpener(open loader.OpenFunc[Interface]) LoaderOption {
	return func(l *Loader) {
		l.open = open
	}
}

// WithDriverInit sets the function used to initialize the CUDA driver before
// loading cuRAND. A nil function skips driver initialization.
func WithDriverInit(init func() error) LoaderOption {
	return func(l *Loader) {
		l.driverInit = init
	}
}

// WithErrorTable sets the error table the status descriptions are merged into.
func WithErrorTable(errors *cuda.ErrorTable) LoaderOption {
	return func(l *Loader) {
		l.errors = errors
	}
}

// WithLock sets the lock used to serialize loading.
func WithLock(lock sync.Locker) LoaderOption {
	return func(l *Loader) {
		l.lock = lock
	}
}

// WithDefaultLibraries sets the candidates used when Initialize is called without any.
func WithDefaultLibraries(libraries ...string) LoaderOption {
	return func(l *Loader) {
		l.libraries = libraries
	}
}

// Initialize loads the first of the specified libraries that can be opened.
// It returns immediately if a library is already loaded. The default libraries
// are used only when no list is passed; an explicit empty list fails with
// loader.ErrNotFound. If no library can be loaded the loader remains
// uninitialized and Initialize can be retried.
func (l *Loader) Initialize(libraries ...string) error {
	if _, ok := l.binding.Get(); ok {
		return nil
	}
	if libraries == nil {
		libraries = l.libraries
	}

	if l.driverInit != nil {
		if err := l.driverInit(); err != nil {
			return fmt.Errorf("error initializing CUDA driver: %w", err)
		}
	}

	onLoad := func(name string, _ Interface) {
		l.errors.Merge(Descriptions())
		klog.Infof("Loaded cuRAND library %v", name)
	}
	if err := l.binding.Initialize(libraries, l.open, onLoad); err != nil {
		return fmt.Errorf("could not load curand library: %w", err)
	}
	return nil
}

// Load returns the loaded library, initializing the loader with its default
// libraries if required.
func (l *Loader) Load() (Interface, error) {
	if lib, ok := l.binding.Get(); ok {
		return lib, nil
	}
	if err := l.Initialize(); err != nil {
		return nil, err
	}
	lib, _ := l.binding.Get()
	return lib, nil
}

// Library returns the loaded library and whether the loader is initialized.
func (l *Loader) Library() (Interface, bool) {
	return l.binding.Get()
}

// Name returns the name of the loaded library.
func (l *Loader) Name() string {
	return l.binding.Name()
}

// Errors returns the error table used to describe cuRAND status codes.
func (l *Loader) Errors() *cuda.ErrorTable {
	return l.errors
}

// Version returns the version of the loaded cuRAND library.
func (l *Loader) Version() (int, error) {
	lib, err := l.Load()
	if err != nil {
		return 0, err
	}
	version, s := lib.GetVersion()
	if s != SUCCESS {
		return 0, l.errors.Error("curandGetVersion", int(s))
	}
	return version, nil
}

// Reset unloads the binding without closing the library.
// This is only intended for use in tests.
func (l *Loader) Reset() {
	l.binding.Reset()
}
