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

// Package loader holds process-wide bindings to dynamically loaded libraries.
package loader

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"k8s.io/klog/v2"
)

// ErrNotFound is returned when none of the candidate libraries could be loaded.
var ErrNotFound = errors.New("library not found")

// OpenFunc opens the library with the specified name.
type OpenFunc[T any] func(name string) (T, error)

// Binding stores a value loaded once for the lifetime of the process.
type Binding[T any] struct {
	lock  sync.Locker
	value atomic.Pointer[loaded[T]]
}

type loaded[T any] struct {
	name  string
	value T
}

// New creates a Binding that serializes loading with the specified lock.
// A nil lock gives the binding a private mutex.
func New[T any](lock sync.Locker) *Binding[T] {
	if lock == nil {
		lock = &sync.Mutex{}
	}
	return &Binding[T]{lock: lock}
}

// Get returns the loaded value and whether the binding is loaded.
func (b *Binding[T]) Get() (T, bool) {
	l := b.value.Load()
	if l == nil {
		var zero T
		return zero, false
	}
	return l.value, true
}

// Name returns the candidate name the value was loaded from.
func (b *Binding[T]) Name() string {
	l := b.value.Load()
	if l == nil {
		return ""
	}
	return l.name
}

// Initialize loads the first candidate that opens successfully.
// It returns immediately if the binding is already loaded. onLoad, if not nil,
// runs exactly once, under the lock, before the value is published.
// If no candidate can be opened the binding stays unset so that a later call
// with different candidates can still succeed.
func (b *Binding[T]) Initialize(candidates []string, open OpenFunc[T], onLoad func(name string, value T)) error {
	if b.value.Load() != nil {
		return nil
	}

	b.lock.Lock()
	defer b.lock.Unlock()

	if b.value.Load() != nil {
		return nil
	}

	var errs error
	for _, name := range candidates {
		value, err := open(name)
		if err != nil {
			klog.V(2).Infof("Could not load %v: %v", name, err)
			errs = errors.Join(errs, fmt.Errorf("%v: %w", name, err))
			continue
		}
		klog.V(2).Infof("Loaded %v", name)
		if onLoad != nil {
			onLoad(name, value)
		}
		b.value.Store(&loaded[T]{name: name, value: value})
		return nil
	}

	if errs == nil {
		return fmt.Errorf("%w: no candidates specified", ErrNotFound)
	}
	return fmt.Errorf("%w: tried [%v]: %w", ErrNotFound, strings.Join(candidates, ", "), errs)
}

// Reset clears the binding. The loaded library is not closed.
// This is only intended for use in tests.
func (b *Binding[T]) Reset() {
	b.lock.Lock()
	defer b.lock.Unlock()
	b.value.Store(nil)
}
