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
	"errors"
	"fmt"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"github.com/NVIDIA/go-curand/internal/cuda"
)

var (
	// ErrReleased is returned when using a generator that has been released.
	ErrReleased = errors.New("generator has been released")
	// ErrIncorrectDestructorOrder is the panic value raised when a generator
	// is closed after the context it was created in.
	ErrIncorrectDestructorOrder = errors.New("incorrect destructor call order detected")
)

//go:generate moq -stub -out context_mock.go . Context

// Context is the device context a generator is created in.
type Context interface {
	// AddRef registers a dependent object with the context.
	AddRef(id string)
	// DelRef removes a dependent object from the context.
	DelRef(id string)
	// WithCurrent runs fn with the context current on the calling thread.
	WithCurrent(fn func() error) error
	// Handle returns cuda.NilContext once the context has been destroyed.
	Handle() cuda.ContextHandle
}

var _ Context = (*cuda.Context)(nil)

var _ Handler = (*Generator)(nil)

// Generator represents a cuRAND generator created in a device context.
// Generators must be closed before their context; a Generator is not safe for
// concurrent use.
type Generator struct {
	id      string
	ctx     Context
	rngType RngType
	errors  *cuda.ErrorTable

	lib    Interface
	handle Handle
	closed bool
}

// Option defines a function for passing options to the NewGenerator() call.
type Option func(*options)

type options struct {
	rngType RngType
	loader  *Loader
}

// WithRngType sets the type of generator to create.
func WithRngType(rngType RngType) Option {
	return func(o *options) {
		o.rngType = rngType
	}
}

// WithLoader sets the loader used to obtain the cuRAND library.
func WithLoader(loader *Loader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// NewGenerator creates a generator in the specified context.
// The caller must call Close once the generator is no longer needed.
func NewGenerator(ctx Context, opts ...Option) (*Generator, error) {
	if ctx == nil {
		return nil, fmt.Errorf("a context is required")
	}

	o := &options{
		rngType: RNG_PSEUDO_DEFAULT,
		loader:  Default,
	}
	for _, opt := range opts {
		opt(o)
	}

	g := &Generator{
		id:      uuid.NewString(),
		ctx:     ctx,
		rngType: o.rngType,
		errors:  o.loader.Errors(),
	}

	ctx.AddRef(g.id)
	if err := g.create(o.loader); err != nil {
		ctx.DelRef(g.id)
		g.closed = true
		return nil, err
	}

	klog.V(4).Infof("Created %v generator %v (handle %#x)", g.rngType, g.id, g.handle)
	return g, nil
}

func (g *Generator) create(loader *Loader) error {
	lib, err := loader.Load()
	if err != nil {
		return err
	}

	var handle Handle
	var s Status
	err = g.ctx.WithCurrent(func() error {
		handle, s = lib.CreateGenerator(g.rngType)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error activating context: %w", err)
	}
	if s != SUCCESS {
		return g.errors.Error("curandCreateGenerator", int(s))
	}

	g.lib = lib
	g.handle = handle
	return nil
}

// ID returns the id the generator is registered under in its context.
func (g *Generator) ID() string {
	return g.id
}

// Handle returns the native generator handle, or NilHandle once released.
func (g *Generator) Handle() Handle {
	if g == nil {
		return NilHandle
	}
	return g.handle
}

// Context returns the context the generator was created in.
func (g *Generator) Context() Context {
	return g.ctx
}

// RngType returns the type of the generator.
func (g *Generator) RngType() RngType {
	return g.rngType
}

// Release destroys the native generator.
// Failures are logged and otherwise ignored. Release is a no-op for a
// generator that has already been released.
func (g *Generator) Release() {
	if g.lib == nil || g.handle == NilHandle {
		return
	}
	handle := g.handle
	err := g.ctx.WithCurrent(func() error {
		if s := g.lib.DestroyGenerator(handle); s != SUCCESS {
			return g.errors.Error("curandDestroyGenerator", int(s))
		}
		return nil
	})
	if err != nil {
		klog.Warningf("Failed to destroy generator %v: %v", g.id, err)
	}
	g.handle = NilHandle
}

// Close releases the generator and removes it from its context.
// Closing a generator after its context has been destroyed is a programming
// error and panics with ErrIncorrectDestructorOrder.
func (g *Generator) Close() error {
	if g.closed {
		return nil
	}
	if g.ctx.Handle() == cuda.NilContext {
		panic(fmt.Errorf("%w: generator %v closed after its context", ErrIncorrectDestructorOrder, g.id))
	}
	g.Release()
	g.ctx.DelRef(g.id)
	g.closed = true
	return nil
}

// call runs fn in the generator's context and maps a non-zero status to an error.
func (g *Generator) call(op string, fn func(lib Interface, handle Handle) Status) error {
	if g.lib == nil || g.handle == NilHandle {
		return fmt.Errorf("%v: %w", op, ErrReleased)
	}
	return g.ctx.WithCurrent(func() error {
		if s := fn(g.lib, g.handle); s != SUCCESS {
			return g.errors.Error(op, int(s))
		}
		return nil
	})
}

// SetSeed sets the seed of a pseudorandom generator.
func (g *Generator) SetSeed(seed uint64) error {
	return g.call("curandSetPseudoRandomGeneratorSeed", func(lib Interface, h Handle) Status {
		return lib.SetPseudoRandomGeneratorSeed(h, seed)
	})
}

// SetOffset sets the absolute offset of the generator.
func (g *Generator) SetOffset(offset uint64) error {
	return g.call("curandSetGeneratorOffset", func(lib Interface, h Handle) Status {
		return lib.SetGeneratorOffset(h, offset)
	})
}

// SetOrdering sets the ordering of the generated results.
func (g *Generator) SetOrdering(order Ordering) error {
	return g.call("curandSetGeneratorOrdering", func(lib Interface, h Handle) Status {
		return lib.SetGeneratorOrdering(h, order)
	})
}

// SetQuasiRandomDimensions sets the number of dimensions of a quasirandom generator.
func (g *Generator) SetQuasiRandomDimensions(dimensions uint32) error {
	return g.call("curandSetQuasiRandomGeneratorDimensions", func(lib Interface, h Handle) Status {
		return lib.SetQuasiRandomGeneratorDimensions(h, dimensions)
	})
}

// Generate fills output with n 32-bit random integers.
func (g *Generator) Generate(output cuda.DevicePtr, n uint64) error {
	return g.call("curandGenerate", func(lib Interface, h Handle) Status {
		return lib.Generate(h, output, n)
	})
}

// GenerateLongLong fills output with n 64-bit random integers.
// Only 64-bit quasirandom generators support this.
func (g *Generator) GenerateLongLong(output cuda.DevicePtr, n uint64) error {
	return g.call("curandGenerateLongLong", func(lib Interface, h Handle) Status {
		return lib.GenerateLongLong(h, output, n)
	})
}

// GenerateUniform fills output with n floats uniformly distributed in (0, 1].
func (g *Generator) GenerateUniform(output cuda.DevicePtr, n uint64) error {
	return g.call("curandGenerateUniform", func(lib Interface, h Handle) Status {
		return lib.GenerateUniform(h, output, n)
	})
}

// GenerateUniformDouble fills output with n doubles uniformly distributed in (0, 1].
func (g *Generator) GenerateUniformDouble(output cuda.DevicePtr, n uint64) error {
	return g.call("curandGenerateUniformDouble", func(lib Interface, h Handle) Status {
		return lib.GenerateUniformDouble(h, output, n)
	})
}

// GenerateNormal fills output with n normally distributed floats.
func (g *Generator) GenerateNormal(output cuda.DevicePtr, n uint64, mean float32, stddev float32) error {
	return g.call("curandGenerateNormal", func(lib Interface, h Handle) Status {
		return lib.GenerateNormal(h, output, n, mean, stddev)
	})
}

// GenerateNormalDouble fills output with n normally distributed doubles.
func (g *Generator) GenerateNormalDouble(output cuda.DevicePtr, n uint64, mean float64, stddev float64) error {
	return g.call("curandGenerateNormalDouble", func(lib Interface, h Handle) Status {
		return lib.GenerateNormalDouble(h, output, n, mean, stddev)
	})
}

// GenerateLogNormal fills output with n log-normally distributed floats.
func (g *Generator) GenerateLogNormal(output cuda.DevicePtr, n uint64, mean float32, stddev float32) error {
	return g.call("curandGenerateLogNormal", func(lib Interface, h Handle) Status {
		return lib.GenerateLogNormal(h, output, n, mean, stddev)
	})
}

// GenerateLogNormalDouble fills output with n log-normally distributed doubles.
func (g *Generator) GenerateLogNormalDouble(output cuda.DevicePtr, n uint64, mean float64, stddev float64) error {
	return g.call("curandGenerateLogNormalDouble", func(lib Interface, h Handle) Status {
		return lib.GenerateLogNormalDouble(h, output, n, mean, stddev)
	})
}

// GeneratePoisson fills output with n Poisson distributed unsigned integers.
func (g *Generator) GeneratePoisson(output cuda.DevicePtr, n uint64, lambda float64) error {
	return g.call("curandGeneratePoisson", func(lib Interface, h Handle) Status {
		return lib.GeneratePoisson(h, output, n, lambda)
	})
}
