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

	"github.com/NVIDIA/go-nvml/pkg/dl"

	"github.com/NVIDIA/go-curand/internal/cuda"
)

const (
	libraryLoadFlags = dl.RTLD_LAZY | dl.RTLD_GLOBAL
)

// DefaultLibraries lists the names tried, in order, when loading the cuRAND library.
var DefaultLibraries = []string{"libcurand.so", "libcurand.so.10"}

var requiredSymbols = []string{
	"curandCreateGenerator",
	"curandDestroyGenerator",
}

//go:generate moq -stub -out interface_mock.go . Interface

// Interface defines the cuRAND host API used by this module.
type Interface interface {
	CreateGenerator(rngType RngType) (Handle, Status)
	DestroyGenerator(generator Handle) Status
	GetVersion() (int, Status)
	SetPseudoRandomGeneratorSeed(generator Handle, seed uint64) Status
	SetGeneratorOffset(generator Handle, offset uint64) Status
	SetGeneratorOrdering(generator Handle, order Ordering) Status
	SetQuasiRandomGeneratorDimensions(generator Handle, dimensions uint32) Status
	Generate(generator Handle, output cuda.DevicePtr, n uint64) Status
	GenerateLongLong(generator Handle, output cuda.DevicePtr, n uint64) Status
	GenerateUniform(generator Handle, output cuda.DevicePtr, n uint64) Status
	GenerateUniformDouble(generator Handle, output cuda.DevicePtr, n uint64) Status
	GenerateNormal(generator Handle, output cuda.DevicePtr, n uint64, mean float32, stddev float32) Status
	GenerateNormalDouble(generator Handle, output cuda.DevicePtr, n uint64, mean float64, stddev float64) Status
	GenerateLogNormal(generator Handle, output cuda.DevicePtr, n uint64, mean float32, stddev float32) Status
	GenerateLogNormalDouble(generator Handle, output cuda.DevicePtr, n uint64, mean float64, stddev float64) Status
	GeneratePoisson(generator Handle, output cuda.DevicePtr, n uint64, lambda float64) Status
}

// library implements Interface over a dynamically loaded libcurand.
type library struct {
	dl *dl.DynamicLibrary
}

var _ Interface = (*library)(nil)

// Open loads the named cuRAND library and checks that it provides the
// symbols needed to manage generators.
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

func (l *library) CreateGenerator(rngType RngType) (Handle, Status) {
	var generator Handle
	s := curandCreateGenerator(&generator, rngType)
	return generator, s
}

func (l *library) DestroyGenerator(generator Handle) Status {
	return curandDestroyGenerator(generator)
}

func (l *library) GetVersion() (int, Status) {
	var version int32
	s := curandGetVersion(&version)
	return int(version), s
}

func (l *library) SetPseudoRandomGeneratorSeed(generator Handle, seed uint64) Status {
	return curandSetPseudoRandomGeneratorSeed(generator, seed)
}

func (l *library) SetGeneratorOffset(generator Handle, offset uint64) Status {
	return curandSetGeneratorOffset(generator, offset)
}

func (l *library) SetGeneratorOrdering(generator Handle, order Ordering) Status {
	return curandSetGeneratorOrdering(generator, order)
}

func (l *library) SetQuasiRandomGeneratorDimensions(generator Handle, dimensions uint32) Status {
	return curandSetQuasiRandomGeneratorDimensions(generator, dimensions)
}

func (l *library) Generate(generator Handle, output cuda.DevicePtr, n uint64) Status {
	return curandGenerate(generator, output, n)
}

func (l *library) GenerateLongLong(generator Handle, output cuda.DevicePtr, n uint64) Status {
	return curandGenerateLongLong(generator, output, n)
}

func (l *library) GenerateUniform(generator Handle, output cuda.DevicePtr, n uint64) Status {
	return curandGenerateUniform(generator, output, n)
}

func (l *library) GenerateUniformDouble(generator Handle, output cuda.DevicePtr, n uint64) Status {
	return curandGenerateUniformDouble(generator, output, n)
}

func (l *library) GenerateNormal(generator Handle, output cuda.DevicePtr, n uint64, mean float32, stddev float32) Status {
	return curandGenerateNormal(generator, output, n, mean, stddev)
}

func (l *library) GenerateNormalDouble(generator Handle, output cuda.DevicePtr, n uint64, mean float64, stddev float64) Status {
	return curandGenerateNormalDouble(generator, output, n, mean, stddev)
}

func (l *library) GenerateLogNormal(generator Handle, output cuda.DevicePtr, n uint64, mean float32, stddev float32) Status {
	return curandGenerateLogNormal(generator, output, n, mean, stddev)
}

func (l *library) GenerateLogNormalDouble(generator Handle, output cuda.DevicePtr, n uint64, mean float64, stddev float64) Status {
	return curandGenerateLogNormalDouble(generator, output, n, mean, stddev)
}

func (l *library) GeneratePoisson(generator Handle, output cuda.DevicePtr, n uint64, lambda float64) Status {
	return curandGeneratePoisson(generator, output, n, lambda)
}
