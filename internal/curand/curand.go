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
	"unsafe"

	"github.com/NVIDIA/go-curand/internal/cuda"
)

/*
#cgo LDFLAGS: -Wl,--unresolved-symbols=ignore-in-object-files

#include <stddef.h>

#ifdef _WIN32
#define CURANDAPI __stdcall
#else
#define CURANDAPI
#endif

typedef int curandStatus_t;
typedef int curandRngType_t;
typedef int curandOrdering_t;

// size_t is used instead of pointer types for the generator and for device
// memory so that both can be handled as integers on the Go side.
typedef size_t curandGenerator_t;
typedef size_t curandDevicePtr_t;

curandStatus_t CURANDAPI curandCreateGenerator(curandGenerator_t *generator, curandRngType_t rng_type);
curandStatus_t CURANDAPI curandDestroyGenerator(curandGenerator_t generator);
curandStatus_t CURANDAPI curandGetVersion(int *version);
curandStatus_t CURANDAPI curandSetPseudoRandomGeneratorSeed(curandGenerator_t generator, unsigned long long seed);
curandStatus_t CURANDAPI curandSetGeneratorOffset(curandGenerator_t generator, unsigned long long offset);
curandStatus_t CURANDAPI curandSetGeneratorOrdering(curandGenerator_t generator, curandOrdering_t order);
curandStatus_t CURANDAPI curandSetQuasiRandomGeneratorDimensions(curandGenerator_t generator, unsigned int num_dimensions);
curandStatus_t CURANDAPI curandGenerate(curandGenerator_t generator, curandDevicePtr_t outputPtr, size_t num);
curandStatus_t CURANDAPI curandGenerateLongLong(curandGenerator_t generator, curandDevicePtr_t outputPtr, size_t num);
curandStatus_t CURANDAPI curandGenerateUniform(curandGenerator_t generator, curandDevicePtr_t outputPtr, size_t num);
curandStatus_t CURANDAPI curandGenerateUniformDouble(curandGenerator_t generator, curandDevicePtr_t outputPtr, size_t num);
curandStatus_t CURANDAPI curandGenerateNormal(curandGenerator_t generator, curandDevicePtr_t outputPtr, size_t n, float mean, float stddev);
curandStatus_t CURANDAPI curandGenerateNormalDouble(curandGenerator_t generator, curandDevicePtr_t outputPtr, size_t n, double mean, double stddev);
curandStatus_t CURANDAPI curandGenerateLogNormal(curandGenerator_t generator, curandDevicePtr_t outputPtr, size_t n, float mean, float stddev);
curandStatus_t CURANDAPI curandGenerateLogNormalDouble(curandGenerator_t generator, curandDevicePtr_t outputPtr, size_t n, double mean, double stddev);
curandStatus_t CURANDAPI curandGeneratePoisson(curandGenerator_t generator, curandDevicePtr_t outputPtr, size_t n, double lambda);
*/
import "C"

// curandCreateGenerator function as declared in curand.h
func curandCreateGenerator(generator *Handle, rngType RngType) Status {
	cGenerator := (*C.curandGenerator_t)(unsafe.Pointer(generator))
	_ret := C.curandCreateGenerator(cGenerator, C.curandRngType_t(rngType))
	return Status(_ret)
}

// curandDestroyGenerator function as declared in curand.h
func curandDestroyGenerator(generator Handle) Status {
	_ret := C.curandDestroyGenerator(C.curandGenerator_t(generator))
	return Status(_ret)
}

// curandGetVersion function as declared in curand.h
func curandGetVersion(version *int32) Status {
	cVersion := (*C.int)(unsafe.Pointer(version))
	_ret := C.curandGetVersion(cVersion)
	return Status(_ret)
}

// curandSetPseudoRandomGeneratorSeed function as declared in curand.h
func curandSetPseudoRandomGeneratorSeed(generator Handle, seed uint64) Status {
	_ret := C.curandSetPseudoRandomGeneratorSeed(C.curandGenerator_t(generator), C.ulonglong(seed))
	return Status(_ret)
}

// curandSetGeneratorOffset function as declared in curand.h
func curandSetGeneratorOffset(generator Handle, offset uint64) Status {
	_ret := C.curandSetGeneratorOffset(C.curandGenerator_t(generator), C.ulonglong(offset))
	return Status(_ret)
}

// curandSetGeneratorOrdering function as declared in curand.h
func curandSetGeneratorOrdering(generator Handle, order Ordering) Status {
	_ret := C.curandSetGeneratorOrdering(C.curandGenerator_t(generator), C.curandOrdering_t(order))
	return Status(_ret)
}

// curandSetQuasiRandomGeneratorDimensions function as declared in curand.h
func curandSetQuasiRandomGeneratorDimensions(generator Handle, dimensions uint32) Status {
	_ret := C.curandSetQuasiRandomGeneratorDimensions(C.curandGenerator_t(generator), C.uint(dimensions))
	return Status(_ret)
}

// curandGenerate function as declared in curand.h
func curandGenerate(generator Handle, output cuda.DevicePtr, n uint64) Status {
	_ret := C.curandGenerate(C.curandGenerator_t(generator), C.curandDevicePtr_t(output), C.size_t(n))
	return Status(_ret)
}

// curandGenerateLongLong function as declared in curand.h
func curandGenerateLongLong(generator Handle, output cuda.DevicePtr, n uint64) Status {
	_ret := C.curandGenerateLongLong(C.curandGenerator_t(generator), C.curandDevicePtr_t(output), C.size_t(n))
	return Status(_ret)
}

// curandGenerateUniform function as declared in curand.h
func curandGenerateUniform(generator Handle, output cuda.DevicePtr, n uint64) Status {
	_ret := C.curandGenerateUniform(C.curandGenerator_t(generator), C.curandDevicePtr_t(output), C.size_t(n))
	return Status(_ret)
}

// curandGenerateUniformDouble function as declared in curand.h
func curandGenerateUniformDouble(generator Handle, output cuda.DevicePtr, n uint64) Status {
	_ret := C.curandGenerateUniformDouble(C.curandGenerator_t(generator), C.curandDevicePtr_t(output), C.size_t(n))
	return Status(_ret)
}

// curandGenerateNormal function as declared in curand.h
func curandGenerateNormal(generator Handle, output cuda.DevicePtr, n uint64, mean float32, stddev float32) Status {
	_ret := C.curandGenerateNormal(C.curandGenerator_t(generator), C.curandDevicePtr_t(output), C.size_t(n), C.float(mean), C.float(stddev))
	return Status(_ret)
}

// curandGenerateNormalDouble function as declared in curand.h
func curandGenerateNormalDouble(generator Handle, output cuda.DevicePtr, n uint64, mean float64, stddev float64) Status {
	_ret := C.curandGenerateNormalDouble(C.curandGenerator_t(generator), C.curandDevicePtr_t(output), C.size_t(n), C.double(mean), C.double(stddev))
	return Status(_ret)
}

// curandGenerateLogNormal function as declared in curand.h
func curandGenerateLogNormal(generator Handle, output cuda.DevicePtr, n uint64, mean float32, stddev float32) Status {
	_ret := C.curandGenerateLogNormal(C.curandGenerator_t(generator), C.curandDevicePtr_t(output), C.size_t(n), C.float(mean), C.float(stddev))
	return Status(_ret)
}

// curandGenerateLogNormalDouble function as declared in curand.h
func curandGenerateLogNormalDouble(generator Handle, output cuda.DevicePtr, n uint64, mean float64, stddev float64) Status {
	_ret := C.curandGenerateLogNormalDouble(C.curandGenerator_t(generator), C.curandDevicePtr_t(output), C.size_t(n), C.double(mean), C.double(stddev))
	return Status(_ret)
}

// curandGeneratePoisson function as declared in curand.h
func curandGeneratePoisson(generator Handle, output cuda.DevicePtr, n uint64, lambda float64) Status {
	_ret := C.curandGeneratePoisson(C.curandGenerator_t(generator), C.curandDevicePtr_t(output), C.size_t(n), C.double(lambda))
	return Status(_ret)
}
