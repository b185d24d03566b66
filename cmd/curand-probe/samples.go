/**
# Copyright 2024 NVIDIA CORPORATION
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

package main

import (
	"encoding/binary"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/NVIDIA/go-curand/internal/cuda"
	"github.com/NVIDIA/go-curand/internal/curand"

	spec "github.com/NVIDIA/go-curand/api/config/v1"
)

// sampleKind is the element type written to device memory.
type sampleKind int

const (
	float32Samples sampleKind = iota
	uint32Samples
	uint64Samples
)

func (k sampleKind) size() uint64 {
	if k == uint64Samples {
		return 8
	}
	return 4
}

// request describes a single generate call.
type request struct {
	rngType      curand.RngType
	distribution string
	count        int
	mean         float64
	stddev       float64
	lambda       float64
}

func newRequest(flags *spec.GeneratorCommandLineFlags) (request, error) {
	rngType, err := curand.ParseRngType(*flags.RngType)
	if err != nil {
		return request{}, err
	}
	r := request{
		rngType:      rngType,
		distribution: *flags.Distribution,
		count:        *flags.Count,
		mean:         *flags.Mean,
		stddev:       *flags.Stddev,
		lambda:       *flags.Lambda,
	}
	return r, nil
}

func (r request) kind() sampleKind {
	switch r.distribution {
	case spec.DistributionPoisson:
		return uint32Samples
	case spec.DistributionBits:
		if r.rngType == curand.RNG_QUASI_SOBOL64 || r.rngType == curand.RNG_QUASI_SCRAMBLED_SOBOL64 {
			return uint64Samples
		}
		return uint32Samples
	}
	return float32Samples
}

// length returns the number of values generated.
// Normal values are produced in pairs so odd counts are rounded up.
func (r request) length() int {
	switch r.distribution {
	case spec.DistributionNormal, spec.DistributionLogNormal:
		if r.count%2 == 1 {
			return r.count + 1
		}
	}
	return r.count
}

func (r request) size() uint64 {
	return uint64(r.length()) * r.kind().size()
}

func (r request) generate(g *curand.Generator, output cuda.DevicePtr) error {
	n := uint64(r.length())
	switch r.distribution {
	case spec.DistributionUniform:
		return g.GenerateUniform(output, n)
	case spec.DistributionNormal:
		return g.GenerateNormal(output, n, float32(r.mean), float32(r.stddev))
	case spec.DistributionLogNormal:
		return g.GenerateLogNormal(output, n, float32(r.mean), float32(r.stddev))
	case spec.DistributionPoisson:
		return g.GeneratePoisson(output, n, r.lambda)
	case spec.DistributionBits:
		if r.kind() == uint64Samples {
			return g.GenerateLongLong(output, n)
		}
		return g.Generate(output, n)
	}
	return fmt.Errorf("unknown distribution: %v", r.distribution)
}

// decode converts the raw values copied from the device, dropping any padding.
func (r request) decode(buf []byte) ([]float64, error) {
	kind := r.kind()
	if uint64(len(buf)) < uint64(r.count)*kind.size() {
		return nil, fmt.Errorf("short buffer: %d bytes for %d values", len(buf), r.count)
	}

	values := make([]float64, r.count)
	for i := range values {
		switch kind {
		case float32Samples:
			values[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:])))
		case uint32Samples:
			values[i] = float64(binary.LittleEndian.Uint32(buf[4*i:]))
		case uint64Samples:
			values[i] = float64(binary.LittleEndian.Uint64(buf[8*i:]))
		}
	}
	return values, nil
}

type summary struct {
	count  int
	mean   float64
	stddev float64
	min    float64
	max    float64
}

func summarize(values []float64) summary {
	s := summary{count: len(values)}
	if s.count == 0 {
		return s
	}
	s.mean, s.stddev = stat.MeanStdDev(values, nil)
	s.min = floats.Min(values)
	s.max = floats.Max(values)
	return s
}

func (s summary) String() string {
	return fmt.Sprintf("count=%d mean=%.6g stddev=%.6g min=%.6g max=%.6g", s.count, s.mean, s.stddev, s.min, s.max)
}
