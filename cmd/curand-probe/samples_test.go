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
	"bytes"
	"encoding/binary"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/go-curand/internal/cuda"
	"github.com/NVIDIA/go-curand/internal/curand"

	spec "github.com/NVIDIA/go-curand/api/config/v1"
)

const (
	testContextHandle = cuda.ContextHandle(0xc0ffee)
	testDevicePtr     = cuda.DevicePtr(0x7f0000)
)

func newTestLoader(lib curand.Interface) *curand.Loader {
	return curand.NewLoader(
		curand.WithOpener(func(string) (curand.Interface, error) { return lib, nil }),
		curand.WithDriverInit(nil),
		curand.WithErrorTable(cuda.NewErrorTable()),
		curand.WithLock(&sync.Mutex{}),
	)
}

func newTestLibrary() *curand.InterfaceMock {
	return &curand.InterfaceMock{
		CreateGeneratorFunc: func(rngType curand.RngType) (curand.Handle, curand.Status) {
			return curand.Handle(0x100), curand.SUCCESS
		},
	}
}

// newTestDriver returns a driver whose device memory holds contents.
func newTestDriver(contents []byte) *cuda.InterfaceMock {
	return &cuda.InterfaceMock{
		CtxCreateFunc: func(flags uint32, device cuda.Device) (cuda.ContextHandle, cuda.Result) {
			return testContextHandle, cuda.SUCCESS
		},
		CtxPopCurrentFunc: func() (cuda.ContextHandle, cuda.Result) {
			return testContextHandle, cuda.SUCCESS
		},
		MemAllocFunc: func(size uint64) (cuda.DevicePtr, cuda.Result) {
			return testDevicePtr, cuda.SUCCESS
		},
		MemcpyDtoHFunc: func(dst []byte, src cuda.DevicePtr) cuda.Result {
			copy(dst, contents)
			return cuda.SUCCESS
		},
	}
}

func float32Bytes(values ...float32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(v))
	}
	return buf
}

func TestRequestLayout(t *testing.T) {
	testCases := []struct {
		description    string
		request        request
		expectedKind   sampleKind
		expectedLength int
		expectedSize   uint64
	}{
		{
			description:    "uniform",
			request:        request{rngType: curand.RNG_PSEUDO_XORWOW, distribution: spec.DistributionUniform, count: 5},
			expectedKind:   float32Samples,
			expectedLength: 5,
			expectedSize:   20,
		},
		{
			description:    "normal with odd count is padded",
			request:        request{rngType: curand.RNG_PSEUDO_XORWOW, distribution: spec.DistributionNormal, count: 5},
			expectedKind:   float32Samples,
			expectedLength: 6,
			expectedSize:   24,
		},
		{
			description:    "lognormal with even count",
			request:        request{rngType: curand.RNG_PSEUDO_MTGP32, distribution: spec.DistributionLogNormal, count: 4},
			expectedKind:   float32Samples,
			expectedLength: 4,
			expectedSize:   16,
		},
		{
			description:    "poisson",
			request:        request{rngType: curand.RNG_PSEUDO_DEFAULT, distribution: spec.DistributionPoisson, count: 3},
			expectedKind:   uint32Samples,
			expectedLength: 3,
			expectedSize:   12,
		},
		{
			description:    "32-bit bits",
			request:        request{rngType: curand.RNG_QUASI_SOBOL32, distribution: spec.DistributionBits, count: 3},
			expectedKind:   uint32Samples,
			expectedLength: 3,
			expectedSize:   12,
		},
		{
			description:    "64-bit bits",
			request:        request{rngType: curand.RNG_QUASI_SCRAMBLED_SOBOL64, distribution: spec.DistributionBits, count: 3},
			expectedKind:   uint64Samples,
			expectedLength: 3,
			expectedSize:   24,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expectedKind, tc.request.kind())
			require.Equal(t, tc.expectedLength, tc.request.length())
			require.Equal(t, tc.expectedSize, tc.request.size())
		})
	}
}

func TestDecode(t *testing.T) {
	r := request{distribution: spec.DistributionNormal, count: 3}
	values, err := r.decode(float32Bytes(0.5, -1.25, 2, 99))
	require.NoError(t, err)
	require.Equal(t, []float64{0.5, -1.25, 2}, values)

	_, err = r.decode(float32Bytes(0.5))
	require.ErrorContains(t, err, "short buffer")

	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf, 1<<40)
	binary.LittleEndian.PutUint64(buf[8:], 7)
	r = request{rngType: curand.RNG_QUASI_SOBOL64, distribution: spec.DistributionBits, count: 2}
	values, err = r.decode(buf)
	require.NoError(t, err)
	require.Equal(t, []float64{1 << 40, 7}, values)
}

func TestSummarize(t *testing.T) {
	s := summarize([]float64{1, 2, 3, 4})
	require.Equal(t, 4, s.count)
	require.InDelta(t, 2.5, s.mean, 1e-12)
	require.InDelta(t, math.Sqrt(5.0/3.0), s.stddev, 1e-12)
	require.Equal(t, 1.0, s.min)
	require.Equal(t, 4.0, s.max)
	require.Equal(t, "count=4 mean=2.5 stddev=1.29099 min=1 max=4", s.String())

	require.Equal(t, summary{}, summarize(nil))
}

func TestSample(t *testing.T) {
	testCases := []struct {
		description string
		request     request
		check       func(*testing.T, *curand.InterfaceMock)
	}{
		{
			description: "uniform",
			request:     request{rngType: curand.RNG_PSEUDO_DEFAULT, distribution: spec.DistributionUniform, count: 3},
			check: func(t *testing.T, lib *curand.InterfaceMock) {
				require.Len(t, lib.GenerateUniformCalls(), 1)
				require.EqualValues(t, 3, lib.GenerateUniformCalls()[0].N)
				require.Equal(t, testDevicePtr, lib.GenerateUniformCalls()[0].Output)
			},
		},
		{
			description: "normal",
			request:     request{rngType: curand.RNG_PSEUDO_DEFAULT, distribution: spec.DistributionNormal, count: 3, mean: 1, stddev: 2},
			check: func(t *testing.T, lib *curand.InterfaceMock) {
				require.Len(t, lib.GenerateNormalCalls(), 1)
				call := lib.GenerateNormalCalls()[0]
				require.EqualValues(t, 4, call.N)
				require.EqualValues(t, 1, call.Mean)
				require.EqualValues(t, 2, call.Stddev)
			},
		},
		{
			description: "lognormal",
			request:     request{rngType: curand.RNG_PSEUDO_DEFAULT, distribution: spec.DistributionLogNormal, count: 2, stddev: 1},
			check: func(t *testing.T, lib *curand.InterfaceMock) {
				require.Len(t, lib.GenerateLogNormalCalls(), 1)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			driver := newTestDriver(float32Bytes(0.25, 0.5, 0.75, 1))
			ctx, err := cuda.NewContext(driver, 0, cuda.CTX_SCHED_AUTO)
			require.NoError(t, err)

			lib := newTestLibrary()
			g, err := curand.NewGenerator(ctx, curand.WithLoader(newTestLoader(lib)), curand.WithRngType(tc.request.rngType))
			require.NoError(t, err)

			values, err := sample(ctx, g, tc.request)
			require.NoError(t, err)
			require.Equal(t, []float64{0.25, 0.5, 0.75, 1}[:tc.request.count], values)
			tc.check(t, lib)

			require.Len(t, driver.MemAllocCalls(), 1)
			require.Equal(t, tc.request.size(), driver.MemAllocCalls()[0].Size)
			require.Len(t, driver.MemFreeCalls(), 1)

			require.NoError(t, g.Close())
			require.NoError(t, ctx.Close())
		})
	}
}

func TestSampleGenerateFailure(t *testing.T) {
	driver := newTestDriver(nil)
	ctx, err := cuda.NewContext(driver, 0, cuda.CTX_SCHED_AUTO)
	require.NoError(t, err)

	lib := newTestLibrary()
	lib.GeneratePoissonFunc = func(curand.Handle, cuda.DevicePtr, uint64, float64) curand.Status {
		return curand.LENGTH_NOT_MULTIPLE
	}
	g, err := curand.NewGenerator(ctx, curand.WithLoader(newTestLoader(lib)))
	require.NoError(t, err)
	defer g.Close()

	_, err = sample(ctx, g, request{distribution: spec.DistributionPoisson, count: 3, lambda: 2})
	require.ErrorIs(t, err, &cuda.Error{Op: "curandGeneratePoisson", Code: int(curand.LENGTH_NOT_MULTIPLE)})
	// Device memory is freed even when generation fails.
	require.Len(t, driver.MemFreeCalls(), 1)
	require.Empty(t, driver.MemcpyDtoHCalls())
}

func TestPrintSamples(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSamples(&buf, []float64{1, 3}, false))
	require.Equal(t, "1\n3\ncount=2 mean=2 stddev=1.41421 min=1 max=3\n", buf.String())

	buf.Reset()
	require.NoError(t, printSamples(&buf, []float64{1, 3}, true))
	require.Equal(t, 1, strings.Count(buf.String(), "\n"))
}
