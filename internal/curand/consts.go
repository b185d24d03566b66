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
	"sort"
	"strings"
)

// Status represents the curandStatus_t return type.
type Status int32

const (
	SUCCESS                   Status = 0
	VERSION_MISMATCH          Status = 100
	NOT_INITIALIZED           Status = 101
	ALLOCATION_FAILED         Status = 102
	TYPE_ERROR                Status = 103
	OUT_OF_RANGE              Status = 104
	LENGTH_NOT_MULTIPLE       Status = 105
	DOUBLE_PRECISION_REQUIRED Status = 106
	LAUNCH_FAILURE            Status = 201
	PREEXISTING_FAILURE       Status = 202
	INITIALIZATION_FAILED     Status = 203
	ARCH_MISMATCH             Status = 204
	INTERNAL_ERROR            Status = 999
)

var descriptions = map[Status]string{
	VERSION_MISMATCH:          "CURAND_STATUS_VERSION_MISMATCH",
	NOT_INITIALIZED:           "CURAND_STATUS_NOT_INITIALIZED",
	ALLOCATION_FAILED:         "CURAND_STATUS_ALLOCATION_FAILED",
	TYPE_ERROR:                "CURAND_STATUS_TYPE_ERROR",
	OUT_OF_RANGE:              "CURAND_STATUS_OUT_OF_RANGE",
	LENGTH_NOT_MULTIPLE:       "CURAND_STATUS_LENGTH_NOT_MULTIPLE",
	DOUBLE_PRECISION_REQUIRED: "CURAND_STATUS_DOUBLE_PRECISION_REQUIRED",
	LAUNCH_FAILURE:            "CURAND_STATUS_LAUNCH_FAILURE",
	PREEXISTING_FAILURE:       "CURAND_STATUS_PREEXISTING_FAILURE",
	INITIALIZATION_FAILED:     "CURAND_STATUS_INITIALIZATION_FAILED",
	ARCH_MISMATCH:             "CURAND_STATUS_ARCH_MISMATCH",
	INTERNAL_ERROR:            "CURAND_STATUS_INTERNAL_ERROR",
}

func (s Status) String() string {
	if s == SUCCESS {
		return "CURAND_STATUS_SUCCESS"
	}
	if d, ok := descriptions[s]; ok {
		return d
	}
	return fmt.Sprintf("curandStatus(%d)", int32(s))
}

// Descriptions returns the error descriptions of all curandStatus_t codes keyed by code.
func Descriptions() map[int]string {
	d := make(map[int]string, len(descriptions))
	for s, desc := range descriptions {
		d[int(s)] = desc
	}
	return d
}

// RngType represents the curandRngType_t type.
type RngType int32

const (
	RNG_TEST                    RngType = 0
	RNG_PSEUDO_DEFAULT          RngType = 100
	RNG_PSEUDO_XORWOW           RngType = 101
	RNG_PSEUDO_MRG32K3A         RngType = 121
	RNG_PSEUDO_MTGP32           RngType = 141
	RNG_PSEUDO_MT19937          RngType = 142
	RNG_PSEUDO_PHILOX4_32_10    RngType = 161
	RNG_QUASI_DEFAULT           RngType = 200
	RNG_QUASI_SOBOL32           RngType = 201
	RNG_QUASI_SCRAMBLED_SOBOL32 RngType = 202
	RNG_QUASI_SOBOL64           RngType = 203
	RNG_QUASI_SCRAMBLED_SOBOL64 RngType = 204
)

var rngTypeNames = map[RngType]string{
	RNG_TEST:                    "test",
	RNG_PSEUDO_DEFAULT:          "pseudo-default",
	RNG_PSEUDO_XORWOW:           "xorwow",
	RNG_PSEUDO_MRG32K3A:         "mrg32k3a",
	RNG_PSEUDO_MTGP32:           "mtgp32",
	RNG_PSEUDO_MT19937:          "mt19937",
	RNG_PSEUDO_PHILOX4_32_10:    "philox4-32-10",
	RNG_QUASI_DEFAULT:           "quasi-default",
	RNG_QUASI_SOBOL32:           "sobol32",
	RNG_QUASI_SCRAMBLED_SOBOL32: "scrambled-sobol32",
	RNG_QUASI_SOBOL64:           "sobol64",
	RNG_QUASI_SCRAMBLED_SOBOL64: "scrambled-sobol64",
}

func (t RngType) String() string {
	if n, ok := rngTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("curandRngType(%d)", int32(t))
}

// IsQuasiRandom returns true for the quasirandom generator types.
func (t RngType) IsQuasiRandom() bool {
	return t >= RNG_QUASI_DEFAULT
}

// RngTypes returns all generator types except RNG_TEST, in ascending order.
func RngTypes() []RngType {
	var types []RngType
	for t := range rngTypeNames {
		if t == RNG_TEST {
			continue
		}
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// ParseRngType returns the generator type with the specified name.
// Underscores are accepted in place of dashes.
func ParseRngType(name string) (RngType, error) {
	normalized := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	for t, n := range rngTypeNames {
		if n == normalized {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown rng type: %q", name)
}

// Ordering represents the curandOrdering_t type.
type Ordering int32

const (
	ORDERING_PSEUDO_BEST    Ordering = 100
	ORDERING_PSEUDO_DEFAULT Ordering = 101
	ORDERING_PSEUDO_SEEDED  Ordering = 102
	ORDERING_PSEUDO_LEGACY  Ordering = 103
	ORDERING_QUASI_DEFAULT  Ordering = 201
)

var orderingNames = map[Ordering]string{
	ORDERING_PSEUDO_BEST:    "best",
	ORDERING_PSEUDO_DEFAULT: "default",
	ORDERING_PSEUDO_SEEDED:  "seeded",
	ORDERING_PSEUDO_LEGACY:  "legacy",
	ORDERING_QUASI_DEFAULT:  "quasi-default",
}

func (o Ordering) String() string {
	if n, ok := orderingNames[o]; ok {
		return n
	}
	return fmt.Sprintf("curandOrdering(%d)", int32(o))
}

// ParseOrdering returns the ordering with the specified name.
func ParseOrdering(name string) (Ordering, error) {
	normalized := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	for o, n := range orderingNames {
		if n == normalized {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown ordering: %q", name)
}

// Handle is a curandGenerator_t carried as an integer across the cgo boundary.
type Handle uint64

// NilHandle is the handle of a generator that was never created or has been released.
const NilHandle Handle = 0

// Handler is implemented by values that stand for a native generator handle.
// Both Handle and *Generator satisfy it, so a generator can be passed
// wherever a raw handle is accepted.
type Handler interface {
	Handle() Handle
}

// Handle returns h itself.
func (h Handle) Handle() Handle {
	return h
}
