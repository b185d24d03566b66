/*
 * Copyright (c) 2024, NVIDIA CORPORATION.  All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package v1

import (
	"github.com/NVIDIA/go-curand/internal/curand"
)

type logger interface {
	Warningf(format string, args ...interface{})
}

// DisableUnsupportedGeneratorSettings clears the generator settings that the
// configured rng type does not support, logging a warning for each one.
// Pseudorandom generators have no dimensions; quasirandom generators have no
// seed and only support the quasi-default ordering.
func DisableUnsupportedGeneratorSettings(logger logger, config *Config) {
	g := config.Flags.Generator
	if g == nil || g.RngType == nil {
		return
	}
	rngType, err := curand.ParseRngType(*g.RngType)
	if err != nil {
		return
	}

	if !rngType.IsQuasiRandom() {
		if g.Dimensions != nil && *g.Dimensions != 0 {
			logger.Warningf("Ignoring dimensions=%d for pseudorandom generator type %v", *g.Dimensions, rngType)
		}
		g.Dimensions = nil
		if g.Ordering != nil && *g.Ordering == curand.ORDERING_QUASI_DEFAULT.String() {
			logger.Warningf("Ordering %v is not supported by %v; using %v", *g.Ordering, rngType, DefaultOrdering)
			g.Ordering = ptr(DefaultOrdering)
		}
		return
	}

	if g.Seed != nil && *g.Seed != 0 {
		logger.Warningf("Ignoring seed=%d for quasirandom generator type %v", *g.Seed, rngType)
	}
	g.Seed = nil
	if g.Ordering != nil {
		if o, err := curand.ParseOrdering(*g.Ordering); err == nil && o != curand.ORDERING_QUASI_DEFAULT {
			logger.Warningf("Ordering %v is not supported by %v; using %v", *g.Ordering, rngType, curand.ORDERING_QUASI_DEFAULT)
		}
	}
	g.Ordering = ptr(curand.ORDERING_QUASI_DEFAULT.String())
}
