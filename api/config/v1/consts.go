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

// Constants representing the supported output distributions
const (
	DistributionUniform   = "uniform"
	DistributionNormal    = "normal"
	DistributionLogNormal = "lognormal"
	DistributionPoisson   = "poisson"
	DistributionBits      = "bits"
)

// Default values for the generator settings
const (
	DefaultDriverRoot   = "/"
	DefaultRngType      = "pseudo-default"
	DefaultOrdering     = "default"
	DefaultDistribution = DistributionUniform
	DefaultCount        = 16
	DefaultMean         = 0.0
	DefaultStddev       = 1.0
	DefaultLambda       = 1.0
)

// Command line flag names - Common flags
const (
	FlagCudaLibrary   = "cuda-library"
	FlagCurandLibrary = "curand-library"
	FlagDriverRoot    = "driver-root"
	FlagDevice        = "device"
	FlagConfigFile    = "config-file"
)

// Command line flag names - Generator specific flags
const (
	FlagRngType      = "rng-type"
	FlagSeed         = "seed"
	FlagOffset       = "offset"
	FlagOrdering     = "ordering"
	FlagDimensions   = "dimensions"
	FlagCount        = "count"
	FlagDistribution = "distribution"
	FlagMean         = "mean"
	FlagStddev       = "stddev"
	FlagLambda       = "lambda"
)
