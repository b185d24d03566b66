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
	"encoding/json"
	"fmt"

	cli "github.com/urfave/cli/v2"
)

// prt returns a reference to whatever type is passed into it
func ptr[T any](x T) *T {
	return &x
}

// updateFromCLIFlag conditionally updates the config flag at 'pflag' to the value of the CLI flag with name 'flagName'
func updateFromCLIFlag[T any](pflag **T, c *cli.Context, flagName string) {
	if c.IsSet(flagName) || *pflag == (*T)(nil) {
		switch flag := any(pflag).(type) {
		case **string:
			*flag = ptr(c.String(flagName))
		case **int:
			*flag = ptr(c.Int(flagName))
		case **uint32:
			*flag = ptr(uint32(c.Uint(flagName)))
		case **uint64:
			*flag = ptr(c.Uint64(flagName))
		case **float64:
			*flag = ptr(c.Float64(flagName))
		case **libraryListFlag:
			*flag = ptr((libraryListFlag)(c.StringSlice(flagName)))
		default:
			panic(fmt.Errorf("unsupported flag type for %v: %T", flagName, flag))
		}
	}
}

// Flags holds the full list of flags used to configure curand-probe.
type Flags struct {
	CommandLineFlags
}

// CommandLineFlags holds the list of command line flags used to configure curand-probe.
type CommandLineFlags struct {
	CudaLibraries   *libraryListFlag           `json:"cudaLibraries,omitempty"   yaml:"cudaLibraries,omitempty"`
	CurandLibraries *libraryListFlag           `json:"curandLibraries,omitempty" yaml:"curandLibraries,omitempty"`
	DriverRoot      *string                    `json:"driverRoot,omitempty"      yaml:"driverRoot,omitempty"`
	Device          *int                       `json:"device"                    yaml:"device"`
	Generator       *GeneratorCommandLineFlags `json:"generator,omitempty"       yaml:"generator,omitempty"`
}

// GeneratorCommandLineFlags holds the list of command line flags specific to generating numbers.
type GeneratorCommandLineFlags struct {
	RngType      *string  `json:"rngType"              yaml:"rngType"`
	Seed         *uint64  `json:"seed"                 yaml:"seed"`
	Offset       *uint64  `json:"offset"               yaml:"offset"`
	Ordering     *string  `json:"ordering"             yaml:"ordering"`
	Dimensions   *uint32  `json:"dimensions,omitempty" yaml:"dimensions,omitempty"`
	Count        *int     `json:"count"                yaml:"count"`
	Distribution *string  `json:"distribution"         yaml:"distribution"`
	Mean         *float64 `json:"mean,omitempty"       yaml:"mean,omitempty"`
	Stddev       *float64 `json:"stddev,omitempty"     yaml:"stddev,omitempty"`
	Lambda       *float64 `json:"lambda,omitempty"     yaml:"lambda,omitempty"`
}

// libraryListFlag is a custom type for parsing the list of candidate libraries.
type libraryListFlag []string

// UnmarshalJSON implements the custom unmarshaler for the libraryListFlag type.
// Since this option allows a single string or a list of strings to be specified,
// we need to handle both cases.
func (f *libraryListFlag) UnmarshalJSON(b []byte) error {
	var single string
	err := json.Unmarshal(b, &single)
	if err == nil {
		*f = []string{single}
		return nil
	}

	var multi []string
	if err := json.Unmarshal(b, &multi); err == nil {
		*f = multi
		return nil
	}

	return fmt.Errorf("invalid library list: %v", string(b))
}

// Libraries returns the list of candidate libraries, or nil if none is set.
func (f *libraryListFlag) Libraries() []string {
	if f == nil || len(*f) == 0 {
		return nil
	}
	return []string(*f)
}

// UpdateFromCLIFlags updates Flags from settings in the cli Flags if they are set.
func (f *Flags) UpdateFromCLIFlags(c *cli.Context, flags []cli.Flag) {
	for _, flag := range flags {
		for _, n := range flag.Names() {
			// Common flags
			switch n {
			case FlagCudaLibrary:
				updateFromCLIFlag(&f.CudaLibraries, c, n)
			case FlagCurandLibrary:
				updateFromCLIFlag(&f.CurandLibraries, c, n)
			case FlagDriverRoot:
				updateFromCLIFlag(&f.DriverRoot, c, n)
			case FlagDevice:
				updateFromCLIFlag(&f.Device, c, n)
			}
			// Generator specific flags
			if f.Generator == nil {
				f.Generator = &GeneratorCommandLineFlags{}
			}
			switch n {
			case FlagRngType:
				updateFromCLIFlag(&f.Generator.RngType, c, n)
			case FlagSeed:
				updateFromCLIFlag(&f.Generator.Seed, c, n)
			case FlagOffset:
				updateFromCLIFlag(&f.Generator.Offset, c, n)
			case FlagOrdering:
				updateFromCLIFlag(&f.Generator.Ordering, c, n)
			case FlagDimensions:
				updateFromCLIFlag(&f.Generator.Dimensions, c, n)
			case FlagCount:
				updateFromCLIFlag(&f.Generator.Count, c, n)
			case FlagDistribution:
				updateFromCLIFlag(&f.Generator.Distribution, c, n)
			case FlagMean:
				updateFromCLIFlag(&f.Generator.Mean, c, n)
			case FlagStddev:
				updateFromCLIFlag(&f.Generator.Stddev, c, n)
			case FlagLambda:
				updateFromCLIFlag(&f.Generator.Lambda, c, n)
			}
		}
	}
}
