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
	"errors"
	"fmt"
	"io"
	"os"

	cli "github.com/urfave/cli/v2"
	"sigs.k8s.io/yaml"

	"github.com/NVIDIA/go-curand/internal/curand"
)

// Version indicates the version of the 'Config' struct used to hold configuration information.
const Version = "v1"

// Config is a versioned struct used to hold configuration information.
type Config struct {
	Version string `json:"version"         yaml:"version"`
	Flags   Flags  `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// NewConfig builds out a Config struct from a config file (or command line flags).
// The data stored in the config will be populated in order of precedence from
// (1) command line, (2) environment variable, (3) config file.
func NewConfig(c *cli.Context, flags []cli.Flag) (*Config, error) {
	config := &Config{Version: Version}

	if configFile := c.String(FlagConfigFile); configFile != "" {
		var err error
		config, err = parseConfig(configFile)
		if err != nil {
			return nil, fmt.Errorf("unable to parse config file: %v", err)
		}
	}

	config.Flags.UpdateFromCLIFlags(c, flags)

	return config, nil
}

// parseConfig parses a config file as either YAML of JSON and unmarshals it into a Config struct.
func parseConfig(configFile string) (*Config, error) {
	reader, err := os.Open(configFile)
	if err != nil {
		return nil, fmt.Errorf("error opening config file: %v", err)
	}
	defer reader.Close()

	config, err := parseConfigFrom(reader)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	return config, nil
}

func parseConfigFrom(reader io.Reader) (*Config, error) {
	var err error
	var configYaml []byte

	configYaml, err = io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read error: %v", err)
	}

	var config Config
	err = yaml.Unmarshal(configYaml, &config)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %v", err)
	}

	if config.Version == "" {
		return nil, fmt.Errorf("missing version field")
	}

	if config.Version != Version {
		return nil, fmt.Errorf("unknown version: %v", config.Version)
	}

	return &config, nil
}

// SetDefaults fills any unset field with its default value.
func (c *Config) SetDefaults() {
	f := &c.Flags
	if f.DriverRoot == nil {
		f.DriverRoot = ptr(DefaultDriverRoot)
	}
	if f.Device == nil {
		f.Device = ptr(0)
	}
	if f.Generator == nil {
		f.Generator = &GeneratorCommandLineFlags{}
	}

	g := f.Generator
	if g.RngType == nil {
		g.RngType = ptr(DefaultRngType)
	}
	if g.Seed == nil {
		g.Seed = ptr(uint64(0))
	}
	if g.Offset == nil {
		g.Offset = ptr(uint64(0))
	}
	if g.Ordering == nil {
		g.Ordering = ptr(DefaultOrdering)
	}
	if g.Dimensions == nil {
		g.Dimensions = ptr(uint32(0))
	}
	if g.Count == nil {
		g.Count = ptr(DefaultCount)
	}
	if g.Distribution == nil {
		g.Distribution = ptr(DefaultDistribution)
	}
	if g.Mean == nil {
		g.Mean = ptr(DefaultMean)
	}
	if g.Stddev == nil {
		g.Stddev = ptr(DefaultStddev)
	}
	if g.Lambda == nil {
		g.Lambda = ptr(DefaultLambda)
	}
}

// Validate checks that the settings in the config are consistent.
// It expects SetDefaults (or CLI flag processing) to have been applied.
func (c *Config) Validate() error {
	var errs error

	f := c.Flags
	if f.Device != nil && *f.Device < 0 {
		errs = errors.Join(errs, fmt.Errorf("invalid device index: %v", *f.Device))
	}

	g := f.Generator
	if g == nil {
		return errs
	}
	if g.RngType != nil {
		if _, err := curand.ParseRngType(*g.RngType); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if g.Ordering != nil {
		if _, err := curand.ParseOrdering(*g.Ordering); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if g.Count != nil && *g.Count <= 0 {
		errs = errors.Join(errs, fmt.Errorf("count must be positive: %v", *g.Count))
	}
	if g.Distribution != nil {
		switch *g.Distribution {
		case DistributionUniform, DistributionBits:
		case DistributionNormal, DistributionLogNormal:
			if g.Stddev != nil && *g.Stddev <= 0 {
				errs = errors.Join(errs, fmt.Errorf("stddev must be positive for %v distribution: %v", *g.Distribution, *g.Stddev))
			}
		case DistributionPoisson:
			if g.Lambda != nil && *g.Lambda <= 0 {
				errs = errors.Join(errs, fmt.Errorf("lambda must be positive for poisson distribution: %v", *g.Lambda))
			}
		default:
			errs = errors.Join(errs, fmt.Errorf("unknown distribution: %v", *g.Distribution))
		}
	}
	return errs
}
