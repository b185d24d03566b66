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
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	cli "github.com/urfave/cli/v2"
)

func TestParseConfigFrom(t *testing.T) {
	testCases := []struct {
		description string
		input       string
		expected    *Config
		expectedErr string
	}{
		{
			description: "missing version",
			input:       `flags: {}`,
			expectedErr: "missing version field",
		},
		{
			description: "unknown version",
			input:       `version: v2`,
			expectedErr: "unknown version: v2",
		},
		{
			description: "version only",
			input:       `version: v1`,
			expected:    &Config{Version: Version},
		},
		{
			description: "single library",
			input: `
version: v1
flags:
  curandLibraries: libcurand.so.11
  device: 1
`,
			expected: &Config{
				Version: Version,
				Flags: Flags{
					CommandLineFlags{
						CurandLibraries: &libraryListFlag{"libcurand.so.11"},
						Device:          ptr(1),
					},
				},
			},
		},
		{
			description: "generator settings",
			input: `
version: v1
flags:
  cudaLibraries:
  - libcuda.so.1
  - /usr/lib64/libcuda.so
  generator:
    rngType: mrg32k3a
    seed: 1234
    distribution: normal
    mean: 2.5
    stddev: 0.5
`,
			expected: &Config{
				Version: Version,
				Flags: Flags{
					CommandLineFlags{
						CudaLibraries: &libraryListFlag{"libcuda.so.1", "/usr/lib64/libcuda.so"},
						Generator: &GeneratorCommandLineFlags{
							RngType:      ptr("mrg32k3a"),
							Seed:         ptr(uint64(1234)),
							Distribution: ptr(DistributionNormal),
							Mean:         ptr(2.5),
							Stddev:       ptr(0.5),
						},
					},
				},
			},
		},
		{
			description: "invalid library list",
			input: `
version: v1
flags:
  curandLibraries: 5
`,
			expectedErr: "invalid library list",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			config, err := parseConfigFrom(strings.NewReader(tc.input))
			if tc.expectedErr != "" {
				require.ErrorContains(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, config)
		})
	}
}

func TestSetDefaults(t *testing.T) {
	config := &Config{
		Version: Version,
		Flags: Flags{
			CommandLineFlags{
				Generator: &GeneratorCommandLineFlags{
					Count: ptr(4),
				},
			},
		},
	}
	config.SetDefaults()

	require.Equal(t, DefaultDriverRoot, *config.Flags.DriverRoot)
	require.Equal(t, 0, *config.Flags.Device)
	require.Equal(t, 4, *config.Flags.Generator.Count)
	require.Equal(t, DefaultRngType, *config.Flags.Generator.RngType)
	require.Equal(t, DefaultDistribution, *config.Flags.Generator.Distribution)
	require.Nil(t, config.Flags.CurandLibraries.Libraries())
	require.NoError(t, config.Validate())
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		description string
		update      func(*Config)
		expectedErr string
	}{
		{
			description: "defaults",
			update:      func(*Config) {},
		},
		{
			description: "negative device",
			update:      func(c *Config) { c.Flags.Device = ptr(-1) },
			expectedErr: "invalid device index",
		},
		{
			description: "unknown rng type",
			update:      func(c *Config) { c.Flags.Generator.RngType = ptr("lcg") },
			expectedErr: "unknown rng type",
		},
		{
			description: "unknown ordering",
			update:      func(c *Config) { c.Flags.Generator.Ordering = ptr("sorted") },
			expectedErr: "unknown ordering",
		},
		{
			description: "zero count",
			update:      func(c *Config) { c.Flags.Generator.Count = ptr(0) },
			expectedErr: "count must be positive",
		},
		{
			description: "unknown distribution",
			update:      func(c *Config) { c.Flags.Generator.Distribution = ptr("binomial") },
			expectedErr: "unknown distribution",
		},
		{
			description: "lognormal with zero stddev",
			update: func(c *Config) {
				c.Flags.Generator.Distribution = ptr(DistributionLogNormal)
				c.Flags.Generator.Stddev = ptr(0.0)
			},
			expectedErr: "stddev must be positive",
		},
		{
			description: "poisson with negative lambda",
			update: func(c *Config) {
				c.Flags.Generator.Distribution = ptr(DistributionPoisson)
				c.Flags.Generator.Lambda = ptr(-1.0)
			},
			expectedErr: "lambda must be positive",
		},
		{
			description: "quasirandom type",
			update: func(c *Config) {
				c.Flags.Generator.RngType = ptr("SCRAMBLED_SOBOL64")
				c.Flags.Generator.Ordering = ptr("quasi-default")
				c.Flags.Generator.Distribution = ptr(DistributionBits)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			config := &Config{Version: Version}
			config.SetDefaults()
			tc.update(config)

			err := config.Validate()
			if tc.expectedErr != "" {
				require.ErrorContains(t, err, tc.expectedErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func testFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{Name: FlagCurandLibrary},
		&cli.StringFlag{Name: FlagDriverRoot, Value: DefaultDriverRoot},
		&cli.IntFlag{Name: FlagDevice},
		&cli.StringFlag{Name: FlagRngType, Value: DefaultRngType},
		&cli.Uint64Flag{Name: FlagSeed},
		&cli.UintFlag{Name: FlagDimensions},
		&cli.IntFlag{Name: FlagCount, Value: DefaultCount},
		&cli.Float64Flag{Name: FlagStddev, Value: DefaultStddev},
		&cli.StringFlag{Name: FlagConfigFile},
	}
}

func newTestContext(t *testing.T, flags []cli.Flag, args ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range flags {
		require.NoError(t, f.Apply(set))
	}
	require.NoError(t, set.Parse(args))
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestNewConfig(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(configFile, []byte(`
version: v1
flags:
  device: 2
  curandLibraries: libcurand.so.10
  generator:
    rngType: philox4-32-10
    seed: 7
    count: 64
`), 0600)
	require.NoError(t, err)

	testCases := []struct {
		description string
		args        []string
		expected    CommandLineFlags
	}{
		{
			description: "flag defaults",
			expected: CommandLineFlags{
				DriverRoot: ptr(DefaultDriverRoot),
				Device:     ptr(0),
				Generator: &GeneratorCommandLineFlags{
					RngType:    ptr(DefaultRngType),
					Seed:       ptr(uint64(0)),
					Dimensions: ptr(uint32(0)),
					Count:      ptr(DefaultCount),
					Stddev:     ptr(DefaultStddev),
				},
			},
		},
		{
			description: "command line flags",
			args:        []string{"--device=3", "--seed=99", "--dimensions=2", "--curand-library=a.so", "--curand-library=b.so"},
			expected: CommandLineFlags{
				CurandLibraries: &libraryListFlag{"a.so", "b.so"},
				DriverRoot:      ptr(DefaultDriverRoot),
				Device:          ptr(3),
				Generator: &GeneratorCommandLineFlags{
					RngType:    ptr(DefaultRngType),
					Seed:       ptr(uint64(99)),
					Dimensions: ptr(uint32(2)),
					Count:      ptr(DefaultCount),
					Stddev:     ptr(DefaultStddev),
				},
			},
		},
		{
			description: "config file values",
			args:        []string{"--config-file=" + configFile},
			expected: CommandLineFlags{
				CurandLibraries: &libraryListFlag{"libcurand.so.10"},
				DriverRoot:      ptr(DefaultDriverRoot),
				Device:          ptr(2),
				Generator: &GeneratorCommandLineFlags{
					RngType:    ptr("philox4-32-10"),
					Seed:       ptr(uint64(7)),
					Dimensions: ptr(uint32(0)),
					Count:      ptr(64),
					Stddev:     ptr(DefaultStddev),
				},
			},
		},
		{
			description: "command line overrides config file",
			args:        []string{"--config-file=" + configFile, "--seed=11", "--rng-type=mtgp32"},
			expected: CommandLineFlags{
				CurandLibraries: &libraryListFlag{"libcurand.so.10"},
				DriverRoot:      ptr(DefaultDriverRoot),
				Device:          ptr(2),
				Generator: &GeneratorCommandLineFlags{
					RngType:    ptr("mtgp32"),
					Seed:       ptr(uint64(11)),
					Dimensions: ptr(uint32(0)),
					Count:      ptr(64),
					Stddev:     ptr(DefaultStddev),
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			flags := testFlags()
			c := newTestContext(t, flags, tc.args...)

			config, err := NewConfig(c, flags)
			require.NoError(t, err)
			require.Equal(t, Version, config.Version)
			// An unset slice flag may be reported as either nil or empty.
			if len(config.Flags.CurandLibraries.Libraries()) == 0 {
				config.Flags.CurandLibraries = nil
			}
			require.Equal(t, tc.expected, config.Flags.CommandLineFlags)
		})
	}
}

func TestNewConfigMissingFile(t *testing.T) {
	flags := testFlags()
	c := newTestContext(t, flags, "--config-file="+filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := NewConfig(c, flags)
	require.ErrorContains(t, err, "unable to parse config file")
}
