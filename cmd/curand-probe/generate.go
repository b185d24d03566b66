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
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/NVIDIA/go-curand/internal/cuda"
	"github.com/NVIDIA/go-curand/internal/curand"

	spec "github.com/NVIDIA/go-curand/api/config/v1"
)

// deviceMemory is the subset of a device context used to stage generated values.
type deviceMemory interface {
	MemAlloc(size uint64) (cuda.DevicePtr, error)
	MemFree(ptr cuda.DevicePtr) error
	CopyToHost(dst []byte, src cuda.DevicePtr) error
}

var _ deviceMemory = (*cuda.Context)(nil)

// newGenerateCommand constructs the generate command.
func newGenerateCommand(cfg *Config) *cli.Command {
	var summaryOnly bool
	return &cli.Command{
		Name:  "generate",
		Usage: "Generate random numbers on a device and print them with summary statistics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    spec.FlagRngType,
				Value:   spec.DefaultRngType,
				Usage:   fmt.Sprintf("the type of generator to create:\n\t\t%v", curand.RngTypes()),
				EnvVars: []string{"CURAND_RNG_TYPE"},
			},
			&cli.Uint64Flag{
				Name:    spec.FlagSeed,
				Usage:   "the seed of a pseudorandom generator",
				EnvVars: []string{"CURAND_SEED"},
			},
			&cli.Uint64Flag{
				Name:  spec.FlagOffset,
				Usage: "the absolute offset of the generator sequence",
			},
			&cli.StringFlag{
				Name:  spec.FlagOrdering,
				Value: spec.DefaultOrdering,
				Usage: "the ordering of results in memory:\n\t\t[best | default | seeded | legacy | quasi-default]",
			},
			&cli.UintFlag{
				Name:  spec.FlagDimensions,
				Usage: "the number of dimensions of a quasirandom generator",
			},
			&cli.IntFlag{
				Name:  spec.FlagCount,
				Value: spec.DefaultCount,
				Usage: "the number of values to generate",
			},
			&cli.StringFlag{
				Name:  spec.FlagDistribution,
				Value: spec.DefaultDistribution,
				Usage: "the distribution of the generated values:\n\t\t[uniform | normal | lognormal | poisson | bits]",
			},
			&cli.Float64Flag{
				Name:  spec.FlagMean,
				Value: spec.DefaultMean,
				Usage: "the mean of the normal and lognormal distributions",
			},
			&cli.Float64Flag{
				Name:  spec.FlagStddev,
				Value: spec.DefaultStddev,
				Usage: "the standard deviation of the normal and lognormal distributions",
			},
			&cli.Float64Flag{
				Name:  spec.FlagLambda,
				Value: spec.DefaultLambda,
				Usage: "the lambda of the poisson distribution",
			},
			&cli.BoolFlag{
				Name:        "summary-only",
				Usage:       "only print the summary statistics",
				Destination: &summaryOnly,
			},
		},
		Action: func(c *cli.Context) error {
			config, err := cfg.loadConfig(c)
			if err != nil {
				return fmt.Errorf("unable to load config: %v", err)
			}
			if err := initialize(config); err != nil {
				return err
			}
			return runGenerate(c.App.Writer, config, summaryOnly)
		},
	}
}

func runGenerate(w io.Writer, config *spec.Config, summaryOnly bool) error {
	r, err := newRequest(config.Flags.Generator)
	if err != nil {
		return err
	}

	ctx, err := openContext(*config.Flags.Device)
	if err != nil {
		return fmt.Errorf("error creating context on device %d: %w", *config.Flags.Device, err)
	}
	defer closeContext(ctx)

	g, err := curand.NewGenerator(ctx, curand.WithRngType(r.rngType))
	if err != nil {
		return fmt.Errorf("error creating generator: %w", err)
	}
	defer g.Close()

	if err := configure(g, config.Flags.Generator); err != nil {
		return err
	}

	values, err := sample(ctx, g, r)
	if err != nil {
		return err
	}
	return printSamples(w, values, summaryOnly)
}

// configure applies the generator settings from the config.
func configure(g *curand.Generator, flags *spec.GeneratorCommandLineFlags) error {
	if flags.Seed != nil {
		if err := g.SetSeed(*flags.Seed); err != nil {
			return err
		}
	}
	if flags.Offset != nil && *flags.Offset != 0 {
		if err := g.SetOffset(*flags.Offset); err != nil {
			return err
		}
	}
	if flags.Ordering != nil {
		ordering, err := curand.ParseOrdering(*flags.Ordering)
		if err != nil {
			return err
		}
		if err := g.SetOrdering(ordering); err != nil {
			return err
		}
	}
	if flags.Dimensions != nil && *flags.Dimensions != 0 {
		if err := g.SetQuasiRandomDimensions(*flags.Dimensions); err != nil {
			return err
		}
	}
	return nil
}

// sample generates the requested values in device memory and copies them to the host.
func sample(mem deviceMemory, g *curand.Generator, r request) ([]float64, error) {
	size := r.size()
	output, err := mem.MemAlloc(size)
	if err != nil {
		return nil, fmt.Errorf("error allocating %d bytes of device memory: %w", size, err)
	}
	defer func() {
		if err := mem.MemFree(output); err != nil {
			klog.Warningf("Failed to free device memory: %v", err)
		}
	}()

	if err := r.generate(g, output); err != nil {
		return nil, err
	}

	buf := make([]byte, size)
	if err := mem.CopyToHost(buf, output); err != nil {
		return nil, fmt.Errorf("error copying values to host: %w", err)
	}
	return r.decode(buf)
}

func printSamples(w io.Writer, values []float64, summaryOnly bool) error {
	if !summaryOnly {
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w, summarize(values))
	return err
}
