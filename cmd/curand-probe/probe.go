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
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/NVIDIA/go-curand/internal/cuda"
	"github.com/NVIDIA/go-curand/internal/curand"
	"github.com/NVIDIA/go-curand/internal/flags"
	"github.com/NVIDIA/go-curand/internal/info"
)

type probeResult struct {
	device  int
	rngType curand.RngType
	err     error
}

// newProbeCommand constructs the probe command.
func newProbeCommand(cfg *Config) *cli.Command {
	filter := &flags.DeviceFilter{}
	return &cli.Command{
		Name:  "probe",
		Usage: "Create and release a generator of every type on each selected device",
		Flags: filter.Flags(),
		Action: func(c *cli.Context) error {
			config, err := cfg.loadConfig(c)
			if err != nil {
				return fmt.Errorf("unable to load config: %v", err)
			}
			if err := initialize(config); err != nil {
				return err
			}
			return runProbe(c.App.Writer, filter)
		},
	}
}

func runProbe(w io.Writer, filter *flags.DeviceFilter) error {
	version, err := curand.Default.Version()
	if err != nil {
		return err
	}
	driverVersion, r := cuda.Driver().DriverGetVersion()
	if r != cuda.SUCCESS {
		return cuda.Errors.Error("cuDriverGetVersion", int(r))
	}
	fmt.Fprintf(w, "CUDA driver version: %v\n", info.FormatCudaVersion(driverVersion))
	fmt.Fprintf(w, "cuRAND library: %v (version %v)\n", curand.Default.Name(), info.FormatCurandVersion(version))

	count, r := cuda.Driver().DeviceGetCount()
	if r != cuda.SUCCESS {
		return cuda.Errors.Error("cuDeviceGetCount", int(r))
	}
	indices, err := filter.Filter(count)
	if err != nil {
		return err
	}

	var results []probeResult
	for _, i := range indices {
		ctx, err := openContext(i)
		if err != nil {
			return fmt.Errorf("error creating context on device %d: %w", i, err)
		}
		results = append(results, probeDevice(i, ctx, curand.RngTypes())...)
		closeContext(ctx)
	}

	return reportProbe(w, results)
}

// probeDevice creates and closes a generator of each type in ctx.
func probeDevice(index int, ctx curand.Context, types []curand.RngType, opts ...curand.Option) []probeResult {
	var results []probeResult
	for _, t := range types {
		result := probeResult{device: index, rngType: t}
		g, err := curand.NewGenerator(ctx, append([]curand.Option{curand.WithRngType(t)}, opts...)...)
		if err != nil {
			klog.V(2).Infof("Creating %v generator on device %d failed: %v", t, index, err)
			result.err = err
		} else {
			result.err = g.Close()
		}
		results = append(results, result)
	}
	return results
}

func reportProbe(w io.Writer, results []probeResult) error {
	var failed int
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "DEVICE\tTYPE\tRESULT")
	for _, r := range results {
		status := "ok"
		if r.err != nil {
			failed++
			status = r.err.Error()
			var e *cuda.Error
			if errors.As(r.err, &e) {
				status = fmt.Sprintf("error %d (%v)", e.Code, e.Description)
			}
		}
		fmt.Fprintf(tw, "%d\t%v\t%s\n", r.device, r.rngType, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d generators could not be created", failed, len(results))
	}
	return nil
}
