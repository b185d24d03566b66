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
	"encoding/json"
	"fmt"
	"os"

	nvinfo "github.com/NVIDIA/go-nvlib/pkg/nvlib/info"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/NVIDIA/go-curand/internal/cuda"
	"github.com/NVIDIA/go-curand/internal/curand"
	"github.com/NVIDIA/go-curand/internal/info"
	"github.com/NVIDIA/go-curand/internal/logger"

	spec "github.com/NVIDIA/go-curand/api/config/v1"
)

// Config represents a collection of config options for curand-probe.
type Config struct {
	configFile string

	// flags stores the global CLI flags for later processing.
	flags []cli.Flag
}

func main() {
	config := &Config{}

	c := cli.NewApp()
	c.Name = "curand-probe"
	c.Usage = "Load the cuRAND library and exercise its generators"
	c.Version = info.GetVersionString()

	config.flags = []cli.Flag{
		&cli.StringSliceFlag{
			Name:    spec.FlagCudaLibrary,
			Usage:   "a CUDA driver library to try loading; may be repeated, tried in order",
			EnvVars: []string{"CUDA_LIBRARY"},
		},
		&cli.StringSliceFlag{
			Name:    spec.FlagCurandLibrary,
			Usage:   "a cuRAND library to try loading; may be repeated, tried in order",
			EnvVars: []string{"CURAND_LIBRARY"},
		},
		&cli.StringFlag{
			Name:    spec.FlagDriverRoot,
			Value:   spec.DefaultDriverRoot,
			Usage:   "the root path for the NVIDIA driver installation (typical values are '/' or '/run/nvidia/driver')",
			EnvVars: []string{"NVIDIA_DRIVER_ROOT"},
		},
		&cli.IntFlag{
			Name:    spec.FlagDevice,
			Value:   0,
			Usage:   "the index of the CUDA device to use",
			EnvVars: []string{"CUDA_DEVICE"},
		},
		&cli.StringFlag{
			Name:        spec.FlagConfigFile,
			Usage:       "the path to a config file as an alternative to command line options or environment variables",
			Destination: &config.configFile,
			EnvVars:     []string{"CONFIG_FILE"},
		},
	}
	c.Flags = config.flags

	c.Commands = []*cli.Command{
		newDevicesCommand(config),
		newProbeCommand(config),
		newGenerateCommand(config),
	}

	err := c.Run(os.Args)
	if err != nil {
		klog.Error(err)
		os.Exit(1)
	}
}

// loadConfig loads the config from the command line and the config file.
func (cfg *Config) loadConfig(c *cli.Context) (*spec.Config, error) {
	flags := append([]cli.Flag{}, cfg.flags...)
	if c.Command != nil {
		flags = append(flags, c.Command.Flags...)
	}

	config, err := spec.NewConfig(c, flags)
	if err != nil {
		return nil, fmt.Errorf("unable to finalize config: %w", err)
	}
	config.SetDefaults()
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("unable to validate flags: %w", err)
	}
	spec.DisableUnsupportedGeneratorSettings(logger.ToKlog, config)

	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to JSON: %v", err)
	}
	klog.V(2).Infof("\nRunning with config:\n%v", string(configJSON))

	return config, nil
}

// initialize loads the CUDA driver and cuRAND libraries named in the config.
// When no CUDA driver library is configured the candidates are chosen from the
// detected platform.
func initialize(config *spec.Config) error {
	driverRoot := *config.Flags.DriverRoot
	p := detectPlatform(nvinfo.New(nvinfo.WithRoot(driverRoot)))

	if err := cuda.Initialize(p.cudaLibraries(driverRoot, config.Flags.CudaLibraries.Libraries())...); err != nil {
		if !p.detected() {
			return fmt.Errorf("no NVIDIA driver components detected under %v: %w", driverRoot, err)
		}
		return err
	}
	if err := curand.Initialize(config.Flags.CurandLibraries.Libraries()...); err != nil {
		return err
	}
	return nil
}

// openContext creates a context on the device with the specified index.
func openContext(index int) (*cuda.Context, error) {
	driver := cuda.Driver()
	device, r := driver.DeviceGet(index)
	if r != cuda.SUCCESS {
		return nil, cuda.Errors.Error("cuDeviceGet", int(r))
	}
	return cuda.NewContext(driver, device, cuda.CTX_SCHED_AUTO)
}

// closeContext closes ctx, logging any failure.
func closeContext(ctx *cuda.Context) {
	if err := ctx.Close(); err != nil {
		klog.Warningf("Failed to close context on device %v: %v", ctx.Device(), err)
	}
}
