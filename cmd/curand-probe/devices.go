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
	"text/tabwriter"

	units "github.com/docker/go-units"
	"github.com/urfave/cli/v2"

	"github.com/NVIDIA/go-curand/internal/cuda"
	"github.com/NVIDIA/go-curand/internal/flags"
	"github.com/NVIDIA/go-curand/internal/resource"
)

// newDevicesCommand constructs the devices command.
func newDevicesCommand(cfg *Config) *cli.Command {
	filter := &flags.DeviceFilter{}
	return &cli.Command{
		Name:  "devices",
		Usage: "List the CUDA devices visible to the driver",
		Flags: filter.Flags(),
		Action: func(c *cli.Context) error {
			config, err := cfg.loadConfig(c)
			if err != nil {
				return fmt.Errorf("unable to load config: %v", err)
			}
			if err := initialize(config); err != nil {
				return err
			}
			return listDevices(c.App.Writer, resource.NewCudaManager(cuda.Driver()), filter)
		},
	}
}

func listDevices(w io.Writer, manager resource.Manager, filter *flags.DeviceFilter) error {
	major, minor, err := manager.GetCudaDriverVersion()
	if err != nil {
		return err
	}
	devices, err := manager.GetDevices()
	if err != nil {
		return err
	}
	indices, err := filter.Filter(len(devices))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "CUDA driver version: %d.%d\n", *major, *minor)
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "INDEX\tNAME\tMEMORY\tCOMPUTE CAPABILITY")
	for _, i := range indices {
		if err := writeDevice(tw, devices[i]); err != nil {
			return fmt.Errorf("error getting info for device %d: %w", i, err)
		}
	}
	return tw.Flush()
}

func writeDevice(w io.Writer, d resource.Device) error {
	name, err := d.GetName()
	if err != nil {
		return err
	}
	memory, err := d.GetTotalMemoryMB()
	if err != nil {
		return err
	}
	major, minor, err := d.GetCudaComputeCapability()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%d\t%s\t%s\t%d.%d\n", d.GetIndex(), name, units.BytesSize(float64(memory<<20)), major, minor)
	return err
}
