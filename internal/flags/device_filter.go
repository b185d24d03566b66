/*
 * Copyright 2025 NVIDIA CORPORATION.
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

package flags

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

const (
	DevicesSeparator = ","
)

// DeviceFilter selects device indices from comma separated select and exclude lists.
// An empty select list selects every device.
type DeviceFilter struct {
	SelectDevices  string
	ExcludeDevices string
}

func (f DeviceFilter) GetSelectDevicesList() ([]int, error) {
	return parseIndices(f.SelectDevices)
}

func (f DeviceFilter) GetExcludeDevicesList() ([]int, error) {
	return parseIndices(f.ExcludeDevices)
}

// Filter returns the indices in [0, count) matched by the filter.
func (f DeviceFilter) Filter(count int) ([]int, error) {
	selected, err := f.GetSelectDevicesList()
	if err != nil {
		return nil, fmt.Errorf("invalid select list: %w", err)
	}
	excluded, err := f.GetExcludeDevicesList()
	if err != nil {
		return nil, fmt.Errorf("invalid exclude list: %w", err)
	}

	skip := make(map[int]bool)
	for _, i := range excluded {
		skip[i] = true
	}

	if len(selected) == 0 {
		for i := 0; i < count; i++ {
			selected = append(selected, i)
		}
	}

	var indices []int
	for _, i := range selected {
		if i >= count {
			return nil, fmt.Errorf("device index %d out of range: %d devices present", i, count)
		}
		if skip[i] {
			continue
		}
		skip[i] = true
		indices = append(indices, i)
	}
	return indices, nil
}

func (f *DeviceFilter) Flags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "select-devices",
			Usage:       "The comma separated list of device indices to use. All devices are used if unset.",
			Value:       "",
			Destination: &f.SelectDevices,
			EnvVars:     []string{"SELECT_DEVICES"},
		},
		&cli.StringFlag{
			Name:        "exclude-devices",
			Usage:       "The comma separated list of device indices to skip.",
			Value:       "",
			Destination: &f.ExcludeDevices,
			EnvVars:     []string{"EXCLUDE_DEVICES"},
		},
	}
	return flags
}

func parseIndices(list string) ([]int, error) {
	var indices []int
	for _, s := range strings.Split(list, DevicesSeparator) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		i, err := strconv.Atoi(s)
		if err != nil || i < 0 {
			return nil, fmt.Errorf("invalid device index %q", s)
		}
		indices = append(indices, i)
	}
	return indices, nil
}
