// Copyright 2019 Tad Lebeck
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package gce

import (
	"fmt"

	"github.com/docker/go-units"
)

// GCE disk type names
const (
	DiskTypeLocalSSD = "local-ssd"
	DiskTypeSSD      = "pd-ssd"
	DiskTypeStandard = "pd-standard"
)

// localSSDSizeGb is the fixed size of a GCE local SSD partition
const localSSDSizeGb = 375 * units.GiB / units.GiB

// DiskTypeInfo describes a GCE disk type
type DiskTypeInfo struct {
	Name        string
	Description string
	// Ephemeral disk types attach inline with the instance and cannot be
	// created, deleted or sized independently
	Ephemeral bool
	MinSizeGb int64
	MaxSizeGb int64
}

var gceDiskTypes = []*DiskTypeInfo{
	&DiskTypeInfo{
		Name:        DiskTypeLocalSSD,
		Description: "Local SSD scratch disk (fixed size, data does not survive instance termination)",
		Ephemeral:   true,
		MinSizeGb:   localSSDSizeGb,
		MaxSizeGb:   localSSDSizeGb,
	},
	&DiskTypeInfo{
		Name:        DiskTypeSSD,
		Description: "SSD persistent disk",
		MinSizeGb:   10 * units.GiB / units.GiB,
		MaxSizeGb:   64 * units.TiB / units.GiB,
	},
	&DiskTypeInfo{
		Name:        DiskTypeStandard,
		Description: "Standard persistent disk",
		MinSizeGb:   10 * units.GiB / units.GiB,
		MaxSizeGb:   64 * units.TiB / units.GiB,
	},
}

// SupportedDiskTypes returns the disk types usable in an instance template
func SupportedDiskTypes() []*DiskTypeInfo {
	return gceDiskTypes
}

func diskTypeByName(name string) *DiskTypeInfo {
	for _, dt := range gceDiskTypes {
		if dt.Name == name {
			return dt
		}
	}
	return nil
}

// validateDiskType checks the disk type and size of a template disk specification
func validateDiskType(name string, sizeGb int64) (*DiskTypeInfo, error) {
	dt := diskTypeByName(name)
	if dt == nil {
		return nil, fmt.Errorf("unsupported disk type '%s'", name)
	}
	if dt.Ephemeral {
		if sizeGb != 0 && sizeGb != dt.MinSizeGb {
			return nil, fmt.Errorf("disk type '%s' has a fixed size of %dGiB", name, dt.MinSizeGb)
		}
	} else if sizeGb < dt.MinSizeGb || sizeGb > dt.MaxSizeGb {
		return nil, fmt.Errorf("disk type '%s' size must be in the range [%d,%d] GiB", name, dt.MinSizeGb, dt.MaxSizeGb)
	}
	return dt, nil
}

// diskTypeURL returns the fully qualified disk type URL in the client zone
func (cl *Client) diskTypeURL(name string) string {
	return fmt.Sprintf(diskTypeURL, cl.projectID, cl.zone, name)
}
