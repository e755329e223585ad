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


package fake

import (
	"context"

	"github.com/cumulo-cloud/provisioner/pkg/gcesdk"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
)

// ComputeService is a fake gcesdk.ComputeService. Return values are scripted
// per resource name and every call is appended to Calls in invocation order.
type ComputeService struct {
	// Calls records each invocation as "service.method:name"
	Calls []string

	// Disks.Insert
	InDiskInsert      map[string]*compute.Disk
	RetDiskInsertOps  map[string]*compute.Operation
	RetDiskInsertErrs map[string]error

	// Disks.Get
	RetDiskGetDisks map[string]*compute.Disk
	RetDiskGetErrs  map[string]error

	// Disks.Delete
	RetDiskDeleteOps  map[string]*compute.Operation
	RetDiskDeleteErrs map[string]error

	// Instances.Insert
	InInstInsert      map[string]*compute.Instance
	RetInstInsertOps  map[string]*compute.Operation
	RetInstInsertErrs map[string]error

	// Instances.Get
	RetInstGetInstances map[string]*compute.Instance
	RetInstGetErrs      map[string]error

	// Instances.Delete
	RetInstDeleteOps  map[string]*compute.Operation
	RetInstDeleteErrs map[string]error

	// ZoneOperations.Get: operations are consumed from the front of the
	// slice; the last element repeats once the slice is exhausted
	OpSeq        map[string][]*compute.Operation
	RetOpGetErrs map[string]error

	// Zones.Get
	RetZoneGetZone *compute.Zone
	RetZoneGetErr  error
}

var _ = gcesdk.ComputeService(&ComputeService{})

// NewComputeService returns an initialized fake
func NewComputeService() *ComputeService {
	return &ComputeService{
		InDiskInsert:        map[string]*compute.Disk{},
		RetDiskInsertOps:    map[string]*compute.Operation{},
		RetDiskInsertErrs:   map[string]error{},
		RetDiskGetDisks:     map[string]*compute.Disk{},
		RetDiskGetErrs:      map[string]error{},
		RetDiskDeleteOps:    map[string]*compute.Operation{},
		RetDiskDeleteErrs:   map[string]error{},
		InInstInsert:        map[string]*compute.Instance{},
		RetInstInsertOps:    map[string]*compute.Operation{},
		RetInstInsertErrs:   map[string]error{},
		RetInstGetInstances: map[string]*compute.Instance{},
		RetInstGetErrs:      map[string]error{},
		RetInstDeleteOps:    map[string]*compute.Operation{},
		RetInstDeleteErrs:   map[string]error{},
		OpSeq:               map[string][]*compute.Operation{},
		RetOpGetErrs:        map[string]error{},
	}
}

func (f *ComputeService) record(call string) {
	f.Calls = append(f.Calls, call)
}

// CallsFor returns the recorded calls matching the given prefix, in order
func (f *ComputeService) CallsFor(prefix string) []string {
	matched := []string{}
	for _, c := range f.Calls {
		if len(c) >= len(prefix) && c[:len(prefix)] == prefix {
			matched = append(matched, c)
		}
	}
	return matched
}

// Disks fakes its namesake
func (f *ComputeService) Disks() gcesdk.DisksService {
	return &disksService{f: f}
}

// Instances fakes its namesake
func (f *ComputeService) Instances() gcesdk.InstancesService {
	return &instancesService{f: f}
}

// ZoneOperations fakes its namesake
func (f *ComputeService) ZoneOperations() gcesdk.ZoneOperationsService {
	return &zoneOperationsService{f: f}
}

// Zones fakes its namesake
func (f *ComputeService) Zones() gcesdk.ZonesService {
	return &zonesService{f: f}
}

type disksService struct {
	f *ComputeService
}

func (d *disksService) Delete(project, zone, disk string) gcesdk.DisksDeleteCall {
	return &disksDeleteCall{f: d.f, name: disk}
}

func (d *disksService) Get(project, zone, disk string) gcesdk.DisksGetCall {
	return &disksGetCall{f: d.f, name: disk}
}

func (d *disksService) Insert(project, zone string, disk *compute.Disk) gcesdk.DisksInsertCall {
	d.f.InDiskInsert[disk.Name] = disk
	return &disksInsertCall{f: d.f, name: disk.Name}
}

type disksDeleteCall struct {
	f    *ComputeService
	name string
}

func (c *disksDeleteCall) Context(ctx context.Context) gcesdk.DisksDeleteCall {
	return c
}

func (c *disksDeleteCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	c.f.record("disks.delete:" + c.name)
	return c.f.RetDiskDeleteOps[c.name], c.f.RetDiskDeleteErrs[c.name]
}

type disksGetCall struct {
	f    *ComputeService
	name string
}

func (c *disksGetCall) Context(ctx context.Context) gcesdk.DisksGetCall {
	return c
}

func (c *disksGetCall) Do(opts ...googleapi.CallOption) (*compute.Disk, error) {
	c.f.record("disks.get:" + c.name)
	return c.f.RetDiskGetDisks[c.name], c.f.RetDiskGetErrs[c.name]
}

type disksInsertCall struct {
	f    *ComputeService
	name string
}

func (c *disksInsertCall) Context(ctx context.Context) gcesdk.DisksInsertCall {
	return c
}

func (c *disksInsertCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	c.f.record("disks.insert:" + c.name)
	return c.f.RetDiskInsertOps[c.name], c.f.RetDiskInsertErrs[c.name]
}

type instancesService struct {
	f *ComputeService
}

func (i *instancesService) Delete(project, zone, instance string) gcesdk.InstancesDeleteCall {
	return &instancesDeleteCall{f: i.f, name: instance}
}

func (i *instancesService) Get(project, zone, instance string) gcesdk.InstancesGetCall {
	return &instancesGetCall{f: i.f, name: instance}
}

func (i *instancesService) Insert(project, zone string, instance *compute.Instance) gcesdk.InstancesInsertCall {
	i.f.InInstInsert[instance.Name] = instance
	return &instancesInsertCall{f: i.f, name: instance.Name}
}

type instancesDeleteCall struct {
	f    *ComputeService
	name string
}

func (c *instancesDeleteCall) Context(ctx context.Context) gcesdk.InstancesDeleteCall {
	return c
}

func (c *instancesDeleteCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	c.f.record("instances.delete:" + c.name)
	return c.f.RetInstDeleteOps[c.name], c.f.RetInstDeleteErrs[c.name]
}

type instancesGetCall struct {
	f    *ComputeService
	name string
}

func (c *instancesGetCall) Context(ctx context.Context) gcesdk.InstancesGetCall {
	return c
}

func (c *instancesGetCall) Do(opts ...googleapi.CallOption) (*compute.Instance, error) {
	c.f.record("instances.get:" + c.name)
	return c.f.RetInstGetInstances[c.name], c.f.RetInstGetErrs[c.name]
}

type instancesInsertCall struct {
	f    *ComputeService
	name string
}

func (c *instancesInsertCall) Context(ctx context.Context) gcesdk.InstancesInsertCall {
	return c
}

func (c *instancesInsertCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	c.f.record("instances.insert:" + c.name)
	return c.f.RetInstInsertOps[c.name], c.f.RetInstInsertErrs[c.name]
}

type zoneOperationsService struct {
	f *ComputeService
}

func (z *zoneOperationsService) Get(project, zone, operation string) gcesdk.ZoneOperationsGetCall {
	return &zoneOperationsGetCall{f: z.f, name: operation}
}

type zoneOperationsGetCall struct {
	f    *ComputeService
	name string
}

func (c *zoneOperationsGetCall) Context(ctx context.Context) gcesdk.ZoneOperationsGetCall {
	return c
}

func (c *zoneOperationsGetCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	c.f.record("zoneOperations.get:" + c.name)
	if err, ok := c.f.RetOpGetErrs[c.name]; ok {
		return nil, err
	}
	seq := c.f.OpSeq[c.name]
	if len(seq) == 0 {
		return nil, nil
	}
	op := seq[0]
	if len(seq) > 1 {
		c.f.OpSeq[c.name] = seq[1:]
	}
	return op, nil
}

type zonesService struct {
	f *ComputeService
}

func (z *zonesService) Get(project, zone string) gcesdk.ZonesGetCall {
	return &zonesGetCall{f: z.f, name: zone}
}

type zonesGetCall struct {
	f    *ComputeService
	name string
}

func (c *zonesGetCall) Context(ctx context.Context) gcesdk.ZonesGetCall {
	return c
}

func (c *zonesGetCall) Do(opts ...googleapi.CallOption) (*compute.Zone, error) {
	c.f.record("zones.get:" + c.name)
	return c.f.RetZoneGetZone, c.f.RetZoneGetErr
}
