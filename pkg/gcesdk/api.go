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


package gcesdk

import (
	"context"

	"google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// API is an interface over the GCE SDK
type API interface {
	// Add methods as needed

	NewComputeService(ctx context.Context, opts ...option.ClientOption) (ComputeService, error)
}

// ComputeService is an interface over compute.Service
type ComputeService interface {
	Disks() DisksService
	Instances() InstancesService
	ZoneOperations() ZoneOperationsService
	Zones() ZonesService
}

// DisksService is an interface over compute.DisksService
type DisksService interface {
	Delete(project string, zone string, disk string) DisksDeleteCall
	Get(project string, zone string, disk string) DisksGetCall
	Insert(project string, zone string, disk *compute.Disk) DisksInsertCall
}

// DisksDeleteCall is an interface over compute.DisksDeleteCall
type DisksDeleteCall interface {
	Context(ctx context.Context) DisksDeleteCall
	Do(opts ...googleapi.CallOption) (*compute.Operation, error)
}

// DisksGetCall is an interface over compute.DisksGetCall
type DisksGetCall interface {
	Context(ctx context.Context) DisksGetCall
	Do(opts ...googleapi.CallOption) (*compute.Disk, error)
}

// DisksInsertCall is an interface over compute.DisksInsertCall
type DisksInsertCall interface {
	Context(ctx context.Context) DisksInsertCall
	Do(opts ...googleapi.CallOption) (*compute.Operation, error)
}

// InstancesService is an interface over compute.InstancesService
type InstancesService interface {
	Delete(project string, zone string, instance string) InstancesDeleteCall
	Get(project string, zone string, instance string) InstancesGetCall
	Insert(project string, zone string, instance *compute.Instance) InstancesInsertCall
}

// InstancesDeleteCall is an interface over compute.InstancesDeleteCall
type InstancesDeleteCall interface {
	Context(ctx context.Context) InstancesDeleteCall
	Do(opts ...googleapi.CallOption) (*compute.Operation, error)
}

// InstancesGetCall is an interface over compute.InstancesGetCall
type InstancesGetCall interface {
	Context(ctx context.Context) InstancesGetCall
	Do(opts ...googleapi.CallOption) (*compute.Instance, error)
}

// InstancesInsertCall is an interface over compute.InstancesInsertCall
type InstancesInsertCall interface {
	Context(ctx context.Context) InstancesInsertCall
	Do(opts ...googleapi.CallOption) (*compute.Operation, error)
}

// ZoneOperationsService is an interface over compute.ZoneOperationsService
type ZoneOperationsService interface {
	Get(project string, zone string, operation string) ZoneOperationsGetCall
}

// ZoneOperationsGetCall is an interface over compute.ZoneOperationsGetCall
type ZoneOperationsGetCall interface {
	Context(ctx context.Context) ZoneOperationsGetCall
	Do(opts ...googleapi.CallOption) (*compute.Operation, error)
}

// ZonesService is an interface over compute.ZonesService
type ZonesService interface {
	Get(project string, zone string) ZonesGetCall
}

// ZonesGetCall is an interface over compute.ZonesGetCall
type ZonesGetCall interface {
	Context(ctx context.Context) ZonesGetCall
	Do(opts ...googleapi.CallOption) (*compute.Zone, error)
}

// SDK satisfies API
type sdk struct{}

var _ = API(&sdk{})

type service struct {
	s *compute.Service
}

var _ = ComputeService(&service{})

type disksService struct {
	d *compute.DisksService
}

var _ = DisksService(&disksService{})

type disksDeleteCall struct {
	c *compute.DisksDeleteCall
}

var _ = DisksDeleteCall(&disksDeleteCall{})

type disksGetCall struct {
	c *compute.DisksGetCall
}

var _ = DisksGetCall(&disksGetCall{})

type disksInsertCall struct {
	c *compute.DisksInsertCall
}

var _ = DisksInsertCall(&disksInsertCall{})

type instancesService struct {
	i *compute.InstancesService
}

var _ = InstancesService(&instancesService{})

type instancesDeleteCall struct {
	c *compute.InstancesDeleteCall
}

var _ = InstancesDeleteCall(&instancesDeleteCall{})

type instancesGetCall struct {
	c *compute.InstancesGetCall
}

var _ = InstancesGetCall(&instancesGetCall{})

type instancesInsertCall struct {
	c *compute.InstancesInsertCall
}

var _ = InstancesInsertCall(&instancesInsertCall{})

type zoneOperationsService struct {
	z *compute.ZoneOperationsService
}

var _ = ZoneOperationsService(&zoneOperationsService{})

type zoneOperationsGetCall struct {
	c *compute.ZoneOperationsGetCall
}

var _ = ZoneOperationsGetCall(&zoneOperationsGetCall{})

type zonesService struct {
	z *compute.ZonesService
}

var _ = ZonesService(&zonesService{})

type zonesGetCall struct {
	c *compute.ZonesGetCall
}

var _ = ZonesGetCall(&zonesGetCall{})

// New returns the real implementation of API over the GCE SDK
func New() API {
	return &sdk{}
}

// NewComputeService wraps compute.NewService
func (c *sdk) NewComputeService(ctx context.Context, opts ...option.ClientOption) (ComputeService, error) {
	ret := &service{}
	var err error
	if ret.s, err = compute.NewService(ctx, opts...); err != nil {
		ret = nil
	}
	return ret, err
}

func (cs *service) Disks() DisksService {
	return &disksService{d: cs.s.Disks}
}

func (d *disksService) Delete(project string, zone string, disk string) DisksDeleteCall {
	return &disksDeleteCall{c: d.d.Delete(project, zone, disk)}
}

func (c *disksDeleteCall) Context(ctx context.Context) DisksDeleteCall {
	c.c.Context(ctx) // returns itself
	return c
}

func (c *disksDeleteCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	return c.c.Do(opts...)
}

func (d *disksService) Get(project string, zone string, disk string) DisksGetCall {
	return &disksGetCall{c: d.d.Get(project, zone, disk)}
}

func (c *disksGetCall) Context(ctx context.Context) DisksGetCall {
	c.c.Context(ctx) // returns itself
	return c
}

func (c *disksGetCall) Do(opts ...googleapi.CallOption) (*compute.Disk, error) {
	return c.c.Do(opts...)
}

func (d *disksService) Insert(project string, zone string, disk *compute.Disk) DisksInsertCall {
	return &disksInsertCall{c: d.d.Insert(project, zone, disk)}
}

func (c *disksInsertCall) Context(ctx context.Context) DisksInsertCall {
	c.c.Context(ctx) // returns itself
	return c
}

func (c *disksInsertCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	return c.c.Do(opts...)
}

func (cs *service) Instances() InstancesService {
	return &instancesService{i: cs.s.Instances}
}

func (i *instancesService) Delete(project string, zone string, instance string) InstancesDeleteCall {
	return &instancesDeleteCall{c: i.i.Delete(project, zone, instance)}
}

func (c *instancesDeleteCall) Context(ctx context.Context) InstancesDeleteCall {
	c.c.Context(ctx) // returns itself
	return c
}

func (c *instancesDeleteCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	return c.c.Do(opts...)
}

func (i *instancesService) Get(project string, zone string, instance string) InstancesGetCall {
	return &instancesGetCall{c: i.i.Get(project, zone, instance)}
}

func (c *instancesGetCall) Context(ctx context.Context) InstancesGetCall {
	c.c.Context(ctx) // returns itself
	return c
}

func (c *instancesGetCall) Do(opts ...googleapi.CallOption) (*compute.Instance, error) {
	return c.c.Do(opts...)
}

func (i *instancesService) Insert(project string, zone string, instance *compute.Instance) InstancesInsertCall {
	return &instancesInsertCall{c: i.i.Insert(project, zone, instance)}
}

func (c *instancesInsertCall) Context(ctx context.Context) InstancesInsertCall {
	c.c.Context(ctx) // returns itself
	return c
}

func (c *instancesInsertCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	return c.c.Do(opts...)
}

func (cs *service) ZoneOperations() ZoneOperationsService {
	return &zoneOperationsService{z: cs.s.ZoneOperations}
}

func (zs *zoneOperationsService) Get(project string, zone string, operation string) ZoneOperationsGetCall {
	return &zoneOperationsGetCall{c: zs.z.Get(project, zone, operation)}
}

func (c *zoneOperationsGetCall) Context(ctx context.Context) ZoneOperationsGetCall {
	c.c.Context(ctx) // returns itself
	return c
}

func (c *zoneOperationsGetCall) Do(opts ...googleapi.CallOption) (*compute.Operation, error) {
	return c.c.Do(opts...)
}

func (cs *service) Zones() ZonesService {
	return &zonesService{z: cs.s.Zones}
}

func (zs *zonesService) Get(project string, zone string) ZonesGetCall {
	return &zonesGetCall{c: zs.z.Get(project, zone)}
}

func (c *zonesGetCall) Context(ctx context.Context) ZonesGetCall {
	c.c.Context(ctx) // returns itself
	return c
}

func (c *zonesGetCall) Do(opts ...googleapi.CallOption) (*compute.Zone, error) {
	return c.c.Do(opts...)
}
