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
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"github.com/cumulo-cloud/provisioner/pkg/util"
	"google.golang.org/api/compute/v1"
)

// tearDown removes the resources created by a failed allocation batch.
// vmOps are the instance insert operations that were issued and diskRecord
// maps target links to the disk insert operations. Disks attached to an
// instance are auto-deleted with it, so they are pruned from the orphan set
// before the instance deletes are issued.
// Meant to be used after a prior GCE operation so assumes the cl.computeService has already been set
func (cl *Client) tearDown(ctx context.Context, vmOps []*compute.Operation, diskRecord map[string]*compute.Operation, timeout time.Duration, maxInterval time.Duration, conds *provider.Conditions) {
	orphans := make(map[string]*compute.Operation, len(diskRecord))
	for k, v := range diskRecord {
		orphans[k] = v
	}
	type vmRef struct {
		zone string
		name string
	}
	vms := make([]vmRef, 0, len(vmOps))
	for _, op := range vmOps {
		vms = append(vms, vmRef{zone: lastURLPart(op.Zone), name: lastURLPart(op.TargetLink)})
	}
	if len(orphans) > 0 {
		for _, vm := range vms {
			inst, err := cl.computeService.Instances().Get(cl.projectID, vm.zone, vm.name).Context(ctx).Do()
			if err != nil {
				if httpStatus(err) != http.StatusNotFound {
					conds.AddError(vm.name, "teardown: failed to fetch instance: %s", err.Error())
				}
				continue
			}
			for _, ad := range inst.Disks {
				if _, ok := orphans[ad.Source]; ok {
					cl.prov.dbgF("teardown: disk %s will be deleted with instance %s", lastURLPart(ad.Source), vm.name)
					delete(orphans, ad.Source)
				}
			}
		}
	}
	tdOps := []*compute.Operation{}
	for _, vm := range vms {
		op, err := cl.computeService.Instances().Delete(cl.projectID, vm.zone, vm.name).Context(ctx).Do()
		if err != nil {
			if httpStatus(err) == http.StatusNotFound {
				cl.prov.dbgF("teardown: instance %s not found", vm.name)
			} else {
				conds.AddError(vm.name, "teardown: failed to delete instance: %s", err.Error())
			}
			continue
		}
		tdOps = append(tdOps, op)
	}
	for _, link := range util.SortedStringKeys(orphans) {
		zone, name := diskURLZoneName(link)
		op, err := cl.computeService.Disks().Delete(cl.projectID, zone, name).Context(ctx).Do()
		if err != nil {
			if httpStatus(err) == http.StatusNotFound {
				cl.prov.dbgF("teardown: disk %s not found", name)
			} else {
				conds.AddError(name, "teardown: failed to delete disk: %s", err.Error())
			}
			continue
		}
		tdOps = append(tdOps, op)
	}
	succeeded := cl.ow.awaitOperations(ctx, tdOps, doneOnly, timeout, maxInterval, conds)
	if len(succeeded) < len(tdOps) {
		conds.AddError("", "teardown: %d of %d delete operations succeeded", len(succeeded), len(tdOps))
	}
}

// Delete removes the instances of the template; their attached disks are
// auto-deleted with them. Ids with no backing instance are ignored.
func (cl *Client) Delete(ctx context.Context, args *provider.DeleteArgs) error {
	t := args.Template
	if t == nil || len(args.InstanceIDs) == 0 {
		return fmt.Errorf("no instances specified")
	}
	if !ValidNamePrefix(t.NamePrefix) {
		return fmt.Errorf("invalid name prefix '%s'", t.NamePrefix)
	}
	computeService, err := cl.getComputeService(ctx)
	if err != nil {
		return err
	}
	conds := provider.NewConditions()
	timeout, maxInterval := pollDurations(t)
	ops := []*compute.Operation{}
	for _, id := range args.InstanceIDs {
		name := DecorateInstanceName(t.NamePrefix, id)
		op, err := computeService.Instances().Delete(cl.projectID, cl.zone, name).Context(ctx).Do()
		if err != nil {
			if httpStatus(err) == http.StatusNotFound {
				cl.prov.dbgF("instance %s not found", name)
			} else {
				conds.AddError(name, "failed to delete instance: %s", err.Error())
			}
			continue
		}
		ops = append(ops, op)
	}
	succeeded := cl.ow.awaitOperations(ctx, ops, runningOrDone, timeout, maxInterval, conds)
	if conds.HasErrors() || len(succeeded) < len(ops) {
		return &provider.UnrecoverableError{Conditions: conds}
	}
	return nil
}
