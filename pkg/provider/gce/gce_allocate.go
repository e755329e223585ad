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
	"strings"

	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"google.golang.org/api/compute/v1"
)

// instanceRequest tracks the resources planned for one instance id
type instanceRequest struct {
	id        string
	name      string
	diskNames []string // persistent data disks, in creation order
}

// Allocate provisions the instances described by the template. Persistent
// data disks are created first; an instance is only requested once all of its
// disks are available. Resources that already exist are counted as allocated.
// If fewer than args.MinCount instances exist at the end, the created
// resources are torn down and an UnrecoverableError is returned; a partial
// outcome at or above the minimum is logged and succeeds.
func (cl *Client) Allocate(ctx context.Context, args *provider.AllocateArgs) error {
	t := args.Template
	if t == nil || len(args.InstanceIDs) == 0 {
		return fmt.Errorf("no instances requested")
	}
	if args.MinCount < 0 || args.MinCount > len(args.InstanceIDs) {
		return fmt.Errorf("minimum count must be in the range [0,%d]", len(args.InstanceIDs))
	}
	if !ValidNamePrefix(t.NamePrefix) {
		return fmt.Errorf("invalid name prefix '%s'", t.NamePrefix)
	}
	sourceImage, err := cl.resolveImage(t.Image)
	if err != nil {
		return err
	}
	bootDT, err := validateDiskType(t.BootDiskType, t.BootDiskSizeGb)
	if err != nil {
		return err
	}
	if bootDT.Ephemeral {
		return fmt.Errorf("disk type '%s' cannot be used for the boot disk", bootDT.Name)
	}
	var dataDT *DiskTypeInfo
	if t.DataDiskCount > 0 {
		if dataDT, err = validateDiskType(t.DataDiskType, t.DataDiskSizeGb); err != nil {
			return err
		}
	}
	computeService, err := cl.getComputeService(ctx)
	if err != nil {
		return err
	}
	batchID := uuidGenerator()
	labels := map[string]string{
		labelCreatedBy: provenanceLabel(),
		labelBatchID:   batchID,
	}
	for _, tag := range t.Tags {
		kv := strings.SplitN(tag, ":", 2)
		if len(kv) == 2 {
			labels[kv[0]] = kv[1]
		} else {
			labels[kv[0]] = ""
		}
	}
	conds := provider.NewConditions()
	timeout, maxInterval := pollDurations(t)

	// create persistent data disks before any instance is requested
	reqs := make([]*instanceRequest, 0, len(args.InstanceIDs))
	diskOps := []*compute.Operation{}
	diskRecord := map[string]*compute.Operation{} // created disks by target link
	readyDisks := map[string]bool{}
	for _, id := range args.InstanceIDs {
		req := &instanceRequest{id: id, name: DecorateInstanceName(t.NamePrefix, id)}
		reqs = append(reqs, req)
		if dataDT == nil || dataDT.Ephemeral {
			continue
		}
		for j := 0; j < t.DataDiskCount; j++ {
			diskName := fmt.Sprintf("%s-d%d", req.name, j)
			req.diskNames = append(req.diskNames, diskName)
			disk := &compute.Disk{
				Name:   diskName,
				SizeGb: t.DataDiskSizeGb,
				Type:   cl.diskTypeURL(dataDT.Name),
				Labels: labels,
			}
			op, err := computeService.Disks().Insert(cl.projectID, cl.zone, disk).Context(ctx).Do()
			if err != nil {
				if httpStatus(err) == http.StatusConflict {
					cl.prov.dbgF("disk %s already exists", diskName)
					readyDisks[diskName] = true
				} else {
					conds.AddError(diskName, "failed to create disk: %s", err.Error())
				}
				continue
			}
			diskOps = append(diskOps, op)
			diskRecord[op.TargetLink] = op
		}
	}
	for _, op := range cl.ow.awaitOperations(ctx, diskOps, doneOnly, timeout, maxInterval, conds) {
		readyDisks[lastURLPart(op.TargetLink)] = true
	}

	// request the instances whose disks are all available
	vmOps := []*compute.Operation{}
	preExisting := 0
	for _, req := range reqs {
		ready := 0
		for _, dn := range req.diskNames {
			if readyDisks[dn] {
				ready++
			}
		}
		if ready < len(req.diskNames) {
			conds.AddError(req.name, "only %d of %d data disks available", ready, len(req.diskNames))
			continue
		}
		inst := cl.buildInstance(t, req, sourceImage, dataDT, labels)
		op, err := computeService.Instances().Insert(cl.projectID, cl.zone, inst).Context(ctx).Do()
		if err != nil {
			if httpStatus(err) == http.StatusConflict {
				cl.prov.dbgF("instance %s already exists", req.name)
				preExisting++
			} else {
				conds.AddError(req.name, "failed to create instance: %s", err.Error())
			}
			continue
		}
		vmOps = append(vmOps, op)
	}
	succeededVMs := cl.ow.awaitOperations(ctx, vmOps, doneOnly, timeout, maxInterval, conds)

	successCount := len(succeededVMs) + preExisting
	if successCount < args.MinCount {
		conds.AddError("", "allocated %d of %d instances, minimum is %d", successCount, len(args.InstanceIDs), args.MinCount)
		cl.tearDown(ctx, vmOps, diskRecord, timeout, maxInterval, conds)
		return &provider.UnrecoverableError{Conditions: conds}
	}
	if successCount < len(args.InstanceIDs) {
		for _, msg := range conds.Messages() {
			cl.prov.warnF("allocate[%s]: %s", batchID, msg)
		}
	}
	return nil
}

// resolveImage maps an image alias to its source image URL; a value
// containing a path separator is assumed to already be a URL
func (cl *Client) resolveImage(image string) (string, error) {
	if image == "" {
		return "", fmt.Errorf("no image specified")
	}
	if strings.Contains(image, "/") {
		return image, nil
	}
	if url, ok := cl.imageAliases[image]; ok {
		return url, nil
	}
	return "", fmt.Errorf("unresolved image alias '%s'", image)
}

// buildInstance constructs the instance body from the template
func (cl *Client) buildInstance(t *provider.InstanceTemplate, req *instanceRequest, sourceImage string, dataDT *DiskTypeInfo, labels map[string]string) *compute.Instance {
	inst := &compute.Instance{
		Name:        req.name,
		MachineType: fmt.Sprintf(machineTypeURL, cl.projectID, cl.zone, t.MachineType),
		Labels:      labels,
		Scheduling:  &compute.Scheduling{Preemptible: t.Preemptible},
	}
	boot := &compute.AttachedDisk{
		Boot:       true,
		AutoDelete: true,
		InitializeParams: &compute.AttachedDiskInitializeParams{
			SourceImage: sourceImage,
			DiskSizeGb:  t.BootDiskSizeGb,
			DiskType:    cl.diskTypeURL(t.BootDiskType),
		},
	}
	inst.Disks = []*compute.AttachedDisk{boot}
	if dataDT != nil && dataDT.Ephemeral {
		for j := 0; j < t.DataDiskCount; j++ {
			inst.Disks = append(inst.Disks, &compute.AttachedDisk{
				Type:       "SCRATCH",
				AutoDelete: true,
				InitializeParams: &compute.AttachedDiskInitializeParams{
					DiskType: cl.diskTypeURL(DiskTypeLocalSSD),
				},
			})
		}
	} else {
		for _, dn := range req.diskNames {
			inst.Disks = append(inst.Disks, &compute.AttachedDisk{
				Source:     fmt.Sprintf(diskSourceURL, cl.projectID, cl.zone, dn),
				AutoDelete: true,
			})
		}
	}
	nic := &compute.NetworkInterface{}
	if t.Network != "" {
		nic.Network = fmt.Sprintf(networkURL, cl.projectID, t.Network)
	}
	if t.Subnetwork != "" {
		nic.Subnetwork = fmt.Sprintf(subnetworkURL, cl.projectID, zoneToRegion(cl.zone), t.Subnetwork)
	}
	if t.AssignExternalIP {
		nic.AccessConfigs = []*compute.AccessConfig{
			&compute.AccessConfig{Name: "External NAT", Type: "ONE_TO_ONE_NAT"},
		}
	}
	inst.NetworkInterfaces = []*compute.NetworkInterface{nic}
	if t.SSHUserName != "" && t.SSHPublicKey != "" {
		sshKeys := fmt.Sprintf("%s:%s", t.SSHUserName, t.SSHPublicKey)
		inst.Metadata = &compute.Metadata{
			Items: []*compute.MetadataItems{
				&compute.MetadataItems{Key: "ssh-keys", Value: &sshKeys},
			},
		}
	} else if t.SSHUserName != "" || t.SSHPublicKey != "" {
		cl.prov.dbgF("instance %s: incomplete ssh key material ignored", req.name)
	}
	return inst
}
