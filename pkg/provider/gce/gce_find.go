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

	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"google.golang.org/api/compute/v1"
)

// Find returns the template instances that currently exist; ids with no
// backing instance are omitted. An invalid name prefix matches nothing and
// short-circuits without remote calls.
func (cl *Client) Find(ctx context.Context, args *provider.FindArgs) ([]*provider.Instance, error) {
	t := args.Template
	if t == nil {
		return nil, fmt.Errorf("no template specified")
	}
	result := []*provider.Instance{}
	if !ValidNamePrefix(t.NamePrefix) {
		return result, nil
	}
	computeService, err := cl.getComputeService(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range args.InstanceIDs {
		name := DecorateInstanceName(t.NamePrefix, id)
		inst, err := computeService.Instances().Get(cl.projectID, cl.zone, name).Context(ctx).Do()
		if err != nil {
			if httpStatus(err) == http.StatusNotFound {
				continue
			}
			return nil, err
		}
		result = append(result, gceInstanceToInstance(id, inst))
	}
	return result, nil
}

// InstanceStates returns a state for every requested id; ids with no backing
// instance report UNKNOWN. An invalid name prefix reports every id as
// UNKNOWN without remote calls.
func (cl *Client) InstanceStates(ctx context.Context, args *provider.FindArgs) (map[string]provider.InstanceState, error) {
	t := args.Template
	if t == nil {
		return nil, fmt.Errorf("no template specified")
	}
	states := make(map[string]provider.InstanceState, len(args.InstanceIDs))
	if !ValidNamePrefix(t.NamePrefix) {
		for _, id := range args.InstanceIDs {
			states[id] = provider.InstanceStateUnknown
		}
		return states, nil
	}
	computeService, err := cl.getComputeService(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range args.InstanceIDs {
		name := DecorateInstanceName(t.NamePrefix, id)
		inst, err := computeService.Instances().Get(cl.projectID, cl.zone, name).Context(ctx).Do()
		if err != nil {
			if httpStatus(err) == http.StatusNotFound {
				states[id] = provider.InstanceStateUnknown
				continue
			}
			return nil, err
		}
		states[id] = gceInstanceState(inst.Status)
	}
	return states, nil
}

// gceInstanceState maps a GCE instance status to the vendor neutral state
func gceInstanceState(status string) provider.InstanceState {
	switch status {
	case "PROVISIONING", "STAGING":
		return provider.InstanceStatePending
	case "RUNNING":
		return provider.InstanceStateRunning
	case "STOPPING", "SUSPENDING":
		return provider.InstanceStateStopping
	case "TERMINATED", "STOPPED", "SUSPENDED":
		return provider.InstanceStateStopped
	}
	return provider.InstanceStateUnknown
}

// gceInstanceToInstance is the GCE to the vendor neutral data type converter
func gceInstanceToInstance(id string, gceInst *compute.Instance) *provider.Instance {
	inst := &provider.Instance{
		ID:    id,
		Name:  gceInst.Name,
		State: gceInstanceState(gceInst.Status),
		Raw:   gceInst,
	}
out:
	for _, iF := range gceInst.NetworkInterfaces {
		inst.PrivateIP = iF.NetworkIP
		for _, cfg := range iF.AccessConfigs {
			if cfg.NatIP != "" {
				inst.PublicIP = cfg.NatIP
				break out
			}
		}
	}
	return inst
}
