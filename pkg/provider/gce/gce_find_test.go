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
	"errors"
	"net/http"
	"testing"

	"github.com/cumulo-cloud/provisioner/pkg/gcesdk"
	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"github.com/cumulo-cloud/provisioner/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
)

func TestFind(t *testing.T) {
	assert := assert.New(t)
	tl := testutils.NewTestLogger(t)
	defer tl.Flush()
	ctx := context.Background()

	cl, fc := newFakeClient(tl)
	tmpl := allocTemplate()

	res, err := cl.Find(ctx, &provider.FindArgs{})
	assert.Regexp("no template specified", err)
	assert.Nil(res)

	// an invalid prefix matches nothing and makes no remote calls
	tmpl.NamePrefix = "Bad_Prefix"
	res, err = cl.Find(ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: []string{"n1"}})
	assert.NoError(err)
	assert.Empty(res)
	assert.Empty(fc.Calls)
	tmpl.NamePrefix = "web"

	// ids with no backing instance are omitted
	fc.RetInstGetInstances["web-n1"] = &compute.Instance{
		Name:   "web-n1",
		Status: "RUNNING",
		NetworkInterfaces: []*compute.NetworkInterface{
			&compute.NetworkInterface{
				NetworkIP: "10.138.0.6",
				AccessConfigs: []*compute.AccessConfig{
					&compute.AccessConfig{},
					&compute.AccessConfig{NatIP: "34.83.52.28"},
				},
			},
		},
	}
	fc.RetInstGetErrs["web-n2"] = &googleapi.Error{Code: http.StatusNotFound}
	fc.RetInstGetInstances["web-n3"] = &compute.Instance{Name: "web-n3", Status: "TERMINATED"}
	res, err = cl.Find(ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: []string{"n1", "n2", "n3"}})
	assert.NoError(err)
	assert.Len(res, 2)
	assert.Equal("n1", res[0].ID)
	assert.Equal("web-n1", res[0].Name)
	assert.Equal("10.138.0.6", res[0].PrivateIP)
	assert.Equal("34.83.52.28", res[0].PublicIP)
	assert.Equal(provider.InstanceStateRunning, res[0].State)
	assert.NotNil(res[0].Raw)
	assert.Equal("n3", res[1].ID)
	assert.Equal(provider.InstanceStateStopped, res[1].State)
	assert.Empty(res[1].PublicIP)

	// other errors propagate
	fc.RetInstGetErrs["web-n2"] = errors.New("backend error")
	res, err = cl.Find(ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: []string{"n2"}})
	assert.Error(err)
	assert.Regexp("backend error", err)
	assert.Nil(res)

	// compute service creation failure
	cl2 := &Client{
		prov:  &Provider{},
		api:   gcesdk.New(),
		attrs: map[string]provider.ValueType{},
	}
	res, err = cl2.Find(ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: []string{"n1"}})
	assert.Regexp("failed to create GCE compute service", err)
	assert.Nil(res)
}

func TestInstanceStates(t *testing.T) {
	assert := assert.New(t)
	tl := testutils.NewTestLogger(t)
	defer tl.Flush()
	ctx := context.Background()

	cl, fc := newFakeClient(tl)
	tmpl := allocTemplate()

	states, err := cl.InstanceStates(ctx, &provider.FindArgs{})
	assert.Regexp("no template specified", err)
	assert.Nil(states)

	// an invalid prefix reports every id as unknown without remote calls
	tmpl.NamePrefix = "Bad_Prefix"
	states, err = cl.InstanceStates(ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: []string{"n1", "n2"}})
	assert.NoError(err)
	assert.Equal(map[string]provider.InstanceState{
		"n1": provider.InstanceStateUnknown,
		"n2": provider.InstanceStateUnknown,
	}, states)
	assert.Empty(fc.Calls)
	tmpl.NamePrefix = "web"

	fc.RetInstGetInstances["web-n1"] = &compute.Instance{Name: "web-n1", Status: "PROVISIONING"}
	fc.RetInstGetInstances["web-n2"] = &compute.Instance{Name: "web-n2", Status: "RUNNING"}
	fc.RetInstGetErrs["web-n3"] = &googleapi.Error{Code: http.StatusNotFound}
	states, err = cl.InstanceStates(ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: []string{"n1", "n2", "n3"}})
	assert.NoError(err)
	assert.Equal(map[string]provider.InstanceState{
		"n1": provider.InstanceStatePending,
		"n2": provider.InstanceStateRunning,
		"n3": provider.InstanceStateUnknown,
	}, states)

	// other errors propagate
	fc.RetInstGetErrs["web-n3"] = errors.New("backend error")
	states, err = cl.InstanceStates(ctx, &provider.FindArgs{Template: tmpl, InstanceIDs: []string{"n3"}})
	assert.Error(err)
	assert.Regexp("backend error", err)
	assert.Nil(states)
}

func TestGCEInstanceState(t *testing.T) {
	assert := assert.New(t)

	exp := map[string]provider.InstanceState{
		"PROVISIONING": provider.InstanceStatePending,
		"STAGING":      provider.InstanceStatePending,
		"RUNNING":      provider.InstanceStateRunning,
		"STOPPING":     provider.InstanceStateStopping,
		"SUSPENDING":   provider.InstanceStateStopping,
		"TERMINATED":   provider.InstanceStateStopped,
		"STOPPED":      provider.InstanceStateStopped,
		"SUSPENDED":    provider.InstanceStateStopped,
		"REPAIRING":    provider.InstanceStateUnknown,
		"":             provider.InstanceStateUnknown,
	}
	for status, state := range exp {
		assert.Equal(state, gceInstanceState(status), "status %s", status)
	}
}

func TestGCEInstanceToInstance(t *testing.T) {
	assert := assert.New(t)

	// the first external address wins
	gceInst := &compute.Instance{
		Name:   "web-n1",
		Status: "RUNNING",
		NetworkInterfaces: []*compute.NetworkInterface{
			&compute.NetworkInterface{NetworkIP: "10.0.0.1"},
			&compute.NetworkInterface{
				NetworkIP: "10.0.0.2",
				AccessConfigs: []*compute.AccessConfig{
					&compute.AccessConfig{NatIP: "34.83.52.28"},
				},
			},
		},
	}
	inst := gceInstanceToInstance("n1", gceInst)
	assert.Equal("n1", inst.ID)
	assert.Equal("web-n1", inst.Name)
	assert.Equal("10.0.0.2", inst.PrivateIP)
	assert.Equal("34.83.52.28", inst.PublicIP)
	assert.Equal(provider.InstanceStateRunning, inst.State)
	assert.Equal(gceInst, inst.Raw)

	// no external address
	gceInst.NetworkInterfaces[1].AccessConfigs = nil
	inst = gceInstanceToInstance("n1", gceInst)
	assert.Equal("10.0.0.2", inst.PrivateIP)
	assert.Empty(inst.PublicIP)
}
