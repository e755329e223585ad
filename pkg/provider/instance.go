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


package provider

// InstanceTemplate is the declarative description of the instances to provision.
// The same template is reused across Allocate/Find/Delete calls; only the
// instance ids vary.
type InstanceTemplate struct {
	// NamePrefix combines with an instance id to form the externally visible
	// resource name. It must satisfy the provider's naming rules.
	NamePrefix string
	// Image is an alias resolved through the provider's alias table, or a
	// full source image URL
	Image       string
	MachineType string
	Network     string
	Subnetwork  string
	// AssignExternalIP requests a NAT'd external address on the primary interface
	AssignExternalIP bool
	Preemptible      bool
	BootDiskType     string
	BootDiskSizeGb   int64
	// DataDiskCount data disks of DataDiskType/DataDiskSizeGb are provisioned
	// per instance. Ephemeral local types attach inline; persistent types are
	// created first and the instance is not requested until they are ready.
	DataDiskCount  int
	DataDiskType   string
	DataDiskSizeGb int64
	// SSHUserName and SSHPublicKey are both required to inject key material;
	// if either is missing the key material is omitted
	SSHUserName  string
	SSHPublicKey string
	// Tags of the form "key:value" are applied to every created resource
	Tags []string
	// Polling bounds for long-running operations; zero values select the
	// provider defaults
	PollTimeoutSecs     int
	PollMaxIntervalSecs int
}

// AllocateArgs contains the parameters for Allocate
type AllocateArgs struct {
	Template    *InstanceTemplate
	InstanceIDs []string
	// MinCount is the minimum number of instances that must exist for the
	// batch to succeed. It must lie in [0, len(InstanceIDs)].
	MinCount int
}

// FindArgs contains the parameters for Find and InstanceStates
type FindArgs struct {
	Template    *InstanceTemplate
	InstanceIDs []string
}

// DeleteArgs contains the parameters for Delete
type DeleteArgs struct {
	Template    *InstanceTemplate
	InstanceIDs []string
}

// Instance is a vendor neutral structure to return vendor specific instance data
type Instance struct {
	ID        string // the caller supplied instance id
	Name      string // the decorated resource name
	PrivateIP string
	PublicIP  string
	State     InstanceState
	Raw       interface{} // vendor specific data
}

// InstanceState enum type
type InstanceState int

// InstanceState values
const (
	InstanceStateUnknown InstanceState = iota
	InstanceStatePending
	InstanceStateRunning
	InstanceStateStopping
	InstanceStateStopped
)

var instanceStateMap = map[InstanceState]string{
	InstanceStateUnknown:  "UNKNOWN",
	InstanceStatePending:  "PENDING",
	InstanceStateRunning:  "RUNNING",
	InstanceStateStopping: "STOPPING",
	InstanceStateStopped:  "STOPPED",
}

func (is InstanceState) String() string {
	s, ok := instanceStateMap[is]
	if ok {
		return s
	}
	s, _ = instanceStateMap[InstanceStateUnknown]
	return s
}
