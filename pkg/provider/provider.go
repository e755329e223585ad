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

import (
	"context"
	"fmt"
	"sync"

	"github.com/op/go-logging"
)

// Attribute value kinds
const (
	ValueTypeInt    = "INT"
	ValueTypeSecret = "SECRET"
	ValueTypeString = "STRING"
)

// ValueType is a typed attribute value
type ValueType struct {
	Kind  string
	Value string
}

// AttributeDescriptor describes a provider attribute
type AttributeDescriptor struct {
	Kind        string
	Description string
	Optional    bool
	Immutable   bool
}

// Domain describes a provisioning domain: a provider type plus the
// attributes (credentials, zone, etc.) needed to operate within it.
type Domain struct {
	ID         string
	Type       string
	Attributes map[string]ValueType
}

// Provider abstraction provides operations on a type of cloud provider
type Provider interface {
	Type() string
	SetDebugLogger(log *logging.Logger)
	// Attributes returns a description of all possible provider attributes
	Attributes() map[string]AttributeDescriptor
	// CredentialAttributes returns a description of all possible attributes specific to credentials only
	CredentialAttributes() map[string]AttributeDescriptor
	// DomainAttributes returns a description of all possible attributes specific to the domain only
	DomainAttributes() map[string]AttributeDescriptor
	// ValidateCredential determines if the credentials are valid
	ValidateCredential(domType string, attrs map[string]ValueType) error
	// Client returns a client for the services available in a given domain.
	// Logging is inherited from the Provider
	Client(dom *Domain) (Client, error)
}

// Client abstraction provides a client to invoke services tied to a Domain
type Client interface {
	Type() string
	ID() string
	SetTimeout(secs int)
	Validate(ctx context.Context) error
	InstanceProvisioner
}

// InstanceProvisioner is an abstraction of instance lifecycle interfaces
type InstanceProvisioner interface {
	// Allocate provisions the instances described by the template, compensating
	// with best-effort teardown if fewer than args.MinCount can be created
	Allocate(ctx context.Context, args *AllocateArgs) error
	// Find returns the instances that currently exist; ids with no backing
	// instance are omitted from the result
	Find(ctx context.Context, args *FindArgs) ([]*Instance, error)
	// InstanceStates returns a state for every requested id
	InstanceStates(ctx context.Context, args *FindArgs) (map[string]InstanceState, error)
	// Delete removes the instances; ids with no backing instance are ignored
	Delete(ctx context.Context, args *DeleteArgs) error
}

// providerRegistry is a mapping of provider type name to Provider
var providerRegistry = make(map[string]Provider)

// providerMutex is available for internal use in this package
var providerMutex sync.Mutex

// Register registers a cloud provider interface
func Register(p Provider) {
	providerMutex.Lock()
	defer providerMutex.Unlock()
	providerRegistry[p.Type()] = p
}

// New returns a Provider interface to a concrete type
func New(providerType string) (Provider, error) {
	p, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("unsupported provider type")
	}
	return p, nil
}

// SupportedTypes returns a list of supported provider types
func SupportedTypes() []string {
	pt := make([]string, 0, len(providerRegistry))
	for k := range providerRegistry {
		pt = append(pt, k)
	}
	return pt
}
