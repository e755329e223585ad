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
	"regexp"
	"strings"
	"sync"

	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"github.com/op/go-logging"
	uuid "github.com/satori/go.uuid"
)

// Google Compute Engine constants
const (
	AttrCred         = "gce_cred"
	AttrZone         = "gce_zone"
	AttrImageAliases = "gce_image_aliases"
	ProjectID        = "project_id"

	ProviderType = "GCE"

	clientDefaultTimeoutSecs = 30

	machineTypeURL = "https://www.googleapis.com/compute/v1/projects/%s/zones/%s/machineTypes/%s"
	diskTypeURL    = "https://www.googleapis.com/compute/v1/projects/%s/zones/%s/diskTypes/%s"
	diskSourceURL  = "https://www.googleapis.com/compute/v1/projects/%s/zones/%s/disks/%s"
	networkURL     = "https://www.googleapis.com/compute/v1/projects/%s/global/networks/%s"
	subnetworkURL  = "https://www.googleapis.com/compute/v1/projects/%s/regions/%s/subnetworks/%s"

	// labels applied to every created resource
	labelCreatedBy = "created-by"
	labelBatchID   = "allocation-id"

	toolName    = "cumulo-provisioner"
	toolVersion = "1.0.0"
)

// Provider is the Google Compute Engine instance provisioner
type Provider struct {
	Log    *logging.Logger
	clInit clientInitializer
	mux    sync.Mutex
}

type clientInitializer interface {
	clientInit(cl *Client) error
}

func init() {
	gceProv := &Provider{}
	gceProv.clInit = gceProv // self-reference
	provider.Register(gceProv)
}

// Type satisfies Provider
func (p *Provider) Type() string {
	return ProviderType
}

// SetDebugLogger satisfies Provider
func (p *Provider) SetDebugLogger(log *logging.Logger) {
	p.Log = log
}

func (p *Provider) dbgF(fmt string, args ...interface{}) {
	if p.Log != nil {
		p.Log.Debugf(fmt, args...)
	}
}

func (p *Provider) warnF(fmt string, args ...interface{}) {
	if p.Log != nil {
		p.Log.Warningf(fmt, args...)
	}
}

var gceAttributes = map[string]provider.AttributeDescriptor{
	AttrCred:         provider.AttributeDescriptor{Kind: provider.ValueTypeSecret, Description: "The Google Cloud Platform service account credential JSON"},
	AttrZone:         provider.AttributeDescriptor{Kind: provider.ValueTypeString, Description: "The Google Cloud Platform project zone", Immutable: true},
	AttrImageAliases: provider.AttributeDescriptor{Kind: provider.ValueTypeString, Description: "A JSON object mapping image aliases to source image URLs", Optional: true},
}

var credentialAttributesNames = []string{AttrCred}
var domainAttributesNames = []string{AttrZone, AttrImageAliases}

// Attributes satisfies Provider
func (p *Provider) Attributes() map[string]provider.AttributeDescriptor {
	return gceAttributes
}

// CredentialAttributes satisfies Provider
func (p *Provider) CredentialAttributes() map[string]provider.AttributeDescriptor {
	credAttributes := make(map[string]provider.AttributeDescriptor, len(credentialAttributesNames))
	for _, attr := range credentialAttributesNames {
		credAttributes[attr] = gceAttributes[attr]
	}
	return credAttributes
}

// DomainAttributes satisfies Provider
func (p *Provider) DomainAttributes() map[string]provider.AttributeDescriptor {
	domAttributes := make(map[string]provider.AttributeDescriptor, len(domainAttributesNames))
	for _, attr := range domainAttributesNames {
		domAttributes[attr] = gceAttributes[attr]
	}
	return domAttributes
}

// GCE resource names must start with a lowercase letter followed by lowercase
// letters, digits or hyphens. The prefix length is capped so that decorated
// names stay within the 63 character resource name limit.
var reNamePrefix = regexp.MustCompile(`^[a-z][a-z0-9-]{0,25}$`)

// ValidNamePrefix returns true if the prefix can be used to decorate instance names
func ValidNamePrefix(prefix string) bool {
	return reNamePrefix.MatchString(prefix)
}

// DecorateInstanceName combines the template name prefix with an instance id
func DecorateInstanceName(prefix, instanceID string) string {
	return prefix + "-" + strings.ToLower(instanceID)
}

// GCE label values allow lowercase letters, digits and hyphens only
var reLabelValue = regexp.MustCompile(`[^a-z0-9-]`)

// provenanceLabel is the value of the created-by label
func provenanceLabel() string {
	return reLabelValue.ReplaceAllString(strings.ToLower(toolName+"-"+toolVersion), "-")
}

// defaultImageAliases may be extended or overridden with the AttrImageAliases
// domain attribute
var defaultImageAliases = map[string]string{
	"centos7":    "https://www.googleapis.com/compute/v1/projects/centos-cloud/global/images/family/centos-7",
	"debian9":    "https://www.googleapis.com/compute/v1/projects/debian-cloud/global/images/family/debian-9",
	"ubuntu1804": "https://www.googleapis.com/compute/v1/projects/ubuntu-os-cloud/global/images/family/ubuntu-1804-lts",
}

// Indirection for UUID generation to support UT
type uuidGen func() string

var uuidGenerator uuidGen = func() string { return uuid.NewV4().String() }
