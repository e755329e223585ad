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
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cumulo-cloud/provisioner/pkg/gcesdk"
	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// Client implements the provider.Client for a Google Compute Engine domain
type Client struct {
	prov           *Provider
	api            gcesdk.API
	Timeout        time.Duration
	domID          string
	attrs          map[string]provider.ValueType
	projectID      string
	zone           string
	imageAliases   map[string]string
	computeService gcesdk.ComputeService
	ow             operationWaiter
}

// Client returns a provider.Client
func (p *Provider) Client(dObj *provider.Domain) (provider.Client, error) {
	if dObj.Type != ProviderType {
		return nil, fmt.Errorf("invalid domain object")
	}
	cl := &Client{
		prov:    p,
		api:     gcesdk.New(),
		Timeout: time.Second * clientDefaultTimeoutSecs,
		domID:   dObj.ID,
		attrs:   dObj.Attributes,
	}
	if err := p.clInit.clientInit(cl); err != nil {
		return nil, err
	}
	return cl, nil
}

// clientInit initializes a GCE client
func (p *Provider) clientInit(cl *Client) error {
	if err := validateAttributes(cl.attrs, true); err != nil {
		return err
	}
	var credValues map[string]string
	if err := json.Unmarshal([]byte(cl.attrs[AttrCred].Value), &credValues); err != nil {
		return fmt.Errorf("could not parse %s: %w", AttrCred, err)
	}
	cl.projectID = credValues[ProjectID]
	cl.zone = cl.attrs[AttrZone].Value
	cl.imageAliases = make(map[string]string, len(defaultImageAliases))
	for k, v := range defaultImageAliases {
		cl.imageAliases[k] = v
	}
	if vt, ok := cl.attrs[AttrImageAliases]; ok && vt.Value != "" {
		var aliases map[string]string
		if err := json.Unmarshal([]byte(vt.Value), &aliases); err != nil {
			return fmt.Errorf("could not parse %s: %w", AttrImageAliases, err)
		}
		for k, v := range aliases {
			cl.imageAliases[k] = v
		}
	}
	cl.ow = cl // self-reference
	return nil
}

// Type returns the domain type
func (cl *Client) Type() string {
	return cl.prov.Type()
}

// ID returns the domain object ID
func (cl *Client) ID() string {
	return cl.domID
}

// SetTimeout sets the client timeout
func (cl *Client) SetTimeout(secs int) {
	if secs <= 0 {
		secs = clientDefaultTimeoutSecs
	}
	cl.Timeout = time.Duration(secs) * time.Second
}

// validateAttributes validates attributes are present and of a proper kind
func validateAttributes(attrs map[string]provider.ValueType, allAttrs bool) error {
	attrsOK := false
	if vt, ok := attrs[AttrCred]; ok && vt.Kind == provider.ValueTypeSecret {
		if !allAttrs {
			attrsOK = true
		} else if vt, ok := attrs[AttrZone]; ok && vt.Kind == provider.ValueTypeString {
			attrsOK = true
		}
	}
	if !attrsOK {
		msg := "required domain attributes missing or invalid: need " + AttrCred + "[E]"
		if allAttrs {
			msg += ", " + AttrZone + "[S]"
		}
		return fmt.Errorf(msg)
	}
	return nil
}

func validateIdentity(ctx context.Context, cl *Client, attrs map[string]provider.ValueType) error {
	_, err := cl.api.NewComputeService(ctx, option.WithCredentialsJSON([]byte(attrs[AttrCred].Value)))
	return err
}

// ValidateCredential determines if the credentials are valid, returning nil on success
func (p *Provider) ValidateCredential(domType string, attrs map[string]provider.ValueType) error {
	if domType != ProviderType {
		return fmt.Errorf("invalid DomainType")
	}
	if err := validateAttributes(attrs, false); err != nil {
		return err
	}
	var credValues map[string]string
	if err := json.Unmarshal([]byte(attrs[AttrCred].Value), &credValues); err != nil {
		return fmt.Errorf("could not parse %s: %w", AttrCred, err)
	}
	cl := &Client{
		prov:      p,
		api:       gcesdk.New(),
		attrs:     attrs,
		projectID: credValues[ProjectID],
	}
	ctx, cancelFn := context.WithTimeout(context.Background(), time.Second*clientDefaultTimeoutSecs)
	defer cancelFn()

	return validateIdentity(ctx, cl, attrs)
}

// Validate determines if the credentials, zone, etc. are valid, returning nil on success
func (cl *Client) Validate(ctx context.Context) error {
	if ctx == nil {
		var cancelFn func()
		ctx = context.Background()
		ctx, cancelFn = context.WithTimeout(ctx, cl.Timeout)
		defer cancelFn()
	}
	service, err := cl.api.NewComputeService(ctx, option.WithCredentialsJSON([]byte(cl.attrs[AttrCred].Value)))
	if err != nil {
		return fmt.Errorf("failed to create GCE compute service: %w", err)
	}
	if _, err = service.Zones().Get(cl.projectID, cl.zone).Context(ctx).Do(); err != nil {
		return err
	}
	cl.computeService = service
	return nil
}

func (cl *Client) getComputeService(ctx context.Context) (gcesdk.ComputeService, error) {
	if cl.computeService == nil {
		if ctx == nil {
			var cancelFn func()
			ctx = context.Background()
			ctx, cancelFn = context.WithTimeout(ctx, cl.Timeout)
			defer cancelFn()
		}
		service, err := cl.api.NewComputeService(ctx, option.WithCredentialsJSON([]byte(cl.attrs[AttrCred].Value)))
		if err != nil {
			return nil, fmt.Errorf("failed to create GCE compute service: %w", err)
		}
		cl.computeService = service
	}
	return cl.computeService, nil
}

// httpStatus extracts the HTTP status code from a googleapi error, or 0
func httpStatus(err error) int {
	if gErr, ok := err.(*googleapi.Error); ok {
		return gErr.Code
	}
	return 0
}

// lastURLPart returns the final path element of a GCE resource URL
func lastURLPart(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}
	return url
}

// zoneToRegion strips the zone suffix, e.g. us-west1-a yields us-west1
func zoneToRegion(zone string) string {
	if i := strings.LastIndex(zone, "-"); i >= 0 {
		return zone[:i]
	}
	return zone
}

// diskURLZoneName parses the zone and disk name out of a disk resource URL
// of the form .../projects/project/zones/zone/disks/disk
func diskURLZoneName(url string) (string, string) {
	parts := strings.Split(url, "/")
	zone, name := "", ""
	for i, p := range parts {
		if p == "zones" && i+1 < len(parts) {
			zone = parts[i+1]
		} else if p == "disks" && i+1 < len(parts) {
			name = parts[i+1]
		}
	}
	return zone, name
}
