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
	"strings"
	"time"

	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"github.com/cumulo-cloud/provisioner/pkg/util"
	"google.golang.org/api/compute/v1"
)

// GCE operation status values
const (
	operationStatusPending = "PENDING"
	operationStatusRunning = "RUNNING"
	operationStatusDone    = "DONE"
)

// Default polling bounds for long-running operations
const (
	PollTimeoutDefaultSecs     = 300
	PollMaxIntervalDefaultSecs = 30
)

// statusSet is a set of operation status values that terminate a wait
type statusSet []string

// Contains returns true if the status is in the set
func (s statusSet) Contains(status string) bool {
	for _, v := range s {
		if v == status {
			return true
		}
	}
	return false
}

var doneOnly = statusSet{operationStatusDone}
var runningOrDone = statusSet{operationStatusRunning, operationStatusDone}

// idempotentOperationErrors maps an operation type to the error codes that
// indicate the target resource is already in the state the operation was
// meant to achieve. Such operations are counted as successful.
var idempotentOperationErrors = map[string][]string{
	"insert": []string{"alreadyExists", "RESOURCE_ALREADY_EXISTS"},
	"delete": []string{"notFound", "RESOURCE_NOT_FOUND", "RESOURCE_NOT_READY"},
}

// Indirection for sleeping to support UT
var sleepFn = time.Sleep

type operationWaiter interface {
	awaitOperations(ctx context.Context, ops []*compute.Operation, acceptable statusSet, timeout time.Duration, maxInterval time.Duration, conds *provider.Conditions) []*compute.Operation
}

// pollDurations resolves the polling bounds of a template
func pollDurations(t *provider.InstanceTemplate) (time.Duration, time.Duration) {
	timeout := time.Duration(PollTimeoutDefaultSecs) * time.Second
	if t.PollTimeoutSecs > 0 {
		timeout = time.Duration(t.PollTimeoutSecs) * time.Second
	}
	maxInterval := time.Duration(PollMaxIntervalDefaultSecs) * time.Second
	if t.PollMaxIntervalSecs > 0 {
		maxInterval = time.Duration(t.PollMaxIntervalSecs) * time.Second
	}
	return timeout, maxInterval
}

// awaitOperations polls the given operations until each reaches an acceptable
// status, fails, or the timeout expires. The polling interval follows the
// Fibonacci sequence in seconds, capped at maxInterval. Failures are
// accumulated in conds; the operations that reached an acceptable status
// without error are returned.
// Meant to be used after a prior GCE operation so assumes the cl.computeService has already been set
func (cl *Client) awaitOperations(ctx context.Context, ops []*compute.Operation, acceptable statusSet, timeout time.Duration, maxInterval time.Duration, conds *provider.Conditions) []*compute.Operation {
	succeeded := []*compute.Operation{}
	pending := make(map[string]*compute.Operation, len(ops))
	failed := map[string]bool{}
	for _, op := range ops {
		pending[op.Name] = op
	}
	fibA, fibB := time.Second, time.Second
	var elapsed time.Duration
	for len(pending) > 0 {
		for _, name := range util.SortedStringKeys(pending) {
			op := pending[name]
			if op.Error != nil && len(op.Error.Errors) > 0 && !failed[name] {
				if operationErrorsAreIdempotent(op) {
					cl.prov.dbgF("operation %s (%s %s): target already in the intended state", name, op.OperationType, op.TargetLink)
				} else {
					for _, oe := range op.Error.Errors {
						conds.AddError(op.TargetLink, "operation %s failed: %s: %s", name, oe.Code, oe.Message)
					}
					failed[name] = true
				}
			}
			if acceptable.Contains(op.Status) {
				delete(pending, name)
				if !failed[name] {
					succeeded = append(succeeded, op)
				}
			}
		}
		if len(pending) == 0 {
			break
		}
		if elapsed >= timeout {
			conds.AddError("", "timed out waiting for operations: %s", strings.Join(util.SortedStringKeys(pending), ", "))
			break
		}
		interval := fibA
		if interval > maxInterval {
			interval = maxInterval
		}
		if fibA < maxInterval { // the pair stops growing once capped
			fibA, fibB = fibB, fibA+fibB
		}
		sleepFn(interval)
		elapsed += interval
		for _, name := range util.SortedStringKeys(pending) {
			op := pending[name]
			res, err := cl.computeService.ZoneOperations().Get(cl.projectID, lastURLPart(op.Zone), name).Context(ctx).Do()
			if err != nil {
				conds.AddError(op.TargetLink, "failed to poll operation %s: %s", name, err.Error())
				delete(pending, name)
				continue
			}
			pending[name] = res
		}
	}
	return succeeded
}

// operationErrorsAreIdempotent returns true if every error of the operation
// indicates that the target resource is already in the intended state
func operationErrorsAreIdempotent(op *compute.Operation) bool {
	codes, ok := idempotentOperationErrors[op.OperationType]
	if !ok {
		return false
	}
	for _, oe := range op.Error.Errors {
		matched := false
		for _, c := range codes {
			if oe.Code == c {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
