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
	"testing"
	"time"

	"github.com/cumulo-cloud/provisioner/pkg/gcesdk/fake"
	"github.com/cumulo-cloud/provisioner/pkg/provider"
	"github.com/cumulo-cloud/provisioner/pkg/testutils"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/compute/v1"
)

// newFakeClient returns a client wired to a fake compute service
func newFakeClient(tl *testutils.TestLogger) (*Client, *fake.ComputeService) {
	p := &Provider{}
	p.SetDebugLogger(tl.Logger())
	fc := fake.NewComputeService()
	cl := &Client{
		prov:           p,
		Timeout:        time.Second * clientDefaultTimeoutSecs,
		projectID:      "test-proj-1",
		zone:           "us-west1-a",
		imageAliases:   defaultImageAliases,
		computeService: fc,
	}
	cl.ow = cl // self-reference
	return cl, fc
}

const testZoneURL = "https://www.googleapis.com/compute/v1/projects/test-proj-1/zones/us-west1-a"

func testOp(name, opType, target, status string) *compute.Operation {
	return &compute.Operation{
		Name:          name,
		OperationType: opType,
		Status:        status,
		TargetLink:    testZoneURL + "/" + target,
		Zone:          testZoneURL,
	}
}

// stubSleep captures the sleep intervals of the poller
func stubSleep(intervals *[]time.Duration) func() {
	saved := sleepFn
	sleepFn = func(d time.Duration) { *intervals = append(*intervals, d) }
	return func() { sleepFn = saved }
}

func TestAwaitOperationsFastPath(t *testing.T) {
	assert := assert.New(t)
	tl := testutils.NewTestLogger(t)
	defer tl.Flush()
	ctx := context.Background()

	cl, fc := newFakeClient(tl)
	intervals := []time.Duration{}
	defer stubSleep(&intervals)()
	conds := provider.NewConditions()

	// no operations
	succeeded := cl.awaitOperations(ctx, nil, doneOnly, time.Minute, time.Second*30, conds)
	assert.Empty(succeeded)
	assert.Empty(intervals)
	assert.True(conds.IsEmpty())

	// operations that completed at issue time require no polling
	ops := []*compute.Operation{
		testOp("op-1", "insert", "disks/d-1", operationStatusDone),
		testOp("op-2", "insert", "disks/d-2", operationStatusDone),
	}
	succeeded = cl.awaitOperations(ctx, ops, doneOnly, time.Minute, time.Second*30, conds)
	assert.Len(succeeded, 2)
	assert.Empty(intervals)
	assert.Empty(fc.CallsFor("zoneOperations.get"))
	assert.True(conds.IsEmpty())
}

func TestAwaitOperationsFibonacciBackoff(t *testing.T) {
	assert := assert.New(t)
	tl := testutils.NewTestLogger(t)
	defer tl.Flush()
	ctx := context.Background()

	cl, fc := newFakeClient(tl)
	intervals := []time.Duration{}
	defer stubSleep(&intervals)()
	conds := provider.NewConditions()

	op := testOp("op-1", "insert", "disks/d-1", operationStatusPending)
	fc.OpSeq["op-1"] = []*compute.Operation{
		testOp("op-1", "insert", "disks/d-1", operationStatusPending),
		testOp("op-1", "insert", "disks/d-1", operationStatusPending),
		testOp("op-1", "insert", "disks/d-1", operationStatusRunning),
		testOp("op-1", "insert", "disks/d-1", operationStatusRunning),
		testOp("op-1", "insert", "disks/d-1", operationStatusDone),
	}
	succeeded := cl.awaitOperations(ctx, []*compute.Operation{op}, doneOnly, time.Minute, time.Second*3, conds)
	assert.Len(succeeded, 1)
	assert.True(conds.IsEmpty())
	// intervals follow the Fibonacci sequence capped at the maximum
	expIntervals := []time.Duration{
		1 * time.Second, 1 * time.Second, 2 * time.Second, 3 * time.Second, 3 * time.Second,
	}
	assert.Equal(expIntervals, intervals)
	assert.Len(fc.CallsFor("zoneOperations.get:op-1"), 5)
}

func TestAwaitOperationsAcceptableStates(t *testing.T) {
	assert := assert.New(t)
	tl := testutils.NewTestLogger(t)
	defer tl.Flush()
	ctx := context.Background()

	cl, _ := newFakeClient(tl)
	intervals := []time.Duration{}
	defer stubSleep(&intervals)()
	conds := provider.NewConditions()

	// RUNNING terminates the wait when acceptable
	op := testOp("op-1", "delete", "instances/i-1", operationStatusRunning)
	succeeded := cl.awaitOperations(ctx, []*compute.Operation{op}, runningOrDone, time.Minute, time.Second*30, conds)
	assert.Len(succeeded, 1)
	assert.Empty(intervals)
	assert.True(conds.IsEmpty())

	assert.True(doneOnly.Contains(operationStatusDone))
	assert.False(doneOnly.Contains(operationStatusRunning))
	assert.True(runningOrDone.Contains(operationStatusRunning))
	assert.False(runningOrDone.Contains(operationStatusPending))
}

func TestAwaitOperationsIdempotentErrors(t *testing.T) {
	assert := assert.New(t)
	tl := testutils.NewTestLogger(t)
	defer tl.Flush()
	ctx := context.Background()

	cl, _ := newFakeClient(tl)
	intervals := []time.Duration{}
	defer stubSleep(&intervals)()
	conds := provider.NewConditions()

	// insert finding the resource present and delete finding it absent both succeed
	opIns := testOp("op-1", "insert", "disks/d-1", operationStatusDone)
	opIns.Error = &compute.OperationError{
		Errors: []*compute.OperationErrorErrors{
			&compute.OperationErrorErrors{Code: "alreadyExists", Message: "resource exists"},
		},
	}
	opDel := testOp("op-2", "delete", "instances/i-1", operationStatusDone)
	opDel.Error = &compute.OperationError{
		Errors: []*compute.OperationErrorErrors{
			&compute.OperationErrorErrors{Code: "notFound", Message: "resource absent"},
		},
	}
	succeeded := cl.awaitOperations(ctx, []*compute.Operation{opIns, opDel}, doneOnly, time.Minute, time.Second*30, conds)
	assert.Len(succeeded, 2)
	assert.True(conds.IsEmpty())
	assert.Equal(2, tl.CountPattern("already in the intended state"))

	// a real failure is accumulated and excluded from the result
	opBad := testOp("op-3", "insert", "instances/i-2", operationStatusDone)
	opBad.Error = &compute.OperationError{
		Errors: []*compute.OperationErrorErrors{
			&compute.OperationErrorErrors{Code: "QUOTA_EXCEEDED", Message: "quota exhausted"},
		},
	}
	succeeded = cl.awaitOperations(ctx, []*compute.Operation{opBad}, doneOnly, time.Minute, time.Second*30, conds)
	assert.Empty(succeeded)
	assert.True(conds.HasErrors())
	badConds := conds.ForKey(testZoneURL + "/instances/i-2")
	assert.Len(badConds, 1)
	assert.Regexp("QUOTA_EXCEEDED.*quota exhausted", badConds[0].Message)

	// an unknown operation type is never idempotent
	opUpd := testOp("op-4", "update", "instances/i-3", operationStatusDone)
	opUpd.Error = &compute.OperationError{
		Errors: []*compute.OperationErrorErrors{
			&compute.OperationErrorErrors{Code: "alreadyExists", Message: "n/a"},
		},
	}
	assert.False(operationErrorsAreIdempotent(opUpd))

	// a mix of idempotent and real errors is a failure
	opMix := testOp("op-5", "insert", "instances/i-4", operationStatusDone)
	opMix.Error = &compute.OperationError{
		Errors: []*compute.OperationErrorErrors{
			&compute.OperationErrorErrors{Code: "alreadyExists", Message: "resource exists"},
			&compute.OperationErrorErrors{Code: "QUOTA_EXCEEDED", Message: "quota exhausted"},
		},
	}
	assert.False(operationErrorsAreIdempotent(opMix))
}

func TestAwaitOperationsPollFailure(t *testing.T) {
	assert := assert.New(t)
	tl := testutils.NewTestLogger(t)
	defer tl.Flush()
	ctx := context.Background()

	cl, fc := newFakeClient(tl)
	intervals := []time.Duration{}
	defer stubSleep(&intervals)()
	conds := provider.NewConditions()

	op := testOp("op-1", "insert", "disks/d-1", operationStatusPending)
	fc.RetOpGetErrs["op-1"] = errors.New("transport failure")
	succeeded := cl.awaitOperations(ctx, []*compute.Operation{op}, doneOnly, time.Minute, time.Second*30, conds)
	assert.Empty(succeeded)
	assert.True(conds.HasErrors())
	assert.Len(intervals, 1)
	msgs := conds.Messages()
	assert.Len(msgs, 1)
	assert.Regexp("failed to poll operation op-1.*transport failure", msgs[0])
}

func TestAwaitOperationsTimeout(t *testing.T) {
	assert := assert.New(t)
	tl := testutils.NewTestLogger(t)
	defer tl.Flush()
	ctx := context.Background()

	cl, fc := newFakeClient(tl)
	intervals := []time.Duration{}
	defer stubSleep(&intervals)()
	conds := provider.NewConditions()

	op := testOp("op-1", "insert", "disks/d-1", operationStatusPending)
	fc.OpSeq["op-1"] = []*compute.Operation{
		testOp("op-1", "insert", "disks/d-1", operationStatusPending), // last repeats
	}
	succeeded := cl.awaitOperations(ctx, []*compute.Operation{op}, doneOnly, 2*time.Second, time.Second*30, conds)
	assert.Empty(succeeded)
	assert.True(conds.HasErrors())
	assert.Equal([]time.Duration{1 * time.Second, 1 * time.Second}, intervals)
	msgs := conds.Messages()
	assert.Len(msgs, 1)
	assert.Regexp("timed out waiting for operations: op-1", msgs[0])
}

func TestAwaitOperationsLongWaitBackoffCap(t *testing.T) {
	assert := assert.New(t)
	tl := testutils.NewTestLogger(t)
	defer tl.Flush()
	ctx := context.Background()

	cl, fc := newFakeClient(tl)
	intervals := []time.Duration{}
	defer stubSleep(&intervals)()
	conds := provider.NewConditions()

	// a wait far longer than the interval cap must keep sleeping the capped
	// interval; the Fibonacci pair must not keep growing underneath the cap
	op := testOp("op-1", "insert", "disks/d-1", operationStatusPending)
	fc.OpSeq["op-1"] = []*compute.Operation{
		testOp("op-1", "insert", "disks/d-1", operationStatusPending), // last repeats
	}
	maxInterval := 30 * time.Second
	succeeded := cl.awaitOperations(ctx, []*compute.Operation{op}, doneOnly, 2000*time.Second, maxInterval, conds)
	assert.Empty(succeeded)
	assert.True(conds.HasErrors())
	msgs := conds.Messages()
	assert.Len(msgs, 1)
	assert.Regexp("timed out waiting for operations: op-1", msgs[0])

	// 1+1+2+3+5+8+13+21 = 54s, then 65 sleeps of 30s reach 2004s >= 2000s
	assert.Len(intervals, 73)
	expRamp := []time.Duration{
		1 * time.Second, 1 * time.Second, 2 * time.Second, 3 * time.Second,
		5 * time.Second, 8 * time.Second, 13 * time.Second, 21 * time.Second,
	}
	assert.Equal(expRamp, intervals[:len(expRamp)])
	var elapsed time.Duration
	for i, interval := range intervals {
		assert.True(interval > 0, "interval %d is positive", i)
		assert.True(interval <= maxInterval, "interval %d is capped", i)
		elapsed += interval
	}
	assert.Equal(maxInterval, intervals[len(intervals)-1])
	assert.Equal(2004*time.Second, elapsed)
}

func TestPollDurations(t *testing.T) {
	assert := assert.New(t)

	tmpl := &provider.InstanceTemplate{}
	timeout, maxInterval := pollDurations(tmpl)
	assert.Equal(time.Duration(PollTimeoutDefaultSecs)*time.Second, timeout)
	assert.Equal(time.Duration(PollMaxIntervalDefaultSecs)*time.Second, maxInterval)

	tmpl = &provider.InstanceTemplate{PollTimeoutSecs: 60, PollMaxIntervalSecs: 5}
	timeout, maxInterval = pollDurations(tmpl)
	assert.Equal(60*time.Second, timeout)
	assert.Equal(5*time.Second, maxInterval)
}
