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


package gcesdk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
)

func TestAPI(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	serviceAccount := `{ "type": "service_account", "project_id": "test-proj-1" }`
	api := New()
	assert.NotNil(api)

	cs, err := api.NewComputeService(ctx, option.WithCredentialsJSON([]byte("{")))
	assert.Nil(cs)
	assert.Regexp("unexpected end of JSON input", err)

	cs, err = api.NewComputeService(ctx, option.WithCredentialsJSON([]byte(serviceAccount)))
	assert.NotNil(cs)
	assert.NoError(err)
	_, ok := cs.(*service)
	assert.True(ok)

	d := cs.Disks()
	assert.NotNil(d)
	_, ok = d.(*disksService)
	assert.True(ok)

	dDel := d.Delete("project", "zone", "disk-1")
	assert.NotNil(dDel)

	ctx, cancelFn := context.WithTimeout(ctx, 0*time.Second)
	defer cancelFn()
	assert.Equal(dDel, dDel.Context(ctx))

	// cannot actually test success, just test failure
	op, err := dDel.Do()
	assert.Nil(op)
	assert.Regexp("context deadline exceeded", err)

	dGet := d.Get("project", "zone", "disk-1")
	assert.NotNil(dGet)

	ctx, cancelFn = context.WithTimeout(ctx, 0*time.Second)
	defer cancelFn()
	assert.Equal(dGet, dGet.Context(ctx))

	// cannot actually test success, just test failure
	disk, err := dGet.Do()
	assert.Nil(disk)
	assert.Regexp("context deadline exceeded", err)

	dInsert := d.Insert("project", "zone", &compute.Disk{})
	assert.NotNil(dInsert)

	ctx, cancelFn = context.WithTimeout(ctx, 0*time.Second)
	defer cancelFn()
	assert.Equal(dInsert, dInsert.Context(ctx))

	// cannot actually test success, just test failure
	op, err = dInsert.Do()
	assert.Nil(op)
	assert.Regexp("context deadline exceeded", err)

	i := cs.Instances()
	assert.NotNil(i)
	_, ok = i.(*instancesService)
	assert.True(ok)

	iDel := i.Delete("project", "zone", "instance-1")
	assert.NotNil(iDel)

	ctx, cancelFn = context.WithTimeout(ctx, 0*time.Second)
	defer cancelFn()
	assert.Equal(iDel, iDel.Context(ctx))

	// cannot actually test success, just test failure
	op, err = iDel.Do()
	assert.Nil(op)
	assert.Regexp("context deadline exceeded", err)

	iGet := i.Get("project", "zone", "instance-1")
	assert.NotNil(iGet)

	ctx, cancelFn = context.WithTimeout(ctx, 0*time.Second)
	defer cancelFn()
	assert.Equal(iGet, iGet.Context(ctx))

	// cannot actually test success, just test failure
	inst, err := iGet.Do()
	assert.Nil(inst)
	assert.Regexp("context deadline exceeded", err)

	iInsert := i.Insert("project", "zone", &compute.Instance{})
	assert.NotNil(iInsert)

	ctx, cancelFn = context.WithTimeout(ctx, 0*time.Second)
	defer cancelFn()
	assert.Equal(iInsert, iInsert.Context(ctx))

	// cannot actually test success, just test failure
	op, err = iInsert.Do()
	assert.Nil(op)
	assert.Regexp("context deadline exceeded", err)

	o := cs.ZoneOperations()
	assert.NotNil(o)
	_, ok = o.(*zoneOperationsService)
	assert.True(ok)

	oGet := o.Get("project", "zone", "op")
	assert.NotNil(oGet)

	ctx, cancelFn = context.WithTimeout(ctx, 0*time.Second)
	defer cancelFn()
	assert.Equal(oGet, oGet.Context(ctx))

	// cannot actually test success, just test failure
	op, err = oGet.Do()
	assert.Nil(op)
	assert.Regexp("context deadline exceeded", err)

	z := cs.Zones()
	assert.NotNil(z)
	_, ok = z.(*zonesService)
	assert.True(ok)

	zGet := z.Get("project", "zone")
	assert.NotNil(zGet)

	ctx, cancelFn = context.WithTimeout(ctx, 0*time.Second)
	defer cancelFn()
	assert.Equal(zGet, zGet.Context(ctx))

	// cannot actually test success, just test failure
	zone, err := zGet.Do()
	assert.Nil(zone)
	assert.Regexp("context deadline exceeded", err)
}
