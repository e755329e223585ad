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


package util

import (
	"testing"

	"github.com/alecthomas/units"
	"github.com/stretchr/testify/assert"
)

func TestSizeBytesToString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0B", SizeBytesToString(0))
	assert.Equal("1B", SizeBytesToString(1))
	assert.Equal("-1B", SizeBytesToString(-1))
	assert.Equal("1KB", SizeBytesToString(1000))
	assert.Equal("1KiB", SizeBytesToString(1024))
	assert.Equal("10GiB", SizeBytesToString(10*int64(units.GiB)))
	assert.Equal("375GiB", SizeBytesToString(375*int64(units.GiB)))
	assert.Equal("64TiB", SizeBytesToString(64*int64(units.TiB)))

	assert.Equal("4MiB", SizeBytes(4*int64(units.MiB)).String())
}
