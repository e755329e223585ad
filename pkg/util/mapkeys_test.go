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

	"github.com/stretchr/testify/assert"
)

func TestSortedStringKeys(t *testing.T) {
	assert := assert.New(t)

	m1 := map[string]struct{}{"a": struct{}{}, "c": struct{}{}, "b": struct{}{}}
	assert.Equal([]string{"a", "b", "c"}, SortedStringKeys(m1))

	m2 := map[string]int{"z": 26, "y": 25, "x": 24}
	assert.Equal([]string{"x", "y", "z"}, SortedStringKeys(m2))

	m3 := map[string]string{}
	assert.Empty(SortedStringKeys(m3))
}
