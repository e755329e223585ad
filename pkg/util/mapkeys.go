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
	"reflect"
	"sort"
)

// SortedStringKeys returns the keys of a string-keyed map in sorted order,
// for deterministic iteration. The argument must be a map with string keys.
func SortedStringKeys(m interface{}) []string {
	mV := reflect.ValueOf(m)
	keys := make([]string, 0, mV.Len())
	for _, kV := range mV.MapKeys() {
		keys = append(keys, kV.String())
	}
	sort.Strings(keys)
	return keys
}
