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
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
)

// ConditionLevel enum type
type ConditionLevel int

// ConditionLevel values
const (
	ConditionError ConditionLevel = iota
	ConditionWarning
)

var conditionLevelMap = map[ConditionLevel]string{
	ConditionError:   "ERROR",
	ConditionWarning: "WARNING",
}

func (l ConditionLevel) String() string {
	s, ok := conditionLevelMap[l]
	if ok {
		return s
	}
	s, _ = conditionLevelMap[ConditionError]
	return s
}

// Condition records a single accumulated outcome
type Condition struct {
	Level   ConditionLevel
	Message string
	Time    strfmt.DateTime
}

// Conditions accumulates conditions across a provisioning batch, keyed by an
// optional resource identifier (the empty key holds batch-level conditions).
// Conditions are never raised mid-batch; callers consult them only at batch
// boundaries to decide the aggregate outcome.
type Conditions struct {
	byKey map[string][]*Condition
}

// NewConditions returns an empty accumulator
func NewConditions() *Conditions {
	return &Conditions{byKey: make(map[string][]*Condition)}
}

func (c *Conditions) add(level ConditionLevel, key, format string, args ...interface{}) {
	cond := &Condition{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
		Time:    strfmt.DateTime(conditionNow()),
	}
	c.byKey[key] = append(c.byKey[key], cond)
}

// AddError accumulates an error condition for the given resource key
func (c *Conditions) AddError(key, format string, args ...interface{}) {
	c.add(ConditionError, key, format, args...)
}

// AddWarning accumulates a warning condition for the given resource key
func (c *Conditions) AddWarning(key, format string, args ...interface{}) {
	c.add(ConditionWarning, key, format, args...)
}

// IsEmpty returns true if nothing has been accumulated
func (c *Conditions) IsEmpty() bool {
	return len(c.byKey) == 0
}

// HasErrors returns true if at least one error level condition was accumulated
func (c *Conditions) HasErrors() bool {
	for _, conds := range c.byKey {
		for _, cond := range conds {
			if cond.Level == ConditionError {
				return true
			}
		}
	}
	return false
}

// Len returns the total number of accumulated conditions
func (c *Conditions) Len() int {
	n := 0
	for _, conds := range c.byKey {
		n += len(conds)
	}
	return n
}

// Keys returns the resource keys in sorted order
func (c *Conditions) Keys() []string {
	keys := make([]string, 0, len(c.byKey))
	for k := range c.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ForKey returns the conditions accumulated for a resource key in insertion order
func (c *Conditions) ForKey(key string) []*Condition {
	return c.byKey[key]
}

// Messages flattens the accumulated conditions, sorted by key and in
// insertion order within a key
func (c *Conditions) Messages() []string {
	msgs := make([]string, 0, c.Len())
	for _, key := range c.Keys() {
		for _, cond := range c.byKey[key] {
			if key == "" {
				msgs = append(msgs, fmt.Sprintf("%s: %s", cond.Level, cond.Message))
			} else {
				msgs = append(msgs, fmt.Sprintf("%s: [%s] %s", cond.Level, key, cond.Message))
			}
		}
	}
	return msgs
}

// Indirection for timestamping to support UT
type conditionNowFunctionType func() time.Time

var conditionNow conditionNowFunctionType = time.Now

// UnrecoverableError is raised once, at the end of a batch, after compensating
// teardown has been attempted. It carries the full accumulator.
type UnrecoverableError struct {
	Conditions *Conditions
}

var _ = error(&UnrecoverableError{})

func (e *UnrecoverableError) Error() string {
	return "unrecoverable provisioning failure: " + strings.Join(e.Conditions.Messages(), "; ")
}
