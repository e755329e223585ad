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


package testutils

import (
	"regexp"
	"testing"

	logging "github.com/op/go-logging"
)

// TestLogger represents a logger for use in UTs. Records accumulate in
// memory and are emitted to the tester log on Flush.
type TestLogger struct {
	t      *testing.T
	logger *logging.Logger
	lbe    *logging.MemoryBackend
	lastID uint64
}

// NewTestLogger returns a test logger
func NewTestLogger(t *testing.T) *TestLogger {
	lbe := logging.InitForTesting(logging.DEBUG)
	logging.SetFormatter(logging.MustStringFormatter("%{id} %{shortfile} %{level} %{message}"))
	return &TestLogger{
		t:      t,
		lbe:    lbe,
		logger: logging.MustGetLogger(""),
	}
}

// Logger returns the logger
func (tl *TestLogger) Logger() *logging.Logger {
	return tl.logger
}

// Flush sends accumulated records to the tester log
func (tl *TestLogger) Flush() {
	tl.dump(func(msg string) { tl.t.Log(msg) })
}

// CountPattern counts the number of times a pattern occurs in the un-flushed records.
// It does not change the position but this relies on no concurrent logging.
func (tl *TestLogger) CountPattern(rePattern string) int {
	lastID := tl.lastID
	count := 0
	re := regexp.MustCompile(rePattern)
	tl.dump(func(msg string) {
		if re.MatchString(msg) {
			count++
		}
	})
	tl.lastID = lastID
	return count
}

// dump is the internal testable backend beneath Flush
func (tl *TestLogger) dump(showStringFn func(msg string)) {
	show := false
	if tl.lastID == 0 {
		show = true
	}
	for n := tl.lbe.Head(); n != nil; n = n.Next() {
		if show {
			showStringFn(n.Record.Formatted(2))
			tl.lastID = n.Record.ID
		} else if n.Record.ID == tl.lastID {
			show = true
		}
	}
}
