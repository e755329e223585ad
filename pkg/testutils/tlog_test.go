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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFunctionality(t *testing.T) {
	assert := assert.New(t)

	tl := NewTestLogger(t)
	l := tl.Logger()

	msgs1 := []string{"msg1", "msg2", "msg3"}
	for _, m := range msgs1 {
		l.Info(m)
	}
	lastID := tl.lastID
	count := tl.CountPattern("msg[0-2]")
	assert.Equal(2, count)
	assert.Equal(lastID, tl.lastID)
	got := []string{}
	tl.dump(func(msg string) {
		got = append(got, msg)
		t.Log(msg)
	})
	assert.Len(got, len(msgs1))
	for i, gm := range got {
		assert.Regexp(msgs1[i]+"$", gm)
		assert.Regexp("INFO", gm)
	}

	// dump resumes after the last flushed record
	msgs2 := []string{"msg4", "msg5", "msg6"}
	for _, m := range msgs2 {
		l.Error(m)
	}
	got = []string{}
	tl.dump(func(msg string) {
		got = append(got, msg)
		t.Log(msg)
	})
	assert.Len(got, len(msgs2))
	for i, gm := range got {
		assert.Regexp(msgs2[i]+"$", gm)
		assert.Regexp("ERROR", gm)
	}
}

func TestLoggerRecommendedUsage(t *testing.T) {
	tl := NewTestLogger(t)
	defer tl.Flush()
	l := tl.Logger()
	l.Info("info msg")
	l.Error("error msg")
	tl.Flush()
	l.Critical("critical msg")
	l.Debug("debug msg")
}
