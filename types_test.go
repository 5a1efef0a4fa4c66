// Copyright 2021 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jfcote87/cascade"
)

func TestTimestamp_Val(t *testing.T) {
	var zeroTime time.Time
	var nowTime = time.Now()

	tests := []struct {
		name string
		ts   cascade.Timestamp
		want *time.Time
	}{
		{name: "zero time", ts: cascade.TimeToTimestamp(zeroTime), want: nil},
		{name: "now", ts: cascade.TimeToTimestamp(nowTime), want: &nowTime},
		{name: "empty", want: nil},
	}
	for _, tt := range tests {
		got := tt.ts.Val()
		want := tt.want
		if want == nil {
			if got != nil {
				t.Errorf("%s Timestamp.Val() = %v, want nil", tt.name, *got)
			}
		} else if got == nil {
			t.Errorf("%s Timestamp.Val() = nil, want %v", tt.name, *want)
		} else if *got != *want {
			t.Errorf("%s Timestamp.Val() = %v, want %v", tt.name, *got, *want)
		}
	}

	tests2 := []struct {
		name string
		ts   cascade.Timestamp
		want string
	}{
		{name: "nil", want: ""},
		{name: "zero", ts: cascade.TimeToTimestamp(zeroTime), want: ""},
		{name: "set", ts: cascade.TimeToTimestamp(time.Date(2019, 2, 6, 10, 30, 0, 0, time.UTC)), want: "2019-02-06T10:30:00"},
	}
	for _, tt := range tests2 {
		if got := tt.ts.String(); got != tt.want {
			t.Errorf("%s Timestamp.String() = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestTimestamp_JSON(t *testing.T) {
	b, err := json.Marshal(cascade.TimeToTimestamp(time.Date(2019, 2, 6, 0, 0, 0, 0, time.UTC)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2019-02-06T00:00:00"` {
		t.Errorf(`expected "2019-02-06T00:00:00"; got %s`, b)
	}

	b, err = json.Marshal(cascade.Timestamp{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != "null" {
		t.Errorf("expected null for zero timestamp; got %s", b)
	}

	var ts cascade.Timestamp
	if err := json.Unmarshal([]byte(`"2019-02-06T00:00:00"`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ts.IsNil() || !ts.Val().Equal(time.Date(2019, 2, 6, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("expected 2019-02-06T00:00:00; got %v", ts)
	}
	for _, blank := range []string{`""`, "null"} {
		var bts cascade.Timestamp
		if err := json.Unmarshal([]byte(blank), &bts); err != nil {
			t.Fatalf("unmarshal %s: %v", blank, err)
		}
		if !bts.IsNil() {
			t.Errorf("expected nil timestamp from %s; got %v", blank, bts)
		}
	}
	if err := json.Unmarshal([]byte(`"06/02/2019"`), &ts); err == nil {
		t.Errorf("expected parse error for 06/02/2019; got nil")
	}
}

func TestDatetime_JSON(t *testing.T) {
	dt := cascade.TimeToDatetime(time.Date(2021, 3, 1, 17, 45, 0, 0, time.UTC))
	b, err := json.Marshal(dt)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2021-03-01 17:45:00"` {
		t.Errorf(`expected "2021-03-01 17:45:00"; got %s`, b)
	}
	if dt.String() != "2021-03-01 17:45:00" {
		t.Errorf("expected 2021-03-01 17:45:00; got %s", dt)
	}

	var parsed cascade.Datetime
	if err := json.Unmarshal([]byte(`"2021-03-01 17:45:00"`), &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed.IsNil() || !parsed.Val().Equal(time.Date(2021, 3, 1, 17, 45, 0, 0, time.UTC)) {
		t.Errorf("expected 2021-03-01 17:45:00; got %v", parsed)
	}

	var blank cascade.Datetime
	if err := json.Unmarshal([]byte(`""`), &blank); err != nil {
		t.Fatalf("unmarshal blank: %v", err)
	}
	if !blank.IsNil() {
		t.Errorf("expected nil datetime from blank; got %v", blank)
	}
	if cascade.TimeToDatetime(time.Time{}).String() != "" {
		t.Errorf("expected empty string for zero datetime")
	}
}
