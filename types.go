// Copyright 2021 James Cote
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cascade

import (
	"encoding/json"
	"time"
)

const (
	timestampFormat = "2006-01-02T15:04:05"
	datetimeFormat  = "2006-01-02 15:04:05"
)

// Timestamp handles the portal's date/time format, e.g. the
// DateAccepted field of an mca acceptance
type Timestamp struct {
	t *time.Time
}

// IsNil returns whether the underlying time is nil
func (ts Timestamp) IsNil() bool {
	return ts.t == nil || ts.t.IsZero()
}

// TimeToTimestamp converts a time.Time to a cascade.Timestamp
func TimeToTimestamp(t time.Time) Timestamp {
	if !t.IsZero() {
		return Timestamp{t: &t}
	}
	return Timestamp{}
}

// Val returns the timestamp as a *time.Time.  Blanks returned as nil
func (ts Timestamp) Val() *time.Time {
	if ts.IsNil() {
		return nil
	}
	return ts.t
}

// String returns the timestamp in YYYY-MM-DDTHH:MM:SS format
func (ts Timestamp) String() string {
	if ts.IsNil() {
		return ""
	}
	return ts.t.Format(timestampFormat)
}

// MarshalJSON to YYYY-MM-DDTHH:MM:SS
func (ts Timestamp) MarshalJSON() ([]byte, error) {
	if ts.IsNil() {
		return []byte("null"), nil
	}
	return json.Marshal(ts.t.Format(timestampFormat))
}

// UnmarshalJSON from YYYY-MM-DDTHH:MM:SS
func (ts *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" { // if blank make nil
		ts.t = nil
		return nil
	}
	t, err := time.Parse(timestampFormat, s)
	if err != nil {
		return err
	}
	ts.t = &t
	return nil
}

// Datetime handles the space separated date/time format used by
// cancellation requests
type Datetime Timestamp

// TimeToDatetime converts a time.Time to a cascade.Datetime
func TimeToDatetime(t time.Time) Datetime {
	ts := TimeToTimestamp(t)
	return Datetime(ts)
}

// IsNil returns whether the underlying time is nil
func (dt Datetime) IsNil() bool {
	return dt.t == nil || dt.t.IsZero()
}

// Val returns the datetime as a *time.Time.  Blanks returned as nil
func (dt Datetime) Val() *time.Time {
	return Timestamp(dt).Val()
}

// String returns the datetime in YYYY-MM-DD HH:MM:SS format
func (dt Datetime) String() string {
	if dt.IsNil() {
		return ""
	}
	return dt.t.Format(datetimeFormat)
}

// MarshalJSON to YYYY-MM-DD HH:MM:SS
func (dt Datetime) MarshalJSON() ([]byte, error) {
	if dt.IsNil() {
		return []byte("null"), nil
	}
	return json.Marshal(dt.t.Format(datetimeFormat))
}

// UnmarshalJSON from YYYY-MM-DD HH:MM:SS
func (dt *Datetime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		dt.t = nil
		return nil
	}
	t, err := time.Parse(datetimeFormat, s)
	if err != nil {
		return err
	}
	dt.t = &t
	return nil
}
