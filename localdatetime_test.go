// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/chrono"
)

func TestLocalDateTimePlusTime(t *testing.T) {
	for _, tc := range []struct {
		dt      chrono.LocalDateTime
		hours   int
		minutes int
		seconds int
		nanos   int64
		want    chrono.LocalDateTime
	}{
		{newDateTime(2007, 10, 2, 23, 30, 0, 0), 1, 0, 0, 0, newDateTime(2007, 10, 3, 0, 30, 0, 0)},
		{newDateTime(2007, 10, 2, 0, 30, 0, 0), -1, 0, 0, 0, newDateTime(2007, 10, 1, 23, 30, 0, 0)},
		{newDateTime(2007, 12, 31, 23, 59, 59, 0), 0, 0, 1, 0, newDateTime(2008, 1, 1, 0, 0, 0, 0)},
		{newDateTime(2008, 1, 1, 0, 0, 0, 0), 0, 0, -1, 0, newDateTime(2007, 12, 31, 23, 59, 59, 0)},
		{newDateTime(2007, 10, 2, 13, 45, 30, 999_999_999), 0, 0, 0, 1, newDateTime(2007, 10, 2, 13, 45, 31, 0)},
		{newDateTime(2007, 10, 2, 13, 45, 30, 0), 0, 0, 0, -1, newDateTime(2007, 10, 2, 13, 45, 29, 999_999_999)},
		{newDateTime(2007, 10, 2, 13, 45, 0, 0), 48, 0, 0, 0, newDateTime(2007, 10, 4, 13, 45, 0, 0)},
		{newDateTime(2007, 10, 2, 13, 45, 0, 0), 0, 90, 0, 0, newDateTime(2007, 10, 2, 15, 15, 0, 0)},
		{newDateTime(2007, 10, 2, 13, 45, 0, 0), 0, 0, 86400, 0, newDateTime(2007, 10, 3, 13, 45, 0, 0)},
	} {
		got := tc.dt
		var err error
		if tc.hours != 0 {
			got, err = got.PlusHours(tc.hours)
		}
		if err == nil && tc.minutes != 0 {
			got, err = got.PlusMinutes(tc.minutes)
		}
		if err == nil && tc.seconds != 0 {
			got, err = got.PlusSeconds(tc.seconds)
		}
		if err == nil && tc.nanos != 0 {
			got, err = got.PlusNanos(tc.nanos)
		}
		if err != nil {
			t.Errorf("%v: %v", tc.dt, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.dt, got, tc.want)
		}
	}
}

func TestLocalDateTimeWith(t *testing.T) {
	dt := newDateTime(2007, 10, 2, 13, 45, 30, 123)

	got, err := dt.WithDate(2008, chrono.January, 15)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if want := newDateTime(2008, 1, 15, 13, 45, 30, 123); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	got, err = dt.WithTime(9, 0, 0)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if want := newDateTime(2007, 10, 2, 9, 0, 0, 0); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// 2007-10-02 is a Tuesday; Monday of that week is October 1st.
	got, err = dt.WithDayOfWeek(chrono.Monday)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if want := newDateTime(2007, 10, 1, 13, 45, 30, 123); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	got, err = dt.WithDayOfWeek(chrono.Sunday)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if want := newDateTime(2007, 10, 7, 13, 45, 30, 123); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, err := dt.WithDayOfWeek(chrono.DayOfWeek(8)); !errors.Is(err, chrono.ErrFieldRange) {
		t.Errorf("got %v, want %v", err, chrono.ErrFieldRange)
	}
}

func TestLocalDateTimeCompare(t *testing.T) {
	a := newDateTime(2007, 10, 2, 13, 45, 30, 0)
	b := newDateTime(2007, 10, 2, 13, 45, 30, 1)
	c := newDateTime(2007, 10, 3, 0, 0, 0, 0)
	if got, want := a.Compare(b), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := c.Compare(a), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Compare(a), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestLocalDateTimeString(t *testing.T) {
	for _, tc := range []struct {
		dt   chrono.LocalDateTime
		want string
	}{
		{newDateTime(2007, 10, 2, 13, 45, 0, 0), "2007-10-02T13:45"},
		{newDateTime(2007, 10, 2, 13, 45, 30, 0), "2007-10-02T13:45:30"},
		{newDateTime(2007, 10, 2, 13, 45, 30, 123456789), "2007-10-02T13:45:30.123456789"},
	} {
		if got, want := tc.dt.String(), tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		var rt chrono.LocalDateTime
		if err := rt.Parse(tc.want); err != nil {
			t.Errorf("failed: %v: %v", tc.want, err)
			continue
		}
		if got, want := rt, tc.dt; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, val := range []string{"", "2007-10-02", "13:45:30", "2007-10-02 13:45"} {
		var dt chrono.LocalDateTime
		if err := dt.Parse(val); err == nil {
			t.Errorf("failed to return an error: %v", val)
		}
	}
}

func TestLocalDateTimeFromTime(t *testing.T) {
	when := time.Date(2007, 10, 2, 13, 45, 30, 123456789, time.FixedZone("+02:00", 7200))
	dt := chrono.LocalDateTimeFromTime(when)
	if got, want := dt, newDateTime(2007, 10, 2, 13, 45, 30, 123456789); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
