// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"testing"
	"time"

	"cloudeng.io/chrono"
)

func TestNewInstant(t *testing.T) {
	for _, tc := range []struct {
		seconds int64
		adjust  int64
		wantSec int64
		wantNan int
	}{
		{0, 0, 0, 0},
		{3, 1, 3, 1},
		{3, 1_000_000_001, 4, 1},
		{3, -1, 2, 999_999_999},
		{-3, -1, -4, 999_999_999},
		{0, -2_000_000_001, -3, 999_999_999},
	} {
		i := chrono.NewInstant(tc.seconds, tc.adjust)
		if got, want := i.EpochSecond(), tc.wantSec; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
		if got, want := i.Nanosecond(), tc.wantNan; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
	}
}

func TestInstantCompare(t *testing.T) {
	a := chrono.NewInstant(10, 0)
	b := chrono.NewInstant(10, 1)
	c := chrono.NewInstant(-10, 0)
	if got, want := a.Compare(b), -1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Compare(c), 1; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := a.Compare(a), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInstantTime(t *testing.T) {
	when := time.Date(2007, 10, 2, 11, 45, 30, 123456789, time.UTC)
	i := chrono.InstantFromTime(when)
	if got, want := i.Time(), when; !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := i.String(), "2007-10-02T11:45:30.123456789Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := chrono.NewInstant(0, 0).String(), "1970-01-01T00:00Z"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
