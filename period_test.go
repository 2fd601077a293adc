// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"errors"
	"testing"

	"cloudeng.io/chrono"
	"github.com/google/go-cmp/cmp"
)

func TestPeriodParse(t *testing.T) {
	for _, tc := range []struct {
		val  string
		want chrono.Period
	}{
		{"P1Y", chrono.Period{Years: 1}},
		{"P1Y2M3D", chrono.Period{Years: 1, Months: 2, Days: 3}},
		{"P2W", chrono.Period{Weeks: 2}},
		{"PT4H5M6S", chrono.Period{Hours: 4, Minutes: 5, Seconds: 6}},
		{"P1Y2M3DT4H5M6S", chrono.Period{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6}},
		{"-P1YT2H", chrono.Period{Years: -1, Hours: -2}},
		{"P-1M", chrono.Period{Months: -1}},
		{"P", chrono.Period{}},
	} {
		var p chrono.Period
		if err := p.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if diff := cmp.Diff(tc.want, p); diff != "" {
			t.Errorf("%v: (-want +got):\n%s", tc.val, diff)
		}
	}

	for _, val := range []string{"", "1Y", "P1X", "PT1D", "P1H", "P1.5Y"} {
		var p chrono.Period
		if err := p.Parse(val); !errors.Is(err, chrono.ErrInvalidISO8601Period) {
			t.Errorf("%v: got %v, want %v", val, err, chrono.ErrInvalidISO8601Period)
		}
	}
}

func TestPeriodString(t *testing.T) {
	for _, tc := range []struct {
		p    chrono.Period
		want string
	}{
		{chrono.Period{}, "P0D"},
		{chrono.Period{Years: 1}, "P1Y"},
		{chrono.Period{Years: 1, Months: 2, Days: 3, Hours: 4, Minutes: 5, Seconds: 6}, "P1Y2M3DT4H5M6S"},
		{chrono.Period{Weeks: -2}, "P-2W"},
		{chrono.Period{Seconds: 1, Nanos: 500_000_000}, "PT1.5S"},
		{chrono.Period{Nanos: -500_000_000}, "PT-0.5S"},
	} {
		if got, want := tc.p.String(), tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestPeriodNegated(t *testing.T) {
	p := chrono.Period{Years: 1, Months: -2, Weeks: 3, Days: -4, Hours: 5, Minutes: -6, Seconds: 7, Nanos: -8}
	want := chrono.Period{Years: -1, Months: 2, Weeks: -3, Days: 4, Hours: -5, Minutes: 6, Seconds: -7, Nanos: 8}
	if diff := cmp.Diff(want, p.Negated()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !(chrono.Period{}).IsZero() {
		t.Errorf("zero period not reported as zero")
	}
	if p.IsZero() {
		t.Errorf("non-zero period reported as zero")
	}
}
