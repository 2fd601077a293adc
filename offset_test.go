// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"errors"
	"testing"

	"cloudeng.io/chrono"
)

func TestNewOffset(t *testing.T) {
	for _, tc := range []struct {
		h, m, s int
		seconds int
	}{
		{0, 0, 0, 0},
		{2, 0, 0, 7200},
		{-5, 0, 0, -18000},
		{5, 30, 0, 19800},
		{-5, -30, 0, -19800},
		{0, 0, 30, 30},
		{18, 0, 0, 64800},
		{-18, 0, 0, -64800},
	} {
		off, err := chrono.NewOffset(tc.h, tc.m, tc.s)
		if err != nil {
			t.Errorf("%v: %v", tc, err)
			continue
		}
		if got, want := off.Seconds(), tc.seconds; got != want {
			t.Errorf("%v: got %v, want %v", tc, got, want)
		}
	}

	for _, tc := range []struct {
		h, m, s int
	}{
		{19, 0, 0},
		{-19, 0, 0},
		{18, 30, 0},
		{5, -30, 0},
		{-5, 30, 0},
		{0, 30, -1},
		{0, 60, 0},
	} {
		if _, err := chrono.NewOffset(tc.h, tc.m, tc.s); !errors.Is(err, chrono.ErrFieldRange) {
			t.Errorf("%v: got %v, want %v", tc, err, chrono.ErrFieldRange)
		}
	}
}

func TestOffsetString(t *testing.T) {
	for _, tc := range []struct {
		off  chrono.Offset
		want string
	}{
		{chrono.UTC, "Z"},
		{offsetHM(2, 0), "+02:00"},
		{offsetHM(-5, 0), "-05:00"},
		{offsetHM(5, 30), "+05:30"},
		{offsetHM(-9, -30), "-09:30"},
	} {
		if got, want := tc.off.String(), tc.want; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		var rt chrono.Offset
		if err := rt.Parse(tc.want); err != nil {
			t.Errorf("failed: %v: %v", tc.want, err)
			continue
		}
		if got, want := rt, tc.off; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	off, err := chrono.NewOffset(8, 0, 30)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := off.String(), "+08:00:30"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestOffsetParse(t *testing.T) {
	for _, tc := range []struct {
		val     string
		seconds int
	}{
		{"Z", 0},
		{"z", 0},
		{"+00:00", 0},
		{"+02:00", 7200},
		{"-05:30", -19800},
		{"+08:00:30", 28830},
	} {
		var off chrono.Offset
		if err := off.Parse(tc.val); err != nil {
			t.Errorf("failed: %v: %v", tc.val, err)
			continue
		}
		if got, want := off.Seconds(), tc.seconds; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, val := range []string{"", "02:00", "+02", "+2:0:0:0", "+02:60", "+19:00", "UTC"} {
		var off chrono.Offset
		if err := off.Parse(val); err == nil {
			t.Errorf("failed to return an error: %v", val)
		}
	}
}
