// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	nanosPerSecond = int64(1_000_000_000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour
	secondsPerDay  = int64(24 * 60 * 60)
)

// LocalTime represents a time of day to nanosecond precision with no
// associated time zone or offset.
type LocalTime struct {
	hour   int
	minute int
	second int
	nanos  int
}

// NewLocalTime creates a new LocalTime from the specified hour (0-23),
// minute (0-59), second (0-59) and nanosecond (0-999,999,999), validating
// all fields.
func NewLocalTime(hour, minute, second, nanos int) (LocalTime, error) {
	if hour < 0 || hour > 23 {
		return LocalTime{}, fmt.Errorf("invalid hour: %d: %w", hour, ErrFieldRange)
	}
	if minute < 0 || minute > 59 {
		return LocalTime{}, fmt.Errorf("invalid minute: %d: %w", minute, ErrFieldRange)
	}
	if second < 0 || second > 59 {
		return LocalTime{}, fmt.Errorf("invalid second: %d: %w", second, ErrFieldRange)
	}
	if nanos < 0 || int64(nanos) >= nanosPerSecond {
		return LocalTime{}, fmt.Errorf("invalid nanosecond: %d: %w", nanos, ErrFieldRange)
	}
	return LocalTime{hour, minute, second, nanos}, nil
}

func (t LocalTime) Hour() int {
	return t.hour
}

func (t LocalTime) Minute() int {
	return t.minute
}

func (t LocalTime) Second() int {
	return t.second
}

func (t LocalTime) Nanosecond() int {
	return t.nanos
}

// NanoFraction returns the nanosecond field as a fraction of a second.
func (t LocalTime) NanoFraction() float64 {
	return float64(t.nanos) / float64(nanosPerSecond)
}

// SecondOfDay returns the number of whole seconds since midnight.
func (t LocalTime) SecondOfDay() int {
	return t.hour*3600 + t.minute*60 + t.second
}

// NanoOfDay returns the number of nanoseconds since midnight.
func (t LocalTime) NanoOfDay() int64 {
	return int64(t.SecondOfDay())*nanosPerSecond + int64(t.nanos)
}

// localTimeFromNanoOfDay assumes nanos is in [0, nanosPerDay).
func localTimeFromNanoOfDay(nanos int64) LocalTime {
	secs := nanos / nanosPerSecond
	return LocalTime{
		hour:   int(secs / 3600),
		minute: int(secs/60) % 60,
		second: int(secs % 60),
		nanos:  int(nanos % nanosPerSecond),
	}
}

// WithHour returns a copy with the hour altered.
func (t LocalTime) WithHour(hour int) (LocalTime, error) {
	if hour == t.hour {
		return t, nil
	}
	return NewLocalTime(hour, t.minute, t.second, t.nanos)
}

// WithMinute returns a copy with the minute altered.
func (t LocalTime) WithMinute(minute int) (LocalTime, error) {
	if minute == t.minute {
		return t, nil
	}
	return NewLocalTime(t.hour, minute, t.second, t.nanos)
}

// WithSecond returns a copy with the second altered.
func (t LocalTime) WithSecond(second int) (LocalTime, error) {
	if second == t.second {
		return t, nil
	}
	return NewLocalTime(t.hour, t.minute, second, t.nanos)
}

// WithNanosecond returns a copy with the nanosecond altered.
func (t LocalTime) WithNanosecond(nanos int) (LocalTime, error) {
	if nanos == t.nanos {
		return t, nil
	}
	return NewLocalTime(t.hour, t.minute, t.second, nanos)
}

// Compare returns -1, 0 or 1 according to whether t is before, equal to
// or after other.
func (t LocalTime) Compare(other LocalTime) int {
	a, b := t.NanoOfDay(), other.NanoOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// String returns the shortest of '15:04', '15:04:05', '15:04:05.000',
// '15:04:05.000000' or '15:04:05.000000000' that losslessly represents
// all non-zero fields.
func (t LocalTime) String() string {
	switch {
	case t.nanos == 0 && t.second == 0:
		return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
	case t.nanos == 0:
		return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
	case t.nanos%1_000_000 == 0:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", t.hour, t.minute, t.second, t.nanos/1_000_000)
	case t.nanos%1_000 == 0:
		return fmt.Sprintf("%02d:%02d:%02d.%06d", t.hour, t.minute, t.second, t.nanos/1_000)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%09d", t.hour, t.minute, t.second, t.nanos)
}

// Parse val in formats '15:04[:05[.999999999]]'.
func (t *LocalTime) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '15:04[:05[.999999999]]': %w", ErrFieldRange)
	}
	var nanos int
	if idx := strings.IndexByte(val, '.'); idx >= 0 {
		frac := val[idx+1:]
		val = val[:idx]
		if len(frac) == 0 || len(frac) > 9 {
			return fmt.Errorf("invalid fractional second: %q: %w", frac, ErrFieldRange)
		}
		n, err := strconv.Atoi(frac)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid fractional second: %q: %w", frac, ErrFieldRange)
		}
		for i := len(frac); i < 9; i++ {
			n *= 10
		}
		nanos = n
	}
	parts := strings.Split(val, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("invalid time %q, expected '15:04[:05]': %w", val, ErrFieldRange)
	}
	fields := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("invalid time field: %q: %w", p, ErrFieldRange)
		}
		fields[i] = n
	}
	tod, err := NewLocalTime(fields[0], fields[1], fields[2], nanos)
	if err != nil {
		return err
	}
	*t = tod
	return nil
}
