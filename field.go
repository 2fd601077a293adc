// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"errors"
	"fmt"
)

// Field identifies one of the closed set of calendrical fields that an
// OffsetDateTime can be queried for.
type Field int

const (
	FieldYear Field = iota
	FieldMonthOfYear
	FieldDayOfMonth
	FieldDayOfYear
	FieldDayOfWeek
	FieldHourOfDay
	FieldMinuteOfHour
	FieldSecondOfMinute
	FieldNanoOfSecond
	FieldOffsetSeconds
)

var fieldNames = []string{
	"year", "month-of-year", "day-of-month", "day-of-year", "day-of-week",
	"hour-of-day", "minute-of-hour", "second-of-minute", "nano-of-second",
	"offset-seconds",
}

func (f Field) String() string {
	if f < FieldYear || f > FieldOffsetSeconds {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

var ErrUnsupportedField = errors.New("unsupported calendrical field")

// IsSupported returns true if the date-time can be queried for the given
// field via Get.
func (odt OffsetDateTime) IsSupported(f Field) bool {
	return f >= FieldYear && f <= FieldOffsetSeconds
}

// Get returns the value of the given field. Unknown fields return
// ErrUnsupportedField.
func (odt OffsetDateTime) Get(f Field) (int, error) {
	switch f {
	case FieldYear:
		return odt.Year(), nil
	case FieldMonthOfYear:
		return int(odt.Month()), nil
	case FieldDayOfMonth:
		return odt.Day(), nil
	case FieldDayOfYear:
		return odt.DayOfYear(), nil
	case FieldDayOfWeek:
		return int(odt.DayOfWeek()), nil
	case FieldHourOfDay:
		return odt.Hour(), nil
	case FieldMinuteOfHour:
		return odt.Minute(), nil
	case FieldSecondOfMinute:
		return odt.Second(), nil
	case FieldNanoOfSecond:
		return odt.Nanosecond(), nil
	case FieldOffsetSeconds:
		return odt.offset.seconds, nil
	}
	return 0, fmt.Errorf("%v: %w", f, ErrUnsupportedField)
}
