// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strings"
	"time"
)

// LocalDateTime represents a date and time of day to nanosecond precision
// with no associated time zone or offset.
type LocalDateTime struct {
	date LocalDate
	tod  LocalTime
}

// NewLocalDateTime creates a new LocalDateTime from a LocalDate and a
// LocalTime, both of which are valid by construction.
func NewLocalDateTime(date LocalDate, tod LocalTime) LocalDateTime {
	return LocalDateTime{date, tod}
}

// LocalDateTimeFromFields creates a new LocalDateTime, validating all
// fields.
func LocalDateTimeFromFields(year int, month Month, day, hour, minute, second, nanos int) (LocalDateTime, error) {
	date, err := NewLocalDate(year, month, day)
	if err != nil {
		return LocalDateTime{}, err
	}
	tod, err := NewLocalTime(hour, minute, second, nanos)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date, tod}, nil
}

// LocalDateTimeFromTime returns the LocalDateTime for the wall clock
// reading of the specified time.Time, discarding its location.
func LocalDateTimeFromTime(when time.Time) LocalDateTime {
	return LocalDateTime{
		date: LocalDate{when.Year(), Month(when.Month()), when.Day()},
		tod:  LocalTime{when.Hour(), when.Minute(), when.Second(), when.Nanosecond()},
	}
}

// Date returns the date fields as a LocalDate.
func (dt LocalDateTime) Date() LocalDate {
	return dt.date
}

// TimeOfDay returns the time fields as a LocalTime.
func (dt LocalDateTime) TimeOfDay() LocalTime {
	return dt.tod
}

func (dt LocalDateTime) Year() int {
	return dt.date.year
}

func (dt LocalDateTime) Month() Month {
	return dt.date.month
}

func (dt LocalDateTime) Day() int {
	return dt.date.day
}

func (dt LocalDateTime) DayOfYear() int {
	return dt.date.DayOfYear()
}

func (dt LocalDateTime) DayOfWeek() DayOfWeek {
	return dt.date.DayOfWeek()
}

func (dt LocalDateTime) Hour() int {
	return dt.tod.hour
}

func (dt LocalDateTime) Minute() int {
	return dt.tod.minute
}

func (dt LocalDateTime) Second() int {
	return dt.tod.second
}

func (dt LocalDateTime) Nanosecond() int {
	return dt.tod.nanos
}

func (dt LocalDateTime) NanoFraction() float64 {
	return dt.tod.NanoFraction()
}

func (dt LocalDateTime) withDate(date LocalDate, err error) (LocalDateTime, error) {
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date, dt.tod}, nil
}

func (dt LocalDateTime) withTime(tod LocalTime, err error) (LocalDateTime, error) {
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{dt.date, tod}, nil
}

// WithYear returns a copy with the year altered, shortening the day to
// the last valid day of the month if necessary.
func (dt LocalDateTime) WithYear(year int) (LocalDateTime, error) {
	return dt.withDate(dt.date.WithYear(year))
}

// WithMonth returns a copy with the month altered, shortening the day to
// the last valid day of the month if necessary.
func (dt LocalDateTime) WithMonth(month Month) (LocalDateTime, error) {
	return dt.withDate(dt.date.WithMonth(month))
}

// WithDay returns a copy with the day of month altered.
func (dt LocalDateTime) WithDay(day int) (LocalDateTime, error) {
	return dt.withDate(dt.date.WithDay(day))
}

// WithDayOfYear returns a copy with the date set to the given day of the
// current year.
func (dt LocalDateTime) WithDayOfYear(day int) (LocalDateTime, error) {
	return dt.withDate(dt.date.WithDayOfYear(day))
}

// WithDayOfWeek returns a copy with the date adjusted to the given ISO
// day of the current Monday-to-Sunday week.
func (dt LocalDateTime) WithDayOfWeek(day DayOfWeek) (LocalDateTime, error) {
	if day < Monday || day > Sunday {
		return LocalDateTime{}, fmt.Errorf("invalid day of week: %d: %w", int(day), ErrFieldRange)
	}
	return dt.withDate(dt.date.plusDays(int64(day - dt.date.DayOfWeek())))
}

// WithDate returns a copy with all date fields altered and the time
// fields unchanged.
func (dt LocalDateTime) WithDate(year int, month Month, day int) (LocalDateTime, error) {
	if year == dt.date.year && month == dt.date.month && day == dt.date.day {
		return dt, nil
	}
	return dt.withDate(NewLocalDate(year, month, day))
}

// WithLastDayOfMonth returns a copy with the day set to the last day of
// the current month.
func (dt LocalDateTime) WithLastDayOfMonth() LocalDateTime {
	return LocalDateTime{dt.date.WithLastDayOfMonth(), dt.tod}
}

// WithLastDayOfYear returns a copy with the date set to December 31st of
// the current year.
func (dt LocalDateTime) WithLastDayOfYear() LocalDateTime {
	return LocalDateTime{dt.date.WithLastDayOfYear(), dt.tod}
}

// WithHour returns a copy with the hour altered.
func (dt LocalDateTime) WithHour(hour int) (LocalDateTime, error) {
	return dt.withTime(dt.tod.WithHour(hour))
}

// WithMinute returns a copy with the minute altered.
func (dt LocalDateTime) WithMinute(minute int) (LocalDateTime, error) {
	return dt.withTime(dt.tod.WithMinute(minute))
}

// WithSecond returns a copy with the second altered.
func (dt LocalDateTime) WithSecond(second int) (LocalDateTime, error) {
	return dt.withTime(dt.tod.WithSecond(second))
}

// WithNanosecond returns a copy with the nanosecond altered.
func (dt LocalDateTime) WithNanosecond(nanos int) (LocalDateTime, error) {
	return dt.withTime(dt.tod.WithNanosecond(nanos))
}

// WithTime returns a copy with all time fields altered and the date
// fields unchanged. The nanosecond field is set to zero.
func (dt LocalDateTime) WithTime(hour, minute, second int) (LocalDateTime, error) {
	if hour == dt.tod.hour && minute == dt.tod.minute && second == dt.tod.second && dt.tod.nanos == 0 {
		return dt, nil
	}
	return dt.withTime(NewLocalTime(hour, minute, second, 0))
}

// PlusYears adds the given number of years per LocalDate.PlusYears.
func (dt LocalDateTime) PlusYears(years int) (LocalDateTime, error) {
	return dt.withDate(dt.date.PlusYears(years))
}

// PlusMonths adds the given number of months per LocalDate.PlusMonths.
func (dt LocalDateTime) PlusMonths(months int) (LocalDateTime, error) {
	return dt.withDate(dt.date.PlusMonths(months))
}

// PlusWeeks adds the given number of weeks per LocalDate.PlusWeeks.
func (dt LocalDateTime) PlusWeeks(weeks int) (LocalDateTime, error) {
	return dt.withDate(dt.date.PlusWeeks(weeks))
}

// PlusDays adds the given number of days per LocalDate.PlusDays.
func (dt LocalDateTime) PlusDays(days int) (LocalDateTime, error) {
	return dt.withDate(dt.date.PlusDays(days))
}

// PlusHours adds the given number of hours, carrying whole days into the
// date fields.
func (dt LocalDateTime) PlusHours(hours int) (LocalDateTime, error) {
	return dt.plusTime(int64(hours), 0, 0, 0)
}

// PlusMinutes adds the given number of minutes, carrying whole days into
// the date fields.
func (dt LocalDateTime) PlusMinutes(minutes int) (LocalDateTime, error) {
	return dt.plusTime(0, int64(minutes), 0, 0)
}

// PlusSeconds adds the given number of seconds, carrying whole days into
// the date fields.
func (dt LocalDateTime) PlusSeconds(seconds int) (LocalDateTime, error) {
	return dt.plusTime(0, 0, int64(seconds), 0)
}

// PlusNanos adds the given number of nanoseconds, carrying whole days
// into the date fields.
func (dt LocalDateTime) PlusNanos(nanos int64) (LocalDateTime, error) {
	return dt.plusTime(0, 0, 0, nanos)
}

// plusTime splits each unit into whole days and a within-day remainder so
// that no intermediate sum can overflow int64.
func (dt LocalDateTime) plusTime(hours, minutes, seconds, nanos int64) (LocalDateTime, error) {
	days := hours/24 + minutes/(24*60) + seconds/secondsPerDay + nanos/nanosPerDay
	total := (hours%24)*nanosPerHour +
		(minutes%(24*60))*nanosPerMinute +
		(seconds%secondsPerDay)*nanosPerSecond +
		nanos%nanosPerDay +
		dt.tod.NanoOfDay()
	days += floorDiv(total, nanosPerDay)
	nanoOfDay := floorMod(total, nanosPerDay)
	if days == 0 && nanoOfDay == dt.tod.NanoOfDay() {
		return dt, nil
	}
	date, err := dt.date.plusDays(days)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{date, localTimeFromNanoOfDay(nanoOfDay)}, nil
}

// Plus adds all units of the given period, largest first.
func (dt LocalDateTime) Plus(p Period) (LocalDateTime, error) {
	var err error
	if p.Years != 0 {
		if dt, err = dt.PlusYears(p.Years); err != nil {
			return LocalDateTime{}, err
		}
	}
	if p.Months != 0 {
		if dt, err = dt.PlusMonths(p.Months); err != nil {
			return LocalDateTime{}, err
		}
	}
	if p.Weeks != 0 {
		if dt, err = dt.PlusWeeks(p.Weeks); err != nil {
			return LocalDateTime{}, err
		}
	}
	if p.Days != 0 {
		if dt, err = dt.PlusDays(p.Days); err != nil {
			return LocalDateTime{}, err
		}
	}
	return dt.plusTime(int64(p.Hours), int64(p.Minutes), int64(p.Seconds), p.Nanos)
}

// epochSecond returns the number of seconds since 1970-01-01T00:00:00Z
// for this wall clock reading at the given offset.
func (dt LocalDateTime) epochSecond(offset Offset) int64 {
	return dt.date.EpochDay()*secondsPerDay + int64(dt.tod.SecondOfDay()) - int64(offset.seconds)
}

// Compare returns -1, 0 or 1 according to whether dt is before, equal to
// or after other.
func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.tod.Compare(other.tod)
}

// String returns the date and time separated by 'T', eg.
// '2007-10-02T13:45:30.123456789'. The time portion is the shortest form
// that losslessly represents all non-zero fields.
func (dt LocalDateTime) String() string {
	return dt.date.String() + "T" + dt.tod.String()
}

// Parse val in the format '2006-01-02T15:04[:05[.999999999]]'.
func (dt *LocalDateTime) Parse(val string) error {
	datePart, timePart, ok := strings.Cut(val, "T")
	if !ok {
		return fmt.Errorf("invalid date-time %q, expected '2006-01-02T15:04:05': %w", val, ErrFieldRange)
	}
	var date LocalDate
	if err := date.Parse(datePart); err != nil {
		return err
	}
	var tod LocalTime
	if err := tod.Parse(timePart); err != nil {
		return err
	}
	*dt = LocalDateTime{date, tod}
	return nil
}
