// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package chrono provides immutable calendrical value types: local dates
// and times of day in the proleptic Gregorian calendar, fixed UTC
// offsets, absolute instants and the offset date-time that combines
// them, eg. '2007-10-02T13:45:30.123456789+02:00'.
package chrono

import (
	"fmt"
	"strings"
	"time"
)

// OffsetDateTime represents a date-time with a fixed offset from UTC,
// such as '2007-12-03T10:15:30+02:00'. It carries two views of the same
// value: the local wall clock reading, used for field access and field
// based arithmetic, and the absolute instant it denotes, used for
// ordering.
//
// OffsetDateTime is immutable; every mutating method returns a new value
// and it is safe to share across goroutines without synchronization.
type OffsetDateTime struct {
	local  LocalDateTime
	offset Offset
}

// NewOffsetDateTime pairs a local date-time with an offset. Both
// arguments are value types that are valid by construction.
func NewOffsetDateTime(local LocalDateTime, offset Offset) OffsetDateTime {
	return OffsetDateTime{local, offset}
}

// OffsetDateTimeFromFields creates a new OffsetDateTime, validating all
// fields: year within the supported range, month 1-12, day valid for the
// year and month, hour 0-23, minute and second 0-59 and nanosecond
// 0-999,999,999.
func OffsetDateTimeFromFields(year int, month Month, day, hour, minute, second, nanos int, offset Offset) (OffsetDateTime, error) {
	local, err := LocalDateTimeFromFields(year, month, day, hour, minute, second, nanos)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{local, offset}, nil
}

// OffsetDateTimeFromInstant converts an absolute instant to the wall
// clock reading at the given offset. The epoch seconds are decomposed
// with floor semantics so that negative values resolve to the correct
// earlier day, the offset is applied to the seconds of day with the day
// count adjusted on overflow, and the instant's nanosecond of second is
// carried through unchanged.
func OffsetDateTimeFromInstant(i Instant, offset Offset) (OffsetDateTime, error) {
	days := floorDiv(i.seconds, secondsPerDay)
	secsOfDay := floorMod(i.seconds, secondsPerDay) + int64(offset.seconds)
	switch {
	case secsOfDay < 0:
		secsOfDay += secondsPerDay
		days--
	case secsOfDay >= secondsPerDay:
		secsOfDay -= secondsPerDay
		days++
	}
	date, err := LocalDateFromEpochDay(days)
	if err != nil {
		return OffsetDateTime{}, err
	}
	tod := localTimeFromNanoOfDay(secsOfDay*nanosPerSecond + int64(i.nanos))
	return OffsetDateTime{LocalDateTime{date, tod}, offset}, nil
}

// OffsetDateTimeFromTime returns the OffsetDateTime for the specified
// time.Time, preserving both its wall clock reading and its fixed offset
// at that instant.
func OffsetDateTimeFromTime(when time.Time) OffsetDateTime {
	_, offsetSecs := when.Zone()
	return OffsetDateTime{LocalDateTimeFromTime(when), Offset{offsetSecs}}
}

// Year returns the proleptic year; 1BC is year 0, 2BC is year -1.
func (odt OffsetDateTime) Year() int {
	return odt.local.Year()
}

// Month returns the month of year, January being 1.
func (odt OffsetDateTime) Month() Month {
	return odt.local.Month()
}

// Day returns the day of month, 1 to 31.
func (odt OffsetDateTime) Day() int {
	return odt.local.Day()
}

// DayOfYear returns the day of year, 1 to 365 or 366 in a leap year.
func (odt OffsetDateTime) DayOfYear() int {
	return odt.local.DayOfYear()
}

// DayOfWeek returns the ISO day of week, Monday being 1.
func (odt OffsetDateTime) DayOfWeek() DayOfWeek {
	return odt.local.DayOfWeek()
}

// Hour returns the hour of day, 0 to 23.
func (odt OffsetDateTime) Hour() int {
	return odt.local.Hour()
}

// Minute returns the minute of hour, 0 to 59.
func (odt OffsetDateTime) Minute() int {
	return odt.local.Minute()
}

// Second returns the second of minute, 0 to 59.
func (odt OffsetDateTime) Second() int {
	return odt.local.Second()
}

// Nanosecond returns the nanosecond of second, 0 to 999,999,999.
func (odt OffsetDateTime) Nanosecond() int {
	return odt.local.Nanosecond()
}

// NanoFraction returns the nanosecond of second as a fraction, 0 to
// 0.999999999.
func (odt OffsetDateTime) NanoFraction() float64 {
	return odt.local.NanoFraction()
}

// Offset returns the fixed offset from UTC.
func (odt OffsetDateTime) Offset() Offset {
	return odt.offset
}

// WithOffsetSameLocal returns a copy with a different offset and the
// same wall clock reading. No calculation is performed: the result
// denotes a different instant. To change the offset while preserving the
// instant use WithOffsetSameInstant.
func (odt OffsetDateTime) WithOffsetSameLocal(offset Offset) OffsetDateTime {
	if offset == odt.offset {
		return odt
	}
	return OffsetDateTime{odt.local, offset}
}

// WithOffsetSameInstant returns a copy with a different offset denoting
// the same instant: the wall clock reading is shifted by the difference
// between the two offsets. If this value is 10:30+02:00 then adjusting
// to +03:00 yields 11:30+03:00. It fails only if the shift crosses the
// supported year range.
func (odt OffsetDateTime) WithOffsetSameInstant(offset Offset) (OffsetDateTime, error) {
	if offset == odt.offset {
		return odt, nil
	}
	local, err := odt.local.PlusSeconds(offset.seconds - odt.offset.seconds)
	if err != nil {
		return OffsetDateTime{}, err
	}
	return OffsetDateTime{local, offset}, nil
}

// wrap pairs a local date-time produced by a delegated mutation with the
// unchanged offset, returning the receiver itself when the mutation was
// a no-op.
func (odt OffsetDateTime) wrap(local LocalDateTime, err error) (OffsetDateTime, error) {
	if err != nil {
		return OffsetDateTime{}, err
	}
	if local == odt.local {
		return odt, nil
	}
	return OffsetDateTime{local, odt.offset}, nil
}

// WithYear returns a copy with the year altered, shortening the day to
// the last valid day of the month if necessary.
func (odt OffsetDateTime) WithYear(year int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithYear(year))
}

// WithMonth returns a copy with the month of year altered, shortening
// the day to the last valid day of the month if necessary.
func (odt OffsetDateTime) WithMonth(month Month) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithMonth(month))
}

// WithDay returns a copy with the day of month altered.
func (odt OffsetDateTime) WithDay(day int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithDay(day))
}

// WithDayOfYear returns a copy with the date set to the given day of the
// current year.
func (odt OffsetDateTime) WithDayOfYear(day int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithDayOfYear(day))
}

// WithDayOfWeek returns a copy with the date adjusted to the given ISO
// day of the current Monday-to-Sunday week.
func (odt OffsetDateTime) WithDayOfWeek(day DayOfWeek) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithDayOfWeek(day))
}

// WithDate returns a copy with all date fields altered and the time
// fields and offset unchanged.
func (odt OffsetDateTime) WithDate(year int, month Month, day int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithDate(year, month, day))
}

// WithLastDayOfMonth returns a copy with the day set to the last day of
// the current month.
func (odt OffsetDateTime) WithLastDayOfMonth() OffsetDateTime {
	local := odt.local.WithLastDayOfMonth()
	if local == odt.local {
		return odt
	}
	return OffsetDateTime{local, odt.offset}
}

// WithLastDayOfYear returns a copy with the date set to December 31st of
// the current year.
func (odt OffsetDateTime) WithLastDayOfYear() OffsetDateTime {
	local := odt.local.WithLastDayOfYear()
	if local == odt.local {
		return odt
	}
	return OffsetDateTime{local, odt.offset}
}

// WithHour returns a copy with the hour of day altered.
func (odt OffsetDateTime) WithHour(hour int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithHour(hour))
}

// WithMinute returns a copy with the minute of hour altered.
func (odt OffsetDateTime) WithMinute(minute int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithMinute(minute))
}

// WithSecond returns a copy with the second of minute altered.
func (odt OffsetDateTime) WithSecond(second int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithSecond(second))
}

// WithNanosecond returns a copy with the nanosecond of second altered.
func (odt OffsetDateTime) WithNanosecond(nanos int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithNanosecond(nanos))
}

// WithTime returns a copy with all time fields altered, the nanosecond
// set to zero and the date fields and offset unchanged.
func (odt OffsetDateTime) WithTime(hour, minute, second int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.WithTime(hour, minute, second))
}

// PlusYears adds the given number of years, which may be negative,
// shortening the day to the last valid day of the resulting month if
// necessary: 2008-02-29 plus one year is 2009-02-28, never 2009-03-01.
func (odt OffsetDateTime) PlusYears(years int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.PlusYears(years))
}

// PlusMonths adds the given number of months, which may be negative,
// shortening the day to the last valid day of the resulting month if
// necessary: 2007-03-31 plus one month is 2007-04-30.
func (odt OffsetDateTime) PlusMonths(months int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.PlusMonths(months))
}

// PlusWeeks adds the given number of weeks using pure day arithmetic. It
// fails only if the result exceeds the supported year range.
func (odt OffsetDateTime) PlusWeeks(weeks int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.PlusWeeks(weeks))
}

// PlusDays adds the given number of days using pure day arithmetic. It
// fails only if the result exceeds the supported year range.
func (odt OffsetDateTime) PlusDays(days int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.PlusDays(days))
}

// PlusHours adds the given number of hours using wall clock field
// arithmetic. The offset is fixed and has no transition rules, so field
// based and duration based addition coincide for this type.
func (odt OffsetDateTime) PlusHours(hours int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.PlusHours(hours))
}

// PlusMinutes adds the given number of minutes using wall clock field
// arithmetic.
func (odt OffsetDateTime) PlusMinutes(minutes int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.PlusMinutes(minutes))
}

// PlusSeconds adds the given number of seconds using wall clock field
// arithmetic.
func (odt OffsetDateTime) PlusSeconds(seconds int) (OffsetDateTime, error) {
	return odt.wrap(odt.local.PlusSeconds(seconds))
}

// PlusNanos adds the given number of nanoseconds using wall clock field
// arithmetic.
func (odt OffsetDateTime) PlusNanos(nanos int64) (OffsetDateTime, error) {
	return odt.wrap(odt.local.PlusNanos(nanos))
}

// Plus adds all units of the given period, largest first, with the
// offset carried through unchanged.
func (odt OffsetDateTime) Plus(p Period) (OffsetDateTime, error) {
	return odt.wrap(odt.local.Plus(p))
}

// Compare orders by the UTC equivalent instants: when the offsets are
// equal the wall clock readings are compared directly, otherwise each
// side's offset is subtracted first. This ordering is deliberately
// inconsistent with Equal: two values with different offsets denoting
// the same instant compare as 0 even though Equal reports false.
func (odt OffsetDateTime) Compare(other OffsetDateTime) int {
	if odt.offset == other.offset {
		return odt.local.Compare(other.local)
	}
	return odt.Instant().Compare(other.Instant())
}

// Before returns true if this date-time denotes an earlier instant than
// other, per Compare.
func (odt OffsetDateTime) Before(other OffsetDateTime) bool {
	return odt.Compare(other) < 0
}

// After returns true if this date-time denotes a later instant than
// other, per Compare.
func (odt OffsetDateTime) After(other OffsetDateTime) bool {
	return odt.Compare(other) > 0
}

// Equal returns true only if both the wall clock fields and the offset
// are identical. Values denoting the same instant at different offsets
// are not equal; use Compare for instant equivalence.
func (odt OffsetDateTime) Equal(other OffsetDateTime) bool {
	return odt == other
}

// Hash returns a hash of the stored fields, identical for Equal values
// and stable across calls.
func (odt OffsetDateTime) Hash() uint64 {
	return odt.local.hash() ^ odt.offset.hash()
}

const (
	fnvOffset64 = uint64(14695981039346656037)
	fnvPrime64  = uint64(1099511628211)
)

func (dt LocalDateTime) hash() uint64 {
	h := fnvOffset64
	for _, v := range []int64{
		int64(dt.date.year), int64(dt.date.month), int64(dt.date.day),
		dt.tod.NanoOfDay(),
	} {
		h = (h ^ uint64(v)) * fnvPrime64
	}
	return h
}

// LocalDate returns the date fields without the time or offset.
func (odt OffsetDateTime) LocalDate() LocalDate {
	return odt.local.date
}

// LocalTime returns the time fields without the date or offset.
func (odt OffsetDateTime) LocalTime() LocalTime {
	return odt.local.tod
}

// LocalDateTime returns the wall clock reading without the offset.
func (odt OffsetDateTime) LocalDateTime() LocalDateTime {
	return odt.local
}

// Instant returns the absolute instant this date-time denotes. It is the
// exact inverse of OffsetDateTimeFromInstant for all valid values.
func (odt OffsetDateTime) Instant() Instant {
	return Instant{odt.local.epochSecond(odt.offset), odt.local.Nanosecond()}
}

// Time returns the date-time as a time.Time in a fixed zone named after
// the offset.
func (odt OffsetDateTime) Time() time.Time {
	loc := time.UTC
	if odt.offset.seconds != 0 {
		loc = time.FixedZone(odt.offset.String(), odt.offset.seconds)
	}
	return time.Date(odt.Year(), time.Month(odt.Month()), odt.Day(),
		odt.Hour(), odt.Minute(), odt.Second(), odt.Nanosecond(), loc)
}

// String returns the local date-time text followed by the offset text,
// eg. '2007-10-02T13:45:30.123456789+02:00' or '2007-10-02T13:45Z'. The
// time portion is the shortest form that losslessly represents all
// non-zero fields.
func (odt OffsetDateTime) String() string {
	return odt.local.String() + odt.offset.String()
}

// Parse val in the format '2006-01-02T15:04[:05[.999999999]]' followed
// by 'Z' or a '+08:00[:30]' style offset.
func (odt *OffsetDateTime) Parse(val string) error {
	tIdx := strings.IndexByte(val, 'T')
	if tIdx < 0 {
		return fmt.Errorf("invalid date-time %q, expected '2006-01-02T15:04:05Z': %w", val, ErrFieldRange)
	}
	offIdx := -1
	for i := len(val) - 1; i > tIdx; i-- {
		if c := val[i]; c == 'Z' || c == 'z' || c == '+' || c == '-' {
			offIdx = i
			break
		}
	}
	if offIdx < 0 {
		return fmt.Errorf("missing offset in %q, expected 'Z' or '+08:00' suffix: %w", val, ErrFieldRange)
	}
	var offset Offset
	if err := offset.Parse(val[offIdx:]); err != nil {
		return err
	}
	var local LocalDateTime
	if err := local.Parse(val[:offIdx]); err != nil {
		return err
	}
	*odt = OffsetDateTime{local, offset}
	return nil
}
