// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinYear and MaxYear bound the supported proleptic year range. Any
// construction or arithmetic that would leave this range fails with
// ErrYearRange.
const (
	MinYear = -999_999_999
	MaxYear = 999_999_999
)

var (
	// ErrFieldRange is returned when a calendar or clock field is
	// outside its legal domain, eg. month 13 or hour 24.
	ErrFieldRange = errors.New("calendar field out of range")

	// ErrYearRange is returned when arithmetic places a date outside
	// the supported year range.
	ErrYearRange = errors.New("year outside supported range")
)

// Month as an int, 1 (January) to 12 (December).
type Month time.Month

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

func (m Month) String() string {
	return time.Month(m).String()
}

// ParseNumericMonth parses a 1 or 2 digit numeric month value in the range 1-12.
func ParseNumericMonth(val string) (Month, error) {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid month: %s: %w", val, ErrFieldRange)
	}
	if n < 1 || n > 12 {
		return 0, fmt.Errorf("invalid month: %d: %w", n, ErrFieldRange)
	}
	return Month(n), nil
}

// ParseMonth parses a month name of the form "Jan" to "Dec" or any other longer
// prefixes of "January" to "December" in either lower or upper case.
func ParseMonth(val string) (Month, error) {
	lc := strings.ToLower(val)
	for i := range months {
		if strings.HasPrefix(months[i], lc) {
			return Month(i + 1), nil
		}
	}
	return 0, fmt.Errorf("invalid month: %s: %w", val, ErrFieldRange)
}

// Parse parses a month in either numeric or month name format.
func (m *Month) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty month: %w", ErrFieldRange)
	}
	if n, err := ParseNumericMonth(val); err == nil {
		*m = n
		return nil
	}
	n, err := ParseMonth(val)
	if err != nil {
		return err
	}
	*m = n
	return nil
}

// DayOfWeek is an ISO day of the week, 1 (Monday) to 7 (Sunday).
type DayOfWeek int

const (
	Monday DayOfWeek = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

func (d DayOfWeek) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("DayOfWeek(%d)", int(d))
	}
	return dayNames[d-1]
}

var (
	dayOfYear       []int // per month cumulative days in year so [0, 31, 59 etc]
	dayOfYearLeap   []int // per month cumulative days in leap year [0, 31, 60 etc]
	daysInMonth     []int // days in each month
	daysInMonthLeap []int
	months          = []string{"january", "february", "march", "april", "may", "june", "july", "august", "september", "october", "november", "december"}
)

func daysInMonthForYearInit(year int, month int) int {
	switch month {
	case 2:
		if IsLeap(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

func init() {
	daysInMonth = make([]int, 12)
	daysInMonthLeap = make([]int, 12)
	dayOfYear = make([]int, 12)
	dayOfYearLeap = make([]int, 12)

	for i := 0; i < 12; i++ {
		daysInMonth[i] = daysInMonthForYearInit(2023, i+1)
		daysInMonthLeap[i] = daysInMonthForYearInit(2024, i+1)
	}
	for i := 0; i < 11; i++ {
		dayOfYear[i+1] += dayOfYear[i] + daysInMonth[i]
		dayOfYearLeap[i+1] += dayOfYearLeap[i] + daysInMonthLeap[i]
	}
}

// IsLeap returns true if the given year is a leap year in the proleptic
// Gregorian calendar.
func IsLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month for the given year.
func DaysInMonth(year int, month Month) int {
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// LocalDate represents a date with a year, month and day in the proleptic
// Gregorian calendar and no associated time zone or offset. The zero value
// is not a valid date; use NewLocalDate.
type LocalDate struct {
	year  int
	month Month
	day   int
}

// NewLocalDate creates a new LocalDate, validating all fields. The day
// must be valid for the given year and month.
func NewLocalDate(year int, month Month, day int) (LocalDate, error) {
	if year < MinYear || year > MaxYear {
		return LocalDate{}, fmt.Errorf("invalid year: %d: %w", year, ErrYearRange)
	}
	if month < January || month > December {
		return LocalDate{}, fmt.Errorf("invalid month: %d: %w", int(month), ErrFieldRange)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return LocalDate{}, fmt.Errorf("invalid day %d for %v %d: %w", day, month, year, ErrFieldRange)
	}
	return LocalDate{year, month, day}, nil
}

func (d LocalDate) Year() int {
	return d.year
}

func (d LocalDate) Month() Month {
	return d.month
}

func (d LocalDate) Day() int {
	return d.day
}

// DayOfYear returns the day of the year, 1-365 for non-leap years and
// 1-366 for leap years.
func (d LocalDate) DayOfYear() int {
	if IsLeap(d.year) {
		return dayOfYearLeap[d.month-1] + d.day
	}
	return dayOfYear[d.month-1] + d.day
}

// DayOfWeek returns the ISO day of the week, Monday being 1.
func (d LocalDate) DayOfWeek() DayOfWeek {
	// 1970-01-01 was a Thursday.
	return DayOfWeek(floorMod(d.EpochDay()+3, 7) + 1)
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}

// EpochDay returns the number of days since 1970-01-01, negative for
// earlier dates.
func (d LocalDate) EpochDay() int64 {
	y := int64(d.year)
	if d.month <= February {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (int64(d.month) + 9) % 12
	doy := (153*mp+2)/5 + int64(d.day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// LocalDateFromEpochDay returns the LocalDate for the given number of
// days since 1970-01-01, using floor semantics for negative values.
func LocalDateFromEpochDay(days int64) (LocalDate, error) {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := int(doy - (153*mp+2)/5 + 1)
	m := int(mp) + 3
	if mp >= 10 {
		m = int(mp) - 9
	}
	if m <= 2 {
		y++
	}
	if y < MinYear || y > MaxYear {
		return LocalDate{}, fmt.Errorf("epoch day %d: %w", days, ErrYearRange)
	}
	return LocalDate{int(y), Month(m), day}, nil
}

// WithYear returns a copy with the year altered, shortening the day to
// the last valid day of the month if necessary (eg. Feb 29 to Feb 28).
func (d LocalDate) WithYear(year int) (LocalDate, error) {
	if year == d.year {
		return d, nil
	}
	if year < MinYear || year > MaxYear {
		return LocalDate{}, fmt.Errorf("invalid year: %d: %w", year, ErrYearRange)
	}
	return LocalDate{year, d.month, min(d.day, DaysInMonth(year, d.month))}, nil
}

// WithMonth returns a copy with the month altered, shortening the day to
// the last valid day of the month if necessary.
func (d LocalDate) WithMonth(month Month) (LocalDate, error) {
	if month == d.month {
		return d, nil
	}
	if month < January || month > December {
		return LocalDate{}, fmt.Errorf("invalid month: %d: %w", int(month), ErrFieldRange)
	}
	return LocalDate{d.year, month, min(d.day, DaysInMonth(d.year, month))}, nil
}

// WithDay returns a copy with the day of month altered. The day must be
// valid for the current year and month.
func (d LocalDate) WithDay(day int) (LocalDate, error) {
	if day == d.day {
		return d, nil
	}
	if day < 1 || day > DaysInMonth(d.year, d.month) {
		return LocalDate{}, fmt.Errorf("invalid day %d for %v %d: %w", day, d.month, d.year, ErrFieldRange)
	}
	return LocalDate{d.year, d.month, day}, nil
}

// WithDayOfYear returns a copy with the date set to the given day of the
// current year, 1-365/366.
func (d LocalDate) WithDayOfYear(day int) (LocalDate, error) {
	if day == d.DayOfYear() {
		return d, nil
	}
	if day < 1 || day > DaysInYear(d.year) {
		return LocalDate{}, fmt.Errorf("invalid day of year %d for %d: %w", day, d.year, ErrFieldRange)
	}
	cumulative := dayOfYear
	if IsLeap(d.year) {
		cumulative = dayOfYearLeap
	}
	month := 12
	for i := 1; i < 12; i++ {
		if day <= cumulative[i] {
			month = i
			break
		}
	}
	return LocalDate{d.year, Month(month), day - cumulative[month-1]}, nil
}

// WithLastDayOfMonth returns a copy with the day set to the last day of
// the current month.
func (d LocalDate) WithLastDayOfMonth() LocalDate {
	if last := DaysInMonth(d.year, d.month); last != d.day {
		return LocalDate{d.year, d.month, last}
	}
	return d
}

// WithLastDayOfYear returns a copy with the date set to December 31st of
// the current year.
func (d LocalDate) WithLastDayOfYear() LocalDate {
	if d.month == December && d.day == 31 {
		return d
	}
	return LocalDate{d.year, December, 31}
}

// PlusYears adds the given number of years, shortening the day to the
// last valid day of the resulting month if necessary. For example
// 2008-02-29 plus one year is 2009-02-28.
func (d LocalDate) PlusYears(years int) (LocalDate, error) {
	if years == 0 {
		return d, nil
	}
	y := int64(d.year) + int64(years)
	if y < MinYear || y > MaxYear {
		return LocalDate{}, fmt.Errorf("%v plus %d years: %w", d, years, ErrYearRange)
	}
	return LocalDate{int(y), d.month, min(d.day, DaysInMonth(int(y), d.month))}, nil
}

// PlusMonths adds the given number of months, shortening the day to the
// last valid day of the resulting month if necessary. For example
// 2007-03-31 plus one month is 2007-04-30.
func (d LocalDate) PlusMonths(monthsToAdd int) (LocalDate, error) {
	if monthsToAdd == 0 {
		return d, nil
	}
	mc := int64(d.year)*12 + int64(d.month) - 1 + int64(monthsToAdd)
	y := floorDiv(mc, 12)
	m := Month(floorMod(mc, 12) + 1)
	if y < MinYear || y > MaxYear {
		return LocalDate{}, fmt.Errorf("%v plus %d months: %w", d, monthsToAdd, ErrYearRange)
	}
	return LocalDate{int(y), m, min(d.day, DaysInMonth(int(y), m))}, nil
}

// PlusWeeks adds the given number of weeks using pure day arithmetic.
func (d LocalDate) PlusWeeks(weeks int) (LocalDate, error) {
	return d.plusDays(int64(weeks) * 7)
}

// PlusDays adds the given number of days, incrementing month and year as
// required. It fails only if the result exceeds the supported year range.
func (d LocalDate) PlusDays(days int) (LocalDate, error) {
	return d.plusDays(int64(days))
}

// maxEpochDay bounds day arithmetic so that intermediate sums cannot
// overflow int64 before the year range check.
const maxEpochDay = (MaxYear + 1) * 366

func (d LocalDate) plusDays(days int64) (LocalDate, error) {
	if days == 0 {
		return d, nil
	}
	if days > 2*maxEpochDay || days < -2*maxEpochDay {
		return LocalDate{}, fmt.Errorf("%v plus %d days: %w", d, days, ErrYearRange)
	}
	return LocalDateFromEpochDay(d.EpochDay() + days)
}

// Compare returns -1, 0 or 1 according to whether d is before, equal to
// or after other.
func (d LocalDate) Compare(other LocalDate) int {
	if c := cmpInt(d.year, other.year); c != 0 {
		return c
	}
	if c := cmpInt(int(d.month), int(other.month)); c != 0 {
		return c
	}
	return cmpInt(d.day, other.day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d LocalDate) String() string {
	if d.year < 0 {
		// The sign consumes a digit of the field width.
		return fmt.Sprintf("%05d-%02d-%02d", d.year, int(d.month), d.day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// Parse a date in the format '2006-01-02'. A leading '-' denotes a
// negative proleptic year.
func (d *LocalDate) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '2006-01-02': %w", ErrFieldRange)
	}
	negative := val[0] == '-'
	if negative {
		val = val[1:]
	}
	parts := strings.Split(val, "-")
	if len(parts) != 3 {
		return fmt.Errorf("invalid date %q, expected '2006-01-02': %w", val, ErrFieldRange)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid year: %s: %w", parts[0], ErrFieldRange)
	}
	if negative {
		year = -year
	}
	month, err := ParseNumericMonth(parts[1])
	if err != nil {
		return err
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return fmt.Errorf("invalid day: %s: %w", parts[2], ErrFieldRange)
	}
	date, err := NewLocalDate(year, month, day)
	if err != nil {
		return err
	}
	*d = date
	return nil
}
