// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidISO8601Period = errors.New("invalid ISO8601 period")

// Period is an amount of calendar and clock time expressed as separate
// units, eg. '1 year, 2 months and 3 hours'. Unlike a duration the
// calendar units have no fixed length; they are applied with
// calendar-aware arithmetic by the Plus methods on the date-time types.
type Period struct {
	Years   int
	Months  int
	Weeks   int
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Nanos   int64
}

// IsZero returns true if all units are zero.
func (p Period) IsZero() bool {
	return p == Period{}
}

func consumePeriodField(val string) (int64, byte, int, error) {
	for i := range val {
		c := val[i]
		if c >= '0' && c <= '9' || (i == 0 && c == '-') {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D', 'H', 'S':
			n, err := strconv.ParseInt(val[:i], 10, 64)
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", val[:i], val, ErrInvalidISO8601Period)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or period designator: %s: %w", val, ErrInvalidISO8601Period)
}

// Parse a period in the ISO8601 format [-]PnYnMnWnDTnHnMnS with integer
// fields. A leading '-' negates every unit.
func (p *Period) Parse(val string) error {
	nl := len(val)
	hasP, hasNP := nl > 0 && val[0] == 'P', nl > 1 && val[0] == '-' && val[1] == 'P'
	if !hasP && !hasNP {
		return fmt.Errorf("period must start with P or -P: %s: %w", val, ErrInvalidISO8601Period)
	}
	val = val[1:]
	if hasNP {
		val = val[1:]
	}
	var result Period
	state := 0 // 0 = P, 1 = T
	for len(val) > 0 {
		if val[0] == 'T' {
			state = 1
			val = val[1:]
			continue
		}
		n, designator, idx, err := consumePeriodField(val)
		if err != nil {
			return err
		}
		val = val[idx:]
		switch state {
		case 0:
			switch designator {
			case 'Y':
				result.Years = int(n)
			case 'M':
				result.Months = int(n)
			case 'W':
				result.Weeks = int(n)
			case 'D':
				result.Days = int(n)
			default:
				return fmt.Errorf("invalid period designator: %c: %w", designator, ErrInvalidISO8601Period)
			}
		case 1:
			switch designator {
			case 'H':
				result.Hours = int(n)
			case 'M':
				result.Minutes = int(n)
			case 'S':
				result.Seconds = int(n)
			default:
				return fmt.Errorf("invalid period designator: %c: %w", designator, ErrInvalidISO8601Period)
			}
		}
	}
	if hasNP {
		result = result.Negated()
	}
	*p = result
	return nil
}

// Negated returns the period with every unit negated.
func (p Period) Negated() Period {
	return Period{
		Years:   -p.Years,
		Months:  -p.Months,
		Weeks:   -p.Weeks,
		Days:    -p.Days,
		Hours:   -p.Hours,
		Minutes: -p.Minutes,
		Seconds: -p.Seconds,
		Nanos:   -p.Nanos,
	}
}

// String returns the period in ISO8601 format, 'P0D' for the zero
// period. The nanosecond unit, which has no ISO8601 designator of its
// own, is folded into the seconds field as a fraction.
func (p Period) String() string {
	if p.IsZero() {
		return "P0D"
	}
	var out strings.Builder
	out.WriteByte('P')
	for _, f := range []struct {
		n          int
		designator byte
	}{
		{p.Years, 'Y'}, {p.Months, 'M'}, {p.Weeks, 'W'}, {p.Days, 'D'},
	} {
		if f.n != 0 {
			fmt.Fprintf(&out, "%d%c", f.n, f.designator)
		}
	}
	if p.Hours == 0 && p.Minutes == 0 && p.Seconds == 0 && p.Nanos == 0 {
		return out.String()
	}
	out.WriteByte('T')
	if p.Hours != 0 {
		fmt.Fprintf(&out, "%dH", p.Hours)
	}
	if p.Minutes != 0 {
		fmt.Fprintf(&out, "%dM", p.Minutes)
	}
	if total := int64(p.Seconds)*nanosPerSecond + p.Nanos; total != 0 {
		sign := ""
		if total < 0 {
			sign, total = "-", -total
		}
		secs, frac := total/nanosPerSecond, total%nanosPerSecond
		if frac == 0 {
			fmt.Fprintf(&out, "%s%dS", sign, secs)
		} else {
			fmt.Fprintf(&out, "%s%s.%sS", sign, strconv.FormatInt(secs, 10),
				strings.TrimRight(fmt.Sprintf("%09d", frac), "0"))
		}
	}
	return out.String()
}
