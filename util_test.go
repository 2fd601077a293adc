// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono_test

import (
	"cloudeng.io/chrono"
)

func newDate(y, m, d int) chrono.LocalDate {
	date, err := chrono.NewLocalDate(y, chrono.Month(m), d)
	if err != nil {
		panic(err)
	}
	return date
}

func newTime(h, m, s, n int) chrono.LocalTime {
	tod, err := chrono.NewLocalTime(h, m, s, n)
	if err != nil {
		panic(err)
	}
	return tod
}

func newDateTime(y, mo, d, h, mi, s, n int) chrono.LocalDateTime {
	dt, err := chrono.LocalDateTimeFromFields(y, chrono.Month(mo), d, h, mi, s, n)
	if err != nil {
		panic(err)
	}
	return dt
}

func offsetHM(h, m int) chrono.Offset {
	off, err := chrono.NewOffset(h, m, 0)
	if err != nil {
		panic(err)
	}
	return off
}

func newODT(y, mo, d, h, mi, s, n int, off chrono.Offset) chrono.OffsetDateTime {
	odt, err := chrono.OffsetDateTimeFromFields(y, chrono.Month(mo), d, h, mi, s, n, off)
	if err != nil {
		panic(err)
	}
	return odt
}
