// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"time"
)

// Instant is an absolute point on the UTC timeline, represented as
// seconds since 1970-01-01T00:00:00Z plus a nanosecond of second in
// [0, 1e9). The zero value is the epoch itself.
type Instant struct {
	seconds int64
	nanos   int
}

// NewInstant creates an Instant from epoch seconds and a signed
// nanosecond adjustment, normalizing with floor semantics so that the
// stored nanosecond of second is always in [0, 1e9).
func NewInstant(epochSeconds int64, nanoAdjustment int64) Instant {
	return Instant{
		seconds: epochSeconds + floorDiv(nanoAdjustment, nanosPerSecond),
		nanos:   int(floorMod(nanoAdjustment, nanosPerSecond)),
	}
}

// InstantFromTime returns the Instant for the specified time.Time.
func InstantFromTime(when time.Time) Instant {
	return Instant{when.Unix(), when.Nanosecond()}
}

// EpochSecond returns the number of seconds since the epoch, negative
// for instants before it.
func (i Instant) EpochSecond() int64 {
	return i.seconds
}

// Nanosecond returns the nanosecond of second, 0 to 999,999,999.
func (i Instant) Nanosecond() int {
	return i.nanos
}

// Time returns the instant as a time.Time in UTC.
func (i Instant) Time() time.Time {
	return time.Unix(i.seconds, int64(i.nanos)).UTC()
}

// Compare returns -1, 0 or 1 according to whether i is before, equal to
// or after other.
func (i Instant) Compare(other Instant) int {
	switch {
	case i.seconds < other.seconds:
		return -1
	case i.seconds > other.seconds:
		return 1
	}
	return cmpInt(i.nanos, other.nanos)
}

// String returns the instant as an ISO8601 UTC date-time, eg.
// '1970-01-01T00:00Z'.
func (i Instant) String() string {
	odt, err := OffsetDateTimeFromInstant(i, UTC)
	if err != nil {
		return fmt.Sprintf("%ds+%dns", i.seconds, i.nanos)
	}
	return odt.String()
}
