// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package chrono

import (
	"fmt"
	"strconv"
	"strings"
)

// maxOffsetSeconds bounds offsets to +/-18:00, the widest offset in use
// on any civil timeline.
const maxOffsetSeconds = 18 * 60 * 60

// Offset is a fixed signed offset from UTC in seconds, with no historical
// transition rules. The zero value is UTC.
type Offset struct {
	seconds int
}

// UTC is the zero offset.
var UTC = Offset{}

// NewOffset creates an Offset from hour, minute and second components.
// The non-zero components must all carry the same sign and the total must
// be within +/-18:00.
func NewOffset(hours, minutes, seconds int) (Offset, error) {
	if hours < -18 || hours > 18 {
		return Offset{}, fmt.Errorf("invalid offset hours: %d: %w", hours, ErrFieldRange)
	}
	if minutes < -59 || minutes > 59 {
		return Offset{}, fmt.Errorf("invalid offset minutes: %d: %w", minutes, ErrFieldRange)
	}
	if seconds < -59 || seconds > 59 {
		return Offset{}, fmt.Errorf("invalid offset seconds: %d: %w", seconds, ErrFieldRange)
	}
	if (hours > 0 && (minutes < 0 || seconds < 0)) ||
		(hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		return Offset{}, fmt.Errorf("offset components differ in sign: %d:%d:%d: %w", hours, minutes, seconds, ErrFieldRange)
	}
	return OffsetSeconds(hours*3600 + minutes*60 + seconds)
}

// OffsetSeconds creates an Offset from a total number of seconds within
// +/-18:00.
func OffsetSeconds(seconds int) (Offset, error) {
	if seconds < -maxOffsetSeconds || seconds > maxOffsetSeconds {
		return Offset{}, fmt.Errorf("offset %d seconds exceeds +/-18:00: %w", seconds, ErrFieldRange)
	}
	return Offset{seconds}, nil
}

// Seconds returns the total offset from UTC in seconds.
func (o Offset) Seconds() int {
	return o.seconds
}

func (o Offset) hash() uint64 {
	return uint64(int64(o.seconds)) * 0x9e3779b97f4a7c15
}

// String returns 'Z' for the zero offset and otherwise '+08:00' or
// '+08:00:30' when the offset has a seconds component.
func (o Offset) String() string {
	if o.seconds == 0 {
		return "Z"
	}
	sign, total := byte('+'), o.seconds
	if total < 0 {
		sign, total = '-', -total
	}
	if total%60 == 0 {
		return fmt.Sprintf("%c%02d:%02d", sign, total/3600, (total/60)%60)
	}
	return fmt.Sprintf("%c%02d:%02d:%02d", sign, total/3600, (total/60)%60, total%60)
}

// Parse val in formats 'Z', 'z' or '+08:00[:30]'.
func (o *Offset) Parse(val string) error {
	if val == "Z" || val == "z" {
		*o = UTC
		return nil
	}
	if len(val) == 0 || (val[0] != '+' && val[0] != '-') {
		return fmt.Errorf("invalid offset %q, expected 'Z' or '+08:00': %w", val, ErrFieldRange)
	}
	negative := val[0] == '-'
	parts := strings.Split(val[1:], ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("invalid offset %q, expected 'Z' or '+08:00[:30]': %w", val, ErrFieldRange)
	}
	total := 0
	for i, mult := range []int{3600, 60, 1} {
		if i >= len(parts) {
			break
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil || n < 0 || (i > 0 && n > 59) {
			return fmt.Errorf("invalid offset field %q: %w", parts[i], ErrFieldRange)
		}
		total += n * mult
	}
	if negative {
		total = -total
	}
	off, err := OffsetSeconds(total)
	if err != nil {
		return err
	}
	*o = off
	return nil
}
