// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import (
	"fmt"
	"strconv"
)

func consumeN(dur string) (int, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if c >= '0' && c <= '9' {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(dur[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidISO8601Duration)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or duration designator: %s: %w", dur, ErrInvalidISO8601Duration)
}

// ParseISO8601Duration parses the date portion of an ISO8601 duration,
// [-]PnYnMnWnD, into a Duration. The designators must appear in that
// order and the type of the result is determined by the designators used
// in the same way as for ParseDuration. Fractional values and time
// components are not supported since they have no representation as a
// Duration.
func ParseISO8601Duration(dur string) (Duration, error) {
	nl := len(dur)
	hasP, hasNP := (nl > 0 && dur[0] == 'P'), (nl > 1 && dur[0] == '-' && dur[1] == 'P')
	if !hasP && !hasNP {
		return UnknownDur, fmt.Errorf("duration must start with P or -P: %s: %w", dur, ErrInvalidISO8601Duration)
	}
	orig := dur
	dur = dur[1:]
	if hasNP {
		dur = dur[1:]
	}
	var seen unit
	var years, months, weeks, days int
	for len(dur) > 0 {
		if dur[0] == 'T' {
			return UnknownDur, fmt.Errorf("time components are not supported: %s: %w", orig, ErrInvalidISO8601Duration)
		}
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return UnknownDur, err
		}
		dur = dur[idx:]
		u := unitFor(designator + 'a' - 'A')
		if u <= seen {
			return UnknownDur, fmt.Errorf("duplicate or out of order designator: %c: %s: %w", designator, orig, ErrInvalidISO8601Duration)
		}
		seen |= u
		if hasNP {
			n = -n
		}
		switch u {
		case unitYear:
			years = n
		case unitMonth:
			months = n
		case unitWeek:
			weeks = n
		case unitDay:
			days = n
		}
	}
	d := durationFromUnits(seen, years, months, weeks, days)
	if !d.IsValid() {
		return UnknownDur, fmt.Errorf("unsupported combination of designators or value out of range: %s: %w", orig, ErrInvalidISO8601Duration)
	}
	return d, nil
}

// ISO8601 returns d as an ISO8601 duration. Durations whose components
// have different signs cannot be represented and are returned as the
// empty string, as is the unknown duration.
func (d Duration) ISO8601() string {
	if !d.IsValid() {
		return ""
	}
	lo, hi := unpackPair(d.u)
	if (lo < 0 && hi > 0) || (lo > 0 && hi < 0) {
		return ""
	}
	var hu, lu byte
	switch d.typ {
	case MDDuration:
		hu, lu = 'M', 'D'
	case WDDuration:
		hu, lu = 'W', 'D'
	case YMDuration:
		hu, lu = 'Y', 'M'
	}
	out := make([]byte, 0, 16)
	if lo < 0 || hi < 0 {
		out = append(out, '-')
		lo, hi = -lo, -hi
	}
	out = append(out, 'P')
	if hi != 0 || d.typ != MDDuration {
		out = appendComponent(out, hi, hu)
	}
	if lo != 0 || (hi == 0 && d.typ == MDDuration) {
		out = appendComponent(out, lo, lu)
	}
	return string(out)
}
