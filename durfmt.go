// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import (
	"fmt"
	"strconv"
)

type unit uint8

const (
	unitYear unit = 1 << iota
	unitMonth
	unitWeek
	unitDay
)

func unitFor(c byte) unit {
	switch c {
	case 'y':
		return unitYear
	case 'm':
		return unitMonth
	case 'w':
		return unitWeek
	case 'd':
		return unitDay
	}
	return 0
}

// ParseDuration parses a duration written as a sequence of optionally
// signed <int><unit> tokens, where unit is one of y (years), m (months),
// w (weeks) or d (days), eg. 1w5d, 2m-3d or -1y6m. Each unit may appear
// at most once. The units determine the type of the result: y yields a YM
// duration and may only be combined with m, w yields a WD duration and
// may be combined with d, and any other combination yields an MD
// duration. UnknownDur is returned for any other input.
func ParseDuration(s string) Duration {
	var seen unit
	var years, months, weeks, days int
	for len(s) > 0 {
		i := 0
		if s[0] == '-' || s[0] == '+' {
			i++
		}
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start || i == len(s) {
			return UnknownDur
		}
		n, err := strconv.Atoi(s[:i])
		if err != nil {
			return UnknownDur
		}
		u := unitFor(s[i])
		if u == 0 || seen&u != 0 {
			return UnknownDur
		}
		seen |= u
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
		s = s[i+1:]
	}
	return durationFromUnits(seen, years, months, weeks, days)
}

func durationFromUnits(seen unit, years, months, weeks, days int) Duration {
	switch {
	case seen == 0:
		return UnknownDur
	case seen&unitYear != 0:
		if seen&(unitWeek|unitDay) != 0 {
			return UnknownDur
		}
		return NewYM(years, months)
	case seen&unitWeek != 0:
		if seen&unitMonth != 0 {
			return UnknownDur
		}
		return NewWD(weeks, days)
	}
	return NewMD(months, days)
}

// ParseDurationErr is like ParseDuration but returns an error for
// invalid input.
func ParseDurationErr(s string) (Duration, error) {
	if d := ParseDuration(s); d.IsValid() {
		return d, nil
	}
	return UnknownDur, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
}

// ParseAnyDuration accepts either the compact form of a duration, as
// per ParseDuration, or an ISO8601 duration, as per ParseISO8601Duration.
func ParseAnyDuration(s string) (Duration, error) {
	if len(s) > 0 && (s[0] == 'P' || (len(s) > 1 && s[0] == '-' && s[1] == 'P')) {
		return ParseISO8601Duration(s)
	}
	return ParseDurationErr(s)
}

func appendComponent(dst []byte, n int, u byte) []byte {
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, u)
}

func appendDuration(dst []byte, d Duration) ([]byte, bool) {
	if !d.IsValid() {
		return dst, false
	}
	lo, hi := unpackPair(d.u)
	var hu, lu byte
	switch d.typ {
	case MDDuration:
		hu, lu = 'm', 'd'
	case WDDuration:
		hu, lu = 'w', 'd'
	case YMDuration:
		hu, lu = 'y', 'm'
	}
	// The larger unit of WD and YM durations is always written since it
	// determines the type when parsed.
	if hi != 0 || d.typ != MDDuration {
		dst = appendComponent(dst, hi, hu)
	}
	if lo != 0 || (hi == 0 && d.typ == MDDuration) {
		dst = appendComponent(dst, lo, lu)
	}
	return dst, true
}

// AppendDuration appends the textual form of d, as accepted by
// ParseDuration, to dst. The larger unit is written first and zero
// components are omitted except for the weeks of a WD duration and the
// years of a YM duration, eg. 0w3d or 0y6m, and the days of a zero MD
// duration, 0d. dst is returned unchanged for the unknown duration.
func AppendDuration(dst []byte, d Duration) []byte {
	out, _ := appendDuration(dst, d)
	return out
}

// Strfdur writes the textual form of d into buf and returns the number
// of bytes written, or zero if d is the unknown duration or buf is too
// small.
func Strfdur(buf []byte, d Duration) int {
	var tmp [16]byte
	out, ok := appendDuration(tmp[:0], d)
	if !ok || len(out) > len(buf) {
		return 0
	}
	return copy(buf, out)
}

// String returns the textual form of d, see AppendDuration.
func (d Duration) String() string {
	if !d.IsValid() {
		return "unknown"
	}
	var tmp [16]byte
	return string(AppendDuration(tmp[:0], d))
}
