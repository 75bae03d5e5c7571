// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import "fmt"

// DurationType identifies the units of a Duration.
type DurationType uint8

const (
	UnknownDuration DurationType = iota
	MDDuration                   // months and days
	WDDuration                   // weeks and days
	YMDuration                   // years and months
)

var durationTypeNames = []string{"unknown", "md", "wd", "ym"}

func (t DurationType) String() string {
	if int(t) < len(durationTypeNames) {
		return durationTypeNames[t]
	}
	return fmt.Sprintf("DurationType(%d)", t)
}

// Duration is a pair of independently signed components whose units are
// determined by its type. Each component is limited to the range of an
// int16. The zero value is the unknown duration.
type Duration struct {
	typ DurationType
	u   uint32
}

// UnknownDur is the duration used to represent invalid durations.
var UnknownDur = Duration{}

func newDuration(typ DurationType, lo, hi int) Duration {
	if !fitsInt16(lo) || !fitsInt16(hi) {
		return UnknownDur
	}
	return Duration{typ: typ, u: packPair(lo, hi)}
}

// NewMD returns a duration of months and days.
func NewMD(months, days int) Duration {
	return newDuration(MDDuration, days, months)
}

// NewWD returns a duration of weeks and days.
func NewWD(weeks, days int) Duration {
	return newDuration(WDDuration, days, weeks)
}

// NewYM returns a duration of years and months.
func NewYM(years, months int) Duration {
	return newDuration(YMDuration, months, years)
}

// Type returns the units of the duration.
func (d Duration) Type() DurationType {
	return d.typ
}

// IsValid returns true if d is not the unknown duration.
func (d Duration) IsValid() bool {
	return d.typ != UnknownDuration
}

// IsZero returns true if all of the components of a valid duration are
// zero.
func (d Duration) IsZero() bool {
	return d.IsValid() && d.u == 0
}

// Years returns the years component of a YM duration.
func (d Duration) Years() int {
	if d.typ != YMDuration {
		return 0
	}
	_, hi := unpackPair(d.u)
	return hi
}

// Months returns the months component of an MD or YM duration.
func (d Duration) Months() int {
	lo, hi := unpackPair(d.u)
	switch d.typ {
	case MDDuration:
		return hi
	case YMDuration:
		return lo
	}
	return 0
}

// Weeks returns the weeks component of a WD duration.
func (d Duration) Weeks() int {
	if d.typ != WDDuration {
		return 0
	}
	_, hi := unpackPair(d.u)
	return hi
}

// Days returns the days component of an MD or WD duration.
func (d Duration) Days() int {
	if d.typ != MDDuration && d.typ != WDDuration {
		return 0
	}
	lo, _ := unpackPair(d.u)
	return lo
}

// Neg returns the duration with each of its components negated. The
// type of the duration is unchanged.
func (d Duration) Neg() Duration {
	if !d.IsValid() {
		return UnknownDur
	}
	lo, hi := unpackPair(d.u)
	return newDuration(d.typ, -lo, -hi)
}

// Normalize returns an equivalent duration with days carried into weeks
// for WD durations and months carried into years for YM durations, the
// components of the result always share the same sign. MD durations are
// returned unchanged since the number of days in a month varies.
func (d Duration) Normalize() Duration {
	lo, hi := unpackPair(d.u)
	switch d.typ {
	case WDDuration:
		total := hi*7 + lo
		return NewWD(total/7, total%7)
	case YMDuration:
		total := hi*12 + lo
		return NewYM(total/12, total%12)
	}
	return d
}

// Packed returns the 32 bit packed representation of the duration's
// components.
func (d Duration) Packed() uint32 {
	return d.u
}

// Uint64 returns a fixed width encoding of the duration that includes
// its type.
func (d Duration) Uint64() uint64 {
	return uint64(d.typ)<<32 | uint64(d.u)
}

// DurationFromUint64 is the inverse of Duration.Uint64.
func DurationFromUint64(v uint64) Duration {
	typ := DurationType(v >> 32)
	if v>>40 != 0 || typ == UnknownDuration || typ > YMDuration {
		return UnknownDur
	}
	return Duration{typ: typ, u: uint32(v)}
}

// split returns the number of months and days of d, weeks are returned as
// days using the supplied number of days per week.
func (d Duration) split(daysPerWeek int) (months, days int) {
	lo, hi := unpackPair(d.u)
	switch d.typ {
	case MDDuration:
		return hi, lo
	case WDDuration:
		return 0, hi*daysPerWeek + lo
	case YMDuration:
		return hi*12 + lo, 0
	}
	return 0, 0
}
