// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import (
	"fmt"
	"strings"
)

// DateType identifies the calendar of a Date.
type DateType uint8

const (
	UnknownDate DateType = iota
	YMDDate
	YMCWDate
	DAISYDate
	BIZDADate
)

var dateTypeNames = []string{"unknown", "ymd", "ymcw", "daisy", "bizda"}

func (t DateType) String() string {
	if int(t) < len(dateTypeNames) {
		return dateTypeNames[t]
	}
	return fmt.Sprintf("DateType(%d)", t)
}

// ParseDateType parses the lower or upper case name of a calendar, ie.
// ymd, ymcw, daisy or bizda.
func ParseDateType(val string) (DateType, error) {
	lc := strings.ToLower(val)
	for i, n := range dateTypeNames[1:] {
		if n == lc {
			return DateType(i + 1), nil
		}
	}
	return UnknownDate, fmt.Errorf("invalid calendar: %q", val)
}

// Weekday as Sunday (0) through Saturday (6). Miracleday (7) is used
// for dates whose weekday is not known.
type Weekday uint8

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Miracleday
)

var weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Mir"}

func (w Weekday) String() string {
	if int(w) < len(weekdays) {
		return weekdays[w]
	}
	return fmt.Sprintf("Weekday(%d)", w)
}

// Direction determines whether BIZDA business days are counted before
// or after the key day.
type Direction uint8

const (
	Before Direction = iota
	After
)

func (d Direction) String() string {
	if d == After {
		return "after"
	}
	return "before"
}

// Ultimo is the BIZDA key day that refers to the last day of the month.
const Ultimo = 0

// maxDAISY is the DAISY value of 4095-12-31.
var maxDAISY = daysBeforeYear(MaxYear+1) - 1

// Date represents a single civil day in one of the supported calendars.
// The zero value is the Unknown date.
type Date struct {
	typ DateType
	u   uint32
}

// Unknown is the date used to represent invalid or unrepresentable
// dates.
var Unknown = Date{}

// NewYMD returns a YMD date, or Unknown if the year, month and day do not
// denote a valid day.
func NewYMD(year int, month Month, day int) Date {
	if !validYMD(year, month, day) {
		return Unknown
	}
	return Date{typ: YMDDate, u: uint32(packYMD(year, int(month), day))}
}

// NewYMCW returns a YMCW date for the count'th weekday of the month, or
// Unknown if that weekday does not occur count times in the month.
func NewYMCW(year int, month Month, count int, wd Weekday) Date {
	if _, ok := nthWeekday(year, month, count, wd); !ok {
		return Unknown
	}
	return Date{typ: YMCWDate, u: uint32(packYMCW(year, int(month), count, wd))}
}

// NewDAISY returns a DAISY date for the given number of days since
// 1917-01-01, or Unknown if days is negative or beyond 4095-12-31.
func NewDAISY(days int) Date {
	if days < 0 || days > maxDAISY {
		return Unknown
	}
	return Date{typ: DAISYDate, u: uint32(days)}
}

// NewBIZDA returns a BIZDA date for bd business days before or after the
// key day of the given month. A keyday of Ultimo refers to the last day
// of the month. Unknown is returned if the key day does not exist in the
// month, bd is not in the range 0-31 or the resulting day is outside of
// the supported range of years.
func NewBIZDA(year int, month Month, bd int, dir Direction, keyday int) Date {
	if bd < 0 || bd > 31 || dir > After || keyday < 0 {
		return Unknown
	}
	if !validYear(year) || month < 1 || month > 12 || keyday > DaysInMonth(year, month) {
		return Unknown
	}
	v := packBizda(year, int(month), bd, dir, keyday)
	if _, ok := resolveBIZDA(v); !ok {
		return Unknown
	}
	return Date{typ: BIZDADate, u: uint32(v)}
}

// Type returns the calendar of the date.
func (d Date) Type() DateType {
	return d.typ
}

// IsValid returns true if d is not the Unknown date.
func (d Date) IsValid() bool {
	return d.typ != UnknownDate
}

// YMD returns the packed YMD fields, or zero if d is not a YMD date.
func (d Date) YMD() YMD {
	if d.typ != YMDDate {
		return 0
	}
	return YMD(d.u)
}

// YMCW returns the packed YMCW fields, or zero if d is not a YMCW date.
func (d Date) YMCW() YMCW {
	if d.typ != YMCWDate {
		return 0
	}
	return YMCW(d.u)
}

// DAISY returns the day count, or zero if d is not a DAISY date.
func (d Date) DAISY() DAISY {
	if d.typ != DAISYDate {
		return 0
	}
	return DAISY(d.u)
}

// BIZDA returns the packed BIZDA fields, or zero if d is not a BIZDA date.
func (d Date) BIZDA() BIZDA {
	if d.typ != BIZDADate {
		return 0
	}
	return BIZDA(d.u)
}

// Packed returns the 32 bit packed representation of the date's fields
// in its own calendar.
func (d Date) Packed() uint32 {
	return d.u
}

// Uint64 returns a fixed width encoding of the date that includes its
// calendar.
func (d Date) Uint64() uint64 {
	return uint64(d.typ)<<32 | uint64(d.u)
}

// DateFromUint64 is the inverse of Date.Uint64. Unknown is returned for
// any value that does not encode a valid date.
func DateFromUint64(v uint64) Date {
	if v>>40 != 0 {
		return Unknown
	}
	return DateFromPacked(DateType(v>>32), uint32(v))
}

// DateFromPacked returns the date for the given calendar and packed
// fields as returned by Date.Packed. Unknown is returned if any of the
// fields are out of range or any of the unused bits are set.
func DateFromPacked(typ DateType, u uint32) Date {
	switch typ {
	case YMDDate:
		v := YMD(u)
		if u>>21 != 0 {
			return Unknown
		}
		return NewYMD(v.Year(), v.Month(), v.Day())
	case YMCWDate:
		v := YMCW(u)
		if u>>22 != 0 {
			return Unknown
		}
		return NewYMCW(v.Year(), v.Month(), v.Count(), v.Weekday())
	case DAISYDate:
		return NewDAISY(int(u))
	case BIZDADate:
		v := BIZDA(u)
		if u>>27 != 0 {
			return Unknown
		}
		return NewBIZDA(v.Year(), v.Month(), v.BusinessDays(), v.Direction(), v.KeyDay())
	}
	return Unknown
}

// Compare returns -1, 0 or +1 according to whether d is before, the same
// day as, or after o regardless of their calendars. The Unknown date
// sorts before all valid dates.
func (d Date) Compare(o Date) int {
	a, aok := d.epoch()
	b, bok := o.epoch()
	switch {
	case !aok && !bok:
		return 0
	case !aok:
		return -1
	case !bok:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Before returns true if d is a day before o.
func (d Date) Before(o Date) bool {
	return d.Compare(o) < 0
}

// After returns true if d is a day after o.
func (d Date) After(o Date) bool {
	return d.Compare(o) > 0
}

// Equal returns true if d and o denote the same civil day, which may be
// the case for dates in different calendars.
func (d Date) Equal(o Date) bool {
	return d.IsValid() && o.IsValid() && d.Compare(o) == 0
}
