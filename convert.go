// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

// Convert returns d converted to the target calendar. Converting a date
// to its own calendar returns it unchanged, as does a target of
// UnknownDate. Unknown is returned if d is not valid or the day it
// denotes cannot be represented in the target calendar, eg. dates
// before 1917-01-01 have no DAISY representation and weekends have no
// BIZDA representation other than as the key day.
func Convert(target DateType, d Date) Date {
	if !d.IsValid() {
		return Unknown
	}
	if target == d.typ || target == UnknownDate {
		return d
	}
	e, ok := d.epoch()
	if !ok {
		return Unknown
	}
	return dateFromEpoch(target, e)
}

// epoch returns the signed number of days since 1917-01-01 for any valid
// date.
func (d Date) epoch() (int, bool) {
	switch d.typ {
	case YMDDate:
		v := YMD(d.u)
		return epochDays(v.Year(), v.Month(), v.Day()), true
	case YMCWDate:
		v := YMCW(d.u)
		day, ok := nthWeekday(v.Year(), v.Month(), v.Count(), v.Weekday())
		if !ok {
			return 0, false
		}
		return epochDays(v.Year(), v.Month(), day), true
	case DAISYDate:
		return int(d.u), true
	case BIZDADate:
		return resolveBIZDA(BIZDA(d.u))
	}
	return 0, false
}

// dateFromEpoch returns the date in the target calendar for the given
// number of days since the epoch.
func dateFromEpoch(target DateType, e int) Date {
	if target == DAISYDate {
		return NewDAISY(e)
	}
	year, month, day, ok := fromEpochDays(e)
	if !ok {
		return Unknown
	}
	switch target {
	case YMDDate:
		return NewYMD(year, month, day)
	case YMCWDate:
		return NewYMCW(year, month, (day-1)/7+1, weekdayFromEpoch(e))
	case BIZDADate:
		return bizdaFromEpoch(e, year, month, Ultimo, Before)
	}
	return Unknown
}

// nthWeekday returns the day of the month of the count'th occurrence of
// wd in the given month.
func nthWeekday(year int, month Month, count int, wd Weekday) (int, bool) {
	if !validYear(year) || month < 1 || month > 12 || wd > Saturday || count < 1 || count > 5 {
		return 0, false
	}
	first := weekdayFromEpoch(epochDays(year, month, 1))
	day := 1 + floorMod(int(wd)-int(first), 7) + (count-1)*7
	if day > DaysInMonth(year, month) {
		return 0, false
	}
	return day, true
}

// lastWeekdayCount returns the number of times that wd occurs in the
// given month.
func lastWeekdayCount(year int, month Month, wd Weekday) int {
	for c := 5; c > 1; c-- {
		if _, ok := nthWeekday(year, month, c, wd); ok {
			return c
		}
	}
	return 1
}

// Business days are computed relative to the epoch, which is a Monday, so
// that days 0-4 mod 7 are Monday through Friday.

func isBusinessDay(e int) bool {
	return floorMod(e, 7) < 5
}

// businessDaysBefore returns the signed number of business days in
// [0, e).
func businessDaysBefore(e int) int {
	return floorDiv(e, 7)*5 + min(floorMod(e, 7), 5)
}

// nthBusinessDay returns the day of the n'th business day counting from
// the epoch, ie. the inverse of businessDaysBefore.
func nthBusinessDay(n int) int {
	return floorDiv(n, 5)*7 + floorMod(n, 5)
}

// addBusinessDays returns the day n business days after (or before for
// negative n) e. Zero returns e even if it is not a business day.
func addBusinessDays(e, n int) int {
	switch {
	case n > 0:
		return nthBusinessDay(businessDaysBefore(e+1) + n - 1)
	case n < 0:
		return nthBusinessDay(businessDaysBefore(e) + n)
	}
	return e
}

// businessDaysBetween returns the number of business days to add to from
// to reach to, which must be a business day for the result to be exact.
func businessDaysBetween(from, to int) int {
	if to >= from {
		return businessDaysBefore(to+1) - businessDaysBefore(from+1)
	}
	return businessDaysBefore(to) - businessDaysBefore(from)
}

func keyDayEpoch(year int, month Month, keyday int) int {
	if keyday == Ultimo {
		keyday = DaysInMonth(year, month)
	}
	return epochDays(year, month, keyday)
}

// resolveBIZDA returns the epoch day denoted by v.
func resolveBIZDA(v BIZDA) (int, bool) {
	k := keyDayEpoch(v.Year(), v.Month(), v.KeyDay())
	n := v.BusinessDays()
	if v.Direction() == Before {
		n = -n
	}
	e := addBusinessDays(k, n)
	if _, _, _, ok := fromEpochDays(e); !ok {
		return 0, false
	}
	return e, true
}

// bizdaFromEpoch returns the BIZDA date that denotes day e relative to
// the key day and direction in the given month. Unknown is returned if e
// is on the wrong side of the key day, is too far from it, or is not a
// business day.
func bizdaFromEpoch(e, year int, month Month, keyday int, dir Direction) Date {
	if keyday > DaysInMonth(year, month) {
		return Unknown
	}
	k := keyDayEpoch(year, month, keyday)
	bd := 0
	switch {
	case e == k:
	case !isBusinessDay(e):
		return Unknown
	case dir == Before && e < k:
		bd = businessDaysBefore(k) - businessDaysBefore(e)
	case dir == After && e > k:
		bd = businessDaysBefore(e+1) - businessDaysBefore(k+1)
	default:
		return Unknown
	}
	return NewBIZDA(year, month, bd, dir, keyday)
}
