// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import "time"

// Today returns the current date, in the local time zone, in the
// requested calendar. YMD is used for UnknownDate. Unknown is returned
// if today has no representation in the calendar, eg. a weekend for
// BIZDA.
func Today(typ DateType) Date {
	return TodayFrom(time.Now, typ)
}

// TodayFrom is like Today but obtains the current time from the supplied
// clock.
func TodayFrom(clock func() time.Time, typ DateType) Date {
	return FromTime(clock(), typ)
}

// FromTime returns the date of t, in t's location, in the requested
// calendar.
func FromTime(t time.Time, typ DateType) Date {
	d := NewYMD(t.Year(), Month(t.Month()), t.Day())
	if typ == UnknownDate {
		return d
	}
	return Convert(typ, d)
}

// Time returns midnight at the start of d in the specified location,
// or the zero time.Time for the Unknown date.
func (d Date) Time(loc *time.Location) time.Time {
	v := Convert(YMDDate, d).YMD()
	if v == 0 {
		return time.Time{}
	}
	return time.Date(v.Year(), time.Month(v.Month()), v.Day(), 0, 0, 0, 0, loc)
}
