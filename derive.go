// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

// Weekday returns the day of the week for YMD and YMCW dates and
// Miracleday for all other calendars; convert DAISY and BIZDA dates
// to YMD first to obtain their weekday.
func (d Date) Weekday() Weekday {
	switch d.typ {
	case YMDDate:
		v := YMD(d.u)
		return weekdayFromEpoch(epochDays(v.Year(), v.Month(), v.Day()))
	case YMCWDate:
		return YMCW(d.u).Weekday()
	}
	return Miracleday
}

// YearDay returns the position of the date within its year with the
// notion of a month removed. For YMD dates this is the day of the year,
// 1-366, for YMCW dates it is the n'th occurrence of its weekday within
// the year and for BIZDA dates it is the day of the year of the day
// it denotes. Zero is returned for DAISY dates, which have no notion of a
// year, and for the Unknown date.
func (d Date) YearDay() int {
	switch d.typ {
	case YMDDate:
		v := YMD(d.u)
		return cumulativeDays(v.Year())[v.Month()-1] + v.Day()
	case YMCWDate:
		v := YMCW(d.u)
		day, _ := nthWeekday(v.Year(), v.Month(), v.Count(), v.Weekday())
		return (cumulativeDays(v.Year())[v.Month()-1]+day-1)/7 + 1
	case BIZDADate:
		return Convert(YMDDate, d).YearDay()
	}
	return 0
}

// MonthDay returns the day of the month of the day denoted by d, or zero
// for the Unknown date.
func (d Date) MonthDay() int {
	if d.typ == YMDDate {
		return YMD(d.u).Day()
	}
	return Convert(YMDDate, d).YMD().Day()
}
