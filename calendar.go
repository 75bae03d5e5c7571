// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import "cloudeng.io/datetime"

const (
	// MinYear and MaxYear bound the years that can be represented.
	MinYear = 0
	MaxYear = 4095

	// EpochYear is the year of DAISY day 0, 1917-01-01.
	EpochYear = 1917
)

var (
	// cumulative days before each month, the final entry is the length of
	// the year.
	cumDays     [13]int
	cumDaysLeap [13]int

	// leap years in 1..EpochYear-1.
	epochLeaps = leapsThrough(EpochYear - 1)
)

func init() {
	for m := Month(1); m <= 12; m++ {
		cumDays[m] = cumDays[m-1] + int(datetime.DaysInMonth(2023, m))
		cumDaysLeap[m] = cumDaysLeap[m-1] + int(datetime.DaysInMonth(2024, m))
	}
}

// Month as an int, 1-12.
type Month = datetime.Month

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// DaysInMonth returns the number of days in the given month for the given
// year, or zero if the month is not in the range 1-12.
func DaysInMonth(year int, month Month) int {
	if month < 1 || month > 12 {
		return 0
	}
	return int(datetime.DaysInMonth(year, month))
}

func cumulativeDays(year int) *[13]int {
	if IsLeap(year) {
		return &cumDaysLeap
	}
	return &cumDays
}

func validYear(year int) bool {
	return year >= MinYear && year <= MaxYear
}

func validYMD(year int, month Month, day int) bool {
	return validYear(year) && day >= 1 && day <= DaysInMonth(year, month)
}

// leapsThrough returns the number of leap years in 1..year, and -1 for
// year -1 to account for year 0 being a leap year.
func leapsThrough(year int) int {
	if year < 0 {
		return -1
	}
	return year/4 - year/100 + year/400
}

// daysBeforeYear returns the number of days between Jan 1 of year and
// the epoch, negative for years before EpochYear.
func daysBeforeYear(year int) int {
	return 365*(year-EpochYear) + leapsThrough(year-1) - epochLeaps
}

// epochDays returns the signed number of days since the epoch for a
// valid year, month and day.
func epochDays(year int, month Month, day int) int {
	return daysBeforeYear(year) + cumulativeDays(year)[month-1] + day - 1
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// fromEpochDays is the inverse of epochDays, ok is false if the
// resulting year is outside of MinYear..MaxYear.
func fromEpochDays(days int) (year int, month Month, day int, ok bool) {
	// 146097 days per 400 years gives an estimate that is off by at most one.
	year = EpochYear + floorDiv(days*400, 146097)
	for daysBeforeYear(year) > days {
		year--
	}
	for daysBeforeYear(year+1) <= days {
		year++
	}
	if !validYear(year) {
		return 0, 0, 0, false
	}
	yd := days - daysBeforeYear(year)
	cum := cumulativeDays(year)
	m := 12
	for cum[m-1] > yd {
		m--
	}
	return year, Month(m), yd - cum[m-1] + 1, true
}

// weekdayFromEpoch returns the weekday for the given number of days since
// the epoch, 1917-01-01 was a Monday.
func weekdayFromEpoch(days int) Weekday {
	return Weekday(floorMod(days+1, 7))
}

// addMonths adds n months to year/month.
func addMonths(year int, month Month, n int) (int, Month) {
	mi := year*12 + int(month) - 1 + n
	return floorDiv(mi, 12), Month(floorMod(mi, 12) + 1)
}
