// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

// Add returns the date that is dur after d in d's calendar. Months, and
// years as multiples of 12 months, are added before days and the day of
// month is clamped to the length of the resulting month rather than
// spilling over into the next month. For YMCW dates the count is clamped
// to the last occurrence of the weekday in the resulting month and for
// BIZDA dates the key day is clamped to the last day of the month.
//
// Days are calendar days, except for BIZDA dates where they are business
// days. Similarly, a week is 7 days except for BIZDA dates where it is 5
// business days.
//
// Unknown is returned if either d or dur are invalid or the result is not
// representable in d's calendar.
func Add(d Date, dur Duration) Date {
	if !d.IsValid() || !dur.IsValid() {
		return Unknown
	}
	return d.add(dur.split(weekLength(d.typ)))
}

// weekLength returns the number of days in a week for the given calendar.
func weekLength(typ DateType) int {
	if typ == BIZDADate {
		return 5
	}
	return 7
}

func (d Date) add(months, days int) Date {
	if months != 0 {
		d = d.addMonths(months)
	}
	if days != 0 && d.IsValid() {
		d = d.addDays(days)
	}
	return d
}

// AddAs converts d to the target calendar and then adds dur to it.
func AddAs(target DateType, d Date, dur Duration) Date {
	return Add(Convert(target, d), dur)
}

func (d Date) yearMonth() (int, Month) {
	switch d.typ {
	case YMDDate:
		v := YMD(d.u)
		return v.Year(), v.Month()
	case YMCWDate:
		v := YMCW(d.u)
		return v.Year(), v.Month()
	case BIZDADate:
		v := BIZDA(d.u)
		return v.Year(), v.Month()
	}
	e, _ := d.epoch()
	year, month, _, _ := fromEpochDays(e)
	return year, month
}

func (d Date) addMonths(n int) Date {
	switch d.typ {
	case YMDDate:
		v := YMD(d.u)
		year, month := addMonths(v.Year(), v.Month(), n)
		if !validYear(year) {
			return Unknown
		}
		return NewYMD(year, month, min(v.Day(), DaysInMonth(year, month)))
	case YMCWDate:
		v := YMCW(d.u)
		year, month := addMonths(v.Year(), v.Month(), n)
		if !validYear(year) {
			return Unknown
		}
		wd := v.Weekday()
		return NewYMCW(year, month, min(v.Count(), lastWeekdayCount(year, month, wd)), wd)
	case DAISYDate:
		return Convert(DAISYDate, Convert(YMDDate, d).addMonths(n))
	case BIZDADate:
		v := BIZDA(d.u)
		year, month := addMonths(v.Year(), v.Month(), n)
		if !validYear(year) {
			return Unknown
		}
		keyday := min(v.KeyDay(), DaysInMonth(year, month))
		return NewBIZDA(year, month, v.BusinessDays(), v.Direction(), keyday)
	}
	return Unknown
}

func (d Date) addDays(n int) Date {
	e, ok := d.epoch()
	if !ok {
		return Unknown
	}
	if d.typ != BIZDADate {
		return dateFromEpoch(d.typ, e+n)
	}
	v := BIZDA(d.u)
	r := addBusinessDays(e, n)
	year, month, _, ok := fromEpochDays(r)
	if !ok {
		return Unknown
	}
	// Prefer the original key day and direction, first relative to the
	// original month and then the month of the result.
	if b := bizdaFromEpoch(r, v.Year(), v.Month(), v.KeyDay(), v.Direction()); b.IsValid() {
		return b
	}
	if b := bizdaFromEpoch(r, year, month, v.KeyDay(), v.Direction()); b.IsValid() {
		return b
	}
	return bizdaFromEpoch(r, year, month, Ultimo, Before)
}

// Diff returns the duration from d1 to d2 using the units of d1's
// calendar. The duration is positive if d2 is after d1 and Diff(d2, d1)
// is always the negation of Diff(d1, d2) for dates of the same calendar.
// The months component is counted forward from the earlier of the two
// dates, so Add(d1, Diff(d1, d2)) is the same day as d2 whenever d1 is
// the earlier date, or when no clamping at the end of a month is involved.
//
// For DAISY dates the result is a WD duration with days normalized to
// less than a week. For all other calendars it is an MD duration with
// the largest number of whole months that can be added to the earlier
// date without passing the later one and the remaining days; for BIZDA
// dates the remaining days are business days.
//
// The unknown duration is returned if either date is invalid or the
// result does not fit in a duration's 16 bit components, for example
// DAISY dates more than 32767 weeks apart.
func Diff(d1, d2 Date) Duration {
	e1, ok1 := d1.epoch()
	e2, ok2 := d2.epoch()
	if !ok1 || !ok2 {
		return UnknownDur
	}
	if d1.typ == DAISYDate {
		n := e2 - e1
		return NewWD(n/7, n%7)
	}
	if e2 < e1 {
		if from := Convert(d1.typ, d2); from.IsValid() {
			return diffFrom(from, e2, e1).Neg()
		}
	}
	return diffFrom(d1, e1, e2)
}

// diffFrom returns the months and days from d1, whose epoch day is
// e1, to e2 with the months counted using d1's month arithmetic.
func diffFrom(d1 Date, e1, e2 int) Duration {
	months := monthsBetween(d1, e1, e2)
	base := e1
	if months != 0 {
		base, _ = d1.addMonths(months).epoch()
	}
	if d1.typ == BIZDADate {
		return NewMD(months, businessDaysBetween(base, e2))
	}
	return NewMD(months, e2-base)
}

// monthsBetween returns the largest number of months, in the direction of
// e2, that can be added to d1 without passing e2.
func monthsBetween(d1 Date, e1, e2 int) int {
	at := func(n int) (int, bool) {
		return d1.addMonths(n).epoch()
	}
	y1, m1 := d1.yearMonth()
	y2, m2, _, _ := fromEpochDays(e2)
	months := (y2-y1)*12 + int(m2) - int(m1)
	if e2 >= e1 {
		months = max(months, 0)
		for months > 0 {
			if t, ok := at(months); ok && t <= e2 {
				break
			}
			months--
		}
		for {
			if t, ok := at(months + 1); !ok || t > e2 {
				return months
			}
			months++
		}
	}
	months = min(months, 0)
	for months < 0 {
		if t, ok := at(months); ok && t >= e2 {
			break
		}
		months++
	}
	for {
		if t, ok := at(months - 1); !ok || t < e2 {
			return months
		}
		months--
	}
}
