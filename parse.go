// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import "fmt"

// defaultFormats are tried in order when Parse is called without a
// format.
var defaultFormats = []string{YMDFormat, YMCWFormat, BIZDAFormat, DAISYFormat}

type field uint16

const (
	fieldYear field = 1 << iota
	fieldMonth
	fieldDay
	fieldCount
	fieldWeekday
	fieldDAISY
	fieldBusinessDays
	fieldDirection
	fieldKeyDay
)

const (
	ymdFields   = fieldDay
	ymcwFields  = fieldCount | fieldWeekday
	bizdaFields = fieldBusinessDays | fieldDirection | fieldKeyDay
	daisyFields = fieldDAISY
)

// parsed holds the fields extracted from a string by a format.
type parsed struct {
	set              field
	year, month, day int
	count, wd        int
	daisy            int
	bd, keyday       int
	dir              Direction
}

// Parse parses value according to format, see the Format directives. If
// format is empty then the default formats for YMD, YMCW, BIZDA and DAISY
// dates are tried in that order. The calendar of the result is determined
// by the directives used: %d for YMD, %c and %w for YMCW, %b, %B and %x
// for BIZDA and %D for DAISY. Unknown is returned if value does not
// match format exactly, if the format mixes directives from different
// calendars, if it lacks any of the fields needed by its calendar, or if
// the fields do not denote a valid date.
func Parse(value, format string) Date {
	if len(format) == 0 {
		for _, f := range defaultFormats {
			if d := parse(value, f); d.IsValid() {
				return d
			}
		}
		return Unknown
	}
	return parse(value, format)
}

// ParseDate is like Parse but returns an error that describes why value
// could not be parsed.
func ParseDate(value, format string) (Date, error) {
	if d := Parse(value, format); d.IsValid() {
		return d, nil
	}
	if len(format) == 0 {
		return Unknown, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return Unknown, fmt.Errorf("%w: %q does not match format %q", ErrInvalidDate, value, format)
}

func parse(value, format string) Date {
	p, ok := scan(value, format)
	if !ok {
		return Unknown
	}
	return p.date()
}

func scan(value, format string) (parsed, bool) {
	var p parsed
	pos := 0
	digits := func(maxWidth int) (int, bool) {
		n, w := 0, 0
		for pos < len(value) && w < maxWidth && value[pos] >= '0' && value[pos] <= '9' {
			n = n*10 + int(value[pos]-'0')
			pos++
			w++
		}
		return n, w > 0
	}
	literal := func(s string) bool {
		if len(value)-pos < len(s) || value[pos:pos+len(s)] != s {
			return false
		}
		pos += len(s)
		return true
	}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			if !literal(format[i : i+1]) {
				return p, false
			}
			continue
		}
		if i++; i >= len(format) {
			return p, false
		}
		var ok bool
		switch format[i] {
		case 'F':
			if p.year, ok = digits(4); !ok || !literal("-") {
				return p, false
			}
			if p.month, ok = digits(2); !ok || !literal("-") {
				return p, false
			}
			p.day, ok = digits(2)
			p.set |= fieldYear | fieldMonth | fieldDay
		case 'Y':
			p.year, ok = digits(4)
			p.set |= fieldYear
		case 'm':
			p.month, ok = digits(2)
			p.set |= fieldMonth
		case 'd':
			p.day, ok = digits(2)
			p.set |= fieldDay
		case 'c':
			p.count, ok = digits(1)
			p.set |= fieldCount
		case 'w':
			p.wd, ok = digits(1)
			p.set |= fieldWeekday
		case 'D':
			p.daisy, ok = digits(7)
			p.set |= fieldDAISY
		case 'b':
			p.bd, ok = digits(2)
			p.set |= fieldBusinessDays
		case 'B':
			switch {
			case literal("b"):
				p.dir, ok = Before, true
			case literal("a"):
				p.dir, ok = After, true
			}
			p.set |= fieldDirection
		case 'x':
			if literal("ult") {
				p.keyday, ok = Ultimo, true
			} else {
				p.keyday, ok = digits(2)
			}
			p.set |= fieldKeyDay
		case '%':
			ok = literal("%")
		}
		if !ok {
			return p, false
		}
	}
	return p, pos == len(value)
}

func (p parsed) calendar() DateType {
	typ := UnknownDate
	for _, c := range []struct {
		fields field
		typ    DateType
	}{
		{ymdFields, YMDDate},
		{ymcwFields, YMCWDate},
		{bizdaFields, BIZDADate},
		{daisyFields, DAISYDate},
	} {
		if p.set&c.fields == 0 {
			continue
		}
		if typ != UnknownDate {
			return UnknownDate
		}
		typ = c.typ
	}
	return typ
}

func (p parsed) has(f field) bool {
	return p.set&f == f
}

func (p parsed) date() Date {
	switch p.calendar() {
	case YMDDate:
		if !p.has(fieldYear | fieldMonth | fieldDay) {
			return Unknown
		}
		return NewYMD(p.year, Month(p.month), p.day)
	case YMCWDate:
		if !p.has(fieldYear | fieldMonth | fieldCount | fieldWeekday) {
			return Unknown
		}
		return NewYMCW(p.year, Month(p.month), p.count, Weekday(p.wd))
	case BIZDADate:
		if !p.has(fieldYear | fieldMonth | fieldBusinessDays) {
			return Unknown
		}
		// A missing key day is ultimo and a missing direction is before,
		// both of which are the zero values.
		return NewBIZDA(p.year, Month(p.month), p.bd, p.dir, p.keyday)
	case DAISYDate:
		if p.set&(fieldYear|fieldMonth) != 0 {
			return Unknown
		}
		return NewDAISY(p.daisy)
	}
	return Unknown
}
