// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import "strconv"

// Format directives. The directives are not compatible with strftime(3).
//
//	%F  alias for %Y-%m-%d
//	%Y  year, 4 digits
//	%m  month, 2 digits
//	%d  day of the month, 2 digits
//	%c  occurrence of the weekday within the month (YMCW), 1 digit
//	%w  weekday, 0 (Sunday) to 6 (Saturday), 1 digit
//	%D  days since 1917-01-01 (DAISY)
//	%b  business days before or after the key day (BIZDA), 2 digits
//	%B  b for before, a for after (BIZDA)
//	%x  key day (BIZDA), ult for ultimo, otherwise 2 digits
//	%j  day of the year as per Date.YearDay, 3 digits, formatting only
//	%%  a literal %
const (
	YMDFormat   = "%Y-%m-%d"
	YMCWFormat  = "%Y-%m-%c-%w"
	BIZDAFormat = "%Y-%m-%b%B%x"
	DAISYFormat = "%D"
)

// DefaultFormat returns the format used for dates of the given calendar
// when no format is specified.
func DefaultFormat(typ DateType) string {
	switch typ {
	case YMDDate:
		return YMDFormat
	case YMCWDate:
		return YMCWFormat
	case BIZDADate:
		return BIZDAFormat
	case DAISYDate:
		return DAISYFormat
	}
	return ""
}

// views lazily converts a date to the calendars needed to render
// each directive.
type views struct {
	d                Date
	ymd, ymcw, bizda Date
	daisy            Date
}

func (v *views) view(typ DateType, cache *Date) Date {
	if v.d.typ == typ {
		return v.d
	}
	if !cache.IsValid() {
		*cache = Convert(typ, v.d)
	}
	return *cache
}

func (v *views) yearMonth() (int, Month, bool) {
	switch v.d.typ {
	case YMCWDate, BIZDADate:
		year, month := v.d.yearMonth()
		return year, month, true
	}
	ymd := v.view(YMDDate, &v.ymd).YMD()
	return ymd.Year(), ymd.Month(), ymd != 0
}

func appendPadded(dst []byte, n, width int) []byte {
	var buf [12]byte
	s := strconv.AppendInt(buf[:0], int64(n), 10)
	for i := len(s); i < width; i++ {
		dst = append(dst, '0')
	}
	return append(dst, s...)
}

// appendFormat appends the formatted date to dst, it returns false if
// the format contains an unsupported directive or d cannot be rendered
// by one of its directives.
func appendFormat(dst []byte, format string, d Date) ([]byte, bool) {
	if !d.IsValid() {
		return dst, false
	}
	if len(format) == 0 {
		format = DefaultFormat(d.typ)
	}
	v := &views{d: d}
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			dst = append(dst, c)
			continue
		}
		if i++; i >= len(format) {
			return dst, false
		}
		switch format[i] {
		case 'F':
			year, month, ok := v.yearMonth()
			day := d.MonthDay()
			if !ok || day == 0 {
				return dst, false
			}
			dst = appendPadded(dst, year, 4)
			dst = append(dst, '-')
			dst = appendPadded(dst, int(month), 2)
			dst = append(dst, '-')
			dst = appendPadded(dst, day, 2)
		case 'Y':
			year, _, ok := v.yearMonth()
			if !ok {
				return dst, false
			}
			dst = appendPadded(dst, year, 4)
		case 'm':
			_, month, ok := v.yearMonth()
			if !ok {
				return dst, false
			}
			dst = appendPadded(dst, int(month), 2)
		case 'd':
			day := d.MonthDay()
			if day == 0 {
				return dst, false
			}
			dst = appendPadded(dst, day, 2)
		case 'c':
			ymcw := v.view(YMCWDate, &v.ymcw).YMCW()
			if ymcw == 0 {
				return dst, false
			}
			dst = appendPadded(dst, ymcw.Count(), 1)
		case 'w':
			ymcw := v.view(YMCWDate, &v.ymcw).YMCW()
			if ymcw == 0 {
				return dst, false
			}
			dst = appendPadded(dst, int(ymcw.Weekday()), 1)
		case 'D':
			daisy := v.view(DAISYDate, &v.daisy)
			if !daisy.IsValid() {
				return dst, false
			}
			dst = appendPadded(dst, int(daisy.DAISY()), 1)
		case 'b', 'B', 'x':
			bizda := v.view(BIZDADate, &v.bizda)
			if !bizda.IsValid() {
				return dst, false
			}
			dst = appendBizdaField(dst, format[i], bizda.BIZDA())
		case 'j':
			yd := d.YearDay()
			if yd == 0 {
				return dst, false
			}
			dst = appendPadded(dst, yd, 3)
		case '%':
			dst = append(dst, '%')
		default:
			return dst, false
		}
	}
	return dst, true
}

func appendBizdaField(dst []byte, directive byte, v BIZDA) []byte {
	switch directive {
	case 'b':
		return appendPadded(dst, v.BusinessDays(), 2)
	case 'B':
		if v.Direction() == After {
			return append(dst, 'a')
		}
		return append(dst, 'b')
	}
	if v.KeyDay() == Ultimo {
		return append(dst, "ult"...)
	}
	return appendPadded(dst, v.KeyDay(), 2)
}

// AppendFormat appends the textual representation of d according to
// format to dst. The default format for d's calendar is used if format is
// empty. dst is returned unchanged if d is invalid, the format contains
// an unsupported directive or d cannot be rendered by one of the
// directives, for example %D for a date before 1917.
func AppendFormat(dst []byte, format string, d Date) []byte {
	out, ok := appendFormat(dst, format, d)
	if !ok {
		return dst
	}
	return out
}

// Strfd formats d according to format into buf and returns the number of
// bytes written. Zero is returned, and buf is left unchanged, if buf is
// too small to hold the result or d cannot be formatted, see AppendFormat.
func Strfd(buf []byte, format string, d Date) int {
	var tmp [32]byte
	out, ok := appendFormat(tmp[:0], format, d)
	if !ok || len(out) > len(buf) {
		return 0
	}
	return copy(buf, out)
}

// Format returns the textual representation of d according to format,
// or the empty string if d cannot be formatted.
func Format(format string, d Date) string {
	var tmp [32]byte
	out, ok := appendFormat(tmp[:0], format, d)
	if !ok {
		return ""
	}
	return string(out)
}

// String returns d in the default format for its calendar.
func (d Date) String() string {
	if !d.IsValid() {
		return "unknown"
	}
	return Format("", d)
}
