// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

// The packed layouts below store each field at a fixed bit offset within
// a uint32, least significant field first. Bits above the last field
// are always zero.

// YMD is a packed year, month and day of month.
//
//	bits 0-4: day, 5-8: month, 9-20: year
type YMD uint32

func packYMD(year, month, day int) YMD {
	return YMD(uint32(year)&0xfff<<9 | uint32(month)&0xf<<5 | uint32(day)&0x1f)
}

// Year returns the year, 0-4095.
func (v YMD) Year() int { return int(v >> 9 & 0xfff) }

// Month returns the month, 1-12.
func (v YMD) Month() Month { return Month(v >> 5 & 0xf) }

// Day returns the day of the month, 1-31.
func (v YMD) Day() int { return int(v & 0x1f) }

// YMCW is a packed year, month, count and weekday representing the
// c'th w-day of the month.
//
//	bits 0-2: weekday, 3-5: count, 6-9: month, 10-21: year
type YMCW uint32

func packYMCW(year, month, count int, wd Weekday) YMCW {
	return YMCW(uint32(year)&0xfff<<10 | uint32(month)&0xf<<6 | uint32(count)&0x7<<3 | uint32(wd)&0x7)
}

// Year returns the year, 0-4095.
func (v YMCW) Year() int { return int(v >> 10 & 0xfff) }

// Month returns the month, 1-12.
func (v YMCW) Month() Month { return Month(v >> 6 & 0xf) }

// Count returns the occurrence of the weekday within the month, 1-5.
func (v YMCW) Count() int { return int(v >> 3 & 0x7) }

// Weekday returns the weekday.
func (v YMCW) Weekday() Weekday { return Weekday(v & 0x7) }

// DAISY is the number of days since 1917-01-01.
type DAISY uint32

// BIZDA is a packed year, month, business day offset, direction and
// key day.
//
//	bits 0-4: key day, 5: direction, 6-10: business days, 11-14: month, 15-26: year
type BIZDA uint32

func packBizda(year, month, bd int, dir Direction, keyday int) BIZDA {
	return BIZDA(uint32(year)&0xfff<<15 | uint32(month)&0xf<<11 | uint32(bd)&0x1f<<6 | uint32(dir)&0x1<<5 | uint32(keyday)&0x1f)
}

// Year returns the year, 0-4095.
func (v BIZDA) Year() int { return int(v >> 15 & 0xfff) }

// Month returns the month, 1-12.
func (v BIZDA) Month() Month { return Month(v >> 11 & 0xf) }

// BusinessDays returns the number of business days from the key day.
func (v BIZDA) BusinessDays() int { return int(v >> 6 & 0x1f) }

// Direction returns whether the business days are counted before or after
// the key day.
func (v BIZDA) Direction() Direction { return Direction(v >> 5 & 0x1) }

// KeyDay returns the day of the month that business days are counted
// from, Ultimo (0) refers to the last day of the month.
func (v BIZDA) KeyDay() int { return int(v & 0x1f) }

// The duration layouts store two signed 16 bit components, the smaller
// unit in the low half.

func packPair(lo, hi int) uint32 {
	return uint32(uint16(int16(hi)))<<16 | uint32(uint16(int16(lo)))
}

func unpackPair(u uint32) (lo, hi int) {
	return int(int16(uint16(u))), int(int16(uint16(u >> 16)))
}

func fitsInt16(v int) bool {
	return v >= -1<<15 && v < 1<<15
}
