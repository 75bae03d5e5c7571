// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetools provides calendar dates and durations that may be
// expressed in any of several interchangeable calendric systems together
// with conversion, arithmetic and formatting for them.
//
// A Date denotes a single civil day in one of the following calendars:
//
//   - YMD: year, month and day of month.
//   - YMCW: year, month, and the c'th occurrence of weekday w in that month,
//     eg. the 3rd Friday of March 2024.
//   - DAISY: the number of days since 1917-01-01, which is day 0.
//   - BIZDA: year, month and a number of business days before or after a
//     key day of that month, typically ultimo, the last day of the month.
//     Business days are Monday through Friday, holidays are not considered.
//
// Dates that fail any range or consistency check are represented by the
// Unknown date; functions never return errors for invalid calendar
// values, callers should check IsValid or Type instead. All conversions
// pivot through an epoch day count so that any valid date can be converted
// to any other calendar that is able to represent it.
//
// A Duration is a pair of independently signed components in one of three
// unit systems: months and days (MD), weeks and days (WD) or years and
// months (YM). Months are always added before days and the day of month is
// clamped to the length of the resulting month, so that adding one month
// to Jan 31 yields the last day of February.
//
// Dates and Durations are small values that are passed by copy. Every
// value has a fixed width binary encoding, see Date.Uint64 and
// Duration.Uint64, and a textual representation controlled by a
// format string, see Format and Parse. All functions in this package are
// safe for concurrent use.
package datetools
