// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools_test

import (
	"testing"

	"cloudeng.io/datetools"
)

func TestAdd(t *testing.T) {
	ymd := datetools.NewYMD
	ymcw := datetools.NewYMCW
	daisy := datetools.NewDAISY
	md, wd, ym := datetools.NewMD, datetools.NewWD, datetools.NewYM
	ult := func(y int, m datetools.Month, bd int) datetools.Date {
		return datetools.NewBIZDA(y, m, bd, datetools.Before, datetools.Ultimo)
	}
	for i, tc := range []struct {
		d    datetools.Date
		dur  datetools.Duration
		want datetools.Date
	}{
		// Month arithmetic clamps the day of the month.
		{ymd(2024, 1, 31), md(1, 0), ymd(2024, 2, 29)},
		{ymd(2023, 1, 31), md(1, 0), ymd(2023, 2, 28)},
		{ymd(2024, 3, 31), md(-1, 0), ymd(2024, 2, 29)},
		{ymd(2024, 2, 29), ym(1, 0), ymd(2025, 2, 28)},
		{ymd(2024, 11, 30), ym(0, 3), ymd(2025, 2, 28)},
		// Months are added before days.
		{ymd(2024, 1, 31), md(1, 31), ymd(2024, 3, 31)},
		{ymd(2024, 1, 15), md(2, -20), ymd(2024, 2, 24)},
		{ymd(2024, 12, 25), wd(1, 0), ymd(2025, 1, 1)},
		{ymd(2024, 3, 1), md(0, -1), ymd(2024, 2, 29)},
		{ymd(2024, 3, 1), wd(-1, -1), ymd(2024, 2, 22)},
		{ymcw(2024, 1, 5, datetools.Wednesday), md(1, 0), ymcw(2024, 2, 4, datetools.Wednesday)},
		{ymcw(2024, 1, 3, datetools.Monday), wd(1, 0), ymcw(2024, 1, 4, datetools.Monday)},
		{ymcw(2024, 1, 3, datetools.Monday), md(0, 1), ymcw(2024, 1, 3, datetools.Tuesday)},
		{daisy(0), ym(0, 1), daisy(31)},
		{daisy(0), wd(2, 1), daisy(15)},
		// Days for BIZDA dates are business days.
		{ult(2023, 3, 2), md(0, 1), ult(2023, 3, 1)},
		{ult(2023, 3, 2), md(0, 3), ult(2023, 4, 20)},
		{ult(2023, 3, 2), md(0, -5), ult(2023, 3, 7)},
		{ult(2023, 3, 2), md(1, 0), ult(2023, 4, 2)},
		{ult(2023, 3, 2), wd(1, 0), ult(2023, 4, 18)},
		{datetools.NewBIZDA(2023, 3, 3, datetools.After, 15), md(0, 2), datetools.NewBIZDA(2023, 3, 5, datetools.After, 15)},
		{datetools.NewBIZDA(2023, 3, 3, datetools.After, 15), md(0, -4), ult(2023, 3, 13)},
		{datetools.NewBIZDA(2023, 1, 1, datetools.After, 31), md(1, 0), datetools.NewBIZDA(2023, 2, 1, datetools.After, 28)},
		// Out of range.
		{daisy(0), md(0, -1), datetools.Unknown},
		{ymd(4095, 12, 31), md(0, 1), datetools.Unknown},
		{ymd(0, 1, 1), ym(-1, 0), datetools.Unknown},
		{datetools.Unknown, md(0, 1), datetools.Unknown},
		{ymd(2024, 1, 1), datetools.UnknownDur, datetools.Unknown},
	} {
		if got, want := datetools.Add(tc.d, tc.dur), tc.want; got != want {
			t.Errorf("%v: %v + %v: got %v, want %v", i, tc.d, tc.dur, got, want)
		}
	}

	// The order in which units are applied is fixed.
	jan31 := ymd(2024, 1, 31)
	a := datetools.Add(datetools.Add(jan31, md(1, 0)), md(0, 31))
	b := datetools.Add(datetools.Add(jan31, md(0, 31)), md(1, 0))
	if got, want := a, ymd(2024, 3, 31); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := b, ymd(2024, 4, 2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := datetools.AddAs(datetools.YMDDate, ult(2023, 3, 2), md(0, 1)), ymd(2023, 3, 30); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datetools.AddAs(datetools.BIZDADate, ymd(2023, 3, 29), md(0, 1)), ult(2023, 3, 1); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiff(t *testing.T) {
	ymd := datetools.NewYMD
	md, wd := datetools.NewMD, datetools.NewWD
	ult := datetools.NewBIZDA(2023, 3, 2, datetools.Before, datetools.Ultimo)
	for i, tc := range []struct {
		d1, d2 datetools.Date
		want   datetools.Duration
	}{
		{ymd(2024, 1, 31), ymd(2024, 3, 1), md(1, 1)},
		{ymd(2024, 3, 1), ymd(2024, 1, 31), md(-1, -1)},
		{ymd(2024, 1, 30), ymd(2024, 3, 1), md(1, 1)},
		{ymd(2024, 1, 15), ymd(2024, 1, 15), md(0, 0)},
		{ymd(2023, 1, 15), ymd(2024, 3, 20), md(14, 5)},
		{ymd(2024, 1, 15), ymd(2024, 2, 14), md(0, 30)},
		{datetools.NewYMCW(2024, 1, 3, datetools.Monday), ymd(2024, 2, 20), md(1, 1)},
		{datetools.NewDAISY(0), datetools.NewDAISY(10), wd(1, 3)},
		{datetools.NewDAISY(10), ymd(1917, 1, 1), wd(-1, -3)},
		{ult, ymd(2023, 4, 27), md(1, 0)},
		{ult, ymd(2023, 4, 3), md(0, 3)},
		{ult, ymd(2023, 3, 27), md(0, -2)},
		{datetools.Unknown, ymd(2023, 3, 27), datetools.UnknownDur},
		{datetools.NewDAISY(0), datetools.NewDAISY(795863), datetools.UnknownDur},
	} {
		got := datetools.Diff(tc.d1, tc.d2)
		if got != tc.want {
			t.Errorf("%v: %v - %v: got %v, want %v", i, tc.d2, tc.d1, got, tc.want)
			continue
		}
		if !tc.want.IsValid() {
			continue
		}
		if r := datetools.Add(tc.d1, got); !r.Equal(tc.d2) {
			t.Errorf("%v: %v + %v: got %v, want %v", i, tc.d1, got, r, tc.d2)
		}
	}
}

func TestDiffProperties(t *testing.T) {
	// Monotonicity and exact inverses for day counts.
	for _, e1 := range []int{0, 1, 30315, 39140} {
		for _, n := range []int{0, 1, 6, 7, 8, 365, 1000} {
			d1, d2 := datetools.NewDAISY(e1), datetools.NewDAISY(e1+n)
			fwd, bwd := datetools.Diff(d1, d2), datetools.Diff(d2, d1)
			if fwd.Weeks() < 0 || fwd.Days() < 0 {
				t.Errorf("%v .. %v: got %v, want non-negative", d1, d2, fwd)
			}
			if got, want := bwd, fwd.Neg(); got != want {
				t.Errorf("%v .. %v: got %v, want %v", d1, d2, got, want)
			}
			if got, want := datetools.Add(d2, fwd.Neg()), d1; got != want {
				t.Errorf("got %v, want %v", got, want)
			}
		}
	}

	// Swapping the arguments negates the result and the earlier date plus
	// the forward difference is always the later date, business days
	// excepted for BIZDA.
	weekend := func(d datetools.Date) bool {
		wd := d.Weekday()
		return wd == datetools.Saturday || wd == datetools.Sunday
	}
	start := datetools.NewYMD(2023, 1, 1)
	for day := 0; day < 731; day++ {
		from := datetools.Add(start, datetools.NewMD(0, day))
		for span := 1; span < 120; span++ {
			till := datetools.Add(from, datetools.NewMD(0, span))
			for _, typ := range []datetools.DateType{datetools.YMDDate, datetools.YMCWDate, datetools.BIZDADate} {
				d1, d2 := datetools.Convert(typ, from), datetools.Convert(typ, till)
				if !d1.IsValid() || !d2.IsValid() {
					continue
				}
				fwd, bwd := datetools.Diff(d1, d2), datetools.Diff(d2, d1)
				if got, want := bwd, fwd.Neg(); got != want {
					t.Fatalf("%v .. %v: got %v, want %v", d1, d2, got, want)
				}
				if typ == datetools.BIZDADate && (weekend(from) || weekend(till)) {
					continue
				}
				if got := datetools.Add(d1, fwd); !got.Equal(d2) {
					t.Fatalf("%v + %v: got %v, want %v", d1, fwd, got, d2)
				}
			}
		}
	}

	// Add and Diff are inverses for durations that do not require
	// clamping.
	for _, d := range []datetools.Date{
		datetools.NewYMD(2024, 1, 15),
		datetools.NewYMD(2023, 2, 1),
		datetools.NewYMD(1999, 12, 10),
	} {
		for _, dur := range []datetools.Duration{
			datetools.NewMD(0, 0),
			datetools.NewMD(2, 10),
			datetools.NewMD(13, 3),
			datetools.NewMD(-5, -7),
			datetools.NewYM(1, 1),
		} {
			e := datetools.Add(d, dur)
			diff := datetools.Diff(d, e)
			if e.After(d) && (diff.Months() < 0 || diff.Days() < 0) {
				t.Errorf("%v .. %v: got %v, want non-negative", d, e, diff)
			}
			if got, want := datetools.Add(e, diff.Neg()), d; got != want {
				t.Errorf("%v + %v: got %v, want %v", d, dur, got, want)
			}
		}
	}
}
