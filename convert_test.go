// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools_test

import (
	"testing"

	"cloudeng.io/datetools"
)

func TestConvert(t *testing.T) {
	ymd := datetools.NewYMD
	ymcw := datetools.NewYMCW
	bizda := datetools.NewBIZDA
	daisy := datetools.NewDAISY
	for i, tc := range []struct {
		in   datetools.Date
		typ  datetools.DateType
		want datetools.Date
	}{
		{bizda(2023, 3, 2, datetools.Before, datetools.Ultimo), datetools.YMDDate, ymd(2023, 3, 29)},
		{ymd(2023, 3, 29), datetools.BIZDADate, bizda(2023, 3, 2, datetools.Before, datetools.Ultimo)},
		{bizda(2023, 3, 3, datetools.After, 15), datetools.YMDDate, ymd(2023, 3, 20)},
		{ymd(2023, 4, 28), datetools.BIZDADate, bizda(2023, 4, 1, datetools.Before, datetools.Ultimo)},
		// Ultimo may fall on a weekend, other weekend days have no
		// representation.
		{ymd(2023, 4, 30), datetools.BIZDADate, bizda(2023, 4, 0, datetools.Before, datetools.Ultimo)},
		{ymd(2023, 4, 29), datetools.BIZDADate, datetools.Unknown},
		{ymd(2024, 1, 15), datetools.YMCWDate, ymcw(2024, 1, 3, datetools.Monday)},
		{ymcw(2024, 1, 5, datetools.Wednesday), datetools.YMDDate, ymd(2024, 1, 31)},
		{ymd(2000, 1, 1), datetools.DAISYDate, daisy(30315)},
		{daisy(39140), datetools.YMDDate, ymd(2024, 2, 29)},
		{daisy(0), datetools.YMCWDate, ymcw(1917, 1, 1, datetools.Monday)},
		{ymd(1916, 12, 31), datetools.DAISYDate, datetools.Unknown},
		{ymd(2024, 2, 29), datetools.YMDDate, ymd(2024, 2, 29)},
		{ymd(2024, 2, 29), datetools.UnknownDate, ymd(2024, 2, 29)},
		{datetools.Unknown, datetools.YMDDate, datetools.Unknown},
	} {
		if got, want := datetools.Convert(tc.typ, tc.in), tc.want; got != want {
			t.Errorf("%v: %v -> %v: got %v, want %v", i, tc.in, tc.typ, got, want)
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	start := datetools.NewDAISY(0)
	end := datetools.NewYMD(2200, 12, 31)
	n := 0
	for d := start; !d.After(end); d = datetools.Add(d, datetools.NewMD(0, 1)) {
		n++
		ymd := datetools.Convert(datetools.YMDDate, d)
		for _, typ := range []datetools.DateType{datetools.YMCWDate, datetools.DAISYDate, datetools.BIZDADate} {
			c := datetools.Convert(typ, ymd)
			if !c.IsValid() {
				if typ == datetools.BIZDADate {
					continue
				}
				t.Fatalf("%v: failed to convert to %v", ymd, typ)
			}
			if got, want := datetools.Convert(datetools.YMDDate, c), ymd; got != want {
				t.Fatalf("%v: %v: got %v, want %v", typ, c, got, want)
			}
			if !c.Equal(d) {
				t.Fatalf("%v: %v is not the same day as %v", typ, c, d)
			}
		}
		if wd := ymd.Weekday(); wd != datetools.Saturday && wd != datetools.Sunday {
			if !datetools.Convert(datetools.BIZDADate, ymd).IsValid() {
				t.Fatalf("%v: business day has no BIZDA representation", ymd)
			}
		}
	}
	if got, want := n, 103729; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
