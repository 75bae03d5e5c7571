// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools_test

import (
	"testing"

	"cloudeng.io/datetools"
)

func TestDerived(t *testing.T) {
	ult := datetools.NewBIZDA(2023, 3, 2, datetools.Before, datetools.Ultimo)
	for i, tc := range []struct {
		d        datetools.Date
		weekday  datetools.Weekday
		yearDay  int
		monthDay int
	}{
		{datetools.NewYMD(2024, 2, 29), datetools.Thursday, 60, 29},
		{datetools.NewYMD(1917, 1, 1), datetools.Monday, 1, 1},
		{datetools.NewYMD(2023, 12, 31), datetools.Sunday, 365, 31},
		{datetools.NewYMD(2024, 12, 31), datetools.Tuesday, 366, 31},
		{datetools.NewYMCW(2024, 1, 3, datetools.Monday), datetools.Monday, 3, 15},
		{datetools.NewYMCW(2024, 2, 1, datetools.Thursday), datetools.Thursday, 5, 1},
		{datetools.NewDAISY(39140), datetools.Miracleday, 0, 29},
		{ult, datetools.Miracleday, 88, 29},
		{datetools.Unknown, datetools.Miracleday, 0, 0},
	} {
		if got, want := tc.d.Weekday(), tc.weekday; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.d, got, want)
		}
		if got, want := tc.d.YearDay(), tc.yearDay; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.d, got, want)
		}
		if got, want := tc.d.MonthDay(), tc.monthDay; got != want {
			t.Errorf("%v: %v: got %v, want %v", i, tc.d, got, want)
		}
	}

	// The weekday of DAISY and BIZDA dates is available via conversion.
	if got, want := datetools.Convert(datetools.YMDDate, ult).Weekday(), datetools.Wednesday; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
