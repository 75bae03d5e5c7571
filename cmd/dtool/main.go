// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"cloudeng.io/cmdutil/subcmd"
)

var cmdSet *subcmd.CommandSet

func init() {
	todayCmd := subcmd.NewCommand("today",
		subcmd.MustRegisterFlagStruct(&todayFlags{}, nil, nil),
		stdTool.today, subcmd.ExactlyNumArguments(0))
	todayCmd.Document(`print today's date in the requested calendar.`)

	convCmd := subcmd.NewCommand("conv",
		subcmd.MustRegisterFlagStruct(&convFlags{}, nil, nil),
		stdTool.conv, subcmd.ExactlyNumArguments(1))
	convCmd.Document(`convert a date to another calendar and/or format, use - to read dates, one per line, from stdin.`)

	addCmd := subcmd.NewCommand("add",
		subcmd.MustRegisterFlagStruct(&addFlags{}, nil, nil),
		stdTool.add, subcmd.ExactlyNumArguments(2))
	addCmd.Document(`add a duration, eg. 1w5d, 2m-3d or P1Y6M, to a date.`)

	diffCmd := subcmd.NewCommand("diff",
		subcmd.MustRegisterFlagStruct(&diffFlags{}, nil, nil),
		stdTool.diff, subcmd.ExactlyNumArguments(2))
	diffCmd.Document(`print the duration from the first date to the second using the units of the first date's calendar.`)

	seqCmd := subcmd.NewCommand("seq",
		subcmd.MustRegisterFlagStruct(&seqFlags{}, nil, nil),
		stdTool.seq, subcmd.ExactlyNumArguments(2))
	seqCmd.Document(`print the dates from the first date until the second in steps of the specified duration.`)

	cmdSet = subcmd.NewCommandSet(todayCmd, convCmd, addCmd, diffCmd, seqCmd)
	cmdSet.Document(`convert, compare and perform arithmetic on dates in multiple calendars.

Dates may be represented in one of four calendars:

  ymd    year, month and day of the month, eg. 2024-02-29
  ymcw   year, month and the count'th weekday of the month, eg. 2024-01-3-1
         for the 3rd Monday of January 2024
  daisy  days since 1917-01-01, eg. 30315
  bizda  business days before or after a key day of the month, eg.
         2023-03-02bult for 2 business days before the last day of
         March 2023 or 2023-03-03a15 for 3 business days after the 15th

Input dates are parsed using any of the default formats for these calendars
unless --input-format is specified. Output formats use the directives %F, %Y,
%m, %d, %c, %w, %D, %b, %B, %x, %j and %%.

Durations are written as a sequence of <int><unit> tokens where unit is one of
y, m, w or d, eg. 1w5d, or as ISO8601 durations, eg. P1W5D.

Default settings for the calendar, formats and sequence step may be read from a
YAML file specified via --config.
`)
}

func main() {
	cmdSet.MustDispatch(context.Background())
}
