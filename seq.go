// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import "iter"

// Sequence returns an iterator that yields from, from+step, from+2*step
// and so on for as long as the dates do not pass till. Each date is
// computed by adding a multiple of step to from, rather than step to
// the previous date, so that clamping at the end of short months does not
// accumulate, eg. stepping monthly from the 31st of January yields the
// last day of every month. A negative step yields a descending sequence.
// Dates that are not representable end the sequence. A zero step yields
// from alone.
func Sequence(from, till Date, step Duration) iter.Seq[Date] {
	return func(yield func(Date) bool) {
		if !from.IsValid() || !till.IsValid() || !step.IsValid() {
			return
		}
		next := Add(from, step)
		descending := next.IsValid() && next.Before(from)
		// Multiples of step are not packed into a Duration since they
		// soon exceed its 16 bit components.
		months, days := step.split(weekLength(from.typ))
		for i := 0; ; i++ {
			d := from.add(i*months, i*days)
			if !d.IsValid() {
				return
			}
			if (descending && d.Before(till)) || (!descending && d.After(till)) {
				return
			}
			if !yield(d) {
				return
			}
			if step.IsZero() {
				return
			}
		}
	}
}
