// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Dates and durations are stored as their fixed width Uint64 encoding
// so that they round trip exactly, including their calendar. NULL is
// used for the Unknown date and duration.

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if !d.IsValid() {
		return nil, nil
	}
	return int64(d.Uint64()), nil
}

// Scan implements sql.Scanner. In addition to the integer encoding
// written by Value it accepts any of the default text formats and
// time.Time values, which are interpreted as YMD dates.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Unknown
		return nil
	case int64:
		r := DateFromUint64(uint64(v))
		if !r.IsValid() {
			return fmt.Errorf("%w: %#x", ErrInvalidDate, v)
		}
		*d = r
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case time.Time:
		*d = FromTime(v, YMDDate)
		return nil
	}
	return fmt.Errorf("%w: %T for Date", ErrUnsupportedScanType, src)
}

// Value implements driver.Valuer.
func (d Duration) Value() (driver.Value, error) {
	if !d.IsValid() {
		return nil, nil
	}
	return int64(d.Uint64()), nil
}

// Scan implements sql.Scanner for values written by Value and durations
// in their textual form.
func (d *Duration) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = UnknownDur
		return nil
	case int64:
		r := DurationFromUint64(uint64(v))
		if !r.IsValid() {
			return fmt.Errorf("%w: %#x", ErrInvalidDuration, v)
		}
		*d = r
		return nil
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	}
	return fmt.Errorf("%w: %T for Duration", ErrUnsupportedScanType, src)
}
