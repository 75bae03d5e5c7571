// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import "cloudeng.io/errors"

var (
	// ErrInvalidDate is returned when a string or stored value cannot be
	// interpreted as a valid date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidDuration is returned when a string or stored value cannot
	// be interpreted as a valid duration.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrUnsupportedScanType is returned by the sql.Scanner implementations
	// for source values of an unsupported type.
	ErrUnsupportedScanType = errors.New("unsupported scan type")
	// ErrInvalidISO8601Duration is returned for strings that are not
	// date-only ISO 8601 durations.
	ErrInvalidISO8601Duration = errors.New("invalid ISO8601 duration")
)
