// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalText implements encoding.TextMarshaler using the default format
// for the date's calendar.
func (d Date) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, ErrInvalidDate
	}
	return AppendFormat(nil, "", d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, any of the default
// formats are accepted.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseDate(string(text), "")
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (any, error) {
	if !d.IsValid() {
		return nil, ErrInvalidDate
	}
	return d.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler, see UnmarshalText.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseDate(value.Value, "")
	if err != nil {
		return fmt.Errorf("line %v: %w", value.Line, err)
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, ErrInvalidDuration
	}
	return AppendDuration(nil, d), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, see
// ParseAnyDuration.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := ParseAnyDuration(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	if !d.IsValid() {
		return nil, ErrInvalidDuration
	}
	return d.String(), nil
}

// UnmarshalYAML accepts both the compact form, eg. 1w5d, and ISO8601
// durations, eg. P1W5D.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParseAnyDuration(value.Value)
	if err != nil {
		return fmt.Errorf("line %v: %w", value.Line, err)
	}
	*d = v
	return nil
}
