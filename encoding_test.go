// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetools_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"cloudeng.io/datetools"
	"gopkg.in/yaml.v3"
)

type schedule struct {
	Start datetools.Date     `yaml:"start" json:"start"`
	Every datetools.Duration `yaml:"every" json:"every"`
}

func TestYAML(t *testing.T) {
	for i, tc := range []struct {
		input string
		want  schedule
	}{
		{"start: 2024-02-29\nevery: 1w5d\n", schedule{datetools.NewYMD(2024, 2, 29), datetools.NewWD(1, 5)}},
		{"start: 2023-03-02bult\nevery: P1M\n", schedule{datetools.NewBIZDA(2023, 3, 2, datetools.Before, datetools.Ultimo), datetools.NewMD(1, 0)}},
		{"start: '30315'\nevery: -1y6m\n", schedule{datetools.NewDAISY(30315), datetools.NewYM(-1, 6)}},
		{"start: 2024-01-3-1\nevery: 0d\n", schedule{datetools.NewYMCW(2024, 1, 3, datetools.Monday), datetools.NewMD(0, 0)}},
	} {
		var s schedule
		if err := yaml.Unmarshal([]byte(tc.input), &s); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := s, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
		buf, err := yaml.Marshal(s)
		if err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		var r schedule
		if err := yaml.Unmarshal(buf, &r); err != nil {
			t.Errorf("%v: %v", i, err)
			continue
		}
		if got, want := r, tc.want; got != want {
			t.Errorf("%v: got %v, want %v", i, got, want)
		}
	}

	var s schedule
	err := yaml.Unmarshal([]byte("start: 2023-02-29\n"), &s)
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("unexpected or missing error: %v", err)
	}
	if _, err := yaml.Marshal(schedule{}); err == nil {
		t.Errorf("expected an error for unknown dates")
	}
}

func TestText(t *testing.T) {
	s := schedule{datetools.NewYMD(2024, 2, 29), datetools.NewWD(1, 5)}
	buf, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(buf), `{"start":"2024-02-29","every":"1w5d"}`; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	var r schedule
	if err := json.Unmarshal(buf, &r); err != nil {
		t.Fatal(err)
	}
	if got, want := r, s; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	err = json.Unmarshal([]byte(`{"start":"2024-02-29","every":"1q"}`), &r)
	if !errors.Is(err, datetools.ErrInvalidDuration) {
		t.Errorf("unexpected or missing error: %v", err)
	}
}
