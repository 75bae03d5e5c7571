// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cloudeng.io/datetools"
	"cloudeng.io/errors"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config represents the defaults that can be read from a YAML file, for
// example:
//
//	calendar: bizda
//	format: "%F"
//	input_format: "%d/%m/%Y"
//	step: 1w
//	skip_weekends: true
//
// Files with a .toml extension are read as TOML using the same keys.
type Config struct {
	Calendar     string             `yaml:"calendar" toml:"calendar"`
	Format       string             `yaml:"format" toml:"format"`
	InputFormat  string             `yaml:"input_format" toml:"input_format"`
	Step         datetools.Duration `yaml:"step" toml:"step"`
	SkipWeekends bool               `yaml:"skip_weekends" toml:"skip_weekends"`
}

// ParseConfig parses and validates a YAML configuration.
func ParseConfig(buf []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

// ParseTOMLConfig parses and validates a TOML configuration.
func ParseTOMLConfig(buf []byte) (Config, error) {
	var cfg Config
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.validate()
}

// LoadConfig reads and validates the configuration in filename, which
// is TOML if it has a .toml extension and YAML otherwise.
func LoadConfig(filename string) (Config, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, err
	}
	parser := ParseConfig
	if filepath.Ext(filename) == ".toml" {
		parser = ParseTOMLConfig
	}
	cfg, err := parser(buf)
	if err != nil {
		return Config{}, fmt.Errorf("%v: %w", filename, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	errs := &errors.M{}
	if len(c.Calendar) > 0 {
		_, err := datetools.ParseDateType(c.Calendar)
		errs.Append(err)
	}
	if len(c.Format) > 0 && len(datetools.Format(c.Format, datetools.NewYMD(2000, 1, 3))) == 0 {
		errs.Append(fmt.Errorf("invalid output format: %q", c.Format))
	}
	if c.Step.IsZero() {
		errs.Append(fmt.Errorf("step must not be zero"))
	}
	return errs.Err()
}
