// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"cloudeng.io/datetools"
	"cloudeng.io/errors"
	"cloudeng.io/logging"
	"cloudeng.io/logging/ctxlog"
)

type CommonFlags struct {
	Config    string `subcmd:"config,,YAML file containing default settings"`
	LogLevel  string `subcmd:"log-level,warn,'log level: debug info warn or error'"`
	LogFormat string `subcmd:"log-format,text,'log format: text or json'"`
}

type InputFlags struct {
	InputFormat string `subcmd:"input-format,,format used to parse input dates"`
}

type OutputFlags struct {
	Calendar string `subcmd:"calendar,,'calendar for output dates: ymd ymcw daisy or bizda'"`
	Format   string `subcmd:"format,,format used to print dates"`
}

type todayFlags struct {
	CommonFlags
	OutputFlags
}

type convFlags struct {
	CommonFlags
	InputFlags
	OutputFlags
}

type addFlags struct {
	CommonFlags
	InputFlags
	OutputFlags
}

type diffFlags struct {
	CommonFlags
	InputFlags
	ISO8601 bool `subcmd:"iso8601,false,print the duration in ISO8601 format"`
}

type seqFlags struct {
	CommonFlags
	InputFlags
	OutputFlags
	Step         string `subcmd:"step,,'step between dates, defaults to 1d'"`
	SkipWeekends bool   `subcmd:"skip-weekends,false,omit Saturdays and Sundays"`
}

// tool implements the commands, its fields are replaced for testing.
type tool struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	clock  func() time.Time
}

var stdTool = &tool{
	stdin:  os.Stdin,
	stdout: os.Stdout,
	stderr: os.Stderr,
	clock:  time.Now,
}

// settings are the result of merging the command line flags with the
// config file.
type settings struct {
	calendar     datetools.DateType
	format       string
	inputFormat  string
	step         datetools.Duration
	skipWeekends bool
}

func (t *tool) logger(cl CommonFlags) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cl.LogLevel)); err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch cl.LogFormat {
	case "json":
		return slog.New(slog.NewJSONHandler(logging.NewJSONFormatter(t.stderr, "", "  "), opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(t.stderr, opts)), nil
	}
	return nil, fmt.Errorf("unsupported log format: %q", cl.LogFormat)
}

// setup configures logging and merges the config file, if any, with the
// flags, non-empty flag values take precedence.
func (t *tool) setup(ctx context.Context, cl CommonFlags, in InputFlags, out OutputFlags) (context.Context, settings, error) {
	logger, err := t.logger(cl)
	if err != nil {
		return ctx, settings{}, err
	}
	ctx = ctxlog.WithLogger(ctx, logger)
	var cfg Config
	if len(cl.Config) > 0 {
		if cfg, err = LoadConfig(cl.Config); err != nil {
			return ctx, settings{}, err
		}
		logger.Debug("loaded config", "file", cl.Config)
	}
	s := settings{
		format:       cfg.Format,
		inputFormat:  cfg.InputFormat,
		step:         cfg.Step,
		skipWeekends: cfg.SkipWeekends,
	}
	calendar := cfg.Calendar
	if len(out.Calendar) > 0 {
		calendar = out.Calendar
	}
	if len(calendar) > 0 {
		if s.calendar, err = datetools.ParseDateType(calendar); err != nil {
			return ctx, settings{}, err
		}
	}
	if len(out.Format) > 0 {
		s.format = out.Format
	}
	if len(in.InputFormat) > 0 {
		s.inputFormat = in.InputFormat
	}
	if !s.step.IsValid() {
		s.step = datetools.NewMD(0, 1)
	}
	return ctx, s, nil
}

func (s settings) parse(arg string) (datetools.Date, error) {
	return datetools.ParseDate(arg, s.inputFormat)
}

func (s settings) print(w io.Writer, d datetools.Date) error {
	if s.calendar != datetools.UnknownDate {
		d = datetools.Convert(s.calendar, d)
	}
	if !d.IsValid() {
		return fmt.Errorf("%w: no %v representation", datetools.ErrInvalidDate, s.calendar)
	}
	out := datetools.Format(s.format, d)
	if len(out) == 0 {
		return fmt.Errorf("failed to format %v using %q", d, s.format)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

func (t *tool) today(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*todayFlags)
	ctx, s, err := t.setup(ctx, fv.CommonFlags, InputFlags{}, fv.OutputFlags)
	if err != nil {
		return err
	}
	calendar := s.calendar
	if calendar == datetools.UnknownDate {
		calendar = datetools.YMDDate
	}
	d := datetools.TodayFrom(t.clock, calendar)
	ctxlog.Logger(ctx).Debug("today", "calendar", calendar, "date", d)
	return s.print(t.stdout, d)
}

func (t *tool) convOne(ctx context.Context, s settings, arg string) error {
	d, err := s.parse(arg)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("conv", "input", arg, "calendar", d.Type())
	if err := s.print(t.stdout, d); err != nil {
		return fmt.Errorf("%v: %w", arg, err)
	}
	return nil
}

func (t *tool) conv(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*convFlags)
	ctx, s, err := t.setup(ctx, fv.CommonFlags, fv.InputFlags, fv.OutputFlags)
	if err != nil {
		return err
	}
	if args[0] != "-" {
		return t.convOne(ctx, s, args[0])
	}
	errs := &errors.M{}
	sc := bufio.NewScanner(t.stdin)
	for sc.Scan() {
		line := sc.Text()
		if len(line) == 0 {
			continue
		}
		if err := t.convOne(ctx, s, line); err != nil {
			ctxlog.Logger(ctx).Warn("conv", "input", line, "error", err)
			errs.Append(err)
		}
	}
	errs.Append(sc.Err())
	return errs.Err()
}

func (t *tool) add(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*addFlags)
	ctx, s, err := t.setup(ctx, fv.CommonFlags, fv.InputFlags, fv.OutputFlags)
	if err != nil {
		return err
	}
	d, err := s.parse(args[0])
	if err != nil {
		return err
	}
	dur, err := datetools.ParseAnyDuration(args[1])
	if err != nil {
		return err
	}
	r := datetools.AddAs(s.calendar, d, dur)
	ctxlog.Logger(ctx).Debug("add", "date", d, "duration", dur, "result", r)
	if !r.IsValid() {
		return fmt.Errorf("%v + %v: %w", d, dur, datetools.ErrInvalidDate)
	}
	return s.print(t.stdout, r)
}

func (t *tool) diff(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*diffFlags)
	ctx, s, err := t.setup(ctx, fv.CommonFlags, fv.InputFlags, OutputFlags{})
	if err != nil {
		return err
	}
	errs := &errors.M{}
	d1, err := s.parse(args[0])
	errs.Append(err)
	d2, err := s.parse(args[1])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	dur := datetools.Diff(d1, d2)
	ctxlog.Logger(ctx).Debug("diff", "from", d1, "to", d2, "duration", dur)
	if !dur.IsValid() {
		return fmt.Errorf("%v .. %v: %w", d1, d2, datetools.ErrInvalidDuration)
	}
	out := dur.String()
	if fv.ISO8601 {
		if out = dur.ISO8601(); len(out) == 0 {
			return fmt.Errorf("%v has no ISO8601 representation", dur)
		}
	}
	_, err = fmt.Fprintln(t.stdout, out)
	return err
}

func isWeekend(d datetools.Date) bool {
	wd := datetools.Convert(datetools.YMDDate, d).Weekday()
	return wd == datetools.Saturday || wd == datetools.Sunday
}

func (t *tool) seq(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*seqFlags)
	ctx, s, err := t.setup(ctx, fv.CommonFlags, fv.InputFlags, fv.OutputFlags)
	if err != nil {
		return err
	}
	if len(fv.Step) > 0 {
		if s.step, err = datetools.ParseAnyDuration(fv.Step); err != nil {
			return err
		}
	}
	if s.step.IsZero() {
		return fmt.Errorf("step must not be zero")
	}
	s.skipWeekends = s.skipWeekends || fv.SkipWeekends
	errs := &errors.M{}
	from, err := s.parse(args[0])
	errs.Append(err)
	till, err := s.parse(args[1])
	errs.Append(err)
	if err := errs.Err(); err != nil {
		return err
	}
	logger := ctxlog.Logger(ctx)
	n := 0
	for d := range datetools.Sequence(from, till, s.step) {
		if s.skipWeekends && isWeekend(d) {
			continue
		}
		if err := s.print(t.stdout, d); err != nil {
			return err
		}
		n++
	}
	logger.Debug("seq", "from", from, "till", till, "step", s.step, "dates", n)
	return nil
}
