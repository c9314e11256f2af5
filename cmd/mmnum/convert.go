// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/rangetable"

	"github.com/mmtext/text/internal/scan"
	"github.com/mmtext/text/numeral"
)

var (
	errNumber = errors.New("please enter a valid number (e.g., 100,000)")
	errPhrase = errors.New("invalid Burmese number format (e.g., တစ်သိန်း နှစ်ထောင်)")
	errFailed = errors.New("some lines could not be converted")
)

// separators are the digit group separators removed from plain numbers.
var separators = rangetable.New(',', '\'', '_', ' ', '\u00a0', '\u2009', '\u202f')

var cmdFormat = &Command{
	Run:       runFormat,
	UsageLine: "format number...",
	Short:     "write numbers as Burmese numeral phrases",
}

var cmdParse = &Command{
	Run:       runParse,
	UsageLine: "parse phrase...",
	Short:     "read Burmese numeral phrases as numbers",
}

var cmdFilter = &Command{
	Run:       runFilter,
	UsageLine: "filter",
	Short:     "convert each line of standard input",
}

// parseNumber reads a plain number written with ASCII or Burmese digits and
// optional group separators.
func parseNumber(s string) (uint64, error) {
	t := transform.Chain(numeral.FromGlyphs(numeral.Burmese), runes.Remove(runes.In(separators)))
	s, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil || s == "" {
		return 0, errNumber
	}
	for _, r := range s {
		if r < '0' || '9' < r {
			return 0, errNumber
		}
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errNumber
	}
	return n, nil
}

// isPhrase reports whether s contains Myanmar letters and should be read as
// a numeral phrase rather than a plain number.
func isPhrase(s string) bool {
	for _, r := range scan.Runs(s) {
		if r.Class == scan.Letter {
			return true
		}
	}
	return false
}

func (cfg *config) format(w io.Writer, s string) error {
	n, err := parseNumber(s)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, cfg.conv.Format(n))
	return err
}

func (cfg *config) parse(w io.Writer, s string) error {
	n, err := cfg.conv.Parse(s)
	if errors.Is(err, numeral.ErrInvalidFormat) {
		return errPhrase
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, cfg.printer.Sprintf("%d", n))
	return err
}

func runFormat(cfg *config, args []string) error {
	for _, a := range args {
		if err := cfg.format(cfg.out, a); err != nil {
			return fmt.Errorf("%q: %v", a, err)
		}
	}
	return nil
}

func runParse(cfg *config, args []string) error {
	for _, a := range args {
		if err := cfg.parse(cfg.out, a); err != nil {
			return fmt.Errorf("%q: %v", a, err)
		}
	}
	return nil
}

func runFilter(cfg *config, args []string) error {
	return cfg.filter(cfg.out, cfg.in)
}

// filter converts each non-blank line of r, writing one result line per
// input line to w. Lines that fail are reported on w and the remaining
// lines are still converted.
func (cfg *config) filter(w io.Writer, r io.Reader) error {
	failed := false
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			continue
		}
		var err error
		if isPhrase(line) {
			err = cfg.parse(w, line)
		} else {
			err = cfg.format(w, line)
		}
		if err != nil {
			failed = true
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
	if err := s.Err(); err != nil {
		return err
	}
	if failed {
		return errFailed
	}
	return nil
}
