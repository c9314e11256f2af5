// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

import (
	"math/bits"
	"strings"
	"unicode/utf8"

	"github.com/mmtext/text/internal/scan"
)

// Parse returns the integer denoted by the numeral phrase s.
//
// White space is insignificant between terms. Each unit is consumed at its
// first occurrence, largest unit first, together with the count phrase
// immediately before it; a missing count means one. The count of the
// largest unit may itself be a phrase over the smaller units. Whatever
// remains must be a digit word, a ones term marked with the table's ones
// marker, or a run of digit glyphs.
//
// Parse does not recognize the shorthand forms written by a Converter
// created with the Shorthand option.
func (c *Converter) Parse(s string) (uint64, error) {
	text := scan.Normalize(s)
	if text == "" {
		return 0, &FormatError{Input: s}
	}
	if text == c.table.Zero() {
		return 0, nil
	}
	n, residual, ok := c.table.parse(text, c.table.units)
	if !ok {
		return 0, &FormatError{Input: s, Residual: residual}
	}
	return n, nil
}

// Validate reports whether s is a valid numeral phrase. The returned error,
// if any, is a *FormatError.
func (c *Converter) Validate(s string) error {
	_, err := c.Parse(s)
	return err
}

// parse consumes the given units from text. On failure it returns the text
// it could not interpret.
func (t *Table) parse(text string, units []Unit) (total uint64, residual string, ok bool) {
	for _, u := range units {
		if u.Value == 1 {
			continue
		}
		i, end := t.index(text, u)
		if i < 0 {
			continue
		}
		start := scan.RunStart(text, i)
		count, ok := uint64(1), true
		if phrase := text[start:i]; phrase != "" {
			if u.Value == t.units[0].Value {
				count, residual, ok = t.parse(phrase, t.units[1:])
			} else {
				count, ok = t.digit(phrase)
				residual = phrase
			}
			if !ok {
				return 0, residual, false
			}
		}
		if total, ok = addMul(total, count, u.Value); !ok {
			return 0, text, false
		}
		text = strings.TrimSpace(text[:start] + text[scan.SkipSpace(text, end):])
	}
	if text == "" {
		return total, "", true
	}
	ones, ok := t.ones(text)
	if !ok {
		return 0, text, false
	}
	if total, ok = addMul(total, ones, 1); !ok {
		return 0, text, false
	}
	return total, "", true
}

// index returns the bounds of the first occurrence of the word of u in text,
// with or without the connector. It returns -1 if there is none.
func (t *Table) index(text string, u Unit) (start, end int) {
	start, end = -1, -1
	if i := scan.Index(text, u.joined); i >= 0 {
		start, end = i, i+len(u.joined)
	}
	if i := scan.Index(text, u.Word); i >= 0 && (start < 0 || i < start) {
		start, end = i, i+len(u.Word)
	}
	return start, end
}

// digit resolves a single-digit count: a digit word or one digit glyph.
func (t *Table) digit(s string) (uint64, bool) {
	if d, ok := t.WordDigit(s); ok {
		return uint64(d), true
	}
	if r, size := utf8.DecodeRuneInString(s); size == len(s) {
		if d, ok := t.GlyphDigit(r); ok {
			return uint64(d), true
		}
	}
	return 0, false
}

// ones interprets the text left after all units were consumed.
func (t *Table) ones(s string) (uint64, bool) {
	if d, ok := t.WordDigit(s); ok {
		return uint64(d), true
	}
	if m := t.onesMarker; m != "" && strings.HasSuffix(s, m) {
		head := strings.TrimSpace(strings.TrimSuffix(s, m))
		if head == "" {
			return 1, true
		}
		if d, ok := t.WordDigit(head); ok {
			return uint64(d), true
		}
		return 0, false
	}
	return t.glyphRun(s)
}

// glyphRun parses s as a base-10 literal of digit glyphs, most significant
// first.
func (t *Table) glyphRun(s string) (n uint64, ok bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		d, ok := t.GlyphDigit(r)
		if !ok {
			return 0, false
		}
		if n, ok = addMul(uint64(d), n, 10); !ok {
			return 0, false
		}
	}
	return n, true
}

// addMul returns a + b*c, reporting false on overflow.
func addMul(a, b, c uint64) (uint64, bool) {
	hi, lo := bits.Mul64(b, c)
	if hi != 0 {
		return 0, false
	}
	sum, carry := bits.Add64(a, lo, 0)
	return sum, carry == 0
}
