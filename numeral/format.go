// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

// A Converter formats and parses numeral phrases using a Table. A Converter
// is immutable and safe for concurrent use.
type Converter struct {
	table     *Table
	shorthand bool
}

// An Option configures a Converter.
type Option func(c *Converter)

// Shorthand enables the lakh-first forms for round multiples of one, ten
// and one hundred million. See ShorthandFor.
func Shorthand(enabled bool) Option {
	return func(c *Converter) { c.shorthand = enabled }
}

// New returns a Converter for t.
func New(t *Table, opts ...Option) *Converter {
	c := &Converter{table: t}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Table returns the table used by c.
func (c *Converter) Table() *Table { return c.table }

// Format returns the numeral phrase for n.
//
// The phrase is in NFC: the connector precedes a unit's final asat
// (ထောင့် is U+1004 U+1037 U+103A), so it may differ byte-wise from text
// that writes the connector after the asat. Parse accepts both orders.
func (c *Converter) Format(n uint64) string {
	return string(c.Append(nil, n))
}

// Append appends the numeral phrase for n to dst and returns the extended
// buffer.
func (c *Converter) Append(dst []byte, n uint64) []byte {
	if n == 0 {
		return append(dst, c.table.Zero()...)
	}
	if c.shorthand {
		if b, ok := c.appendShorthand(dst, n); ok {
			return b
		}
	}
	return c.table.appendPhrase(dst, n)
}

// appendPhrase writes the place-value decomposition of n > 0. Counts of ten
// or more, which only occur for the largest unit, are decomposed
// recursively.
func (t *Table) appendPhrase(dst []byte, n uint64) []byte {
	rem := n
	for _, u := range t.units {
		count := rem / u.Value
		if count == 0 {
			continue
		}
		rem %= u.Value
		if count < 10 {
			dst = append(dst, t.words[count]...)
		} else {
			dst = t.appendPhrase(dst, count)
		}
		switch {
		case u.Value == 1:
		case u.Joins && rem > 0:
			dst = append(dst, u.joined...)
		default:
			dst = append(dst, u.Word...)
		}
	}
	return dst
}
