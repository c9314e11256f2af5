// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// A Unit is a place value and the word that names it.
type Unit struct {
	Value uint64
	Word  string

	// Joins marks units that take the connector when a non-zero lower term
	// follows them.
	Joins bool

	joined string // NFC of Word followed by the connector
}

// TableConfig holds the data from which a Table is built.
type TableConfig struct {
	// Words and Glyphs hold the word and the digit glyph of the digits 0
	// through 9. Words[0] is the word for zero.
	Words  [10]string
	Glyphs [10]rune

	// Units lists the place values in strictly descending order. The last
	// entry must have Value 1; its Word is never written.
	Units []Unit

	// Connector is the mark written after a joining unit.
	Connector rune

	// OnesMarker optionally names the ones place, as in "five items". A
	// trailing marker after a digit word, or on its own, denotes the ones
	// term.
	OnesMarker string
}

// A Table is the immutable place-value and digit data shared by the
// formatter and the parser. A Table is safe for concurrent use.
type Table struct {
	words      [10]string
	glyphs     [10]rune
	units      []Unit
	connector  rune
	onesMarker string

	wordIndex  map[string]int
	glyphIndex map[rune]int
}

// NewTable validates c and returns the Table it describes.
func NewTable(c TableConfig) (*Table, error) {
	t := &Table{
		words:      c.Words,
		glyphs:     c.Glyphs,
		connector:  c.Connector,
		onesMarker: norm.NFC.String(c.OnesMarker),
		wordIndex:  make(map[string]int, 10),
		glyphIndex: make(map[rune]int, 10),
	}
	for d := range c.Words {
		w := norm.NFC.String(c.Words[d])
		if w == "" {
			return nil, fmt.Errorf("numeral: no word for digit %d", d)
		}
		if _, dup := t.wordIndex[w]; dup {
			return nil, fmt.Errorf("numeral: duplicate digit word %q", w)
		}
		if _, dup := t.glyphIndex[c.Glyphs[d]]; dup {
			return nil, fmt.Errorf("numeral: duplicate digit glyph %U", c.Glyphs[d])
		}
		t.words[d] = w
		t.wordIndex[w] = d
		t.glyphIndex[c.Glyphs[d]] = d
	}
	n := len(c.Units)
	if n == 0 || c.Units[n-1].Value != 1 {
		return nil, fmt.Errorf("numeral: unit table must end with the ones place")
	}
	t.units = make([]Unit, n)
	for i, u := range c.Units {
		if i > 0 && u.Value >= c.Units[i-1].Value {
			return nil, fmt.Errorf("numeral: unit %d (%d) not below %d", i, u.Value, c.Units[i-1].Value)
		}
		u.Word = norm.NFC.String(u.Word)
		if u.Value != 1 {
			if u.Word == "" {
				return nil, fmt.Errorf("numeral: no word for unit %d", u.Value)
			}
			u.joined = norm.NFC.String(u.Word + string(c.Connector))
		}
		t.units[i] = u
	}
	return t, nil
}

// MustTable is like NewTable, but panics if c is invalid.
func MustTable(c TableConfig) *Table {
	t, err := NewTable(c)
	if err != nil {
		panic(err)
	}
	return t
}

// Burmese is the traditional Burmese numeral table. Its largest unit is the
// lakh (သိန်း); larger values are counted in lakhs.
var Burmese = MustTable(TableConfig{
	Words: [10]string{
		"သုည", "တစ်", "နှစ်", "သုံး", "လေး",
		"ငါး", "ခြောက်", "ခုနစ်", "ရှစ်", "ကိုး",
	},
	Glyphs: [10]rune{'၀', '၁', '၂', '၃', '၄', '၅', '၆', '၇', '၈', '၉'},
	Units: []Unit{
		{Value: 100000, Word: "သိန်း"},
		{Value: 10000, Word: "သောင်း"},
		{Value: 1000, Word: "ထောင်", Joins: true},
		{Value: 100, Word: "ရာ", Joins: true},
		{Value: 10, Word: "ဆယ်", Joins: true},
		{Value: 1},
	},
	Connector:  '့', // dot below
	OnesMarker: "ခု",
})

// Unit returns the unit of the given magnitude.
func (t *Table) Unit(magnitude uint64) (Unit, bool) {
	for _, u := range t.units {
		if u.Value == magnitude {
			return u, true
		}
	}
	return Unit{}, false
}

// Units returns the units of t in descending order.
func (t *Table) Units() []Unit {
	return append([]Unit(nil), t.units...)
}

// Zero returns the word for zero.
func (t *Table) Zero() string { return t.words[0] }

// Connector returns the connector mark.
func (t *Table) Connector() rune { return t.connector }

// DigitWord returns the word for digit d. It panics if d is not in [0, 9].
func (t *Table) DigitWord(d int) string { return t.words[d] }

// DigitGlyph returns the glyph for digit d. It panics if d is not in [0, 9].
func (t *Table) DigitGlyph(d int) rune { return t.glyphs[d] }

// WordDigit returns the digit named by w.
func (t *Table) WordDigit(w string) (d int, ok bool) {
	d, ok = t.wordIndex[w]
	return d, ok
}

// GlyphDigit returns the digit written as r.
func (t *Table) GlyphDigit(r rune) (d int, ok bool) {
	d, ok = t.glyphIndex[r]
	return d, ok
}
