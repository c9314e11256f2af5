// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

import (
	"strings"
	"testing"
)

func TestBurmeseTable(t *testing.T) {
	units := Burmese.Units()
	want := []uint64{100000, 10000, 1000, 100, 10, 1}
	if len(units) != len(want) {
		t.Fatalf("len(Units()) = %d; want %d", len(units), len(want))
	}
	for i, u := range units {
		if u.Value != want[i] {
			t.Errorf("Units()[%d].Value = %d; want %d", i, u.Value, want[i])
		}
		if (u.Word == "") != (u.Value == 1) {
			t.Errorf("Units()[%d].Word = %q for value %d", i, u.Word, u.Value)
		}
	}
	units[0].Word = "x"
	if Burmese.Units()[0].Word == "x" {
		t.Error("Units returned the table's own slice")
	}

	for d := 0; d < 10; d++ {
		w := Burmese.DigitWord(d)
		if got, ok := Burmese.WordDigit(w); !ok || got != d {
			t.Errorf("WordDigit(%q) = %d, %v; want %d", w, got, ok, d)
		}
		g := Burmese.DigitGlyph(d)
		if got, ok := Burmese.GlyphDigit(g); !ok || got != d {
			t.Errorf("GlyphDigit(%U) = %d, %v; want %d", g, got, ok, d)
		}
	}
	if Burmese.Zero() != "သုည" {
		t.Errorf("Zero() = %q", Burmese.Zero())
	}
	if _, ok := Burmese.WordDigit("ဆယ်"); ok {
		t.Error("WordDigit accepted a unit word")
	}
	if _, ok := Burmese.GlyphDigit('1'); ok {
		t.Error("GlyphDigit accepted an ASCII digit")
	}
}

func TestUnit(t *testing.T) {
	for _, tc := range []struct {
		magnitude uint64
		word      string
		ok        bool
	}{
		{100000, "သိန်း", true},
		{10000, "သောင်း", true},
		{1000, "ထောင်", true},
		{100, "ရာ", true},
		{10, "ဆယ်", true},
		{1, "", true},
		{1000000, "", false},
		{0, "", false},
	} {
		u, ok := Burmese.Unit(tc.magnitude)
		if ok != tc.ok || u.Word != tc.word {
			t.Errorf("Unit(%d) = %q, %v; want %q, %v", tc.magnitude, u.Word, ok, tc.word, tc.ok)
		}
	}
}

func TestNewTableErrors(t *testing.T) {
	base := func() TableConfig {
		return TableConfig{
			Words:     [10]string{"z", "a", "b", "c", "d", "e", "f", "g", "h", "i"},
			Glyphs:    [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
			Units:     []Unit{{Value: 100, Word: "H"}, {Value: 10, Word: "T", Joins: true}, {Value: 1}},
			Connector: '-',
		}
	}
	if _, err := NewTable(base()); err != nil {
		t.Fatalf("NewTable(base) failed: %v", err)
	}
	for _, tc := range []struct {
		desc string
		edit func(c *TableConfig)
		err  string
	}{{
		desc: "empty digit word",
		edit: func(c *TableConfig) { c.Words[3] = "" },
		err:  "no word for digit 3",
	}, {
		desc: "duplicate word",
		edit: func(c *TableConfig) { c.Words[3] = "a" },
		err:  "duplicate digit word",
	}, {
		desc: "duplicate glyph",
		edit: func(c *TableConfig) { c.Glyphs[9] = '0' },
		err:  "duplicate digit glyph",
	}, {
		desc: "no ones place",
		edit: func(c *TableConfig) { c.Units = c.Units[:2] },
		err:  "must end with the ones place",
	}, {
		desc: "not descending",
		edit: func(c *TableConfig) { c.Units[0].Value = 10 },
		err:  "not below",
	}, {
		desc: "unnamed unit",
		edit: func(c *TableConfig) { c.Units[1].Word = "" },
		err:  "no word for unit 10",
	}} {
		c := base()
		tc.edit(&c)
		_, err := NewTable(c)
		if err == nil || !strings.Contains(err.Error(), tc.err) {
			t.Errorf("%s: NewTable error = %v; want containing %q", tc.desc, err, tc.err)
		}
	}
}

func TestMustTablePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustTable did not panic")
		}
	}()
	MustTable(TableConfig{})
}
