// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

import (
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	for _, tc := range []struct {
		n    uint64
		want string
	}{
		{0, "သုည"},
		{1, "တစ်"},
		{7, "ခုနစ်"},
		{10, "တစ်ဆယ်"},
		{15, "တစ်ဆယ့်ငါး"},
		{100000, "တစ်သိန်း"},
		{102000, "တစ်သိန်းနှစ်ထောင်"},
		{123456, "တစ်သိန်းနှစ်သောင်းသုံးထောင့်လေးရာ့ငါးဆယ့်ခြောက်"},
		{20005, "နှစ်သောင်းငါး"},
		{1000000, "တစ်ဆယ်သိန်း"},
		{2000000, "နှစ်ဆယ်သိန်း"},
		{1500000, "တစ်ဆယ့်ငါးသိန်း"},
		{10000000000, "တစ်သိန်းသိန်း"},
	} {
		if got := Format(tc.n); got != tc.want {
			t.Errorf("Format(%d) = %q; want %q", tc.n, got, tc.want)
		}
	}
}

func TestAppend(t *testing.T) {
	b := []byte("> ")
	b = New(Burmese).Append(b, 21)
	if got, want := string(b), "> နှစ်ဆယ့်တစ်"; got != want {
		t.Errorf("Append = %q; want %q", got, want)
	}
}

func TestFormatNonEmpty(t *testing.T) {
	zero := Burmese.Zero()
	for n := uint64(0); n < 999999999; n += 7919 {
		p := Format(n)
		if p == "" {
			t.Fatalf("Format(%d) is empty", n)
		}
		if (p == zero) != (n == 0) {
			t.Errorf("Format(%d) = %q", n, p)
		}
	}
}

// connectorWanted reports whether the phrase for n < 100000 must contain the
// connector: a joining unit has a non-zero count and is followed by a
// non-zero lower term.
func connectorWanted(n uint64) bool {
	for _, m := range []uint64{1000, 100, 10} {
		if (n/m)%10 != 0 && n%m != 0 {
			return true
		}
	}
	return false
}

func TestConnector(t *testing.T) {
	c := Burmese.Connector()
	for n := uint64(1); n < 100000; n++ {
		p := Format(n)
		if got, want := strings.ContainsRune(p, c), connectorWanted(n); got != want {
			t.Fatalf("Format(%d) = %q: connector present %v; want %v", n, p, got, want)
		}
		for _, u := range Burmese.units {
			if u.Joins && strings.HasSuffix(p, u.joined) {
				t.Fatalf("Format(%d) = %q ends with a connector", n, p)
			}
		}
	}
}

func TestFormatAlternateTable(t *testing.T) {
	tbl := MustTable(TableConfig{
		Words:     [10]string{"z", "a", "b", "c", "d", "e", "f", "g", "h", "i"},
		Glyphs:    [10]rune{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9'},
		Units:     []Unit{{Value: 1000, Word: "K"}, {Value: 100, Word: "H", Joins: true}, {Value: 10, Word: "T", Joins: true}, {Value: 1}},
		Connector: '-',
	})
	c := New(tbl)
	for _, tc := range []struct {
		n    uint64
		want string
	}{
		{0, "z"},
		{1234, "aKbH-cT-d"},
		{1200, "aKbH"},
		{12000, "aT-bK"},
		{100, "aH"},
	} {
		if got := c.Format(tc.n); got != tc.want {
			t.Errorf("Format(%d) = %q; want %q", tc.n, got, tc.want)
		}
	}
}

func TestFormatConnectorOrder(t *testing.T) {
	const (
		canonical = "တစ်ထောင\u1037\u103aတစ်"
		legacy    = "တစ်ထောင\u103a\u1037တစ်"
	)
	if got := Format(1001); got != canonical {
		t.Errorf("Format(1001) = %+q; want %+q", got, canonical)
	}
	if got, err := Parse(legacy); err != nil || got != 1001 {
		t.Errorf("Parse(%+q) = %d, %v; want 1001", legacy, got, err)
	}
}
