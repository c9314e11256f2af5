// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

// shorthandRules lists the units that may follow the largest unit in a
// lakh-first phrase, with the smallest digit each accepts. A value matches a
// rule when it is d lakh-units for a digit d in [min, 9].
var shorthandRules = []struct {
	unit uint64
	min  uint64
}{
	{10, 2},   // 2 000 000 through 9 000 000
	{100, 1},  // 10 000 000 through 90 000 000
	{1000, 1}, // 100 000 000 through 900 000 000
}

// ShorthandFor returns the lakh-first phrase for n, or false if n has none.
// The phrase is the largest unit's word, a digit word and a lower unit's
// word: 2 000 000 is သိန်းနှစ်ဆယ် rather than နှစ်ဆယ်သိန်း.
//
// ShorthandFor reports the shorthand regardless of whether c was created
// with the Shorthand option.
func (c *Converter) ShorthandFor(n uint64) (string, bool) {
	b, ok := c.appendShorthand(nil, n)
	return string(b), ok
}

func (c *Converter) appendShorthand(dst []byte, n uint64) ([]byte, bool) {
	t := c.table
	top := t.units[0]
	for _, r := range shorthandRules {
		u, ok := t.Unit(r.unit)
		if !ok || u.Value >= top.Value {
			continue
		}
		step := top.Value * u.Value
		if n%step != 0 {
			continue
		}
		if d := n / step; r.min <= d && d <= 9 {
			dst = append(dst, top.Word...)
			dst = append(dst, t.words[d]...)
			return append(dst, u.Word...), true
		}
	}
	return dst, false
}
