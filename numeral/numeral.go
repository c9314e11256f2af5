// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

var regular = New(Burmese)

// Format returns the Burmese numeral phrase for n, without shorthand.
func Format(n uint64) string { return regular.Format(n) }

// Parse returns the integer denoted by the Burmese numeral phrase s.
func Parse(s string) (uint64, error) { return regular.Parse(s) }

// Validate reports whether s is a valid Burmese numeral phrase.
func Validate(s string) error { return regular.Validate(s) }
