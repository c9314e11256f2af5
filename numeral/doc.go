// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeral converts between integers and their Burmese numeral-word
// representation.
//
// Values are decomposed over the place values of a Table, largest first.
// The Burmese table has no place value above the lakh (သိန်း, 100 000), so
// larger values are written as a count of lakhs whose count is itself
// decomposed:
//
//	123456   တစ်သိန်းနှစ်သောင်းသုံးထောင့်လေးရာ့ငါးဆယ့်ခြောက်
//	2000000  နှစ်ဆယ်သိန်း
//
// The thousand, hundred and ten units take the connector mark (့) when a
// non-zero lower term follows. Output is in Unicode canonical order; the
// parser accepts the connector in either mark order.
//
// A Converter created with the Shorthand option writes certain round
// multiples of a million in the colloquial lakh-first form (သိန်းနှစ်ဆယ်
// for 2 000 000). Parse does not recognize these forms: shorthand output
// is for display and does not round-trip.
//
// Parse also accepts a bare run of digit glyphs (၁၂၃) and a trailing ones
// term marked with ခု. All failures are reported as a *FormatError, which
// matches ErrInvalidFormat under errors.Is.
package numeral // import "github.com/mmtext/text/numeral"
