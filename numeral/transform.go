// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// ToGlyphs returns a Transformer that replaces the ASCII digits 0-9 with the
// digit glyphs of t. All other text is copied unchanged.
func ToGlyphs(t *Table) transform.Transformer {
	var m digitTransform
	for d := range t.glyphs {
		m.from[d] = rune('0' + d)
		m.to[d] = t.glyphs[d]
	}
	return m
}

// FromGlyphs returns a Transformer that replaces the digit glyphs of t with
// ASCII digits. All other text is copied unchanged.
func FromGlyphs(t *Table) transform.Transformer {
	var m digitTransform
	for d := range t.glyphs {
		m.from[d] = t.glyphs[d]
		m.to[d] = rune('0' + d)
	}
	return m
}

type digitTransform struct {
	transform.NopResetter
	from, to [10]rune
}

func (m digitTransform) lookup(r rune) (rune, bool) {
	for d, f := range m.from {
		if f == r {
			return m.to[d], true
		}
	}
	return r, false
}

func (m digitTransform) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if alt, ok := m.lookup(r); ok && r != utf8.RuneError {
			if utf8.RuneLen(alt) > len(dst)-nDst {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += utf8.EncodeRune(dst[nDst:], alt)
		} else {
			if size != copy(dst[nDst:], src[nSrc:nSrc+size]) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += size
		}
		nSrc += size
	}
	return nDst, nSrc, nil
}
