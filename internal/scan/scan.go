// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scan classifies runes of Myanmar-script text and provides the
// run-level primitives used by the numeral parser.
package scan

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/unicode/rangetable"
)

// A Class identifies the script class of a rune.
type Class int

const (
	Other Class = iota
	Letter
	Digit
	Space
)

func (c Class) String() string {
	switch c {
	case Letter:
		return "Letter"
	case Digit:
		return "Digit"
	case Space:
		return "Space"
	}
	return "Other"
}

const (
	blockFirst = 0x1000
	blockLast  = 0x109F
)

// letters holds every code point of the Myanmar block that is not a decimal
// digit: consonants, vowels, medials and all dependent marks.
var letters = func() *unicode.RangeTable {
	var rs []rune
	for r := rune(blockFirst); r <= blockLast; r++ {
		if !unicode.IsDigit(r) {
			rs = append(rs, r)
		}
	}
	return rangetable.New(rs...)
}()

// ClassOf reports the class of r.
func ClassOf(r rune) Class {
	switch {
	case unicode.IsSpace(r):
		return Space
	case r < blockFirst || r > blockLast:
		return Other
	case unicode.Is(letters, r):
		return Letter
	}
	return Digit
}

// IsWord reports whether r belongs to a Myanmar run: a letter or a digit of
// the Myanmar block.
func IsWord(r rune) bool {
	c := ClassOf(r)
	return c == Letter || c == Digit
}

// IsMark reports whether r is a combining mark. A word match that is
// followed by a mark ends inside a syllable and is not a match.
func IsMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc)
}

// Normalize returns s in NFC with leading and trailing space removed and
// each internal run of white space replaced by a single space.
func Normalize(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}

// RunStart returns the byte offset at which the Myanmar run ending at
// s[:end] starts. It returns end if the rune before end is not a word rune.
func RunStart(s string, end int) int {
	i := end
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(s[:i])
		if !IsWord(r) {
			break
		}
		i -= size
	}
	return i
}

// SkipSpace returns the offset of the first non-space rune in s at or after i.
func SkipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// Index returns the offset of the first occurrence of word in s that ends
// on a syllable boundary, or -1. An occurrence followed by a combining mark
// is skipped.
func Index(s, word string) int {
	if word == "" {
		return -1
	}
	for off := 0; off < len(s); {
		i := strings.Index(s[off:], word)
		if i < 0 {
			return -1
		}
		i += off
		end := i + len(word)
		if r, _ := utf8.DecodeRuneInString(s[end:]); end == len(s) || !IsMark(r) {
			return i
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		off = i + size
	}
	return -1
}

// A Run is a maximal sequence of runes of the same class.
type Run struct {
	Class      Class
	Start, End int
}

// Runs splits s into maximal runs of equal class. Letters and digits are
// kept apart.
func Runs(s string) []Run {
	var runs []Run
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		c := ClassOf(r)
		if n := len(runs); n > 0 && runs[n-1].Class == c {
			runs[n-1].End = i + size
		} else {
			runs = append(runs, Run{Class: c, Start: i, End: i + size})
		}
		i += size
	}
	return runs
}
