// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeral

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is matched by every error returned by Parse.
var ErrInvalidFormat = errors.New("numeral: invalid format")

// A FormatError reports text that could not be parsed as a numeral phrase.
type FormatError struct {
	Input    string // text passed to Parse
	Residual string // part of the normalized input left unparsed
}

func (e *FormatError) Error() string {
	if e.Residual == "" || e.Residual == e.Input {
		return fmt.Sprintf("numeral: invalid format %q", e.Input)
	}
	return fmt.Sprintf("numeral: invalid format %q: cannot parse %q", e.Input, e.Residual)
}

// Is reports whether target is ErrInvalidFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}
