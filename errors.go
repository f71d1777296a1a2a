// Copyright 2026 The Numlist Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package numlist

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidDigitError reports a digit value outside [0, Base).
type InvalidDigitError struct {
	Digit int
	Base  int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("digit %d out of range for base %d", e.Digit, e.Base)
}

// IndexError reports a structural index outside the legal bound for the
// operation. Insert is set when the failing operation was an insertion,
// whose legal upper bound is Size rather than Size-1.
type IndexError struct {
	Index  int
	Size   int
	Insert bool
}

func (e *IndexError) Error() string {
	if e.Insert {
		return fmt.Sprintf("index %d out of range for insert into list of length %d", e.Index, e.Size)
	}
	return fmt.Sprintf("index %d out of range for list of length %d", e.Index, e.Size)
}

// ErrIteratorMisuse is returned when a cursor mutation is attempted with no
// digit yielded since the cursor's last structural change.
var ErrIteratorMisuse = errors.New("cursor has no current digit")

// ErrTypeMismatch is returned when an operation receives an argument it
// cannot interpret as a digit sequence.
var ErrTypeMismatch = errors.New("argument is not a digit sequence")

// IsInvalidDigit reports whether err's cause is an InvalidDigitError.
func IsInvalidDigit(err error) bool {
	_, ok := errors.Cause(err).(*InvalidDigitError)
	return ok
}

// IsIndexOutOfRange reports whether err's cause is an IndexError.
func IsIndexOutOfRange(err error) bool {
	_, ok := errors.Cause(err).(*IndexError)
	return ok
}
