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

// ErrList performs operations on digit lists and collects errors during
// operations. If an error is already set, the operation is skipped.
// Designed to be used for many operations in a row, with a single error
// check at the end.
type ErrList struct {
	Err error
}

// Append performs l.Append(digit).
func (e *ErrList) Append(l *List, digit int) {
	if e.Err != nil {
		return
	}
	e.Err = l.Append(digit)
}

// Insert performs l.Insert(index, digit).
func (e *ErrList) Insert(l *List, index, digit int) {
	if e.Err != nil {
		return
	}
	e.Err = l.Insert(index, digit)
}

// Get returns 0 if Err is set. Otherwise returns l.Get(index).
func (e *ErrList) Get(l *List, index int) int {
	if e.Err != nil {
		return 0
	}
	var d int
	d, e.Err = l.Get(index)
	return d
}

// Set returns 0 if Err is set. Otherwise returns the digit displaced by
// l.Set(index, digit).
func (e *ErrList) Set(l *List, index, digit int) int {
	if e.Err != nil {
		return 0
	}
	var old int
	old, e.Err = l.Set(index, digit)
	return old
}

// RemoveAt returns 0 if Err is set. Otherwise returns the digit removed by
// l.RemoveAt(index).
func (e *ErrList) RemoveAt(l *List, index int) int {
	if e.Err != nil {
		return 0
	}
	var d int
	d, e.Err = l.RemoveAt(index)
	return d
}

// AddAll returns false if Err is set. Otherwise returns l.AddAll(s).
func (e *ErrList) AddAll(l *List, s Sequence) bool {
	if e.Err != nil {
		return false
	}
	var changed bool
	changed, e.Err = l.AddAll(s)
	return changed
}

// Subtract returns nil if Err is set. Otherwise returns l.Subtract(x).
func (e *ErrList) Subtract(l, x *List) *List {
	if e.Err != nil {
		return nil
	}
	var r *List
	r, e.Err = l.Subtract(x)
	return r
}

// ChangeBase returns nil if Err is set. Otherwise returns l.ChangeBase(base).
func (e *ErrList) ChangeBase(l *List, base int) *List {
	if e.Err != nil {
		return nil
	}
	var r *List
	r, e.Err = l.ChangeBase(base)
	return r
}
