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

// Package numlist implements an arbitrary-precision non-negative integer
// stored as a doubly linked sequence of base-restricted digits, together
// with base conversion, subtraction, and in-place sequence algorithms.
package numlist

import (
	"github.com/pkg/errors"
)

// nilNode marks an absent arena link.
const nilNode = int32(-1)

// node is one digit of a List. Nodes live in the List's arena and refer to
// their neighbors by arena index, so a List never holds Go pointers into
// itself and removal cannot leave a dangling link.
type node struct {
	digit      int
	prev, next int32
}

// List is an ordered, mutable sequence of digits in a fixed base,
// most-significant digit first. The base is chosen at construction and
// never changes; every stored digit d satisfies 0 <= d < base.
//
// The digit value zero has one canonical representation: a List holding a
// single 0 digit, which is what every zero-valued conversion produces. A
// List with no digits at all is the distinct "no value" form returned by
// failed parses and by subtractions whose true result would be negative.
// Both fold to magnitude 0.
//
// The zero value of List is not usable; construct Lists with New,
// ParseDecimal, or FromMagnitude.
type List struct {
	base int

	// Node arena. head/tail/free and the per-node links are indices into
	// nodes; free heads the chain of released slots threaded through next.
	nodes []node
	head  int32
	tail  int32
	free  int32
	size  int
}

// New returns an empty List whose digits will be restricted to [0, base).
func New(base int) (*List, error) {
	if base < 2 {
		return nil, errors.Errorf("invalid base %d: a numeral base must be at least 2", base)
	}
	return newList(base), nil
}

// newList skips base validation for callers that already hold a valid base.
func newList(base int) *List {
	return &List{base: base, head: nilNode, tail: nilNode, free: nilNode}
}

// Base returns the radix this list's digits are restricted to.
func (l *List) Base() int {
	return l.base
}

// Len returns the number of digits in the list.
func (l *List) Len() int {
	return l.size
}

// IsEmpty reports whether the list holds no digits.
func (l *List) IsEmpty() bool {
	return l.size == 0
}

func (l *List) checkDigit(d int) error {
	if d < 0 || d >= l.base {
		return &InvalidDigitError{Digit: d, Base: l.base}
	}
	return nil
}

func (l *List) checkIndex(i int, insert bool) error {
	max := l.size
	if !insert {
		max--
	}
	if i < 0 || i > max {
		return &IndexError{Index: i, Size: l.size, Insert: insert}
	}
	return nil
}

// alloc takes a slot off the free chain, growing the arena if none remain.
func (l *List) alloc(digit int) int32 {
	if l.free != nilNode {
		id := l.free
		l.free = l.nodes[id].next
		l.nodes[id] = node{digit: digit, prev: nilNode, next: nilNode}
		return id
	}
	l.nodes = append(l.nodes, node{digit: digit, prev: nilNode, next: nilNode})
	return int32(len(l.nodes) - 1)
}

// release returns a detached node's slot to the free chain.
func (l *List) release(id int32) {
	l.nodes[id] = node{digit: -1, prev: nilNode, next: l.free}
	l.free = id
}

// nodeAt resolves a valid index to its arena node, walking from whichever
// end of the list is closer.
func (l *List) nodeAt(index int) int32 {
	if index < l.size/2 {
		id := l.head
		for i := 0; i < index; i++ {
			id = l.nodes[id].next
		}
		return id
	}
	id := l.tail
	for i := l.size - 1; i > index; i-- {
		id = l.nodes[id].prev
	}
	return id
}

// insertBefore links a new node holding digit immediately before succ, or at
// the tail when succ is nilNode. The digit must already be validated.
func (l *List) insertBefore(succ int32, digit int) int32 {
	id := l.alloc(digit)
	if succ == nilNode {
		l.nodes[id].prev = l.tail
		if l.tail == nilNode {
			l.head = id
		} else {
			l.nodes[l.tail].next = id
		}
		l.tail = id
	} else {
		pred := l.nodes[succ].prev
		l.nodes[id].prev = pred
		l.nodes[id].next = succ
		l.nodes[succ].prev = id
		if pred == nilNode {
			l.head = id
		} else {
			l.nodes[pred].next = id
		}
	}
	l.size++
	return id
}

// unlink detaches id from both neighbors, releases its slot, and returns
// the digit it held.
func (l *List) unlink(id int32) int {
	n := l.nodes[id]
	if n.prev == nilNode {
		l.head = n.next
	} else {
		l.nodes[n.prev].next = n.next
	}
	if n.next == nilNode {
		l.tail = n.prev
	} else {
		l.nodes[n.next].prev = n.prev
	}
	l.release(id)
	l.size--
	return n.digit
}

// Get returns the digit at index.
func (l *List) Get(index int) (int, error) {
	if err := l.checkIndex(index, false); err != nil {
		return 0, err
	}
	return l.nodes[l.nodeAt(index)].digit, nil
}

// Set replaces the digit at index and returns the displaced digit.
func (l *List) Set(index int, digit int) (int, error) {
	if err := l.checkDigit(digit); err != nil {
		return 0, err
	}
	if err := l.checkIndex(index, false); err != nil {
		return 0, err
	}
	id := l.nodeAt(index)
	old := l.nodes[id].digit
	l.nodes[id].digit = digit
	return old, nil
}

// Append adds digit at the least-significant end of the list.
func (l *List) Append(digit int) error {
	if err := l.checkDigit(digit); err != nil {
		return err
	}
	l.insertBefore(nilNode, digit)
	return nil
}

// Insert places digit at index, shifting the digit previously there and all
// following digits one position toward the tail. index == Len() appends.
func (l *List) Insert(index int, digit int) error {
	if err := l.checkDigit(digit); err != nil {
		return err
	}
	if err := l.checkIndex(index, true); err != nil {
		return err
	}
	if index == l.size {
		l.insertBefore(nilNode, digit)
	} else {
		l.insertBefore(l.nodeAt(index), digit)
	}
	return nil
}

// RemoveAt deletes the digit at index and returns it.
func (l *List) RemoveAt(index int) (int, error) {
	if err := l.checkIndex(index, false); err != nil {
		return 0, err
	}
	return l.unlink(l.nodeAt(index)), nil
}

// RemoveDigit deletes the first occurrence of digit, reporting whether the
// list contained it.
func (l *List) RemoveDigit(digit int) bool {
	for id := l.head; id != nilNode; id = l.nodes[id].next {
		if l.nodes[id].digit == digit {
			l.unlink(id)
			return true
		}
	}
	return false
}

// Contains reports whether digit occurs in the list.
func (l *List) Contains(digit int) bool {
	return l.IndexOf(digit) >= 0
}

// IndexOf returns the position of the first occurrence of digit, or -1.
func (l *List) IndexOf(digit int) int {
	i := 0
	for id := l.head; id != nilNode; id = l.nodes[id].next {
		if l.nodes[id].digit == digit {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the position of the last occurrence of digit, or -1.
func (l *List) LastIndexOf(digit int) int {
	i := l.size - 1
	for id := l.tail; id != nilNode; id = l.nodes[id].prev {
		if l.nodes[id].digit == digit {
			return i
		}
		i--
	}
	return -1
}

// Clear removes every digit. The arena is dropped so a large cleared list
// does not pin its old storage.
func (l *List) Clear() {
	l.nodes = nil
	l.head = nilNode
	l.tail = nilNode
	l.free = nilNode
	l.size = 0
}

// Digits returns the digit values in order as a fresh slice, or nil for an
// empty list.
func (l *List) Digits() []int {
	if l.size == 0 {
		return nil
	}
	out := make([]int, 0, l.size)
	for id := l.head; id != nilNode; id = l.nodes[id].next {
		out = append(out, l.nodes[id].digit)
	}
	return out
}

// Equal reports whether x has the same base, length, and digit sequence.
func (l *List) Equal(x *List) bool {
	if x == nil || l.base != x.base || l.size != x.size {
		return false
	}
	a, b := l.head, x.head
	for a != nilNode {
		if l.nodes[a].digit != x.nodes[b].digit {
			return false
		}
		a = l.nodes[a].next
		b = x.nodes[b].next
	}
	return true
}

// SubList copies the digits in [from, to) into a new independent List with
// the same base. from == to yields an empty list.
func (l *List) SubList(from, to int) (*List, error) {
	if from < 0 || to > l.size || from > to {
		return nil, errors.Wrapf(&IndexError{Index: from, Size: l.size, Insert: true},
			"sublist [%d, %d)", from, to)
	}
	out := newList(l.base)
	if from == to {
		return out, nil
	}
	id := l.nodeAt(from)
	for i := from; i < to; i++ {
		out.insertBefore(nilNode, l.nodes[id].digit)
		id = l.nodes[id].next
	}
	return out, nil
}
