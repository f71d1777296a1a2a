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

// Cursor is a bidirectional iterator over a List that supports mutation
// mid-traversal. Set and Remove act on the digit most recently yielded by
// Next or Prev and are legal only while that digit is current: Insert,
// Remove, and cursor construction all clear it, and a further Set or
// Remove before the next yield fails with ErrIteratorMisuse.
//
// A Cursor is invalidated by any mutation of its List that does not go
// through the cursor itself.
type Cursor struct {
	l       *List
	next    int32 // node returned by the next call to Next; nilNode at the end
	nextIdx int
	last    int32 // most recently yielded node; nilNode when none is current
}

// Cursor returns a cursor positioned so that the first Next call yields the
// digit at index; index == Len() positions it at the end.
func (l *List) Cursor(index int) (*Cursor, error) {
	if err := l.checkIndex(index, true); err != nil {
		return nil, err
	}
	c := &Cursor{l: l, next: nilNode, nextIdx: index, last: nilNode}
	if index < l.size {
		c.next = l.nodeAt(index)
	}
	return c, nil
}

// Next yields the digit after the cursor and advances over it. It returns
// false when the cursor is at the end of the list.
func (c *Cursor) Next() (int, bool) {
	if c.nextIdx >= c.l.size {
		return 0, false
	}
	c.last = c.next
	c.next = c.l.nodes[c.next].next
	c.nextIdx++
	return c.l.nodes[c.last].digit, true
}

// Prev yields the digit before the cursor and retreats over it. It returns
// false when the cursor is at the head of the list.
func (c *Cursor) Prev() (int, bool) {
	if c.nextIdx == 0 {
		return 0, false
	}
	if c.next == nilNode {
		c.next = c.l.tail
	} else {
		c.next = c.l.nodes[c.next].prev
	}
	c.last = c.next
	c.nextIdx--
	return c.l.nodes[c.last].digit, true
}

// NextIndex returns the index of the digit a Next call would yield.
func (c *Cursor) NextIndex() int {
	return c.nextIdx
}

// PrevIndex returns the index of the digit a Prev call would yield.
func (c *Cursor) PrevIndex() int {
	return c.nextIdx - 1
}

// Set replaces the most recently yielded digit in place.
func (c *Cursor) Set(digit int) error {
	if c.last == nilNode {
		return ErrIteratorMisuse
	}
	if err := c.l.checkDigit(digit); err != nil {
		return err
	}
	c.l.nodes[c.last].digit = digit
	return nil
}

// Remove deletes the most recently yielded digit from the list.
func (c *Cursor) Remove() error {
	if c.last == nilNode {
		return ErrIteratorMisuse
	}
	lastNext := c.l.nodes[c.last].next
	c.l.unlink(c.last)
	if c.next == c.last {
		// The last yield was a Prev; the cursor was sitting on the
		// removed node.
		c.next = lastNext
	} else {
		c.nextIdx--
	}
	c.last = nilNode
	return nil
}

// Insert places digit immediately before the position a Next call would
// read and advances the cursor past it, so a following Prev yields the new
// digit.
func (c *Cursor) Insert(digit int) error {
	if err := c.l.checkDigit(digit); err != nil {
		return err
	}
	c.last = nilNode
	c.l.insertBefore(c.next, digit)
	c.nextIdx++
	return nil
}
