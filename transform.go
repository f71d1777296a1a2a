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

// Swap exchanges the digit values at the two indices, leaving the nodes in
// place. Equal indices are a no-op. It reports false, without mutating,
// when either index is out of range.
func (l *List) Swap(i, j int) bool {
	if i < 0 || i >= l.size || j < 0 || j >= l.size {
		return false
	}
	if i == j {
		return true
	}
	a, b := l.nodeAt(i), l.nodeAt(j)
	l.nodes[a].digit, l.nodes[b].digit = l.nodes[b].digit, l.nodes[a].digit
	return true
}

// SortAscending orders the digits smallest first using an adjacent-swap
// bubble sort over the node values. Equal digits keep their relative order,
// and the sort stops after the first pass that performs no swap.
func (l *List) SortAscending() {
	l.bubble(func(a, b int) bool { return a > b })
}

// SortDescending orders the digits largest first.
func (l *List) SortDescending() {
	l.bubble(func(a, b int) bool { return a < b })
}

// bubble repeatedly walks the list swapping adjacent digit values that are
// out of order, shrinking the walk as the sorted suffix grows.
func (l *List) bubble(outOfOrder func(a, b int) bool) {
	if l.size < 2 {
		return
	}
	last := nilNode
	for {
		swapped := false
		id := l.head
		for l.nodes[id].next != last {
			next := l.nodes[id].next
			if outOfOrder(l.nodes[id].digit, l.nodes[next].digit) {
				l.nodes[id].digit, l.nodes[next].digit = l.nodes[next].digit, l.nodes[id].digit
				swapped = true
			}
			id = next
		}
		last = id
		if !swapped {
			return
		}
	}
}

// ShiftLeft rotates the digit values one position toward the head: the
// head's value moves to the tail. Lists shorter than two digits are
// unaffected. Only values move; no node is relinked.
func (l *List) ShiftLeft() {
	if l.size < 2 {
		return
	}
	first := l.nodes[l.head].digit
	id := l.head
	for l.nodes[id].next != nilNode {
		next := l.nodes[id].next
		l.nodes[id].digit = l.nodes[next].digit
		id = next
	}
	l.nodes[id].digit = first
}

// ShiftRight rotates the digit values one position toward the tail: the
// tail's value moves to the head.
func (l *List) ShiftRight() {
	if l.size < 2 {
		return
	}
	last := l.nodes[l.tail].digit
	id := l.tail
	for l.nodes[id].prev != nilNode {
		prev := l.nodes[id].prev
		l.nodes[id].digit = l.nodes[prev].digit
		id = prev
	}
	l.nodes[id].digit = last
}
