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

// Sequence is the read-only digit collection accepted by the bulk
// operations. List implements it, as does the Digits slice adapter.
type Sequence interface {
	Len() int
	// DigitAt returns the digit at position i, 0 <= i < Len().
	DigitAt(i int) int
}

// Digits adapts a plain slice to the Sequence interface.
type Digits []int

// Len returns the number of digits in the slice.
func (d Digits) Len() int { return len(d) }

// DigitAt returns the digit at position i.
func (d Digits) DigitAt(i int) int { return d[i] }

// DigitAt returns the digit at position i. It walks from the nearer end of
// the list; prefer Digits or a Cursor for whole-list traversal.
func (l *List) DigitAt(i int) int {
	return l.nodes[l.nodeAt(i)].digit
}

// materialize snapshots s into a slice, rejecting arguments that cannot be
// interpreted as a digit sequence.
func materialize(s Sequence) ([]int, error) {
	switch x := s.(type) {
	case nil:
		return nil, ErrTypeMismatch
	case *List:
		if x == nil {
			return nil, ErrTypeMismatch
		}
		return x.Digits(), nil
	case Digits:
		return x, nil
	}
	out := make([]int, s.Len())
	for i := range out {
		out[i] = s.DigitAt(i)
	}
	return out, nil
}

// ContainsAll reports whether every digit of s occurs in the list.
func (l *List) ContainsAll(s Sequence) (bool, error) {
	ds, err := materialize(s)
	if err != nil {
		return false, err
	}
	for _, d := range ds {
		if !l.Contains(d) {
			return false, nil
		}
	}
	return true, nil
}

// AddAll appends every digit of s in order, reporting whether the list
// changed. The whole argument is validated before any digit is linked.
func (l *List) AddAll(s Sequence) (bool, error) {
	return l.InsertAll(l.size, s)
}

// InsertAll places the digits of s at index in order, reporting whether the
// list changed. The whole argument is validated before any digit is linked.
func (l *List) InsertAll(index int, s Sequence) (bool, error) {
	ds, err := materialize(s)
	if err != nil {
		return false, err
	}
	if err := l.checkIndex(index, true); err != nil {
		return false, err
	}
	for _, d := range ds {
		if err := l.checkDigit(d); err != nil {
			return false, err
		}
	}
	if len(ds) == 0 {
		return false, nil
	}
	succ := nilNode
	if index < l.size {
		succ = l.nodeAt(index)
	}
	for _, d := range ds {
		l.insertBefore(succ, d)
	}
	return true, nil
}

// RemoveAll deletes every digit that occurs in s, reporting whether the
// list changed.
func (l *List) RemoveAll(s Sequence) (bool, error) {
	ds, err := materialize(s)
	if err != nil {
		return false, err
	}
	return l.sweep(digitSet(ds), true), nil
}

// RetainAll deletes every digit that does not occur in s, reporting whether
// the list changed.
func (l *List) RetainAll(s Sequence) (bool, error) {
	ds, err := materialize(s)
	if err != nil {
		return false, err
	}
	return l.sweep(digitSet(ds), false), nil
}

func digitSet(ds []int) map[int]struct{} {
	set := make(map[int]struct{}, len(ds))
	for _, d := range ds {
		set[d] = struct{}{}
	}
	return set
}

// sweep unlinks every node whose membership in set matches drop.
func (l *List) sweep(set map[int]struct{}, drop bool) bool {
	changed := false
	id := l.head
	for id != nilNode {
		next := l.nodes[id].next
		if _, ok := set[l.nodes[id].digit]; ok == drop {
			l.unlink(id)
			changed = true
		}
		id = next
	}
	return changed
}
