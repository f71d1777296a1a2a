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
	"math/big"
	"sort"
	"testing"

	"pgregory.net/rapid"
)

func drawMagnitude(t *rapid.T) *big.Int {
	s := rapid.StringMatching(`[1-9][0-9]{0,60}|0`).Draw(t, "value")
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("bad generated value %q", s)
	}
	return v
}

func drawList(t *rapid.T, base int) *List {
	digits := rapid.SliceOfN(rapid.IntRange(0, base-1), 0, 30).Draw(t, "digits")
	l := newList(base)
	for _, d := range digits {
		if err := l.Append(d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	return l
}

// TestProperty_ConversionRoundTrip verifies that folding the digits of any
// converted magnitude reproduces the magnitude exactly, for any base.
func TestProperty_ConversionRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawMagnitude(t)
		base := rapid.IntRange(2, 64).Draw(t, "base")

		l, err := FromMagnitude(v, base)
		if err != nil {
			t.Fatalf("FromMagnitude: %v", err)
		}
		if got := l.Magnitude(); got.Cmp(v) != 0 {
			t.Fatalf("round trip in base %d: expected %s, got %s", base, v, got)
		}
	})
}

// TestProperty_BaseChangeIdempotence verifies that converting B -> B' -> B
// reproduces the original digit sequence.
func TestProperty_BaseChangeIdempotence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := drawMagnitude(t)
		b1 := rapid.IntRange(2, 36).Draw(t, "b1")
		b2 := rapid.IntRange(2, 36).Draw(t, "b2")

		l, err := FromMagnitude(v, b1)
		if err != nil {
			t.Fatalf("FromMagnitude: %v", err)
		}
		mid, err := l.ChangeBase(b2)
		if err != nil {
			t.Fatalf("ChangeBase(%d): %v", b2, err)
		}
		back, err := mid.ChangeBase(b1)
		if err != nil {
			t.Fatalf("ChangeBase(%d): %v", b1, err)
		}
		if !back.Equal(l) {
			t.Fatalf("base %d -> %d -> %d: expected %v, got %v", b1, b2, b1, l.Digits(), back.Digits())
		}
	})
}

// TestProperty_SubtractMagnitude verifies a.Subtract(b) == max(0, a-b).
func TestProperty_SubtractMagnitude(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.IntRange(2, 36).Draw(t, "base")
		a := drawList(t, base)
		b := drawList(t, base)

		r, err := a.Subtract(b)
		if err != nil {
			t.Fatalf("Subtract: %v", err)
		}
		want := new(big.Int).Sub(a.Magnitude(), b.Magnitude())
		if want.Sign() < 0 {
			if !r.IsEmpty() {
				t.Fatalf("negative difference: expected empty list, got %v", r.Digits())
			}
			return
		}
		if got := r.Magnitude(); got.Cmp(want) != 0 {
			t.Fatalf("expected %s, got %s", want, got)
		}
	})
}

// TestProperty_SortOrdersPermutation verifies both sorts order adjacent
// pairs and permute, never alter, the multiset of digits.
func TestProperty_SortOrdersPermutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.IntRange(2, 36).Draw(t, "base")
		l := drawList(t, base)
		orig := l.Digits()

		l.SortAscending()
		asc := l.Digits()
		for i := 1; i < len(asc); i++ {
			if asc[i-1] > asc[i] {
				t.Fatalf("ascending order violated at %d: %v", i, asc)
			}
		}
		if !samePermutation(orig, asc) {
			t.Fatalf("ascending sort changed the multiset: %v -> %v", orig, asc)
		}

		l.SortDescending()
		desc := l.Digits()
		for i := 1; i < len(desc); i++ {
			if desc[i-1] < desc[i] {
				t.Fatalf("descending order violated at %d: %v", i, desc)
			}
		}
		if !samePermutation(orig, desc) {
			t.Fatalf("descending sort changed the multiset: %v -> %v", orig, desc)
		}
	})
}

// TestProperty_ShiftInverse verifies ShiftLeft then ShiftRight restores the
// original order.
func TestProperty_ShiftInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := rapid.IntRange(2, 36).Draw(t, "base")
		l := drawList(t, base)
		orig := l.Digits()

		l.ShiftLeft()
		l.ShiftRight()
		after := l.Digits()
		if len(orig) != len(after) {
			t.Fatalf("length changed: %v -> %v", orig, after)
		}
		for i := range orig {
			if orig[i] != after[i] {
				t.Fatalf("shift pair not an identity: %v -> %v", orig, after)
			}
		}
	})
}

func samePermutation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
