package numlist

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Magnitude returns the non-negative integer value the list represents,
// folding head to tail: result = result*base + digit. An empty list folds
// to 0.
func (l *List) Magnitude() *big.Int {
	r := new(big.Int)
	if l.size == 0 {
		return r
	}
	b := big.NewInt(int64(l.base))
	d := new(big.Int)
	for id := l.head; id != nilNode; id = l.nodes[id].next {
		r.Mul(r, b)
		d.SetInt64(int64(l.nodes[id].digit))
		r.Add(r, d)
	}
	return r
}

// FromMagnitude converts v into a digit sequence in the given base,
// most-significant digit first. A negative v yields the empty list, since
// the digit sequence has no sign; zero yields the canonical single-digit
// zero list.
func FromMagnitude(v *big.Int, base int) (*List, error) {
	if base < 2 {
		return nil, errors.Errorf("invalid base %d: a numeral base must be at least 2", base)
	}
	if v == nil {
		return nil, errors.Wrap(ErrTypeMismatch, "FromMagnitude")
	}
	l := newList(base)
	if v.Sign() < 0 {
		return l, nil
	}
	if v.Sign() == 0 {
		l.insertBefore(nilNode, 0)
		return l, nil
	}
	// Repeated division by the base, prepending each remainder, builds the
	// sequence most-significant-first without a reversal pass.
	q := new(big.Int).Set(v)
	b := big.NewInt(int64(base))
	m := new(big.Int)
	for q.Sign() > 0 {
		q.DivMod(q, b, m)
		l.insertBefore(l.head, int(m.Int64()))
	}
	return l, nil
}

// ChangeBase returns an independent List holding the same value in the
// given base. The receiver is not modified.
func (l *List) ChangeBase(base int) (*List, error) {
	return FromMagnitude(l.Magnitude(), base)
}

// Subtract returns l - x as a new List in l's base. The operands need not
// share a base: both are normalized through their magnitudes first. A
// negative difference is not representable and yields the empty list; it
// is a defined outcome, not an error. Neither operand is modified.
func (l *List) Subtract(x *List) (*List, error) {
	if x == nil {
		return nil, errors.Wrap(ErrTypeMismatch, "Subtract")
	}
	diff := new(big.Int).Sub(l.Magnitude(), x.Magnitude())
	if diff.Sign() < 0 {
		return newList(l.base), nil
	}
	return FromMagnitude(diff, l.base)
}

// ParseDecimal converts pre-validated non-negative decimal digit text into
// a List in the given base. Text that is empty, signed, or contains a
// non-digit yields the empty list rather than an error, matching the
// lenient load path this package serves.
func ParseDecimal(s string, base int) (*List, error) {
	if base < 2 {
		return nil, errors.Errorf("invalid base %d: a numeral base must be at least 2", base)
	}
	if s == "" {
		return newList(base), nil
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return newList(base), nil
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return newList(base), nil
	}
	return FromMagnitude(v, base)
}

// DecimalString renders the list's value in decimal. Both zero
// representations render as "0".
func (l *List) DecimalString() string {
	return l.Magnitude().String()
}

// String renders the digits in the list's own base as a bare digit string
// with no separators, and the empty string for an empty list. Digits of 10
// and above render as multi-character decimal values.
func (l *List) String() string {
	if l.size == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(l.size)
	for id := l.head; id != nilNode; id = l.nodes[id].next {
		sb.WriteString(strconv.Itoa(l.nodes[id].digit))
	}
	return sb.String()
}
