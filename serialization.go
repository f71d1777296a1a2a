package numlist

import (
	"strconv"
	"strings"

	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// Lists travel as their decimal rendering plus the base, since a digit
// sequence of arbitrary magnitude does not fit any fixed-width wire
// integer. The empty "no value" list is carried as an empty value string
// so it round-trips distinctly from the canonical zero.

type bsonList struct {
	Base  int    `bson:"base"`
	Value string `bson:"value"`
}

// GetBSON implements bson.Getter.
func (l *List) GetBSON() (interface{}, error) {
	w := bsonList{Base: l.base}
	if !l.IsEmpty() {
		w.Value = l.DecimalString()
	}
	return w, nil
}

// SetBSON implements bson.Setter.
func (l *List) SetBSON(raw bson.Raw) error {
	var w bsonList
	if err := raw.Unmarshal(&w); err != nil {
		return errors.Wrapf(ErrTypeMismatch, "decode bson: %s", err)
	}
	return l.decode(w.Base, w.Value)
}

// MarshalText implements encoding.TextMarshaler using the form
// "base:decimal-value", e.g. "2:13".
func (l *List) MarshalText() ([]byte, error) {
	v := ""
	if !l.IsEmpty() {
		v = l.DecimalString()
	}
	return []byte(strconv.Itoa(l.base) + ":" + v), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *List) UnmarshalText(text []byte) error {
	s := string(text)
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return errors.Wrapf(ErrTypeMismatch, "no base separator in %q", s)
	}
	base, err := strconv.Atoi(s[:i])
	if err != nil {
		return errors.Wrapf(ErrTypeMismatch, "parse base: %s", err)
	}
	return l.decode(base, s[i+1:])
}

// decode replaces l with the list described by a serialized base and
// decimal value. Unlike ParseDecimal it is strict: a base below 2 or a
// malformed value is a TypeMismatch, not an empty list.
func (l *List) decode(base int, value string) error {
	if base < 2 {
		return errors.Wrapf(ErrTypeMismatch, "serialized base %d", base)
	}
	if value == "" {
		*l = *newList(base)
		return nil
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return errors.Wrapf(ErrTypeMismatch, "serialized value %q is not a decimal numeral", value)
		}
	}
	parsed, err := ParseDecimal(value, base)
	if err != nil {
		return err
	}
	*l = *parsed
	return nil
}
