package model

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Primitive is the raw payload of a Scalar.
//
// Implementations are String, Lexical, Number and Boolean.
type Primitive interface {
	String() string
	isPrimitive()
}

// String is the value of a string-like primitive such as string, code or uri.
type String string

// Lexical is the opaque textual encoding of a date, dateTime, instant,
// time or base64Binary value. It is carried as written on the wire.
type Lexical string

// Boolean is the value of a boolean primitive.
type Boolean bool

// Number is the value of a decimal or integer primitive.
// The decimal keeps the precision it was written with.
type Number struct {
	Decimal *apd.Decimal
}

func (s String) String() string { return string(s) }
func (l Lexical) String() string { return string(l) }
func (b Boolean) String() string { return strconv.FormatBool(bool(b)) }

func (n Number) String() string {
	if n.Decimal == nil {
		return ""
	}
	return n.Decimal.Text('G')
}

// Int64 returns the number as an integer if it has no fractional part.
func (n Number) Int64() (int64, bool) {
	if n.Decimal == nil {
		return 0, false
	}
	i, err := n.Decimal.Int64()
	if err != nil {
		return 0, false
	}
	return i, true
}

func (String) isPrimitive() {}
func (Lexical) isPrimitive() {}
func (Boolean) isPrimitive() {}
func (Number) isPrimitive() {}
