package model

import (
	"github.com/cockroachdb/apd/v3"
)

// Scalar is a primitive value merged with its sibling metadata.
//
// On the wire a primitive field name is split into the key "name" holding
// Value and the key "_name" holding ID and Extension. Value is nil when only
// the metadata key was present.
type Scalar struct {
	// Type is the primitive type name, e.g. "boolean" or "dateTime".
	Type      string
	ID        *string
	Extension []*Extension
	Value     Primitive
}

// HasValue reports whether the scalar carries a raw value.
func (s *Scalar) HasValue() bool {
	return s != nil && s.Value != nil
}

// HasMetadata reports whether the scalar carries an id or extensions.
func (s *Scalar) HasMetadata() bool {
	return s != nil && (s.ID != nil || len(s.Extension) > 0)
}

// Empty reports whether neither side of the scalar is present.
func (s *Scalar) Empty() bool {
	return !s.HasValue() && !s.HasMetadata()
}

// NewText returns a scalar of a string-like type, e.g. NewText("code", "final").
func NewText(typeName, v string) *Scalar {
	return &Scalar{Type: typeName, Value: String(v)}
}

// NewLexical returns a scalar holding the textual form of a date, time or binary type.
func NewLexical(typeName, v string) *Scalar {
	return &Scalar{Type: typeName, Value: Lexical(v)}
}

// NewBoolean returns a boolean scalar.
func NewBoolean(v bool) *Scalar {
	return &Scalar{Type: "boolean", Value: Boolean(v)}
}

// NewNumber returns a decimal or integer scalar.
func NewNumber(typeName string, d *apd.Decimal) *Scalar {
	return &Scalar{Type: typeName, Value: Number{Decimal: d}}
}

// NewInteger returns an integer scalar of the given type, e.g. "positiveInt".
func NewInteger(typeName string, v int64) *Scalar {
	return NewNumber(typeName, apd.New(v, 0))
}
