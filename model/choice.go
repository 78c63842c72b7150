package model

import "github.com/damedic/fhir-codec-go/schema"

// Choice is the value of a value[x] field: exactly one variant of the
// field's catalog, tagged with the variant type name.
//
// The wire key is not stored; it is derived from the field name and Type.
type Choice struct {
	// Type is the variant type name as listed in the catalog, e.g. "dateTime" or "Quantity".
	Type string
	// Value is a *Scalar for primitive variants and an *Element otherwise.
	Value Value
}

// NewChoice tags a scalar or element with its type name.
func NewChoice(v Value) *Choice {
	switch v := v.(type) {
	case *Scalar:
		return &Choice{Type: v.Type, Value: v}
	case *Element:
		return &Choice{Type: v.Type().Name, Value: v}
	default:
		return nil
	}
}

// Key returns the wire key of the choice for the given base field name,
// e.g. "valueQuantity".
func (c *Choice) Key(base string) string {
	return schema.ChoiceKey(base, c.Type)
}

// Scalar returns the payload if it is primitive.
func (c *Choice) Scalar() (*Scalar, bool) {
	s, ok := c.Value.(*Scalar)
	return s, ok
}

// Element returns the payload if it is structured.
func (c *Choice) Element() (*Element, bool) {
	e, ok := c.Value.(*Element)
	return e, ok
}
