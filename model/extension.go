package model

import "encoding/json"

// Extension is a URL keyed attachment that may hang off almost any element,
// including the metadata of a primitive.
//
// Extensions nest: each one may carry further extensions. Every node is
// owned by the list that holds it.
type Extension struct {
	ID        *string
	Extension []*Extension
	URL       string
	// Value is the optional value[x] payload.
	Value *Choice

	retained []RetainedField
}

// Retained returns wire keys kept verbatim by a lenient decoder.
func (e *Extension) Retained() []RetainedField {
	return e.retained
}

// SetRetained replaces the retained wire keys.
func (e *Extension) SetRetained(fields []RetainedField) {
	e.retained = fields
}

// RetainedField is a wire key that is not declared by the schema,
// kept with its raw JSON so that it survives a round trip.
type RetainedField struct {
	Key string
	Raw json.RawMessage
}
