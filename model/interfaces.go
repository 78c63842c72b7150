// Package model holds decoded FHIR data as a typed tree.
//
// Every node is bound to its schema type: elements and resources carry the
// *schema.Type they were built from, scalars and choices carry the name of
// their primitive or variant type. Trees are created by the codec or by the
// constructors of this package and are treated as immutable afterwards.
package model

// Value is any node of a decoded tree.
//
// The set of implementations is closed: *Scalar, *Extension, *Choice,
// *Element, *Resource and List.
type Value interface {
	// MemSize returns the approximate number of bytes retained by the value.
	MemSize() int
	isValue()
}

// List holds the values of a repeated field in wire order.
type List []Value

func (List) isValue() {}
func (*Scalar) isValue() {}
func (*Extension) isValue() {}
func (*Choice) isValue() {}
func (*Element) isValue() {}
func (*Resource) isValue() {}
