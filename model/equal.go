package model

import "bytes"

// Equal reports whether two trees are deeply equal.
//
// Numbers compare by their decimal text, so 1.5 and 1.50 differ: both
// spellings survive a round trip and are therefore distinct values.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case *Scalar:
		b, ok := b.(*Scalar)
		return ok && a.Equal(b)
	case *Extension:
		b, ok := b.(*Extension)
		return ok && a.Equal(b)
	case *Choice:
		b, ok := b.(*Choice)
		return ok && a.Equal(b)
	case *Element:
		b, ok := b.(*Element)
		return ok && a.Equal(b)
	case *Resource:
		b, ok := b.(*Resource)
		return ok && a.Equal(b)
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i := range a {
			if !Equal(a[i], b[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Equal reports whether s and o share type, value and metadata.
func (s *Scalar) Equal(o *Scalar) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.Type == o.Type &&
		equalStringPtr(s.ID, o.ID) &&
		equalExtensions(s.Extension, o.Extension) &&
		equalPrimitive(s.Value, o.Value)
}

// Equal reports whether e and o are the same extension, including retained unknown fields.
func (e *Extension) Equal(o *Extension) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.URL == o.URL &&
		equalStringPtr(e.ID, o.ID) &&
		equalExtensions(e.Extension, o.Extension) &&
		e.Value.Equal(o.Value) &&
		equalRetained(e.retained, o.retained)
}

// Equal reports whether c and o select the same variant with equal values.
func (c *Choice) Equal(o *Choice) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.Type == o.Type && Equal(c.Value, o.Value)
}

// Equal reports whether e and o have the same type and equal field values.
func (e *Element) Equal(o *Element) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.typ != o.typ || len(e.values) != len(o.values) {
		return false
	}
	for name, v := range e.values {
		ov, ok := o.values[name]
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return equalRetained(e.retained, o.retained)
}

// Equal reports whether r and o have equal bodies.
func (r *Resource) Equal(o *Resource) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.body.Equal(o.body)
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalExtensions(a, b []*Extension) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func equalPrimitive(a, b Primitive) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if an, ok := a.(Number); ok {
		bn, ok := b.(Number)
		return ok && an.String() == bn.String()
	}
	return a == b
}

func equalRetained(a, b []RetainedField) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || !bytes.Equal(a[i].Raw, b[i].Raw) {
			return false
		}
	}
	return true
}
