package model

import (
	"fmt"

	"github.com/damedic/fhir-codec-go/schema"
)

// Element is an instance of a datatype or backbone element, and the body of
// every resource.
//
// Fields are stored by their base name and iterated in schema order,
// base shape fields (id, extension, modifierExtension, ...) first.
type Element struct {
	typ      *schema.Type
	values   map[string]Value
	retained []RetainedField
}

// NewElement returns an empty element of the given type.
func NewElement(t *schema.Type) *Element {
	return &Element{typ: t, values: map[string]Value{}}
}

// Type returns the schema type of the element.
func (e *Element) Type() *schema.Type {
	return e.typ
}

// FieldValue is a populated field of an element.
type FieldValue struct {
	Field *schema.Field
	Value Value
}

// Fields returns the populated fields in schema order.
func (e *Element) Fields() []FieldValue {
	fields := make([]FieldValue, 0, len(e.values))
	for i := range e.typ.Fields {
		f := &e.typ.Fields[i]
		if v, ok := e.values[f.Name]; ok {
			fields = append(fields, FieldValue{Field: f, Value: v})
		}
	}
	return fields
}

// Len returns the number of populated fields.
func (e *Element) Len() int {
	return len(e.values)
}

// Get returns the value of the named field.
func (e *Element) Get(name string) (Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Set assigns the named field after checking the value against the schema.
// Setting nil or an empty List removes the field.
func (e *Element) Set(name string, v Value) error {
	f, ok := e.typ.Field(name)
	if !ok {
		return fmt.Errorf("%s has no field %s", e.typ.Name, name)
	}
	if v == nil {
		delete(e.values, name)
		return nil
	}
	if l, ok := v.(List); ok && len(l) == 0 {
		delete(e.values, name)
		return nil
	}
	if err := CheckField(f, v); err != nil {
		return fmt.Errorf("%s.%s: %w", e.typ.Name, name, err)
	}
	e.values[name] = v
	return nil
}

// MustSet is like Set but panics on error.
func (e *Element) MustSet(name string, v Value) *Element {
	if err := e.Set(name, v); err != nil {
		panic(err)
	}
	return e
}

// Scalar returns the named primitive field, or nil.
func (e *Element) Scalar(name string) *Scalar {
	s, _ := e.values[name].(*Scalar)
	return s
}

// Element returns the named structured field, or nil.
func (e *Element) Element(name string) *Element {
	el, _ := e.values[name].(*Element)
	return el
}

// Choice returns the named value[x] field, or nil.
func (e *Element) Choice(name string) *Choice {
	c, _ := e.values[name].(*Choice)
	return c
}

// Resource returns the named field holding an embedded resource, or nil.
func (e *Element) Resource(name string) *Resource {
	r, _ := e.values[name].(*Resource)
	return r
}

// List returns the values of the named repeated field.
func (e *Element) List(name string) List {
	l, _ := e.values[name].(List)
	return l
}

// ID returns the element id.
func (e *Element) ID() (string, bool) {
	s := e.Scalar("id")
	if !s.HasValue() {
		return "", false
	}
	return s.Value.String(), true
}

// Extensions returns the extension list.
func (e *Element) Extensions() []*Extension {
	return extensions(e.List("extension"))
}

// ModifierExtensions returns the modifierExtension list.
func (e *Element) ModifierExtensions() []*Extension {
	return extensions(e.List("modifierExtension"))
}

func extensions(l List) []*Extension {
	if len(l) == 0 {
		return nil
	}
	exts := make([]*Extension, 0, len(l))
	for _, v := range l {
		if ext, ok := v.(*Extension); ok {
			exts = append(exts, ext)
		}
	}
	return exts
}

// Retained returns wire keys kept verbatim by a lenient decoder.
func (e *Element) Retained() []RetainedField {
	return e.retained
}

// SetRetained replaces the retained wire keys.
func (e *Element) SetRetained(fields []RetainedField) {
	e.retained = fields
}

// CheckField reports whether v has the shape the field declares: a List for
// repeated fields, a *Choice with an allowed tag for value[x] fields, and a
// value matching the declared type otherwise.
func CheckField(f *schema.Field, v Value) error {
	if f.Multiple {
		l, ok := v.(List)
		if !ok {
			return fmt.Errorf("repeated field needs a List, got %T", v)
		}
		for i, item := range l {
			if err := checkSingle(f, item); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return nil
	}
	return checkSingle(f, v)
}

func checkSingle(f *schema.Field, v Value) error {
	if !f.Choice {
		return checkType(f.Single(), v)
	}
	c, ok := v.(*Choice)
	if !ok {
		return fmt.Errorf("choice field needs a *Choice, got %T", v)
	}
	variant, ok := f.Variant(c.Type)
	if !ok {
		return fmt.Errorf("type %s is not allowed", c.Type)
	}
	return checkType(variant.Type, c.Value)
}

func checkType(t *schema.Type, v Value) error {
	switch t.Kind {
	case schema.KindPrimitive, schema.KindSystem:
		s, ok := v.(*Scalar)
		if !ok {
			return fmt.Errorf("%s needs a *Scalar, got %T", t.Name, v)
		}
		if s.Type != t.Name {
			return fmt.Errorf("scalar of type %s where %s is declared", s.Type, t.Name)
		}
		if t.Kind == schema.KindSystem && (s.HasMetadata() || !s.HasValue()) {
			return fmt.Errorf("%s carries a plain value only", t.Name)
		}
		if s.Empty() {
			return fmt.Errorf("%s scalar has neither a value nor metadata", t.Name)
		}
		if s.Value != nil && !primitiveMatches(t, s.Value) {
			return fmt.Errorf("%T is not a valid %s value", s.Value, t.Name)
		}
		return nil
	case schema.KindAnyResource:
		if _, ok := v.(*Resource); !ok {
			return fmt.Errorf("%s needs a *Resource, got %T", t.Name, v)
		}
		return nil
	}

	if t.Name == schema.TypeExtension {
		if _, ok := v.(*Extension); !ok {
			return fmt.Errorf("%s needs an *Extension, got %T", t.Name, v)
		}
		return nil
	}
	el, ok := v.(*Element)
	if !ok {
		return fmt.Errorf("%s needs an *Element, got %T", t.Name, v)
	}
	if el.Type() != t {
		return fmt.Errorf("element of type %s where %s is declared", el.Type().Name, t.Name)
	}
	return nil
}

func primitiveMatches(t *schema.Type, p Primitive) bool {
	if t.Kind == schema.KindSystem {
		_, ok := p.(String)
		return ok
	}
	switch p.(type) {
	case Boolean:
		return t.Primitive == schema.PrimitiveBoolean
	case Number:
		return t.Primitive.Number()
	case Lexical:
		return t.Primitive == schema.PrimitiveLexical
	case String:
		return t.Primitive == schema.PrimitiveText
	default:
		return false
	}
}
