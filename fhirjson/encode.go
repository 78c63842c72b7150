package fhirjson

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/schema"
)

type encoder struct {
	c   *Codec
	buf bytes.Buffer
	enc *json.Encoder
}

func newEncoder(c *Codec) *encoder {
	e := &encoder{c: c}
	e.enc = json.NewEncoder(&e.buf)
	e.enc.SetEscapeHTML(false)
	return e
}

// object tracks the comma state of one JSON object being written.
type object struct {
	e        *encoder
	setComma bool
}

func (e *encoder) open() *object {
	e.buf.WriteByte('{')
	return &object{e: e}
}

func (o *object) close() {
	o.e.buf.WriteByte('}')
}

func (o *object) key(k string) {
	if o.setComma {
		o.e.buf.WriteByte(',')
	}
	o.setComma = true
	o.e.string(k)
	o.e.buf.WriteByte(':')
}

func (o *object) retained(fields []model.RetainedField) {
	for _, f := range fields {
		o.key(f.Key)
		o.e.buf.Write(f.Raw)
	}
}

func (e *encoder) string(s string) {
	// Encode cannot fail for a string; it appends a newline.
	_ = e.enc.Encode(s)
	e.buf.Truncate(e.buf.Len() - 1)
}

func (e *encoder) resource(r *model.Resource) error {
	if r == nil {
		return fmt.Errorf("nil resource")
	}
	o := e.open()
	o.key("resourceType")
	e.string(r.ResourceType())
	if err := e.fields(o, r.Element()); err != nil {
		return fmt.Errorf("%s: %w", r.ResourceType(), err)
	}
	o.close()
	return nil
}

func (e *encoder) element(el *model.Element) error {
	if el == nil {
		return fmt.Errorf("nil element")
	}
	o := e.open()
	if err := e.fields(o, el); err != nil {
		return err
	}
	o.close()
	return nil
}

func (e *encoder) fields(o *object, el *model.Element) error {
	for _, fv := range el.Fields() {
		if err := e.field(o, fv.Field, fv.Value); err != nil {
			return fmt.Errorf("%s: %w", fv.Field.Name, err)
		}
	}
	o.retained(el.Retained())
	return nil
}

func (e *encoder) field(o *object, f *schema.Field, v model.Value) error {
	if f.Choice {
		c, ok := v.(*model.Choice)
		if !ok {
			return fmt.Errorf("expected *model.Choice, got %T", v)
		}
		variant, ok := f.Variant(c.Type)
		if !ok {
			return fmt.Errorf("type %s is not allowed", c.Type)
		}
		return e.single(o, variant, c.Value)
	}

	variant := f.Variants()[0]
	if !f.Multiple {
		return e.single(o, variant, v)
	}
	l, ok := v.(model.List)
	if !ok {
		return fmt.Errorf("expected model.List, got %T", v)
	}
	if variant.Type.IsPrimitive() {
		return e.scalarList(o, variant.Key, l)
	}

	o.key(variant.Key)
	e.buf.WriteByte('[')
	for i, item := range l {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.value(variant.Type, item); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	e.buf.WriteByte(']')
	return nil
}

// single writes one value under the variant key. Primitives split into the
// value key and its metadata sibling.
func (e *encoder) single(o *object, variant schema.Variant, v model.Value) error {
	if variant.Type.IsPrimitive() {
		s, ok := v.(*model.Scalar)
		if !ok {
			return fmt.Errorf("expected *model.Scalar, got %T", v)
		}
		if s.HasValue() {
			o.key(variant.Key)
			if err := e.primitive(s.Value); err != nil {
				return err
			}
		}
		if s.HasMetadata() {
			o.key(schema.MetadataKey(variant.Key))
			if err := e.metadata(s); err != nil {
				return err
			}
		}
		return nil
	}

	o.key(variant.Key)
	return e.value(variant.Type, v)
}

// value writes a non-primitive value of type t.
func (e *encoder) value(t *schema.Type, v model.Value) error {
	switch {
	case t.Kind == schema.KindSystem:
		s, ok := v.(*model.Scalar)
		if !ok || !s.HasValue() {
			return fmt.Errorf("expected plain %s value, got %T", t.Name, v)
		}
		e.string(s.Value.String())
		return nil
	case t.Kind == schema.KindAnyResource:
		r, ok := v.(*model.Resource)
		if !ok {
			return fmt.Errorf("expected *model.Resource, got %T", v)
		}
		return e.resource(r)
	case t.Name == schema.TypeExtension:
		ext, ok := v.(*model.Extension)
		if !ok {
			return fmt.Errorf("expected *model.Extension, got %T", v)
		}
		return e.extension(ext)
	default:
		el, ok := v.(*model.Element)
		if !ok {
			return fmt.Errorf("expected *model.Element, got %T", v)
		}
		return e.element(el)
	}
}

// scalarList writes the parallel value and metadata arrays of a repeated
// primitive. An array is omitted when none of its entries is set.
func (e *encoder) scalarList(o *object, key string, l model.List) error {
	scalars := make([]*model.Scalar, len(l))
	anyValue, anyMetadata := false, false
	for i, v := range l {
		s, ok := v.(*model.Scalar)
		if !ok {
			return fmt.Errorf("[%d]: expected *model.Scalar, got %T", i, v)
		}
		scalars[i] = s
		anyValue = anyValue || s.HasValue()
		anyMetadata = anyMetadata || s.HasMetadata()
	}

	if anyValue {
		o.key(key)
		e.buf.WriteByte('[')
		for i, s := range scalars {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if !s.HasValue() {
				e.buf.WriteString("null")
				continue
			}
			if err := e.primitive(s.Value); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		e.buf.WriteByte(']')
	}
	if anyMetadata {
		o.key(schema.MetadataKey(key))
		e.buf.WriteByte('[')
		for i, s := range scalars {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			if !s.HasMetadata() {
				e.buf.WriteString("null")
				continue
			}
			if err := e.metadata(s); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		e.buf.WriteByte(']')
	}
	return nil
}

func (e *encoder) primitive(p model.Primitive) error {
	switch p := p.(type) {
	case model.String:
		e.string(string(p))
	case model.Lexical:
		e.string(string(p))
	case model.Boolean:
		if p {
			e.buf.WriteString("true")
		} else {
			e.buf.WriteString("false")
		}
	case model.Number:
		if p.Decimal == nil {
			return fmt.Errorf("number without decimal")
		}
		e.buf.WriteString(p.Decimal.Text('G'))
	default:
		return fmt.Errorf("unsupported primitive %T", p)
	}
	return nil
}

func (e *encoder) metadata(s *model.Scalar) error {
	o := e.open()
	if s.ID != nil {
		o.key("id")
		e.string(*s.ID)
	}
	if len(s.Extension) > 0 {
		o.key("extension")
		if err := e.extensions(s.Extension); err != nil {
			return err
		}
	}
	o.close()
	return nil
}

func (e *encoder) extensions(exts []*model.Extension) error {
	e.buf.WriteByte('[')
	for i, ext := range exts {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		if err := e.extension(ext); err != nil {
			return fmt.Errorf("[%d]: %w", i, err)
		}
	}
	e.buf.WriteByte(']')
	return nil
}

func (e *encoder) extension(ext *model.Extension) error {
	if ext == nil {
		return fmt.Errorf("nil extension")
	}
	o := e.open()
	if ext.ID != nil {
		o.key("id")
		e.string(*ext.ID)
	}
	if len(ext.Extension) > 0 {
		o.key("extension")
		if err := e.extensions(ext.Extension); err != nil {
			return err
		}
	}
	o.key("url")
	e.string(ext.URL)
	if ext.Value != nil {
		if e.c.extension == nil {
			return fmt.Errorf("catalog %s defines no Extension type", e.c.catalog.Release())
		}
		f, ok := e.c.extension.Field("value")
		if !ok {
			return fmt.Errorf("extension type has no value field")
		}
		if err := e.field(o, f, ext.Value); err != nil {
			return fmt.Errorf("value: %w", err)
		}
	}
	o.retained(ext.Retained())
	o.close()
	return nil
}
