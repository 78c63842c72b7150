package fhirjson

import (
	"fmt"

	"github.com/buger/jsonparser"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/schema"
)

func (c *Codec) decodeResource(v wireValue, path Path) (*model.Resource, error) {
	if v.typ != jsonparser.Object {
		return nil, newError(TypeMismatch, path, "expected resource object, got %s", typeName(v.typ))
	}
	obj, err := scanObject(v.raw, path)
	if err != nil {
		return nil, err
	}

	tag, ok := obj.take("resourceType")
	if !ok {
		return nil, newError(MissingRequiredField, path.Field("resourceType"), "no resourceType tag")
	}
	if tag.typ != jsonparser.String {
		return nil, newError(TypeMismatch, path.Field("resourceType"), "expected string, got %s", typeName(tag.typ))
	}
	name, err := tag.string()
	if err != nil {
		return nil, &Error{Kind: InvalidJSON, Path: path.Field("resourceType"), Err: err}
	}
	kind, ok := c.catalog.Resource(name)
	if !ok {
		return nil, newError(UnknownResourceKind, path, "%q", name)
	}

	r := model.MustNewResource(kind)
	if err := c.decodeFields(obj, r.Element(), path); err != nil {
		return nil, err
	}
	return r, nil
}

func (c *Codec) decodeElement(v wireValue, t *schema.Type, path Path) (*model.Element, error) {
	if v.typ != jsonparser.Object {
		return nil, newError(TypeMismatch, path, "expected %s object, got %s", t.Name, typeName(v.typ))
	}
	obj, err := scanObject(v.raw, path)
	if err != nil {
		return nil, err
	}
	el := model.NewElement(t)
	if err := c.decodeFields(obj, el, path); err != nil {
		return nil, err
	}
	return el, nil
}

// decodeFields fills el from obj in schema order, then applies the unknown
// field policy to whatever keys are left.
func (c *Codec) decodeFields(obj *wireObject, el *model.Element, path Path) error {
	t := el.Type()
	for i := range t.Fields {
		f := &t.Fields[i]
		v, err := c.decodeField(obj, f, path)
		if err != nil {
			return err
		}
		if v == nil {
			if !f.Optional() {
				return newError(MissingRequiredField, path.Field(f.Name), "%s.%s is required", t.Name, f.Name)
			}
			continue
		}
		if err := el.Set(f.Name, v); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	retained, err := c.leftovers(obj, path)
	if err != nil {
		return err
	}
	el.SetRetained(retained)
	return nil
}

// decodeField returns nil when no wire key of f is present.
func (c *Codec) decodeField(obj *wireObject, f *schema.Field, path Path) (model.Value, error) {
	if f.Choice {
		ch, err := c.decodeChoice(obj, f, path)
		if ch == nil || err != nil {
			return nil, err
		}
		return ch, nil
	}

	t := f.Single()
	if t.IsPrimitive() {
		if f.Multiple {
			l, err := c.decodeScalarList(obj, f.Name, t, path)
			if l == nil || err != nil {
				return nil, err
			}
			return l, nil
		}
		s, err := c.decodeScalar(obj, f.Name, t, path)
		if s == nil || err != nil {
			return nil, err
		}
		return s, nil
	}

	v, ok := obj.take(f.Name)
	if !ok {
		return nil, nil
	}
	p := path.Field(f.Name)
	if !f.Multiple {
		return c.decodeSingle(v, t, p)
	}

	if v.typ != jsonparser.Array {
		return nil, newError(TypeMismatch, p, "expected array, got %s", typeName(v.typ))
	}
	items, err := scanArray(v.raw, p)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	l := make(model.List, len(items))
	for i, item := range items {
		if l[i], err = c.decodeSingle(item, t, p.Index(i)); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// decodeSingle decodes one non-primitive value of type t.
func (c *Codec) decodeSingle(v wireValue, t *schema.Type, path Path) (model.Value, error) {
	switch {
	case t.Kind == schema.KindSystem:
		return c.decodeSystem(v, t, path)
	case t.Kind == schema.KindAnyResource:
		return c.decodeResource(v, path)
	case t.Name == schema.TypeExtension:
		return c.decodeExtension(v, path)
	default:
		return c.decodeElement(v, t, path)
	}
}

func (c *Codec) decodeSystem(v wireValue, t *schema.Type, path Path) (*model.Scalar, error) {
	s, err := plainString(v, path)
	if err != nil {
		return nil, err
	}
	return model.NewText(t.Name, s), nil
}

func plainString(v wireValue, path Path) (string, error) {
	if v.typ != jsonparser.String {
		return "", newError(TypeMismatch, path, "expected string, got %s", typeName(v.typ))
	}
	s, err := v.string()
	if err != nil {
		return "", &Error{Kind: InvalidJSON, Path: path, Err: err}
	}
	return s, nil
}

func (c *Codec) decodeExtension(v wireValue, path Path) (*model.Extension, error) {
	if v.typ != jsonparser.Object {
		return nil, newError(TypeMismatch, path, "expected Extension object, got %s", typeName(v.typ))
	}
	if c.extension == nil {
		return nil, fmt.Errorf("catalog %s defines no Extension type", c.catalog.Release())
	}
	obj, err := scanObject(v.raw, path)
	if err != nil {
		return nil, err
	}

	ext := &model.Extension{}
	if id, ok := obj.take("id"); ok {
		s, err := plainString(id, path.Field("id"))
		if err != nil {
			return nil, err
		}
		ext.ID = &s
	}
	if nested, ok := obj.take("extension"); ok {
		if ext.Extension, err = c.decodeExtensions(nested, path.Field("extension")); err != nil {
			return nil, err
		}
	}
	url, ok := obj.take("url")
	if !ok {
		return nil, newError(MissingRequiredField, path.Field("url"), "Extension.url is required")
	}
	if ext.URL, err = plainString(url, path.Field("url")); err != nil {
		return nil, err
	}
	if f, ok := c.extension.Field("value"); ok {
		if ext.Value, err = c.decodeChoice(obj, f, path); err != nil {
			return nil, err
		}
	}

	retained, err := c.leftovers(obj, path)
	if err != nil {
		return nil, err
	}
	ext.SetRetained(retained)
	return ext, nil
}

func (c *Codec) decodeExtensions(v wireValue, path Path) ([]*model.Extension, error) {
	if v.typ != jsonparser.Array {
		return nil, newError(TypeMismatch, path, "expected array, got %s", typeName(v.typ))
	}
	items, err := scanArray(v.raw, path)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	exts := make([]*model.Extension, len(items))
	for i, item := range items {
		if exts[i], err = c.decodeExtension(item, path.Index(i)); err != nil {
			return nil, err
		}
	}
	return exts, nil
}

// leftovers applies the unknown field policy to the keys no field consumed.
func (c *Codec) leftovers(obj *wireObject, path Path) ([]model.RetainedField, error) {
	keys := obj.unused()
	if len(keys) == 0 {
		return nil, nil
	}
	if c.opts.UnknownFields == RejectUnknownFields {
		return nil, newError(UnexpectedField, path.Field(keys[0]), "key is not declared")
	}
	retained := make([]model.RetainedField, len(keys))
	for i, k := range keys {
		retained[i] = model.RetainedField{Key: k, Raw: obj.values[k].json()}
		c.log.Debug().Str("path", path.Field(k).String()).Msg("retaining unknown field")
	}
	return retained, nil
}
