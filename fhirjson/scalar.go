package fhirjson

import (
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/schema"
)

// decodeScalar merges the value key and its "_" metadata sibling into one
// scalar. It returns nil when neither key is present.
func (c *Codec) decodeScalar(obj *wireObject, key string, t *schema.Type, path Path) (*model.Scalar, error) {
	val, hasVal := obj.take(key)
	meta, hasMeta := obj.take(schema.MetadataKey(key))
	if !hasVal && !hasMeta {
		return nil, nil
	}

	s := &model.Scalar{Type: t.Name}
	if hasVal {
		p, err := decodePrimitive(val, t, path.Field(key))
		if err != nil {
			return nil, err
		}
		s.Value = p
	}
	if hasMeta {
		if err := c.decodeMetadata(meta, s, path.Field(schema.MetadataKey(key))); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// decodeScalarList merges the parallel arrays of a repeated primitive.
// Index i of the value array pairs with index i of the metadata array,
// null marks a missing side.
func (c *Codec) decodeScalarList(obj *wireObject, key string, t *schema.Type, path Path) (model.List, error) {
	metaKey := schema.MetadataKey(key)
	val, hasVal := obj.take(key)
	meta, hasMeta := obj.take(metaKey)
	if !hasVal && !hasMeta {
		return nil, nil
	}

	var values, metas []wireValue
	var err error
	if hasVal {
		if val.typ != jsonparser.Array {
			return nil, newError(TypeMismatch, path.Field(key), "expected array, got %s", typeName(val.typ))
		}
		if values, err = scanArray(val.raw, path.Field(key)); err != nil {
			return nil, err
		}
	}
	if hasMeta {
		if meta.typ != jsonparser.Array {
			return nil, newError(MalformedMetadata, path.Field(metaKey), "expected array, got %s", typeName(meta.typ))
		}
		if metas, err = scanArray(meta.raw, path.Field(metaKey)); err != nil {
			return nil, err
		}
	}
	if hasVal && hasMeta && len(values) != len(metas) {
		return nil, newError(MalformedMetadata, path.Field(metaKey), "%d metadata entries for %d values", len(metas), len(values))
	}

	n := max(len(values), len(metas))
	if n == 0 {
		return nil, nil
	}
	l := make(model.List, n)
	for i := range n {
		hasValue := i < len(values) && values[i].typ != jsonparser.Null
		hasMetadata := i < len(metas) && metas[i].typ != jsonparser.Null
		if !hasValue && !hasMetadata {
			return nil, newError(TypeMismatch, path.Field(key).Index(i), "null entry without metadata")
		}

		s := &model.Scalar{Type: t.Name}
		if hasValue {
			if s.Value, err = decodePrimitive(values[i], t, path.Field(key).Index(i)); err != nil {
				return nil, err
			}
		}
		if hasMetadata {
			if err := c.decodeMetadata(metas[i], s, path.Field(metaKey).Index(i)); err != nil {
				return nil, err
			}
		}
		l[i] = s
	}
	return l, nil
}

// decodeMetadata reads an "_name" object. Only id and extension are allowed
// and at least one of them must be present.
func (c *Codec) decodeMetadata(v wireValue, s *model.Scalar, path Path) error {
	if v.typ != jsonparser.Object {
		return newError(MalformedMetadata, path, "expected object, got %s", typeName(v.typ))
	}
	obj, err := scanObject(v.raw, path)
	if err != nil {
		return err
	}

	for _, k := range obj.keys {
		item := obj.values[k]
		switch k {
		case "id":
			if item.typ != jsonparser.String {
				return newError(MalformedMetadata, path.Field(k), "expected string, got %s", typeName(item.typ))
			}
			id, err := plainString(item, path.Field(k))
			if err != nil {
				return err
			}
			s.ID = &id
		case "extension":
			if item.typ != jsonparser.Array {
				return newError(MalformedMetadata, path.Field(k), "expected array, got %s", typeName(item.typ))
			}
			if s.Extension, err = c.decodeExtensions(item, path.Field(k)); err != nil {
				return err
			}
		default:
			return newError(MalformedMetadata, path.Field(k), "only id and extension are allowed")
		}
	}
	if !s.HasMetadata() {
		return newError(MalformedMetadata, path, "empty metadata object")
	}
	return nil
}

func decodePrimitive(v wireValue, t *schema.Type, path Path) (model.Primitive, error) {
	switch p := t.Primitive; {
	case p == schema.PrimitiveBoolean:
		if v.typ != jsonparser.Boolean {
			return nil, mismatch(v, t, path)
		}
		b, err := jsonparser.ParseBoolean(v.raw)
		if err != nil {
			return nil, &Error{Kind: InvalidJSON, Path: path, Err: err}
		}
		return model.Boolean(b), nil

	case p.Integral():
		if v.typ != jsonparser.Number {
			return nil, mismatch(v, t, path)
		}
		i, err := strconv.ParseInt(string(v.raw), 10, 64)
		if err != nil {
			return nil, newError(TypeMismatch, path, "%s is not a valid %s", v.raw, t.Name)
		}
		if !integerInRange(p, i) {
			return nil, newError(TypeMismatch, path, "%d is out of range for %s", i, t.Name)
		}
		return model.Number{Decimal: apd.New(i, 0)}, nil

	case p == schema.PrimitiveDecimal:
		if v.typ != jsonparser.Number {
			return nil, mismatch(v, t, path)
		}
		d, _, err := apd.NewFromString(string(v.raw))
		if err != nil {
			return nil, newError(TypeMismatch, path, "%s is not a valid %s", v.raw, t.Name)
		}
		return model.Number{Decimal: d}, nil

	case p == schema.PrimitiveText || p == schema.PrimitiveLexical:
		if v.typ != jsonparser.String {
			return nil, mismatch(v, t, path)
		}
		s, err := v.string()
		if err != nil {
			return nil, &Error{Kind: InvalidJSON, Path: path, Err: err}
		}
		if p == schema.PrimitiveLexical {
			return model.Lexical(s), nil
		}
		return model.String(s), nil
	}
	return nil, newError(TypeMismatch, path, "%s has no wire encoding", t.Name)
}

func integerInRange(p schema.Primitive, i int64) bool {
	if i < math.MinInt32 || i > math.MaxInt32 {
		return false
	}
	switch p {
	case schema.PrimitivePositiveInt:
		return i >= 1
	case schema.PrimitiveUnsignedInt:
		return i >= 0
	default:
		return true
	}
}

func mismatch(v wireValue, t *schema.Type, path Path) *Error {
	if v.typ == jsonparser.Null {
		return newError(TypeMismatch, path, "null is not a valid %s", t.Name)
	}
	return newError(TypeMismatch, path, "expected %s, got %s", t.Name, typeName(v.typ))
}
