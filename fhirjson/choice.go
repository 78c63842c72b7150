package fhirjson

import (
	"strings"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/schema"
)

// decodeChoice picks the single variant of a value[x] field present in obj.
// A primitive variant is present if either its value key or its metadata
// key is. It returns nil when no variant is present.
func (c *Codec) decodeChoice(obj *wireObject, f *schema.Field, path Path) (*model.Choice, error) {
	var (
		matched []schema.Variant
		keys    []string
	)
	for _, v := range f.Variants() {
		found := false
		if obj.has(v.Key) {
			keys = append(keys, v.Key)
			found = true
		}
		if v.Type.IsPrimitive() && obj.has(schema.MetadataKey(v.Key)) {
			keys = append(keys, schema.MetadataKey(v.Key))
			found = true
		}
		if found {
			matched = append(matched, v)
		}
	}

	switch len(matched) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, newError(AmbiguousChoice, path.Field(f.Name), "%s", strings.Join(keys, ", "))
	}

	v := matched[0]
	if v.Type.IsPrimitive() {
		s, err := c.decodeScalar(obj, v.Key, v.Type, path)
		if err != nil {
			return nil, err
		}
		return &model.Choice{Type: v.Type.Name, Value: s}, nil
	}

	raw, _ := obj.take(v.Key)
	value, err := c.decodeSingle(raw, v.Type, path.Field(v.Key))
	if err != nil {
		return nil, err
	}
	return &model.Choice{Type: v.Type.Name, Value: value}, nil
}
