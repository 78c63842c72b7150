package fhirjson

import (
	"errors"

	"github.com/buger/jsonparser"
)

// wireValue is a raw JSON value as reported by jsonparser. String values
// are still escaped and have their quotes removed.
type wireValue struct {
	raw []byte
	typ jsonparser.ValueType
}

// json returns an independent copy of the value as a complete JSON text.
func (v wireValue) json() []byte {
	if v.typ == jsonparser.String {
		b := make([]byte, 0, len(v.raw)+2)
		b = append(b, '"')
		b = append(b, v.raw...)
		return append(b, '"')
	}
	return append([]byte(nil), v.raw...)
}

func (v wireValue) string() (string, error) {
	return jsonparser.ParseString(v.raw)
}

func typeName(t jsonparser.ValueType) string {
	switch t {
	case jsonparser.String:
		return "string"
	case jsonparser.Number:
		return "number"
	case jsonparser.Object:
		return "object"
	case jsonparser.Array:
		return "array"
	case jsonparser.Boolean:
		return "boolean"
	case jsonparser.Null:
		return "null"
	default:
		return "unknown"
	}
}

// wireObject holds the members of one JSON object and tracks which keys the
// decoder consumed.
type wireObject struct {
	keys   []string
	values map[string]wireValue
	used   map[string]bool
}

var errDuplicateKey = errors.New("duplicate key")

func scanObject(data []byte, path Path) (*wireObject, error) {
	obj := &wireObject{values: map[string]wireValue{}, used: map[string]bool{}}
	var dup string
	err := jsonparser.ObjectEach(data, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}
		if _, ok := obj.values[k]; ok {
			dup = k
			return errDuplicateKey
		}
		obj.keys = append(obj.keys, k)
		obj.values[k] = wireValue{raw: value, typ: typ}
		return nil
	})
	if errors.Is(err, errDuplicateKey) {
		return nil, newError(DuplicateField, path.Field(dup), "key occurs more than once")
	}
	if err != nil {
		return nil, &Error{Kind: InvalidJSON, Path: path, Err: err}
	}
	return obj, nil
}

func (o *wireObject) has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// take returns the value of key and marks the key as consumed.
func (o *wireObject) take(key string) (wireValue, bool) {
	v, ok := o.values[key]
	if ok {
		o.used[key] = true
	}
	return v, ok
}

// unused returns the keys nobody took, in wire order.
func (o *wireObject) unused() []string {
	var keys []string
	for _, k := range o.keys {
		if !o.used[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

func scanArray(data []byte, path Path) ([]wireValue, error) {
	var items []wireValue
	var itemErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if err != nil {
			if itemErr == nil {
				itemErr = err
			}
			return
		}
		items = append(items, wireValue{raw: value, typ: typ})
	})
	if err == nil {
		err = itemErr
	}
	if err != nil {
		return nil, &Error{Kind: InvalidJSON, Path: path, Err: err}
	}
	return items, nil
}
