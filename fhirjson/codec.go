// Package fhirjson reads and writes FHIR resources in their JSON representation.
//
// Decoding walks the wire object against a schema.Catalog: primitive values
// are merged with their "_name" metadata siblings, value[x] keys are
// dispatched to the declared variant and the resourceType tag selects the
// resource kind. Encoding is the exact inverse.
//
// A Codec holds no mutable state and can be shared between goroutines.
package fhirjson

import (
	"encoding/json"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/buger/jsonparser"
	"github.com/rs/zerolog"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/schema"
)

// UnknownFieldPolicy selects how the decoder treats keys the schema does not declare.
type UnknownFieldPolicy int

const (
	// RejectUnknownFields fails with UnexpectedField on the first undeclared key.
	RejectUnknownFields UnknownFieldPolicy = iota
	// RetainUnknownFields keeps undeclared keys verbatim and writes them back on encode.
	RetainUnknownFields
)

// Options configure a Codec. The zero value is strict and silent.
type Options struct {
	UnknownFields UnknownFieldPolicy
	// Logger receives debug events about retained fields. Nil disables logging.
	Logger *zerolog.Logger
}

// Codec decodes and encodes resources of one catalog.
type Codec struct {
	catalog   *schema.Catalog
	extension *schema.Type
	opts      Options
	log       zerolog.Logger
}

// New returns a codec for the given catalog.
func New(catalog *schema.Catalog, opts Options) *Codec {
	c := &Codec{catalog: catalog, opts: opts, log: zerolog.Nop()}
	if opts.Logger != nil {
		c.log = *opts.Logger
	}
	c.extension, _ = catalog.Type(schema.TypeExtension)
	return c
}

// Catalog returns the catalog the codec decodes against.
func (c *Codec) Catalog() *schema.Catalog {
	return c.catalog
}

// Unmarshal decodes a single resource. The returned tree does not alias data.
func (c *Codec) Unmarshal(data []byte) (*model.Resource, error) {
	root, err := c.root(data)
	if err != nil {
		return nil, err
	}
	return c.decodeResource(root, nil)
}

// Decode reads r to the end and decodes a single resource.
func (c *Codec) Decode(r io.Reader) (*model.Resource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read resource: %w", err)
	}
	return c.Unmarshal(data)
}

// UnmarshalElement decodes a datatype or backbone element of the named type,
// e.g. a single Quantity.
func (c *Codec) UnmarshalElement(data []byte, typeName string) (*model.Element, error) {
	t, ok := c.catalog.Type(typeName)
	if !ok {
		return nil, fmt.Errorf("unknown type %s", typeName)
	}
	if t.Kind != schema.KindComplex && t.Kind != schema.KindBackbone || t.Name == schema.TypeExtension {
		return nil, fmt.Errorf("%s is not a datatype or backbone element", typeName)
	}
	root, err := c.root(data)
	if err != nil {
		return nil, err
	}
	return c.decodeElement(root, t, nil)
}

func (c *Codec) root(data []byte) (wireValue, error) {
	if !json.Valid(data) {
		return wireValue{}, &Error{Kind: InvalidJSON, Detail: "malformed document"}
	}
	if !utf8.Valid(data) {
		return wireValue{}, &Error{Kind: InvalidJSON, Detail: "invalid UTF-8"}
	}
	value, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return wireValue{}, &Error{Kind: InvalidJSON, Err: err}
	}
	return wireValue{raw: value, typ: typ}, nil
}

// Marshal encodes a resource.
func (c *Codec) Marshal(r *model.Resource) ([]byte, error) {
	e := newEncoder(c)
	if err := e.resource(r); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// Encode writes the encoding of r to w.
func (c *Codec) Encode(w io.Writer, r *model.Resource) error {
	data, err := c.Marshal(r)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// MarshalElement encodes a datatype or backbone element.
func (c *Codec) MarshalElement(el *model.Element) ([]byte, error) {
	e := newEncoder(c)
	if err := e.element(el); err != nil {
		return nil, err
	}
	return e.buf.Bytes(), nil
}

// PeekResourceType returns the resourceType tag of a document without
// decoding the rest of it.
func PeekResourceType(data []byte) (string, error) {
	v, typ, _, err := jsonparser.Get(data, "resourceType")
	if err == jsonparser.KeyPathNotFoundError {
		return "", newError(MissingRequiredField, Path{}.Field("resourceType"), "no resourceType tag")
	}
	if err != nil {
		return "", &Error{Kind: InvalidJSON, Err: err}
	}
	if typ != jsonparser.String {
		return "", newError(TypeMismatch, Path{}.Field("resourceType"), "expected string, got %s", typeName(typ))
	}
	tag, err := jsonparser.ParseString(v)
	if err != nil {
		return "", &Error{Kind: InvalidJSON, Path: Path{}.Field("resourceType"), Err: err}
	}
	return tag, nil
}
