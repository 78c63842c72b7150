package model

import (
	"fmt"

	"github.com/damedic/fhir-codec-go/schema"
)

// Resource is any FHIR resource: one of the closed set of resource kinds
// of a catalog.
//
// The resourceType tag is not stored. It is the name of the kind the
// resource was created with.
type Resource struct {
	body *Element
}

// NewResource returns an empty resource of the given kind.
func NewResource(kind *schema.Type) (*Resource, error) {
	if kind == nil || !kind.IsResource() {
		return nil, fmt.Errorf("not a resource kind: %v", kindName(kind))
	}
	return &Resource{body: NewElement(kind)}, nil
}

// MustNewResource is like NewResource but panics on error.
func MustNewResource(kind *schema.Type) *Resource {
	r, err := NewResource(kind)
	if err != nil {
		panic(err)
	}
	return r
}

func kindName(t *schema.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.Name
}

// ResourceType returns the resource kind name, e.g. "Patient".
func (r *Resource) ResourceType() string {
	return r.body.typ.Name
}

// ResourceId returns the logical id of the resource.
func (r *Resource) ResourceId() (string, bool) {
	return r.body.ID()
}

// Kind returns the schema type of the resource.
func (r *Resource) Kind() *schema.Type {
	return r.body.typ
}

// Element returns the body holding all fields of the resource.
func (r *Resource) Element() *Element {
	return r.body
}

// Get returns the value of the named field.
func (r *Resource) Get(name string) (Value, bool) {
	return r.body.Get(name)
}

// Set assigns the named field, see Element.Set.
func (r *Resource) Set(name string, v Value) error {
	return r.body.Set(name, v)
}

// Contained returns the resources embedded in the contained field.
func (r *Resource) Contained() []*Resource {
	return Resources(r.body.List("contained"))
}

// Resources returns the resources of a list, skipping other values.
func Resources(l List) []*Resource {
	var rs []*Resource
	for _, v := range l {
		if res, ok := v.(*Resource); ok {
			rs = append(rs, res)
		}
	}
	return rs
}
