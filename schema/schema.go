// Package schema describes the structures of a FHIR release as data.
//
// A Catalog lists every primitive type, datatype, backbone element and
// resource kind together with their fields. The codec walks this table
// instead of relying on one generated parser per structure, so the codec
// stays the same no matter how many kinds a release defines.
package schema

import (
	"slices"

	"github.com/iancoleman/strcase"
)

// Kind classifies a Type.
type Kind int

const (
	// KindPrimitive is a FHIR primitive like boolean or dateTime.
	KindPrimitive Kind = iota
	// KindComplex is a general purpose or metadata datatype like HumanName.
	KindComplex
	// KindBackbone is a structure nested inside a resource or a datatype.
	KindBackbone
	// KindResource is a root structure selected by the resourceType tag.
	KindResource
	// KindAnyResource is the target of fields that embed a full resource,
	// e.g. DomainResource.contained and Bundle.entry.resource.
	KindAnyResource
	// KindSystem is a plain JSON string without sibling metadata,
	// used for Element.id and Extension.url.
	KindSystem
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindComplex:
		return "complex"
	case KindBackbone:
		return "backbone"
	case KindResource:
		return "resource"
	case KindAnyResource:
		return "any-resource"
	case KindSystem:
		return "system"
	default:
		return "unknown"
	}
}

// Primitive names the wire encoding of a primitive type.
type Primitive int

const (
	PrimitiveNone Primitive = iota
	PrimitiveBoolean
	PrimitiveInteger
	PrimitivePositiveInt
	PrimitiveUnsignedInt
	PrimitiveDecimal
	// PrimitiveText covers string-like types: string, code, id, uri, markdown, ...
	PrimitiveText
	// PrimitiveLexical covers opaque textual encodings: date, dateTime, instant, time, base64Binary.
	PrimitiveLexical
)

// Number reports whether values of p are JSON numbers on the wire.
func (p Primitive) Number() bool {
	switch p {
	case PrimitiveInteger, PrimitivePositiveInt, PrimitiveUnsignedInt, PrimitiveDecimal:
		return true
	default:
		return false
	}
}

// Integral reports whether values of p must not carry a fraction.
func (p Primitive) Integral() bool {
	switch p {
	case PrimitiveInteger, PrimitivePositiveInt, PrimitiveUnsignedInt:
		return true
	default:
		return false
	}
}

// Base is the shared shape whose fields precede the declared fields of a type.
type Base int

const (
	BaseNone Base = iota
	// BaseElement adds id and extension.
	BaseElement
	// BaseBackboneElement adds id, extension and modifierExtension.
	BaseBackboneElement
	// BaseResource adds id, meta, implicitRules and language.
	BaseResource
	// BaseDomainResource adds the Resource fields plus text, contained,
	// extension and modifierExtension.
	BaseDomainResource
)

// Names of the reserved types every catalog carries.
const (
	TypeSystemString = "System.String"
	TypeResource     = "Resource"
	TypeExtension    = "Extension"
)

// Type is one named structure of the schema.
type Type struct {
	Name      string
	Kind      Kind
	Base      Base
	Primitive Primitive
	// Fields lists base shape fields followed by the declared fields, in wire order.
	Fields []Field

	index map[string]int
	// keys maps every wire key a field of this type can occupy to the field index.
	keys map[string]int
}

// IsPrimitive reports whether values of t split into a value and a metadata key.
func (t *Type) IsPrimitive() bool {
	return t.Kind == KindPrimitive
}

// IsResource reports whether t is a resource kind.
func (t *Type) IsResource() bool {
	return t.Kind == KindResource
}

// Field returns the field with the given base name.
func (t *Type) Field(name string) (*Field, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return &t.Fields[i], true
}

// FieldForKey returns the field that owns the given wire key, including
// choice variant keys and sibling metadata keys.
func (t *Type) FieldForKey(key string) (*Field, bool) {
	i, ok := t.keys[key]
	if !ok {
		return nil, false
	}
	return &t.Fields[i], true
}

// DeclaredFields returns the fields of t without those of its base shape.
func (t *Type) DeclaredFields() []Field {
	return t.Fields[len(baseFields(t.Base)):]
}

// Field is a declared field of a Type.
type Field struct {
	// Name is the base wire name, e.g. "value" for value[x].
	Name     string
	Min      int
	Multiple bool
	// Choice marks a value[x] field; Types is then its catalog of allowed types.
	Choice bool
	Types  []string

	variants []Variant
}

// Optional reports whether the field may be absent.
func (f *Field) Optional() bool {
	return f.Min == 0
}

// Variant is one allowed type of a field together with its wire key.
type Variant struct {
	Type *Type
	// Key is the wire key holding the value: the field name, or for choice
	// fields the field name suffixed with the type name.
	Key string
}

// Variants returns the resolved types of the field in catalog order.
func (f *Field) Variants() []Variant {
	return f.variants
}

// Variant returns the variant for the given type name.
func (f *Field) Variant(typeName string) (Variant, bool) {
	i := slices.IndexFunc(f.variants, func(v Variant) bool { return v.Type.Name == typeName })
	if i < 0 {
		return Variant{}, false
	}
	return f.variants[i], true
}

// Single returns the only type of a non-choice field.
func (f *Field) Single() *Type {
	return f.variants[0].Type
}

// Suffix returns the choice suffix for a type name, e.g. "DateTime" for "dateTime".
func Suffix(typeName string) string {
	return strcase.ToCamel(typeName)
}

// ChoiceKey returns the wire key of a choice variant, e.g. "valueDateTime".
func ChoiceKey(base, typeName string) string {
	return base + Suffix(typeName)
}

// MetadataKey returns the sibling key that carries id and extension of a primitive.
func MetadataKey(key string) string {
	return "_" + key
}

func baseFields(b Base) []Field {
	element := []Field{
		{Name: "id", Types: []string{TypeSystemString}},
		{Name: "extension", Multiple: true, Types: []string{TypeExtension}},
	}
	resource := []Field{
		{Name: "id", Types: []string{"id"}},
		{Name: "meta", Types: []string{"Meta"}},
		{Name: "implicitRules", Types: []string{"uri"}},
		{Name: "language", Types: []string{"code"}},
	}

	switch b {
	case BaseElement:
		return element
	case BaseBackboneElement:
		return append(element, Field{Name: "modifierExtension", Multiple: true, Types: []string{TypeExtension}})
	case BaseResource:
		return resource
	case BaseDomainResource:
		return append(resource,
			Field{Name: "text", Types: []string{"Narrative"}},
			Field{Name: "contained", Multiple: true, Types: []string{TypeResource}},
			Field{Name: "extension", Multiple: true, Types: []string{TypeExtension}},
			Field{Name: "modifierExtension", Multiple: true, Types: []string{TypeExtension}},
		)
	default:
		return nil
	}
}

// IsBaseField reports whether name is contributed by the base shape b.
func IsBaseField(b Base, name string) bool {
	return slices.ContainsFunc(baseFields(b), func(f Field) bool { return f.Name == name })
}
