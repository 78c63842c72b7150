package schema

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/rs/zerolog"
)

// primitives maps the published primitive type names to their wire encoding.
var primitives = map[string]Primitive{
	"base64Binary": PrimitiveLexical,
	"boolean":      PrimitiveBoolean,
	"canonical":    PrimitiveText,
	"code":         PrimitiveText,
	"date":         PrimitiveLexical,
	"dateTime":     PrimitiveLexical,
	"decimal":      PrimitiveDecimal,
	"id":           PrimitiveText,
	"instant":      PrimitiveLexical,
	"integer":      PrimitiveInteger,
	"integer64":    PrimitiveLexical,
	"markdown":     PrimitiveText,
	"oid":          PrimitiveText,
	"positiveInt":  PrimitivePositiveInt,
	"string":       PrimitiveText,
	"time":         PrimitiveLexical,
	"unsignedInt":  PrimitiveUnsignedInt,
	"uri":          PrimitiveText,
	"url":          PrimitiveText,
	"uuid":         PrimitiveText,
	"xhtml":        PrimitiveText,
}

// shapes are provided by the Base of each type.
var shapes = []string{"Element", "BackboneElement", "Resource", "DomainResource"}

// LoadOptions controls LoadDefinitions.
type LoadOptions struct {
	// Resources restricts the loaded resource kinds. An empty list loads every resource kind.
	Resources []string
	// Types restricts the loaded datatypes the same way. Primitive types are always loaded.
	Types []string
	// Logger receives a debug event for every skipped definition. Nil disables logging.
	Logger *zerolog.Logger
}

type definitionsBundle struct {
	Entry []struct {
		Resource structureDefinition `json:"resource"`
	} `json:"entry"`
}

type structureDefinition struct {
	ResourceType   string `json:"resourceType"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	Abstract       bool   `json:"abstract"`
	Type           string `json:"type"`
	BaseDefinition string `json:"baseDefinition"`
	Derivation     string `json:"derivation"`
	Snapshot       struct {
		Element []elementDefinition `json:"element"`
	} `json:"snapshot"`
}

type elementDefinition struct {
	Path             string `json:"path"`
	Min              int    `json:"min"`
	Max              string `json:"max"`
	ContentReference string `json:"contentReference"`
	Type             []struct {
		Code string `json:"code"`
	} `json:"type"`
}

// LoadDefinitions builds a catalog from published StructureDefinition bundles,
// such as profiles-types.json and profiles-resources.json of a FHIR release.
func LoadDefinitions(release string, opts LoadOptions, bundles ...[]byte) (*Catalog, error) {
	var definitions []structureDefinition
	for i, raw := range bundles {
		var bundle definitionsBundle
		if err := json.Unmarshal(raw, &bundle); err != nil {
			return nil, fmt.Errorf("parse definitions bundle %d: %w", i, err)
		}
		for _, e := range bundle.Entry {
			if e.Resource.ResourceType == "StructureDefinition" {
				definitions = append(definitions, e.Resource)
			}
		}
	}

	b := NewBuilder(release)
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	for _, sd := range definitions {
		switch {
		case sd.Kind == "logical":
			log.Debug().Str("name", sd.Name).Msg("skipping logical model")
			continue
		case sd.Abstract:
			log.Debug().Str("name", sd.Name).Msg("skipping abstract definition")
			continue
		case sd.Derivation == "constraint" && sd.Type != sd.Name:
			log.Debug().Str("name", sd.Name).Msg("skipping profile")
			continue
		case slices.Contains(shapes, sd.Name):
			continue
		}

		switch sd.Kind {
		case "primitive-type":
			p, ok := primitives[sd.Name]
			if !ok {
				return nil, fmt.Errorf("unknown primitive type %s", sd.Name)
			}
			b.Primitive(sd.Name, p)
		case "complex-type":
			if len(opts.Types) > 0 && !slices.Contains(opts.Types, sd.Name) {
				log.Debug().Str("name", sd.Name).Msg("skipping datatype not in selection")
				continue
			}
			base := BaseElement
			if strings.HasSuffix(sd.BaseDefinition, "/BackboneElement") {
				base = BaseBackboneElement
			}
			defineStructures(b, sd.Name, KindComplex, base, sd.Snapshot.Element)
		case "resource":
			if len(opts.Resources) > 0 && !slices.Contains(opts.Resources, sd.Name) {
				log.Debug().Str("name", sd.Name).Msg("skipping resource not in selection")
				continue
			}
			base := BaseResource
			if strings.HasSuffix(sd.BaseDefinition, "/DomainResource") {
				base = BaseDomainResource
			}
			defineStructures(b, sd.Name, KindResource, base, sd.Snapshot.Element)
		default:
			log.Warn().Str("name", sd.Name).Str("kind", sd.Kind).Msg("skipping definition of unknown kind")
		}
	}

	return b.Build()
}

type elementGroup struct {
	fieldName   string
	definitions []elementDefinition
}

func groupByPrefix(elements []elementDefinition, prefix string) []elementGroup {
	var grouped []elementGroup

	for _, d := range elements {
		if d.Path == prefix || !strings.HasPrefix(d.Path, prefix+".") {
			continue
		}

		fieldName := strings.SplitN(d.Path[len(prefix)+1:], ".", 2)[0]

		if len(grouped) == 0 || grouped[len(grouped)-1].fieldName != fieldName {
			grouped = append(grouped, elementGroup{fieldName: fieldName})
		}
		grouped[len(grouped)-1].definitions = append(grouped[len(grouped)-1].definitions, d)
	}

	return grouped
}

// defineStructures defines the type rooted at prefix and every backbone element below it.
func defineStructures(b *Builder, name string, kind Kind, base Base, elements []elementDefinition) {
	prefix := name
	if len(elements) > 0 {
		prefix = elements[0].Path
	}
	defineStructure(b, name, kind, base, prefix, elements)
}

func defineStructure(b *Builder, typeName string, kind Kind, base Base, prefix string, elements []elementDefinition) {
	var fields []Field

	for _, g := range groupByPrefix(elements, prefix) {
		d := g.definitions[0]
		if d.Max == "0" {
			continue
		}

		fieldName, choice := strings.CutSuffix(g.fieldName, "[x]")
		if IsBaseField(base, fieldName) {
			continue
		}

		f := Field{
			Name:     fieldName,
			Min:      d.Min,
			Multiple: d.Max != "1",
			Choice:   choice,
		}

		switch {
		case choice:
			for _, t := range d.Type {
				f.Types = append(f.Types, typeCode(t.Code))
			}
		case d.ContentReference != "":
			ref := d.ContentReference[strings.Index(d.ContentReference, "#")+1:]
			f.Types = []string{backboneName(ref)}
		case len(d.Type) > 0 && (d.Type[0].Code == "BackboneElement" || d.Type[0].Code == "Element"):
			nested := typeName + strcase.ToCamel(fieldName)
			nestedBase := BaseBackboneElement
			if d.Type[0].Code == "Element" {
				nestedBase = BaseElement
			}
			defineStructure(b, nested, KindBackbone, nestedBase, d.Path, g.definitions)
			f.Types = []string{nested}
		case len(d.Type) > 0:
			f.Types = []string{typeCode(d.Type[0].Code)}
		}

		fields = append(fields, f)
	}

	switch kind {
	case KindResource:
		b.Resource(typeName, base, fields...)
	case KindBackbone:
		b.Backbone(typeName, base, fields...)
	default:
		b.Complex(typeName, base, fields...)
	}
}

// typeCode normalises a type code, e.g. http://hl7.org/fhirpath/System.String.
func typeCode(code string) string {
	t := code[strings.LastIndex(code, "/")+1:]
	if strings.HasPrefix(t, "System.") {
		return TypeSystemString
	}
	return t
}

// backboneName turns an element path into the name of its backbone type,
// e.g. Questionnaire.item into QuestionnaireItem.
func backboneName(path string) string {
	parts := strings.Split(path, ".")
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		sb.WriteString(strcase.ToCamel(p))
	}
	return sb.String()
}
