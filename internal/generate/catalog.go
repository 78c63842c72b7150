package generate

import (
	"strings"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-codec-go/schema"
)

// CatalogGenerator writes the builder calls that recreate a catalog.
// Datatypes go to defineTypes in types_gen.go, resource kinds to
// defineResources in resources_gen.go. A backbone element is written next
// to the datatype or resource it is nested in.
type CatalogGenerator struct{}

func (g CatalogGenerator) Generate(file func(fileName string) *File, _ string, c *schema.Catalog) {
	var types, resources []Code

	all := c.Types()
	for _, t := range all {
		if owner(t, all).IsResource() {
			resources = append(resources, define(t))
		} else {
			types = append(types, define(t))
		}
	}

	builder := Id("b").Op("*").Qual(schemaPkg, "Builder")
	file("types").Func().Id("defineTypes").Params(builder).Block(types...)
	file("resources").Func().Id("defineResources").Params(builder.Clone()).Block(resources...)
}

// owner returns the datatype or resource a backbone element is nested in:
// the one with the longest name prefixing the backbone name.
func owner(t *schema.Type, all []*schema.Type) *schema.Type {
	if t.Kind != schema.KindBackbone {
		return t
	}
	best := t
	for _, o := range all {
		if o.Kind == schema.KindBackbone || o.IsPrimitive() || !strings.HasPrefix(t.Name, o.Name) {
			continue
		}
		if best == t || len(o.Name) > len(best.Name) {
			best = o
		}
	}
	return best
}

var (
	builderMethods = map[schema.Kind]string{
		schema.KindComplex:  "Complex",
		schema.KindBackbone: "Backbone",
		schema.KindResource: "Resource",
	}
	baseNames = map[schema.Base]string{
		schema.BaseElement:         "BaseElement",
		schema.BaseBackboneElement: "BaseBackboneElement",
		schema.BaseResource:        "BaseResource",
		schema.BaseDomainResource:  "BaseDomainResource",
	}
	primitiveNames = map[schema.Primitive]string{
		schema.PrimitiveBoolean:     "PrimitiveBoolean",
		schema.PrimitiveInteger:     "PrimitiveInteger",
		schema.PrimitivePositiveInt: "PrimitivePositiveInt",
		schema.PrimitiveUnsignedInt: "PrimitiveUnsignedInt",
		schema.PrimitiveDecimal:     "PrimitiveDecimal",
		schema.PrimitiveText:        "PrimitiveText",
		schema.PrimitiveLexical:     "PrimitiveLexical",
	}
)

func define(t *schema.Type) Code {
	if t.IsPrimitive() {
		return Id("b").Dot("Primitive").Call(Lit(t.Name), Qual(schemaPkg, primitiveNames[t.Primitive]))
	}

	args := []Code{Lit(t.Name), Qual(schemaPkg, baseNames[t.Base])}
	for _, f := range t.DeclaredFields() {
		args = append(args, field(f))
	}
	return Id("b").Dot(builderMethods[t.Kind]).Custom(Options{
		Open:      "(",
		Close:     ")",
		Separator: ",",
		Multi:     true,
	}, args...)
}

func field(f schema.Field) Code {
	values := []Code{Id("Name").Op(":").Lit(f.Name)}
	if f.Min > 0 {
		values = append(values, Id("Min").Op(":").Lit(f.Min))
	}
	if f.Multiple {
		values = append(values, Id("Multiple").Op(":").True())
	}
	if f.Choice {
		values = append(values, Id("Choice").Op(":").True())
	}
	values = append(values, Id("Types").Op(":").Index().String().ValuesFunc(func(g *Group) {
		for _, name := range f.Types {
			g.Lit(name)
		}
	}))
	return Qual(schemaPkg, "Field").Values(values...)
}
