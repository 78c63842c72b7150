package schema

import (
	"errors"
	"fmt"
	"slices"
)

// Catalog is the read-only table of every type of one release.
//
// A Catalog is never modified after Build, which makes it safe to share
// between any number of goroutines.
type Catalog struct {
	release   string
	types     map[string]*Type
	order     []*Type
	resources []string
}

// Release returns the FHIR release the catalog describes, e.g. "R4".
func (c *Catalog) Release() string {
	return c.release
}

// Type returns the type with the given name.
func (c *Catalog) Type(name string) (*Type, bool) {
	t, ok := c.types[name]
	return t, ok
}

// Resource returns the resource kind with the given name.
// Names of datatypes or backbone elements are not resource kinds.
func (c *Catalog) Resource(name string) (*Type, bool) {
	t, ok := c.types[name]
	if !ok || t.Kind != KindResource {
		return nil, false
	}
	return t, true
}

// ResourceNames returns the sorted names of all resource kinds.
func (c *Catalog) ResourceNames() []string {
	return slices.Clone(c.resources)
}

// Types returns all types in definition order, without the reserved types.
func (c *Catalog) Types() []*Type {
	return slices.Clone(c.order)
}

// Builder collects type definitions and resolves them into a Catalog.
type Builder struct {
	release string
	types   []*Type
	errs    []error
}

// NewBuilder returns an empty builder for the given release.
func NewBuilder(release string) *Builder {
	return &Builder{release: release}
}

// Primitive defines a primitive type.
func (b *Builder) Primitive(name string, p Primitive) {
	b.add(&Type{Name: name, Kind: KindPrimitive, Primitive: p})
}

// Complex defines a datatype with the given base shape.
func (b *Builder) Complex(name string, base Base, fields ...Field) {
	b.add(&Type{Name: name, Kind: KindComplex, Base: base, Fields: fields})
}

// Backbone defines a structure nested in a resource or datatype. Its base is
// BackboneElement, or Element for the nested parts of datatypes like Timing.repeat.
func (b *Builder) Backbone(name string, base Base, fields ...Field) {
	if base != BaseElement && base != BaseBackboneElement {
		b.errs = append(b.errs, fmt.Errorf("backbone %s: base must be Element or BackboneElement", name))
		return
	}
	b.add(&Type{Name: name, Kind: KindBackbone, Base: base, Fields: fields})
}

// Resource defines a resource kind.
func (b *Builder) Resource(name string, base Base, fields ...Field) {
	if base != BaseResource && base != BaseDomainResource {
		b.errs = append(b.errs, fmt.Errorf("resource %s: base must be Resource or DomainResource", name))
		return
	}
	b.add(&Type{Name: name, Kind: KindResource, Base: base, Fields: fields})
}

func (b *Builder) add(t *Type) {
	b.types = append(b.types, t)
}

// Build resolves all type references and checks the catalog invariants.
func (b *Builder) Build() (*Catalog, error) {
	errs := slices.Clone(b.errs)

	c := &Catalog{
		release: b.release,
		types: map[string]*Type{
			TypeSystemString: {Name: TypeSystemString, Kind: KindSystem},
			TypeResource:     {Name: TypeResource, Kind: KindAnyResource},
		},
	}

	for _, def := range b.types {
		t := &Type{
			Name:      def.Name,
			Kind:      def.Kind,
			Base:      def.Base,
			Primitive: def.Primitive,
			Fields:    append(baseFields(def.Base), def.Fields...),
		}
		if _, ok := c.types[t.Name]; ok {
			errs = append(errs, fmt.Errorf("duplicate type %s", t.Name))
			continue
		}
		c.types[t.Name] = t
		c.order = append(c.order, t)
		if t.Kind == KindResource {
			c.resources = append(c.resources, t.Name)
		}
	}
	slices.Sort(c.resources)

	for _, t := range c.order {
		if err := c.resolve(t); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustBuild is like Build but panics on error. It is meant for generated tables.
func (b *Builder) MustBuild() *Catalog {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) resolve(t *Type) error {
	var errs []error

	t.index = make(map[string]int, len(t.Fields))
	t.keys = make(map[string]int, len(t.Fields))

	claim := func(key string, i int) {
		if j, ok := t.keys[key]; ok && j != i {
			errs = append(errs, fmt.Errorf("%s: wire key %s claimed by %s and %s", t.Name, key, t.Fields[j].Name, t.Fields[i].Name))
			return
		}
		t.keys[key] = i
	}

	for i := range t.Fields {
		f := &t.Fields[i]

		if _, ok := t.index[f.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: duplicate field %s", t.Name, f.Name))
			continue
		}
		t.index[f.Name] = i

		if len(f.Types) == 0 {
			errs = append(errs, fmt.Errorf("%s.%s: no types", t.Name, f.Name))
			continue
		}
		if f.Choice && f.Multiple {
			errs = append(errs, fmt.Errorf("%s.%s: choice fields cannot repeat", t.Name, f.Name))
		}
		if !f.Choice && len(f.Types) > 1 {
			errs = append(errs, fmt.Errorf("%s.%s: several types on a non-choice field", t.Name, f.Name))
		}

		f.variants = make([]Variant, 0, len(f.Types))
		for _, name := range f.Types {
			ft, ok := c.types[name]
			if !ok {
				errs = append(errs, fmt.Errorf("%s.%s: unknown type %s", t.Name, f.Name, name))
				continue
			}
			if f.Choice && (ft.Kind == KindAnyResource || ft.Kind == KindSystem) {
				errs = append(errs, fmt.Errorf("%s.%s: %s cannot be a choice variant", t.Name, f.Name, name))
				continue
			}

			key := f.Name
			if f.Choice {
				key = ChoiceKey(f.Name, name)
			}
			f.variants = append(f.variants, Variant{Type: ft, Key: key})

			claim(key, i)
			if ft.IsPrimitive() {
				claim(MetadataKey(key), i)
			}
		}
	}

	return errors.Join(errs...)
}
