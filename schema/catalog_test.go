package schema_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-codec-go/schema"
	"github.com/damedic/fhir-codec-go/schema/r4"
)

// minimal defines the types every resource base shape refers to.
func minimal(b *schema.Builder) {
	b.Primitive("string", schema.PrimitiveText)
	b.Primitive("boolean", schema.PrimitiveBoolean)
	b.Primitive("id", schema.PrimitiveText)
	b.Primitive("uri", schema.PrimitiveText)
	b.Primitive("code", schema.PrimitiveText)
	b.Complex(
		"Extension",
		schema.BaseElement,
		schema.Field{Name: "url", Min: 1, Types: []string{schema.TypeSystemString}},
		schema.Field{Name: "value", Choice: true, Types: []string{"string", "boolean"}},
	)
	b.Complex("Meta", schema.BaseElement, schema.Field{Name: "versionId", Types: []string{"id"}})
	b.Complex("Narrative", schema.BaseElement, schema.Field{Name: "div", Min: 1, Types: []string{"string"}})
}

func TestBuild(t *testing.T) {
	b := schema.NewBuilder("test")
	minimal(b)
	b.Backbone(
		"NoteItem",
		schema.BaseBackboneElement,
		schema.Field{Name: "text", Min: 1, Types: []string{"string"}},
	)
	b.Resource(
		"Note",
		schema.BaseDomainResource,
		schema.Field{Name: "status", Min: 1, Types: []string{"code"}},
		schema.Field{Name: "item", Multiple: true, Types: []string{"NoteItem"}},
		schema.Field{Name: "subject", Choice: true, Types: []string{"string", "Meta"}},
	)
	b.Resource("Blob", schema.BaseResource, schema.Field{Name: "data", Types: []string{"string"}})

	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := c.ResourceNames(); !cmp.Equal(got, []string{"Blob", "Note"}) {
		t.Errorf("ResourceNames() = %v, want [Blob Note]", got)
	}

	note, ok := c.Resource("Note")
	if !ok {
		t.Fatal("Resource(Note) not found")
	}
	var names []string
	for _, f := range note.Fields {
		names = append(names, f.Name)
	}
	want := []string{"id", "meta", "implicitRules", "language", "text", "contained", "extension", "modifierExtension", "status", "item", "subject"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Note fields mismatch (-want +got):\n%s", diff)
	}
	if got := len(note.DeclaredFields()); got != 3 {
		t.Errorf("len(DeclaredFields()) = %v, want 3", got)
	}

	if _, ok := c.Resource("NoteItem"); ok {
		t.Error("Resource(NoteItem) found a backbone element")
	}
	if item, ok := c.Type("NoteItem"); !ok || item.Kind != schema.KindBackbone {
		t.Errorf("Type(NoteItem) = %v, %v, want backbone", item, ok)
	}

	subject, _ := note.Field("subject")
	var keys []string
	for _, v := range subject.Variants() {
		keys = append(keys, v.Key)
	}
	if diff := cmp.Diff([]string{"subjectString", "subjectMeta"}, keys); diff != "" {
		t.Errorf("subject variant keys mismatch (-want +got):\n%s", diff)
	}
	if v, ok := subject.Variant("Meta"); !ok || v.Key != "subjectMeta" {
		t.Errorf("Variant(Meta) = %v, %v, want subjectMeta", v, ok)
	}
	if _, ok := subject.Variant("boolean"); ok {
		t.Error("Variant(boolean) found a type outside the catalog")
	}
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		define  func(b *schema.Builder)
		wantErr string
	}{
		{
			name: "variant key collides with a field",
			define: func(b *schema.Builder) {
				b.Complex(
					"Thing",
					schema.BaseElement,
					schema.Field{Name: "value", Choice: true, Types: []string{"string"}},
					schema.Field{Name: "valueString", Types: []string{"string"}},
				)
			},
			wantErr: "wire key valueString claimed by value and valueString",
		},
		{
			name: "metadata key collides with a field",
			define: func(b *schema.Builder) {
				b.Complex(
					"Thing",
					schema.BaseElement,
					schema.Field{Name: "code", Types: []string{"code"}},
					schema.Field{Name: "_code", Types: []string{"Meta"}},
				)
			},
			wantErr: "wire key _code claimed by code and _code",
		},
		{
			name: "repeated choice",
			define: func(b *schema.Builder) {
				b.Complex("Thing", schema.BaseElement, schema.Field{Name: "value", Choice: true, Multiple: true, Types: []string{"string"}})
			},
			wantErr: "Thing.value: choice fields cannot repeat",
		},
		{
			name: "unknown type",
			define: func(b *schema.Builder) {
				b.Complex("Thing", schema.BaseElement, schema.Field{Name: "when", Types: []string{"Moment"}})
			},
			wantErr: "Thing.when: unknown type Moment",
		},
		{
			name: "duplicate type",
			define: func(b *schema.Builder) {
				b.Primitive("string", schema.PrimitiveText)
			},
			wantErr: "duplicate type string",
		},
		{
			name: "duplicate field",
			define: func(b *schema.Builder) {
				b.Complex(
					"Thing",
					schema.BaseElement,
					schema.Field{Name: "code", Types: []string{"code"}},
					schema.Field{Name: "code", Types: []string{"string"}},
				)
			},
			wantErr: "Thing: duplicate field code",
		},
		{
			name: "field repeats a base field",
			define: func(b *schema.Builder) {
				b.Complex("Thing", schema.BaseElement, schema.Field{Name: "id", Types: []string{"id"}})
			},
			wantErr: "Thing: duplicate field id",
		},
		{
			name: "resource with element base",
			define: func(b *schema.Builder) {
				b.Resource("Thing", schema.BaseElement)
			},
			wantErr: "resource Thing: base must be Resource or DomainResource",
		},
		{
			name: "backbone with resource base",
			define: func(b *schema.Builder) {
				b.Backbone("ThingPart", schema.BaseResource)
			},
			wantErr: "backbone ThingPart: base must be Element or BackboneElement",
		},
		{
			name: "resource as choice variant",
			define: func(b *schema.Builder) {
				b.Complex("Thing", schema.BaseElement, schema.Field{Name: "value", Choice: true, Types: []string{schema.TypeResource}})
			},
			wantErr: "Thing.value: Resource cannot be a choice variant",
		},
		{
			name: "several types on a plain field",
			define: func(b *schema.Builder) {
				b.Complex("Thing", schema.BaseElement, schema.Field{Name: "value", Types: []string{"string", "boolean"}})
			},
			wantErr: "Thing.value: several types on a non-choice field",
		},
		{
			name: "field without types",
			define: func(b *schema.Builder) {
				b.Complex("Thing", schema.BaseElement, schema.Field{Name: "value"})
			},
			wantErr: "Thing.value: no types",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := schema.NewBuilder("test")
			minimal(b)
			tt.define(b)

			c, err := b.Build()
			if err == nil {
				t.Fatalf("Build() = %v, want error containing %q", c, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Build() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestBuildIsRepeatable(t *testing.T) {
	b := schema.NewBuilder("test")
	minimal(b)

	first, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	second, err := b.Build()
	if err != nil {
		t.Fatalf("second Build() error = %v", err)
	}
	if first == second {
		t.Error("Build() returned the same catalog twice")
	}

	a, _ := first.Type("Extension")
	z, _ := second.Type("Extension")
	if &a.Fields[0] == &z.Fields[0] {
		t.Error("catalogs share field storage")
	}
}

func TestFieldForKey(t *testing.T) {
	patient, ok := r4.Catalog().Resource("Patient")
	if !ok {
		t.Fatal("Resource(Patient) not found")
	}

	tests := []struct {
		key       string
		wantField string
		wantOK    bool
	}{
		{key: "active", wantField: "active", wantOK: true},
		{key: "_birthDate", wantField: "birthDate", wantOK: true},
		{key: "deceasedDateTime", wantField: "deceased", wantOK: true},
		{key: "_deceasedBoolean", wantField: "deceased", wantOK: true},
		{key: "multipleBirthInteger", wantField: "multipleBirth", wantOK: true},
		{key: "contained", wantField: "contained", wantOK: true},
		{key: "name", wantField: "name", wantOK: true},
		{key: "_name", wantOK: false},
		{key: "deceased", wantOK: false},
		{key: "deceasedString", wantOK: false},
		{key: "resourceType", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f, ok := patient.FieldForKey(tt.key)
			if ok != tt.wantOK {
				t.Fatalf("FieldForKey(%q) ok = %v, want %v", tt.key, ok, tt.wantOK)
			}
			if ok && f.Name != tt.wantField {
				t.Errorf("FieldForKey(%q) = %v, want %v", tt.key, f.Name, tt.wantField)
			}
		})
	}
}

func TestR4Catalog(t *testing.T) {
	c := r4.Catalog()
	if c != r4.Catalog() {
		t.Error("Catalog() is rebuilt on every call")
	}
	if c.Release() != r4.Release {
		t.Errorf("Release() = %v, want %v", c.Release(), r4.Release)
	}

	tests := []struct {
		name     string
		wantKind schema.Kind
	}{
		{name: "Patient", wantKind: schema.KindResource},
		{name: "Bundle", wantKind: schema.KindResource},
		{name: "BundleEntry", wantKind: schema.KindBackbone},
		{name: "CarePlan", wantKind: schema.KindResource},
		{name: "VisionPrescription", wantKind: schema.KindResource},
		{name: "PlanDefinitionAction", wantKind: schema.KindBackbone},
		{name: "ElementDefinition", wantKind: schema.KindComplex},
		{name: "HumanName", wantKind: schema.KindComplex},
		{name: "dateTime", wantKind: schema.KindPrimitive},
		{name: schema.TypeResource, wantKind: schema.KindAnyResource},
		{name: schema.TypeSystemString, wantKind: schema.KindSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, ok := c.Type(tt.name)
			if !ok {
				t.Fatalf("Type(%q) not found", tt.name)
			}
			if typ.Kind != tt.wantKind {
				t.Errorf("Type(%q).Kind = %v, want %v", tt.name, typ.Kind, tt.wantKind)
			}
		})
	}

	if got := len(c.ResourceNames()); got < 140 {
		t.Errorf("len(ResourceNames()) = %v, want at least 140", got)
	}

	ext, _ := c.Type(schema.TypeExtension)
	value, ok := ext.Field("value")
	if !ok || !value.Choice {
		t.Fatalf("Extension.value = %v, %v, want choice field", value, ok)
	}
	if got := len(value.Variants()); got != 50 {
		t.Errorf("len(Extension.value variants) = %v, want 50", got)
	}
}

func TestSuffix(t *testing.T) {
	tests := []struct {
		typeName string
		want     string
	}{
		{typeName: "dateTime", want: "DateTime"},
		{typeName: "boolean", want: "Boolean"},
		{typeName: "base64Binary", want: "Base64Binary"},
		{typeName: "CodeableConcept", want: "CodeableConcept"},
	}
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			if got := schema.Suffix(tt.typeName); got != tt.want {
				t.Errorf("Suffix(%q) = %v, want %v", tt.typeName, got, tt.want)
			}
			if got, want := schema.ChoiceKey("value", tt.typeName), "value"+tt.want; got != want {
				t.Errorf("ChoiceKey() = %v, want %v", got, want)
			}
		})
	}
}
