package generate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/damedic/fhir-codec-go/internal/generate"
	"github.com/damedic/fhir-codec-go/schema"
)

func testCatalog(t *testing.T) *schema.Catalog {
	t.Helper()
	b := schema.NewBuilder("test")
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
	b.Complex("Meta", schema.BaseElement, schema.Field{Name: "tag", Multiple: true, Types: []string{"code"}})
	b.Complex("Narrative", schema.BaseElement, schema.Field{Name: "div", Min: 1, Types: []string{"string"}})
	b.Backbone("DoseRepeat", schema.BaseElement, schema.Field{Name: "count", Types: []string{"string"}})
	b.Complex("Dose", schema.BaseBackboneElement, schema.Field{Name: "repeat", Types: []string{"DoseRepeat"}})
	b.Backbone("DoseRecordEntry", schema.BaseBackboneElement, schema.Field{Name: "dose", Min: 1, Types: []string{"Dose"}})
	b.Resource(
		"DoseRecord",
		schema.BaseDomainResource,
		schema.Field{Name: "entry", Multiple: true, Types: []string{"DoseRecordEntry"}},
	)

	c, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return c
}

func TestCatalogGenerator(t *testing.T) {
	dir := t.TempDir()
	err := generate.Generate(testCatalog(t), generate.Config{Dir: dir, PkgName: "testpkg"}, generate.CatalogGenerator{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		return string(data)
	}
	types := read("types_gen.go")
	resources := read("resources_gen.go")

	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "header", file: types, want: "// Code generated by internal/cmd/generate. DO NOT EDIT."},
		{name: "package", file: resources, want: "package testpkg"},
		{name: "types function", file: types, want: "func defineTypes(b *schema.Builder) {"},
		{name: "resources function", file: resources, want: "func defineResources(b *schema.Builder) {"},
		{name: "primitive", file: types, want: `b.Primitive("boolean", schema.PrimitiveBoolean)`},
		{name: "required field", file: types, want: `schema.Field{Name: "url", Min: 1, Types: []string{"System.String"}},`},
		{name: "choice field", file: types, want: `schema.Field{Name: "value", Choice: true, Types: []string{"string", "boolean"}},`},
		{name: "repeated field", file: types, want: `schema.Field{Name: "tag", Multiple: true, Types: []string{"code"}},`},
		{name: "datatype backbone", file: types, want: `"DoseRepeat",`},
		{name: "resource backbone", file: resources, want: `"DoseRecordEntry",`},
		{name: "resource", file: resources, want: "schema.BaseDomainResource,"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.file, tt.want) {
				t.Errorf("generated file does not contain %s:\n%s", tt.want, tt.file)
			}
		})
	}

	if strings.Contains(types, "DoseRecordEntry") {
		t.Error("resource backbone written to types_gen.go")
	}
	if strings.Index(types, `"DoseRepeat",`) > strings.Index(types, `"Dose",`) {
		t.Error("backbone written after the datatype it is nested in")
	}
}
