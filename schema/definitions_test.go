package schema_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"

	"github.com/damedic/fhir-codec-go/schema"
)

func readDefinitions(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/definitions.json")
	if err != nil {
		t.Fatalf("read definitions: %v", err)
	}
	return data
}

func declared(t *testing.T, c *schema.Catalog, name string) []schema.Field {
	t.Helper()
	typ, ok := c.Type(name)
	if !ok {
		t.Fatalf("Type(%q) not found", name)
	}
	return typ.DeclaredFields()
}

var ignoreVariants = cmpopts.IgnoreUnexported(schema.Field{})

func TestLoadDefinitions(t *testing.T) {
	c, err := schema.LoadDefinitions("test", schema.LoadOptions{}, readDefinitions(t))
	if err != nil {
		t.Fatalf("LoadDefinitions() error = %v", err)
	}

	var names []string
	for _, typ := range c.Types() {
		names = append(names, typ.Name)
	}
	want := []string{
		"boolean", "string", "code", "id", "uri", "xhtml", "dateTime",
		"Extension", "Coding", "Meta", "Narrative", "TimingRepeat", "Timing",
		"QuestionnaireItemEnableWhen", "QuestionnaireItem", "Questionnaire", "Binary", "Basic",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Types() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Basic", "Binary", "Questionnaire"}, c.ResourceNames()); diff != "" {
		t.Errorf("ResourceNames() mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		name     string
		wantKind schema.Kind
		wantBase schema.Base
		want     []schema.Field
	}{
		{
			name:     "Extension",
			wantKind: schema.KindComplex,
			wantBase: schema.BaseElement,
			want: []schema.Field{
				{Name: "url", Min: 1, Types: []string{schema.TypeSystemString}},
				{Name: "value", Choice: true, Types: []string{"boolean", "string", "Coding"}},
			},
		},
		{
			name:     "Timing",
			wantKind: schema.KindComplex,
			wantBase: schema.BaseBackboneElement,
			want: []schema.Field{
				{Name: "event", Multiple: true, Types: []string{"dateTime"}},
				{Name: "repeat", Types: []string{"TimingRepeat"}},
			},
		},
		{
			name:     "TimingRepeat",
			wantKind: schema.KindBackbone,
			wantBase: schema.BaseElement,
			want: []schema.Field{
				{Name: "when", Multiple: true, Types: []string{"code"}},
			},
		},
		{
			name:     "Questionnaire",
			wantKind: schema.KindResource,
			wantBase: schema.BaseDomainResource,
			want: []schema.Field{
				{Name: "status", Min: 1, Types: []string{"code"}},
				{Name: "item", Multiple: true, Types: []string{"QuestionnaireItem"}},
			},
		},
		{
			name:     "QuestionnaireItem",
			wantKind: schema.KindBackbone,
			wantBase: schema.BaseBackboneElement,
			want: []schema.Field{
				{Name: "linkId", Min: 1, Types: []string{"string"}},
				{Name: "enableWhen", Multiple: true, Types: []string{"QuestionnaireItemEnableWhen"}},
				{Name: "item", Multiple: true, Types: []string{"QuestionnaireItem"}},
			},
		},
		{
			name:     "QuestionnaireItemEnableWhen",
			wantKind: schema.KindBackbone,
			wantBase: schema.BaseBackboneElement,
			want: []schema.Field{
				{Name: "question", Min: 1, Types: []string{"string"}},
				{Name: "answer", Min: 1, Choice: true, Types: []string{"boolean", "Coding"}},
			},
		},
		{
			name:     "Binary",
			wantKind: schema.KindResource,
			wantBase: schema.BaseResource,
			want: []schema.Field{
				{Name: "contentType", Min: 1, Types: []string{"code"}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, _ := c.Type(tt.name)
			if typ.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", typ.Kind, tt.wantKind)
			}
			if typ.Base != tt.wantBase {
				t.Errorf("Base = %v, want %v", typ.Base, tt.wantBase)
			}
			if diff := cmp.Diff(tt.want, declared(t, c, tt.name), ignoreVariants); diff != "" {
				t.Errorf("DeclaredFields() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadDefinitionsSelection(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	c, err := schema.LoadDefinitions("test", schema.LoadOptions{
		Resources: []string{"Questionnaire"},
		Logger:    &logger,
	}, readDefinitions(t))
	if err != nil {
		t.Fatalf("LoadDefinitions() error = %v", err)
	}

	if diff := cmp.Diff([]string{"Questionnaire"}, c.ResourceNames()); diff != "" {
		t.Errorf("ResourceNames() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := c.Type("Coding"); !ok {
		t.Error("datatypes are filtered along with resources")
	}

	log := buf.String()
	for _, want := range []string{
		`"name":"Binary","message":"skipping resource not in selection"`,
		`"name":"Vitals","message":"skipping logical model"`,
		`"name":"DomainResource","message":"skipping abstract definition"`,
		`"name":"CodingProfile","message":"skipping profile"`,
	} {
		if !strings.Contains(log, want) {
			t.Errorf("log does not contain %s:\n%s", want, log)
		}
	}
}

func TestLoadDefinitionsTypeSelection(t *testing.T) {
	c, err := schema.LoadDefinitions("test", schema.LoadOptions{
		Resources: []string{"Basic"},
		Types:     []string{"Extension", "Coding", "Meta", "Narrative"},
	}, readDefinitions(t))
	if err != nil {
		t.Fatalf("LoadDefinitions() error = %v", err)
	}
	if _, ok := c.Type("Timing"); ok {
		t.Error("Type(Timing) found a datatype outside the selection")
	}
	if _, ok := c.Type("TimingRepeat"); ok {
		t.Error("Type(TimingRepeat) found a backbone of a skipped datatype")
	}
	if _, ok := c.Type("dateTime"); !ok {
		t.Error("primitive types are filtered along with datatypes")
	}
}

func TestLoadDefinitionsErrors(t *testing.T) {
	tests := []struct {
		name    string
		bundles []string
		wantErr string
	}{
		{
			name:    "invalid bundle",
			bundles: []string{`{"entry":`},
			wantErr: "parse definitions bundle 0",
		},
		{
			name: "unknown primitive",
			bundles: []string{`{"entry":[{"resource":
				{"resourceType":"StructureDefinition","name":"fraction","type":"fraction","kind":"primitive-type"}}]}`},
			wantErr: "unknown primitive type fraction",
		},
		{
			name: "unresolved type",
			bundles: []string{`{"entry":[{"resource":
				{"resourceType":"StructureDefinition","name":"Thing","type":"Thing","kind":"complex-type",
				 "snapshot":{"element":[{"path":"Thing"},{"path":"Thing.when","max":"1","type":[{"code":"dateTime"}]}]}}}]}`},
			wantErr: "Thing.when: unknown type dateTime",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var bundles [][]byte
			for _, b := range tt.bundles {
				bundles = append(bundles, []byte(b))
			}
			_, err := schema.LoadDefinitions("test", schema.LoadOptions{}, bundles...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadDefinitions() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}
