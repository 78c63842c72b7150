package model_test

import (
	"strings"
	"testing"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/schema"
	"github.com/damedic/fhir-codec-go/schema/r4"
)

func mustType(t *testing.T, name string) *schema.Type {
	t.Helper()
	typ, ok := r4.Catalog().Type(name)
	if !ok {
		t.Fatalf("Type(%q) not found", name)
	}
	return typ
}

func TestSet(t *testing.T) {
	patient := mustType(t, "Patient")
	humanName := mustType(t, "HumanName")
	quantity := mustType(t, "Quantity")
	observation := mustType(t, "Observation")

	tests := []struct {
		name    string
		typ     *schema.Type
		field   string
		value   model.Value
		wantErr string
	}{
		{name: "primitive", typ: patient, field: "active", value: model.NewBoolean(true)},
		{name: "metadata only", typ: patient, field: "active", value: &model.Scalar{Type: "boolean", Extension: []*model.Extension{{URL: "u"}}}},
		{name: "lexical primitive", typ: patient, field: "birthDate", value: model.NewLexical("date", "1970")},
		{name: "repeated element", typ: patient, field: "name", value: model.List{model.NewElement(humanName)}},
		{name: "choice", typ: patient, field: "deceased", value: model.NewChoice(model.NewLexical("dateTime", "2020"))},
		{name: "structured choice", typ: observation, field: "value", value: model.NewChoice(model.NewElement(quantity))},
		{name: "integer choice", typ: patient, field: "multipleBirth", value: model.NewChoice(model.NewInteger("integer", 2))},
		{name: "element id", typ: humanName, field: "id", value: model.NewText(schema.TypeSystemString, "n1")},
		{name: "contained resource", typ: patient, field: "contained", value: model.List{model.MustNewResource(observation)}},
		{name: "extension list", typ: patient, field: "extension", value: model.List{&model.Extension{URL: "u"}}},
		{
			name:    "unknown field",
			typ:     patient,
			field:   "nickname",
			value:   model.NewText("string", "x"),
			wantErr: "Patient has no field nickname",
		},
		{
			name:    "scalar type mismatch",
			typ:     patient,
			field:   "active",
			value:   model.NewText("string", "yes"),
			wantErr: "scalar of type string where boolean is declared",
		},
		{
			name:    "payload mismatch",
			typ:     patient,
			field:   "active",
			value:   &model.Scalar{Type: "boolean", Value: model.String("true")},
			wantErr: "model.String is not a valid boolean value",
		},
		{
			name:    "empty scalar",
			typ:     observation,
			field:   "status",
			value:   &model.Scalar{Type: "code"},
			wantErr: "code scalar has neither a value nor metadata",
		},
		{
			name:    "empty scalar in repeated primitive",
			typ:     humanName,
			field:   "given",
			value:   model.List{model.NewText("string", "Jane"), &model.Scalar{Type: "string"}},
			wantErr: "[1]: string scalar has neither a value nor metadata",
		},
		{
			name:    "single value for repeated field",
			typ:     patient,
			field:   "name",
			value:   model.NewElement(humanName),
			wantErr: "repeated field needs a List",
		},
		{
			name:    "wrong element type",
			typ:     patient,
			field:   "name",
			value:   model.List{model.NewElement(quantity)},
			wantErr: "[0]: element of type Quantity where HumanName is declared",
		},
		{
			name:    "choice variant outside the catalog",
			typ:     patient,
			field:   "deceased",
			value:   model.NewChoice(model.NewText("string", "x")),
			wantErr: "type string is not allowed",
		},
		{
			name:    "plain value for choice",
			typ:     patient,
			field:   "deceased",
			value:   model.NewBoolean(true),
			wantErr: "choice field needs a *Choice",
		},
		{
			name:    "metadata on element id",
			typ:     humanName,
			field:   "id",
			value:   &model.Scalar{Type: schema.TypeSystemString, ID: new(string), Value: model.String("x")},
			wantErr: "System.String carries a plain value only",
		},
		{
			name:    "datatype as contained resource",
			typ:     patient,
			field:   "contained",
			value:   model.List{model.NewElement(humanName)},
			wantErr: "Resource needs a *Resource",
		},
		{
			name:    "element as extension",
			typ:     patient,
			field:   "extension",
			value:   model.List{model.NewElement(humanName)},
			wantErr: "Extension needs an *Extension",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.NewElement(tt.typ).Set(tt.field, tt.value)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Set() error = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Set() error = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestSetRemoves(t *testing.T) {
	el := model.NewElement(mustType(t, "Patient"))
	el.MustSet("active", model.NewBoolean(true))
	el.MustSet("name", model.List{model.NewElement(mustType(t, "HumanName"))})

	el.MustSet("active", nil)
	el.MustSet("name", model.List{})
	if el.Len() != 0 {
		t.Errorf("Len() = %v, want 0", el.Len())
	}
}

func TestFieldsOrder(t *testing.T) {
	el := model.NewElement(mustType(t, "Patient"))
	el.MustSet("gender", model.NewText("code", "female"))
	el.MustSet("active", model.NewBoolean(true))
	el.MustSet("id", model.NewText("id", "p1"))

	var got []string
	for _, fv := range el.Fields() {
		got = append(got, fv.Field.Name)
	}
	want := "id,active,gender"
	if strings.Join(got, ",") != want {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
	if id, ok := el.ID(); !ok || id != "p1" {
		t.Errorf("ID() = %v, %v, want p1", id, ok)
	}
}

func TestNewResource(t *testing.T) {
	if _, err := model.NewResource(mustType(t, "HumanName")); err == nil {
		t.Error("NewResource(HumanName) error = nil, want error")
	}
	if _, err := model.NewResource(nil); err == nil {
		t.Error("NewResource(nil) error = nil, want error")
	}

	r, err := model.NewResource(mustType(t, "Patient"))
	if err != nil {
		t.Fatalf("NewResource(Patient) error = %v", err)
	}
	if r.ResourceType() != "Patient" {
		t.Errorf("ResourceType() = %v, want Patient", r.ResourceType())
	}
	if _, ok := r.ResourceId(); ok {
		t.Error("ResourceId() ok = true on an empty resource")
	}
}
