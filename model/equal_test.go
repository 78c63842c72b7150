package model_test

import (
	"encoding/json"
	"testing"

	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/utils/ptr"
)

func TestEqual(t *testing.T) {
	patient := mustType(t, "Patient")
	humanName := mustType(t, "HumanName")

	named := func(family string) model.Value {
		return model.NewElement(humanName).MustSet("family", model.NewText("string", family))
	}
	withRetained := func(raw string) model.Value {
		el := model.NewElement(patient)
		el.SetRetained([]model.RetainedField{{Key: "foo", Raw: json.RawMessage(raw)}})
		return el
	}

	tests := []struct {
		name string
		a, b model.Value
		want bool
	}{
		{name: "nil", a: nil, b: nil, want: true},
		{name: "nil and scalar", a: nil, b: model.NewBoolean(true), want: false},
		{name: "same scalar", a: model.NewBoolean(true), b: model.NewBoolean(true), want: true},
		{name: "different scalar", a: model.NewBoolean(true), b: model.NewBoolean(false), want: false},
		{name: "different scalar type", a: model.NewText("code", "a"), b: model.NewText("string", "a"), want: false},
		{
			name: "scalar metadata",
			a:    &model.Scalar{Type: "string", ID: ptr.To("a")},
			b:    &model.Scalar{Type: "string", ID: ptr.To("b")},
			want: false,
		},
		{
			name: "same decimal",
			a:    model.NewNumber("decimal", apd.New(150, -2)),
			b:    model.NewNumber("decimal", apd.New(150, -2)),
			want: true,
		},
		{
			name: "decimal precision",
			a:    model.NewNumber("decimal", apd.New(15, -1)),
			b:    model.NewNumber("decimal", apd.New(150, -2)),
			want: false,
		},
		{name: "same element", a: named("Doe"), b: named("Doe"), want: true},
		{name: "different element", a: named("Doe"), b: named("Roe"), want: false},
		{name: "element and list", a: named("Doe"), b: model.List{named("Doe")}, want: false},
		{name: "list order", a: model.List{named("A"), named("B")}, b: model.List{named("B"), named("A")}, want: false},
		{name: "list", a: model.List{named("A"), named("B")}, b: model.List{named("A"), named("B")}, want: true},
		{
			name: "choice tag",
			a:    &model.Choice{Type: "string", Value: model.NewText("string", "x")},
			b:    &model.Choice{Type: "code", Value: model.NewText("string", "x")},
			want: false,
		},
		{
			name: "extension value",
			a:    &model.Extension{URL: "u", Value: model.NewChoice(model.NewBoolean(true))},
			b:    &model.Extension{URL: "u"},
			want: false,
		},
		{
			name: "nested extension",
			a:    &model.Extension{URL: "u", Extension: []*model.Extension{{URL: "v"}}},
			b:    &model.Extension{URL: "u", Extension: []*model.Extension{{URL: "v"}}},
			want: true,
		},
		{name: "same retained", a: withRetained(`1`), b: withRetained(`1`), want: true},
		{name: "different retained", a: withRetained(`1`), b: withRetained(`2`), want: false},
		{
			name: "resources",
			a:    model.MustNewResource(patient),
			b:    model.MustNewResource(mustType(t, "Observation")),
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := model.Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}
