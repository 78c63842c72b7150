package model_test

import (
	"reflect"
	"testing"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/schema/r4"
	"github.com/damedic/fhir-codec-go/utils/ptr"
)

func TestMemSize(t *testing.T) {
	patient, _ := r4.Catalog().Resource("Patient")

	var (
		sizeScalar    = int(reflect.TypeOf(model.Scalar{}).Size())
		sizeExtension = int(reflect.TypeOf(model.Extension{}).Size())
		sizeElement   = int(reflect.TypeOf(model.Element{}).Size())
		sizeResource  = int(reflect.TypeOf(model.Resource{}).Size())
		sizeString    = int(reflect.TypeOf("").Size())
		sizeValue     = int(reflect.TypeOf((*model.Value)(nil)).Elem().Size())
		sizePointer   = int(reflect.TypeOf(&model.Extension{}).Size())
		sizeBoolean   = int(reflect.TypeOf(model.Boolean(false)).Size())
	)

	tests := []struct {
		name  string
		value model.Value
		want  int
	}{
		{
			name:  "text scalar",
			value: model.NewText("code", "final"),
			want:  sizeScalar + len("code") + sizeString + len("final"),
		},
		{
			name:  "scalar with id only",
			value: &model.Scalar{Type: "boolean", ID: ptr.To("a1")},
			want:  sizeScalar + len("boolean") + sizeString + len("a1"),
		},
		{
			name:  "extension",
			value: &model.Extension{URL: "http://example.com"},
			want:  sizeExtension + len("http://example.com"),
		},
		{
			name: "scalar with extensions sliced",
			value: &model.Scalar{
				Type: "string",
				Extension: []*model.Extension{
					{URL: "http://example.com"},
					nil,
				}[:1],
			},
			want: sizeScalar + len("string") +
				// unused capacity is counted as well
				2*sizePointer + sizeExtension + len("http://example.com"),
		},
		{
			name:  "list sliced",
			value: model.List{model.NewBoolean(true), nil}[:1],
			want:  2*sizeValue + sizeScalar + len("boolean") + sizeBoolean,
		},
		{
			name:  "empty resource",
			value: model.MustNewResource(patient),
			want:  sizeResource + sizeElement,
		},
		{
			name: "resource with field",
			value: func() model.Value {
				r := model.MustNewResource(patient)
				r.Element().MustSet("active", model.NewBoolean(true))
				return r
			}(),
			want: sizeResource + sizeElement + sizeString + sizeValue +
				sizeScalar + len("boolean") + sizeBoolean,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.MemSize(); got != tt.want {
				t.Errorf("MemSize() = %v, want %v, MemSize() should return the size of the value", got, tt.want)
			}
		})
	}
}
