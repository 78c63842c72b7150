package fhirjson_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/schema/r4"
	"github.com/damedic/fhir-codec-go/testdata"
	"github.com/damedic/fhir-codec-go/testdata/assert"
	"github.com/damedic/fhir-codec-go/utils/ptr"
)

func TestRoundtripJSON(t *testing.T) {
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})

	for name, jsonIn := range testdata.GetExamples() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r, err := codec.Unmarshal(jsonIn)
			if err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			jsonOut, err := codec.Marshal(r)
			if err != nil {
				t.Fatalf("Failed to marshal JSON: %v", err)
			}

			assert.JSONEqual(t, string(jsonIn), string(jsonOut))

			again, err := codec.Unmarshal(jsonOut)
			if err != nil {
				t.Fatalf("Failed to unmarshal marshalled JSON: %v", err)
			}
			if !model.Equal(r, again) {
				t.Errorf("decode(encode(x)) differs from x")
			}
		})
	}
}

func TestPrimitiveWithMetadata(t *testing.T) {
	in := `{"resourceType":"Patient","active":true,"_active":{"id":"a1"}}`

	r, err := fhirjson.New(r4.Catalog(), fhirjson.Options{}).Unmarshal([]byte(in))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if r.ResourceType() != "Patient" {
		t.Fatalf("ResourceType() = %v, want Patient", r.ResourceType())
	}

	active := r.Element().Scalar("active")
	want := &model.Scalar{Type: "boolean", ID: ptr.To("a1"), Value: model.Boolean(true)}
	if !active.Equal(want) {
		t.Errorf("active = %+v, want %+v", active, want)
	}
	if len(active.Extension) != 0 {
		t.Errorf("len(active.Extension) = %v, want 0", len(active.Extension))
	}

	out, err := fhirjson.New(r4.Catalog(), fhirjson.Options{}).Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(out) != in {
		t.Errorf("Marshal() = %s, want %s", out, in)
	}
}

func TestAbsentOptionalChoice(t *testing.T) {
	in := `{"resourceType":"Observation","status":"final","code":{"text":"x"}}`

	r, err := fhirjson.New(r4.Catalog(), fhirjson.Options{}).Unmarshal([]byte(in))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := r.Get("value"); ok {
		t.Errorf("value is present, want absent")
	}
	if got := r.Element().Choice("value"); got != nil {
		t.Errorf("Choice(value) = %+v, want nil", got)
	}
	if got := r.Element().Scalar("status").Value; got != model.String("final") {
		t.Errorf("status = %v, want final", got)
	}
}

func TestChoiceVariants(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantType string
	}{
		{
			name:     "primitive",
			in:       `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueString":"ok"}`,
			wantType: "string",
		},
		{
			name:     "primitive metadata only",
			in:       `{"resourceType":"Observation","status":"final","code":{"text":"x"},"_valueBoolean":{"id":"b"}}`,
			wantType: "boolean",
		},
		{
			name:     "structured",
			in:       `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueQuantity":{"value":1}}`,
			wantType: "Quantity",
		},
		{
			name:     "camel cased type",
			in:       `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueDateTime":"2020-01-01"}`,
			wantType: "dateTime",
		},
		{
			name:     "value and metadata of the same variant",
			in:       `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueInteger":1,"_valueInteger":{"id":"i"}}`,
			wantType: "integer",
		},
	}
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := codec.Unmarshal([]byte(tt.in))
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			c := r.Element().Choice("value")
			if c == nil {
				t.Fatalf("Choice(value) = nil, want %s", tt.wantType)
			}
			if c.Type != tt.wantType {
				t.Errorf("Choice(value).Type = %v, want %v", c.Type, tt.wantType)
			}

			out, err := codec.Marshal(r)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			assert.JSONEqual(t, tt.in, string(out))
		})
	}
}

func TestNestedResource(t *testing.T) {
	in := `{
		"resourceType": "Bundle",
		"type": "collection",
		"entry": [
			{"resource": {"resourceType": "Patient", "id": "p1", "active": true, "name": [{"family": "Doe"}]}},
			{"resource": {"resourceType": "Observation", "status": "final", "code": {"text": "x"}, "valueBoolean": false}}
		]
	}`
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})

	r, err := codec.Unmarshal([]byte(in))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	entries := r.Element().List("entry")
	if len(entries) != 2 {
		t.Fatalf("len(entry) = %v, want 2", len(entries))
	}
	patient := entries[0].(*model.Element).Resource("resource")
	if patient == nil || patient.ResourceType() != "Patient" {
		t.Fatalf("entry[0].resource = %v, want a Patient", patient)
	}
	if id, _ := patient.ResourceId(); id != "p1" {
		t.Errorf("entry[0].resource.id = %v, want p1", id)
	}

	out, err := codec.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	assert.JSONEqual(t, in, string(out))

	again, err := codec.Unmarshal(out)
	if err != nil {
		t.Fatalf("Unmarshal() of marshalled bundle error = %v", err)
	}
	if !model.Equal(r, again) {
		t.Errorf("bundle does not survive a round trip")
	}
}

func TestRecursiveBackbone(t *testing.T) {
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})

	r, err := codec.Unmarshal(testdata.GetExample("plandefinition-example.json"))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	outer := r.Element().List("action")
	if len(outer) != 1 {
		t.Fatalf("len(action) = %v, want 1", len(outer))
	}
	inner := outer[0].(*model.Element).List("action")
	if len(inner) != 1 {
		t.Fatalf("len(action[0].action) = %v, want 1", len(inner))
	}
	nested := inner[0].(*model.Element)
	if got := nested.Type().Name; got != "PlanDefinitionAction" {
		t.Errorf("action[0].action[0] type = %v, want PlanDefinitionAction", got)
	}
	if id, _ := nested.ID(); id != "order-screening" {
		t.Errorf("action[0].action[0].id = %v, want order-screening", id)
	}
	offset := nested.List("relatedAction")[0].(*model.Element).Choice("offset")
	if offset == nil || offset.Type != "Duration" {
		t.Errorf("relatedAction[0].offset = %v, want a Duration", offset)
	}
}

func TestResourceKinds(t *testing.T) {
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})

	tests := []struct {
		name string
		in   string
	}{
		{
			name: "CarePlan",
			in:   `{"resourceType":"CarePlan","status":"active","intent":"plan","subject":{"reference":"Patient/1"}}`,
		},
		{
			name: "Task",
			in:   `{"resourceType":"Task","status":"requested","intent":"order","input":[{"type":{"text":"dose"},"valueQuantity":{"value":5}}]}`,
		},
		{
			name: "Subscription",
			in:   `{"resourceType":"Subscription","status":"active","reason":"monitor","criteria":"Observation?code=1234-5","channel":{"type":"rest-hook","endpoint":"https://example.org/hook"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := codec.Unmarshal([]byte(tt.in))
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if r.ResourceType() != tt.name {
				t.Errorf("ResourceType() = %v, want %v", r.ResourceType(), tt.name)
			}
			out, err := codec.Marshal(r)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(out) != tt.in {
				t.Errorf("Marshal() = %s, want %s", out, tt.in)
			}
		})
	}
}

func TestExactEncoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{
			name: "decimal precision",
			in:   `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueQuantity":{"value":1.50}}`,
		},
		{
			name: "html is not escaped",
			in:   `{"resourceType":"Patient","name":[{"text":"Jane <Doe> & co"}]}`,
		},
		{
			name: "repeated primitive with metadata",
			in:   `{"resourceType":"Patient","name":[{"given":["a",null,"c"],"_given":[null,{"id":"g"},{"extension":[{"url":"u","valueBoolean":true}]}]}]}`,
		},
		{
			name: "repeated primitive metadata only",
			in:   `{"resourceType":"Patient","name":[{"_given":[{"id":"g1"},{"id":"g2"}]}]}`,
		},
		{
			name: "contained resource",
			in:   `{"resourceType":"Patient","contained":[{"resourceType":"Organization","id":"o","name":"Acme"}],"managingOrganization":{"reference":"#o"}}`,
		},
		{
			name: "nested extensions",
			in:   `{"resourceType":"Patient","extension":[{"extension":[{"url":"a","valueCode":"x"}],"url":"http://example.org/race"}],"active":true}`,
		},
		{
			name: "resource without domain shape",
			in:   `{"resourceType":"Binary","id":"b","contentType":"text/plain","data":"aGVsbG8="}`,
		},
	}
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := codec.Unmarshal([]byte(tt.in))
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			out, err := codec.Marshal(r)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if diff := cmp.Diff(tt.in, string(out)); diff != "" {
				t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecimalExponent(t *testing.T) {
	in := `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueQuantity":{"value":1e-7}}`
	want := `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueQuantity":{"value":1E-7}}`
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})

	r, err := codec.Unmarshal([]byte(in))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	out, err := codec.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
	}

	again, err := codec.Unmarshal(out)
	if err != nil {
		t.Fatalf("Unmarshal() of marshalled document error = %v", err)
	}
	if !model.Equal(r, again) {
		t.Errorf("exponent decimal does not survive a round trip")
	}
}

func TestMarshalBuiltResource(t *testing.T) {
	catalog := r4.Catalog()
	patientKind, _ := catalog.Resource("Patient")
	humanName, _ := catalog.Type("HumanName")

	name := model.NewElement(humanName).
		MustSet("family", model.NewText("string", "Doe")).
		MustSet("given", model.List{
			model.NewText("string", "Jane"),
			&model.Scalar{Type: "string", ID: ptr.To("g2")},
		})

	p := model.MustNewResource(patientKind)
	p.Element().
		MustSet("deceased", &model.Choice{Type: "dateTime", Value: model.NewLexical("dateTime", "2020")}).
		MustSet("name", model.List{name}).
		MustSet("active", model.NewBoolean(true))

	out, err := fhirjson.New(catalog, fhirjson.Options{}).Marshal(p)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	want := `{"resourceType":"Patient","active":true,"name":[{"family":"Doe","given":["Jane",null],"_given":[null,{"id":"g2"}]}],"deceasedDateTime":"2020"}`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Errorf("Marshal() mismatch (-want +got):\n%s", diff)
	}
}

func TestEncode(t *testing.T) {
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})
	in := testdata.GetExample("operationoutcome-example.json")

	r, err := codec.Decode(bytes.NewReader(in))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, r); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	assert.JSONEqual(t, string(in), buf.String())
}

func TestElement(t *testing.T) {
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})
	in := `{"value":1.5,"comparator":"<","unit":"mg"}`

	el, err := codec.UnmarshalElement([]byte(in), "Quantity")
	if err != nil {
		t.Fatalf("UnmarshalElement() error = %v", err)
	}
	if got := el.Scalar("value").Value.String(); got != "1.5" {
		t.Errorf("value = %v, want 1.5", got)
	}

	out, err := codec.MarshalElement(el)
	if err != nil {
		t.Fatalf("MarshalElement() error = %v", err)
	}
	if string(out) != in {
		t.Errorf("MarshalElement() = %s, want %s", out, in)
	}

	if _, err := codec.UnmarshalElement([]byte(in), "Patient"); err == nil {
		t.Errorf("UnmarshalElement() of a resource kind succeeded, want error")
	}
	if _, err := codec.UnmarshalElement([]byte(in), "NoSuchType"); err == nil {
		t.Errorf("UnmarshalElement() of an unknown type succeeded, want error")
	}
}

func TestRetainUnknownFields(t *testing.T) {
	in := `{
		"resourceType": "Patient",
		"active": true,
		"foo": {"bar": [1, 2]},
		"name": [{"family": "x", "nickname": "y"}],
		"extension": [{"url": "u", "valueString": "s", "extra": null}]
	}`

	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{
		UnknownFields: fhirjson.RetainUnknownFields,
		Logger:        &logger,
	})

	r, err := codec.Unmarshal([]byte(in))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	want := []model.RetainedField{{Key: "foo", Raw: []byte(`{"bar": [1, 2]}`)}}
	if diff := cmp.Diff(want, r.Element().Retained()); diff != "" {
		t.Errorf("Retained() mismatch (-want +got):\n%s", diff)
	}
	name := r.Element().List("name")[0].(*model.Element)
	wantName := []model.RetainedField{{Key: "nickname", Raw: []byte(`"y"`)}}
	if diff := cmp.Diff(wantName, name.Retained()); diff != "" {
		t.Errorf("name[0].Retained() mismatch (-want +got):\n%s", diff)
	}

	out, err := codec.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	assert.JSONEqual(t, in, string(out))

	if !strings.Contains(logs.String(), "retaining unknown field") {
		t.Errorf("no debug event logged for retained fields, got %q", logs.String())
	}

	_, err = fhirjson.New(r4.Catalog(), fhirjson.Options{}).Unmarshal([]byte(in))
	if !errors.Is(err, fhirjson.UnexpectedField) {
		t.Errorf("strict Unmarshal() error = %v, want %v", err, fhirjson.UnexpectedField)
	}
}

func TestPeekResourceType(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{name: "tag first", in: `{"resourceType":"Patient","id":"1"}`, want: "Patient"},
		{name: "tag last", in: `{"id":"1","contained":[{"resourceType":"Organization"}],"resourceType":"Patient"}`, want: "Patient"},
		{name: "no tag", in: `{"id":"1"}`, wantErr: fhirjson.MissingRequiredField},
		{name: "no string", in: `{"resourceType":1}`, wantErr: fhirjson.TypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fhirjson.PeekResourceType([]byte(tt.in))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("PeekResourceType() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("PeekResourceType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConcurrentUnmarshal(t *testing.T) {
	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})
	examples := testdata.GetExamples()

	var wg sync.WaitGroup
	for range 8 {
		for name, in := range examples {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r, err := codec.Unmarshal(in)
				if err != nil {
					t.Errorf("%s: Unmarshal() error = %v", name, err)
					return
				}
				if _, err := codec.Marshal(r); err != nil {
					t.Errorf("%s: Marshal() error = %v", name, err)
				}
			}()
		}
	}
	wg.Wait()
}
