package fhirjson_test

import (
	"errors"
	"testing"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/schema/r4"
)

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKind fhirjson.ErrorKind
		wantPath string
	}{
		{
			name:     "ambiguous choice",
			in:       `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueString":"ok","valueBoolean":true}`,
			wantKind: fhirjson.AmbiguousChoice,
			wantPath: "value",
		},
		{
			name:     "ambiguous choice through metadata key",
			in:       `{"resourceType":"Patient","deceasedBoolean":true,"_deceasedDateTime":{"id":"x"}}`,
			wantKind: fhirjson.AmbiguousChoice,
			wantPath: "deceased",
		},
		{
			name:     "ambiguous choice in nested resource",
			in:       `{"resourceType":"Bundle","type":"batch","entry":[{"resource":{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueString":"a","valueInteger":1}}]}`,
			wantKind: fhirjson.AmbiguousChoice,
			wantPath: "entry[0].resource.value",
		},
		{
			name:     "missing resourceType",
			in:       `{"active":true}`,
			wantKind: fhirjson.MissingRequiredField,
			wantPath: "resourceType",
		},
		{
			name:     "missing required field",
			in:       `{"resourceType":"Observation","code":{"text":"x"}}`,
			wantKind: fhirjson.MissingRequiredField,
			wantPath: "status",
		},
		{
			name:     "missing required choice",
			in:       `{"resourceType":"MedicationRequest","status":"active","intent":"order","subject":{"reference":"Patient/1"}}`,
			wantKind: fhirjson.MissingRequiredField,
			wantPath: "medication",
		},
		{
			name:     "missing required field in backbone element",
			in:       `{"resourceType":"Bundle","type":"batch","entry":[{"request":{"url":"Patient"}}]}`,
			wantKind: fhirjson.MissingRequiredField,
			wantPath: "entry[0].request.method",
		},
		{
			name:     "missing extension url",
			in:       `{"resourceType":"Patient","extension":[{"valueString":"x"}]}`,
			wantKind: fhirjson.MissingRequiredField,
			wantPath: "extension[0].url",
		},
		{
			name:     "unknown resource kind",
			in:       `{"resourceType":"Spaceship","id":"1"}`,
			wantKind: fhirjson.UnknownResourceKind,
			wantPath: "",
		},
		{
			name:     "datatype is not a resource kind",
			in:       `{"resourceType":"HumanName"}`,
			wantKind: fhirjson.UnknownResourceKind,
			wantPath: "",
		},
		{
			name:     "unknown contained resource kind",
			in:       `{"resourceType":"Patient","contained":[{"resourceType":"Spaceship"}]}`,
			wantKind: fhirjson.UnknownResourceKind,
			wantPath: "contained[0]",
		},
		{
			name:     "resourceType is no string",
			in:       `{"resourceType":["Patient"]}`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "resourceType",
		},
		{
			name:     "root is no object",
			in:       `["Patient"]`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "",
		},
		{
			name:     "string for boolean",
			in:       `{"resourceType":"Patient","active":"yes"}`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "active",
		},
		{
			name:     "null value",
			in:       `{"resourceType":"Patient","active":null}`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "active",
		},
		{
			name:     "fraction for integer",
			in:       `{"resourceType":"Patient","multipleBirthInteger":1.5}`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "multipleBirthInteger",
		},
		{
			name:     "integer out of range",
			in:       `{"resourceType":"Patient","multipleBirthInteger":3000000000}`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "multipleBirthInteger",
		},
		{
			name:     "zero for positiveInt",
			in:       `{"resourceType":"Patient","telecom":[{"rank":0}]}`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "telecom[0].rank",
		},
		{
			name:     "object for repeated field",
			in:       `{"resourceType":"Patient","name":{"family":"x"}}`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "name",
		},
		{
			name:     "number for element id",
			in:       `{"resourceType":"Patient","name":[{"id":5}]}`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "name[0].id",
		},
		{
			name:     "null entry without metadata",
			in:       `{"resourceType":"Patient","name":[{"given":[null]}]}`,
			wantKind: fhirjson.TypeMismatch,
			wantPath: "name[0].given[0]",
		},
		{
			name:     "empty metadata",
			in:       `{"resourceType":"Patient","_active":{}}`,
			wantKind: fhirjson.MalformedMetadata,
			wantPath: "_active",
		},
		{
			name:     "metadata is no object",
			in:       `{"resourceType":"Patient","active":true,"_active":"x"}`,
			wantKind: fhirjson.MalformedMetadata,
			wantPath: "_active",
		},
		{
			name:     "metadata with foreign key",
			in:       `{"resourceType":"Patient","_active":{"id":"a","url":"b"}}`,
			wantKind: fhirjson.MalformedMetadata,
			wantPath: "_active.url",
		},
		{
			name:     "metadata array length mismatch",
			in:       `{"resourceType":"Patient","name":[{"given":["a","b"],"_given":[null]}]}`,
			wantKind: fhirjson.MalformedMetadata,
			wantPath: "name[0]._given",
		},
		{
			name:     "unexpected field",
			in:       `{"resourceType":"Patient","active":true,"foo":1}`,
			wantKind: fhirjson.UnexpectedField,
			wantPath: "foo",
		},
		{
			name:     "unexpected field in element",
			in:       `{"resourceType":"Patient","name":[{"family":"x","nickname":"y"}]}`,
			wantKind: fhirjson.UnexpectedField,
			wantPath: "name[0].nickname",
		},
		{
			name:     "choice variant outside the catalog",
			in:       `{"resourceType":"Patient","deceasedString":"x"}`,
			wantKind: fhirjson.UnexpectedField,
			wantPath: "deceasedString",
		},
		{
			name:     "metadata of a non-primitive field",
			in:       `{"resourceType":"Patient","_name":[{"id":"n"}]}`,
			wantKind: fhirjson.UnexpectedField,
			wantPath: "_name",
		},
		{
			name:     "duplicate key",
			in:       `{"resourceType":"Patient","active":true,"active":false}`,
			wantKind: fhirjson.DuplicateField,
			wantPath: "active",
		},
		{
			name:     "truncated document",
			in:       `{"resourceType":"Patient",`,
			wantKind: fhirjson.InvalidJSON,
			wantPath: "",
		},
		{
			name:     "invalid UTF-8 in string",
			in:       "{\"resourceType\":\"Patient\",\"gender\":\"\xff\"}",
			wantKind: fhirjson.InvalidJSON,
			wantPath: "",
		},
	}

	codec := fhirjson.New(r4.Catalog(), fhirjson.Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := codec.Unmarshal([]byte(tt.in))
			if err == nil {
				t.Fatalf("Unmarshal() = %v, want error %v", r, tt.wantKind)
			}
			if r != nil {
				t.Errorf("Unmarshal() returned a partial resource alongside %v", err)
			}
			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("Unmarshal() error = %v, want kind %v", err, tt.wantKind)
			}

			var e *fhirjson.Error
			if !errors.As(err, &e) {
				t.Fatalf("Unmarshal() error = %T, want *fhirjson.Error", err)
			}
			if got := e.Path.String(); got != tt.wantPath {
				t.Errorf("Error.Path = %q, want %q", got, tt.wantPath)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	in := `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueString":"ok","valueBoolean":true}`
	_, err := fhirjson.New(r4.Catalog(), fhirjson.Options{}).Unmarshal([]byte(in))

	want := "ambiguous choice at value: valueString, valueBoolean"
	if err == nil || err.Error() != want {
		t.Errorf("Error() = %v, want %v", err, want)
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		name string
		path fhirjson.Path
		want string
	}{
		{name: "root", path: nil, want: ""},
		{name: "field", path: fhirjson.Path{}.Field("active"), want: "active"},
		{name: "nested", path: fhirjson.Path{}.Field("entry").Index(0).Field("resource").Field("active"), want: "entry[0].resource.active"},
		{name: "metadata array", path: fhirjson.Path{}.Field("_given").Index(2), want: "_given[2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.path.String(); got != tt.want {
				t.Errorf("String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathIsNotShared(t *testing.T) {
	base := make(fhirjson.Path, 0, 8).Field("entry")
	a := base.Field("a")
	b := base.Field("b")
	if a.String() != "entry.a" || b.String() != "entry.b" {
		t.Errorf("sibling paths = %v, %v, want entry.a, entry.b", a, b)
	}
}
