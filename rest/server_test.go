package rest_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/rest"
	"github.com/damedic/fhir-codec-go/schema/r4"
	"github.com/damedic/fhir-codec-go/testdata/assert"
)

func newServer() *rest.Server {
	return &rest.Server{Codec: fhirjson.New(r4.Catalog(), fhirjson.Options{})}
}

func post(t *testing.T, server http.Handler, path, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "http://example.com"+path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	return rr
}

type issue struct {
	Severity    string   `json:"severity"`
	Code        string   `json:"code"`
	Diagnostics string   `json:"diagnostics"`
	Expression  []string `json:"expression"`
}

func issues(t *testing.T, body string) []issue {
	t.Helper()
	var oo struct {
		ResourceType string  `json:"resourceType"`
		Issue        []issue `json:"issue"`
	}
	if err := json.Unmarshal([]byte(body), &oo); err != nil {
		t.Fatalf("invalid response %q: %v", body, err)
	}
	if oo.ResourceType != "OperationOutcome" {
		t.Fatalf("resourceType = %v, want OperationOutcome", oo.ResourceType)
	}
	return oo.Issue
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		want        string
	}{
		{
			name:        "reorders fields",
			path:        "/Patient",
			contentType: "application/fhir+json",
			body:        `{"active":true,"resourceType":"Patient","id":"p1"}`,
			want:        `{"resourceType":"Patient","id":"p1","active":true}`,
		},
		{
			name:        "merges primitive metadata",
			path:        "/Patient",
			contentType: "application/json; charset=utf-8",
			body:        `{"resourceType":"Patient","_active":{"id":"a1"},"active":false}`,
			want:        `{"resourceType":"Patient","active":false,"_active":{"id":"a1"}}`,
		},
		{
			name: "missing content type",
			path: "/Basic",
			body: `{"resourceType":"Basic","code":{"text":"note"}}`,
			want: `{"resourceType":"Basic","code":{"text":"note"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := post(t, newServer(), tt.path, tt.contentType, tt.body)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %v, want %v: %s", rr.Code, http.StatusOK, rr.Body.String())
			}
			if got := rr.Header().Get("Content-Type"); got != rest.FormatJSON {
				t.Errorf("Content-Type = %v, want %v", got, rest.FormatJSON)
			}
			assert.JSONEqual(t, tt.want, rr.Body.String())
		})
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		contentType string
		body        string
		wantStatus  int
		wantIssue   issue
	}{
		{
			name:       "type mismatch",
			path:       "/Patient",
			body:       `{"resourceType":"Patient","active":"yes"}`,
			wantStatus: http.StatusBadRequest,
			wantIssue:  issue{Severity: "error", Code: "value", Expression: []string{"Patient.active"}},
		},
		{
			name:       "nested unexpected field",
			path:       "/Patient",
			body:       `{"resourceType":"Patient","name":[{"family":"Doe","nickname":"JD"}]}`,
			wantStatus: http.StatusBadRequest,
			wantIssue:  issue{Severity: "error", Code: "structure", Expression: []string{"Patient.name[0].nickname"}},
		},
		{
			name:       "ambiguous choice",
			path:       "/Observation",
			body:       `{"resourceType":"Observation","status":"final","code":{"text":"x"},"valueString":"a","valueBoolean":true}`,
			wantStatus: http.StatusBadRequest,
			wantIssue:  issue{Severity: "error", Code: "structure", Expression: []string{"Observation.value"}},
		},
		{
			name:       "missing required field",
			path:       "/Observation",
			body:       `{"resourceType":"Observation","status":"final"}`,
			wantStatus: http.StatusBadRequest,
			wantIssue:  issue{Severity: "error", Code: "required", Expression: []string{"Observation.code"}},
		},
		{
			name:       "unknown resource kind",
			path:       "/Spaceship",
			body:       `{"resourceType":"Spaceship"}`,
			wantStatus: http.StatusBadRequest,
			wantIssue:  issue{Severity: "error", Code: "invalid"},
		},
		{
			name:       "malformed JSON",
			path:       "/Patient",
			body:       `{"resourceType":"Patient",`,
			wantStatus: http.StatusBadRequest,
			wantIssue:  issue{Severity: "error", Code: "structure"},
		},
		{
			name:       "unexpected resource",
			path:       "/Observation",
			body:       `{"resourceType":"Patient"}`,
			wantStatus: http.StatusBadRequest,
			wantIssue: issue{
				Severity:    "error",
				Code:        "processing",
				Diagnostics: "unexpected resource: expected Observation, got Patient",
			},
		},
		{
			name:        "unsupported content type",
			path:        "/Patient",
			contentType: "application/fhir+xml",
			body:        `<Patient xmlns="http://hl7.org/fhir"/>`,
			wantStatus:  http.StatusUnsupportedMediaType,
			wantIssue: issue{
				Severity:    "error",
				Code:        "not-supported",
				Diagnostics: `unsupported content type "application/fhir+xml"`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := post(t, newServer(), tt.path, tt.contentType, tt.body)
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %v, want %v", rr.Code, tt.wantStatus)
			}
			got := issues(t, rr.Body.String())
			if len(got) != 1 {
				t.Fatalf("len(issue) = %v, want 1", len(got))
			}
			if tt.wantIssue.Diagnostics == "" {
				// decoding errors are described by the codec
				got[0].Diagnostics = ""
			}
			if diff := cmp.Diff(tt.wantIssue, got[0]); diff != "" {
				t.Errorf("issue mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMaxBodySize(t *testing.T) {
	server := newServer()
	server.MaxBodySize = 16

	rr := post(t, server, "/Patient", rest.FormatJSON, `{"resourceType":"Patient","id":"too-long"}`)
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %v, want %v", rr.Code, http.StatusRequestEntityTooLarge)
	}
	if got := issues(t, rr.Body.String()); len(got) != 1 || got[0].Code != "too-long" {
		t.Errorf("issue = %v, want code too-long", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantIssue  issue
	}{
		{
			name:       "system level",
			path:       "/$validate",
			body:       `{"resourceType":"Patient","active":true}`,
			wantStatus: http.StatusOK,
			wantIssue:  issue{Severity: "information", Code: "informational", Diagnostics: "Patient is valid"},
		},
		{
			name:       "type level",
			path:       "/Patient/$validate",
			body:       `{"resourceType":"Patient","active":true}`,
			wantStatus: http.StatusOK,
			wantIssue:  issue{Severity: "information", Code: "informational", Diagnostics: "Patient is valid"},
		},
		{
			name:       "type level mismatch",
			path:       "/Observation/$validate",
			body:       `{"resourceType":"Patient"}`,
			wantStatus: http.StatusBadRequest,
			wantIssue: issue{
				Severity:    "error",
				Code:        "processing",
				Diagnostics: "unexpected resource: expected Observation, got Patient",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := post(t, newServer(), tt.path, rest.FormatJSON, tt.body)
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %v, want %v", rr.Code, tt.wantStatus)
			}
			got := issues(t, rr.Body.String())
			if diff := cmp.Diff([]issue{tt.wantIssue}, got); diff != "" {
				t.Errorf("issue mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com/Patient", nil)
	rr := httptest.NewRecorder()
	newServer().ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %v, want %v", rr.Code, http.StatusMethodNotAllowed)
	}
}
