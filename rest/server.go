// Package rest serves the FHIR JSON codec over HTTP.
//
// Request bodies are decoded with the configured codec. Decoding errors are
// returned as OperationOutcome resources whose issues carry the location of
// the offending element, e.g. "Patient.name[0].given".
//
// Currently, installed patterns are:
//   - normalize: "POST /{type}" returns the resource in canonical form
//   - validate:  "POST /$validate", "POST /{type}/$validate" returns an OperationOutcome
//
// If you do not want the handlers installed at the root, use something like
//
//	mux.Handle("/path/", http.StripPrefix("/path", server))
package rest

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"mime"
	"net/http"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/rest/internal/outcome"
)

// FormatJSON is the media type of FHIR JSON.
const FormatJSON = "application/fhir+json"

var alternateFormatsJSON = []string{"application/json", "text/json", "json"}

var defaultServerMaxBodySize int64 = 10 << 20

// Server decodes and re-encodes FHIR resources posted to it.
type Server struct {
	// Codec decodes request bodies and encodes responses.
	Codec *fhirjson.Codec
	// MaxBodySize limits the size of request bodies in bytes.
	// Defaults to 10 MiB.
	MaxBodySize int64
	// Logger receives one event per request. Nil disables logging.
	Logger *zerolog.Logger

	// internal fields
	muxMu sync.Mutex
	mux   *http.ServeMux
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.muxMu.Lock()
	if s.mux == nil {
		s.registerRoutes()
	}
	mux := s.mux
	s.muxMu.Unlock()

	mux.ServeHTTP(w, r)
}

func (s *Server) registerRoutes() {
	s.mux = http.NewServeMux()
	s.mux.Handle("POST /$validate", http.HandlerFunc(s.handleValidate))
	s.mux.Handle("POST /{type}/$validate", http.HandlerFunc(s.handleValidate))
	s.mux.Handle("POST /{type}", http.HandlerFunc(s.handleNormalize))
}

func (s *Server) logger() *zerolog.Logger {
	if s.Logger == nil {
		l := zerolog.Nop()
		return &l
	}
	return s.Logger
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	res, ok := s.decodeBody(w, r)
	if !ok {
		return
	}
	s.logger().Debug().
		Str("resourceType", res.ResourceType()).
		Int("memSize", res.MemSize()).
		Msg("normalized resource")
	s.returnResult(w, res, http.StatusOK)
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	res, ok := s.decodeBody(w, r)
	if !ok {
		return
	}
	oo, err := outcome.Build(s.Codec.Catalog(), outcome.Issue{
		Severity:    "information",
		Code:        "informational",
		Diagnostics: fmt.Sprintf("%s is valid", res.ResourceType()),
	})
	if err != nil {
		s.returnErr(w, err, "")
		return
	}
	s.returnResult(w, oo, http.StatusOK)
}

// decodeBody decodes the request body and checks it against the type in the
// path, if any. It writes an error response and returns false on failure.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request) (*model.Resource, bool) {
	if f := matchFormat(r.Header.Get("Content-Type")); f == "" {
		s.returnErr(w, &requestError{
			code: "not-supported",
			msg:  fmt.Sprintf("unsupported content type %q", r.Header.Get("Content-Type")),
		}, "")
		return nil, false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, cmp.Or(s.MaxBodySize, defaultServerMaxBodySize)))
	if err != nil {
		s.returnErr(w, err, "")
		return nil, false
	}

	expectedType := r.PathValue("type")
	res, err := s.Codec.Decode(bytes.NewReader(body))
	if err != nil {
		// the tag locates the error even when the rest of the document failed
		gotType, _ := fhirjson.PeekResourceType(body)
		s.returnErr(w, err, cmp.Or(gotType, expectedType))
		return nil, false
	}
	if expectedType != "" && res.ResourceType() != expectedType {
		s.returnErr(w, unexpectedResourceError(expectedType, res.ResourceType()), "")
		return nil, false
	}
	return res, true
}

// matchFormat returns FormatJSON for JSON media types and an empty string
// otherwise. An empty content type is treated as JSON.
func matchFormat(contentType string) string {
	if contentType == "" {
		return FormatJSON
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if mediaType == FormatJSON || slices.Contains(alternateFormatsJSON, mediaType) {
		return FormatJSON
	}
	return ""
}

func (s *Server) returnErr(w http.ResponseWriter, err error, resourceType string) {
	issue := issueFor(err, resourceType)
	s.logger().Info().
		Err(err).
		Str("code", issue.Code).
		Str("expression", issue.Expression).
		Msg("request rejected")

	oo, buildErr := outcome.Build(s.Codec.Catalog(), issue)
	if buildErr != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.returnResult(w, oo, toHTTPErrorStatus(oo))
}

func (s *Server) returnResult(w http.ResponseWriter, res *model.Resource, status int) {
	data, err := s.Codec.Marshal(res)
	if err != nil {
		// we were not able to return an application level error (OperationOutcome)
		s.logger().Error().Err(err).Msg("encoding response failed")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", FormatJSON)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func unexpectedResourceError(expectedType string, gotType string) error {
	return &requestError{
		code: "processing",
		msg:  fmt.Sprintf("unexpected resource: expected %s, got %s", expectedType, gotType),
	}
}
