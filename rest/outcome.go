package rest

import (
	"errors"
	"net/http"
	"slices"

	"github.com/damedic/fhir-codec-go/fhirjson"
	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/rest/internal/outcome"
)

// kindToIssueCode maps decoding errors to OperationOutcome issue codes.
var kindToIssueCode = map[fhirjson.ErrorKind]string{
	fhirjson.InvalidJSON:          "structure",
	fhirjson.MissingRequiredField: "required",
	fhirjson.AmbiguousChoice:      "structure",
	fhirjson.TypeMismatch:         "value",
	fhirjson.MalformedMetadata:    "structure",
	fhirjson.UnknownResourceKind:  "invalid",
	fhirjson.UnexpectedField:      "structure",
	fhirjson.DuplicateField:       "structure",
}

// requestError is a client error reported as a single issue.
type requestError struct {
	code string
	msg  string
}

func (e *requestError) Error() string { return e.msg }

// issueFor converts err to an OperationOutcome issue. resourceType prefixes
// the location of decoding errors when known.
func issueFor(err error, resourceType string) outcome.Issue {
	var e *fhirjson.Error
	if errors.As(err, &e) {
		issue := outcome.Issue{
			Severity:    "error",
			Code:        kindToIssueCode[e.Kind],
			Diagnostics: e.Error(),
		}
		if issue.Code == "" {
			issue.Code = "invalid"
		}
		switch path := e.Path.String(); {
		case resourceType != "" && path != "":
			issue.Expression = resourceType + "." + path
		case path != "":
			issue.Expression = path
		}
		return issue
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return outcome.Issue{Severity: "error", Code: "too-long", Diagnostics: err.Error()}
	}

	var re *requestError
	if errors.As(err, &re) {
		return outcome.Issue{Severity: "error", Code: re.code, Diagnostics: re.msg}
	}
	return outcome.Issue{Severity: "fatal", Code: "exception", Diagnostics: err.Error()}
}

var issueCodeToHTTPStatus = map[string]int{
	// invalid content
	"invalid":   http.StatusBadRequest,
	"structure": http.StatusBadRequest,
	"required":  http.StatusBadRequest,
	"value":     http.StatusBadRequest,

	// processing failure
	"processing":    http.StatusBadRequest,
	"not-supported": http.StatusUnsupportedMediaType, // only raised for request formats
	"too-long":      http.StatusRequestEntityTooLarge,

	// transient issue
	"exception": http.StatusInternalServerError,
}

func toHTTPErrorStatus(oo *model.Resource) int {
	// severity levels, highest first
	severityRank := map[string]int{
		"fatal":       3,
		"error":       2,
		"warning":     1,
		"information": 0,
	}

	highestSeverity := -1
	highestStatusCodes := []int{http.StatusBadRequest}

	for _, v := range oo.Element().List("issue") {
		issue, ok := v.(*model.Element)
		if !ok {
			continue
		}
		severity, code := issue.Scalar("severity"), issue.Scalar("code")
		if !severity.HasValue() || !code.HasValue() {
			// skip issues without severity or code
			continue
		}

		severityValue, ok := severityRank[severity.Value.String()]
		if !ok {
			continue
		}
		statusCode, ok := issueCodeToHTTPStatus[code.Value.String()]
		if !ok {
			continue
		}

		if severityValue > highestSeverity {
			highestSeverity = severityValue
			highestStatusCodes = []int{statusCode}
		} else if severityValue == highestSeverity {
			highestStatusCodes = append(highestStatusCodes, statusCode)
		}
	}

	if len(highestStatusCodes) == 1 {
		return highestStatusCodes[0]
	}
	return (slices.Max(highestStatusCodes) / 100) * 100
}
