// Package outcome builds OperationOutcome resources from a catalog.
package outcome

import (
	"fmt"

	"github.com/damedic/fhir-codec-go/model"
	"github.com/damedic/fhir-codec-go/schema"
)

// Issue is a single OperationOutcome issue.
type Issue struct {
	Severity    string
	Code        string
	Diagnostics string
	// Expression locates the issue in the request body, e.g. "Patient.name[0]".
	Expression string
}

// Build constructs an OperationOutcome resource with the given issues.
//
// The catalog must define OperationOutcome with an issue backbone of
// severity, code, diagnostics and expression.
func Build(c *schema.Catalog, issues ...Issue) (*model.Resource, error) {
	kind, ok := c.Resource("OperationOutcome")
	if !ok {
		return nil, fmt.Errorf("release %s has no OperationOutcome", c.Release())
	}
	f, ok := kind.Field("issue")
	if !ok || len(f.Types) != 1 {
		return nil, fmt.Errorf("OperationOutcome of release %s has no issue element", c.Release())
	}
	issueType, ok := c.Type(f.Types[0])
	if !ok {
		return nil, fmt.Errorf("unknown type %s", f.Types[0])
	}

	list := make(model.List, 0, len(issues))
	for _, issue := range issues {
		el := model.NewElement(issueType)
		if err := el.Set("severity", model.NewText("code", issue.Severity)); err != nil {
			return nil, err
		}
		if err := el.Set("code", model.NewText("code", issue.Code)); err != nil {
			return nil, err
		}
		if issue.Diagnostics != "" {
			if err := el.Set("diagnostics", model.NewText("string", issue.Diagnostics)); err != nil {
				return nil, err
			}
		}
		if issue.Expression != "" {
			if err := el.Set("expression", model.List{model.NewText("string", issue.Expression)}); err != nil {
				return nil, err
			}
		}
		list = append(list, el)
	}

	oo, err := model.NewResource(kind)
	if err != nil {
		return nil, err
	}
	if err := oo.Set("issue", list); err != nil {
		return nil, err
	}
	return oo, nil
}
