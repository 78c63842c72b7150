// Package assert contains test assertions for encoded resources.
package assert

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// JSONEqual fails the test if the two documents differ after normalisation.
// Key order and number formatting are ignored.
func JSONEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if diff := cmp.Diff(jsonFormat(t, expected), jsonFormat(t, actual)); diff != "" {
		t.Errorf("JSON mismatch (-expected +actual):\n%s", diff)
	}
}

func jsonFormat(t *testing.T, input string) any {
	t.Helper()
	var obj any
	if err := json.Unmarshal([]byte(input), &obj); err != nil {
		t.Fatalf("invalid JSON %q: %v", input, err)
	}
	return obj
}
