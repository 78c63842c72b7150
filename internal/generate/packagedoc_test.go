package generate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/damedic/fhir-codec-go/internal/generate"
)

func TestPackageDocGenerator(t *testing.T) {
	dir := t.TempDir()
	err := generate.Generate(testCatalog(t), generate.Config{Dir: dir, PkgName: "testpkg"}, generate.PackageDocGenerator{})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "doc_gen.go"))
	if err != nil {
		t.Fatal(err)
	}

	text := string(data)
	want := []string{
		"// Code generated by internal/cmd/generate. DO NOT EDIT.\n\n",
		"// Package testpkg provides the schema catalog of FHIR release test.\n//\n",
		"// StructureDefinitions by internal/cmd/generate.\npackage testpkg\n",
	}
	for _, w := range want {
		if !strings.Contains(text, w) {
			t.Errorf("doc_gen.go = %q, want it to contain %q", text, w)
		}
	}
}
