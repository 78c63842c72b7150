package main

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

func writeArchive(t *testing.T, prefix string, files map[string][]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "definitions.json.zip")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	for name, data := range files {
		f, err := w.Create(prefix + name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func testArchive(t *testing.T, prefix string) string {
	t.Helper()
	definitions, err := os.ReadFile("../../../schema/testdata/definitions.json")
	if err != nil {
		t.Fatal(err)
	}
	return writeArchive(t, prefix, map[string][]byte{
		"profiles-types.json":     definitions,
		"profiles-resources.json": []byte(`{"resourceType":"Bundle","entry":[]}`),
	})
}

func TestReadDefinitions(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{name: "archive root", prefix: ""},
		{name: "nested directory", prefix: "definitions.json/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundles, err := readDefinitions(testArchive(t, tt.prefix), zerolog.Nop())
			if err != nil {
				t.Fatalf("readDefinitions() error = %v", err)
			}
			if len(bundles) != 2 {
				t.Errorf("len(readDefinitions()) = %v, want 2", len(bundles))
			}
		})
	}
}

func TestReadDefinitionsMissingBundle(t *testing.T) {
	path := writeArchive(t, "", map[string][]byte{"profiles-types.json": []byte(`{}`)})
	if _, err := readDefinitions(path, zerolog.Nop()); err == nil {
		t.Error("readDefinitions() error = nil, want error for missing profiles-resources.json")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "generate.yaml")
	yaml := "definitions: defs.zip\npackage: r4\nresources:\n  - Patient\n  - Observation\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FHIRGEN_PACKAGE", "custom")

	v := viper.New()
	v.Set("config", path)
	cfg, err := loadConfig(v)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	want := &config{
		Definitions: "defs.zip",
		Output:      ".",
		Package:     "custom",
		Release:     "R4",
		Resources:   []string{"Patient", "Observation"},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("loadConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigRequiresDefinitions(t *testing.T) {
	v := viper.New()
	v.Set("config", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := loadConfig(v); err == nil {
		t.Error("loadConfig() error = nil, want error")
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gen")
	cfg := &config{
		Definitions: testArchive(t, ""),
		Output:      out,
		Package:     "testpkg",
		Release:     "test",
		Resources:   []string{"Questionnaire"},
	}
	if err := run(cfg, zerolog.Nop()); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, name := range []string{"doc_gen.go", "types_gen.go", "resources_gen.go"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("run() did not write %s: %v", name, err)
		}
	}
}
