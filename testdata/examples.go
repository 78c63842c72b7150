// Package testdata provides example documents for tests.
package testdata

import (
	"embed"
	"io/fs"
	"log"
	"path"
)

//go:embed examples/*.json
var examplesFS embed.FS

// GetExamples returns the embedded example resources keyed by file name.
func GetExamples() map[string][]byte {
	entries, err := fs.ReadDir(examplesFS, "examples")
	if err != nil {
		log.Fatal(err)
	}

	examples := map[string][]byte{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		examples[e.Name()], err = examplesFS.ReadFile(path.Join("examples", e.Name()))
		if err != nil {
			log.Fatal(err)
		}
	}

	return examples
}

// GetExample returns a single embedded example resource.
func GetExample(name string) []byte {
	b, err := examplesFS.ReadFile(path.Join("examples", name))
	if err != nil {
		log.Fatal(err)
	}
	return b
}
