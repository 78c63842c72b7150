package main

import (
	"archive/zip"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// definitionFiles are the bundles of a definitions archive holding the
// StructureDefinitions of datatypes and resources.
var definitionFiles = []string{"profiles-types.json", "profiles-resources.json"}

func readDefinitions(path string, log zerolog.Logger) ([][]byte, error) {
	log.Info().Str("path", path).Msg("opening zip archive")
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open definitions: %w", err)
	}
	defer r.Close()

	bundles := make([][]byte, 0, len(definitionFiles))
	for _, name := range definitionFiles {
		data, err := readFile(&r.Reader, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		log.Debug().Str("file", name).Int("bytes", len(data)).Msg("read bundle")
		bundles = append(bundles, data)
	}
	return bundles, nil
}

// readFile reads name from the archive root or from the definitions.json
// directory some releases nest their files in.
func readFile(r *zip.Reader, name string) ([]byte, error) {
	file, err := r.Open(name)
	if err != nil {
		file, err = r.Open("definitions.json/" + name)
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
