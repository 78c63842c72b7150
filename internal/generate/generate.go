// Package generate writes Go source for catalogs loaded from published
// StructureDefinitions.
package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	. "github.com/dave/jennifer/jen"
	"github.com/rs/zerolog"

	"github.com/damedic/fhir-codec-go/schema"
)

const (
	moduleName = "github.com/damedic/fhir-codec-go"
	schemaPkg  = moduleName + "/schema"
)

// Generator writes source derived from a catalog into package pkgName. The
// file function returns the file with the given name, creating it on first use.
type Generator interface {
	Generate(file func(fileName string) *File, pkgName string, c *schema.Catalog)
}

// Config controls Generate.
type Config struct {
	// Dir is the output directory of the generated package.
	Dir string
	// PkgName is the name of the generated package, e.g. "r4".
	PkgName string
	Logger  *zerolog.Logger
}

// Generate runs every generator over the catalog and saves the resulting
// files as <name>_gen.go below opts.Dir.
func Generate(c *schema.Catalog, opts Config, generators ...Generator) error {
	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	files := map[string]*File{}
	file := func(fileName string) *File {
		if f, ok := files[fileName]; ok {
			return f
		}
		f := NewFile(opts.PkgName)
		f.HeaderComment("Code generated by internal/cmd/generate. DO NOT EDIT.")
		f.ImportName(schemaPkg, "schema")
		files[fileName] = f
		return f
	}

	for _, g := range generators {
		g.Generate(file, opts.PkgName, c)
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		path := filepath.Join(opts.Dir, name+"_gen.go")
		log.Info().Str("file", path).Msg("writing")
		if err := files[name].Save(path); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}
	return nil
}
