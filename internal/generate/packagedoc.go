package generate

import (
	"fmt"

	. "github.com/dave/jennifer/jen"

	"github.com/damedic/fhir-codec-go/schema"
)

// PackageDocGenerator writes the package comment of the generated package
// to doc_gen.go.
type PackageDocGenerator struct{}

func (g PackageDocGenerator) Generate(file func(fileName string) *File, pkgName string, c *schema.Catalog) {
	f := file("doc")
	// lines starting with // are written verbatim
	f.PackageComment(fmt.Sprintf("// Package %s provides the schema catalog of FHIR release %s.", pkgName, c.Release()))
	f.PackageComment("//")
	f.PackageComment("// The tables in the *_gen.go files are generated from the published")
	f.PackageComment("// StructureDefinitions by internal/cmd/generate.")
}
