package r4

//go:generate go run ../../internal/cmd/generate

import (
	"sync"

	"github.com/damedic/fhir-codec-go/schema"
)

// Release is the FHIR version name of the catalog.
const Release = "R4"

// Catalog returns the R4 catalog. It is built on first use and shared by all callers.
var Catalog = sync.OnceValue(func() *schema.Catalog {
	b := schema.NewBuilder(Release)
	defineTypes(b)
	defineResources(b)
	return b.MustBuild()
})
