// Command generate writes the catalog tables of a FHIR release from its
// published definitions archive.
//
// It is run through go:generate in the release package, e.g. schema/r4,
// and reads generate.yaml from the working directory.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/damedic/fhir-codec-go/internal/generate"
	"github.com/damedic/fhir-codec-go/schema"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:          "generate",
		Short:        "Generate the catalog tables of a FHIR release",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cfg, newLogger(cfg.Verbose))
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "config file (default generate.yaml in the working directory)")
	flags.String("definitions", "", "path of the definitions.json.zip archive")
	flags.String("output", "", "output directory of the generated package")
	flags.String("package", "", "name of the generated package (default the lower-case release)")
	flags.String("release", "", "FHIR release name, e.g. R4")
	flags.StringSlice("resources", nil, "resource kinds to include (default all)")
	flags.StringSlice("types", nil, "datatypes to include (default all)")
	flags.BoolP("verbose", "v", false, "log skipped definitions")
	_ = v.BindPFlags(flags)

	return cmd
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func run(cfg *config, log zerolog.Logger) error {
	bundles, err := readDefinitions(cfg.Definitions, log)
	if err != nil {
		return err
	}

	catalog, err := schema.LoadDefinitions(cfg.Release, schema.LoadOptions{
		Resources: cfg.Resources,
		Types:     cfg.Types,
		Logger:    &log,
	}, bundles...)
	if err != nil {
		log.Error().Err(err).Msg("building catalog failed")
		return err
	}
	log.Info().
		Str("release", catalog.Release()).
		Int("types", len(catalog.Types())).
		Int("resources", len(catalog.ResourceNames())).
		Msg("catalog loaded")

	return generate.Generate(catalog, generate.Config{
		Dir:     cfg.Output,
		PkgName: cfg.Package,
		Logger:  &log,
	}, generate.PackageDocGenerator{}, generate.CatalogGenerator{})
}
