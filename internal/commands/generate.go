package commands

import (
	"log"

	"github.com/CognitoIQ/odrgen/hppgen"
	"github.com/spf13/cobra"
)

func newGenerateCmd(getenv Getenv, manifest *manifestOptions) *cobra.Command {
	var verbose int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a header and JSON dump for every schema file",
		Long: `Generate a header and JSON dump for every schema file.

For each file NAME in the manifest, NAME.hpp.json and NAME.hpp are
written to the output directory. Files are processed in manifest order
and the first failure stops the run.`,
		Example: `  # Use the built-in OpenDRIVE 1.7 file list
  odrgen generate

  # Use a manifest and map xs:boolean to bool
  odrgen generate --config odrgen.yaml --type "xs:boolean -> bool"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := manifest.load(getenv)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}

			var gen hppgen.Config
			gen.Option(hppgen.DefaultOptions...)
			gen.Option(opts...)
			gen.Option(
				hppgen.LogOutput(log.New(cmd.ErrOrStderr(), "", 0)),
				hppgen.LogLevel(verbose),
				hppgen.Progress(cmd.OutOrStdout()),
			)
			return gen.Generate(cfg.Targets()...)
		},
	}

	cmd.Flags().CountVarP(&verbose, "verbose", "v", "Log written files (-v) or debug output (-vvvv)")
	return cmd
}
