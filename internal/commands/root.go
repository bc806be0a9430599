// Package commands contains all CLI command definitions.
package commands

import (
	"fmt"

	"github.com/CognitoIQ/odrgen/internal/commandline"
	"github.com/CognitoIQ/odrgen/internal/config"
	"github.com/spf13/cobra"
)

// Getenv looks up environment variables; os.Getenv in production.
type Getenv func(string) string

// manifestOptions are the flags shared by commands that read the
// manifest. Flags override the manifest.
type manifestOptions struct {
	config    string
	schemaDir string
	output    string
	templates string
	types     commandline.TypeRuleList
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(getenv Getenv) *cobra.Command {
	opts := &manifestOptions{}
	rootCmd := &cobra.Command{
		Use:   "odrgen",
		Short: "Generate C++ headers from the OpenDRIVE XML schema",
		Long: `Generate C++ headers from the OpenDRIVE XML schema.

Without --config the OpenDRIVE 1.7 schema set is read from
$` + config.RootEnv + `/../OpenDrive1_7_0. ` + config.RootEnv + ` may also be set in a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "Manifest file (default: built-in OpenDRIVE 1.7 set)")
	flags.StringVar(&opts.schemaDir, "schema-dir", "", "Directory containing the schema files")
	flags.StringVarP(&opts.output, "output", "o", "", "Output directory")
	flags.StringVar(&opts.templates, "templates", "", "Directory containing the header template")
	flags.Var(&opts.types, "type", "Extra type rule 'from -> to' (can be used multiple times)")

	rootCmd.AddCommand(
		newGenerateCmd(getenv, opts),
		newTranslateCmd(getenv, opts),
		newFilesCmd(getenv, opts),
		newInitCmd(getenv),
	)
	return rootCmd
}

// load returns the manifest named by --config, or the default one,
// with flag overrides applied.
func (o *manifestOptions) load(getenv Getenv) (*config.Config, error) {
	var cfg *config.Config
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return nil, fmt.Errorf("load manifest: %w", err)
		}
	} else {
		cfg = config.Default(config.Root(getenv))
	}
	if o.schemaDir != "" {
		cfg.SchemaDir = o.schemaDir
	}
	if o.output != "" {
		cfg.OutputDir = o.output
	}
	if o.templates != "" {
		cfg.TemplateDir = o.templates
	}
	cfg.Types = append(cfg.Types, o.types.Strings()...)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return cfg, nil
}
