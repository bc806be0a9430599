package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/CognitoIQ/odrgen/xsdmap"
	"github.com/spf13/cobra"
)

func newTranslateCmd(getenv Getenv, manifest *manifestOptions) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "translate FILE",
		Short: "Print the JSON translation of a single schema file",
		Long: `Print the JSON translation of a single schema file.

The output is the same document generate writes to NAME.hpp.json.
Type rules from the manifest and --type apply.`,
		Example: `  odrgen translate ../OpenDrive1_7_0/opendrive_17_lane.xsd --name Lane`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := manifest.load(getenv)
			if err != nil {
				return err
			}
			rules, err := cfg.TypeRules()
			if err != nil {
				return err
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			tr := xsdmap.Translator{TypeRules: rules}
			doc, err := tr.ParseFile(name, args[0])
			if err != nil {
				return err
			}
			if err := doc.WriteJSON(cmd.OutOrStdout()); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Document name (default: file name without extension)")
	return cmd
}
