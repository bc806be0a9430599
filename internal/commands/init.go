package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/CognitoIQ/odrgen/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd(getenv Getenv) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [PATH]",
		Short: "Write the default manifest",
		Long: `Write the default OpenDRIVE 1.7 manifest to PATH (default odrgen.yaml),
as a starting point for --config.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "odrgen.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			// Load resolves relative directories against the manifest,
			// so the default ones are written out absolute.
			root, err := filepath.Abs(config.Root(getenv))
			if err != nil {
				return err
			}
			if err := config.Default(root).Save(path); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing manifest")
	return cmd
}
