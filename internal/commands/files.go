package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFilesCmd(getenv Getenv, manifest *manifestOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "files",
		Short: "List the schema files generate would read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := manifest.load(getenv)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tSCHEMA\tSTATUS")
			for _, t := range cfg.Targets() {
				status := "ok"
				if _, err := os.Stat(t.Schema); err != nil {
					status = "missing"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", t.Name, t.Schema, status)
			}
			return w.Flush()
		},
	}
}
