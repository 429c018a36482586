package main

import (
	"github.com/spf13/cobra"

	"github.com/litescript/solartime/internal/report"
)

func newTimesCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "times",
		Short: "Print every solar event of the day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			export := report.ExportDay(opts.st, opts.where, opts.at)
			w := cmd.OutOrStdout()
			if asJSON {
				return export.WriteJSON(w)
			}
			report.WriteTimesTable(w, export, report.NewStyles(isTerminal(w)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write JSON instead of a table")
	return cmd
}
