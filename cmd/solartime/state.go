package main

import (
	"github.com/spf13/cobra"

	"github.com/litescript/solartime/internal/report"
)

func newStateCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "state",
		Short: "Classify the sun state at an instant (default now)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			export := report.ExportState(opts.st, opts.where, opts.at)
			w := cmd.OutOrStdout()
			if asJSON {
				return export.WriteJSON(w)
			}
			report.WriteState(w, export, report.NewStyles(isTerminal(w)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write JSON instead of a list")
	return cmd
}
