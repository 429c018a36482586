package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/litescript/solartime/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "solartime v%s\n", version.Version)
			return err
		},
	}
}
