package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/litescript/solartime/internal/ui"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Live sun clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return fmt.Errorf("watch needs a terminal; use times or state instead")
			}
			if opts.dateOn {
				opts.log.Warn("watch follows the wall clock; --date only sets the starting point")
			}

			model := ui.New(opts.st, opts.where, opts.loc, opts.at)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run sun clock: %w", err)
			}
			return nil
		},
	}
}
