package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/stdtty/internal/messages"
	"github.com/conn-castle/stdtty/internal/terminal"
)

var isInteractive = terminal.IsInteractive

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InteractiveUse,
		Short: messages.InteractiveShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return &SilentExitError{Code: 1}
			}
			return nil
		},
	}
}
