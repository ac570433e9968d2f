package main

import (
	"github.com/dhamidi/ctlbind/bindmap"
	"github.com/spf13/cobra"
)

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server for binding maps",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := bindmap.NewLSPServer(version)
			return server.RunStdio()
		},
	}
}
