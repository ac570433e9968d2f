package main

import (
	"fmt"

	"github.com/dhamidi/ctlbind/descriptor"
	"github.com/spf13/cobra"
)

func newKeywordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "keywords [segment...]",
		Short:   "List the path keywords valid after the given segments",
		Example: "  ctlbind keywords route eq",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kw := range descriptor.Completions(args) {
				fmt.Fprintln(cmd.OutOrStdout(), kw)
			}
			return nil
		},
	}
}
