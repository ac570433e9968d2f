package main

import (
	"fmt"
	"strings"

	"github.com/dhamidi/ctlbind/descriptor"
	"github.com/dhamidi/ctlbind/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var bankOffset uint32

	cmd := &cobra.Command{
		Use:   "parse <descriptor>",
		Short: "Parse a control descriptor and dump the result",
		Example: `  ctlbind parse "route/gain 5"
  ctlbind parse -b 8 -f json "bus/send/gain B2 3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Shells split the descriptor; put it back together.
			input := strings.Join(args, " ")

			d, err := descriptor.Parse(input)
			if err != nil {
				return fmt.Errorf("invalid control binding: %w", err)
			}

			enc := format.New(outputFormat, cmd.OutOrStdout())
			if enc == nil {
				return fmt.Errorf("unknown format: %s (expected %s)", outputFormat, strings.Join(format.Names(), ", "))
			}
			if err := enc.Encode(d.WithBankOffset(bankOffset)); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "line", "output format (json, line, yaml)")
	cmd.Flags().Uint32VarP(&bankOffset, "bank-offset", "b", 0, "bank offset added to bank-relative slots")

	return cmd
}
