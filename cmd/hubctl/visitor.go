package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sourcecodehub/hub-backend/internal/storage"
	"github.com/sourcecodehub/hub-backend/internal/visitor"
)

func newVisitorCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "visitor",
		Short: "Print this machine's visitor label, minting it on first use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withStore(cmd.Context(), func(kv storage.KV) error {
				label, err := visitor.EnsureLabel(cmd.Context(), kv)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), label)
				return nil
			})
		},
	}
}
