package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kastproductions/printify-client/client"
)

func newListShopsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-shops",
		Short: "List the shops of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "list-shops", func(ctx context.Context, c *client.Client) ([]client.Shop, error) {
				return c.GetShops(ctx)
			})
		},
	}
}
