package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kastproductions/printify-client/client"
)

// productCmd builds a command taking PRODUCT_ID. call is a method expression
// on *client.Client.
func productCmd(use, short string, call func(c *client.Client, ctx context.Context, productID string) (client.Value, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " PRODUCT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, use, func(ctx context.Context, c *client.Client) (client.Value, error) {
				return call(c, ctx, args[0])
			})
		},
	}
}

func newPublishCmd() *cobra.Command {
	return productCmd("publish", "Publish every field of a product", (*client.Client).Publish)
}

func newUnpublishCmd() *cobra.Command {
	return productCmd("unpublish", "Report a product as removed from the storefront", (*client.Client).Unpublish)
}

func newPublishFailedCmd() *cobra.Command {
	return productCmd("publish-failed", "Report that publishing a product failed", (*client.Client).SetPublishStatusFailed)
}

func newPublishSucceededCmd() *cobra.Command {
	var handle string

	cmd := &cobra.Command{
		Use:   "publish-succeeded PRODUCT_ID",
		Short: "Report that a product is live on the storefront",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client.PublishSucceededRequest{ProductID: args[0], Handle: handle}
			return run(cmd, "publish-succeeded", func(ctx context.Context, c *client.Client) (client.Value, error) {
				return c.SetPublishStatusSucceeded(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&handle, "handle", "", "Storefront URL of the product (default: placeholder URL)")
	return cmd
}
