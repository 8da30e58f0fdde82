package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kastproductions/printify-client/client"
)

func newListProductsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-products",
		Short: "List the first page of the shop's products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "list-products", func(ctx context.Context, c *client.Client) (*client.ProductPage, error) {
				return c.GetProducts(ctx)
			})
		},
	}
}

func newGetProductCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-product PRODUCT_ID",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "get-product", func(ctx context.Context, c *client.Client) (*client.Product, error) {
				return c.GetProduct(ctx, args[0])
			})
		},
	}
}
