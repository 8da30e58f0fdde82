package main

import (
	"context"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kastproductions/printify-client/client"
)

func newCreateOrderCmd() *cobra.Command {
	var (
		externalID     string
		productID      string
		variantID      int64
		quantity       int
		shippingMethod int
		notify         bool
		addr           client.Address
	)

	cmd := &cobra.Command{
		Use:   "create-order",
		Short: "Submit a single line item order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if externalID == "" {
				externalID = uuid.NewString()
			}
			req := client.CreateOrderRequest{
				ExternalID:               externalID,
				LineItems:                [1]client.LineItem{{ProductID: productID, VariantID: variantID, Quantity: quantity}},
				ShippingMethod:           shippingMethod,
				SendShippingNotification: notify,
				AddressTo:                addr,
			}
			return run(cmd, "create-order", func(ctx context.Context, c *client.Client) (*client.CreateOrderResponse, error) {
				return c.CreateOrder(ctx, req)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&externalID, "external-id", "", "Caller side order id (default: random UUID)")
	f.StringVar(&productID, "product-id", "", "Product id (required)")
	f.Int64Var(&variantID, "variant-id", 0, "Variant id (required)")
	f.IntVar(&quantity, "quantity", 1, "Quantity")
	f.IntVar(&shippingMethod, "shipping-method", 1, "Shipping method")
	f.BoolVar(&notify, "send-shipping-notification", false, "Ask Printify to email the customer on shipment")
	f.StringVar(&addr.FirstName, "first-name", "", "Recipient first name")
	f.StringVar(&addr.LastName, "last-name", "", "Recipient last name")
	f.StringVar(&addr.Email, "email", "", "Recipient email")
	f.StringVar(&addr.Phone, "phone", "", "Recipient phone")
	f.StringVar(&addr.Country, "country", "", "Country code")
	f.StringVar(&addr.Region, "region", "", "Region")
	f.StringVar(&addr.Address1, "address1", "", "Address line 1")
	f.StringVar(&addr.Address2, "address2", "", "Address line 2")
	f.StringVar(&addr.City, "city", "", "City")
	f.StringVar(&addr.Zip, "zip", "", "Postal code")
	_ = cmd.MarkFlagRequired("product-id")
	_ = cmd.MarkFlagRequired("variant-id")
	return cmd
}

func newSendToProductionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send-to-production ORDER_ID",
		Short: "Release an order for fulfillment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, "send-to-production", func(ctx context.Context, c *client.Client) (*client.OrderToProduction, error) {
				return c.SendOrderToProduction(ctx, args[0])
			})
		},
	}
}
