package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/kastproductions/printify-client/client"
)

// OrderHandler exposes order submission.
type OrderHandler struct {
	client *client.Client
}

func NewOrderHandler(c *client.Client) *OrderHandler { return &OrderHandler{client: c} }

var addressFields = []string{
	"first_name", "last_name", "email", "phone", "country",
	"region", "address1", "address2", "city", "zip",
}

func (oh *OrderHandler) RegisterTools(s *server.MCPServer) error {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Create a single line item order; returns the order id"),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product id")),
		mcp.WithNumber("variant_id", mcp.Required(), mcp.Description("Variant id")),
		mcp.WithNumber("quantity", mcp.Description("Quantity (default 1)")),
		mcp.WithNumber("shipping_method", mcp.Description("Shipping method (default 1)")),
		mcp.WithBoolean("send_shipping_notification", mcp.Description("Email the customer on shipment")),
		mcp.WithString("external_id", mcp.Description("Caller side order id (default: random UUID)")),
		withShopID(),
	}
	for _, f := range addressFields {
		opts = append(opts, mcp.WithString(f, mcp.Description("Recipient "+f)))
	}
	create := mcp.NewTool("create_order", opts...)

	send := mcp.NewTool("send_order_to_production",
		mcp.WithDescription("Release an order for fulfillment"),
		mcp.WithString("order_id", mcp.Required(), mcp.Description("Order id")),
		withShopID(),
	)
	s.AddTool(create, oh.handleCreateOrder)
	s.AddTool(send, oh.handleSendToProduction)
	return nil
}

func (oh *OrderHandler) handleCreateOrder(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	productID, err := req.RequireString("product_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, ok := req.GetArguments()["variant_id"]; !ok {
		return mcp.NewToolResultError("required argument \"variant_id\" not found"), nil
	}
	variantID, err := numberArg(req, "variant_id", 0)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	quantity, err := numberArg(req, "quantity", 1)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	shipping, err := numberArg(req, "shipping_method", 1)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	notify, _ := req.GetArguments()["send_shipping_notification"].(bool)
	externalID := optionalString(req, "external_id")
	if externalID == "" {
		externalID = uuid.NewString()
	}

	order := client.CreateOrderRequest{
		ExternalID:               externalID,
		LineItems:                [1]client.LineItem{{ProductID: productID, VariantID: variantID, Quantity: int(quantity)}},
		ShippingMethod:           int(shipping),
		SendShippingNotification: notify,
		AddressTo: client.Address{
			FirstName: optionalString(req, "first_name"),
			LastName:  optionalString(req, "last_name"),
			Email:     optionalString(req, "email"),
			Phone:     optionalString(req, "phone"),
			Country:   optionalString(req, "country"),
			Region:    optionalString(req, "region"),
			Address1:  optionalString(req, "address1"),
			Address2:  optionalString(req, "address2"),
			City:      optionalString(req, "city"),
			Zip:       optionalString(req, "zip"),
		},
	}
	c := forShop(oh.client, req)
	log.Debug().Str("shop_id", c.ShopID()).Str("external_id", externalID).Str("product_id", productID).Msg("create_order invoked")

	start := time.Now()
	resp, err := c.CreateOrder(ctx, order)
	return finish("create_order", start, resp, err)
}

func (oh *OrderHandler) handleSendToProduction(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	orderID, err := req.RequireString("order_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c := forShop(oh.client, req)
	log.Debug().Str("shop_id", c.ShopID()).Str("order_id", orderID).Msg("send_order_to_production invoked")

	start := time.Now()
	res, err := c.SendOrderToProduction(ctx, orderID)
	return finish("send_order_to_production", start, res, err)
}
