package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/kastproductions/printify-client/client"
)

// ProductHandler exposes product lookups.
type ProductHandler struct {
	client *client.Client
}

func NewProductHandler(c *client.Client) *ProductHandler { return &ProductHandler{client: c} }

func (ph *ProductHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_products",
		mcp.WithDescription("List the first page (up to 100) of the shop's products"),
		withShopID(),
	)
	get := mcp.NewTool("get_product",
		mcp.WithDescription("Get one product with its options, variants and images"),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product id")),
		withShopID(),
	)
	s.AddTool(list, ph.handleListProducts)
	s.AddTool(get, ph.handleGetProduct)
	return nil
}

func (ph *ProductHandler) handleListProducts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c := forShop(ph.client, req)
	log.Debug().Str("shop_id", c.ShopID()).Msg("list_products invoked")

	start := time.Now()
	page, err := c.GetProducts(ctx)
	return finish("list_products", start, page, err)
}

func (ph *ProductHandler) handleGetProduct(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	productID, err := req.RequireString("product_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c := forShop(ph.client, req)
	log.Debug().Str("shop_id", c.ShopID()).Str("product_id", productID).Msg("get_product invoked")

	start := time.Now()
	p, err := c.GetProduct(ctx, productID)
	return finish("get_product", start, p, err)
}
