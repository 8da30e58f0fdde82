package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/kastproductions/printify-client/client"
)

// PublishHandler exposes the publish lifecycle signals.
type PublishHandler struct {
	client *client.Client
}

func NewPublishHandler(c *client.Client) *PublishHandler { return &PublishHandler{client: c} }

type productCall func(*client.Client, context.Context, string) (client.Value, error)

func (ph *PublishHandler) RegisterTools(s *server.MCPServer) error {
	productTool := func(name, desc string) mcp.Tool {
		return mcp.NewTool(name,
			mcp.WithDescription(desc),
			mcp.WithString("product_id", mcp.Required(), mcp.Description("Product id")),
			withShopID(),
		)
	}
	s.AddTool(productTool("publish_product", "Publish every field (title, description, images, variants, tags) of a product"),
		ph.productHandler("publish_product", (*client.Client).Publish))
	s.AddTool(productTool("unpublish_product", "Report a product as removed from the storefront"),
		ph.productHandler("unpublish_product", (*client.Client).Unpublish))
	s.AddTool(productTool("set_publish_failed", "Report that publishing a product failed"),
		ph.productHandler("set_publish_failed", (*client.Client).SetPublishStatusFailed))

	succeeded := mcp.NewTool("set_publish_succeeded",
		mcp.WithDescription("Report that a product is live on the storefront"),
		mcp.WithString("product_id", mcp.Required(), mcp.Description("Product id")),
		mcp.WithString("handle", mcp.Description("Storefront URL; a placeholder is sent when omitted")),
		withShopID(),
	)
	s.AddTool(succeeded, ph.handleSucceeded)
	return nil
}

func (ph *PublishHandler) productHandler(tool string, call productCall) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		productID, err := req.RequireString("product_id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		c := forShop(ph.client, req)
		log.Debug().Str("shop_id", c.ShopID()).Str("product_id", productID).Msgf("%s invoked", tool)

		start := time.Now()
		res, err := call(c, ctx, productID)
		return finish(tool, start, res, err)
	}
}

func (ph *PublishHandler) handleSucceeded(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	productID, err := req.RequireString("product_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c := forShop(ph.client, req)
	log.Debug().Str("shop_id", c.ShopID()).Str("product_id", productID).Msg("set_publish_succeeded invoked")

	start := time.Now()
	res, err := c.SetPublishStatusSucceeded(ctx, client.PublishSucceededRequest{
		ProductID: productID,
		Handle:    optionalString(req, "handle"),
	})
	return finish("set_publish_succeeded", start, res, err)
}
