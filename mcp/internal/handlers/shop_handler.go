package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/kastproductions/printify-client/client"
)

// ShopHandler exposes account-level tools.
type ShopHandler struct {
	client *client.Client
}

func NewShopHandler(c *client.Client) *ShopHandler { return &ShopHandler{client: c} }

func (sh *ShopHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_shops",
		mcp.WithDescription("List the shops of the Printify account (id, title, sales_channel)"),
	)
	s.AddTool(list, sh.handleListShops)
	return nil
}

func (sh *ShopHandler) handleListShops(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Debug().Msg("list_shops invoked")
	start := time.Now()
	shops, err := sh.client.GetShops(ctx)
	return finish("list_shops", start, shops, err)
}
