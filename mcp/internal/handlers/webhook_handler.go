package handlers

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/kastproductions/printify-client/client"
)

// WebhookHandler exposes webhook management.
type WebhookHandler struct {
	client *client.Client
}

func NewWebhookHandler(c *client.Client) *WebhookHandler { return &WebhookHandler{client: c} }

func (wh *WebhookHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_webhooks",
		mcp.WithDescription("List the shop's webhooks"),
		withShopID(),
	)
	create := mcp.NewTool("create_webhooks",
		mcp.WithDescription("Register one webhook per topic, all delivering to the same URL. Fails as a whole if any registration fails."),
		mcp.WithString("topics", mcp.Required(), mcp.Description("Comma separated: order:created, order:sent-to-production, order:shipment:created, order:shipment:delivered")),
		mcp.WithString("url", mcp.Required(), mcp.Description("Callback URL")),
		mcp.WithString("secret", mcp.Description("Shared secret")),
		withShopID(),
	)
	del := mcp.NewTool("delete_webhook",
		mcp.WithDescription("Delete a webhook"),
		mcp.WithString("webhook_id", mcp.Required(), mcp.Description("Webhook id")),
		withShopID(),
	)
	s.AddTool(list, wh.handleListWebhooks)
	s.AddTool(create, wh.handleCreateWebhooks)
	s.AddTool(del, wh.handleDeleteWebhook)
	return nil
}

func (wh *WebhookHandler) handleListWebhooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c := forShop(wh.client, req)
	log.Debug().Str("shop_id", c.ShopID()).Msg("list_webhooks invoked")

	start := time.Now()
	hooks, err := c.GetWebhooks(ctx)
	return finish("list_webhooks", start, hooks, err)
}

func (wh *WebhookHandler) handleCreateWebhooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rawTopics, err := req.RequireString("topics")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	url, err := req.RequireString("url")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	topics, err := client.ParseTopics(rawTopics)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	secret := optionalString(req, "secret")

	regs := make([]client.WebhookRegistration, len(topics))
	for i, t := range topics {
		regs[i] = client.WebhookRegistration{Topic: t, URL: url, Secret: secret}
	}
	c := forShop(wh.client, req)
	log.Debug().Str("shop_id", c.ShopID()).Int("count", len(regs)).Msg("create_webhooks invoked")

	start := time.Now()
	created, err := c.CreateWebhooks(ctx, regs)
	return finish("create_webhooks", start, created, err)
}

func (wh *WebhookHandler) handleDeleteWebhook(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("webhook_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c := forShop(wh.client, req)
	log.Debug().Str("shop_id", c.ShopID()).Str("webhook_id", id).Msg("delete_webhook invoked")

	start := time.Now()
	res, err := c.DeleteWebhook(ctx, id)
	return finish("delete_webhook", start, res, err)
}
