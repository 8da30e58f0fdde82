package client

import (
	"context"
	"errors"
	"net/http"

	"github.com/kastproductions/printify-client/client/internal/api"
)

// DefaultBaseURL is the Printify REST endpoint every request is sent to
// unless WithBaseURL overrides it.
const DefaultBaseURL = "https://api.printify.com/v1"

// ProductsPageLimit is the fixed page size used by GetProducts.
const ProductsPageLimit = api.ProductsPageLimit

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a typed Printify API client. Its configuration is fixed at
// construction; a Client is safe for concurrent use.
type Client struct {
	baseURL string
	shopID  string // empty unless WithShopID was given
	apiKey  string // bearer token sent with every request
	http    *http.Client

	debug bool
}

// New constructs a Client authenticating with apiKey.
// Additional options can be provided via functional arguments.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("apiKey cannot be empty")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		http:    &http.Client{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		c.debug = true
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.wrapTransport()
	return c, nil
}

// wrapTransport installs, from the wire up: metrics, debug logging (when
// enabled), then the Authorization header. Debug dumps therefore never
// contain the API key.
func (c *Client) wrapTransport() {
	rt := c.http.Transport
	if rt == nil {
		rt = http.DefaultTransport
	}
	rt = &metricsTransport{base: rt}
	if c.debug {
		rt = &debugTransport{base: rt}
	}
	c.http.Transport = &apiKeyTransport{base: rt, apiKey: c.apiKey}
}

// apiKeyTransport wraps an http.RoundTripper to automatically add Authorization header
type apiKeyTransport struct {
	base   http.RoundTripper
	apiKey string
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone the request to avoid modifying the original
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.apiKey)
	return t.base.RoundTrip(cloned)
}

// ShopID returns the shop the client is bound to, or "" when unbound.
func (c *Client) ShopID() string { return c.shopID }

// BaseURL returns the endpoint requests are sent to.
func (c *Client) BaseURL() string { return c.baseURL }

// ForShop returns a client for another shop sharing this client's
// credentials and transport. The receiver is left unchanged.
func (c *Client) ForShop(shopID string) *Client {
	cp := *c
	cp.shopID = shopID
	return &cp
}

// --------------------------------------------------------------------
// Shop operations
// --------------------------------------------------------------------

// GetShops lists the shops of the account. It does not need a shop id.
func (c *Client) GetShops(ctx context.Context) ([]Shop, error) {
	return api.GetShops(ctx, c.http, c.baseURL)
}

// --------------------------------------------------------------------
// Webhook operations
// --------------------------------------------------------------------

// CreateWebhooks registers one webhook per entry, concurrently. Every
// registration is sent even when another fails; the call then returns the
// first failure and there is no partial-success report.
func (c *Client) CreateWebhooks(ctx context.Context, regs []WebhookRegistration) ([]Object, error) {
	return api.CreateWebhooks(ctx, c.http, c.baseURL, c.shopID, regs)
}

// DeleteWebhook removes a webhook.
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) (Value, error) {
	return api.DeleteWebhook(ctx, c.http, c.baseURL, c.shopID, webhookID)
}

// GetWebhooks lists the shop's webhooks.
func (c *Client) GetWebhooks(ctx context.Context) ([]Object, error) {
	return api.GetWebhooks(ctx, c.http, c.baseURL, c.shopID)
}

// --------------------------------------------------------------------
// Product operations
// --------------------------------------------------------------------

// GetProducts returns the first page (ProductsPageLimit items) of products.
func (c *Client) GetProducts(ctx context.Context) (*ProductPage, error) {
	return api.GetProducts(ctx, c.http, c.baseURL, c.shopID)
}

// GetProduct retrieves a product by id.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	return api.GetProduct(ctx, c.http, c.baseURL, c.shopID, productID)
}

// --------------------------------------------------------------------
// Order operations
// --------------------------------------------------------------------

// CreateOrder submits an order.
func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	return api.CreateOrder(ctx, c.http, c.baseURL, c.shopID, req)
}

// SendOrderToProduction releases an order for fulfillment.
func (c *Client) SendOrderToProduction(ctx context.Context, orderID string) (*OrderToProduction, error) {
	return api.SendOrderToProduction(ctx, c.http, c.baseURL, c.shopID, orderID)
}

// --------------------------------------------------------------------
// Publish lifecycle
// --------------------------------------------------------------------

// Publish requests publication of every field of the product.
func (c *Client) Publish(ctx context.Context, productID string) (Value, error) {
	return api.Publish(ctx, c.http, c.baseURL, c.shopID, productID)
}

// Unpublish reports the product as removed from the storefront.
func (c *Client) Unpublish(ctx context.Context, productID string) (Value, error) {
	return api.Unpublish(ctx, c.http, c.baseURL, c.shopID, productID)
}

// SetPublishStatusFailed reports a failed publication with the fixed reason
// "Request timed out".
func (c *Client) SetPublishStatusFailed(ctx context.Context, productID string) (Value, error) {
	return api.SetPublishStatusFailed(ctx, c.http, c.baseURL, c.shopID, productID)
}

// SetPublishStatusSucceeded reports a successful publication. An empty
// req.Handle counts as missing: a placeholder URL containing the product id is
// sent instead.
func (c *Client) SetPublishStatusSucceeded(ctx context.Context, req PublishSucceededRequest) (Value, error) {
	return api.SetPublishStatusSucceeded(ctx, c.http, c.baseURL, c.shopID, req)
}
