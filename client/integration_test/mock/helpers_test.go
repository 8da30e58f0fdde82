package client

import (
	"testing"

	client "github.com/kastproductions/printify-client/client"
	"github.com/kastproductions/printify-client/printifytest"
)

const (
	testKey  = "test-api-key"
	testShop = "5432"
)

// newFake starts a fake with one shop and one product and returns a client
// bound to that shop.
func newFake(t *testing.T) (*printifytest.Server, *client.Client) {
	t.Helper()
	srv := printifytest.New(testKey)
	t.Cleanup(srv.Close)
	srv.AddShop(testShop, "My Store", "custom_integration")
	srv.AddProduct(testShop, map[string]any{
		"id":          "5d39b159e7c48c000728c89f",
		"title":       "Mug 11oz",
		"description": "Ceramic",
		"tags":        []any{"Home", "Mugs"},
		"options":     []any{map[string]any{"name": "Size", "type": "size"}},
		"variants":    []any{map[string]any{"id": 33719, "price": 1200, "is_enabled": true}},
		"images":      []any{map[string]any{"src": "https://images.example/mug.png", "is_default": true}},
		"visible":     true,
	})

	c, err := client.New(testKey, client.WithBaseURL(srv.URL()), client.WithShopID(testShop))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv, c
}
