package api

import (
	"context"

	"github.com/kastproductions/printify-client/client/internal/types"
)

// GetShops lists the shops of the account. It needs no shop id.
func GetShops(ctx context.Context, httpClient HTTPClient, baseURL string) ([]types.Shop, error) {
	return Invoke[[]types.Shop](ctx, httpClient, baseURL, "/shops.json", Options{})
}
