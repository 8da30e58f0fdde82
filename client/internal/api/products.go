package api

import (
	"context"
	"strconv"

	"github.com/kastproductions/printify-client/client/internal/types"
)

// ProductsPageLimit is the fixed page size requested by GetProducts.
const ProductsPageLimit = 100

// GetProducts fetches the first page of the shop's products. Further pages
// are never requested.
func GetProducts(ctx context.Context, httpClient HTTPClient, baseURL, shopID string) (*types.ProductPage, error) {
	endpoint, err := shopEndpoint(shopID, "/products.json?limit="+strconv.Itoa(ProductsPageLimit))
	if err != nil {
		return nil, err
	}
	page, err := Invoke[types.ProductPage](ctx, httpClient, baseURL, endpoint, Options{})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// GetProduct retrieves a single product.
func GetProduct(ctx context.Context, httpClient HTTPClient, baseURL, shopID, productID string) (*types.Product, error) {
	endpoint, err := shopEndpoint(shopID, "/products/%s.json", productID)
	if err != nil {
		return nil, err
	}
	p, err := Invoke[types.Product](ctx, httpClient, baseURL, endpoint, Options{})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
