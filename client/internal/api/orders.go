package api

import (
	"context"

	"github.com/kastproductions/printify-client/client/internal/types"
)

// CreateOrder submits a new order; the request is sent verbatim as JSON.
func CreateOrder(ctx context.Context, httpClient HTTPClient, baseURL, shopID string, req types.CreateOrderRequest) (*types.CreateOrderResponse, error) {
	endpoint, err := shopEndpoint(shopID, "/orders.json")
	if err != nil {
		return nil, err
	}
	res, err := post[types.CreateOrderResponse](ctx, httpClient, baseURL, endpoint, req)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// SendOrderToProduction releases an order for fulfillment. No body is sent.
func SendOrderToProduction(ctx context.Context, httpClient HTTPClient, baseURL, shopID, orderID string) (*types.OrderToProduction, error) {
	endpoint, err := shopEndpoint(shopID, "/orders/%s/send_to_production.json", orderID)
	if err != nil {
		return nil, err
	}
	res, err := post[types.OrderToProduction](ctx, httpClient, baseURL, endpoint, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
