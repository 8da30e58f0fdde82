package api

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/kastproductions/printify-client/client/internal/types"
)

// CreateWebhooks registers one webhook per entry of regs. The requests are
// issued concurrently and every one of them is sent, even after another has
// failed; the call returns once all have finished, with the first failure if
// any. Results follow the order of regs.
func CreateWebhooks(ctx context.Context, httpClient HTTPClient, baseURL, shopID string, regs []types.WebhookRegistration) ([]types.Object, error) {
	endpoint, err := shopEndpoint(shopID, "/webhooks.json")
	if err != nil {
		return nil, err
	}
	results := make([]types.Object, len(regs))
	var g errgroup.Group
	for i, reg := range regs {
		g.Go(func() error {
			res, err := post[types.Object](ctx, httpClient, baseURL, endpoint, reg)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// DeleteWebhook removes a webhook by id. The response body is returned as
// whatever JSON the remote sent.
func DeleteWebhook(ctx context.Context, httpClient HTTPClient, baseURL, shopID, webhookID string) (types.Value, error) {
	endpoint, err := shopEndpoint(shopID, "/webhooks/%s.json", webhookID)
	if err != nil {
		return types.Value{}, err
	}
	return Invoke[types.Value](ctx, httpClient, baseURL, endpoint, Options{Method: http.MethodDelete})
}

// GetWebhooks lists the webhooks registered for the shop.
func GetWebhooks(ctx context.Context, httpClient HTTPClient, baseURL, shopID string) ([]types.Object, error) {
	endpoint, err := shopEndpoint(shopID, "/webhooks.json")
	if err != nil {
		return nil, err
	}
	return Invoke[[]types.Object](ctx, httpClient, baseURL, endpoint, Options{})
}
