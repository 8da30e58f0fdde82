package api

import (
	"context"
	"fmt"

	"github.com/kastproductions/printify-client/client/internal/types"
)

const (
	// PublishFailedReason is the only reason ever reported for a failed publication.
	PublishFailedReason = "Request timed out"

	// PlaceholderHandleFormat yields the handle reported when the caller has none.
	PlaceholderHandleFormat = "https://example.com/path/to/product/%s"
)

// Publish asks the remote to publish every field of the product. This call and
// the other publish lifecycle calls return the response body as untyped JSON.
func Publish(ctx context.Context, httpClient HTTPClient, baseURL, shopID, productID string) (types.Value, error) {
	endpoint, err := shopEndpoint(shopID, "/products/%s/publish.json", productID)
	if err != nil {
		return types.Value{}, err
	}
	return post[types.Value](ctx, httpClient, baseURL, endpoint, types.PublishAll())
}

// Unpublish notifies the remote that the product was removed from the storefront.
func Unpublish(ctx context.Context, httpClient HTTPClient, baseURL, shopID, productID string) (types.Value, error) {
	endpoint, err := shopEndpoint(shopID, "/products/%s/unpublish.json", productID)
	if err != nil {
		return types.Value{}, err
	}
	return post[types.Value](ctx, httpClient, baseURL, endpoint, nil)
}

// SetPublishStatusFailed reports that publishing the product failed.
func SetPublishStatusFailed(ctx context.Context, httpClient HTTPClient, baseURL, shopID, productID string) (types.Value, error) {
	endpoint, err := shopEndpoint(shopID, "/products/%s/publishing_failed.json", productID)
	if err != nil {
		return types.Value{}, err
	}
	return post[types.Value](ctx, httpClient, baseURL, endpoint, types.PublishFailedRequest{Reason: PublishFailedReason})
}

// SetPublishStatusSucceeded reports that the product is live on the storefront.
// An empty req.Handle is treated as missing and replaced by the placeholder
// built from PlaceholderHandleFormat.
func SetPublishStatusSucceeded(ctx context.Context, httpClient HTTPClient, baseURL, shopID string, req types.PublishSucceededRequest) (types.Value, error) {
	endpoint, err := shopEndpoint(shopID, "/products/%s/publishing_succeeded.json", req.ProductID)
	if err != nil {
		return types.Value{}, err
	}
	handle := req.Handle
	if handle == "" {
		handle = fmt.Sprintf(PlaceholderHandleFormat, req.ProductID)
	}
	body := types.PublishSucceededBody{External: types.ExternalListing{ID: req.ProductID, Handle: handle}}
	return post[types.Value](ctx, httpClient, baseURL, endpoint, body)
}
