package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/kastproductions/printify-client/client/internal/errors"
)

// ContentType is sent with every request.
const ContentType = "application/json;charset=utf-8"

// HTTPClient interface for dependency injection
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options describes a single call: the HTTP method (GET when empty) and an
// optional pre-serialised JSON body.
type Options struct {
	Method string
	Body   []byte
}

// Invoke issues one request to baseURL+endpoint and decodes a 2xx response
// body into T. Bodies are decoded as-is; nothing is validated beyond what the
// shape of T enforces. An empty 2xx body yields the zero T.
//
// Non-2xx responses fail with *errors.RequestError. Transport errors are
// returned exactly as the HTTP client reported them.
func Invoke[T any](ctx context.Context, httpClient HTTPClient, baseURL, endpoint string, opts Options) (T, error) {
	var out T
	if err := ctx.Err(); err != nil {
		return out, err
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	var body io.Reader
	if opts.Body != nil {
		body = bytes.NewReader(opts.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, baseURL+endpoint, body)
	if err != nil {
		return out, err
	}
	httpReq.Header.Set("Content-Type", ContentType)
	// Note: Authorization header will be added by transport layer

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return out, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, errors.NewRequestError(httpReq, resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return out, nil
}

// post marshals payload (when non-nil) and POSTs it to endpoint.
func post[T any](ctx context.Context, httpClient HTTPClient, baseURL, endpoint string, payload any) (T, error) {
	opts := Options{Method: http.MethodPost}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			var zero T
			return zero, err
		}
		opts.Body = body
	}
	return Invoke[T](ctx, httpClient, baseURL, endpoint, opts)
}

// shopEndpoint builds "/shops/{shopID}" + the formatted suffix, escaping every
// caller supplied segment.
func shopEndpoint(shopID, suffix string, segments ...string) (string, error) {
	if shopID == "" {
		return "", errors.ErrShopIDRequired
	}
	args := make([]any, len(segments))
	for i, s := range segments {
		args[i] = url.PathEscape(s)
	}
	return "/shops/" + url.PathEscape(shopID) + fmt.Sprintf(suffix, args...), nil
}
