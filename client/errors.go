package client

import (
	"github.com/kastproductions/printify-client/client/internal/errors"
)

// RequestError is returned when the API answers with a status outside
// 200-299. Its message is "<status> <statusText>".
type RequestError = errors.RequestError

// ErrShopIDRequired is returned by shop-scoped operations on a client built
// without WithShopID.
var ErrShopIDRequired = errors.ErrShopIDRequired

// IsRequestError reports whether err is (or wraps) a *RequestError.
func IsRequestError(err error) bool {
	_, ok := errors.AsRequestError(err)
	return ok
}

// StatusCode returns the HTTP status carried by err, if it is a RequestError.
func StatusCode(err error) (int, bool) {
	re, ok := errors.AsRequestError(err)
	if !ok {
		return 0, false
	}
	return re.StatusCode, true
}
