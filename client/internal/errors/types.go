// Package errors defines the failures surfaced by the client SDK.
// There is a single HTTP failure kind; status codes are not classified.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrShopIDRequired is returned by shop-scoped operations when the client was
// built without a shop id. No request is issued in that case.
var ErrShopIDRequired = stderrors.New("printify: shop id required for shop-scoped operation")

// RequestError reports a response whose status was outside 200-299.
type RequestError struct {
	StatusCode int    // HTTP status code
	StatusText string // reason phrase of the status line
	Method     string
	URL        string
	Body       []byte // raw response body, kept for debugging and never parsed
}

// Error returns "<status> <statusText>".
func (e *RequestError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.StatusText)
}

// AsRequestError unwraps err into a *RequestError when it is one.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if stderrors.As(err, &re) {
		return re, true
	}
	return nil, false
}
