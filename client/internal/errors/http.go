package errors

import (
	"io"
	"net/http"
	"strconv"
	"strings"
)

// maxErrorBody bounds how much of a failed response is retained.
const maxErrorBody = 64 << 10

// NewRequestError builds a RequestError from a non-2xx response.
func NewRequestError(req *http.Request, resp *http.Response) *RequestError {
	e := &RequestError{
		StatusCode: resp.StatusCode,
		StatusText: ReasonPhrase(resp),
	}
	if req != nil {
		e.Method = req.Method
		e.URL = req.URL.String()
	}
	if resp.Body != nil {
		e.Body, _ = io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	}
	return e
}

// ReasonPhrase extracts the reason phrase from resp.Status ("404 Not Found"
// yields "Not Found"). Transports that leave Status empty fall back to the
// standard text for the code.
func ReasonPhrase(resp *http.Response) string {
	code := strconv.Itoa(resp.StatusCode)
	status := strings.TrimSpace(resp.Status)
	if rest, ok := strings.CutPrefix(status, code); ok {
		status = strings.TrimSpace(rest)
	}
	if status == "" {
		return http.StatusText(resp.StatusCode)
	}
	return status
}
