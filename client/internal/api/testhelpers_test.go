package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// captured is one request seen by recorder.
type captured struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// recorder is an HTTPClient that records requests and answers from respond.
type recorder struct {
	mu      sync.Mutex
	reqs    []captured
	respond func(captured) (int, string)
}

func (r *recorder) Do(req *http.Request) (*http.Response, error) {
	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}
	c := captured{Method: req.Method, URL: req.URL.String(), Header: req.Header.Clone(), Body: body}
	r.mu.Lock()
	r.reqs = append(r.reqs, c)
	r.mu.Unlock()

	status, payload := http.StatusOK, "{}"
	if r.respond != nil {
		status, payload = r.respond(c)
	}
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(payload)),
		Request:    req,
	}, nil
}

func (r *recorder) requests() []captured {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]captured(nil), r.reqs...)
}

const testBase = "https://api.test/v1"
