package client

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsTransport_CountsByMethodAndCode(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: 418, Status: "418 I'm a teapot", Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	mt := &metricsTransport{base: rt}
	before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodDelete, "418"))

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodDelete, "http://example.com/x", http.NoBody)
	if _, err := mt.RoundTrip(req); err != nil {
		t.Fatalf("RoundTrip: %v", err)
	}
	if got := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodDelete, "418")) - before; got != 1 {
		t.Fatalf("counter delta = %v, want 1", got)
	}
}

func TestMetricsTransport_TransportError(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) { return nil, errors.New("dial") })
	mt := &metricsTransport{base: rt}
	before := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodPut, "error"))

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPut, "http://example.com/x", http.NoBody)
	if _, err := mt.RoundTrip(req); err == nil {
		t.Fatalf("expected error")
	}
	if got := testutil.ToFloat64(requestsTotal.WithLabelValues(http.MethodPut, "error")) - before; got != 1 {
		t.Fatalf("counter delta = %v, want 1", got)
	}
}
