// Package printifytest provides an in-memory fake of the Printify REST API for
// tests. It serves the shop, product, webhook, order and publishing endpoints
// the client uses, checks bearer authentication, records every request and
// can be told to fail the next call to a path.
package printifytest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// BasePath is the path prefix the fake serves under, mirroring /v1 of the real API.
const BasePath = "/v1"

// Request is a snapshot of one request received by the fake.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Publish states recorded per product.
const (
	StatePublishing  = "publishing"
	StatePublished   = "published"
	StateFailed      = "failed"
	StateUnpublished = "unpublished"
)

// PublishStatus is the last publish lifecycle signal received for a product.
type PublishStatus struct {
	State    string
	Reason   string // set by publishing_failed
	External map[string]any
	Fields   map[string]any // flags sent with publish
}

type failure struct {
	status int
	body   string
}

type shopData struct {
	record   map[string]any
	products []map[string]any
	webhooks []map[string]any
	orders   map[string]map[string]any
	publish  map[string]PublishStatus
}

// Server is a running fake. Create it with New and Close it when done.
type Server struct {
	srv    *httptest.Server
	router chi.Router
	apiKey string

	mu       sync.Mutex
	shopIDs  []string
	shops    map[string]*shopData
	requests []Request
	failures map[string][]failure // keyed by "METHOD /path"
}

// New starts a fake that accepts apiKey as its only bearer token.
func New(apiKey string) *Server {
	s := &Server{
		apiKey:   apiKey,
		shops:    map[string]*shopData{},
		failures: map[string][]failure{},
	}
	s.router = s.routes()
	s.srv = httptest.NewServer(s.router)
	return s
}

// URL is the base URL to hand to the client (server URL + BasePath).
func (s *Server) URL() string { return s.srv.URL + BasePath }

// Client returns an *http.Client wired to the fake's listener.
func (s *Server) Client() *http.Client { return s.srv.Client() }

// Handler exposes the router, e.g. for mounting inside another server.
func (s *Server) Handler() http.Handler { return s.router }

// Close shuts the fake down.
func (s *Server) Close() { s.srv.Close() }

// AddShop registers a shop. Numeric ids are served as JSON numbers, as the
// real API does.
func (s *Server) AddShop(id, title, salesChannel string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.shops[id]; ok {
		return
	}
	var jsonID any = id
	if n, err := strconv.ParseInt(id, 10, 64); err == nil {
		jsonID = n
	}
	s.shopIDs = append(s.shopIDs, id)
	s.shops[id] = &shopData{
		record:  map[string]any{"id": jsonID, "title": title, "sales_channel": salesChannel},
		orders:  map[string]map[string]any{},
		publish: map[string]PublishStatus{},
	}
}

// AddProduct stores product (which must carry a string "id") under shopID,
// creating the shop if needed. Any extra keys are served back unchanged.
func (s *Server) AddProduct(shopID string, product map[string]any) {
	s.AddShop(shopID, "Shop "+shopID, "custom_integration")
	s.mu.Lock()
	defer s.mu.Unlock()
	sd := s.shops[shopID]
	sd.products = append(sd.products, product)
}

// FailNext makes the next request matching method and path (relative to
// BasePath, e.g. "/shops.json") answer with status and a JSON error body.
// Calls queue up per path.
func (s *Server) FailNext(method, path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := method + " " + BasePath + path
	body := fmt.Sprintf(`{"status":"error","code":%d,"message":%q}`, status, http.StatusText(status))
	s.failures[key] = append(s.failures[key], failure{status: status, body: body})
}

// Requests returns every request received so far, in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// RequestsTo filters Requests by method and path relative to BasePath.
func (s *Server) RequestsTo(method, path string) []Request {
	var out []Request
	for _, r := range s.Requests() {
		if r.Method == method && r.Path == BasePath+path {
			out = append(out, r)
		}
	}
	return out
}

// Webhooks returns the webhooks registered for shopID, sorted by topic.
func (s *Server) Webhooks(shopID string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shops[shopID]
	if !ok {
		return nil
	}
	out := append([]map[string]any(nil), sd.webhooks...)
	sort.Slice(out, func(i, j int) bool { return fmt.Sprint(out[i]["topic"]) < fmt.Sprint(out[j]["topic"]) })
	return out
}

// Order returns a stored order.
func (s *Server) Order(shopID, orderID string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shops[shopID]
	if !ok {
		return nil, false
	}
	o, ok := sd.orders[orderID]
	return o, ok
}

// PublishStatus returns the last publish signal recorded for a product.
func (s *Server) PublishStatus(shopID, productID string) (PublishStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shops[shopID]
	if !ok {
		return PublishStatus{}, false
	}
	st, ok := sd.publish[productID]
	return st, ok
}

// ------------------------- middleware -------------------------

// record captures the request, restoring the body for the handlers.
func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// injectFailures answers with a queued failure for the request, if any.
func (s *Server) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		s.mu.Lock()
		queue := s.failures[key]
		var f *failure
		if len(queue) > 0 {
			f = &queue[0]
			s.failures[key] = queue[1:]
		}
		s.mu.Unlock()
		if f != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(f.status)
			_, _ = io.WriteString(w, f.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// authMiddleware requires "Authorization: Bearer <apiKey>".
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" || token != s.apiKey {
			writeError(w, http.StatusUnauthorized, "Unauthenticated.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------- helpers -------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"status": "error", "code": status, "message": msg})
}

func decodeBody(r *http.Request) (map[string]any, error) {
	var m map[string]any
	if r.Body == nil {
		return map[string]any{}, nil
	}
	data, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// jsonParam strips the ".json" suffix from a URL parameter.
func jsonParam(r *http.Request, name string) string {
	return strings.TrimSuffix(chi.URLParam(r, name), ".json")
}

func newID() string { return strings.ReplaceAll(uuid.NewString(), "-", "")[:24] }
