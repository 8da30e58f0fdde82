package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kastproductions/printify-client/client/internal/errors"
	"github.com/kastproductions/printify-client/client/internal/types"
)

var twoRegs = []types.WebhookRegistration{
	{Topic: types.TopicOrderCreated, URL: "https://a", Secret: "s1"},
	{Topic: types.TopicOrderSentToProduction, URL: "https://a", Secret: "s2"},
}

// echoSecret answers a webhook registration with an id derived from its secret.
func echoSecret(c captured) (int, string) {
	var reg types.WebhookRegistration
	_ = json.Unmarshal(c.Body, &reg)
	return http.StatusOK, `{"id":"wh-` + reg.Secret + `","topic":"` + string(reg.Topic) + `"}`
}

func TestCreateWebhooks_OneRequestPerTopic(t *testing.T) {
	t.Parallel()
	rec := &recorder{respond: echoSecret}

	res, err := CreateWebhooks(context.Background(), rec, testBase, "9", twoRegs)
	if err != nil {
		t.Fatalf("CreateWebhooks: %v", err)
	}
	if len(res) != 2 || res[0].String("id") != "wh-s1" || res[1].String("id") != "wh-s2" {
		t.Fatalf("results out of input order: %v", res)
	}

	reqs := rec.requests()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	var bodies []string
	for _, r := range reqs {
		if r.Method != http.MethodPost || r.URL != testBase+"/shops/9/webhooks.json" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL)
		}
		bodies = append(bodies, string(r.Body))
	}
	sort.Strings(bodies)
	want := []string{
		`{"topic":"order:created","url":"https://a","secret":"s1"}`,
		`{"topic":"order:sent-to-production","url":"https://a","secret":"s2"}`,
	}
	if strings.Join(bodies, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected bodies:\n%s", strings.Join(bodies, "\n"))
	}
}

func TestCreateWebhooks_FailsWhenAnyRequestFails(t *testing.T) {
	t.Parallel()
	for _, failing := range []string{"s1", "s2"} {
		rec := &recorder{respond: func(c captured) (int, string) {
			if strings.Contains(string(c.Body), `"`+failing+`"`) {
				return http.StatusBadRequest, `{"error":"bad topic"}`
			}
			return echoSecret(c)
		}}
		res, err := CreateWebhooks(context.Background(), rec, testBase, "9", twoRegs)
		if err == nil || res != nil {
			t.Fatalf("failing %s: expected error and no results, got %v %v", failing, res, err)
		}
		if re, ok := errors.AsRequestError(err); !ok || re.StatusCode != http.StatusBadRequest {
			t.Fatalf("failing %s: expected 400 RequestError, got %v", failing, err)
		}
	}
}

func TestCreateWebhooks_Empty(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	res, err := CreateWebhooks(context.Background(), rec, testBase, "9", nil)
	if err != nil || len(res) != 0 || len(rec.requests()) != 0 {
		t.Fatalf("expected no-op, got %v %v", res, err)
	}
}

func TestCreateWebhooks_RequiresShopID(t *testing.T) {
	t.Parallel()
	rec := &recorder{}
	if _, err := CreateWebhooks(context.Background(), rec, testBase, "", twoRegs); err != errors.ErrShopIDRequired {
		t.Fatalf("expected ErrShopIDRequired, got %v", err)
	}
	if len(rec.requests()) != 0 {
		t.Fatal("no request expected without shop id")
	}
}

func TestDeleteAndListWebhooks(t *testing.T) {
	t.Parallel()
	rec := &recorder{respond: func(c captured) (int, string) {
		if c.Method == http.MethodDelete {
			return http.StatusOK, `{"id":"wh1"}`
		}
		return http.StatusOK, `[{"id":"wh1","topic":"order:created","url":"https://a","shop_id":9}]`
	}}
	del, err := DeleteWebhook(context.Background(), rec, testBase, "9", "wh1")
	if err != nil {
		t.Fatalf("DeleteWebhook: %v", err)
	}
	if obj, ok := del.AsObject(); !ok || obj.String("id") != "wh1" {
		t.Fatalf("DeleteWebhook: unexpected result %v", del)
	}
	list, err := GetWebhooks(context.Background(), rec, testBase, "9")
	if err != nil || len(list) != 1 || list[0].String("topic") != "order:created" {
		t.Fatalf("GetWebhooks: %v %v", list, err)
	}
	if n, ok := list[0]["shop_id"].AsNumber(); !ok || n.String() != "9" {
		t.Fatalf("shop_id not preserved: %v", list[0]["shop_id"])
	}
	reqs := rec.requests()
	if reqs[0].Method != http.MethodDelete || reqs[0].URL != testBase+"/shops/9/webhooks/wh1.json" {
		t.Fatalf("unexpected delete request: %+v", reqs[0])
	}
	if reqs[1].Method != http.MethodGet || reqs[1].URL != testBase+"/shops/9/webhooks.json" {
		t.Fatalf("unexpected list request: %+v", reqs[1])
	}
}

func manyRegs(n int) []types.WebhookRegistration {
	regs := make([]types.WebhookRegistration, n)
	for i := range regs {
		regs[i] = types.WebhookRegistration{Topic: types.TopicOrderCreated, URL: "https://a", Secret: fmt.Sprintf("s%d", i)}
	}
	return regs
}

func jsonResponse(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     fmt.Sprintf("%d %s", status, http.StatusText(status)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Request:    req,
	}
}

// slowPeers fails the registration whose secret is failSecret straight away
// and holds every other one for delay, noting whether its context was
// cancelled while it waited.
type slowPeers struct {
	failSecret string
	delay      time.Duration
	issued     atomic.Int32
	cancelled  atomic.Int32
}

func (s *slowPeers) Do(req *http.Request) (*http.Response, error) {
	s.issued.Add(1)
	body, _ := io.ReadAll(req.Body)
	if bytes.Contains(body, []byte(`"`+s.failSecret+`"`)) {
		return jsonResponse(req, http.StatusInternalServerError, `{"error":"boom"}`), nil
	}
	select {
	case <-req.Context().Done():
		s.cancelled.Add(1)
		return nil, req.Context().Err()
	case <-time.After(s.delay):
		return jsonResponse(req, http.StatusOK, `{"id":"ok"}`), nil
	}
}

func TestCreateWebhooks_FailureDoesNotSkipOrCancelPeers(t *testing.T) {
	t.Parallel()
	const n = 25
	peers := &slowPeers{failSecret: "s0", delay: 50 * time.Millisecond}

	_, err := CreateWebhooks(context.Background(), peers, testBase, "9", manyRegs(n))
	if re, ok := errors.AsRequestError(err); !ok || re.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500 RequestError, got %v", err)
	}
	if got := peers.issued.Load(); got != n {
		t.Fatalf("expected %d requests, got %d", n, got)
	}
	if got := peers.cancelled.Load(); got != 0 {
		t.Fatalf("%d requests were cancelled after the first failure", got)
	}
}

// barrier answers no request until n of them are waiting at once.
type barrier struct {
	n       int
	mu      sync.Mutex
	arrived int
	open    chan struct{}
}

func (b *barrier) Do(req *http.Request) (*http.Response, error) {
	b.mu.Lock()
	b.arrived++
	if b.arrived == b.n {
		close(b.open)
	}
	b.mu.Unlock()
	select {
	case <-b.open:
		return jsonResponse(req, http.StatusOK, `{"id":"ok"}`), nil
	case <-time.After(2 * time.Second):
		b.mu.Lock()
		defer b.mu.Unlock()
		return nil, fmt.Errorf("only %d of %d requests arrived concurrently", b.arrived, b.n)
	}
}

func TestCreateWebhooks_RequestsAreConcurrent(t *testing.T) {
	t.Parallel()
	const n = 8
	b := &barrier{n: n, open: make(chan struct{})}

	res, err := CreateWebhooks(context.Background(), b, testBase, "9", manyRegs(n))
	if err != nil {
		t.Fatalf("CreateWebhooks: %v", err)
	}
	if len(res) != n {
		t.Fatalf("expected %d results, got %d", n, len(res))
	}
}
