package printifytest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

var knownTopics = map[string]bool{
	"order:created":            true,
	"order:sent-to-production": true,
	"order:shipment:created":   true,
	"order:shipment:delivered": true,
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.record)
	r.Use(s.injectFailures)
	r.Use(s.authMiddleware)

	r.Route(BasePath, func(r chi.Router) {
		r.Get("/shops.json", s.listShops)
		r.Route("/shops/{shopID}", func(r chi.Router) {
			r.Get("/webhooks.json", s.listWebhooks)
			r.Post("/webhooks.json", s.createWebhook)
			r.Delete("/webhooks/{webhookID}", s.deleteWebhook)

			r.Get("/products.json", s.listProducts)
			r.Get("/products/{productID}", s.getProduct)
			r.Post("/products/{productID}/publish.json", s.publish)
			r.Post("/products/{productID}/unpublish.json", s.unpublish)
			r.Post("/products/{productID}/publishing_failed.json", s.publishingFailed)
			r.Post("/products/{productID}/publishing_succeeded.json", s.publishingSucceeded)

			r.Post("/orders.json", s.createOrder)
			r.Post("/orders/{orderID}/send_to_production.json", s.sendToProduction)
		})
	})
	return r
}

// shop resolves {shopID}; the caller must hold s.mu.
func (s *Server) shop(w http.ResponseWriter, r *http.Request) (*shopData, bool) {
	sd, ok := s.shops[chi.URLParam(r, "shopID")]
	if !ok {
		writeError(w, http.StatusNotFound, "Shop not found.")
	}
	return sd, ok
}

// product resolves {productID} within sd; the caller must hold s.mu.
func productIn(sd *shopData, id string) (map[string]any, bool) {
	for _, p := range sd.products {
		if p["id"] == id {
			return p, true
		}
	}
	return nil, false
}

// --- Shops ---

func (s *Server) listShops(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	out := make([]map[string]any, 0, len(s.shopIDs))
	for _, id := range s.shopIDs {
		out = append(out, s.shops[id].record)
	}
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, out)
}

// --- Webhooks ---

func (s *Server) listWebhooks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shop(w, r)
	if !ok {
		return
	}
	out := make([]map[string]any, 0, len(sd.webhooks))
	for _, wh := range sd.webhooks {
		out = append(out, publicWebhook(wh))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON.")
		return
	}
	topic, _ := body["topic"].(string)
	if !knownTopics[topic] {
		writeError(w, http.StatusBadRequest, "Unknown topic.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shop(w, r)
	if !ok {
		return
	}
	wh := map[string]any{
		"id":      newID(),
		"topic":   topic,
		"url":     body["url"],
		"secret":  body["secret"],
		"shop_id": sd.record["id"],
	}
	sd.webhooks = append(sd.webhooks, wh)
	writeJSON(w, http.StatusOK, publicWebhook(wh))
}

func (s *Server) deleteWebhook(w http.ResponseWriter, r *http.Request) {
	id := jsonParam(r, "webhookID")
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shop(w, r)
	if !ok {
		return
	}
	for i, wh := range sd.webhooks {
		if wh["id"] == id {
			sd.webhooks = append(sd.webhooks[:i], sd.webhooks[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]any{"id": id})
			return
		}
	}
	writeError(w, http.StatusNotFound, "Webhook not found.")
}

// publicWebhook hides the shared secret, which the real API never echoes.
func publicWebhook(wh map[string]any) map[string]any {
	out := make(map[string]any, len(wh))
	for k, v := range wh {
		if k != "secret" {
			out[k] = v
		}
	}
	return out
}

// --- Products ---

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	page := 1
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shop(w, r)
	if !ok {
		return
	}
	total := len(sd.products)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)
	lastPage := max(1, (total+limit-1)/limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"current_page": page,
		"last_page":    lastPage,
		"per_page":     limit,
		"total":        total,
		"data":         sd.products[start:end],
	})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id := jsonParam(r, "productID")
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shop(w, r)
	if !ok {
		return
	}
	p, ok := productIn(sd, id)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found.")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// --- Publishing ---

// setPublish records st for {productID} and answers with an empty object.
func (s *Server) setPublish(w http.ResponseWriter, r *http.Request, st PublishStatus) {
	id := chi.URLParam(r, "productID")
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shop(w, r)
	if !ok {
		return
	}
	if _, ok := productIn(sd, id); !ok {
		writeError(w, http.StatusNotFound, "Product not found.")
		return
	}
	sd.publish[id] = st
	writeJSON(w, http.StatusOK, map[string]any{})
}

func (s *Server) publish(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON.")
		return
	}
	s.setPublish(w, r, PublishStatus{State: StatePublishing, Fields: body})
}

func (s *Server) unpublish(w http.ResponseWriter, r *http.Request) {
	s.setPublish(w, r, PublishStatus{State: StateUnpublished})
}

func (s *Server) publishingFailed(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON.")
		return
	}
	reason, _ := body["reason"].(string)
	s.setPublish(w, r, PublishStatus{State: StateFailed, Reason: reason})
}

func (s *Server) publishingSucceeded(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON.")
		return
	}
	external, _ := body["external"].(map[string]any)
	if external == nil {
		writeError(w, http.StatusBadRequest, "Missing external.")
		return
	}
	s.setPublish(w, r, PublishStatus{State: StatePublished, External: external})
}

// --- Orders ---

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Malformed JSON.")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shop(w, r)
	if !ok {
		return
	}
	id := newID()
	body["id"] = id
	body["status"] = "pending"
	sd.orders[id] = body
	writeJSON(w, http.StatusOK, map[string]any{"id": id})
}

func (s *Server) sendToProduction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "orderID")
	s.mu.Lock()
	defer s.mu.Unlock()
	sd, ok := s.shop(w, r)
	if !ok {
		return
	}
	o, ok := sd.orders[id]
	if !ok {
		writeError(w, http.StatusNotFound, "Order not found.")
		return
	}
	o["status"] = "sending-to-production"
	writeJSON(w, http.StatusOK, o)
}
