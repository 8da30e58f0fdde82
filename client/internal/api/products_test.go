package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/kastproductions/printify-client/client/internal/errors"
)

const productJSON = `{"id":"5d39b159e7c48c000728c89f","title":"Mug 11oz","description":"A mug","tags":["Home","Mugs"],` +
	`"options":[{"name":"Sizes","type":"size"}],"variants":[{"id":33719,"price":1000}],"images":[{"src":"https://images/1.png"}],"visible":true}`

func TestGetProducts_FixedLimitSingleRequest(t *testing.T) {
	t.Parallel()
	rec := &recorder{respond: func(captured) (int, string) {
		return http.StatusOK, `{"current_page":1,"last_page":7,"total":700,"data":[` + productJSON + `]}`
	}}
	page, err := GetProducts(context.Background(), rec, testBase, "42")
	if err != nil {
		t.Fatalf("GetProducts: %v", err)
	}
	if page.CurrentPage != "1" || len(page.Data) != 1 || page.Data[0].Title != "Mug 11oz" {
		t.Fatalf("unexpected page: %+v", page)
	}
	reqs := rec.requests()
	if len(reqs) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(reqs))
	}
	if reqs[0].URL != testBase+"/shops/42/products.json?limit=100" {
		t.Fatalf("unexpected url %s", reqs[0].URL)
	}
}

func TestGetProduct(t *testing.T) {
	t.Parallel()
	rec := &recorder{respond: func(captured) (int, string) { return http.StatusOK, productJSON }}
	p, err := GetProduct(context.Background(), rec, testBase, "42", "5d39b159e7c48c000728c89f")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if p.ID != "5d39b159e7c48c000728c89f" || len(p.Tags) != 2 || p.Options[0].Name != "Sizes" ||
		p.Variants[0].ID != "33719" || p.Images[0].Src != "https://images/1.png" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if u := rec.requests()[0].URL; u != testBase+"/shops/42/products/5d39b159e7c48c000728c89f.json" {
		t.Fatalf("unexpected url %s", u)
	}
}

func TestProducts_Errors(t *testing.T) {
	t.Parallel()
	rec := &recorder{respond: func(captured) (int, string) { return http.StatusNotFound, `{}` }}
	if _, err := GetProduct(context.Background(), rec, testBase, "42", "nope"); err == nil || err.Error() != "404 Not Found" {
		t.Fatalf("expected 404 Not Found, got %v", err)
	}
	if _, err := GetProducts(context.Background(), rec, testBase, ""); err != errors.ErrShopIDRequired {
		t.Fatalf("expected ErrShopIDRequired, got %v", err)
	}
	if _, err := GetProduct(context.Background(), rec, testBase, "", "p"); err != errors.ErrShopIDRequired {
		t.Fatalf("expected ErrShopIDRequired, got %v", err)
	}
}
