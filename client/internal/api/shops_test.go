package api

import (
	"context"
	"net/http"
	"testing"
)

func TestGetShops(t *testing.T) {
	t.Parallel()
	rec := &recorder{respond: func(captured) (int, string) {
		return http.StatusOK, `[{"id":5432,"title":"My Store","sales_channel":"custom_integration"}]`
	}}
	shops, err := GetShops(context.Background(), rec, testBase)
	if err != nil {
		t.Fatalf("GetShops: %v", err)
	}
	if len(shops) != 1 || shops[0].ID != "5432" || shops[0].Title != "My Store" || shops[0].SalesChannel != "custom_integration" {
		t.Fatalf("unexpected shops: %+v", shops)
	}
	if reqs := rec.requests(); reqs[0].URL != testBase+"/shops.json" || reqs[0].Method != http.MethodGet {
		t.Fatalf("unexpected request: %+v", reqs[0])
	}
}
