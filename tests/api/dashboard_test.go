package apitest

import (
	"net/http"
	"testing"
)

func TestDashboardAPI_Snapshot(t *testing.T) {
	e, _ := newServer(t)
	seedCatalogProduct(t, "API-DASH-1")

	rec, resp := doJSON(t, e, http.MethodGet, "/api/dashboard", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard = %d, body %s", rec.Code, rec.Body.String())
	}
	for _, key := range []string{"products", "vendors", "warehouses", "customers", "orders", "purchase_orders", "outstanding_balance", "generated_at"} {
		if _, ok := resp[key]; !ok {
			t.Errorf("snapshot missing %q", key)
		}
	}
	if products, ok := resp["products"].(float64); !ok || products < 1 {
		t.Errorf("products = %v, want at least the seeded one", resp["products"])
	}
}
