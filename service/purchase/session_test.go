package purchase

import (
	"context"
	"errors"
	"testing"

	catalogService "erp.GO/service/catalog"
)

func catalogFixture() *fakeLookup {
	lookup := newFakeLookup()
	lookup.add(testProduct()) // product 7, base 50, no variants
	lookup.add(&catalogService.Entry{
		ProductID: 8,
		SKU:       "BOOT-8",
		Name:      "Hiking Boot",
		BasePrice: 80,
		Currency:  "USD",
		Variants: []catalogService.Variant{
			{VariantID: 81, SKU: "BOOT-8-40", Name: "Size 40", Price: fp(85),
				VendorCosts: []catalogService.VendorCost{{VendorID: 3, Cost: fp(61)}}},
			{VariantID: 82, SKU: "BOOT-8-41", Name: "Size 41",
				VendorCosts: []catalogService.VendorCost{{VendorID: 3, Cost: fp(62)}}},
		},
	})
	return lookup
}

func newTestSession() (*Session, *fakeLookup) {
	lookup := catalogFixture()
	return NewSession(NewCache(lookup)), lookup
}

func TestSession_StartsWithOneBlankRow(t *testing.T) {
	s, _ := newTestSession()
	rows := s.Rows()
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].ProductID != 0 || rows[0].Quantity != 1 {
		t.Errorf("blank row = %+v, want unselected with quantity 1", rows[0])
	}
}

func TestSession_SetProductLoadsCatalogState(t *testing.T) {
	s, lookup := newTestSession()
	if err := s.SetProduct(context.Background(), 0, 8); err != nil {
		t.Fatalf("set product: %v", err)
	}
	r, _ := s.Row(0)
	if r.ProductID != 8 || r.Loading {
		t.Errorf("row = %+v, want product 8 loaded", r)
	}
	if len(r.Variants) != 2 {
		t.Fatalf("got %d variants, want 2", len(r.Variants))
	}
	if r.UnitPrice != 80 {
		t.Errorf("unit price = %v, want base price 80", r.UnitPrice)
	}
	if r.VariantID != 0 {
		t.Errorf("variant = %d, want none selected yet", r.VariantID)
	}
	if n := lookup.callCount(8); n != 1 {
		t.Errorf("lookup called %d times, want 1", n)
	}
}

func TestSession_SetProductZeroClearsRow(t *testing.T) {
	s, _ := newTestSession()
	ctx := context.Background()
	if err := s.SetProduct(ctx, 0, 8); err != nil {
		t.Fatalf("set product: %v", err)
	}
	if err := s.SetProduct(ctx, 0, 0); err != nil {
		t.Fatalf("clear product: %v", err)
	}
	r, _ := s.Row(0)
	if r.ProductID != 0 || r.VariantID != 0 || r.UnitPrice != 0 || len(r.Variants) != 0 {
		t.Errorf("cleared row = %+v, want empty selection", r)
	}
}

func TestSession_SetProductLookupFailureSurfaces(t *testing.T) {
	s, lookup := newTestSession()
	lookup.errs[9] = errors.New("catalog down")
	err := s.SetProduct(context.Background(), 0, 9)
	var lookupErr *CatalogLookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("err = %v, want *CatalogLookupError", err)
	}
	r, _ := s.Row(0)
	if r.Loading {
		t.Error("row must not stay in loading state after a failed fetch")
	}
	if r.ProductID != 9 || len(r.Variants) != 0 {
		t.Errorf("row = %+v, want product 9 without catalog state", r)
	}
}

func TestSession_RowStateFollowsRowAcrossInsert(t *testing.T) {
	s, _ := newTestSession()
	if err := s.SetProduct(context.Background(), 0, 8); err != nil {
		t.Fatalf("set product: %v", err)
	}
	if err := s.SetVariant(0, 81); err != nil {
		t.Fatalf("set variant: %v", err)
	}

	// Prepend a blank row: the configured row moves to index 1 with all its
	// state, and index 0 is a fresh row.
	if err := s.AddBlank(0); err != nil {
		t.Fatalf("add blank: %v", err)
	}
	rows := s.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ProductID != 0 || len(rows[0].Variants) != 0 {
		t.Errorf("new top row = %+v, want blank", rows[0])
	}
	if rows[1].ProductID != 8 || rows[1].VariantID != 81 || len(rows[1].Variants) != 2 {
		t.Errorf("shifted row = %+v, want product 8 variant 81 with variant list", rows[1])
	}
}

func TestSession_RowStateFollowsRowAcrossRemove(t *testing.T) {
	s, _ := newTestSession()
	ctx := context.Background()
	if err := s.AddBlank(0); err != nil {
		t.Fatalf("add blank: %v", err)
	}
	if err := s.SetProduct(ctx, 1, 8); err != nil {
		t.Fatalf("set product: %v", err)
	}

	if err := s.Remove(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	r, _ := s.Row(0)
	if r.ProductID != 8 || len(r.Variants) != 2 {
		t.Errorf("row after removal = %+v, want product 8 state at index 0", r)
	}
}

func TestSession_LastRowCannotBeRemoved(t *testing.T) {
	s, _ := newTestSession()
	err := s.Remove(0)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "line_items" {
		t.Fatalf("err = %v, want line_items validation error", err)
	}
	if s.Len() != 1 {
		t.Errorf("len = %d, want 1", s.Len())
	}
}

func TestSession_IndexOutOfRange(t *testing.T) {
	s, _ := newTestSession()
	if err := s.SetQuantity(5, 2); err == nil {
		t.Error("set quantity out of range should fail")
	}
	if err := s.SetProduct(context.Background(), -1, 8); err == nil {
		t.Error("set product out of range should fail")
	}
	if err := s.AddBlank(3); err == nil {
		t.Error("add blank past end should fail")
	}
}

func TestSession_SetVariantResolvesPrice(t *testing.T) {
	s, _ := newTestSession()
	if err := s.SetProduct(context.Background(), 0, 8); err != nil {
		t.Fatalf("set product: %v", err)
	}

	if err := s.SetVariant(0, 81); err != nil {
		t.Fatalf("set variant: %v", err)
	}
	r, _ := s.Row(0)
	if r.UnitPrice != 85 {
		t.Errorf("unit price = %v, want 85 (variant price, no vendor)", r.UnitPrice)
	}

	// Variant without a price falls back to the base price.
	if err := s.SetVariant(0, 82); err != nil {
		t.Fatalf("set variant: %v", err)
	}
	r, _ = s.Row(0)
	if r.UnitPrice != 80 {
		t.Errorf("unit price = %v, want 80 (base price)", r.UnitPrice)
	}

	// Clearing the variant goes back to the base price too.
	if err := s.SetVariant(0, 0); err != nil {
		t.Fatalf("clear variant: %v", err)
	}
	r, _ = s.Row(0)
	if r.VariantID != 0 || r.UnitPrice != 80 {
		t.Errorf("row = %+v, want cleared variant at base price", r)
	}
}

func TestSession_SetVariantRejectsForeignVariant(t *testing.T) {
	s, _ := newTestSession()
	if err := s.SetProduct(context.Background(), 0, 8); err != nil {
		t.Fatalf("set product: %v", err)
	}
	err := s.SetVariant(0, 999)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "variant" {
		t.Fatalf("err = %v, want variant validation error", err)
	}
}

func TestSession_SetVendorReResolvesVariantRows(t *testing.T) {
	s, _ := newTestSession()
	ctx := context.Background()
	if err := s.AddBlank(0); err != nil {
		t.Fatalf("add blank: %v", err)
	}
	if err := s.SetProduct(ctx, 0, 8); err != nil {
		t.Fatalf("set product: %v", err)
	}
	if err := s.SetVariant(0, 81); err != nil {
		t.Fatalf("set variant: %v", err)
	}
	if err := s.SetProduct(ctx, 1, 7); err != nil {
		t.Fatalf("set product: %v", err)
	}

	s.SetVendor(3)
	rows := s.Rows()
	if rows[0].UnitPrice != 61 {
		t.Errorf("variant row price = %v, want 61 (vendor cost)", rows[0].UnitPrice)
	}
	// A row without a variant selection keeps its price.
	if rows[1].UnitPrice != 50 {
		t.Errorf("plain row price = %v, want 50 unchanged", rows[1].UnitPrice)
	}

	// Back to no vendor: the variant price applies again.
	s.SetVendor(0)
	rows = s.Rows()
	if rows[0].UnitPrice != 85 {
		t.Errorf("variant row price = %v, want 85 after vendor cleared", rows[0].UnitPrice)
	}
}

func TestSession_UnitPriceOverrideSticks(t *testing.T) {
	s, _ := newTestSession()
	if err := s.SetProduct(context.Background(), 0, 8); err != nil {
		t.Fatalf("set product: %v", err)
	}
	if err := s.SetUnitPrice(0, 99.99); err != nil {
		t.Fatalf("set unit price: %v", err)
	}
	r, _ := s.Row(0)
	if r.UnitPrice != 99.99 {
		t.Errorf("unit price = %v, want manual 99.99", r.UnitPrice)
	}
}

func TestSession_StaleLookupIsDiscardedOnReselect(t *testing.T) {
	s, lookup := newTestSession()
	ctx := context.Background()
	release := lookup.hold(8)

	done := make(chan error, 1)
	go func() { done <- s.SetProduct(ctx, 0, 8) }()
	lookup.waitForCall(t, 8)

	// The user changes their mind while the first fetch hangs.
	if err := s.SetProduct(ctx, 0, 7); err != nil {
		t.Fatalf("set product 7: %v", err)
	}
	release()
	if err := <-done; err != nil {
		t.Fatalf("superseded set product: %v", err)
	}

	r, _ := s.Row(0)
	if r.ProductID != 7 || r.Loading {
		t.Errorf("row = %+v, want product 7 loaded", r)
	}
	if r.UnitPrice != 50 {
		t.Errorf("unit price = %v, want 50 (product 7 base), not overwritten by the late fetch", r.UnitPrice)
	}
	if len(r.Variants) != 0 {
		t.Errorf("variants = %v, want none (product 8 result was stale)", r.Variants)
	}
}

func TestSession_StaleLookupIsDiscardedOnRemove(t *testing.T) {
	s, lookup := newTestSession()
	ctx := context.Background()
	if err := s.AddBlank(0); err != nil {
		t.Fatalf("add blank: %v", err)
	}
	release := lookup.hold(8)

	done := make(chan error, 1)
	go func() { done <- s.SetProduct(ctx, 0, 8) }()
	lookup.waitForCall(t, 8)

	if err := s.Remove(0); err != nil {
		t.Fatalf("remove: %v", err)
	}
	release()
	if err := <-done; err != nil {
		t.Fatalf("set product on removed row: %v", err)
	}

	rows := s.Rows()
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	if rows[0].ProductID != 0 || len(rows[0].Variants) != 0 {
		t.Errorf("surviving row = %+v, want untouched blank row", rows[0])
	}
}

func TestSession_AddVariantRowPrepends(t *testing.T) {
	s, _ := newTestSession()
	ctx := context.Background()
	if err := s.SetProduct(ctx, 0, 8); err != nil {
		t.Fatalf("set product: %v", err)
	}
	if err := s.SetVariant(0, 81); err != nil {
		t.Fatalf("set variant: %v", err)
	}

	if err := s.AddVariantRow(ctx, 8); err != nil {
		t.Fatalf("add variant row: %v", err)
	}
	rows := s.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].ProductID != 8 || rows[0].VariantID != 0 || rows[0].UnitPrice != 80 {
		t.Errorf("new row = %+v, want product 8 at base price with no variant", rows[0])
	}
	if rows[1].VariantID != 81 {
		t.Errorf("original row = %+v, want variant 81 preserved", rows[1])
	}

	groups := s.Groups()
	if len(groups) != 1 || groups[0].ProductID != 8 || len(groups[0].Indices) != 2 {
		t.Errorf("groups = %+v, want both rows merged under product 8", groups)
	}
}

func TestSession_OrderTotal(t *testing.T) {
	s, _ := newTestSession()
	ctx := context.Background()
	if err := s.SetProduct(ctx, 0, 7); err != nil {
		t.Fatalf("set product: %v", err)
	}
	if err := s.SetQuantity(0, 3); err != nil {
		t.Fatalf("set quantity: %v", err)
	}
	if got := s.OrderTotal(5); got != 155 {
		t.Errorf("order total = %v, want 155 (3 x 50 + 5)", got)
	}
}
